package http

import (
	"github.com/gin-gonic/gin"

	"todo-me/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	projects := rg.Group("/projects", mw.Scope())
	{
		projects.POST("", h.Create)
		projects.GET("", h.List)
		projects.GET("/:id", h.Detail)
	}
}
