package http

import (
	"github.com/gin-gonic/gin"

	"todo-me/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	r := rg.Group("/recurrence", mw.Scope())
	{
		r.POST("/parse", h.Parse)
		r.POST("/next", h.Next)
	}
}
