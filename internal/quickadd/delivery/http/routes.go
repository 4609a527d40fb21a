package http

import (
	"github.com/gin-gonic/gin"

	"todo-me/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/parse", mw.Scope(), h.Parse)
}
