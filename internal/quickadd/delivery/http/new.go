package http

import (
	"github.com/gin-gonic/gin"

	"todo-me/internal/quickadd"
	"todo-me/pkg/log"
)

// Handler is the public interface for the quick-add HTTP delivery layer.
type Handler interface {
	Parse(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc quickadd.UseCase
}

// New creates a new HTTP handler for the quick-add domain.
func New(l log.Logger, uc quickadd.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
