package http

import (
	"github.com/gin-gonic/gin"

	"todo-me/internal/recurrence"
	"todo-me/pkg/log"
)

// Handler is the public interface for the recurrence HTTP delivery layer.
type Handler interface {
	Parse(c *gin.Context)
	Next(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc recurrence.UseCase
}

// New creates a new HTTP handler for the recurrence domain.
func New(l log.Logger, uc recurrence.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
