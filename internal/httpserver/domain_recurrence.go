package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"todo-me/internal/middleware"
	recurrenceHTTP "todo-me/internal/recurrence/delivery/http"
	recurrenceUC "todo-me/internal/recurrence/usecase"
)

// setupRecurrenceDomain registers /api/v1/recurrence/{parse,next}.
func (srv *HTTPServer) setupRecurrenceDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	uc := recurrenceUC.New(srv.l, srv.clock, srv.parserDefaults.Timezone, srv.recurrenceCache)
	h := recurrenceHTTP.New(srv.l, uc)

	recurrenceHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Recurrence domain registered")
	return nil
}
