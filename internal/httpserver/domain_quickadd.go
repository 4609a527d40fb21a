package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"todo-me/internal/middleware"
	quickaddHTTP "todo-me/internal/quickadd/delivery/http"
	quickaddUC "todo-me/internal/quickadd/usecase"
	"todo-me/pkg/nlparse"
)

// setupQuickAddDomain registers POST /api/v1/parse.
func (srv *HTTPServer) setupQuickAddDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, lookup nlparse.ProjectLookup) error {
	uc := quickaddUC.New(srv.l, srv.clock, lookup, srv.parserDefaults)
	h := quickaddHTTP.New(srv.l, uc)

	quickaddHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Quick add domain registered")
	return nil
}
