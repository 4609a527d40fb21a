package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"todo-me/internal/middleware"
	"todo-me/internal/project"
	projectHTTP "todo-me/internal/project/delivery/http"
	projectRepo "todo-me/internal/project/repository/sqlite"
	projectUC "todo-me/internal/project/usecase"
)

// setupProjectDomain wires repository -> usecase -> handler and registers /api/v1/projects.
// The usecase is returned because quick add resolves #project tokens through it.
func (srv *HTTPServer) setupProjectDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) (project.UseCase, error) {
	repo := projectRepo.New(srv.db, srv.l)
	uc := projectUC.New(repo, srv.l)
	h := projectHTTP.New(srv.l, uc)

	projectHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Project domain registered")
	return uc, nil
}
