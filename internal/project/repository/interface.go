package repository

import (
	"context"

	"todo-me/internal/model"
)

// Repository is the composed interface for the project data store.
type Repository interface {
	ProjectRepository
}

// ProjectRepository defines all data access methods for projects.
type ProjectRepository interface {
	CreateProject(ctx context.Context, opt CreateProjectOptions) (model.Project, error)
	// GetOneProject returns the zero Project (ID == "") when nothing matches.
	GetOneProject(ctx context.Context, opt GetOneProjectOptions) (model.Project, error)
	ListProjects(ctx context.Context, opt ListProjectsOptions) ([]model.Project, error)
}
