package usecase

import (
	"todo-me/internal/project"
	"todo-me/internal/project/repository"
	"todo-me/pkg/log"
)

type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

var _ project.UseCase = (*implUseCase)(nil)

// New creates a project UseCase.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
