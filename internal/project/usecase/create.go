package usecase

import (
	"context"
	"errors"
	"strings"

	"todo-me/internal/model"
	"todo-me/internal/project"
	repo "todo-me/internal/project/repository"
)

// Create validates the name, checks the parent and sibling names, then persists.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input project.CreateInput) (project.CreateOutput, error) {
	name := strings.TrimSpace(input.Name)
	if !validName(name) {
		return project.CreateOutput{}, project.ErrInvalidName
	}

	if input.ParentID != "" {
		parent, err := uc.repo.GetOneProject(ctx, repo.GetOneProjectOptions{ID: input.ParentID, UserID: sc.UserID})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Create GetOneProject parent: %v", err)
			return project.CreateOutput{}, err
		}
		if parent.ID == "" {
			return project.CreateOutput{}, project.ErrParentNotFound
		}
	}

	existing, err := uc.repo.GetOneProject(ctx, repo.GetOneProjectOptions{
		UserID:   sc.UserID,
		Name:     name,
		ByParent: true,
		ParentID: input.ParentID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create GetOneProject sibling: %v", err)
		return project.CreateOutput{}, err
	}
	if existing.ID != "" {
		return project.CreateOutput{}, project.ErrDuplicateName
	}

	p, err := uc.repo.CreateProject(ctx, repo.CreateProjectOptions{
		UserID:      sc.UserID,
		ParentID:    input.ParentID,
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		Color:       strings.TrimSpace(input.Color),
	})
	if errors.Is(err, repo.ErrDuplicate) {
		return project.CreateOutput{}, project.ErrDuplicateName
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateProject: %v", err)
		return project.CreateOutput{}, err
	}

	uc.l.Infof(ctx, "project %s created for user %s", p.ID, sc.UserID)
	return project.CreateOutput{Project: p}, nil
}

// validName rejects names a #project token could never reference.
func validName(name string) bool {
	return name != "" && len(name) <= project.MaxNameLength && !strings.ContainsAny(name, "/#")
}
