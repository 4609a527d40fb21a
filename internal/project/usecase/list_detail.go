package usecase

import (
	"context"

	"todo-me/internal/model"
	"todo-me/internal/project"
	repo "todo-me/internal/project/repository"
)

// List returns the user's projects.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input project.ListInput) (project.ListOutput, error) {
	projects, err := uc.repo.ListProjects(ctx, repo.ListProjectsOptions{
		UserID:          sc.UserID,
		IncludeArchived: input.IncludeArchived,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListProjects: %v", err)
		return project.ListOutput{}, err
	}
	return project.ListOutput{Projects: projects}, nil
}

// Detail retrieves one project with its path from the root. Returns ErrProjectNotFound when missing.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (project.DetailOutput, error) {
	p, err := uc.repo.GetOneProject(ctx, repo.GetOneProjectOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneProject: %v", err)
		return project.DetailOutput{}, err
	}
	if p.ID == "" {
		return project.DetailOutput{}, project.ErrProjectNotFound
	}

	path := []string{p.Name}
	seen := map[string]bool{p.ID: true}
	for parentID := p.ParentID; parentID != "" && !seen[parentID]; {
		seen[parentID] = true
		parent, err := uc.repo.GetOneProject(ctx, repo.GetOneProjectOptions{ID: parentID, UserID: sc.UserID})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Detail GetOneProject ancestor: %v", err)
			return project.DetailOutput{}, err
		}
		if parent.ID == "" {
			break
		}
		path = append([]string{parent.Name}, path...)
		parentID = parent.ParentID
	}

	return project.DetailOutput{Project: p, Path: path}, nil
}
