package usecase

import (
	"context"

	"todo-me/internal/model"
	repo "todo-me/internal/project/repository"
	"todo-me/pkg/nlparse"
)

type lookup struct {
	uc *implUseCase
}

var _ nlparse.ProjectLookup = lookup{}

// Lookup adapts the store to nlparse.ProjectLookup.
func (uc *implUseCase) Lookup() nlparse.ProjectLookup {
	return lookup{uc: uc}
}

// FindByNameInsensitive matches a single name at any depth, preferring root projects.
func (l lookup) FindByNameInsensitive(ctx context.Context, userID, name string) (*nlparse.Project, error) {
	p, err := l.uc.repo.GetOneProject(ctx, repo.GetOneProjectOptions{UserID: userID, Name: name})
	if err != nil {
		return nil, err
	}
	return toParsed(p), nil
}

// FindByPathInsensitive walks path from a root project down, one child per segment.
func (l lookup) FindByPathInsensitive(ctx context.Context, userID string, path []string) (*nlparse.Project, error) {
	var current model.Project
	for _, segment := range path {
		next, err := l.uc.repo.GetOneProject(ctx, repo.GetOneProjectOptions{
			UserID:   userID,
			Name:     segment,
			ByParent: true,
			ParentID: current.ID,
		})
		if err != nil {
			return nil, err
		}
		if next.ID == "" {
			return nil, nil
		}
		current = next
	}
	return toParsed(current), nil
}

func toParsed(p model.Project) *nlparse.Project {
	if p.ID == "" {
		return nil
	}
	return &nlparse.Project{ID: p.ID, Name: p.Name}
}
