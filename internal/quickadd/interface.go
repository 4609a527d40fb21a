package quickadd

import (
	"context"

	"todo-me/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Parse extracts date, priority and project from a quick-add line without creating anything.
	Parse(ctx context.Context, sc model.Scope, input ParseInput) (ParseOutput, error)
}
