package project

import (
	"context"

	"todo-me/internal/model"
	"todo-me/pkg/nlparse"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (DetailOutput, error)

	// Lookup exposes the store to the #project parser.
	Lookup() nlparse.ProjectLookup
}
