package recurrence

import (
	"context"

	"todo-me/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// ParseRule turns a phrase such as "every 2 weeks on mon" into a rule.
	ParseRule(ctx context.Context, sc model.Scope, input ParseRuleInput) (ParseRuleOutput, error)
	// Next computes the occurrence after a task's due date or completion.
	Next(ctx context.Context, sc model.Scope, input NextInput) (NextOutput, error)
}
