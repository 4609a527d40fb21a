package usecase

import (
	"context"
	"strings"

	"todo-me/internal/model"
	"todo-me/internal/recurrence"
	pkgRecurrence "todo-me/pkg/recurrence"
)

// Next advances from the due date for absolute rules and from the completion time for
// relative ones, working in the user's timezone so month and weekday math follows their calendar.
func (uc *implUseCase) Next(ctx context.Context, sc model.Scope, input recurrence.NextInput) (recurrence.NextOutput, error) {
	loc, err := uc.location(input.Timezone)
	if err != nil {
		return recurrence.NextOutput{}, err
	}
	now := uc.now(input.Now, loc)

	var rule pkgRecurrence.Rule
	switch {
	case input.Rule != nil:
		if err := input.Rule.Validate(); err != nil {
			return recurrence.NextOutput{}, err
		}
		rule = withText(*input.Rule, input.Rule.OriginalText)
	case strings.TrimSpace(input.Text) != "":
		if rule, err = uc.parse(ctx, input.Text, now); err != nil {
			return recurrence.NextOutput{}, err
		}
	default:
		return recurrence.NextOutput{}, recurrence.ErrMissingRule
	}

	ref := input.DueDate
	if rule.IsRelative() {
		ref = input.CompletedAt
	}
	if ref.IsZero() {
		ref = now
	}
	ref = ref.In(loc)

	next := uc.calculator.Calculate(rule, ref)
	out := recurrence.NextOutput{
		Rule:         rule,
		Reference:    ref,
		Next:         next,
		ShouldCreate: uc.calculator.ShouldCreateNextInstance(rule, next),
		Timezone:     loc.String(),
	}
	uc.l.Debugf(ctx, "next occurrence for user %s: %s -> %s (create=%t)", sc.UserID, ref, next, out.ShouldCreate)
	return out, nil
}
