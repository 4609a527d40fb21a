package usecase

import (
	"context"
	"fmt"
	"time"

	"todo-me/internal/model"
	"todo-me/internal/recurrence"
	"todo-me/pkg/datemath"
	pkgRecurrence "todo-me/pkg/recurrence"
)

// ParseRule parses input.Text, serving repeats of the same phrase on the same local day from cache.
func (uc *implUseCase) ParseRule(ctx context.Context, sc model.Scope, input recurrence.ParseRuleInput) (recurrence.ParseRuleOutput, error) {
	loc, err := uc.location(input.Timezone)
	if err != nil {
		return recurrence.ParseRuleOutput{}, err
	}

	rule, err := uc.parse(ctx, input.Text, uc.now(input.Now, loc))
	if err != nil {
		return recurrence.ParseRuleOutput{}, err
	}
	return recurrence.ParseRuleOutput{Rule: rule, Timezone: loc.String()}, nil
}

// parse consults the cache before the parser. The key carries the local date because
// "until" years are inferred from it.
func (uc *implUseCase) parse(ctx context.Context, text string, now time.Time) (pkgRecurrence.Rule, error) {
	key := cacheKey(text, now)
	if rule, ok := uc.cache.Get(key); ok {
		return withText(rule, text), nil
	}

	rule, err := uc.parser.Parse(text, now)
	if err != nil {
		uc.l.Debugf(ctx, "recurrence parse %q: %v", text, err)
		return pkgRecurrence.Rule{}, err
	}
	uc.cache.Add(key, withText(rule, ""))
	return rule, nil
}

func cacheKey(text string, now time.Time) string {
	return fmt.Sprintf("%s|%s|%s", now.Location(), now.Format("2006-01-02"), pkgRecurrence.Normalize(text))
}

// withText copies rule with its own Days slice so callers never share cache memory.
func withText(rule pkgRecurrence.Rule, text string) pkgRecurrence.Rule {
	if rule.Days != nil {
		rule.Days = append([]int(nil), rule.Days...)
	}
	rule.OriginalText = text
	return rule
}

func (uc *implUseCase) location(timezone string) (*time.Location, error) {
	if timezone == "" {
		timezone = uc.defaultTimezone
	}
	loc, err := datemath.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", recurrence.ErrInvalidTimezone, err)
	}
	return loc, nil
}

func (uc *implUseCase) now(pinned time.Time, loc *time.Location) time.Time {
	if pinned.IsZero() {
		pinned = uc.clock.Now()
	}
	return pinned.In(loc)
}
