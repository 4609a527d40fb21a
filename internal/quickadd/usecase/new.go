package usecase

import (
	"todo-me/internal/quickadd"
	"todo-me/pkg/datemath"
	"todo-me/pkg/log"
	"todo-me/pkg/nlparse"
)

type implUseCase struct {
	l        log.Logger
	clock    datemath.Clock
	defaults quickadd.Defaults
	priority *nlparse.PriorityParser
	project  *nlparse.ProjectParser
}

var _ quickadd.UseCase = (*implUseCase)(nil)

// New creates a quick-add UseCase. lookup resolves #project tokens.
func New(l log.Logger, clock datemath.Clock, lookup nlparse.ProjectLookup, defaults quickadd.Defaults) *implUseCase {
	return &implUseCase{
		l:        l,
		clock:    clock,
		defaults: defaults,
		priority: nlparse.NewPriorityParser(),
		project:  nlparse.NewProjectParser(lookup),
	}
}
