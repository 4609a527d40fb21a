package usecase

import (
	"github.com/hashicorp/golang-lru/v2/expirable"

	"todo-me/internal/recurrence"
	"todo-me/pkg/datemath"
	"todo-me/pkg/log"
	pkgRecurrence "todo-me/pkg/recurrence"
)

type implUseCase struct {
	l               log.Logger
	clock           datemath.Clock
	defaultTimezone string
	parser          *pkgRecurrence.Parser
	calculator      *pkgRecurrence.Calculator
	cache           *expirable.LRU[string, pkgRecurrence.Rule]
}

var _ recurrence.UseCase = (*implUseCase)(nil)

// New creates a recurrence UseCase. Zero cache settings fall back to DefaultCacheSize and DefaultCacheTTL.
func New(l log.Logger, clock datemath.Clock, defaultTimezone string, cacheCfg recurrence.CacheConfig) *implUseCase {
	size := cacheCfg.Size
	if size <= 0 {
		size = recurrence.DefaultCacheSize
	}
	ttl := cacheCfg.TTL
	if ttl <= 0 {
		ttl = recurrence.DefaultCacheTTL
	}
	return &implUseCase{
		l:               l,
		clock:           clock,
		defaultTimezone: defaultTimezone,
		parser:          pkgRecurrence.NewParser(),
		calculator:      pkgRecurrence.NewCalculator(),
		cache:           expirable.NewLRU[string, pkgRecurrence.Rule](size, nil, ttl),
	}
}
