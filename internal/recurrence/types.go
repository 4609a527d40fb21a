package recurrence

import (
	"time"

	pkgRecurrence "todo-me/pkg/recurrence"
)

// Defaults for the recurrence service.
const (
	DefaultCacheSize = 1024
	DefaultCacheTTL  = 24 * time.Hour
)

// CacheConfig sizes the parsed-rule cache.
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// --- UseCase Inputs ---

type ParseRuleInput struct {
	Text string
	// Timezone decides which calendar day "until" dates are inferred from. Empty uses the default.
	Timezone string
	// Now pins the reference instant; zero means the use case clock.
	Now time.Time
}

type NextInput struct {
	// Rule wins over Text when both are set.
	Rule *pkgRecurrence.Rule
	Text string
	// DueDate anchors absolute rules. Zero falls back to now.
	DueDate time.Time
	// CompletedAt anchors relative rules. Zero falls back to now.
	CompletedAt time.Time
	Timezone    string
	Now         time.Time
}

// --- UseCase Outputs ---

type ParseRuleOutput struct {
	Rule     pkgRecurrence.Rule
	Timezone string
}

type NextOutput struct {
	Rule pkgRecurrence.Rule
	// Reference is the instant the rule advanced from, in the user's timezone.
	Reference time.Time
	// Next is the computed occurrence, in the user's timezone.
	Next time.Time
	// ShouldCreate is false once Next falls after the rule's end date.
	ShouldCreate bool
	Timezone     string
}
