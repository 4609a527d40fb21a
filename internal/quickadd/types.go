package quickadd

import (
	"time"

	"todo-me/pkg/nlparse"
)

// Highlight kinds.
const (
	KindDate     = "date"
	KindPriority = "priority"
	KindProject  = "project"
)

// Warnings attached to a parse that still succeeded.
const (
	WarningInvalidPriority = "invalid priority"
	WarningUnknownProject  = "unknown project"
)

// Defaults are the parser options used when a request does not override them.
type Defaults struct {
	Timezone    string
	StartOfWeek int
	DateFormat  nlparse.DateFormat
}

// --- UseCase Inputs ---

type ParseInput struct {
	Text string
	// Timezone, StartOfWeek and DateFormat override Defaults when set.
	Timezone    string
	StartOfWeek *int
	DateFormat  nlparse.DateFormat
	// Now pins the reference instant; zero means the use case clock.
	Now time.Time
}

// --- UseCase Outputs ---

// Highlight marks a recognized token in the input. Start and End are byte offsets, End exclusive.
type Highlight struct {
	Kind  string
	Text  string
	Start int
	End   int
}

type ParseOutput struct {
	// Title is the input with every recognized token removed and whitespace collapsed.
	Title      string
	Timezone   string
	Date       *nlparse.DateResult
	Priority   *nlparse.PriorityResult
	Project    *nlparse.ProjectResult
	Highlights []Highlight
	Warnings   []string
}
