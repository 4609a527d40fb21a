package nlparse

import (
	"context"
	"time"
)

// DateFormat orders the parts of numeric dates such as 3/4/2026.
type DateFormat string

const (
	FormatMDY DateFormat = "MDY"
	FormatDMY DateFormat = "DMY"
	FormatYMD DateFormat = "YMD"
)

// DateOptions configures a DateParser. Zero values mean UTC, Sunday and MDY.
type DateOptions struct {
	Timezone    string
	StartOfWeek int
	Format      DateFormat
}

// DateResult is one date expression found in free text.
// Start and End are byte offsets into the input, End exclusive.
type DateResult struct {
	// Date is midnight of the matched day in the parser's timezone, or the matched
	// wall-clock time when HasTime is set.
	Date         time.Time
	Time         string
	OriginalText string
	Start        int
	End          int
	HasTime      bool
}

// MaxPriority is the highest valid priority (p0..p4).
const MaxPriority = 4

// PriorityResult is the first pN token found in free text. Out of range values are
// reported with Valid=false.
type PriorityResult struct {
	Priority     int
	Valid        bool
	OriginalText string
	Start        int
	End          int
}

// Project is the slice of a stored project the parser needs.
type Project struct {
	ID   string
	Name string
}

// ProjectLookup resolves project references for a user. Both methods return
// (nil, nil) when nothing matches.
type ProjectLookup interface {
	FindByNameInsensitive(ctx context.Context, userID, name string) (*Project, error)
	FindByPathInsensitive(ctx context.Context, userID string, path []string) (*Project, error)
}

// ProjectResult is the first #project token found in free text.
type ProjectResult struct {
	Found   bool
	Project *Project
	// Path holds the token's segments without the leading '#'.
	Path         []string
	OriginalText string
	Start        int
	End          int
}

// Name returns the token as written, without the leading '#'.
func (r ProjectResult) Name() string {
	if len(r.OriginalText) == 0 {
		return ""
	}
	return r.OriginalText[1:]
}
