package recurrence

import (
	"fmt"
	"time"
)

// Type says which date a recurring task advances from.
type Type int

const (
	// TypeAbsolute recurs from the scheduled due date.
	TypeAbsolute Type = iota
	// TypeRelative recurs from the completion timestamp ("every!").
	TypeRelative
)

func (t Type) String() string {
	switch t {
	case TypeAbsolute:
		return "absolute"
	case TypeRelative:
		return "relative"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// ParseType converts the wire form back into a Type.
func ParseType(s string) (Type, error) {
	switch s {
	case "absolute":
		return TypeAbsolute, nil
	case "relative":
		return TypeRelative, nil
	}
	return 0, fmt.Errorf("%w: unknown recurrence type %q", ErrInvalidArgument, s)
}

// Interval is the unit a rule advances by.
type Interval int

const (
	IntervalDay Interval = iota
	IntervalWeek
	IntervalMonth
	IntervalYear
)

func (i Interval) String() string {
	switch i {
	case IntervalDay:
		return "day"
	case IntervalWeek:
		return "week"
	case IntervalMonth:
		return "month"
	case IntervalYear:
		return "year"
	default:
		return fmt.Sprintf("Interval(%d)", int(i))
	}
}

// ParseInterval converts the wire form back into an Interval.
func ParseInterval(s string) (Interval, error) {
	switch s {
	case "day":
		return IntervalDay, nil
	case "week":
		return IntervalWeek, nil
	case "month":
		return IntervalMonth, nil
	case "year":
		return IntervalYear, nil
	}
	return 0, fmt.Errorf("%w: unknown recurrence interval %q", ErrInvalidArgument, s)
}

// LastDayOfMonth is the DayOfMonth sentinel for "the last day, whatever the month length".
const LastDayOfMonth = -1

// Rule is the structured form of a recurrence phrase. It is a value: build a new one
// instead of mutating a rule that has been handed out.
type Rule struct {
	OriginalText string
	Type         Type
	Interval     Interval
	// Count is the interval multiplier, always >= 1.
	Count int
	// Days holds weekdays (0=Sunday) for weekly rules that name specific days, sorted ascending.
	Days []int
	// DayOfMonth is 1..31, LastDayOfMonth, or 0 when unset.
	DayOfMonth int
	// MonthOfYear is 1..12, or 0 when unset.
	MonthOfYear time.Month
	// Time is "HH:MM", or "" when unset.
	Time string
	// EndDate is the inclusive last occurrence date at UTC midnight; zero when unset.
	EndDate time.Time
}

// HasEndDate reports whether the rule stops after EndDate.
func (r Rule) HasEndDate() bool { return !r.EndDate.IsZero() }

// IsRelative reports whether the rule advances from the completion timestamp.
func (r Rule) IsRelative() bool { return r.Type == TypeRelative }
