package recurrence

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRecurrence matches every *InvalidRecurrenceError.
	ErrInvalidRecurrence = errors.New("invalid recurrence")
	// ErrInvalidArgument marks corrupted persisted rules or caller bugs.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Reason classifies why a phrase was rejected.
type Reason string

const (
	ReasonEmpty          Reason = "empty"
	ReasonInvalidPattern Reason = "invalid_pattern"
	ReasonInvalidDate    Reason = "invalid_date"
	ReasonUnsupported    Reason = "unsupported"
)

// InvalidRecurrenceError carries the offending fragment for display.
type InvalidRecurrenceError struct {
	Reason   Reason
	Fragment string
}

func (e *InvalidRecurrenceError) Error() string {
	switch e.Reason {
	case ReasonEmpty:
		return "recurrence rule is empty"
	case ReasonInvalidDate:
		return fmt.Sprintf("invalid date in recurrence rule: %q", e.Fragment)
	case ReasonUnsupported:
		return fmt.Sprintf("unsupported recurrence pattern: %q", e.Fragment)
	default:
		return fmt.Sprintf("invalid recurrence pattern: %q", e.Fragment)
	}
}

func (e *InvalidRecurrenceError) Unwrap() error { return ErrInvalidRecurrence }

func newInvalid(reason Reason, fragment string) error {
	return &InvalidRecurrenceError{Reason: reason, Fragment: fragment}
}
