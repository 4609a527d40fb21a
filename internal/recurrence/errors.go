package recurrence

import "errors"

var (
	ErrMissingRule     = errors.New("either rule or text is required")
	ErrInvalidTimezone = errors.New("invalid timezone")
)
