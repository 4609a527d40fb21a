package quickadd

import "errors"

var (
	ErrEmptyInput     = errors.New("text must not be empty")
	ErrInvalidOptions = errors.New("invalid parser options")
)
