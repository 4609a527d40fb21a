package nlparse

import "errors"

var (
	ErrInvalidStartOfWeek = errors.New("start of week must be between 0 and 6")
	ErrInvalidDateFormat  = errors.New("date format must be one of MDY, DMY, YMD")
)
