package project

import "errors"

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrParentNotFound  = errors.New("parent project not found")
	ErrDuplicateName   = errors.New("project name already exists under this parent")
	ErrInvalidName     = errors.New("project name must be non-empty and contain no '/' or '#'")
)
