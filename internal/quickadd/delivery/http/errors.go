package http

import (
	"errors"

	"todo-me/internal/quickadd"
	pkgErrors "todo-me/pkg/errors"
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, quickadd.ErrEmptyInput):
		return pkgErrors.NewValidationError(err.Error())
	case errors.Is(err, quickadd.ErrInvalidOptions):
		return pkgErrors.NewValidationError(err.Error())
	default:
		return pkgErrors.ErrInternalServer
	}
}
