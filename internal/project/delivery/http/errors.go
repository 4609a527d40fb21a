package http

import (
	"errors"

	"todo-me/internal/project"
	pkgErrors "todo-me/pkg/errors"
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, project.ErrProjectNotFound):
		return pkgErrors.NewNotFoundError(err.Error())
	case errors.Is(err, project.ErrParentNotFound):
		return pkgErrors.NewValidationError(err.Error())
	case errors.Is(err, project.ErrInvalidName):
		return pkgErrors.NewValidationError(err.Error())
	case errors.Is(err, project.ErrDuplicateName):
		return pkgErrors.NewConflictError(err.Error())
	default:
		return pkgErrors.ErrInternalServer
	}
}
