package http

import (
	"errors"
	"net/http"

	"todo-me/internal/recurrence"
	pkgErrors "todo-me/pkg/errors"
	pkgRecurrence "todo-me/pkg/recurrence"
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	var invalid *pkgRecurrence.InvalidRecurrenceError
	switch {
	case errors.As(err, &invalid):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, pkgErrors.CodeInvalidRecurrence, invalid.Error()).
			WithDetails(map[string]string{
				"reason":   string(invalid.Reason),
				"fragment": invalid.Fragment,
			})
	case errors.Is(err, pkgRecurrence.ErrInvalidArgument),
		errors.Is(err, recurrence.ErrMissingRule),
		errors.Is(err, recurrence.ErrInvalidTimezone):
		return pkgErrors.NewValidationError(err.Error())
	default:
		return pkgErrors.ErrInternalServer
	}
}
