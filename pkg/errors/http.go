package errors

import (
	"fmt"
	"net/http"
)

// Error codes shared by every endpoint.
const (
	CodeBadRequest         = "BAD_REQUEST"
	CodeValidation         = "VALIDATION_ERROR"
	CodeNotFound           = "NOT_FOUND"
	CodeConflict           = "CONFLICT"
	CodeInvalidRecurrence  = "INVALID_RECURRENCE"
	CodeInternalServer     = "INTERNAL_ERROR"
	DefaultInternalMessage = "internal server error"
)

// HTTPError is an error that already knows its status code and wire code.
type HTTPError struct {
	StatusCode int
	Code       string
	Message    string
	Details    any
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewHTTPError creates an HTTPError.
func NewHTTPError(statusCode int, code, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Code: code, Message: message}
}

// WithDetails returns a copy of e carrying details.
func (e *HTTPError) WithDetails(details any) *HTTPError {
	cp := *e
	cp.Details = details
	return &cp
}

// NewBadRequestError is a 400 with CodeBadRequest.
func NewBadRequestError(message string) *HTTPError {
	return NewHTTPError(http.StatusBadRequest, CodeBadRequest, message)
}

// NewValidationError is a 422 with CodeValidation.
func NewValidationError(message string) *HTTPError {
	return NewHTTPError(http.StatusUnprocessableEntity, CodeValidation, message)
}

// NewNotFoundError is a 404 with CodeNotFound.
func NewNotFoundError(message string) *HTTPError {
	return NewHTTPError(http.StatusNotFound, CodeNotFound, message)
}

// NewConflictError is a 409 with CodeConflict.
func NewConflictError(message string) *HTTPError {
	return NewHTTPError(http.StatusConflict, CodeConflict, message)
}

// ErrInternalServer is returned for anything a handler does not map explicitly.
var ErrInternalServer = NewHTTPError(http.StatusInternalServerError, CodeInternalServer, DefaultInternalMessage)
