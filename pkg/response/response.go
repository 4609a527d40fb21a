package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "todo-me/pkg/errors"
)

// NewOKResp wraps data in a successful envelope.
func NewOKResp(data any) Resp {
	return Resp{Success: true, Data: data}
}

// NewErrorResp builds the failure envelope for err. Errors that are not
// *pkgErrors.HTTPError become a generic internal error.
func NewErrorResp(err error) (int, Resp) {
	var httpErr *pkgErrors.HTTPError
	if !errors.As(err, &httpErr) {
		httpErr = pkgErrors.ErrInternalServer
	}
	return httpErr.StatusCode, Resp{
		Success: false,
		Error: &ErrorBody{
			Code:    httpErr.Code,
			Message: httpErr.Message,
			Details: httpErr.Details,
		},
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Created sends 201 JSON with data.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, NewOKResp(data))
}

// Error sends the failure envelope for err and aborts the handler chain.
func Error(c *gin.Context, err error) {
	status, resp := NewErrorResp(err)
	c.AbortWithStatusJSON(status, resp)
}

// InternalError sends 500 without leaking err to the client.
func InternalError(c *gin.Context, err error) {
	Error(c, pkgErrors.ErrInternalServer)
}
