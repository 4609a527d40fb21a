package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "todo-me/pkg/errors"
	pkgRecurrence "todo-me/pkg/recurrence"
)

func (h *handler) processParseReq(c *gin.Context) (parseReq, error) {
	var req parseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewBadRequestError(err.Error())
	}
	return req, nil
}

// processNextReq also decodes the optional stored rule so a corrupted rule is a 422, not a 400.
func (h *handler) processNextReq(c *gin.Context) (nextReq, *pkgRecurrence.Rule, error) {
	var req nextReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, nil, pkgErrors.NewBadRequestError(err.Error())
	}
	if req.Rule == nil {
		return req, nil, nil
	}
	rule, err := pkgRecurrence.RuleFromMap(req.Rule)
	if err != nil {
		return req, nil, pkgErrors.NewValidationError(err.Error())
	}
	return req, &rule, nil
}
