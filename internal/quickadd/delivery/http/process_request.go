package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "todo-me/pkg/errors"
)

func (h *handler) processParseReq(c *gin.Context) (parseReq, error) {
	var req parseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewBadRequestError(err.Error())
	}
	return req, nil
}
