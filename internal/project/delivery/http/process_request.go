package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	pkgErrors "todo-me/pkg/errors"
)

func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewBadRequestError(err.Error())
	}
	return req, req.validate()
}

func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, pkgErrors.NewBadRequestError(err.Error())
	}
	return req, nil
}

func (h *handler) processDetailReq(c *gin.Context) (string, error) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return "", pkgErrors.NewBadRequestError("id is required")
	}
	return id, nil
}
