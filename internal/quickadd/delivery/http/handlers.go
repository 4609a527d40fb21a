package http

import (
	"github.com/gin-gonic/gin"

	"todo-me/internal/model"
	"todo-me/pkg/response"
)

// Parse godoc
// @Summary     Parse a quick-add line
// @Description Extracts the due date, priority (p0..p4) and #project from free text without creating a task.
// @Description Recognized tokens are removed from the returned title.
// @Tags        Quick Add
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string   false "Acting user (default: default)"
// @Param       body      body   parseReq true  "Text and optional parser overrides"
// @Success     200 {object} parseResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     422 {object} response.Resp "Empty text or invalid parser options"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()
	sc := model.GetScopeFromContext(ctx)

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Parse(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Parse: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newParseResp(output))
}
