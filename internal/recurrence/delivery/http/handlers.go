package http

import (
	"github.com/gin-gonic/gin"

	"todo-me/internal/model"
	"todo-me/pkg/response"
)

// Parse godoc
// @Summary     Parse a recurrence phrase
// @Description Turns phrases such as "every 2 weeks on mon, fri at 3pm until dec 31" or "every! 3 days" into a rule.
// @Tags        Recurrence
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string   false "Acting user (default: default)"
// @Param       body      body   parseReq true  "Phrase to parse"
// @Success     200 {object} parseResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     422 {object} response.Resp "INVALID_RECURRENCE with reason and fragment details"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/recurrence/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()
	sc := model.GetScopeFromContext(ctx)

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ParseRule(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.ParseRule: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newParseResp(output))
}

// Next godoc
// @Summary     Compute the next occurrence
// @Description Advances a rule from the due date (absolute rules) or the completion time (relative rules)
// @Description and reports whether the occurrence is still within the rule's end date.
// @Tags        Recurrence
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string  false "Acting user (default: default)"
// @Param       body      body   nextReq true  "Rule or phrase plus reference dates"
// @Success     200 {object} nextResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     422 {object} response.Resp "Invalid rule, phrase or timezone"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/recurrence/next [POST]
func (h *handler) Next(c *gin.Context) {
	ctx := c.Request.Context()
	sc := model.GetScopeFromContext(ctx)

	req, rule, err := h.processNextReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Next(ctx, sc, req.toInput(rule))
	if err != nil {
		h.l.Warnf(ctx, "uc.Next: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newNextResp(output))
}
