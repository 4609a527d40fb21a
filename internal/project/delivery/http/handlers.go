package http

import (
	"github.com/gin-gonic/gin"

	"todo-me/internal/model"
	"todo-me/pkg/response"
)

// Create godoc
// @Summary     Create a project
// @Description Creates a root project, or a child project when parent_id is set. Names are unique per parent, ignoring case.
// @Tags        Projects
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string    false "Acting user (default: default)"
// @Param       body      body   createReq true  "Project data"
// @Success     201 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Conflict - name already exists"
// @Failure     422 {object} response.Resp "Invalid name or unknown parent"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/projects [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	sc := model.GetScopeFromContext(ctx)

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, h.newCreateResp(output))
}

// List godoc
// @Summary     List projects
// @Description Returns the acting user's projects ordered by name.
// @Tags        Projects
// @Produce     json
// @Param       X-User-ID        header string false "Acting user (default: default)"
// @Param       include_archived query  bool   false "Include archived projects"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/projects [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	sc := model.GetScopeFromContext(ctx)

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get project detail
// @Description Returns one project together with its path from the root project.
// @Tags        Projects
// @Produce     json
// @Param       X-User-ID header string false "Acting user (default: default)"
// @Param       id        path   string true  "Project ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/projects/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()
	sc := model.GetScopeFromContext(ctx)

	id, err := h.processDetailReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Detail(ctx, sc, id)
	if err != nil {
		h.l.Warnf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(output))
}
