package http

import (
	"strings"

	"todo-me/internal/model"
	"todo-me/internal/project"
	pkgErrors "todo-me/pkg/errors"
	"todo-me/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Name        string `json:"name"        binding:"required"`
	Description string `json:"description" binding:"max=1000"`
	Color       string `json:"color"       binding:"max=32"`
	ParentID    string `json:"parent_id"`
}

func (r createReq) validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return pkgErrors.NewValidationError("name must not be blank")
	}
	return nil
}

func (r createReq) toInput() project.CreateInput {
	return project.CreateInput{
		Name:        r.Name,
		Description: r.Description,
		Color:       r.Color,
		ParentID:    strings.TrimSpace(r.ParentID),
	}
}

type listReq struct {
	IncludeArchived bool `form:"include_archived"`
}

func (r listReq) toInput() project.ListInput {
	return project.ListInput{IncludeArchived: r.IncludeArchived}
}

// --- Response DTOs ---

type projectResp struct {
	ID          string             `json:"id"`
	ParentID    *string            `json:"parent_id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Color       string             `json:"color"`
	Archived    bool               `json:"archived"`
	CreatedAt   *response.DateTime `json:"created_at"`
	UpdatedAt   *response.DateTime `json:"updated_at"`
}

func newProjectResp(p model.Project) projectResp {
	resp := projectResp{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Color:       p.Color,
		Archived:    p.Archived,
		CreatedAt:   response.NewDateTime(p.CreatedAt),
		UpdatedAt:   response.NewDateTime(p.UpdatedAt),
	}
	if !p.IsRoot() {
		parentID := p.ParentID
		resp.ParentID = &parentID
	}
	return resp
}

type createResp struct {
	Project projectResp `json:"project"`
}

func (h *handler) newCreateResp(out project.CreateOutput) createResp {
	return createResp{Project: newProjectResp(out.Project)}
}

type listResp struct {
	Projects []projectResp `json:"projects"`
}

func (h *handler) newListResp(out project.ListOutput) listResp {
	projects := make([]projectResp, len(out.Projects))
	for i, p := range out.Projects {
		projects[i] = newProjectResp(p)
	}
	return listResp{Projects: projects}
}

type detailResp struct {
	Project projectResp `json:"project"`
	Path    []string    `json:"path"`
}

func (h *handler) newDetailResp(out project.DetailOutput) detailResp {
	return detailResp{
		Project: newProjectResp(out.Project),
		Path:    out.Path,
	}
}
