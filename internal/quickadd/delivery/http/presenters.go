package http

import (
	"time"

	"todo-me/internal/quickadd"
	"todo-me/pkg/nlparse"
	"todo-me/pkg/response"
)

// --- Request DTOs ---

type parseReq struct {
	Text        string     `json:"text"          binding:"required"`
	Timezone    string     `json:"timezone"`
	StartOfWeek *int       `json:"start_of_week"`
	DateFormat  string     `json:"date_format"`
	Now         *time.Time `json:"now"`
}

func (r parseReq) toInput() quickadd.ParseInput {
	input := quickadd.ParseInput{
		Text:        r.Text,
		Timezone:    r.Timezone,
		StartOfWeek: r.StartOfWeek,
		DateFormat:  nlparse.DateFormat(r.DateFormat),
	}
	if r.Now != nil {
		input.Now = *r.Now
	}
	return input
}

// --- Response DTOs ---

type dateResp struct {
	Date     *response.Date     `json:"date"`
	DateTime *response.DateTime `json:"datetime"`
	Time     *string            `json:"time"`
	HasTime  bool               `json:"has_time"`
	Text     string             `json:"text"`
	Start    int                `json:"start"`
	End      int                `json:"end"`
}

func newDateResp(r *nlparse.DateResult) *dateResp {
	if r == nil {
		return nil
	}
	resp := &dateResp{
		Date:    response.NewDate(r.Date),
		HasTime: r.HasTime,
		Text:    r.OriginalText,
		Start:   r.Start,
		End:     r.End,
	}
	if r.HasTime {
		t := r.Time
		resp.Time = &t
		resp.DateTime = response.NewDateTime(r.Date)
	}
	return resp
}

type priorityResp struct {
	Value int    `json:"value"`
	Valid bool   `json:"valid"`
	Text  string `json:"text"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

func newPriorityResp(r *nlparse.PriorityResult) *priorityResp {
	if r == nil {
		return nil
	}
	return &priorityResp{Value: r.Priority, Valid: r.Valid, Text: r.OriginalText, Start: r.Start, End: r.End}
}

type projectResp struct {
	Found bool     `json:"found"`
	ID    *string  `json:"id"`
	Name  string   `json:"name"`
	Path  []string `json:"path"`
	Text  string   `json:"text"`
	Start int      `json:"start"`
	End   int      `json:"end"`
}

func newProjectResp(r *nlparse.ProjectResult) *projectResp {
	if r == nil {
		return nil
	}
	resp := &projectResp{
		Found: r.Found,
		Name:  r.Name(),
		Path:  r.Path,
		Text:  r.OriginalText,
		Start: r.Start,
		End:   r.End,
	}
	if r.Found {
		id := r.Project.ID
		resp.ID = &id
		resp.Name = r.Project.Name
	}
	return resp
}

type highlightResp struct {
	Kind  string `json:"kind"`
	Text  string `json:"text"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

type parseResp struct {
	Title      string          `json:"title"`
	Timezone   string          `json:"timezone"`
	Date       *dateResp       `json:"date"`
	Priority   *priorityResp   `json:"priority"`
	Project    *projectResp    `json:"project"`
	Highlights []highlightResp `json:"highlights"`
	Warnings   []string        `json:"warnings"`
}

func (h *handler) newParseResp(out quickadd.ParseOutput) parseResp {
	highlights := make([]highlightResp, len(out.Highlights))
	for i, hl := range out.Highlights {
		highlights[i] = highlightResp{Kind: hl.Kind, Text: hl.Text, Start: hl.Start, End: hl.End}
	}
	warnings := out.Warnings
	if warnings == nil {
		warnings = []string{}
	}
	return parseResp{
		Title:      out.Title,
		Timezone:   out.Timezone,
		Date:       newDateResp(out.Date),
		Priority:   newPriorityResp(out.Priority),
		Project:    newProjectResp(out.Project),
		Highlights: highlights,
		Warnings:   warnings,
	}
}
