package http

import (
	"time"

	"todo-me/internal/recurrence"
	pkgRecurrence "todo-me/pkg/recurrence"
	"todo-me/pkg/response"
)

// --- Request DTOs ---

type parseReq struct {
	Text     string     `json:"text"     binding:"required"`
	Timezone string     `json:"timezone"`
	Now      *time.Time `json:"now"`
}

func (r parseReq) toInput() recurrence.ParseRuleInput {
	return recurrence.ParseRuleInput{
		Text:     r.Text,
		Timezone: r.Timezone,
		Now:      timeOrZero(r.Now),
	}
}

type nextReq struct {
	// Rule is a stored rule in its persisted shape; it wins over Text.
	Rule        map[string]any `json:"rule" swaggertype:"object"`
	Text        string         `json:"text"`
	DueDate     *time.Time     `json:"due_date"`
	CompletedAt *time.Time     `json:"completed_at"`
	Timezone    string         `json:"timezone"`
	Now         *time.Time     `json:"now"`
}

func (r nextReq) toInput(rule *pkgRecurrence.Rule) recurrence.NextInput {
	return recurrence.NextInput{
		Rule:        rule,
		Text:        r.Text,
		DueDate:     timeOrZero(r.DueDate),
		CompletedAt: timeOrZero(r.CompletedAt),
		Timezone:    r.Timezone,
		Now:         timeOrZero(r.Now),
	}
}

func timeOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

// --- Response DTOs ---

type parseResp struct {
	Rule     map[string]any `json:"rule" swaggertype:"object"`
	Timezone string         `json:"timezone"`
}

func (h *handler) newParseResp(out recurrence.ParseRuleOutput) parseResp {
	return parseResp{
		Rule:     out.Rule.ToMap(),
		Timezone: out.Timezone,
	}
}

type nextResp struct {
	Rule         map[string]any     `json:"rule" swaggertype:"object"`
	Reference    *response.DateTime `json:"reference"`
	Next         *response.DateTime `json:"next"`
	NextDate     *response.Date     `json:"next_date"`
	ShouldCreate bool               `json:"should_create"`
	Timezone     string             `json:"timezone"`
}

func (h *handler) newNextResp(out recurrence.NextOutput) nextResp {
	return nextResp{
		Rule:         out.Rule.ToMap(),
		Reference:    response.NewDateTime(out.Reference),
		Next:         response.NewDateTime(out.Next),
		NextDate:     response.NewDate(out.Next),
		ShouldCreate: out.ShouldCreate,
		Timezone:     out.Timezone,
	}
}
