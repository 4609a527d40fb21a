package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"todo-me/internal/model"
	"todo-me/internal/quickadd"
	"todo-me/pkg/nlparse"
)

// Parse runs the date, priority and project parsers over the input and strips what they found.
func (uc *implUseCase) Parse(ctx context.Context, sc model.Scope, input quickadd.ParseInput) (quickadd.ParseOutput, error) {
	text := input.Text
	if strings.TrimSpace(text) == "" {
		return quickadd.ParseOutput{}, quickadd.ErrEmptyInput
	}

	opts := uc.dateOptions(input)
	dates, err := nlparse.NewDateParser(opts)
	if err != nil {
		return quickadd.ParseOutput{}, fmt.Errorf("%w: %v", quickadd.ErrInvalidOptions, err)
	}

	now := input.Now
	if now.IsZero() {
		now = uc.clock.Now()
	}

	out := quickadd.ParseOutput{Timezone: dates.Location().String()}
	var highlights []quickadd.Highlight

	if res := dates.Parse(text, now); res != nil {
		out.Date = res
		highlights = addHighlight(highlights, quickadd.KindDate, res.OriginalText, res.Start, res.End)
	}

	if res := uc.priority.Parse(text); res != nil {
		out.Priority = res
		highlights = addHighlight(highlights, quickadd.KindPriority, res.OriginalText, res.Start, res.End)
		if !res.Valid {
			out.Warnings = append(out.Warnings, quickadd.WarningInvalidPriority)
		}
	}

	res, err := uc.project.Parse(ctx, sc.UserID, text)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Parse project lookup: %v", err)
		return quickadd.ParseOutput{}, err
	}
	if res != nil {
		out.Project = res
		highlights = addHighlight(highlights, quickadd.KindProject, res.OriginalText, res.Start, res.End)
		if !res.Found {
			out.Warnings = append(out.Warnings, quickadd.WarningUnknownProject)
		}
	}

	sort.Slice(highlights, func(i, j int) bool { return highlights[i].Start < highlights[j].Start })
	out.Highlights = highlights
	out.Title = stripSpans(text, highlights)

	uc.l.Debugf(ctx, "quick add parsed %d tokens for user %s", len(highlights), sc.UserID)
	return out, nil
}

func (uc *implUseCase) dateOptions(input quickadd.ParseInput) nlparse.DateOptions {
	opts := nlparse.DateOptions{
		Timezone:    uc.defaults.Timezone,
		StartOfWeek: uc.defaults.StartOfWeek,
		Format:      uc.defaults.DateFormat,
	}
	if input.Timezone != "" {
		opts.Timezone = input.Timezone
	}
	if input.StartOfWeek != nil {
		opts.StartOfWeek = *input.StartOfWeek
	}
	if input.DateFormat != "" {
		opts.Format = input.DateFormat
	}
	return opts
}

// addHighlight appends a span unless it overlaps one already accepted.
func addHighlight(hs []quickadd.Highlight, kind, text string, start, end int) []quickadd.Highlight {
	for _, h := range hs {
		if start < h.End && h.Start < end {
			return hs
		}
	}
	return append(hs, quickadd.Highlight{Kind: kind, Text: text, Start: start, End: end})
}

// stripSpans removes spans (sorted by Start, non-overlapping) right to left and collapses whitespace.
func stripSpans(text string, spans []quickadd.Highlight) string {
	for i := len(spans) - 1; i >= 0; i-- {
		text = text[:spans[i].Start] + " " + text[spans[i].End:]
	}
	return strings.Join(strings.Fields(text), " ")
}
