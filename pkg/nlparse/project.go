package nlparse

import (
	"context"
	"fmt"
	"strings"
)

// ProjectParser finds "#project" and "#parent/child" tokens and resolves them through a ProjectLookup.
type ProjectParser struct {
	lookup ProjectLookup
}

// NewProjectParser creates a ProjectParser backed by lookup.
func NewProjectParser(lookup ProjectLookup) *ProjectParser {
	return &ProjectParser{lookup: lookup}
}

// Parse returns the first project token in text for userID, or nil when there is none.
// A token that does not resolve is still returned, with Found=false. Lookup failures are
// returned as errors.
func (p *ProjectParser) Parse(ctx context.Context, userID, text string) (*ProjectResult, error) {
	loc := reProject.FindStringSubmatchIndex(text)
	if loc == nil {
		return nil, nil
	}
	token := text[loc[2]:loc[3]]
	res := &ProjectResult{
		Path:         strings.Split(token[1:], "/"),
		OriginalText: token,
		Start:        loc[2],
		End:          loc[3],
	}

	var (
		project *Project
		err     error
	)
	if len(res.Path) == 1 {
		project, err = p.lookup.FindByNameInsensitive(ctx, userID, res.Path[0])
	} else {
		project, err = p.lookup.FindByPathInsensitive(ctx, userID, res.Path)
	}
	if err != nil {
		return nil, fmt.Errorf("resolve project %q: %w", token, err)
	}
	if project != nil {
		res.Found = true
		res.Project = project
	}
	return res, nil
}
