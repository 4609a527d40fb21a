package nlparse

import "strconv"

// PriorityParser finds "pN" priority tokens.
type PriorityParser struct{}

// NewPriorityParser creates a PriorityParser.
func NewPriorityParser() *PriorityParser {
	return &PriorityParser{}
}

// Parse returns the first pN token in text, or nil when there is none.
// Values above MaxPriority are returned with Valid=false.
func (p *PriorityParser) Parse(text string) *PriorityResult {
	loc := rePriority.FindStringSubmatchIndex(text)
	if loc == nil {
		return nil
	}
	n, err := strconv.Atoi(submatch(text, loc, 1))
	if err != nil {
		// Too many digits for an int; certainly out of range.
		n = -1
	}
	return &PriorityResult{
		Priority:     n,
		Valid:        err == nil && n <= MaxPriority,
		OriginalText: text[loc[0]:loc[1]],
		Start:        loc[0],
		End:          loc[1],
	}
}
