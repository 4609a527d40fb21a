package nlparse

import (
	"regexp"

	"todo-me/pkg/datemath"
)

const ordinalSuffix = `(?:st|nd|rd|th)`

var (
	reRelativeWord = regexp.MustCompile(`(?i)\b(today|tomorrow|yesterday)\b`)
	reDayOffset    = regexp.MustCompile(`(?i)\b(?:in\s+(\d+|an?)\s+(day|week|month)s?|next\s+(week|month))\b`)
	reWeekdayName  = regexp.MustCompile(`(?i)\b(?:(next|this)\s+)?(` + datemath.FullWeekdayPattern + `)\b`)
	reMonthDay     = regexp.MustCompile(`(?i)\b(` + datemath.MonthPattern + `)\.?\s+(\d{1,2})` + ordinalSuffix + `?(?:,?\s+(\d{4}))?\b`)
	reDayMonth     = regexp.MustCompile(`(?i)\b(\d{1,2})` + ordinalSuffix + `?\s+(?:of\s+)?(` + datemath.MonthPattern + `)\b(?:,?\s+(\d{4})\b)?`)
	reISODate      = regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})\b`)
	reSlashDate    = regexp.MustCompile(`\b(\d{1,4})/(\d{1,2})(?:/(\d{1,4}))?\b`)
	reDashDate     = regexp.MustCompile(`\b(\d{1,4})-(\d{1,2})(?:-(\d{1,4}))?\b`)

	// reTimeSuffix must match right after a date: "at 5", "at 5:30pm" or "5pm".
	reTimeSuffix = regexp.MustCompile(`(?i)^\s+(?:at\s+(\d{1,2})(?::(\d{2}))?\s*(am|pm)?|(\d{1,2})(?::(\d{2}))?\s*(am|pm))\b`)

	rePriority = regexp.MustCompile(`(?i)\bp(\d+)\b`)
	reProject  = regexp.MustCompile(`(?:^|\s)(#[\p{L}\p{N}_-]+(?:/[\p{L}\p{N}_-]+)*)`)
)
