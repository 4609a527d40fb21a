package recurrence

import (
	"regexp"

	"todo-me/pkg/datemath"
)

const (
	everyKeyword    = "every"
	relativeKeyword = "every!"
	ordinalSuffix   = `(?:st|nd|rd|th)`
)

var (
	reWhitespace = regexp.MustCompile(`\s+`)
	reEveryOther = regexp.MustCompile(`\bevery other\b`)

	reUntil    = regexp.MustCompile(`\s*\buntil\s+(.+)$`)
	reTimeWord = regexp.MustCompile(`\s*\b(?:at\s+)?(noon|midnight)\b`)
	reTimeAt   = regexp.MustCompile(`\s*\bat\s+(\d{1,2})(?::(\d{2}))?\s*(am|pm)?\b`)

	reUntilISO      = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
	reUntilMonthDay = regexp.MustCompile(`^(` + datemath.MonthPattern + `)\.? (\d{1,2})` + ordinalSuffix + `?(?:,?\s*(\d{4}))?$`)
	reUntilDayMonth = regexp.MustCompile(`^(\d{1,2})` + ordinalSuffix + `? (?:of )?(` + datemath.MonthPattern + `)\.?(?:,?\s*(\d{4}))?$`)

	reNthDay       = regexp.MustCompile(`^(\d{1,2})` + ordinalSuffix + `(?: of (?:the |each |every )?month)?$`)
	reLastDay      = regexp.MustCompile(`^last day(?: of (?:the |each |every )?month)?$`)
	reMonthOnThe   = regexp.MustCompile(`^(?:(\d+) )?months? on the (?:(\d{1,2})` + ordinalSuffix + `?|(last day))$`)
	reMonthDay     = regexp.MustCompile(`^(` + datemath.MonthPattern + `) (\d{1,2})` + ordinalSuffix + `?$`)
	reDayOfMonth   = regexp.MustCompile(`^(\d{1,2})` + ordinalSuffix + `? of (` + datemath.MonthPattern + `)$`)
	reCountUnit    = regexp.MustCompile(`^(\d+) (day|week|month|year)s?$`)
	reUnit         = regexp.MustCompile(`^(day|week|month|year)s?$`)
	reCountWeeksOn = regexp.MustCompile(`^(\d+) weeks? on (.+)$`)
	reWeeksOn      = regexp.MustCompile(`^weeks? on (.+)$`)
	reDaySeparator = regexp.MustCompile(`\s*,\s*(?:and\s+)?|\s+and\s+|\s+`)
)

// untilFallbackLayouts are tried, case-insensitively, when none of the named until formats match.
var untilFallbackLayouts = []string{
	"1/2/2006",
	"2006/1/2",
	"January 2 2006",
	"Jan 2 2006",
	"2 January 2006",
	"2 Jan 2006",
	"2006-01-02T15:04:05Z07:00",
}

type shortcut struct {
	interval Interval
	count    int
	days     []int
}

var shortcuts = map[string]shortcut{
	"daily":     {interval: IntervalDay, count: 1},
	"weekly":    {interval: IntervalWeek, count: 1},
	"biweekly":  {interval: IntervalWeek, count: 2},
	"monthly":   {interval: IntervalMonth, count: 1},
	"quarterly": {interval: IntervalMonth, count: 3},
	"yearly":    {interval: IntervalYear, count: 1},
	"annually":  {interval: IntervalYear, count: 1},
	"weekday":   {interval: IntervalWeek, count: 1, days: []int{1, 2, 3, 4, 5}},
	"weekdays":  {interval: IntervalWeek, count: 1, days: []int{1, 2, 3, 4, 5}},
	"weekend":   {interval: IntervalWeek, count: 1, days: []int{0, 6}},
	"weekends":  {interval: IntervalWeek, count: 1, days: []int{0, 6}},
}

var units = map[string]Interval{
	"day":   IntervalDay,
	"week":  IntervalWeek,
	"month": IntervalMonth,
	"year":  IntervalYear,
}
