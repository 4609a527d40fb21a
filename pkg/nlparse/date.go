package nlparse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"todo-me/pkg/datemath"
)

// DateParser finds the first date expression in free text. Its options are fixed at
// construction, so one instance may serve concurrent callers.
type DateParser struct {
	location    *time.Location
	startOfWeek time.Weekday
	format      DateFormat
}

// NewDateParser validates opts and creates a DateParser.
func NewDateParser(opts DateOptions) (*DateParser, error) {
	loc, err := datemath.LoadLocation(opts.Timezone)
	if err != nil {
		return nil, err
	}
	if opts.StartOfWeek < 0 || opts.StartOfWeek > 6 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidStartOfWeek, opts.StartOfWeek)
	}
	format := DateFormat(strings.ToUpper(string(opts.Format)))
	switch format {
	case "":
		format = FormatMDY
	case FormatMDY, FormatDMY, FormatYMD:
	default:
		return nil, fmt.Errorf("%w: got %q", ErrInvalidDateFormat, opts.Format)
	}
	return &DateParser{location: loc, startOfWeek: time.Weekday(opts.StartOfWeek), format: format}, nil
}

// Location returns the timezone dates are resolved in.
func (p *DateParser) Location() *time.Location {
	return p.location
}

type dateMatch struct {
	date  time.Time
	start int
	end   int
}

// recognizer returns the leftmost valid match of one date form. today is midnight in
// the parser's location.
type recognizer func(p *DateParser, text string, today time.Time) (dateMatch, bool)

// Every recognizer scans the whole input. The earliest start wins; on a tie the
// recognizer listed first wins.
var recognizers = []recognizer{
	(*DateParser).matchRelativeWord,
	(*DateParser).matchDayOffset,
	(*DateParser).matchWeekdayName,
	(*DateParser).matchMonthDay,
	(*DateParser).matchISODate,
	(*DateParser).matchNumericDate,
}

// Parse returns the earliest date expression in text, or nil when there is none.
// now is read in the parser's timezone.
func (p *DateParser) Parse(text string, now time.Time) *DateResult {
	today := datemath.StartOfDay(now.In(p.location))

	var best dateMatch
	found := false
	for _, recognize := range recognizers {
		m, ok := recognize(p, text, today)
		if ok && (!found || m.start < best.start) {
			best, found = m, true
		}
	}
	if !found {
		return nil
	}

	res := &DateResult{Date: best.date, Start: best.start, End: best.end}
	if hour, minute, length, ok := matchTimeSuffix(text[best.end:]); ok {
		res.Date = datemath.WithClock(best.date, hour, minute)
		res.Time = datemath.FormatHHMM(hour, minute)
		res.HasTime = true
		res.End += length
	}
	res.OriginalText = text[res.Start:res.End]
	return res
}

func (p *DateParser) matchRelativeWord(text string, today time.Time) (dateMatch, bool) {
	loc := reRelativeWord.FindStringSubmatchIndex(text)
	if loc == nil {
		return dateMatch{}, false
	}
	offset := 0
	switch strings.ToLower(submatch(text, loc, 1)) {
	case "tomorrow":
		offset = 1
	case "yesterday":
		offset = -1
	}
	return dateMatch{date: today.AddDate(0, 0, offset), start: loc[0], end: loc[1]}, true
}

func (p *DateParser) matchDayOffset(text string, today time.Time) (dateMatch, bool) {
	loc := reDayOffset.FindStringSubmatchIndex(text)
	if loc == nil {
		return dateMatch{}, false
	}
	m := dateMatch{start: loc[0], end: loc[1]}

	if next := submatch(text, loc, 3); next != "" {
		// "next week" is the first day of the coming week, "next month" the 1st.
		if strings.EqualFold(next, "week") {
			sinceStart := (int(today.Weekday()) - int(p.startOfWeek) + 7) % 7
			m.date = today.AddDate(0, 0, 7-sinceStart)
		} else {
			m.date = addMonths(today, 1, 1)
		}
		return m, true
	}

	amount := 1
	if n, err := strconv.Atoi(submatch(text, loc, 1)); err == nil {
		amount = n
	}
	switch strings.ToLower(submatch(text, loc, 2)) {
	case "day":
		m.date = today.AddDate(0, 0, amount)
	case "week":
		m.date = today.AddDate(0, 0, 7*amount)
	default:
		m.date = addMonths(today, amount, today.Day())
	}
	return m, true
}

func (p *DateParser) matchWeekdayName(text string, today time.Time) (dateMatch, bool) {
	loc := reWeekdayName.FindStringSubmatchIndex(text)
	if loc == nil {
		return dateMatch{}, false
	}
	target, _ := datemath.Weekday(submatch(text, loc, 2))
	daysUntil := (int(target) - int(today.Weekday()) + 7) % 7
	// Only "this <weekday>" may resolve to today.
	if daysUntil == 0 && !strings.EqualFold(submatch(text, loc, 1), "this") {
		daysUntil = 7
	}
	return dateMatch{date: today.AddDate(0, 0, daysUntil), start: loc[0], end: loc[1]}, true
}

func (p *DateParser) matchMonthDay(text string, today time.Time) (dateMatch, bool) {
	best, found := dateMatch{}, false
	consider := func(m dateMatch) {
		if !found || m.start < best.start {
			best, found = m, true
		}
	}

	for _, loc := range reMonthDay.FindAllStringSubmatchIndex(text, -1) {
		if m, ok := p.namedMonthMatch(text, loc, 1, 2, 3, today); ok {
			consider(m)
			break
		}
	}
	for _, loc := range reDayMonth.FindAllStringSubmatchIndex(text, -1) {
		if m, ok := p.namedMonthMatch(text, loc, 2, 1, 3, today); ok {
			consider(m)
			break
		}
	}
	return best, found
}

// namedMonthMatch builds a match from the month, day and optional year submatch groups.
func (p *DateParser) namedMonthMatch(text string, loc []int, monthGroup, dayGroup, yearGroup int, today time.Time) (dateMatch, bool) {
	month, _ := datemath.Month(submatch(text, loc, monthGroup))
	day, _ := strconv.Atoi(submatch(text, loc, dayGroup))

	var date time.Time
	var ok bool
	if yearStr := submatch(text, loc, yearGroup); yearStr != "" {
		year, _ := strconv.Atoi(yearStr)
		date, ok = p.buildDate(year, month, day)
	} else {
		date, ok = p.inferYear(month, day, today)
	}
	if !ok {
		return dateMatch{}, false
	}
	return dateMatch{date: date, start: loc[0], end: loc[1]}, true
}

func (p *DateParser) matchISODate(text string, today time.Time) (dateMatch, bool) {
	for _, loc := range reISODate.FindAllStringSubmatchIndex(text, -1) {
		year, _ := strconv.Atoi(submatch(text, loc, 1))
		month, _ := strconv.Atoi(submatch(text, loc, 2))
		day, _ := strconv.Atoi(submatch(text, loc, 3))
		if date, ok := p.buildDate(year, time.Month(month), day); ok {
			return dateMatch{date: date, start: loc[0], end: loc[1]}, true
		}
	}
	return dateMatch{}, false
}

func (p *DateParser) matchNumericDate(text string, today time.Time) (dateMatch, bool) {
	best, found := dateMatch{}, false
	for _, re := range []*regexp.Regexp{reSlashDate, reDashDate} {
		for _, loc := range re.FindAllStringSubmatchIndex(text, -1) {
			parts := []string{submatch(text, loc, 1), submatch(text, loc, 2), submatch(text, loc, 3)}
			date, ok := p.numericDate(parts, today)
			if !ok {
				continue
			}
			if !found || loc[0] < best.start {
				best, found = dateMatch{date: date, start: loc[0], end: loc[1]}, true
			}
			break
		}
	}
	return best, found
}

// numericDate interprets two or three numeric parts in the configured order.
func (p *DateParser) numericDate(parts []string, today time.Time) (time.Time, bool) {
	if parts[2] == "" {
		first, second := parts[0], parts[1]
		if len(first) > 2 {
			return time.Time{}, false
		}
		a, _ := strconv.Atoi(first)
		b, _ := strconv.Atoi(second)
		if p.format == FormatDMY {
			return p.inferYear(time.Month(b), a, today)
		}
		return p.inferYear(time.Month(a), b, today)
	}

	var yearStr, monthStr, dayStr string
	switch p.format {
	case FormatDMY:
		dayStr, monthStr, yearStr = parts[0], parts[1], parts[2]
	case FormatYMD:
		yearStr, monthStr, dayStr = parts[0], parts[1], parts[2]
	default:
		monthStr, dayStr, yearStr = parts[0], parts[1], parts[2]
	}
	if len(dayStr) > 2 || len(monthStr) > 2 || (len(yearStr) != 2 && len(yearStr) != 4) {
		return time.Time{}, false
	}
	year, _ := strconv.Atoi(yearStr)
	if len(yearStr) == 2 {
		year += 2000
	}
	month, _ := strconv.Atoi(monthStr)
	day, _ := strconv.Atoi(dayStr)
	return p.buildDate(year, time.Month(month), day)
}

// inferYear picks the first year from the current one whose date is after today.
// Dates on or before today roll forward.
func (p *DateParser) inferYear(month time.Month, day int, today time.Time) (time.Time, bool) {
	for year := today.Year(); year <= today.Year()+4; year++ {
		date, ok := p.buildDate(year, month, day)
		if ok && date.After(today) {
			return date, true
		}
	}
	return time.Time{}, false
}

func (p *DateParser) buildDate(year int, month time.Month, day int) (time.Time, bool) {
	if month < time.January || month > time.December || day < 1 || day > datemath.DaysIn(year, month) {
		return time.Time{}, false
	}
	return time.Date(year, month, day, 0, 0, 0, 0, p.location), true
}

// matchTimeSuffix reads a time phrase at the start of rest and returns its length.
func matchTimeSuffix(rest string) (int, int, int, bool) {
	loc := reTimeSuffix.FindStringSubmatchIndex(rest)
	if loc == nil {
		return 0, 0, 0, false
	}
	hourStr, minuteStr, meridiem := submatch(rest, loc, 1), submatch(rest, loc, 2), submatch(rest, loc, 3)
	if hourStr == "" {
		hourStr, minuteStr, meridiem = submatch(rest, loc, 4), submatch(rest, loc, 5), submatch(rest, loc, 6)
	}
	hour, minute, ok := datemath.ParseClockParts(hourStr, minuteStr, meridiem)
	if !ok {
		return 0, 0, 0, false
	}
	return hour, minute, loc[1], true
}

// addMonths moves count months from the 1st of t's month, then clamps day to the target month.
func addMonths(t time.Time, count, day int) time.Time {
	first := time.Date(t.Year(), t.Month()+time.Month(count), 1, 0, 0, 0, 0, t.Location())
	return time.Date(first.Year(), first.Month(), min(day, datemath.DaysIn(first.Year(), first.Month())), 0, 0, 0, 0, t.Location())
}

// submatch returns group i of a FindStringSubmatchIndex result, or "" when it did not take part.
func submatch(text string, loc []int, i int) string {
	if 2*i+1 >= len(loc) || loc[2*i] < 0 {
		return ""
	}
	return text[loc[2*i]:loc[2*i+1]]
}
