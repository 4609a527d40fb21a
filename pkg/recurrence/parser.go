package recurrence

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"todo-me/pkg/datemath"
)

// Parser turns recurrence phrases ("every 2 weeks on mon, fri at 3pm until dec 31") into Rules.
// It holds no state; one instance may serve concurrent callers.
type Parser struct{}

// NewParser creates a Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Normalize lowercases, trims and collapses whitespace, and rewrites "every other" to "every 2".
func Normalize(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = reWhitespace.ReplaceAllString(s, " ")
	return reEveryOther.ReplaceAllString(s, "every 2")
}

// Parse parses text into a Rule. now anchors year inference for "until" dates and is read
// in its own location. Failures are *InvalidRecurrenceError values.
func (p *Parser) Parse(text string, now time.Time) (Rule, error) {
	rule := Rule{OriginalText: text, Type: TypeAbsolute, Count: 1}

	s := Normalize(text)
	if s == "" {
		return Rule{}, newInvalid(ReasonEmpty, text)
	}

	if strings.HasPrefix(s, relativeKeyword) {
		rule.Type = TypeRelative
		s = everyKeyword + s[len(relativeKeyword):]
	}

	s, end, err := extractUntil(s, now)
	if err != nil {
		return Rule{}, err
	}
	rule.EndDate = end

	s, clock, err := extractTime(s)
	if err != nil {
		return Rule{}, err
	}
	rule.Time = clock

	s = strings.TrimSpace(reWhitespace.ReplaceAllString(s, " "))

	if sc, ok := shortcuts[s]; ok {
		return applyShortcut(rule, sc), nil
	}

	if s != everyKeyword && !strings.HasPrefix(s, everyKeyword+" ") {
		return Rule{}, newInvalid(ReasonInvalidPattern, text)
	}
	rest := strings.TrimSpace(strings.TrimPrefix(s, everyKeyword))
	if rest == "" {
		return Rule{}, newInvalid(ReasonInvalidPattern, text)
	}

	for _, stage := range patternStages {
		matched, next, err := stage(rest, rule)
		if err != nil {
			return Rule{}, err
		}
		if matched {
			return next, nil
		}
	}

	return Rule{}, newInvalid(ReasonInvalidPattern, text)
}

// patternStage tries one "every ..." form against the remainder. matched=false hands the
// remainder to the next stage untouched.
type patternStage func(rest string, rule Rule) (matched bool, next Rule, err error)

// Order matters: the day-of-month forms must run before the count/unit forms.
var patternStages = []patternStage{
	parseNthDay,
	parseLastDay,
	parseMonthOnThe,
	parseMonthDay,
	parseCountUnit,
	parseUnit,
	parseCountWeeksOn,
	parseWeeksOn,
	parseDayNames,
	parseShortcutRemainder,
}

func parseNthDay(rest string, rule Rule) (bool, Rule, error) {
	m := reNthDay.FindStringSubmatch(rest)
	if m == nil {
		return false, rule, nil
	}
	day, err := dayOfMonth(m[1])
	if err != nil {
		return false, rule, err
	}
	rule.Interval = IntervalMonth
	rule.DayOfMonth = day
	return true, rule, nil
}

func parseLastDay(rest string, rule Rule) (bool, Rule, error) {
	if !reLastDay.MatchString(rest) {
		return false, rule, nil
	}
	rule.Interval = IntervalMonth
	rule.DayOfMonth = LastDayOfMonth
	return true, rule, nil
}

func parseMonthOnThe(rest string, rule Rule) (bool, Rule, error) {
	m := reMonthOnThe.FindStringSubmatch(rest)
	if m == nil {
		return false, rule, nil
	}
	count, err := countOf(m[1], rest)
	if err != nil {
		return false, rule, err
	}
	rule.Interval = IntervalMonth
	rule.Count = count
	if m[3] != "" {
		rule.DayOfMonth = LastDayOfMonth
		return true, rule, nil
	}
	if rule.DayOfMonth, err = dayOfMonth(m[2]); err != nil {
		return false, rule, err
	}
	return true, rule, nil
}

func parseMonthDay(rest string, rule Rule) (bool, Rule, error) {
	var monthName, dayStr string
	if m := reMonthDay.FindStringSubmatch(rest); m != nil {
		monthName, dayStr = m[1], m[2]
	} else if m := reDayOfMonth.FindStringSubmatch(rest); m != nil {
		dayStr, monthName = m[1], m[2]
	} else {
		return false, rule, nil
	}

	month, _ := datemath.Month(monthName)
	day, err := strconv.Atoi(dayStr)
	// Feb 29 is accepted; the calculator clamps it in non-leap years.
	if err != nil || day < 1 || day > datemath.DaysIn(2024, month) {
		return false, rule, newInvalid(ReasonUnsupported, rest)
	}
	rule.Interval = IntervalYear
	rule.MonthOfYear = month
	rule.DayOfMonth = day
	return true, rule, nil
}

func parseCountUnit(rest string, rule Rule) (bool, Rule, error) {
	m := reCountUnit.FindStringSubmatch(rest)
	if m == nil {
		return false, rule, nil
	}
	count, err := countOf(m[1], rest)
	if err != nil {
		return false, rule, err
	}
	rule.Interval = units[m[2]]
	rule.Count = count
	return true, rule, nil
}

func parseUnit(rest string, rule Rule) (bool, Rule, error) {
	m := reUnit.FindStringSubmatch(rest)
	if m == nil {
		return false, rule, nil
	}
	rule.Interval = units[m[1]]
	return true, rule, nil
}

func parseCountWeeksOn(rest string, rule Rule) (bool, Rule, error) {
	m := reCountWeeksOn.FindStringSubmatch(rest)
	if m == nil {
		return false, rule, nil
	}
	count, err := countOf(m[1], rest)
	if err != nil {
		return false, rule, err
	}
	days, ok := parseDayList(m[2])
	if !ok {
		return false, rule, newInvalid(ReasonInvalidPattern, rest)
	}
	rule.Interval = IntervalWeek
	rule.Count = count
	rule.Days = days
	return true, rule, nil
}

func parseWeeksOn(rest string, rule Rule) (bool, Rule, error) {
	m := reWeeksOn.FindStringSubmatch(rest)
	if m == nil {
		return false, rule, nil
	}
	days, ok := parseDayList(m[1])
	if !ok {
		return false, rule, newInvalid(ReasonInvalidPattern, rest)
	}
	rule.Interval = IntervalWeek
	rule.Days = days
	return true, rule, nil
}

func parseDayNames(rest string, rule Rule) (bool, Rule, error) {
	days, ok := parseDayList(rest)
	if !ok {
		return false, rule, nil
	}
	rule.Interval = IntervalWeek
	rule.Days = days
	return true, rule, nil
}

// parseShortcutRemainder accepts "every weekday", "every weekend" and friends.
func parseShortcutRemainder(rest string, rule Rule) (bool, Rule, error) {
	sc, ok := shortcuts[rest]
	if !ok || sc.days == nil {
		return false, rule, nil
	}
	return true, applyShortcut(rule, sc), nil
}

func applyShortcut(rule Rule, sc shortcut) Rule {
	rule.Interval = sc.interval
	rule.Count = sc.count
	if sc.days != nil {
		rule.Days = append([]int(nil), sc.days...)
	}
	return rule
}

// parseDayList reads "mon, wed and fri" style lists into sorted, de-duplicated weekday numbers.
func parseDayList(s string) ([]int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, false
	}
	seen := make(map[int]bool)
	var days []int
	for _, token := range reDaySeparator.Split(s, -1) {
		token = strings.Trim(token, ".,")
		if token == "" || token == "and" {
			continue
		}
		wd, ok := datemath.Weekday(token)
		if !ok && strings.HasSuffix(token, "s") {
			wd, ok = datemath.Weekday(strings.TrimSuffix(token, "s"))
		}
		if !ok {
			return nil, false
		}
		if !seen[int(wd)] {
			seen[int(wd)] = true
			days = append(days, int(wd))
		}
	}
	if len(days) == 0 {
		return nil, false
	}
	sort.Ints(days)
	return days, true
}

func countOf(s, fragment string) (int, error) {
	if s == "" {
		return 1, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, newInvalid(ReasonUnsupported, fragment)
	}
	return n, nil
}

func dayOfMonth(s string) (int, error) {
	day, err := strconv.Atoi(s)
	if err != nil || day < 1 || day > 31 {
		return 0, newInvalid(ReasonUnsupported, s)
	}
	return day, nil
}

// extractUntil strips an "until <date>" suffix and returns the date at UTC midnight.
func extractUntil(s string, now time.Time) (string, time.Time, error) {
	loc := reUntil.FindStringSubmatchIndex(s)
	if loc == nil {
		return s, time.Time{}, nil
	}
	fragment := strings.TrimSpace(s[loc[2]:loc[3]])
	end, ok := parseUntilDate(fragment, now)
	if !ok {
		return "", time.Time{}, newInvalid(ReasonInvalidDate, fragment)
	}
	return s[:loc[0]] + s[loc[1]:], end, nil
}

func parseUntilDate(fragment string, now time.Time) (time.Time, bool) {
	if m := reUntilISO.FindStringSubmatch(fragment); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		return buildDate(year, time.Month(month), day)
	}

	var monthName, dayStr, yearStr string
	if m := reUntilMonthDay.FindStringSubmatch(fragment); m != nil {
		monthName, dayStr, yearStr = m[1], m[2], m[3]
	} else if m := reUntilDayMonth.FindStringSubmatch(fragment); m != nil {
		dayStr, monthName, yearStr = m[1], m[2], m[3]
	}
	if monthName != "" {
		month, _ := datemath.Month(monthName)
		day, _ := strconv.Atoi(dayStr)
		if yearStr != "" {
			year, _ := strconv.Atoi(yearStr)
			return buildDate(year, month, day)
		}
		return inferYear(month, day, now)
	}

	for _, layout := range untilFallbackLayouts {
		if t, err := time.Parse(layout, fragment); err == nil {
			return datemath.DateOnly(t), true
		}
	}
	switch fragment {
	case "today":
		return datemath.DateOnly(now), true
	case "tomorrow":
		return datemath.DateOnly(now.AddDate(0, 0, 1)), true
	}
	return time.Time{}, false
}

// inferYear uses the current year, rolling to next year when the date has already passed.
func inferYear(month time.Month, day int, now time.Time) (time.Time, bool) {
	today := datemath.DateOnly(now)
	// Four years is enough for Feb 29 to come around again.
	for year := now.Year(); year <= now.Year()+4; year++ {
		date, ok := buildDate(year, month, day)
		if ok && !date.Before(today) {
			return date, true
		}
	}
	return time.Time{}, false
}

func buildDate(year int, month time.Month, day int) (time.Time, bool) {
	if month < time.January || month > time.December || day < 1 || day > datemath.DaysIn(year, month) {
		return time.Time{}, false
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), true
}

// extractTime strips a "noon" / "midnight" / "at H[:MM][am|pm]" suffix and returns "HH:MM".
func extractTime(s string) (string, string, error) {
	if loc := reTimeWord.FindStringSubmatchIndex(s); loc != nil {
		clock := "12:00"
		if s[loc[2]:loc[3]] == "midnight" {
			clock = "00:00"
		}
		return s[:loc[0]] + s[loc[1]:], clock, nil
	}

	loc := reTimeAt.FindStringSubmatchIndex(s)
	if loc == nil {
		return s, "", nil
	}
	group := func(i int) string {
		if loc[2*i] < 0 {
			return ""
		}
		return s[loc[2*i]:loc[2*i+1]]
	}
	hour, minute, ok := datemath.ParseClockParts(group(1), group(2), group(3))
	if !ok {
		return "", "", newInvalid(ReasonUnsupported, strings.TrimSpace(s[loc[0]:loc[1]]))
	}
	return s[:loc[0]] + s[loc[1]:], datemath.FormatHHMM(hour, minute), nil
}
