package recurrence

import (
	"time"

	"todo-me/pkg/datemath"
)

// Calculator derives next occurrences from a Rule. It is pure and safe for concurrent use.
type Calculator struct{}

// NewCalculator creates a Calculator.
func NewCalculator() *Calculator {
	return &Calculator{}
}

// Calculate returns the first occurrence strictly after ref. The result keeps ref's location
// and clock unless the rule carries a Time, which replaces hour and minute last.
func (c *Calculator) Calculate(rule Rule, ref time.Time) time.Time {
	count := rule.Count
	if count < 1 {
		count = 1
	}

	var next time.Time
	switch rule.Interval {
	case IntervalWeek:
		if len(rule.Days) > 0 {
			next = nextWeekday(rule.Days, count, ref)
		} else {
			next = ref.AddDate(0, 0, 7*count)
		}
	case IntervalMonth:
		next = addMonths(ref, count, rule.DayOfMonth)
	case IntervalYear:
		next = addYears(ref, count, rule.MonthOfYear, rule.DayOfMonth)
	default:
		next = ref.AddDate(0, 0, count)
	}

	if rule.Time != "" {
		if hour, minute, err := datemath.ParseHHMM(rule.Time); err == nil {
			next = datemath.WithClock(next, hour, minute)
		}
	}
	return next
}

// ShouldCreateNextInstance reports whether next is still within the rule's end date.
// Only calendar dates are compared; the end date is inclusive.
func (c *Calculator) ShouldCreateNextInstance(rule Rule, next time.Time) bool {
	if !rule.HasEndDate() {
		return true
	}
	return !datemath.DateOnly(next).After(datemath.DateOnly(rule.EndDate))
}

// nextWeekday picks the smallest listed weekday later this week, otherwise the smallest
// listed weekday after skipping count-1 whole weeks. days may be in any order.
func nextWeekday(days []int, count int, ref time.Time) time.Time {
	current := int(ref.Weekday())
	first, later := days[0], -1
	for _, d := range days {
		first = min(first, d)
		if d > current && (later < 0 || d < later) {
			later = d
		}
	}
	if later >= 0 {
		return ref.AddDate(0, 0, later-current)
	}
	daysUntilEndOfWeek := 7 - current
	return ref.AddDate(0, 0, daysUntilEndOfWeek+(count-1)*7+first)
}

// addMonths moves to the first of the target month before choosing the day, so
// Jan 31 + 1 month lands in February instead of overflowing into March.
func addMonths(ref time.Time, count, dayOfMonth int) time.Time {
	first := time.Date(ref.Year(), ref.Month()+time.Month(count), 1, 0, 0, 0, 0, ref.Location())
	day := resolveDay(dayOfMonth, ref.Day(), datemath.DaysIn(first.Year(), first.Month()))
	return atDay(ref, first.Year(), first.Month(), day)
}

// addYears advances count years. Feb 29 in a non-leap target year clamps to Feb 28.
func addYears(ref time.Time, count int, month time.Month, dayOfMonth int) time.Time {
	year := ref.Year() + count
	if month != 0 {
		day := 1
		if dayOfMonth != 0 {
			day = resolveDay(dayOfMonth, 1, datemath.DaysIn(year, month))
		}
		return atDay(ref, year, month, day)
	}
	day := resolveDay(dayOfMonth, ref.Day(), datemath.DaysIn(year, ref.Month()))
	return atDay(ref, year, ref.Month(), day)
}

// resolveDay maps a DayOfMonth setting onto a month with daysInMonth days.
func resolveDay(dayOfMonth, fallback, daysInMonth int) int {
	switch {
	case dayOfMonth == LastDayOfMonth:
		return daysInMonth
	case dayOfMonth > 0:
		return min(dayOfMonth, daysInMonth)
	default:
		return min(fallback, daysInMonth)
	}
}

func atDay(ref time.Time, year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, ref.Hour(), ref.Minute(), ref.Second(), ref.Nanosecond(), ref.Location())
}
