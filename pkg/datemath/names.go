package datemath

import (
	"strings"
	"time"
)

var weekdays = map[string]time.Weekday{
	"sun": time.Sunday, "sunday": time.Sunday,
	"mon": time.Monday, "monday": time.Monday,
	"tue": time.Tuesday, "tues": time.Tuesday, "tuesday": time.Tuesday,
	"wed": time.Wednesday, "weds": time.Wednesday, "wednesday": time.Wednesday,
	"thu": time.Thursday, "thur": time.Thursday, "thurs": time.Thursday, "thursday": time.Thursday,
	"fri": time.Friday, "friday": time.Friday,
	"sat": time.Saturday, "saturday": time.Saturday,
}

var months = map[string]time.Month{
	"jan": time.January, "january": time.January,
	"feb": time.February, "february": time.February,
	"mar": time.March, "march": time.March,
	"apr": time.April, "april": time.April,
	"may": time.May,
	"jun": time.June, "june": time.June,
	"jul": time.July, "july": time.July,
	"aug": time.August, "august": time.August,
	"sep": time.September, "sept": time.September, "september": time.September,
	"oct": time.October, "october": time.October,
	"nov": time.November, "november": time.November,
	"dec": time.December, "december": time.December,
}

// Regex alternations for the vocabularies. Longer forms come first so that
// leftmost-first matching prefers "monday" over "mon".
const (
	FullWeekdayPattern = `sunday|monday|tuesday|wednesday|thursday|friday|saturday`
	WeekdayPattern     = `sunday|monday|tuesday|wednesday|thursday|friday|saturday|tues|weds|thurs|thur|sun|mon|tue|wed|thu|fri|sat`
	MonthPattern       = `january|february|march|april|may|june|july|august|september|october|november|december|sept|jan|feb|mar|apr|jun|jul|aug|sep|oct|nov|dec`
)

// Weekday looks up a full or abbreviated weekday name, case-insensitively.
func Weekday(name string) (time.Weekday, bool) {
	wd, ok := weekdays[strings.ToLower(strings.TrimSpace(name))]
	return wd, ok
}

// Month looks up a full or abbreviated month name, case-insensitively.
func Month(name string) (time.Month, bool) {
	m, ok := months[strings.ToLower(strings.TrimSpace(name))]
	return m, ok
}
