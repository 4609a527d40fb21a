package datemath

import (
	"fmt"
	"time"
)

// LoadLocation resolves an IANA timezone name. An empty name means UTC.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return loc, nil
}

// ResolveToUTC interprets t's wall clock as being in timezone and returns the UTC instant.
// Values that are already UTC are returned unchanged.
func ResolveToUTC(t time.Time, timezone string) (time.Time, error) {
	if t.Location() == time.UTC {
		return t, nil
	}
	loc, err := LoadLocation(timezone)
	if err != nil {
		return time.Time{}, err
	}
	wall := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc)
	return wall.UTC(), nil
}

// ResolveFromUTC returns the same instant viewed in timezone.
func ResolveFromUTC(t time.Time, timezone string) (time.Time, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return time.Time{}, err
	}
	return t.In(loc), nil
}

// Now returns the clock's current instant rendered in timezone.
func Now(clock Clock, timezone string) (time.Time, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return time.Time{}, err
	}
	return clock.Now().In(loc), nil
}

// GetStartOfDay returns midnight "today" in timezone.
func GetStartOfDay(clock Clock, timezone string) (time.Time, error) {
	now, err := Now(clock, timezone)
	if err != nil {
		return time.Time{}, err
	}
	return StartOfDay(now), nil
}

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysIn returns the number of days in month m of year y.
func DaysIn(y int, m time.Month) int {
	// Day 0 of the next month is the last day of m.
	return time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DateOnly drops the time of day and location, returning UTC midnight of t's calendar day.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
