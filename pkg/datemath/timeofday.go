package datemath

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ClockTime converts an hour/minute pair with an optional am/pm marker into 24-hour form.
// 12am is 0, 12pm stays 12, pm adds 12 to hours below 12.
func ClockTime(hour, minute int, meridiem string) (int, int, bool) {
	if minute < 0 || minute > 59 || hour < 0 {
		return 0, 0, false
	}
	switch strings.ToLower(meridiem) {
	case "am":
		if hour < 1 || hour > 12 {
			return 0, 0, false
		}
		if hour == 12 {
			hour = 0
		}
	case "pm":
		if hour < 1 || hour > 12 {
			return 0, 0, false
		}
		if hour < 12 {
			hour += 12
		}
	case "":
		if hour > 23 {
			return 0, 0, false
		}
	default:
		return 0, 0, false
	}
	return hour, minute, true
}

// ParseClockParts is ClockTime over regex capture strings; an empty minute means :00.
func ParseClockParts(hourStr, minuteStr, meridiem string) (int, int, bool) {
	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		return 0, 0, false
	}
	minute := 0
	if minuteStr != "" {
		if minute, err = strconv.Atoi(minuteStr); err != nil {
			return 0, 0, false
		}
	}
	return ClockTime(hour, minute, meridiem)
}

// FormatHHMM renders a 24-hour clock time as "HH:MM".
func FormatHHMM(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// ParseHHMM parses a "HH:MM" string.
func ParseHHMM(s string) (int, int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time %q", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid hour in %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid minute in %q", s)
	}
	return hour, minute, nil
}

// WithClock replaces t's hour and minute (seconds cleared), keeping its date and location.
func WithClock(t time.Time, hour, minute int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), hour, minute, 0, 0, t.Location())
}
