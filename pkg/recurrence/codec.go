package recurrence

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"time"

	"todo-me/pkg/datemath"
)

// Persisted keys.
const (
	KeyOriginalText = "originalText"
	KeyType         = "type"
	KeyInterval     = "interval"
	KeyCount        = "count"
	KeyDays         = "days"
	KeyDayOfMonth   = "dayOfMonth"
	KeyMonthOfYear  = "monthOfYear"
	KeyTime         = "time"
	KeyEndDate      = "endDate"
)

const endDateLayout = "2006-01-02"

// ToMap flattens the rule into its persisted shape. Unset optionals become nil.
func (r Rule) ToMap() map[string]any {
	days := make([]int, len(r.Days))
	copy(days, r.Days)

	m := map[string]any{
		KeyOriginalText: r.OriginalText,
		KeyType:         r.Type.String(),
		KeyInterval:     r.Interval.String(),
		KeyCount:        r.Count,
		KeyDays:         days,
		KeyDayOfMonth:   nil,
		KeyMonthOfYear:  nil,
		KeyTime:         nil,
		KeyEndDate:      nil,
	}
	if r.DayOfMonth != 0 {
		m[KeyDayOfMonth] = r.DayOfMonth
	}
	if r.MonthOfYear != 0 {
		m[KeyMonthOfYear] = int(r.MonthOfYear)
	}
	if r.Time != "" {
		m[KeyTime] = r.Time
	}
	if r.HasEndDate() {
		m[KeyEndDate] = r.EndDate.Format(endDateLayout)
	}
	return m
}

// RuleFromMap rebuilds a rule from its persisted shape.
// originalText, type and interval are required.
func RuleFromMap(m map[string]any) (Rule, error) {
	for _, key := range []string{KeyOriginalText, KeyType, KeyInterval} {
		if _, ok := m[key]; !ok {
			return Rule{}, fmt.Errorf("%w: missing required key %q", ErrInvalidArgument, key)
		}
	}

	var r Rule
	var err error

	text, ok := m[KeyOriginalText].(string)
	if !ok {
		return Rule{}, fmt.Errorf("%w: %q must be a string", ErrInvalidArgument, KeyOriginalText)
	}
	r.OriginalText = text

	typ, ok := m[KeyType].(string)
	if !ok {
		return Rule{}, fmt.Errorf("%w: %q must be a string", ErrInvalidArgument, KeyType)
	}
	if r.Type, err = ParseType(typ); err != nil {
		return Rule{}, err
	}

	interval, ok := m[KeyInterval].(string)
	if !ok {
		return Rule{}, fmt.Errorf("%w: %q must be a string", ErrInvalidArgument, KeyInterval)
	}
	if r.Interval, err = ParseInterval(interval); err != nil {
		return Rule{}, err
	}

	r.Count = 1
	if v, present := m[KeyCount]; present && v != nil {
		if r.Count, err = toInt(KeyCount, v); err != nil {
			return Rule{}, err
		}
	}

	if v, present := m[KeyDays]; present && v != nil {
		if r.Days, err = toDays(v); err != nil {
			return Rule{}, err
		}
	}

	if v, present := m[KeyDayOfMonth]; present && v != nil {
		if r.DayOfMonth, err = toInt(KeyDayOfMonth, v); err != nil {
			return Rule{}, err
		}
	}

	if v, present := m[KeyMonthOfYear]; present && v != nil {
		month, err := toInt(KeyMonthOfYear, v)
		if err != nil {
			return Rule{}, err
		}
		r.MonthOfYear = time.Month(month)
	}

	if v, present := m[KeyTime]; present && v != nil {
		s, ok := v.(string)
		if !ok {
			return Rule{}, fmt.Errorf("%w: %q must be a string", ErrInvalidArgument, KeyTime)
		}
		r.Time = s
	}

	if v, present := m[KeyEndDate]; present && v != nil {
		s, ok := v.(string)
		if !ok {
			return Rule{}, fmt.Errorf("%w: %q must be a string", ErrInvalidArgument, KeyEndDate)
		}
		end, err := time.Parse(endDateLayout, s)
		if err != nil {
			return Rule{}, fmt.Errorf("%w: %q is not an ISO date: %v", ErrInvalidArgument, KeyEndDate, err)
		}
		r.EndDate = end
	}

	if err := r.Validate(); err != nil {
		return Rule{}, err
	}
	return r, nil
}

// Validate checks the rule's field invariants.
func (r Rule) Validate() error {
	if r.Count < 1 {
		return fmt.Errorf("%w: count must be >= 1, got %d", ErrInvalidArgument, r.Count)
	}
	for _, d := range r.Days {
		if d < 0 || d > 6 {
			return fmt.Errorf("%w: day %d out of range 0..6", ErrInvalidArgument, d)
		}
	}
	if r.DayOfMonth != 0 && r.DayOfMonth != LastDayOfMonth && (r.DayOfMonth < 1 || r.DayOfMonth > 31) {
		return fmt.Errorf("%w: dayOfMonth %d out of range", ErrInvalidArgument, r.DayOfMonth)
	}
	if r.MonthOfYear < 0 || r.MonthOfYear > time.December {
		return fmt.Errorf("%w: monthOfYear %d out of range", ErrInvalidArgument, int(r.MonthOfYear))
	}
	if r.Time != "" {
		if _, _, err := datemath.ParseHHMM(r.Time); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
		}
	}
	return nil
}

// MarshalJSON encodes the rule through ToMap.
func (r Rule) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.ToMap())
}

// UnmarshalJSON decodes the rule through RuleFromMap.
func (r *Rule) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return err
	}
	rule, err := RuleFromMap(m)
	if err != nil {
		return err
	}
	*r = rule
	return nil
}

func toInt(key string, v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("%w: %q must be an integer", ErrInvalidArgument, key)
		}
		return int(n), nil
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, fmt.Errorf("%w: %q must be an integer", ErrInvalidArgument, key)
		}
		return int(i), nil
	}
	return 0, fmt.Errorf("%w: %q must be an integer, got %T", ErrInvalidArgument, key, v)
}

func toDays(v any) ([]int, error) {
	var days []int
	switch list := v.(type) {
	case []int:
		days = append(days, list...)
	case []any:
		for _, item := range list {
			d, err := toInt(KeyDays, item)
			if err != nil {
				return nil, err
			}
			days = append(days, d)
		}
	default:
		return nil, fmt.Errorf("%w: %q must be an array, got %T", ErrInvalidArgument, KeyDays, v)
	}
	if len(days) == 0 {
		return nil, nil
	}
	slices.Sort(days)
	return slices.Compact(days), nil
}
