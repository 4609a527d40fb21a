package recurrence_test

import (
	"testing"
	"time"

	"todo-me/pkg/recurrence"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCalculate(t *testing.T) {
	calc := recurrence.NewCalculator()

	tests := []struct {
		name string
		rule recurrence.Rule
		ref  time.Time
		want time.Time
	}{
		{
			name: "Every 3 days",
			rule: recurrence.Rule{Interval: recurrence.IntervalDay, Count: 3},
			ref:  time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
			want: time.Date(2026, 3, 13, 9, 0, 0, 0, time.UTC),
		},
		{
			name: "Every day at 14:00",
			rule: recurrence.Rule{Interval: recurrence.IntervalDay, Count: 1, Time: "14:00"},
			ref:  time.Date(2026, 3, 10, 9, 12, 33, 0, time.UTC),
			want: time.Date(2026, 3, 11, 14, 0, 0, 0, time.UTC),
		},
		{
			name: "Every 2 weeks without days",
			rule: recurrence.Rule{Interval: recurrence.IntervalWeek, Count: 2},
			ref:  date(2026, 3, 10),
			want: date(2026, 3, 24),
		},
		{
			name: "Mon/Wed/Fri from Monday moves to Wednesday",
			rule: recurrence.Rule{Interval: recurrence.IntervalWeek, Count: 1, Days: []int{1, 3, 5}},
			ref:  date(2026, 3, 9),
			want: date(2026, 3, 11),
		},
		{
			name: "Mon/Wed/Fri from Friday wraps to Monday",
			rule: recurrence.Rule{Interval: recurrence.IntervalWeek, Count: 1, Days: []int{1, 3, 5}},
			ref:  date(2026, 3, 13),
			want: date(2026, 3, 16),
		},
		{
			name: "Every 2 weeks on Mon/Wed/Fri from Friday skips a week",
			rule: recurrence.Rule{Interval: recurrence.IntervalWeek, Count: 2, Days: []int{1, 3, 5}},
			ref:  date(2026, 3, 13),
			want: date(2026, 3, 23),
		},
		{
			name: "Single weekday equal to today advances a full week",
			rule: recurrence.Rule{Interval: recurrence.IntervalWeek, Count: 1, Days: []int{3}},
			ref:  date(2026, 3, 11),
			want: date(2026, 3, 18),
		},
		{
			name: "Weekend from Saturday goes to Sunday",
			rule: recurrence.Rule{Interval: recurrence.IntervalWeek, Count: 1, Days: []int{0, 6}},
			ref:  date(2026, 3, 14),
			want: date(2026, 3, 15),
		},
		{
			name: "Unsorted Fri/Mon from Saturday wraps to Monday",
			rule: recurrence.Rule{Interval: recurrence.IntervalWeek, Count: 1, Days: []int{5, 1}},
			ref:  date(2026, 10, 24),
			want: date(2026, 10, 26),
		},
		{
			name: "Unsorted Fri/Wed from Monday picks Wednesday",
			rule: recurrence.Rule{Interval: recurrence.IntervalWeek, Count: 1, Days: []int{5, 3}},
			ref:  date(2026, 10, 19),
			want: date(2026, 10, 21),
		},
		{
			name: "Monthly from Jan 31 clamps to Feb 28",
			rule: recurrence.Rule{Interval: recurrence.IntervalMonth, Count: 1},
			ref:  date(2026, 1, 31),
			want: date(2026, 2, 28),
		},
		{
			name: "Monthly from Jan 31 in a leap year clamps to Feb 29",
			rule: recurrence.Rule{Interval: recurrence.IntervalMonth, Count: 1},
			ref:  date(2024, 1, 31),
			want: date(2024, 2, 29),
		},
		{
			name: "Day 31 clamps in February",
			rule: recurrence.Rule{Interval: recurrence.IntervalMonth, Count: 1, DayOfMonth: 31},
			ref:  date(2026, 1, 31),
			want: date(2026, 2, 28),
		},
		{
			name: "Day 15 from end of month",
			rule: recurrence.Rule{Interval: recurrence.IntervalMonth, Count: 1, DayOfMonth: 15},
			ref:  date(2026, 1, 31),
			want: date(2026, 2, 15),
		},
		{
			name: "Last day of month into March",
			rule: recurrence.Rule{Interval: recurrence.IntervalMonth, Count: 1, DayOfMonth: recurrence.LastDayOfMonth},
			ref:  date(2026, 2, 10),
			want: date(2026, 3, 31),
		},
		{
			name: "Last day of month into April",
			rule: recurrence.Rule{Interval: recurrence.IntervalMonth, Count: 1, DayOfMonth: recurrence.LastDayOfMonth},
			ref:  date(2026, 3, 31),
			want: date(2026, 4, 30),
		},
		{
			name: "Quarterly crosses the year",
			rule: recurrence.Rule{Interval: recurrence.IntervalMonth, Count: 3},
			ref:  date(2026, 11, 30),
			want: date(2027, 2, 28),
		},
		{
			name: "Yearly from Feb 29 clamps to Feb 28",
			rule: recurrence.Rule{Interval: recurrence.IntervalYear, Count: 1},
			ref:  date(2024, 2, 29),
			want: date(2025, 2, 28),
		},
		{
			name: "Every January 15",
			rule: recurrence.Rule{Interval: recurrence.IntervalYear, Count: 1, MonthOfYear: time.January, DayOfMonth: 15},
			ref:  date(2026, 1, 10),
			want: date(2027, 1, 15),
		},
		{
			name: "Every February 29 in a non-leap target year",
			rule: recurrence.Rule{Interval: recurrence.IntervalYear, Count: 1, MonthOfYear: time.February, DayOfMonth: 29},
			ref:  date(2026, 3, 1),
			want: date(2027, 2, 28),
		},
		{
			name: "Every February 29 in a leap target year",
			rule: recurrence.Rule{Interval: recurrence.IntervalYear, Count: 1, MonthOfYear: time.February, DayOfMonth: 29},
			ref:  date(2027, 3, 1),
			want: date(2028, 2, 29),
		},
		{
			name: "Month of year without day defaults to the 1st",
			rule: recurrence.Rule{Interval: recurrence.IntervalYear, Count: 1, MonthOfYear: time.March},
			ref:  date(2026, 5, 20),
			want: date(2027, 3, 1),
		},
		{
			name: "Yearly last day without month",
			rule: recurrence.Rule{Interval: recurrence.IntervalYear, Count: 2, DayOfMonth: recurrence.LastDayOfMonth},
			ref:  date(2026, 4, 10),
			want: date(2028, 4, 30),
		},
		{
			name: "Time replaces clock after month clamp",
			rule: recurrence.Rule{Interval: recurrence.IntervalMonth, Count: 1, Time: "08:30"},
			ref:  time.Date(2026, 1, 31, 17, 45, 30, 0, time.UTC),
			want: time.Date(2026, 2, 28, 8, 30, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.Calculate(tt.rule, tt.ref)
			if !got.Equal(tt.want) {
				t.Errorf("Calculate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCalculate_KeepsLocation(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	calc := recurrence.NewCalculator()
	ref := time.Date(2026, 3, 7, 9, 0, 0, 0, loc)
	got := calc.Calculate(recurrence.Rule{Interval: recurrence.IntervalDay, Count: 1}, ref)

	// DST starts on 2026-03-08; the wall clock stays at 09:00.
	if got.Location() != loc || got.Hour() != 9 || got.Day() != 8 {
		t.Errorf("Calculate() = %v, want 2026-03-08 09:00 New York", got)
	}
}

func TestCalculate_Properties(t *testing.T) {
	calc := recurrence.NewCalculator()
	rules := []recurrence.Rule{
		{Interval: recurrence.IntervalDay, Count: 1},
		{Interval: recurrence.IntervalDay, Count: 1, Time: "00:00"},
		{Interval: recurrence.IntervalWeek, Count: 1},
		{Interval: recurrence.IntervalWeek, Count: 1, Days: []int{0}},
		{Interval: recurrence.IntervalWeek, Count: 3, Days: []int{1, 2, 3, 4, 5}},
		{Interval: recurrence.IntervalWeek, Count: 1, Days: []int{0, 1, 2, 3, 4, 5, 6}},
		{Interval: recurrence.IntervalMonth, Count: 1},
		{Interval: recurrence.IntervalMonth, Count: 1, DayOfMonth: 1},
		{Interval: recurrence.IntervalMonth, Count: 2, DayOfMonth: recurrence.LastDayOfMonth},
		{Interval: recurrence.IntervalYear, Count: 1},
		{Interval: recurrence.IntervalYear, Count: 1, MonthOfYear: time.February, DayOfMonth: 29, Time: "06:15"},
	}

	start := time.Date(2024, 1, 1, 13, 30, 0, 0, time.UTC)
	for _, rule := range rules {
		for i := 0; i < 800; i++ {
			ref := start.AddDate(0, 0, i)
			first := calc.Calculate(rule, ref)
			if !first.After(ref) {
				t.Fatalf("rule %+v: Calculate(%v) = %v is not after the reference", rule, ref, first)
			}
			if second := calc.Calculate(rule, ref); !second.Equal(first) {
				t.Fatalf("rule %+v: Calculate(%v) is not deterministic: %v vs %v", rule, ref, first, second)
			}
		}
	}
}

func TestShouldCreateNextInstance(t *testing.T) {
	calc := recurrence.NewCalculator()
	withEnd := recurrence.Rule{Interval: recurrence.IntervalDay, Count: 1, EndDate: date(2026, 12, 31)}

	tests := []struct {
		name string
		rule recurrence.Rule
		next time.Time
		want bool
	}{
		{"No end date", recurrence.Rule{Interval: recurrence.IntervalDay, Count: 1}, date(2100, 1, 1), true},
		{"Before end date", withEnd, date(2026, 12, 30), true},
		{"On end date at midnight", withEnd, date(2026, 12, 31), true},
		{"On end date late in the day", withEnd, time.Date(2026, 12, 31, 23, 59, 0, 0, time.UTC), true},
		{"Day after end date", withEnd, date(2027, 1, 1), false},
		{"Local calendar date is used", withEnd, time.Date(2026, 12, 31, 22, 0, 0, 0, time.FixedZone("UTC-5", -5*3600)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := calc.ShouldCreateNextInstance(tt.rule, tt.next); got != tt.want {
				t.Errorf("ShouldCreateNextInstance() = %v, want %v", got, tt.want)
			}
		})
	}
}
