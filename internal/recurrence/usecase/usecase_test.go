package usecase_test

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"todo-me/internal/model"
	"todo-me/internal/recurrence"
	"todo-me/internal/recurrence/usecase"
	"todo-me/pkg/datemath"
	"todo-me/pkg/log"
	pkgRecurrence "todo-me/pkg/recurrence"
)

// Monday.
var now = time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)

var sc = model.Scope{UserID: "u1"}

func newUseCase() recurrence.UseCase {
	return usecase.New(log.NewNop(), datemath.FixedClock(now), "UTC", recurrence.CacheConfig{Size: 8})
}

func TestParseRule(t *testing.T) {
	uc := newUseCase()

	out, err := uc.ParseRule(context.Background(), sc, recurrence.ParseRuleInput{Text: "every 2 weeks on mon"})
	if err != nil {
		t.Fatalf("ParseRule() error = %v", err)
	}
	want := pkgRecurrence.Rule{
		OriginalText: "every 2 weeks on mon",
		Type:         pkgRecurrence.TypeAbsolute,
		Interval:     pkgRecurrence.IntervalWeek,
		Count:        2,
		Days:         []int{1},
	}
	if !reflect.DeepEqual(out.Rule, want) {
		t.Errorf("ParseRule() = %+v, want %+v", out.Rule, want)
	}
	if out.Timezone != "UTC" {
		t.Errorf("Timezone = %q", out.Timezone)
	}
}

func TestParseRule_CachedCopies(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()

	first, err := uc.ParseRule(ctx, sc, recurrence.ParseRuleInput{Text: "Every Mon, Wed"})
	if err != nil {
		t.Fatalf("ParseRule() error = %v", err)
	}
	first.Rule.Days[0] = 6

	second, err := uc.ParseRule(ctx, sc, recurrence.ParseRuleInput{Text: "every  mon, wed"})
	if err != nil {
		t.Fatalf("ParseRule() error = %v", err)
	}
	if second.Rule.OriginalText != "every  mon, wed" {
		t.Errorf("OriginalText = %q, want the caller's text", second.Rule.OriginalText)
	}
	if !reflect.DeepEqual(second.Rule.Days, []int{1, 3}) {
		t.Errorf("Days = %v, cached rule was mutated", second.Rule.Days)
	}
}

func TestParseRule_UntilFollowsLocalDate(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()

	// Oct 19 has not passed on Oct 19 but has on Oct 20.
	out, err := uc.ParseRule(ctx, sc, recurrence.ParseRuleInput{Text: "every day until oct 19"})
	if err != nil {
		t.Fatalf("ParseRule() error = %v", err)
	}
	later, err := uc.ParseRule(ctx, sc, recurrence.ParseRuleInput{Text: "every day until oct 19", Now: now.AddDate(0, 0, 1)})
	if err != nil {
		t.Fatalf("ParseRule() error = %v", err)
	}
	if out.Rule.EndDate.Year() != 2026 || later.Rule.EndDate.Year() != 2027 {
		t.Errorf("EndDate years = %d, %d, want 2026, 2027", out.Rule.EndDate.Year(), later.Rule.EndDate.Year())
	}
}

func TestParseRule_Errors(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()

	_, err := uc.ParseRule(ctx, sc, recurrence.ParseRuleInput{Text: "every 0 days"})
	var invalid *pkgRecurrence.InvalidRecurrenceError
	if !errors.As(err, &invalid) || invalid.Reason != pkgRecurrence.ReasonUnsupported {
		t.Errorf("ParseRule() error = %v, want unsupported", err)
	}

	if _, err := uc.ParseRule(ctx, sc, recurrence.ParseRuleInput{Text: "every day", Timezone: "Mars/Base"}); !errors.Is(err, recurrence.ErrInvalidTimezone) {
		t.Errorf("ParseRule() error = %v, want ErrInvalidTimezone", err)
	}
}

func TestNext(t *testing.T) {
	tests := []struct {
		name       string
		input      recurrence.NextInput
		wantNext   time.Time
		wantCreate bool
	}{
		{
			name:       "absolute from due date",
			input:      recurrence.NextInput{Text: "every month", DueDate: time.Date(2026, 1, 31, 9, 0, 0, 0, time.UTC)},
			wantNext:   time.Date(2026, 2, 28, 9, 0, 0, 0, time.UTC),
			wantCreate: true,
		},
		{
			name: "relative from completion",
			input: recurrence.NextInput{
				Text:        "every! 3 days",
				DueDate:     time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
				CompletedAt: time.Date(2026, 10, 20, 8, 0, 0, 0, time.UTC),
			},
			wantNext:   time.Date(2026, 10, 23, 8, 0, 0, 0, time.UTC),
			wantCreate: true,
		},
		{
			name:       "no due date uses now",
			input:      recurrence.NextInput{Text: "every day"},
			wantNext:   time.Date(2026, 10, 20, 10, 0, 0, 0, time.UTC),
			wantCreate: true,
		},
		{
			name: "structured rule past its end",
			input: recurrence.NextInput{
				Rule: &pkgRecurrence.Rule{
					Type:     pkgRecurrence.TypeAbsolute,
					Interval: pkgRecurrence.IntervalDay,
					Count:    1,
					EndDate:  time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC),
				},
				Text:    "ignored",
				DueDate: time.Date(2026, 10, 20, 12, 0, 0, 0, time.UTC),
			},
			wantNext:   time.Date(2026, 10, 21, 12, 0, 0, 0, time.UTC),
			wantCreate: false,
		},
		{
			name:       "end date inclusive",
			input:      recurrence.NextInput{Text: "every week until oct 26", DueDate: now},
			wantNext:   time.Date(2026, 10, 26, 10, 0, 0, 0, time.UTC),
			wantCreate: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := newUseCase().Next(context.Background(), sc, tt.input)
			if err != nil {
				t.Fatalf("Next() error = %v", err)
			}
			if !out.Next.Equal(tt.wantNext) {
				t.Errorf("Next = %v, want %v", out.Next, tt.wantNext)
			}
			if out.ShouldCreate != tt.wantCreate {
				t.Errorf("ShouldCreate = %t, want %t", out.ShouldCreate, tt.wantCreate)
			}
			if !out.Next.After(out.Reference) {
				t.Errorf("Next %v is not after Reference %v", out.Next, out.Reference)
			}
		})
	}
}

func TestNext_Timezone(t *testing.T) {
	if _, err := time.LoadLocation("Asia/Ho_Chi_Minh"); err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	// 20:00 UTC on the 19th is 03:00 on the 20th in Ho Chi Minh City (UTC+7).
	out, err := newUseCase().Next(context.Background(), sc, recurrence.NextInput{
		Text:     "every day at 9am",
		DueDate:  time.Date(2026, 10, 19, 20, 0, 0, 0, time.UTC),
		Timezone: "Asia/Ho_Chi_Minh",
	})
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	want := time.Date(2026, 10, 21, 2, 0, 0, 0, time.UTC)
	if !out.Next.Equal(want) {
		t.Errorf("Next = %v, want %v", out.Next, want)
	}
	if out.Next.Location().String() != "Asia/Ho_Chi_Minh" {
		t.Errorf("Next location = %v", out.Next.Location())
	}
}

func TestNext_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   recurrence.NextInput
		wantErr error
	}{
		{name: "nothing to parse", input: recurrence.NextInput{Text: "  "}, wantErr: recurrence.ErrMissingRule},
		{name: "invalid text", input: recurrence.NextInput{Text: "sometimes"}, wantErr: pkgRecurrence.ErrInvalidRecurrence},
		{name: "invalid rule", input: recurrence.NextInput{Rule: &pkgRecurrence.Rule{Count: 0}}, wantErr: pkgRecurrence.ErrInvalidArgument},
		{name: "invalid timezone", input: recurrence.NextInput{Text: "every day", Timezone: "nowhere"}, wantErr: recurrence.ErrInvalidTimezone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newUseCase().Next(context.Background(), sc, tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Next() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
