package scheduling

import (
	"testing"
	"time"
)

func day(t *testing.T, year int, month time.Month, d int, wd time.Weekday) time.Time {
	t.Helper()
	date := time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
	if date.Weekday() != wd {
		t.Fatalf("fixture %v is a %v, want %v", date, date.Weekday(), wd)
	}
	return date
}

func TestWeekWindow_CurrentWeek(t *testing.T) {
	now := day(t, 2025, 1, 8, time.Wednesday)

	monday, saturday := WeekWindow(now, 0)
	if !monday.Equal(day(t, 2025, 1, 6, time.Monday)) {
		t.Fatalf("monday = %v, want 2025-01-06", monday)
	}
	if !saturday.Equal(day(t, 2025, 1, 11, time.Saturday)) {
		t.Fatalf("saturday = %v, want 2025-01-11", saturday)
	}
}

func TestWeekWindow_NextWeek(t *testing.T) {
	now := day(t, 2025, 1, 8, time.Wednesday)

	monday, saturday := WeekWindow(now, 1)
	if !monday.Equal(day(t, 2025, 1, 13, time.Monday)) {
		t.Fatalf("monday = %v, want 2025-01-13", monday)
	}
	if !saturday.Equal(day(t, 2025, 1, 18, time.Saturday)) {
		t.Fatalf("saturday = %v, want 2025-01-18", saturday)
	}
}

func TestWeekWindow_SundaySkipsEndedWeek(t *testing.T) {
	// On a Sunday the current clinic week (Mon-Sat) is fully over, so the
	// upcoming week is returned instead.
	now := day(t, 2025, 1, 5, time.Sunday)

	monday, saturday := WeekWindow(now, 0)
	if !monday.Equal(day(t, 2025, 1, 6, time.Monday)) {
		t.Fatalf("monday = %v, want 2025-01-06", monday)
	}
	if !saturday.Equal(day(t, 2025, 1, 11, time.Saturday)) {
		t.Fatalf("saturday = %v, want 2025-01-11", saturday)
	}
}

func TestWeekWindow_PastOffsetMatchesCurrentWeek(t *testing.T) {
	// An offset whose Saturday already passed resolves to the same window as
	// offset zero, so browsing can never land on a fully past week.
	now := day(t, 2025, 1, 8, time.Wednesday)

	monday, saturday := WeekWindow(now, -2)
	wantMonday, wantSaturday := WeekWindow(now, 0)
	if !monday.Equal(wantMonday) || !saturday.Equal(wantSaturday) {
		t.Fatalf("window = %v .. %v, want %v .. %v", monday, saturday, wantMonday, wantSaturday)
	}
	if !monday.Equal(day(t, 2025, 1, 6, time.Monday)) {
		t.Fatalf("monday = %v, want 2025-01-06", monday)
	}
}

func TestWeekWindow_MondayBoundary(t *testing.T) {
	now := day(t, 2025, 1, 6, time.Monday)

	monday, _ := WeekWindow(now, 0)
	if !monday.Equal(now) {
		t.Fatalf("monday = %v, want the same day %v", monday, now)
	}
}

func TestWeekDates(t *testing.T) {
	monday := day(t, 2025, 1, 6, time.Monday)
	saturday := day(t, 2025, 1, 11, time.Saturday)

	dates := WeekDates(monday, saturday)
	if len(dates) != 6 {
		t.Fatalf("expected 6 dates, got %d", len(dates))
	}
	if !dates[0].Equal(monday) || !dates[5].Equal(saturday) {
		t.Fatalf("unexpected range: %v .. %v", dates[0], dates[5])
	}
	for i, d := range dates {
		if d.Weekday() == time.Sunday {
			t.Fatalf("date %d is a Sunday", i)
		}
	}
}

func TestWeekdayLabels(t *testing.T) {
	monday := day(t, 2025, 1, 6, time.Monday)
	labels := WeekdayLabels(WeekDates(monday, monday.AddDate(0, 0, 5)))

	if len(labels) != 6 {
		t.Fatalf("expected 6 labels, got %d", len(labels))
	}
	if labels[0].Name != "Monday" || labels[0].Date != "06.01" {
		t.Fatalf("unexpected first label: %+v", labels[0])
	}
	if labels[5].Name != "Saturday" || labels[5].Date != "11.01" {
		t.Fatalf("unexpected last label: %+v", labels[5])
	}
}
