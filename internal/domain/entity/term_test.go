package entity

import (
	"testing"
	"time"
)

func TestTerm_IsPast(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		date time.Time
		from string
		want bool
	}{
		{"yesterday", now.AddDate(0, 0, -1), "09:00", true},
		{"today earlier", now, "09:00", true},
		{"today same minute", now, "12:00", false},
		{"today later", now, "15:00", false},
		{"tomorrow", now.AddDate(0, 0, 1), "09:00", false},
	}

	for _, c := range cases {
		term := Term{Date: c.date, HourFrom: c.from, HourTo: "18:00"}
		if got := term.IsPast(now); got != c.want {
			t.Fatalf("%s: IsPast = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestTerm_IsAvailable(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	future := now.AddDate(0, 0, 1)

	free := Term{Date: future, HourFrom: "09:00", HourTo: "10:00"}
	if !free.IsAvailable(now) {
		t.Fatalf("future term without a visit must be available")
	}

	booked := Term{Date: future, HourFrom: "09:00", HourTo: "10:00", Visit: &Visit{ID: 1}}
	if booked.IsAvailable(now) {
		t.Fatalf("booked term must not be available")
	}

	past := Term{Date: now.AddDate(0, 0, -1), HourFrom: "09:00", HourTo: "10:00"}
	if past.IsAvailable(now) {
		t.Fatalf("past term must not be available")
	}
}
