package scheduling

import (
	"testing"
	"time"
)

func window(t *testing.T, from, to string) Window {
	t.Helper()
	f, err := ParseClock(from)
	if err != nil {
		t.Fatalf("bad fixture %q: %v", from, err)
	}
	o, err := ParseClock(to)
	if err != nil {
		t.Fatalf("bad fixture %q: %v", to, err)
	}
	return Window{From: f, To: o}
}

func TestWindow_Overlaps(t *testing.T) {
	base := window(t, "10:00", "11:00")

	cases := []struct {
		name  string
		other Window
		want  bool
	}{
		{"identical", window(t, "10:00", "11:00"), true},
		{"straddles start", window(t, "09:30", "10:30"), true},
		{"straddles end", window(t, "10:30", "11:30"), true},
		{"contained", window(t, "10:15", "10:45"), true},
		{"containing", window(t, "09:00", "12:00"), true},
		{"touches end", window(t, "11:00", "12:00"), false},
		{"touches start", window(t, "09:00", "10:00"), false},
		{"fully before", window(t, "08:00", "09:00"), false},
		{"fully after", window(t, "12:00", "13:00"), false},
	}

	for _, c := range cases {
		if got := base.Overlaps(c.other); got != c.want {
			t.Fatalf("%s: Overlaps = %v, want %v", c.name, got, c.want)
		}
		// The relation is symmetric.
		if got := c.other.Overlaps(base); got != c.want {
			t.Fatalf("%s (reversed): Overlaps = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestWindow_Duration(t *testing.T) {
	if got := window(t, "09:00", "17:00").Duration(); got != 480 {
		t.Fatalf("Duration = %d, want 480", got)
	}
	if got := window(t, "10:00", "10:00").Duration(); got != 0 {
		t.Fatalf("zero-length Duration = %d, want 0", got)
	}
}

func TestValidateWindow(t *testing.T) {
	if err := ValidateWindow(window(t, "09:00", "10:00")); err != nil {
		t.Fatalf("valid window: unexpected error %v", err)
	}
	if err := ValidateWindow(window(t, "10:00", "10:00")); err != nil {
		t.Fatalf("zero-length window should be accepted, got %v", err)
	}
	if err := ValidateWindow(window(t, "11:00", "10:00")); err != ErrEndBeforeStart {
		t.Fatalf("inverted window: expected ErrEndBeforeStart, got %v", err)
	}
}

func TestValidateDate_SundayRejected(t *testing.T) {
	sunday := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)
	if sunday.Weekday() != time.Sunday {
		t.Fatalf("fixture is not a Sunday: %v", sunday.Weekday())
	}
	if err := ValidateDate(sunday); err != ErrClinicClosed {
		t.Fatalf("expected ErrClinicClosed, got %v", err)
	}

	monday := sunday.AddDate(0, 0, 1)
	if err := ValidateDate(monday); err != nil {
		t.Fatalf("Monday should pass, got %v", err)
	}
}

func TestConflicts_SameOffice(t *testing.T) {
	cand := Candidate{
		Window:   window(t, "10:00", "11:00"),
		OfficeID: 1,
		DoctorID: "doc-a",
	}
	existing := []BookedWindow{
		{Window: window(t, "10:30", "11:30"), OfficeID: 1, DoctorID: "doc-b"},
	}
	if !Conflicts(cand, existing) {
		t.Fatalf("expected conflict for overlapping terms in the same office")
	}
}

func TestConflicts_SameDoctorDifferentOffice(t *testing.T) {
	cand := Candidate{
		Window:   window(t, "10:00", "11:00"),
		OfficeID: 1,
		DoctorID: "doc-a",
	}
	existing := []BookedWindow{
		{Window: window(t, "10:30", "11:30"), OfficeID: 2, DoctorID: "doc-a"},
	}
	if !Conflicts(cand, existing) {
		t.Fatalf("expected conflict for a doctor double-booked across offices")
	}
}

func TestConflicts_OverlapButUnrelated(t *testing.T) {
	cand := Candidate{
		Window:   window(t, "10:00", "11:00"),
		OfficeID: 1,
		DoctorID: "doc-a",
	}
	existing := []BookedWindow{
		{Window: window(t, "10:00", "11:00"), OfficeID: 2, DoctorID: "doc-b"},
	}
	if Conflicts(cand, existing) {
		t.Fatalf("different doctor in a different office must not conflict")
	}
}

func TestConflicts_TouchingWindows(t *testing.T) {
	cand := Candidate{
		Window:   window(t, "11:00", "12:00"),
		OfficeID: 1,
		DoctorID: "doc-a",
	}
	existing := []BookedWindow{
		{Window: window(t, "10:00", "11:00"), OfficeID: 1, DoctorID: "doc-a"},
	}
	if Conflicts(cand, existing) {
		t.Fatalf("back-to-back terms must not conflict")
	}
}

func TestConflicts_EmptyExisting(t *testing.T) {
	cand := Candidate{
		Window:   window(t, "10:00", "11:00"),
		OfficeID: 1,
		DoctorID: "doc-a",
	}
	if Conflicts(cand, nil) {
		t.Fatalf("no existing terms must never conflict")
	}
}
