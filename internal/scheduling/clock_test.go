package scheduling

import "testing"

func TestParseClock_Valid(t *testing.T) {
	cases := []struct {
		in   string
		want MinuteOfDay
	}{
		{"00:00", 0},
		{"09:30", 570},
		{"17:00", 1020},
		{"23:59", 1439},
	}

	for _, c := range cases {
		got, err := ParseClock(c.in)
		if err != nil {
			t.Fatalf("ParseClock(%q): unexpected error %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("ParseClock(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestParseClock_Invalid(t *testing.T) {
	for _, in := range []string{"", "0900", "25:00", "12:60", "12:00:00", "noon"} {
		if _, err := ParseClock(in); err != ErrInvalidClock {
			t.Fatalf("ParseClock(%q): expected ErrInvalidClock, got %v", in, err)
		}
	}
}

func TestMinuteOfDay_String(t *testing.T) {
	cases := []struct {
		in   MinuteOfDay
		want string
	}{
		{0, "00:00"},
		{570, "09:30"},
		{1020, "17:00"},
	}

	for _, c := range cases {
		if got := c.in.String(); got != c.want {
			t.Fatalf("MinuteOfDay(%d).String() = %q, want %q", int(c.in), got, c.want)
		}
	}
}

func TestMinuteOfDay_Add(t *testing.T) {
	start := MinuteOfDay(540)
	if got := start.Add(45); got != 585 {
		t.Fatalf("Add(45) = %d, want 585", got)
	}
	if got := start.Add(-30); got != 510 {
		t.Fatalf("Add(-30) = %d, want 510", got)
	}
}
