package scheduling

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidClock = errors.New("invalid clock value, use HH:MM")

// MinuteOfDay is a wall-clock time expressed as minutes since midnight.
// Term hours are stored as "HH:MM" strings; all interval arithmetic in this
// package runs on this type instead.
type MinuteOfDay int

// ParseClock parses a "HH:MM" string into a MinuteOfDay.
func ParseClock(s string) (MinuteOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, ErrInvalidClock
	}
	return MinuteOfDay(t.Hour()*60 + t.Minute()), nil
}

// String formats the clock value back to "HH:MM".
func (m MinuteOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(m)/60, int(m)%60)
}

// Add returns the clock value shifted by the given number of minutes.
func (m MinuteOfDay) Add(minutes int) MinuteOfDay {
	return m + MinuteOfDay(minutes)
}
