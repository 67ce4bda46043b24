package scheduling

import (
	"errors"
	"time"
)

var (
	ErrEndBeforeStart = errors.New("term must not end before it starts")
	ErrClinicClosed   = errors.New("clinic is closed on Sundays")
	ErrSlotOccupied   = errors.New("slot is already occupied")
)

// Window is a half-open time interval [From, To) within a single day.
type Window struct {
	From MinuteOfDay
	To   MinuteOfDay
}

// Duration returns the window length in minutes.
func (w Window) Duration() int {
	return int(w.To - w.From)
}

// Overlaps reports whether two windows intersect on the time axis.
//
// Boundary rule: windows are half-open, so a window ending exactly when
// another begins does not overlap. This single predicate replaces the four
// containment/straddle relations enumerated by the legacy conflict check,
// which it is equivalent to for every non-degenerate pair.
func (w Window) Overlaps(other Window) bool {
	return w.From < other.To && other.From < w.To
}

// Candidate is a term window a doctor is trying to claim.
type Candidate struct {
	Date     time.Time
	Window   Window
	OfficeID int
	DoctorID string
}

// BookedWindow is an existing term reduced to what conflict detection needs.
// The caller pre-filters the set to the candidate's date.
type BookedWindow struct {
	Window   Window
	OfficeID int
	DoctorID string
}

// ValidateWindow rejects inverted windows. A zero-length window is allowed,
// matching the legacy hour_from <= hour_to form check.
func ValidateWindow(w Window) error {
	if w.From > w.To {
		return ErrEndBeforeStart
	}
	return nil
}

// ValidateDate rejects Sundays. The clinic week runs Monday through Saturday.
func ValidateDate(date time.Time) error {
	if date.Weekday() == time.Sunday {
		return ErrClinicClosed
	}
	return nil
}

// Conflicts reports whether the candidate collides with any existing term.
// A collision requires a time overlap AND a shared office or a shared doctor:
// a doctor cannot hold two overlapping terms even in different offices, and an
// office cannot host two overlapping terms even for different doctors.
func Conflicts(c Candidate, existing []BookedWindow) bool {
	for _, t := range existing {
		if !c.Window.Overlaps(t.Window) {
			continue
		}
		if t.OfficeID == c.OfficeID || t.DoctorID == c.DoctorID {
			return true
		}
	}
	return false
}
