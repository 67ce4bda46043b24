package scheduling

import "time"

// DayLabel pairs a weekday name with its "dd.mm" date for grid headers.
type DayLabel struct {
	Name string `json:"name"`
	Date string `json:"date"`
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// mondayIndex maps time.Weekday (Sunday=0) to a Monday-based index.
func mondayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}

// WeekWindow returns the Monday and Saturday of the week offset weeks away
// from now. If the requested Saturday already lies in the past the next week
// is tried instead, so paging can never land on an entirely past window.
// On a Sunday this skips the just-ended week. Negative offsets are not
// clamped here; callers zero them at the boundary.
func WeekWindow(now time.Time, offset int) (monday, saturday time.Time) {
	day := truncateToDay(now).AddDate(0, 0, 7*offset)
	monday = day.AddDate(0, 0, -mondayIndex(day.Weekday()))
	saturday = monday.AddDate(0, 0, 5)

	if saturday.Before(truncateToDay(now)) {
		return WeekWindow(now, offset+1)
	}
	return monday, saturday
}

// WeekDates lists every day from monday to saturday inclusive.
func WeekDates(monday, saturday time.Time) []time.Time {
	days := int(saturday.Sub(monday).Hours()/24) + 1
	dates := make([]time.Time, 0, days)
	for i := 0; i < days; i++ {
		dates = append(dates, monday.AddDate(0, 0, i))
	}
	return dates
}

// WeekdayLabels renders grid headers for the given dates. Sunday is never
// produced because WeekWindow stops at Saturday.
func WeekdayLabels(dates []time.Time) []DayLabel {
	labels := make([]DayLabel, len(dates))
	for i, d := range dates {
		labels[i] = DayLabel{
			Name: d.Weekday().String(),
			Date: d.Format("02.01"),
		}
	}
	return labels
}
