package entity

import (
	"time"

	"github.com/google/uuid"
)

// Term is the schedulable unit: a doctor, an office and a time window on a
// given date. The (date, hour_from, hour_to, office) tuple is unique at the
// database level; hours are "HH:MM" strings backed by time columns.
type Term struct {
	ID       int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Date     time.Time `gorm:"type:date;not null;index;uniqueIndex:uq_terms_window" json:"date"`
	HourFrom string    `gorm:"type:time;not null;uniqueIndex:uq_terms_window" json:"hour_from"`
	HourTo   string    `gorm:"type:time;not null;uniqueIndex:uq_terms_window" json:"hour_to"`
	DoctorID uuid.UUID `gorm:"type:uuid;not null;index" json:"doctor_id"`
	OfficeID int       `gorm:"not null;uniqueIndex:uq_terms_window" json:"office_id"`

	// Relationships
	Doctor DoctorProfile `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Office Office        `gorm:"foreignKey:OfficeID" json:"office,omitempty"`
	Visit  *Visit        `gorm:"foreignKey:TermID" json:"visit,omitempty"`
}

func (Term) TableName() string {
	return "terms"
}

// IsPast reports whether the term already started relative to now.
// Zero-padded "HH:MM" strings compare correctly byte-wise.
func (t *Term) IsPast(now time.Time) bool {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	day := time.Date(t.Date.Year(), t.Date.Month(), t.Date.Day(), 0, 0, 0, 0, now.Location())

	if day.Before(today) {
		return true
	}
	return day.Equal(today) && t.HourFrom < now.Format("15:04")
}

// IsAvailable reports whether a patient can still book this term: no visit
// attached and not in the past. Requires the Visit relation to be preloaded.
func (t *Term) IsAvailable(now time.Time) bool {
	return t.Visit == nil && !t.IsPast(now)
}
