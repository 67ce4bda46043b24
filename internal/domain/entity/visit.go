package entity

import (
	"time"

	"github.com/google/uuid"
)

// Visit is a confirmed appointment: one patient, the term's doctor, the term
// itself and the chosen procedure. The unique index on TermID enforces at
// most one visit per term; cancelling the visit frees the term again.
type Visit struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID   uuid.UUID `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID    uuid.UUID `gorm:"type:uuid;not null;index" json:"doctor_id"`
	TermID      int       `gorm:"not null;uniqueIndex" json:"term_id"`
	ProcedureID int       `gorm:"not null" json:"procedure_id"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Patient   PatientProfile `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor    DoctorProfile  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Term      Term           `gorm:"foreignKey:TermID" json:"term,omitempty"`
	Procedure Procedure      `gorm:"foreignKey:ProcedureID" json:"procedure,omitempty"`
}

func (Visit) TableName() string {
	return "visits"
}
