package entity

import "github.com/google/uuid"

// Person carries the identity fields shared by doctor and patient profiles.
// Profiles embed it (composition, no inheritance); the PESEL column is unique
// per profile table.
type Person struct {
	UserID uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	PESEL  string    `gorm:"type:char(11);uniqueIndex;not null" json:"pesel"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// FullName joins the linked user's first and last name.
func (p *Person) FullName() string {
	return p.User.FirstName + " " + p.User.LastName
}

// NationalID returns the PESEL number.
func (p *Person) NationalID() string {
	return p.PESEL
}

// Identified is implemented by every profile that carries person identity.
type Identified interface {
	FullName() string
	NationalID() string
}

// SubjectLabel renders a profile for the audit trail, full name plus the
// national ID. Requires the profile's User relation to be loaded.
func SubjectLabel(p Identified) string {
	return p.FullName() + " (" + p.NationalID() + ")"
}

var (
	_ Identified = (*DoctorProfile)(nil)
	_ Identified = (*PatientProfile)(nil)
)
