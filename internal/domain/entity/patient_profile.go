package entity

// PatientProfile represents patient-specific profile data
type PatientProfile struct {
	Person

	IdentificationType int    `gorm:"not null" json:"identification_type"`
	PhoneNumber        string `gorm:"type:varchar(15);uniqueIndex;not null" json:"phone_number"`

	// Relationships
	Visits []Visit `gorm:"foreignKey:PatientID" json:"visits,omitempty"`
}

func (PatientProfile) TableName() string {
	return "patient_profiles"
}

// Identification document types
const (
	IdentificationIDCard   = 1
	IdentificationPassport = 2
)
