package entity

// DoctorProfile represents doctor-specific profile data
type DoctorProfile struct {
	Person

	PWZ         int `gorm:"column:pwz;uniqueIndex;not null" json:"pwz"`
	TitleDegree int `gorm:"not null" json:"title_degree"`

	// Relationships
	Specializations []Specialization `gorm:"many2many:doctor_specializations;foreignKey:UserID;joinForeignKey:DoctorID" json:"specializations,omitempty"`
	Procedures      []Procedure      `gorm:"many2many:doctor_procedures;foreignKey:UserID;joinForeignKey:DoctorID" json:"procedures,omitempty"`
	Terms           []Term           `gorm:"foreignKey:DoctorID" json:"terms,omitempty"`
}

func (DoctorProfile) TableName() string {
	return "doctor_profiles"
}

// Scientific title/degree constants
const (
	TitleLekarz         = 1 // lek.
	TitleLekarzDentysta = 2 // lek. dent.
	TitleDoktor         = 3 // dr n. med.
	TitleDoktorHab      = 4 // dr hab. n. med.
	TitleProfesor       = 5 // prof. dr hab. n. med.
)

// TitleDegreeLabel maps the degree enum to its display form.
var TitleDegreeLabel = map[int]string{
	TitleLekarz:         "lek.",
	TitleLekarzDentysta: "lek. dent.",
	TitleDoktor:         "dr n. med.",
	TitleDoktorHab:      "dr hab. n. med.",
	TitleProfesor:       "prof. dr hab. n. med.",
}

// OffersProcedure checks the preloaded procedure set for the given procedure.
func (d *DoctorProfile) OffersProcedure(procedureID int) bool {
	for _, p := range d.Procedures {
		if p.ID == procedureID {
			return true
		}
	}
	return false
}
