package entity

// Specialization represents a medical specialization held by doctors
type Specialization struct {
	ID   int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"type:varchar(45);uniqueIndex;not null" json:"name"`

	// Relationships
	Doctors []DoctorProfile `gorm:"many2many:doctor_specializations;foreignKey:ID;joinForeignKey:SpecializationID;References:UserID;joinReferences:DoctorID" json:"doctors,omitempty"`
}

func (Specialization) TableName() string {
	return "specializations"
}
