package entity

import "github.com/shopspring/decimal"

// Procedure represents a medical treatment a doctor can perform on a patient
type Procedure struct {
	ID    int             `gorm:"primaryKey;autoIncrement" json:"id"`
	Name  string          `gorm:"type:varchar(60);uniqueIndex;not null" json:"name"`
	Price decimal.Decimal `gorm:"type:decimal(6,2);not null" json:"price"`

	// Relationships
	Doctors []DoctorProfile `gorm:"many2many:doctor_procedures;foreignKey:ID;joinForeignKey:ProcedureID;References:UserID;joinReferences:DoctorID" json:"doctors,omitempty"`
}

func (Procedure) TableName() string {
	return "procedures"
}
