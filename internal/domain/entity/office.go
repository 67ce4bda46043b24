package entity

// Office represents the room where a patient's visit takes place
type Office struct {
	ID     int `gorm:"primaryKey;autoIncrement" json:"id"`
	Number int `gorm:"uniqueIndex;not null" json:"number"`

	// Relationships
	Terms []Term `gorm:"foreignKey:OfficeID" json:"terms,omitempty"`
}

func (Office) TableName() string {
	return "offices"
}
