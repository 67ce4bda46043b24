package repository

import (
	"clinic-scheduling-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VisitRepository interface {
	Create(db *gorm.DB, visit *entity.Visit) error
	FindByID(db *gorm.DB, id int) (*entity.Visit, error)
	FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Visit, error)
	FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Visit, error)
	ExistsByTermID(db *gorm.DB, termID int) (bool, error)
	Delete(db *gorm.DB, id int) (int64, error)
}
