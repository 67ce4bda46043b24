package repository

import (
	"clinic-scheduling-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DoctorProfileRepository interface {
	Create(db *gorm.DB, profile *entity.DoctorProfile) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.DoctorProfile, error)
	FindAll(db *gorm.DB) ([]entity.DoctorProfile, error)
	FindBySpecialization(db *gorm.DB, specializationID int) ([]entity.DoctorProfile, error)
	ReplaceProcedures(db *gorm.DB, profile *entity.DoctorProfile, procedures []entity.Procedure) error
	ReplaceSpecializations(db *gorm.DB, profile *entity.DoctorProfile, specializations []entity.Specialization) error
	Update(db *gorm.DB, profile *entity.DoctorProfile) error
	Delete(db *gorm.DB, userID uuid.UUID) error
}
