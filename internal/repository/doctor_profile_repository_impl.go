package repository

import (
	"errors"

	"clinic-scheduling-api/internal/domain/entity"
	domainRepo "clinic-scheduling-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type doctorProfileRepository struct{}

func NewDoctorProfileRepository() domainRepo.DoctorProfileRepository {
	return &doctorProfileRepository{}
}

func (r *doctorProfileRepository) Create(db *gorm.DB, profile *entity.DoctorProfile) error {
	return db.Create(profile).Error
}

func (r *doctorProfileRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.DoctorProfile, error) {
	var profile entity.DoctorProfile
	err := db.Preload("User").Preload("Specializations").Preload("Procedures").
		Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *doctorProfileRepository) FindAll(db *gorm.DB) ([]entity.DoctorProfile, error) {
	var profiles []entity.DoctorProfile
	err := db.Preload("User").Preload("Specializations").Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

// FindBySpecialization orders by last then first name, the order the
// specialization schedule grid renders doctors in.
func (r *doctorProfileRepository) FindBySpecialization(db *gorm.DB, specializationID int) ([]entity.DoctorProfile, error) {
	var profiles []entity.DoctorProfile
	err := db.
		Joins("JOIN doctor_specializations ON doctor_specializations.doctor_id = doctor_profiles.user_id").
		Joins("JOIN users ON users.id = doctor_profiles.user_id").
		Where("doctor_specializations.specialization_id = ?", specializationID).
		Order("users.last_name ASC, users.first_name ASC").
		Preload("User").
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *doctorProfileRepository) ReplaceProcedures(db *gorm.DB, profile *entity.DoctorProfile, procedures []entity.Procedure) error {
	return db.Model(profile).Association("Procedures").Replace(procedures)
}

func (r *doctorProfileRepository) ReplaceSpecializations(db *gorm.DB, profile *entity.DoctorProfile, specializations []entity.Specialization) error {
	return db.Model(profile).Association("Specializations").Replace(specializations)
}

func (r *doctorProfileRepository) Update(db *gorm.DB, profile *entity.DoctorProfile) error {
	return db.Omit("User", "Specializations", "Procedures").Save(profile).Error
}

func (r *doctorProfileRepository) Delete(db *gorm.DB, userID uuid.UUID) error {
	return db.Where("user_id = ?", userID).Delete(&entity.DoctorProfile{}).Error
}
