package repository

import (
	"errors"

	"clinic-scheduling-api/internal/domain/entity"
	domainRepo "clinic-scheduling-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type visitRepository struct{}

func NewVisitRepository() domainRepo.VisitRepository {
	return &visitRepository{}
}

func (r *visitRepository) Create(db *gorm.DB, visit *entity.Visit) error {
	return db.Create(visit).Error
}

func (r *visitRepository) FindByID(db *gorm.DB, id int) (*entity.Visit, error) {
	var visit entity.Visit
	err := db.Preload("Term.Office").Preload("Doctor.User").Preload("Patient.User").Preload("Procedure").
		Where("id = ?", id).First(&visit).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &visit, nil
}

func (r *visitRepository) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Visit, error) {
	var visits []entity.Visit
	err := db.Preload("Term.Office").Preload("Doctor.User").Preload("Procedure").
		Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&visits).Error
	if err != nil {
		return nil, err
	}
	return visits, nil
}

func (r *visitRepository) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Visit, error) {
	var visits []entity.Visit
	err := db.Preload("Term.Office").Preload("Patient.User").Preload("Procedure").
		Where("doctor_id = ?", doctorID).
		Order("created_at DESC").
		Find(&visits).Error
	if err != nil {
		return nil, err
	}
	return visits, nil
}

func (r *visitRepository) ExistsByTermID(db *gorm.DB, termID int) (bool, error) {
	var count int64
	err := db.Model(&entity.Visit{}).Where("term_id = ?", termID).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *visitRepository) Delete(db *gorm.DB, id int) (int64, error) {
	affected := db.Where("id = ?", id).Delete(&entity.Visit{})
	return affected.RowsAffected, affected.Error
}
