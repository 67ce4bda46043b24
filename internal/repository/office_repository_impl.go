package repository

import (
	"errors"

	"clinic-scheduling-api/internal/domain/entity"
	domainRepo "clinic-scheduling-api/internal/domain/repository"

	"gorm.io/gorm"
)

type officeRepository struct{}

func NewOfficeRepository() domainRepo.OfficeRepository {
	return &officeRepository{}
}

func (r *officeRepository) Create(db *gorm.DB, office *entity.Office) error {
	return db.Create(office).Error
}

func (r *officeRepository) FindByID(db *gorm.DB, id int) (*entity.Office, error) {
	var office entity.Office
	err := db.Where("id = ?", id).First(&office).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &office, nil
}

func (r *officeRepository) FindAll(db *gorm.DB) ([]entity.Office, error) {
	var offices []entity.Office
	err := db.Order("number ASC").Find(&offices).Error
	if err != nil {
		return nil, err
	}
	return offices, nil
}

func (r *officeRepository) Delete(db *gorm.DB, id int) (int64, error) {
	affected := db.Where("id = ?", id).Delete(&entity.Office{})
	return affected.RowsAffected, affected.Error
}
