package repository

import (
	"clinic-scheduling-api/internal/domain/entity"

	"gorm.io/gorm"
)

type OfficeRepository interface {
	Create(db *gorm.DB, office *entity.Office) error
	FindByID(db *gorm.DB, id int) (*entity.Office, error)
	FindAll(db *gorm.DB) ([]entity.Office, error)
	Delete(db *gorm.DB, id int) (int64, error)
}
