package repository

import (
	"clinic-scheduling-api/internal/domain/entity"

	"gorm.io/gorm"
)

type ProcedureRepository interface {
	Create(db *gorm.DB, procedure *entity.Procedure) error
	FindByID(db *gorm.DB, id int) (*entity.Procedure, error)
	FindAll(db *gorm.DB) ([]entity.Procedure, error)
	Delete(db *gorm.DB, id int) (int64, error)
}
