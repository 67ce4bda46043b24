package repository

import (
	"time"

	"clinic-scheduling-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TermRepository interface {
	Create(db *gorm.DB, term *entity.Term) error
	FindByID(db *gorm.DB, id int) (*entity.Term, error)
	// LockWindowClaims takes transaction-scoped advisory locks on the
	// doctor's and the office's schedule for the date. Row locks alone cannot
	// serialize claims on a date with no terms yet, so this must be called
	// before FindByDateForUpdate. Must run inside a transaction.
	LockWindowClaims(db *gorm.DB, date time.Time, officeID int, doctorID uuid.UUID) error
	// FindByDateForUpdate loads every term on the date that shares the office
	// or the doctor with the candidate, locking the rows until the enclosing
	// transaction commits. Conflict checks must run on this set.
	FindByDateForUpdate(db *gorm.DB, date time.Time, officeID int, doctorID uuid.UUID) ([]entity.Term, error)
	FindByDoctorBetween(db *gorm.DB, doctorID uuid.UUID, from, to time.Time) ([]entity.Term, error)
	FindFiltered(db *gorm.DB, filter *entity.TermFilter) ([]entity.Term, error)
	Delete(db *gorm.DB, id int) (int64, error)
}
