package repository

import (
	"errors"
	"hash/fnv"
	"strconv"
	"time"

	"clinic-scheduling-api/internal/domain/entity"
	domainRepo "clinic-scheduling-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type termRepository struct{}

func NewTermRepository() domainRepo.TermRepository {
	return &termRepository{}
}

func (r *termRepository) Create(db *gorm.DB, term *entity.Term) error {
	return db.Create(term).Error
}

func (r *termRepository) FindByID(db *gorm.DB, id int) (*entity.Term, error) {
	var term entity.Term
	err := db.Preload("Doctor.User").Preload("Doctor.Procedures").Preload("Office").Preload("Visit").
		Where("id = ?", id).First(&term).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &term, nil
}

// scheduleLockKey hashes a schedule identity to an advisory lock key. Parts
// are separated by a NUL byte so distinct identities cannot collide by
// concatenation.
func scheduleLockKey(parts ...string) int64 {
	h := fnv.New64a()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{0})
	}
	return int64(h.Sum64())
}

// LockWindowClaims serializes term claims that share the doctor or the office
// on the date, including claims on a date with no rows yet. The doctor lock
// is always taken before the office lock so concurrent claims cannot
// deadlock. Locks are released when the transaction ends.
func (r *termRepository) LockWindowClaims(db *gorm.DB, date time.Time, officeID int, doctorID uuid.UUID) error {
	day := date.Format("2006-01-02")
	keys := []int64{
		scheduleLockKey("doctor", doctorID.String(), day),
		scheduleLockKey("office", strconv.Itoa(officeID), day),
	}
	for _, key := range keys {
		if err := db.Exec("SELECT pg_advisory_xact_lock(?)", key).Error; err != nil {
			return err
		}
	}
	return nil
}

// FindByDateForUpdate locks the day's rows for the office and the doctor so
// that two concurrent claims on overlapping windows serialize on the same
// row set. Must run inside a transaction.
func (r *termRepository) FindByDateForUpdate(db *gorm.DB, date time.Time, officeID int, doctorID uuid.UUID) ([]entity.Term, error) {
	var terms []entity.Term
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("date = ?", date.Format("2006-01-02")).
		Where("office_id = ? OR doctor_id = ?", officeID, doctorID).
		Order("hour_from ASC").
		Find(&terms).Error
	if err != nil {
		return nil, err
	}
	return terms, nil
}

func (r *termRepository) FindByDoctorBetween(db *gorm.DB, doctorID uuid.UUID, from, to time.Time) ([]entity.Term, error) {
	var terms []entity.Term
	err := db.Preload("Office").Preload("Visit").
		Where("doctor_id = ?", doctorID).
		Where("date BETWEEN ? AND ?", from.Format("2006-01-02"), to.Format("2006-01-02")).
		Order("date ASC, hour_from ASC").
		Find(&terms).Error
	if err != nil {
		return nil, err
	}
	return terms, nil
}

// FindFiltered returns terms for doctors whose user account is active.
// Supports optional filters: date range, doctor last name, and specialization.
func (r *termRepository) FindFiltered(db *gorm.DB, filter *entity.TermFilter) ([]entity.Term, error) {
	var terms []entity.Term
	query := db.
		Joins("JOIN doctor_profiles ON doctor_profiles.user_id = terms.doctor_id").
		Joins("JOIN users ON users.id = doctor_profiles.user_id").
		Where("users.is_active = ?", true)

	if filter != nil {
		if filter.DateFrom != "" {
			query = query.Where("terms.date >= ?", filter.DateFrom)
		}
		if filter.DateTo != "" {
			query = query.Where("terms.date <= ?", filter.DateTo)
		}
		if filter.DoctorName != "" {
			query = query.Where("users.last_name ILIKE ?", "%"+filter.DoctorName+"%")
		}
		if filter.Specialization != "" {
			query = query.
				Joins("JOIN doctor_specializations ON doctor_specializations.doctor_id = doctor_profiles.user_id").
				Joins("JOIN specializations ON specializations.id = doctor_specializations.specialization_id").
				Where("specializations.name ILIKE ?", "%"+filter.Specialization+"%")
		}
	}

	err := query.
		Preload("Doctor.User").Preload("Office").Preload("Visit").
		Order("date ASC, hour_from ASC").
		Find(&terms).Error
	if err != nil {
		return nil, err
	}
	return terms, nil
}

func (r *termRepository) Delete(db *gorm.DB, id int) (int64, error) {
	affected := db.Where("id = ?", id).Delete(&entity.Term{})
	return affected.RowsAffected, affected.Error
}
