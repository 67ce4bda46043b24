package usecase

import (
	"context"
	"errors"
	"strconv"
	"time"

	"clinic-scheduling-api/internal/converter"
	"clinic-scheduling-api/internal/delivery/dto"
	"clinic-scheduling-api/internal/domain/entity"
	"clinic-scheduling-api/internal/domain/repository"
	"clinic-scheduling-api/internal/scheduling"
	"clinic-scheduling-api/internal/service"
	"clinic-scheduling-api/internal/validation"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrTermNotFound      = errors.New("term not found")
	ErrNotTermOwner      = errors.New("term belongs to another doctor")
	ErrInvalidDateFormat = errors.New("invalid date format, use YYYY-MM-DD")
	ErrWindowTooShort    = errors.New("work window is shorter than one slot")
)

type TermUsecase interface {
	CreateTerm(ctx context.Context, actor entity.Actor, req *dto.CreateTermRequest) (*dto.TermResponse, error)
	CreateTermBatch(ctx context.Context, actor entity.Actor, req *dto.CreateTermBatchRequest) (*dto.TermBatchResponse, error)
	CancelTerm(ctx context.Context, actor entity.Actor, termID int) error
	GetTerm(ctx context.Context, termID int) (*dto.TermResponse, error)
	SearchTerms(ctx context.Context, filter *entity.TermFilter) (*dto.TermListResponse, error)
	GetDoctorWeek(ctx context.Context, doctorID uuid.UUID, offset int) (*dto.DoctorWeekResponse, error)
}

type termUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	termRepo          repository.TermRepository
	doctorProfileRepo repository.DoctorProfileRepository
	officeRepo        repository.OfficeRepository
	auditService      service.AuditService
}

func NewTermUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	termRepo repository.TermRepository,
	doctorProfileRepo repository.DoctorProfileRepository,
	officeRepo repository.OfficeRepository,
	auditService service.AuditService,
) TermUsecase {
	return &termUsecase{
		db:                db,
		log:               log,
		termRepo:          termRepo,
		doctorProfileRepo: doctorProfileRepo,
		officeRepo:        officeRepo,
		auditService:      auditService,
	}
}

// parseTermWindow parses and validates the date and hour fields shared by the
// single and batch create requests.
func (u *termUsecase) parseTermWindow(dateStr, fromStr, toStr string, now time.Time) (time.Time, scheduling.Window, error) {
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return time.Time{}, scheduling.Window{}, ErrInvalidDateFormat
	}

	from, err := scheduling.ParseClock(fromStr)
	if err != nil {
		return time.Time{}, scheduling.Window{}, err
	}
	to, err := scheduling.ParseClock(toStr)
	if err != nil {
		return time.Time{}, scheduling.Window{}, err
	}
	window := scheduling.Window{From: from, To: to}

	if err := scheduling.ValidateWindow(window); err != nil {
		return time.Time{}, scheduling.Window{}, err
	}
	if err := scheduling.ValidateDate(date); err != nil {
		return time.Time{}, scheduling.Window{}, err
	}
	if _, err := validation.ValidateFutureDate(date, now); err != nil {
		return time.Time{}, scheduling.Window{}, err
	}

	return date, window, nil
}

// createTermLocked claims a window inside the given transaction. Advisory
// locks on the doctor's and the office's schedule for the date serialize
// concurrent claims even when the date has no rows yet; the day's existing
// rows are then locked so conflict detection and the insert are atomic.
func (u *termUsecase) createTermLocked(tx *gorm.DB, doctorID uuid.UUID, date time.Time, window scheduling.Window, officeID int) (*entity.Term, error) {
	if err := u.termRepo.LockWindowClaims(tx, date, officeID, doctorID); err != nil {
		u.log.Warnf("Failed to lock schedule for date: %+v", err)
		return nil, err
	}

	existing, err := u.termRepo.FindByDateForUpdate(tx, date, officeID, doctorID)
	if err != nil {
		u.log.Warnf("Failed to lock terms for date: %+v", err)
		return nil, err
	}

	booked := make([]scheduling.BookedWindow, 0, len(existing))
	for _, t := range existing {
		from, err := scheduling.ParseClock(t.HourFrom)
		if err != nil {
			return nil, err
		}
		to, err := scheduling.ParseClock(t.HourTo)
		if err != nil {
			return nil, err
		}
		booked = append(booked, scheduling.BookedWindow{
			Window:   scheduling.Window{From: from, To: to},
			OfficeID: t.OfficeID,
			DoctorID: t.DoctorID.String(),
		})
	}

	candidate := scheduling.Candidate{
		Date:     date,
		Window:   window,
		OfficeID: officeID,
		DoctorID: doctorID.String(),
	}
	if scheduling.Conflicts(candidate, booked) {
		return nil, scheduling.ErrSlotOccupied
	}

	term := &entity.Term{
		Date:     date,
		HourFrom: window.From.String(),
		HourTo:   window.To.String(),
		DoctorID: doctorID,
		OfficeID: officeID,
	}
	if err := u.termRepo.Create(tx, term); err != nil {
		if isDuplicateKeyError(err, "uq_terms_window") {
			return nil, scheduling.ErrSlotOccupied
		}
		u.log.Warnf("Failed to create term: %+v", err)
		return nil, err
	}

	return term, nil
}

func (u *termUsecase) CreateTerm(ctx context.Context, actor entity.Actor, req *dto.CreateTermRequest) (*dto.TermResponse, error) {
	now := time.Now()

	doctor, err := u.doctorProfileRepo.FindByUserID(u.db, actor.ID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	office, err := u.officeRepo.FindByID(u.db, req.OfficeID)
	if err != nil {
		u.log.Warnf("Failed to find office: %+v", err)
		return nil, err
	}
	if office == nil {
		return nil, ErrOfficeNotFound
	}

	date, window, err := u.parseTermWindow(req.Date, req.HourFrom, req.HourTo, now)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	term, err := u.createTermLocked(tx, actor.ID, date, window, req.OfficeID)
	if err != nil {
		return nil, err
	}

	u.auditService.LogCreate(tx, &actor.ID, entity.AuditActionTermCreate, "term", strconv.Itoa(term.ID), term)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	term.Office = *office
	return converter.TermToResponse(term, now), nil
}

// CreateTermBatch partitions the work window into fixed-length slots and
// claims each one in its own transaction. Slots that collide with existing
// terms are reported as skipped, they never fail the batch.
func (u *termUsecase) CreateTermBatch(ctx context.Context, actor entity.Actor, req *dto.CreateTermBatchRequest) (*dto.TermBatchResponse, error) {
	now := time.Now()

	doctor, err := u.doctorProfileRepo.FindByUserID(u.db, actor.ID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	office, err := u.officeRepo.FindByID(u.db, req.OfficeID)
	if err != nil {
		u.log.Warnf("Failed to find office: %+v", err)
		return nil, err
	}
	if office == nil {
		return nil, ErrOfficeNotFound
	}

	date, window, err := u.parseTermWindow(req.Date, req.HourFrom, req.HourTo, now)
	if err != nil {
		return nil, err
	}

	slots := scheduling.Partition(window, req.SlotMinutes)
	if len(slots) == 0 {
		return nil, ErrWindowTooShort
	}

	result := &dto.TermBatchResponse{Requested: len(slots)}
	for _, slot := range slots {
		tx := u.db.WithContext(ctx).Begin()

		term, err := u.createTermLocked(tx, actor.ID, date, slot, req.OfficeID)
		if err != nil {
			tx.Rollback()
			if errors.Is(err, scheduling.ErrSlotOccupied) {
				result.Skipped = append(result.Skipped, dto.SkippedSlot{
					HourFrom: slot.From.String(),
					HourTo:   slot.To.String(),
					Reason:   err.Error(),
				})
				continue
			}
			return nil, err
		}

		if err := tx.Commit().Error; err != nil {
			u.log.Warnf("Failed commit transaction: %+v", err)
			return nil, err
		}

		term.Office = *office
		result.Created++
		result.Terms = append(result.Terms, *converter.TermToResponse(term, now))
	}

	u.auditService.LogCreate(u.db, &actor.ID, entity.AuditActionTermBatchCreate, "term", req.Date, result)

	return result, nil
}

// authorizeTermCancel decides whether the actor may cancel the term. Admins
// and the owning doctor may cancel at any time; an attached visit does not
// block cancellation, it is deleted together with the term.
func authorizeTermCancel(actor entity.Actor, term *entity.Term) error {
	if !actor.IsAdmin() && term.DoctorID != actor.ID {
		return ErrNotTermOwner
	}
	return nil
}

// CancelTerm deletes the term. An attached visit is removed by the schema's
// cascade; both deletions land in the audit trail.
func (u *termUsecase) CancelTerm(ctx context.Context, actor entity.Actor, termID int) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	term, err := u.termRepo.FindByID(tx, termID)
	if err != nil {
		u.log.Warnf("Failed to find term: %+v", err)
		return err
	}
	if term == nil {
		return ErrTermNotFound
	}

	if err := authorizeTermCancel(actor, term); err != nil {
		return err
	}

	if _, err := u.termRepo.Delete(tx, termID); err != nil {
		u.log.Warnf("Failed to delete term: %+v", err)
		return err
	}

	if term.Visit != nil {
		u.auditService.LogDelete(tx, &actor.ID, entity.AuditActionVisitCancel, "visit", strconv.Itoa(term.Visit.ID), term.Visit)
	}
	u.auditService.LogDelete(tx, &actor.ID, entity.AuditActionTermCancel, "term", strconv.Itoa(term.ID), term)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *termUsecase) GetTerm(ctx context.Context, termID int) (*dto.TermResponse, error) {
	term, err := u.termRepo.FindByID(u.db, termID)
	if err != nil {
		u.log.Warnf("Failed to find term: %+v", err)
		return nil, err
	}
	if term == nil {
		return nil, ErrTermNotFound
	}

	return converter.TermToResponse(term, time.Now()), nil
}

func (u *termUsecase) SearchTerms(ctx context.Context, filter *entity.TermFilter) (*dto.TermListResponse, error) {
	terms, err := u.termRepo.FindFiltered(u.db, filter)
	if err != nil {
		u.log.Warnf("Failed to search terms: %+v", err)
		return nil, err
	}

	return &dto.TermListResponse{
		Terms: converter.TermsToResponses(terms, time.Now()),
		Total: len(terms),
	}, nil
}

func (u *termUsecase) GetDoctorWeek(ctx context.Context, doctorID uuid.UUID, offset int) (*dto.DoctorWeekResponse, error) {
	doctor, err := u.doctorProfileRepo.FindByUserID(u.db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	return buildDoctorWeek(u.db, u.log, u.termRepo, doctorID, time.Now(), offset)
}

// buildDoctorWeek assembles the Monday-to-Saturday grid for one doctor.
// Shared with the specialization detail view, which renders one grid per
// doctor of the specialization.
func buildDoctorWeek(db *gorm.DB, log *logrus.Logger, termRepo repository.TermRepository, doctorID uuid.UUID, now time.Time, offset int) (*dto.DoctorWeekResponse, error) {
	monday, saturday := scheduling.WeekWindow(now, offset)

	terms, err := termRepo.FindByDoctorBetween(db, doctorID, monday, saturday)
	if err != nil {
		log.Warnf("Failed to find terms for week: %+v", err)
		return nil, err
	}

	dates := scheduling.WeekDates(monday, saturday)
	days := make(map[string][]dto.TermResponse, len(dates))
	for _, d := range dates {
		days[d.Format("2006-01-02")] = []dto.TermResponse{}
	}
	for i := range terms {
		key := terms[i].Date.Format("2006-01-02")
		days[key] = append(days[key], *converter.TermToResponse(&terms[i], now))
	}

	return &dto.DoctorWeekResponse{
		DoctorID: doctorID,
		Offset:   offset,
		Weekdays: scheduling.WeekdayLabels(dates),
		Days:     days,
	}, nil
}
