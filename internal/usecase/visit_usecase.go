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
	"clinic-scheduling-api/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrVisitNotFound       = errors.New("visit not found")
	ErrTermAlreadyBooked   = errors.New("term is already booked")
	ErrTermInPast          = errors.New("term is in the past")
	ErrProcedureNotOffered = errors.New("doctor does not offer this procedure")
	ErrNotVisitParticipant = errors.New("visit belongs to another user")
)

type VisitUsecase interface {
	BookVisit(ctx context.Context, actor entity.Actor, req *dto.CreateVisitRequest) (*dto.VisitResponse, error)
	CancelVisit(ctx context.Context, actor entity.Actor, visitID int) error
	GetVisit(ctx context.Context, actor entity.Actor, visitID int) (*dto.VisitResponse, error)
	GetMyVisits(ctx context.Context, actor entity.Actor) (*dto.VisitListResponse, error)
}

type visitUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	visitRepo          repository.VisitRepository
	termRepo           repository.TermRepository
	patientProfileRepo repository.PatientProfileRepository
	procedureRepo      repository.ProcedureRepository
	auditService       service.AuditService
}

func NewVisitUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	visitRepo repository.VisitRepository,
	termRepo repository.TermRepository,
	patientProfileRepo repository.PatientProfileRepository,
	procedureRepo repository.ProcedureRepository,
	auditService service.AuditService,
) VisitUsecase {
	return &visitUsecase{
		db:                 db,
		log:                log,
		visitRepo:          visitRepo,
		termRepo:           termRepo,
		patientProfileRepo: patientProfileRepo,
		procedureRepo:      procedureRepo,
		auditService:       auditService,
	}
}

// BookVisit claims a term for the acting patient. The unique index on
// visits.term_id is the final arbiter when two patients race for the same
// term, the loser maps to ErrTermAlreadyBooked.
func (u *visitUsecase) BookVisit(ctx context.Context, actor entity.Actor, req *dto.CreateVisitRequest) (*dto.VisitResponse, error) {
	now := time.Now()

	patient, err := u.patientProfileRepo.FindByUserID(u.db, actor.ID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	term, err := u.termRepo.FindByID(tx, req.TermID)
	if err != nil {
		u.log.Warnf("Failed to find term: %+v", err)
		return nil, err
	}
	if term == nil {
		return nil, ErrTermNotFound
	}
	if term.IsPast(now) {
		return nil, ErrTermInPast
	}
	if term.Visit != nil {
		return nil, ErrTermAlreadyBooked
	}

	procedure, err := u.procedureRepo.FindByID(tx, req.ProcedureID)
	if err != nil {
		u.log.Warnf("Failed to find procedure: %+v", err)
		return nil, err
	}
	if procedure == nil {
		return nil, ErrProcedureNotFound
	}
	if !term.Doctor.OffersProcedure(req.ProcedureID) {
		return nil, ErrProcedureNotOffered
	}

	visit := &entity.Visit{
		PatientID:   actor.ID,
		DoctorID:    term.DoctorID,
		TermID:      term.ID,
		ProcedureID: procedure.ID,
	}
	if err := u.visitRepo.Create(tx, visit); err != nil {
		if isDuplicateKeyError(err, "term_id") {
			return nil, ErrTermAlreadyBooked
		}
		u.log.Warnf("Failed to create visit: %+v", err)
		return nil, err
	}

	u.auditService.LogCreate(tx, &actor.ID, entity.AuditActionVisitCreate, "visit", strconv.Itoa(visit.ID), map[string]interface{}{
		"visit":   visit,
		"patient": entity.SubjectLabel(patient),
		"doctor":  entity.SubjectLabel(&term.Doctor),
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	visit.Term = *term
	visit.Doctor = term.Doctor
	visit.Procedure = *procedure
	return converter.VisitToResponse(visit, now), nil
}

// CancelVisit removes the visit, which frees the term for booking again.
// Allowed for the visit's patient, the term's doctor, and admins.
func (u *visitUsecase) CancelVisit(ctx context.Context, actor entity.Actor, visitID int) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	visit, err := u.visitRepo.FindByID(tx, visitID)
	if err != nil {
		u.log.Warnf("Failed to find visit: %+v", err)
		return err
	}
	if visit == nil {
		return ErrVisitNotFound
	}

	if !actor.IsAdmin() && visit.PatientID != actor.ID && visit.DoctorID != actor.ID {
		return ErrNotVisitParticipant
	}

	if _, err := u.visitRepo.Delete(tx, visitID); err != nil {
		u.log.Warnf("Failed to delete visit: %+v", err)
		return err
	}

	u.auditService.LogDelete(tx, &actor.ID, entity.AuditActionVisitCancel, "visit", strconv.Itoa(visit.ID), visit)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *visitUsecase) GetVisit(ctx context.Context, actor entity.Actor, visitID int) (*dto.VisitResponse, error) {
	visit, err := u.visitRepo.FindByID(u.db, visitID)
	if err != nil {
		u.log.Warnf("Failed to find visit: %+v", err)
		return nil, err
	}
	if visit == nil {
		return nil, ErrVisitNotFound
	}

	if !actor.IsAdmin() && visit.PatientID != actor.ID && visit.DoctorID != actor.ID {
		return nil, ErrNotVisitParticipant
	}

	return converter.VisitToResponse(visit, time.Now()), nil
}

// GetMyVisits lists the visits where the actor participates: booked visits
// for patients, hosted visits for doctors.
func (u *visitUsecase) GetMyVisits(ctx context.Context, actor entity.Actor) (*dto.VisitListResponse, error) {
	var (
		visits []entity.Visit
		err    error
	)
	if actor.IsDoctor() {
		visits, err = u.visitRepo.FindByDoctorID(u.db, actor.ID)
	} else {
		visits, err = u.visitRepo.FindByPatientID(u.db, actor.ID)
	}
	if err != nil {
		u.log.Warnf("Failed to find visits: %+v", err)
		return nil, err
	}

	return &dto.VisitListResponse{
		Visits: converter.VisitsToResponses(visits, time.Now()),
		Total:  len(visits),
	}, nil
}
