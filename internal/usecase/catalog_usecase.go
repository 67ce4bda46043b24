package usecase

import (
	"context"
	"errors"
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
	ErrSpecializationNotFound = errors.New("specialization not found")
	ErrSpecializationExists   = errors.New("specialization already exists")
	ErrProcedureNotFound      = errors.New("procedure not found")
	ErrProcedureExists        = errors.New("procedure already exists")
	ErrOfficeNotFound         = errors.New("office not found")
	ErrOfficeExists           = errors.New("office number already exists")
)

// CatalogUsecase manages the clinic's reference data: specializations,
// procedures and offices. Reads are public, writes are admin only.
type CatalogUsecase interface {
	CreateSpecialization(ctx context.Context, actor entity.Actor, req *dto.CreateSpecializationRequest) (*dto.SpecializationResponse, error)
	GetAllSpecializations(ctx context.Context) (*dto.SpecializationListResponse, error)
	GetSpecializationSchedule(ctx context.Context, specializationID, offset int) (*dto.SpecializationDetailResponse, error)
	DeleteSpecialization(ctx context.Context, actor entity.Actor, id int) error

	CreateProcedure(ctx context.Context, actor entity.Actor, req *dto.CreateProcedureRequest) (*dto.ProcedureResponse, error)
	GetAllProcedures(ctx context.Context) (*dto.ProcedureListResponse, error)
	DeleteProcedure(ctx context.Context, actor entity.Actor, id int) error

	CreateOffice(ctx context.Context, actor entity.Actor, req *dto.CreateOfficeRequest) (*dto.OfficeResponse, error)
	GetAllOffices(ctx context.Context) (*dto.OfficeListResponse, error)
	DeleteOffice(ctx context.Context, actor entity.Actor, id int) error
}

type catalogUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	specializationRepo repository.SpecializationRepository
	procedureRepo      repository.ProcedureRepository
	officeRepo         repository.OfficeRepository
	doctorProfileRepo  repository.DoctorProfileRepository
	termRepo           repository.TermRepository
	auditService       service.AuditService
}

func NewCatalogUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	specializationRepo repository.SpecializationRepository,
	procedureRepo repository.ProcedureRepository,
	officeRepo repository.OfficeRepository,
	doctorProfileRepo repository.DoctorProfileRepository,
	termRepo repository.TermRepository,
	auditService service.AuditService,
) CatalogUsecase {
	return &catalogUsecase{
		db:                 db,
		log:                log,
		specializationRepo: specializationRepo,
		procedureRepo:      procedureRepo,
		officeRepo:         officeRepo,
		doctorProfileRepo:  doctorProfileRepo,
		termRepo:           termRepo,
		auditService:       auditService,
	}
}

func (u *catalogUsecase) CreateSpecialization(ctx context.Context, actor entity.Actor, req *dto.CreateSpecializationRequest) (*dto.SpecializationResponse, error) {
	specialization := &entity.Specialization{Name: req.Name}

	if err := u.specializationRepo.Create(u.db.WithContext(ctx), specialization); err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrSpecializationExists
		}
		u.log.Warnf("Failed to create specialization: %+v", err)
		return nil, err
	}

	return converter.SpecializationToResponse(specialization), nil
}

func (u *catalogUsecase) GetAllSpecializations(ctx context.Context) (*dto.SpecializationListResponse, error) {
	specializations, err := u.specializationRepo.FindAll(u.db)
	if err != nil {
		u.log.Warnf("Failed to find specializations: %+v", err)
		return nil, err
	}

	return &dto.SpecializationListResponse{
		Specializations: converter.SpecializationsToResponses(specializations),
		Total:           len(specializations),
	}, nil
}

// GetSpecializationSchedule renders the booking page data: every doctor of
// the specialization with their Monday-to-Saturday grid for the requested
// week.
func (u *catalogUsecase) GetSpecializationSchedule(ctx context.Context, specializationID, offset int) (*dto.SpecializationDetailResponse, error) {
	specialization, err := u.specializationRepo.FindByID(u.db, specializationID)
	if err != nil {
		u.log.Warnf("Failed to find specialization: %+v", err)
		return nil, err
	}
	if specialization == nil {
		return nil, ErrSpecializationNotFound
	}

	doctors, err := u.doctorProfileRepo.FindBySpecialization(u.db, specializationID)
	if err != nil {
		u.log.Warnf("Failed to find doctors by specialization: %+v", err)
		return nil, err
	}

	now := time.Now()
	weeks := make([]dto.DoctorWeekResponse, 0, len(doctors))
	for i := range doctors {
		week, err := buildDoctorWeek(u.db, u.log, u.termRepo, doctors[i].UserID, now, offset)
		if err != nil {
			return nil, err
		}
		weeks = append(weeks, *week)
	}

	return &dto.SpecializationDetailResponse{
		Specialization: *converter.SpecializationToResponse(specialization),
		Offset:         offset,
		Doctors:        weeks,
	}, nil
}

func (u *catalogUsecase) DeleteSpecialization(ctx context.Context, actor entity.Actor, id int) error {
	affected, err := u.specializationRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete specialization: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrSpecializationNotFound
	}

	return nil
}

func (u *catalogUsecase) CreateProcedure(ctx context.Context, actor entity.Actor, req *dto.CreateProcedureRequest) (*dto.ProcedureResponse, error) {
	procedure := &entity.Procedure{
		Name:  req.Name,
		Price: req.Price,
	}

	if err := u.procedureRepo.Create(u.db.WithContext(ctx), procedure); err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrProcedureExists
		}
		u.log.Warnf("Failed to create procedure: %+v", err)
		return nil, err
	}

	return converter.ProcedureToResponse(procedure), nil
}

func (u *catalogUsecase) GetAllProcedures(ctx context.Context) (*dto.ProcedureListResponse, error) {
	procedures, err := u.procedureRepo.FindAll(u.db)
	if err != nil {
		u.log.Warnf("Failed to find procedures: %+v", err)
		return nil, err
	}

	return &dto.ProcedureListResponse{
		Procedures: converter.ProceduresToResponses(procedures),
		Total:      len(procedures),
	}, nil
}

func (u *catalogUsecase) DeleteProcedure(ctx context.Context, actor entity.Actor, id int) error {
	affected, err := u.procedureRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete procedure: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrProcedureNotFound
	}

	return nil
}

func (u *catalogUsecase) CreateOffice(ctx context.Context, actor entity.Actor, req *dto.CreateOfficeRequest) (*dto.OfficeResponse, error) {
	office := &entity.Office{Number: req.Number}

	if err := u.officeRepo.Create(u.db.WithContext(ctx), office); err != nil {
		if isDuplicateKeyError(err, "number") {
			return nil, ErrOfficeExists
		}
		u.log.Warnf("Failed to create office: %+v", err)
		return nil, err
	}

	return converter.OfficeToResponse(office), nil
}

func (u *catalogUsecase) GetAllOffices(ctx context.Context) (*dto.OfficeListResponse, error) {
	offices, err := u.officeRepo.FindAll(u.db)
	if err != nil {
		u.log.Warnf("Failed to find offices: %+v", err)
		return nil, err
	}

	return &dto.OfficeListResponse{
		Offices: converter.OfficesToResponses(offices),
		Total:   len(offices),
	}, nil
}

func (u *catalogUsecase) DeleteOffice(ctx context.Context, actor entity.Actor, id int) error {
	affected, err := u.officeRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete office: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrOfficeNotFound
	}

	return nil
}
