package usecase

import (
	"context"
	"errors"

	"clinic-scheduling-api/internal/converter"
	"clinic-scheduling-api/internal/delivery/dto"
	"clinic-scheduling-api/internal/domain/entity"
	"clinic-scheduling-api/internal/domain/repository"
	"clinic-scheduling-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrDoctorNotFound = errors.New("doctor not found")

type DoctorProfileUsecase interface {
	GetDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error)
	GetAllDoctors(ctx context.Context) (*dto.DoctorListResponse, error)
	GetDoctorsBySpecialization(ctx context.Context, specializationID int) (*dto.DoctorListResponse, error)
	UpdateProfile(ctx context.Context, actor entity.Actor, req *dto.UpdateDoctorProfileRequest) (*dto.DoctorProfileResponse, error)
}

type doctorProfileUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	doctorProfileRepo  repository.DoctorProfileRepository
	specializationRepo repository.SpecializationRepository
	procedureRepo      repository.ProcedureRepository
	auditService       service.AuditService
}

func NewDoctorProfileUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorProfileRepo repository.DoctorProfileRepository,
	specializationRepo repository.SpecializationRepository,
	procedureRepo repository.ProcedureRepository,
	auditService service.AuditService,
) DoctorProfileUsecase {
	return &doctorProfileUsecase{
		db:                 db,
		log:                log,
		doctorProfileRepo:  doctorProfileRepo,
		specializationRepo: specializationRepo,
		procedureRepo:      procedureRepo,
		auditService:       auditService,
	}
}

func (u *doctorProfileUsecase) GetDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorProfileRepo.FindByUserID(u.db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorProfileUsecase) GetAllDoctors(ctx context.Context) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorProfileRepo.FindAll(u.db)
	if err != nil {
		u.log.Warnf("Failed to find doctors: %+v", err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	}, nil
}

func (u *doctorProfileUsecase) GetDoctorsBySpecialization(ctx context.Context, specializationID int) (*dto.DoctorListResponse, error) {
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

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	}, nil
}

// UpdateProfile lets a doctor change their title and replace the offered
// specialization and procedure sets.
func (u *doctorProfileUsecase) UpdateProfile(ctx context.Context, actor entity.Actor, req *dto.UpdateDoctorProfileRequest) (*dto.DoctorProfileResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorProfileRepo.FindByUserID(tx, actor.ID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	if req.TitleDegree != 0 {
		doctor.TitleDegree = req.TitleDegree
		if err := u.doctorProfileRepo.Update(tx, doctor); err != nil {
			u.log.Warnf("Failed to update doctor profile: %+v", err)
			return nil, err
		}
	}

	if req.SpecializationIDs != nil {
		specializations := make([]entity.Specialization, 0, len(req.SpecializationIDs))
		for _, id := range req.SpecializationIDs {
			spec, err := u.specializationRepo.FindByID(tx, id)
			if err != nil {
				u.log.Warnf("Failed to find specialization: %+v", err)
				return nil, err
			}
			if spec == nil {
				return nil, ErrSpecializationNotFound
			}
			specializations = append(specializations, *spec)
		}
		if err := u.doctorProfileRepo.ReplaceSpecializations(tx, doctor, specializations); err != nil {
			u.log.Warnf("Failed to replace specializations: %+v", err)
			return nil, err
		}
		doctor.Specializations = specializations
	}

	if req.ProcedureIDs != nil {
		procedures := make([]entity.Procedure, 0, len(req.ProcedureIDs))
		for _, id := range req.ProcedureIDs {
			procedure, err := u.procedureRepo.FindByID(tx, id)
			if err != nil {
				u.log.Warnf("Failed to find procedure: %+v", err)
				return nil, err
			}
			if procedure == nil {
				return nil, ErrProcedureNotFound
			}
			procedures = append(procedures, *procedure)
		}
		if err := u.doctorProfileRepo.ReplaceProcedures(tx, doctor, procedures); err != nil {
			u.log.Warnf("Failed to replace procedures: %+v", err)
			return nil, err
		}
		doctor.Procedures = procedures
	}

	u.auditService.LogCreate(tx, &actor.ID, entity.AuditActionProfileUpdate, "doctor_profile", actor.ID.String(), req)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DoctorProfileToResponse(doctor), nil
}
