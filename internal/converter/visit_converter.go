package converter

import (
	"time"

	"clinic-scheduling-api/internal/delivery/dto"
	"clinic-scheduling-api/internal/domain/entity"

	"github.com/google/uuid"
)

// VisitToResponse converts a Visit entity to VisitResponse DTO
// Nested objects are included only when their relations are preloaded
func VisitToResponse(visit *entity.Visit, now time.Time) *dto.VisitResponse {
	if visit == nil {
		return nil
	}

	response := &dto.VisitResponse{
		ID:        visit.ID,
		PatientID: visit.PatientID,
		DoctorID:  visit.DoctorID,
		CreatedAt: visit.CreatedAt,
	}

	if visit.Patient.UserID != uuid.Nil {
		response.Patient = PatientToResponse(&visit.Patient)
	}
	if visit.Doctor.UserID != uuid.Nil {
		response.Doctor = DoctorToResponse(&visit.Doctor)
	}
	if visit.Term.ID != 0 {
		response.Term = TermToResponse(&visit.Term, now)
	}
	if visit.Procedure.ID != 0 {
		response.Procedure = ProcedureToResponse(&visit.Procedure)
	}

	return response
}

// VisitsToResponses converts a slice of Visit entities to VisitResponse DTOs
func VisitsToResponses(visits []entity.Visit, now time.Time) []dto.VisitResponse {
	responses := make([]dto.VisitResponse, len(visits))
	for i := range visits {
		responses[i] = *VisitToResponse(&visits[i], now)
	}
	return responses
}
