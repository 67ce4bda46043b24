package converter

import (
	"time"

	"clinic-scheduling-api/internal/delivery/dto"
	"clinic-scheduling-api/internal/domain/entity"

	"github.com/google/uuid"
)

// TermToResponse converts a Term entity to TermResponse DTO.
// Availability is computed against now, so the Visit relation must be
// preloaded when the caller wants an accurate flag.
func TermToResponse(term *entity.Term, now time.Time) *dto.TermResponse {
	if term == nil {
		return nil
	}

	response := &dto.TermResponse{
		ID:        term.ID,
		Date:      term.Date.Format("2006-01-02"),
		HourFrom:  term.HourFrom,
		HourTo:    term.HourTo,
		DoctorID:  term.DoctorID,
		OfficeID:  term.OfficeID,
		Available: term.IsAvailable(now),
	}

	if term.Office.ID != 0 {
		response.OfficeNumber = term.Office.Number
	}
	if term.Doctor.UserID != uuid.Nil {
		response.Doctor = DoctorToResponse(&term.Doctor)
	}

	return response
}

// TermsToResponses converts a slice of Term entities to TermResponse DTOs
func TermsToResponses(terms []entity.Term, now time.Time) []dto.TermResponse {
	responses := make([]dto.TermResponse, len(terms))
	for i := range terms {
		responses[i] = *TermToResponse(&terms[i], now)
	}
	return responses
}
