package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateVisitRequest struct {
	TermID      int `json:"term_id" validate:"required,min=1"`
	ProcedureID int `json:"procedure_id" validate:"required,min=1"`
}

// Response DTOs

type VisitResponse struct {
	ID        int                `json:"id"`
	PatientID uuid.UUID          `json:"patient_id"`
	Patient   *PatientResponse   `json:"patient,omitempty"`
	DoctorID  uuid.UUID          `json:"doctor_id"`
	Doctor    *DoctorResponse    `json:"doctor,omitempty"`
	Term      *TermResponse      `json:"term,omitempty"`
	Procedure *ProcedureResponse `json:"procedure,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
}

type VisitListResponse struct {
	Visits []VisitResponse `json:"visits"`
	Total  int             `json:"total"`
}
