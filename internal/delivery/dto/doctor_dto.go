package dto

import "github.com/google/uuid"

// Request DTOs

type UpdateDoctorProfileRequest struct {
	TitleDegree       int   `json:"title_degree" validate:"omitempty,min=1,max=5"`
	SpecializationIDs []int `json:"specialization_ids" validate:"omitempty,min=1"`
	ProcedureIDs      []int `json:"procedure_ids" validate:"omitempty"`
}

// Response DTOs

// DoctorResponse is the public card shown in catalog listings.
type DoctorResponse struct {
	ID              uuid.UUID                `json:"id"`
	FirstName       string                   `json:"first_name"`
	LastName        string                   `json:"last_name"`
	Title           string                   `json:"title"`
	Specializations []SpecializationResponse `json:"specializations,omitempty"`
	Procedures      []ProcedureResponse      `json:"procedures,omitempty"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}

// DoctorProfileResponse carries the fields only the doctor or an admin sees.
type DoctorProfileResponse struct {
	PESEL           string                   `json:"pesel"`
	PWZ             int                      `json:"pwz"`
	TitleDegree     int                      `json:"title_degree"`
	Title           string                   `json:"title"`
	Specializations []SpecializationResponse `json:"specializations,omitempty"`
	Procedures      []ProcedureResponse      `json:"procedures,omitempty"`
}
