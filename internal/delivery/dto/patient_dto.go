package dto

import "github.com/google/uuid"

// Request DTOs

type UpdatePatientProfileRequest struct {
	IdentificationType int    `json:"identification_type" validate:"omitempty,oneof=1 2"`
	PhoneNumber        string `json:"phone_number" validate:"omitempty,phone"`
}

// Response DTOs

type PatientResponse struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
}

type PatientProfileResponse struct {
	PESEL              string `json:"pesel"`
	IdentificationType int    `json:"identification_type"`
	PhoneNumber        string `json:"phone_number"`
}
