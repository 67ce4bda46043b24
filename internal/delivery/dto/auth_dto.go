package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

// RegisterPatientRequest is the patient signup form.
type RegisterPatientRequest struct {
	Email              string `json:"email" validate:"required,email"`
	Password           string `json:"password" validate:"required,min=8"`
	FirstName          string `json:"first_name" validate:"required,latinname"`
	LastName           string `json:"last_name" validate:"required,latinname"`
	PESEL              string `json:"pesel" validate:"required,pesel"`
	IdentificationType int    `json:"identification_type" validate:"required,oneof=1 2"`
	PhoneNumber        string `json:"phone_number" validate:"required,phone"`
}

// RegisterDoctorRequest is submitted by an admin when onboarding a doctor.
type RegisterDoctorRequest struct {
	Email             string `json:"email" validate:"required,email"`
	Password          string `json:"password" validate:"required,min=8"`
	FirstName         string `json:"first_name" validate:"required,latinname"`
	LastName          string `json:"last_name" validate:"required,latinname"`
	PESEL             string `json:"pesel" validate:"required,pesel"`
	PWZ               string `json:"pwz" validate:"required,pwz"`
	TitleDegree       int    `json:"title_degree" validate:"required,min=1,max=5"`
	SpecializationIDs []int  `json:"specialization_ids" validate:"required,min=1"`
	ProcedureIDs      []int  `json:"procedure_ids" validate:"omitempty"`
}

// Response DTOs

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type UserResponse struct {
	ID             uuid.UUID               `json:"id"`
	Email          string                  `json:"email"`
	FirstName      string                  `json:"first_name"`
	LastName       string                  `json:"last_name"`
	Role           string                  `json:"role"`
	DoctorProfile  *DoctorProfileResponse  `json:"doctor_profile,omitempty"`
	PatientProfile *PatientProfileResponse `json:"patient_profile,omitempty"`
	CreatedAt      time.Time               `json:"created_at"`
	UpdatedAt      time.Time               `json:"updated_at"`
}
