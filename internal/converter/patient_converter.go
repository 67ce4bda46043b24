package converter

import (
	"clinic-scheduling-api/internal/delivery/dto"
	"clinic-scheduling-api/internal/domain/entity"
)

// PatientToResponse converts a PatientProfile entity to the public PatientResponse DTO
// Requires the User relation to be preloaded for the name fields
func PatientToResponse(patient *entity.PatientProfile) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:        patient.UserID,
		FirstName: patient.User.FirstName,
		LastName:  patient.User.LastName,
	}
}

// PatientProfileToResponse converts a PatientProfile to the private profile DTO
func PatientProfileToResponse(patient *entity.PatientProfile) *dto.PatientProfileResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientProfileResponse{
		PESEL:              patient.PESEL,
		IdentificationType: patient.IdentificationType,
		PhoneNumber:        patient.PhoneNumber,
	}
}
