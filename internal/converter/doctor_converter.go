package converter

import (
	"clinic-scheduling-api/internal/delivery/dto"
	"clinic-scheduling-api/internal/domain/entity"
)

// DoctorToResponse converts a DoctorProfile entity to the public DoctorResponse DTO
// Requires the User relation to be preloaded for the name fields
func DoctorToResponse(doctor *entity.DoctorProfile) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:              doctor.UserID,
		FirstName:       doctor.User.FirstName,
		LastName:        doctor.User.LastName,
		Title:           entity.TitleDegreeLabel[doctor.TitleDegree],
		Specializations: SpecializationsToResponses(doctor.Specializations),
		Procedures:      ProceduresToResponses(doctor.Procedures),
	}
}

// DoctorsToResponses converts a slice of DoctorProfile entities to DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.DoctorProfile) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}

// DoctorProfileToResponse converts a DoctorProfile to the private profile DTO
func DoctorProfileToResponse(doctor *entity.DoctorProfile) *dto.DoctorProfileResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorProfileResponse{
		PESEL:           doctor.PESEL,
		PWZ:             doctor.PWZ,
		TitleDegree:     doctor.TitleDegree,
		Title:           entity.TitleDegreeLabel[doctor.TitleDegree],
		Specializations: SpecializationsToResponses(doctor.Specializations),
		Procedures:      ProceduresToResponses(doctor.Procedures),
	}
}
