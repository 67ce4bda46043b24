package converter

import (
	"clinic-scheduling-api/internal/delivery/dto"
	"clinic-scheduling-api/internal/domain/entity"
)

func SpecializationToResponse(s *entity.Specialization) *dto.SpecializationResponse {
	if s == nil {
		return nil
	}
	return &dto.SpecializationResponse{
		ID:   s.ID,
		Name: s.Name,
	}
}

func SpecializationsToResponses(specs []entity.Specialization) []dto.SpecializationResponse {
	if len(specs) == 0 {
		return nil
	}
	responses := make([]dto.SpecializationResponse, len(specs))
	for i := range specs {
		responses[i] = *SpecializationToResponse(&specs[i])
	}
	return responses
}

func ProcedureToResponse(p *entity.Procedure) *dto.ProcedureResponse {
	if p == nil {
		return nil
	}
	return &dto.ProcedureResponse{
		ID:    p.ID,
		Name:  p.Name,
		Price: p.Price,
	}
}

func ProceduresToResponses(procedures []entity.Procedure) []dto.ProcedureResponse {
	if len(procedures) == 0 {
		return nil
	}
	responses := make([]dto.ProcedureResponse, len(procedures))
	for i := range procedures {
		responses[i] = *ProcedureToResponse(&procedures[i])
	}
	return responses
}

func OfficeToResponse(o *entity.Office) *dto.OfficeResponse {
	if o == nil {
		return nil
	}
	return &dto.OfficeResponse{
		ID:     o.ID,
		Number: o.Number,
	}
}

func OfficesToResponses(offices []entity.Office) []dto.OfficeResponse {
	responses := make([]dto.OfficeResponse, len(offices))
	for i := range offices {
		responses[i] = *OfficeToResponse(&offices[i])
	}
	return responses
}
