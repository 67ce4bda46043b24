package dto

import "github.com/shopspring/decimal"

// Request DTOs

type CreateSpecializationRequest struct {
	Name string `json:"name" validate:"required,max=45"`
}

type CreateProcedureRequest struct {
	Name  string          `json:"name" validate:"required,max=60"`
	Price decimal.Decimal `json:"price" validate:"required"`
}

type CreateOfficeRequest struct {
	Number int `json:"number" validate:"required,min=1"`
}

// Response DTOs

type SpecializationResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type SpecializationListResponse struct {
	Specializations []SpecializationResponse `json:"specializations"`
	Total           int                      `json:"total"`
}

// SpecializationDetailResponse lists the specialization's doctors with their
// week schedules, one grid per doctor.
type SpecializationDetailResponse struct {
	Specialization SpecializationResponse `json:"specialization"`
	Offset         int                    `json:"offset"`
	Doctors        []DoctorWeekResponse   `json:"doctors"`
}

type ProcedureResponse struct {
	ID    int             `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type ProcedureListResponse struct {
	Procedures []ProcedureResponse `json:"procedures"`
	Total      int                 `json:"total"`
}

type OfficeResponse struct {
	ID     int `json:"id"`
	Number int `json:"number"`
}

type OfficeListResponse struct {
	Offices []OfficeResponse `json:"offices"`
	Total   int              `json:"total"`
}
