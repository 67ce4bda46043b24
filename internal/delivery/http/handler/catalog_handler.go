package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"clinic-scheduling-api/internal/delivery/dto"
	"clinic-scheduling-api/internal/delivery/http/middleware"
	"clinic-scheduling-api/internal/usecase"
	"clinic-scheduling-api/pkg/response"
	"clinic-scheduling-api/pkg/validator"

	"github.com/gorilla/mux"
)

// CatalogHandler serves the clinic's reference data endpoints.
type CatalogHandler struct {
	catalogUsecase usecase.CatalogUsecase
	validator      *validator.CustomValidator
}

func NewCatalogHandler(catalogUsecase usecase.CatalogUsecase, validator *validator.CustomValidator) *CatalogHandler {
	return &CatalogHandler{
		catalogUsecase: catalogUsecase,
		validator:      validator,
	}
}

// CreateSpecialization handles specialization creation by an admin
// @Summary Create a specialization
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateSpecializationRequest true "Create Specialization Request"
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/specializations [post]
func (h *CatalogHandler) CreateSpecialization(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateSpecializationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	specialization, err := h.catalogUsecase.CreateSpecialization(r.Context(), actor, &req)
	if err != nil {
		switch err {
		case usecase.ErrSpecializationExists:
			response.Conflict(w, "Specialization already exists")
		default:
			response.InternalServerError(w, "Failed to create specialization")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Specialization created successfully", specialization)
}

// GetAllSpecializations handles listing specializations
// @Summary List specializations
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Response
// @Router /specializations [get]
func (h *CatalogHandler) GetAllSpecializations(w http.ResponseWriter, r *http.Request) {
	specializations, err := h.catalogUsecase.GetAllSpecializations(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list specializations")
		return
	}

	response.Success(w, http.StatusOK, "Specializations retrieved successfully", specializations)
}

// GetSpecializationSchedule handles the weekly booking grid per specialization
// @Summary Get specialization schedule
// @Description Week grids for every doctor of the specialization
// @Tags Catalog
// @Security BearerAuth
// @Produce json
// @Param id path int true "Specialization ID"
// @Param week query int false "Week offset from the current week"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /specializations/{id}/schedule [get]
func (h *CatalogHandler) GetSpecializationSchedule(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid specialization ID")
		return
	}

	detail, err := h.catalogUsecase.GetSpecializationSchedule(r.Context(), id, weekOffset(r))
	if err != nil {
		switch err {
		case usecase.ErrSpecializationNotFound:
			response.NotFound(w, "Specialization not found")
		default:
			response.InternalServerError(w, "Failed to get specialization schedule")
		}
		return
	}

	response.Success(w, http.StatusOK, "Specialization schedule retrieved successfully", detail)
}

// DeleteSpecialization handles specialization removal by an admin
// @Summary Delete a specialization
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param id path int true "Specialization ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/specializations/{id} [delete]
func (h *CatalogHandler) DeleteSpecialization(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid specialization ID")
		return
	}

	if err := h.catalogUsecase.DeleteSpecialization(r.Context(), actor, id); err != nil {
		switch err {
		case usecase.ErrSpecializationNotFound:
			response.NotFound(w, "Specialization not found")
		default:
			response.InternalServerError(w, "Failed to delete specialization")
		}
		return
	}

	response.Success(w, http.StatusOK, "Specialization deleted successfully", nil)
}

// CreateProcedure handles procedure creation by an admin
// @Summary Create a procedure
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateProcedureRequest true "Create Procedure Request"
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/procedures [post]
func (h *CatalogHandler) CreateProcedure(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateProcedureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	procedure, err := h.catalogUsecase.CreateProcedure(r.Context(), actor, &req)
	if err != nil {
		switch err {
		case usecase.ErrProcedureExists:
			response.Conflict(w, "Procedure already exists")
		default:
			response.InternalServerError(w, "Failed to create procedure")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Procedure created successfully", procedure)
}

// GetAllProcedures handles listing procedures
// @Summary List procedures
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Response
// @Router /procedures [get]
func (h *CatalogHandler) GetAllProcedures(w http.ResponseWriter, r *http.Request) {
	procedures, err := h.catalogUsecase.GetAllProcedures(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list procedures")
		return
	}

	response.Success(w, http.StatusOK, "Procedures retrieved successfully", procedures)
}

// DeleteProcedure handles procedure removal by an admin
// @Summary Delete a procedure
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param id path int true "Procedure ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/procedures/{id} [delete]
func (h *CatalogHandler) DeleteProcedure(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid procedure ID")
		return
	}

	if err := h.catalogUsecase.DeleteProcedure(r.Context(), actor, id); err != nil {
		switch err {
		case usecase.ErrProcedureNotFound:
			response.NotFound(w, "Procedure not found")
		default:
			response.InternalServerError(w, "Failed to delete procedure")
		}
		return
	}

	response.Success(w, http.StatusOK, "Procedure deleted successfully", nil)
}

// CreateOffice handles office creation by an admin
// @Summary Create an office
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateOfficeRequest true "Create Office Request"
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/offices [post]
func (h *CatalogHandler) CreateOffice(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateOfficeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	office, err := h.catalogUsecase.CreateOffice(r.Context(), actor, &req)
	if err != nil {
		switch err {
		case usecase.ErrOfficeExists:
			response.Conflict(w, "Office number already exists")
		default:
			response.InternalServerError(w, "Failed to create office")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Office created successfully", office)
}

// GetAllOffices handles listing offices
// @Summary List offices
// @Tags Catalog
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /offices [get]
func (h *CatalogHandler) GetAllOffices(w http.ResponseWriter, r *http.Request) {
	offices, err := h.catalogUsecase.GetAllOffices(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list offices")
		return
	}

	response.Success(w, http.StatusOK, "Offices retrieved successfully", offices)
}

// DeleteOffice handles office removal by an admin
// @Summary Delete an office
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param id path int true "Office ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/offices/{id} [delete]
func (h *CatalogHandler) DeleteOffice(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid office ID")
		return
	}

	if err := h.catalogUsecase.DeleteOffice(r.Context(), actor, id); err != nil {
		switch err {
		case usecase.ErrOfficeNotFound:
			response.NotFound(w, "Office not found")
		default:
			response.InternalServerError(w, "Failed to delete office")
		}
		return
	}

	response.Success(w, http.StatusOK, "Office deleted successfully", nil)
}
