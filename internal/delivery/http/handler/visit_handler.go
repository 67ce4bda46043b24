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

type VisitHandler struct {
	visitUsecase usecase.VisitUsecase
	validator    *validator.CustomValidator
}

func NewVisitHandler(visitUsecase usecase.VisitUsecase, validator *validator.CustomValidator) *VisitHandler {
	return &VisitHandler{
		visitUsecase: visitUsecase,
		validator:    validator,
	}
}

// BookVisit handles booking a term by a patient
// @Summary Book a visit
// @Description Claim an available term with a chosen procedure
// @Tags Visits
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateVisitRequest true "Create Visit Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /visits [post]
func (h *VisitHandler) BookVisit(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateVisitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	visit, err := h.visitUsecase.BookVisit(r.Context(), actor, &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient profile not found")
		case usecase.ErrTermNotFound:
			response.NotFound(w, "Term not found")
		case usecase.ErrProcedureNotFound:
			response.NotFound(w, "Procedure not found")
		case usecase.ErrTermInPast:
			response.BadRequest(w, "Term is in the past")
		case usecase.ErrTermAlreadyBooked:
			response.Conflict(w, "Term is already booked")
		case usecase.ErrProcedureNotOffered:
			response.BadRequest(w, "Doctor does not offer this procedure")
		default:
			response.InternalServerError(w, "Failed to book visit")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Visit booked successfully", visit)
}

// CancelVisit handles visit cancellation
// @Summary Cancel a visit
// @Description Delete the visit and free its term for booking again
// @Tags Visits
// @Security BearerAuth
// @Produce json
// @Param id path int true "Visit ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /visits/{id} [delete]
func (h *VisitHandler) CancelVisit(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	visitID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid visit ID")
		return
	}

	if err := h.visitUsecase.CancelVisit(r.Context(), actor, visitID); err != nil {
		switch err {
		case usecase.ErrVisitNotFound:
			response.NotFound(w, "Visit not found")
		case usecase.ErrNotVisitParticipant:
			response.Forbidden(w, "Visit belongs to another user")
		default:
			response.InternalServerError(w, "Failed to cancel visit")
		}
		return
	}

	response.Success(w, http.StatusOK, "Visit cancelled successfully", nil)
}

// GetVisit handles fetching a single visit
// @Summary Get a visit
// @Tags Visits
// @Security BearerAuth
// @Produce json
// @Param id path int true "Visit ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /visits/{id} [get]
func (h *VisitHandler) GetVisit(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	visitID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid visit ID")
		return
	}

	visit, err := h.visitUsecase.GetVisit(r.Context(), actor, visitID)
	if err != nil {
		switch err {
		case usecase.ErrVisitNotFound:
			response.NotFound(w, "Visit not found")
		case usecase.ErrNotVisitParticipant:
			response.Forbidden(w, "Visit belongs to another user")
		default:
			response.InternalServerError(w, "Failed to get visit")
		}
		return
	}

	response.Success(w, http.StatusOK, "Visit retrieved successfully", visit)
}

// GetMyVisits handles listing the actor's visits
// @Summary List my visits
// @Description Booked visits for patients, hosted visits for doctors
// @Tags Visits
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /visits [get]
func (h *VisitHandler) GetMyVisits(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	visits, err := h.visitUsecase.GetMyVisits(r.Context(), actor)
	if err != nil {
		response.InternalServerError(w, "Failed to list visits")
		return
	}

	response.Success(w, http.StatusOK, "Visits retrieved successfully", visits)
}
