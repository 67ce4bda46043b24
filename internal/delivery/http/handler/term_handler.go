package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"clinic-scheduling-api/internal/delivery/dto"
	"clinic-scheduling-api/internal/delivery/http/middleware"
	"clinic-scheduling-api/internal/domain/entity"
	"clinic-scheduling-api/internal/scheduling"
	"clinic-scheduling-api/internal/usecase"
	"clinic-scheduling-api/internal/validation"
	"clinic-scheduling-api/pkg/response"
	"clinic-scheduling-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type TermHandler struct {
	termUsecase usecase.TermUsecase
	validator   *validator.CustomValidator
}

func NewTermHandler(termUsecase usecase.TermUsecase, validator *validator.CustomValidator) *TermHandler {
	return &TermHandler{
		termUsecase: termUsecase,
		validator:   validator,
	}
}

// weekOffset reads the ?week= query parameter. Missing, malformed and
// negative values all resolve to the current week.
func weekOffset(r *http.Request) int {
	offset, err := strconv.Atoi(r.URL.Query().Get("week"))
	if err != nil || offset < 0 {
		return 0
	}
	return offset
}

// respondTermError maps scheduling and validation failures to HTTP statuses
// shared by the single and batch create endpoints.
func respondTermError(w http.ResponseWriter, err error) {
	switch err {
	case usecase.ErrDoctorNotFound:
		response.NotFound(w, "Doctor not found")
	case usecase.ErrOfficeNotFound:
		response.NotFound(w, "Office not found")
	case usecase.ErrInvalidDateFormat:
		response.BadRequest(w, "Invalid date format, use YYYY-MM-DD")
	case usecase.ErrWindowTooShort:
		response.BadRequest(w, "Work window is shorter than one slot")
	case scheduling.ErrInvalidClock:
		response.BadRequest(w, "Invalid time format, use HH:MM")
	case scheduling.ErrEndBeforeStart:
		response.BadRequest(w, "Term must not end before it starts")
	case scheduling.ErrClinicClosed:
		response.BadRequest(w, "Clinic is closed on Sundays")
	case scheduling.ErrSlotOccupied:
		response.Conflict(w, "Slot is already occupied")
	case validation.ErrDateInPast:
		response.BadRequest(w, "Date must be today or in the future")
	default:
		response.InternalServerError(w, "Failed to create term")
	}
}

// CreateTerm handles single term creation by a doctor
// @Summary Create a term
// @Description Create one schedulable time window for the acting doctor
// @Tags Terms
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateTermRequest true "Create Term Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /terms [post]
func (h *TermHandler) CreateTerm(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateTermRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	term, err := h.termUsecase.CreateTerm(r.Context(), actor, &req)
	if err != nil {
		respondTermError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Term created successfully", term)
}

// CreateTermBatch handles slot-partitioned batch creation
// @Summary Create a batch of terms
// @Description Partition a work window into fixed-length slots and create each as a term
// @Tags Terms
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateTermBatchRequest true "Create Term Batch Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /terms/batch [post]
func (h *TermHandler) CreateTermBatch(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateTermBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.termUsecase.CreateTermBatch(r.Context(), actor, &req)
	if err != nil {
		respondTermError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Terms created", result)
}

// CancelTerm handles term cancellation
// @Summary Cancel a term
// @Description Delete an unbooked term owned by the acting doctor
// @Tags Terms
// @Security BearerAuth
// @Produce json
// @Param id path int true "Term ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /terms/{id} [delete]
func (h *TermHandler) CancelTerm(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	termID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid term ID")
		return
	}

	if err := h.termUsecase.CancelTerm(r.Context(), actor, termID); err != nil {
		switch err {
		case usecase.ErrTermNotFound:
			response.NotFound(w, "Term not found")
		case usecase.ErrNotTermOwner:
			response.Forbidden(w, "Term belongs to another doctor")
		default:
			response.InternalServerError(w, "Failed to cancel term")
		}
		return
	}

	response.Success(w, http.StatusOK, "Term cancelled successfully", nil)
}

// GetTerm handles fetching a single term
// @Summary Get a term
// @Tags Terms
// @Security BearerAuth
// @Produce json
// @Param id path int true "Term ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /terms/{id} [get]
func (h *TermHandler) GetTerm(w http.ResponseWriter, r *http.Request) {
	termID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid term ID")
		return
	}

	term, err := h.termUsecase.GetTerm(r.Context(), termID)
	if err != nil {
		switch err {
		case usecase.ErrTermNotFound:
			response.NotFound(w, "Term not found")
		default:
			response.InternalServerError(w, "Failed to get term")
		}
		return
	}

	response.Success(w, http.StatusOK, "Term retrieved successfully", term)
}

// SearchTerms handles filtered term listing
// @Summary Search terms
// @Description List terms of active doctors, filtered by date range, doctor name or specialization
// @Tags Terms
// @Security BearerAuth
// @Produce json
// @Param date_from query string false "Date from (YYYY-MM-DD)"
// @Param date_to query string false "Date to (YYYY-MM-DD)"
// @Param doctor query string false "Doctor last name"
// @Param specialization query string false "Specialization name"
// @Success 200 {object} response.Response
// @Router /terms [get]
func (h *TermHandler) SearchTerms(w http.ResponseWriter, r *http.Request) {
	filter := &entity.TermFilter{
		DateFrom:       r.URL.Query().Get("date_from"),
		DateTo:         r.URL.Query().Get("date_to"),
		DoctorName:     r.URL.Query().Get("doctor"),
		Specialization: r.URL.Query().Get("specialization"),
	}

	terms, err := h.termUsecase.SearchTerms(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "Failed to search terms")
		return
	}

	response.Success(w, http.StatusOK, "Terms retrieved successfully", terms)
}

// GetDoctorWeek handles the weekly schedule grid for one doctor
// @Summary Get a doctor's week schedule
// @Description Monday-to-Saturday grid of the doctor's terms for the requested week
// @Tags Terms
// @Security BearerAuth
// @Produce json
// @Param id path string true "Doctor ID"
// @Param week query int false "Week offset from the current week"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /doctors/{id}/week [get]
func (h *TermHandler) GetDoctorWeek(w http.ResponseWriter, r *http.Request) {
	doctorID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid doctor ID")
		return
	}

	week, err := h.termUsecase.GetDoctorWeek(r.Context(), doctorID, weekOffset(r))
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to get schedule")
		}
		return
	}

	response.Success(w, http.StatusOK, "Schedule retrieved successfully", week)
}
