package dto

import (
	"clinic-scheduling-api/internal/scheduling"

	"github.com/google/uuid"
)

// Request DTOs

type CreateTermRequest struct {
	Date     string `json:"date" validate:"required"`      // Format: YYYY-MM-DD
	HourFrom string `json:"hour_from" validate:"required"` // Format: HH:MM
	HourTo   string `json:"hour_to" validate:"required"`   // Format: HH:MM
	OfficeID int    `json:"office_id" validate:"required,min=1"`
}

// CreateTermBatchRequest carves a work window into fixed-length terms.
type CreateTermBatchRequest struct {
	Date        string `json:"date" validate:"required"`      // Format: YYYY-MM-DD
	HourFrom    string `json:"hour_from" validate:"required"` // Format: HH:MM
	HourTo      string `json:"hour_to" validate:"required"`   // Format: HH:MM
	OfficeID    int    `json:"office_id" validate:"required,min=1"`
	SlotMinutes int    `json:"slot_minutes" validate:"required,oneof=15 20 30 45 60"`
}

// Response DTOs

type TermResponse struct {
	ID           int             `json:"id"`
	Date         string          `json:"date"`
	HourFrom     string          `json:"hour_from"`
	HourTo       string          `json:"hour_to"`
	DoctorID     uuid.UUID       `json:"doctor_id"`
	Doctor       *DoctorResponse `json:"doctor,omitempty"`
	OfficeID     int             `json:"office_id"`
	OfficeNumber int             `json:"office_number,omitempty"`
	Available    bool            `json:"available"`
}

type TermListResponse struct {
	Terms []TermResponse `json:"terms"`
	Total int            `json:"total"`
}

// SkippedSlot reports a batch slot that lost its conflict check.
type SkippedSlot struct {
	HourFrom string `json:"hour_from"`
	HourTo   string `json:"hour_to"`
	Reason   string `json:"reason"`
}

// TermBatchResponse reports best-effort batch creation: slots are attempted
// independently, so created may be lower than requested.
type TermBatchResponse struct {
	Requested int            `json:"requested"`
	Created   int            `json:"created"`
	Terms     []TermResponse `json:"terms"`
	Skipped   []SkippedSlot  `json:"skipped,omitempty"`
}

// DoctorWeekResponse is the schedule grid for one doctor and one week.
type DoctorWeekResponse struct {
	DoctorID uuid.UUID                 `json:"doctor_id"`
	Offset   int                       `json:"offset"`
	Weekdays []scheduling.DayLabel     `json:"weekdays"`
	Days     map[string][]TermResponse `json:"days"` // keyed by YYYY-MM-DD
}
