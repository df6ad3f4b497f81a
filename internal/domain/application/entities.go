package application

import (
	"unicode/utf8"

	"siged/internal/domain/civildate"
	"siged/internal/domain/domainerr"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// MinTextLength applies to both equipment and cv.
const MinTextLength = 20

var (
	ErrNotFound          = domainerr.NotFound("application_not_found", "application not found")
	ErrPendingNotFound   = domainerr.NotFound("pending_application_not_found", "pending application not found")
	ErrNotPending        = domainerr.Conflict("invalid_state", "only pending applications can be rejected")
	ErrDuplicateMonthly  = domainerr.Conflict("duplicate_monthly_application", "this detective already submitted an application this month")
	ErrEquipmentTooShort = domainerr.Validation("equipment_too_short", "equipment", "equipment must contain at least 20 characters")
	ErrCVTooShort        = domainerr.Validation("cv_too_short", "cv", "cv must contain at least 20 characters")
	ErrInvalidStatus     = domainerr.Validation("invalid_status", "status", "status must be pending, approved or rejected")
)

type Application struct {
	ID          int            `json:"application_id"`
	DetectiveID string         `json:"detectiveId"`
	Date        civildate.Date `json:"date"`
	Equipment   string         `json:"equipment"`
	CV          string         `json:"cv"`
	Status      Status         `json:"status"`
}

func ValidateTexts(equipment, cv string) error {
	if utf8.RuneCountInString(equipment) < MinTextLength {
		return ErrEquipmentTooShort
	}
	if utf8.RuneCountInString(cv) < MinTextLength {
		return ErrCVTooShort
	}
	return nil
}

// Approve is only reachable from pending. A non-pending target reads as a
// missing pending application.
func (a *Application) Approve() error {
	if a.Status != StatusPending {
		return ErrPendingNotFound
	}
	a.Status = StatusApproved
	return nil
}

func (a *Application) Reject() error {
	if a.Status != StatusPending {
		return ErrNotPending
	}
	a.Status = StatusRejected
	return nil
}
