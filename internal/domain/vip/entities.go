package vip

import (
	"math"
	"strings"
	"unicode/utf8"

	"siged/internal/domain/civildate"
	"siged/internal/domain/domainerr"
)

// State is derived from which lifecycle fields are set.
type State string

const (
	StateUnassigned State = "unassigned"
	StateAssigned   State = "assigned"
	StateCompleted  State = "completed"
)

func (s State) Valid() bool {
	switch s {
	case StateUnassigned, StateAssigned, StateCompleted:
		return true
	}
	return false
}

var (
	ErrNotFound            = domainerr.NotFound("vip_case_not_found", "VIP case not found")
	ErrAlreadyAssigned     = domainerr.Conflict("already_assigned", "VIP case is already assigned")
	ErrNotAssignedYet      = domainerr.Conflict("not_assigned_yet", "VIP case has not been assigned yet")
	ErrAlreadyCompleted    = domainerr.Conflict("already_completed", "VIP case is already completed")
	ErrAssignedBeforeOpen  = domainerr.Validation("date_order_violation", "assignment_date", "assignment date cannot be earlier than creation date")
	ErrCompletedBeforeAssn = domainerr.Validation("date_order_violation", "completion_date", "completion date cannot be earlier than assignment date")
	ErrInvalidPayment      = domainerr.Validation("invalid_payment", "payment", "payment must be positive")
	ErrDescriptionTooShort = domainerr.Validation("description_too_short", "description", "description must have at least 10 characters")
	ErrMissingCourt        = domainerr.Validation("missing_court", "court_cif", "court is required")
	ErrMissingDetective    = domainerr.Validation("missing_detective", "detectiveId", "detective is required")
	ErrInvalidState        = domainerr.Validation("invalid_state_filter", "state", "state must be unassigned, assigned or completed")
)

// Case moves Unassigned -> Assigned -> Completed and never back.
type Case struct {
	ID             int             `json:"vip_id"`
	CourtCIF       string          `json:"court_cif"`
	Description    string          `json:"description"`
	Payment        float64         `json:"payment"`
	CreationDate   civildate.Date  `json:"creation_date"`
	AssignedTo     *string         `json:"assigned_to"`
	AssignmentDate *civildate.Date `json:"assignment_date"`
	CompletionDate *civildate.Date `json:"completion_date"`
}

const MinDescriptionLength = 10

func DescriptionLongEnough(s string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(s)) >= MinDescriptionLength
}

func ValidatePayment(p float64) error {
	if math.IsNaN(p) || math.IsInf(p, 0) || p <= 0 {
		return ErrInvalidPayment
	}
	return nil
}

func (c *Case) State() State {
	switch {
	case c.CompletionDate != nil:
		return StateCompleted
	case c.AssignedTo != nil:
		return StateAssigned
	}
	return StateUnassigned
}

func (c *Case) Assign(detectiveID string, on civildate.Date) error {
	if c.State() != StateUnassigned {
		return ErrAlreadyAssigned
	}
	if !on.IsOnOrAfter(c.CreationDate) {
		return ErrAssignedBeforeOpen
	}
	id := detectiveID
	c.AssignedTo = &id
	c.AssignmentDate = &on
	return nil
}

func (c *Case) Finalise(on civildate.Date) error {
	switch c.State() {
	case StateUnassigned:
		return ErrNotAssignedYet
	case StateCompleted:
		return ErrAlreadyCompleted
	}
	if c.AssignmentDate == nil || !on.IsOnOrAfter(*c.AssignmentDate) {
		return ErrCompletedBeforeAssn
	}
	c.CompletionDate = &on
	return nil
}

func (c Case) Clone() Case {
	out := c
	if c.AssignedTo != nil {
		v := *c.AssignedTo
		out.AssignedTo = &v
	}
	if c.AssignmentDate != nil {
		v := *c.AssignmentDate
		out.AssignmentDate = &v
	}
	if c.CompletionDate != nil {
		v := *c.CompletionDate
		out.CompletionDate = &v
	}
	return out
}
