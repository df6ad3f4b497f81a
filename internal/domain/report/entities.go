package report

import (
	"strings"
	"unicode/utf8"

	"siged/internal/domain/domainerr"
)

const MinDescriptionLength = 10

var (
	ErrNotFound            = domainerr.NotFound("report_not_found", "report not found")
	ErrMissingDetective    = domainerr.Validation("missing_detective", "detectiveId", "detective is required")
	ErrInvalidQuantity     = domainerr.Validation("invalid_quantity", "num_photos", "number of photos must be a positive integer")
	ErrDescriptionTooShort = domainerr.Validation("description_too_short", "description", "description must have at least 10 characters")
)

// Report is immutable once created.
type Report struct {
	ID          int    `json:"report_id"`
	DetectiveID string `json:"detectiveId"`
	NumPhotos   int    `json:"num_photos"`
	Description string `json:"description"`
}

// DescriptionLongEnough counts runes of the trimmed text.
func DescriptionLongEnough(s string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(s)) >= MinDescriptionLength
}
