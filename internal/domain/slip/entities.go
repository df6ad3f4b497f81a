package slip

import (
	"math"

	"github.com/shopspring/decimal"

	"siged/internal/domain/civildate"
	"siged/internal/domain/domainerr"
)

var (
	ErrUnderpayment   = domainerr.Conflict("underpayment_by_court", "court payment must be greater than or equal to the detective payment")
	ErrInvalidAmount  = domainerr.Validation("invalid_amount", "amount_paid_by_court", "amount paid by court must be a non-negative number")
	ErrInvalidReport  = domainerr.Validation("invalid_report", "report_id", "report id must be a positive integer")
	ErrMissingCourtID = domainerr.Validation("missing_court", "court_cif", "court is required")
)

// Slip is immutable once created. AmountPaidToDetective is derived, never
// supplied by the caller.
type Slip struct {
	ID                    int            `json:"slip_id"`
	ReportID              int            `json:"report_id"`
	CourtCIF              string         `json:"court_cif"`
	AmountPaidByCourt     float64        `json:"amount_paid_by_court"`
	AmountPaidToDetective float64        `json:"amount_paid_to_detective"`
	Date                  civildate.Date `json:"date"`
}

func ValidateAmount(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return ErrInvalidAmount
	}
	return nil
}

// DetectivePayment is price_per_photo × num_photos in decimal arithmetic.
func DetectivePayment(pricePerPhoto float64, numPhotos int) decimal.Decimal {
	return decimal.NewFromFloat(pricePerPhoto).Mul(decimal.NewFromInt(int64(numPhotos)))
}

// CheckCovers fails when the court pays less than the detective is owed.
func CheckCovers(paidByCourt float64, owed decimal.Decimal) error {
	if decimal.NewFromFloat(paidByCourt).LessThan(owed) {
		return ErrUnderpayment
	}
	return nil
}
