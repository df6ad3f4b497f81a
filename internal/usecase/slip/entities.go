package slip

type CreateInput struct {
	ReportID          int     `json:"report_id"`
	CourtCIF          string  `json:"court_cif"`
	AmountPaidByCourt float64 `json:"amount_paid_by_court"`
	Date              string  `json:"date"`
}
