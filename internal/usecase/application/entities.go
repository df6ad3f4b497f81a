package application

// SubmitInput carries the applicant's contact fields and the application
// body. Field names follow the stored document layout.
type SubmitInput struct {
	NationalID string `json:"national_id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Telephone  string `json:"telephone"`
	Date       string `json:"date"`
	Equipment  string `json:"equipment"`
	CV         string `json:"cv"`
}

// StatusAll disables the status filter in List.
const StatusAll = "all"
