package detective

import (
	"regexp"
	"strings"

	"siged/internal/domain/domainerr"
)

var (
	reNationalID = regexp.MustCompile(`^[0-9]{8}[A-Z]$`)
	rePostalCode = regexp.MustCompile(`^(0[1-9]|[1-4][0-9]|5[0-2])[0-9]{3}$`)
	reTelephone  = regexp.MustCompile(`^[0-9]{6,15}$`)
	// letters incl. Latin-1 diacritics, spaces, apostrophes and hyphens
	reName = regexp.MustCompile(`^[A-Za-z\x{00C0}-\x{00FF}\s'-]+$`)
)

var (
	ErrInvalidNationalID = domainerr.Validation("invalid_national_id", "national_id", "invalid national id: expected 8 digits followed by an upper-case letter")
	ErrInvalidName       = domainerr.Validation("invalid_name", "first_name", "name may only contain letters, spaces, apostrophes and hyphens")
	ErrInvalidPostalCode = domainerr.Validation("invalid_postal_code", "postal_code", "invalid postal code")
	ErrInvalidTelephone  = domainerr.Validation("invalid_telephone", "telephone", "telephone must contain only digits (6 to 15)")
	ErrAddressRequired   = domainerr.Validation("missing_address", "address", "address is required")
	ErrCityRequired      = domainerr.Validation("missing_city", "city", "city is required")
)

func ValidNationalID(id string) bool { return reNationalID.MatchString(id) }

// NormalizeNationalID is for lookups only; stored ids are never rewritten.
func NormalizeNationalID(id string) string {
	return strings.ToUpper(strings.Join(strings.Fields(id), ""))
}

// Validate checks the contact fields in a fixed order and reports the
// first violated rule.
func (d Detective) Validate() error {
	if !ValidNationalID(d.NationalID) {
		return ErrInvalidNationalID
	}
	if !reName.MatchString(d.FirstName) {
		return ErrInvalidName
	}
	if !reName.MatchString(d.LastName) {
		return domainerr.OnField(ErrInvalidName, "last_name")
	}
	if !rePostalCode.MatchString(d.PostalCode) {
		return ErrInvalidPostalCode
	}
	if !reTelephone.MatchString(d.Telephone) {
		return ErrInvalidTelephone
	}
	if strings.TrimSpace(d.Address) == "" {
		return ErrAddressRequired
	}
	if strings.TrimSpace(d.City) == "" {
		return ErrCityRequired
	}
	return nil
}
