package court

import (
	"strings"

	"siged/internal/domain/domainerr"
)

var (
	ErrNotFound      = domainerr.NotFound("court_not_found", "court not found")
	ErrDuplicateCIF  = domainerr.Conflict("duplicate_key", "a court with this CIF already exists")
	ErrMissingFields = domainerr.Validation("missing_fields", "cif", "cif, name and address are required")
	ErrInUse         = domainerr.Conflict("court_in_use", "court is referenced by purchase slips or VIP cases")
)

type Court struct {
	CIF     string `json:"cif"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// Normalized trims every field.
func (c Court) Normalized() Court {
	return Court{
		CIF:     strings.TrimSpace(c.CIF),
		Name:    strings.TrimSpace(c.Name),
		Address: strings.TrimSpace(c.Address),
	}
}

func (c Court) Validate() error {
	switch {
	case c.CIF == "":
		return ErrMissingFields
	case c.Name == "":
		return domainerr.OnField(ErrMissingFields, "name")
	case c.Address == "":
		return domainerr.OnField(ErrMissingFields, "address")
	}
	return nil
}
