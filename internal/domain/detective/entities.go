package detective

import (
	"siged/internal/domain/civildate"
	"siged/internal/domain/domainerr"
)

var (
	ErrNotFound   = domainerr.NotFound("detective_not_found", "detective not found")
	ErrNotLeveled = domainerr.Conflict("detective_not_leveled", "detective has no assigned level")
	ErrDowngrade  = domainerr.Conflict("downgrade_not_allowed", "downgrades are not allowed: new level must be greater than the current one")
)

// PromotionRecord is one append-only entry of a detective's history.
type PromotionRecord struct {
	From int            `json:"from"`
	To   int            `json:"to"`
	Date civildate.Date `json:"date"`
}

// Detective is created on the first accepted application and never deleted.
// Level is nil until an application is approved.
type Detective struct {
	NationalID       string            `json:"national_id"`
	FirstName        string            `json:"first_name"`
	LastName         string            `json:"last_name"`
	Address          string            `json:"address"`
	City             string            `json:"city"`
	PostalCode       string            `json:"postal_code"`
	Telephone        string            `json:"telephone"`
	Level            *int              `json:"level"`
	PromotionHistory []PromotionRecord `json:"promotion_history"`
}

func (d *Detective) IsLeveled() bool { return d.Level != nil }

// AssignLevel sets the level directly without touching the promotion history.
// Used by application approval.
func (d *Detective) AssignLevel(lvl int) {
	d.Level = &lvl
}

// Promote moves the detective strictly upwards and records the step.
func (d *Detective) Promote(to int, on civildate.Date) error {
	if d.Level == nil {
		return ErrNotLeveled
	}
	from := *d.Level
	if to <= from {
		return ErrDowngrade
	}
	d.PromotionHistory = append(d.PromotionHistory, PromotionRecord{From: from, To: to, Date: on})
	d.AssignLevel(to)
	return nil
}

func (d Detective) Clone() Detective {
	out := d
	if d.Level != nil {
		lvl := *d.Level
		out.Level = &lvl
	}
	out.PromotionHistory = append([]PromotionRecord{}, d.PromotionHistory...)
	return out
}
