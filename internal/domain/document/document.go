// Package document is the single persisted record-office document and the
// load/save contract every storage backend implements.
package document

import (
	"encoding/json"
	"errors"
	"sort"
	"time"

	"siged/internal/domain/application"
	"siged/internal/domain/court"
	"siged/internal/domain/detective"
	"siged/internal/domain/level"
	"siged/internal/domain/report"
	"siged/internal/domain/slip"
	"siged/internal/domain/vip"
)

// ErrStaleDocument is returned by Save when the stored version moved since Load.
var ErrStaleDocument = errors.New("document was modified concurrently")

// Meta.Version is bumped by the repository on every successful save.
type Meta struct {
	Version   int64      `json:"version"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type Document struct {
	Meta          Meta                      `json:"meta"`
	Detectives    []detective.Detective     `json:"detectives"`
	Applications  []application.Application `json:"applications"`
	Levels        []level.Level             `json:"levels"`
	Courts        []court.Court             `json:"courts"`
	Reports       []report.Report           `json:"reports"`
	PurchaseSlips []slip.Slip               `json:"purchase_slips"`
	VipCases      []vip.Case                `json:"vip_cases"`
}

func New() *Document {
	d := &Document{}
	d.normalize()
	return d
}

// Decode parses a stored document; missing collections become empty.
func Decode(b []byte) (*Document, error) {
	d := &Document{}
	if err := json.Unmarshal(b, d); err != nil {
		return nil, err
	}
	d.normalize()
	return d, nil
}

func Encode(d *Document) ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

func (d *Document) normalize() {
	if d.Detectives == nil {
		d.Detectives = []detective.Detective{}
	}
	if d.Applications == nil {
		d.Applications = []application.Application{}
	}
	if d.Levels == nil {
		d.Levels = []level.Level{}
	}
	if d.Courts == nil {
		d.Courts = []court.Court{}
	}
	if d.Reports == nil {
		d.Reports = []report.Report{}
	}
	if d.PurchaseSlips == nil {
		d.PurchaseSlips = []slip.Slip{}
	}
	if d.VipCases == nil {
		d.VipCases = []vip.Case{}
	}
	for i := range d.Detectives {
		if d.Detectives[i].PromotionHistory == nil {
			d.Detectives[i].PromotionHistory = []detective.PromotionRecord{}
		}
	}
}

// Clone returns a deep copy sharing no memory with d.
func (d *Document) Clone() *Document {
	out := &Document{
		Meta:          d.Meta,
		Applications:  append([]application.Application{}, d.Applications...),
		Levels:        append([]level.Level{}, d.Levels...),
		Courts:        append([]court.Court{}, d.Courts...),
		Reports:       append([]report.Report{}, d.Reports...),
		PurchaseSlips: append([]slip.Slip{}, d.PurchaseSlips...),
		Detectives:    make([]detective.Detective, len(d.Detectives)),
		VipCases:      make([]vip.Case, len(d.VipCases)),
	}
	if d.Meta.UpdatedAt != nil {
		t := *d.Meta.UpdatedAt
		out.Meta.UpdatedAt = &t
	}
	for i, det := range d.Detectives {
		out.Detectives[i] = det.Clone()
	}
	for i, c := range d.VipCases {
		out.VipCases[i] = c.Clone()
	}
	return out
}

// nextID is max existing id + 1, or 1 for an empty collection.
func nextID[T any](items []T, id func(T) int) int {
	hi := 0
	for _, it := range items {
		if v := id(it); v > hi {
			hi = v
		}
	}
	return hi + 1
}

func (d *Document) NextApplicationID() int {
	return nextID(d.Applications, func(a application.Application) int { return a.ID })
}

func (d *Document) NextReportID() int {
	return nextID(d.Reports, func(r report.Report) int { return r.ID })
}

func (d *Document) NextSlipID() int {
	return nextID(d.PurchaseSlips, func(s slip.Slip) int { return s.ID })
}

func (d *Document) NextVipID() int {
	return nextID(d.VipCases, func(c vip.Case) int { return c.ID })
}

// Finders return pointers into the document so callers can mutate in place.

func (d *Document) Detective(nationalID string) (*detective.Detective, bool) {
	for i := range d.Detectives {
		if d.Detectives[i].NationalID == nationalID {
			return &d.Detectives[i], true
		}
	}
	return nil, false
}

func (d *Document) Application(id int) (*application.Application, bool) {
	for i := range d.Applications {
		if d.Applications[i].ID == id {
			return &d.Applications[i], true
		}
	}
	return nil, false
}

func (d *Document) Level(n int) (*level.Level, bool) {
	for i := range d.Levels {
		if d.Levels[i].Level == n {
			return &d.Levels[i], true
		}
	}
	return nil, false
}

// MaxLevel is the highest configured level key.
func (d *Document) MaxLevel() (int, bool) {
	if len(d.Levels) == 0 {
		return 0, false
	}
	hi := d.Levels[0].Level
	for _, l := range d.Levels[1:] {
		if l.Level > hi {
			hi = l.Level
		}
	}
	return hi, true
}

func (d *Document) SortedLevels() []level.Level {
	out := append([]level.Level{}, d.Levels...)
	sort.Slice(out, func(i, j int) bool { return out[i].Level < out[j].Level })
	return out
}

func (d *Document) courtIndex(cif string) int {
	for i := range d.Courts {
		if d.Courts[i].CIF == cif {
			return i
		}
	}
	return -1
}

func (d *Document) Court(cif string) (*court.Court, bool) {
	if i := d.courtIndex(cif); i >= 0 {
		return &d.Courts[i], true
	}
	return nil, false
}

// RemoveCourt reports whether a court was removed.
func (d *Document) RemoveCourt(cif string) bool {
	i := d.courtIndex(cif)
	if i < 0 {
		return false
	}
	d.Courts = append(d.Courts[:i], d.Courts[i+1:]...)
	return true
}

// CourtReferenced reports whether any slip or VIP case points at cif.
func (d *Document) CourtReferenced(cif string) bool {
	for _, s := range d.PurchaseSlips {
		if s.CourtCIF == cif {
			return true
		}
	}
	for _, c := range d.VipCases {
		if c.CourtCIF == cif {
			return true
		}
	}
	return false
}

func (d *Document) Report(id int) (*report.Report, bool) {
	for i := range d.Reports {
		if d.Reports[i].ID == id {
			return &d.Reports[i], true
		}
	}
	return nil, false
}

func (d *Document) VipCase(id int) (*vip.Case, bool) {
	for i := range d.VipCases {
		if d.VipCases[i].ID == id {
			return &d.VipCases[i], true
		}
	}
	return nil, false
}
