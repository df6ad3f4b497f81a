package document

import (
	"strings"
	"testing"
	"time"

	"siged/internal/domain/application"
	"siged/internal/domain/civildate"
	"siged/internal/domain/court"
	"siged/internal/domain/detective"
	"siged/internal/domain/level"
	"siged/internal/domain/report"
	"siged/internal/domain/slip"
	"siged/internal/domain/vip"
)

func TestNextIDs(t *testing.T) {
	d := New()
	if d.NextApplicationID() != 1 || d.NextReportID() != 1 || d.NextSlipID() != 1 || d.NextVipID() != 1 {
		t.Fatal("empty collections must start at 1")
	}

	d.Applications = []application.Application{{ID: 4}, {ID: 2}}
	d.Reports = []report.Report{{ID: 7}}
	d.PurchaseSlips = []slip.Slip{{ID: 1}, {ID: 3}}
	d.VipCases = []vip.Case{{ID: 10}}

	if got := d.NextApplicationID(); got != 5 {
		t.Errorf("NextApplicationID = %d, want 5", got)
	}
	if got := d.NextReportID(); got != 8 {
		t.Errorf("NextReportID = %d, want 8", got)
	}
	if got := d.NextSlipID(); got != 4 {
		t.Errorf("NextSlipID = %d, want 4", got)
	}
	if got := d.NextVipID(); got != 11 {
		t.Errorf("NextVipID = %d, want 11", got)
	}
}

func TestDecode_FillsMissingCollections(t *testing.T) {
	d, err := Decode([]byte(`{"meta":{},"detectives":[{"national_id":"12345678Z","level":null}],"levels":[{"level":1,"price_per_photo":5}]}`))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if d.VipCases == nil || d.PurchaseSlips == nil || d.Courts == nil {
		t.Fatal("missing collections must decode as empty, not nil")
	}
	if d.Detectives[0].PromotionHistory == nil {
		t.Fatal("promotion history must be empty, not nil")
	}
	if d.Detectives[0].IsLeveled() {
		t.Fatal("null level must decode as unleveled")
	}
}

func TestEncode_TopLevelKeys(t *testing.T) {
	b, err := Encode(New())
	if err != nil {
		t.Fatal(err)
	}
	for _, k := range []string{"detectives", "applications", "levels", "courts", "reports", "purchase_slips", "vip_cases"} {
		if !strings.Contains(string(b), `"`+k+`": []`) {
			t.Errorf("encoded document missing empty %q: %s", k, b)
		}
	}
}

func TestClone_IsDeep(t *testing.T) {
	d := New()
	det := detective.Detective{NationalID: "12345678Z"}
	det.AssignLevel(1)
	d.Detectives = append(d.Detectives, det)
	d.Courts = append(d.Courts, court.Court{CIF: "A1", Name: "n", Address: "a"})
	d.VipCases = append(d.VipCases, vip.Case{ID: 1, CreationDate: civildate.New(2024, time.January, 1)})
	now := time.Now()
	d.Meta.UpdatedAt = &now

	c := d.Clone()
	c.Courts[0].Name = "changed"
	c.Detectives[0].AssignLevel(4)
	_ = c.VipCases[0].Assign("12345678Z", civildate.New(2024, time.January, 2))
	*c.Meta.UpdatedAt = now.Add(time.Hour)

	if d.Courts[0].Name != "n" || *d.Detectives[0].Level != 1 || d.VipCases[0].AssignedTo != nil {
		t.Fatalf("clone leaked writes into original: %+v", d)
	}
	if !d.Meta.UpdatedAt.Equal(now) {
		t.Fatal("clone shares meta timestamp")
	}
}

func TestCourtHelpers(t *testing.T) {
	d := New()
	d.Courts = []court.Court{{CIF: "A1"}, {CIF: "B2"}}
	d.VipCases = []vip.Case{{ID: 1, CourtCIF: "B2"}}

	if d.CourtReferenced("A1") || !d.CourtReferenced("B2") {
		t.Fatal("CourtReferenced mismatch")
	}
	d.PurchaseSlips = []slip.Slip{{ID: 1, CourtCIF: "A1"}}
	if !d.CourtReferenced("A1") {
		t.Fatal("slip reference not seen")
	}

	if !d.RemoveCourt("A1") || d.RemoveCourt("A1") {
		t.Fatal("RemoveCourt must remove once")
	}
	if _, ok := d.Court("A1"); ok {
		t.Fatal("court still present")
	}
	if c, ok := d.Court("B2"); !ok || c.CIF != "B2" {
		t.Fatal("remaining court lost")
	}
}

func TestLevels(t *testing.T) {
	d := New()
	if _, ok := d.MaxLevel(); ok {
		t.Fatal("no levels configured")
	}
	d.Levels = []level.Level{{Level: 2, PricePerPhoto: 8}, {Level: 5, PricePerPhoto: 20}, {Level: 1, PricePerPhoto: 5}}

	if m, ok := d.MaxLevel(); !ok || m != 5 {
		t.Fatalf("MaxLevel = %d, %v", m, ok)
	}
	sorted := d.SortedLevels()
	if sorted[0].Level != 1 || sorted[2].Level != 5 || d.Levels[0].Level != 2 {
		t.Fatalf("SortedLevels must sort a copy: %+v / %+v", sorted, d.Levels)
	}
	l, ok := d.Level(2)
	if !ok {
		t.Fatal("level 2 missing")
	}
	l.PricePerPhoto = 9
	if d.Levels[0].PricePerPhoto != 9 {
		t.Fatal("Level must return a pointer into the document")
	}
}
