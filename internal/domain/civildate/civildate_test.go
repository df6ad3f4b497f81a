package civildate

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "15/06/2024", want: New(2024, time.June, 15)},
		{in: "29/02/2024", want: New(2024, time.February, 29)},
		{in: "01/01/0001", want: New(1, time.January, 1)},
		{in: "31/02/2024", wantErr: true},
		{in: "29/02/2023", wantErr: true},
		{in: "31/04/2024", wantErr: true},
		{in: "00/01/2024", wantErr: true},
		{in: "1/01/2024", wantErr: true},
		{in: "01/13/2024", wantErr: true},
		{in: "01/01/24", wantErr: true},
		{in: "2024-01-01", wantErr: true},
		{in: " 01/01/2024", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Parse(%q) err = %v, want ErrInvalid", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q) unexpected err: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParsePast(t *testing.T) {
	today := New(2024, time.July, 10)

	if _, err := ParsePast("10/07/2024", today); err != nil {
		t.Fatalf("today must be accepted: %v", err)
	}
	if _, err := ParsePast("11/07/2024", today); !errors.Is(err, ErrFuture) {
		t.Fatalf("tomorrow: want ErrFuture, got %v", err)
	}
	if _, err := ParsePast("32/07/2024", today); !errors.Is(err, ErrInvalid) {
		t.Fatalf("bad format: want ErrInvalid, got %v", err)
	}
}

func TestOrdering(t *testing.T) {
	a := New(2024, time.January, 1)
	b := New(2023, time.December, 31)

	if !a.IsOnOrAfter(a) {
		t.Fatal("IsOnOrAfter must be non-strict")
	}
	if !a.IsOnOrAfter(b) || b.IsOnOrAfter(a) {
		t.Fatal("year boundary ordering broken")
	}
	if !a.IsFutureRelativeTo(b) || a.IsFutureRelativeTo(a) {
		t.Fatal("IsFutureRelativeTo must be strict")
	}
}

func TestToday_UsesLocationOfNow(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	now := time.Date(2024, time.June, 30, 23, 30, 0, 0, time.UTC).In(loc)

	if got := Today(now); got != New(2024, time.July, 1) {
		t.Fatalf("Today = %v, want 01/07/2024", got)
	}
}

func TestMonthKey(t *testing.T) {
	if New(2024, time.June, 15).MonthKey() != New(2024, time.June, 28).MonthKey() {
		t.Fatal("same month must share a key")
	}
	if New(2024, time.June, 15).MonthKey() == New(2025, time.June, 15).MonthKey() {
		t.Fatal("month key must include the year")
	}
}

func TestJSON(t *testing.T) {
	type wrap struct {
		D Date  `json:"d"`
		P *Date `json:"p"`
	}
	in := wrap{D: New(2024, time.March, 5)}
	b, err := json.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `{"d":"05/03/2024","p":null}` {
		t.Fatalf("marshal = %s", b)
	}

	var out wrap
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatal(err)
	}
	if out.D != in.D || out.P != nil {
		t.Fatalf("round trip mismatch: %+v", out)
	}
	if err := json.Unmarshal([]byte(`{"d":"31/02/2024"}`), &out); err == nil {
		t.Fatal("expected error for impossible date")
	}
}

func TestParsePastField(t *testing.T) {
	today := New(2024, time.July, 10)

	_, err := ParsePastField("12/07/2024", "assignment_date", today)
	if !errors.Is(err, ErrFuture) {
		t.Fatalf("want ErrFuture, got %v", err)
	}
	if err.Error() != "assignment_date: date cannot be in the future" {
		t.Fatalf("field not reported: %q", err.Error())
	}
	if _, err := ParsePastField("nope", "completion_date", today); !errors.Is(err, ErrInvalid) {
		t.Fatalf("want ErrInvalid, got %v", err)
	}
}
