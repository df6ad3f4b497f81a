package vip

import (
	"errors"
	"testing"
	"time"

	"siged/internal/domain/civildate"
)

func day(y int, m time.Month, d int) civildate.Date { return civildate.New(y, m, d) }

func TestLifecycle(t *testing.T) {
	c := &Case{ID: 1, CourtCIF: "B12345678", CreationDate: day(2024, time.January, 1)}
	if c.State() != StateUnassigned {
		t.Fatalf("new case state = %s", c.State())
	}

	if err := c.Finalise(day(2024, time.January, 2)); !errors.Is(err, ErrNotAssignedYet) {
		t.Fatalf("finalise unassigned: want ErrNotAssignedYet, got %v", err)
	}
	if err := c.Assign("12345678Z", day(2023, time.December, 31)); !errors.Is(err, ErrAssignedBeforeOpen) {
		t.Fatalf("assign before creation: want date order violation, got %v", err)
	}
	if c.AssignedTo != nil {
		t.Fatal("failed assign must not mutate the case")
	}

	// same day is allowed
	if err := c.Assign("12345678Z", day(2024, time.January, 1)); err != nil {
		t.Fatalf("assign: %v", err)
	}
	if c.State() != StateAssigned || *c.AssignedTo != "12345678Z" {
		t.Fatalf("after assign: %+v", c)
	}
	if err := c.Assign("87654321X", day(2024, time.January, 5)); !errors.Is(err, ErrAlreadyAssigned) {
		t.Fatalf("second assign: want ErrAlreadyAssigned, got %v", err)
	}

	if err := c.Finalise(day(2023, time.December, 31)); !errors.Is(err, ErrCompletedBeforeAssn) {
		t.Fatalf("finalise before assignment: want date order violation, got %v", err)
	}
	if err := c.Finalise(day(2024, time.January, 1)); err != nil {
		t.Fatalf("finalise: %v", err)
	}
	if c.State() != StateCompleted {
		t.Fatalf("state = %s", c.State())
	}
	if err := c.Finalise(day(2024, time.February, 1)); !errors.Is(err, ErrAlreadyCompleted) {
		t.Fatalf("finalise twice: want ErrAlreadyCompleted, got %v", err)
	}
	if err := c.Assign("87654321X", day(2024, time.February, 1)); !errors.Is(err, ErrAlreadyAssigned) {
		t.Fatalf("assign completed: want ErrAlreadyAssigned, got %v", err)
	}
}

func TestDateOrderErrorsShareCode(t *testing.T) {
	if ErrAssignedBeforeOpen.Code != ErrCompletedBeforeAssn.Code {
		t.Fatal("both ordering failures must carry the same code")
	}
}

func TestValidatePayment(t *testing.T) {
	if err := ValidatePayment(0.01); err != nil {
		t.Fatal(err)
	}
	for _, p := range []float64{0, -5} {
		if err := ValidatePayment(p); !errors.Is(err, ErrInvalidPayment) {
			t.Errorf("ValidatePayment(%v) = %v", p, err)
		}
	}
}

func TestClone_IsDeep(t *testing.T) {
	c := Case{ID: 1, CreationDate: day(2024, time.January, 1)}
	_ = c.Assign("12345678Z", day(2024, time.January, 2))

	cp := c.Clone()
	*cp.AssignedTo = "changed"
	cp.AssignmentDate.Day = 9

	if *c.AssignedTo != "12345678Z" || c.AssignmentDate.Day != 2 {
		t.Fatalf("clone shares memory: %+v", c)
	}
}
