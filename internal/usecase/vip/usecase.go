package vip

import (
	"context"
	"strings"
	"time"

	"siged/internal/domain/civildate"
	"siged/internal/domain/court"
	"siged/internal/domain/detective"
	"siged/internal/domain/document"
	"siged/internal/domain/uow"
	"siged/internal/domain/vip"
)

type Usecase struct {
	uow uow.UnitOfWork
	now func() time.Time
}

func NewUsecase(u uow.UnitOfWork, now func() time.Time) *Usecase {
	if now == nil {
		now = time.Now
	}
	return &Usecase{uow: u, now: now}
}

func (u *Usecase) today() civildate.Date { return civildate.Today(u.now()) }

// Create opens an unassigned case for an existing court.
func (u *Usecase) Create(ctx context.Context, in CreateInput) (*vip.Case, error) {
	if strings.TrimSpace(in.CourtCIF) == "" {
		return nil, vip.ErrMissingCourt
	}
	if !vip.DescriptionLongEnough(in.Description) {
		return nil, vip.ErrDescriptionTooShort
	}
	if err := vip.ValidatePayment(in.Payment); err != nil {
		return nil, err
	}
	opened, err := civildate.ParsePastField(in.CreationDate, "creation_date", u.today())
	if err != nil {
		return nil, err
	}

	var created vip.Case
	err = u.uow.WithinTx(ctx, func(doc *document.Document) error {
		if _, ok := doc.Court(in.CourtCIF); !ok {
			return court.ErrNotFound
		}
		created = vip.Case{
			ID:           doc.NextVipID(),
			CourtCIF:     in.CourtCIF,
			Description:  in.Description,
			Payment:      in.Payment,
			CreationDate: opened,
		}
		doc.VipCases = append(doc.VipCases, created)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Assign hands an unassigned case to an existing detective.
func (u *Usecase) Assign(ctx context.Context, id int, in AssignInput) (*vip.Case, error) {
	if strings.TrimSpace(in.DetectiveID) == "" {
		return nil, vip.ErrMissingDetective
	}
	on, err := civildate.ParsePastField(in.AssignmentDate, "assignment_date", u.today())
	if err != nil {
		return nil, err
	}
	return u.transition(ctx, id, func(doc *document.Document, c *vip.Case) error {
		if c.State() == vip.StateUnassigned {
			if _, ok := doc.Detective(in.DetectiveID); !ok {
				return detective.ErrNotFound
			}
		}
		return c.Assign(in.DetectiveID, on)
	})
}

// Finalise completes an assigned case; completed cases never change again.
func (u *Usecase) Finalise(ctx context.Context, id int, in FinaliseInput) (*vip.Case, error) {
	on, err := civildate.ParsePastField(in.CompletionDate, "completion_date", u.today())
	if err != nil {
		return nil, err
	}
	return u.transition(ctx, id, func(_ *document.Document, c *vip.Case) error {
		return c.Finalise(on)
	})
}

func (u *Usecase) transition(ctx context.Context, id int, step func(*document.Document, *vip.Case) error) (*vip.Case, error) {
	var out vip.Case
	err := u.uow.WithinTx(ctx, func(doc *document.Document) error {
		c, ok := doc.VipCase(id)
		if !ok {
			return vip.ErrNotFound
		}
		if err := step(doc, c); err != nil {
			return err
		}
		out = c.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// List filters by lifecycle state; "" and "all" return every case.
func (u *Usecase) List(ctx context.Context, state string) ([]vip.Case, error) {
	want := vip.State(state)
	if state != "" && state != StateAll && !want.Valid() {
		return nil, vip.ErrInvalidState
	}
	var out []vip.Case
	err := u.uow.View(ctx, func(doc *document.Document) error {
		out = make([]vip.Case, 0, len(doc.VipCases))
		for i := range doc.VipCases {
			if want.Valid() && doc.VipCases[i].State() != want {
				continue
			}
			out = append(out, doc.VipCases[i].Clone())
		}
		return nil
	})
	return out, err
}
