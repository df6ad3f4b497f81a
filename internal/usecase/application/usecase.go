package application

import (
	"context"
	"time"

	"siged/internal/domain/application"
	"siged/internal/domain/civildate"
	"siged/internal/domain/detective"
	"siged/internal/domain/document"
	"siged/internal/domain/level"
	"siged/internal/domain/uow"
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

// Submit validates the applicant and stores a pending application. The
// detective record is created on the first accepted submission.
func (u *Usecase) Submit(ctx context.Context, in SubmitInput) (*application.Application, error) {
	applicant := detective.Detective{
		NationalID:       in.NationalID,
		FirstName:        in.FirstName,
		LastName:         in.LastName,
		Address:          in.Address,
		City:             in.City,
		PostalCode:       in.PostalCode,
		Telephone:        in.Telephone,
		PromotionHistory: []detective.PromotionRecord{},
	}
	if err := applicant.Validate(); err != nil {
		return nil, err
	}
	if err := application.ValidateTexts(in.Equipment, in.CV); err != nil {
		return nil, err
	}
	date, err := civildate.ParsePast(in.Date, civildate.Today(u.now()))
	if err != nil {
		return nil, err
	}

	var created application.Application
	err = u.uow.WithinTx(ctx, func(doc *document.Document) error {
		month := date.MonthKey()
		for _, a := range doc.Applications {
			if a.DetectiveID == applicant.NationalID && a.Date.MonthKey() == month {
				return application.ErrDuplicateMonthly
			}
		}
		if _, ok := doc.Detective(applicant.NationalID); !ok {
			doc.Detectives = append(doc.Detectives, applicant)
		}
		created = application.Application{
			ID:          doc.NextApplicationID(),
			DetectiveID: applicant.NationalID,
			Date:        date,
			Equipment:   in.Equipment,
			CV:          in.CV,
			Status:      application.StatusPending,
		}
		doc.Applications = append(doc.Applications, created)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Approve moves a pending application to approved and sets the owner's
// level directly, without a promotion history entry.
func (u *Usecase) Approve(ctx context.Context, id, lvl int) error {
	return u.uow.WithinTx(ctx, func(doc *document.Document) error {
		app, ok := doc.Application(id)
		if !ok || app.Status != application.StatusPending {
			return application.ErrPendingNotFound
		}
		if _, ok := doc.Level(lvl); !ok {
			return level.ErrNotFound
		}
		owner, ok := doc.Detective(app.DetectiveID)
		if !ok {
			return detective.ErrNotFound
		}
		if err := app.Approve(); err != nil {
			return err
		}
		owner.AssignLevel(lvl)
		return nil
	})
}

func (u *Usecase) Reject(ctx context.Context, id int) error {
	return u.uow.WithinTx(ctx, func(doc *document.Document) error {
		app, ok := doc.Application(id)
		if !ok {
			return application.ErrNotFound
		}
		return app.Reject()
	})
}

// List filters by status; "" and "all" return every application.
func (u *Usecase) List(ctx context.Context, status string) ([]application.Application, error) {
	want := application.Status(status)
	if status != "" && status != StatusAll && !want.Valid() {
		return nil, application.ErrInvalidStatus
	}
	var out []application.Application
	err := u.uow.View(ctx, func(doc *document.Document) error {
		out = make([]application.Application, 0, len(doc.Applications))
		for _, a := range doc.Applications {
			if want.Valid() && a.Status != want {
				continue
			}
			out = append(out, a)
		}
		return nil
	})
	return out, err
}

func (u *Usecase) ListApproved(ctx context.Context) ([]application.Application, error) {
	return u.List(ctx, string(application.StatusApproved))
}
