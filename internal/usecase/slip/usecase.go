package slip

import (
	"context"
	"strings"
	"time"

	"siged/internal/domain/civildate"
	"siged/internal/domain/court"
	"siged/internal/domain/detective"
	"siged/internal/domain/document"
	"siged/internal/domain/level"
	"siged/internal/domain/report"
	"siged/internal/domain/slip"
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

// Create records a court buying a report. The detective payment is the
// current price per photo of the report owner's level times the photo count;
// the court must pay at least that much.
func (u *Usecase) Create(ctx context.Context, in CreateInput) (*slip.Slip, error) {
	date, err := civildate.ParsePast(in.Date, civildate.Today(u.now()))
	if err != nil {
		return nil, err
	}
	if in.ReportID <= 0 {
		return nil, slip.ErrInvalidReport
	}
	if strings.TrimSpace(in.CourtCIF) == "" {
		return nil, slip.ErrMissingCourtID
	}
	if err := slip.ValidateAmount(in.AmountPaidByCourt); err != nil {
		return nil, err
	}

	var created slip.Slip
	err = u.uow.WithinTx(ctx, func(doc *document.Document) error {
		r, ok := doc.Report(in.ReportID)
		if !ok {
			return report.ErrNotFound
		}
		if _, ok := doc.Court(in.CourtCIF); !ok {
			return court.ErrNotFound
		}
		owner, ok := doc.Detective(r.DetectiveID)
		if !ok {
			return detective.ErrNotFound
		}
		if !owner.IsLeveled() {
			return detective.ErrNotLeveled
		}
		l, ok := doc.Level(*owner.Level)
		if !ok {
			return level.ErrNotFound
		}

		owed := slip.DetectivePayment(l.PricePerPhoto, r.NumPhotos)
		if err := slip.CheckCovers(in.AmountPaidByCourt, owed); err != nil {
			return err
		}
		created = slip.Slip{
			ID:                    doc.NextSlipID(),
			ReportID:              r.ID,
			CourtCIF:              in.CourtCIF,
			AmountPaidByCourt:     in.AmountPaidByCourt,
			AmountPaidToDetective: owed.InexactFloat64(),
			Date:                  date,
		}
		doc.PurchaseSlips = append(doc.PurchaseSlips, created)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (u *Usecase) List(ctx context.Context) ([]slip.Slip, error) {
	var out []slip.Slip
	err := u.uow.View(ctx, func(doc *document.Document) error {
		out = append([]slip.Slip{}, doc.PurchaseSlips...)
		return nil
	})
	return out, err
}
