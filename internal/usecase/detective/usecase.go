package detective

import (
	"context"
	"time"

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

// Get looks a detective up by national id, ignoring case and whitespace.
func (u *Usecase) Get(ctx context.Context, nationalID string) (*detective.Detective, error) {
	key := detective.NormalizeNationalID(nationalID)
	var out *detective.Detective
	err := u.uow.View(ctx, func(doc *document.Document) error {
		d, ok := doc.Detective(key)
		if !ok {
			return detective.ErrNotFound
		}
		c := d.Clone()
		out = &c
		return nil
	})
	return out, err
}

func (u *Usecase) List(ctx context.Context) ([]detective.Detective, error) {
	var out []detective.Detective
	err := u.uow.View(ctx, func(doc *document.Document) error {
		out = append([]detective.Detective{}, doc.Detectives...)
		return nil
	})
	return out, err
}

// ListPromotable returns leveled detectives below the highest configured level.
func (u *Usecase) ListPromotable(ctx context.Context) ([]detective.Detective, error) {
	var out []detective.Detective
	err := u.uow.View(ctx, func(doc *document.Document) error {
		out = []detective.Detective{}
		top, ok := doc.MaxLevel()
		if !ok {
			return nil
		}
		for _, d := range doc.Detectives {
			if d.IsLeveled() && *d.Level < top {
				out = append(out, d)
			}
		}
		return nil
	})
	return out, err
}

// Promote moves a leveled detective strictly upwards to a configured level
// and records the step in the promotion history, dated today.
func (u *Usecase) Promote(ctx context.Context, nationalID string, newLevel int) error {
	today := civildate.Today(u.now())
	return u.uow.WithinTx(ctx, func(doc *document.Document) error {
		d, ok := doc.Detective(nationalID)
		if !ok {
			return detective.ErrNotFound
		}
		if d.IsLeveled() && newLevel > *d.Level {
			if _, ok := doc.Level(newLevel); !ok {
				return level.ErrNotFound
			}
		}
		return d.Promote(newLevel, today)
	})
}
