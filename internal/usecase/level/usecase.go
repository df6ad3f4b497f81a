package level

import (
	"context"

	"siged/internal/domain/document"
	"siged/internal/domain/level"
	"siged/internal/domain/uow"
)

type Usecase struct{ uow uow.UnitOfWork }

func NewUsecase(u uow.UnitOfWork) *Usecase { return &Usecase{uow: u} }

func (u *Usecase) List(ctx context.Context) ([]level.Level, error) {
	var out []level.Level
	err := u.uow.View(ctx, func(doc *document.Document) error {
		out = doc.SortedLevels()
		return nil
	})
	return out, err
}

func (u *Usecase) UpdatePrice(ctx context.Context, lvl int, price float64) error {
	if err := level.ValidatePrice(price); err != nil {
		return err
	}
	return u.uow.WithinTx(ctx, func(doc *document.Document) error {
		l, ok := doc.Level(lvl)
		if !ok {
			return level.ErrNotFound
		}
		l.PricePerPhoto = price
		return nil
	})
}

// Seed installs levels when the collection is empty and reports whether it
// did. A populated collection is left untouched.
func (u *Usecase) Seed(ctx context.Context, levels []level.Level) (bool, error) {
	if len(levels) == 0 {
		return false, nil
	}
	populated := false
	if err := u.uow.View(ctx, func(doc *document.Document) error {
		populated = len(doc.Levels) > 0
		return nil
	}); err != nil || populated {
		return false, err
	}

	seeded := false
	err := u.uow.WithinTx(ctx, func(doc *document.Document) error {
		if len(doc.Levels) > 0 {
			return nil
		}
		doc.Levels = append([]level.Level{}, levels...)
		seeded = true
		return nil
	})
	return seeded, err
}
