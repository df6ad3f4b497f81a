package court

import (
	"context"
	"strings"

	"siged/internal/domain/court"
	"siged/internal/domain/document"
	"siged/internal/domain/uow"
)

type Usecase struct{ uow uow.UnitOfWork }

func NewUsecase(u uow.UnitOfWork) *Usecase { return &Usecase{uow: u} }

func (u *Usecase) Create(ctx context.Context, in CreateInput) (*court.Court, error) {
	c := court.Court{CIF: in.CIF, Name: in.Name, Address: in.Address}.Normalized()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	err := u.uow.WithinTx(ctx, func(doc *document.Document) error {
		if _, exists := doc.Court(c.CIF); exists {
			return court.ErrDuplicateCIF
		}
		doc.Courts = append(doc.Courts, c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Update replaces name and address; the cif is the immutable key.
func (u *Usecase) Update(ctx context.Context, cif string, in UpdateInput) (*court.Court, error) {
	c := court.Court{CIF: cif, Name: in.Name, Address: in.Address}.Normalized()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	err := u.uow.WithinTx(ctx, func(doc *document.Document) error {
		stored, ok := doc.Court(c.CIF)
		if !ok {
			return court.ErrNotFound
		}
		*stored = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Delete refuses to remove a court still referenced by a purchase slip or
// a VIP case.
func (u *Usecase) Delete(ctx context.Context, cif string) error {
	cif = strings.TrimSpace(cif)
	return u.uow.WithinTx(ctx, func(doc *document.Document) error {
		if _, ok := doc.Court(cif); !ok {
			return court.ErrNotFound
		}
		if doc.CourtReferenced(cif) {
			return court.ErrInUse
		}
		doc.RemoveCourt(cif)
		return nil
	})
}

func (u *Usecase) Get(ctx context.Context, cif string) (*court.Court, error) {
	cif = strings.TrimSpace(cif)
	var out *court.Court
	err := u.uow.View(ctx, func(doc *document.Document) error {
		c, ok := doc.Court(cif)
		if !ok {
			return court.ErrNotFound
		}
		v := *c
		out = &v
		return nil
	})
	return out, err
}

func (u *Usecase) List(ctx context.Context) ([]court.Court, error) {
	var out []court.Court
	err := u.uow.View(ctx, func(doc *document.Document) error {
		out = append([]court.Court{}, doc.Courts...)
		return nil
	})
	return out, err
}
