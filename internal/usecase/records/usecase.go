// Package records exposes the whole persisted document read-only.
package records

import (
	"context"

	"siged/internal/domain/document"
	"siged/internal/domain/uow"
)

type Usecase struct{ uow uow.UnitOfWork }

func NewUsecase(u uow.UnitOfWork) *Usecase { return &Usecase{uow: u} }

func (u *Usecase) Document(ctx context.Context) (*document.Document, error) {
	var out *document.Document
	err := u.uow.View(ctx, func(doc *document.Document) error {
		out = doc.Clone()
		return nil
	})
	return out, err
}
