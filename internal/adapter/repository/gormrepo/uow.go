package gormrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"siged/internal/domain/document"
	"siged/internal/domain/domainerr"
	"siged/internal/domain/uow"
)

var _ uow.UnitOfWork = (*GormUoW)(nil)

// GormUoW serializes writers across processes with a row lock on the
// document plus the version check in Save.
type GormUoW struct {
	db   *gorm.DB
	name string
}

func NewGormUoW(db *gorm.DB, name string) *GormUoW { return &GormUoW{db: db, name: name} }

func (u *GormUoW) WithinTx(ctx context.Context, fn func(doc *document.Document) error) error {
	var fnErr error
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := NewDocumentRepository(tx, u.name)
		// lock the document row up-front to prevent lost updates
		doc, err := repo.load(ctx, true)
		if err != nil {
			return domainerr.Storage("load document", err)
		}
		if fnErr = fn(doc); fnErr != nil {
			return fnErr
		}
		if err := repo.Save(ctx, doc); err != nil {
			return domainerr.Storage("save document", err)
		}
		return nil
	})
	switch {
	case err == nil:
		return nil
	case fnErr != nil:
		return fnErr
	case errors.Is(err, domainerr.ErrStorage):
		return err
	}
	return domainerr.Storage("commit document", err)
}

func (u *GormUoW) View(ctx context.Context, fn func(doc *document.Document) error) error {
	doc, err := NewDocumentRepository(u.db, u.name).Load(ctx)
	if err != nil {
		return domainerr.Storage("load document", err)
	}
	return fn(doc)
}
