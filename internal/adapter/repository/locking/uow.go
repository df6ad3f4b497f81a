// Package locking turns any document.Repository into a single-writer unit
// of work for one process.
package locking

import (
	"context"
	"sync"

	"siged/internal/domain/document"
	"siged/internal/domain/domainerr"
	"siged/internal/domain/uow"
)

var _ uow.UnitOfWork = (*UoW)(nil)

type UoW struct {
	mu   sync.RWMutex
	repo document.Repository
}

func New(repo document.Repository) *UoW { return &UoW{repo: repo} }

func (u *UoW) WithinTx(ctx context.Context, fn func(doc *document.Document) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	doc, err := u.repo.Load(ctx)
	if err != nil {
		return domainerr.Storage("load document", err)
	}
	if err := fn(doc); err != nil {
		return err
	}
	if err := u.repo.Save(ctx, doc); err != nil {
		return domainerr.Storage("save document", err)
	}
	return nil
}

// View may run alongside other views but never alongside a write.
func (u *UoW) View(ctx context.Context, fn func(doc *document.Document) error) error {
	u.mu.RLock()
	defer u.mu.RUnlock()

	doc, err := u.repo.Load(ctx)
	if err != nil {
		return domainerr.Storage("load document", err)
	}
	return fn(doc)
}
