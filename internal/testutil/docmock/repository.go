package docmock

import (
	"context"

	"siged/internal/domain/document"
)

// Repo is a function-backed document.Repository. Nil funcs fall back to an
// empty document on Load and a no-op Save.
type Repo struct {
	LoadFn func(ctx context.Context) (*document.Document, error)
	SaveFn func(ctx context.Context, d *document.Document) error
}

func (m *Repo) Load(ctx context.Context) (*document.Document, error) {
	if m.LoadFn != nil {
		return m.LoadFn(ctx)
	}
	return document.New(), nil
}

func (m *Repo) Save(ctx context.Context, d *document.Document) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, d)
	}
	return nil
}
