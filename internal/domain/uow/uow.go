package uow

import (
	"context"

	"siged/internal/domain/document"
)

// UnitOfWork brackets one load-validate-mutate-persist sequence.
// Implementations serialize WithinTx calls against the same document and
// wrap load/save failures in domainerr.ErrStorage.
type UnitOfWork interface {
	// WithinTx loads the document, runs fn and saves only when fn returns nil.
	// An error from fn is returned unchanged and nothing is persisted.
	WithinTx(ctx context.Context, fn func(doc *document.Document) error) error
	// View runs fn against a snapshot; changes made by fn are discarded.
	View(ctx context.Context, fn func(doc *document.Document) error) error
}
