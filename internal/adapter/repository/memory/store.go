// Package memory keeps the document in process memory. Used by tests and
// ephemeral runs.
package memory

import (
	"context"
	"sync"
	"time"

	"siged/internal/domain/document"
)

var _ document.Repository = (*Store)(nil)

type Store struct {
	mu  sync.Mutex
	doc *document.Document
	now func() time.Time
}

// New starts from a copy of seed, or an empty document when seed is nil.
func New(seed *document.Document) *Store {
	doc := document.New()
	if seed != nil {
		doc = seed.Clone()
	}
	return &Store{doc: doc, now: time.Now}
}

func (s *Store) Load(_ context.Context) (*document.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone(), nil
}

func (s *Store) Save(ctx context.Context, d *document.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if d.Meta.Version != s.doc.Meta.Version {
		return document.ErrStaleDocument
	}
	at := s.now().UTC()
	d.Meta = document.Meta{Version: s.doc.Meta.Version + 1, UpdatedAt: &at}
	s.doc = d.Clone()
	return nil
}
