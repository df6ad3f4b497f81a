// Package jsonfile persists the document as one indented JSON file, the
// layout the records office has always kept on disk.
package jsonfile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"siged/internal/domain/document"
)

var _ document.Repository = (*Store)(nil)

type Store struct {
	path string
	log  logrus.FieldLogger
	mu   sync.Mutex
	now  func() time.Time
}

func New(path string, log logrus.FieldLogger) *Store {
	return &Store{path: path, log: log.WithField("store", "jsonfile"), now: time.Now}
}

// Load treats a missing file as an empty document.
func (s *Store) Load(ctx context.Context) (*document.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

func (s *Store) read() (*document.Document, error) {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.log.WithField("path", s.path).Warn("document file not found, starting empty")
		return document.New(), nil
	}
	if err != nil {
		return nil, err
	}
	d, err := document.Decode(b)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	return d, nil
}

// Save writes to a temp file in the same directory and renames it over the
// target so readers never observe a partial document.
func (s *Store) Save(ctx context.Context, d *document.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.read()
	if err != nil {
		return err
	}
	if current.Meta.Version != d.Meta.Version {
		return document.ErrStaleDocument
	}

	at := s.now().UTC()
	next := d.Clone()
	next.Meta = document.Meta{Version: d.Meta.Version + 1, UpdatedAt: &at}
	b, err := document.Encode(next)
	if err != nil {
		return err
	}
	if err := writeAtomic(s.path, b); err != nil {
		return err
	}
	d.Meta = next.Meta
	s.log.WithField("version", next.Meta.Version).Debug("document saved")
	return nil
}

func writeAtomic(path string, b []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".db-*.json")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
