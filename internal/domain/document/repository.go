package document

import "context"

// Repository loads and saves the whole document atomically.
type Repository interface {
	// Load returns a private copy; mutating it has no effect until Save.
	Load(ctx context.Context) (*Document, error)
	// Save persists d, failing with ErrStaleDocument if d.Meta.Version no
	// longer matches the stored version. On success d.Meta is advanced.
	Save(ctx context.Context, d *Document) error
}
