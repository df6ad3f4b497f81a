// Package gormrepo stores the document as a single row of the documents
// table through gorm, for mysql, postgres or sqlite.
package gormrepo

import (
	"context"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"siged/internal/domain/document"
)

// DefaultName is the documents.name key of the records-office document.
const DefaultName = "records"

// Table: documents
type documentRow struct {
	ID        uint64         `gorm:"column:id;primaryKey;autoIncrement"`
	Name      string         `gorm:"column:name;size:64;not null;uniqueIndex:ux_documents_name"`
	Body      datatypes.JSON `gorm:"column:body;not null"`
	Version   int64          `gorm:"column:version;not null"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
}

func (documentRow) TableName() string { return "documents" }

var _ document.Repository = (*DocumentRepository)(nil)

type DocumentRepository struct {
	db   *gorm.DB
	name string
	now  func() time.Time
}

func NewDocumentRepository(db *gorm.DB, name string) *DocumentRepository {
	return &DocumentRepository{db: db, name: name, now: time.Now}
}

func (r *DocumentRepository) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&documentRow{})
}

func (r *DocumentRepository) Load(ctx context.Context) (*document.Document, error) {
	return r.load(ctx, false)
}

// load with forUpdate takes a row lock; dialects without row locks (sqlite)
// drop the clause.
func (r *DocumentRepository) load(ctx context.Context, forUpdate bool) (*document.Document, error) {
	q := r.db.WithContext(ctx)
	if forUpdate {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var row documentRow
	err := q.Where("name = ?", r.name).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return document.New(), nil
	}
	if err != nil {
		return nil, err
	}
	d, err := document.Decode(row.Body)
	if err != nil {
		return nil, err
	}
	d.Meta.Version = row.Version
	return d, nil
}

// Save inserts the row on first save and otherwise only updates it when the
// stored version still matches d.Meta.Version.
func (r *DocumentRepository) Save(ctx context.Context, d *document.Document) error {
	at := r.now().UTC()
	next := d.Clone()
	next.Meta = document.Meta{Version: d.Meta.Version + 1, UpdatedAt: &at}
	body, err := document.Encode(next)
	if err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	if d.Meta.Version == 0 {
		err := db.Create(&documentRow{Name: r.name, Body: datatypes.JSON(body), Version: 1, UpdatedAt: at}).Error
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return document.ErrStaleDocument
		}
		if err != nil {
			return err
		}
		d.Meta = next.Meta
		return nil
	}

	res := db.Model(&documentRow{}).
		Where("name = ? AND version = ?", r.name, d.Meta.Version).
		Updates(map[string]any{
			"body":       datatypes.JSON(body),
			"version":    next.Meta.Version,
			"updated_at": at,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return document.ErrStaleDocument
	}
	d.Meta = next.Meta
	return nil
}
