// Package fixture builds in-memory units of work and fixed clocks for
// usecase and handler tests.
package fixture

import (
	"time"

	"siged/internal/adapter/repository/locking"
	"siged/internal/adapter/repository/memory"
	"siged/internal/domain/detective"
	"siged/internal/domain/document"
	"siged/internal/domain/level"
)

// Clock returns a clock stuck at noon UTC on the given day.
func Clock(year int, month time.Month, day int) func() time.Time {
	t := time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return t }
}

// UoW wraps doc (nil for an empty document) in a memory store behind a
// locking unit of work. The store is returned for direct inspection.
func UoW(doc *document.Document) (*locking.UoW, *memory.Store) {
	store := memory.New(doc)
	return locking.New(store), store
}

// Levels returns the default level table: 1..5 at 10, 15, 20, 25, 30.
func Levels() []level.Level {
	return []level.Level{
		{Level: 1, PricePerPhoto: 10},
		{Level: 2, PricePerPhoto: 15},
		{Level: 3, PricePerPhoto: 20},
		{Level: 4, PricePerPhoto: 25},
		{Level: 5, PricePerPhoto: 30},
	}
}

// Detective returns a valid detective record; lvl 0 means unleveled.
func Detective(nationalID string, lvl int) detective.Detective {
	d := detective.Detective{
		NationalID:       nationalID,
		FirstName:        "Ana",
		LastName:         "García-López",
		Address:          "Calle Mayor 1",
		City:             "Madrid",
		PostalCode:       "28013",
		Telephone:        "600123456",
		PromotionHistory: []detective.PromotionRecord{},
	}
	if lvl > 0 {
		d.AssignLevel(lvl)
	}
	return d
}
