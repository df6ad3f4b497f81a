package detective

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siged/internal/domain/civildate"
	domain "siged/internal/domain/detective"
	"siged/internal/domain/document"
	"siged/internal/domain/domainerr"
	"siged/internal/domain/level"
	"siged/internal/testutil/fixture"
	"siged/internal/testutil/uowmock"
)

func seeded() *document.Document {
	d := document.New()
	d.Levels = fixture.Levels()
	d.Detectives = append(d.Detectives,
		fixture.Detective("12345678Z", 2),
		fixture.Detective("87654321X", 0),
		fixture.Detective("11111111H", 5),
	)
	return d
}

func TestPromote_Scenario(t *testing.T) {
	ctx := context.Background()
	u, store := fixture.UoW(seeded())
	uc := NewUsecase(u, fixture.Clock(2024, time.July, 10))

	err := uc.Promote(ctx, "12345678Z", 1)
	require.ErrorIs(t, err, domain.ErrDowngrade)
	require.ErrorIs(t, err, domainerr.ErrConflict)
	require.ErrorIs(t, uc.Promote(ctx, "12345678Z", 2), domain.ErrDowngrade, "equal level is not a promotion")

	require.NoError(t, uc.Promote(ctx, "12345678Z", 3))

	doc, _ := store.Load(ctx)
	d, _ := doc.Detective("12345678Z")
	require.NotNil(t, d.Level)
	assert.Equal(t, 3, *d.Level)
	require.Len(t, d.PromotionHistory, 1)
	assert.Equal(t, domain.PromotionRecord{From: 2, To: 3, Date: civildate.New(2024, time.July, 10)}, d.PromotionHistory[0])
}

func TestPromote_Failures(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		newLevel int
		want     error
	}{
		{"unknown detective", "00000000T", 3, domain.ErrNotFound},
		{"unleveled detective", "87654321X", 3, domain.ErrNotLeveled},
		{"beyond configured levels", "12345678Z", 6, level.ErrNotFound},
		{"already at the top", "11111111H", 5, domain.ErrDowngrade},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, store := fixture.UoW(seeded())
			uc := NewUsecase(u, nil)
			require.ErrorIs(t, uc.Promote(context.Background(), tt.id, tt.newLevel), tt.want)

			doc, _ := store.Load(context.Background())
			for _, d := range doc.Detectives {
				assert.Empty(t, d.PromotionHistory)
			}
		})
	}
}

func TestPromote_HistoryStaysMonotonic(t *testing.T) {
	ctx := context.Background()
	u, store := fixture.UoW(seeded())
	uc := NewUsecase(u, nil)

	for _, to := range []int{3, 3, 2, 5, 4} {
		_ = uc.Promote(ctx, "12345678Z", to)
	}
	doc, _ := store.Load(ctx)
	d, _ := doc.Detective("12345678Z")
	require.Len(t, d.PromotionHistory, 2)
	for _, p := range d.PromotionHistory {
		assert.Greater(t, p.To, p.From)
	}
	assert.Equal(t, 5, *d.Level)
}

func TestGet_NormalizesLookup(t *testing.T) {
	u, _ := fixture.UoW(seeded())
	uc := NewUsecase(u, nil)

	d, err := uc.Get(context.Background(), " 12345678z ")
	require.NoError(t, err)
	assert.Equal(t, "12345678Z", d.NationalID)

	_, err = uc.Get(context.Background(), "99999999R")
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.ErrorIs(t, err, domainerr.ErrNotFound)
}

func TestListAndPromotable(t *testing.T) {
	u, _ := fixture.UoW(seeded())
	uc := NewUsecase(u, nil)

	all, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 3)

	promotable, err := uc.ListPromotable(context.Background())
	require.NoError(t, err)
	require.Len(t, promotable, 1)
	assert.Equal(t, "12345678Z", promotable[0].NationalID)

	empty, _ := fixture.UoW(nil)
	promotable, err = NewUsecase(empty, nil).ListPromotable(context.Background())
	require.NoError(t, err)
	assert.Empty(t, promotable)
}

func TestStorageFailurePassesThrough(t *testing.T) {
	storage := domainerr.Storage("save document", errors.New("read-only fs"))
	uc := NewUsecase(uowmock.Failing(storage), nil)
	require.ErrorIs(t, uc.Promote(context.Background(), "12345678Z", 3), domainerr.ErrStorage)
	_, err := uc.Get(context.Background(), "12345678Z")
	require.ErrorIs(t, err, domainerr.ErrStorage)
}
