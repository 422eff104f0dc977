package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/cleanops/survey-server/internal/repository/models"
	"github.com/cleanops/survey-server/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func rawRow(id int64, sector string, missing int64, rating, submittedAt string) models.RawSurveyRow {
	return models.RawSurveyRow{
		ID:              id,
		Sector:          sector,
		MaterialMissing: missing,
		QualityRating:   rating,
		SubmittedAt:     submittedAt,
	}
}

// fakeClock drives the cache's notion of now from a settable instant.
type fakeClock struct {
	current time.Time
}

func (c *fakeClock) now() time.Time { return c.current }

func (c *fakeClock) advance(d time.Duration) { c.current = c.current.Add(d) }

func TestNewSnapshotCache(t *testing.T) {
	t.Run("nil storage panics", func(t *testing.T) {
		assert.Panics(t, func() {
			NewSnapshotCache(nil, zap.NewNop(), time.Minute)
		})
	})

	t.Run("nil logger gets default", func(t *testing.T) {
		cache := NewSnapshotCache(&mocks.MockSurveyResponseRepository{}, nil, time.Minute)
		assert.NotNil(t, cache.logger)
	})

	t.Run("non-positive TTL uses default", func(t *testing.T) {
		cache := NewSnapshotCache(&mocks.MockSurveyResponseRepository{}, zap.NewNop(), 0)
		assert.Equal(t, DefaultSnapshotTTL, cache.ttl)
	})
}

func TestSnapshotCache_Load(t *testing.T) {
	ctx := context.Background()
	loadedAt := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	newCache := func(repo *mocks.MockSurveyResponseRepository) (*SnapshotCache, *fakeClock) {
		clock := &fakeClock{current: loadedAt}
		cache := NewSnapshotCache(repo, zap.NewNop(), DefaultSnapshotTTL)
		cache.now = clock.now
		return cache, clock
	}

	t.Run("fresh snapshot is reused without re-querying", func(t *testing.T) {
		repo := &mocks.MockSurveyResponseRepository{
			GetAllResponsesFunc: func(ctx context.Context) ([]models.RawSurveyRow, error) {
				return []models.RawSurveyRow{rawRow(1, "Kitchen", 0, "Good", "2025-06-10T09:00:00Z")}, nil
			},
		}
		cache, clock := newCache(repo)

		first, err := cache.Load(ctx, false)
		require.NoError(t, err)
		require.Len(t, first.Responses, 1)

		clock.advance(100 * time.Second)
		second, err := cache.Load(ctx, false)
		require.NoError(t, err)

		assert.Same(t, first, second, "fresh load must return the identical snapshot")
		assert.Equal(t, 1, repo.Calls)
	})

	t.Run("expired snapshot triggers a re-query", func(t *testing.T) {
		repo := &mocks.MockSurveyResponseRepository{
			GetAllResponsesFunc: func(ctx context.Context) ([]models.RawSurveyRow, error) {
				return nil, nil
			},
		}
		cache, clock := newCache(repo)

		first, err := cache.Load(ctx, false)
		require.NoError(t, err)

		clock.advance(301 * time.Second)
		second, err := cache.Load(ctx, false)
		require.NoError(t, err)

		assert.NotSame(t, first, second)
		assert.Equal(t, 2, repo.Calls)
		assert.Equal(t, clock.current, second.LoadedAt)
	})

	t.Run("force re-queries even when fresh", func(t *testing.T) {
		repo := &mocks.MockSurveyResponseRepository{
			GetAllResponsesFunc: func(ctx context.Context) ([]models.RawSurveyRow, error) {
				return nil, nil
			},
		}
		cache, _ := newCache(repo)

		_, err := cache.Load(ctx, false)
		require.NoError(t, err)
		_, err = cache.Load(ctx, true)
		require.NoError(t, err)

		assert.Equal(t, 2, repo.Calls)
	})

	t.Run("invalidate marks the snapshot stale without querying", func(t *testing.T) {
		repo := &mocks.MockSurveyResponseRepository{
			GetAllResponsesFunc: func(ctx context.Context) ([]models.RawSurveyRow, error) {
				return nil, nil
			},
		}
		cache, _ := newCache(repo)

		_, err := cache.Load(ctx, false)
		require.NoError(t, err)
		assert.True(t, cache.Fresh())

		cache.Invalidate()
		assert.False(t, cache.Fresh())
		assert.Equal(t, 1, repo.Calls, "invalidate itself must not query the store")

		_, err = cache.Load(ctx, false)
		require.NoError(t, err)
		assert.Equal(t, 2, repo.Calls)
	})

	t.Run("store failure surfaces ErrDataSource and keeps the prior snapshot", func(t *testing.T) {
		failing := false
		repo := &mocks.MockSurveyResponseRepository{
			GetAllResponsesFunc: func(ctx context.Context) ([]models.RawSurveyRow, error) {
				if failing {
					return nil, errors.New("connection refused")
				}
				return []models.RawSurveyRow{rawRow(1, "Kitchen", 0, "Good", "2025-06-10T09:00:00Z")}, nil
			},
		}
		cache, _ := newCache(repo)

		first, err := cache.Load(ctx, false)
		require.NoError(t, err)

		failing = true
		_, err = cache.Load(ctx, true)
		assert.ErrorIs(t, err, ErrDataSource)
		assert.Contains(t, err.Error(), "connection refused")

		// The failed load must not have discarded the working snapshot.
		failing = false
		held, err := cache.Load(ctx, false)
		require.NoError(t, err)
		assert.Same(t, first, held)
	})

	t.Run("malformed rows are skipped, load continues", func(t *testing.T) {
		repo := &mocks.MockSurveyResponseRepository{
			GetAllResponsesFunc: func(ctx context.Context) ([]models.RawSurveyRow, error) {
				return []models.RawSurveyRow{
					rawRow(1, "Kitchen", 0, "Good", "2025-06-10T09:00:00Z"),
					rawRow(2, "Office", 1, "Superb", "2025-06-10T10:00:00Z"), // unknown rating
					rawRow(3, "", 0, "Average", "2025-06-10T11:00:00Z"),      // empty sector
					rawRow(4, "Lobby", 1, "Poor", "2025-06-10T12:00:00Z"),
				}, nil
			},
		}
		cache, _ := newCache(repo)

		snap, err := cache.Load(ctx, false)

		require.NoError(t, err)
		require.Len(t, snap.Responses, 2)
		assert.Equal(t, int64(1), snap.Responses[0].ID)
		assert.Equal(t, int64(4), snap.Responses[1].ID)
	})

	t.Run("zero stored rows is a valid empty snapshot", func(t *testing.T) {
		repo := &mocks.MockSurveyResponseRepository{
			GetAllResponsesFunc: func(ctx context.Context) ([]models.RawSurveyRow, error) {
				return []models.RawSurveyRow{}, nil
			},
		}
		cache, _ := newCache(repo)

		snap, err := cache.Load(ctx, false)

		require.NoError(t, err)
		assert.NotNil(t, snap)
		assert.Empty(t, snap.Responses)
	})

	t.Run("snapshot keeps store order", func(t *testing.T) {
		repo := &mocks.MockSurveyResponseRepository{
			GetAllResponsesFunc: func(ctx context.Context) ([]models.RawSurveyRow, error) {
				rows := make([]models.RawSurveyRow, 0, 5)
				for i := 5; i >= 1; i-- {
					rows = append(rows, rawRow(int64(i), fmt.Sprintf("Sector %d", i), 0, "Average", "2025-06-10T09:00:00Z"))
				}
				return rows, nil
			},
		}
		cache, _ := newCache(repo)

		snap, err := cache.Load(ctx, false)
		require.NoError(t, err)

		require.Len(t, snap.Responses, 5)
		for i, resp := range snap.Responses {
			assert.Equal(t, int64(5-i), resp.ID)
		}
	})
}
