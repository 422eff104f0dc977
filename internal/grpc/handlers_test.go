package grpc

import (
	"context"
	"errors"
	"testing"
	"time"

	pb "github.com/cleanops/survey-server/api/v1"
	"github.com/cleanops/survey-server/internal/grpc/mocks"
	"github.com/cleanops/survey-server/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// TestNewGRPCHandlers tests the constructor
func TestNewGRPCHandlers(t *testing.T) {
	t.Run("valid parameters", func(t *testing.T) {
		mockAnalytics := &mocks.MockAnalyticsService{}
		mockCache := &mocks.MockCacher{}
		logger := zap.NewNop()
		ttl := 5 * time.Minute

		handlers := NewGRPCHandlers(mockAnalytics, mockCache, logger, ttl)

		assert.NotNil(t, handlers)
		assert.Equal(t, mockAnalytics, handlers.analytics)
		assert.Equal(t, mockCache, handlers.cache)
		assert.Equal(t, ttl, handlers.cacheTTL)
		assert.NotNil(t, handlers.logger)
	})

	t.Run("nil analytics service panics", func(t *testing.T) {
		mockCache := &mocks.MockCacher{}
		logger := zap.NewNop()

		assert.Panics(t, func() {
			NewGRPCHandlers(nil, mockCache, logger, time.Minute)
		})
	})

	t.Run("non-positive TTL uses default", func(t *testing.T) {
		mockAnalytics := &mocks.MockAnalyticsService{}
		mockCache := &mocks.MockCacher{}

		handlers := NewGRPCHandlers(mockAnalytics, mockCache, zap.NewNop(), 0)

		assert.Equal(t, defaultViewCacheTTL, handlers.cacheTTL)
	})
}

func TestGetMetricsSummary(t *testing.T) {
	summary := service.MetricsSummary{
		Total:             10,
		MissingCount:      3,
		MissingPct:        0.3,
		PositiveCount:     6,
		PositivePct:       0.6,
		MostRecentAgeDays: 2,
		LatestSubmittedAt: time.Date(2025, 6, 12, 9, 0, 0, 0, time.UTC),
	}

	t.Run("cache miss falls through to the service", func(t *testing.T) {
		called := false
		mockAnalytics := &mocks.MockAnalyticsService{
			GetMetricsSummaryFunc: func(ctx context.Context, force bool) (service.MetricsSummary, error) {
				called = true
				assert.False(t, force)
				return summary, nil
			},
		}
		handlers := NewGRPCHandlers(mockAnalytics, &mocks.MockCacher{}, zap.NewNop(), time.Minute)

		resp, err := handlers.GetMetricsSummary(context.Background(), &pb.GetMetricsSummaryRequest{})

		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, int64(10), resp.Total)
		assert.Equal(t, int64(3), resp.MissingCount)
		assert.InDelta(t, 0.3, resp.MissingPct, 1e-9)
		assert.Equal(t, int64(6), resp.PositiveCount)
		assert.Equal(t, int64(2), resp.MostRecentAgeDays)
		require.NotNil(t, resp.LatestSubmittedAt)
	})

	t.Run("force bypasses the view cache", func(t *testing.T) {
		cacheGets := 0
		mockCache := &mocks.MockCacher{
			GetFunc: func(ctx context.Context, key string, dest any) error {
				cacheGets++
				return errors.New("should not be consulted")
			},
		}
		mockAnalytics := &mocks.MockAnalyticsService{
			GetMetricsSummaryFunc: func(ctx context.Context, force bool) (service.MetricsSummary, error) {
				assert.True(t, force)
				return summary, nil
			},
		}
		handlers := NewGRPCHandlers(mockAnalytics, mockCache, zap.NewNop(), time.Minute)

		_, err := handlers.GetMetricsSummary(context.Background(), &pb.GetMetricsSummaryRequest{Force: true})

		require.NoError(t, err)
		assert.Zero(t, cacheGets)
	})

	t.Run("empty snapshot has no latest timestamp", func(t *testing.T) {
		mockAnalytics := &mocks.MockAnalyticsService{
			GetMetricsSummaryFunc: func(ctx context.Context, force bool) (service.MetricsSummary, error) {
				return service.MetricsSummary{}, nil
			},
		}
		handlers := NewGRPCHandlers(mockAnalytics, &mocks.MockCacher{}, zap.NewNop(), time.Minute)

		resp, err := handlers.GetMetricsSummary(context.Background(), &pb.GetMetricsSummaryRequest{})

		require.NoError(t, err)
		assert.Zero(t, resp.Total)
		assert.Nil(t, resp.LatestSubmittedAt)
	})

	t.Run("store failure maps to Unavailable", func(t *testing.T) {
		mockAnalytics := &mocks.MockAnalyticsService{
			GetMetricsSummaryFunc: func(ctx context.Context, force bool) (service.MetricsSummary, error) {
				return service.MetricsSummary{}, service.ErrDataSource
			},
		}
		handlers := NewGRPCHandlers(mockAnalytics, &mocks.MockCacher{}, zap.NewNop(), time.Minute)

		resp, err := handlers.GetMetricsSummary(context.Background(), &pb.GetMetricsSummaryRequest{})

		assert.Nil(t, resp)
		assert.Equal(t, codes.Unavailable, status.Code(err))
	})
}

func TestCrossTabHandlers(t *testing.T) {
	ct := service.CrossTab{
		RowKeys: []string{"Kitchen", "Office"},
		ColKeys: []string{"Very Good", "Good"},
		Cells: map[service.CellKey]int{
			{Row: "Kitchen", Col: "Very Good"}: 2,
			{Row: "Office", Col: "Good"}:       1,
		},
	}

	mockAnalytics := &mocks.MockAnalyticsService{
		GetSectorQualityCrossTabFunc: func(ctx context.Context) (service.CrossTab, error) {
			return ct, nil
		},
	}
	handlers := NewGRPCHandlers(mockAnalytics, &mocks.MockCacher{}, zap.NewNop(), time.Minute)

	resp, err := handlers.GetSectorQualityCrossTab(context.Background(), &pb.CrossTabRequest{})

	require.NoError(t, err)
	assert.Equal(t, []string{"Kitchen", "Office"}, resp.RowKeys)
	assert.Equal(t, []string{"Very Good", "Good"}, resp.ColKeys)
	require.Len(t, resp.Cells, 2)
	// Cells are emitted row-major following the key order.
	assert.Equal(t, "Kitchen", resp.Cells[0].Row)
	assert.Equal(t, int64(2), resp.Cells[0].Count)
}

func TestGetDailyResponseSeries(t *testing.T) {
	mockAnalytics := &mocks.MockAnalyticsService{
		GetDailySeriesFunc: func(ctx context.Context) ([]service.DailyCount, error) {
			return []service.DailyCount{
				{Date: time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), Count: 3},
				{Date: time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC), Count: 1},
			}, nil
		},
	}
	handlers := NewGRPCHandlers(mockAnalytics, &mocks.MockCacher{}, zap.NewNop(), time.Minute)

	resp, err := handlers.GetDailyResponseSeries(context.Background(), &pb.DailySeriesRequest{})

	require.NoError(t, err)
	require.Len(t, resp.Points, 2)
	assert.Equal(t, "2025-06-10", resp.Points[0].Date)
	assert.Equal(t, int64(3), resp.Points[0].Count)
	assert.Equal(t, "2025-06-12", resp.Points[1].Date)
}

func TestFilterResponses(t *testing.T) {
	t.Run("spec is parsed and forwarded", func(t *testing.T) {
		var captured service.FilterSpec
		mockAnalytics := &mocks.MockAnalyticsService{
			FilterResponsesFunc: func(ctx context.Context, spec service.FilterSpec) (service.FilteredResult, error) {
				captured = spec
				return service.FilteredResult{
					Responses: []service.SurveyResponse{{
						ID:            7,
						Sector:        "Kitchen",
						QualityRating: service.RatingGood,
						SubmittedAt:   time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC),
					}},
					Count:       1,
					ModalRating: service.RatingGood,
				}, nil
			},
		}
		handlers := NewGRPCHandlers(mockAnalytics, &mocks.MockCacher{}, zap.NewNop(), time.Minute)

		resp, err := handlers.FilterResponses(context.Background(), &pb.FilterResponsesRequest{
			Sectors:         []string{"Kitchen"},
			Qualities:       []string{"Very Good", "Good"},
			MissingMaterial: pb.MissingMaterialFilter_MISSING_MATERIAL_FILTER_ONLY_MISSING,
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"Kitchen"}, captured.Sectors)
		assert.Equal(t, []service.QualityRating{service.RatingVeryGood, service.RatingGood}, captured.Qualities)
		assert.Equal(t, service.MissingOnly, captured.MissingMaterial)
		assert.Equal(t, int64(1), resp.Count)
		assert.Equal(t, "Good", resp.ModalRating)
		require.Len(t, resp.Responses, 1)
		assert.Equal(t, int64(7), resp.Responses[0].Id)
	})

	t.Run("unknown quality label is rejected", func(t *testing.T) {
		mockAnalytics := &mocks.MockAnalyticsService{}
		handlers := NewGRPCHandlers(mockAnalytics, &mocks.MockCacher{}, zap.NewNop(), time.Minute)

		resp, err := handlers.FilterResponses(context.Background(), &pb.FilterResponsesRequest{
			Sectors:   []string{"Kitchen"},
			Qualities: []string{"Stellar"},
		})

		assert.Nil(t, resp)
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
		assert.Contains(t, err.Error(), "Stellar")
	})

	t.Run("empty result carries no modal rating", func(t *testing.T) {
		mockAnalytics := &mocks.MockAnalyticsService{
			FilterResponsesFunc: func(ctx context.Context, spec service.FilterSpec) (service.FilteredResult, error) {
				return service.FilteredResult{ModalRating: service.RatingUnspecified}, nil
			},
		}
		handlers := NewGRPCHandlers(mockAnalytics, &mocks.MockCacher{}, zap.NewNop(), time.Minute)

		resp, err := handlers.FilterResponses(context.Background(), &pb.FilterResponsesRequest{
			Sectors: []string{"Warehouse"},
		})

		require.NoError(t, err)
		assert.Zero(t, resp.Count)
		assert.Empty(t, resp.ModalRating)
	})
}

func TestRefreshSnapshot(t *testing.T) {
	t.Run("reloads and drops cached views", func(t *testing.T) {
		loadedAt := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
		mockAnalytics := &mocks.MockAnalyticsService{
			RefreshFunc: func(ctx context.Context) (*service.Snapshot, error) {
				return &service.Snapshot{
					Responses: make([]service.SurveyResponse, 4),
					LoadedAt:  loadedAt,
				}, nil
			},
		}
		var deleted []string
		mockCache := &mocks.MockCacher{
			DelFunc: func(ctx context.Context, keys ...string) error {
				deleted = append(deleted, keys...)
				return nil
			},
		}
		handlers := NewGRPCHandlers(mockAnalytics, mockCache, zap.NewNop(), time.Minute)

		resp, err := handlers.RefreshSnapshot(context.Background(), &pb.RefreshSnapshotRequest{})

		require.NoError(t, err)
		assert.Equal(t, int64(4), resp.Total)
		assert.Equal(t, loadedAt, resp.LoadedAt.AsTime())
		assert.ElementsMatch(t, viewCacheKeys(), deleted)
	})

	t.Run("store failure maps to Unavailable", func(t *testing.T) {
		mockAnalytics := &mocks.MockAnalyticsService{
			RefreshFunc: func(ctx context.Context) (*service.Snapshot, error) {
				return nil, service.ErrDataSource
			},
		}
		handlers := NewGRPCHandlers(mockAnalytics, &mocks.MockCacher{}, zap.NewNop(), time.Minute)

		resp, err := handlers.RefreshSnapshot(context.Background(), &pb.RefreshSnapshotRequest{})

		assert.Nil(t, resp)
		assert.Equal(t, codes.Unavailable, status.Code(err))
	})
}
