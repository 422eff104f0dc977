package grpc

import (
	"context"
	"time"

	"github.com/cleanops/survey-server/internal/service"
)

// Cacher defines the interface for the view cache.
type Cacher interface {
	Close() error
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

type AnalyticsService interface {
	GetMetricsSummary(ctx context.Context, force bool) (service.MetricsSummary, error)
	GetSectorQualityCrossTab(ctx context.Context) (service.CrossTab, error)
	GetSectorMaterialCrossTab(ctx context.Context) (service.CrossTab, error)
	GetDailySeries(ctx context.Context) ([]service.DailyCount, error)
	GetSectorBreakdown(ctx context.Context) ([]service.KeyCount, error)
	GetMissingMaterialBreakdown(ctx context.Context) ([]service.KeyCount, error)
	FilterResponses(ctx context.Context, spec service.FilterSpec) (service.FilteredResult, error)
	Refresh(ctx context.Context) (*service.Snapshot, error)
}
