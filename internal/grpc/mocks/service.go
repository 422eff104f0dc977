package mocks

import (
	"context"
	"errors"

	"github.com/cleanops/survey-server/internal/service"
)

// MockAnalyticsService is a mock implementation of the AnalyticsService
// interface for testing the handler layer. It uses function-based mocking
// for flexibility.
type MockAnalyticsService struct {
	GetMetricsSummaryFunc           func(ctx context.Context, force bool) (service.MetricsSummary, error)
	GetSectorQualityCrossTabFunc    func(ctx context.Context) (service.CrossTab, error)
	GetSectorMaterialCrossTabFunc   func(ctx context.Context) (service.CrossTab, error)
	GetDailySeriesFunc              func(ctx context.Context) ([]service.DailyCount, error)
	GetSectorBreakdownFunc          func(ctx context.Context) ([]service.KeyCount, error)
	GetMissingMaterialBreakdownFunc func(ctx context.Context) ([]service.KeyCount, error)
	FilterResponsesFunc             func(ctx context.Context, spec service.FilterSpec) (service.FilteredResult, error)
	RefreshFunc                     func(ctx context.Context) (*service.Snapshot, error)
}

func (m *MockAnalyticsService) GetMetricsSummary(ctx context.Context, force bool) (service.MetricsSummary, error) {
	if m.GetMetricsSummaryFunc != nil {
		return m.GetMetricsSummaryFunc(ctx, force)
	}
	return service.MetricsSummary{}, errors.New("GetMetricsSummaryFunc not implemented")
}

func (m *MockAnalyticsService) GetSectorQualityCrossTab(ctx context.Context) (service.CrossTab, error) {
	if m.GetSectorQualityCrossTabFunc != nil {
		return m.GetSectorQualityCrossTabFunc(ctx)
	}
	return service.CrossTab{}, errors.New("GetSectorQualityCrossTabFunc not implemented")
}

func (m *MockAnalyticsService) GetSectorMaterialCrossTab(ctx context.Context) (service.CrossTab, error) {
	if m.GetSectorMaterialCrossTabFunc != nil {
		return m.GetSectorMaterialCrossTabFunc(ctx)
	}
	return service.CrossTab{}, errors.New("GetSectorMaterialCrossTabFunc not implemented")
}

func (m *MockAnalyticsService) GetDailySeries(ctx context.Context) ([]service.DailyCount, error) {
	if m.GetDailySeriesFunc != nil {
		return m.GetDailySeriesFunc(ctx)
	}
	return nil, errors.New("GetDailySeriesFunc not implemented")
}

func (m *MockAnalyticsService) GetSectorBreakdown(ctx context.Context) ([]service.KeyCount, error) {
	if m.GetSectorBreakdownFunc != nil {
		return m.GetSectorBreakdownFunc(ctx)
	}
	return nil, errors.New("GetSectorBreakdownFunc not implemented")
}

func (m *MockAnalyticsService) GetMissingMaterialBreakdown(ctx context.Context) ([]service.KeyCount, error) {
	if m.GetMissingMaterialBreakdownFunc != nil {
		return m.GetMissingMaterialBreakdownFunc(ctx)
	}
	return nil, errors.New("GetMissingMaterialBreakdownFunc not implemented")
}

func (m *MockAnalyticsService) FilterResponses(ctx context.Context, spec service.FilterSpec) (service.FilteredResult, error) {
	if m.FilterResponsesFunc != nil {
		return m.FilterResponsesFunc(ctx, spec)
	}
	return service.FilteredResult{}, errors.New("FilterResponsesFunc not implemented")
}

func (m *MockAnalyticsService) Refresh(ctx context.Context) (*service.Snapshot, error) {
	if m.RefreshFunc != nil {
		return m.RefreshFunc(ctx)
	}
	return nil, errors.New("RefreshFunc not implemented")
}
