package grpc

import (
	"context"
	"errors"
	"fmt"
	"time"

	pb "github.com/cleanops/survey-server/api/v1"
	"github.com/cleanops/survey-server/internal/service"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

const (
	defaultViewCacheTTL = 2 * time.Minute
	defaultGRPCTimeout  = 10 * time.Second
)

type CacheKeyType string

const (
	cacheKeyMetricsSummary    CacheKeyType = "grpc:metrics_summary"
	cacheKeySectorQuality     CacheKeyType = "grpc:sector_quality_crosstab"
	cacheKeySectorMaterial    CacheKeyType = "grpc:sector_material_crosstab"
	cacheKeyDailySeries       CacheKeyType = "grpc:daily_response_series"
	cacheKeySectorBreakdown   CacheKeyType = "grpc:sector_breakdown"
	cacheKeyMaterialBreakdown CacheKeyType = "grpc:missing_material_breakdown"
)

func viewCacheKeys() []string {
	return []string{
		string(cacheKeyMetricsSummary),
		string(cacheKeySectorQuality),
		string(cacheKeySectorMaterial),
		string(cacheKeyDailySeries),
		string(cacheKeySectorBreakdown),
		string(cacheKeyMaterialBreakdown),
	}
}

type GRPCHandlers struct {
	pb.UnimplementedSurveyDashboardServer
	analytics AnalyticsService
	cache     Cacher
	logger    *zap.Logger
	sfGroup   singleflight.Group
	cacheTTL  time.Duration
}

// NewGRPCHandlers initializes the gRPC handlers.
func NewGRPCHandlers(analytics AnalyticsService, cache Cacher, logger *zap.Logger, ttl time.Duration) *GRPCHandlers {
	if analytics == nil {
		panic("nil AnalyticsService provided to NewGRPCHandlers")
	}
	if ttl <= 0 {
		ttl = defaultViewCacheTTL
	}
	return &GRPCHandlers{
		analytics: analytics,
		cache:     cache,
		logger:    logger.Named("grpc-handler"),
		cacheTTL:  ttl,
	}
}

func (s *GRPCHandlers) handleError(ctx context.Context, op string, err error) error {
	switch ctx.Err() {
	case context.Canceled:
		s.logger.Warn("request canceled", zap.String("op", op))
		return status.Error(codes.Canceled, "request canceled")
	case context.DeadlineExceeded:
		s.logger.Warn("request timeout", zap.String("op", op))
		return status.Error(codes.DeadlineExceeded, "request timed out")
	}

	switch {
	case errors.Is(err, service.ErrDataSource):
		s.logger.Error("survey store failure", zap.String("op", op), zap.Error(err))
		return status.Error(codes.Unavailable, "survey store unavailable, retry the request")
	default:
		s.logger.Error("unexpected error", zap.String("op", op), zap.Error(err))
		return status.Errorf(codes.Internal, "%s failed: %v", op, err)
	}
}

func (s *GRPCHandlers) GetMetricsSummary(ctx context.Context, req *pb.GetMetricsSummaryRequest) (*pb.MetricsSummaryResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	// A forced request must see the store, so it bypasses the view cache.
	if req.GetForce() {
		summary, err := s.analytics.GetMetricsSummary(ctx, true)
		if err != nil {
			return nil, s.handleError(ctx, "GetMetricsSummary", err)
		}
		return mapToProtoSummary(summary), nil
	}

	summary, err := FindAndCache(ctx, s.cache, &s.sfGroup, string(cacheKeyMetricsSummary), s.cacheTTL, s.logger, func(fetchCtx context.Context) (service.MetricsSummary, error) {
		return s.analytics.GetMetricsSummary(fetchCtx, false)
	})
	if err != nil {
		return nil, s.handleError(ctx, "GetMetricsSummary", err)
	}

	return mapToProtoSummary(summary), nil
}

func (s *GRPCHandlers) GetSectorQualityCrossTab(ctx context.Context, req *pb.CrossTabRequest) (*pb.CrossTabResponse, error) {
	return s.crossTab(ctx, "GetSectorQualityCrossTab", cacheKeySectorQuality, s.analytics.GetSectorQualityCrossTab)
}

func (s *GRPCHandlers) GetSectorMaterialCrossTab(ctx context.Context, req *pb.CrossTabRequest) (*pb.CrossTabResponse, error) {
	return s.crossTab(ctx, "GetSectorMaterialCrossTab", cacheKeySectorMaterial, s.analytics.GetSectorMaterialCrossTab)
}

func (s *GRPCHandlers) crossTab(ctx context.Context, op string, key CacheKeyType, fetch func(context.Context) (service.CrossTab, error)) (*pb.CrossTabResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	ct, err := FindAndCache(ctx, s.cache, &s.sfGroup, string(key), s.cacheTTL, s.logger, fetch)
	if err != nil {
		return nil, s.handleError(ctx, op, err)
	}

	return mapToProtoCrossTab(ct), nil
}

func (s *GRPCHandlers) GetDailyResponseSeries(ctx context.Context, req *pb.DailySeriesRequest) (*pb.DailySeriesResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	series, err := FindAndCache(ctx, s.cache, &s.sfGroup, string(cacheKeyDailySeries), s.cacheTTL, s.logger, func(fetchCtx context.Context) ([]service.DailyCount, error) {
		return s.analytics.GetDailySeries(fetchCtx)
	})
	if err != nil {
		return nil, s.handleError(ctx, "GetDailyResponseSeries", err)
	}

	points := make([]*pb.DailyCount, len(series))
	for i, p := range series {
		points[i] = &pb.DailyCount{
			Date:  p.Date.Format("2006-01-02"),
			Count: int64(p.Count),
		}
	}

	return &pb.DailySeriesResponse{Points: points}, nil
}

func (s *GRPCHandlers) GetSectorBreakdown(ctx context.Context, req *pb.BreakdownRequest) (*pb.BreakdownResponse, error) {
	return s.breakdown(ctx, "GetSectorBreakdown", cacheKeySectorBreakdown, s.analytics.GetSectorBreakdown)
}

func (s *GRPCHandlers) GetMissingMaterialBreakdown(ctx context.Context, req *pb.BreakdownRequest) (*pb.BreakdownResponse, error) {
	return s.breakdown(ctx, "GetMissingMaterialBreakdown", cacheKeyMaterialBreakdown, s.analytics.GetMissingMaterialBreakdown)
}

func (s *GRPCHandlers) breakdown(ctx context.Context, op string, key CacheKeyType, fetch func(context.Context) ([]service.KeyCount, error)) (*pb.BreakdownResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	items, err := FindAndCache(ctx, s.cache, &s.sfGroup, string(key), s.cacheTTL, s.logger, fetch)
	if err != nil {
		return nil, s.handleError(ctx, op, err)
	}

	out := make([]*pb.KeyCount, len(items))
	for i, item := range items {
		out[i] = &pb.KeyCount{Key: item.Key, Count: int64(item.Count)}
	}

	return &pb.BreakdownResponse{Items: out}, nil
}

func (s *GRPCHandlers) FilterResponses(ctx context.Context, req *pb.FilterResponsesRequest) (*pb.FilterResponsesResponse, error) {
	spec, err := parseFilterSpec(req)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	// Filter queries are per-spec and cheap over an in-memory snapshot;
	// they are not cached.
	result, err := s.analytics.FilterResponses(ctx, spec)
	if err != nil {
		return nil, s.handleError(ctx, "FilterResponses", err)
	}

	return mapToProtoFilteredResult(result), nil
}

func (s *GRPCHandlers) RefreshSnapshot(ctx context.Context, req *pb.RefreshSnapshotRequest) (*pb.RefreshSnapshotResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	snap, err := s.analytics.Refresh(ctx)
	if err != nil {
		return nil, s.handleError(ctx, "RefreshSnapshot", err)
	}

	// Stale rendered views must not outlive an explicit refresh.
	if s.cache != nil {
		if err := s.cache.Del(ctx, viewCacheKeys()...); err != nil {
			s.logger.Warn("failed to drop cached views after refresh", zap.Error(err))
		}
	}

	return &pb.RefreshSnapshotResponse{
		Total:    int64(len(snap.Responses)),
		LoadedAt: timestamppb.New(snap.LoadedAt),
	}, nil
}

func parseFilterSpec(req *pb.FilterResponsesRequest) (service.FilterSpec, error) {
	spec := service.FilterSpec{Sectors: req.GetSectors()}

	for _, label := range req.GetQualities() {
		rating, ok := service.ParseQualityRating(label)
		if !ok {
			return service.FilterSpec{}, status.Error(codes.InvalidArgument, fmt.Sprintf("unknown quality rating %q", label))
		}
		spec.Qualities = append(spec.Qualities, rating)
	}

	switch req.GetMissingMaterial() {
	case pb.MissingMaterialFilter_MISSING_MATERIAL_FILTER_ANY:
		spec.MissingMaterial = service.MissingAny
	case pb.MissingMaterialFilter_MISSING_MATERIAL_FILTER_ONLY_MISSING:
		spec.MissingMaterial = service.MissingOnly
	case pb.MissingMaterialFilter_MISSING_MATERIAL_FILTER_ONLY_NOT_MISSING:
		spec.MissingMaterial = service.NotMissingOnly
	default:
		return service.FilterSpec{}, status.Error(codes.InvalidArgument, "unknown missing-material filter")
	}

	return spec, nil
}

func mapToProtoSummary(s service.MetricsSummary) *pb.MetricsSummaryResponse {
	resp := &pb.MetricsSummaryResponse{
		Total:             int64(s.Total),
		MissingCount:      int64(s.MissingCount),
		MissingPct:        s.MissingPct,
		PositiveCount:     int64(s.PositiveCount),
		PositivePct:       s.PositivePct,
		MostRecentAgeDays: int64(s.MostRecentAgeDays),
	}
	if !s.LatestSubmittedAt.IsZero() {
		resp.LatestSubmittedAt = timestamppb.New(s.LatestSubmittedAt)
	}
	return resp
}

func mapToProtoCrossTab(ct service.CrossTab) *pb.CrossTabResponse {
	cells := make([]*pb.CrossTabCell, 0, len(ct.Cells))
	for _, row := range ct.RowKeys {
		for _, col := range ct.ColKeys {
			if n, ok := ct.Cells[service.CellKey{Row: row, Col: col}]; ok {
				cells = append(cells, &pb.CrossTabCell{Row: row, Col: col, Count: int64(n)})
			}
		}
	}
	return &pb.CrossTabResponse{
		RowKeys: ct.RowKeys,
		ColKeys: ct.ColKeys,
		Cells:   cells,
	}
}

func mapToProtoFilteredResult(r service.FilteredResult) *pb.FilterResponsesResponse {
	responses := make([]*pb.SurveyResponse, len(r.Responses))
	for i, resp := range r.Responses {
		responses[i] = &pb.SurveyResponse{
			Id:                  resp.ID,
			Sector:              resp.Sector,
			MaterialMissing:     resp.MaterialMissing,
			MissingMaterialType: resp.MissingMaterialType,
			QualityRating:       resp.QualityRating.String(),
			Message:             resp.Message,
			SubmittedAt:         timestamppb.New(resp.SubmittedAt),
		}
	}

	out := &pb.FilterResponsesResponse{
		Responses:    responses,
		Count:        int64(r.Count),
		MissingCount: int64(r.MissingCount),
	}
	if r.ModalRating != service.RatingUnspecified {
		out.ModalRating = r.ModalRating.String()
	}
	return out
}
