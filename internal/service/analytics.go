package service

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"
)

// KeyFunc extracts a cross-tab key from a response.
type KeyFunc func(SurveyResponse) string

// ComputeSummary derives the aggregate scalar metrics for one response
// collection. Pure and deterministic; an empty collection yields zero
// counts and zero percentages, never a division error.
func ComputeSummary(responses []SurveyResponse, now time.Time) MetricsSummary {
	summary := MetricsSummary{Total: len(responses)}
	if summary.Total == 0 {
		return summary
	}

	var latest time.Time
	for _, r := range responses {
		if r.MaterialMissing {
			summary.MissingCount++
		}
		if r.QualityRating.IsPositive() {
			summary.PositiveCount++
		}
		if r.SubmittedAt.After(latest) {
			latest = r.SubmittedAt
		}
	}

	summary.MissingPct = float64(summary.MissingCount) / float64(summary.Total)
	summary.PositivePct = float64(summary.PositiveCount) / float64(summary.Total)
	summary.LatestSubmittedAt = latest
	summary.MostRecentAgeDays = int(now.Sub(latest).Hours() / 24)
	return summary
}

// BuildCrossTab counts (row, col) pairs over the collection. Row keys appear
// in first-seen order. Column keys follow colOrder when given (restricted to
// keys actually observed), otherwise first-seen order; the quality scale
// always passes its rank order here so rating columns never depend on input
// order.
func BuildCrossTab(responses []SurveyResponse, rowKey, colKey KeyFunc, colOrder []string) CrossTab {
	ct := CrossTab{Cells: make(map[CellKey]int)}

	seenRows := make(map[string]bool)
	seenCols := make(map[string]bool)
	var firstSeenCols []string

	for _, r := range responses {
		rk := rowKey(r)
		ck := colKey(r)
		if !seenRows[rk] {
			seenRows[rk] = true
			ct.RowKeys = append(ct.RowKeys, rk)
		}
		if !seenCols[ck] {
			seenCols[ck] = true
			firstSeenCols = append(firstSeenCols, ck)
		}
		ct.Cells[CellKey{Row: rk, Col: ck}]++
	}

	if len(colOrder) == 0 {
		ct.ColKeys = firstSeenCols
	} else {
		for _, k := range colOrder {
			if seenCols[k] {
				ct.ColKeys = append(ct.ColKeys, k)
			}
		}
	}
	return ct
}

// dayOf truncates a submission time to its UTC calendar date. Every
// day-granular computation in the pipeline goes through here so bucketing can
// never drift by a day between views.
func dayOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DailySeries groups responses into per-day counts, ascending by date. Only
// dates that actually occur appear; gap filling is a rendering concern.
func DailySeries(responses []SurveyResponse) []DailyCount {
	counts := make(map[time.Time]int)
	for _, r := range responses {
		counts[dayOf(r.SubmittedAt)]++
	}

	series := make([]DailyCount, 0, len(counts))
	for date, n := range counts {
		series = append(series, DailyCount{Date: date, Count: n})
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].Date.Before(series[j].Date)
	})
	return series
}

// ApplyFilter returns the subset matching spec plus its mini-summary. A
// response is included iff its sector and rating are both listed and the
// missing-material tri-state matches. Empty Sectors or Qualities therefore
// match nothing. Filtering is idempotent.
func ApplyFilter(responses []SurveyResponse, spec FilterSpec) FilteredResult {
	sectors := make(map[string]bool, len(spec.Sectors))
	for _, s := range spec.Sectors {
		sectors[s] = true
	}
	qualities := make(map[QualityRating]bool, len(spec.Qualities))
	for _, q := range spec.Qualities {
		qualities[q] = true
	}

	result := FilteredResult{Responses: make([]SurveyResponse, 0)}
	ratingCounts := make(map[QualityRating]int)

	for _, r := range responses {
		if !sectors[r.Sector] || !qualities[r.QualityRating] {
			continue
		}
		switch spec.MissingMaterial {
		case MissingOnly:
			if !r.MaterialMissing {
				continue
			}
		case NotMissingOnly:
			if r.MaterialMissing {
				continue
			}
		}

		result.Responses = append(result.Responses, r)
		ratingCounts[r.QualityRating]++
		if r.MaterialMissing {
			result.MissingCount++
		}
	}

	result.Count = len(result.Responses)
	result.ModalRating = modalRating(ratingCounts)
	return result
}

// modalRating picks the most frequent rating. Scanning in rank order makes
// ties resolve to the better rating; an empty count map yields the
// RatingUnspecified sentinel.
func modalRating(counts map[QualityRating]int) QualityRating {
	modal := RatingUnspecified
	best := 0
	for _, q := range AllQualityRatings() {
		if n := counts[q]; n > best {
			modal = q
			best = n
		}
	}
	return modal
}

// CountBySector counts responses per sector in first-seen order.
func CountBySector(responses []SurveyResponse) []KeyCount {
	counts := make(map[string]int)
	var order []string
	for _, r := range responses {
		if _, ok := counts[r.Sector]; !ok {
			order = append(order, r.Sector)
		}
		counts[r.Sector]++
	}

	out := make([]KeyCount, 0, len(order))
	for _, sector := range order {
		out = append(out, KeyCount{Key: sector, Count: counts[sector]})
	}
	return out
}

// MissingMaterialBreakdown counts which material types are reported missing,
// most requested first, ties in first-seen order. Responses without the flag
// set, or flagged but with no named material, are excluded.
func MissingMaterialBreakdown(responses []SurveyResponse) []KeyCount {
	counts := make(map[string]int)
	var order []string
	for _, r := range responses {
		if !r.MaterialMissing || r.MissingMaterialType == "" {
			continue
		}
		if _, ok := counts[r.MissingMaterialType]; !ok {
			order = append(order, r.MissingMaterialType)
		}
		counts[r.MissingMaterialType]++
	}

	out := make([]KeyCount, 0, len(order))
	for _, material := range order {
		out = append(out, KeyCount{Key: material, Count: counts[material]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

// qualityColumnOrder is the fixed column ordering for rating cross-tabs.
func qualityColumnOrder() []string {
	ratings := AllQualityRatings()
	order := make([]string, len(ratings))
	for i, q := range ratings {
		order[i] = q.String()
	}
	return order
}

func sectorKey(r SurveyResponse) string { return r.Sector }

func qualityKey(r SurveyResponse) string { return r.QualityRating.String() }

func materialKey(r SurveyResponse) string {
	if r.MaterialMissing {
		return "Missing"
	}
	return "Not Missing"
}

// AnalyticsService derives every dashboard view from the snapshot cache.
// Each method is one synchronous pull through the pipeline: load (or reuse)
// the snapshot, then compute the view from it.
type AnalyticsService struct {
	snapshots *SnapshotCache
	logger    *zap.Logger
	now       func() time.Time
}

// NewAnalyticsService creates a new AnalyticsService instance.
func NewAnalyticsService(snapshots *SnapshotCache, logger *zap.Logger) *AnalyticsService {
	if snapshots == nil {
		panic("snapshots must not be nil")
	}
	if logger == nil {
		l, _ := zap.NewProduction()
		logger = l
	}
	return &AnalyticsService{
		snapshots: snapshots,
		logger:    logger,
		now:       time.Now,
	}
}

// GetMetricsSummary returns the aggregate metrics, reloading the snapshot
// first when force is set.
func (s *AnalyticsService) GetMetricsSummary(ctx context.Context, force bool) (MetricsSummary, error) {
	snap, err := s.snapshots.Load(ctx, force)
	if err != nil {
		return MetricsSummary{}, err
	}

	summary := ComputeSummary(snap.Responses, s.now())

	s.logger.Info("computed metrics summary",
		zap.Int("total", summary.Total),
		zap.Int("missing", summary.MissingCount),
		zap.Int("positive", summary.PositiveCount))

	return summary, nil
}

// GetSectorQualityCrossTab returns the sector x quality-rating table, with
// rating columns in scale order.
func (s *AnalyticsService) GetSectorQualityCrossTab(ctx context.Context) (CrossTab, error) {
	snap, err := s.snapshots.Load(ctx, false)
	if err != nil {
		return CrossTab{}, err
	}
	return BuildCrossTab(snap.Responses, sectorKey, qualityKey, qualityColumnOrder()), nil
}

// GetSectorMaterialCrossTab returns the sector x missing-material table.
func (s *AnalyticsService) GetSectorMaterialCrossTab(ctx context.Context) (CrossTab, error) {
	snap, err := s.snapshots.Load(ctx, false)
	if err != nil {
		return CrossTab{}, err
	}
	return BuildCrossTab(snap.Responses, sectorKey, materialKey, nil), nil
}

// GetDailySeries returns the per-day response counts.
func (s *AnalyticsService) GetDailySeries(ctx context.Context) ([]DailyCount, error) {
	snap, err := s.snapshots.Load(ctx, false)
	if err != nil {
		return nil, err
	}
	return DailySeries(snap.Responses), nil
}

// GetSectorBreakdown returns response counts per sector.
func (s *AnalyticsService) GetSectorBreakdown(ctx context.Context) ([]KeyCount, error) {
	snap, err := s.snapshots.Load(ctx, false)
	if err != nil {
		return nil, err
	}
	return CountBySector(snap.Responses), nil
}

// GetMissingMaterialBreakdown returns the most requested missing materials.
func (s *AnalyticsService) GetMissingMaterialBreakdown(ctx context.Context) ([]KeyCount, error) {
	snap, err := s.snapshots.Load(ctx, false)
	if err != nil {
		return nil, err
	}
	return MissingMaterialBreakdown(snap.Responses), nil
}

// FilterResponses applies spec to the current snapshot.
func (s *AnalyticsService) FilterResponses(ctx context.Context, spec FilterSpec) (FilteredResult, error) {
	snap, err := s.snapshots.Load(ctx, false)
	if err != nil {
		return FilteredResult{}, err
	}

	result := ApplyFilter(snap.Responses, spec)

	s.logger.Info("applied response filter",
		zap.Int("matched", result.Count),
		zap.Int("snapshot_size", len(snap.Responses)))

	return result, nil
}

// Refresh discards the held snapshot and loads a new one from the store.
func (s *AnalyticsService) Refresh(ctx context.Context) (*Snapshot, error) {
	s.snapshots.Invalidate()
	return s.snapshots.Load(ctx, true)
}
