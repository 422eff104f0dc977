package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultSnapshotTTL matches the 5-minute staleness tolerance of the
	// dashboard: a snapshot older than this is re-fetched on the next load.
	DefaultSnapshotTTL = 300 * time.Second

	storeTimeout = 5 * time.Second
)

// ErrDataSource marks a failed store query. It is recoverable: the caller may
// simply retry Load, and any previously held snapshot stays intact.
var ErrDataSource = errors.New("survey store failure")

// Snapshot is the full normalized response collection at one load. It is
// replaced wholesale on reload and must be treated as read-only by callers.
type Snapshot struct {
	Responses []SurveyResponse
	LoadedAt  time.Time
}

// SnapshotCache holds the current snapshot and re-fetches it from the store
// when it goes stale. It is the only shared mutable state in the pipeline;
// all access is serialized so no torn snapshot is ever observed.
type SnapshotCache struct {
	storage SurveyResponseRepository
	logger  *zap.Logger
	ttl     time.Duration
	now     func() time.Time

	mu      sync.Mutex
	current *Snapshot
	stale   bool
}

func NewSnapshotCache(storage SurveyResponseRepository, logger *zap.Logger, ttl time.Duration) *SnapshotCache {
	if storage == nil {
		panic("storage must not be nil")
	}
	if logger == nil {
		l, _ := zap.NewProduction()
		logger = l
	}
	if ttl <= 0 {
		ttl = DefaultSnapshotTTL
	}
	return &SnapshotCache{
		storage: storage,
		logger:  logger,
		ttl:     ttl,
		now:     time.Now,
	}
}

// Load returns the held snapshot when it is fresh and force is false;
// otherwise it queries the store, normalizes all rows, and replaces the
// snapshot. Rows that fail normalization are skipped and logged rather than
// failing the load; a store failure returns ErrDataSource and leaves the
// previous snapshot in place. Zero stored rows is a valid empty snapshot.
func (c *SnapshotCache) Load(ctx context.Context, force bool) (*Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !force && c.fresh() {
		return c.current, nil
	}

	dbCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	rows, err := c.storage.GetAllResponses(dbCtx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataSource, err)
	}

	responses := make([]SurveyResponse, 0, len(rows))
	dropped := 0
	for _, raw := range rows {
		resp, err := NormalizeRow(raw)
		if err != nil {
			dropped++
			c.logger.Warn("skipping malformed survey row",
				zap.Int64("row_id", raw.ID),
				zap.Error(err))
			continue
		}
		responses = append(responses, resp)
	}
	if dropped > 0 {
		c.logger.Warn("dropped malformed rows during snapshot load",
			zap.Int("dropped", dropped),
			zap.Int("kept", len(responses)))
	}

	c.current = &Snapshot{Responses: responses, LoadedAt: c.now()}
	c.stale = false

	c.logger.Info("snapshot loaded",
		zap.Int("responses", len(responses)),
		zap.Bool("forced", force))

	return c.current, nil
}

// Invalidate unconditionally marks the held snapshot stale without querying
// the store. The next Load re-fetches.
func (c *SnapshotCache) Invalidate() {
	c.mu.Lock()
	c.stale = true
	c.mu.Unlock()
}

// Fresh reports whether a held snapshot would be served as-is by Load.
func (c *SnapshotCache) Fresh() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fresh()
}

// fresh must be called with c.mu held.
func (c *SnapshotCache) fresh() bool {
	return c.current != nil && !c.stale && c.now().Sub(c.current.LoadedAt) < c.ttl
}
