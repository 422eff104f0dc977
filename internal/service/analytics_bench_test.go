package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/cleanops/survey-server/internal/repository"
	dbbuilder "github.com/cleanops/survey-server/pkg/database"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

func setupSurveyDB(tb testing.TB) *repository.SurveyResponseRepository {
	tb.Helper()

	db, err := dbbuilder.New(
		dbbuilder.WithDriver("sqlite3"),
		dbbuilder.WithDataSource(":memory:"),
		dbbuilder.WithMaxOpenConns(1),
	)
	if err != nil {
		tb.Fatalf("failed to create db pool via builder: %v", err)
	}

	_, err = db.Exec(`
		CREATE TABLE survey_responses (
			id INTEGER PRIMARY KEY,
			sector TEXT NOT NULL,
			material_missing INTEGER NOT NULL,
			missing_material_type TEXT,
			quality_rating TEXT NOT NULL,
			message TEXT,
			submitted_at TEXT NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		tb.Fatalf("failed to create schema: %v", err)
	}

	sectors := []string{"Kitchen", "Office", "Lobby", "Warehouse"}
	ratings := []string{"Very Good", "Good", "Average", "Poor", "Very Poor"}
	base := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)

	for i := 0; i < 1000; i++ {
		_, err := db.Exec(`
			INSERT INTO survey_responses (sector, material_missing, missing_material_type, quality_rating, message, submitted_at)
			VALUES (?, ?, ?, ?, ?, ?);
		`,
			sectors[i%len(sectors)],
			i%3/2, // roughly a third flagged
			"Detergent",
			ratings[i%len(ratings)],
			fmt.Sprintf("message %d", i),
			base.Add(time.Duration(i)*time.Hour).Format(time.RFC3339),
		)
		if err != nil {
			db.Close()
			tb.Fatalf("failed to seed db: %v", err)
		}
	}

	tb.Cleanup(func() { db.Close() })

	return repository.NewSurveyResponseRepository(db)
}

func BenchmarkGetMetricsSummary(b *testing.B) {
	logger := zap.NewNop()
	repo := setupSurveyDB(b)

	cache := NewSnapshotCache(repo, logger, DefaultSnapshotTTL)
	svc := NewAnalyticsService(cache, logger)

	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		// Forced so every iteration pays for a full load and aggregation.
		_, _ = svc.GetMetricsSummary(context.Background(), true)
	}
}

func BenchmarkApplyFilter(b *testing.B) {
	logger := zap.NewNop()
	repo := setupSurveyDB(b)

	cache := NewSnapshotCache(repo, logger, DefaultSnapshotTTL)
	snap, err := cache.Load(context.Background(), false)
	if err != nil {
		b.Fatalf("failed to load snapshot: %v", err)
	}

	spec := FilterSpec{
		Sectors:         []string{"Kitchen", "Office"},
		Qualities:       []QualityRating{RatingVeryGood, RatingGood},
		MissingMaterial: MissingOnly,
	}

	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = ApplyFilter(snap.Responses, spec)
	}
}
