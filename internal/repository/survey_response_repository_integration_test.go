package repository_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/cleanops/survey-server/internal/repository"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)

	schema := `
	CREATE TABLE survey_responses (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		sector TEXT NOT NULL,
		material_missing INTEGER NOT NULL,
		missing_material_type TEXT,
		quality_rating TEXT NOT NULL,
		message TEXT,
		submitted_at TEXT NOT NULL
	);
	`
	_, err = db.Exec(schema)
	require.NoError(t, err)

	return db
}

func seedTestData(t *testing.T, db *sql.DB, baseTime time.Time) {
	t.Helper()

	responses := []struct {
		sector   string
		missing  int
		material any
		rating   string
		message  any
		offset   time.Duration
	}{
		{sector: "Kitchen", missing: 1, material: "Mop", rating: "Good", message: "floor was sticky", offset: 0},
		{sector: "Office", missing: 0, material: nil, rating: "Very Good", message: nil, offset: time.Hour},
		{sector: "Lobby", missing: 1, material: "Detergent", rating: "Poor", message: nil, offset: 24 * time.Hour},
	}

	for _, r := range responses {
		ts := baseTime.Add(r.offset).Format(time.RFC3339)
		_, err := db.Exec(`
			INSERT INTO survey_responses (sector, material_missing, missing_material_type, quality_rating, message, submitted_at)
			VALUES (?, ?, ?, ?, ?, ?);
		`, r.sector, r.missing, r.material, r.rating, r.message, ts)
		require.NoError(t, err)
	}
}

func TestSurveyResponseRepository_Integration(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	defer db.Close()

	baseTime := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	seedTestData(t, db, baseTime)

	repo := repository.NewSurveyResponseRepository(db)

	t.Run("GetAllResponses reads every row in id order", func(t *testing.T) {
		rows, err := repo.GetAllResponses(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 3)

		require.Equal(t, int64(1), rows[0].ID)
		require.Equal(t, int64(2), rows[1].ID)
		require.Equal(t, int64(3), rows[2].ID)

		require.Equal(t, "Kitchen", rows[0].Sector)
		require.Equal(t, int64(1), rows[0].MaterialMissing)
		require.True(t, rows[0].MissingMaterialType.Valid)
		require.Equal(t, "Mop", rows[0].MissingMaterialType.String)
		require.Equal(t, "Good", rows[0].QualityRating)
		require.True(t, rows[0].Message.Valid)
	})

	t.Run("null columns survive the scan", func(t *testing.T) {
		rows, err := repo.GetAllResponses(ctx)
		require.NoError(t, err)

		office := rows[1]
		require.Equal(t, "Office", office.Sector)
		require.Equal(t, int64(0), office.MaterialMissing)
		require.False(t, office.MissingMaterialType.Valid)
		require.False(t, office.Message.Valid)
	})

	t.Run("empty table yields no rows and no error", func(t *testing.T) {
		emptyDB := setupTestDB(t)
		defer emptyDB.Close()

		rows, err := repository.NewSurveyResponseRepository(emptyDB).GetAllResponses(ctx)
		require.NoError(t, err)
		require.Empty(t, rows)
	})
}
