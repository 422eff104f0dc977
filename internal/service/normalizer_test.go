package service

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/cleanops/survey-server/internal/repository/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRawRow() models.RawSurveyRow {
	return models.RawSurveyRow{
		ID:                  42,
		Sector:              "Kitchen",
		MaterialMissing:     1,
		MissingMaterialType: sql.NullString{String: "Detergent", Valid: true},
		QualityRating:       "Good",
		Message:             sql.NullString{String: "floor still wet", Valid: true},
		SubmittedAt:         "2025-06-10T14:30:00Z",
	}
}

func TestNormalizeRow(t *testing.T) {
	t.Run("valid row round-trips its raw fields", func(t *testing.T) {
		raw := validRawRow()

		resp, err := NormalizeRow(raw)

		require.NoError(t, err)
		assert.Equal(t, int64(42), resp.ID)
		assert.Equal(t, "Kitchen", resp.Sector)
		assert.True(t, resp.MaterialMissing)
		assert.Equal(t, "Detergent", resp.MissingMaterialType)
		assert.Equal(t, RatingGood, resp.QualityRating)
		assert.Equal(t, "floor still wet", resp.Message)
		assert.Equal(t, time.Date(2025, 6, 10, 14, 30, 0, 0, time.UTC), resp.SubmittedAt)

		// Re-deriving the raw representations yields the original values.
		assert.Equal(t, raw.QualityRating, resp.QualityRating.String())
		assert.Equal(t, raw.MaterialMissing == 1, resp.MaterialMissing)
	})

	t.Run("material type dropped when nothing is missing", func(t *testing.T) {
		raw := validRawRow()
		raw.MaterialMissing = 0
		raw.MissingMaterialType = sql.NullString{String: "Detergent", Valid: true}

		resp, err := NormalizeRow(raw)

		require.NoError(t, err)
		assert.False(t, resp.MaterialMissing)
		assert.Empty(t, resp.MissingMaterialType)
	})

	t.Run("null message and material type are fine", func(t *testing.T) {
		raw := validRawRow()
		raw.Message = sql.NullString{}
		raw.MissingMaterialType = sql.NullString{}

		resp, err := NormalizeRow(raw)

		require.NoError(t, err)
		assert.Empty(t, resp.Message)
		assert.Empty(t, resp.MissingMaterialType)
	})

	t.Run("empty sector fails", func(t *testing.T) {
		raw := validRawRow()
		raw.Sector = "   "

		_, err := NormalizeRow(raw)

		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "sector", verr.Field)
		assert.Equal(t, int64(42), verr.RowID)
	})

	t.Run("unknown rating is rejected, not coerced", func(t *testing.T) {
		raw := validRawRow()
		raw.QualityRating = "Excellent"

		_, err := NormalizeRow(raw)

		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "quality_rating", verr.Field)
		assert.Contains(t, verr.Error(), "Excellent")
	})

	t.Run("missing flag outside 0/1 fails", func(t *testing.T) {
		raw := validRawRow()
		raw.MaterialMissing = 2

		_, err := NormalizeRow(raw)

		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "material_missing", verr.Field)
	})

	t.Run("empty timestamp fails", func(t *testing.T) {
		raw := validRawRow()
		raw.SubmittedAt = ""

		_, err := NormalizeRow(raw)

		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "submitted_at", verr.Field)
	})

	t.Run("unparseable timestamp fails", func(t *testing.T) {
		raw := validRawRow()
		raw.SubmittedAt = "10/06/2025"

		_, err := NormalizeRow(raw)

		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "submitted_at", verr.Field)
	})

	t.Run("sqlite datetime layout accepted", func(t *testing.T) {
		raw := validRawRow()
		raw.SubmittedAt = "2025-06-10 14:30:00"

		resp, err := NormalizeRow(raw)

		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 6, 10, 14, 30, 0, 0, time.UTC), resp.SubmittedAt)
	})

	t.Run("offset timestamps normalize to UTC", func(t *testing.T) {
		raw := validRawRow()
		raw.SubmittedAt = "2025-06-10T23:30:00-03:00"

		resp, err := NormalizeRow(raw)

		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 6, 11, 2, 30, 0, 0, time.UTC), resp.SubmittedAt)
	})
}

func TestParseQualityRating(t *testing.T) {
	for _, q := range AllQualityRatings() {
		parsed, ok := ParseQualityRating(q.String())
		assert.True(t, ok)
		assert.Equal(t, q, parsed)
	}

	_, ok := ParseQualityRating("Unspecified")
	assert.False(t, ok, "the sentinel label must not parse as a valid rating")
}
