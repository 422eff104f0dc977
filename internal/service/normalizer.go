package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/cleanops/survey-server/internal/repository/models"
)

// ValidationError reports a single raw row that could not be converted into
// a SurveyResponse, naming the offending field.
type ValidationError struct {
	RowID  int64
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("row %d: invalid %s: %s", e.RowID, e.Field, e.Reason)
}

// submittedAtLayouts are the accepted textual timestamp formats, tried in
// order. RFC3339 is what the intake form writes; the second form is what
// sqlite's CURRENT_TIMESTAMP produces.
var submittedAtLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// NormalizeRow converts one raw stored row into a SurveyResponse. All
// raw-format coercion lives here: the 0/1 missing-material flag, the textual
// submission timestamp, and the rating label. Any failure is returned as a
// *ValidationError and leaves the caller free to skip the row.
func NormalizeRow(raw models.RawSurveyRow) (SurveyResponse, error) {
	sector := strings.TrimSpace(raw.Sector)
	if sector == "" {
		return SurveyResponse{}, &ValidationError{RowID: raw.ID, Field: "sector", Reason: "empty"}
	}

	var materialMissing bool
	switch raw.MaterialMissing {
	case 0:
		materialMissing = false
	case 1:
		materialMissing = true
	default:
		return SurveyResponse{}, &ValidationError{
			RowID:  raw.ID,
			Field:  "material_missing",
			Reason: fmt.Sprintf("expected 0 or 1, got %d", raw.MaterialMissing),
		}
	}

	rating, ok := ParseQualityRating(raw.QualityRating)
	if !ok {
		return SurveyResponse{}, &ValidationError{
			RowID:  raw.ID,
			Field:  "quality_rating",
			Reason: fmt.Sprintf("unknown rating %q", raw.QualityRating),
		}
	}

	submittedAt, err := parseSubmittedAt(raw.SubmittedAt)
	if err != nil {
		return SurveyResponse{}, &ValidationError{RowID: raw.ID, Field: "submitted_at", Reason: err.Error()}
	}

	resp := SurveyResponse{
		ID:              raw.ID,
		Sector:          sector,
		MaterialMissing: materialMissing,
		QualityRating:   rating,
		Message:         raw.Message.String,
		SubmittedAt:     submittedAt,
	}

	// The material type only carries meaning when material is missing.
	if materialMissing {
		resp.MissingMaterialType = strings.TrimSpace(raw.MissingMaterialType.String)
	}

	return resp, nil
}

func parseSubmittedAt(value string) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	for _, layout := range submittedAtLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable timestamp %q", value)
}
