package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cleanops/survey-server/internal/repository/models"
)

type SurveyResponseRepository struct {
	db *sql.DB
}

func NewSurveyResponseRepository(db *sql.DB) *SurveyResponseRepository {
	return &SurveyResponseRepository{db: db}
}

// GetAllResponses reads every stored survey response in submission order.
// This is a deliberate full-table read: the dataset is one response per
// survey submission and the snapshot cache in front of it bounds how often
// the query runs.
func (r *SurveyResponseRepository) GetAllResponses(ctx context.Context) ([]models.RawSurveyRow, error) {
	const query = `
		SELECT id, sector, material_missing, missing_material_type,
		       quality_rating, message, submitted_at
		FROM survey_responses
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query GetAllResponses: %w", err)
	}
	defer rows.Close()

	var results []models.RawSurveyRow
	for rows.Next() {
		var row models.RawSurveyRow
		if err := rows.Scan(
			&row.ID,
			&row.Sector,
			&row.MaterialMissing,
			&row.MissingMaterialType,
			&row.QualityRating,
			&row.Message,
			&row.SubmittedAt,
		); err != nil {
			return nil, fmt.Errorf("scan GetAllResponses row: %w", err)
		}
		results = append(results, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate GetAllResponses: %w", err)
	}
	return results, nil
}
