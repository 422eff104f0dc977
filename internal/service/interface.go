package service

import (
	"context"

	"github.com/cleanops/survey-server/internal/repository/models"
)

// SurveyResponseRepository defines the store collaborator: a single
// full-table read returning raw rows in a fixed shape. The store is queried,
// never mutated, by this package.
type SurveyResponseRepository interface {
	GetAllResponses(ctx context.Context) ([]models.RawSurveyRow, error)
}
