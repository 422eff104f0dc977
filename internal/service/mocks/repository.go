package mocks

import (
	"context"
	"errors"

	"github.com/cleanops/survey-server/internal/repository/models"
)

// MockSurveyResponseRepository is a mock implementation of the
// SurveyResponseRepository interface for testing the service layer.
type MockSurveyResponseRepository struct {
	GetAllResponsesFunc func(ctx context.Context) ([]models.RawSurveyRow, error)

	// Calls counts GetAllResponses invocations, letting cache tests assert
	// whether a load actually hit the store.
	Calls int
}

// GetAllResponses implements the SurveyResponseRepository interface
func (m *MockSurveyResponseRepository) GetAllResponses(ctx context.Context) ([]models.RawSurveyRow, error) {
	m.Calls++
	if m.GetAllResponsesFunc != nil {
		return m.GetAllResponsesFunc(ctx)
	}
	return nil, errors.New("GetAllResponsesFunc not implemented")
}
