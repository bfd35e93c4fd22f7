package service

import (
	"context"

	"github.com/cypherlabdev/match-predictor-service/internal/models"
)

// PredictionStore is an interface that abstracts prediction persistence
// This allows for easier testing and mocking
type PredictionStore interface {
	Create(ctx context.Context, prediction *models.Prediction) error
	Update(ctx context.Context, prediction *models.Prediction) error
	Get(ctx context.Context, matchID, model string) (*models.Prediction, error)
	GetByMatch(ctx context.Context, matchID string) ([]*models.Prediction, error)
	ListResolved(ctx context.Context, filter models.AnalyticsFilter) ([]*models.Prediction, error)
	Ping(ctx context.Context) error
	Close() error
}
