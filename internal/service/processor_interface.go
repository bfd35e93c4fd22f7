package service

import (
	"context"

	"github.com/cypherlabdev/match-predictor-service/internal/models"
)

// MatchProcessor is an interface that abstracts the finished-results batch
// pass (rating updates plus prediction resolution), letting the Kafka
// consumer be tested against a mock
type MatchProcessor interface {
	ProcessResults(ctx context.Context, results []models.MatchResult) *models.SweepReport
}
