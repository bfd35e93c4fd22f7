package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/cypherlabdev/match-predictor-service/internal/metrics"
	"github.com/cypherlabdev/match-predictor-service/internal/models"
	"github.com/cypherlabdev/match-predictor-service/pkg/poisson"
	"github.com/cypherlabdev/match-predictor-service/pkg/rating"
)

// PredictorService orchestrates the prediction lifecycle: scoring fixtures,
// applying finished results to ratings, and resolving pending predictions.
type PredictorService struct {
	engine      *rating.Engine
	model       *poisson.Model
	predictions PredictionStore
	lookback    time.Duration // bounded resolution window for batch sweeps
	logger      zerolog.Logger
}

// NewPredictorService creates a new predictor service
func NewPredictorService(
	engine *rating.Engine,
	model *poisson.Model,
	predictions PredictionStore,
	lookback time.Duration,
	logger zerolog.Logger,
) *PredictorService {
	return &PredictorService{
		engine:      engine,
		model:       model,
		predictions: predictions,
		lookback:    lookback,
		logger:      logger.With().Str("component", "predictor_service").Logger(),
	}
}

// ScoreFixture scores an upcoming fixture with the Poisson goal model and
// records a PENDING prediction. A duplicate open prediction for the same
// (match, model) pair is rejected.
func (s *PredictorService) ScoreFixture(ctx context.Context, fixture *models.Fixture) (*models.Prediction, error) {
	if err := validateFixture(fixture); err != nil {
		return nil, err
	}

	result, err := s.model.Predict(fixture.HomeProfile, fixture.AwayProfile)
	if err != nil {
		return nil, fmt.Errorf("model failed for match %s: %w", fixture.MatchID, err)
	}

	return s.record(ctx, fixture, result)
}

// ScoreFixtureWithRatings scores a fixture with the rating-only "elo" variant,
// kept as an alternative model for backtest comparison.
func (s *PredictorService) ScoreFixtureWithRatings(ctx context.Context, fixture *models.Fixture) (*models.Prediction, error) {
	if err := validateFixture(fixture); err != nil {
		return nil, err
	}

	result, err := s.engine.Predict(ctx, fixture)
	if err != nil {
		return nil, fmt.Errorf("rating model failed for match %s: %w", fixture.MatchID, err)
	}

	return s.record(ctx, fixture, result)
}

func (s *PredictorService) record(ctx context.Context, fixture *models.Fixture, result *models.PredictionResult) (*models.Prediction, error) {
	prediction := &models.Prediction{
		ID:               uuid.New(),
		MatchID:          fixture.MatchID,
		League:           fixture.League,
		HomeTeam:         fixture.HomeTeam,
		AwayTeam:         fixture.AwayTeam,
		PredictedOutcome: result.PredictedOutcome,
		Confidence:       result.Confidence,
		PredictedScore:   result.PredictedScore,
		Probabilities:    result.Probabilities,
		FairOdds:         result.FairOdds,
		ModelUsed:        result.ModelUsed,
		IsValuePick:      result.IsValuePick,
		RiskLevel:        result.RiskLevel,
		LowSample:        result.LowSample,
		Status:           models.PredictionPending,
		CreatedAt:        time.Now().UTC(),
	}

	if err := s.predictions.Create(ctx, prediction); err != nil {
		return nil, err
	}

	metrics.PredictionsCreated.WithLabelValues(prediction.ModelUsed).Inc()

	s.logger.Info().
		Str("match_id", prediction.MatchID).
		Str("model", prediction.ModelUsed).
		Str("outcome", string(prediction.PredictedOutcome)).
		Int("confidence", prediction.Confidence).
		Str("score", prediction.PredictedScore).
		Msg("recorded pending prediction")

	return prediction, nil
}

// ResolveMatch resolves every PENDING prediction for a finished match.
// Already-RESOLVED predictions are left untouched, so re-invocation is
// idempotent. Resolution is a pure function of the final score.
func (s *PredictorService) ResolveMatch(ctx context.Context, result *models.MatchResult) ([]*models.Prediction, error) {
	if result == nil || result.MatchID == "" {
		return nil, fmt.Errorf("missing match identity: %w", models.ErrInvalidInput)
	}
	if result.HomeGoals < 0 || result.AwayGoals < 0 {
		return nil, fmt.Errorf("match %s: malformed score: %w", result.MatchID, models.ErrInvalidInput)
	}
	if !result.Status.IsFinished() {
		return nil, fmt.Errorf("match %s: %w", result.MatchID, models.ErrMatchNotFinished)
	}

	pending, err := s.predictions.GetByMatch(ctx, result.MatchID)
	if err != nil {
		return nil, fmt.Errorf("failed to load predictions for match %s: %w", result.MatchID, err)
	}

	actual := result.Outcome()
	now := time.Now().UTC()
	resolved := make([]*models.Prediction, 0, len(pending))

	for _, p := range pending {
		if p.Status != models.PredictionPending {
			continue
		}

		p.ActualOutcome = actual
		p.ActualScore = result.Score()
		p.IsCorrect = p.PredictedOutcome == actual
		p.ExactScore = p.PredictedScore == p.ActualScore
		p.PointsEarned = scorePoints(p.IsCorrect, p.Confidence)
		p.Status = models.PredictionResolved
		resolvedAt := now
		p.ResolvedAt = &resolvedAt

		if err := s.predictions.Update(ctx, p); err != nil {
			return resolved, fmt.Errorf("failed to persist resolution for match %s: %w", result.MatchID, err)
		}

		metrics.PredictionsResolved.WithLabelValues(p.ModelUsed, strconv.FormatBool(p.IsCorrect)).Inc()
		resolved = append(resolved, p)

		s.logger.Info().
			Str("match_id", p.MatchID).
			Str("model", p.ModelUsed).
			Str("predicted", string(p.PredictedOutcome)).
			Str("actual", string(actual)).
			Bool("correct", p.IsCorrect).
			Int("points", p.PointsEarned).
			Msg("resolved prediction")
	}

	return resolved, nil
}

// ProcessResults runs one batch pass over finished matches: rating updates
// first (chronological per league), then prediction resolution within the
// bounded lookback window. Per-item failures are recorded and skipped.
func (s *PredictorService) ProcessResults(ctx context.Context, results []models.MatchResult) *models.SweepReport {
	report := s.engine.ApplyBatch(ctx, results)
	metrics.RatingUpdatesApplied.Add(float64(report.RatingsApplied))

	cutoff := time.Now().UTC().Add(-s.lookback)
	for i := range results {
		match := &results[i]
		if match.KickoffTime.Before(cutoff) {
			continue
		}

		resolved, err := s.ResolveMatch(ctx, match)
		report.PredictionsResolved += len(resolved)
		if err != nil {
			// A not-yet-finished match will be retried on a later sweep;
			// everything else is skipped and reported.
			if errors.Is(err, models.ErrMatchNotFinished) {
				continue
			}
			report.Errors = append(report.Errors, models.ItemError{
				MatchID: match.MatchID,
				Reason:  err.Error(),
			})
			metrics.SweepItemFailures.Inc()
			s.logger.Warn().
				Err(err).
				Str("match_id", match.MatchID).
				Msg("skipped match in resolution sweep")
		}
	}

	s.logger.Info().
		Int("input_count", len(results)).
		Int("ratings_applied", report.RatingsApplied).
		Int("predictions_resolved", report.PredictionsResolved).
		Int("errors", len(report.Errors)).
		Msg("processed finished-results batch")

	return report
}

// scorePoints applies the confidence-weighted scoring rule: overconfident
// misses cost more than timid hits earn.
func scorePoints(correct bool, confidence int) int {
	if correct {
		switch {
		case confidence >= 80:
			return 15
		case confidence >= 60:
			return 12
		default:
			return 10
		}
	}
	switch {
	case confidence >= 80:
		return -5
	case confidence >= 60:
		return -2
	default:
		return -1
	}
}

func validateFixture(fixture *models.Fixture) error {
	if fixture == nil || fixture.MatchID == "" {
		return fmt.Errorf("missing match identity: %w", models.ErrInvalidInput)
	}
	if fixture.HomeTeam == "" || fixture.AwayTeam == "" {
		return fmt.Errorf("match %s: missing team identity: %w", fixture.MatchID, models.ErrInvalidInput)
	}
	return nil
}
