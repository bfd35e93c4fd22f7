package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/cypherlabdev/match-predictor-service/internal/models"
)

// RedisPredictionStore persists prediction lifecycle records in Redis.
// Key layout: prediction:{match_id}:{model}. One record per pair; the
// lifecycle guarantees at most one PENDING record per key.
type RedisPredictionStore struct {
	client *redis.Client
	logger zerolog.Logger
}

// NewRedisPredictionStore creates a prediction store over a new Redis connection
func NewRedisPredictionStore(config RedisConfig, logger zerolog.Logger) *RedisPredictionStore {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	return &RedisPredictionStore{
		client: client,
		logger: logger.With().Str("component", "prediction_store").Logger(),
	}
}

func predictionKey(matchID, model string) string {
	return fmt.Sprintf("prediction:%s:%s", matchID, model)
}

// Create inserts a new PENDING prediction. A second open prediction for the
// same (match, model) pair is rejected with ErrDuplicatePending; a resolved
// record is immutable and also blocks re-creation.
func (s *RedisPredictionStore) Create(ctx context.Context, prediction *models.Prediction) error {
	data, err := json.Marshal(prediction)
	if err != nil {
		return fmt.Errorf("failed to marshal prediction: %w", err)
	}

	key := predictionKey(prediction.MatchID, prediction.ModelUsed)
	ok, err := s.client.SetNX(ctx, key, data, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to set prediction in Redis: %w", err)
	}
	if !ok {
		return fmt.Errorf("match %s model %s: %w", prediction.MatchID, prediction.ModelUsed, models.ErrDuplicatePending)
	}

	s.logger.Debug().
		Str("match_id", prediction.MatchID).
		Str("model", prediction.ModelUsed).
		Str("outcome", string(prediction.PredictedOutcome)).
		Msg("created pending prediction")

	return nil
}

// Update overwrites an existing prediction record, used for resolution
func (s *RedisPredictionStore) Update(ctx context.Context, prediction *models.Prediction) error {
	data, err := json.Marshal(prediction)
	if err != nil {
		return fmt.Errorf("failed to marshal prediction: %w", err)
	}

	key := predictionKey(prediction.MatchID, prediction.ModelUsed)
	if err := s.client.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to update prediction in Redis: %w", err)
	}

	return nil
}

// Get retrieves the prediction for one (match, model) pair
func (s *RedisPredictionStore) Get(ctx context.Context, matchID, model string) (*models.Prediction, error) {
	data, err := s.client.Get(ctx, predictionKey(matchID, model)).Bytes()
	if err == redis.Nil {
		return nil, fmt.Errorf("prediction for match %s model %s: %w", matchID, model, models.ErrNotFound)
	} else if err != nil {
		return nil, fmt.Errorf("failed to get prediction from Redis: %w", err)
	}

	var prediction models.Prediction
	if err := json.Unmarshal(data, &prediction); err != nil {
		return nil, fmt.Errorf("failed to unmarshal prediction: %w", err)
	}

	return &prediction, nil
}

// GetByMatch retrieves all model variants' predictions for a match
func (s *RedisPredictionStore) GetByMatch(ctx context.Context, matchID string) ([]*models.Prediction, error) {
	return s.scan(ctx, fmt.Sprintf("prediction:%s:*", matchID))
}

// ListResolved scans resolved predictions matching the filter. Aggregation is
// batch-oriented, so a full SCAN over the prediction keyspace is acceptable.
func (s *RedisPredictionStore) ListResolved(ctx context.Context, filter models.AnalyticsFilter) ([]*models.Prediction, error) {
	all, err := s.scan(ctx, "prediction:*")
	if err != nil {
		return nil, err
	}

	resolved := make([]*models.Prediction, 0, len(all))
	for _, p := range all {
		if filter.Matches(p) {
			resolved = append(resolved, p)
		}
	}
	return resolved, nil
}

func (s *RedisPredictionStore) scan(ctx context.Context, pattern string) ([]*models.Prediction, error) {
	var cursor uint64
	var keys []string

	for {
		var scanKeys []string
		var err error
		scanKeys, cursor, err = s.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to scan keys: %w", err)
		}

		keys = append(keys, scanKeys...)

		if cursor == 0 {
			break
		}
	}

	predictions := make([]*models.Prediction, 0, len(keys))
	for _, key := range keys {
		data, err := s.client.Get(ctx, key).Bytes()
		if err != nil {
			s.logger.Warn().Err(err).Str("key", key).Msg("failed to get key")
			continue
		}

		var prediction models.Prediction
		if err := json.Unmarshal(data, &prediction); err != nil {
			s.logger.Warn().Err(err).Str("key", key).Msg("failed to unmarshal prediction")
			continue
		}

		predictions = append(predictions, &prediction)
	}

	return predictions, nil
}

// Ping checks the Redis connection
func (s *RedisPredictionStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (s *RedisPredictionStore) Close() error {
	return s.client.Close()
}
