package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/cypherlabdev/match-predictor-service/internal/models"
)

const processedSetKey = "matches:processed"

// RedisRatingStore persists team ratings and the processed-match marker set
// in Redis. Ratings carry no TTL: only the latest value is retained, never
// expired.
type RedisRatingStore struct {
	client *redis.Client
	logger zerolog.Logger
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Addr     string // e.g., "localhost:6379"
	Password string
	DB       int
}

// NewRedisRatingStore creates a rating store over a new Redis connection
func NewRedisRatingStore(config RedisConfig, logger zerolog.Logger) *RedisRatingStore {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	return &RedisRatingStore{
		client: client,
		logger: logger.With().Str("component", "rating_store").Logger(),
	}
}

func ratingKey(teamID string) string {
	return fmt.Sprintf("rating:%s", teamID)
}

// Get returns the stored rating for a team, or (nil, nil) when unseen
func (s *RedisRatingStore) Get(ctx context.Context, teamID string) (*models.TeamRating, error) {
	data, err := s.client.Get(ctx, ratingKey(teamID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get rating from Redis: %w", err)
	}

	var rating models.TeamRating
	if err := json.Unmarshal(data, &rating); err != nil {
		return nil, fmt.Errorf("failed to unmarshal rating: %w", err)
	}

	return &rating, nil
}

// Upsert writes a team's rating, replacing any previous value for the key
func (s *RedisRatingStore) Upsert(ctx context.Context, rating *models.TeamRating) error {
	data, err := json.Marshal(rating)
	if err != nil {
		return fmt.Errorf("failed to marshal rating: %w", err)
	}

	if err := s.client.Set(ctx, ratingKey(rating.TeamID), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to set rating in Redis: %w", err)
	}

	s.logger.Debug().
		Str("team_id", rating.TeamID).
		Float64("rating", rating.Rating).
		Int("matches", rating.MatchesProcessed).
		Msg("upserted team rating")

	return nil
}

// IsProcessed reports whether a match's rating update was already applied
func (s *RedisRatingStore) IsProcessed(ctx context.Context, matchID string) (bool, error) {
	member, err := s.client.SIsMember(ctx, processedSetKey, matchID).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check processed set: %w", err)
	}
	return member, nil
}

// MarkProcessed records a match as applied. Called only after both rating
// writes succeeded, preserving at-least-once retry semantics.
func (s *RedisRatingStore) MarkProcessed(ctx context.Context, matchID string) error {
	if err := s.client.SAdd(ctx, processedSetKey, matchID).Err(); err != nil {
		return fmt.Errorf("failed to mark match processed: %w", err)
	}
	return nil
}

// Ping checks the Redis connection
func (s *RedisRatingStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (s *RedisRatingStore) Close() error {
	return s.client.Close()
}
