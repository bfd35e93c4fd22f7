package store

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cypherlabdev/match-predictor-service/internal/models"
)

// testRatingStoreSetup is a helper struct to hold test dependencies
type testRatingStoreSetup struct {
	store     *RedisRatingStore
	miniRedis *miniredis.Miniredis
	ctx       context.Context
}

// setupTestRatingStore creates a test store with miniredis
func setupTestRatingStore(t *testing.T) *testRatingStoreSetup {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	config := RedisConfig{
		Addr:     mr.Addr(),
		Password: "",
		DB:       0,
	}

	return &testRatingStoreSetup{
		store:     NewRedisRatingStore(config, zerolog.Nop()),
		miniRedis: mr,
		ctx:       context.Background(),
	}
}

// cleanup cleans up test resources
func (s *testRatingStoreSetup) cleanup() {
	s.store.Close()
	s.miniRedis.Close()
}

// TestNewRedisRatingStore tests store creation
func TestNewRedisRatingStore(t *testing.T) {
	setup := setupTestRatingStore(t)
	defer setup.cleanup()

	assert.NotNil(t, setup.store)
	assert.NotNil(t, setup.store.client)
}

// TestRatingUpsert_Success tests writing a rating
func TestRatingUpsert_Success(t *testing.T) {
	setup := setupTestRatingStore(t)
	defer setup.cleanup()

	rating := &models.TeamRating{
		TeamID:           "arsenal",
		Rating:           1512,
		MatchesProcessed: 1,
		LastUpdatedAt:    time.Now().UTC(),
	}

	err := setup.store.Upsert(setup.ctx, rating)

	assert.NoError(t, err)
	assert.True(t, setup.miniRedis.Exists("rating:arsenal"))
}

// TestRatingUpsert_NoTTL tests that ratings never expire
func TestRatingUpsert_NoTTL(t *testing.T) {
	setup := setupTestRatingStore(t)
	defer setup.cleanup()

	rating := &models.TeamRating{TeamID: "arsenal", Rating: 1512}
	require.NoError(t, setup.store.Upsert(setup.ctx, rating))

	assert.Equal(t, time.Duration(0), setup.miniRedis.TTL("rating:arsenal"))
}

// TestRatingGet_Success tests round-tripping a rating
func TestRatingGet_Success(t *testing.T) {
	setup := setupTestRatingStore(t)
	defer setup.cleanup()

	original := &models.TeamRating{
		TeamID:           "arsenal",
		Rating:           1524,
		MatchesProcessed: 3,
		LastUpdatedAt:    time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, setup.store.Upsert(setup.ctx, original))

	retrieved, err := setup.store.Get(setup.ctx, "arsenal")

	assert.NoError(t, err)
	require.NotNil(t, retrieved)
	assert.Equal(t, original.TeamID, retrieved.TeamID)
	assert.Equal(t, original.Rating, retrieved.Rating)
	assert.Equal(t, original.MatchesProcessed, retrieved.MatchesProcessed)
	assert.True(t, original.LastUpdatedAt.Equal(retrieved.LastUpdatedAt))
}

// TestRatingGet_UnseenTeam tests that an unseen team returns (nil, nil),
// letting the engine substitute the default rating
func TestRatingGet_UnseenTeam(t *testing.T) {
	setup := setupTestRatingStore(t)
	defer setup.cleanup()

	retrieved, err := setup.store.Get(setup.ctx, "never-seen")

	assert.NoError(t, err)
	assert.Nil(t, retrieved)
}

// TestRatingGet_CorruptedData tests retrieval of malformed JSON
func TestRatingGet_CorruptedData(t *testing.T) {
	setup := setupTestRatingStore(t)
	defer setup.cleanup()

	setup.miniRedis.Set("rating:arsenal", "invalid json data")

	retrieved, err := setup.store.Get(setup.ctx, "arsenal")

	assert.Error(t, err)
	assert.Nil(t, retrieved)
}

// TestRatingUpsert_Overwrites tests that repeated upserts keep only the latest
func TestRatingUpsert_Overwrites(t *testing.T) {
	setup := setupTestRatingStore(t)
	defer setup.cleanup()

	require.NoError(t, setup.store.Upsert(setup.ctx, &models.TeamRating{TeamID: "arsenal", Rating: 1512, MatchesProcessed: 1}))
	require.NoError(t, setup.store.Upsert(setup.ctx, &models.TeamRating{TeamID: "arsenal", Rating: 1498, MatchesProcessed: 2}))

	retrieved, err := setup.store.Get(setup.ctx, "arsenal")

	require.NoError(t, err)
	assert.Equal(t, 1498.0, retrieved.Rating)
	assert.Equal(t, 2, retrieved.MatchesProcessed)
}

// TestProcessedMarker_Lifecycle tests the processed-match set
func TestProcessedMarker_Lifecycle(t *testing.T) {
	setup := setupTestRatingStore(t)
	defer setup.cleanup()

	processed, err := setup.store.IsProcessed(setup.ctx, "m1")
	require.NoError(t, err)
	assert.False(t, processed)

	require.NoError(t, setup.store.MarkProcessed(setup.ctx, "m1"))

	processed, err = setup.store.IsProcessed(setup.ctx, "m1")
	require.NoError(t, err)
	assert.True(t, processed)

	// Other matches unaffected
	processed, err = setup.store.IsProcessed(setup.ctx, "m2")
	require.NoError(t, err)
	assert.False(t, processed)
}

// TestMarkProcessed_Idempotent tests that double-marking is harmless
func TestMarkProcessed_Idempotent(t *testing.T) {
	setup := setupTestRatingStore(t)
	defer setup.cleanup()

	require.NoError(t, setup.store.MarkProcessed(setup.ctx, "m1"))
	require.NoError(t, setup.store.MarkProcessed(setup.ctx, "m1"))

	processed, err := setup.store.IsProcessed(setup.ctx, "m1")
	require.NoError(t, err)
	assert.True(t, processed)
}

// TestRatingStore_ContextCanceled tests operations with canceled context
func TestRatingStore_ContextCanceled(t *testing.T) {
	setup := setupTestRatingStore(t)
	defer setup.cleanup()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := setup.store.Upsert(ctx, &models.TeamRating{TeamID: "arsenal", Rating: 1500})

	assert.Error(t, err)
}

// TestRatingPing_Success tests successful Redis ping
func TestRatingPing_Success(t *testing.T) {
	setup := setupTestRatingStore(t)
	defer setup.cleanup()

	assert.NoError(t, setup.store.Ping(setup.ctx))
}

// TestRatingPing_RedisDown tests ping when Redis is down
func TestRatingPing_RedisDown(t *testing.T) {
	setup := setupTestRatingStore(t)

	setup.miniRedis.Close()

	err := setup.store.Ping(setup.ctx)

	assert.Error(t, err)

	setup.store.Close()
}
