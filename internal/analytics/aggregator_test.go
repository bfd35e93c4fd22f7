package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/cypherlabdev/match-predictor-service/internal/mocks"
	"github.com/cypherlabdev/match-predictor-service/internal/models"
)

// testAggregatorSetup is a helper struct to hold test dependencies
type testAggregatorSetup struct {
	aggregator *Aggregator
	store      *mocks.MockPredictionStore
	ctx        context.Context
}

// setupTestAggregator creates an aggregator over a mocked prediction store
func setupTestAggregator(t *testing.T) *testAggregatorSetup {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockPredictionStore(ctrl)

	params := Params{
		MinSampleSize:         50,
		SignificanceThreshold: 5.0,
	}

	return &testAggregatorSetup{
		aggregator: NewAggregator(store, params, zerolog.Nop()),
		store:      store,
		ctx:        context.Background(),
	}
}

// resolvedPrediction builds a resolved record with the fields analytics reads
func resolvedPrediction(league, model string, confidence int, correct bool, points int) *models.Prediction {
	now := time.Now().UTC()
	p := &models.Prediction{
		ID:               uuid.New(),
		MatchID:          uuid.NewString(),
		League:           league,
		PredictedOutcome: models.OutcomeHomeWin,
		Confidence:       confidence,
		ModelUsed:        model,
		Status:           models.PredictionResolved,
		IsCorrect:        correct,
		PointsEarned:     points,
		ResolvedAt:       &now,
	}
	if !correct {
		p.ActualOutcome = models.OutcomeDraw
	} else {
		p.ActualOutcome = models.OutcomeHomeWin
	}
	return p
}

// batch builds n resolved predictions with nCorrect of them correct
func batch(league, model string, confidence, n, nCorrect int) []*models.Prediction {
	predictions := make([]*models.Prediction, 0, n)
	for i := 0; i < n; i++ {
		correct := i < nCorrect
		points := 10
		if !correct {
			points = -1
		}
		predictions = append(predictions, resolvedPrediction(league, model, confidence, correct, points))
	}
	return predictions
}

// TestSummarize_Metrics tests the summary math over a known population
func TestSummarize_Metrics(t *testing.T) {
	setup := setupTestAggregator(t)

	population := []*models.Prediction{
		resolvedPrediction("premier-league", models.ModelPoisson, 80, true, 15),
		resolvedPrediction("premier-league", models.ModelPoisson, 60, true, 12),
		resolvedPrediction("premier-league", models.ModelPoisson, 70, false, -2),
		resolvedPrediction("premier-league", models.ModelPoisson, 50, false, -1),
	}

	filter := models.AnalyticsFilter{}
	setup.store.EXPECT().ListResolved(setup.ctx, filter).Return(population, nil)

	summary, err := setup.aggregator.Summarize(setup.ctx, filter)

	require.NoError(t, err)
	assert.Equal(t, 4, summary.TotalPredictions)
	assert.Equal(t, 2, summary.CorrectPredictions)
	assert.InDelta(t, 50.0, summary.Accuracy, 1e-9)
	assert.InDelta(t, 65.0, summary.AverageConfidence, 1e-9)
	assert.Equal(t, 24, summary.TotalPoints)
	// 24 points over 4 predictions
	assert.InDelta(t, 600.0, summary.ROI, 1e-9)
}

// TestSummarize_Empty tests the zero-population summary
func TestSummarize_Empty(t *testing.T) {
	setup := setupTestAggregator(t)

	filter := models.AnalyticsFilter{}
	setup.store.EXPECT().ListResolved(setup.ctx, filter).Return([]*models.Prediction{}, nil)

	summary, err := setup.aggregator.Summarize(setup.ctx, filter)

	require.NoError(t, err)
	assert.Equal(t, 0, summary.TotalPredictions)
	assert.Equal(t, 0.0, summary.Accuracy)
	assert.Equal(t, 0.0, summary.ROI)
}

// TestConfidenceCalibration_BucketAssignment tests boundary placement into
// the fixed confidence buckets
func TestConfidenceCalibration_BucketAssignment(t *testing.T) {
	setup := setupTestAggregator(t)

	population := []*models.Prediction{
		resolvedPrediction("pl", models.ModelPoisson, 95, true, 15),
		resolvedPrediction("pl", models.ModelPoisson, 90, true, 15),
		resolvedPrediction("pl", models.ModelPoisson, 89, false, -5),
		resolvedPrediction("pl", models.ModelPoisson, 80, true, 15),
		resolvedPrediction("pl", models.ModelPoisson, 79, true, 12),
		resolvedPrediction("pl", models.ModelPoisson, 60, false, -2),
		resolvedPrediction("pl", models.ModelPoisson, 49, true, 10),
		resolvedPrediction("pl", models.ModelPoisson, 12, false, -1),
	}

	filter := models.AnalyticsFilter{}
	setup.store.EXPECT().ListResolved(setup.ctx, filter).Return(population, nil)

	buckets, err := setup.aggregator.ConfidenceCalibration(setup.ctx, filter)

	require.NoError(t, err)
	require.Len(t, buckets, 6)

	byLabel := make(map[string]models.CalibrationBucket)
	for _, b := range buckets {
		byLabel[b.Label] = b
	}

	assert.Equal(t, 2, byLabel["90-100"].Total)
	assert.Equal(t, 2, byLabel["80-89"].Total)
	assert.Equal(t, 1, byLabel["70-79"].Total)
	assert.Equal(t, 1, byLabel["60-69"].Total)
	assert.Equal(t, 0, byLabel["50-59"].Total)
	assert.Equal(t, 2, byLabel["0-49"].Total)

	assert.InDelta(t, 100.0, byLabel["90-100"].Accuracy, 1e-9)
	assert.InDelta(t, 50.0, byLabel["80-89"].Accuracy, 1e-9)
	assert.InDelta(t, 0.0, byLabel["60-69"].Accuracy, 1e-9)
}

// TestConfidenceCalibration_WellCalibratedPopulation tests that a synthetic
// population whose hit rate matches its stated confidence reports bucket
// accuracy near the bucket midpoint
func TestConfidenceCalibration_WellCalibratedPopulation(t *testing.T) {
	setup := setupTestAggregator(t)

	// 20 predictions at confidence 65, 13 correct -> 65% accuracy
	population := batch("pl", models.ModelPoisson, 65, 20, 13)

	filter := models.AnalyticsFilter{}
	setup.store.EXPECT().ListResolved(setup.ctx, filter).Return(population, nil)

	buckets, err := setup.aggregator.ConfidenceCalibration(setup.ctx, filter)

	require.NoError(t, err)
	for _, b := range buckets {
		if b.Label == "60-69" {
			assert.Equal(t, 20, b.Total)
			assert.InDelta(t, 65.0, b.Accuracy, 1e-9)
			return
		}
	}
	t.Fatal("60-69 bucket missing")
}

// TestLeagueBreakdown_SortedByVolume tests grouping and ordering
func TestLeagueBreakdown_SortedByVolume(t *testing.T) {
	setup := setupTestAggregator(t)

	population := append(
		batch("la-liga", models.ModelPoisson, 70, 5, 3),
		batch("premier-league", models.ModelPoisson, 70, 8, 6)...,
	)
	population = append(population, batch("serie-a", models.ModelPoisson, 70, 5, 1)...)

	filter := models.AnalyticsFilter{}
	setup.store.EXPECT().ListResolved(setup.ctx, filter).Return(population, nil)

	breakdown, err := setup.aggregator.LeagueBreakdown(setup.ctx, filter)

	require.NoError(t, err)
	require.Len(t, breakdown, 3)

	// Highest volume first, ties broken alphabetically
	assert.Equal(t, "premier-league", breakdown[0].League)
	assert.Equal(t, "la-liga", breakdown[1].League)
	assert.Equal(t, "serie-a", breakdown[2].League)

	assert.Equal(t, 8, breakdown[0].TotalPredictions)
	assert.InDelta(t, 75.0, breakdown[0].Accuracy, 1e-9)
	assert.InDelta(t, 60.0, breakdown[1].Accuracy, 1e-9)
	assert.InDelta(t, 20.0, breakdown[2].Accuracy, 1e-9)
}

// TestCompareVariants_Inconclusive tests the sample-size guardrail: a large
// accuracy gap on thin samples must not declare a winner
func TestCompareVariants_Inconclusive(t *testing.T) {
	setup := setupTestAggregator(t)

	filter := models.AnalyticsFilter{}
	filterA, filterB := filter, filter
	filterA.ModelUsed = models.ModelPoisson
	filterB.ModelUsed = models.ModelElo

	// 8 of 8 correct vs 0 of 9 correct: a huge gap, but both under 50
	setup.store.EXPECT().ListResolved(setup.ctx, filterA).Return(batch("pl", models.ModelPoisson, 70, 8, 8), nil)
	setup.store.EXPECT().ListResolved(setup.ctx, filterB).Return(batch("pl", models.ModelElo, 70, 9, 0), nil)

	comparison, err := setup.aggregator.CompareVariants(setup.ctx, models.ModelPoisson, models.ModelElo, filter)

	require.NoError(t, err)
	assert.Equal(t, models.VerdictInconclusive, comparison.Verdict)
	assert.NotEmpty(t, comparison.Reason)
	assert.Equal(t, 8, comparison.SummaryA.TotalPredictions)
	assert.Equal(t, 9, comparison.SummaryB.TotalPredictions)
}

// TestCompareVariants_OneSideThin tests that a single under-sampled variant
// is enough for INCONCLUSIVE
func TestCompareVariants_OneSideThin(t *testing.T) {
	setup := setupTestAggregator(t)

	filter := models.AnalyticsFilter{}
	filterA, filterB := filter, filter
	filterA.ModelUsed = models.ModelPoisson
	filterB.ModelUsed = models.ModelElo

	setup.store.EXPECT().ListResolved(setup.ctx, filterA).Return(batch("pl", models.ModelPoisson, 70, 60, 40), nil)
	setup.store.EXPECT().ListResolved(setup.ctx, filterB).Return(batch("pl", models.ModelElo, 70, 49, 10), nil)

	comparison, err := setup.aggregator.CompareVariants(setup.ctx, models.ModelPoisson, models.ModelElo, filter)

	require.NoError(t, err)
	assert.Equal(t, models.VerdictInconclusive, comparison.Verdict)
}

// TestCompareVariants_Tie tests that a gap within the significance threshold
// is reported as a tie
func TestCompareVariants_Tie(t *testing.T) {
	setup := setupTestAggregator(t)

	filter := models.AnalyticsFilter{}
	filterA, filterB := filter, filter
	filterA.ModelUsed = models.ModelPoisson
	filterB.ModelUsed = models.ModelElo

	// 62% vs 58%: a 4-point gap, under the 5-point threshold
	setup.store.EXPECT().ListResolved(setup.ctx, filterA).Return(batch("pl", models.ModelPoisson, 70, 100, 62), nil)
	setup.store.EXPECT().ListResolved(setup.ctx, filterB).Return(batch("pl", models.ModelElo, 70, 100, 58), nil)

	comparison, err := setup.aggregator.CompareVariants(setup.ctx, models.ModelPoisson, models.ModelElo, filter)

	require.NoError(t, err)
	assert.Equal(t, models.VerdictTie, comparison.Verdict)
}

// TestCompareVariants_Winner tests winner declaration on a significant gap
func TestCompareVariants_Winner(t *testing.T) {
	setup := setupTestAggregator(t)

	filter := models.AnalyticsFilter{}
	filterA, filterB := filter, filter
	filterA.ModelUsed = models.ModelPoisson
	filterB.ModelUsed = models.ModelElo

	// 68% vs 55%
	setup.store.EXPECT().ListResolved(setup.ctx, filterA).Return(batch("pl", models.ModelPoisson, 70, 100, 68), nil)
	setup.store.EXPECT().ListResolved(setup.ctx, filterB).Return(batch("pl", models.ModelElo, 70, 100, 55), nil)

	comparison, err := setup.aggregator.CompareVariants(setup.ctx, models.ModelPoisson, models.ModelElo, filter)

	require.NoError(t, err)
	assert.Equal(t, models.VerdictModelA, comparison.Verdict)
}

// TestCompareVariants_WinnerB tests the symmetric case
func TestCompareVariants_WinnerB(t *testing.T) {
	setup := setupTestAggregator(t)

	filter := models.AnalyticsFilter{}
	filterA, filterB := filter, filter
	filterA.ModelUsed = models.ModelPoisson
	filterB.ModelUsed = models.ModelElo

	setup.store.EXPECT().ListResolved(setup.ctx, filterA).Return(batch("pl", models.ModelPoisson, 70, 100, 55), nil)
	setup.store.EXPECT().ListResolved(setup.ctx, filterB).Return(batch("pl", models.ModelElo, 70, 100, 68), nil)

	comparison, err := setup.aggregator.CompareVariants(setup.ctx, models.ModelPoisson, models.ModelElo, filter)

	require.NoError(t, err)
	assert.Equal(t, models.VerdictModelB, comparison.Verdict)
}
