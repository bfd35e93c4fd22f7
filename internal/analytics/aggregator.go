package analytics

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/rs/zerolog"

	"github.com/cypherlabdev/match-predictor-service/internal/models"
	"github.com/cypherlabdev/match-predictor-service/internal/service"
)

// Params holds the backtest guardrails
type Params struct {
	MinSampleSize         int     // per-variant floor below which comparisons are INCONCLUSIVE
	SignificanceThreshold float64 // accuracy gap (percentage points) required to declare a winner
}

// Aggregator computes read-only summaries over resolved predictions. It never
// mutates prediction or rating records.
type Aggregator struct {
	predictions service.PredictionStore
	params      Params
	logger      zerolog.Logger
}

// NewAggregator creates an analytics aggregator
func NewAggregator(predictions service.PredictionStore, params Params, logger zerolog.Logger) *Aggregator {
	return &Aggregator{
		predictions: predictions,
		params:      params,
		logger:      logger.With().Str("component", "analytics").Logger(),
	}
}

// Summarize computes accuracy, confidence, points, and ROI over the resolved
// predictions matching the filter
func (a *Aggregator) Summarize(ctx context.Context, filter models.AnalyticsFilter) (*models.AnalyticsSummary, error) {
	resolved, err := a.predictions.ListResolved(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list resolved predictions: %w", err)
	}

	summary := summarize(resolved)

	a.logger.Debug().
		Int("total", summary.TotalPredictions).
		Float64("accuracy", summary.Accuracy).
		Float64("roi", summary.ROI).
		Msg("computed analytics summary")

	return &summary, nil
}

// calibration bucket bounds, highest first. A well-calibrated model shows
// bucket accuracy tracking the bucket midpoint.
var calibrationBuckets = []struct {
	label    string
	min, max int
}{
	{"90-100", 90, 100},
	{"80-89", 80, 89},
	{"70-79", 70, 79},
	{"60-69", 60, 69},
	{"50-59", 50, 59},
	{"0-49", 0, 49},
}

// ConfidenceCalibration buckets resolved predictions by stated confidence and
// reports per-bucket accuracy — the principal diagnostic this component exists
// to produce.
func (a *Aggregator) ConfidenceCalibration(ctx context.Context, filter models.AnalyticsFilter) ([]models.CalibrationBucket, error) {
	resolved, err := a.predictions.ListResolved(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list resolved predictions: %w", err)
	}

	buckets := make([]models.CalibrationBucket, len(calibrationBuckets))
	for i, b := range calibrationBuckets {
		buckets[i] = models.CalibrationBucket{Label: b.label, MinConf: b.min, MaxConf: b.max}
	}

	for _, p := range resolved {
		for i := range buckets {
			if p.Confidence >= buckets[i].MinConf && p.Confidence <= buckets[i].MaxConf {
				buckets[i].Total++
				if p.IsCorrect {
					buckets[i].Correct++
				}
				break
			}
		}
	}

	for i := range buckets {
		if buckets[i].Total > 0 {
			buckets[i].Accuracy = percent(buckets[i].Correct, buckets[i].Total)
		}
	}

	return buckets, nil
}

// LeagueBreakdown groups the summary metrics by league, sorted by volume
func (a *Aggregator) LeagueBreakdown(ctx context.Context, filter models.AnalyticsFilter) ([]models.LeagueSummary, error) {
	resolved, err := a.predictions.ListResolved(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list resolved predictions: %w", err)
	}

	byLeague := make(map[string][]*models.Prediction)
	for _, p := range resolved {
		byLeague[p.League] = append(byLeague[p.League], p)
	}

	breakdown := make([]models.LeagueSummary, 0, len(byLeague))
	for league, predictions := range byLeague {
		breakdown = append(breakdown, models.LeagueSummary{
			League:           league,
			AnalyticsSummary: summarize(predictions),
		})
	}

	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].TotalPredictions != breakdown[j].TotalPredictions {
			return breakdown[i].TotalPredictions > breakdown[j].TotalPredictions
		}
		return breakdown[i].League < breakdown[j].League
	})

	return breakdown, nil
}

// CompareVariants backtests two model variants over the same window. Both
// need at least MinSampleSize resolved predictions, and a winner is declared
// only when the accuracy gap exceeds the significance threshold — small
// samples report INCONCLUSIVE regardless of the gap.
func (a *Aggregator) CompareVariants(ctx context.Context, modelA, modelB string, filter models.AnalyticsFilter) (*models.VariantComparison, error) {
	filterA, filterB := filter, filter
	filterA.ModelUsed = modelA
	filterB.ModelUsed = modelB

	summaryA, err := a.Summarize(ctx, filterA)
	if err != nil {
		return nil, err
	}
	summaryB, err := a.Summarize(ctx, filterB)
	if err != nil {
		return nil, err
	}

	comparison := &models.VariantComparison{
		ModelA:   modelA,
		ModelB:   modelB,
		SummaryA: *summaryA,
		SummaryB: *summaryB,
	}

	if summaryA.TotalPredictions < a.params.MinSampleSize || summaryB.TotalPredictions < a.params.MinSampleSize {
		comparison.Verdict = models.VerdictInconclusive
		comparison.Reason = fmt.Sprintf("need %d resolved predictions per variant, have %d and %d",
			a.params.MinSampleSize, summaryA.TotalPredictions, summaryB.TotalPredictions)
		return comparison, nil
	}

	gap := summaryA.Accuracy - summaryB.Accuracy
	switch {
	case math.Abs(gap) <= a.params.SignificanceThreshold:
		comparison.Verdict = models.VerdictTie
		comparison.Reason = fmt.Sprintf("accuracy gap %.1f within %.1f point threshold", gap, a.params.SignificanceThreshold)
	case gap > 0:
		comparison.Verdict = models.VerdictModelA
	default:
		comparison.Verdict = models.VerdictModelB
	}

	a.logger.Info().
		Str("model_a", modelA).
		Str("model_b", modelB).
		Str("verdict", string(comparison.Verdict)).
		Float64("accuracy_a", summaryA.Accuracy).
		Float64("accuracy_b", summaryB.Accuracy).
		Msg("compared model variants")

	return comparison, nil
}

func summarize(resolved []*models.Prediction) models.AnalyticsSummary {
	summary := models.AnalyticsSummary{TotalPredictions: len(resolved)}
	if len(resolved) == 0 {
		return summary
	}

	confidenceSum := 0
	for _, p := range resolved {
		if p.IsCorrect {
			summary.CorrectPredictions++
		}
		confidenceSum += p.Confidence
		summary.TotalPoints += p.PointsEarned
	}

	summary.Accuracy = percent(summary.CorrectPredictions, summary.TotalPredictions)
	summary.AverageConfidence = float64(confidenceSum) / float64(summary.TotalPredictions)
	summary.ROI = float64(summary.TotalPoints) / float64(summary.TotalPredictions) * 100
	return summary
}

func percent(part, total int) float64 {
	return float64(part) / float64(total) * 100
}
