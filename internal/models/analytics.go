package models

import "time"

// AnalyticsFilter narrows the resolved-prediction population for aggregation
type AnalyticsFilter struct {
	From          time.Time
	To            time.Time
	League        string // empty = all leagues
	ModelUsed     string // empty = all variants
	MinConfidence int
}

// Matches reports whether a resolved prediction falls inside the filter
func (f AnalyticsFilter) Matches(p *Prediction) bool {
	if p.Status != PredictionResolved || p.ResolvedAt == nil {
		return false
	}
	if !f.From.IsZero() && p.ResolvedAt.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && p.ResolvedAt.After(f.To) {
		return false
	}
	if f.League != "" && p.League != f.League {
		return false
	}
	if f.ModelUsed != "" && p.ModelUsed != f.ModelUsed {
		return false
	}
	if p.Confidence < f.MinConfidence {
		return false
	}
	return true
}

// AnalyticsSummary aggregates a filtered set of resolved predictions
type AnalyticsSummary struct {
	TotalPredictions   int     `json:"total_predictions"`
	CorrectPredictions int     `json:"correct_predictions"`
	Accuracy           float64 `json:"accuracy"`           // percent
	AverageConfidence  float64 `json:"average_confidence"` // percent
	TotalPoints        int     `json:"total_points"`
	ROI                float64 `json:"roi"` // points per prediction, percent
}

// CalibrationBucket reports accuracy within a fixed confidence range
type CalibrationBucket struct {
	Label    string  `json:"label"` // e.g. "80-89"
	MinConf  int     `json:"min_confidence"`
	MaxConf  int     `json:"max_confidence"`
	Total    int     `json:"total"`
	Correct  int     `json:"correct"`
	Accuracy float64 `json:"accuracy"` // percent
}

// LeagueSummary is an AnalyticsSummary keyed by league
type LeagueSummary struct {
	League string `json:"league"`
	AnalyticsSummary
}

// ComparisonVerdict is the result of an A/B variant backtest
type ComparisonVerdict string

const (
	VerdictModelA       ComparisonVerdict = "MODEL_A"
	VerdictModelB       ComparisonVerdict = "MODEL_B"
	VerdictTie          ComparisonVerdict = "TIE"
	VerdictInconclusive ComparisonVerdict = "INCONCLUSIVE"
)

// VariantComparison reports a backtest between two model variants
type VariantComparison struct {
	ModelA   string            `json:"model_a"`
	ModelB   string            `json:"model_b"`
	SummaryA AnalyticsSummary  `json:"summary_a"`
	SummaryB AnalyticsSummary  `json:"summary_b"`
	Verdict  ComparisonVerdict `json:"verdict"`
	Reason   string            `json:"reason,omitempty"`
}
