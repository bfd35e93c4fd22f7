package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Outcome is the predicted or actual result of a match
type Outcome string

const (
	OutcomeHomeWin Outcome = "HOME_WIN"
	OutcomeDraw    Outcome = "DRAW"
	OutcomeAwayWin Outcome = "AWAY_WIN"
)

// PredictionStatus tracks the lifecycle of a prediction.
// PENDING transitions exactly once to RESOLVED; there are no other states.
type PredictionStatus string

const (
	PredictionPending  PredictionStatus = "PENDING"
	PredictionResolved PredictionStatus = "RESOLVED"
)

// RiskLevel labels a prediction by confidence band (product policy thresholds)
type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

// Model variant identifiers
const (
	ModelPoisson = "poisson-regression"
	ModelElo     = "elo"
)

// OutcomeProbabilities holds win/draw/loss probabilities as percentages
type OutcomeProbabilities struct {
	Home float64 `json:"home"`
	Draw float64 `json:"draw"`
	Away float64 `json:"away"`
}

// FairOdds holds the implied fair decimal odds (1 / probability) per outcome
type FairOdds struct {
	Home decimal.Decimal `json:"home"`
	Draw decimal.Decimal `json:"draw"`
	Away decimal.Decimal `json:"away"`
}

// PredictionResult is the output of a prediction model for one fixture
type PredictionResult struct {
	PredictedOutcome Outcome              `json:"predicted_outcome"`
	Confidence       int                  `json:"confidence"` // probability of the pick, percent
	PredictedScore   string               `json:"predicted_score"`
	Probabilities    OutcomeProbabilities `json:"probabilities"`
	FairOdds         FairOdds             `json:"fair_odds"`
	ModelUsed        string               `json:"model_used"`
	IsValuePick      bool                 `json:"is_value_pick"`
	RiskLevel        RiskLevel            `json:"risk_level"`
	LowSample        bool                 `json:"low_sample"` // league-default averages were substituted
	GeneratedAt      time.Time            `json:"generated_at"`
}

// Prediction is the stored lifecycle record for one (match, model variant) pair
type Prediction struct {
	ID               uuid.UUID            `json:"id"`
	MatchID          string               `json:"match_id"`
	League           string               `json:"league"`
	HomeTeam         string               `json:"home_team"`
	AwayTeam         string               `json:"away_team"`
	PredictedOutcome Outcome              `json:"predicted_outcome"`
	Confidence       int                  `json:"confidence"`
	PredictedScore   string               `json:"predicted_score"`
	Probabilities    OutcomeProbabilities `json:"probabilities"`
	FairOdds         FairOdds             `json:"fair_odds"`
	ModelUsed        string               `json:"model_used"`
	IsValuePick      bool                 `json:"is_value_pick"`
	RiskLevel        RiskLevel            `json:"risk_level"`
	LowSample        bool                 `json:"low_sample"`
	Status           PredictionStatus     `json:"status"`
	ActualOutcome    Outcome              `json:"actual_outcome,omitempty"`
	ActualScore      string               `json:"actual_score,omitempty"`
	IsCorrect        bool                 `json:"is_correct"`
	ExactScore       bool                 `json:"exact_score"` // predicted scoreline matched exactly
	PointsEarned     int                  `json:"points_earned"`
	CreatedAt        time.Time            `json:"created_at"`
	ResolvedAt       *time.Time           `json:"resolved_at,omitempty"`
}

func scoreString(home, away int) string {
	return fmt.Sprintf("%d-%d", home, away)
}

// ScoreString formats a scoreline as "h-a"
func ScoreString(home, away int) string {
	return scoreString(home, away)
}
