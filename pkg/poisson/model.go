package poisson

import (
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/cypherlabdev/match-predictor-service/internal/models"
)

// Params holds the goal-model parameters
type Params struct {
	HomeAdvantageGoals   float64 // added to the home side's expected goals
	Rho                  float64 // Dixon-Coles low-score correlation, typically -0.1
	MaxGoals             int     // grid upper bound per side (inclusive)
	MinLambda            float64 // clamp for expected goals
	MaxLambda            float64
	FallbackGoalsFor     float64 // league-wide default when a team has no history
	FallbackGoalsAgainst float64
	Risk                 models.RiskThresholds
}

// Model turns two teams' scoring profiles into win/draw/loss probabilities,
// a most-likely scoreline, and implied fair odds. It is stateless.
type Model struct {
	params Params
	logger zerolog.Logger
}

// NewModel creates a goal-based outcome probability model
func NewModel(params Params, logger zerolog.Logger) *Model {
	return &Model{
		params: params,
		logger: logger.With().Str("component", "poisson_model").Logger(),
	}
}

// Predict scores a fixture from the two teams' profiles.
//
// Expected away goals come from the away side's own conceding average rather
// than a two-sided regression; opponent quality enters implicitly through the
// home attacking average. This is a documented modeling simplification kept
// for output comparability.
func (m *Model) Predict(home, away models.TeamProfile) (*models.PredictionResult, error) {
	lowSample := false

	homeAttack, err := profileAverage(home, "home", home.AvgGoalsFor, m.params.FallbackGoalsFor, &lowSample)
	if err != nil {
		return nil, err
	}
	awayConcede, err := profileAverage(away, "away", away.AvgGoalsAgainst, m.params.FallbackGoalsAgainst, &lowSample)
	if err != nil {
		return nil, err
	}

	lambdaHome := m.clampLambda(homeAttack + m.params.HomeAdvantageGoals)
	lambdaAway := m.clampLambda(awayConcede)

	grid := m.scoreGrid(lambdaHome, lambdaAway)

	pHome, pDraw, pAway := 0.0, 0.0, 0.0
	bestH, bestA, bestP := 0, 0, -1.0
	for h := 0; h <= m.params.MaxGoals; h++ {
		for a := 0; a <= m.params.MaxGoals; a++ {
			p := grid[h][a]
			switch {
			case h > a:
				pHome += p
			case h < a:
				pAway += p
			default:
				pDraw += p
			}
			if betterScoreline(p, h, a, bestP, bestH, bestA) {
				bestH, bestA, bestP = h, a, p
			}
		}
	}

	outcome, top := models.OutcomeHomeWin, pHome
	if pDraw > top {
		outcome, top = models.OutcomeDraw, pDraw
	}
	if pAway > top {
		outcome, top = models.OutcomeAwayWin, pAway
	}
	confidence := int(math.Round(top * 100))

	result := &models.PredictionResult{
		PredictedOutcome: outcome,
		Confidence:       confidence,
		PredictedScore:   models.ScoreString(bestH, bestA),
		Probabilities: models.OutcomeProbabilities{
			Home: pHome * 100,
			Draw: pDraw * 100,
			Away: pAway * 100,
		},
		FairOdds: models.FairOdds{
			Home: fairOdds(pHome),
			Draw: fairOdds(pDraw),
			Away: fairOdds(pAway),
		},
		ModelUsed:   models.ModelPoisson,
		IsValuePick: m.params.Risk.IsValuePick(confidence),
		RiskLevel:   m.params.Risk.Level(confidence),
		LowSample:   lowSample,
		GeneratedAt: time.Now().UTC(),
	}

	m.logger.Debug().
		Float64("lambda_home", lambdaHome).
		Float64("lambda_away", lambdaAway).
		Str("outcome", string(outcome)).
		Int("confidence", confidence).
		Str("score", result.PredictedScore).
		Bool("low_sample", lowSample).
		Msg("fixture scored")

	return result, nil
}

// scoreGrid computes the Dixon-Coles-adjusted joint scoreline distribution.
// The adjustment is not mass-preserving, so the grid is renormalized to 1.
func (m *Model) scoreGrid(lambdaHome, lambdaAway float64) [][]float64 {
	n := m.params.MaxGoals + 1
	grid := make([][]float64, n)
	total := 0.0

	for h := 0; h < n; h++ {
		grid[h] = make([]float64, n)
		for a := 0; a < n; a++ {
			p := pmf(h, lambdaHome) * pmf(a, lambdaAway)
			p *= m.dixonColes(h, a)
			grid[h][a] = p
			total += p
		}
	}

	for h := 0; h < n; h++ {
		for a := 0; a < n; a++ {
			grid[h][a] /= total
		}
	}

	return grid
}

// dixonColes corrects the independence assumption's known bias on the four
// low-scoring cells: 0-0 and 1-1 are scaled by (1+rho), 1-0 and 0-1 by (1-rho).
func (m *Model) dixonColes(h, a int) float64 {
	switch {
	case (h == 0 && a == 0) || (h == 1 && a == 1):
		return 1 + m.params.Rho
	case (h == 0 && a == 1) || (h == 1 && a == 0):
		return 1 - m.params.Rho
	default:
		return 1
	}
}

func (m *Model) clampLambda(lambda float64) float64 {
	if lambda < m.params.MinLambda {
		return m.params.MinLambda
	}
	if lambda > m.params.MaxLambda {
		return m.params.MaxLambda
	}
	return lambda
}

// pmf is the Poisson probability mass function Pois(k; lambda)
func pmf(k int, lambda float64) float64 {
	return math.Exp(-lambda) * math.Pow(lambda, float64(k)) / factorial(k)
}

func factorial(k int) float64 {
	f := 1.0
	for i := 2; i <= k; i++ {
		f *= float64(i)
	}
	return f
}

// betterScoreline picks the higher-probability cell, breaking ties by lowest
// total goals, then lowest home goals.
func betterScoreline(p float64, h, a int, bestP float64, bestH, bestA int) bool {
	if p > bestP {
		return true
	}
	if p < bestP {
		return false
	}
	if h+a != bestH+bestA {
		return h+a < bestH+bestA
	}
	return h < bestH
}

// profileAverage validates one side's average, substituting the league-wide
// fallback when the team has no finished-match history.
func profileAverage(profile models.TeamProfile, side string, avg, fallback float64, lowSample *bool) (float64, error) {
	if profile.SampleSize == 0 {
		*lowSample = true
		return fallback, nil
	}
	if math.IsNaN(avg) || avg < 0 {
		return 0, fmt.Errorf("%s team %s: bad goals average %v: %w", side, profile.TeamID, avg, models.ErrInvalidInput)
	}
	return avg, nil
}

// minProbability guards fair-odds inversion against probabilities that round
// to zero.
const minProbability = 0.001

func fairOdds(p float64) decimal.Decimal {
	if p < minProbability {
		p = minProbability
	}
	return decimal.NewFromInt(1).DivRound(decimal.NewFromFloat(p), 2)
}
