package rating

import (
	"context"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cypherlabdev/match-predictor-service/internal/models"
)

// maxDrawShare caps the draw probability for evenly matched sides. The share
// shrinks linearly as the rating gap widens.
const maxDrawShare = 0.28

// Predict produces a rating-only prediction for a fixture, used as an
// alternative model variant ("elo") for A/B comparison against the Poisson
// model. The draw share is a heuristic on the rating gap, not a goal model,
// so no scoreline is predicted beyond the modal 1-0/0-0/0-1.
func (e *Engine) Predict(ctx context.Context, fixture *models.Fixture) (*models.PredictionResult, error) {
	home, err := e.loadOrDefault(ctx, fixture.HomeTeam)
	if err != nil {
		return nil, err
	}
	away, err := e.loadOrDefault(ctx, fixture.AwayTeam)
	if err != nil {
		return nil, err
	}

	expected := ExpectedScore(home.Rating+e.params.HomeAdvantage, away.Rating)

	drawShare := maxDrawShare * (1.0 - math.Abs(2.0*expected-1.0))
	pHome := expected * (1.0 - drawShare)
	pAway := (1.0 - expected) * (1.0 - drawShare)
	pDraw := drawShare

	outcome := models.OutcomeHomeWin
	best := pHome
	score := models.ScoreString(1, 0)
	if pDraw > best {
		outcome, best, score = models.OutcomeDraw, pDraw, models.ScoreString(0, 0)
	}
	if pAway > best {
		outcome, best, score = models.OutcomeAwayWin, pAway, models.ScoreString(0, 1)
	}

	confidence := int(math.Round(best * 100))

	result := &models.PredictionResult{
		PredictedOutcome: outcome,
		Confidence:       confidence,
		PredictedScore:   score,
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
		ModelUsed:   models.ModelElo,
		IsValuePick: e.params.Risk.IsValuePick(confidence),
		RiskLevel:   e.params.Risk.Level(confidence),
		LowSample:   home.MatchesProcessed == 0 || away.MatchesProcessed == 0,
		GeneratedAt: time.Now().UTC(),
	}

	e.logger.Debug().
		Str("match_id", fixture.MatchID).
		Str("outcome", string(outcome)).
		Int("confidence", confidence).
		Msg("rating-only prediction generated")

	return result, nil
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
