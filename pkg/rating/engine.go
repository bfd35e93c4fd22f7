package rating

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/cypherlabdev/match-predictor-service/internal/models"
)

// Store is the key-value rating store the engine reads and writes. Callers own
// its lifecycle and persistence; the engine holds no hidden state.
type Store interface {
	// Get returns the stored rating for a team, or (nil, nil) when the team
	// has never been rated.
	Get(ctx context.Context, teamID string) (*models.TeamRating, error)
	Upsert(ctx context.Context, rating *models.TeamRating) error
	IsProcessed(ctx context.Context, matchID string) (bool, error)
	MarkProcessed(ctx context.Context, matchID string) error
}

// Params holds the Elo update parameters
type Params struct {
	KFactor       float64 // maximum rating points exchanged per match
	HomeAdvantage float64 // rating bonus applied to the home side, not persisted
	Risk          models.RiskThresholds
}

// Engine applies pairwise Elo updates to a rating store after finished matches
type Engine struct {
	params Params
	store  Store
	logger zerolog.Logger
}

// NewEngine creates a rating engine over the given store
func NewEngine(params Params, store Store, logger zerolog.Logger) *Engine {
	return &Engine{
		params: params,
		store:  store,
		logger: logger.With().Str("component", "rating_engine").Logger(),
	}
}

// ExpectedScore is the logistic pairing function E(A,B) = 1 / (1 + 10^((B-A)/400)).
// ExpectedScore(a, b) + ExpectedScore(b, a) == 1 for all ratings.
func ExpectedScore(a, b float64) float64 {
	return 1.0 / (1.0 + math.Pow(10, (b-a)/400.0))
}

// ApplyResult applies one finished match to both teams' ratings.
// Unseen teams default to 1500. The match is marked processed only after both
// rating writes succeed, so a failed write is retried on the next sweep.
func (e *Engine) ApplyResult(ctx context.Context, match *models.MatchResult) (*models.RatingUpdate, error) {
	if err := validateResult(match); err != nil {
		return nil, err
	}

	processed, err := e.store.IsProcessed(ctx, match.MatchID)
	if err != nil {
		return nil, fmt.Errorf("failed to check processed marker: %w", err)
	}
	if processed {
		return nil, fmt.Errorf("match %s: %w", match.MatchID, models.ErrAlreadyProcessed)
	}

	home, err := e.loadOrDefault(ctx, match.HomeTeam)
	if err != nil {
		return nil, err
	}
	away, err := e.loadOrDefault(ctx, match.AwayTeam)
	if err != nil {
		return nil, err
	}

	// Home advantage is a computation-time bonus, never persisted.
	adjustedHome := home.Rating + e.params.HomeAdvantage

	expectedHome := ExpectedScore(adjustedHome, away.Rating)
	expectedAway := ExpectedScore(away.Rating, adjustedHome)

	actualHome, actualAway := actualScores(match.HomeGoals, match.AwayGoals)

	homeDelta := int(math.Round(e.params.KFactor * (actualHome - expectedHome)))
	awayDelta := int(math.Round(e.params.KFactor * (actualAway - expectedAway)))

	now := time.Now().UTC()
	home.Rating += float64(homeDelta)
	home.MatchesProcessed++
	home.LastUpdatedAt = now
	away.Rating += float64(awayDelta)
	away.MatchesProcessed++
	away.LastUpdatedAt = now

	if err := e.store.Upsert(ctx, home); err != nil {
		return nil, fmt.Errorf("failed to persist home rating: %w", err)
	}
	if err := e.store.Upsert(ctx, away); err != nil {
		return nil, fmt.Errorf("failed to persist away rating: %w", err)
	}
	if err := e.store.MarkProcessed(ctx, match.MatchID); err != nil {
		return nil, fmt.Errorf("failed to mark match processed: %w", err)
	}

	e.logger.Debug().
		Str("match_id", match.MatchID).
		Str("home", match.HomeTeam).
		Str("away", match.AwayTeam).
		Int("home_delta", homeDelta).
		Int("away_delta", awayDelta).
		Msg("applied rating update")

	return &models.RatingUpdate{
		MatchID:    match.MatchID,
		HomeTeam:   match.HomeTeam,
		AwayTeam:   match.AwayTeam,
		HomeDelta:  homeDelta,
		AwayDelta:  awayDelta,
		HomeRating: home.Rating,
		AwayRating: away.Rating,
	}, nil
}

// ApplyBatch applies a backlog of finished matches. Matches are sorted into
// non-decreasing kickoff order within each league before applying: Elo updates
// are path-dependent, so out-of-order application changes final ratings.
// Per-item failures are recorded and skipped; the sweep never aborts.
func (e *Engine) ApplyBatch(ctx context.Context, matches []models.MatchResult) *models.SweepReport {
	ordered := make([]models.MatchResult, len(matches))
	copy(ordered, matches)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].League != ordered[j].League {
			return ordered[i].League < ordered[j].League
		}
		return ordered[i].KickoffTime.Before(ordered[j].KickoffTime)
	})

	report := &models.SweepReport{}
	for i := range ordered {
		match := &ordered[i]
		update, err := e.ApplyResult(ctx, match)
		if err != nil {
			report.Skipped++
			if !errors.Is(err, models.ErrAlreadyProcessed) {
				report.Errors = append(report.Errors, models.ItemError{
					MatchID: match.MatchID,
					Reason:  err.Error(),
				})
				e.logger.Warn().
					Err(err).
					Str("match_id", match.MatchID).
					Msg("skipped match in rating sweep")
			}
			continue
		}
		report.RatingsApplied++
		report.Updates = append(report.Updates, *update)
	}

	e.logger.Info().
		Int("input_count", len(matches)).
		Int("applied", report.RatingsApplied).
		Int("skipped", report.Skipped).
		Msg("rating sweep complete")

	return report
}

// loadOrDefault reads a team's rating, creating the default entry in memory
// (not yet persisted) when the team is unseen.
func (e *Engine) loadOrDefault(ctx context.Context, teamID string) (*models.TeamRating, error) {
	rating, err := e.store.Get(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to read rating for %s: %w", teamID, err)
	}
	if rating == nil {
		rating = &models.TeamRating{TeamID: teamID, Rating: models.DefaultRating}
	}
	return rating, nil
}

func validateResult(match *models.MatchResult) error {
	if match == nil {
		return fmt.Errorf("nil match: %w", models.ErrInvalidInput)
	}
	if match.HomeTeam == "" || match.AwayTeam == "" {
		return fmt.Errorf("match %s: missing team identity: %w", match.MatchID, models.ErrInvalidInput)
	}
	if match.HomeGoals < 0 || match.AwayGoals < 0 {
		return fmt.Errorf("match %s: negative score: %w", match.MatchID, models.ErrInvalidInput)
	}
	if !match.Status.IsFinished() {
		return fmt.Errorf("match %s: %w", match.MatchID, models.ErrMatchNotFinished)
	}
	return nil
}

// actualScores assigns win=1.0, draw=0.5, loss=0.0 per side
func actualScores(homeGoals, awayGoals int) (float64, float64) {
	switch {
	case homeGoals > awayGoals:
		return 1.0, 0.0
	case homeGoals < awayGoals:
		return 0.0, 1.0
	default:
		return 0.5, 0.5
	}
}
