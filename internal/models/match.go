package models

import (
	"time"
)

// MatchStatus is the lifecycle state of a match as reported upstream
type MatchStatus string

const (
	MatchScheduled MatchStatus = "SCHEDULED"
	MatchLive      MatchStatus = "LIVE"
	MatchFinished  MatchStatus = "FINISHED"
)

// IsFinished reports whether the match is in a terminal state
func (s MatchStatus) IsFinished() bool {
	return s == MatchFinished
}

// MatchResult represents a finished match as delivered by the ingestion layer
type MatchResult struct {
	MatchID     string      `json:"match_id"`
	League      string      `json:"league"`
	HomeTeam    string      `json:"home_team"`
	AwayTeam    string      `json:"away_team"`
	HomeGoals   int         `json:"home_goals"`
	AwayGoals   int         `json:"away_goals"`
	Status      MatchStatus `json:"status"`
	KickoffTime time.Time   `json:"kickoff_time"`
}

// Outcome derives the HOME_WIN/DRAW/AWAY_WIN taxonomy from the final score
func (m *MatchResult) Outcome() Outcome {
	switch {
	case m.HomeGoals > m.AwayGoals:
		return OutcomeHomeWin
	case m.HomeGoals < m.AwayGoals:
		return OutcomeAwayWin
	default:
		return OutcomeDraw
	}
}

// Score returns the final score in "h-a" form
func (m *MatchResult) Score() string {
	return scoreString(m.HomeGoals, m.AwayGoals)
}

// TeamProfile summarizes a team's recent scoring form for the Poisson model
type TeamProfile struct {
	TeamID          string  `json:"team_id"`
	AvgGoalsFor     float64 `json:"avg_goals_for"`
	AvgGoalsAgainst float64 `json:"avg_goals_against"`
	SampleSize      int     `json:"sample_size"` // finished matches behind the averages
}

// Fixture is an upcoming match to be scored by a prediction model
type Fixture struct {
	MatchID     string      `json:"match_id"`
	League      string      `json:"league"`
	HomeTeam    string      `json:"home_team"`
	AwayTeam    string      `json:"away_team"`
	KickoffTime time.Time   `json:"kickoff_time"`
	HomeProfile TeamProfile `json:"home_profile"`
	AwayProfile TeamProfile `json:"away_profile"`
}

// DefaultRating is assigned to teams with no processed matches
const DefaultRating = 1500.0

// TeamRating is the latest Elo strength estimate for a team
type TeamRating struct {
	TeamID           string    `json:"team_id"`
	Rating           float64   `json:"rating"`
	MatchesProcessed int       `json:"matches_processed"`
	LastUpdatedAt    time.Time `json:"last_updated_at"`
}

// RatingUpdate is the outcome of applying one finished match to the rating store
type RatingUpdate struct {
	MatchID    string  `json:"match_id"`
	HomeTeam   string  `json:"home_team"`
	AwayTeam   string  `json:"away_team"`
	HomeDelta  int     `json:"home_delta"`
	AwayDelta  int     `json:"away_delta"`
	HomeRating float64 `json:"home_rating"` // rating after the update
	AwayRating float64 `json:"away_rating"`
}

// KafkaResultsMessage is the finished-results batch consumed from Kafka
type KafkaResultsMessage struct {
	Results   []MatchResult `json:"results"`
	Timestamp time.Time     `json:"timestamp"`
	BatchID   string        `json:"batch_id"`
}

// ItemError records a single skipped item within a batch pass
type ItemError struct {
	MatchID string `json:"match_id"`
	Reason  string `json:"reason"`
}

// SweepReport summarizes one batch pass over finished matches.
// Per-item failures are captured here, never aborting the sweep.
type SweepReport struct {
	RatingsApplied      int            `json:"ratings_applied"`
	PredictionsResolved int            `json:"predictions_resolved"`
	Skipped             int            `json:"skipped"`
	Errors              []ItemError    `json:"errors,omitempty"`
	Updates             []RatingUpdate `json:"updates,omitempty"`
}
