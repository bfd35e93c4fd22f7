package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/cypherlabdev/match-predictor-service/internal/analytics"
	"github.com/cypherlabdev/match-predictor-service/internal/models"
	"github.com/cypherlabdev/match-predictor-service/internal/service"
	"github.com/cypherlabdev/match-predictor-service/pkg/rating"
)

// PredictionHandler handles read-only HTTP requests for predictions,
// ratings, and analytics
type PredictionHandler struct {
	predictions service.PredictionStore
	ratings     rating.Store
	aggregator  *analytics.Aggregator
	logger      zerolog.Logger
}

// NewPredictionHandler creates a new prediction HTTP handler
func NewPredictionHandler(
	predictions service.PredictionStore,
	ratings rating.Store,
	aggregator *analytics.Aggregator,
	logger zerolog.Logger,
) *PredictionHandler {
	return &PredictionHandler{
		predictions: predictions,
		ratings:     ratings,
		aggregator:  aggregator,
		logger:      logger.With().Str("component", "prediction_handler").Logger(),
	}
}

// RegisterRoutes registers HTTP routes with the provided mux
func (h *PredictionHandler) RegisterRoutes(mux *http.ServeMux) {
	// GET /api/v1/predictions/:match_id - All model variants' predictions for a match
	mux.HandleFunc("/api/v1/predictions/", h.handleGetPredictions)

	// GET /api/v1/ratings/:team_id - Latest rating for a team
	mux.HandleFunc("/api/v1/ratings/", h.handleGetRating)

	// GET /api/v1/analytics/{summary|calibration|leagues|compare}
	mux.HandleFunc("/api/v1/analytics/", h.handleAnalytics)
}

// handleGetPredictions handles GET /api/v1/predictions/:match_id
func (h *PredictionHandler) handleGetPredictions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.errorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	matchID := strings.TrimPrefix(r.URL.Path, "/api/v1/predictions/")
	if matchID == "" || strings.Contains(matchID, "/") {
		h.errorResponse(w, http.StatusBadRequest, "invalid path: expected /api/v1/predictions/:match_id")
		return
	}

	predictions, err := h.predictions.GetByMatch(r.Context(), matchID)
	if err != nil {
		h.logger.Error().Err(err).Str("match_id", matchID).Msg("failed to retrieve predictions")
		h.errorResponse(w, http.StatusInternalServerError, "failed to retrieve predictions")
		return
	}
	if len(predictions) == 0 {
		h.errorResponse(w, http.StatusNotFound, "no predictions for match")
		return
	}

	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"match_id":    matchID,
		"count":       len(predictions),
		"predictions": predictions,
	})
}

// handleGetRating handles GET /api/v1/ratings/:team_id. An unseen team is
// reported at the default rating, matching the engine's treatment.
func (h *PredictionHandler) handleGetRating(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.errorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	teamID := strings.TrimPrefix(r.URL.Path, "/api/v1/ratings/")
	if teamID == "" || strings.Contains(teamID, "/") {
		h.errorResponse(w, http.StatusBadRequest, "invalid path: expected /api/v1/ratings/:team_id")
		return
	}

	teamRating, err := h.ratings.Get(r.Context(), teamID)
	if err != nil {
		h.logger.Error().Err(err).Str("team_id", teamID).Msg("failed to retrieve rating")
		h.errorResponse(w, http.StatusInternalServerError, "failed to retrieve rating")
		return
	}
	if teamRating == nil {
		teamRating = &models.TeamRating{TeamID: teamID, Rating: models.DefaultRating}
	}

	h.jsonResponse(w, http.StatusOK, teamRating)
}

// handleAnalytics handles GET /api/v1/analytics/:report
func (h *PredictionHandler) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.errorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	report := strings.TrimPrefix(r.URL.Path, "/api/v1/analytics/")
	filter := filterFromQuery(r)

	switch report {
	case "summary":
		summary, err := h.aggregator.Summarize(r.Context(), filter)
		if err != nil {
			h.analyticsError(w, err, report)
			return
		}
		h.jsonResponse(w, http.StatusOK, summary)

	case "calibration":
		buckets, err := h.aggregator.ConfidenceCalibration(r.Context(), filter)
		if err != nil {
			h.analyticsError(w, err, report)
			return
		}
		h.jsonResponse(w, http.StatusOK, map[string]interface{}{"buckets": buckets})

	case "leagues":
		breakdown, err := h.aggregator.LeagueBreakdown(r.Context(), filter)
		if err != nil {
			h.analyticsError(w, err, report)
			return
		}
		h.jsonResponse(w, http.StatusOK, map[string]interface{}{"leagues": breakdown})

	case "compare":
		modelA := r.URL.Query().Get("model_a")
		modelB := r.URL.Query().Get("model_b")
		if modelA == "" || modelB == "" {
			h.errorResponse(w, http.StatusBadRequest, "model_a and model_b are required")
			return
		}
		comparison, err := h.aggregator.CompareVariants(r.Context(), modelA, modelB, filter)
		if err != nil {
			h.analyticsError(w, err, report)
			return
		}
		h.jsonResponse(w, http.StatusOK, comparison)

	default:
		h.errorResponse(w, http.StatusNotFound, "unknown analytics report")
	}
}

// filterFromQuery builds an analytics filter from query parameters:
// league, model, min_confidence, days (lookback window ending now)
func filterFromQuery(r *http.Request) models.AnalyticsFilter {
	q := r.URL.Query()
	filter := models.AnalyticsFilter{
		League:    q.Get("league"),
		ModelUsed: q.Get("model"),
	}

	if minConf, err := strconv.Atoi(q.Get("min_confidence")); err == nil && minConf > 0 {
		filter.MinConfidence = minConf
	}
	if days, err := strconv.Atoi(q.Get("days")); err == nil && days > 0 {
		filter.From = time.Now().UTC().AddDate(0, 0, -days)
	}

	return filter
}

func (h *PredictionHandler) analyticsError(w http.ResponseWriter, err error, report string) {
	h.logger.Error().Err(err).Str("report", report).Msg("analytics query failed")
	h.errorResponse(w, http.StatusInternalServerError, "analytics query failed")
}

// jsonResponse writes a JSON response
func (h *PredictionHandler) jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error().Err(err).Msg("failed to encode JSON response")
	}
}

// errorResponse writes a JSON error response
func (h *PredictionHandler) errorResponse(w http.ResponseWriter, status int, message string) {
	h.jsonResponse(w, status, map[string]string{
		"error": message,
	})
}
