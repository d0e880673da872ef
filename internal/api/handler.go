// Package api exposes the prediction endpoints and owns the response
// envelope, the validation boundary and the error taxonomy.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/exolab/exoplanet-api/internal/metrics"
	"github.com/exolab/exoplanet-api/internal/models"
	"github.com/exolab/exoplanet-api/internal/predict"
	"github.com/exolab/exoplanet-api/internal/schema"
	"github.com/exolab/exoplanet-api/internal/utils"
)

// Handler provides the prediction HTTP API endpoints.
type Handler struct {
	predictor predict.Predictor
	logger    *slog.Logger
}

// NewHandler creates a new API handler around the predictor selected at
// startup.
func NewHandler(predictor predict.Predictor, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		predictor: predictor,
		logger:    logger,
	}
}

// RegisterRoutes sets up all API routes.
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.handleHealth).Methods("GET")
	r.HandleFunc("/predict/tabular", h.handlePredictTabular).Methods("POST")
	r.HandleFunc("/predict/live-preview", h.handlePredictLivePreview).Methods("POST")
}

// handleHealth reports process liveness and whether a real model is loaded.
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeEnvelope(w, http.StatusOK, models.HealthResponse{
		Status:      "healthy",
		ModelLoaded: h.predictor.ModelLoaded(),
		Timestamp:   utils.UTCTimestamp(),
	})
}

// handlePredictTabular validates the 21-field request and runs a
// full-precision prediction.
func (h *Handler) handlePredictTabular(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	raw, err := decodeBody(r)
	if err != nil {
		h.reject(w, "tabular", start, invalidBodyError(err))
		return
	}

	values, violations := schema.Tabular.Validate(raw)
	if violations != nil {
		h.reject(w, "tabular", start, fieldAPIError(violations[0]))
		return
	}

	result, err := h.predictor.PredictTabular(values)
	if err != nil {
		h.fail(w, "tabular", start, err)
		return
	}

	requestID := writeEnvelope(w, http.StatusOK, result)
	h.logger.Info("tabular prediction",
		slog.String("request_id", requestID),
		slog.Float64("predicted_value", result.PredictedValue),
		slog.Float64("confidence", result.Confidence),
		slog.Int("weights", len(result.AttributeWeights)))
	metrics.ObservePrediction("tabular", time.Since(start), metrics.OutcomeSuccess)
}

// handlePredictLivePreview validates the six normalized fields and runs an
// interactive-demo prediction.
func (h *Handler) handlePredictLivePreview(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	raw, err := decodeBody(r)
	if err != nil {
		h.reject(w, "live-preview", start, invalidBodyError(err))
		return
	}

	values, violations := schema.LivePreview.Validate(raw)
	if violations != nil {
		h.reject(w, "live-preview", start, fieldAPIError(violations[0]))
		return
	}

	result, err := h.predictor.PredictLivePreview(values)
	if err != nil {
		h.fail(w, "live-preview", start, err)
		return
	}

	requestID := writeEnvelope(w, http.StatusOK, result)
	h.logger.Info("live preview prediction",
		slog.String("request_id", requestID),
		slog.Float64("probability", result.Probability))
	metrics.ObservePrediction("live-preview", time.Since(start), metrics.OutcomeSuccess)
}

// reject renders a 400-class envelope for a validation failure.
func (h *Handler) reject(w http.ResponseWriter, endpoint string, start time.Time, apiErr *apiError) {
	requestID := writeErrorEnvelope(w, apiErr)
	h.logger.Warn("request rejected",
		slog.String("endpoint", endpoint),
		slog.String("request_id", requestID),
		slog.String("code", apiErr.Code),
		slog.String("field", fieldOf(apiErr)))
	metrics.ObservePrediction(endpoint, time.Since(start), metrics.OutcomeError)
}

// fail renders a 5xx-class envelope for a prediction-stage failure.
func (h *Handler) fail(w http.ResponseWriter, endpoint string, start time.Time, err error) {
	apiErr := toAPIError(err)
	requestID := writeErrorEnvelope(w, apiErr)
	h.logger.Error("prediction failed",
		slog.String("endpoint", endpoint),
		slog.String("request_id", requestID),
		slog.String("code", apiErr.Code),
		slog.Any("error", err))
	metrics.ObservePrediction(endpoint, time.Since(start), metrics.OutcomeError)
}

func fieldOf(apiErr *apiError) string {
	if apiErr.Details == nil {
		return ""
	}
	return apiErr.Details.Field
}

// decodeBody parses the request body into a raw map with number values
// preserved, so the schema can distinguish wrong types from range errors.
func decodeBody(r *http.Request) (map[string]interface{}, error) {
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()

	var raw map[string]interface{}
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	return raw, nil
}
