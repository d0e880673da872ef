package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/exolab/exoplanet-api/internal/models"
	"github.com/exolab/exoplanet-api/internal/utils"
)

// writeEnvelope sends a success envelope. The request id is generated fresh
// per response and the timestamp is captured at serialization time. Returns
// the request id for log correlation.
func writeEnvelope(w http.ResponseWriter, status int, data interface{}) string {
	requestID := uuid.NewString()
	respond(w, status, models.Envelope{
		Data:      data,
		Timestamp: utils.UTCTimestamp(),
		RequestID: requestID,
	})
	return requestID
}

// writeErrorEnvelope sends a failure envelope for the mapped error.
func writeErrorEnvelope(w http.ResponseWriter, apiErr *apiError) string {
	requestID := uuid.NewString()
	respond(w, apiErr.Status, models.ErrorEnvelope{
		Error: models.ErrorInfo{
			Code:    apiErr.Code,
			Message: apiErr.Message,
			Details: apiErr.Details,
		},
		Timestamp: utils.UTCTimestamp(),
		RequestID: requestID,
	})
	return requestID
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("encoding response failed", slog.Any("error", err))
	}
}
