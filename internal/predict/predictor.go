// Package predict provides the detection probability capability behind the
// HTTP API. Two variants exist: a mock predictor returning plausible random
// values, and a model-backed predictor serving a loaded artifact. The
// variant is selected once at startup.
package predict

import (
	"errors"
	"fmt"

	"github.com/exolab/exoplanet-api/internal/models"
)

// Predictor produces detection predictions for both request shapes.
// Implementations must be safe for arbitrary concurrent use.
type Predictor interface {
	PredictTabular(input models.TabularInput) (models.TabularResponse, error)
	PredictLivePreview(input models.LivePreviewInput) (models.LivePreviewResponse, error)
	// ModelLoaded reports whether a real model backs this predictor. The
	// value is fixed at startup and safe to read concurrently.
	ModelLoaded() bool
}

// ErrModelNotLoaded signals that a real model is required but unavailable.
var ErrModelNotLoaded = errors.New("model not loaded")

// ModelError wraps an internal inference failure.
type ModelError struct {
	Err error
}

func (e *ModelError) Error() string {
	return fmt.Sprintf("model prediction failed: %v", e.Err)
}

func (e *ModelError) Unwrap() error {
	return e.Err
}

// New selects the predictor for this process: model-backed when a model is
// supplied, mock otherwise.
func New(m Model) Predictor {
	if m != nil {
		return NewModelPredictor(m)
	}
	return MockPredictor{}
}
