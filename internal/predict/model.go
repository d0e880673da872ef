package predict

import (
	"fmt"
	"sort"

	"github.com/exolab/exoplanet-api/internal/models"
	"github.com/exolab/exoplanet-api/internal/schema"
)

// Model is the contract a trained artifact must satisfy. Features are
// passed in schema declaration order. The output vector carries the
// detection probability first, the model confidence second, and optionally
// one importance weight per feature after that.
type Model interface {
	Predict(features []float64) ([]float64, error)
}

// ModelPredictor serves predictions from a loaded model. With no model
// attached every call fails with ErrModelNotLoaded; inference failures are
// wrapped in ModelError so the API boundary can map them to a stable code.
type ModelPredictor struct {
	model Model
}

// NewModelPredictor wraps a model. A nil model is allowed and yields a
// predictor that reports MODEL_NOT_LOADED on every call.
func NewModelPredictor(m Model) *ModelPredictor {
	return &ModelPredictor{model: m}
}

// ModelLoaded reports whether a model is attached.
func (p *ModelPredictor) ModelLoaded() bool {
	return p.model != nil
}

// PredictTabular runs the model over the 21 tabular features and converts
// the raw output vector into the response shape.
func (p *ModelPredictor) PredictTabular(input models.TabularInput) (models.TabularResponse, error) {
	out, err := p.run(schema.Tabular, map[string]float64(input))
	if err != nil {
		return models.TabularResponse{}, err
	}
	if len(out) < 2 {
		return models.TabularResponse{}, &ModelError{Err: fmt.Errorf("model returned %d outputs, want at least 2", len(out))}
	}

	return models.TabularResponse{
		PredictedValue:   clamp(out[0], 0, 1),
		Confidence:       clamp(out[1], 0, 1),
		AttributeWeights: topWeights(out[2:]),
	}, nil
}

// PredictLivePreview runs the model over the six normalized features and
// scales the probability output to a percentage.
func (p *ModelPredictor) PredictLivePreview(input models.LivePreviewInput) (models.LivePreviewResponse, error) {
	out, err := p.run(schema.LivePreview, map[string]float64(input))
	if err != nil {
		return models.LivePreviewResponse{}, err
	}
	if len(out) < 1 {
		return models.LivePreviewResponse{}, &ModelError{Err: fmt.Errorf("model returned no outputs")}
	}

	return models.LivePreviewResponse{Probability: clamp(out[0], 0, 1) * 100}, nil
}

func (p *ModelPredictor) run(s schema.Schema, input map[string]float64) ([]float64, error) {
	if p.model == nil {
		return nil, ErrModelNotLoaded
	}

	features := make([]float64, len(s))
	for i, f := range s {
		features[i] = input[f.Name]
	}

	out, err := p.model.Predict(features)
	if err != nil {
		return nil, &ModelError{Err: err}
	}
	return out, nil
}

// topWeights maps per-feature importances onto field names and keeps the
// strongest maxWeightCount by magnitude.
func topWeights(raw []float64) map[string]float64 {
	names := schema.Tabular.FieldNames()
	if len(raw) > len(names) {
		raw = raw[:len(names)]
	}

	idx := make([]int, len(raw))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool {
		wa, wb := raw[idx[a]], raw[idx[b]]
		if wa < 0 {
			wa = -wa
		}
		if wb < 0 {
			wb = -wb
		}
		return wa > wb
	})

	n := len(idx)
	if n > maxWeightCount {
		n = maxWeightCount
	}
	weights := make(map[string]float64, n)
	for _, i := range idx[:n] {
		weights[names[i]] = raw[i]
	}
	return weights
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
