package predict

import (
	"math/rand"

	"github.com/exolab/exoplanet-api/internal/models"
)

const (
	minWeightCount = 15
	maxWeightCount = 20

	// Weight magnitudes start just under the documented 0.25 bound and
	// decay geometrically with feature rank.
	weightBase  = 0.24
	weightDecay = 0.92
)

// importanceOrder ranks the tabular features by how strongly a plausible
// model would weight them: transit geometry first, photometry last.
var importanceOrder = []string{
	"pl_trandep",
	"pl_orbper",
	"pl_trandur",
	"st_teff",
	"sy_gmag",
	"pl_ratror",
	"st_rad",
	"pl_insol",
	"st_mass",
	"sy_jmag",
	"sy_hmag",
	"sy_kmag",
	"pl_eqt",
	"st_met",
	"pl_ratdor",
	"st_logg",
	"pl_imppar",
	"sy_rmag",
	"sy_imag",
	"sy_zmag",
}

// MockPredictor returns plausible random predictions without real
// inference. It is a temporary substitute until a trained model is wired
// in. It holds no state: the top-level math/rand functions are safe for
// concurrent use.
type MockPredictor struct{}

// PredictTabular draws a uniform probability, a confidence in [0.7, 0.95]
// and 15-20 signed feature weights keyed by input field names.
func (MockPredictor) PredictTabular(input models.TabularInput) (models.TabularResponse, error) {
	return models.TabularResponse{
		PredictedValue:   rand.Float64(),
		Confidence:       0.7 + rand.Float64()*0.25,
		AttributeWeights: mockWeights(input),
	}, nil
}

// PredictLivePreview draws a uniform detection percentage in [0, 100].
func (MockPredictor) PredictLivePreview(input models.LivePreviewInput) (models.LivePreviewResponse, error) {
	return models.LivePreviewResponse{Probability: rand.Float64() * 100}, nil
}

// ModelLoaded is always false for the mock.
func (MockPredictor) ModelLoaded() bool {
	return false
}

// mockWeights assigns signed weights to a random-sized subset of the input
// field names. Magnitudes follow a decreasing-plausibility curve over
// importanceOrder with uniform jitter, capped below 0.25.
func mockWeights(input models.TabularInput) map[string]float64 {
	available := make([]string, 0, len(importanceOrder))
	for _, name := range importanceOrder {
		if _, ok := input[name]; ok {
			available = append(available, name)
		}
	}

	n := minWeightCount + rand.Intn(maxWeightCount-minWeightCount+1)
	if n > len(available) {
		n = len(available)
	}

	weights := make(map[string]float64, n)
	magnitude := weightBase
	for _, name := range available[:n] {
		w := magnitude * (0.6 + 0.4*rand.Float64())
		if rand.Intn(2) == 0 {
			w = -w
		}
		weights[name] = w
		magnitude *= weightDecay
	}
	return weights
}
