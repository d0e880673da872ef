// Package schema validates raw prediction requests against the declared
// input shapes before any prediction logic runs.
package schema

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Kind distinguishes the validation checks, in the order they are applied
// per field.
type Kind int

const (
	// Missing means the required field was absent from the request.
	Missing Kind = iota
	// WrongType means the field was present but not a finite number.
	WrongType
	// OutOfRange means the numeric value fell outside the declared bounds.
	OutOfRange
)

// FieldError describes a single validation failure.
type FieldError struct {
	Kind       Kind
	Field      string
	Constraint string
	Value      interface{}
}

func (e *FieldError) Error() string {
	switch e.Kind {
	case Missing:
		return fmt.Sprintf("required field missing: %s", e.Field)
	case WrongType:
		return fmt.Sprintf("field %s has invalid type", e.Field)
	default:
		return fmt.Sprintf("value for %s is out of range: %s", e.Field, e.Constraint)
	}
}

// Field declares a required numeric input and its physically plausible bounds.
type Field struct {
	Name string
	Min  float64
	Max  float64
}

// Schema is an ordered list of required fields. Validation reports
// violations in declaration order.
type Schema []Field

// Tabular covers the 21 astronomical parameters of a full-precision
// prediction request.
var Tabular = Schema{
	{Name: "pl_orbper", Min: 0, Max: 100},    // orbital period (days)
	{Name: "pl_orbsmax", Min: 0, Max: 0.5},   // orbit semi-major axis (AU)
	{Name: "pl_eqt", Min: 0, Max: 4000},      // equilibrium temperature (K)
	{Name: "pl_insol", Min: 0, Max: 7000},    // insolation flux (Earth flux)
	{Name: "pl_imppar", Min: -1, Max: 2},     // impact parameter
	{Name: "pl_trandep", Min: 0, Max: 6},     // transit depth (%)
	{Name: "pl_trandur", Min: 0, Max: 15},    // transit duration (hours)
	{Name: "pl_ratdor", Min: 0, Max: 100},    // distance-to-stellar-radius ratio
	{Name: "pl_ratror", Min: 0, Max: 1},      // planet-star radius ratio
	{Name: "st_teff", Min: 3000, Max: 8000},  // stellar effective temperature (K)
	{Name: "st_rad", Min: 0, Max: 3},         // stellar radius (solar radii)
	{Name: "st_mass", Min: 0, Max: 2},        // stellar mass (solar masses)
	{Name: "st_met", Min: -1, Max: 0.5},      // stellar metallicity [Fe/H] (dex)
	{Name: "st_logg", Min: 3, Max: 5.5},      // stellar surface gravity
	{Name: "sy_gmag", Min: 10, Max: 20},      // Gaia G-band magnitude
	{Name: "sy_rmag", Min: 10, Max: 19},      // r-band magnitude
	{Name: "sy_imag", Min: 10, Max: 18},      // i-band magnitude
	{Name: "sy_zmag", Min: 10, Max: 18},      // z-band magnitude
	{Name: "sy_jmag", Min: 6, Max: 17},       // 2MASS J-band magnitude
	{Name: "sy_hmag", Min: 6, Max: 17},       // 2MASS H-band magnitude
	{Name: "sy_kmag", Min: 6, Max: 17},       // 2MASS K-band magnitude
}

// LivePreview covers the six interactive-demo parameters, each
// pre-normalized to [0,1] by the caller.
var LivePreview = Schema{
	{Name: "plTranmid", Min: 0, Max: 1}, // transit midpoint
	{Name: "stPmdec", Min: 0, Max: 1},   // stellar proper motion (dec)
	{Name: "stTmag", Min: 0, Max: 1},    // TESS magnitude
	{Name: "stRade", Min: 0, Max: 1},    // stellar radius
	{Name: "stDist", Min: 0, Max: 1},    // distance to star
	{Name: "plRade", Min: 0, Max: 1},    // planetary radius
}

// FieldNames returns the declared field names in order.
func (s Schema) FieldNames() []string {
	names := make([]string, len(s))
	for i, f := range s {
		names[i] = f.Name
	}
	return names
}

// Validate checks decoded JSON against the schema in a single pass and
// returns the typed values together with every violation found, in
// declaration order. Unknown keys are ignored. The raw map is expected to
// come from a json.Decoder with UseNumber enabled.
func (s Schema) Validate(raw map[string]interface{}) (map[string]float64, []*FieldError) {
	values := make(map[string]float64, len(s))
	var violations []*FieldError

	for _, f := range s {
		v, present := raw[f.Name]
		if !present {
			violations = append(violations, &FieldError{
				Kind:       Missing,
				Field:      f.Name,
				Constraint: "field is required",
			})
			continue
		}

		num, ok := v.(json.Number)
		if !ok {
			violations = append(violations, &FieldError{
				Kind:       WrongType,
				Field:      f.Name,
				Constraint: "must be a number",
				Value:      v,
			})
			continue
		}

		x, err := num.Float64()
		if err != nil || math.IsInf(x, 0) || math.IsNaN(x) {
			violations = append(violations, &FieldError{
				Kind:       WrongType,
				Field:      f.Name,
				Constraint: "must be a finite number",
				Value:      num.String(),
			})
			continue
		}

		if x < f.Min || x > f.Max {
			violations = append(violations, &FieldError{
				Kind:       OutOfRange,
				Field:      f.Name,
				Constraint: f.boundsConstraint(),
				Value:      x,
			})
			continue
		}

		values[f.Name] = x
	}

	if len(violations) > 0 {
		return nil, violations
	}
	return values, nil
}

func (f Field) boundsConstraint() string {
	return fmt.Sprintf("must be between %s and %s",
		strconv.FormatFloat(f.Min, 'f', -1, 64),
		strconv.FormatFloat(f.Max, 'f', -1, 64))
}
