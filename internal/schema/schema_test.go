package schema

import (
	"encoding/json"
	"strings"
	"testing"
)

const validTabularBody = `{
	"pl_orbper": 10.5, "pl_orbsmax": 0.06, "pl_eqt": 1000, "pl_insol": 500,
	"pl_imppar": 0.55, "pl_trandep": 0.2, "pl_trandur": 4.0, "pl_ratdor": 15.0,
	"pl_ratror": 0.1, "st_teff": 5700, "st_rad": 1.0, "st_mass": 0.96,
	"st_met": -0.05, "st_logg": 4.45, "sy_gmag": 15.0, "sy_rmag": 14.4,
	"sy_imag": 14.2, "sy_zmag": 14.2, "sy_jmag": 12.8, "sy_hmag": 12.5,
	"sy_kmag": 12.4
}`

func decode(t *testing.T, body string) map[string]interface{} {
	t.Helper()
	dec := json.NewDecoder(strings.NewReader(body))
	dec.UseNumber()
	var raw map[string]interface{}
	if err := dec.Decode(&raw); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return raw
}

func TestTabularValid(t *testing.T) {
	values, violations := Tabular.Validate(decode(t, validTabularBody))
	if violations != nil {
		t.Fatalf("Expected no violations, got %v", violations[0])
	}
	if len(values) != 21 {
		t.Errorf("Expected 21 values, got %d", len(values))
	}
	if values["pl_orbper"] != 10.5 {
		t.Errorf("Expected pl_orbper=10.5, got %v", values["pl_orbper"])
	}
}

func TestTabularMissingFields(t *testing.T) {
	_, violations := Tabular.Validate(decode(t, `{"pl_orbper": 10.5, "pl_orbsmax": 0.06}`))
	if len(violations) != 19 {
		t.Fatalf("Expected 19 violations, got %d", len(violations))
	}
	first := violations[0]
	if first.Kind != Missing {
		t.Errorf("Expected Missing, got %v", first.Kind)
	}
	// First violation follows schema declaration order.
	if first.Field != "pl_eqt" {
		t.Errorf("Expected first missing field pl_eqt, got %s", first.Field)
	}
	if first.Constraint != "field is required" {
		t.Errorf("Unexpected constraint: %s", first.Constraint)
	}
}

func TestTabularWrongType(t *testing.T) {
	body := strings.Replace(validTabularBody, `"pl_eqt": 1000`, `"pl_eqt": "hot"`, 1)
	_, violations := Tabular.Validate(decode(t, body))
	if len(violations) != 1 {
		t.Fatalf("Expected 1 violation, got %d", len(violations))
	}
	if violations[0].Kind != WrongType || violations[0].Field != "pl_eqt" {
		t.Errorf("Unexpected violation: %+v", violations[0])
	}
}

func TestTabularNullIsWrongType(t *testing.T) {
	body := strings.Replace(validTabularBody, `"st_rad": 1.0`, `"st_rad": null`, 1)
	_, violations := Tabular.Validate(decode(t, body))
	if len(violations) != 1 || violations[0].Kind != WrongType {
		t.Fatalf("Expected a single WrongType violation, got %v", violations)
	}
}

func TestTabularOutOfRange(t *testing.T) {
	body := strings.Replace(validTabularBody, `"pl_orbper": 10.5`, `"pl_orbper": 150.5`, 1)
	_, violations := Tabular.Validate(decode(t, body))
	if len(violations) != 1 {
		t.Fatalf("Expected 1 violation, got %d", len(violations))
	}
	v := violations[0]
	if v.Kind != OutOfRange || v.Field != "pl_orbper" {
		t.Errorf("Unexpected violation: %+v", v)
	}
	if v.Constraint != "must be between 0 and 100" {
		t.Errorf("Unexpected constraint: %s", v.Constraint)
	}
	if v.Value != 150.5 {
		t.Errorf("Expected value 150.5, got %v", v.Value)
	}
}

func TestTabularReportsAllViolationsInOnePass(t *testing.T) {
	body := strings.Replace(validTabularBody, `"pl_orbper": 10.5`, `"pl_orbper": 150.5`, 1)
	body = strings.Replace(body, `"st_teff": 5700`, `"st_teff": "warm"`, 1)
	_, violations := Tabular.Validate(decode(t, body))
	if len(violations) != 2 {
		t.Fatalf("Expected 2 violations, got %d", len(violations))
	}
	if violations[0].Field != "pl_orbper" || violations[1].Field != "st_teff" {
		t.Errorf("Violations out of order: %s, %s", violations[0].Field, violations[1].Field)
	}
}

func TestTabularIgnoresUnknownKeys(t *testing.T) {
	body := strings.Replace(validTabularBody, `"pl_orbper": 10.5`, `"pl_orbper": 10.5, "extra": true`, 1)
	_, violations := Tabular.Validate(decode(t, body))
	if violations != nil {
		t.Errorf("Expected no violations, got %v", violations[0])
	}
}

func TestLivePreviewValid(t *testing.T) {
	body := `{"plTranmid": 0.5, "stPmdec": 0.5, "stTmag": 0.5, "stRade": 0.5, "stDist": 0.5, "plRade": 0.5}`
	values, violations := LivePreview.Validate(decode(t, body))
	if violations != nil {
		t.Fatalf("Expected no violations, got %v", violations[0])
	}
	if len(values) != 6 {
		t.Errorf("Expected 6 values, got %d", len(values))
	}
}

func TestLivePreviewOutOfRange(t *testing.T) {
	body := `{"plTranmid": 1.5, "stPmdec": 0.5, "stTmag": 0.5, "stRade": 0.5, "stDist": 0.5, "plRade": 0.5}`
	_, violations := LivePreview.Validate(decode(t, body))
	if len(violations) != 1 || violations[0].Kind != OutOfRange {
		t.Fatalf("Expected a single OutOfRange violation, got %v", violations)
	}
	if violations[0].Constraint != "must be between 0 and 1" {
		t.Errorf("Unexpected constraint: %s", violations[0].Constraint)
	}
}

func TestFieldNames(t *testing.T) {
	names := Tabular.FieldNames()
	if len(names) != 21 {
		t.Errorf("Expected 21 field names, got %d", len(names))
	}
	if names[0] != "pl_orbper" {
		t.Errorf("Expected pl_orbper first, got %s", names[0])
	}
}
