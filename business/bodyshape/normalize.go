package bodyshape

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"auraSync/domain"
)

const cmPerInch = 2.54

// InchesToCm converts inches to centimeters.
func InchesToCm(inches float64) float64 {
	return inches * cmPerInch
}

// CmToInches converts centimeters to inches.
func CmToInches(cm float64) float64 {
	return cm / cmPerInch
}

// ToCentimeters converts a value in the given unit to the canonical unit.
func ToCentimeters(value float64, unit domain.Unit) (float64, error) {
	switch unit {
	case domain.UnitCentimeter:
		return value, nil
	case domain.UnitInch:
		return InchesToCm(value), nil
	default:
		return 0, &domain.InvalidUnitError{Value: string(unit)}
	}
}

// ParseValue reads a raw form or JSON value. The second result is false when
// the field should be treated as not provided: empty, non-numeric, not
// finite or not positive. Such values are never coerced to zero.
func ParseValue(raw any) (float64, bool) {
	var v float64

	switch t := raw.(type) {
	case nil:
		return 0, false
	case float64:
		v = t
	case float32:
		v = float64(t)
	case int:
		v = float64(t)
	case int64:
		v = float64(t)
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return 0, false
		}
		v = f
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		v = f
	default:
		return 0, false
	}

	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, false
	}
	return v, true
}

// NormalizeMeasurements converts raw input in the given unit to centimeters.
// Unknown names and unusable values are dropped; only an invalid unit fails.
func NormalizeMeasurements(raw map[string]any, unit domain.Unit) (domain.Measurements, error) {
	if unit != domain.UnitCentimeter && unit != domain.UnitInch {
		return nil, &domain.InvalidUnitError{Value: string(unit)}
	}

	out := make(domain.Measurements, len(raw))
	for key, val := range raw {
		name := domain.MeasurementName(strings.ToLower(strings.TrimSpace(key)))
		if !name.Valid() {
			continue
		}

		v, ok := ParseValue(val)
		if !ok {
			continue
		}

		cm, err := ToCentimeters(v, unit)
		if err != nil {
			return nil, err
		}
		out[name] = cm
	}

	return out, nil
}
