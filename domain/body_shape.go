package domain

import (
	"fmt"
	"strings"
)

type Gender string

const (
	GenderFemale Gender = "female"
	GenderMale   Gender = "male"
)

// ParseGender accepts the selector case-insensitively, surrounding spaces ignored.
func ParseGender(s string) (Gender, error) {
	switch g := Gender(strings.ToLower(strings.TrimSpace(s))); g {
	case GenderFemale, GenderMale:
		return g, nil
	default:
		return "", &InvalidGenderError{Value: s}
	}
}

type Unit string

const (
	UnitCentimeter Unit = "cm"
	UnitInch       Unit = "in"
)

// ParseUnit defaults an empty unit to centimeters.
func ParseUnit(s string) (Unit, error) {
	switch u := Unit(strings.ToLower(strings.TrimSpace(s))); u {
	case "":
		return UnitCentimeter, nil
	case UnitCentimeter, UnitInch:
		return u, nil
	default:
		return "", &InvalidUnitError{Value: s}
	}
}

type MeasurementName string

const (
	MeasurementBust      MeasurementName = "bust"
	MeasurementWaist     MeasurementName = "waist"
	MeasurementHips      MeasurementName = "hips"
	MeasurementShoulders MeasurementName = "shoulders"
	MeasurementChest     MeasurementName = "chest"
	MeasurementBicep     MeasurementName = "bicep"
)

var knownMeasurements = map[MeasurementName]struct{}{
	MeasurementBust:      {},
	MeasurementWaist:     {},
	MeasurementHips:      {},
	MeasurementShoulders: {},
	MeasurementChest:     {},
	MeasurementBicep:     {},
}

func (m MeasurementName) Valid() bool {
	_, ok := knownMeasurements[m]
	return ok
}

// Measurements holds normalized values in centimeters. A missing key means
// the measurement was not provided.
type Measurements map[MeasurementName]float64

// Band is an inclusive [Min, Max] range in centimeters.
type Band struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

func (b Band) Contains(v float64) bool {
	return v >= b.Min && v <= b.Max
}

type BodyShapeArchetype struct {
	ID                string                   `json:"id"`
	Label             string                   `json:"label"`
	Description       string                   `json:"description"`
	Gender            Gender                   `json:"gender"`
	MeasurementsRange map[MeasurementName]Band `json:"measurements_range"`
	Example           Measurements             `json:"example"`
}

type ScoredResult struct {
	ID    string  `json:"id"`
	Label string  `json:"label"`
	Score float64 `json:"score"`

	Matched    int     `json:"matched"`
	Considered int     `json:"considered"`
	Confidence float64 `json:"confidence"` // matched / len(bands)
}

type InvalidGenderError struct {
	Value string
}

func (e *InvalidGenderError) Error() string {
	return fmt.Sprintf("invalid gender %q: must be one of female, male", e.Value)
}

type InvalidUnitError struct {
	Value string
}

func (e *InvalidUnitError) Error() string {
	return fmt.Sprintf("invalid unit %q: must be one of cm, in", e.Value)
}

type BodyShapeClassification struct {
	Gender        Gender         `json:"gender"`
	Measurements  Measurements   `json:"measurements"`
	Ranking       []ScoredResult `json:"ranking"`
	BestMatch     ScoredResult   `json:"best_match"`
	LowConfidence bool           `json:"low_confidence"`
}
