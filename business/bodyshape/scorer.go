package bodyshape

import (
	"math"

	"auraSync/domain"
)

// Score rates every archetype of the gender's catalog against normalized
// measurements: +1 for each measurement present on both sides whose value
// falls inside the band. Results keep catalog declaration order.
func Score(gender domain.Gender, measurements domain.Measurements) ([]domain.ScoredResult, error) {
	catalog, err := catalogFor(gender)
	if err != nil {
		return nil, err
	}

	results := make([]domain.ScoredResult, 0, len(catalog))
	for _, archetype := range catalog {
		results = append(results, scoreArchetype(archetype, measurements))
	}

	return results, nil
}

func scoreArchetype(a domain.BodyShapeArchetype, measurements domain.Measurements) domain.ScoredResult {
	matched, considered := 0, 0
	for name, band := range a.MeasurementsRange {
		v, ok := measurements[name]
		if !ok {
			continue
		}
		considered++
		if band.Contains(v) {
			matched++
		}
	}

	confidence := 0.0
	if len(a.MeasurementsRange) > 0 {
		confidence = float64(matched) / float64(len(a.MeasurementsRange))
	}

	return domain.ScoredResult{
		ID:         a.ID,
		Label:      a.Label,
		Score:      round3(float64(matched)),
		Matched:    matched,
		Considered: considered,
		Confidence: round3(confidence),
	}
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
