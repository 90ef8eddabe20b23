package bodyshape

import (
	"context"
	"errors"
	"fmt"
	"time"

	"auraSync/domain"
	"auraSync/pkg/logger"
	"auraSync/pkg/metrics"
)

// ClassifyRequest is the raw input of a manual-entry form: values are in
// Unit and may be numbers or numeric strings.
type ClassifyRequest struct {
	Gender       string
	Unit         string
	Measurements map[string]any
}

type Service struct{}

func NewService() *Service {
	return &Service{}
}

func (s *Service) Classify(ctx context.Context, req ClassifyRequest) (domain.BodyShapeClassification, error) {
	if err := ctx.Err(); err != nil {
		return domain.BodyShapeClassification{}, fmt.Errorf("context error: %w", err)
	}

	start := time.Now()

	gender, err := domain.ParseGender(req.Gender)
	if err != nil {
		metrics.ClassifyRequests.WithLabelValues("unknown", "invalid_gender").Inc()
		logger.Warn("Rejected body-shape classification", "gender", req.Gender, "error", err.Error())
		return domain.BodyShapeClassification{}, err
	}

	unit, err := domain.ParseUnit(req.Unit)
	if err != nil {
		metrics.ClassifyRequests.WithLabelValues(string(gender), "invalid_unit").Inc()
		return domain.BodyShapeClassification{}, err
	}

	measurements, err := NormalizeMeasurements(req.Measurements, unit)
	if err != nil {
		return domain.BodyShapeClassification{}, err
	}

	result, err := s.ClassifyNormalized(gender, measurements)
	if err != nil {
		return domain.BodyShapeClassification{}, err
	}

	metrics.ClassifyLatency.Observe(time.Since(start).Seconds())
	metrics.ClassifyRequests.WithLabelValues(string(gender), "ok").Inc()

	logger.Debug("bodyshape_classify",
		"gender", gender,
		"unit", unit,
		"provided", len(measurements),
		"best_match", result.BestMatch.ID,
		"best_score", result.BestMatch.Score,
		"low_confidence", result.LowConfidence,
	)

	return result, nil
}

// ClassifyNormalized runs the classifier on measurements already in centimeters.
func (s *Service) ClassifyNormalized(gender domain.Gender, measurements domain.Measurements) (domain.BodyShapeClassification, error) {
	ranking, err := Classify(gender, measurements)
	if err != nil {
		return domain.BodyShapeClassification{}, err
	}
	if len(ranking) == 0 {
		return domain.BodyShapeClassification{}, errors.New("empty archetype catalog")
	}

	return domain.BodyShapeClassification{
		Gender:        gender,
		Measurements:  measurements,
		Ranking:       ranking,
		BestMatch:     ranking[0],
		LowConfidence: ranking[0].Score == 0,
	}, nil
}

func (s *Service) Archetypes(ctx context.Context, gender string) ([]domain.BodyShapeArchetype, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	g, err := domain.ParseGender(gender)
	if err != nil {
		return nil, err
	}

	return Catalog(g)
}
