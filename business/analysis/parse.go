package analysis

import (
	"bytes"
	"encoding/json"
	"fmt"

	"auraSync/domain"

	"github.com/go-playground/validator/v10"
)

type Parser struct {
	validate *validator.Validate
}

func NewParser(validate *validator.Validate) *Parser {
	if validate == nil {
		validate = validator.New()
	}
	return &Parser{validate: validate}
}

// Parse decodes a raw onboarding payload and validates it. Numbers inside
// body measurements are kept as json.Number so the normalizer decides what
// counts as provided.
func (p *Parser) Parse(raw []byte) (domain.AnalysisPayload, error) {
	var payload domain.AnalysisPayload

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	dec.DisallowUnknownFields()
	if err := dec.Decode(&payload); err != nil {
		return domain.AnalysisPayload{}, fmt.Errorf("%w: %v", domain.ErrInvalidAnalysis, err)
	}

	if err := p.Validate(payload); err != nil {
		return domain.AnalysisPayload{}, err
	}

	return payload, nil
}

// Validate enforces the union: the variant named by Type is set and no other is.
func (p *Parser) Validate(payload domain.AnalysisPayload) error {
	if err := p.validate.Struct(payload); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidAnalysis, err)
	}

	set := map[domain.AnalysisType]bool{
		domain.AnalysisSkin:        payload.Skin != nil,
		domain.AnalysisFace:        payload.Face != nil,
		domain.AnalysisBody:        payload.Body != nil,
		domain.AnalysisPersonality: payload.Personality != nil,
	}

	if !set[payload.Type] {
		return fmt.Errorf("%w: %s payload is missing", domain.ErrInvalidAnalysis, payload.Type)
	}
	for t, present := range set {
		if present && t != payload.Type {
			return fmt.Errorf("%w: unexpected %s payload for type %s", domain.ErrInvalidAnalysis, t, payload.Type)
		}
	}

	return nil
}
