package onboarding

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"auraSync/business/analysis"
	"auraSync/business/bodyshape"
	"auraSync/domain"
	"auraSync/pkg/logger"
	"auraSync/pkg/metrics"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ProfileRepository contract interface
type ProfileRepository interface {
	FindByUserID(ctx context.Context, userID uint) (domain.BodyProfile, error)
	Upsert(ctx context.Context, profile *domain.BodyProfile) error
}

// PointsAwarder is the slice of the points ledger onboarding needs.
type PointsAwarder interface {
	Award(ctx context.Context, userID uint, amount int64, reason, refKey string) (domain.PointsTransaction, bool, error)
}

type Config struct {
	PhotoConfidenceThreshold float64
	PointsPerStep            int64
}

// Fallback reasons reported when the photo result is not used.
const (
	fallbackNoPhoto       = "no_photo"
	fallbackUnknownShape  = "unknown_shape"
	fallbackLowConfidence = "low_confidence"
)

type SubmissionResult struct {
	Type           domain.AnalysisType             `json:"type"`
	Profile        domain.BodyProfile              `json:"profile"`
	Classification *domain.BodyShapeClassification `json:"classification,omitempty"`
	Hairstyles     []analysis.Hairstyle            `json:"hairstyles,omitempty"`
	PointsAwarded  int64                           `json:"points_awarded"`
}

type onboardingService struct {
	profileRepo ProfileRepository
	points      PointsAwarder
	classifier  *bodyshape.Service
	cfg         Config
}

func NewOnboardingService(profileRepo ProfileRepository, points PointsAwarder, classifier *bodyshape.Service, cfg Config) *onboardingService {
	return &onboardingService{
		profileRepo: profileRepo,
		points:      points,
		classifier:  classifier,
		cfg:         cfg,
	}
}

// Submit dispatches an already validated payload to its step.
func (s *onboardingService) Submit(ctx context.Context, userID uint, payload domain.AnalysisPayload) (SubmissionResult, error) {
	switch payload.Type {
	case domain.AnalysisBody:
		if payload.Body != nil {
			return s.SubmitBody(ctx, userID, *payload.Body)
		}
	case domain.AnalysisSkin:
		if payload.Skin != nil {
			return s.SubmitSkin(ctx, userID, *payload.Skin)
		}
	case domain.AnalysisFace:
		if payload.Face != nil {
			return s.SubmitFace(ctx, userID, *payload.Face)
		}
	case domain.AnalysisPersonality:
		if payload.Personality != nil {
			return s.SubmitPersonality(ctx, userID, *payload.Personality)
		}
	}
	return SubmissionResult{}, fmt.Errorf("%w: %s payload is missing", domain.ErrInvalidAnalysis, payload.Type)
}

func (s *onboardingService) SubmitBody(ctx context.Context, userID uint, body domain.BodyAnalysis) (SubmissionResult, error) {
	profile, err := s.loadProfile(ctx, userID)
	if err != nil {
		return SubmissionResult{}, err
	}

	rawGender := body.Gender
	if strings.TrimSpace(rawGender) == "" {
		rawGender = profile.Gender
	}
	gender, err := domain.ParseGender(rawGender)
	if err != nil {
		return SubmissionResult{}, err
	}

	unit, err := domain.ParseUnit(body.Unit)
	if err != nil {
		return SubmissionResult{}, err
	}

	measurements, err := bodyshape.NormalizeMeasurements(body.Measurements, unit)
	if err != nil {
		return SubmissionResult{}, err
	}

	profile.Gender = string(gender)
	profile.Measurements = toJSONMap(measurements)

	result := SubmissionResult{Type: domain.AnalysisBody}

	if shape, reason := s.acceptPhoto(gender, body.Photo); reason == "" {
		profile.BodyShape = shape
		profile.BodySource = domain.BodySourcePhoto
		profile.LowConfidence = false
		profile.Ranking = nil
	} else {
		metrics.BodyShapeFallbacks.WithLabelValues(reason).Inc()

		classification, err := s.classifier.ClassifyNormalized(gender, measurements)
		if err != nil {
			logger.Error("Failed to classify body shape", err)
			return SubmissionResult{}, err
		}

		profile.BodyShape = classification.BestMatch.ID
		profile.BodySource = domain.BodySourceManual
		profile.LowConfidence = classification.LowConfidence
		profile.Ranking = classification.Ranking
		result.Classification = &classification

		logger.Info("body shape resolved by measurements",
			"user_id", userID,
			"reason", reason,
			"body_shape", profile.BodyShape,
			"low_confidence", profile.LowConfidence,
		)
	}

	return s.complete(ctx, &profile, result)
}

// acceptPhoto returns the photo shape, or a non-empty fallback reason when
// the measurement classifier must decide instead.
func (s *onboardingService) acceptPhoto(gender domain.Gender, photo *domain.PhotoBodyResult) (string, string) {
	if photo == nil || strings.TrimSpace(photo.Shape) == "" {
		return "", fallbackNoPhoto
	}

	shape := strings.ToLower(strings.TrimSpace(photo.Shape))
	if _, ok := bodyshape.Lookup(gender, shape); !ok {
		return "", fallbackUnknownShape
	}
	if photo.Confidence < s.cfg.PhotoConfidenceThreshold {
		return "", fallbackLowConfidence
	}
	return shape, ""
}

func (s *onboardingService) SubmitSkin(ctx context.Context, userID uint, skin domain.SkinAnalysis) (SubmissionResult, error) {
	profile, err := s.loadProfile(ctx, userID)
	if err != nil {
		return SubmissionResult{}, err
	}

	profile.SkinTone = skin.Tone
	profile.Undertone = skin.Undertone

	return s.complete(ctx, &profile, SubmissionResult{Type: domain.AnalysisSkin})
}

func (s *onboardingService) SubmitFace(ctx context.Context, userID uint, face domain.FaceAnalysis) (SubmissionResult, error) {
	profile, err := s.loadProfile(ctx, userID)
	if err != nil {
		return SubmissionResult{}, err
	}

	profile.FaceShape = strings.ToLower(strings.TrimSpace(face.Shape))

	result := SubmissionResult{Type: domain.AnalysisFace}
	if gender, err := domain.ParseGender(profile.Gender); err == nil {
		result.Hairstyles = analysis.SuggestHairstyles(profile.FaceShape, gender)
	} else {
		// gender not known yet, offer both lists
		result.Hairstyles = append(
			analysis.SuggestHairstyles(profile.FaceShape, domain.GenderFemale),
			analysis.SuggestHairstyles(profile.FaceShape, domain.GenderMale)...,
		)
	}

	return s.complete(ctx, &profile, result)
}

func (s *onboardingService) SubmitPersonality(ctx context.Context, userID uint, personality domain.PersonalityAnalysis) (SubmissionResult, error) {
	profile, err := s.loadProfile(ctx, userID)
	if err != nil {
		return SubmissionResult{}, err
	}

	profile.StyleArchetype = analysis.StyleArchetype(personality.Answers)

	return s.complete(ctx, &profile, SubmissionResult{Type: domain.AnalysisPersonality})
}

func (s *onboardingService) GetProfile(ctx context.Context, userID uint) (domain.BodyProfile, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get profile")
		return domain.BodyProfile{}, fmt.Errorf("context error: %w", err)
	}

	profile, err := s.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logger.Error("Failed to find body profile", err)
		}
		return domain.BodyProfile{}, err
	}

	return profile, nil
}

// loadProfile returns the stored profile or a fresh one for first submissions.
func (s *onboardingService) loadProfile(ctx context.Context, userID uint) (domain.BodyProfile, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when submit analysis")
		return domain.BodyProfile{}, fmt.Errorf("context error: %w", err)
	}
	if userID == 0 {
		return domain.BodyProfile{}, errors.New("invalid user id")
	}

	profile, err := s.profileRepo.FindByUserID(ctx, userID)
	switch {
	case err == nil:
		return profile, nil
	case errors.Is(err, domain.ErrNotFound):
		return domain.BodyProfile{ID: uuid.New(), UserID: userID}, nil
	default:
		logger.Error("Failed to load body profile", err)
		return domain.BodyProfile{}, fmt.Errorf("failed to load profile: %w", err)
	}
}

// complete persists the profile and awards the step's points once per user.
func (s *onboardingService) complete(ctx context.Context, profile *domain.BodyProfile, result SubmissionResult) (SubmissionResult, error) {
	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		logger.Error("Failed to save body profile", err)
		return SubmissionResult{}, fmt.Errorf("failed to save profile: %w", err)
	}

	if s.points != nil && s.cfg.PointsPerStep > 0 {
		reason := fmt.Sprintf("onboarding %s analysis", result.Type)
		refKey := "onboarding:" + string(result.Type)

		_, created, err := s.points.Award(ctx, profile.UserID, s.cfg.PointsPerStep, reason, refKey)
		switch {
		case err != nil:
			// the step is saved; a retry re-awards safely through the ref key
			logger.Error("Failed to award onboarding points", "user_id", profile.UserID, "step", result.Type, "error", err.Error())
		case created:
			result.PointsAwarded = s.cfg.PointsPerStep
		}
	}

	result.Profile = *profile
	return result, nil
}

func toJSONMap(m domain.Measurements) datatypes.JSONMap {
	out := make(datatypes.JSONMap, len(m))
	for name, v := range m {
		out[string(name)] = v
	}
	return out
}
