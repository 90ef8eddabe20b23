package onboarding

import (
	"context"
	"errors"
	"testing"

	"auraSync/business/bodyshape"
	"auraSync/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProfiles struct {
	byUser  map[uint]domain.BodyProfile
	upserts int
	findErr error
}

func newFakeProfiles() *fakeProfiles {
	return &fakeProfiles{byUser: map[uint]domain.BodyProfile{}}
}

func (f *fakeProfiles) FindByUserID(ctx context.Context, userID uint) (domain.BodyProfile, error) {
	if f.findErr != nil {
		return domain.BodyProfile{}, f.findErr
	}
	p, ok := f.byUser[userID]
	if !ok {
		return domain.BodyProfile{}, domain.ErrNotFound
	}
	return p, nil
}

func (f *fakeProfiles) Upsert(ctx context.Context, profile *domain.BodyProfile) error {
	f.upserts++
	f.byUser[profile.UserID] = *profile
	return nil
}

type fakeAwarder struct {
	seen map[string]bool
	err  error
}

func (f *fakeAwarder) Award(ctx context.Context, userID uint, amount int64, reason, refKey string) (domain.PointsTransaction, bool, error) {
	if f.err != nil {
		return domain.PointsTransaction{}, false, f.err
	}
	if f.seen == nil {
		f.seen = map[string]bool{}
	}
	if f.seen[refKey] {
		return domain.PointsTransaction{}, false, nil
	}
	f.seen[refKey] = true
	return domain.PointsTransaction{UserID: userID, Amount: amount}, true, nil
}

func newTestService(profiles *fakeProfiles, points PointsAwarder) *onboardingService {
	return NewOnboardingService(profiles, points, bodyshape.NewService(), Config{
		PhotoConfidenceThreshold: 0.6,
		PointsPerStep:            50,
	})
}

var hourglassMeasurements = map[string]any{
	"bust":      95,
	"waist":     65,
	"hips":      95,
	"shoulders": 95,
	"bicep":     30,
}

func TestSubmitBody_PhotoAccepted(t *testing.T) {
	profiles := newFakeProfiles()
	svc := newTestService(profiles, &fakeAwarder{})

	res, err := svc.SubmitBody(context.Background(), 1, domain.BodyAnalysis{
		Gender:       "female",
		Measurements: hourglassMeasurements,
		Photo:        &domain.PhotoBodyResult{Shape: "Pear", Confidence: 0.9},
	})
	require.NoError(t, err)

	assert.Equal(t, bodyshape.Pear, res.Profile.BodyShape)
	assert.Equal(t, domain.BodySourcePhoto, res.Profile.BodySource)
	assert.Nil(t, res.Classification)
	assert.Equal(t, int64(50), res.PointsAwarded)
	assert.Equal(t, 65.0, profiles.byUser[1].Measurements["waist"])
}

func TestSubmitBody_FallsBackToMeasurements(t *testing.T) {
	tests := []struct {
		name  string
		photo *domain.PhotoBodyResult
	}{
		{"no photo", nil},
		{"low confidence photo", &domain.PhotoBodyResult{Shape: "pear", Confidence: 0.59}},
		{"shape outside the gender catalog", &domain.PhotoBodyResult{Shape: "mesomorph", Confidence: 0.95}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(newFakeProfiles(), nil)

			res, err := svc.SubmitBody(context.Background(), 2, domain.BodyAnalysis{
				Gender:       "female",
				Unit:         "cm",
				Measurements: hourglassMeasurements,
				Photo:        tt.photo,
			})
			require.NoError(t, err)

			require.NotNil(t, res.Classification)
			assert.Equal(t, bodyshape.Hourglass, res.Profile.BodyShape)
			assert.Equal(t, domain.BodySourceManual, res.Profile.BodySource)
			assert.False(t, res.Profile.LowConfidence)
			assert.Len(t, res.Profile.Ranking, 4)
			assert.Zero(t, res.PointsAwarded)
		})
	}
}

func TestSubmitBody_NoUsableMeasurementsIsLowConfidence(t *testing.T) {
	svc := newTestService(newFakeProfiles(), nil)

	res, err := svc.SubmitBody(context.Background(), 3, domain.BodyAnalysis{
		Gender:       "male",
		Measurements: map[string]any{"chest": "", "waist": "n/a"},
	})
	require.NoError(t, err)

	assert.True(t, res.Profile.LowConfidence)
	assert.Equal(t, bodyshape.Mesomorph, res.Profile.BodyShape)
	assert.Empty(t, res.Profile.Measurements)
}

func TestSubmitBody_InvalidInput(t *testing.T) {
	svc := newTestService(newFakeProfiles(), nil)
	ctx := context.Background()

	_, err := svc.SubmitBody(ctx, 4, domain.BodyAnalysis{Gender: "robot"})
	var genderErr *domain.InvalidGenderError
	assert.True(t, errors.As(err, &genderErr))

	_, err = svc.SubmitBody(ctx, 4, domain.BodyAnalysis{Gender: "female", Unit: "ft"})
	var unitErr *domain.InvalidUnitError
	assert.True(t, errors.As(err, &unitErr))
}

func TestSubmit_StepsShareOneProfileAndAwardOnce(t *testing.T) {
	profiles := newFakeProfiles()
	svc := newTestService(profiles, &fakeAwarder{})
	ctx := context.Background()

	res, err := svc.Submit(ctx, 5, domain.AnalysisPayload{
		Type: domain.AnalysisSkin,
		Skin: &domain.SkinAnalysis{Tone: "tan", Undertone: "warm"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(50), res.PointsAwarded)
	profileID := res.Profile.ID

	res, err = svc.Submit(ctx, 5, domain.AnalysisPayload{
		Type: domain.AnalysisSkin,
		Skin: &domain.SkinAnalysis{Tone: "deep", Undertone: "cool"},
	})
	require.NoError(t, err)
	assert.Zero(t, res.PointsAwarded)
	assert.Equal(t, "deep", res.Profile.SkinTone)

	res, err = svc.Submit(ctx, 5, domain.AnalysisPayload{
		Type:        domain.AnalysisPersonality,
		Personality: &domain.PersonalityAnalysis{Answers: []int{1, 5, 1, 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(50), res.PointsAwarded)

	stored, err := svc.GetProfile(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, profileID, stored.ID)
	assert.Equal(t, "bold", stored.StyleArchetype)
	assert.Equal(t, []domain.AnalysisType{domain.AnalysisSkin, domain.AnalysisPersonality}, stored.CompletedSteps())
}

func TestSubmitFace_SuggestsHairstyles(t *testing.T) {
	profiles := newFakeProfiles()
	svc := newTestService(profiles, nil)
	ctx := context.Background()

	unknownGender, err := svc.SubmitFace(ctx, 6, domain.FaceAnalysis{Shape: "round"})
	require.NoError(t, err)

	profiles.byUser[6] = domain.BodyProfile{ID: unknownGender.Profile.ID, UserID: 6, Gender: "male"}
	male, err := svc.SubmitFace(ctx, 6, domain.FaceAnalysis{Shape: "round"})
	require.NoError(t, err)

	require.NotEmpty(t, male.Hairstyles)
	assert.Greater(t, len(unknownGender.Hairstyles), len(male.Hairstyles))
	assert.Equal(t, "round", male.Profile.FaceShape)
}

func TestSubmit_PointsFailureDoesNotFailStep(t *testing.T) {
	profiles := newFakeProfiles()
	svc := newTestService(profiles, &fakeAwarder{err: errors.New("db down")})

	res, err := svc.SubmitSkin(context.Background(), 7, domain.SkinAnalysis{Tone: "fair", Undertone: "neutral"})
	require.NoError(t, err)
	assert.Zero(t, res.PointsAwarded)
	assert.Equal(t, 1, profiles.upserts)
}

func TestGetProfile(t *testing.T) {
	profiles := newFakeProfiles()
	svc := newTestService(profiles, nil)

	_, err := svc.GetProfile(context.Background(), 8)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	profiles.findErr = errors.New("connection reset")
	_, err = svc.SubmitSkin(context.Background(), 8, domain.SkinAnalysis{Tone: "fair", Undertone: "warm"})
	assert.Error(t, err)
	assert.Zero(t, profiles.upserts)
}
