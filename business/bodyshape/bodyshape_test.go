package bodyshape

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"testing"

	"auraSync/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(results []domain.ScoredResult) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.ID
	}
	return out
}

func scoreOf(t *testing.T, results []domain.ScoredResult, id string) float64 {
	t.Helper()
	for _, r := range results {
		if r.ID == id {
			return r.Score
		}
	}
	t.Fatalf("archetype %s not in results", id)
	return 0
}

func TestClassify_CatalogExamplesRankFirst(t *testing.T) {
	for _, gender := range []domain.Gender{domain.GenderFemale, domain.GenderMale} {
		catalog, err := Catalog(gender)
		require.NoError(t, err)

		for _, archetype := range catalog {
			t.Run(archetype.ID, func(t *testing.T) {
				ranked, err := Classify(gender, archetype.Example)
				require.NoError(t, err)
				require.NotEmpty(t, ranked)

				assert.Equal(t, archetype.ID, ranked[0].ID)
				assert.Equal(t, float64(len(archetype.MeasurementsRange)), ranked[0].Score)
				assert.Equal(t, 1.0, ranked[0].Confidence)
			})
		}
	}
}

func TestClassify_EmptyInputKeepsCatalogOrder(t *testing.T) {
	tests := []struct {
		gender domain.Gender
		want   []string
	}{
		{domain.GenderFemale, []string{Hourglass, Pear, Rectangle, Apple}},
		{domain.GenderMale, []string{Mesomorph, Ectomorph, Endomorph}},
	}

	for _, tt := range tests {
		t.Run(string(tt.gender), func(t *testing.T) {
			for _, input := range []domain.Measurements{nil, {}} {
				ranked, err := Classify(tt.gender, input)
				require.NoError(t, err)

				assert.Equal(t, tt.want, ids(ranked))
				for _, r := range ranked {
					assert.Zero(t, r.Score)
					assert.Zero(t, r.Considered)
				}
			}
		})
	}
}

func TestClassify_Idempotent(t *testing.T) {
	input := domain.Measurements{
		domain.MeasurementBust:  90,
		domain.MeasurementWaist: 75,
		domain.MeasurementHips:  101,
	}

	first, err := Classify(domain.GenderFemale, input)
	require.NoError(t, err)
	second, err := Classify(domain.GenderFemale, input)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestClassify_UnknownGender(t *testing.T) {
	for _, g := range []domain.Gender{"", "other", "FEMALE"} {
		_, err := Classify(g, domain.Measurements{domain.MeasurementWaist: 70})

		var genderErr *domain.InvalidGenderError
		require.True(t, errors.As(err, &genderErr), "gender %q", g)
		assert.Equal(t, string(g), genderErr.Value)
	}
}

func TestClassify_FemaleHourglassScenario(t *testing.T) {
	ranked, err := Classify(domain.GenderFemale, domain.Measurements{
		domain.MeasurementBust:      95,
		domain.MeasurementWaist:     65,
		domain.MeasurementHips:      95,
		domain.MeasurementShoulders: 95,
		domain.MeasurementBicep:     30,
	})
	require.NoError(t, err)

	assert.Equal(t, Hourglass, ranked[0].ID)
	assert.Equal(t, 5.0, ranked[0].Score)
	for _, id := range []string{Pear, Rectangle, Apple} {
		assert.Less(t, scoreOf(t, ranked, id), 5.0, id)
	}
}

func TestClassify_MaleMesomorphScenario(t *testing.T) {
	ranked, err := Classify(domain.GenderMale, domain.Measurements{
		domain.MeasurementChest:     110,
		domain.MeasurementWaist:     85,
		domain.MeasurementShoulders: 120,
		domain.MeasurementBicep:     37.5,
	})
	require.NoError(t, err)

	assert.Equal(t, Mesomorph, ranked[0].ID)
	assert.Equal(t, 4.0, ranked[0].Score)
	assert.Less(t, ranked[1].Score, 4.0)
}

func TestClassify_MaleWaistOnlyTiesKeepCatalogOrder(t *testing.T) {
	ranked, err := Classify(domain.GenderMale, domain.Measurements{
		domain.MeasurementWaist: 75,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{Mesomorph, Ectomorph, Endomorph}, ids(ranked))
	for _, r := range ranked {
		assert.LessOrEqual(t, r.Score, 1.0)
		assert.Equal(t, 1, r.Considered)
	}
}

func TestScore_MeasurementsOutsideCatalogAreIgnored(t *testing.T) {
	// bust and hips have no male bands
	scored, err := Score(domain.GenderMale, domain.Measurements{
		domain.MeasurementBust: 100,
		domain.MeasurementHips: 100,
	})
	require.NoError(t, err)

	for _, r := range scored {
		assert.Zero(t, r.Score)
		assert.Zero(t, r.Considered)
	}
}

func TestScore_BandEdgesAreInclusive(t *testing.T) {
	scored, err := Score(domain.GenderFemale, domain.Measurements{
		domain.MeasurementWaist: 58,
		domain.MeasurementHips:  104,
	})
	require.NoError(t, err)
	assert.Equal(t, 2.0, scoreOf(t, scored, Hourglass))

	scored, err = Score(domain.GenderFemale, domain.Measurements{
		domain.MeasurementWaist: 57.999,
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, scoreOf(t, scored, Hourglass))
}

func TestRank_StableAndDoesNotMutate(t *testing.T) {
	input := []domain.ScoredResult{
		{ID: "a", Score: 1},
		{ID: "b", Score: 2},
		{ID: "c", Score: 1},
		{ID: "d", Score: 2},
	}

	ranked := Rank(input)

	assert.Equal(t, []string{"b", "d", "a", "c"}, ids(ranked))
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(input))
}

func TestUnitRoundTrip(t *testing.T) {
	for _, x := range []float64{0.001, 0.5, 1, 2.54, 30, 37.5, 95, 180.25, 1234.5678} {
		assert.InDelta(t, x, CmToInches(InchesToCm(x)), 1e-9)
	}
	assert.InDelta(t, 25.4, InchesToCm(10), 1e-12)
}

func TestToCentimeters_InvalidUnit(t *testing.T) {
	_, err := ToCentimeters(10, domain.Unit("ft"))

	var unitErr *domain.InvalidUnitError
	assert.True(t, errors.As(err, &unitErr))
}

func TestNormalizeMeasurements(t *testing.T) {
	t.Run("omits unusable values instead of zeroing them", func(t *testing.T) {
		got, err := NormalizeMeasurements(map[string]any{
			"bust":      "",
			"waist":     "abc",
			"hips":      0,
			"shoulders": -4.0,
			"bicep":     math.NaN(),
			"chest":     nil,
		}, domain.UnitCentimeter)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("accepts numbers and numeric strings", func(t *testing.T) {
		got, err := NormalizeMeasurements(map[string]any{
			" Waist ": " 70.5 ",
			"hips":    json.Number("98"),
			"bust":    92,
			"neck":    35.0,
		}, domain.UnitCentimeter)
		require.NoError(t, err)

		assert.Equal(t, domain.Measurements{
			domain.MeasurementWaist: 70.5,
			domain.MeasurementHips:  98,
			domain.MeasurementBust:  92,
		}, got)
	})

	t.Run("converts inches", func(t *testing.T) {
		got, err := NormalizeMeasurements(map[string]any{"waist": 30.0}, domain.UnitInch)
		require.NoError(t, err)
		assert.InDelta(t, 76.2, got[domain.MeasurementWaist], 1e-9)
	})

	t.Run("rejects unknown unit", func(t *testing.T) {
		_, err := NormalizeMeasurements(map[string]any{"waist": 30.0}, domain.Unit("mm"))
		assert.Error(t, err)
	})
}

func TestCatalog_ReturnsCopy(t *testing.T) {
	catalog, err := Catalog(domain.GenderFemale)
	require.NoError(t, err)

	catalog[0].MeasurementsRange[domain.MeasurementWaist] = domain.Band{Min: 0, Max: 1000}
	catalog[0].Label = "changed"

	fresh, err := Catalog(domain.GenderFemale)
	require.NoError(t, err)
	assert.Equal(t, "Hourglass", fresh[0].Label)
	assert.Equal(t, domain.Band{Min: 58, Max: 72}, fresh[0].MeasurementsRange[domain.MeasurementWaist])
}

func TestLookup(t *testing.T) {
	a, ok := Lookup(domain.GenderMale, Endomorph)
	require.True(t, ok)
	assert.Equal(t, "Endomorph", a.Label)

	_, ok = Lookup(domain.GenderMale, Hourglass)
	assert.False(t, ok)
}

func TestService_Classify(t *testing.T) {
	svc := NewService()

	t.Run("inches input with loose gender selector", func(t *testing.T) {
		res, err := svc.Classify(context.Background(), ClassifyRequest{
			Gender: " Male ",
			Unit:   "in",
			Measurements: map[string]any{
				"chest":     "43.3",
				"waist":     33.5,
				"shoulders": 47.2,
				"bicep":     14.8,
			},
		})
		require.NoError(t, err)

		assert.Equal(t, domain.GenderMale, res.Gender)
		assert.Equal(t, Mesomorph, res.BestMatch.ID)
		assert.Equal(t, 4.0, res.BestMatch.Score)
		assert.False(t, res.LowConfidence)
		assert.Len(t, res.Ranking, 3)
	})

	t.Run("no usable measurements is low confidence, not an error", func(t *testing.T) {
		res, err := svc.Classify(context.Background(), ClassifyRequest{
			Gender:       "female",
			Measurements: map[string]any{"waist": ""},
		})
		require.NoError(t, err)

		assert.True(t, res.LowConfidence)
		assert.Equal(t, Hourglass, res.BestMatch.ID)
	})

	t.Run("invalid gender", func(t *testing.T) {
		_, err := svc.Classify(context.Background(), ClassifyRequest{Gender: "robot"})

		var genderErr *domain.InvalidGenderError
		assert.True(t, errors.As(err, &genderErr))
	})

	t.Run("invalid unit", func(t *testing.T) {
		_, err := svc.Classify(context.Background(), ClassifyRequest{Gender: "female", Unit: "ft"})

		var unitErr *domain.InvalidUnitError
		assert.True(t, errors.As(err, &unitErr))
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := svc.Classify(ctx, ClassifyRequest{Gender: "female"})
		assert.ErrorIs(t, err, context.Canceled)
	})
}
