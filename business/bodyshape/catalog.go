package bodyshape

import (
	"auraSync/domain"
)

// Archetype ids. Bands are in centimeters and inclusive at both ends.
const (
	Hourglass = "hourglass"
	Pear      = "pear"
	Rectangle = "rectangle"
	Apple     = "apple"

	Mesomorph = "mesomorph"
	Ectomorph = "ectomorph"
	Endomorph = "endomorph"
)

var femaleCatalog = []domain.BodyShapeArchetype{
	{
		ID:          Hourglass,
		Label:       "Hourglass",
		Description: "Bust and hips are balanced with a clearly defined, narrower waist.",
		Gender:      domain.GenderFemale,
		MeasurementsRange: map[domain.MeasurementName]domain.Band{
			domain.MeasurementBust:      {Min: 88, Max: 102},
			domain.MeasurementWaist:     {Min: 58, Max: 72},
			domain.MeasurementHips:      {Min: 90, Max: 104},
			domain.MeasurementShoulders: {Min: 88, Max: 100},
			domain.MeasurementBicep:     {Min: 26, Max: 32},
		},
		Example: domain.Measurements{
			domain.MeasurementBust:      95,
			domain.MeasurementWaist:     65,
			domain.MeasurementHips:      95,
			domain.MeasurementShoulders: 95,
			domain.MeasurementBicep:     30,
		},
	},
	{
		ID:          Pear,
		Label:       "Pear",
		Description: "Hips are wider than bust and shoulders, weight carried in the lower body.",
		Gender:      domain.GenderFemale,
		MeasurementsRange: map[domain.MeasurementName]domain.Band{
			domain.MeasurementBust:      {Min: 78, Max: 90},
			domain.MeasurementWaist:     {Min: 64, Max: 76},
			domain.MeasurementHips:      {Min: 100, Max: 116},
			domain.MeasurementShoulders: {Min: 80, Max: 90},
			domain.MeasurementBicep:     {Min: 24, Max: 30},
		},
		Example: domain.Measurements{
			domain.MeasurementBust:      84,
			domain.MeasurementWaist:     70,
			domain.MeasurementHips:      108,
			domain.MeasurementShoulders: 85,
			domain.MeasurementBicep:     27,
		},
	},
	{
		ID:          Rectangle,
		Label:       "Rectangle",
		Description: "Bust, waist and hips are similar in width with little waist definition.",
		Gender:      domain.GenderFemale,
		MeasurementsRange: map[domain.MeasurementName]domain.Band{
			domain.MeasurementBust:      {Min: 80, Max: 92},
			domain.MeasurementWaist:     {Min: 73, Max: 86},
			domain.MeasurementHips:      {Min: 84, Max: 96},
			domain.MeasurementShoulders: {Min: 86, Max: 96},
			domain.MeasurementBicep:     {Min: 25, Max: 31},
		},
		Example: domain.Measurements{
			domain.MeasurementBust:      86,
			domain.MeasurementWaist:     80,
			domain.MeasurementHips:      90,
			domain.MeasurementShoulders: 91,
			domain.MeasurementBicep:     28,
		},
	},
	{
		ID:          Apple,
		Label:       "Apple",
		Description: "Fuller bust and midsection with a waist wider than the hips suggest.",
		Gender:      domain.GenderFemale,
		MeasurementsRange: map[domain.MeasurementName]domain.Band{
			domain.MeasurementBust:      {Min: 96, Max: 115},
			domain.MeasurementWaist:     {Min: 88, Max: 110},
			domain.MeasurementHips:      {Min: 92, Max: 108},
			domain.MeasurementShoulders: {Min: 94, Max: 108},
			domain.MeasurementBicep:     {Min: 32, Max: 40},
		},
		Example: domain.Measurements{
			domain.MeasurementBust:      105,
			domain.MeasurementWaist:     98,
			domain.MeasurementHips:      100,
			domain.MeasurementShoulders: 100,
			domain.MeasurementBicep:     35,
		},
	},
}

var maleCatalog = []domain.BodyShapeArchetype{
	{
		ID:          Mesomorph,
		Label:       "Mesomorph",
		Description: "Athletic build with broad shoulders, a defined chest and a tapered waist.",
		Gender:      domain.GenderMale,
		MeasurementsRange: map[domain.MeasurementName]domain.Band{
			domain.MeasurementChest:     {Min: 100, Max: 120},
			domain.MeasurementWaist:     {Min: 72, Max: 92},
			domain.MeasurementShoulders: {Min: 110, Max: 130},
			domain.MeasurementBicep:     {Min: 34, Max: 42},
		},
		Example: domain.Measurements{
			domain.MeasurementChest:     110,
			domain.MeasurementWaist:     85,
			domain.MeasurementShoulders: 120,
			domain.MeasurementBicep:     37.5,
		},
	},
	{
		ID:          Ectomorph,
		Label:       "Ectomorph",
		Description: "Lean, narrow frame with slim limbs and a flat chest.",
		Gender:      domain.GenderMale,
		MeasurementsRange: map[domain.MeasurementName]domain.Band{
			domain.MeasurementChest:     {Min: 80, Max: 98},
			domain.MeasurementWaist:     {Min: 62, Max: 78},
			domain.MeasurementShoulders: {Min: 95, Max: 112},
			domain.MeasurementBicep:     {Min: 26, Max: 33},
		},
		Example: domain.Measurements{
			domain.MeasurementChest:     90,
			domain.MeasurementWaist:     70,
			domain.MeasurementShoulders: 104,
			domain.MeasurementBicep:     30,
		},
	},
	{
		ID:          Endomorph,
		Label:       "Endomorph",
		Description: "Rounder, solid frame with a wider waist and fuller midsection.",
		Gender:      domain.GenderMale,
		MeasurementsRange: map[domain.MeasurementName]domain.Band{
			domain.MeasurementChest:     {Min: 105, Max: 130},
			domain.MeasurementWaist:     {Min: 75, Max: 120},
			domain.MeasurementShoulders: {Min: 100, Max: 118},
			domain.MeasurementBicep:     {Min: 35, Max: 45},
		},
		Example: domain.Measurements{
			domain.MeasurementChest:     118,
			domain.MeasurementWaist:     105,
			domain.MeasurementShoulders: 115,
			domain.MeasurementBicep:     40,
		},
	},
}

func catalogFor(gender domain.Gender) ([]domain.BodyShapeArchetype, error) {
	switch gender {
	case domain.GenderFemale:
		return femaleCatalog, nil
	case domain.GenderMale:
		return maleCatalog, nil
	default:
		return nil, &domain.InvalidGenderError{Value: string(gender)}
	}
}

// Catalog returns a copy of the gender's archetypes in declaration order.
func Catalog(gender domain.Gender) ([]domain.BodyShapeArchetype, error) {
	src, err := catalogFor(gender)
	if err != nil {
		return nil, err
	}

	out := make([]domain.BodyShapeArchetype, len(src))
	for i, a := range src {
		out[i] = cloneArchetype(a)
	}
	return out, nil
}

// Lookup finds an archetype of the gender's catalog by id.
func Lookup(gender domain.Gender, id string) (domain.BodyShapeArchetype, bool) {
	src, err := catalogFor(gender)
	if err != nil {
		return domain.BodyShapeArchetype{}, false
	}
	for _, a := range src {
		if a.ID == id {
			return cloneArchetype(a), true
		}
	}
	return domain.BodyShapeArchetype{}, false
}

func cloneArchetype(a domain.BodyShapeArchetype) domain.BodyShapeArchetype {
	ranges := make(map[domain.MeasurementName]domain.Band, len(a.MeasurementsRange))
	for k, v := range a.MeasurementsRange {
		ranges[k] = v
	}
	example := make(domain.Measurements, len(a.Example))
	for k, v := range a.Example {
		example[k] = v
	}
	a.MeasurementsRange = ranges
	a.Example = example
	return a
}
