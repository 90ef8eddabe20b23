package bodyshape

import (
	"sort"

	"auraSync/domain"
)

// Rank orders results by descending score. Equal scores keep their input
// order, so ties resolve to catalog declaration order. The input is not
// modified.
func Rank(results []domain.ScoredResult) []domain.ScoredResult {
	ranked := make([]domain.ScoredResult, len(results))
	copy(ranked, results)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	return ranked
}

// Classify scores and ranks in one step. The first entry is the best match;
// an all-zero ranking is still returned and callers should treat it as low
// confidence.
func Classify(gender domain.Gender, measurements domain.Measurements) ([]domain.ScoredResult, error) {
	scored, err := Score(gender, measurements)
	if err != nil {
		return nil, err
	}
	return Rank(scored), nil
}
