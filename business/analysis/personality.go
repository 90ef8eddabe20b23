package analysis

const (
	StyleClassic    = "classic"
	StyleBold       = "bold"
	StyleRomantic   = "romantic"
	StyleMinimalist = "minimalist"
)

// quiz questions cycle through the four style dimensions in this order
var styleDimensions = []string{StyleClassic, StyleBold, StyleRomantic, StyleMinimalist}

// StyleArchetype sums quiz answers per dimension and returns the strongest
// one. Ties go to the dimension listed first.
func StyleArchetype(answers []int) string {
	totals := make([]int, len(styleDimensions))
	for i, a := range answers {
		totals[i%len(styleDimensions)] += a
	}

	best := 0
	for i := 1; i < len(totals); i++ {
		if totals[i] > totals[best] {
			best = i
		}
	}
	return styleDimensions[best]
}
