package catalog

import (
	"errors"
	"math/rand"
	"sort"

	"auraSync/domain"
)

const (
	SortFeatured  = "featured"
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortRating    = "rating"
	SortNewest    = "newest"
	SortShuffle   = "shuffle"

	defaultPageSize = 12
	maxPageSize     = 60
)

var ErrInvalidSort = errors.New("invalid sort key")

// SortOutfits orders outfits in place. Every ordering is stable; shuffle is
// deterministic for a given seed.
func SortOutfits(outfits []domain.Outfit, key string, seed int64) error {
	switch key {
	case "", SortFeatured:
		sort.SliceStable(outfits, func(i, j int) bool {
			if outfits[i].Position != outfits[j].Position {
				return outfits[i].Position < outfits[j].Position
			}
			return outfits[i].ID < outfits[j].ID
		})
	case SortPriceAsc:
		sort.SliceStable(outfits, func(i, j int) bool {
			return outfits[i].Price < outfits[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(outfits, func(i, j int) bool {
			return outfits[i].Price > outfits[j].Price
		})
	case SortRating:
		sort.SliceStable(outfits, func(i, j int) bool {
			return outfits[i].Rating > outfits[j].Rating
		})
	case SortNewest:
		sort.SliceStable(outfits, func(i, j int) bool {
			return outfits[i].CreatedAt.After(outfits[j].CreatedAt)
		})
	case SortShuffle:
		rng := rand.New(rand.NewSource(seed))
		rng.Shuffle(len(outfits), func(i, j int) {
			outfits[i], outfits[j] = outfits[j], outfits[i]
		})
	default:
		return ErrInvalidSort
	}
	return nil
}

// Paginate slices a 1-based page. Out-of-range pages are empty, not errors.
func Paginate(outfits []domain.Outfit, page, pageSize int) domain.OutfitPage {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	total := len(outfits)
	totalPages := (total + pageSize - 1) / pageSize

	items := []domain.Outfit{}
	// page <= totalPages keeps (page-1)*pageSize within total
	if page <= totalPages {
		start := (page - 1) * pageSize
		end := start + pageSize
		if end > total {
			end = total
		}
		items = append(items, outfits[start:end]...)
	}

	return domain.OutfitPage{
		Items:      items,
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}
