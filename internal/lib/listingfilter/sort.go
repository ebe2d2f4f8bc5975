package listingfilter

import (
	"cmp"
	"slices"

	"classifieds/internal/domain"
)

// Sort возвращает копию listings, упорядоченную устойчиво по opt.
// SortNone и неизвестные значения сохраняют исходный порядок.
func Sort(listings []domain.Listing, opt domain.SortOption) []domain.Listing {
	out := slices.Clone(listings)
	sortInPlace(out, opt)
	return out
}

func sortInPlace(listings []domain.Listing, opt domain.SortOption) {
	compare := comparator(opt)
	if compare == nil {
		return
	}
	slices.SortStableFunc(listings, compare)
}

func comparator(opt domain.SortOption) func(a, b domain.Listing) int {
	switch opt {
	case domain.SortPriceAsc:
		return func(a, b domain.Listing) int { return cmp.Compare(a.DiscountPrice, b.DiscountPrice) }
	case domain.SortPriceDesc:
		return func(a, b domain.Listing) int { return cmp.Compare(b.DiscountPrice, a.DiscountPrice) }
	case domain.SortAreaAsc:
		return func(a, b domain.Listing) int { return cmp.Compare(a.AreaOrZero(), b.AreaOrZero()) }
	case domain.SortAreaDesc:
		return func(a, b domain.Listing) int { return cmp.Compare(b.AreaOrZero(), a.AreaOrZero()) }
	default:
		return nil
	}
}
