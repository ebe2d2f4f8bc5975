// Package listingfilter — конвейер фильтрации и сортировки объявлений недвижимости.
//
// Конвейер состоит из двух стадий: фильтр (AND между измерениями, OR внутри
// множества) и устойчивая сортировка. Входной срез никогда не изменяется.
package listingfilter

import (
	"classifieds/internal/domain"

	"github.com/samber/lo"
	"golang.org/x/exp/constraints"
)

// Predicate — проверка одного объявления на попадание в выдачу.
type Predicate func(l domain.Listing) bool

// Apply прогоняет объявления через фильтр и сортировку по критериям c.
func Apply(listings []domain.Listing, c domain.FilterCriteria) []domain.Listing {
	filtered := Filter(listings, Predicates(c)...)
	sortInPlace(filtered, c.SortBy)
	return filtered
}

// Filter оставляет объявления недвижимости, прошедшие все предикаты.
// Объявления без PropertyType в конвейер не попадают.
func Filter(listings []domain.Listing, preds ...Predicate) []domain.Listing {
	return lo.Filter(listings, func(l domain.Listing, _ int) bool {
		if !l.IsProperty() {
			return false
		}
		for _, pred := range preds {
			if !pred(l) {
				return false
			}
		}
		return true
	})
}

// Predicates строит ровно по одному предикату на каждое заданное поле критериев.
// Незаданное поле (nil-указатель, пустое множество) не порождает предиката,
// поэтому пустые критерии пропускают все объявления недвижимости.
// Граница 0 считается заданной.
func Predicates(c domain.FilterCriteria) []Predicate {
	var preds []Predicate

	if len(c.PropertyTypes) > 0 {
		preds = append(preds, memberOf(func(l domain.Listing) *domain.PropertyType { return l.PropertyType }, c.PropertyTypes))
	}

	if c.PriceRange.Min != nil {
		minPrice := *c.PriceRange.Min
		preds = append(preds, func(l domain.Listing) bool { return l.DiscountPrice >= minPrice })
	}
	if c.PriceRange.Max != nil {
		maxPrice := *c.PriceRange.Max
		preds = append(preds, func(l domain.Listing) bool { return l.DiscountPrice <= maxPrice })
	}

	area := func(l domain.Listing) *float64 { return l.Area }
	if c.AreaRange.Min != nil {
		preds = append(preds, atLeast(area, *c.AreaRange.Min))
	}
	if c.AreaRange.Max != nil {
		preds = append(preds, atMost(area, *c.AreaRange.Max))
	}

	floor := func(l domain.Listing) *int { return l.Floor }
	if c.FloorRange.Min != nil {
		preds = append(preds, atLeast(floor, *c.FloorRange.Min))
	}
	if c.FloorRange.Max != nil {
		preds = append(preds, atMost(floor, *c.FloorRange.Max))
	}

	if len(c.BuildingTypes) > 0 {
		preds = append(preds, memberOf(func(l domain.Listing) *domain.BuildingType { return l.BuildingType }, c.BuildingTypes))
	}
	if len(c.RenovationTypes) > 0 {
		preds = append(preds, memberOf(func(l domain.Listing) *domain.RenovationType { return l.RenovationType }, c.RenovationTypes))
	}
	if len(c.BathroomTypes) > 0 {
		preds = append(preds, memberOf(func(l domain.Listing) *domain.BathroomType { return l.Bathroom }, c.BathroomTypes))
	}
	if len(c.Districts) > 0 {
		preds = append(preds, memberOf(func(l domain.Listing) *string { return l.DistrictID }, c.Districts))
	}

	if c.RegionID != nil {
		preds = append(preds, equals(func(l domain.Listing) *string { return l.RegionID }, *c.RegionID))
	}
	if c.CityID != nil {
		preds = append(preds, equals(func(l domain.Listing) *string { return l.CityID }, *c.CityID))
	}
	if c.MicrodistrictID != nil {
		preds = append(preds, equals(func(l domain.Listing) *string { return l.MicrodistrictID }, *c.MicrodistrictID))
	}

	return preds
}

// memberOf: поле задано и входит в множество.
func memberOf[T comparable](get func(domain.Listing) *T, set []T) Predicate {
	accepted := lo.Uniq(set)
	return func(l domain.Listing) bool {
		v := get(l)
		return v != nil && lo.Contains(accepted, *v)
	}
}

func atLeast[T constraints.Ordered](get func(domain.Listing) *T, bound T) Predicate {
	return func(l domain.Listing) bool {
		v := get(l)
		return v != nil && *v >= bound
	}
}

func atMost[T constraints.Ordered](get func(domain.Listing) *T, bound T) Predicate {
	return func(l domain.Listing) bool {
		v := get(l)
		return v != nil && *v <= bound
	}
}

// equals: у объявления без значения совпадения нет.
func equals(get func(domain.Listing) *string, want string) Predicate {
	return func(l domain.Listing) bool {
		v := get(l)
		return v != nil && *v == want
	}
}
