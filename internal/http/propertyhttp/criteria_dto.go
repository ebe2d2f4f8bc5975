package propertyhttp

import (
	"fmt"
	"strings"

	"classifieds/internal/domain"
	"classifieds/internal/services/criteria"

	"github.com/samber/lo"
)

type floatRangeDTO struct {
	Min *float64 `json:"min"`
	Max *float64 `json:"max"`
}

type intRangeDTO struct {
	Min *int `json:"min"`
	Max *int `json:"max"`
}

// criteriaDTO — снимок критериев в ответах API.
type criteriaDTO struct {
	PropertyTypes   []string      `json:"property_types"`
	PriceRange      floatRangeDTO `json:"price_range"`
	AreaRange       floatRangeDTO `json:"area_range"`
	FloorRange      intRangeDTO   `json:"floor_range"`
	BuildingTypes   []string      `json:"building_types"`
	RenovationTypes []string      `json:"renovation_types"`
	BathroomTypes   []string      `json:"bathroom_types"`
	Districts       []string      `json:"districts"`
	RegionID        *string       `json:"region_id"`
	CityID          *string       `json:"city_id"`
	MicrodistrictID *string       `json:"microdistrict_id"`
	SortBy          string        `json:"sort"`
}

func criteriaToDTO(c domain.FilterCriteria) criteriaDTO {
	return criteriaDTO{
		PropertyTypes:   enumStrings(c.PropertyTypes),
		PriceRange:      floatRangeDTO{Min: c.PriceRange.Min, Max: c.PriceRange.Max},
		AreaRange:       floatRangeDTO{Min: c.AreaRange.Min, Max: c.AreaRange.Max},
		FloorRange:      intRangeDTO{Min: c.FloorRange.Min, Max: c.FloorRange.Max},
		BuildingTypes:   enumStrings(c.BuildingTypes),
		RenovationTypes: enumStrings(c.RenovationTypes),
		BathroomTypes:   enumStrings(c.BathroomTypes),
		Districts:       lo.Ternary(c.Districts == nil, []string{}, c.Districts),
		RegionID:        c.RegionID,
		CityID:          c.CityID,
		MicrodistrictID: c.MicrodistrictID,
		SortBy:          c.SortBy.String(),
	}
}

func enumStrings[T ~string](values []T) []string {
	return lo.Map(values, func(v T, _ int) string { return string(v) })
}

// patchRequest — тело PATCH сессии. Отсутствующее поле не меняется,
// пустой массив или пустая строка сбрасывают его.
type patchRequest struct {
	PropertyTypes   *[]string      `json:"property_types"`
	PriceRange      *floatRangeDTO `json:"price_range"`
	AreaRange       *floatRangeDTO `json:"area_range"`
	FloorRange      *intRangeDTO   `json:"floor_range"`
	BuildingTypes   *[]string      `json:"building_types"`
	RenovationTypes *[]string      `json:"renovation_types"`
	BathroomTypes   *[]string      `json:"bathroom_types"`
	Districts       *[]string      `json:"districts"`
	RegionID        *string        `json:"region_id"`
	CityID          *string        `json:"city_id"`
	MicrodistrictID *string        `json:"microdistrict_id"`
	SortBy          *string        `json:"sort"`
}

func (req patchRequest) toPatch() (criteria.Patch, error) {
	var p criteria.Patch
	var err error

	if p.PropertyTypes, err = parseEnumSet[domain.PropertyType](req.PropertyTypes, "property type"); err != nil {
		return criteria.Patch{}, err
	}
	if p.BuildingTypes, err = parseEnumSet[domain.BuildingType](req.BuildingTypes, "building type"); err != nil {
		return criteria.Patch{}, err
	}
	if p.RenovationTypes, err = parseEnumSet[domain.RenovationType](req.RenovationTypes, "renovation type"); err != nil {
		return criteria.Patch{}, err
	}
	if p.BathroomTypes, err = parseEnumSet[domain.BathroomType](req.BathroomTypes, "bathroom type"); err != nil {
		return criteria.Patch{}, err
	}

	if req.PriceRange != nil {
		p.PriceRange = &domain.Range[float64]{Min: req.PriceRange.Min, Max: req.PriceRange.Max}
	}
	if req.AreaRange != nil {
		p.AreaRange = &domain.Range[float64]{Min: req.AreaRange.Min, Max: req.AreaRange.Max}
	}
	if req.FloorRange != nil {
		p.FloorRange = &domain.Range[int]{Min: req.FloorRange.Min, Max: req.FloorRange.Max}
	}

	if req.Districts != nil {
		districts := normalizeIDs(*req.Districts)
		p.Districts = &districts
	}
	p.RegionID = normalizeIDPtr(req.RegionID)
	p.CityID = normalizeIDPtr(req.CityID)
	p.MicrodistrictID = normalizeIDPtr(req.MicrodistrictID)

	if req.SortBy != nil {
		sort := domain.ParseSortOption(*req.SortBy)
		p.SortBy = &sort
	}

	return p, nil
}

type validEnum interface {
	~string
	Valid() bool
}

func parseEnumSet[T validEnum](raw *[]string, kind string) (*[]T, error) {
	if raw == nil {
		return nil, nil
	}
	set, err := parseEnums[T](*raw, kind)
	if err != nil {
		return nil, err
	}
	return &set, nil
}

func parseEnums[T validEnum](raw []string, kind string) ([]T, error) {
	values := make([]T, 0, len(raw))
	for _, s := range raw {
		v := T(strings.ToLower(strings.TrimSpace(s)))
		if !v.Valid() {
			return nil, fmt.Errorf("unknown %s %q", kind, s)
		}
		values = append(values, v)
	}
	return values, nil
}

func normalizeIDs(ids []string) []string {
	return lo.Uniq(lo.FilterMap(ids, func(id string, _ int) (string, bool) {
		n := domain.NormalizeLocationID(id)
		return n, n != ""
	}))
}

func normalizeIDPtr(id *string) *string {
	if id == nil {
		return nil
	}
	n := domain.NormalizeLocationID(*id)
	return &n
}
