package propertyhttp

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"classifieds/internal/domain"

	"github.com/samber/lo"
)

// ErrBadQuery — некорректный query-параметр.
var ErrBadQuery = errors.New("bad query")

// parseCriteria собирает критерии из query-строки stateless-поиска.
func parseCriteria(q url.Values) (domain.FilterCriteria, error) {
	var c domain.FilterCriteria
	var err error

	if c.PropertyTypes, err = parseEnums[domain.PropertyType](multi(q, "type"), "property type"); err != nil {
		return c, fmt.Errorf("%w: %v", ErrBadQuery, err)
	}
	if c.BuildingTypes, err = parseEnums[domain.BuildingType](multi(q, "building"), "building type"); err != nil {
		return c, fmt.Errorf("%w: %v", ErrBadQuery, err)
	}
	if c.RenovationTypes, err = parseEnums[domain.RenovationType](multi(q, "renovation"), "renovation type"); err != nil {
		return c, fmt.Errorf("%w: %v", ErrBadQuery, err)
	}
	if c.BathroomTypes, err = parseEnums[domain.BathroomType](multi(q, "bathroom"), "bathroom type"); err != nil {
		return c, fmt.Errorf("%w: %v", ErrBadQuery, err)
	}

	if c.PriceRange, err = floatRange(q, "price_min", "price_max"); err != nil {
		return c, err
	}
	if c.AreaRange, err = floatRange(q, "area_min", "area_max"); err != nil {
		return c, err
	}
	if c.FloorRange, err = intRange(q, "floor_min", "floor_max"); err != nil {
		return c, err
	}

	c.Districts = normalizeIDs(multi(q, "district"))
	c.RegionID = locationParam(q, "region")
	c.CityID = locationParam(q, "city")
	c.MicrodistrictID = locationParam(q, "microdistrict")
	c.SortBy = domain.ParseSortOption(q.Get("sort"))

	c.PropertyTypes = lo.Uniq(c.PropertyTypes)
	c.BuildingTypes = lo.Uniq(c.BuildingTypes)
	c.RenovationTypes = lo.Uniq(c.RenovationTypes)
	c.BathroomTypes = lo.Uniq(c.BathroomTypes)

	return emptySetsToNil(c), nil
}

// parsePager читает page/per_page. Отсутствующие значения дают nil-границы пейджера.
func parsePager(q url.Values) (*domain.Pager, error) {
	page, err := optionalInt(q, "page")
	if err != nil {
		return nil, err
	}
	perPage, err := optionalInt(q, "per_page")
	if err != nil {
		return nil, err
	}
	return domain.NewPager(int32(lo.FromPtr(page)), int32(lo.FromPtr(perPage))), nil
}

// multi поддерживает и повтор параметра, и список через запятую.
func multi(q url.Values, key string) []string {
	var out []string
	for _, raw := range q[key] {
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func floatRange(q url.Values, minKey, maxKey string) (domain.Range[float64], error) {
	from, err := optionalFloat(q, minKey)
	if err != nil {
		return domain.Range[float64]{}, err
	}
	to, err := optionalFloat(q, maxKey)
	if err != nil {
		return domain.Range[float64]{}, err
	}
	return domain.Range[float64]{Min: from, Max: to}, nil
}

func intRange(q url.Values, minKey, maxKey string) (domain.Range[int], error) {
	from, err := optionalInt(q, minKey)
	if err != nil {
		return domain.Range[int]{}, err
	}
	to, err := optionalInt(q, maxKey)
	if err != nil {
		return domain.Range[int]{}, err
	}
	return domain.Range[int]{Min: from, Max: to}, nil
}

func optionalFloat(q url.Values, key string) (*float64, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, fmt.Errorf("%w: %s must be a finite number", ErrBadQuery, key)
	}
	return &v, nil
}

func optionalInt(q url.Values, key string) (*int, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be a 32-bit integer", ErrBadQuery, key)
	}
	n := int(v)
	return &n, nil
}

func locationParam(q url.Values, key string) *string {
	id := domain.NormalizeLocationID(q.Get(key))
	if id == "" {
		return nil
	}
	return &id
}

func emptySetsToNil(c domain.FilterCriteria) domain.FilterCriteria {
	if len(c.PropertyTypes) == 0 {
		c.PropertyTypes = nil
	}
	if len(c.BuildingTypes) == 0 {
		c.BuildingTypes = nil
	}
	if len(c.RenovationTypes) == 0 {
		c.RenovationTypes = nil
	}
	if len(c.BathroomTypes) == 0 {
		c.BathroomTypes = nil
	}
	if len(c.Districts) == 0 {
		c.Districts = nil
	}
	return c
}
