package domain

import (
	"golang.org/x/exp/constraints"
)

// Range — диапазон с закрытыми границами. nil-граница означает отсутствие ограничения.
type Range[T constraints.Ordered] struct {
	Min *T
	Max *T
}

// IsSet сообщает, задана ли хотя бы одна граница.
func (r Range[T]) IsSet() bool {
	return r.Min != nil || r.Max != nil
}

// Contains проверяет v на попадание в диапазон (границы включаются).
func (r Range[T]) Contains(v T) bool {
	if r.Min != nil && v < *r.Min {
		return false
	}
	if r.Max != nil && v > *r.Max {
		return false
	}
	return true
}

// Clone возвращает копию без общих указателей.
func (r Range[T]) Clone() Range[T] {
	return Range[T]{Min: clonePtr(r.Min), Max: clonePtr(r.Max)}
}

// FilterCriteria — текущий выбор пользователя на странице недвижимости.
//
// Каждое поле опционально по типу: nil-указатель, пустой срез или SortNone
// не накладывают ограничений.
type FilterCriteria struct {
	PropertyTypes []PropertyType

	PriceRange Range[float64]
	AreaRange  Range[float64]
	FloorRange Range[int]

	BuildingTypes   []BuildingType
	RenovationTypes []RenovationType
	BathroomTypes   []BathroomType

	Districts       []string
	RegionID        *string
	CityID          *string
	MicrodistrictID *string

	SortBy SortOption
}

// Clone возвращает глубокую копию критериев.
func (c FilterCriteria) Clone() FilterCriteria {
	return FilterCriteria{
		PropertyTypes:   cloneSlice(c.PropertyTypes),
		PriceRange:      c.PriceRange.Clone(),
		AreaRange:       c.AreaRange.Clone(),
		FloorRange:      c.FloorRange.Clone(),
		BuildingTypes:   cloneSlice(c.BuildingTypes),
		RenovationTypes: cloneSlice(c.RenovationTypes),
		BathroomTypes:   cloneSlice(c.BathroomTypes),
		Districts:       cloneSlice(c.Districts),
		RegionID:        clonePtr(c.RegionID),
		CityID:          clonePtr(c.CityID),
		MicrodistrictID: clonePtr(c.MicrodistrictID),
		SortBy:          c.SortBy,
	}
}

// ActiveCount — количество активных измерений фильтра (сортировка не считается).
func (c FilterCriteria) ActiveCount() int {
	count := 0
	for _, active := range []bool{
		len(c.PropertyTypes) > 0,
		c.PriceRange.IsSet(),
		c.AreaRange.IsSet(),
		c.FloorRange.IsSet(),
		len(c.BuildingTypes) > 0,
		len(c.RenovationTypes) > 0,
		len(c.BathroomTypes) > 0,
		len(c.Districts) > 0,
		c.RegionID != nil,
		c.CityID != nil,
		c.MicrodistrictID != nil,
	} {
		if active {
			count++
		}
	}
	return count
}

// IsEmpty сообщает, что не задано ни одного фильтра и сортировки.
func (c FilterCriteria) IsEmpty() bool {
	return c.ActiveCount() == 0 && c.SortBy == SortNone
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	return append(make([]T, 0, len(s)), s...)
}
