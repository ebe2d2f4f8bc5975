package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func TestRange_Contains(t *testing.T) {
	tests := []struct {
		name string
		r    Range[int]
		v    int
		want bool
	}{
		{name: "unbounded", r: Range[int]{}, v: -100, want: true},
		{name: "on min", r: Range[int]{Min: ptr(1)}, v: 1, want: true},
		{name: "below min", r: Range[int]{Min: ptr(1)}, v: 0, want: false},
		{name: "on max", r: Range[int]{Max: ptr(5)}, v: 5, want: true},
		{name: "above max", r: Range[int]{Max: ptr(5)}, v: 6, want: false},
		{name: "inside", r: Range[int]{Min: ptr(1), Max: ptr(5)}, v: 3, want: true},
		{name: "zero bound", r: Range[int]{Min: ptr(0)}, v: -1, want: false},
		{name: "inverted range matches nothing", r: Range[int]{Min: ptr(5), Max: ptr(1)}, v: 3, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.r.Contains(tt.v))
		})
	}
}

func TestRange_IsSet(t *testing.T) {
	assert.False(t, Range[float64]{}.IsSet())
	assert.True(t, Range[float64]{Min: ptr(0.0)}.IsSet())
	assert.True(t, Range[float64]{Max: ptr(0.0)}.IsSet())
}

func TestFilterCriteria_CloneIsDeep(t *testing.T) {
	c := FilterCriteria{
		PropertyTypes: []PropertyType{PropertyTypeApartment},
		PriceRange:    Range[float64]{Min: ptr(10.0)},
		Districts:     []string{"alatau-district"},
		CityID:        ptr("almaty"),
		SortBy:        SortPriceAsc,
	}

	clone := c.Clone()
	require.Equal(t, c, clone)

	clone.PropertyTypes[0] = PropertyTypeHouse
	*clone.PriceRange.Min = 99
	clone.Districts[0] = "other"
	*clone.CityID = "astana"

	assert.Equal(t, PropertyTypeApartment, c.PropertyTypes[0])
	assert.Equal(t, 10.0, *c.PriceRange.Min)
	assert.Equal(t, "alatau-district", c.Districts[0])
	assert.Equal(t, "almaty", *c.CityID)
}

func TestFilterCriteria_ActiveCount(t *testing.T) {
	assert.Equal(t, 0, FilterCriteria{}.ActiveCount())
	assert.True(t, FilterCriteria{}.IsEmpty())

	sortOnly := FilterCriteria{SortBy: SortAreaDesc}
	assert.Equal(t, 0, sortOnly.ActiveCount())
	assert.False(t, sortOnly.IsEmpty())

	full := FilterCriteria{
		PropertyTypes:   []PropertyType{PropertyTypeRoom},
		PriceRange:      Range[float64]{Max: ptr(1.0)},
		AreaRange:       Range[float64]{Min: ptr(1.0)},
		FloorRange:      Range[int]{Min: ptr(1)},
		BuildingTypes:   []BuildingType{BuildingTypeBlock},
		RenovationTypes: []RenovationType{RenovationNone},
		BathroomTypes:   []BathroomType{BathroomMultiple},
		Districts:       []string{"x"},
		RegionID:        ptr("r"),
		CityID:          ptr("c"),
		MicrodistrictID: ptr("m"),
	}
	assert.Equal(t, 11, full.ActiveCount())

	assert.Equal(t, 0, FilterCriteria{PropertyTypes: []PropertyType{}}.ActiveCount(), "empty set is not active")
}
