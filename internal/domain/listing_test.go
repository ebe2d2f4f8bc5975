package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSortOption(t *testing.T) {
	tests := []struct {
		in   string
		want SortOption
	}{
		{"price_asc", SortPriceAsc},
		{"PRICE_DESC", SortPriceDesc},
		{" area_asc ", SortAreaAsc},
		{"area_desc", SortAreaDesc},
		{"", SortNone},
		{"rating", SortNone},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSortOption(tt.in))
		})
	}
}

func TestEnumsValid(t *testing.T) {
	for _, pt := range PropertyTypes() {
		assert.True(t, pt.Valid(), pt.String())
	}
	assert.False(t, PropertyType("castle").Valid())
	assert.True(t, BuildingTypeMonolithic.Valid())
	assert.False(t, BuildingType("straw").Valid())
	assert.True(t, RenovationNeedsRepair.Valid())
	assert.False(t, RenovationType("").Valid())
	assert.True(t, BathroomCombined.Valid())
	assert.False(t, BathroomType("outdoor").Valid())
}

func TestPropertyTypes_ReturnsCopy(t *testing.T) {
	types := PropertyTypes()
	types[0] = "changed"
	assert.Equal(t, PropertyTypeApartment, PropertyTypes()[0])
}

func TestListing_IsPropertyAndArea(t *testing.T) {
	apartment := PropertyTypeApartment
	area := 42.5

	assert.False(t, Listing{}.IsProperty())
	assert.True(t, Listing{PropertyType: &apartment}.IsProperty())
	assert.Equal(t, 0.0, Listing{}.AreaOrZero())
	assert.Equal(t, 42.5, Listing{Area: &area}.AreaOrZero())
}
