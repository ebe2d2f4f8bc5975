package dto

import (
	"encoding/json"
	"testing"

	"classifieds/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromListing(t *testing.T) {
	pt := domain.PropertyTypeHouse
	b := domain.BuildingTypeWood

	got := FromListing(domain.Listing{ID: "x", DiscountPrice: 10, PropertyType: &pt, BuildingType: &b})

	require.NotNil(t, got.PropertyType)
	assert.Equal(t, "house", *got.PropertyType)
	require.NotNil(t, got.BuildingType)
	assert.Equal(t, "wood", *got.BuildingType)
	assert.Nil(t, got.Bathroom)
	assert.NotNil(t, got.Images)

	data, err := json.Marshal(got)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"images":[]`)
	assert.NotContains(t, string(data), "bathroom")
}

func TestFromListings_NeverNil(t *testing.T) {
	assert.NotNil(t, FromListings(nil))
	assert.Len(t, FromListings([]domain.Listing{{ID: "a"}, {ID: "b"}}), 2)
}
