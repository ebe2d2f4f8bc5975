package criteria

import (
	"net/url"
	"testing"

	"classifieds/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeepLink(t *testing.T) {
	tests := []struct {
		name     string
		criteria domain.FilterCriteria
		want     url.Values
	}{
		{
			name:     "empty criteria",
			criteria: domain.FilterCriteria{},
			want:     url.Values{},
		},
		{
			name: "only first type is projected",
			criteria: domain.FilterCriteria{
				PropertyTypes: []domain.PropertyType{domain.PropertyTypeHouse, domain.PropertyTypeApartment},
				PriceRange:    domain.Range[float64]{Min: ptr(10.0)},
				CityID:        ptr("almaty"),
			},
			want: url.Values{"type": {"house"}},
		},
		{
			name:     "other dimensions are dropped",
			criteria: domain.FilterCriteria{Districts: []string{"alatau-district"}, SortBy: domain.SortPriceAsc},
			want:     url.Values{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeepLink(tt.criteria))
		})
	}
}

func TestFromDeepLink(t *testing.T) {
	t.Run("restores type", func(t *testing.T) {
		p := FromDeepLink(url.Values{"type": {"Apartment"}, "price_min": {"100"}})
		require.NotNil(t, p.PropertyTypes)
		assert.Equal(t, []domain.PropertyType{domain.PropertyTypeApartment}, *p.PropertyTypes)
		assert.Nil(t, p.PriceRange, "only type is restored")
	})

	t.Run("missing type", func(t *testing.T) {
		assert.True(t, FromDeepLink(url.Values{}).IsEmpty())
	})

	t.Run("unknown type", func(t *testing.T) {
		assert.True(t, FromDeepLink(url.Values{"type": {"castle"}}).IsEmpty())
	})
}

func TestDeepLink_RoundTripIsLossy(t *testing.T) {
	original := domain.FilterCriteria{
		PropertyTypes: []domain.PropertyType{domain.PropertyTypeLand, domain.PropertyTypeGarage},
		AreaRange:     domain.Range[float64]{Max: ptr(1000.0)},
	}

	restored := FromDeepLink(DeepLink(original)).Apply(domain.FilterCriteria{})

	assert.Equal(t, []domain.PropertyType{domain.PropertyTypeLand}, restored.PropertyTypes)
	assert.False(t, restored.AreaRange.IsSet())
}
