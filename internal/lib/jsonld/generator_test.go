package jsonld

import (
	"encoding/json"
	"testing"
	"time"

	"classifieds/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func TestGenerate_Property(t *testing.T) {
	l := domain.Listing{
		ID:             "property-1",
		Title:          "2-комнатная квартира",
		Address:        "мкр. Самал-2, 58",
		CategoryID:     "property",
		Price:          42000000,
		DiscountPrice:  39500000,
		PropertyType:   ptr(domain.PropertyTypeApartment),
		Area:           ptr(64.0),
		Floor:          ptr(7),
		BuildingType:   ptr(domain.BuildingTypeMonolithic),
		RenovationType: ptr(domain.RenovationEuro),
		Bathroom:       ptr(domain.BathroomSeparate),
		RegionID:       ptr("almaty-region"),
		CityID:         ptr("almaty"),
		CreatedAt:      time.Date(2024, 5, 12, 10, 0, 0, 0, time.UTC),
	}

	m, err := NewGenerator().Generate(l, "https://example.kz/")
	require.NoError(t, err)

	assert.Equal(t, "https://schema.org", m.Context)
	assert.Equal(t, "Apartment", m.Type)
	assert.Equal(t, "https://example.kz/listing/property-1", m.URL)
	assert.Equal(t, "2024-05-12T10:00:00Z", m.DatePosted)
	assert.Equal(t, "Квартира", m.PropertyType)

	require.NotNil(t, m.Offers)
	assert.Equal(t, 39500000.0, m.Offers.Price)
	assert.Equal(t, "KZT", m.Offers.PriceCurrency)

	require.NotNil(t, m.Address)
	assert.Equal(t, "almaty", m.Address.AddressLocality)
	assert.Equal(t, "almaty-region", m.Address.AddressRegion)
	assert.Equal(t, "KZ", m.Address.AddressCountry)

	require.NotNil(t, m.FloorSize)
	assert.Equal(t, "MTK", m.FloorSize.UnitCode)
	assert.Equal(t, 64.0, m.FloorSize.Value)

	names := make(map[string]any)
	for _, p := range m.AdditionalProperty {
		names[p.Name] = p.Value
	}
	assert.Equal(t, 42000000.0, names["originalPrice"])
	assert.Equal(t, 7, names["floor"])
	assert.Equal(t, "monolithic", names["buildingType"])
	assert.Equal(t, "euro", names["renovation"])
	assert.Equal(t, "separate", names["bathroom"])
}

func TestGenerate_NonPropertyIsProduct(t *testing.T) {
	l := domain.Listing{ID: "transport-1", Title: "Toyota Camry", CategoryID: "transport", Price: 100, DiscountPrice: 100}

	m, err := NewGenerator().Generate(l, "https://example.kz")
	require.NoError(t, err)

	assert.Equal(t, "Product", m.Type)
	assert.Equal(t, "transport", m.Category)
	assert.Empty(t, m.PropertyType)
	assert.Nil(t, m.FloorSize)
	assert.Nil(t, m.Address)
	assert.Empty(t, m.AdditionalProperty)
	assert.Empty(t, m.DatePosted)
}

func TestGenerate_PropertyTypes(t *testing.T) {
	tests := []struct {
		pt   domain.PropertyType
		want string
	}{
		{domain.PropertyTypeApartment, "Apartment"},
		{domain.PropertyTypeHouse, "House"},
		{domain.PropertyTypeRoom, "Room"},
		{domain.PropertyTypeCommercial, "RealEstateListing"},
		{domain.PropertyTypeLand, "RealEstateListing"},
		{domain.PropertyTypeGarage, "RealEstateListing"},
	}

	for _, tt := range tests {
		t.Run(tt.pt.String(), func(t *testing.T) {
			m, err := NewGenerator().Generate(domain.Listing{ID: "x", PropertyType: ptr(tt.pt)}, "")
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.Type)
		})
	}
}

func TestGenerate_EmptyID(t *testing.T) {
	_, err := NewGenerator().Generate(domain.Listing{}, "https://example.kz")
	assert.Error(t, err)
}

func TestGenerateJSON(t *testing.T) {
	data, err := NewGenerator().GenerateJSON(domain.Listing{
		ID:            "property-6",
		PropertyType:  ptr(domain.PropertyTypeLand),
		DiscountPrice: 14000000,
	}, "https://example.kz")
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "https://schema.org", decoded["@context"])
	assert.Equal(t, "RealEstateListing", decoded["@type"])
	assert.NotContains(t, decoded, "floorSize")
}
