package seed_repository

import (
	"context"
	"testing"

	"classifieds/internal/domain"
	"classifieds/internal/lib/logger/handlers/slogdiscard"
	"classifieds/internal/repository"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_LoadsEmbeddedDataset(t *testing.T) {
	repo, err := New(slogdiscard.NewDiscardLogger())
	require.NoError(t, err)

	listings, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, listings)

	property := lo.Filter(listings, func(l domain.Listing, _ int) bool { return l.IsProperty() })
	assert.NotEmpty(t, property)
	assert.Less(t, len(property), len(listings), "dataset mixes property and non-property listings")

	for _, l := range listings {
		assert.GreaterOrEqual(t, l.DiscountPrice, 0.0, l.ID)
		if l.PropertyType != nil {
			assert.True(t, l.PropertyType.Valid(), l.ID)
		}
	}
}

func TestListAll_ReturnsCopy(t *testing.T) {
	repo, err := New(slogdiscard.NewDiscardLogger())
	require.NoError(t, err)

	first, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	originalID := first[0].ID
	first[0].ID = "mutated"

	second, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, originalID, second[0].ID)
}

func TestGetByID(t *testing.T) {
	repo, err := New(slogdiscard.NewDiscardLogger())
	require.NoError(t, err)

	l, err := repo.GetByID(context.Background(), "property-1")
	require.NoError(t, err)
	require.NotNil(t, l.PropertyType)
	assert.Equal(t, domain.PropertyTypeApartment, *l.PropertyType)
	require.NotNil(t, l.MicrodistrictID)
	assert.Equal(t, "samal-2", *l.MicrodistrictID)

	_, err = repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, repository.ErrListingNotFound)
}

func TestNewFromJSON(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr bool
		wantLen int
	}{
		{
			name:    "valid minimal record",
			data:    `[{"id":"a","title":"A","categoryId":"property","price":10,"discountPrice":5,"propertyType":"room","createdAt":"2024-01-01T00:00:00Z"}]`,
			wantLen: 1,
		},
		{
			name:    "empty dataset",
			data:    `[]`,
			wantLen: 0,
		},
		{
			name:    "negative discount price",
			data:    `[{"id":"a","title":"A","categoryId":"property","price":10,"discountPrice":-1,"createdAt":"2024-01-01T00:00:00Z"}]`,
			wantErr: true,
		},
		{
			name:    "unknown property type",
			data:    `[{"id":"a","title":"A","categoryId":"property","price":10,"discountPrice":5,"propertyType":"castle","createdAt":"2024-01-01T00:00:00Z"}]`,
			wantErr: true,
		},
		{
			name:    "missing required field",
			data:    `[{"id":"a","categoryId":"property","price":10,"discountPrice":5,"createdAt":"2024-01-01T00:00:00Z"}]`,
			wantErr: true,
		},
		{
			name:    "duplicate id",
			data:    `[{"id":"a","title":"A","categoryId":"x","price":1,"discountPrice":1,"createdAt":"2024-01-01T00:00:00Z"},{"id":"a","title":"B","categoryId":"x","price":1,"discountPrice":1,"createdAt":"2024-01-01T00:00:00Z"}]`,
			wantErr: true,
		},
		{
			name:    "not json",
			data:    `{`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, err := NewFromJSON([]byte(tt.data), slogdiscard.NewDiscardLogger())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			listings, err := repo.ListAll(context.Background())
			require.NoError(t, err)
			assert.Len(t, listings, tt.wantLen)
		})
	}
}

func TestValidate(t *testing.T) {
	embedded, err := dataFS.ReadFile("data/listings.json")
	require.NoError(t, err)
	require.NoError(t, validate(embedded))

	require.NoError(t, validate([]byte(`[{"id":"a","title":"A","categoryId":"x","price":12345678901234567890,"discountPrice":0,"createdAt":"2024-01-01T00:00:00Z"}]`)))

	err = validate([]byte(`[{"id":"a","title":"A","categoryId":"x","price":1,"discountPrice":-0.5,"createdAt":"2024-01-01T00:00:00Z"}]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid seed data")

	err = validate([]byte(`[`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}
