package listingfilter

import (
	"testing"

	"classifieds/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestSort(t *testing.T) {
	listings := []domain.Listing{
		{ID: "a", DiscountPrice: 300, Area: ptr(40.0)},
		{ID: "b", DiscountPrice: 100},
		{ID: "c", DiscountPrice: 200, Area: ptr(80.0)},
		{ID: "d", DiscountPrice: 100, Area: ptr(40.0)},
	}

	tests := []struct {
		name string
		opt  domain.SortOption
		want []string
	}{
		{name: "price ascending, ties keep order", opt: domain.SortPriceAsc, want: []string{"b", "d", "c", "a"}},
		{name: "price descending, ties keep order", opt: domain.SortPriceDesc, want: []string{"a", "c", "b", "d"}},
		{name: "area ascending treats missing as zero", opt: domain.SortAreaAsc, want: []string{"b", "a", "d", "c"}},
		{name: "area descending treats missing as zero", opt: domain.SortAreaDesc, want: []string{"c", "a", "d", "b"}},
		{name: "none keeps order", opt: domain.SortNone, want: []string{"a", "b", "c", "d"}},
		{name: "unknown keeps order", opt: domain.SortOption("rating_desc"), want: []string{"a", "b", "c", "d"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sort(listings, tt.opt)
			assert.Equal(t, tt.want, ids(got))
			assert.Equal(t, []string{"a", "b", "c", "d"}, ids(listings))
		})
	}
}

func TestSort_StableForEqualKeys(t *testing.T) {
	listings := make([]domain.Listing, 0, 20)
	for _, id := range []string{"k1", "k2", "k3", "k4", "k5", "k6", "k7", "k8", "k9", "k10"} {
		listings = append(listings, domain.Listing{ID: id, DiscountPrice: 10})
	}

	assert.Equal(t, ids(listings), ids(Sort(listings, domain.SortPriceAsc)))
	assert.Equal(t, ids(listings), ids(Sort(listings, domain.SortPriceDesc)))
	assert.Equal(t, ids(listings), ids(Sort(listings, domain.SortAreaDesc)))
}
