package dto

import (
	"time"

	"classifieds/internal/domain"

	"github.com/samber/lo"
)

// Listing — объявление в ответах API.
type Listing struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	Address         string    `json:"address,omitempty"`
	CategoryID      string    `json:"category_id"`
	Images          []string  `json:"images"`
	Price           float64   `json:"price"`
	DiscountPrice   float64   `json:"discount_price"`
	PropertyType    *string   `json:"property_type,omitempty"`
	Area            *float64  `json:"area,omitempty"`
	Floor           *int      `json:"floor,omitempty"`
	BuildingType    *string   `json:"building_type,omitempty"`
	RenovationType  *string   `json:"renovation_type,omitempty"`
	Bathroom        *string   `json:"bathroom,omitempty"`
	RegionID        *string   `json:"region_id,omitempty"`
	CityID          *string   `json:"city_id,omitempty"`
	DistrictID      *string   `json:"district_id,omitempty"`
	MicrodistrictID *string   `json:"microdistrict_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	IsFeatured      bool      `json:"is_featured"`
}

func FromListing(l domain.Listing) Listing {
	images := l.Images
	if images == nil {
		images = []string{}
	}
	return Listing{
		ID:              l.ID,
		Title:           l.Title,
		Description:     l.Description,
		Address:         l.Address,
		CategoryID:      l.CategoryID,
		Images:          images,
		Price:           l.Price,
		DiscountPrice:   l.DiscountPrice,
		PropertyType:    enumString(l.PropertyType),
		Area:            l.Area,
		Floor:           l.Floor,
		BuildingType:    enumString(l.BuildingType),
		RenovationType:  enumString(l.RenovationType),
		Bathroom:        enumString(l.Bathroom),
		RegionID:        l.RegionID,
		CityID:          l.CityID,
		DistrictID:      l.DistrictID,
		MicrodistrictID: l.MicrodistrictID,
		CreatedAt:       l.CreatedAt,
		IsFeatured:      l.IsFeatured,
	}
}

// FromListings сохраняет порядок и никогда не возвращает nil.
func FromListings(listings []domain.Listing) []Listing {
	return lo.Map(listings, func(l domain.Listing, _ int) Listing { return FromListing(l) })
}

func enumString[T ~string](v *T) *string {
	if v == nil {
		return nil
	}
	s := string(*v)
	return &s
}

// LocalizedName — название на двух языках.
type LocalizedName struct {
	RU string `json:"ru"`
	KZ string `json:"kz"`
}

func FromLocalizedName(n domain.LocalizedName) LocalizedName {
	return LocalizedName{RU: n.RU, KZ: n.KZ}
}
