package jsonld

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"classifieds/internal/domain"
)

const (
	schemaContext = "https://schema.org"
	currencyKZT   = "KZT"
	countryKZ     = "KZ"
)

// Generator — генератор JSON-LD разметки для объявлений.
type Generator struct{}

// NewGenerator создаёт новый генератор JSON-LD.
func NewGenerator() *Generator {
	return &Generator{}
}

// Markup — JSON-LD структура объявления (schema.org). Для недвижимости
// тип — RealEstateListing или его уточнение, для остальных объявлений — Product.
type Markup struct {
	Context     string `json:"@context"`
	Type        string `json:"@type"`
	ID          string `json:"@id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty"`
	DatePosted  string `json:"datePosted,omitempty"`
	Category    string `json:"category,omitempty"`

	// Цена
	Offers *Offer `json:"offers,omitempty"`

	// Местоположение
	Address *PostalAddress `json:"address,omitempty"`

	// Характеристики объекта
	FloorSize    *QuantitativeValue `json:"floorSize,omitempty"`
	PropertyType string             `json:"propertyType,omitempty"`

	Image []string `json:"image,omitempty"`

	AdditionalProperty []PropertyValue `json:"additionalProperty,omitempty"`
}

// Offer — предложение (цена) по schema.org.
type Offer struct {
	Type          string  `json:"@type"`
	Price         float64 `json:"price"`
	PriceCurrency string  `json:"priceCurrency"`
	Availability  string  `json:"availability,omitempty"`
}

// PostalAddress — почтовый адрес по schema.org.
type PostalAddress struct {
	Type            string `json:"@type"`
	StreetAddress   string `json:"streetAddress,omitempty"`
	AddressLocality string `json:"addressLocality,omitempty"` // Город
	AddressRegion   string `json:"addressRegion,omitempty"`   // Регион
	AddressCountry  string `json:"addressCountry,omitempty"`
}

// QuantitativeValue — количественное значение.
type QuantitativeValue struct {
	Type     string  `json:"@type"`
	Value    float64 `json:"value"`
	UnitCode string  `json:"unitCode"` // MTK для м²
	UnitText string  `json:"unitText,omitempty"`
}

// PropertyValue — дополнительное свойство.
type PropertyValue struct {
	Type  string `json:"@type"`
	Name  string `json:"name"`
	Value any    `json:"value"`
}

// Generate генерирует JSON-LD разметку для объявления.
func (g *Generator) Generate(l domain.Listing, baseURL string) (*Markup, error) {
	if l.ID == "" {
		return nil, fmt.Errorf("jsonld.Generate: listing id is empty")
	}

	url := fmt.Sprintf("%s/listing/%s", strings.TrimRight(baseURL, "/"), l.ID)
	m := &Markup{
		Context:     schemaContext,
		Type:        "Product",
		ID:          url,
		Name:        l.Title,
		Description: l.Description,
		URL:         url,
		Category:    l.CategoryID,
		Offers: &Offer{
			Type:          "Offer",
			Price:         l.DiscountPrice,
			PriceCurrency: currencyKZT,
			Availability:  "https://schema.org/InStock",
		},
		Image: l.Images,
	}
	if !l.CreatedAt.IsZero() {
		m.DatePosted = l.CreatedAt.UTC().Format(time.RFC3339)
	}

	if l.Address != "" || l.CityID != nil || l.RegionID != nil {
		m.Address = &PostalAddress{
			Type:           "PostalAddress",
			StreetAddress:  l.Address,
			AddressCountry: countryKZ,
		}
		if l.CityID != nil {
			m.Address.AddressLocality = *l.CityID
		}
		if l.RegionID != nil {
			m.Address.AddressRegion = *l.RegionID
		}
	}

	if l.Price > l.DiscountPrice {
		g.addProperty(m, "originalPrice", l.Price)
	}

	if !l.IsProperty() {
		return m, nil
	}

	m.Type = g.mapPropertyType(*l.PropertyType)
	m.PropertyType = g.mapPropertyTypeText(*l.PropertyType)

	// Площадь
	if l.Area != nil {
		m.FloorSize = &QuantitativeValue{
			Type:     "QuantitativeValue",
			Value:    *l.Area,
			UnitCode: "MTK", // Квадратные метры
			UnitText: "м²",
		}
	}

	if l.Floor != nil {
		g.addProperty(m, "floor", *l.Floor)
	}
	if l.BuildingType != nil {
		g.addProperty(m, "buildingType", l.BuildingType.String())
	}
	if l.RenovationType != nil {
		g.addProperty(m, "renovation", l.RenovationType.String())
	}
	if l.Bathroom != nil {
		g.addProperty(m, "bathroom", l.Bathroom.String())
	}
	if l.DistrictID != nil {
		g.addProperty(m, "district", *l.DistrictID)
	}

	return m, nil
}

// GenerateJSON генерирует JSON-LD в байтах.
func (g *Generator) GenerateJSON(l domain.Listing, baseURL string) ([]byte, error) {
	m, err := g.Generate(l, baseURL)
	if err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON-LD: %w", err)
	}

	return data, nil
}

func (g *Generator) addProperty(m *Markup, name string, value any) {
	m.AdditionalProperty = append(m.AdditionalProperty, PropertyValue{
		Type:  "PropertyValue",
		Name:  name,
		Value: value,
	})
}

// mapPropertyType преобразует тип недвижимости в schema.org тип.
func (g *Generator) mapPropertyType(pt domain.PropertyType) string {
	switch pt {
	case domain.PropertyTypeApartment:
		return "Apartment"
	case domain.PropertyTypeHouse:
		return "House"
	case domain.PropertyTypeRoom:
		return "Room"
	default:
		return "RealEstateListing"
	}
}

// mapPropertyTypeText возвращает текстовое описание типа.
func (g *Generator) mapPropertyTypeText(pt domain.PropertyType) string {
	switch pt {
	case domain.PropertyTypeApartment:
		return "Квартира"
	case domain.PropertyTypeHouse:
		return "Дом"
	case domain.PropertyTypeRoom:
		return "Комната"
	case domain.PropertyTypeCommercial:
		return "Коммерческая недвижимость"
	case domain.PropertyTypeLand:
		return "Земельный участок"
	case domain.PropertyTypeGarage:
		return "Гараж"
	default:
		return "Недвижимость"
	}
}
