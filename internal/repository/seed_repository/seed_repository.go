package seed_repository

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"classifieds/internal/domain"
	"classifieds/internal/repository"

	"github.com/samber/lo"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed data/listings.json data/listings.schema.json
var dataFS embed.FS

const schemaURL = "listings.schema.json"

// SeedRepository — встроенный набор объявлений. Данные неизменны после загрузки.
type SeedRepository struct {
	log      *slog.Logger
	listings []domain.Listing
	byID     map[string]int
}

// New загружает встроенный набор объявлений.
func New(log *slog.Logger) (*SeedRepository, error) {
	const op = "seed_repository.New"

	data, err := dataFS.ReadFile("data/listings.json")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	repo, err := NewFromJSON(data, log)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return repo, nil
}

// NewFromJSON проверяет данные по схеме и строит репозиторий.
func NewFromJSON(data []byte, log *slog.Logger) (*SeedRepository, error) {
	const op = "seed_repository.NewFromJSON"

	if err := validate(data); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var records []listingRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%s: decode: %w", op, err)
	}

	listings := make([]domain.Listing, 0, len(records))
	byID := make(map[string]int, len(records))
	for _, rec := range records {
		if _, dup := byID[rec.ID]; dup {
			return nil, fmt.Errorf("%s: duplicate listing id %q", op, rec.ID)
		}
		byID[rec.ID] = len(listings)
		listings = append(listings, rec.toDomain())
	}

	log.Info("seed listings loaded",
		slog.String("op", op),
		slog.Int("total", len(listings)),
		slog.Int("property", lo.CountBy(listings, domain.Listing.IsProperty)),
	)

	return &SeedRepository{log: log, listings: listings, byID: byID}, nil
}

// ListAll — возвращает копию набора в исходном порядке.
func (r *SeedRepository) ListAll(_ context.Context) ([]domain.Listing, error) {
	return append([]domain.Listing(nil), r.listings...), nil
}

// GetByID — получает объявление по ID.
func (r *SeedRepository) GetByID(_ context.Context, id string) (domain.Listing, error) {
	const op = "SeedRepository.GetByID"

	idx, ok := r.byID[id]
	if !ok {
		return domain.Listing{}, fmt.Errorf("%s: %w", op, repository.ErrListingNotFound)
	}
	return r.listings[idx], nil
}

func validate(data []byte) error {
	schemaData, err := dataFS.ReadFile("data/listings.schema.json")
	if err != nil {
		return err
	}

	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft7
	if err := compiler.AddResource(schemaURL, bytes.NewReader(schemaData)); err != nil {
		return fmt.Errorf("schema: %w", err)
	}
	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return fmt.Errorf("schema: %w", err)
	}

	var doc any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("invalid seed data: %w", err)
	}
	return nil
}

// listingRecord — запись встроенного набора.
type listingRecord struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Address         string    `json:"address"`
	CategoryID      string    `json:"categoryId"`
	Images          []string  `json:"images"`
	Price           float64   `json:"price"`
	DiscountPrice   float64   `json:"discountPrice"`
	PropertyType    *string   `json:"propertyType"`
	Area            *float64  `json:"area"`
	Floor           *int      `json:"floor"`
	BuildingType    *string   `json:"buildingType"`
	RenovationType  *string   `json:"renovationType"`
	Bathroom        *string   `json:"bathroom"`
	RegionID        *string   `json:"regionId"`
	CityID          *string   `json:"cityId"`
	DistrictID      *string   `json:"districtId"`
	MicrodistrictID *string   `json:"microdistrictId"`
	CreatedAt       time.Time `json:"createdAt"`
	IsFeatured      bool      `json:"isFeatured"`
}

func (r listingRecord) toDomain() domain.Listing {
	return domain.Listing{
		ID:              r.ID,
		Title:           r.Title,
		Description:     r.Description,
		Address:         r.Address,
		CategoryID:      r.CategoryID,
		Images:          r.Images,
		Price:           r.Price,
		DiscountPrice:   r.DiscountPrice,
		PropertyType:    asEnum[domain.PropertyType](r.PropertyType),
		Area:            r.Area,
		Floor:           r.Floor,
		BuildingType:    asEnum[domain.BuildingType](r.BuildingType),
		RenovationType:  asEnum[domain.RenovationType](r.RenovationType),
		Bathroom:        asEnum[domain.BathroomType](r.Bathroom),
		RegionID:        r.RegionID,
		CityID:          r.CityID,
		DistrictID:      r.DistrictID,
		MicrodistrictID: r.MicrodistrictID,
		CreatedAt:       r.CreatedAt,
		IsFeatured:      r.IsFeatured,
	}
}

func asEnum[T ~string](s *string) *T {
	if s == nil {
		return nil
	}
	v := T(*s)
	return &v
}
