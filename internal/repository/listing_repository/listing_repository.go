package listing_repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"classifieds/internal/domain"
	"classifieds/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ListingRepository — источник объявлений в Postgres (таблица listings).
type ListingRepository struct {
	db  *pgxpool.Pool
	log *slog.Logger
}

func NewListingRepository(db *pgxpool.Pool, log *slog.Logger) *ListingRepository {
	return &ListingRepository{db: db, log: log}
}

const listingColumns = `
	listing_id, title, description, address, category_id, images,
	price, discount_price,
	property_type, area, floor, building_type, renovation_type, bathroom,
	region_id, city_id, district_id, microdistrict_id,
	is_featured, created_at
`

// ListAll — возвращает все объявления в порядке выдачи источника.
func (r *ListingRepository) ListAll(ctx context.Context) ([]domain.Listing, error) {
	const op = "ListingRepository.ListAll"

	query := `SELECT ` + listingColumns + ` FROM listings ORDER BY position, listing_id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	listings := make([]domain.Listing, 0)
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan failed: %w", op, err)
		}
		listings = append(listings, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows error: %w", op, err)
	}

	r.log.Debug("listings loaded", slog.String("op", op), slog.Int("count", len(listings)))
	return listings, nil
}

// GetByID — получает объявление по ID.
func (r *ListingRepository) GetByID(ctx context.Context, id string) (domain.Listing, error) {
	const op = "ListingRepository.GetByID"

	query := `SELECT ` + listingColumns + ` FROM listings WHERE listing_id = $1`

	l, err := scanListing(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Listing{}, fmt.Errorf("%s: %w", op, repository.ErrListingNotFound)
		}
		return domain.Listing{}, fmt.Errorf("%s: %w", op, err)
	}

	return l, nil
}

// schema — DDL таблицы listings.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS listings (
		listing_id       TEXT PRIMARY KEY,
		title            TEXT             NOT NULL,
		description      TEXT             NOT NULL DEFAULT '',
		address          TEXT             NOT NULL DEFAULT '',
		category_id      TEXT             NOT NULL,
		images           TEXT[],
		price            DOUBLE PRECISION NOT NULL,
		discount_price   DOUBLE PRECISION NOT NULL CHECK (discount_price >= 0),
		property_type    TEXT,
		area             DOUBLE PRECISION,
		floor            INT,
		building_type    TEXT,
		renovation_type  TEXT,
		bathroom         TEXT,
		region_id        TEXT,
		city_id          TEXT,
		district_id      TEXT,
		microdistrict_id TEXT,
		is_featured      BOOLEAN          NOT NULL DEFAULT FALSE,
		created_at       TIMESTAMPTZ      NOT NULL DEFAULT NOW(),
		position         INT              NOT NULL DEFAULT 0
	)`,
	"CREATE INDEX IF NOT EXISTS listings_position_idx ON listings (position)",
	"CREATE INDEX IF NOT EXISTS listings_category_idx ON listings (category_id)",
}

// EnsureSchema создаёт таблицу listings, если её ещё нет.
func (r *ListingRepository) EnsureSchema(ctx context.Context) error {
	const op = "ListingRepository.EnsureSchema"

	for _, stmt := range schema {
		if _, err := r.db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}
	return nil
}

// DropSchema удаляет таблицу listings.
func (r *ListingRepository) DropSchema(ctx context.Context) error {
	const op = "ListingRepository.DropSchema"

	if _, err := r.db.Exec(ctx, "DROP TABLE IF EXISTS listings CASCADE"); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ReplaceAll — атомарно заменяет содержимое таблицы. Порядок среза сохраняется в position.
func (r *ListingRepository) ReplaceAll(ctx context.Context, listings []domain.Listing) error {
	const op = "ListingRepository.ReplaceAll"

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: begin: %w", op, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM listings`); err != nil {
		return fmt.Errorf("%s: delete: %w", op, err)
	}

	query := `
		INSERT INTO listings (
			listing_id, title, description, address, category_id, images,
			price, discount_price,
			property_type, area, floor, building_type, renovation_type, bathroom,
			region_id, city_id, district_id, microdistrict_id,
			is_featured, created_at, position
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
	`

	batch := &pgx.Batch{}
	for i, l := range listings {
		batch.Queue(query,
			l.ID,
			l.Title,
			l.Description,
			l.Address,
			l.CategoryID,
			l.Images,
			l.Price,
			l.DiscountPrice,
			enumToText(l.PropertyType),
			l.Area,
			l.Floor,
			enumToText(l.BuildingType),
			enumToText(l.RenovationType),
			enumToText(l.Bathroom),
			l.RegionID,
			l.CityID,
			l.DistrictID,
			l.MicrodistrictID,
			l.IsFeatured,
			l.CreatedAt,
			i,
		)
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("%s: insert: %w", op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: commit: %w", op, err)
	}

	r.log.Info("listings replaced", slog.String("op", op), slog.Int("count", len(listings)))
	return nil
}

func scanListing(row pgx.Row) (domain.Listing, error) {
	var l domain.Listing
	var propertyType, buildingType, renovationType, bathroom *string
	var images []string

	err := row.Scan(
		&l.ID,
		&l.Title,
		&l.Description,
		&l.Address,
		&l.CategoryID,
		&images,
		&l.Price,
		&l.DiscountPrice,
		&propertyType,
		&l.Area,
		&l.Floor,
		&buildingType,
		&renovationType,
		&bathroom,
		&l.RegionID,
		&l.CityID,
		&l.DistrictID,
		&l.MicrodistrictID,
		&l.IsFeatured,
		&l.CreatedAt,
	)
	if err != nil {
		return domain.Listing{}, err
	}

	l.Images = images
	l.PropertyType = textToEnum[domain.PropertyType](propertyType)
	l.BuildingType = textToEnum[domain.BuildingType](buildingType)
	l.RenovationType = textToEnum[domain.RenovationType](renovationType)
	l.Bathroom = textToEnum[domain.BathroomType](bathroom)

	return l, nil
}

func textToEnum[T ~string](s *string) *T {
	if s == nil || *s == "" {
		return nil
	}
	v := T(*s)
	return &v
}

func enumToText[T ~string](v *T) *string {
	if v == nil {
		return nil
	}
	s := string(*v)
	return &s
}
