package listing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"classifieds/internal/domain"
	"classifieds/internal/lib/jsonld"
	"classifieds/internal/lib/logger/sl"
	"classifieds/internal/repository"

	"github.com/samber/lo"
)

type ListingSource interface {
	ListAll(ctx context.Context) ([]domain.Listing, error)
	GetByID(ctx context.Context, id string) (domain.Listing, error)
}

var (
	ErrListingNotFound = errors.New("listing not found")
)

// Limits — размеры подборок по умолчанию.
type Limits struct {
	Featured int
	Latest   int
}

// Service — подборки объявлений для главной страницы и карточка объявления.
type Service struct {
	log    *slog.Logger
	source ListingSource
	limits Limits
	jsonld *jsonld.Generator
}

func New(log *slog.Logger, source ListingSource, limits Limits) *Service {
	return &Service{
		log:    log,
		source: source,
		limits: limits,
		jsonld: jsonld.NewGenerator(),
	}
}

// Featured — избранные объявления в порядке источника.
// limit <= 0 означает размер подборки по умолчанию.
func (s *Service) Featured(ctx context.Context, limit int) ([]domain.Listing, error) {
	const op = "listing.Service.Featured"

	listings, err := s.source.ListAll(ctx)
	if err != nil {
		s.log.Error("failed to fetch listings", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	featured := lo.Filter(listings, func(l domain.Listing, _ int) bool { return l.IsFeatured })
	return head(featured, s.limitOr(limit, s.limits.Featured)), nil
}

// Latest — объявления по убыванию даты создания.
func (s *Service) Latest(ctx context.Context, limit int) ([]domain.Listing, error) {
	const op = "listing.Service.Latest"

	listings, err := s.source.ListAll(ctx)
	if err != nil {
		s.log.Error("failed to fetch listings", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	latest := slices.Clone(listings)
	slices.SortStableFunc(latest, func(a, b domain.Listing) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return head(latest, s.limitOr(limit, s.limits.Latest)), nil
}

// GetListing — получает объявление по ID.
func (s *Service) GetListing(ctx context.Context, id string) (domain.Listing, error) {
	const op = "listing.Service.GetListing"

	l, err := s.source.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			s.log.Warn("listing not found", slog.String("listing_id", id))
			return domain.Listing{}, fmt.Errorf("%s: %w", op, ErrListingNotFound)
		}
		s.log.Error("failed to get listing", slog.String("op", op), sl.Err(err))
		return domain.Listing{}, fmt.Errorf("%s: %w", op, err)
	}

	return l, nil
}

// ListingJSONLD — schema.org разметка объявления.
func (s *Service) ListingJSONLD(ctx context.Context, id, baseURL string) (*jsonld.Markup, error) {
	const op = "listing.Service.ListingJSONLD"

	l, err := s.GetListing(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	markup, err := s.jsonld.Generate(l, baseURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return markup, nil
}

func (s *Service) limitOr(limit, def int) int {
	if limit > 0 {
		return min(limit, domain.MaxPageSize)
	}
	if def > 0 {
		return def
	}
	return domain.DefaultPageSize
}

func head(listings []domain.Listing, n int) []domain.Listing {
	if len(listings) > n {
		return listings[:n]
	}
	return listings
}
