package property

import (
	"context"
	"fmt"
	"log/slog"

	"classifieds/internal/domain"
	"classifieds/internal/lib/listingfilter"
	"classifieds/internal/lib/logger/sl"
)

// ListingSource — поставщик полного списка объявлений.
type ListingSource interface {
	ListAll(ctx context.Context) ([]domain.Listing, error)
}

// Service — поиск по странице недвижимости.
type Service struct {
	log    *slog.Logger
	source ListingSource
	config domain.PropertyFilterConfig
}

func New(log *slog.Logger, source ListingSource) *Service {
	return &Service{
		log:    log,
		source: source,
		config: domain.DefaultPropertyFilterConfig(),
	}
}

// Search — получает свежий снимок объявлений, применяет критерии и вырезает страницу.
// TotalCount — размер отфильтрованной выдачи до пагинации.
func (s *Service) Search(ctx context.Context, c domain.FilterCriteria, pager *domain.Pager) (*domain.PaginatedResult[domain.Listing], error) {
	const op = "property.Service.Search"
	log := s.log.With(slog.String("op", op))

	listings, err := s.source.ListAll(ctx)
	if err != nil {
		log.Error("failed to fetch listings", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	filtered := listingfilter.Apply(listings, c)
	page := domain.Paginate(filtered, pager)

	log.Debug("property search completed",
		slog.Int("source_count", len(listings)),
		slog.Int("matched", len(filtered)),
		slog.Int("active_filters", c.ActiveCount()),
		slog.String("sort", c.SortBy.String()),
	)

	return &page, nil
}

// FilterConfig — границы и справочники панели фильтров.
func (s *Service) FilterConfig() domain.PropertyFilterConfig {
	return s.config
}

// Districts — справочник районов.
func (s *Service) Districts() []domain.District {
	return append([]domain.District(nil), domain.KnownDistricts...)
}
