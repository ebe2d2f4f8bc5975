package repository

import (
	"context"
	"errors"

	"classifieds/internal/domain"
	"classifieds/internal/lib/metrics"
)

// ListingSource — контракт источника объявлений.
type ListingSource interface {
	ListAll(ctx context.Context) ([]domain.Listing, error)
	GetByID(ctx context.Context, id string) (domain.Listing, error)
}

// MeteredSource — источник, учитывающий вызовы в метриках.
type MeteredSource struct {
	inner   ListingSource
	metrics *metrics.SourceMetrics
	source  metrics.SourceType
}

func NewMeteredSource(inner ListingSource, m *metrics.SourceMetrics, source metrics.SourceType) *MeteredSource {
	return &MeteredSource{inner: inner, metrics: m, source: source}
}

func (s *MeteredSource) ListAll(ctx context.Context) ([]domain.Listing, error) {
	return metrics.WrapWithMetrics(ctx, s.metrics, s.source, s.inner.ListAll)
}

// GetByID не считает «не найдено» ошибкой источника.
func (s *MeteredSource) GetByID(ctx context.Context, id string) (domain.Listing, error) {
	timer := s.metrics.StartTimer(s.source)
	l, err := s.inner.GetByID(ctx, id)
	if errors.Is(err, ErrListingNotFound) {
		timer.Stop(nil)
	} else {
		timer.Stop(err)
	}
	return l, err
}
