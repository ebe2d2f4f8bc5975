package cached_repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"classifieds/internal/domain"
	"classifieds/internal/lib/cache"
	"classifieds/internal/lib/logger/sl"
	"classifieds/internal/lib/metrics"
)

// SnapshotKey — ключ, под которым хранится снимок всех объявлений.
const SnapshotKey = "listings:snapshot"

type Source interface {
	ListAll(ctx context.Context) ([]domain.Listing, error)
	GetByID(ctx context.Context, id string) (domain.Listing, error)
}

type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

// CachedRepository — декоратор источника, кэширующий снимок ListAll.
// Ошибки кэша не видны вызывающему: запрос уходит во внутренний источник.
type CachedRepository struct {
	log     *slog.Logger
	inner   Source
	cache   Cache
	ttl     time.Duration
	metrics *metrics.SourceMetrics
}

func New(log *slog.Logger, inner Source, c Cache, ttl time.Duration, m *metrics.SourceMetrics) *CachedRepository {
	return &CachedRepository{log: log, inner: inner, cache: c, ttl: ttl, metrics: m}
}

// ListAll — возвращает снимок из кэша или загружает его из источника.
func (r *CachedRepository) ListAll(ctx context.Context) ([]domain.Listing, error) {
	const op = "CachedRepository.ListAll"
	log := r.log.With(slog.String("op", op))

	if listings, ok := r.fromCache(ctx, log); ok {
		return listings, nil
	}

	listings, err := r.inner.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	data, err := json.Marshal(listings)
	if err != nil {
		log.Warn("failed to encode listings snapshot", sl.Err(err))
		return listings, nil
	}
	if err := r.cache.Set(ctx, SnapshotKey, data, r.ttl); err != nil {
		log.Warn("failed to store listings snapshot", sl.Err(err))
	}

	return listings, nil
}

func (r *CachedRepository) fromCache(ctx context.Context, log *slog.Logger) ([]domain.Listing, bool) {
	timer := r.metrics.StartTimer(metrics.SourceCache)
	data, err := r.cache.Get(ctx, SnapshotKey)
	if errors.Is(err, cache.ErrMiss) {
		timer.Stop(nil)
		log.Debug("listings snapshot cache miss")
		return nil, false
	}
	timer.Stop(err)
	if err != nil {
		log.Warn("listings cache unavailable, falling back to source", sl.Err(err))
		return nil, false
	}

	var listings []domain.Listing
	if err := json.Unmarshal(data, &listings); err != nil {
		log.Warn("corrupted listings snapshot, falling back to source", sl.Err(err))
		return nil, false
	}
	return listings, true
}

// GetByID — всегда обращается к источнику.
func (r *CachedRepository) GetByID(ctx context.Context, id string) (domain.Listing, error) {
	return r.inner.GetByID(ctx, id)
}

// Invalidate удаляет снимок из кэша.
func (r *CachedRepository) Invalidate(ctx context.Context) error {
	const op = "CachedRepository.Invalidate"

	if err := r.cache.Del(ctx, SnapshotKey); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	r.log.Info("listings snapshot invalidated", slog.String("op", op))
	return nil
}
