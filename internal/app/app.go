package app

import (
	"context"
	"fmt"
	"log/slog"

	"classifieds/internal/config"
	"classifieds/internal/lib/cache"
	"classifieds/internal/lib/logger/sl"
	"classifieds/internal/lib/metrics"
	"classifieds/internal/lib/subcategory"
	"classifieds/internal/repository"
	"classifieds/internal/repository/cached_repository"
	"classifieds/internal/repository/listing_repository"
	"classifieds/internal/repository/seed_repository"
	"classifieds/internal/services/catalog"
	"classifieds/internal/services/criteria"
	"classifieds/internal/services/listing"
	"classifieds/internal/services/property"

	"github.com/jackc/pgx/v5/pgxpool"

	httpapp "classifieds/internal/app/http"
)

type App struct {
	HTTPServer *httpapp.App
	// SourceMetrics — счётчики обращений к источникам объявлений
	SourceMetrics *metrics.SourceMetrics

	closers []func()
}

func New(ctx context.Context, log *slog.Logger, cfg *config.Config) (*App, error) {
	const op = "app.New"

	a := &App{SourceMetrics: metrics.GetSourceMetrics(log)}

	source, err := a.buildSource(ctx, log, cfg)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	subcategoryClient := subcategory.NewClient(cfg.Subcategory, log, a.SourceMetrics)

	catalogService, err := catalog.New(log, subcategoryClient)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("listing services initialized",
		slog.String("listing_source", cfg.ListingSource),
		slog.Bool("redis_enabled", cfg.Redis.Enabled),
		slog.Bool("subcategory_enabled", subcategoryClient.IsEnabled()),
	)

	a.HTTPServer = httpapp.New(log, cfg.HTTP, httpapp.Services{
		Property: property.New(log, source),
		Sessions: criteria.NewSessions(log),
		Listing: listing.New(log, source, listing.Limits{
			Featured: cfg.Listings.FeaturedLimit,
			Latest:   cfg.Listings.LatestLimit,
		}),
		Catalog: catalogService,
		Metrics: a.SourceMetrics,
	})

	return a, nil
}

type listingSource interface {
	property.ListingSource
	listing.ListingSource
}

// buildSource собирает источник объявлений: seed или Postgres,
// с метриками и, при включённом Redis, с кэшем снимка.
func (a *App) buildSource(ctx context.Context, log *slog.Logger, cfg *config.Config) (listingSource, error) {
	var source listingSource

	switch cfg.ListingSource {
	case config.SourcePostgres:
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		a.closers = append(a.closers, pool.Close)

		if err := pool.Ping(ctx); err != nil {
			return nil, fmt.Errorf("ping postgres: %w", err)
		}
		source = repository.NewMeteredSource(listing_repository.NewListingRepository(pool, log), a.SourceMetrics, metrics.SourcePostgres)
	default:
		seed, err := seed_repository.New(log)
		if err != nil {
			return nil, fmt.Errorf("load seed listings: %w", err)
		}
		source = repository.NewMeteredSource(seed, a.SourceMetrics, metrics.SourceSeed)
	}

	if !cfg.Redis.Enabled {
		return source, nil
	}

	redisCache := cache.NewRedisCache(cache.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		Prefix:   "classifieds:",
	})
	a.closers = append(a.closers, func() {
		if err := redisCache.Close(); err != nil {
			log.Warn("failed to close redis", sl.Err(err))
		}
	})

	// Недоступный Redis не мешает старту: кэш промахивается и запросы идут в источник
	if err := redisCache.Ping(ctx); err != nil {
		log.Warn("redis is unavailable, snapshot cache will miss", sl.Err(err))
	}

	return cached_repository.New(log, source, redisCache, cfg.Redis.TTL, a.SourceMetrics), nil
}

// Close освобождает подключения к хранилищам.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}
