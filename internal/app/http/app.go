package httpapp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"classifieds/api"
	"classifieds/internal/config"
	"classifieds/internal/http/cataloghttp"
	"classifieds/internal/http/listinghttp"
	"classifieds/internal/http/middleware"
	"classifieds/internal/http/propertyhttp"
	"classifieds/internal/http/respond"
	"classifieds/internal/lib/metrics"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

const (
	apiPrefix = "/api/v1"
	specPath  = "/swagger-spec/openapi.json"
)

// Services — зависимости HTTP-слоя.
type Services struct {
	Property propertyhttp.PropertyService
	Sessions propertyhttp.SessionRegistry
	Listing  listinghttp.ListingService
	Catalog  cataloghttp.CatalogService
	Metrics  *metrics.SourceMetrics
}

type App struct {
	log        *slog.Logger
	httpServer *http.Server
	port       int
}

func New(log *slog.Logger, cfg config.HTTPConfig, services Services) *App {
	return &App{
		log: log,
		httpServer: &http.Server{
			Addr:         ":" + strconv.Itoa(cfg.Port),
			Handler:      NewRouter(log, cfg, services),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
		port: cfg.Port,
	}
}

// NewRouter собирает роутер API со всеми middleware.
func NewRouter(log *slog.Logger, cfg config.HTTPConfig, services Services) http.Handler {
	r := chi.NewRouter()

	r.Use(
		chimiddleware.RequestID,
		chimiddleware.RealIP,
		middleware.Logger(log),
		chimiddleware.Recoverer,
		cors.New(cors.Options{
			AllowedOrigins: cfg.CORSAllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", middleware.TraceIDHeader},
			ExposedHeaders: []string{middleware.TraceIDHeader},
			MaxAge:         300,
		}).Handler,
	)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		respond.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get(specPath, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(api.OpenAPI)
	})
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(specPath)))

	r.Route(apiPrefix, func(r chi.Router) {
		propertyhttp.Register(r, log, services.Property, services.Sessions)
		listinghttp.Register(r, log, services.Listing)
		cataloghttp.Register(r, log, services.Catalog)

		r.Get("/metrics", func(w http.ResponseWriter, _ *http.Request) {
			respond.JSON(w, http.StatusOK, services.Metrics.GetStats())
		})
	})

	return r
}

// MustRun запускает сервер и паникует при ошибке.
func (a *App) MustRun() {
	if err := a.Run(); err != nil {
		panic(err)
	}
}

func (a *App) Run() error {
	const op = "httpapp.Run"

	l, err := net.Listen("tcp", a.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	a.log.Info("HTTP server started", slog.String("addr", l.Addr().String()))

	if err := a.httpServer.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Stop дожидается завершения активных запросов в пределах ctx.
func (a *App) Stop(ctx context.Context) error {
	const op = "httpapp.Stop"

	a.log.Info("stopping HTTP server", slog.Int("port", a.port))

	if err := a.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
