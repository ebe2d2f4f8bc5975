package propertyhttp

import (
	"context"
	"log/slog"

	"classifieds/internal/domain"
	"classifieds/internal/services/criteria"

	"github.com/go-chi/chi/v5"
)

// PropertyService описывает поиск по странице недвижимости.
type PropertyService interface {
	Search(ctx context.Context, c domain.FilterCriteria, pager *domain.Pager) (*domain.PaginatedResult[domain.Listing], error)
	FilterConfig() domain.PropertyFilterConfig
	Districts() []domain.District
}

// SessionRegistry — реестр хранилищ критериев.
type SessionRegistry interface {
	Open() (string, *criteria.Store)
	Get(id string) (*criteria.Store, error)
	Close(id string) error
}

type handler struct {
	log      *slog.Logger
	service  PropertyService
	sessions SessionRegistry
}

// Register регистрирует маршруты страницы недвижимости в роутере.
func Register(r chi.Router, log *slog.Logger, service PropertyService, sessions SessionRegistry) {
	h := &handler{log: log, service: service, sessions: sessions}

	r.Route("/property", func(r chi.Router) {
		r.Get("/listings", h.searchListings)
		r.Get("/filter-config", h.filterConfig)
		r.Get("/districts", h.districts)

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", h.openSession)
			r.Route("/{sessionID}", func(r chi.Router) {
				r.Get("/", h.getSession)
				r.Patch("/", h.patchSession)
				r.Delete("/", h.closeSession)
				r.Post("/reset", h.resetSession)
				r.Get("/listings", h.sessionListings)
			})
		})
	})
}
