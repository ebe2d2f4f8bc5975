package listinghttp

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"classifieds/internal/domain"
	"classifieds/internal/http/dto"
	"classifieds/internal/http/middleware"
	"classifieds/internal/http/respond"
	"classifieds/internal/lib/jsonld"
	"classifieds/internal/lib/logger/sl"
	"classifieds/internal/services/listing"

	"github.com/go-chi/chi/v5"
)

// ListingService — подборки главной страницы и карточка объявления.
type ListingService interface {
	Featured(ctx context.Context, limit int) ([]domain.Listing, error)
	Latest(ctx context.Context, limit int) ([]domain.Listing, error)
	GetListing(ctx context.Context, id string) (domain.Listing, error)
	ListingJSONLD(ctx context.Context, id, baseURL string) (*jsonld.Markup, error)
}

type handler struct {
	log     *slog.Logger
	service ListingService
}

type listingsResponse struct {
	Listings []dto.Listing `json:"listings"`
}

// Register регистрирует маршруты объявлений.
func Register(r chi.Router, log *slog.Logger, service ListingService) {
	h := &handler{log: log, service: service}

	r.Route("/listings", func(r chi.Router) {
		r.Get("/featured", h.collection("listinghttp.featured", service.Featured))
		r.Get("/latest", h.collection("listinghttp.latest", service.Latest))
		r.Get("/{listingID}", h.getListing)
		r.Get("/{listingID}/jsonld", h.getJSONLD)
	})
}

type collectionFunc func(ctx context.Context, limit int) ([]domain.Listing, error)

func (h *handler) collection(op string, fetch collectionFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := middleware.LoggerFromContext(r.Context(), h.log).With(slog.String("op", op))

		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil {
				respond.Error(w, http.StatusBadRequest, "limit must be an integer")
				return
			}
			limit = n
		}

		listings, err := fetch(r.Context(), limit)
		if err != nil {
			log.Error("failed to fetch listings", sl.Err(err))
			respond.Internal(w)
			return
		}
		respond.JSON(w, http.StatusOK, listingsResponse{Listings: dto.FromListings(listings)})
	}
}

func (h *handler) getListing(w http.ResponseWriter, r *http.Request) {
	const op = "listinghttp.getListing"

	l, err := h.service.GetListing(r.Context(), chi.URLParam(r, "listingID"))
	if err != nil {
		h.fail(w, r, op, err)
		return
	}
	respond.JSON(w, http.StatusOK, dto.FromListing(l))
}

func (h *handler) getJSONLD(w http.ResponseWriter, r *http.Request) {
	const op = "listinghttp.getJSONLD"

	markup, err := h.service.ListingJSONLD(r.Context(), chi.URLParam(r, "listingID"), BaseURL(r))
	if err != nil {
		h.fail(w, r, op, err)
		return
	}

	w.Header().Set("Content-Type", "application/ld+json")
	respond.JSON(w, http.StatusOK, markup)
}

func (h *handler) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	if errors.Is(err, listing.ErrListingNotFound) {
		respond.Error(w, http.StatusNotFound, "listing not found")
		return
	}
	middleware.LoggerFromContext(r.Context(), h.log).Error("failed to get listing", slog.String("op", op), sl.Err(err))
	respond.Internal(w)
}

// BaseURL восстанавливает схему и хост публичного адреса из запроса
// с учётом X-Forwarded-Proto и X-Forwarded-Host.
func BaseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = strings.TrimSpace(strings.Split(proto, ",")[0])
	}

	host := r.Host
	if fwd := r.Header.Get("X-Forwarded-Host"); fwd != "" {
		host = strings.TrimSpace(strings.Split(fwd, ",")[0])
	}
	return scheme + "://" + host
}
