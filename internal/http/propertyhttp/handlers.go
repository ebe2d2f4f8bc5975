package propertyhttp

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"classifieds/internal/domain"
	"classifieds/internal/http/dto"
	"classifieds/internal/http/middleware"
	"classifieds/internal/http/respond"
	"classifieds/internal/lib/logger/sl"
	"classifieds/internal/services/criteria"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"
)

// DeepLinkPath — путь страницы недвижимости для deep link.
const DeepLinkPath = "/property"

type listingsResponse struct {
	Listings   []dto.Listing `json:"listings"`
	TotalCount int32         `json:"total_count"`
	HasMore    bool          `json:"has_more"`
	DeepLink   string        `json:"deep_link"`
}

type sessionResponse struct {
	SessionID          string      `json:"session_id"`
	Criteria           criteriaDTO `json:"criteria"`
	ActiveFiltersCount int         `json:"active_filters_count"`
	DeepLink           string      `json:"deep_link"`
}

type labeledOptionDTO struct {
	ID    string            `json:"id"`
	Label dto.LocalizedName `json:"label"`
}

type segmentDTO struct {
	ID    string            `json:"id"`
	Label dto.LocalizedName `json:"label"`
	Types []string          `json:"types"`
}

type filterConfigResponse struct {
	AreaRange  floatBoundsDTO     `json:"area_range"`
	FloorRange intBoundsDTO       `json:"floor_range"`
	DealTypes  []labeledOptionDTO `json:"deal_types"`
	Segments   []segmentDTO       `json:"segments"`
}

type floatBoundsDTO struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type intBoundsDTO struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type districtDTO struct {
	ID   string            `json:"id"`
	Name dto.LocalizedName `json:"name"`
}

func deepLink(c domain.FilterCriteria) string {
	params := criteria.DeepLink(c)
	if len(params) == 0 {
		return ""
	}
	return DeepLinkPath + "?" + params.Encode()
}

func (h *handler) logger(r *http.Request, op string) *slog.Logger {
	return middleware.LoggerFromContext(r.Context(), h.log).With(slog.String("op", op))
}

func (h *handler) searchListings(w http.ResponseWriter, r *http.Request) {
	const op = "propertyhttp.searchListings"
	log := h.logger(r, op)

	q := r.URL.Query()
	c, err := parseCriteria(q)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	pager, err := parsePager(q)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	h.writeListings(w, r, log, c, pager)
}

func (h *handler) writeListings(w http.ResponseWriter, r *http.Request, log *slog.Logger, c domain.FilterCriteria, pager *domain.Pager) {
	result, err := h.service.Search(r.Context(), c, pager)
	if err != nil {
		log.Error("failed to search listings", sl.Err(err))
		respond.Internal(w)
		return
	}

	respond.JSON(w, http.StatusOK, listingsResponse{
		Listings:   dto.FromListings(result.Items),
		TotalCount: result.TotalCount,
		HasMore:    result.HasMore,
		DeepLink:   deepLink(c),
	})
}

func (h *handler) filterConfig(w http.ResponseWriter, _ *http.Request) {
	cfg := h.service.FilterConfig()

	respond.JSON(w, http.StatusOK, filterConfigResponse{
		AreaRange:  floatBoundsDTO{Min: cfg.AreaRangeMin, Max: cfg.AreaRangeMax},
		FloorRange: intBoundsDTO{Min: cfg.FloorRangeMin, Max: cfg.FloorRangeMax},
		DealTypes: lo.Map(cfg.DealTypes, func(o domain.LabeledOption, _ int) labeledOptionDTO {
			return labeledOptionDTO{ID: o.ID, Label: dto.FromLocalizedName(o.Label)}
		}),
		Segments: lo.Map(cfg.Segments, func(s domain.PropertySegment, _ int) segmentDTO {
			return segmentDTO{ID: s.ID, Label: dto.FromLocalizedName(s.Label), Types: enumStrings(s.Types)}
		}),
	})
}

func (h *handler) districts(w http.ResponseWriter, _ *http.Request) {
	respond.JSON(w, http.StatusOK, lo.Map(h.service.Districts(), func(d domain.District, _ int) districtDTO {
		return districtDTO{ID: d.ID, Name: dto.FromLocalizedName(d.Name)}
	}))
}

func (h *handler) openSession(w http.ResponseWriter, r *http.Request) {
	id, store := h.sessions.Open()
	if p := criteria.FromDeepLink(r.URL.Query()); !p.IsEmpty() {
		store.Set(p)
	}
	respond.JSON(w, http.StatusCreated, sessionBody(id, store))
}

func (h *handler) getSession(w http.ResponseWriter, r *http.Request) {
	id, store, ok := h.session(w, r)
	if !ok {
		return
	}
	respond.JSON(w, http.StatusOK, sessionBody(id, store))
}

func (h *handler) patchSession(w http.ResponseWriter, r *http.Request) {
	id, store, ok := h.session(w, r)
	if !ok {
		return
	}

	var req patchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	patch, err := req.toPatch()
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	store.Set(patch)
	respond.JSON(w, http.StatusOK, sessionBody(id, store))
}

func (h *handler) resetSession(w http.ResponseWriter, r *http.Request) {
	id, store, ok := h.session(w, r)
	if !ok {
		return
	}
	store.Reset()
	respond.JSON(w, http.StatusOK, sessionBody(id, store))
}

func (h *handler) sessionListings(w http.ResponseWriter, r *http.Request) {
	const op = "propertyhttp.sessionListings"
	log := h.logger(r, op)

	_, store, ok := h.session(w, r)
	if !ok {
		return
	}
	pager, err := parsePager(r.URL.Query())
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	h.writeListings(w, r, log, store.Snapshot(), pager)
}

func (h *handler) closeSession(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Close(chi.URLParam(r, "sessionID")); err != nil {
		h.sessionError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) session(w http.ResponseWriter, r *http.Request) (string, *criteria.Store, bool) {
	id := chi.URLParam(r, "sessionID")
	store, err := h.sessions.Get(id)
	if err != nil {
		h.sessionError(w, r, err)
		return "", nil, false
	}
	return id, store, true
}

func (h *handler) sessionError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, criteria.ErrSessionNotFound) {
		respond.Error(w, http.StatusNotFound, "session not found")
		return
	}
	h.logger(r, "propertyhttp.session").Error("failed to resolve session", sl.Err(err))
	respond.Internal(w)
}

func sessionBody(id string, store *criteria.Store) sessionResponse {
	snapshot := store.Snapshot()
	return sessionResponse{
		SessionID:          id,
		Criteria:           criteriaToDTO(snapshot),
		ActiveFiltersCount: snapshot.ActiveCount(),
		DeepLink:           deepLink(snapshot),
	}
}
