package propertyhttp

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"classifieds/internal/domain"
	"classifieds/internal/lib/logger/handlers/slogdiscard"
	"classifieds/internal/services/criteria"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockPropertyService struct {
	SearchFunc       func(ctx context.Context, c domain.FilterCriteria, pager *domain.Pager) (*domain.PaginatedResult[domain.Listing], error)
	FilterConfigFunc func() domain.PropertyFilterConfig
	DistrictsFunc    func() []domain.District
}

func (m *MockPropertyService) Search(ctx context.Context, c domain.FilterCriteria, pager *domain.Pager) (*domain.PaginatedResult[domain.Listing], error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, c, pager)
	}
	return &domain.PaginatedResult[domain.Listing]{Items: []domain.Listing{}}, nil
}

func (m *MockPropertyService) FilterConfig() domain.PropertyFilterConfig {
	if m.FilterConfigFunc != nil {
		return m.FilterConfigFunc()
	}
	return domain.DefaultPropertyFilterConfig()
}

func (m *MockPropertyService) Districts() []domain.District {
	if m.DistrictsFunc != nil {
		return m.DistrictsFunc()
	}
	return domain.KnownDistricts
}

func newRouter(svc PropertyService) (http.Handler, *criteria.Sessions) {
	log := slogdiscard.NewDiscardLogger()
	sessions := criteria.NewSessions(log)
	r := chi.NewRouter()
	Register(r, log, svc, sessions)
	return r, sessions
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestSearchListings(t *testing.T) {
	var gotCriteria domain.FilterCriteria
	var gotPager *domain.Pager
	svc := &MockPropertyService{
		SearchFunc: func(_ context.Context, c domain.FilterCriteria, pager *domain.Pager) (*domain.PaginatedResult[domain.Listing], error) {
			gotCriteria, gotPager = c, pager
			return &domain.PaginatedResult[domain.Listing]{
				Items:      []domain.Listing{{ID: "property-2", DiscountPrice: 50}},
				TotalCount: 3,
				HasMore:    true,
			}, nil
		},
	}
	router, _ := newRouter(svc)

	rec := do(t, router, http.MethodGet, "/property/listings?type=apartment&sort=price_asc&per_page=1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, []domain.PropertyType{domain.PropertyTypeApartment}, gotCriteria.PropertyTypes)
	assert.Equal(t, domain.SortPriceAsc, gotCriteria.SortBy)
	assert.Equal(t, int64(1), gotPager.Limit())

	resp := decode[listingsResponse](t, rec)
	assert.Equal(t, int32(3), resp.TotalCount)
	assert.True(t, resp.HasMore)
	assert.Equal(t, "/property?type=apartment", resp.DeepLink)
	require.Len(t, resp.Listings, 1)
	assert.Equal(t, "property-2", resp.Listings[0].ID)
}

func TestSearchListings_BadQuery(t *testing.T) {
	router, _ := newRouter(&MockPropertyService{})

	for _, target := range []string{
		"/property/listings?price_min=abc",
		"/property/listings?type=castle",
		"/property/listings?page=x",
		"/property/listings?price_min=NaN",
		"/property/listings?page=4294967298&per_page=1",
	} {
		rec := do(t, router, http.MethodGet, target, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestSearchListings_ServiceError(t *testing.T) {
	router, _ := newRouter(&MockPropertyService{
		SearchFunc: func(context.Context, domain.FilterCriteria, *domain.Pager) (*domain.PaginatedResult[domain.Listing], error) {
			return nil, errors.New("source down")
		},
	})

	rec := do(t, router, http.MethodGet, "/property/listings", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestFilterConfigAndDistricts(t *testing.T) {
	router, _ := newRouter(&MockPropertyService{})

	rec := do(t, router, http.MethodGet, "/property/filter-config", "")
	require.Equal(t, http.StatusOK, rec.Code)
	cfg := decode[filterConfigResponse](t, rec)
	assert.Equal(t, 10.0, cfg.AreaRange.Min)
	assert.Equal(t, 30, cfg.FloorRange.Max)
	require.Len(t, cfg.Segments, 2)
	assert.Equal(t, []string{"apartment", "house", "room"}, cfg.Segments[0].Types)

	rec = do(t, router, http.MethodGet, "/property/districts", "")
	require.Equal(t, http.StatusOK, rec.Code)
	districts := decode[[]districtDTO](t, rec)
	require.Len(t, districts, len(domain.KnownDistricts))
	assert.Equal(t, "almaty-district", districts[0].ID)
}

func TestSessionLifecycle(t *testing.T) {
	var searched domain.FilterCriteria
	router, sessions := newRouter(&MockPropertyService{
		SearchFunc: func(_ context.Context, c domain.FilterCriteria, _ *domain.Pager) (*domain.PaginatedResult[domain.Listing], error) {
			searched = c
			return &domain.PaginatedResult[domain.Listing]{Items: []domain.Listing{}}, nil
		},
	})

	rec := do(t, router, http.MethodPost, "/property/sessions?type=house", "")
	require.Equal(t, http.StatusCreated, rec.Code)
	opened := decode[sessionResponse](t, rec)
	require.NotEmpty(t, opened.SessionID)
	assert.Equal(t, []string{"house"}, opened.Criteria.PropertyTypes)
	assert.Equal(t, 1, opened.ActiveFiltersCount)
	assert.Equal(t, "/property?type=house", opened.DeepLink)
	assert.Equal(t, 1, sessions.Len())

	base := "/property/sessions/" + opened.SessionID

	rec = do(t, router, http.MethodPatch, base, `{"price_range":{"min":100},"districts":["Alatau District"],"sort":"area_desc"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	patched := decode[sessionResponse](t, rec)
	assert.Equal(t, []string{"house"}, patched.Criteria.PropertyTypes)
	assert.Equal(t, ptr(100.0), patched.Criteria.PriceRange.Min)
	assert.Nil(t, patched.Criteria.PriceRange.Max)
	assert.Equal(t, []string{"alatau-district"}, patched.Criteria.Districts)
	assert.Equal(t, "area_desc", patched.Criteria.SortBy)
	assert.Equal(t, 3, patched.ActiveFiltersCount)

	rec = do(t, router, http.MethodGet, base+"/listings", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.SortAreaDesc, searched.SortBy)
	assert.Equal(t, []string{"alatau-district"}, searched.Districts)

	rec = do(t, router, http.MethodPatch, base, `{"property_types":[]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	cleared := decode[sessionResponse](t, rec)
	assert.Empty(t, cleared.Criteria.PropertyTypes)
	assert.Equal(t, "", cleared.DeepLink)

	rec = do(t, router, http.MethodPost, base+"/reset", "")
	require.Equal(t, http.StatusOK, rec.Code)
	reset := decode[sessionResponse](t, rec)
	assert.Equal(t, 0, reset.ActiveFiltersCount)
	assert.Equal(t, "", reset.Criteria.SortBy)

	rec = do(t, router, http.MethodGet, base, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, router, http.MethodDelete, base, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, 0, sessions.Len())

	rec = do(t, router, http.MethodGet, base, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = do(t, router, http.MethodDelete, base, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestOpenSession_UnknownDeepLinkTypeIgnored(t *testing.T) {
	router, _ := newRouter(&MockPropertyService{})

	rec := do(t, router, http.MethodPost, "/property/sessions?type=castle", "")
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 0, decode[sessionResponse](t, rec).ActiveFiltersCount)
}

func TestPatchSession_BadInput(t *testing.T) {
	router, sessions := newRouter(&MockPropertyService{})
	id, _ := sessions.Open()

	rec := do(t, router, http.MethodPatch, "/property/sessions/"+id, `{"property_types":["yurt"]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, router, http.MethodPatch, "/property/sessions/"+id, `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, router, http.MethodPatch, "/property/sessions/missing", `{}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
