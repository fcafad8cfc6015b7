package rest_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"lintang/wayfinder/domain"
	"lintang/wayfinder/pkg/server/rest"
	"lintang/wayfinder/pkg/server/rest/service"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
)

type fakeNavigationService struct {
	results []service.RouteOptionResult
	err     error
}

func (f *fakeNavigationService) RouteOptions(ctx context.Context, srcLat, srcLon,
	dstLat, dstLon float64) ([]service.RouteOptionResult, error) {
	return f.results, f.err
}

func (f *fakeNavigationService) RouteOptionsByAddress(ctx context.Context,
	departureAddress, destinationAddress, place string) ([]service.RouteOptionResult, error) {
	return f.results, f.err
}

func newTestRouter(svc rest.NavigationService) *chi.Mux {
	r := chi.NewRouter()
	m := rest.NewMetrics(prometheus.NewRegistry())
	rest.WayfinderRouter(r, svc, m)
	return r
}

func sampleResults() []service.RouteOptionResult {
	return []service.RouteOptionResult{
		{Label: "Balanced", Path: []int64{1, 2, 3}, Polyline: "abc", TotalTime: 72,
			TotalDistance: 800, TimeMinutes: 1.2, DistanceKm: 0.8, AvgTraffic: 1},
	}
}

func TestRouteOptionsHandler(t *testing.T) {
	t.Run("success route options", func(t *testing.T) {
		r := newTestRouter(&fakeNavigationService{results: sampleResults()})

		body := bytes.NewBufferString(`{"src_lat": -7.56, "src_lon": 110.81, "dst_lat": -7.57, "dst_lon": 110.82}`)
		req := httptest.NewRequest(http.MethodPost, "/api/routes/options", body)
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp rest.RouteOptionsResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Found)
		assert.Equal(t, 1, len(resp.Routes))
		assert.Equal(t, "Balanced", resp.Routes[0].Label)
		assert.Equal(t, "abc", resp.Routes[0].Path)
	})

	t.Run("no route found", func(t *testing.T) {
		r := newTestRouter(&fakeNavigationService{results: nil})

		body := bytes.NewBufferString(`{"src_lat": -7.56, "src_lon": 110.81, "dst_lat": -7.57, "dst_lon": 110.82}`)
		req := httptest.NewRequest(http.MethodPost, "/api/routes/options", body)
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp rest.RouteOptionsResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, resp.Found)
	})

	t.Run("validation error on out-of-range latitude", func(t *testing.T) {
		r := newTestRouter(&fakeNavigationService{results: sampleResults()})

		body := bytes.NewBufferString(`{"src_lat": 95.0, "src_lon": 110.81, "dst_lat": -7.57, "dst_lon": 110.82}`)
		req := httptest.NewRequest(http.MethodPost, "/api/routes/options", body)
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("success route options by address", func(t *testing.T) {
		r := newTestRouter(&fakeNavigationService{results: sampleResults()})

		body := bytes.NewBufferString(`{"departure_address": "Stasiun Balapan", "destination_address": "Pasar Gede", "place": "Surakarta, Indonesia"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/routes/options-by-address", body)
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("geocoder miss maps to 404", func(t *testing.T) {
		r := newTestRouter(&fakeNavigationService{
			err: domain.WrapErrorf(nil, domain.ErrNotFound, "no geocoding result"),
		})

		body := bytes.NewBufferString(`{"departure_address": "nowhere", "destination_address": "Pasar Gede", "place": "Surakarta, Indonesia"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/routes/options-by-address", body)
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("healthz", func(t *testing.T) {
		r := newTestRouter(&fakeNavigationService{})

		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
