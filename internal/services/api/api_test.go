package api

import (
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"scoring/internal/platform/config"
	"scoring/internal/platform/metrics"
	phttp "scoring/internal/platform/net/http"
	"scoring/internal/platform/net/middleware"
	"scoring/internal/platform/store"
	"scoring/internal/platform/store/ch"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T) (stdhttp.Handler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	reg := prometheus.NewRegistry()
	srv := phttp.NewServer(config.New().Prefix("TEST_API_"), func(m *chi.Mux) {
		m.Use(middleware.StripSlashes())
	})
	mods := Mount(srv.Router(), Options{
		Store:         &store.Store{CH: store.NewClickhouse(ch.New(db))},
		EnableSwagger: true,
		Metrics:       metrics.New(reg),
		Gatherer:      reg,
	})
	require.Len(t, mods, 3)
	return srv.Handler(), mock
}

func do(h stdhttp.Handler, method, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
	return rec
}

func TestMount_Index(t *testing.T) {
	t.Parallel()

	h, _ := newServer(t)
	rec := do(h, stdhttp.MethodGet, "/api/v1/", "")
	require.Equal(t, stdhttp.StatusOK, rec.Code)

	var out struct {
		Data struct {
			Name      string `json:"name"`
			Endpoints []struct {
				Method string `json:"method"`
				Path   string `json:"path"`
			} `json:"endpoints"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Equal(t, "ClickHouse Scoring Analytics API", out.Data.Name)

	var paths []string
	for _, e := range out.Data.Endpoints {
		paths = append(paths, e.Method+" "+e.Path)
	}
	require.Contains(t, paths, "POST /api/v1/scoring-analytics")
	require.Contains(t, paths, "GET /api/v1/business-scores")
	require.Contains(t, paths, "GET /api/v1/daily-analytics")
}

func TestMount_AnalyticsTrailingSlashAndBodyErrors(t *testing.T) {
	t.Parallel()

	h, _ := newServer(t)

	rec := do(h, stdhttp.MethodPost, "/api/v1/scoring-analytics/", "")
	require.Equal(t, stdhttp.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"error":"Request body is required","code":"VALIDATION_ERROR"}`, rec.Body.String())

	rec = do(h, stdhttp.MethodPost, "/api/v1/scoring-analytics", `{"filter":{"date_from":"2024-01-01"}}`)
	require.Equal(t, stdhttp.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"error":"Missing required field: filter.date_to","code":"VALIDATION_ERROR"}`, rec.Body.String())
}

func TestMount_AnalyticsNoData(t *testing.T) {
	t.Parallel()

	h, mock := newServer(t)
	mock.ExpectQuery("FROM company_scores_daily").WillReturnRows(sqlmock.NewRows([]string{"total_points"}))

	rec := do(h, stdhttp.MethodPost, "/api/v1/scoring-analytics", `{"filter":{"date_from":"2024-01-01","date_to":"2024-01-02"}}`)
	require.Equal(t, stdhttp.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"error":"No data found for specified filters","code":"NO_DATA"}`, rec.Body.String())
}

func TestMount_UnknownRoute(t *testing.T) {
	t.Parallel()

	h, _ := newServer(t)
	for _, tc := range []struct{ method, path string }{
		{stdhttp.MethodGet, "/api/v1/nope"},
		{stdhttp.MethodGet, "/api/v1/scoring-analytics"},
		{stdhttp.MethodGet, "/elsewhere"},
	} {
		rec := do(h, tc.method, tc.path, "")
		require.Equal(t, stdhttp.StatusNotFound, rec.Code, tc.path)
		require.JSONEq(t, `{"error":"Endpoint not found","code":"NOT_FOUND"}`, rec.Body.String(), tc.path)
	}
}

func TestMount_MetricsAndDocs(t *testing.T) {
	t.Parallel()

	h, _ := newServer(t)
	_ = do(h, stdhttp.MethodGet, "/api/v1/meta/health", "")

	rec := do(h, stdhttp.MethodGet, "/metrics", "")
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `scoring_http_requests_total{method="GET",route="/api/v1/meta/health",status="200"} 1`)

	rec = do(h, stdhttp.MethodGet, "/api/docs/doc.json", "")
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "/api/v1/scoring-analytics")
}
