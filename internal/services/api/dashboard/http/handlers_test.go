package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	phttp "scoring/internal/platform/net/http"
	"scoring/internal/services/api/dashboard/domain"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

type fakeSvc struct {
	business domain.BusinessFilter
	daily    domain.DailyFilter
}

func (f *fakeSvc) Businesses(_ context.Context, in domain.BusinessFilter) (domain.BusinessDashboard, error) {
	f.business = in
	return domain.BusinessDashboard{Total: 3, CompanySizes: domain.CompanySizes}, nil
}

func (f *fakeSvc) Daily(_ context.Context, in domain.DailyFilter) (domain.DailyDashboard, error) {
	f.daily = in
	return domain.DailyDashboard{Total: 1}, nil
}

func get(t *testing.T, s *fakeSvc, target string) (int, map[string]any) {
	t.Helper()
	mux := chi.NewRouter()
	Register(phttp.AdaptChi(mux), s)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodGet, target, nil))

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return rec.Code, out
}

func TestBusinessScores_BindsQuery(t *testing.T) {
	t.Parallel()

	s := &fakeSvc{}
	code, out := get(t, s, "/business-scores?name=acme&company_size=small&score_range=-20-0&sort=score&dir=asc")
	require.Equal(t, stdhttp.StatusOK, code)
	require.Equal(t, domain.BusinessFilter{Name: "acme", CompanySize: "small", ScoreRange: "-20-0", Sort: "score", Dir: "asc"}, s.business)
	require.Equal(t, 3.0, out["data"].(map[string]any)["total"])
}

func TestBusinessScores_RejectsBadEnums(t *testing.T) {
	t.Parallel()

	for _, target := range []string{
		"/business-scores?company_size=huge",
		"/business-scores?score_range=0-100",
		"/business-scores?date_from=2024-02-30",
	} {
		code, out := get(t, &fakeSvc{}, target)
		require.Equal(t, stdhttp.StatusBadRequest, code, target)
		require.Equal(t, "VALIDATION_ERROR", out["code"], target)
	}
}

func TestDailyAnalytics(t *testing.T) {
	t.Parallel()

	s := &fakeSvc{}
	code, _ := get(t, s, "/daily-analytics?company_id=12&category=roofers")
	require.Equal(t, stdhttp.StatusOK, code)
	require.Equal(t, domain.DailyFilter{CompanyID: 12, Category: "roofers"}, s.daily)

	code, out := get(t, s, "/daily-analytics?company_id=abc")
	require.Equal(t, stdhttp.StatusBadRequest, code)
	require.Equal(t, "company_id must be an integer", out["error"])
}
