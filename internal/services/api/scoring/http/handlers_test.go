package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "scoring/internal/platform/errors"
	phttp "scoring/internal/platform/net/http"
	"scoring/internal/services/api/scoring/domain"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

type fakeSvc struct {
	res  domain.Result
	err  error
	body string
}

func (f *fakeSvc) Analytics(_ context.Context, payload []byte) (domain.Result, error) {
	f.body = string(payload)
	return f.res, f.err
}

func serve(t *testing.T, s *fakeSvc, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	mux := chi.NewRouter()
	Register(phttp.AdaptChi(mux), s)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(stdhttp.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	mux.ServeHTTP(rec, req)

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return rec, out
}

func TestAnalytics_Success(t *testing.T) {
	t.Parallel()

	s := &fakeSvc{res: domain.Result{
		Data: []domain.AggregateRow{{Keys: []domain.KeyValue{{Name: "day", Value: "2024-01-01"}}, TotalPoints: 5, Days: 1}},
		Meta: domain.Meta{TotalRows: 1, Limit: 1000, TableUsed: domain.TableDaily, QueryTimeMs: 1.25},
	}}
	rec, out := serve(t, s, `{"filter":{}}`)

	require.Equal(t, stdhttp.StatusOK, rec.Code)
	require.Equal(t, `{"filter":{}}`, s.body)
	require.Equal(t, map[string]any{
		"total_rows": 1.0, "limit": 1000.0, "table_used": "company_scores_daily", "query_time_ms": 1.25,
	}, out["meta"])
	rows := out["data"].([]any)
	require.Len(t, rows, 1)
	require.Equal(t, "2024-01-01", rows[0].(map[string]any)["day"])
}

func TestAnalytics_ErrorMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err    error
		status int
		code   string
	}{
		{perr.Validationf("Missing required field: filter"), stdhttp.StatusBadRequest, "VALIDATION_ERROR"},
		{perr.NoData(), stdhttp.StatusNotFound, "NO_DATA"},
		{perr.Database(context.DeadlineExceeded), stdhttp.StatusInternalServerError, "DATABASE_ERROR"},
	}
	for _, c := range cases {
		rec, out := serve(t, &fakeSvc{err: c.err}, `{}`)
		require.Equal(t, c.status, rec.Code)
		require.Equal(t, c.code, out["code"])
		require.NotContains(t, out["error"], "deadline")
	}
}

func TestAnalytics_BodyChecksRunBeforeService(t *testing.T) {
	t.Parallel()

	s := &fakeSvc{}
	rec, out := serve(t, s, ``)
	require.Equal(t, stdhttp.StatusBadRequest, rec.Code)
	require.Equal(t, "Request body is required", out["error"])

	rec, out = serve(t, s, `{"filter":`)
	require.Equal(t, stdhttp.StatusBadRequest, rec.Code)
	require.True(t, strings.HasPrefix(out["error"].(string), "Invalid JSON: "))
	require.Empty(t, s.body)
}
