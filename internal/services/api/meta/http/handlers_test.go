package http

import (
	"context"
	"encoding/json"
	"errors"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"scoring/internal/modkit/module"
	phttp "scoring/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, mux *chi.Mux, path string) (int, map[string]any) {
	t.Helper()
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodGet, path, nil))
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return rec.Code, out
}

func TestReady(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		ping   func(context.Context) error
		status int
	}{
		{"ok", func(context.Context) error { return nil }, stdhttp.StatusOK},
		{"down", func(context.Context) error { return errors.New("connection refused") }, stdhttp.StatusServiceUnavailable},
		{"unconfigured", nil, stdhttp.StatusServiceUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			mux := chi.NewRouter()
			Register(phttp.AdaptChi(mux), Deps{ServiceName: "scoring-api", StartedAt: time.Now(), Ping: tc.ping})

			code, out := serve(t, mux, "/ready")
			require.Equal(t, tc.status, code)
			if tc.status != stdhttp.StatusOK {
				require.Equal(t, "UNAVAILABLE", out["code"])
				require.NotContains(t, out["error"], "refused")
			}
		})
	}
}

func TestHealthAndVersion(t *testing.T) {
	t.Parallel()

	mux := chi.NewRouter()
	Register(phttp.AdaptChi(mux), Deps{ServiceName: "scoring-api", StartedAt: time.Now()})

	code, out := serve(t, mux, "/health")
	require.Equal(t, stdhttp.StatusOK, code)
	data := out["data"].(map[string]any)
	require.Equal(t, true, data["ok"])
	require.Equal(t, "scoring-api", data["service"])

	code, out = serve(t, mux, "/version")
	require.Equal(t, stdhttp.StatusOK, code)
	require.Equal(t, "scoring-api", out["data"].(map[string]any)["service"])
}

func TestIndex(t *testing.T) {
	t.Parallel()

	mux := chi.NewRouter()
	RegisterIndex(phttp.AdaptChi(mux), "/api/v1/", func() []module.Endpoint {
		return []module.Endpoint{
			{Method: "GET", Path: "/", Description: "API index"},
			{Method: "POST", Path: "/scoring-analytics", Description: "scores"},
		}
	})

	code, out := serve(t, mux, "/")
	require.Equal(t, stdhttp.StatusOK, code)
	data := out["data"].(map[string]any)
	require.Equal(t, APIName, data["name"])
	require.NotEmpty(t, data["version"])

	eps := data["endpoints"].([]any)
	require.Equal(t, "/api/v1", eps[0].(map[string]any)["path"])
	require.Equal(t, "/api/v1/scoring-analytics", eps[1].(map[string]any)["path"])
}
