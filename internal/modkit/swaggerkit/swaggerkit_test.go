package swaggerkit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	phttp "scoring/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestServeDocJSON_FillsDefaults(t *testing.T) {
	rr := httptest.NewRecorder()
	serveDocJSON("Scoring")(rr, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	body := rr.Body.String()
	assert.Equal(t, "3.0.3", gjson.Get(body, "openapi").String())
	assert.Equal(t, "Scoring", gjson.Get(body, "info.title").String())
	assert.True(t, gjson.Get(body, "components.schemas.ErrorResponse").Exists())
	assert.Equal(t, "INTERNAL_ERROR",
		gjson.Get(body, `paths./api/v1/scoring-analytics.post.responses.500.content.application/json.example.code`).String())
}

func TestServeDocJSON_ParseError(t *testing.T) {
	orig := docReader
	docReader = func() string { return "{" }
	t.Cleanup(func() { docReader = orig })

	rr := httptest.NewRecorder()
	serveDocJSON("")(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestEnsureServers_Downconverts(t *testing.T) {
	spec := map[string]any{"swagger": "2.0"}
	ensureServers(spec, "/")
	assert.Equal(t, "3.0.3", spec["openapi"])
	_, has := spec["swagger"]
	assert.False(t, has)

	spec = map[string]any{"openapi": "3.1.0", "servers": []any{}}
	ensureServers(spec, "/")
	assert.Equal(t, "3.0.3", spec["openapi"])
	assert.Equal(t, []any{}, spec["servers"])
}

func TestMount(t *testing.T) {
	mux := chi.NewRouter()
	Mount(phttp.AdaptChi(mux), true, "")

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/docs", nil))
	assert.Equal(t, http.StatusPermanentRedirect, rr.Code)

	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	var spec map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &spec))

	off := chi.NewRouter()
	Mount(phttp.AdaptChi(off), false, "")
	rr = httptest.NewRecorder()
	off.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
