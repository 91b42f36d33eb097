// Package http provides meta endpoints
package http

import (
	stdctx "context"
	"net/http"
	"strings"
	"time"

	"scoring/internal/core/version"
	"scoring/internal/modkit/httpkit"
	"scoring/internal/modkit/module"
	perr "scoring/internal/platform/errors"
	"scoring/internal/platform/logger"
)

// APIName is reported by the API index
const APIName = "ClickHouse Scoring Analytics API"

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	// Ping checks the store; nil means not configured
	Ping         func(stdctx.Context) error
	ReadyTimeout time.Duration
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	if d.ReadyTimeout <= 0 {
		d.ReadyTimeout = 2 * time.Second
	}
	h := &handlers{deps: d}

	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
}

// RegisterIndex mounts the API index at the router root; listed paths are joined onto base
func RegisterIndex(r httpkit.Router, base string, endpoints func() []module.Endpoint) {
	h := &indexHandler{base: strings.TrimRight(base, "/"), endpoints: endpoints}
	httpkit.Get(r, "/", h.index)
}

type indexHandler struct {
	base      string
	endpoints func() []module.Endpoint
}

//
// Swagger DTOs and route docs
//

// IndexResponse is the API index payload
type IndexResponse struct {
	Name      string            `json:"name"      example:"ClickHouse Scoring Analytics API"`
	Version   string            `json:"version"   example:"1.0.0"`
	Endpoints []module.Endpoint `json:"endpoints"`
}

// HealthResponse is the health payload
// swagger:model
type HealthResponse struct {
	OK      bool   `json:"ok"       example:"true"`
	Service string `json:"service"  example:"scoring-api"`
	Started string `json:"started"  example:"2026-01-15T13:00:00Z"`
	Now     string `json:"now"      example:"2026-01-15T13:05:00Z"`
}

// ReadyCheck describes a single dependency check
type ReadyCheck struct {
	Name   string `json:"name"   example:"clickhouse"`
	Status string `json:"status" example:"ok"`
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"`
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2026-01-15T13:05:00Z"`
}

// swagger:route GET / Meta apiIndex
// @Summary API index
// @Tags Meta
// @Produce json
// @Success 200 {object} IndexResponse "ok"
// @Router / [get]
func (h *indexHandler) index(_ *http.Request) (any, error) {
	eps := h.endpoints()
	out := make([]module.Endpoint, len(eps))
	for i, e := range eps {
		e.Path = strings.TrimRight(h.base+e.Path, "/")
		if e.Path == "" {
			e.Path = "/"
		}
		out[i] = e
	}
	return IndexResponse{Name: APIName, Version: version.Version(), Endpoints: out}, nil
}

// swagger:route GET /meta/health Meta metaHealth
// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse "ok"
// @Router /meta/health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// swagger:route GET /meta/ready Meta metaReady
// @Summary Readiness probe, pings clickhouse
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse "ok"
// @Failure 503 {object} errors.Wire "UNAVAILABLE"
// @Router /meta/ready [get]
func (h *handlers) ready(r *http.Request) (any, error) {
	if h.deps.Ping == nil {
		return nil, perr.Unavailablef("clickhouse is not configured")
	}
	ctx, cancel := stdctx.WithTimeout(r.Context(), h.deps.ReadyTimeout)
	defer cancel()

	if err := h.deps.Ping(ctx); err != nil {
		logger.C(r.Context()).Warn().Err(err).Msg("readiness ping failed")
		return nil, perr.Unavailablef("clickhouse is not ready")
	}
	return ReadyResponse{
		Status: "ok",
		Checks: []ReadyCheck{{Name: "clickhouse", Status: "ok"}},
		Now:    time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// swagger:route GET /meta/version Meta metaVersion
// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo "ok"
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(), nil
}
