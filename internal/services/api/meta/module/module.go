// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"context"
	"net/http"
	"time"

	"scoring/internal/core/version"
	modkit "scoring/internal/modkit"
	"scoring/internal/modkit/httpkit"
	"scoring/internal/modkit/module"
	str "scoring/internal/platform/strings"

	metahttp "scoring/internal/services/api/meta/http"
)

// Module implements the modkit.Module interface
type Module struct {
	deps      modkit.Deps
	built     modkit.Built
	startedAt time.Time

	// index lists every mounted module; nil skips the index route
	index []modkit.Module
	base  string
}

// New constructs a meta module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	return &Module{deps: deps, built: b, startedAt: time.Now()}
}

// WithIndex serves GET / listing the endpoints of mods and of meta itself, with paths under base
func (m *Module) WithIndex(base string, mods ...modkit.Module) *Module {
	m.index = append(append([]modkit.Module(nil), mods...), m)
	m.base = base
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	if m.index != nil {
		metahttp.RegisterIndex(r, m.base, func() []module.Endpoint { return module.Endpoints(m.index...) })
	}
	m.built.Mount(r, func(rr httpkit.Router) {
		metahttp.Register(rr, metahttp.Deps{
			ServiceName: version.Service,
			StartedAt:   m.startedAt,
			Ping:        m.ping(),
		})
	})
}

func (m *Module) ping() func(context.Context) error {
	if m.deps.CH == nil {
		return nil
	}
	return m.deps.Ping
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.built.Name, "meta") }

// Prefix implements the modkit.Module interface
func (m *Module) Prefix() string { return str.MustPrefix(m.built.Prefix) }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return ports{prefix: m.Prefix()} }

type ports struct{ prefix string }

// Endpoints lists the meta routes
func (p ports) Endpoints() []module.Endpoint {
	return []module.Endpoint{
		{Method: http.MethodGet, Path: "/", Description: "API index"},
		{Method: http.MethodGet, Path: p.prefix + "/health", Description: "Liveness"},
		{Method: http.MethodGet, Path: p.prefix + "/ready", Description: "Readiness, pings clickhouse"},
		{Method: http.MethodGet, Path: p.prefix + "/version", Description: "Build info"},
	}
}
