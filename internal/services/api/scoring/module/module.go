// Package module wires scoring analytics into the API using modkit
package module

import (
	modkit "scoring/internal/modkit"
	"scoring/internal/modkit/httpkit"
	str "scoring/internal/platform/strings"
	scoringhttp "scoring/internal/services/api/scoring/http"
	scoringrepo "scoring/internal/services/api/scoring/repo"
	scoringsvc "scoring/internal/services/api/scoring/service"
)

// Module implements the scoring module
type Module struct {
	built modkit.Built
	svc   scoringsvc.Service
	ports any
}

// New constructs the scoring module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("scoring"),
		modkit.WithPrefix("/scoring-analytics"),
	}, opts...)...)

	svc := scoringsvc.New(deps.CH, scoringrepo.NewCH(), scoringsvc.WithMetrics(deps.Metrics))

	m := &Module{built: b, svc: svc}
	m.ports = ports{svc: svc, prefix: b.Prefix}
	if b.Ports != nil {
		m.ports = b.Ports
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	m.built.Mount(r, func(rr httpkit.Router) {
		scoringhttp.Register(rr, m.svc)
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.built.Name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.built.Prefix) }
