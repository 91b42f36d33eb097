// Package module wires the dashboards into the API using modkit
package module

import (
	"context"
	"net/http"

	modkit "scoring/internal/modkit"
	"scoring/internal/modkit/httpkit"
	"scoring/internal/modkit/module"
	str "scoring/internal/platform/strings"
	"scoring/internal/services/api/dashboard/domain"
	dashhttp "scoring/internal/services/api/dashboard/http"
	dashrepo "scoring/internal/services/api/dashboard/repo"
	dashsvc "scoring/internal/services/api/dashboard/service"
)

// Module implements the dashboard module
type Module struct {
	built modkit.Built
	svc   dashsvc.Service
}

// New constructs the dashboard module; routes sit at the API root unless a prefix is given
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("dashboard")}, opts...)...)
	return &Module{built: b, svc: dashsvc.New(deps.CH, dashrepo.NewCH())}
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	m.built.Mount(r, func(rr httpkit.Router) {
		dashhttp.Register(rr, m.svc)
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.built.Name, "module name") }

// Ports returns the module ports
func (m *Module) Ports() any {
	if m.built.Ports != nil {
		return m.built.Ports
	}
	return ports{svc: m.svc, prefix: str.MustPrefix(m.built.Prefix)}
}

type ports struct {
	svc    dashsvc.Service
	prefix string
}

func (p ports) Businesses(ctx context.Context, f domain.BusinessFilter) (domain.BusinessDashboard, error) {
	return p.svc.Businesses(ctx, f)
}

func (p ports) Daily(ctx context.Context, f domain.DailyFilter) (domain.DailyDashboard, error) {
	return p.svc.Daily(ctx, f)
}

// Endpoints lists the dashboard routes
func (p ports) Endpoints() []module.Endpoint {
	return []module.Endpoint{
		{Method: http.MethodGet, Path: p.prefix + "/business-scores", Description: "Business score dashboard data"},
		{Method: http.MethodGet, Path: p.prefix + "/daily-analytics", Description: "Average score per day and category"},
	}
}
