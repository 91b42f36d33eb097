package module

import (
	"context"
	"net/http"

	"scoring/internal/modkit/module"
	"scoring/internal/services/api/scoring/domain"
	scoringsvc "scoring/internal/services/api/scoring/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type ports struct {
	svc    scoringsvc.Service
	prefix string
}

var _ domain.ServicePort = ports{}

// Analytics runs one analytics request from another module
func (p ports) Analytics(ctx context.Context, payload []byte) (domain.Result, error) {
	return p.svc.Analytics(ctx, payload)
}

// Endpoints lists the routes served under the module prefix
func (p ports) Endpoints() []module.Endpoint {
	return []module.Endpoint{{
		Method:      http.MethodPost,
		Path:        p.prefix,
		Description: "Aggregated company scores over the daily or monthly rollup",
	}}
}
