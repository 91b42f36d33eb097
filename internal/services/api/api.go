// Package api provides the HTTP API for the application
package api

import (
	"time"

	"scoring/internal/platform/config"
	"scoring/internal/platform/logger"
	"scoring/internal/platform/metrics"
	phttp "scoring/internal/platform/net/http"
	"scoring/internal/platform/store"

	"scoring/internal/modkit"
	"scoring/internal/modkit/httpkit"
	"scoring/internal/modkit/module"
	"scoring/internal/modkit/swaggerkit"

	dashmod "scoring/internal/services/api/dashboard/module"
	metahttp "scoring/internal/services/api/meta/http"
	metamod "scoring/internal/services/api/meta/module"
	scoringmod "scoring/internal/services/api/scoring/module"

	"github.com/prometheus/client_golang/prometheus"
)

// BasePath is where the versioned API is mounted
const BasePath = "/api/v1"

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool

	// Metrics, when set, instruments requests and queries; Gatherer backs GET /metrics
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer

	CORSOrigins []string
	SlowRequest time.Duration
	Timeout     time.Duration
}

// Mount mounts the API service onto the given router and returns the mounted modules
func Mount(r phttp.Router, opt Options) []module.Module {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg:     opt.Config,
		Metrics: opt.Metrics,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}
	if opt.Store != nil {
		deps.CH = opt.Store.CH
	}

	scoring := scoringmod.New(deps)
	dashboard := dashmod.New(deps)
	meta := metamod.New(deps).WithIndex(BasePath, scoring, dashboard)

	mods := []module.Module{meta, scoring, dashboard}

	stack := httpkit.CommonStack(httpkit.StackOptions{
		CORSOrigins: opt.CORSOrigins,
		SlowRequest: opt.SlowRequest,
		Timeout:     opt.Timeout,
		Metrics:     opt.Metrics,
	})

	// Swagger, profiler and metrics sit outside the versioned stack
	swaggerkit.Mount(r, opt.EnableSwagger, metahttp.APIName)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)
	if opt.Gatherer != nil {
		r.Handle("/metrics", metrics.Handler(opt.Gatherer))
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, stack, func(api httpkit.Router) {
		modkit.MountAll(api, mods...)
	})
	return mods
}
