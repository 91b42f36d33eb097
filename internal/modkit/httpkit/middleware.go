package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"scoring/internal/platform/metrics"
	"scoring/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack; zero value is usable
type StackOptions struct {
	CORSOrigins []string
	SlowRequest time.Duration
	Timeout     time.Duration
	Metrics     *metrics.Metrics
}

// CommonStack returns the baseline middleware slice for the versioned api.
// Order matters: the request id must exist before the logger and recover see it
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	timeout := o.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	slow := o.SlowRequest
	if slow <= 0 {
		slow = 2 * time.Second
	}
	return []func(http.Handler) http.Handler{
		// tracing / correlation
		middleware.RequestID(),
		middleware.RealIP(),

		// observability
		middleware.AccessLog(middleware.AccessLogOptions{Slow: slow}),
		o.Metrics.Middleware,

		// safety
		middleware.RecoverJSON,

		// cache / freshness
		middleware.NoCache(),

		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.CORSOrigins}),
		middleware.Compress(flate.BestSpeed),
		middleware.Timeout(timeout),
	}
}
