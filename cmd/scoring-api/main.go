// @title         ClickHouse Scoring Analytics API
// @version       1.0.0
// @description   Aggregated company score analytics over ClickHouse rollups

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"scoring/internal/core/version"
	"scoring/internal/platform/config"
	"scoring/internal/platform/logger"
	"scoring/internal/platform/metrics"
	phttp "scoring/internal/platform/net/http"
	"scoring/internal/platform/net/middleware"
	"scoring/internal/platform/store"

	"scoring/internal/services/api"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")
	chCfg := root.Prefix("SERVICE_CLICKHOUSE_") // chCfg lives under SERVICE_CLICKHOUSE_*

	// bring up logging early
	l := logger.Get()

	// open the platform store (clickhouse over http)
	st, err := store.Open(
		ctx,
		store.Config{
			AppName: "api",
			Version: version.Version(),
			CH: store.CHConfig{
				Enabled:          true,
				URL:              chCfg.MayString("URL", "http://clickhouse:8123"),
				User:             chCfg.MayString("USER", "app"),
				Password:         chCfg.MayString("PASSWORD", "app"),
				Database:         chCfg.MayString("DB", "scoring"),
				DialTimeout:      chCfg.MayDuration("DIAL_TIMEOUT", 5*time.Second),
				ReadTimeout:      chCfg.MayDuration("READ_TIMEOUT", 10*time.Second),
				MaxExecutionTime: chCfg.MayInt("MAX_EXECUTION_TIME", 0),
			},
		},
		store.WithLogger(*l),
	)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	// metrics registry with the process collectors
	var (
		m   *metrics.Metrics
		reg *prometheus.Registry
	)
	if apiCfg.MayBool("METRICS", true) {
		reg = prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		m = metrics.New(reg)
	}

	// http server (reads CORE_API_PORT and the timeouts); trailing slashes are tolerated everywhere
	srv := phttp.NewServer(apiCfg, func(mux *chi.Mux) {
		mux.Use(middleware.StripSlashes())
	})

	opts := api.Options{
		Config:         apiCfg,
		Store:          st,
		Logger:         l,
		EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
		EnableProfiler: apiCfg.MayBool("PROFILER", false),
		Metrics:        m,
		CORSOrigins:    apiCfg.MayCSV("CORS_ORIGINS", []string{"*"}),
		SlowRequest:    apiCfg.MayDuration("SLOW_REQUEST", 2*time.Second),
		Timeout:        apiCfg.MayDuration("REQUEST_TIMEOUT", 30*time.Second),
	}
	if reg != nil {
		opts.Gatherer = reg
	}
	mods := api.Mount(srv.Router(), opts)
	l.Info().Int("modules", len(mods)).Str("version", version.Version()).Msg("api mounted")

	// run until signalled
	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
