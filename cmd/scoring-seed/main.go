package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"scoring/internal/modkit/repokit"
	"scoring/internal/platform/config"
	"scoring/internal/platform/logger"
	"scoring/internal/platform/store"

	"scoring/internal/services/seed"
)

func main() {
	var (
		fRows      = flag.Int("rows", 1_000_000, "business_scores rows to insert")
		fBatch     = flag.Int("batch", 100_000, "rows per insert batch")
		fDays      = flag.Int("days", 400, "days of company_scores_daily ending today")
		fCompanies = flag.Int("companies", 50, "company id range 1..N")
		fUsers     = flag.Int("users", 500, "user id range 1..N")
		fWorkers   = flag.Int("workers", 4, "concurrent insert batches")
		fChurn     = flag.Int("churn", 0, "churn_events rows to insert, 0 skips")
		fSeed      = flag.Uint64("seed", uint64(time.Now().UnixNano()), "random seed")
	)
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := config.New()
	chCfg := root.Prefix("SERVICE_CLICKHOUSE_")

	l := logger.Get()

	opts := seed.Options{
		Rows:      *fRows,
		Batch:     *fBatch,
		Days:      *fDays,
		Companies: *fCompanies,
		Users:     *fUsers,
		Workers:   *fWorkers,
		Churn:     *fChurn,
		Seed:      *fSeed,
	}
	if err := opts.Validate(); err != nil {
		l.Panic().Err(err).Msg("bad flags")
	}

	st, err := store.Open(ctx, store.Config{
		AppName: "seed",
		CH: store.CHConfig{
			Enabled:     true,
			URL:         chCfg.MayString("URL", "http://clickhouse:8123"),
			User:        chCfg.MayString("USER", "app"),
			Password:    chCfg.MayString("PASSWORD", "app"),
			Database:    chCfg.MayString("DB", "scoring"),
			DialTimeout: chCfg.MayDuration("DIAL_TIMEOUT", 5*time.Second),
			// batch inserts run long
			ReadTimeout:    chCfg.MayDuration("READ_TIMEOUT", 5*time.Minute),
			ConnectRetries: chCfg.MayInt("CONNECT_RETRIES", 6),
		},
	}, store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()
	repokit.MustGuard(ctx, st)

	stats, err := seed.New(st.CH, opts).Run(ctx)
	if err != nil {
		l.Panic().Err(err).
			Int64("business", stats.Business).
			Int64("daily", stats.Daily).
			Int64("churn", stats.Churn).
			Msg("seed failed")
	}
}
