package seed

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"sync/atomic"
	"time"

	"scoring/internal/platform/logger"
	"scoring/internal/platform/store"

	"golang.org/x/sync/errgroup"
)

// Options sizes a seeding run
type Options struct {
	Rows       int     // business_scores rows
	Batch      int     // rows per insert
	Days       int     // days of daily company scores ending today
	Companies  int     // company id range 1..Companies
	Users      int     // user id range 1..Users
	Workers    int     // concurrent insert batches
	Churn      int     // churn_events rows, 0 skips
	ChurnShare float64 // share of companies that only lose points
	Seed       uint64
	Now        time.Time
}

func (o Options) withDefaults() Options {
	if o.Batch <= 0 {
		o.Batch = 100_000
	}
	if o.Companies <= 0 {
		o.Companies = 50
	}
	if o.Users <= 0 {
		o.Users = 500
	}
	if o.Workers <= 0 {
		o.Workers = 4
	}
	if o.ChurnShare <= 0 {
		o.ChurnShare = 0.4
	}
	if o.Now.IsZero() {
		o.Now = time.Now()
	}
	return o
}

// Stats counts what a run inserted
type Stats struct {
	Business int64
	Daily    int64
	Churn    int64
}

// Seeder writes synthetic data through a clickhouse seam
type Seeder struct {
	ch   store.Clickhouse
	opts Options
	log  *logger.Logger
}

// New constructs a Seeder
func New(ch store.Clickhouse, opts Options) *Seeder {
	if ch == nil {
		panic("seed: nil clickhouse")
	}
	return &Seeder{ch: ch, opts: opts.withDefaults(), log: logger.Named("seed")}
}

// Run creates the schema, inserts every table and refreshes the monthly rollup
func (s *Seeder) Run(ctx context.Context) (Stats, error) {
	var st Stats
	if err := EnsureSchema(ctx, s.ch); err != nil {
		return st, err
	}

	start := time.Now()
	n, err := s.businessScores(ctx)
	st.Business = n
	if err != nil {
		return st, fmt.Errorf("business scores: %w", err)
	}

	if st.Daily, err = s.dailyScores(ctx); err != nil {
		return st, fmt.Errorf("daily scores: %w", err)
	}
	for _, q := range RefreshMonthly {
		if err := s.ch.Exec(ctx, q, nil); err != nil {
			return st, fmt.Errorf("refresh monthly: %w", err)
		}
	}

	if st.Churn, err = s.churnEvents(ctx); err != nil {
		return st, fmt.Errorf("churn events: %w", err)
	}

	s.log.Info().
		Int64("business", st.Business).
		Int64("daily", st.Daily).
		Int64("churn", st.Churn).
		Dur("elapsed", time.Since(start)).
		Msg("seed complete")
	return st, nil
}

// batches runs fn once per batch index with at most Workers in flight
func (s *Seeder) batches(ctx context.Context, count int, fn func(ctx context.Context, i int) (int, error)) (int64, error) {
	var inserted atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Workers)
	for i := range count {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			n, err := fn(gctx, i)
			if err != nil {
				return err
			}
			inserted.Add(int64(n))
			return nil
		})
	}
	err := g.Wait()
	if err == nil && ctx.Err() != nil {
		err = ctx.Err()
	}
	return inserted.Load(), err
}

func (s *Seeder) businessScores(ctx context.Context) (int64, error) {
	o := s.opts
	if o.Rows <= 0 {
		return 0, nil
	}
	count := (o.Rows + o.Batch - 1) / o.Batch
	return s.batches(ctx, count, func(ctx context.Context, b int) (int, error) {
		g := NewGenerator(o.Seed, uint64(b), o.Now)
		first := b * o.Batch
		size := min(o.Batch, o.Rows-first)
		rows := make([][]any, size)
		for i := range rows {
			rows[i] = g.BusinessScore(uint64(first+i+1), o.Companies)
		}
		if err := s.ch.Insert(ctx, TableBusinessScores, BusinessColumns, rows); err != nil {
			return 0, err
		}
		s.log.Debug().Int("batch", b+1).Int("of", count).Int("rows", size).Msg("business batch")
		return size, nil
	})
}

// dailyScores inserts one batch per day, oldest first
func (s *Seeder) dailyScores(ctx context.Context) (int64, error) {
	o := s.opts
	if o.Days <= 0 {
		return 0, nil
	}
	today := time.Date(o.Now.Year(), o.Now.Month(), o.Now.Day(), 0, 0, 0, 0, time.UTC)
	return s.batches(ctx, o.Days, func(ctx context.Context, d int) (int, error) {
		day := today.AddDate(0, 0, d-o.Days+1)
		g := NewGenerator(o.Seed, 1<<32|uint64(d), o.Now)
		rows := g.DailyScores(day, o.Companies, o.Users, o.ChurnShare)
		for chunk := range chunks(rows, o.Batch) {
			if err := s.ch.Insert(ctx, TableDaily, DailyColumns, chunk); err != nil {
				return 0, err
			}
		}
		return len(rows), nil
	})
}

func (s *Seeder) churnEvents(ctx context.Context) (int64, error) {
	o := s.opts
	if o.Churn <= 0 {
		return 0, nil
	}
	cut := int(float64(o.Companies) * o.ChurnShare)
	count := (o.Churn + o.Batch - 1) / o.Batch
	return s.batches(ctx, count, func(ctx context.Context, b int) (int, error) {
		g := NewGenerator(o.Seed, 2<<32|uint64(b), o.Now)
		size := min(o.Batch, o.Churn-b*o.Batch)
		rows := make([][]any, size)
		for i := range rows {
			rows[i] = g.ChurnEvent(o.Companies, cut)
		}
		if err := s.ch.Insert(ctx, TableChurnEvents, ChurnColumns, rows); err != nil {
			return 0, err
		}
		return size, nil
	})
}

// chunks yields consecutive slices of at most n rows
func chunks(rows [][]any, n int) iter.Seq[[][]any] {
	return func(yield func([][]any) bool) {
		for len(rows) > 0 {
			k := min(n, len(rows))
			if !yield(rows[:k]) {
				return
			}
			rows = rows[k:]
		}
	}
}

// ErrNoWork is returned when every size option is zero
var ErrNoWork = errors.New("seed: nothing to do, set -rows, -days or -churn")

// Validate rejects runs that would insert nothing
func (o Options) Validate() error {
	if o.Rows <= 0 && o.Days <= 0 && o.Churn <= 0 {
		return ErrNoWork
	}
	return nil
}
