// Package service contains the scoring analytics workflow
package service

import (
	"context"
	"math"
	"time"

	"scoring/internal/modkit/repokit"
	perr "scoring/internal/platform/errors"
	"scoring/internal/platform/logger"
	"scoring/internal/platform/metrics"
	"scoring/internal/platform/store"
	"scoring/internal/services/api/scoring/domain"
	"scoring/internal/services/api/scoring/repo"

	"github.com/google/uuid"
)

// Service defines the scoring service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the scoring service
type Svc struct {
	Repo    repo.Repo
	metrics *metrics.Metrics
	newID   func() string
}

// Option customizes Svc
type Option func(*Svc)

// WithMetrics records query timings and failures on m
func WithMetrics(m *metrics.Metrics) Option { return func(s *Svc) { s.metrics = m } }

// WithQueryIDs replaces the uuid query id source
func WithQueryIDs(fn func() string) Option { return func(s *Svc) { s.newID = fn } }

// New constructs a scoring service
func New(q repokit.Queryer, binder repokit.Binder[repo.Repo], opts ...Option) *Svc {
	if binder == nil {
		panic("scoring.Service requires a non nil Repo binder")
	}
	s := &Svc{Repo: repokit.MustBind(binder, q), newID: uuid.NewString}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Analytics runs validate, rollup selection, build, execute and transform for one request
func (s *Svc) Analytics(ctx context.Context, payload []byte) (domain.Result, error) {
	req, err := Validate(payload)
	if err != nil {
		return domain.Result{}, err
	}

	from, err := time.Parse(time.DateOnly, req.DateFrom)
	if err != nil {
		return domain.Result{}, perr.Internal(err)
	}
	to, err := time.Parse(time.DateOnly, req.DateTo)
	if err != nil {
		return domain.Result{}, perr.Internal(err)
	}
	rollup := repo.SelectTable(from, to)
	st := repo.Build(rollup, req)

	qid := s.newID()
	log := logger.C(ctx).With().
		Str("component", "scoring").
		Str("query_id", qid).
		Str("table", rollup.Table).
		Logger()
	log.Debug().Str("sql", st.SQL).Interface("params", st.Params).Msg("analytics query")

	res, err := s.Repo.Aggregate(store.WithQueryID(ctx, qid), st)
	s.metrics.ObserveQuery(rollup.Table, res.Elapsed, res.Count, err)
	if err != nil {
		log.Error().Err(err).Str("sql", st.SQL).Interface("params", st.Params).Msg("analytics query failed")
		return domain.Result{}, perr.Database(err)
	}
	if res.Count == 0 {
		return domain.Result{}, perr.NoData()
	}

	log.Debug().Int("rows", res.Count).Dur("elapsed", res.Elapsed).Msg("analytics query done")

	return domain.Result{
		Data: Transform(res.Rows, req.GroupBy, rollup.DateField),
		Meta: domain.Meta{
			TotalRows:   res.Count,
			Limit:       req.Limit,
			TableUsed:   rollup.Table,
			QueryTimeMs: roundMs(res.Elapsed),
		},
	}, nil
}

// roundMs renders d in milliseconds with two decimals
func roundMs(d time.Duration) float64 {
	return math.Round(float64(d)/float64(time.Millisecond)*100) / 100
}
