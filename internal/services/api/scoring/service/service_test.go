package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"scoring/internal/modkit/repokit"
	perr "scoring/internal/platform/errors"
	"scoring/internal/platform/metrics"
	"scoring/internal/platform/store"
	"scoring/internal/platform/store/ch"
	"scoring/internal/services/api/scoring/domain"
	"scoring/internal/services/api/scoring/repo"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	res repokit.Result
	err error

	got     repo.Statement
	queryID string
}

func (f *fakeRepo) Aggregate(ctx context.Context, st repo.Statement) (repokit.Result, error) {
	f.got = st
	f.queryID, _ = store.QueryID(ctx)
	return f.res, f.err
}

type nopQueryer struct{ store.Clickhouse }

func newSvc(t *testing.T, f *fakeRepo, opts ...Option) *Svc {
	t.Helper()
	binder := repokit.BindFunc[repo.Repo](func(repokit.Queryer) repo.Repo { return f })
	return New(nopQueryer{}, binder, append([]Option{WithQueryIDs(func() string { return "q-1" })}, opts...)...)
}

func TestNew_PanicsWithoutBinderOrQueryer(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { New(nopQueryer{}, nil) })
	require.Panics(t, func() { New(nil, repo.NewCH()) })
}

func TestAnalytics_HappyPath(t *testing.T) {
	t.Parallel()

	f := &fakeRepo{res: repokit.Result{
		Rows: []map[string]any{
			{"company_id": uint32(1), "total_points": int64(100), "decay_points": int64(-3), "events_count": uint64(5), "days": uint64(2)},
		},
		Count:   1,
		Elapsed: 12345678 * time.Nanosecond,
	}}
	s := newSvc(t, f)

	res, err := s.Analytics(context.Background(), []byte(`{
		"filter":{"date_from":"2024-01-01","date_to":"2024-01-31","companyId":{"include":true,"value":1}},
		"group_by":["companyId"],
		"order_by":[{"field":"total_points","order":"desc"}]
	}`))
	require.NoError(t, err)

	require.Equal(t, "q-1", f.queryID)
	require.Equal(t, map[string]any{"date_from": "2024-01-01", "date_to": "2024-01-31", "company_id": int64(1)}, f.got.Params)
	require.Contains(t, f.got.SQL, "FROM company_scores_daily")

	require.Equal(t, domain.Meta{TotalRows: 1, Limit: 1000, TableUsed: domain.TableDaily, QueryTimeMs: 12.35}, res.Meta)

	b, err := json.Marshal(res.Data)
	require.NoError(t, err)
	require.JSONEq(t, `[{"companyId":1,"total_points":100,"decay_points":-3,"events_count":5,"days":2}]`, string(b))
}

func TestAnalytics_MonthlyForLongRanges(t *testing.T) {
	t.Parallel()

	f := &fakeRepo{res: repokit.Result{Rows: []map[string]any{{"month": time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}}, Count: 1}}
	s := newSvc(t, f)

	res, err := s.Analytics(context.Background(), []byte(`{"filter":{"date_from":"2024-01-01","date_to":"2024-03-30"},"group_by":["day"]}`))
	require.NoError(t, err)
	require.Equal(t, domain.TableMonthly, res.Meta.TableUsed)
	require.Contains(t, f.got.SQL, "GROUP BY month")

	v, ok := res.Data[0].Get("day")
	require.True(t, ok)
	require.Equal(t, "2024-01-01", v)
}

func TestAnalytics_ValidationShortCircuits(t *testing.T) {
	t.Parallel()

	f := &fakeRepo{}
	s := newSvc(t, f)

	_, err := s.Analytics(context.Background(), []byte(`{"filter":{}}`))
	require.True(t, perr.IsCode(err, perr.ErrorCodeValidation))
	require.Empty(t, f.got.SQL, "repo must not run")
}

func TestAnalytics_NoData(t *testing.T) {
	t.Parallel()

	s := newSvc(t, &fakeRepo{res: repokit.Result{Rows: []map[string]any{}}})

	_, err := s.Analytics(context.Background(), []byte(`{"filter":{"date_from":"2024-01-01","date_to":"2024-01-01"}}`))
	require.True(t, perr.IsCode(err, perr.ErrorCodeNoData))
	require.Equal(t, perr.MsgNoData, err.Error())
}

func TestAnalytics_DatabaseErrorCountsFailure(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	boom := errors.New("code: 241, memory limit exceeded")
	s := newSvc(t, &fakeRepo{err: boom}, WithMetrics(m))

	_, err := s.Analytics(context.Background(), []byte(`{"filter":{"date_from":"2024-01-01","date_to":"2024-01-01"}}`))
	require.True(t, perr.IsCode(err, perr.ErrorCodeDB))
	require.ErrorIs(t, err, boom)
	require.Equal(t, perr.MsgDB, perr.WireFrom(err).Error)
	require.Equal(t, 1.0, testutil.ToFloat64(m.QueryErrorsTotal.WithLabelValues(domain.TableDaily)))
}

func TestAnalytics_ThroughClickhouse(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	q := store.NewClickhouse(ch.New(db))
	s := New(q, repo.NewCH())

	mock.ExpectQuery(`FROM company_scores_daily\s+WHERE day >= \{date_from:Date\} AND day <= \{date_to:Date\}`).
		WillReturnRows(sqlmock.NewRows([]string{"score_context", "total_points", "decay_points", "events_count", "days"}).
			AddRow("bid", int64(10), int64(0), uint64(1), uint64(1)).
			AddRow("login", int64(4), int64(-1), uint64(2), uint64(1)))

	res, err := s.Analytics(context.Background(), []byte(`{
		"filter":{"date_from":"2024-05-01","date_to":"2024-05-07"},
		"group_by":["scoreContext"],
		"limit":2
	}`))
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	require.Equal(t, 2, res.Meta.TotalRows)
	require.Equal(t, 2, res.Meta.Limit)
	v, _ := res.Data[1].Get("scoreContext")
	require.Equal(t, "login", v)
}

func TestRoundMs(t *testing.T) {
	t.Parallel()

	require.Equal(t, 1.5, roundMs(1500*time.Microsecond))
	require.Equal(t, 0.0, roundMs(0))
	require.Equal(t, 0.01, roundMs(9*time.Microsecond))
}
