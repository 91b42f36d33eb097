package seed

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"scoring/internal/platform/store"

	"github.com/stretchr/testify/require"
)

type recordingCH struct {
	mu      sync.Mutex
	execs   []string
	inserts map[string]int
	batches map[string]int
	failOn  string
}

func newRecordingCH() *recordingCH {
	return &recordingCH{inserts: map[string]int{}, batches: map[string]int{}}
}

func (r *recordingCH) Query(context.Context, string, map[string]any) (store.Rows, error) {
	return nil, errors.New("not used")
}

func (r *recordingCH) Exec(_ context.Context, sql string, _ map[string]any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.execs = append(r.execs, sql)
	return nil
}

func (r *recordingCH) Insert(_ context.Context, table string, cols []string, rows [][]any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if table == r.failOn {
		return errors.New("code: 252, too many parts")
	}
	for _, row := range rows {
		if len(row) != len(cols) {
			return errors.New("row width mismatch")
		}
	}
	r.inserts[table] += len(rows)
	r.batches[table]++
	return nil
}

func (r *recordingCH) Close() error { return nil }

func TestRun(t *testing.T) {
	t.Parallel()

	ch := newRecordingCH()
	stats, err := New(ch, Options{
		Rows: 250, Batch: 100, Days: 3, Companies: 5, Users: 10, Workers: 2, Churn: 120, Seed: 9, Now: fixedNow,
	}).Run(context.Background())
	require.NoError(t, err)

	require.Equal(t, int64(250), stats.Business)
	require.Equal(t, 250, ch.inserts[TableBusinessScores])
	require.Equal(t, 3, ch.batches[TableBusinessScores])

	require.Equal(t, int(stats.Daily), ch.inserts[TableDaily])
	require.Positive(t, stats.Daily)

	require.Equal(t, int64(120), stats.Churn)
	require.Equal(t, 2, ch.batches[TableChurnEvents])

	// schema first, then the monthly refresh after the daily inserts
	require.Len(t, ch.execs, len(Schema)+len(RefreshMonthly))
	require.True(t, strings.HasPrefix(ch.execs[0], "CREATE TABLE IF NOT EXISTS business_scores"))
	require.True(t, strings.HasPrefix(ch.execs[len(Schema)], "TRUNCATE TABLE IF EXISTS company_scores_monthly"))
	require.Contains(t, ch.execs[len(Schema)+1], "toStartOfMonth(day)")
}

func TestRun_InsertFailureStops(t *testing.T) {
	t.Parallel()

	ch := newRecordingCH()
	ch.failOn = TableBusinessScores
	_, err := New(ch, Options{Rows: 10, Days: 1, Now: fixedNow}).Run(context.Background())
	require.ErrorContains(t, err, "business scores: code: 252")
	require.Zero(t, ch.inserts[TableDaily])
}

func TestRun_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New(newRecordingCH(), Options{Rows: 10, Now: fixedNow}).Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestOptions(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, Options{}.Validate(), ErrNoWork)
	require.NoError(t, Options{Churn: 1}.Validate())

	o := Options{}.withDefaults()
	require.Equal(t, 100_000, o.Batch)
	require.Equal(t, 4, o.Workers)
	require.InDelta(t, 0.4, o.ChurnShare, 1e-9)
	require.False(t, o.Now.IsZero())
}

func TestChunks(t *testing.T) {
	t.Parallel()

	rows := make([][]any, 5)
	var sizes []int
	for c := range chunks(rows, 2) {
		sizes = append(sizes, len(c))
	}
	require.Equal(t, []int{2, 2, 1}, sizes)
}
