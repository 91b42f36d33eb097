package store

import (
	"context"
	"errors"

	"scoring/internal/platform/store/ch"
)

// newCHAdapter wraps an existing *ch.CH as the store.Clickhouse seam
func newCHAdapter(c *ch.CH) Clickhouse {
	return &clickhouseAdapter{inner: c}
}

// NewClickhouse exposes the adapter for callers holding their own *ch.CH (tests, tools)
func NewClickhouse(c *ch.CH) Clickhouse { return newCHAdapter(c) }

// clickhouseAdapter adapts *ch.CH to the store.Clickhouse interface
type clickhouseAdapter struct {
	inner *ch.CH
}

var (
	_ Clickhouse = (*clickhouseAdapter)(nil)
	_ Pinger     = (*clickhouseAdapter)(nil)
)

func (a *clickhouseAdapter) Query(ctx context.Context, sql string, params map[string]any) (Rows, error) {
	r, err := a.inner.Query(ctx, sql, params)
	if err != nil {
		return nil, err
	}
	cols, err := r.Columns()
	if err != nil {
		_ = r.Close()
		return nil, err
	}
	return &rowsAdapter{r: r, cols: cols}, nil
}

func (a *clickhouseAdapter) Exec(ctx context.Context, sql string, params map[string]any) error {
	return a.inner.Exec(ctx, sql, params)
}

func (a *clickhouseAdapter) Insert(ctx context.Context, table string, cols []string, rows [][]any) error {
	return a.inner.Insert(ctx, table, cols, rows)
}

func (a *clickhouseAdapter) Close() error { return a.inner.Close() }

// Ping verifies connectivity with ClickHouse
func (a *clickhouseAdapter) Ping(ctx context.Context) error {
	if a == nil || a.inner == nil {
		return errors.New("store: nil clickhouse adapter")
	}
	return a.inner.Ping(ctx)
}

// rowsAdapter wraps ch.Rows as store.Rows
type rowsAdapter struct {
	r    ch.Rows
	cols []string
}

func (r *rowsAdapter) Next() bool             { return r.r.Next() }
func (r *rowsAdapter) Scan(dest ...any) error { return r.r.Scan(dest...) }
func (r *rowsAdapter) Err() error             { return r.r.Err() }
func (r *rowsAdapter) Close()                 { _ = r.r.Close() }
func (r *rowsAdapter) Columns() []string      { return r.cols }
