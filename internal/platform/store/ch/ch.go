// Package ch provides a clickhouse client over the official driver's database/sql surface
package ch

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
)

// Config configures clickhouse client
type Config struct {
	// URL is http(s)://host:port; the scheme picks TLS
	URL      string
	User     string
	Password string
	Database string

	DialTimeout time.Duration
	ReadTimeout time.Duration

	// MaxExecutionTime is the server side query budget in seconds, 0 leaves the server default
	MaxExecutionTime int

	// Role and Tag end up in system.query_log client info
	Role string
	Tag  string
}

// Rows is the minimal result set iteration for ch
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
	Columns() ([]string, error)
}

// CH wraps a *sql.DB opened with the clickhouse HTTP protocol
type CH struct {
	db *sql.DB
}

// Options turns Config into driver options
func Options(cfg Config) (*clickhouse.Options, error) {
	u, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("ch: parse url: %w", err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("ch: url %q has no host", cfg.URL)
	}

	opts := &clickhouse.Options{
		Protocol: clickhouse.HTTP,
		Addr:     []string{u.Host},
		Auth: clickhouse.Auth{
			Database: cfg.Database,
			Username: cfg.User,
			Password: cfg.Password,
		},
		DialTimeout: cfg.DialTimeout,
		ReadTimeout: cfg.ReadTimeout,
		ClientInfo:  BuildClientInfo(cfg.Role, cfg.Tag),
	}
	switch strings.ToLower(u.Scheme) {
	case "https":
		opts.TLS = newTLSConfig(u.Hostname())
	case "http", "":
	default:
		return nil, fmt.Errorf("ch: unsupported scheme %q", u.Scheme)
	}
	if cfg.MaxExecutionTime > 0 {
		opts.Settings = clickhouse.Settings{"max_execution_time": cfg.MaxExecutionTime}
	}
	return opts, nil
}

// Open returns a client; it does not dial until the first query
func Open(_ context.Context, cfg Config) (*CH, error) {
	opts, err := Options(cfg)
	if err != nil {
		return nil, err
	}
	return New(clickhouse.OpenDB(opts)), nil
}

// New wraps an already open *sql.DB
func New(db *sql.DB) *CH { return &CH{db: db} }

// DB exposes the underlying pool
func (c *CH) DB() *sql.DB { return c.db }

type queryIDKey struct{}

// WithQueryID tags ctx so the next statement carries id as its clickhouse query_id
func WithQueryID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, queryIDKey{}, id)
}

// QueryID returns the id set by WithQueryID
func QueryID(ctx context.Context) string {
	s, _ := ctx.Value(queryIDKey{}).(string)
	return s
}

// bind moves named parameters and the query id into driver options on ctx
func bind(ctx context.Context, params map[string]any) context.Context {
	var opts []clickhouse.QueryOption
	if len(params) > 0 {
		p := make(clickhouse.Parameters, len(params))
		for k, v := range params {
			p[k] = FormatParam(v)
		}
		opts = append(opts, clickhouse.WithParameters(p))
	}
	if id := QueryID(ctx); id != "" {
		opts = append(opts, clickhouse.WithQueryID(id))
	}
	if len(opts) == 0 {
		return ctx
	}
	return clickhouse.Context(ctx, opts...)
}

// FormatParam renders a bound value the way the server parses {name:Type} placeholders
func FormatParam(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case time.Time:
		return x.Format(time.DateOnly)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

// Query runs a read with server side parameters
func (c *CH) Query(ctx context.Context, query string, params map[string]any) (Rows, error) {
	return c.db.QueryContext(bind(ctx, params), query)
}

// Exec runs DDL or an INSERT ... SELECT
func (c *CH) Exec(ctx context.Context, query string, params map[string]any) error {
	_, err := c.db.ExecContext(bind(ctx, params), query)
	return err
}

// Insert sends rows as one batch: every ExecContext appends, Commit flushes
func (c *CH) Insert(ctx context.Context, table string, cols []string, rows [][]any) (err error) {
	if len(rows) == 0 {
		return nil
	}
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf("INSERT INTO %s (%s)", table, strings.Join(cols, ", ")))
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, row := range rows {
		if len(row) != len(cols) {
			return fmt.Errorf("ch: row %d has %d values, want %d", i, len(row), len(cols))
		}
		if _, err = stmt.ExecContext(ctx, row...); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Ping verifies connectivity with a round trip
func (c *CH) Ping(ctx context.Context) error {
	if c == nil || c.db == nil {
		return errors.New("ch: nil client")
	}
	return c.db.PingContext(ctx)
}

// Close closes resources
func (c *CH) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}
