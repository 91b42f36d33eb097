// Package store provides the clickhouse facade the api and the seeder share
package store

import (
	"context"
	"errors"
	"fmt"

	"scoring/internal/platform/logger"
)

// Store is the facade for the analytical backend
// zero value is safe but does nothing
type Store struct {
	// Log is the logger used by subclients
	// zero means a no op zerolog logger
	Log logger.Logger

	// CH is the clickhouse seam, nil when disabled
	CH Clickhouse
}

// Rows exposes the minimal iteration and scan for a result set
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
	Columns() []string
}

// Clickhouse is a tiny seam for columnar writes and parameterized reads.
// params bind to {name:Type} placeholders server side; values never get spliced into sql
type Clickhouse interface {
	Query(ctx context.Context, sql string, params map[string]any) (Rows, error)
	Exec(ctx context.Context, sql string, params map[string]any) error
	Insert(ctx context.Context, table string, cols []string, rows [][]any) error
	Close() error
}

// Pinger is any seam that can report readiness
type Pinger interface{ Ping(context.Context) error }

// Open constructs a Store with the requested backends
// backends not enabled in cfg remain nil on the Store
func Open(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	s := &Store{}
	for _, o := range opts {
		if err := o(s); err != nil {
			return nil, err
		}
	}

	// defaults for zero logger to avoid nil checks
	s.Log = s.Log.With().Str("component", "store").Logger()

	if cfg.CH.Enabled {
		chClient, err := openCH(ctx, cfg, s)
		if err != nil {
			return nil, err
		}
		s.CH = chClient
	}

	return s, nil
}

// Guard verifies all configured seams the Store knows about
func (s *Store) Guard(ctx context.Context) error {
	if s == nil {
		return errors.New("nil store")
	}
	if s.CH == nil {
		return errors.New("clickhouse not configured")
	}
	if p, ok := s.CH.(Pinger); ok {
		if err := p.Ping(ctx); err != nil {
			return fmt.Errorf("ch: %w", err)
		}
	}
	return nil
}

// Close closes all initialized backends gracefully
// nil backends are ignored
func (s *Store) Close(context.Context) error {
	if s == nil || s.CH == nil {
		return nil
	}
	return s.CH.Close()
}
