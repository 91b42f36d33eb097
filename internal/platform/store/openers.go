package store

import (
	"context"
	"fmt"
	"time"

	chx "scoring/internal/platform/store/ch"
)

// seams for tests
var (
	chOpen  = chx.Open
	sleepFn = time.Sleep
)

// openCH opens clickhouse and pings with retry/backoff before publishing the adapter
func openCH(ctx context.Context, cfg Config, s *Store) (Clickhouse, error) {
	c, err := chOpen(ctx, chx.Config{
		URL:              cfg.CH.URL,
		User:             cfg.CH.User,
		Password:         cfg.CH.Password,
		Database:         cfg.CH.Database,
		DialTimeout:      cfg.CH.DialTimeout,
		ReadTimeout:      cfg.CH.ReadTimeout,
		MaxExecutionTime: cfg.CH.MaxExecutionTime,
		Role:             cfg.AppName,
		Tag:              cfg.Version,
	})
	if err != nil {
		return nil, err
	}

	attempts := cfg.CH.ConnectRetries
	if attempts <= 0 {
		attempts = 6
	}
	pingTimeout := cfg.CH.PingTimeout
	if pingTimeout <= 0 {
		pingTimeout = 3 * time.Second
	}
	const (
		backoffStart   = time.Second
		backoffCeiling = 16 * time.Second
	)

	var lastErr error
	backoff := backoffStart
	for i := 0; i < attempts; i++ {
		toCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		lastErr = c.Ping(toCtx)
		cancel()

		if lastErr == nil {
			return newCHAdapter(c), nil
		}
		if ctx.Err() != nil {
			_ = c.Close()
			return nil, ctx.Err()
		}
		s.Log.Warn().Err(lastErr).Int("attempt", i+1).Dur("backoff", backoff).Msg("clickhouse not ready")
		if i == attempts-1 {
			break
		}
		sleepFn(backoff)
		backoff = min(backoff*2, backoffCeiling)
	}

	_ = c.Close()
	return nil, fmt.Errorf("clickhouse ping failed after %d attempts: %w", attempts, lastErr)
}
