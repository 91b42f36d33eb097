// Package modkit provides module wiring and core deps
package modkit

import (
	"context"
	"errors"

	"scoring/internal/platform/config"
	"scoring/internal/platform/logger"
	"scoring/internal/platform/metrics"
	"scoring/internal/platform/store"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log     logger.Logger
	Cfg     config.Conf
	CH      store.Clickhouse
	Metrics *metrics.Metrics
}

// Ping reports whether the clickhouse seam answers
func (d Deps) Ping(ctx context.Context) error {
	if d.CH == nil {
		return errors.New("clickhouse not configured")
	}
	p, ok := d.CH.(store.Pinger)
	if !ok {
		return nil
	}
	return p.Ping(ctx)
}
