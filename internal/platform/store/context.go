package store

import (
	"context"

	"scoring/internal/platform/store/ch"
)

// WithQueryID tags ctx so the next clickhouse statement runs under query_id id
func WithQueryID(ctx context.Context, id string) context.Context {
	return ch.WithQueryID(ctx, id)
}

// QueryID retrieves a query id from context if present
func QueryID(ctx context.Context) (string, bool) {
	id := ch.QueryID(ctx)
	return id, id != ""
}
