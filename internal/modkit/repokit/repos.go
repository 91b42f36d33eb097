// Package repokit provides common types and helpers for repository implementations
package repokit

import (
	"scoring/internal/platform/store"
)

// Queryer is the read and write surface repos use; clickhouse only
type Queryer = store.Clickhouse

// Rows are the result set of a query
type Rows = store.Rows

// Result is one executed read with timing
type Result = store.Result
