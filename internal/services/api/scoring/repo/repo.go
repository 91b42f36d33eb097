// Package repo provides clickhouse access for scoring analytics
package repo

import (
	"context"

	"scoring/internal/modkit/repokit"
	"scoring/internal/platform/store"
)

// Repo is the minimal persistence surface for scoring analytics
type Repo interface {
	// Aggregate executes st and returns its rows keyed by column alias
	Aggregate(ctx context.Context, st Statement) (repokit.Result, error)
}

type (
	// CH is a binder that binds the repo to a clickhouse Queryer
	CH struct{}
	// queries implements the Repo interface
	queries struct{ q repokit.Queryer }
)

// NewCH returns a binder that can bind the repo to a Queryer
func NewCH() repokit.Binder[Repo] { return CH{} }

// Bind wires a Queryer to the repo
func (CH) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

func (r *queries) Aggregate(ctx context.Context, st Statement) (repokit.Result, error) {
	return store.Select(ctx, r.q, st.SQL, st.Params)
}
