// Package repo provides clickhouse access for the dashboards
package repo

import (
	"context"
	"errors"
	"math"

	"scoring/internal/modkit/repokit"
	"scoring/internal/platform/store"
	"scoring/internal/services/api/dashboard/domain"
)

// Repo is the read surface behind the dashboards
type Repo interface {
	Businesses(ctx context.Context, c Clause, order string, limit int) ([]domain.BusinessRow, error)
	Lowest(ctx context.Context, c Clause, limit int) ([]domain.BusinessRow, error)
	Count(ctx context.Context, c Clause) (uint64, error)
	AvgScore(ctx context.Context, c Clause) (float64, error)
	AvgBySize(ctx context.Context, c Clause) ([]domain.SizeAvg, error)
	CountBySize(ctx context.Context, c Clause) ([]domain.SizeCount, error)
	Categories(ctx context.Context) ([]string, error)
	CompanyIDs(ctx context.Context) ([]uint32, error)
	Daily(ctx context.Context, c Clause, order string, limit int) ([]domain.DailyRow, error)
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

const table = "business_scores"

// Businesses lists rows under an already whitelisted order
func (r *queries) Businesses(ctx context.Context, c Clause, order string, limit int) ([]domain.BusinessRow, error) {
	sql := `SELECT business_id, business_name, company_id, category, company_size, score, created_at
FROM ` + table + ` ` + c.SQL() + `
ORDER BY ` + order + `
LIMIT {limit:UInt32}`
	return store.StructsByName[domain.BusinessRow](ctx, r.q, sql, withLimit(c, limit))
}

func (r *queries) Lowest(ctx context.Context, c Clause, limit int) ([]domain.BusinessRow, error) {
	sql := `SELECT business_id, business_name, company_id, category, company_size, score
FROM ` + table + ` ` + c.SQL() + `
ORDER BY score ASC
LIMIT {limit:UInt32}`
	return store.StructsByName[domain.BusinessRow](ctx, r.q, sql, withLimit(c, limit))
}

func (r *queries) Count(ctx context.Context, c Clause) (uint64, error) {
	return store.Scalar[uint64](ctx, r.q, "SELECT count() AS total FROM "+table+" "+c.SQL(), c.Params)
}

// AvgScore is 0 on an empty match, where avg yields nan
func (r *queries) AvgScore(ctx context.Context, c Clause) (float64, error) {
	v, err := store.Scalar[float64](ctx, r.q, "SELECT avg(score) AS avg_score FROM "+table+" "+c.SQL(), c.Params)
	if errors.Is(err, store.ErrNoRows) || math.IsNaN(v) {
		return 0, nil
	}
	return v, err
}

func (r *queries) AvgBySize(ctx context.Context, c Clause) ([]domain.SizeAvg, error) {
	sql := "SELECT company_size, avg(score) AS avg_score FROM " + table + " " + c.SQL() +
		" GROUP BY company_size ORDER BY company_size"
	return store.StructsByName[domain.SizeAvg](ctx, r.q, sql, c.Params)
}

func (r *queries) CountBySize(ctx context.Context, c Clause) ([]domain.SizeCount, error) {
	sql := "SELECT company_size, count() AS count FROM " + table + " " + c.SQL() +
		" GROUP BY company_size ORDER BY company_size"
	return store.StructsByName[domain.SizeCount](ctx, r.q, sql, c.Params)
}

func (r *queries) Categories(ctx context.Context) ([]string, error) {
	type row struct {
		Category string `db:"category"`
	}
	rows, err := store.StructsByName[row](ctx, r.q, "SELECT DISTINCT category FROM "+table+" ORDER BY category", nil)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(rows))
	for i, x := range rows {
		out[i] = x.Category
	}
	return out, nil
}

func (r *queries) CompanyIDs(ctx context.Context) ([]uint32, error) {
	type row struct {
		CompanyID uint32 `db:"company_id"`
	}
	rows, err := store.StructsByName[row](ctx, r.q, "SELECT DISTINCT company_id FROM "+table+" ORDER BY company_id", nil)
	if err != nil {
		return nil, err
	}
	out := make([]uint32, len(rows))
	for i, x := range rows {
		out[i] = x.CompanyID
	}
	return out, nil
}

func (r *queries) Daily(ctx context.Context, c Clause, order string, limit int) ([]domain.DailyRow, error) {
	sql := `SELECT toDate(created_at) AS date, category, avg(score) AS avg_score, count() AS count
FROM ` + table + ` ` + c.SQL() + `
GROUP BY date, category
ORDER BY ` + order + `
LIMIT {limit:UInt32}`
	return store.StructsByName[domain.DailyRow](ctx, r.q, sql, withLimit(c, limit))
}

// withLimit copies the clause params and adds the row cap
func withLimit(c Clause, limit int) map[string]any {
	p := make(map[string]any, len(c.Params)+1)
	for k, v := range c.Params {
		p[k] = v
	}
	p["limit"] = limit
	return p
}
