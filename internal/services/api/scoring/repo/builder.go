package repo

import (
	"fmt"
	"strings"

	"scoring/internal/services/api/scoring/domain"
)

// Statement is sql text plus the values bound to its {name:Type} placeholders
type Statement struct {
	SQL    string
	Params map[string]any
}

const aggregates = "sum(total_points) AS total_points, sum(decay_points) AS decay_points, " +
	"sum(events_count) AS events_count, count() AS days"

// Build renders the aggregate query for req against rollup.
// Identifiers come from closed enumerations and the limit is a validated int;
// dates and the company id travel as bound parameters
func Build(rollup domain.Rollup, req domain.ValidRequest) Statement {
	params := map[string]any{
		"date_from": req.DateFrom,
		"date_to":   req.DateTo,
	}

	cols := groupColumns(rollup, req.GroupBy)
	selects := make([]string, 0, len(cols)+1)
	for _, c := range cols {
		selects = append(selects, selectExpr(rollup, c))
	}
	selects = append(selects, aggregates)

	df := rollup.DateField
	where := []string{
		df + " >= {date_from:Date}",
		df + " <= {date_to:Date}",
	}
	if c := req.Company; c != nil && c.Value != 0 {
		op := "="
		if !c.Include {
			op = "!="
		}
		where = append(where, "company_id "+op+" {company_id:Int64}")
		params["company_id"] = c.Value
	}

	lines := []string{
		"SELECT " + strings.Join(selects, ", "),
		"FROM " + rollup.Table,
		"WHERE " + strings.Join(where, " AND "),
	}
	if len(cols) > 0 {
		lines = append(lines, "GROUP BY "+strings.Join(cols, ", "))
	}
	if len(req.OrderBy) > 0 {
		parts := make([]string, 0, len(req.OrderBy))
		for _, o := range req.OrderBy {
			parts = append(parts, o.Field.Column(df)+" "+string(o.Direction))
		}
		lines = append(lines, "ORDER BY "+strings.Join(parts, ", "))
	}
	lines = append(lines, fmt.Sprintf("LIMIT %d", clampLimit(req.Limit)))

	return Statement{SQL: strings.Join(lines, "\n"), Params: params}
}

// groupColumns resolves group_by to result columns, first occurrence wins
func groupColumns(rollup domain.Rollup, groupBy []domain.GroupField) []string {
	seen := make(map[string]bool, len(groupBy))
	out := make([]string, 0, len(groupBy))
	for _, g := range groupBy {
		col := g.Column(rollup.DateField)
		if seen[col] {
			continue
		}
		seen[col] = true
		out = append(out, col)
	}
	return out
}

// selectExpr derives month from day on the daily rollup, which has no month column
func selectExpr(rollup domain.Rollup, col string) string {
	if col == domain.DateFieldMonth && !rollup.Monthly() {
		return "toStartOfMonth(day) AS month"
	}
	return col
}

func clampLimit(n int) int {
	if n <= 0 {
		return domain.DefaultLimit
	}
	return min(n, domain.MaxLimit)
}
