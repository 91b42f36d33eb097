package repo

import (
	"strings"

	str "scoring/internal/platform/strings"
	"scoring/internal/services/api/dashboard/domain"
)

// Clause is a filter split into PREWHERE and WHERE conditions with their bound values
type Clause struct {
	Prewhere []string
	Where    []string
	Params   map[string]any
}

// SQL renders the clause, empty when there are no conditions
func (c Clause) SQL() string {
	var parts []string
	if len(c.Prewhere) > 0 {
		parts = append(parts, "PREWHERE "+strings.Join(c.Prewhere, " AND "))
	}
	if len(c.Where) > 0 {
		parts = append(parts, "WHERE "+strings.Join(c.Where, " AND "))
	}
	return strings.Join(parts, " ")
}

func (c *Clause) pre(cond, name string, v any) {
	c.Prewhere = append(c.Prewhere, cond)
	c.Params[name] = v
}

func (c *Clause) where(cond, name string, v any) {
	c.Where = append(c.Where, cond)
	c.Params[name] = v
}

// BusinessClause builds the business_scores filter.
// category and company_size are low cardinality and go to PREWHERE
func BusinessClause(f domain.BusinessFilter) Clause {
	c := Clause{Params: map[string]any{}}
	if f.Category != "" {
		c.pre("category = {category:String}", "category", f.Category)
	}
	if f.CompanySize != "" {
		c.pre("company_size = {company_size:String}", "company_size", f.CompanySize)
	}
	if f.Name != "" {
		c.where("positionCaseInsensitiveUTF8(business_name, {name:String}) > 0", "name", f.Name)
	}
	dateBounds(&c, f.DateFrom, f.DateTo)
	if r, ok := domain.ScoreRanges[f.ScoreRange]; ok {
		c.where("score >= {score_min:Int32}", "score_min", r.Min)
		c.where("score <= {score_max:Int32}", "score_max", r.Max)
	}
	return c
}

// DailyClause builds the daily analytics filter
func DailyClause(f domain.DailyFilter) Clause {
	c := Clause{Params: map[string]any{}}
	if f.Category != "" {
		c.where("category = {category:String}", "category", f.Category)
	}
	if f.CompanyID > 0 {
		c.where("company_id = {company_id:UInt32}", "company_id", f.CompanyID)
	}
	dateBounds(&c, f.DateFrom, f.DateTo)
	return c
}

// dateBounds covers whole days of created_at
func dateBounds(c *Clause, from, to string) {
	if from != "" {
		c.where("created_at >= {created_from:DateTime}", "created_from", from+" 00:00:00")
	}
	if to != "" {
		c.where("created_at <= {created_to:DateTime}", "created_to", to+" 23:59:59")
	}
}

// Sort resolves a requested column and direction against a whitelist
func Sort(col, dir, def string, allowed []string) string {
	return str.OneOf(col, def, allowed...) + " " + str.OneOf(dir, domain.DefaultDir, "ASC", "DESC")
}
