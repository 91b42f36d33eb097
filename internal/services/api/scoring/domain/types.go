// Package domain holds the scoring analytics request and result types
package domain

// GroupField is a request-facing dimension name accepted in group_by
type GroupField string

// Group-by dimensions in the order they are listed to clients
const (
	GroupCompanyID    GroupField = "companyId"
	GroupUserID       GroupField = "userId"
	GroupScoreContext GroupField = "scoreContext"
	GroupDay          GroupField = "day"
	GroupMonth        GroupField = "month"
)

// GroupFields is the closed group_by enumeration
var GroupFields = []GroupField{GroupCompanyID, GroupUserID, GroupScoreContext, GroupDay, GroupMonth}

// OrderField is a name accepted in order_by: any GroupField plus the aggregates
type OrderField string

// Aggregate names, always present on every row
const (
	OrderTotalPoints OrderField = "total_points"
	OrderDecayPoints OrderField = "decay_points"
	OrderEventsCount OrderField = "events_count"
	OrderDays        OrderField = "days"
)

// OrderFields is the closed order_by enumeration
var OrderFields = []OrderField{
	OrderField(GroupCompanyID), OrderField(GroupUserID), OrderField(GroupScoreContext),
	OrderField(GroupDay), OrderField(GroupMonth),
	OrderTotalPoints, OrderDecayPoints, OrderEventsCount, OrderDays,
}

// IsAggregate reports whether f names one of the four aggregate columns
func (f OrderField) IsAggregate() bool {
	switch f {
	case OrderTotalPoints, OrderDecayPoints, OrderEventsCount, OrderDays:
		return true
	}
	return false
}

// Direction is a normalized sort direction
type Direction string

// Directions as they appear in SQL
const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

// Limits on the number of returned rows
const (
	DefaultLimit = 1000
	MaxLimit     = 10000
)

// CompanyFilter restricts rows to (Include) or away from (!Include) one company
type CompanyFilter struct {
	Include bool
	Value   int64
}

// OrderClause is one validated order_by entry
type OrderClause struct {
	Field     OrderField
	Direction Direction
}

// ValidRequest is an analytics request that passed validation.
// Dates are YYYY-MM-DD with DateFrom <= DateTo; Limit is in [1, MaxLimit]
type ValidRequest struct {
	DateFrom string
	DateTo   string
	Company  *CompanyFilter
	GroupBy  []GroupField
	OrderBy  []OrderClause
	Limit    int
}

// Meta describes how a result was produced
type Meta struct {
	TotalRows   int     `json:"total_rows" example:"2"`
	Limit       int     `json:"limit" example:"1000"`
	TableUsed   string  `json:"table_used" example:"company_scores_daily"`
	QueryTimeMs float64 `json:"query_time_ms" example:"12.34"`
}

// Result is a successful analytics response
type Result struct {
	Data []AggregateRow
	Meta Meta
}
