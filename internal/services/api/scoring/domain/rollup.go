package domain

// Rollup tables and their date columns
const (
	TableDaily   = "company_scores_daily"
	TableMonthly = "company_scores_monthly"

	DateFieldDay   = "day"
	DateFieldMonth = "month"
)

// MonthlyThresholdDays is the inclusive span at which the monthly rollup takes over
const MonthlyThresholdDays = 90

// Rollup is the pre-aggregated table a query runs against
type Rollup struct {
	Table     string
	DateField string
}

// Monthly reports whether r is the month-grained rollup
func (r Rollup) Monthly() bool { return r.DateField == DateFieldMonth }

var groupColumns = map[GroupField]string{
	GroupCompanyID:    "company_id",
	GroupUserID:       "user_id",
	GroupScoreContext: "score_context",
	GroupDay:          DateFieldDay,
	GroupMonth:        DateFieldMonth,
}

// Column returns the result column name for a dimension under dateField.
// day reads as month on the monthly rollup
func (g GroupField) Column(dateField string) string {
	col := groupColumns[g]
	if col == DateFieldDay && dateField == DateFieldMonth {
		return DateFieldMonth
	}
	return col
}

// Column returns the sort column for f under dateField
func (f OrderField) Column(dateField string) string {
	if f.IsAggregate() {
		return string(f)
	}
	return GroupField(f).Column(dateField)
}
