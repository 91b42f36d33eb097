package repo

import (
	"time"

	"scoring/internal/services/api/scoring/domain"
)

// SelectTable picks the rollup for a date range from the two dates alone.
// An inclusive span of MonthlyThresholdDays or more reads the monthly table
func SelectTable(from, to time.Time) domain.Rollup {
	if SpanDays(from, to) >= domain.MonthlyThresholdDays {
		return domain.Rollup{Table: domain.TableMonthly, DateField: domain.DateFieldMonth}
	}
	return domain.Rollup{Table: domain.TableDaily, DateField: domain.DateFieldDay}
}

// SpanDays counts calendar days from..to inclusive
func SpanDays(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours()/24) + 1
}
