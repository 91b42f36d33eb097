// Package seed creates the scoring schema and fills it with synthetic data
package seed

import (
	"context"
	"fmt"

	"scoring/internal/platform/store"
)

// Tables written by the seeder
const (
	TableBusinessScores = "business_scores"
	TableDaily          = "company_scores_daily"
	TableMonthly        = "company_scores_monthly"
	TableChurnEvents    = "churn_events"
)

// Schema is the DDL for every table, in creation order
var Schema = []string{
	`CREATE TABLE IF NOT EXISTS business_scores (
    business_id   UInt64,
    business_name String,
    company_id    UInt32,
    category      LowCardinality(String),
    company_size  LowCardinality(String),
    score         Int16,
    created_at    DateTime
) ENGINE = MergeTree
ORDER BY (category, company_size, created_at, business_id)`,

	`CREATE TABLE IF NOT EXISTS company_scores_daily (
    day           Date,
    company_id    UInt32,
    user_id       UInt64,
    score_context LowCardinality(String),
    total_points  Int64,
    decay_points  Int64,
    events_count  UInt64
) ENGINE = MergeTree
PARTITION BY toYYYYMM(day)
ORDER BY (day, company_id, user_id, score_context)`,

	`CREATE TABLE IF NOT EXISTS company_scores_monthly (
    month         Date,
    company_id    UInt32,
    user_id       UInt64,
    score_context LowCardinality(String),
    total_points  Int64,
    decay_points  Int64,
    events_count  UInt64
) ENGINE = MergeTree
PARTITION BY toYear(month)
ORDER BY (month, company_id, user_id, score_context)`,

	`CREATE TABLE IF NOT EXISTS churn_events (
    company_id   UInt32,
    event_time   DateTime,
    event_type   LowCardinality(String),
    score_points Int32,
    total_score  Int64
) ENGINE = MergeTree
ORDER BY (company_id, event_time)`,
}

// RefreshMonthly rebuilds the monthly rollup from the daily table
var RefreshMonthly = []string{
	"TRUNCATE TABLE IF EXISTS " + TableMonthly,
	`INSERT INTO ` + TableMonthly + `
SELECT toStartOfMonth(day) AS month, company_id, user_id, score_context,
       sum(total_points), sum(decay_points), sum(events_count)
FROM ` + TableDaily + `
GROUP BY month, company_id, user_id, score_context`,
}

// EnsureSchema creates missing tables
func EnsureSchema(ctx context.Context, q store.Clickhouse) error {
	for _, ddl := range Schema {
		if err := q.Exec(ctx, ddl, nil); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	return nil
}
