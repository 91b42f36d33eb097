package repo

import (
	"strings"
	"testing"

	"scoring/internal/services/api/scoring/domain"

	"github.com/google/go-cmp/cmp"
)

var (
	daily   = domain.Rollup{Table: domain.TableDaily, DateField: domain.DateFieldDay}
	monthly = domain.Rollup{Table: domain.TableMonthly, DateField: domain.DateFieldMonth}
)

func TestBuild(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		rollup domain.Rollup
		req    domain.ValidRequest
		want   Statement
	}{
		{
			name:   "no grouping",
			rollup: daily,
			req:    domain.ValidRequest{DateFrom: "2024-01-01", DateTo: "2024-01-31", Limit: 1000},
			want: Statement{
				SQL: lines(
					"SELECT "+aggregates,
					"FROM company_scores_daily",
					"WHERE day >= {date_from:Date} AND day <= {date_to:Date}",
					"LIMIT 1000",
				),
				Params: map[string]any{"date_from": "2024-01-01", "date_to": "2024-01-31"},
			},
		},
		{
			name:   "grouped include company ordered",
			rollup: daily,
			req: domain.ValidRequest{
				DateFrom: "2024-01-01", DateTo: "2024-01-31",
				Company: &domain.CompanyFilter{Include: true, Value: 42},
				GroupBy: []domain.GroupField{domain.GroupCompanyID, domain.GroupScoreContext},
				OrderBy: []domain.OrderClause{
					{Field: domain.OrderTotalPoints, Direction: domain.Desc},
					{Field: domain.OrderField(domain.GroupCompanyID), Direction: domain.Asc},
				},
				Limit: 10,
			},
			want: Statement{
				SQL: lines(
					"SELECT company_id, score_context, "+aggregates,
					"FROM company_scores_daily",
					"WHERE day >= {date_from:Date} AND day <= {date_to:Date} AND company_id = {company_id:Int64}",
					"GROUP BY company_id, score_context",
					"ORDER BY total_points DESC, company_id ASC",
					"LIMIT 10",
				),
				Params: map[string]any{"date_from": "2024-01-01", "date_to": "2024-01-31", "company_id": int64(42)},
			},
		},
		{
			name:   "exclude company",
			rollup: daily,
			req: domain.ValidRequest{
				DateFrom: "2024-01-01", DateTo: "2024-01-02",
				Company: &domain.CompanyFilter{Include: false, Value: 7},
				Limit:   1,
			},
			want: Statement{
				SQL: lines(
					"SELECT "+aggregates,
					"FROM company_scores_daily",
					"WHERE day >= {date_from:Date} AND day <= {date_to:Date} AND company_id != {company_id:Int64}",
					"LIMIT 1",
				),
				Params: map[string]any{"date_from": "2024-01-01", "date_to": "2024-01-02", "company_id": int64(7)},
			},
		},
		{
			name:   "monthly rewrites day",
			rollup: monthly,
			req: domain.ValidRequest{
				DateFrom: "2024-01-01", DateTo: "2024-06-30",
				GroupBy: []domain.GroupField{domain.GroupDay, domain.GroupMonth, domain.GroupUserID},
				OrderBy: []domain.OrderClause{{Field: domain.OrderField(domain.GroupDay), Direction: domain.Asc}},
				Limit:   20000,
			},
			want: Statement{
				SQL: lines(
					"SELECT month, user_id, "+aggregates,
					"FROM company_scores_monthly",
					"WHERE month >= {date_from:Date} AND month <= {date_to:Date}",
					"GROUP BY month, user_id",
					"ORDER BY month ASC",
					"LIMIT 10000",
				),
				Params: map[string]any{"date_from": "2024-01-01", "date_to": "2024-06-30"},
			},
		},
		{
			name:   "month on daily rollup",
			rollup: daily,
			req: domain.ValidRequest{
				DateFrom: "2024-01-01", DateTo: "2024-01-31",
				GroupBy: []domain.GroupField{domain.GroupMonth},
				Company: &domain.CompanyFilter{Include: true},
			},
			want: Statement{
				SQL: lines(
					"SELECT toStartOfMonth(day) AS month, "+aggregates,
					"FROM company_scores_daily",
					"WHERE day >= {date_from:Date} AND day <= {date_to:Date}",
					"GROUP BY month",
					"LIMIT 1000",
				),
				Params: map[string]any{"date_from": "2024-01-01", "date_to": "2024-01-31"},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := Build(tc.rollup, tc.req)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("Build mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuild_UserValuesNeverInSQL(t *testing.T) {
	t.Parallel()

	st := Build(daily, domain.ValidRequest{
		DateFrom: "2024-01-01", DateTo: "2024-01-31",
		Company: &domain.CompanyFilter{Include: true, Value: 987654321},
		Limit:   5,
	})
	for _, v := range []string{"2024-01-01", "2024-01-31", "987654321"} {
		if strings.Contains(st.SQL, v) {
			t.Fatalf("value %q inlined in sql:\n%s", v, st.SQL)
		}
	}
}

func lines(ls ...string) string { return strings.Join(ls, "\n") }
