// Package service runs the dashboard queries
package service

import (
	"context"

	"scoring/internal/modkit/repokit"
	perr "scoring/internal/platform/errors"
	"scoring/internal/platform/logger"
	"scoring/internal/services/api/dashboard/domain"
	"scoring/internal/services/api/dashboard/repo"

	"golang.org/x/sync/errgroup"
)

// Service defines the dashboard service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the dashboard service
type Svc struct {
	Repo repo.Repo
}

// New constructs a dashboard service
func New(q repokit.Queryer, binder repokit.Binder[repo.Repo]) *Svc {
	if binder == nil {
		panic("dashboard.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: repokit.MustBind(binder, q)}
}

// Businesses runs the independent business_scores queries concurrently; the first failure cancels the rest
func (s *Svc) Businesses(ctx context.Context, f domain.BusinessFilter) (domain.BusinessDashboard, error) {
	c := repo.BusinessClause(f)
	order := repo.Sort(f.Sort, f.Dir, domain.DefaultBusinessSort, domain.BusinessSortColumns)

	out := domain.BusinessDashboard{CompanySizes: domain.CompanySizes}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		out.Results, err = s.Repo.Businesses(gctx, c, order, domain.ResultsLimit)
		return
	})
	g.Go(func() (err error) {
		out.Total, err = s.Repo.Count(gctx, c)
		return
	})
	g.Go(func() (err error) {
		out.AvgScore, err = s.Repo.AvgScore(gctx, c)
		return
	})
	g.Go(func() (err error) {
		out.AvgByCompanySize, err = s.Repo.AvgBySize(gctx, c)
		return
	})
	g.Go(func() (err error) {
		out.CountByCompanySize, err = s.Repo.CountBySize(gctx, c)
		return
	})
	g.Go(func() (err error) {
		out.LowestScores, err = s.Repo.Lowest(gctx, c, domain.LowestLimit)
		return
	})
	g.Go(func() (err error) {
		out.Categories, err = s.Repo.Categories(gctx)
		return
	})
	if err := g.Wait(); err != nil {
		logger.C(ctx).Error().Err(err).Interface("params", c.Params).Msg("business dashboard query failed")
		return domain.BusinessDashboard{}, perr.Database(err)
	}
	return out, nil
}

// Daily returns per day and category averages plus the dropdown values
func (s *Svc) Daily(ctx context.Context, f domain.DailyFilter) (domain.DailyDashboard, error) {
	c := repo.DailyClause(f)
	order := repo.Sort(f.Sort, f.Dir, domain.DefaultDailySort, domain.DailySortColumns)

	var out domain.DailyDashboard
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		out.Rows, err = s.Repo.Daily(gctx, c, order, domain.DailyLimit)
		return
	})
	g.Go(func() (err error) {
		out.OverallAvg, err = s.Repo.AvgScore(gctx, c)
		return
	})
	g.Go(func() (err error) {
		out.Categories, err = s.Repo.Categories(gctx)
		return
	})
	g.Go(func() (err error) {
		out.CompanyIDs, err = s.Repo.CompanyIDs(gctx)
		return
	})
	if err := g.Wait(); err != nil {
		logger.C(ctx).Error().Err(err).Interface("params", c.Params).Msg("daily analytics query failed")
		return domain.DailyDashboard{}, perr.Database(err)
	}
	out.Total = len(out.Rows)
	return out, nil
}
