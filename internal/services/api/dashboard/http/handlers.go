// Package http provides http transport for the dashboards
package http

import (
	stdhttp "net/http"

	"scoring/internal/modkit/httpkit"
	"scoring/internal/services/api/dashboard/domain"
	svc "scoring/internal/services/api/dashboard/service"
)

// Register mounts dashboard endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.GetQuery(r, "/business-scores", h.businesses)
	httpkit.GetQuery(r, "/daily-analytics", h.daily)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /business-scores Dashboard businessScores
// @Summary Business score dashboard
// @Tags Dashboard
// @Produce json
// @Param name query string false "Business name substring"
// @Param category query string false "Category"
// @Param company_size query string false "Company size" Enums(small, medium, large, enterprise)
// @Param date_from query string false "YYYY-MM-DD"
// @Param date_to query string false "YYYY-MM-DD"
// @Param score_range query string false "Score band, e.g. 20-40"
// @Param sort query string false "Sort column" default(created_at)
// @Param dir query string false "asc or desc" default(desc)
// @Success 200 {object} domain.BusinessDashboard "ok"
// @Router /business-scores [get]
func (h *handlers) businesses(r *stdhttp.Request, f domain.BusinessFilter) httpkit.Response {
	out, err := h.svc.Businesses(r.Context(), f)
	if err != nil {
		return httpkit.Error(err)
	}
	return httpkit.OK(out)
}

// swagger:route GET /daily-analytics Dashboard dailyAnalytics
// @Summary Average score per day and category
// @Tags Dashboard
// @Produce json
// @Param category query string false "Category"
// @Param company_id query int false "Company id"
// @Param date_from query string false "YYYY-MM-DD"
// @Param date_to query string false "YYYY-MM-DD"
// @Param sort query string false "Sort column" default(date)
// @Param dir query string false "asc or desc" default(desc)
// @Success 200 {object} domain.DailyDashboard "ok"
// @Router /daily-analytics [get]
func (h *handlers) daily(r *stdhttp.Request, f domain.DailyFilter) httpkit.Response {
	out, err := h.svc.Daily(r.Context(), f)
	if err != nil {
		return httpkit.Error(err)
	}
	return httpkit.OK(out)
}
