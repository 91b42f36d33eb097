// Package http provides http transport for scoring analytics
package http

import (
	stdhttp "net/http"

	"scoring/internal/modkit/httpkit"
	"scoring/internal/services/api/scoring/domain"
	svc "scoring/internal/services/api/scoring/service"
)

// Register mounts scoring endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// aggregated company scores over a date range
	httpkit.PostRaw(r, "/", h.analytics)
}

type handlers struct{ svc svc.Service }

// AnalyticsRequest documents the accepted body; validation runs on the raw JSON
type AnalyticsRequest struct {
	Filter struct {
		DateFrom  string `json:"date_from" example:"2024-01-01"`
		DateTo    string `json:"date_to" example:"2024-01-31"`
		CompanyID *struct {
			Include bool  `json:"include" example:"true"`
			Value   int64 `json:"value" example:"42"`
		} `json:"companyId,omitempty"`
	} `json:"filter"`
	GroupBy []string `json:"group_by,omitempty" enums:"companyId,userId,scoreContext,day,month"`
	OrderBy []struct {
		Field string `json:"field" example:"total_points"`
		Order string `json:"order" enums:"asc,desc"`
	} `json:"order_by,omitempty"`
	Limit int `json:"limit,omitempty" example:"100" minimum:"1" maximum:"10000"`
}

// AnalyticsResponse documents the success envelope
type AnalyticsResponse struct {
	Data []map[string]any `json:"data"`
	Meta domain.Meta      `json:"meta"`
}

// swagger:route POST /scoring-analytics Scoring scoringAnalytics
// @Summary Aggregated company scores
// @Description Sums total_points, decay_points and events_count over the daily or monthly rollup.
// @Description Ranges of 90 days or more read the monthly rollup.
// @Tags Scoring
// @Accept json
// @Produce json
// @Param payload body AnalyticsRequest true "Query"
// @Success 200 {object} AnalyticsResponse "ok"
// @Failure 400 {object} errors.Wire "VALIDATION_ERROR"
// @Failure 404 {object} errors.Wire "NO_DATA"
// @Router /scoring-analytics [post]
func (h *handlers) analytics(r *stdhttp.Request, body []byte) httpkit.Response {
	res, err := h.svc.Analytics(r.Context(), body)
	if err != nil {
		return httpkit.Error(err)
	}
	return httpkit.WithMeta(res.Data, res.Meta)
}
