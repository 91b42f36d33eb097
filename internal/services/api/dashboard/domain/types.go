// Package domain holds the dashboard filters and result shapes
package domain

import (
	"context"
	"time"
)

// CompanySizes is the closed company_size enumeration in display order
var CompanySizes = []string{"small", "medium", "large", "enterprise"}

// ScoreRange is an inclusive score band
type ScoreRange struct {
	Min int
	Max int
}

// ScoreRanges maps the score_range query values to their bands
var ScoreRanges = map[string]ScoreRange{
	"-100--80": {-100, -80},
	"-80--60":  {-80, -60},
	"-60--40":  {-60, -40},
	"-40--20":  {-40, -20},
	"-20-0":    {-20, 0},
	"0-20":     {0, 20},
	"20-40":    {20, 40},
	"40-60":    {40, 60},
	"60-80":    {60, 80},
	"80-100":   {80, 100},
}

// BusinessSortColumns are the sortable business listing columns
var BusinessSortColumns = []string{"business_id", "business_name", "company_id", "category", "company_size", "score", "created_at"}

// DailySortColumns are the sortable daily analytics columns
var DailySortColumns = []string{"date", "category", "avg_score", "count"}

// Defaults applied when sort or dir is missing or unknown
const (
	DefaultBusinessSort = "created_at"
	DefaultDailySort    = "date"
	DefaultDir          = "DESC"
)

// Row caps
const (
	ResultsLimit = 100
	LowestLimit  = 10
	DailyLimit   = 1000
)

// BusinessFilter is the business-scores query string
type BusinessFilter struct {
	Name        string `form:"name" validate:"omitempty,max=200"`
	Category    string `form:"category" validate:"omitempty,max=64"`
	CompanySize string `form:"company_size" validate:"omitempty,oneof=small medium large enterprise"`
	DateFrom    string `form:"date_from" validate:"omitempty,datetime=2006-01-02"`
	DateTo      string `form:"date_to" validate:"omitempty,datetime=2006-01-02"`
	ScoreRange  string `form:"score_range" validate:"omitempty,oneof=-100--80 -80--60 -60--40 -40--20 -20-0 0-20 20-40 40-60 60-80 80-100"`
	Sort        string `form:"sort"`
	Dir         string `form:"dir"`
}

// DailyFilter is the daily-analytics query string
type DailyFilter struct {
	Category  string `form:"category" validate:"omitempty,max=64"`
	CompanyID int64  `form:"company_id" validate:"gte=0"`
	DateFrom  string `form:"date_from" validate:"omitempty,datetime=2006-01-02"`
	DateTo    string `form:"date_to" validate:"omitempty,datetime=2006-01-02"`
	Sort      string `form:"sort"`
	Dir       string `form:"dir"`
}

// BusinessRow is one business_scores row
type BusinessRow struct {
	BusinessID   uint64    `db:"business_id" json:"business_id" example:"1"`
	BusinessName string    `db:"business_name" json:"business_name" example:"Business 1"`
	CompanyID    uint32    `db:"company_id" json:"company_id" example:"7"`
	Category     string    `db:"category" json:"category" example:"plumbers"`
	CompanySize  string    `db:"company_size" json:"company_size" example:"small"`
	Score        int32     `db:"score" json:"score" example:"64"`
	CreatedAt    time.Time `db:"created_at" json:"created_at,omitzero"`
}

// SizeAvg is the average score of one company size
type SizeAvg struct {
	CompanySize string  `db:"company_size" json:"company_size" example:"large"`
	AvgScore    float64 `db:"avg_score" json:"avg_score" example:"78.4"`
}

// SizeCount is the row count of one company size
type SizeCount struct {
	CompanySize string `db:"company_size" json:"company_size" example:"large"`
	Count       uint64 `db:"count" json:"count" example:"2500"`
}

// BusinessDashboard is the business-scores payload
type BusinessDashboard struct {
	Results            []BusinessRow `json:"results"`
	Total              uint64        `json:"total" example:"10000"`
	AvgScore           float64       `json:"avg_score" example:"71.2"`
	AvgByCompanySize   []SizeAvg     `json:"avg_by_company_size"`
	CountByCompanySize []SizeCount   `json:"count_by_company_size"`
	LowestScores       []BusinessRow `json:"lowest_scores"`
	Categories         []string      `json:"categories"`
	CompanySizes       []string      `json:"company_sizes"`
}

// DailyRow is one (date, category) aggregate
type DailyRow struct {
	Date     string  `db:"date" json:"date" example:"2024-01-02"`
	Category string  `db:"category" json:"category" example:"roofers"`
	AvgScore float64 `db:"avg_score" json:"avg_score" example:"66.1"`
	Count    uint64  `db:"count" json:"count" example:"120"`
}

// DailyDashboard is the daily-analytics payload
type DailyDashboard struct {
	Rows       []DailyRow `json:"rows"`
	Total      int        `json:"total" example:"60"`
	OverallAvg float64    `json:"overall_avg" example:"70.3"`
	Categories []string   `json:"categories"`
	CompanyIDs []uint32   `json:"company_ids"`
}

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Businesses(ctx context.Context, f BusinessFilter) (BusinessDashboard, error)
	Daily(ctx context.Context, f DailyFilter) (DailyDashboard, error)
}
