package service

import (
	"strconv"
	"strings"
	"time"

	perr "scoring/internal/platform/errors"
	"scoring/internal/platform/net/http/bind"
	"scoring/internal/services/api/scoring/domain"
	"scoring/internal/services/api/scoring/repo"

	"github.com/tidwall/gjson"
)

var (
	allowedGroupBy = joinNames(domain.GroupFields)
	allowedOrderBy = joinNames(domain.OrderFields)
)

// Validate checks a raw analytics body and returns its typed form.
// Checks run in a fixed order and the first failure is returned as a VALIDATION_ERROR.
// Duplicate object keys resolve to their last occurrence
func Validate(payload []byte) (domain.ValidRequest, error) {
	var req domain.ValidRequest

	if !gjson.ValidBytes(payload) {
		return req, perr.Validationf("Invalid JSON: syntax error")
	}
	root := gjson.ParseBytes(payload)
	if !root.IsObject() {
		return req, perr.Validationf("Request body must be a JSON object")
	}

	body := members(root)

	filter := body["filter"]
	if !present(filter) {
		return req, field(perr.Validationf("Missing required field: filter"), "filter")
	}
	if !filter.IsObject() {
		return req, field(perr.Validationf("filter must be an object"), "filter")
	}

	fm := members(filter)
	from, to := fm["date_from"], fm["date_to"]
	if !present(from) {
		return req, field(perr.Validationf("Missing required field: filter.date_from"), "filter.date_from")
	}
	if !present(to) {
		return req, field(perr.Validationf("Missing required field: filter.date_to"), "filter.date_to")
	}
	if !isDate(from) {
		return req, field(perr.Validationf("Invalid date_from format. Expected YYYY-MM-DD"), "filter.date_from")
	}
	if !isDate(to) {
		return req, field(perr.Validationf("Invalid date_to format. Expected YYYY-MM-DD"), "filter.date_to")
	}
	// zero padded calendar dates order lexicographically
	if from.Str > to.Str {
		return req, field(perr.Validationf("date_from must be less than or equal to date_to"), "filter.date_from")
	}
	req.DateFrom, req.DateTo = from.Str, to.Str

	company, err := validateCompany(fm["companyId"])
	if err != nil {
		return req, err
	}
	req.Company = company

	if req.GroupBy, err = validateGroupBy(body["group_by"]); err != nil {
		return req, err
	}

	req.Limit = domain.DefaultLimit
	if limit := body["limit"]; present(limit) {
		n, ok := asInt(limit)
		if !ok || n < 1 || n > domain.MaxLimit {
			return req, field(perr.Validationf("limit must be an integer between 1 and %d", domain.MaxLimit), "limit")
		}
		req.Limit = int(n)
	}

	dateField := rollupFor(req.DateFrom, req.DateTo).DateField
	if req.OrderBy, err = validateOrderBy(body["order_by"], req.GroupBy, dateField); err != nil {
		return req, err
	}
	return req, nil
}

// validateCompany returns nil when no company restriction applies (absent, null, or value 0)
func validateCompany(c gjson.Result) (*domain.CompanyFilter, error) {
	if !present(c) {
		return nil, nil
	}
	if !c.IsObject() {
		return nil, field(perr.Validationf("filter.companyId must be an object"), "filter.companyId")
	}
	cm := members(c)
	include := cm["include"]
	if include.Type != gjson.True && include.Type != gjson.False {
		return nil, field(perr.Validationf("filter.companyId.include must be a boolean"), "filter.companyId.include")
	}
	value := cm["value"]
	if !present(value) {
		return nil, nil
	}
	n, ok := asInt(value)
	if !ok {
		return nil, field(perr.Validationf("filter.companyId.value must be an integer"), "filter.companyId.value")
	}
	if n == 0 {
		return nil, nil
	}
	return &domain.CompanyFilter{Include: include.Bool(), Value: n}, nil
}

func validateGroupBy(g gjson.Result) ([]domain.GroupField, error) {
	if !present(g) {
		return nil, nil
	}
	if !g.IsArray() {
		return nil, field(perr.Validationf("group_by must be an array of strings"), "group_by")
	}
	items := g.Array()
	out := make([]domain.GroupField, 0, len(items))
	for _, it := range items {
		f := domain.GroupField(it.Str)
		if it.Type != gjson.String || !contains(domain.GroupFields, f) {
			return nil, field(perr.Validationf("Invalid group_by field: %s. Allowed: %s", it.String(), allowedGroupBy), "group_by")
		}
		out = append(out, f)
	}
	return out, nil
}

// validateOrderBy compares dimensions by the column they resolve to on the chosen rollup,
// so day and month name the same column on the monthly table
func validateOrderBy(o gjson.Result, groupBy []domain.GroupField, dateField string) ([]domain.OrderClause, error) {
	if !present(o) {
		return nil, nil
	}
	if !o.IsArray() {
		return nil, field(perr.Validationf("order_by must be an array of objects"), "order_by")
	}
	items := o.Array()
	out := make([]domain.OrderClause, 0, len(items))
	for _, it := range items {
		if !it.IsObject() {
			return nil, field(perr.Validationf("order_by items must be objects with field and order properties"), "order_by")
		}
		im := members(it)
		name := im["field"]
		if name.Type != gjson.String {
			return nil, field(perr.Validationf("order_by.field is required and must be a string"), "order_by.field")
		}
		f := domain.OrderField(name.Str)
		if !contains(domain.OrderFields, f) {
			return nil, field(perr.Validationf("Invalid order_by field: %s. Allowed: %s", name.Str, allowedOrderBy), "order_by.field")
		}
		dir := im["order"]
		if dir.Type != gjson.String {
			return nil, field(perr.Validationf(`order_by.order must be "asc" or "desc"`), "order_by.order")
		}
		var d domain.Direction
		switch strings.ToLower(dir.Str) {
		case "asc":
			d = domain.Asc
		case "desc":
			d = domain.Desc
		default:
			return nil, field(perr.Validationf(`order_by.order must be "asc" or "desc"`), "order_by.order")
		}
		// a dimension outside GROUP BY is not selectable in an aggregate query
		if !f.IsAggregate() && !grouped(groupBy, f.Column(dateField), dateField) {
			return nil, field(perr.Validationf("order_by field %s must also appear in group_by", f), "order_by.field")
		}
		out = append(out, domain.OrderClause{Field: f, Direction: d})
	}
	return out, nil
}

// members indexes an object's keys; a repeated key keeps its last value, as encoding/json does
func members(obj gjson.Result) map[string]gjson.Result {
	m := make(map[string]gjson.Result)
	obj.ForEach(func(k, v gjson.Result) bool {
		m[k.Str] = v
		return true
	})
	return m
}

// rollupFor expects dates that already passed isDate
func rollupFor(from, to string) domain.Rollup {
	f, _ := time.Parse(time.DateOnly, from)
	t, _ := time.Parse(time.DateOnly, to)
	return repo.SelectTable(f, t)
}

func grouped(groupBy []domain.GroupField, col, dateField string) bool {
	for _, g := range groupBy {
		if g.Column(dateField) == col {
			return true
		}
	}
	return false
}

// present treats JSON null like an absent key
func present(r gjson.Result) bool { return r.Exists() && r.Type != gjson.Null }

func isDate(r gjson.Result) bool { return r.Type == gjson.String && bind.IsDate(r.Str) }

// asInt accepts JSON numbers written without fraction or exponent
func asInt(r gjson.Result) (int64, bool) {
	if r.Type != gjson.Number || strings.ContainsAny(r.Raw, ".eE") {
		return 0, false
	}
	n, err := strconv.ParseInt(r.Raw, 10, 64)
	return n, err == nil
}

func field(err error, name string) error { return perr.WithField(err, name) }

func contains[T comparable](set []T, v T) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func joinNames[T ~string](names []T) string {
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = string(n)
	}
	return strings.Join(parts, ", ")
}
