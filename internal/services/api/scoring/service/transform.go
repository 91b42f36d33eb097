package service

import (
	"strconv"
	"time"

	"scoring/internal/services/api/scoring/domain"
)

// Transform shapes store rows into AggregateRows, preserving row order.
// Group values are read by resolved column and emitted under their request names;
// missing or NULL values are omitted and aggregates default to 0
func Transform(rows []map[string]any, groupBy []domain.GroupField, dateField string) []domain.AggregateRow {
	out := make([]domain.AggregateRow, 0, len(rows))
	for _, row := range rows {
		item := domain.AggregateRow{Keys: make([]domain.KeyValue, 0, len(groupBy))}
		for _, g := range groupBy {
			v, ok := row[g.Column(dateField)]
			if !ok || v == nil {
				continue
			}
			item.Keys = append(item.Keys, domain.KeyValue{Name: string(g), Value: keyValue(v)})
		}
		item.TotalPoints = toInt64(row[string(domain.OrderTotalPoints)])
		item.DecayPoints = toInt64(row[string(domain.OrderDecayPoints)])
		item.EventsCount = toInt64(row[string(domain.OrderEventsCount)])
		item.Days = toInt64(row[string(domain.OrderDays)])
		out = append(out, item)
	}
	return out
}

func keyValue(v any) any {
	switch x := v.(type) {
	case time.Time:
		return x.Format(time.DateOnly)
	case []byte:
		return string(x)
	default:
		return v
	}
}

func toInt64(v any) int64 {
	switch x := v.(type) {
	case int64:
		return x
	case int:
		return int64(x)
	case int8:
		return int64(x)
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	case uint:
		return int64(x)
	case uint8:
		return int64(x)
	case uint16:
		return int64(x)
	case uint32:
		return int64(x)
	case uint64:
		return int64(x)
	case float32:
		return int64(x)
	case float64:
		return int64(x)
	case []byte:
		return parseInt(string(x))
	case string:
		return parseInt(x)
	default:
		return 0
	}
}

func parseInt(s string) int64 {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int64(f)
	}
	return 0
}
