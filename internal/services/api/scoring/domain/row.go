package domain

import (
	"github.com/tidwall/sjson"
)

// KeyValue is one group-by value under its request-facing name
type KeyValue struct {
	Name  string
	Value any
}

// AggregateRow is one result row: the group-by values in group_by order, then the aggregates
type AggregateRow struct {
	Keys        []KeyValue
	TotalPoints int64
	DecayPoints int64
	EventsCount int64
	Days        int64
}

// Get returns the group-by value stored under name
func (r AggregateRow) Get(name string) (any, bool) {
	for _, kv := range r.Keys {
		if kv.Name == name {
			return kv.Value, true
		}
	}
	return nil, false
}

// MarshalJSON writes keys in group_by order followed by total_points, decay_points, events_count, days
func (r AggregateRow) MarshalJSON() ([]byte, error) {
	out := []byte("{}")
	var err error
	for _, kv := range r.Keys {
		if out, err = sjson.SetBytes(out, escapeKey(kv.Name), kv.Value); err != nil {
			return nil, err
		}
	}
	for _, agg := range []struct {
		name string
		v    int64
	}{
		{string(OrderTotalPoints), r.TotalPoints},
		{string(OrderDecayPoints), r.DecayPoints},
		{string(OrderEventsCount), r.EventsCount},
		{string(OrderDays), r.Days},
	} {
		if out, err = sjson.SetBytes(out, agg.name, agg.v); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// escapeKey keeps sjson from reading path syntax inside a key
func escapeKey(k string) string {
	var b []byte
	for i := 0; i < len(k); i++ {
		switch k[i] {
		case '.', '*', '?', '|', '#', '@', '\\', ':':
			b = append(b, '\\')
		}
		b = append(b, k[i])
	}
	return string(b)
}
