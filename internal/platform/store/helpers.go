package store

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"time"
)

// ErrNoRows is returned by single row helpers when the result set is empty
var ErrNoRows = errors.New("store: no rows")

// Result is one executed read: rows keyed by column alias plus timing
type Result struct {
	Rows    []map[string]any
	Count   int
	Elapsed time.Duration
}

// Select runs sql with bound params and returns every row as a column map.
// Elapsed covers the round trip and the scan
func Select(ctx context.Context, q Clickhouse, sql string, params map[string]any) (Result, error) {
	start := time.Now()
	rows, err := Maps(ctx, q, sql, params)
	if err != nil {
		return Result{}, err
	}
	return Result{Rows: rows, Count: len(rows), Elapsed: time.Since(start)}, nil
}

// Scalar queries the first row, first column into T
func Scalar[T any](ctx context.Context, q Clickhouse, sql string, params map[string]any) (T, error) {
	var zero T
	rows, err := q.Query(ctx, sql, params)
	if err != nil {
		return zero, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return zero, err
		}
		return zero, ErrNoRows
	}
	var v T
	if err := rows.Scan(&v); err != nil {
		return zero, err
	}
	return v, rows.Err()
}

// Maps returns all rows as []map[string]any
func Maps(ctx context.Context, q Clickhouse, sql string, params map[string]any) ([]map[string]any, error) {
	rows, err := q.Query(ctx, sql, params)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []map[string]any{}
	for rows.Next() {
		m, err := scanMap(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// StructsByName maps all rows into []T by matching columns to struct `db` tags or field names
func StructsByName[T any](ctx context.Context, q Clickhouse, sql string, params map[string]any) ([]T, error) {
	rows, err := q.Query(ctx, sql, params)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		item, err := scanStructByName[T](rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

// scanMap builds map[string]any using Rows.Columns
func scanMap(rows Rows) (map[string]any, error) {
	cols := rows.Columns()
	vals := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range vals {
		ptrs[i] = &vals[i]
	}
	if err := rows.Scan(ptrs...); err != nil {
		return nil, err
	}
	m := make(map[string]any, len(cols))
	for i, c := range cols {
		m[c] = deref(vals[i])
	}
	return m, nil
}

// deref flattens the pointer shapes the driver hands back for Nullable columns
func deref(v any) any {
	switch x := v.(type) {
	case *time.Time:
		if x == nil {
			return nil
		}
		return *x
	case *string:
		if x == nil {
			return nil
		}
		return *x
	case *int64:
		if x == nil {
			return nil
		}
		return *x
	case *float64:
		if x == nil {
			return nil
		}
		return *x
	default:
		return v
	}
}

// scanStructByName maps row into T based on `db` tags or lowercased field names
func scanStructByName[T any](rows Rows) (T, error) {
	var zero T
	m, err := scanMap(rows)
	if err != nil {
		return zero, err
	}

	rt := reflect.TypeOf((*T)(nil)).Elem()
	rv := reflect.New(rt).Elem()
	fieldIndex := indexStructFields(rt)

	for name, val := range m {
		if idx, ok := fieldIndex[strings.ToLower(name)]; ok {
			assign(rv.Field(idx), val)
		}
	}
	return rv.Interface().(T), nil
}

// indexStructFields returns lowercased db tag or field name -> index
func indexStructFields(t reflect.Type) map[string]int {
	out := make(map[string]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" { // unexported
			continue
		}
		key := f.Tag.Get("db")
		if key == "" || key == "-" {
			key = f.Name
		}
		out[strings.ToLower(key)] = i
	}
	return out
}

func assign(dst reflect.Value, src any) {
	if !dst.CanSet() {
		return
	}
	if src == nil {
		dst.Set(reflect.Zero(dst.Type()))
		return
	}
	sv := reflect.ValueOf(src)

	if sv.Type().AssignableTo(dst.Type()) {
		dst.Set(sv)
		return
	}
	// numeric widening (UInt64 sums into int64, Float32 into float64)
	if sv.Type().ConvertibleTo(dst.Type()) && isNumeric(sv.Kind()) == isNumeric(dst.Kind()) {
		dst.Set(sv.Convert(dst.Type()))
		return
	}
	if b, ok := src.([]byte); ok && dst.Kind() == reflect.String {
		dst.SetString(string(b))
		return
	}
	// time.Time into a string field renders as a calendar date
	if tm, ok := src.(time.Time); ok && dst.Kind() == reflect.String {
		dst.SetString(tm.Format(time.DateOnly))
	}
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
