// Package strings provides small string helpers shared by modules
package strings

import std "strings"

// IfEmpty returns def if in is empty, otherwise returns in
func IfEmpty[T any](in []T, def []T) []T {
	if len(in) == 0 {
		return def
	}
	return in
}

// MustString returns s if it has non whitespace content otherwise panics
func MustString(s string, name string) string {
	if std.TrimSpace(s) == "" {
		panic(name + " is required")
	}
	return s
}

// MustPrefix normalizes a route prefix to a single leading slash and no trailing slash.
// An empty prefix is allowed and stays empty
func MustPrefix(s string) string {
	s = std.Trim(std.TrimSpace(s), "/")
	if s == "" {
		return ""
	}
	return "/" + s
}

// OneOf returns v if it case-insensitively matches one of allowed, else def.
// The returned value is the allowed spelling
func OneOf(v, def string, allowed ...string) string {
	v = std.TrimSpace(v)
	for _, a := range allowed {
		if std.EqualFold(v, a) {
			return a
		}
	}
	return def
}
