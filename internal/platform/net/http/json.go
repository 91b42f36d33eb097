package http

import (
	"net/http"

	"scoring/internal/platform/net/http/bind"
)

// RawJSONHandler hands fn the request body once it is known to be present and well formed JSON
func RawJSONHandler(fn func(*http.Request, []byte) Response) Handler {
	return Handle(func(r *http.Request) Response {
		body, err := bind.ReadBody(r)
		if err != nil {
			return Error(err)
		}
		return fn(r, body)
	})
}

// QueryHandler binds and validates the query string into T before calling fn
func QueryHandler[T any](fn func(*http.Request, T) Response) Handler {
	return Handle(func(r *http.Request) Response {
		in, err := bind.Query[T](r)
		if err != nil {
			return Error(err)
		}
		return fn(r, in)
	})
}
