// Package http provides the router seam, server and JSON response helpers
package http

import (
	"encoding/json"
	stdhttp "net/http"

	perr "scoring/internal/platform/errors"
	"scoring/internal/platform/logger"
	pnet "scoring/internal/platform/net"
)

// Envelope is the success body: {"data": ..., "meta": ...}
type Envelope struct {
	Data any `json:"data,omitempty"`
	Meta any `json:"meta,omitempty"`
}

// JSON writes v as application/json with the given status
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError maps err onto {"error","code"} and its HTTP status.
// Server-side failures are logged with the full cause chain; the client only sees the wire message
func WriteError(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
	status, wire := perr.HTTP(err)
	if status >= stdhttp.StatusInternalServerError {
		logger.C(r.Context()).Error().Err(err).
			Str("code", string(wire.Code)).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("request failed")
	}
	if id := pnet.RequestID(r.Context()); id != "" {
		w.Header().Set("X-Request-ID", id)
	}
	JSON(w, status, wire)
}

// Response is a functional response object for return-style handlers
type Response struct {
	Status int
	Data   any
	Meta   any
	Err    error
	Header stdhttp.Header
}

// Handle adapts a Response-returning handler to net/http
func Handle(h func(r *stdhttp.Request) Response) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		h(r).write(w, r)
	}
}

func (resp Response) write(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	for k, vv := range resp.Header {
		for _, v := range vv {
			w.Header().Add(k, v)
		}
	}
	if resp.Err != nil {
		WriteError(w, r, resp.Err)
		return
	}
	status := resp.Status
	if status == 0 {
		status = stdhttp.StatusOK
	}
	if status == stdhttp.StatusNoContent {
		w.WriteHeader(status)
		return
	}
	JSON(w, status, Envelope{Data: resp.Data, Meta: resp.Meta})
}

// OK returns a 200 response with data
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Data: data} }

// WithMeta returns a 200 response with data and meta
func WithMeta(data, meta any) Response {
	return Response{Status: stdhttp.StatusOK, Data: data, Meta: meta}
}

// Error returns a response that maps err to status and wire body
func Error(err error) Response { return Response{Err: err} }

// NotFound is the JSON handler for unknown routes and methods
func NotFound(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	WriteError(w, r, perr.NotFound())
}
