package middleware_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"scoring/internal/platform/logger"
	"scoring/internal/platform/net/middleware"
)

func TestAccessLog_PassThroughStatusAndBody(t *testing.T) {
	mw := middleware.AccessLog(middleware.AccessLogOptions{})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, "no")
	})

	rr := httptest.NewRecorder()
	mw(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/x", nil))

	if rr.Code != http.StatusNotFound || rr.Body.String() != "no" {
		t.Fatalf("got %d %q", rr.Code, rr.Body.String())
	}
}

func TestAccessLog_BindsRequestID(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = logger.RequestID(r.Context())
	})
	h := middleware.RequestID()(middleware.AccessLog(middleware.AccessLogOptions{Slow: time.Nanosecond})(next))

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	h.ServeHTTP(httptest.NewRecorder(), req)

	if seen != "abc-123" {
		t.Fatalf("logger request id = %q", seen)
	}
}

func TestStatusWriter_CountsBytes(t *testing.T) {
	rr := httptest.NewRecorder()
	sw := &middleware.StatusWriter{ResponseWriter: rr, Status: http.StatusOK}
	_, _ = sw.Write([]byte("hi"))
	_, _ = sw.Write([]byte("there"))
	if sw.Bytes != 7 || rr.Body.String() != "hithere" {
		t.Fatalf("bytes = %d body = %q", sw.Bytes, rr.Body.String())
	}
	if sw.Unwrap() != rr {
		t.Fatalf("Unwrap should return the wrapped writer")
	}
}
