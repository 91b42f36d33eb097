package httpkit

import (
	"net/http"

	phttp "scoring/internal/platform/net/http"
)

// Get registers a no-body handler and uses the envelope adapter
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, Call(h))
}

// GetQuery binds the query string into T (form tags, validator rules) before h runs
func GetQuery[T any](r Router, path string, h func(*http.Request, T) Response) {
	r.Get(path, phttp.QueryHandler(h))
}

// PostRaw hands h the raw JSON body once it is present and well formed.
// Use it when field level checks must see the payload exactly as sent
func PostRaw(r Router, path string, h func(*http.Request, []byte) Response) {
	r.Post(path, phttp.RawJSONHandler(h))
}
