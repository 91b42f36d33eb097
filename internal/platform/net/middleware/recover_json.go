package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	perr "scoring/internal/platform/errors"
	"scoring/internal/platform/logger"
	phttp "scoring/internal/platform/net/http"
)

// RecoverJSON turns panics into 500 INTERNAL_ERROR responses and logs the stack
func RecoverJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == http.ErrAbortHandler {
				panic(v)
			}
			logger.C(r.Context()).Error().
				Interface("panic", v).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Bytes("stack", debug.Stack()).
				Msg("panic recovered")

			phttp.JSON(w, http.StatusInternalServerError, perr.WireFrom(perr.Internal(fmt.Errorf("panic: %v", v))))
		}()
		next.ServeHTTP(w, r)
	})
}
