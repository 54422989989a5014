package middleware

import (
	"context"
	"net/http"
	"time"
)

// Timeout bounds each request with a fixed deadline. Persistence calls honor
// the request context, so an expired deadline surfaces as a server-error
// condition from the handler rather than a hung connection.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
