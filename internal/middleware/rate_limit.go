package middleware

import (
	"net/http"

	"petclinic-visits/internal/platform/logger"

	"golang.org/x/time/rate"
)

// RateLimit aplica un token bucket global a los métodos que escriben.
// GET/HEAD pasan sin consumir tokens.
func RateLimit(rps float64, burst int, log logger.Logger) func(http.Handler) http.Handler {
	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodGet || r.Method == http.MethodHead {
				next.ServeHTTP(w, r)
				return
			}

			if !limiter.Allow() {
				log.Warn("rate limit exceeded", map[string]any{
					"method":     r.Method,
					"path":       r.URL.Path,
					"request_id": GetRequestID(r.Context()),
				})
				w.Header().Set("Retry-After", "1")
				http.Error(w, "too many requests", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
