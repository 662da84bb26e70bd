package middlewares

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/salayglass/ledger/internal/logger"
)

// RateLimitMiddleware limits each client IP to limit requests per window using
// a fixed-window counter in Redis. A nil client, non-positive limit, or window
// under one second disables limiting. Redis errors fail open: throttling is
// never worth dropping writes.
func RateLimitMiddleware(rdb *redis.Client, limit int, window time.Duration) func(http.Handler) http.Handler {
	windowSeconds := int64(window.Seconds())
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if rdb == nil || limit <= 0 || windowSeconds <= 0 {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()

			host, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				host = r.RemoteAddr
			}
			key := fmt.Sprintf("ratelimit:%s:%d", host, time.Now().Unix()/windowSeconds)

			count, err := rdb.Incr(ctx, key).Result()
			if err != nil {
				logger.Log.Warnw("rate limit check failed", "error", err)
				next.ServeHTTP(w, r)
				return
			}
			if count == 1 {
				rdb.Expire(ctx, key, window)
			}

			if count > int64(limit) {
				logger.Log.Warnw("rate limit exceeded", "client", host, "count", count)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				json.NewEncoder(w).Encode(map[string]string{"error": "Too many requests."})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
