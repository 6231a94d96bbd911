package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/todo-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-service/internal/platform/config"
	"github.com/jsamuelsen11/todo-service/internal/platform/logging"
)

const (
	msgRateLimited = "Too many requests, please retry later"

	// limiterIdleTTL is how long an idle client's bucket is kept.
	limiterIdleTTL = 5 * time.Minute
)

// RateLimit returns middleware that applies a token bucket per client IP.
// Requests over the limit get a 429 ApiError with a Retry-After header.
// A zero RequestsPerSecond disables limiting.
func RateLimit(cfg config.RateLimitConfig, logger *slog.Logger) func(http.Handler) http.Handler {
	if cfg.RequestsPerSecond <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	clients := newClientLimiters(rate.Limit(cfg.RequestsPerSecond), max(cfg.Burst, 1), time.Now)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)
			if clients.allow(ip) {
				next.ServeHTTP(w, r)
				return
			}

			logging.FromContextOr(r.Context(), logger).WarnContext(r.Context(), "rate limit exceeded",
				slog.String("client_ip", ip),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)

			w.Header().Set("Retry-After", "1")
			dto.WriteAPIError(w, http.StatusTooManyRequests, dto.NewAPIError(http.StatusTooManyRequests, msgRateLimited))
		})
	}
}

// clientLimiters holds one limiter per client and evicts idle ones.
type clientLimiters struct {
	mu        sync.Mutex
	limit     rate.Limit
	burst     int
	now       func() time.Time
	clients   map[string]*clientLimiter
	lastSweep time.Time
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newClientLimiters(limit rate.Limit, burst int, now func() time.Time) *clientLimiters {
	return &clientLimiters{
		limit:     limit,
		burst:     burst,
		now:       now,
		clients:   make(map[string]*clientLimiter),
		lastSweep: now(),
	}
}

func (c *clientLimiters) allow(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if now.Sub(c.lastSweep) > limiterIdleTTL {
		for k, cl := range c.clients {
			if now.Sub(cl.lastSeen) > limiterIdleTTL {
				delete(c.clients, k)
			}
		}
		c.lastSweep = now
	}

	cl, ok := c.clients[key]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(c.limit, c.burst)}
		c.clients[key] = cl
	}
	cl.lastSeen = now
	return cl.limiter.AllowN(now, 1)
}

// clientIP returns the host part of RemoteAddr. Forwarding headers are not
// trusted.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
