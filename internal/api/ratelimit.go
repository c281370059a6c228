package api

import (
	"net"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/lueurxax/inkguard/internal/platform/observability"
)

// Limiters idle for longer than this are dropped on the next sweep.
const limiterIdleTTL = 10 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func (s *Server) rateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.allowRequest(getClientIP(r)) {
			observability.RateLimited.WithLabelValues(routePattern(r)).Inc()
			s.logger.Warn().
				Str("request_id", requestIDFromContext(r.Context())).
				Str("route", routePattern(r)).
				Msg("rate limited")

			writeError(w, http.StatusTooManyRequests, "too many requests")

			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) allowRequest(ip string) bool {
	now := s.now()

	s.limitersMu.Lock()

	if now.Sub(s.lastSweep) >= limiterIdleTTL {
		for key, entry := range s.limiters {
			if now.Sub(entry.lastSeen) >= limiterIdleTTL {
				delete(s.limiters, key)
			}
		}

		s.lastSweep = now
	}

	entry, ok := s.limiters[ip]
	if !ok {
		entry = &clientLimiter{limiter: rate.NewLimiter(rate.Limit(s.opts.RateLimitRPS), s.opts.RateLimitBurst)}
		s.limiters[ip] = entry
	}

	entry.lastSeen = now

	s.limitersMu.Unlock()

	return entry.limiter.AllowN(now, 1)
}

// getClientIP keys limiters on the connection address. Forwarded headers
// are honoured only through middleware.RealIP, which Router installs when
// Options.TrustProxy is set.
func getClientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}

	return r.RemoteAddr
}
