// Package api exposes the moderation pipeline over HTTP for the Inkly editors.
package api

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/lueurxax/inkguard/internal/platform/observability"
	"github.com/lueurxax/inkguard/internal/process/account"
	"github.com/lueurxax/inkguard/internal/process/moderation"
	"github.com/lueurxax/inkguard/internal/process/scoring"
)

const (
	defaultBodyMaxBytes = 64 << 10
	corsMaxAge          = 300
)

// Options tune the transport. Zero values get safe defaults.
type Options struct {
	RateLimitRPS       float64
	RateLimitBurst     int
	BodyMaxBytes       int64
	CORSAllowedOrigins []string
	// TrustProxy takes the client address from X-Forwarded-For / X-Real-IP.
	// Enable it only behind a reverse proxy that overwrites those headers.
	TrustProxy bool
}

type Server struct {
	validator *moderation.Validator
	scorer    *scoring.Scorer
	accounts  *account.Validator
	opts      Options
	logger    *zerolog.Logger

	limitersMu sync.Mutex
	limiters   map[string]*clientLimiter
	lastSweep  time.Time
	now        func() time.Time
}

func NewServer(validator *moderation.Validator, scorer *scoring.Scorer, accounts *account.Validator, opts Options, logger *zerolog.Logger) *Server {
	if opts.RateLimitRPS <= 0 {
		opts.RateLimitRPS = 10
	}

	if opts.RateLimitBurst <= 0 {
		opts.RateLimitBurst = 20
	}

	if opts.BodyMaxBytes <= 0 {
		opts.BodyMaxBytes = defaultBodyMaxBytes
	}

	return &Server{
		validator: validator,
		scorer:    scorer,
		accounts:  accounts,
		opts:      opts,
		logger:    logger,
		limiters:  make(map[string]*clientLimiter),
		now:       time.Now,
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	if s.opts.TrustProxy {
		r.Use(middleware.RealIP)
	}

	r.Use(s.requestIDMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.opts.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
		MaxAge:         corsMaxAge,
	}))
	r.Use(s.metricsMiddleware)
	r.Use(s.maxBodyBytesMiddleware)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/limits", s.handleLimits)

		r.Group(func(r chi.Router) {
			r.Use(s.rateLimitMiddleware)

			r.Post("/inks/validate", s.handleValidateInk)
			r.Post("/inks/score", s.handleScoreInk)
			r.Post("/hashtags/validate", s.handleValidateHashtags)
			r.Post("/reading-time", s.handleReadingTime)
			r.Post("/accounts/validate", s.handleValidateAccount)
		})
	})

	return r
}

func (s *Server) metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := routePattern(r)
		observability.HTTPRequests.WithLabelValues(route, strconv.Itoa(ww.Status())).Inc()

		s.logger.Debug().
			Str("request_id", requestIDFromContext(r.Context())).
			Str("method", r.Method).
			Str("route", route).
			Int("status", ww.Status()).
			Msg("request served")
	})
}

func (s *Server) maxBodyBytesMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			r.Body = http.MaxBytesReader(w, r.Body, s.opts.BodyMaxBytes)
		}

		next.ServeHTTP(w, r)
	})
}

func routePattern(r *http.Request) string {
	ctx := chi.RouteContext(r.Context())
	if ctx == nil || ctx.RoutePattern() == "" {
		return "unmatched"
	}

	return ctx.RoutePattern()
}
