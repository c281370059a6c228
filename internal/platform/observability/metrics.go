package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	Validations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inkguard_validations_total",
		Help: "The total number of validation passes by flow and outcome",
	}, []string{"flow", "outcome"})

	RuleHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inkguard_rule_hits_total",
		Help: "The total number of moderation rule hits",
	}, []string{"category", "severity"})

	MatcherPanics = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inkguard_matcher_panics_total",
		Help: "Matcher panics recovered and treated as no match",
	}, []string{"rule"})

	ValidationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "inkguard_validation_duration_seconds",
		Help:    "Duration of a single validation pass",
		Buckets: []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
	}, []string{"flow"})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inkguard_http_requests_total",
		Help: "The total number of API requests by route and status code",
	}, []string{"route", "status"})

	RateLimited = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inkguard_rate_limited_total",
		Help: "Requests rejected by the per-client rate limiter",
	}, []string{"route"})
)

// Validation outcomes.
const (
	OutcomeClean   = "clean"
	OutcomeWarning = "warning"
	OutcomeBlocked = "blocked"
)
