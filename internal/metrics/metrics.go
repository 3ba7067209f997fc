// Package metrics exposes prometheus instrumentation for the game engine:
// HTTP traffic, published events and the core game counters.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current number of HTTP requests being served",
		},
	)
)

// Event metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "events_published_total",
			Help: "Total number of game events published",
		},
		[]string{"type"},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "event_handler_errors_total",
			Help: "Total number of event handler errors",
		},
		[]string{"type"},
	)
)

// Game metrics
var (
	ActionsStarted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "actions_started_total",
			Help: "Total number of timed actions started",
		},
		[]string{"action"},
	)

	ActionsResolved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "actions_resolved_total",
			Help: "Total number of timed actions resolved",
		},
		[]string{"action"},
	)

	EncountersTriggered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "encounters_triggered_total",
			Help: "Total number of mid-action mob encounters",
		},
		[]string{"mob"},
	)

	ItemsCrafted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "items_crafted_total",
			Help: "Total number of items crafted",
		},
		[]string{"item"},
	)

	ItemsUsed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "items_used_total",
			Help: "Total number of items consumed",
		},
		[]string{"item"},
	)

	QuestsCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "quests_completed_total",
			Help: "Total number of quests handed in",
		},
	)

	SweepDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sweep_duration_seconds",
			Help:    "Background sweep pass duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"sweep"},
	)
)
