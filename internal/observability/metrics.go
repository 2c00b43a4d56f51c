// Package observability exposes Prometheus metrics for the application's
// domain events and infrastructure errors.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by command name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "askaway_redis_errors_total",
		Help: "Total number of Redis errors by command",
	}, []string{"command"})

	// ViewsTracked counts view tracking outcomes: accepted, duplicate, failed.
	ViewsTracked = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "askaway_question_views_total",
		Help: "Total number of question view events by outcome",
	}, []string{"outcome"})

	// StarEvents counts star ledger mutations: starred, unstarred.
	StarEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "askaway_star_events_total",
		Help: "Total number of star ledger mutations by kind",
	}, []string{"kind"})

	// FeedRequests counts ranking engine listings served, by variant.
	FeedRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "askaway_feed_requests_total",
		Help: "Total number of ranked question listings served by variant",
	}, []string{"variant"})
)
