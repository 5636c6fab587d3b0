package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "animalspotter_client",
			Name:      "requests_total",
			Help:      "Service calls by operation and outcome (ok or error kind).",
		},
		[]string{"operation", "outcome"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "animalspotter_client",
			Name:      "request_duration_seconds",
			Help:      "Wall time of service calls, including client-side failures.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	asyncEnqueuedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "animalspotter_client",
			Name:      "async_enqueued_total",
			Help:      "Async calls accepted into the executor.",
		},
		[]string{"operation"},
	)

	asyncFailedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "animalspotter_client",
			Name:      "async_failures_total",
			Help:      "Async calls completed with an error, including rejected submissions.",
		},
		[]string{"operation"},
	)
)
