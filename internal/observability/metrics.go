package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "warbler_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "warbler_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	SignupsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "warbler_signups_total",
			Help: "Total number of successful signups",
		},
	)

	MessagesPostedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "warbler_messages_posted_total",
			Help: "Total number of messages posted",
		},
	)

	FollowEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "warbler_follow_events_total",
			Help: "Total number of follow graph mutations",
		},
		[]string{"action"},
	)

	LikeTogglesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "warbler_like_toggles_total",
			Help: "Total number of like toggles by resulting state",
		},
		[]string{"state"},
	)
)
