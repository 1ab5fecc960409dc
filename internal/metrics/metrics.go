package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

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

	SalesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pos_sales_total",
			Help: "Number of sales recorded since start",
		},
	)

	CreditPromotions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pos_credit_promotions_total",
			Help: "Number of credits promoted to sales on full payment",
		},
	)
)
