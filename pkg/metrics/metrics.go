package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// HTTP request metrics
var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "creatorhub_http_requests_total",
			Help: "Total number of HTTP requests by route, method and status",
		},
		[]string{"path", "method", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "creatorhub_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds by route and method",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method"},
	)
)

// Domain metrics
var (
	CreatorsRegistered = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "creatorhub_creators_registered_total",
			Help: "Total number of creator profiles registered",
		},
	)

	AssetsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "creatorhub_assets_created_total",
			Help: "Total number of asset metadata records created",
		},
	)
)

// Database connection pool metrics
var (
	DBOpenConns = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "creatorhub_db_open_connections",
			Help: "Number of open connections in the DB pool",
		},
		[]string{"db"},
	)

	DBIdleConns = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "creatorhub_db_idle_connections",
			Help: "Number of idle connections in the DB pool",
		},
		[]string{"db"},
	)

	DBInUseConns = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "creatorhub_db_in_use_connections",
			Help: "Number of in-use connections in the DB pool",
		},
		[]string{"db"},
	)
)

func init() {
	prometheus.MustRegister(HTTPRequestsTotal, HTTPRequestDuration)
	prometheus.MustRegister(CreatorsRegistered, AssetsCreated)
	prometheus.MustRegister(DBOpenConns, DBIdleConns, DBInUseConns)
}
