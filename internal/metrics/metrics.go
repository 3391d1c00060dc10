package metrics

import "github.com/prometheus/client_golang/prometheus"

// Prometheus metrics for monitoring service health and traffic.
var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"handler", "method", "status"},
	)

	OrdersCreatedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orders_created_total",
			Help: "Total number of orders created, by mode",
		},
		[]string{"mode"},
	)

	OrdersSealedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "orders_sealed_total",
			Help: "Total number of orders transitioned to completed by derivation",
		},
	)

	TrackPingsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "track_pings_total",
			Help: "Total number of driver location pings recorded",
		},
	)

	NotifyFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "notify_failures_total",
			Help: "Total number of failed order notifications",
		},
	)
)

// Register installs all collectors on the default registry. Called once from
// route setup.
func Register() {
	prometheus.MustRegister(
		HTTPRequestsTotal,
		OrdersCreatedTotal,
		OrdersSealedTotal,
		TrackPingsTotal,
		NotifyFailuresTotal,
	)
}
