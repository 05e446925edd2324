package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор Prometheus-метрик сервиса
type Metrics struct {
	// HTTP метрики
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Доменные метрики
	BookingsCreatedTotal  prometheus.Counter
	CalendarInvitesTotal  prometheus.Counter
	SnapshotSaveErrsTotal prometheus.Counter
}

// New регистрирует и возвращает метрики сервиса.
// serviceName добавляется константной меткой ко всем метрикам.
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		HTTPRequestsInFlight: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "http_requests_in_flight",
			Help:        "Number of HTTP requests currently being served",
			ConstLabels: constLabels,
		}),

		BookingsCreatedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Total number of booking requests accepted",
			ConstLabels: constLabels,
		}),

		CalendarInvitesTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "calendar_invites_total",
			Help:        "Total number of simulated calendar invites emitted",
			ConstLabels: constLabels,
		}),

		SnapshotSaveErrsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "snapshot_save_errors_total",
			Help:        "Total number of failed snapshot writes",
			ConstLabels: constLabels,
		}),
	}
}
