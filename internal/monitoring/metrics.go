package monitoring

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5},
		},
		[]string{"method", "path"},
	)

	AuditWriteFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "audit_write_failures_total",
			Help: "Audit log rows that could not be written",
		},
	)

	ResourceChanges = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "resource_changes_total",
			Help: "Successful writes per resource and action",
		},
		[]string{"entity", "action"},
	)
)

var once sync.Once

// Init registers the collectors with the default registry. Safe to call twice.
func Init() {
	once.Do(func() {
		prometheus.MustRegister(RequestsTotal)
		prometheus.MustRegister(RequestDuration)
		prometheus.MustRegister(AuditWriteFailures)
		prometheus.MustRegister(ResourceChanges)
	})
}

func Handler() http.Handler {
	return promhttp.Handler()
}
