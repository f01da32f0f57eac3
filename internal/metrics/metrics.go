// Package metrics exposes the Prometheus collectors of the back office.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Recorder groups the application collectors so tests can use a private registry.
type Recorder struct {
	HTTPRequests        *prometheus.CounterVec
	HTTPDuration        *prometheus.HistogramVec
	DocumentsSaved      *prometheus.CounterVec
	NotificationsFailed *prometheus.CounterVec
}

// NewRecorder creates the collectors and registers them on reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "concierge",
			Name:      "http_requests_total",
			Help:      "HTTP requests handled, by route and status code.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "concierge",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency, by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		DocumentsSaved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "concierge",
			Name:      "documents_saved_total",
			Help:      "Quotes and invoices written, by type and operation.",
		}, []string{"type", "operation"}),
		NotificationsFailed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "concierge",
			Name:      "notifications_failed_total",
			Help:      "Outbound e-mail notifications that were not delivered, by purpose.",
		}, []string{"purpose"}),
	}
	reg.MustRegister(r.HTTPRequests, r.HTTPDuration, r.DocumentsSaved, r.NotificationsFailed)
	return r
}

// DocumentSaved counts a document write. Safe on a nil Recorder.
func (r *Recorder) DocumentSaved(docType, operation string) {
	if r == nil {
		return
	}
	r.DocumentsSaved.WithLabelValues(docType, operation).Inc()
}

// NotificationFailed counts an undelivered notification. Safe on a nil Recorder.
func (r *Recorder) NotificationFailed(purpose string) {
	if r == nil {
		return
	}
	r.NotificationsFailed.WithLabelValues(purpose).Inc()
}
