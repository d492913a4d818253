package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Admission outcomes.
const (
	OutcomeAdmitted       = "admitted"
	OutcomeNoMembership   = "no_active_membership"
	OutcomeAlreadyPresent = "already_present"
	OutcomeClientNotFound = "client_not_found"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymweb_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gymweb_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	AdmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymweb_admissions_total",
			Help: "Gym entry attempts by outcome",
		},
		[]string{"outcome"},
	)

	ExitsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gymweb_exits_total",
			Help: "Total number of recorded gym exits",
		},
	)

	DashboardCacheTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymweb_dashboard_cache_total",
			Help: "Dashboard stats cache lookups by result",
		},
		[]string{"result"},
	)

	EventsPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymweb_events_published_total",
			Help: "Presence events published to the broker",
		},
		[]string{"routing_key", "status"},
	)

	LoginsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymweb_admin_logins_total",
			Help: "Admin login attempts by status",
		},
		[]string{"status"},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordAdmission(outcome string) {
	AdmissionsTotal.WithLabelValues(outcome).Inc()
}

func RecordExit() {
	ExitsTotal.Inc()
}

func RecordDashboardCache(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	DashboardCacheTotal.WithLabelValues(result).Inc()
}

func RecordEventPublished(routingKey string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	EventsPublishedTotal.WithLabelValues(routingKey, status).Inc()
}

func RecordLogin(success bool) {
	status := "failed"
	if success {
		status = "success"
	}
	LoginsTotal.WithLabelValues(status).Inc()
}
