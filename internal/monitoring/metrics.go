package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	checkinAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkin_attempts_total",
			Help: "Total guest check-in attempts by outcome",
		},
		[]string{"event_id", "outcome"},
	)

	qrRendered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "qr_codes_rendered_total",
			Help: "Total QR code images rendered",
		},
	)

	httpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "status"},
	)
)

// TrackCheckin records one check-in attempt. Outcome is one of success,
// duplicate, not_found, unknown_token, error.
func TrackCheckin(eventID, outcome string) {
	checkinAttempts.WithLabelValues(eventID, outcome).Inc()
}

// TrackQRRender records one rendered QR image.
func TrackQRRender() {
	qrRendered.Inc()
}

// TrackHTTPRequest records one completed HTTP request.
func TrackHTTPRequest(method, status string, duration time.Duration) {
	httpDuration.WithLabelValues(method, status).Observe(duration.Seconds())
}
