package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "cabtour"

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status code.",
		},
		[]string{"route", "method", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"route"},
	)

	bookingsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_created_total",
			Help:      "Bookings created by booking type.",
		},
		[]string{"type"},
	)

	bookingTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_transitions_total",
			Help:      "Booking status transitions applied.",
		},
		[]string{"from", "to"},
	)

	notifications = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_total",
			Help:      "Notification tasks by kind and outcome.",
		},
		[]string{"kind", "result"},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, httpDuration, bookingsCreated, bookingTransitions, notifications)
	})
}

// ObserveHTTP records one served request.
func ObserveHTTP(route, method, status string, seconds float64) {
	httpRequests.WithLabelValues(route, method, status).Inc()
	httpDuration.WithLabelValues(route).Observe(seconds)
}

func IncBookingCreated(bookingType string) {
	bookingsCreated.WithLabelValues(bookingType).Inc()
}

func IncTransition(from, to string) {
	bookingTransitions.WithLabelValues(from, to).Inc()
}

// IncNotification counts a notification outcome ("enqueued", "scheduled", "enqueue_failed", "sent", "failed").
func IncNotification(kind, result string) {
	notifications.WithLabelValues(kind, result).Inc()
}
