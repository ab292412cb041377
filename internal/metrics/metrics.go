package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	logins = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "karigar",
			Name:      "logins_total",
			Help:      "Count of successful logins by role.",
		},
		[]string{"role"},
	)

	bookingCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "karigar",
			Name:      "bookings_created_total",
			Help:      "Count of bookings created by customers.",
		},
	)

	bookingAccepted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "karigar",
			Name:      "bookings_accepted_total",
			Help:      "Count of bookings accepted by providers.",
		},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(logins, bookingCreated, bookingAccepted)
	})
}

func IncLogin(role string) {
	logins.WithLabelValues(role).Inc()
}

func IncBookingCreated() {
	bookingCreated.Inc()
}

func IncBookingAccepted() {
	bookingAccepted.Inc()
}
