package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BookingsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bookings_created_total",
		Help: "Booking requests accepted and stored as PENDING.",
	})

	BookingConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "booking_conflicts_total",
		Help: "Booking requests rejected by the overlap check.",
	})

	BookingDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "booking_decisions_total",
		Help: "Admin decisions applied to bookings, by resulting status.",
	}, []string{"status"})
)
