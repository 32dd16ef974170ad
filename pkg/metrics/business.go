package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const businessSubsystem = "dreamdecode"

// Dream lifecycle counters, registered on the default registry next to the
// HTTP middleware metrics.
var (
	DreamsSubmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Subsystem: businessSubsystem,
		Name:      "dreams_submitted_total",
		Help:      "Dreams accepted for interpretation, partitioned by referral origin.",
	}, []string{"referred"})

	DreamsPaid = promauto.NewCounter(prometheus.CounterOpts{
		Subsystem: businessSubsystem,
		Name:      "dreams_paid_total",
		Help:      "Dreams transitioned to paid.",
	})

	Deliveries = promauto.NewCounterVec(prometheus.CounterOpts{
		Subsystem: businessSubsystem,
		Name:      "deliveries_total",
		Help:      "Email delivery attempts, partitioned by kind and outcome.",
	}, []string{"kind", "status"})
)
