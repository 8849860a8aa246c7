// Package metrics declares the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "rental_billing"

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// PaymentTransitions counts payment status changes by target status and method.
	PaymentTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payment_transitions_total",
			Help:      "Rental payment status transitions",
		},
		[]string{"to", "method"},
	)

	RentalTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rental_transitions_total",
			Help:      "Rental status transitions",
		},
		[]string{"from", "to"},
	)

	PartialFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "occupancy_partial_failures_total",
		Help:      "Payments marked paid whose rental could not be moved to occupied",
	})

	// UnrecordedCharges counts provider-approved charges the payment record
	// could not take. Each one needs a refund.
	UnrecordedCharges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "gateway_unrecorded_charges_total",
			Help:      "Approved gateway charges not recorded on the payment",
		},
		[]string{"reason"},
	)

	ProofBytes = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "payment_proof_bytes",
		Help:      "Size of uploaded payment proofs",
		Buckets:   prometheus.ExponentialBuckets(16<<10, 2, 8),
	})
)
