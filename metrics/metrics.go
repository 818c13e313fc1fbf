package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PaymentEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quickfix_payment_events_total",
			Help: "Payment-created events handled, by outcome and delivery source",
		},
		[]string{"outcome", "source"},
	)

	PayoutsCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quickfix_payouts_created_total",
			Help: "Payout ledger entries written",
		},
		[]string{"currency"},
	)

	CommissionAmountTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quickfix_commission_amount_total",
			Help: "Developer commission booked, in major currency units",
		},
		[]string{"currency"},
	)

	BookingUpdateFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "quickfix_booking_update_failures_total",
			Help: "Best-effort booking status updates that failed after a payout was written",
		},
	)

	ProcessingDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "quickfix_payment_event_duration_seconds",
			Help:    "Time spent handling one payment-created event",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"source"},
	)
)
