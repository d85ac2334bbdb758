package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	checkoutsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "aclo",
			Subsystem: "checkout",
			Name:      "checkouts_created_total",
			Help:      "Total number of checkouts created",
		},
	)

	ordersCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "aclo",
			Subsystem: "checkout",
			Name:      "orders_created_total",
			Help:      "Total number of orders minted from checkouts",
		},
	)

	cancellationRequests = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "aclo",
			Subsystem: "orders",
			Name:      "cancellation_requests_total",
			Help:      "Total number of buyer cancellation requests",
		},
	)

	statusTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "aclo",
			Subsystem: "orders",
			Name:      "status_transitions_total",
			Help:      "Total number of order status transitions",
		},
		[]string{"to"},
	)

	webhookRejected = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "aclo",
			Subsystem: "payment",
			Name:      "webhook_rejected_total",
			Help:      "Total number of payment notifications rejected for a bad signature",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		checkoutsCreated,
		ordersCreated,
		cancellationRequests,
		statusTransitions,
		webhookRejected,
	)
}
