package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewRateLimitExceededTotal returns a Prometheus counter for the number of rejected HTTP requests due to rate limiting
func NewRateLimitExceededTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of rejected HTTP requests due to rate limiting",
	})
}

// NewNotifyRetriesTotal returns a Prometheus counter for retry attempts of status notifications
func NewNotifyRetriesTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "notify_retries_total",
		Help: "Total number of retry attempts performed by the status notifier",
	})
}

// NewTransitionsTotal counts committed status transitions by target status
func NewTransitionsTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "order_transitions_total",
		Help: "Total number of committed order status transitions",
	}, []string{"to"})
}

// NewRollbacksTotal counts optimistic changes restored after a failed or timed out commit
func NewRollbacksTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "board_rollbacks_total",
		Help: "Total number of optimistic board changes rolled back",
	}, []string{"reason"})
}

// NewLateOrdersCancelledTotal counts orders cancelled by the late-order monitor
func NewLateOrdersCancelledTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "late_orders_cancelled_total",
		Help: "Total number of orders cancelled for exceeding their preparation time",
	})
}

// NewOrderLogFailuresTotal counts audit entries that could not be written
func NewOrderLogFailuresTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orderlog_write_failures_total",
		Help: "Total number of order log entries that failed to persist",
	})
}
