package app

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"service-gestor/internal/metrics"
)

type metricsOut struct {
	dig.Out

	RateLimitExceededTotal   prometheus.Counter     `name:"rate_limit_exceeded_total"`
	NotifyRetriesTotal       prometheus.Counter     `name:"notify_retries_total"`
	LateOrdersCancelledTotal prometheus.Counter     `name:"late_orders_cancelled_total"`
	OrderLogFailuresTotal    prometheus.Counter     `name:"orderlog_write_failures_total"`
	TransitionsTotal         *prometheus.CounterVec `name:"order_transitions_total"`
	RollbacksTotal           *prometheus.CounterVec `name:"board_rollbacks_total"`
}

func registerMetrics(container *dig.Container) error {
	return provideAll(container, provideMetrics)
}

// provideMetrics registers every counter once. A second container in the same
// process reuses the collectors already registered.
func provideMetrics() (metricsOut, error) {
	var (
		out metricsOut
		err error
	)
	if out.RateLimitExceededTotal, err = register("rate_limit_exceeded_total", metrics.NewRateLimitExceededTotal()); err != nil {
		return metricsOut{}, err
	}
	if out.NotifyRetriesTotal, err = register("notify_retries_total", metrics.NewNotifyRetriesTotal()); err != nil {
		return metricsOut{}, err
	}
	if out.LateOrdersCancelledTotal, err = register("late_orders_cancelled_total", metrics.NewLateOrdersCancelledTotal()); err != nil {
		return metricsOut{}, err
	}
	if out.OrderLogFailuresTotal, err = register("orderlog_write_failures_total", metrics.NewOrderLogFailuresTotal()); err != nil {
		return metricsOut{}, err
	}
	if out.TransitionsTotal, err = register("order_transitions_total", metrics.NewTransitionsTotal()); err != nil {
		return metricsOut{}, err
	}
	if out.RollbacksTotal, err = register("board_rollbacks_total", metrics.NewRollbacksTotal()); err != nil {
		return metricsOut{}, err
	}
	return out, nil
}

func register[T prometheus.Collector](name string, c T) (T, error) {
	if err := prometheus.DefaultRegisterer.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		var zero T
		return zero, fmt.Errorf("register %s: %w", name, err)
	}
	return c, nil
}
