package app

import (
	"context"
	"time"

	"service-gestor/internal/logx"
	"service-gestor/internal/service/orders"
	"service-gestor/internal/transport/kafka"
)

const eventTimeout = 5 * time.Second

type eventHandler interface {
	Handle(ctx context.Context, e orders.Event) error
}

// makeOrdersKafka bounds each event by eventTimeout so a stuck store does not stall the partition.
func makeOrdersKafka(p eventHandler, logger logx.Logger) kafka.HandleFunc {
	return func(ctx context.Context, event orders.Event) error {
		evCtx, cancel := context.WithTimeout(ctx, eventTimeout)
		defer cancel()

		start := time.Now()
		err := p.Handle(evCtx, event)
		logger.Debug("order event handled",
			logx.String("event_id", event.ID),
			logx.OrderID(event.OrderID),
			logx.String("status", event.Status),
			logx.Duration("duration", time.Since(start)),
		)
		return err
	}
}
