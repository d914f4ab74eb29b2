package notify

import (
	"context"

	"service-gestor/internal/domain"
	"service-gestor/internal/logx"
)

// Nop drops every notification. Used when no broker is configured.
type Nop struct {
	logger logx.Logger
}

// NewNop creates a Nop notifier.
func NewNop(logger logx.Logger) *Nop { return &Nop{logger: logger} }

// Notify logs change at debug level.
func (n *Nop) Notify(_ context.Context, change domain.StatusChange) error {
	n.logger.Debug("status notification skipped",
		logx.OrderID(change.OrderID),
		logx.String("status", string(change.NewStatus)),
	)
	return nil
}
