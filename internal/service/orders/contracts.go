//go:generate mockgen -source=contracts.go -destination=orders_mocks_test.go -package=orders_test

package orders

import (
	"context"

	"service-gestor/internal/domain"
	"service-gestor/internal/service/lifecycle"
)

// OrderStore is the part of the order repository the processor writes through.
type OrderStore interface {
	Create(ctx context.Context, o domain.Order) error
	RequestChange(ctx context.Context, id, request string) (bool, error)
}

// Canceller runs validated status transitions.
type Canceller interface {
	Transition(ctx context.Context, id string, req lifecycle.Request) (domain.Order, error)
}

// AuditRecorder appends order log entries.
type AuditRecorder interface {
	Record(ctx context.Context, entry domain.OrderLog)
}
