package ordertx

import (
	"context"

	"service-gestor/internal/domain"
)

// Repository is the set of row-locking operations available inside a lifecycle transaction.
type Repository interface {
	GetOrderForUpdate(ctx context.Context, id string) (*domain.Order, error)
	GetCourierForUpdate(ctx context.Context, id int64) (*domain.Courier, error)
	UpdateOrder(ctx context.Context, o domain.Order) error
	UpdateCourier(ctx context.Context, c domain.Courier) error
}

// Runner is a transaction runner
type Runner interface {
	WithTx(ctx context.Context, fn func(tx Repository) error) error
}
