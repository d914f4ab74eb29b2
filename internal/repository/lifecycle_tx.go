package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"service-gestor/internal/apperr"
	"service-gestor/internal/domain"
)

// TxRepo represents transaction repository.
type TxRepo struct {
	tx pgx.Tx
}

// GetOrderForUpdate locks and returns an order, or nil when it does not exist.
func (r *TxRepo) GetOrderForUpdate(ctx context.Context, id string) (*domain.Order, error) {
	o, err := scanOrder(r.tx.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id=$1 FOR UPDATE`, id))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("lock order %q: %w", id, err)
	}
	return o, nil
}

// GetCourierForUpdate locks and returns a courier, or nil when it does not exist.
func (r *TxRepo) GetCourierForUpdate(ctx context.Context, id int64) (*domain.Courier, error) {
	c, err := scanCourier(r.tx.QueryRow(ctx, `SELECT `+courierColumns+` FROM couriers WHERE id=$1 FOR UPDATE`, id))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("lock courier %d: %w", id, err)
	}
	return c, nil
}

// UpdateOrder writes the lifecycle fields of an order.
func (r *TxRepo) UpdateOrder(ctx context.Context, o domain.Order) error {
	ct, err := r.tx.Exec(ctx, `
        UPDATE orders
        SET status           = $2,
            accepted_at      = $3,
            ready_at         = $4,
            delivered_at     = $5,
            prep_time        = $6,
            pickup_code      = $7,
            delivery_code    = $8,
            entregador_id    = $9,
            store_latitude   = $10,
            store_longitude  = $11,
            rejection_reason = $12,
            updated_at       = now()
        WHERE id = $1
    `, o.ID, o.Status, o.AcceptedAt, o.ReadyAt, o.DeliveredAt, o.PrepTime,
		o.PickupCode, o.DeliveryCode, o.EntregadorID, o.StoreLatitude, o.StoreLongitude,
		o.RejectionReason)
	if err != nil {
		if IsForeignKey(err) {
			return fmt.Errorf("%w: courier of order %q does not exist", apperr.ErrNotFound, o.ID)
		}
		return fmt.Errorf("update order %q: %w", o.ID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("order %q not found", o.ID)
	}
	return nil
}

// UpdateCourier writes the assignment fields of a courier.
func (r *TxRepo) UpdateCourier(ctx context.Context, c domain.Courier) error {
	ct, err := r.tx.Exec(ctx, `
        UPDATE couriers
        SET status           = $2,
            current_order_id = $3,
            total_deliveries = $4,
            updated_at       = now()
        WHERE id = $1
    `, c.ID, c.Status, c.CurrentOrderID, c.TotalDeliveries)
	if err != nil {
		return fmt.Errorf("update courier %d: %w", c.ID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("courier %d not found", c.ID)
	}
	return nil
}
