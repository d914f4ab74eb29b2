package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"service-gestor/internal/apperr"
	"service-gestor/internal/domain"
)

const orderColumns = `id, order_code, status, created_date, accepted_at, ready_at, delivered_at,
        prep_time, delivery_method, pickup_code, delivery_code, entregador_id,
        store_latitude, store_longitude, items, subtotal, delivery_fee, discount, total,
        payment_method, rejection_reason, internal_notes, priority,
        customer_change_request, customer_change_status, customer_change_response`

// OrderRepo represents order repository.
type OrderRepo struct{ db *pgxpool.Pool }

// NewOrderRepo creates a new OrderRepo.
func NewOrderRepo(db *pgxpool.Pool) *OrderRepo { return &OrderRepo{db: db} }

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var o domain.Order
	err := row.Scan(
		&o.ID, &o.Code, &o.Status, &o.CreatedDate, &o.AcceptedAt, &o.ReadyAt, &o.DeliveredAt,
		&o.PrepTime, &o.DeliveryMethod, &o.PickupCode, &o.DeliveryCode, &o.EntregadorID,
		&o.StoreLatitude, &o.StoreLongitude, &o.Items, &o.Subtotal, &o.DeliveryFee, &o.Discount, &o.Total,
		&o.PaymentMethod, &o.RejectionReason, &o.InternalNotes, &o.Priority,
		&o.CustomerChangeRequest, &o.CustomerChangeStatus, &o.CustomerChangeResponse,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Get - returns order by its ID, or nil when it does not exist.
func (r *OrderRepo) Get(ctx context.Context, id string) (*domain.Order, error) {
	o, err := scanOrder(r.db.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id=$1`, id))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order %q: %w", id, err)
	}
	return o, nil
}

// List returns every unfinished order plus the finished ones created at or after since,
// newest first.
func (r *OrderRepo) List(ctx context.Context, since time.Time) ([]domain.Order, error) {
	rows, err := r.db.Query(ctx, `
        SELECT `+orderColumns+`
        FROM orders
        WHERE created_date >= $1 OR status NOT IN ($2, $3)
        ORDER BY created_date DESC, id
    `, since, domain.OrderDelivered, domain.OrderCancelled)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		out = append(out, *o)
	}
	return out, rows.Err()
}

// Create - inserts a new order.
func (r *OrderRepo) Create(ctx context.Context, o domain.Order) error {
	items := o.Items
	if items == nil {
		items = []domain.Item{}
	}
	_, err := r.db.Exec(ctx, `
        INSERT INTO orders (id, order_code, status, created_date, delivery_method, items,
            subtotal, delivery_fee, discount, total, payment_method, priority)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
    `, o.ID, o.Code, o.Status, o.CreatedDate, o.DeliveryMethod, items,
		o.Subtotal, o.DeliveryFee, o.Discount, o.Total, o.PaymentMethod, o.Priority)
	if err != nil {
		if IsDuplicate(err) {
			return apperr.ErrConflict
		}
		return fmt.Errorf("create order %q: %w", o.ID, err)
	}
	return nil
}

// UpdateAnnotations applies operator notes and returns true if a row was affected.
func (r *OrderRepo) UpdateAnnotations(ctx context.Context, id string, a domain.OrderAnnotations) (bool, error) {
	ct, err := r.db.Exec(ctx, `
        UPDATE orders
        SET
            priority       = COALESCE($2, priority),
            internal_notes = COALESCE($3, internal_notes),
            updated_at     = now()
        WHERE id = $1
    `, id, a.Priority, a.InternalNotes)
	if err != nil {
		return false, fmt.Errorf("update order %q annotations: %w", id, err)
	}
	return ct.RowsAffected() > 0, nil
}

// RequestChange stores a customer change request as pending and returns true if a row was affected.
func (r *OrderRepo) RequestChange(ctx context.Context, id, request string) (bool, error) {
	ct, err := r.db.Exec(ctx, `
        UPDATE orders
        SET customer_change_request  = $2,
            customer_change_status   = $3,
            customer_change_response = '',
            updated_at               = now()
        WHERE id = $1
    `, id, request, domain.ChangePending)
	if err != nil {
		return false, fmt.Errorf("request change on order %q: %w", id, err)
	}
	return ct.RowsAffected() > 0, nil
}

// AnswerChange answers a pending change request. It returns false when no pending request exists.
func (r *OrderRepo) AnswerChange(ctx context.Context, id string, a domain.ChangeAnswer) (bool, error) {
	ct, err := r.db.Exec(ctx, `
        UPDATE orders
        SET customer_change_status   = $2,
            customer_change_response = $3,
            updated_at               = now()
        WHERE id = $1 AND customer_change_status = $4
    `, id, a.Status, a.Response, domain.ChangePending)
	if err != nil {
		return false, fmt.Errorf("answer change on order %q: %w", id, err)
	}
	return ct.RowsAffected() > 0, nil
}
