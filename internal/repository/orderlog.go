package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"service-gestor/internal/domain"
)

// OrderLogRepo stores the audit trail.
type OrderLogRepo struct{ db *pgxpool.Pool }

// NewOrderLogRepo creates a new OrderLogRepo.
func NewOrderLogRepo(db *pgxpool.Pool) *OrderLogRepo { return &OrderLogRepo{db: db} }

// Insert appends an entry and fills its ID.
func (r *OrderLogRepo) Insert(ctx context.Context, l *domain.OrderLog) error {
	err := r.db.QueryRow(ctx, `
        INSERT INTO order_logs (order_id, action, old_status, new_status, user_email, created_at, details)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id
    `, l.OrderID, l.Action, l.OldStatus, l.NewStatus, l.UserEmail, l.Timestamp, l.Details).Scan(&l.ID)
	if err != nil {
		return fmt.Errorf("insert order log: %w", err)
	}
	return nil
}

// ListByOrder returns the entries of one order, oldest first.
func (r *OrderLogRepo) ListByOrder(ctx context.Context, orderID string) ([]domain.OrderLog, error) {
	rows, err := r.db.Query(ctx, `
        SELECT id, order_id, action, old_status, new_status, user_email, created_at, details
        FROM order_logs
        WHERE order_id = $1
        ORDER BY created_at, id
    `, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order logs %q: %w", orderID, err)
	}
	defer rows.Close()

	out := make([]domain.OrderLog, 0)
	for rows.Next() {
		var l domain.OrderLog
		if err := rows.Scan(&l.ID, &l.OrderID, &l.Action, &l.OldStatus, &l.NewStatus, &l.UserEmail, &l.Timestamp, &l.Details); err != nil {
			return nil, fmt.Errorf("scan order log: %w", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
