package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"service-gestor/internal/ports/ordertx"
)

// LifecycleRepo runs status changes that must touch orders and couriers together.
type LifecycleRepo struct {
	db *pgxpool.Pool
}

// NewLifecycleRepo creates a new LifecycleRepo.
func NewLifecycleRepo(db *pgxpool.Pool) *LifecycleRepo {
	return &LifecycleRepo{db: db}
}

// WithTx opens a transaction and executes fn within it.
func (r *LifecycleRepo) WithTx(ctx context.Context, fn func(tx ordertx.Repository) error) (err error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	// отменяем в случае паники
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
	}()

	if err := fn(&TxRepo{tx: tx}); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback tx: %w (original error: %s)", rbErr, err.Error())
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
