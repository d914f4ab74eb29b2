package assignment

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"service-gestor/internal/apperr"
	"service-gestor/internal/domain"
	"service-gestor/internal/logx"
	"service-gestor/internal/ports/ordertx"
	"service-gestor/internal/service/board"
	"service-gestor/internal/service/lifecycle"
)

var (
	// ErrCourierUnavailable is returned when the selected courier is already busy.
	ErrCourierUnavailable = fmt.Errorf("%w: courier is not available", apperr.ErrConflict)
	// ErrCourierRequired is returned when no courier was selected.
	ErrCourierRequired = fmt.Errorf("%w: select a courier", apperr.ErrInvalid)
	// ErrNotCarrier is returned when a courier reports progress on an order it does not carry.
	ErrNotCarrier = fmt.Errorf("%w: courier is not carrying this order", apperr.ErrConflict)
)

// StoreLocation is where couriers pick orders up.
type StoreLocation struct {
	Latitude  float64
	Longitude float64
}

// Manager binds couriers to ready orders. Both rows change in one transaction.
type Manager struct {
	board   boardService
	tx      ordertx.Runner
	machine *lifecycle.Machine
	store   StoreLocation
	logger  logx.Logger
}

// NewManager creates a Manager.
func NewManager(b boardService, tx ordertx.Runner, machine *lifecycle.Machine, store StoreLocation, logger logx.Logger) *Manager {
	return &Manager{
		board:   b,
		tx:      tx,
		machine: machine,
		store:   store,
		logger:  logger,
	}
}

// Assign sends courierID to pick orderID up.
func (m *Manager) Assign(ctx context.Context, orderID string, courierID int64, actor string) (domain.AssignResult, error) {
	if courierID <= 0 {
		return domain.AssignResult{}, ErrCourierRequired
	}
	order, err := m.board.Order(ctx, orderID)
	if err != nil {
		return domain.AssignResult{}, err
	}
	if order.Status != domain.OrderReady {
		return domain.AssignResult{}, lifecycle.ErrNotReady
	}
	courier, err := m.board.Courier(ctx, courierID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return domain.AssignResult{}, fmt.Errorf("%w: courier %d", apperr.ErrNotFound, courierID)
		}
		return domain.AssignResult{}, err
	}
	if courier.Status != domain.CourierAvailable {
		return domain.AssignResult{}, ErrCourierUnavailable
	}

	next, err := m.machine.Apply(order, lifecycle.Request{
		To:     domain.OrderGoingToStore,
		Origin: lifecycle.OriginAssignment,
		Actor:  actor,
	})
	if err != nil {
		return domain.AssignResult{}, err
	}
	next.EntregadorID = &courier.ID
	lat, lon := m.store.Latitude, m.store.Longitude
	next.StoreLatitude = &lat
	next.StoreLongitude = &lon
	busy := courier.AssignTo(order.ID)

	cmd := &board.Command{
		Orders:   []domain.Order{next},
		Couriers: []domain.Courier{busy},
		Commit: func(ctx context.Context) error {
			return m.tx.WithTx(ctx, func(tx ordertx.Repository) error {
				return commitAssignment(ctx, tx, next, courierID)
			})
		},
	}
	if err := m.board.Execute(ctx, cmd); err != nil {
		m.logger.Warn("courier assignment failed",
			logx.OrderID(orderID),
			logx.Int64("courier_id", courierID),
			logx.Err(err),
		)
		return domain.AssignResult{}, err
	}

	m.board.Committed(ctx, board.Change{
		Before:  order,
		After:   next,
		Action:  board.ActionAssigned,
		Actor:   actor,
		Details: "courier_id=" + strconv.FormatInt(courierID, 10),
	})
	m.logger.Info("courier assigned",
		logx.OrderID(orderID),
		logx.Int64("courier_id", courierID),
	)
	return domain.AssignResult{OrderID: orderID, CourierID: courierID, Status: next.Status}, nil
}

// Progress records a step reported by the courier carrying orderID: arrival at the store,
// pickup, departure, arrival at the customer or delivery. Delivery frees the courier.
func (m *Manager) Progress(ctx context.Context, orderID string, courierID int64, to domain.OrderStatus) (domain.Order, error) {
	if courierID <= 0 {
		return domain.Order{}, ErrCourierRequired
	}
	courier, err := m.board.Courier(ctx, courierID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return domain.Order{}, fmt.Errorf("%w: courier %d", apperr.ErrNotFound, courierID)
		}
		return domain.Order{}, err
	}
	if !courier.Carries(orderID) {
		return domain.Order{}, ErrNotCarrier
	}

	next, err := m.board.Transition(ctx, orderID, lifecycle.Request{
		To:     to,
		Origin: lifecycle.OriginCourier,
		Actor:  "courier:" + strconv.FormatInt(courierID, 10),
	})
	if err != nil {
		return domain.Order{}, err
	}
	m.logger.Info("courier progress",
		logx.OrderID(orderID),
		logx.Int64("courier_id", courierID),
		logx.String("status", string(next.Status)),
	)
	return next, nil
}

// commitAssignment re-checks both rows under lock. The order row is locked first.
func commitAssignment(ctx context.Context, tx ordertx.Repository, next domain.Order, courierID int64) error {
	order, err := tx.GetOrderForUpdate(ctx, next.ID)
	if err != nil {
		return err
	}
	if order == nil {
		return apperr.ErrNotFound
	}
	if order.Status != domain.OrderReady {
		return lifecycle.ErrNotReady
	}

	courier, err := tx.GetCourierForUpdate(ctx, courierID)
	if err != nil {
		return err
	}
	if courier == nil {
		return fmt.Errorf("%w: courier %d", apperr.ErrNotFound, courierID)
	}
	if courier.Status != domain.CourierAvailable {
		return ErrCourierUnavailable
	}

	if err := tx.UpdateOrder(ctx, next); err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	if err := tx.UpdateCourier(ctx, courier.AssignTo(next.ID)); err != nil {
		return fmt.Errorf("update courier: %w", err)
	}
	return nil
}
