package lateorders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"service-gestor/internal/domain"
	"service-gestor/internal/logx"
	"service-gestor/internal/service/board"
	"service-gestor/internal/service/lifecycle"
)

// Reason is stored on orders cancelled by the monitor.
const Reason = "exceeded preparation time"

type boardService interface {
	Orders() []domain.Order
	Transition(ctx context.Context, id string, req lifecycle.Request) (domain.Order, error)
}

type prefsReader interface {
	Get(ctx context.Context) (domain.Preferences, error)
}

type counter interface {
	Inc()
}

// Monitor cancels accepted orders that overran their preparation time.
type Monitor struct {
	board     boardService
	prefs     prefsReader
	cancelled counter
	logger    logx.Logger
	now       func() time.Time
}

// NewMonitor creates a Monitor.
func NewMonitor(b boardService, p prefsReader, cancelled counter, logger logx.Logger) *Monitor {
	return &Monitor{
		board:     b,
		prefs:     p,
		cancelled: cancelled,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Late reports whether o has been in preparation longer than its prep time plus tolerance.
// Orders without a prep time use defaultPrep.
func Late(o domain.Order, now time.Time, tolerance, defaultPrep int) bool {
	if o.Status.Terminal() || o.AcceptedAt == nil {
		return false
	}
	prep := o.PrepTime
	if prep <= 0 {
		prep = defaultPrep
	}
	limit := time.Duration(prep+tolerance) * time.Minute
	return now.Sub(*o.AcceptedAt) > limit
}

// Sweep cancels every late order on the board and returns how many were cancelled.
// Failed cancellations stay eligible for the next sweep.
func (m *Monitor) Sweep(ctx context.Context) (int, error) {
	p, err := m.prefs.Get(ctx)
	if err != nil {
		return 0, fmt.Errorf("load preferences: %w", err)
	}
	if !p.AutoCancelEnabled {
		return 0, nil
	}

	now := m.now()
	cancelled := 0
	for _, o := range m.board.Orders() {
		if err := ctx.Err(); err != nil {
			return cancelled, err
		}
		if !Late(o, now, p.LateToleranceMinutes, p.DefaultPrepTime) {
			continue
		}

		_, err := m.board.Transition(ctx, o.ID, lifecycle.Request{
			To:     domain.OrderCancelled,
			Reason: Reason,
			Origin: lifecycle.OriginSystem,
			Actor:  "system",
		})
		switch {
		case err == nil:
			cancelled++
			if m.cancelled != nil {
				m.cancelled.Inc()
			}
			m.logger.Info("late order cancelled",
				logx.OrderID(o.ID),
				logx.Duration("elapsed", now.Sub(*o.AcceptedAt)),
			)
		case errors.Is(err, board.ErrInFlight):
			m.logger.Debug("late order busy, retrying next sweep", logx.OrderID(o.ID))
		default:
			m.logger.Warn("late order cancel failed",
				logx.OrderID(o.ID),
				logx.Err(err),
			)
		}
	}
	return cancelled, nil
}
