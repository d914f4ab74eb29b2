package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofrs/uuid"

	"service-gestor/internal/apperr"
	"service-gestor/internal/domain"
	"service-gestor/internal/logx"
	"service-gestor/internal/service/lifecycle"
)

// Audit actions written by the processor.
const (
	ActionCreated         = "created"
	ActionChangeRequested = "customer_change_requested"
)

// DefaultCancelReason is used when a cancellation event carries no reason.
const DefaultCancelReason = "cancelled by customer"

// Processor applies order events from the ordering flow to the board's store.
type Processor struct {
	orders    OrderStore
	canceller Canceller
	recorder  AuditRecorder
	logger    logx.Logger
	factory   *actionFactory
	now       func() time.Time
}

// NewProcessor creates a Processor.
func NewProcessor(orders OrderStore, canceller Canceller, recorder AuditRecorder, logger logx.Logger) *Processor {
	p := &Processor{
		orders:    orders,
		canceller: canceller,
		recorder:  recorder,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
	p.factory = newActionFactory(p.onCreated, p.onChangeRequested, p.onCanceled)
	return p
}

// Handle processes a single Event. Unknown kinds are ignored.
func (p *Processor) Handle(ctx context.Context, e Event) error {
	fn, ok := p.factory.get(e.Status)
	if !ok {
		p.logger.Debug("order event ignored",
			logx.String("event_id", e.ID),
			logx.String("status", e.Status),
		)
		return nil
	}
	return fn(ctx, e)
}

func (p *Processor) onCreated(ctx context.Context, e Event) error {
	if e.Order == nil {
		return fmt.Errorf("%w: created event without order payload", apperr.ErrInvalid)
	}
	o := e.Order.Clone()
	if o.ID == "" {
		o.ID = e.OrderID
	}
	if o.ID == "" {
		id, err := uuid.NewV4()
		if err != nil {
			return fmt.Errorf("order id: %w", err)
		}
		o.ID = id.String()
	}
	o.Status = domain.OrderNew
	if o.CreatedDate.IsZero() {
		o.CreatedDate = e.CreatedAt
	}
	if o.CreatedDate.IsZero() {
		o.CreatedDate = p.now()
	}
	if o.Priority == "" {
		o.Priority = domain.PriorityNormal
	}
	if !o.Priority.Valid() {
		return fmt.Errorf("%w: unknown priority %q", apperr.ErrInvalid, o.Priority)
	}

	if err := p.orders.Create(ctx, o); err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			// повторная доставка того же события
			return nil
		}
		return fmt.Errorf("create order %q: %w", o.ID, err)
	}

	p.recorder.Record(ctx, domain.OrderLog{
		OrderID:   o.ID,
		Action:    ActionCreated,
		NewStatus: domain.OrderNew,
		UserEmail: "system",
		Timestamp: p.now(),
	})
	p.logger.Info("order ingested", logx.OrderID(o.ID), logx.String("code", o.Code))
	return nil
}

func (p *Processor) onChangeRequested(ctx context.Context, e Event) error {
	request := strings.TrimSpace(e.ChangeRequest)
	if request == "" {
		return fmt.Errorf("%w: empty change request", apperr.ErrInvalid)
	}
	ok, err := p.orders.RequestChange(ctx, e.OrderID, request)
	if err != nil {
		return fmt.Errorf("request change on %q: %w", e.OrderID, err)
	}
	if !ok {
		return fmt.Errorf("%w: order %q", apperr.ErrNotFound, e.OrderID)
	}

	p.recorder.Record(ctx, domain.OrderLog{
		OrderID:   e.OrderID,
		Action:    ActionChangeRequested,
		UserEmail: "customer",
		Timestamp: p.now(),
		Details:   request,
	})
	return nil
}

func (p *Processor) onCanceled(ctx context.Context, e Event) error {
	reason := strings.TrimSpace(e.Reason)
	if reason == "" {
		reason = DefaultCancelReason
	}
	_, err := p.canceller.Transition(ctx, e.OrderID, lifecycle.Request{
		To:     domain.OrderCancelled,
		Reason: reason,
		Origin: lifecycle.OriginSystem,
		Actor:  "customer",
	})
	switch {
	case err == nil:
		return nil
	case errors.Is(err, lifecycle.ErrTerminal), errors.Is(err, apperr.ErrNotFound):
		p.logger.Info("cancel event for finished or unknown order ignored",
			logx.OrderID(e.OrderID),
			logx.Err(err),
		)
		return nil
	default:
		return err
	}
}
