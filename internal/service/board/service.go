package board

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"service-gestor/internal/apperr"
	"service-gestor/internal/domain"
	"service-gestor/internal/logx"
	"service-gestor/internal/ports/ordertx"
	"service-gestor/internal/service/lifecycle"
)

// Audit actions.
const (
	ActionStatusChanged  = "status_changed"
	ActionAnnotated      = "annotated"
	ActionChangeAnswered = "customer_change_answered"
	ActionAssigned       = "courier_assigned"
)

// ErrStaleOrder is returned when the stored order moved on since the board last saw it.
var ErrStaleOrder = fmt.Errorf("%w: order was changed by someone else, refresh the board", apperr.ErrConflict)

// Card is one order as shown on the board.
type Card struct {
	Order         domain.Order
	UnknownStatus bool
	InFlight      bool
}

// View is the board split into its columns.
type View map[domain.Column][]Card

// Change describes a committed mutation for the audit trail and status broadcast.
type Change struct {
	Before  domain.Order
	After   domain.Order
	Action  string
	Actor   string
	Details string
}

// Service owns the board: the cached listing and every mutation applied to it.
type Service struct {
	cache       *Cache
	coord       *Coordinator
	machine     *lifecycle.Machine
	orders      orderStore
	couriers    courierStore
	tx          ordertx.Runner
	recorder    auditRecorder
	notifier    statusNotifier
	transitions labeledCounter
	logger      logx.Logger

	window time.Duration
	now    func() time.Time
	wg     sync.WaitGroup
}

// Deps groups the collaborators of Service.
type Deps struct {
	Cache       *Cache
	Coordinator *Coordinator
	Machine     *lifecycle.Machine
	Orders      orderStore
	Couriers    courierStore
	Tx          ordertx.Runner
	Recorder    auditRecorder
	Notifier    statusNotifier
	Transitions labeledCounter
	Logger      logx.Logger
	// Window is how far back finished orders stay on the board.
	Window time.Duration
}

// NewService creates a Service.
func NewService(d Deps) *Service {
	if d.Window <= 0 {
		d.Window = 24 * time.Hour
	}
	if d.Logger == nil {
		d.Logger = logx.Nop()
	}
	return &Service{
		cache:       d.Cache,
		coord:       d.Coordinator,
		machine:     d.Machine,
		orders:      d.Orders,
		couriers:    d.Couriers,
		tx:          d.Tx,
		recorder:    d.Recorder,
		notifier:    d.Notifier,
		transitions: d.Transitions,
		logger:      d.Logger,
		window:      d.Window,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Refresh reloads orders and couriers from the store. Orders with a change in flight
// keep their optimistic copy.
func (s *Service) Refresh(ctx context.Context) error {
	orders, err := s.orders.List(ctx, s.now().Add(-s.window))
	if err != nil {
		return fmt.Errorf("list orders: %w", err)
	}
	couriers, err := s.couriers.List(ctx, nil, nil, nil)
	if err != nil {
		return fmt.Errorf("list couriers: %w", err)
	}
	s.cache.Replace(orders, couriers, s.coord.InFlight)
	return nil
}

// Columns groups the cached orders by column, newest first inside each column.
func (s *Service) Columns() View {
	view := make(View, len(domain.Columns()))
	for _, c := range domain.Columns() {
		view[c] = []Card{}
	}
	for _, o := range s.cache.Orders() {
		card := Card{Order: o, InFlight: s.coord.InFlight(o.ID)}
		col, err := lifecycle.Classify(o.Status)
		if err != nil {
			s.logger.Warn("order with unknown status placed in preparation",
				logx.OrderID(o.ID),
				logx.String("status", string(o.Status)),
			)
			col = domain.ColumnPreparation
			card.UnknownStatus = true
		}
		view[col] = append(view[col], card)
	}
	return view
}

// Orders returns every order on the board.
func (s *Service) Orders() []domain.Order {
	return s.cache.Orders()
}

// Order returns the board's copy of an order, loading it from the store on a miss.
func (s *Service) Order(ctx context.Context, id string) (domain.Order, error) {
	if id == "" {
		return domain.Order{}, fmt.Errorf("%w: order id is required", apperr.ErrInvalid)
	}
	if o, ok := s.cache.Order(id); ok {
		return o, nil
	}
	return s.reload(ctx, id)
}

// reload replaces the board's copy of an order, and of its courier, with the stored one.
func (s *Service) reload(ctx context.Context, id string) (domain.Order, error) {
	o, err := s.orders.Get(ctx, id)
	if err != nil {
		return domain.Order{}, fmt.Errorf("get order %q: %w", id, err)
	}
	if o == nil {
		return domain.Order{}, apperr.ErrNotFound
	}
	s.cache.PutOrder(*o)
	if o.EntregadorID != nil {
		c, err := s.couriers.Get(ctx, *o.EntregadorID)
		if err != nil {
			return domain.Order{}, fmt.Errorf("get courier %d: %w", *o.EntregadorID, err)
		}
		if c != nil {
			s.cache.PutCourier(*c)
		}
	}
	return *o, nil
}

// Courier returns the board's copy of a courier, loading it from the store on a miss.
func (s *Service) Courier(ctx context.Context, id int64) (domain.Courier, error) {
	if id <= 0 {
		return domain.Courier{}, fmt.Errorf("%w: courier id is required", apperr.ErrInvalid)
	}
	if c, ok := s.cache.Courier(id); ok {
		return c, nil
	}
	c, err := s.couriers.Get(ctx, id)
	if err != nil {
		return domain.Courier{}, fmt.Errorf("get courier %d: %w", id, err)
	}
	if c == nil {
		return domain.Courier{}, apperr.ErrNotFound
	}
	s.cache.PutCourier(*c)
	return *c, nil
}

// Transition moves an order to req.To. Guards run before anything is applied; the status
// write, its side effects and the courier release share one transaction.
// When the board's copy turns out stale it is reloaded. System requests are then retried
// once against the fresh copy, people get ErrStaleOrder and decide again.
func (s *Service) Transition(ctx context.Context, id string, req lifecycle.Request) (domain.Order, error) {
	next, err := s.transition(ctx, id, req)
	if !errors.Is(err, ErrStaleOrder) {
		return next, err
	}
	fresh, rerr := s.reload(ctx, id)
	if rerr != nil {
		return domain.Order{}, errors.Join(err, rerr)
	}
	s.logger.Warn("stale board copy reloaded",
		logx.OrderID(id),
		logx.String("status", string(fresh.Status)),
		logx.String("origin", string(req.Origin)),
	)
	if req.Origin != lifecycle.OriginSystem {
		return domain.Order{}, err
	}
	return s.transition(ctx, id, req)
}

func (s *Service) transition(ctx context.Context, id string, req lifecycle.Request) (domain.Order, error) {
	current, err := s.Order(ctx, id)
	if err != nil {
		return domain.Order{}, err
	}
	next, err := s.machine.Apply(current, req)
	if err != nil {
		if errors.Is(err, lifecycle.ErrTerminal) {
			s.logger.Error("transition requested on finished order",
				logx.OrderID(id),
				logx.String("status", string(current.Status)),
				logx.String("to", string(req.To)),
				logx.String("origin", string(req.Origin)),
			)
		}
		return domain.Order{}, err
	}

	cmd := &Command{Orders: []domain.Order{next}}
	if next.Status.Terminal() && current.EntregadorID != nil {
		if c, ok := s.cache.Courier(*current.EntregadorID); ok && c.Carries(id) {
			cmd.Couriers = append(cmd.Couriers, c.Release(next.Status == domain.OrderDelivered))
		}
	}
	cmd.Commit = func(ctx context.Context) error {
		return s.tx.WithTx(ctx, func(tx ordertx.Repository) error {
			return commitTransition(ctx, tx, current, next)
		})
	}

	if err := s.coord.Execute(ctx, cmd); err != nil {
		return domain.Order{}, err
	}

	s.Committed(ctx, Change{
		Before:  current,
		After:   next,
		Action:  ActionStatusChanged,
		Actor:   req.Actor,
		Details: transitionDetails(next),
	})
	return next, nil
}

func commitTransition(ctx context.Context, tx ordertx.Repository, current, next domain.Order) error {
	locked, err := tx.GetOrderForUpdate(ctx, next.ID)
	if err != nil {
		return err
	}
	if locked == nil {
		return apperr.ErrNotFound
	}
	if locked.Status != current.Status {
		return ErrStaleOrder
	}
	if err := tx.UpdateOrder(ctx, next); err != nil {
		return err
	}
	if !next.Status.Terminal() || locked.EntregadorID == nil {
		return nil
	}

	c, err := tx.GetCourierForUpdate(ctx, *locked.EntregadorID)
	if err != nil {
		return err
	}
	if c == nil || !c.Carries(next.ID) {
		return nil
	}
	return tx.UpdateCourier(ctx, c.Release(next.Status == domain.OrderDelivered))
}

func transitionDetails(o domain.Order) string {
	switch o.Status {
	case domain.OrderAccepted:
		return "prep_time=" + strconv.Itoa(o.PrepTime)
	case domain.OrderCancelled:
		return o.RejectionReason
	default:
		return ""
	}
}

// Annotate updates priority and internal notes without touching the status.
func (s *Service) Annotate(ctx context.Context, id string, a domain.OrderAnnotations, actor string) (domain.Order, error) {
	if a.Priority == nil && a.InternalNotes == nil {
		return domain.Order{}, fmt.Errorf("%w: nothing to update", apperr.ErrInvalid)
	}
	if a.Priority != nil && !a.Priority.Valid() {
		return domain.Order{}, fmt.Errorf("%w: unknown priority %q", apperr.ErrInvalid, *a.Priority)
	}
	current, err := s.Order(ctx, id)
	if err != nil {
		return domain.Order{}, err
	}

	next := current.Clone()
	if a.Priority != nil {
		next.Priority = *a.Priority
	}
	if a.InternalNotes != nil {
		next.InternalNotes = *a.InternalNotes
	}

	cmd := &Command{
		Orders: []domain.Order{next},
		Commit: func(ctx context.Context) error {
			ok, err := s.orders.UpdateAnnotations(ctx, id, a)
			if err != nil {
				return err
			}
			if !ok {
				return apperr.ErrNotFound
			}
			return nil
		},
	}
	if err := s.coord.Execute(ctx, cmd); err != nil {
		return domain.Order{}, err
	}

	s.Committed(ctx, Change{
		Before:  current,
		After:   next,
		Action:  ActionAnnotated,
		Actor:   actor,
		Details: "priority=" + string(next.Priority),
	})
	return next, nil
}

// AnswerChange approves or rejects a pending customer change request.
func (s *Service) AnswerChange(ctx context.Context, id string, a domain.ChangeAnswer, actor string) (domain.Order, error) {
	if !a.Status.Answer() {
		return domain.Order{}, fmt.Errorf("%w: answer must be approved or rejected", apperr.ErrInvalid)
	}
	current, err := s.Order(ctx, id)
	if err != nil {
		return domain.Order{}, err
	}
	if current.CustomerChangeStatus != domain.ChangePending {
		return domain.Order{}, fmt.Errorf("%w: no pending change request", apperr.ErrConflict)
	}

	next := current.Clone()
	next.CustomerChangeStatus = a.Status
	next.CustomerChangeResponse = a.Response

	cmd := &Command{
		Orders: []domain.Order{next},
		Commit: func(ctx context.Context) error {
			ok, err := s.orders.AnswerChange(ctx, id, a)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%w: no pending change request", apperr.ErrConflict)
			}
			return nil
		},
	}
	if err := s.coord.Execute(ctx, cmd); err != nil {
		return domain.Order{}, err
	}

	s.Committed(ctx, Change{
		Before:  current,
		After:   next,
		Action:  ActionChangeAnswered,
		Actor:   actor,
		Details: string(a.Status) + ": " + a.Response,
	})
	return next, nil
}

// Execute runs a command through the board's coordinator.
func (s *Service) Execute(ctx context.Context, cmd *Command) error {
	return s.coord.Execute(ctx, cmd)
}

// Committed records the audit entry of a committed change and, when the status moved,
// broadcasts it. Both run in the background and neither can fail the change.
func (s *Service) Committed(ctx context.Context, ch Change) {
	now := s.now()
	if s.recorder != nil {
		entry := domain.OrderLog{
			OrderID:   ch.After.ID,
			Action:    ch.Action,
			OldStatus: ch.Before.Status,
			NewStatus: ch.After.Status,
			UserEmail: ch.Actor,
			Timestamp: now,
			Details:   ch.Details,
		}
		s.background(ctx, func(ctx context.Context) {
			s.recorder.Record(ctx, entry)
		})
	}
	if ch.Before.Status == ch.After.Status {
		return
	}
	if s.transitions != nil {
		s.transitions.WithLabelValues(string(ch.After.Status)).Inc()
	}
	if s.notifier == nil {
		return
	}

	event := domain.StatusChange{
		OrderID:   ch.After.ID,
		OrderCode: ch.After.Code,
		OldStatus: ch.Before.Status,
		NewStatus: ch.After.Status,
		CourierID: ch.After.EntregadorID,
		Actor:     ch.Actor,
		ChangedAt: now,
	}
	s.background(ctx, func(ctx context.Context) {
		if err := s.notifier.Notify(ctx, event); err != nil {
			s.logger.Warn("status notification failed",
				logx.OrderID(event.OrderID),
				logx.String("status", string(event.NewStatus)),
				logx.Err(err),
			)
		}
	})
}

// background runs fn detached from the caller's cancellation. Wait covers it.
func (s *Service) background(ctx context.Context, fn func(ctx context.Context)) {
	bctx := context.WithoutCancel(ctx)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		fn(bctx)
	}()
}

// Wait blocks until pending audit writes and notifications are done or given up.
func (s *Service) Wait() {
	s.wg.Wait()
}
