package lifecycle

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"service-gestor/internal/domain"
)

// Guard bounds.
const (
	MinPrepTime     = 5
	MaxPrepTime     = 180
	MinReasonLength = 5
)

// Origin tells who asked for a transition.
type Origin string

// Transition origins.
const (
	OriginOperator   Origin = "operator"
	OriginCourier    Origin = "courier"
	OriginAssignment Origin = "assignment"
	OriginSystem     Origin = "system"
)

// Request is a requested status change with the data its guard needs.
type Request struct {
	To       domain.OrderStatus
	PrepTime int
	Reason   string
	Origin   Origin
	Actor    string
}

type guard func(o domain.Order, r Request) error

type rule struct {
	from    domain.OrderStatus
	to      domain.OrderStatus
	origins []Origin
	guard   guard
}

var (
	manual     = []Origin{OriginOperator}
	courier    = []Origin{OriginCourier}
	fieldwork  = []Origin{OriginOperator, OriginCourier}
	assignment = []Origin{OriginAssignment}
)

var rules = []rule{
	{from: domain.OrderNew, to: domain.OrderAccepted, origins: manual, guard: prepTimeInRange},
	{from: domain.OrderNew, to: domain.OrderCancelled, origins: manual, guard: reasonLongEnough},
	{from: domain.OrderAccepted, to: domain.OrderCancelled, origins: manual, guard: reasonLongEnough},
	{from: domain.OrderAccepted, to: domain.OrderPreparing, origins: manual},
	{from: domain.OrderPreparing, to: domain.OrderReady, origins: manual},
	{from: domain.OrderReady, to: domain.OrderOutForDelivery, origins: manual, guard: deliveryOnly},
	{from: domain.OrderPickedUp, to: domain.OrderOutForDelivery, origins: fieldwork, guard: deliveryOnly},
	{from: domain.OrderReady, to: domain.OrderDelivered, origins: manual, guard: pickupOnly},
	{from: domain.OrderOutForDelivery, to: domain.OrderDelivered, origins: fieldwork},
	{from: domain.OrderArrivedAtCustomer, to: domain.OrderDelivered, origins: fieldwork},
	{from: domain.OrderReady, to: domain.OrderGoingToStore, origins: assignment},
	{from: domain.OrderGoingToStore, to: domain.OrderArrivedAtStore, origins: courier},
	{from: domain.OrderArrivedAtStore, to: domain.OrderPickedUp, origins: courier},
	{from: domain.OrderOutForDelivery, to: domain.OrderArrivedAtCustomer, origins: courier},
}

type ruleKey struct {
	from domain.OrderStatus
	to   domain.OrderStatus
}

var ruleIndex = func() map[ruleKey]rule {
	m := make(map[ruleKey]rule, len(rules))
	for _, r := range rules {
		m[ruleKey{from: r.from, to: r.to}] = r
	}
	return m
}()

// CanTransition checks a request against the transition table.
// Terminal orders reject everything, whoever asks.
func CanTransition(o domain.Order, req Request) error {
	if o.Status.Terminal() {
		return fmt.Errorf("%w: %s is terminal", ErrTerminal, o.Status)
	}
	if req.To == domain.OrderCancelled && req.Origin == OriginSystem {
		if strings.TrimSpace(req.Reason) == "" {
			return ErrReasonTooShort
		}
		return nil
	}

	r, ok := ruleIndex[ruleKey{from: o.Status, to: req.To}]
	if !ok {
		return fmt.Errorf("%w: %s -> %s", ErrTransitionNotAllowed, o.Status, req.To)
	}
	if !allows(r.origins, req.Origin) {
		if req.To == domain.OrderGoingToStore {
			return ErrAssignmentOnly
		}
		if !allows(r.origins, OriginOperator) && allows(r.origins, OriginCourier) {
			return ErrCourierOnly
		}
		return fmt.Errorf("%w: %s -> %s by %s", ErrTransitionNotAllowed, o.Status, req.To, req.Origin)
	}
	if r.guard != nil {
		return r.guard(o, req)
	}
	return nil
}

// NextStatuses lists the targets reachable from status for the given origin, ignoring guards.
func NextStatuses(status domain.OrderStatus, origin Origin) []domain.OrderStatus {
	if status.Terminal() {
		return nil
	}
	var out []domain.OrderStatus
	for _, r := range rules {
		if r.from == status && allows(r.origins, origin) {
			out = append(out, r.to)
		}
	}
	return out
}

func allows(origins []Origin, o Origin) bool {
	for _, v := range origins {
		if v == o {
			return true
		}
	}
	return false
}

func prepTimeInRange(_ domain.Order, r Request) error {
	if r.PrepTime < MinPrepTime || r.PrepTime > MaxPrepTime {
		return ErrPrepTimeOutOfRange
	}
	return nil
}

func reasonLongEnough(_ domain.Order, r Request) error {
	if utf8.RuneCountInString(strings.TrimSpace(r.Reason)) < MinReasonLength {
		return ErrReasonTooShort
	}
	return nil
}

func deliveryOnly(o domain.Order, _ Request) error {
	if !o.DeliveryMethod.IsDelivery() {
		return ErrNotDeliveryOrder
	}
	return nil
}

func pickupOnly(o domain.Order, _ Request) error {
	if o.DeliveryMethod.IsDelivery() {
		return ErrDeliveryNeedsRoute
	}
	return nil
}
