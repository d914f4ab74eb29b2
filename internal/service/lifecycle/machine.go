package lifecycle

import (
	"strings"
	"time"

	"service-gestor/internal/domain"
)

// Machine validates transitions and applies their coupled side effects.
type Machine struct {
	codes CodeGenerator
	now   func() time.Time
}

// NewMachine creates a Machine. A nil generator falls back to RandomCodes.
func NewMachine(codes CodeGenerator) *Machine {
	if codes == nil {
		codes = NewRandomCodes()
	}
	return &Machine{
		codes: codes,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Apply returns the order as it must be persisted after req. The input is not modified.
func (m *Machine) Apply(o domain.Order, req Request) (domain.Order, error) {
	if err := CanTransition(o, req); err != nil {
		return domain.Order{}, err
	}

	next := o.Clone()
	next.Status = req.To
	now := m.now()

	switch req.To {
	case domain.OrderAccepted:
		next.AcceptedAt = &now
		next.PrepTime = req.PrepTime
	case domain.OrderReady:
		next.ReadyAt = &now
		ensureCodes(&next, m.codes, next.DeliveryMethod.IsDelivery())
	case domain.OrderGoingToStore:
		ensureCodes(&next, m.codes, true)
	case domain.OrderDelivered:
		next.DeliveredAt = &now
	case domain.OrderCancelled:
		next.RejectionReason = strings.TrimSpace(req.Reason)
	}
	return next, nil
}
