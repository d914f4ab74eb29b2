package board

import (
	"context"
	"fmt"

	"service-gestor/internal/apperr"
	"service-gestor/internal/domain"
	"service-gestor/internal/service/lifecycle"
)

// Drop applies a drag from one board slot to another. A drop into the column the order
// already sits in is a reorder and leaves the store untouched.
func (s *Service) Drop(ctx context.Context, m domain.Move, actor string) (domain.Order, error) {
	if !m.From.Column.Valid() || !m.To.Column.Valid() {
		return domain.Order{}, fmt.Errorf("%w: unknown column", apperr.ErrInvalid)
	}
	current, err := s.Order(ctx, m.OrderID)
	if err != nil {
		return domain.Order{}, err
	}
	if m.From == m.To || boardColumn(current.Status) == m.To.Column {
		return current, nil
	}

	target, err := DropTarget(current, m.To.Column)
	if err != nil {
		return domain.Order{}, err
	}
	if target == current.Status {
		return current, nil
	}
	return s.Transition(ctx, m.OrderID, lifecycle.Request{
		To:     target,
		Origin: lifecycle.OriginOperator,
		Actor:  actor,
	})
}

// boardColumn is the column the board shows status in. Unknown statuses sit in preparation.
func boardColumn(status domain.OrderStatus) domain.Column {
	col, err := lifecycle.Classify(status)
	if err != nil {
		return domain.ColumnPreparation
	}
	return col
}

// DropTarget returns the status o gets when dropped into col.
func DropTarget(o domain.Order, col domain.Column) (domain.OrderStatus, error) {
	switch col {
	case domain.ColumnPreparation:
		switch o.Status {
		case domain.OrderNew, domain.OrderAccepted, domain.OrderPreparing:
			return o.Status, nil
		}
		return domain.OrderPreparing, nil
	case domain.ColumnReady:
		return domain.OrderReady, nil
	case domain.ColumnInRoute:
		if o.Status != domain.OrderReady && o.Status != domain.OrderPickedUp {
			return "", lifecycle.ErrNotReady
		}
		return domain.OrderOutForDelivery, nil
	case domain.ColumnDone:
		switch {
		case o.Status == domain.OrderOutForDelivery, o.Status == domain.OrderArrivedAtCustomer:
			return domain.OrderDelivered, nil
		case o.Status == domain.OrderReady && !o.DeliveryMethod.IsDelivery():
			// самовывоз
			return domain.OrderDelivered, nil
		}
		return "", lifecycle.ErrNotInDelivery
	default:
		return "", fmt.Errorf("%w: unknown column %q", apperr.ErrInvalid, col)
	}
}
