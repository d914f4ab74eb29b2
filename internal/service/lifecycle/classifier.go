package lifecycle

import (
	"fmt"

	"service-gestor/internal/domain"
)

var columnByStatus = map[domain.OrderStatus]domain.Column{
	domain.OrderNew:               domain.ColumnPreparation,
	domain.OrderAccepted:          domain.ColumnPreparation,
	domain.OrderPreparing:         domain.ColumnPreparation,
	domain.OrderReady:             domain.ColumnReady,
	domain.OrderGoingToStore:      domain.ColumnReady,
	domain.OrderArrivedAtStore:    domain.ColumnReady,
	domain.OrderPickedUp:          domain.ColumnReady,
	domain.OrderOutForDelivery:    domain.ColumnInRoute,
	domain.OrderArrivedAtCustomer: domain.ColumnInRoute,
	domain.OrderDelivered:         domain.ColumnDone,
	domain.OrderCancelled:         domain.ColumnDone,
}

// Classify maps a status to its board column.
// Unknown statuses return ErrUnknownStatus; callers decide where to show them.
func Classify(s domain.OrderStatus) (domain.Column, error) {
	col, ok := columnByStatus[s]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
	}
	return col, nil
}
