package orders

import (
	"time"

	"service-gestor/internal/domain"
)

// Event kinds published by the ordering flow.
const (
	EventCreated         = "created"
	EventChangeRequested = "change_requested"
	EventCanceled        = "canceled"
)

// Event is a single order event
type Event struct {
	ID            string
	OrderID       string
	Status        string
	CreatedAt     time.Time
	Order         *domain.Order
	ChangeRequest string
	Reason        string
}
