package domain

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

// Order statuses in lifecycle order.
const (
	OrderNew               OrderStatus = "new"
	OrderAccepted          OrderStatus = "accepted"
	OrderPreparing         OrderStatus = "preparing"
	OrderReady             OrderStatus = "ready"
	OrderGoingToStore      OrderStatus = "going_to_store"
	OrderArrivedAtStore    OrderStatus = "arrived_at_store"
	OrderPickedUp          OrderStatus = "picked_up"
	OrderOutForDelivery    OrderStatus = "out_for_delivery"
	OrderArrivedAtCustomer OrderStatus = "arrived_at_customer"
	OrderDelivered         OrderStatus = "delivered"
	OrderCancelled         OrderStatus = "cancelled"
)

var allowedOrderStatuses = [...]OrderStatus{
	OrderNew, OrderAccepted, OrderPreparing, OrderReady,
	OrderGoingToStore, OrderArrivedAtStore, OrderPickedUp,
	OrderOutForDelivery, OrderArrivedAtCustomer,
	OrderDelivered, OrderCancelled,
}

// OrderStatuses returns every known order status.
func OrderStatuses() []OrderStatus {
	out := make([]OrderStatus, len(allowedOrderStatuses))
	copy(out, allowedOrderStatuses[:])
	return out
}

// Valid checks if the OrderStatus is known
func (s OrderStatus) Valid() bool {
	for _, v := range allowedOrderStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transition is allowed from s.
func (s OrderStatus) Terminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

// DeliveryMethod tells how the order reaches the customer.
type DeliveryMethod string

// Delivery methods.
const (
	DeliveryMethodDelivery DeliveryMethod = "delivery"
	DeliveryMethodPickup   DeliveryMethod = "pickup"
)

// IsDelivery reports whether a courier carries the order.
func (m DeliveryMethod) IsDelivery() bool {
	return m == DeliveryMethodDelivery
}

// Priority marks how urgent an order is for the kitchen.
type Priority string

// Priorities.
const (
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "alta"
	PriorityLow    Priority = "baixa"
)

// Valid checks if the Priority is known
func (p Priority) Valid() bool {
	return p == PriorityNormal || p == PriorityHigh || p == PriorityLow
}

// ChangeStatus is the state of a customer change request.
type ChangeStatus string

// Customer change request states.
const (
	ChangePending  ChangeStatus = "pending"
	ChangeApproved ChangeStatus = "approved"
	ChangeRejected ChangeStatus = "rejected"
)

// Answer reports whether s is a valid operator answer.
func (s ChangeStatus) Answer() bool {
	return s == ChangeApproved || s == ChangeRejected
}
