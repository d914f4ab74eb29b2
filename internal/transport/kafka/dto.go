package kafka

import (
	"strings"
	"time"

	"service-gestor/internal/domain"
	"service-gestor/internal/service/orders"
)

// EventDTO is the wire form of an order event
type EventDTO struct {
	EventID       string    `json:"event_id,omitempty"`
	OrderID       string    `json:"order_id"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	Order         *OrderDTO `json:"order,omitempty"`
	ChangeRequest string    `json:"change_request,omitempty"`
	Reason        string    `json:"reason,omitempty"`
}

// OrderDTO is the order payload of a created event
type OrderDTO struct {
	ID             string        `json:"id"`
	Code           string        `json:"order_code"`
	DeliveryMethod string        `json:"delivery_method"`
	Items          []domain.Item `json:"items"`
	Subtotal       float64       `json:"subtotal"`
	DeliveryFee    float64       `json:"delivery_fee"`
	Discount       float64       `json:"discount"`
	Total          float64       `json:"total"`
	PaymentMethod  string        `json:"payment_method"`
	Priority       string        `json:"priority,omitempty"`
	InternalNotes  string        `json:"internal_notes,omitempty"`
}

// ToDomain converts EventDTO to orders.Event
func ToDomain(dto EventDTO) orders.Event {
	ev := orders.Event{
		ID:            strings.TrimSpace(dto.EventID),
		OrderID:       strings.TrimSpace(dto.OrderID),
		Status:        strings.TrimSpace(dto.Status),
		CreatedAt:     dto.CreatedAt,
		ChangeRequest: dto.ChangeRequest,
		Reason:        dto.Reason,
	}
	if dto.Order != nil {
		ev.Order = &domain.Order{
			ID:             strings.TrimSpace(dto.Order.ID),
			Code:           strings.TrimSpace(dto.Order.Code),
			DeliveryMethod: domain.DeliveryMethod(strings.ToLower(strings.TrimSpace(dto.Order.DeliveryMethod))),
			Items:          dto.Order.Items,
			Subtotal:       dto.Order.Subtotal,
			DeliveryFee:    dto.Order.DeliveryFee,
			Discount:       dto.Order.Discount,
			Total:          dto.Order.Total,
			PaymentMethod:  dto.Order.PaymentMethod,
			Priority:       domain.Priority(strings.TrimSpace(dto.Order.Priority)),
			InternalNotes:  dto.Order.InternalNotes,
		}
		if ev.OrderID == "" {
			ev.OrderID = ev.Order.ID
		}
	}
	return ev
}
