package handlers

import (
	"time"

	"service-gestor/internal/domain"
)

type courierDTO struct {
	ID              int64                       `json:"id"`
	Name            string                      `json:"name"`
	Phone           string                      `json:"phone"`
	Status          domain.CourierStatus        `json:"status"`
	TransportType   domain.CourierTransportType `json:"transport_type"`
	CurrentOrderID  *string                     `json:"current_order_id,omitempty"`
	TotalDeliveries int                         `json:"total_deliveries"`
}

type createCourierRequest struct {
	Name          string                      `json:"name" validate:"required,min=2"`
	Phone         string                      `json:"phone" validate:"required"`
	TransportType domain.CourierTransportType `json:"transport_type"`
}

type updateCourierRequest struct {
	Name          *string                      `json:"name,omitempty" validate:"omitempty,min=2"`
	Phone         *string                      `json:"phone,omitempty"`
	TransportType *domain.CourierTransportType `json:"transport_type,omitempty"`
}

type orderDTO struct {
	ID             string                `json:"id"`
	OrderCode      string                `json:"order_code"`
	Status         domain.OrderStatus    `json:"status"`
	CreatedDate    time.Time             `json:"created_date"`
	AcceptedAt     *time.Time            `json:"accepted_at,omitempty"`
	ReadyAt        *time.Time            `json:"ready_at,omitempty"`
	DeliveredAt    *time.Time            `json:"delivered_at,omitempty"`
	PrepTime       int                   `json:"prep_time,omitempty"`
	DeliveryMethod domain.DeliveryMethod `json:"delivery_method"`
	PickupCode     string                `json:"pickup_code,omitempty"`
	DeliveryCode   string                `json:"delivery_code,omitempty"`
	EntregadorID   *int64                `json:"entregador_id,omitempty"`
	StoreLatitude  *float64              `json:"store_latitude,omitempty"`
	StoreLongitude *float64              `json:"store_longitude,omitempty"`
	Items          []domain.Item         `json:"items"`
	Subtotal       float64               `json:"subtotal"`
	DeliveryFee    float64               `json:"delivery_fee"`
	Discount       float64               `json:"discount"`
	Total          float64               `json:"total"`
	PaymentMethod  string                `json:"payment_method,omitempty"`

	RejectionReason        string              `json:"rejection_reason,omitempty"`
	InternalNotes          string              `json:"internal_notes,omitempty"`
	Priority               domain.Priority     `json:"priority"`
	CustomerChangeRequest  string              `json:"customer_change_request,omitempty"`
	CustomerChangeStatus   domain.ChangeStatus `json:"customer_change_status,omitempty"`
	CustomerChangeResponse string              `json:"customer_change_response,omitempty"`
}

type cardDTO struct {
	Order         orderDTO `json:"order"`
	UnknownStatus bool     `json:"unknown_status,omitempty"`
	InFlight      bool     `json:"in_flight,omitempty"`
}

type boardDTO struct {
	Columns map[domain.Column][]cardDTO `json:"columns"`
}

type positionDTO struct {
	Column domain.Column `json:"column" validate:"required"`
	Index  int           `json:"index" validate:"min=0"`
}

type moveRequest struct {
	OrderID string      `json:"order_id" validate:"required"`
	From    positionDTO `json:"from"`
	To      positionDTO `json:"to"`
}

type transitionRequest struct {
	To       domain.OrderStatus `json:"to" validate:"required"`
	PrepTime int                `json:"prep_time,omitempty" validate:"min=0"`
	Reason   string             `json:"reason,omitempty" validate:"max=500"`
}

type annotateRequest struct {
	Priority      *domain.Priority `json:"priority,omitempty"`
	InternalNotes *string          `json:"internal_notes,omitempty" validate:"omitempty,max=2000"`
}

type changeAnswerRequest struct {
	Status   domain.ChangeStatus `json:"status" validate:"required,oneof=approved rejected"`
	Response string              `json:"response" validate:"max=500"`
}

type assignRequest struct {
	CourierID int64 `json:"courier_id" validate:"required,gt=0"`
}

type progressRequest struct {
	CourierID int64              `json:"courier_id" validate:"required,gt=0"`
	Status    domain.OrderStatus `json:"status" validate:"required"`
}

type assignResponse struct {
	OrderID   string             `json:"order_id"`
	CourierID int64              `json:"courier_id"`
	Status    domain.OrderStatus `json:"status"`
}

type orderLogDTO struct {
	ID        int64              `json:"id"`
	OrderID   string             `json:"order_id"`
	Action    string             `json:"action"`
	OldStatus domain.OrderStatus `json:"old_status,omitempty"`
	NewStatus domain.OrderStatus `json:"new_status,omitempty"`
	UserEmail string             `json:"user_email,omitempty"`
	Timestamp time.Time          `json:"timestamp"`
	Details   string             `json:"details,omitempty"`
}

type preferencesDTO struct {
	AutoCancelEnabled    bool `json:"auto_cancel_enabled"`
	LateToleranceMinutes int  `json:"late_tolerance_minutes" validate:"min=0"`
	DefaultPrepTime      int  `json:"default_prep_time" validate:"min=0"`
	SoundAlerts          bool `json:"sound_alerts"`
}
