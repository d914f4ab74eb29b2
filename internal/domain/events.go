package domain

import "time"

// StatusChange is broadcast after a transition is committed.
type StatusChange struct {
	OrderID   string      `json:"order_id"`
	OrderCode string      `json:"order_code"`
	OldStatus OrderStatus `json:"old_status"`
	NewStatus OrderStatus `json:"new_status"`
	CourierID *int64      `json:"courier_id,omitempty"`
	Actor     string      `json:"actor,omitempty"`
	ChangedAt time.Time   `json:"changed_at"`
}
