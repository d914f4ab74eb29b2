package domain

import "time"

// OrderLog is one append-only audit entry.
type OrderLog struct {
	ID        int64
	OrderID   string
	Action    string
	OldStatus OrderStatus
	NewStatus OrderStatus
	UserEmail string
	Timestamp time.Time
	Details   string
}
