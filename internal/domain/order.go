package domain

import "time"

// Item is a single line of an order.
type Item struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Notes     string  `json:"notes,omitempty"`
}

// Order is the persisted record every board transition acts on.
type Order struct {
	ID          string
	Code        string
	Status      OrderStatus
	CreatedDate time.Time
	AcceptedAt  *time.Time
	ReadyAt     *time.Time
	DeliveredAt *time.Time
	// PrepTime is in minutes and set on acceptance.
	PrepTime int

	DeliveryMethod DeliveryMethod
	PickupCode     string
	DeliveryCode   string
	EntregadorID   *int64
	StoreLatitude  *float64
	StoreLongitude *float64

	Items         []Item
	Subtotal      float64
	DeliveryFee   float64
	Discount      float64
	Total         float64
	PaymentMethod string

	RejectionReason        string
	InternalNotes          string
	Priority               Priority
	CustomerChangeRequest  string
	CustomerChangeStatus   ChangeStatus
	CustomerChangeResponse string
}

// Clone returns a deep copy of o so snapshots never share memory with live records.
func (o Order) Clone() Order {
	o.AcceptedAt = cloneTime(o.AcceptedAt)
	o.ReadyAt = cloneTime(o.ReadyAt)
	o.DeliveredAt = cloneTime(o.DeliveredAt)
	if o.EntregadorID != nil {
		id := *o.EntregadorID
		o.EntregadorID = &id
	}
	if o.StoreLatitude != nil {
		v := *o.StoreLatitude
		o.StoreLatitude = &v
	}
	if o.StoreLongitude != nil {
		v := *o.StoreLongitude
		o.StoreLongitude = &v
	}
	if o.Items != nil {
		items := make([]Item, len(o.Items))
		copy(items, o.Items)
		o.Items = items
	}
	return o
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

// OrderAnnotations carries operator notes that do not touch the status.
// A nil field means “do not change” that attribute.
type OrderAnnotations struct {
	Priority      *Priority
	InternalNotes *string
}

// ChangeAnswer is the operator response to a customer change request.
type ChangeAnswer struct {
	Status   ChangeStatus
	Response string
}
