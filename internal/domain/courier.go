package domain

import "regexp"

type (
	// CourierStatus represents the status of a courier.
	CourierStatus string
	// CourierTransportType represents the transport type of a courier.
	CourierTransportType string
)

// List of possible courier statuses
const (
	CourierAvailable CourierStatus = "available"
	CourierBusy      CourierStatus = "busy"
)

// List of possible courier transport types
const (
	TransportTypeBike       CourierTransportType = "bike"
	TransportTypeMotorcycle CourierTransportType = "motorcycle"
	TransportTypeCar        CourierTransportType = "car"
)

var allowedCourierStatuses = [...]CourierStatus{CourierAvailable, CourierBusy}

var allowedTransportTypes = [...]CourierTransportType{
	TransportTypeBike, TransportTypeMotorcycle, TransportTypeCar,
}

// Valid checks if the CourierStatus is valid
func (s CourierStatus) Valid() bool {
	for _, v := range allowedCourierStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Valid checks if the CourierTransportType is valid
func (t CourierTransportType) Valid() bool {
	for _, v := range allowedTransportTypes {
		if t == v {
			return true
		}
	}
	return false
}

// Courier is an entregador. CurrentOrderID is set exactly while Status is busy.
type Courier struct {
	ID              int64
	Name            string
	Phone           string
	Status          CourierStatus
	TransportType   CourierTransportType
	CurrentOrderID  *string
	TotalDeliveries int
}

// Clone returns a deep copy of c.
func (c Courier) Clone() Courier {
	if c.CurrentOrderID != nil {
		id := *c.CurrentOrderID
		c.CurrentOrderID = &id
	}
	return c
}

// PartialCourierUpdate carries optional fields to update a courier.
// A nil field means “do not change” that attribute.
type PartialCourierUpdate struct {
	ID            int64
	Name          *string
	Phone         *string
	TransportType *CourierTransportType
}

// rePhone is a regex to validate phone numbers
var rePhone = regexp.MustCompile(`^\+[0-9]{11,13}$`)

// ValidatePhone validates the phone number format
func ValidatePhone(s string) bool {
	return rePhone.MatchString(s)
}

// AssignTo returns c busy with orderID.
func (c Courier) AssignTo(orderID string) Courier {
	next := c.Clone()
	next.Status = CourierBusy
	next.CurrentOrderID = &orderID
	return next
}

// Release returns c available again. A delivered order counts towards TotalDeliveries.
func (c Courier) Release(delivered bool) Courier {
	next := c.Clone()
	next.Status = CourierAvailable
	next.CurrentOrderID = nil
	if delivered {
		next.TotalDeliveries++
	}
	return next
}

// Carries reports whether c is currently assigned to orderID.
func (c Courier) Carries(orderID string) bool {
	return c.CurrentOrderID != nil && *c.CurrentOrderID == orderID
}
