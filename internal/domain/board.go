package domain

// Column is one of the board columns an order is shown in.
type Column string

// Board columns, left to right.
const (
	ColumnPreparation Column = "preparation"
	ColumnReady       Column = "ready"
	ColumnInRoute     Column = "in_route"
	ColumnDone        Column = "done"
)

// Columns returns the board columns in display order.
func Columns() []Column {
	return []Column{ColumnPreparation, ColumnReady, ColumnInRoute, ColumnDone}
}

// Valid checks if the Column is known
func (c Column) Valid() bool {
	switch c {
	case ColumnPreparation, ColumnReady, ColumnInRoute, ColumnDone:
		return true
	default:
		return false
	}
}

// Position is a slot on the board.
type Position struct {
	Column Column
	Index  int
}

// Move is a drag gesture from one slot to another.
type Move struct {
	OrderID string
	From    Position
	To      Position
}

// AssignResult is returned after a courier is bound to an order.
type AssignResult struct {
	OrderID   string
	CourierID int64
	Status    OrderStatus
}
