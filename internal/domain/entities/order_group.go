package entities

// UnknownOrderID is the sentinel shared by every row without a usable order number.
const UnknownOrderID = "UNKNOWN_ORDER"

// OrderGroup is the set of upload rows sharing one normalized order number.
//
// Position is the 0-based index of the group in first-seen order.
type OrderGroup struct {
	OrderID  string
	Position int
	Rows     []UploadRow
}

// IsSentinel reports whether the group collects rows without an order number.
func (g OrderGroup) IsSentinel() bool {
	return g.OrderID == UnknownOrderID
}
