package domain

import "time"

// Order status constants.
const (
	OrderStatusPending        = "pending"
	OrderStatusAccepted       = "accepted"
	OrderStatusPreparing      = "preparing"
	OrderStatusOutForDelivery = "out_for_delivery"
	OrderStatusDelivered      = "delivered"
	OrderStatusCompleted      = "completed"
	OrderStatusCancelled      = "cancelled"
	OrderStatusRejected       = "rejected"
)

// Order is one synthesized customer order, flattened to the fields the
// bulk importer expects. Created in memory during one generation run and
// never mutated after creation.
type Order struct {
	Number        string
	PlacedAt      time.Time
	CustomerEmail string // empty for guest orders
	CustomerName  string
	Phone         string
	Address       string
	Barangay      string
	Landmarks     string
	Status        string
	TotalAmount   int64 // centavos
	Notes         string
	Lines         []OrderLine
}

// OrderLine is one line item belonging to an order. It never exists
// independently of its parent order.
type OrderLine struct {
	ProductName string
	VariantName string
	Quantity    int
	UnitPrice   int64 // centavos
}

// Subtotal returns the total price for this line item.
func (l OrderLine) Subtotal() int64 {
	return l.UnitPrice * int64(l.Quantity)
}

// ValidStatuses returns all valid order statuses.
func ValidStatuses() []string {
	return []string{
		OrderStatusPending,
		OrderStatusAccepted,
		OrderStatusPreparing,
		OrderStatusOutForDelivery,
		OrderStatusDelivered,
		OrderStatusCompleted,
		OrderStatusCancelled,
		OrderStatusRejected,
	}
}

// IsValidStatus checks if a status string is valid.
func IsValidStatus(status string) bool {
	for _, s := range ValidStatuses() {
		if s == status {
			return true
		}
	}
	return false
}
