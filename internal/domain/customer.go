package domain

// Customer is a static reference record used when stamping orders.
// Used by reference, never mutated.
type Customer struct {
	Email string
	Name  string
	Phone string
}

// Address is a static delivery-address reference record.
type Address struct {
	Address   string
	Barangay  string
	Landmarks string
}
