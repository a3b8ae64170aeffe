package domain

// Represents a single customer order to be sourced from a warehouse.
// Quantity is a positive unit count (defaults to 1 at the seed layer).
type Order struct {
	OrderID  int
	Location Coordinates
	Quantity int
}
