package domain

// Represents a fulfillment warehouse with a finite stock of units.
// Inventory is mutated only on working copies owned by a single
// assignment run; the seeded records themselves stay untouched.
type Warehouse struct {
	WarehouseID int
	Name        string
	Location    Coordinates
	Inventory   int
	UnitCost    float64
}
