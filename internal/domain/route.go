package domain

// A routable delivery stop: one assigned order at a known location.
type Stop struct {
	OrderID  int
	Location Coordinates
}

// Represents the planned visiting sequence for a single vehicle.
// Stops are ordered; the route implicitly starts and ends at the depot.
// TotalArcCost is the sum of integer arc costs (meters) along the full
// depot -> stops -> depot cycle. Immutable planning data, no side effects.
type VehicleRoute struct {
	Vehicle      int
	Stops        []Stop
	TotalArcCost int64
}
