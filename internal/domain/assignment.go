package domain

// Result of matching one order to one warehouse.
//
// Exactly one Assignment exists per input order. Backorder is true iff no
// warehouse had sufficient inventory at matching time; the order is still
// attributed to the nearest warehouse, whose inventory is not decremented.
// The order location is carried through for downstream routing and for the
// renderer/export surface; the record itself has no behavior.
type Assignment struct {
	OrderID       int
	WarehouseID   int
	WarehouseName string
	DistanceKm    float64
	TransportCost float64
	ItemCost      float64
	TotalCost     float64
	Backorder     bool
	Quantity      int
	Location      Coordinates
}
