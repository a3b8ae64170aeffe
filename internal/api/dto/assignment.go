package dto

type AssignRequest struct {
	TransportCostPerKm *float64 `json:"transport_cost_per_km"`
	BackorderPenalty   *float64 `json:"backorder_penalty"`
}

// Flat assignment record consumed by the renderer/export surface.
type AssignmentResponse struct {
	OrderID       int     `json:"order_id"`
	WarehouseID   int     `json:"warehouse_id"`
	WarehouseName string  `json:"warehouse_name"`
	DistKm        float64 `json:"dist_km"`
	TransportCost float64 `json:"transport_cost"`
	ItemCost      float64 `json:"item_cost"`
	TotalCost     float64 `json:"total_cost"`
	Backorder     bool    `json:"backorder"`
	Qty           int     `json:"qty"`
	Lat           float64 `json:"lat"`
	Lon           float64 `json:"lon"`
}

type ListAssignmentsResponse struct {
	RunID       string               `json:"run_id"`
	Assignments []AssignmentResponse `json:"assignments"`
}
