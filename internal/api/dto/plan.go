package dto

type PlanRequest struct {
	WarehouseID        int      `json:"warehouse_id"`
	NumVehicles        int      `json:"num_vehicles"`
	TimeLimitS         int      `json:"time_limit_s"`
	TransportCostPerKm *float64 `json:"transport_cost_per_km"`
	BackorderPenalty   *float64 `json:"backorder_penalty"`
}

type RouteStopResponse struct {
	OrderID int     `json:"order_id"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

type RouteResponse struct {
	Vehicle      int                 `json:"vehicle"`
	TotalArcCost int64               `json:"total_arc_cost"`
	Stops        []RouteStopResponse `json:"stops"`
}

type PlanResponse struct {
	PlanID      string               `json:"plan_id"`
	WarehouseID int                  `json:"warehouse_id"`
	Routes      []RouteResponse      `json:"routes"`
	Assignments []AssignmentResponse `json:"assignments"`
}
