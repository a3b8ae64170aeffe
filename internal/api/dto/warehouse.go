package dto

type WarehouseResponse struct {
	WarehouseID int     `json:"warehouse_id"`
	Name        string  `json:"name"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	Inventory   int     `json:"inventory"`
	UnitCost    float64 `json:"unit_cost"`
}

type ListWarehousesResponse struct {
	Warehouses []WarehouseResponse `json:"warehouses"`
}

type OrderResponse struct {
	OrderID int     `json:"order_id"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Qty     int     `json:"qty"`
}

type ListOrdersResponse struct {
	Orders []OrderResponse `json:"orders"`
}
