package ports

import (
	"context"

	"fulfillment-routing-service/internal/domain"
)

// Port: a boundary for retrieving Warehouse records from a data source.
type WarehouseRepository interface {
	// Retrieve all warehouses ordered by warehouse id.
	ListWarehouses(ctx context.Context) ([]*domain.Warehouse, error)
}
