package ports

import (
	"context"

	"fulfillment-routing-service/internal/domain"
)

// Port: a boundary for retrieving Order records from a data source.
// The returned slice order is the processing order of the assignment
// engine, so implementations must be deterministic.
type OrderRepository interface {
	// Retrieve all orders ordered by order id.
	ListOrders(ctx context.Context) ([]*domain.Order, error)
}
