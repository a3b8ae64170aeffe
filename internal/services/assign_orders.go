package services

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"fulfillment-routing-service/internal/domain"
)

// Cost parameters for one assignment run.
type AssignConfig struct {
	TransportCostPerKm float64
	BackorderPenalty   float64
}

func DefaultAssignConfig() AssignConfig {
	return AssignConfig{
		TransportCostPerKm: 0.5,
		BackorderPenalty:   50.0,
	}
}

// AssignOrders matches every order to a warehouse under inventory constraints.
//
// Orders are processed in input order: earlier orders have first claim on
// scarce inventory at the nearest warehouse (first-come-first-served). That
// ordering dependence is a designed property and must not be "fixed" into a
// fairness-optimal allocation.
//
// Per order, candidate warehouses are sorted by ascending distance (stable,
// ties broken by input order) and the first with sufficient inventory wins
// and is decremented. When none has enough stock the nearest warehouse is
// charged with backorder=true and no decrement.
//
// Inventory is mutated on a working copy only; callers never observe
// mutation of the records they passed in. The engine provides no locking:
// each run owns its copy exclusively.
func AssignOrders(
	warehouses []*domain.Warehouse,
	orders []*domain.Order,
	cfg AssignConfig,
) ([]domain.Assignment, error) {
	if len(warehouses) == 0 {
		return nil, errors.New("assign orders: warehouse list must not be empty")
	}

	// Value-copy the warehouses once so inventory decrements stay private
	// to this run.
	working := make([]domain.Warehouse, 0, len(warehouses))
	for i, w := range warehouses {
		if w == nil {
			return nil, fmt.Errorf("assign orders: warehouse at index %d is nil", i)
		}
		if err := w.Location.Validate(); err != nil {
			return nil, fmt.Errorf("assign orders: warehouse %d: %w", w.WarehouseID, err)
		}
		working = append(working, *w)
	}

	assignments := make([]domain.Assignment, 0, len(orders))

	type candidate struct {
		distKm float64
		wh     *domain.Warehouse
	}

	for _, o := range orders {
		if o == nil {
			return nil, errors.New("assign orders: order must be non-nil")
		}
		if o.Quantity <= 0 {
			return nil, fmt.Errorf("assign orders: order %d: quantity must be positive, got %d", o.OrderID, o.Quantity)
		}
		if err := o.Location.Validate(); err != nil {
			return nil, fmt.Errorf("assign orders: order %d: %w", o.OrderID, err)
		}

		candidates := make([]candidate, 0, len(working))
		for i := range working {
			candidates = append(candidates, candidate{
				distKm: domain.HaversineKm(o.Location, working[i].Location),
				wh:     &working[i],
			})
		}

		// Stable sort keeps input order on distance ties.
		slices.SortStableFunc(candidates, func(a, b candidate) int {
			if a.distKm < b.distKm {
				return -1
			}
			if a.distKm > b.distKm {
				return 1
			}
			return 0
		})

		var (
			assigned  *domain.Warehouse
			distKm    float64
			backorder bool
		)

		for _, c := range candidates {
			if c.wh.Inventory >= o.Quantity {
				assigned = c.wh
				distKm = c.distKm
				c.wh.Inventory -= o.Quantity
				break
			}
		}

		// Nearest but out of stock: attribute the order anyway, keep
		// inventory untouched, record the shortfall per order.
		if assigned == nil {
			assigned = candidates[0].wh
			distKm = candidates[0].distKm
			backorder = true
		}

		transportCost := distKm * cfg.TransportCostPerKm
		itemCost := assigned.UnitCost * float64(o.Quantity)
		totalCost := transportCost + itemCost
		if backorder {
			totalCost += cfg.BackorderPenalty
		}

		assignments = append(assignments, domain.Assignment{
			OrderID:       o.OrderID,
			WarehouseID:   assigned.WarehouseID,
			WarehouseName: assigned.Name,
			DistanceKm:    round2(distKm),
			TransportCost: round2(transportCost),
			ItemCost:      round2(itemCost),
			TotalCost:     round2(totalCost),
			Backorder:     backorder,
			Quantity:      o.Quantity,
			Location:      o.Location,
		})
	}

	return assignments, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
