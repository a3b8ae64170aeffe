package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fulfillment-routing-service/internal/domain"
	"fulfillment-routing-service/internal/ports"
)

type PlanRoutesRequest struct {
	Depot       domain.Coordinates
	Stops       []domain.Stop
	NumVehicles int
	TimeLimit   time.Duration
}

// PlanRoutes sequences the given stops into per-vehicle routes out of the
// depot.
//
// It builds the integer distance matrix, hands it to the routing solver with
// depot index 0, and translates the returned node indices back into the
// domain stops the solver knows nothing about. A solver failure to find any
// feasible route surfaces as ports.ErrNoSolution, never as an empty result.
func PlanRoutes(
	ctx context.Context,
	req PlanRoutesRequest,
	solver ports.RouteSolver,
) ([]domain.VehicleRoute, error) {
	if solver == nil {
		return nil, errors.New("plan routes: solver must be non-nil")
	}
	if req.NumVehicles < 1 {
		return nil, fmt.Errorf("plan routes: num vehicles must be positive, got %d", req.NumVehicles)
	}
	if err := req.Depot.Validate(); err != nil {
		return nil, fmt.Errorf("plan routes: depot: %w", err)
	}
	for _, s := range req.Stops {
		if err := s.Location.Validate(); err != nil {
			return nil, fmt.Errorf("plan routes: stop for order %d: %w", s.OrderID, err)
		}
	}

	coords := make([]domain.Coordinates, 0, len(req.Stops))
	for _, s := range req.Stops {
		coords = append(coords, s.Location)
	}
	matrix := BuildDistanceMatrix(req.Depot, coords)

	nodeRoutes, err := solver.Solve(ctx, matrix, ports.SolveRequest{
		NumVehicles: req.NumVehicles,
		DepotIndex:  0,
		TimeLimit:   req.TimeLimit,
	})
	if err != nil {
		if errors.Is(err, ports.ErrNoSolution) {
			return nil, fmt.Errorf("plan routes: %w", err)
		}
		return nil, fmt.Errorf("plan routes: solve: %w", err)
	}

	routes := make([]domain.VehicleRoute, 0, len(nodeRoutes))
	for v, nodes := range nodeRoutes {
		if len(nodes) < 2 || nodes[0] != 0 || nodes[len(nodes)-1] != 0 {
			return nil, fmt.Errorf("plan routes: vehicle %d: route must start and end at the depot", v)
		}

		stops := make([]domain.Stop, 0, len(nodes)-2)
		var cost int64
		for i := 1; i < len(nodes); i++ {
			from, to := nodes[i-1], nodes[i]
			if from < 0 || from >= len(matrix) || to < 0 || to >= len(matrix) {
				return nil, fmt.Errorf("plan routes: vehicle %d: node index %d out of range", v, to)
			}
			cost += matrix[from][to]
			if to != 0 {
				stops = append(stops, req.Stops[to-1])
			}
		}

		routes = append(routes, domain.VehicleRoute{
			Vehicle:      v,
			Stops:        stops,
			TotalArcCost: cost,
		})
	}

	return routes, nil
}
