package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"fulfillment-routing-service/internal/adapters/solver"
	"fulfillment-routing-service/internal/domain"
	"fulfillment-routing-service/internal/ports"
)

type stubSolver struct {
	routes [][]int
	err    error
	calls  int
}

func (s *stubSolver) Solve(ctx context.Context, matrix [][]int64, req ports.SolveRequest) ([][]int, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.routes, nil
}

func TestPlanRoutesTriangle(t *testing.T) {
	depot := domain.Coordinates{Lat: 28.61, Lon: 77.23}
	stops := []domain.Stop{
		{OrderID: 11, Location: domain.Coordinates{Lat: 28.65, Lon: 77.23}},
		{OrderID: 12, Location: domain.Coordinates{Lat: 28.61, Lon: 77.28}},
		{OrderID: 13, Location: domain.Coordinates{Lat: 28.64, Lon: 77.26}},
	}

	routes, err := PlanRoutes(context.Background(), PlanRoutesRequest{
		Depot:       depot,
		Stops:       stops,
		NumVehicles: 1,
		TimeLimit:   5 * time.Second,
	}, solver.NewGreedySolver())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(routes) != 1 {
		t.Fatalf("got %d routes, want 1", len(routes))
	}
	route := routes[0]

	if len(route.Stops) != 3 {
		t.Fatalf("route has %d stops, want 3", len(route.Stops))
	}
	seen := map[int]bool{}
	for _, s := range route.Stops {
		if seen[s.OrderID] {
			t.Errorf("order %d visited more than once", s.OrderID)
		}
		seen[s.OrderID] = true
	}
	for _, s := range stops {
		if !seen[s.OrderID] {
			t.Errorf("order %d never visited", s.OrderID)
		}
	}

	// Sanity bound: the optimized cycle is no worse than visiting the
	// stops in input order.
	matrix := BuildDistanceMatrix(depot, []domain.Coordinates{stops[0].Location, stops[1].Location, stops[2].Location})

	var inputOrderCost int64
	order := []int{0, 1, 2, 3, 0}
	for i := 1; i < len(order); i++ {
		inputOrderCost += matrix[order[i-1]][order[i]]
	}

	if route.TotalArcCost > inputOrderCost {
		t.Errorf("route cost %d exceeds input-order cost %d", route.TotalArcCost, inputOrderCost)
	}
	if route.TotalArcCost <= 0 {
		t.Errorf("route cost = %d, want positive", route.TotalArcCost)
	}
}

func TestPlanRoutesMapsIndicesToOrders(t *testing.T) {
	depot := domain.Coordinates{Lat: 0, Lon: 0}
	stops := []domain.Stop{
		{OrderID: 101, Location: domain.Coordinates{Lat: 1, Lon: 0}},
		{OrderID: 102, Location: domain.Coordinates{Lat: 2, Lon: 0}},
	}

	stub := &stubSolver{routes: [][]int{{0, 2, 1, 0}}}
	routes, err := PlanRoutes(context.Background(), PlanRoutesRequest{
		Depot:       depot,
		Stops:       stops,
		NumVehicles: 1,
		TimeLimit:   time.Second,
	}, stub)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := routes[0].Stops
	if got[0].OrderID != 102 || got[1].OrderID != 101 {
		t.Errorf("stop order = [%d, %d], want [102, 101]", got[0].OrderID, got[1].OrderID)
	}
}

func TestPlanRoutesSurfacesNoSolution(t *testing.T) {
	stub := &stubSolver{err: ports.ErrNoSolution}
	_, err := PlanRoutes(context.Background(), PlanRoutesRequest{
		Depot:       domain.Coordinates{Lat: 0, Lon: 0},
		Stops:       []domain.Stop{{OrderID: 1, Location: domain.Coordinates{Lat: 1, Lon: 1}}},
		NumVehicles: 1,
		TimeLimit:   time.Second,
	}, stub)
	if !errors.Is(err, ports.ErrNoSolution) {
		t.Fatalf("err = %v, want ErrNoSolution", err)
	}
}

func TestPlanRoutesRejectsMalformedSolverOutput(t *testing.T) {
	stub := &stubSolver{routes: [][]int{{1, 0}}}
	_, err := PlanRoutes(context.Background(), PlanRoutesRequest{
		Depot:       domain.Coordinates{Lat: 0, Lon: 0},
		Stops:       []domain.Stop{{OrderID: 1, Location: domain.Coordinates{Lat: 1, Lon: 1}}},
		NumVehicles: 1,
		TimeLimit:   time.Second,
	}, stub)
	if err == nil {
		t.Fatal("expected error for route not anchored at the depot")
	}
}

func TestPlanRoutesValidatesInput(t *testing.T) {
	stub := &stubSolver{routes: [][]int{{0, 0}}}

	_, err := PlanRoutes(context.Background(), PlanRoutesRequest{
		Depot:       domain.Coordinates{Lat: 200, Lon: 0},
		NumVehicles: 1,
	}, stub)
	if err == nil {
		t.Fatal("expected error for malformed depot")
	}

	_, err = PlanRoutes(context.Background(), PlanRoutesRequest{
		Depot:       domain.Coordinates{Lat: 0, Lon: 0},
		NumVehicles: 0,
	}, stub)
	if err == nil {
		t.Fatal("expected error for zero vehicles")
	}
	if stub.calls != 0 {
		t.Errorf("solver invoked %d times on invalid input, want 0", stub.calls)
	}
}
