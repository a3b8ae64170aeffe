// Package solver provides the default in-process implementation of the
// routing solver port: a deterministic cheapest-insertion construction
// followed by 2-opt local search bounded by the request time limit.
package solver

import (
	"context"
	"fmt"
	"time"

	"fulfillment-routing-service/internal/ports"
)

const defaultTimeLimit = 5 * time.Second

type GreedySolver struct{}

func NewGreedySolver() *GreedySolver {
	return &GreedySolver{}
}

// Solve sequences all stop nodes into per-vehicle depot round trips.
//
// Stops are split across vehicles in contiguous index bands, then each band
// is ordered by cheapest insertion and improved with 2-opt until the time
// budget runs out. The construction is fully deterministic, so identical
// inputs always yield identical routes; the time limit only bounds how much
// local-search improvement is applied on top.
func (g *GreedySolver) Solve(
	ctx context.Context,
	matrix [][]int64,
	req ports.SolveRequest,
) ([][]int, error) {
	n := len(matrix)
	for i, row := range matrix {
		if len(row) != n {
			return nil, fmt.Errorf("greedy solver: matrix row %d has %d entries, want %d", i, len(row), n)
		}
	}
	if req.NumVehicles < 1 {
		return nil, fmt.Errorf("greedy solver: num vehicles must be positive, got %d", req.NumVehicles)
	}
	if req.DepotIndex != 0 {
		return nil, fmt.Errorf("greedy solver: depot index must be 0, got %d", req.DepotIndex)
	}
	if n == 0 {
		return nil, fmt.Errorf("greedy solver: matrix must contain at least the depot")
	}

	limit := req.TimeLimit
	if limit <= 0 {
		limit = defaultTimeLimit
	}
	deadline := time.Now().Add(limit)

	stops := make([]int, 0, n-1)
	for i := 1; i < n; i++ {
		stops = append(stops, i)
	}

	// Ceiling division: contiguous bands, as evenly sized as possible.
	bandSize := 0
	if len(stops) > 0 {
		bandSize = (len(stops) + req.NumVehicles - 1) / req.NumVehicles
	}

	routes := make([][]int, 0, req.NumVehicles)
	for v := 0; v < req.NumVehicles; v++ {
		var band []int
		if bandSize > 0 {
			start := v * bandSize
			if start < len(stops) {
				end := start + bandSize
				if end > len(stops) {
					end = len(stops)
				}
				band = stops[start:end]
			}
		}

		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("greedy solver: %w", err)
		}
		if time.Now().After(deadline) {
			return nil, ports.ErrNoSolution
		}

		tour := cheapestInsertion(matrix, band)
		twoOpt(matrix, tour, deadline)
		routes = append(routes, tour)
	}

	return routes, nil
}

// cheapestInsertion builds a depot round trip over the given nodes by
// repeatedly inserting the unrouted node at the position that increases the
// tour cost the least. Ties resolve to the lowest node index and earliest
// position, keeping the seed deterministic.
func cheapestInsertion(matrix [][]int64, nodes []int) []int {
	tour := []int{0, 0}

	remaining := make([]int, len(nodes))
	copy(remaining, nodes)

	for len(remaining) > 0 {
		bestNode := -1
		bestPos := -1
		bestDelta := int64(0)

		for ni, node := range remaining {
			for pos := 1; pos < len(tour); pos++ {
				a, b := tour[pos-1], tour[pos]
				delta := matrix[a][node] + matrix[node][b] - matrix[a][b]
				if bestNode == -1 || delta < bestDelta {
					bestNode = ni
					bestPos = pos
					bestDelta = delta
				}
			}
		}

		node := remaining[bestNode]
		tour = append(tour, 0)
		copy(tour[bestPos+1:], tour[bestPos:])
		tour[bestPos] = node
		remaining = append(remaining[:bestNode], remaining[bestNode+1:]...)
	}

	return tour
}

// twoOpt improves a depot round trip in place by reversing segments whenever
// that lowers the tour cost, sweeping until no improvement is found or the
// deadline passes. The endpoints (depot) are never moved.
func twoOpt(matrix [][]int64, tour []int, deadline time.Time) {
	if len(tour) < 5 {
		return
	}

	improved := true
	for improved {
		improved = false
		for i := 1; i < len(tour)-2; i++ {
			if time.Now().After(deadline) {
				return
			}
			for j := i + 1; j < len(tour)-1; j++ {
				a, b := tour[i-1], tour[i]
				c, d := tour[j], tour[j+1]
				delta := matrix[a][c] + matrix[b][d] - matrix[a][b] - matrix[c][d]
				if delta < 0 {
					reverse(tour, i, j)
					improved = true
				}
			}
		}
	}
}

func reverse(tour []int, i, j int) {
	for i < j {
		tour[i], tour[j] = tour[j], tour[i]
		i++
		j--
	}
}
