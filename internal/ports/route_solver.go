package ports

import (
	"context"
	"errors"
	"time"
)

// ErrNoSolution is returned when the solver exhausts its time budget without
// finding a feasible set of routes. Callers must surface it as a distinct
// condition, never as an empty route.
var ErrNoSolution = errors.New("route solver: no feasible solution")

// Solver parameters for one optimization request.
type SolveRequest struct {
	NumVehicles int
	DepotIndex  int
	TimeLimit   time.Duration
}

// Contract for an external capacitated vehicle routing solver.
//
// Input is a square integer distance matrix (arc costs). Output is one
// node-index sequence per vehicle, each starting and ending at the depot
// index. The solver knows nothing about domain identifiers; index i > 0
// corresponds positionally to the caller's stop list.
type RouteSolver interface {
	Solve(ctx context.Context, matrix [][]int64, req SolveRequest) ([][]int, error)
}
