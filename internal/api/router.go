package api

import (
	"net/http"

	"fulfillment-routing-service/internal/api/handlers"
	"fulfillment-routing-service/internal/ports"
	"fulfillment-routing-service/internal/services"
)

// Solver/engine defaults supplied by the composition root.
type Defaults struct {
	Assign      services.AssignConfig
	NumVehicles int
	TimeLimitS  int
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(
	warehouses ports.WarehouseRepository,
	orders ports.OrderRepository,
	solver ports.RouteSolver,
	store ports.AssignmentStore,
	decider ports.DecisionService,
	defaults Defaults,
) http.Handler {
	mux := http.NewServeMux()

	whHandler := &handlers.WarehouseHandler{Repo: warehouses}
	orderHandler := &handlers.OrderHandler{Repo: orders}
	assignHandler := &handlers.AssignmentHandler{
		Warehouses: warehouses,
		Orders:     orders,
		Store:      store,
		Defaults:   defaults.Assign,
	}
	planHandler := &handlers.PlanHandler{
		Warehouses:         warehouses,
		Orders:             orders,
		Solver:             solver,
		Defaults:           defaults.Assign,
		DefaultNumVehicles: defaults.NumVehicles,
		DefaultTimeLimitS:  defaults.TimeLimitS,
	}
	proposalHandler := &handlers.ProposalHandler{
		Warehouses: warehouses,
		Orders:     orders,
		Decider:    decider,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/warehouses", whHandler.List)
	mux.HandleFunc("/orders", orderHandler.List)
	mux.HandleFunc("/assignments", assignHandler.Assign)
	mux.HandleFunc("/plans", planHandler.Plan)
	mux.HandleFunc("/proposals", proposalHandler.Propose)

	return loggingMiddleware(mux)
}
