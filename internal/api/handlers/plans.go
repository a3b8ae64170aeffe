package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"fulfillment-routing-service/internal/api/dto"
	"fulfillment-routing-service/internal/domain"
	"fulfillment-routing-service/internal/ports"
	"fulfillment-routing-service/internal/services"
)

type PlanHandler struct {
	Warehouses ports.WarehouseRepository
	Orders     ports.OrderRepository
	Solver     ports.RouteSolver
	Defaults   services.AssignConfig

	DefaultNumVehicles int
	DefaultTimeLimitS  int
}

// Plan orchestrates assignment and routing for one depot warehouse.
// It runs the assignment engine, keeps the orders attributed to the chosen
// warehouse, and sequences them into per-vehicle routes via the solver.
func (h *PlanHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.PlanRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if req.WarehouseID <= 0 {
		writeError(w, r, http.StatusBadRequest, "warehouse_id is required")
		return
	}

	numVehicles := req.NumVehicles
	if numVehicles == 0 {
		numVehicles = h.DefaultNumVehicles
	}
	if numVehicles < 1 || numVehicles > 10 {
		writeError(w, r, http.StatusBadRequest, "num_vehicles must be between 1 and 10")
		return
	}

	timeLimitS := req.TimeLimitS
	if timeLimitS == 0 {
		timeLimitS = h.DefaultTimeLimitS
	}
	if timeLimitS < 1 || timeLimitS > 60 {
		writeError(w, r, http.StatusBadRequest, "time_limit_s must be between 1 and 60")
		return
	}

	cfg := h.Defaults
	if req.TransportCostPerKm != nil {
		cfg.TransportCostPerKm = *req.TransportCostPerKm
	}
	if req.BackorderPenalty != nil {
		cfg.BackorderPenalty = *req.BackorderPenalty
	}

	warehouses, err := h.Warehouses.ListWarehouses(r.Context())
	if err != nil {
		log.Printf("list warehouses failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	var depot *domain.Warehouse
	for _, wh := range warehouses {
		if wh.WarehouseID == req.WarehouseID {
			depot = wh
			break
		}
	}
	if depot == nil {
		writeError(w, r, http.StatusNotFound, "warehouse not found")
		return
	}

	orders, err := h.Orders.ListOrders(r.Context())
	if err != nil {
		log.Printf("list orders failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	assignments, err := services.AssignOrders(warehouses, orders, cfg)
	if err != nil {
		log.Printf("assign orders failed: %v", err)
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	stops := make([]domain.Stop, 0, len(assignments))
	kept := make([]domain.Assignment, 0, len(assignments))
	for _, a := range assignments {
		if a.WarehouseID != depot.WarehouseID {
			continue
		}
		kept = append(kept, a)
		stops = append(stops, domain.Stop{OrderID: a.OrderID, Location: a.Location})
	}

	routes, err := services.PlanRoutes(r.Context(), services.PlanRoutesRequest{
		Depot:       depot.Location,
		Stops:       stops,
		NumVehicles: numVehicles,
		TimeLimit:   time.Duration(timeLimitS) * time.Second,
	}, h.Solver)
	if err != nil {
		if errors.Is(err, ports.ErrNoSolution) {
			writeError(w, r, http.StatusUnprocessableEntity, "no feasible route found within the time limit")
			return
		}
		log.Printf("plan routes failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.PlanResponse{
		PlanID:      uuid.NewString(),
		WarehouseID: depot.WarehouseID,
		Routes:      make([]dto.RouteResponse, 0, len(routes)),
		Assignments: toAssignmentResponses(kept),
	}
	for _, route := range routes {
		stops := make([]dto.RouteStopResponse, 0, len(route.Stops))
		for _, s := range route.Stops {
			stops = append(stops, dto.RouteStopResponse{
				OrderID: s.OrderID,
				Lat:     s.Location.Lat,
				Lon:     s.Location.Lon,
			})
		}
		res.Routes = append(res.Routes, dto.RouteResponse{
			Vehicle:      route.Vehicle,
			TotalArcCost: route.TotalArcCost,
			Stops:        stops,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
