package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"

	"fulfillment-routing-service/internal/api/dto"
	"fulfillment-routing-service/internal/ports"
	"fulfillment-routing-service/internal/services"
)

type AssignmentHandler struct {
	Warehouses ports.WarehouseRepository
	Orders     ports.OrderRepository
	Store      ports.AssignmentStore
	Defaults   services.AssignConfig
}

// Assign runs the capacitated assignment engine over all seeded warehouses
// and orders. Each invocation works on a fresh warehouse copy, so repeated
// runs never see depleted inventory from earlier requests.
func (h *AssignmentHandler) Assign(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	cfg := h.Defaults

	// Empty body keeps the configured defaults.
	var req dto.AssignRequest
	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil && err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if req.TransportCostPerKm != nil {
		if *req.TransportCostPerKm < 0 {
			writeError(w, r, http.StatusBadRequest, "transport_cost_per_km must be non-negative")
			return
		}
		cfg.TransportCostPerKm = *req.TransportCostPerKm
	}
	if req.BackorderPenalty != nil {
		if *req.BackorderPenalty < 0 {
			writeError(w, r, http.StatusBadRequest, "backorder_penalty must be non-negative")
			return
		}
		cfg.BackorderPenalty = *req.BackorderPenalty
	}

	warehouses, err := h.Warehouses.ListWarehouses(r.Context())
	if err != nil {
		log.Printf("list warehouses failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
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

	runID := uuid.NewString()

	// Run persistence is best-effort: export history must not block the
	// response.
	if h.Store != nil {
		if err := h.Store.SaveRun(r.Context(), runID, assignments); err != nil {
			log.Printf("save assignment run failed: run_id=%s err=%v", runID, err)
		}
	}

	writeJSON(w, r, http.StatusOK, dto.ListAssignmentsResponse{
		RunID:       runID,
		Assignments: toAssignmentResponses(assignments),
	})
}
