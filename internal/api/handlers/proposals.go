package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"fulfillment-routing-service/internal/api/dto"
	"fulfillment-routing-service/internal/ports"
)

type ProposalHandler struct {
	Warehouses ports.WarehouseRepository
	Orders     ports.OrderRepository
	Decider    ports.DecisionService
}

// Propose forwards warehouse/order data to the natural-language decision
// service. The reply is advisory only; nothing here feeds the deterministic
// assignment or routing path.
func (h *ProposalHandler) Propose(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.ProposalRequest
	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil && err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
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

	proposal, err := h.Decider.Propose(r.Context(), ports.ProposalRequest{
		Warehouses: warehouses,
		Orders:     orders,
		Goal:       req.Goal,
	})
	if err != nil {
		// Covers transport failures and unparseable model replies alike;
		// the raw reply stays in the server log only.
		log.Printf("propose failed: %v", err)
		writeError(w, r, http.StatusBadGateway, "decision service unavailable")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ProposalResponse{
		SelectedWarehouses: proposal.SelectedWarehouses,
		Reasoning:          proposal.Reasoning,
	})
}
