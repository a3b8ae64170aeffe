package handlers

import (
	"log"
	"net/http"

	"fulfillment-routing-service/internal/api/dto"
	"fulfillment-routing-service/internal/ports"
)

// WarehouseHandler exposes read-only warehouse retrieval endpoints.
type WarehouseHandler struct {
	Repo ports.WarehouseRepository
}

func (h *WarehouseHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	warehouses, err := h.Repo.ListWarehouses(r.Context())
	if err != nil {
		log.Printf("list warehouses failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListWarehousesResponse{
		Warehouses: make([]dto.WarehouseResponse, 0, len(warehouses)),
	}
	for _, wh := range warehouses {
		res.Warehouses = append(res.Warehouses, dto.WarehouseResponse{
			WarehouseID: wh.WarehouseID,
			Name:        wh.Name,
			Lat:         wh.Location.Lat,
			Lon:         wh.Location.Lon,
			Inventory:   wh.Inventory,
			UnitCost:    wh.UnitCost,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
