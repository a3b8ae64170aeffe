package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"fulfillment-routing-service/internal/api/dto"
	"fulfillment-routing-service/internal/domain"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

func toAssignmentResponses(assignments []domain.Assignment) []dto.AssignmentResponse {
	out := make([]dto.AssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		out = append(out, dto.AssignmentResponse{
			OrderID:       a.OrderID,
			WarehouseID:   a.WarehouseID,
			WarehouseName: a.WarehouseName,
			DistKm:        a.DistanceKm,
			TransportCost: a.TransportCost,
			ItemCost:      a.ItemCost,
			TotalCost:     a.TotalCost,
			Backorder:     a.Backorder,
			Qty:           a.Quantity,
			Lat:           a.Location.Lat,
			Lon:           a.Location.Lon,
		})
	}
	return out
}
