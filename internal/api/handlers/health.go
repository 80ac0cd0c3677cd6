package handlers

import (
	"context"
	"net/http"
	"ride-plan-service/internal/ports"
	"time"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthResponse struct {
	Status      string `json:"status"`
	Message     string `json:"message"`
	RidesCount  int    `json:"rides_count"`
	DBConnected bool   `json:"db_connected"`
}

// HealthHandler reports liveness plus catalog and database state.
// A failing catalog or database does not fail the check itself.
type HealthHandler struct {
	Catalog ports.RideCatalog
	DB      Pinger
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	res := HealthResponse{Status: "healthy", Message: "Ride plan API is running"}

	if h.Catalog != nil {
		if rides, err := h.Catalog.LoadRides(ctx); err == nil {
			res.RidesCount = len(rides)
		}
	}
	if h.DB != nil {
		res.DBConnected = h.DB.Ping(ctx) == nil
	}

	writeJSON(w, r, http.StatusOK, res)
}
