package handlers

import (
	"errors"
	"net/http"
	"ride-plan-service/internal/api/dto"
	"ride-plan-service/internal/domain"
	"ride-plan-service/internal/platform/validation"
	"ride-plan-service/internal/ports"
	"ride-plan-service/internal/services"
)

type PlanHandler struct {
	Catalog ports.RideCatalog
}

// Generate validates the visitor profile and plans against a fresh catalog snapshot.
func (h *PlanHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req dto.GeneratePlanRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := validation.Struct(req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	c := domain.Constraints{
		TotalTime:      *req.TotalTime,
		IsVIP:          req.IsVIP,
		BadWeather:     req.BadWeather,
		UserAge:        *req.UserAge,
		UserWeight:     *req.UserWeight,
		RidePreference: domain.ParseRidePreference(req.RidePreference),
	}

	details, err := services.PlanVisit(r.Context(), c, h.Catalog)
	if errors.Is(err, domain.ErrNoRides) {
		writeError(w, r, http.StatusBadRequest, "No rides available. Please add some rides first.")
		return
	}
	if err != nil {
		internalError(w, r, "generate plan", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewGeneratePlanResponse(details, req.RidePreference))
}
