package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"ride-plan-service/internal/api/dto"
	"ride-plan-service/internal/domain"
	"ride-plan-service/internal/platform/validation"
	"ride-plan-service/internal/ports"
	"ride-plan-service/internal/services"
	"strings"
)

// RideHandler exposes catalog listing and administration.
type RideHandler struct {
	Store ports.RideStore
}

func (h *RideHandler) List(w http.ResponseWriter, r *http.Request) {
	rides, err := h.Store.LoadRides(r.Context())
	if err != nil {
		internalError(w, r, "list rides", err)
		return
	}

	res := make([]dto.RideResponse, 0, len(rides))
	for _, ride := range rides {
		res = append(res, dto.RideResponse{
			ID:                ride.ID,
			Name:              ride.Name,
			Thrill:            ride.Thrill,
			Duration:          ride.Duration,
			QueueTime:         ride.QueueTime,
			Fatigue:           ride.Fatigue,
			Mandatory:         ride.Mandatory,
			Restricted:        ride.Restricted,
			VIPAccess:         ride.VIPAccess,
			AffectedByWeather: ride.AffectedByWeather,
			Type:              string(ride.Type),
			MinWeight:         ride.MinWeight,
			MaxWeight:         ride.MaxWeight,
			MinAge:            ride.MinAge,
			MaxAge:            ride.MaxAge,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *RideHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req dto.AddRideRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	req.Type = strings.ToLower(strings.TrimSpace(req.Type))
	if err := validation.Struct(req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	ride := domain.NewRide(req.ID, req.Name, domain.RideType(req.Type),
		*req.Thrill, *req.Duration, *req.QueueTime, *req.Fatigue)
	ride.Mandatory = req.Mandatory
	ride.Restricted = req.Restricted
	ride.VIPAccess = req.VIPAccess
	ride.AffectedByWeather = req.AffectedByWeather
	if req.MinWeight != nil {
		ride.MinWeight = *req.MinWeight
	}
	if req.MaxWeight != nil {
		ride.MaxWeight = *req.MaxWeight
	}
	if req.MinAge != nil {
		ride.MinAge = *req.MinAge
	}
	if req.MaxAge != nil {
		ride.MaxAge = *req.MaxAge
	}

	err := services.AddRide(r.Context(), ride, h.Store)
	switch {
	case errors.Is(err, domain.ErrInvalidRide):
		writeError(w, r, http.StatusBadRequest, detail(err, domain.ErrInvalidRide))
		return
	case errors.Is(err, domain.ErrDuplicateRide):
		writeError(w, r, http.StatusConflict, fmt.Sprintf("ride %q already exists", strings.TrimSpace(req.ID)))
		return
	case err != nil:
		internalError(w, r, "add ride", err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.MessageResponse{
		Message: fmt.Sprintf("Ride '%s' added successfully!", strings.TrimSpace(req.Name)),
	})
}

// Restrict replaces the set of restricted rides.
func (h *RideHandler) Restrict(w http.ResponseWriter, r *http.Request) {
	var req dto.RestrictRidesRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	n, err := services.RestrictRides(r.Context(), req.IDs, h.Store)
	switch {
	case errors.Is(err, domain.ErrRideNotFound):
		writeError(w, r, http.StatusNotFound, "unknown ride id: "+detail(err, domain.ErrRideNotFound))
		return
	case err != nil:
		internalError(w, r, "restrict rides", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.MessageResponse{
		Message: fmt.Sprintf("%d rides restricted", n),
	})
}
