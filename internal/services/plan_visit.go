package services

import (
	"context"
	"fmt"
	"ride-plan-service/internal/domain"
	"ride-plan-service/internal/platform/obs"
	"ride-plan-service/internal/ports"

	"go.uber.org/zap"
)

// PlanVisit loads a catalog snapshot, plans it for c and resolves the
// selected IDs back to full ride records.
//
// c must already be range-validated. An empty catalog yields
// domain.ErrNoRides; a catalog where nothing is eligible yields an empty plan.
func PlanVisit(
	ctx context.Context,
	c domain.Constraints,
	catalog ports.RideCatalog,
) (_ *domain.PlanDetails, err error) {
	defer obs.Time(ctx, "plan.PlanVisit")(&err)

	rides, err := catalog.LoadRides(ctx)
	if err != nil {
		return nil, fmt.Errorf("plan visit: load rides: %w", err)
	}
	if len(rides) == 0 {
		return nil, fmt.Errorf("plan visit: %w", domain.ErrNoRides)
	}

	plan := GeneratePlan(rides, c)

	byID := make(map[string]domain.Ride, len(rides))
	for _, r := range rides {
		byID[r.ID] = r
	}

	details := &domain.PlanDetails{
		Constraints:   c,
		Rides:         make([]domain.PlannedRide, 0, len(plan.SelectedRides)),
		TotalThrill:   plan.TotalThrill,
		RemainingTime: plan.RemainingTime,
	}
	for i, id := range plan.SelectedRides {
		r, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("plan visit: selected ride %q missing from catalog: %w", id, domain.ErrRideNotFound)
		}
		details.Rides = append(details.Rides, domain.PlannedRide{
			Ride:               r,
			EffectiveQueueTime: c.EffectiveQueueTime(r),
			Cost:               RideCost(r, c, i),
		})
	}

	strategy := "priority"
	if c.RidePreference.Recognized() {
		strategy = "sequential"
	}
	obs.PlansGenerated.WithLabelValues(strategy).Inc()
	obs.PlanSelectedRides.Observe(float64(len(details.Rides)))

	zap.L().Debug("plan generated",
		zap.String("req_id", obs.RequestID(ctx)),
		zap.String("strategy", strategy),
		zap.Int("catalog_size", len(rides)),
		zap.Int("selected", len(details.Rides)),
		zap.Int("total_thrill", details.TotalThrill),
		zap.Int("remaining_time", details.RemainingTime),
	)

	return details, nil
}
