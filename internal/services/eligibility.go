package services

import "ride-plan-service/internal/domain"

// Visitors older than this are kept off rides above maxThrillOverAgeLimit.
const (
	intensityAgeLimit     = 40
	maxThrillOverAgeLimit = 6
)

// EligibleRide is a ride that passed filtering, tagged with its position in
// the original catalog. The index breaks thrill ties during selection.
type EligibleRide struct {
	Index int
	Ride  domain.Ride
}

// FilterEligible returns the rides one visitor may ride under current
// conditions, in catalog order.
func FilterEligible(catalog []domain.Ride, c domain.Constraints) []EligibleRide {
	eligible := make([]EligibleRide, 0, len(catalog))
	for i, r := range catalog {
		if isEligible(r, c) {
			eligible = append(eligible, EligibleRide{Index: i, Ride: r})
		}
	}
	return eligible
}

func isEligible(r domain.Ride, c domain.Constraints) bool {
	if r.Restricted {
		return false
	}
	if c.BadWeather && r.AffectedByWeather {
		return false
	}
	if c.UserAge < r.MinAge || c.UserAge > r.MaxAge {
		return false
	}
	if c.UserWeight < r.MinWeight || c.UserWeight > r.MaxWeight {
		return false
	}
	if c.UserAge > intensityAgeLimit && r.Thrill > maxThrillOverAgeLimit {
		return false
	}
	return true
}
