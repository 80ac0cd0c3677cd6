package services

import "ride-plan-service/internal/domain"

// GeneratePlan picks and orders rides from catalog for one visitor.
//
// The selection is greedy: with no recognized preference rides are taken by
// thrill, otherwise in the order produced by OrderByPreference. It does not
// search for the thrill-maximizing subset (no knapsack solving). The result
// depends only on its inputs, and catalog is never modified.
func GeneratePlan(catalog []domain.Ride, c domain.Constraints) domain.Plan {
	eligible := FilterEligible(catalog, c)

	if !c.RidePreference.Recognized() {
		return SelectByPriority(eligible, c)
	}

	ordered := OrderByPreference(eligible, c.RidePreference)
	return SelectSequential(ordered, c)
}
