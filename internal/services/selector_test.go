package services

import (
	"ride-plan-service/internal/domain"
	"slices"
	"testing"
)

func TestGapMinutes(t *testing.T) {
	tests := map[int]int{1: 5, 29: 5, 30: 10, 180: 10}
	for total, want := range tests {
		if got := GapMinutes(total); got != want {
			t.Errorf("GapMinutes(%d) = %d, want %d", total, got, want)
		}
	}
}

func TestRideCostChargesGapAfterFirstRide(t *testing.T) {
	r := ride("A", domain.RideTypeLand, 5, 10, 7)
	c := adult(60)

	if got := RideCost(r, c, 0); got != 17 {
		t.Fatalf("first ride cost = %d, want 17", got)
	}
	if got := RideCost(r, c, 3); got != 27 {
		t.Fatalf("later ride cost = %d, want 27", got)
	}
}

func TestSelectByPriorityTieBreaksOnCatalogIndex(t *testing.T) {
	// Only one of the two equal-thrill rides fits.
	catalog := []domain.Ride{
		ride("LOW", domain.RideTypeLand, 2, 1, 0),
		ride("FIRST", domain.RideTypeLand, 7, 10, 0),
		ride("SECOND", domain.RideTypeLand, 7, 10, 0),
	}

	plan := SelectByPriority(FilterEligible(catalog, adult(29)), adult(29))

	// FIRST: 10, SECOND: 10+5 = 15 -> remaining 4, LOW: 1+5 = 6 does not fit.
	if !slices.Equal(plan.SelectedRides, []string{"FIRST", "SECOND"}) {
		t.Fatalf("selected = %v, want [FIRST SECOND]", plan.SelectedRides)
	}

	plan = SelectByPriority(FilterEligible(catalog, adult(15)), adult(15))
	if !slices.Equal(plan.SelectedRides, []string{"FIRST"}) {
		t.Fatalf("selected = %v, want [FIRST]", plan.SelectedRides)
	}
}

func TestSelectByPriorityContinuesAfterRejection(t *testing.T) {
	catalog := []domain.Ride{
		ride("SMALL", domain.RideTypeLand, 3, 5, 0),
		ride("HUGE", domain.RideTypeLand, 10, 90, 0),
		ride("MID", domain.RideTypeLand, 6, 10, 5),
	}
	c := adult(40)

	plan := SelectByPriority(FilterEligible(catalog, c), c)

	// HUGE is rejected, MID costs 15 (remaining 25), SMALL costs 5+10 (remaining 10).
	if !slices.Equal(plan.SelectedRides, []string{"MID", "SMALL"}) {
		t.Fatalf("selected = %v, want [MID SMALL]", plan.SelectedRides)
	}
	if plan.TotalThrill != 9 || plan.RemainingTime != 10 {
		t.Fatalf("plan = %+v, want thrill 9 remaining 10", plan)
	}
}

func TestSelectByPriorityStopsWhenBudgetIsSpent(t *testing.T) {
	catalog := []domain.Ride{
		ride("EXACT", domain.RideTypeLand, 9, 20, 0),
		ride("TINY", domain.RideTypeLand, 1, 1, 0),
	}
	c := adult(20)

	plan := SelectByPriority(FilterEligible(catalog, c), c)

	if !slices.Equal(plan.SelectedRides, []string{"EXACT"}) || plan.RemainingTime != 0 {
		t.Fatalf("plan = %+v, want [EXACT] with remaining 0", plan)
	}
}

func TestSelectSequentialSkipsRidesThatDoNotFit(t *testing.T) {
	ordered := []EligibleRide{
		{Index: 0, Ride: ride("L1", domain.RideTypeLand, 9, 10, 0)},
		{Index: 1, Ride: ride("L2", domain.RideTypeLand, 8, 40, 0)},
		{Index: 2, Ride: ride("L3", domain.RideTypeLand, 2, 5, 0)},
	}
	c := adult(30)
	c.RidePreference = domain.PreferenceDryOnly

	plan := SelectSequential(ordered, c)

	// L1: 10 (remaining 20), L2: 50 skipped, L3: 5+10 (remaining 5).
	if !slices.Equal(plan.SelectedRides, []string{"L1", "L3"}) {
		t.Fatalf("selected = %v, want [L1 L3]", plan.SelectedRides)
	}
	if plan.TotalThrill != 11 || plan.RemainingTime != 5 {
		t.Fatalf("plan = %+v, want thrill 11 remaining 5", plan)
	}
}

func TestSelectSequentialKeepsGivenOrder(t *testing.T) {
	ordered := []EligibleRide{
		{Index: 3, Ride: ride("LOW", domain.RideTypeLand, 1, 5, 0)},
		{Index: 0, Ride: ride("HIGH", domain.RideTypeLand, 9, 5, 0)},
	}
	c := adult(60)

	plan := SelectSequential(ordered, c)

	if !slices.Equal(plan.SelectedRides, []string{"LOW", "HIGH"}) {
		t.Fatalf("selected = %v, want [LOW HIGH]", plan.SelectedRides)
	}
}
