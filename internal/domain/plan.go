package domain

// Represents the output of one planning run.
// SelectedRides holds ride IDs in the order they were accepted.
// RemainingTime is never negative.
type Plan struct {
	SelectedRides []string
	TotalThrill   int
	RemainingTime int
}

// A selected ride resolved back to its catalog record.
type PlannedRide struct {
	Ride               Ride
	EffectiveQueueTime int
	// Minutes charged against the budget, including the gap before this ride.
	Cost int
}

// Represents a plan together with the full ride records and the inputs
// that produced it, ready for presentation.
type PlanDetails struct {
	Constraints   Constraints
	Rides         []PlannedRide
	TotalThrill   int
	RemainingTime int
}
