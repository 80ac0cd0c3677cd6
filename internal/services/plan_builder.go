package services

import "ride-plan-service/internal/domain"

// Gap minutes charged between consecutive rides, by total budget.
const (
	shortVisitGap       = 5
	longVisitGap        = 10
	shortVisitThreshold = 30
)

// GapMinutes returns the transition time charged before every ride except
// the first one in a plan.
func GapMinutes(totalTime int) int {
	if totalTime < shortVisitThreshold {
		return shortVisitGap
	}
	return longVisitGap
}

// RideCost is the number of minutes r consumes when it is accepted as the
// position-th ride (zero-based) of a plan.
func RideCost(r domain.Ride, c domain.Constraints, position int) int {
	cost := r.Duration + c.EffectiveQueueTime(r)
	if position > 0 {
		cost += GapMinutes(c.TotalTime)
	}
	return cost
}

// planBuilder accumulates accepted rides and running totals for one plan.
type planBuilder struct {
	constraints domain.Constraints
	plan        domain.Plan
}

func newPlanBuilder(c domain.Constraints) *planBuilder {
	return &planBuilder{
		constraints: c,
		plan: domain.Plan{
			SelectedRides: []string{},
			RemainingTime: c.TotalTime,
		},
	}
}

// tryAdd accepts r when its cost fits in the remaining budget.
func (b *planBuilder) tryAdd(r domain.Ride) bool {
	cost := RideCost(r, b.constraints, len(b.plan.SelectedRides))
	if cost > b.plan.RemainingTime {
		return false
	}

	b.plan.SelectedRides = append(b.plan.SelectedRides, r.ID)
	b.plan.TotalThrill += r.Thrill
	b.plan.RemainingTime -= cost
	return true
}

func (b *planBuilder) exhausted() bool {
	return b.plan.RemainingTime <= 0
}

func (b *planBuilder) build() domain.Plan {
	return b.plan
}
