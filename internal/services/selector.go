package services

import (
	"container/heap"
	"ride-plan-service/internal/domain"
)

// rideQueue is a max-priority queue of eligible rides: higher thrill first,
// then lower catalog index.
type rideQueue []EligibleRide

func (q rideQueue) Len() int { return len(q) }

func (q rideQueue) Less(i, j int) bool {
	if q[i].Ride.Thrill != q[j].Ride.Thrill {
		return q[i].Ride.Thrill > q[j].Ride.Thrill
	}
	return q[i].Index < q[j].Index
}

func (q rideQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *rideQueue) Push(x any) { *q = append(*q, x.(EligibleRide)) }

func (q *rideQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// SelectByPriority repeatedly takes the most thrilling remaining ride.
// A ride that does not fit is dropped and the next best one is tried, so a
// single rejection never ends the search.
func SelectByPriority(eligible []EligibleRide, c domain.Constraints) domain.Plan {
	q := make(rideQueue, len(eligible))
	copy(q, eligible)
	heap.Init(&q)

	b := newPlanBuilder(c)
	for q.Len() > 0 && !b.exhausted() {
		next := heap.Pop(&q).(EligibleRide)
		b.tryAdd(next.Ride)
	}

	return b.build()
}

// SelectSequential walks ordered in sequence and keeps every ride that still
// fits, skipping the ones that do not.
func SelectSequential(ordered []EligibleRide, c domain.Constraints) domain.Plan {
	b := newPlanBuilder(c)
	for _, e := range ordered {
		if b.exhausted() {
			break
		}
		b.tryAdd(e.Ride)
	}

	return b.build()
}
