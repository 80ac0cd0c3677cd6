package services

import "ride-plan-service/internal/domain"

func ride(id string, rideType domain.RideType, thrill, duration, queue int) domain.Ride {
	return domain.NewRide(id, id, rideType, thrill, duration, queue, 1)
}

func adult(totalTime int) domain.Constraints {
	return domain.Constraints{TotalTime: totalTime, UserAge: 25, UserWeight: 70}
}

func ids(eligible []EligibleRide) []string {
	out := make([]string, 0, len(eligible))
	for _, e := range eligible {
		out = append(out, e.Ride.ID)
	}
	return out
}
