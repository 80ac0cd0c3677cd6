package services

import (
	"ride-plan-service/internal/domain"
	"slices"
)

// OrderByPreference filters and reorders eligible rides for a recognized
// preference. Any other preference returns the input unchanged.
//
// dry_first stable-sorts each zone by thrill so equal-thrill rides keep their
// catalog order, then places every dry ride ahead of every wet one.
func OrderByPreference(eligible []EligibleRide, pref domain.RidePreference) []EligibleRide {
	switch pref {
	case domain.PreferenceDryOnly:
		return partition(eligible, true)
	case domain.PreferenceWetOnly:
		return partition(eligible, false)
	case domain.PreferenceDryFirst:
		dry := partition(eligible, true)
		wet := partition(eligible, false)
		slices.SortStableFunc(dry, byThrillDesc)
		slices.SortStableFunc(wet, byThrillDesc)
		return append(dry, wet...)
	default:
		return eligible
	}
}

func partition(eligible []EligibleRide, dry bool) []EligibleRide {
	out := make([]EligibleRide, 0, len(eligible))
	for _, e := range eligible {
		if e.Ride.Type.IsDry() == dry {
			out = append(out, e)
		}
	}
	return out
}

func byThrillDesc(a, b EligibleRide) int {
	if a.Ride.Thrill > b.Ride.Thrill {
		return -1
	}
	if a.Ride.Thrill < b.Ride.Thrill {
		return 1
	}
	return 0
}
