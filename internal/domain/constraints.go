package domain

// RidePreference selects how the eligible rides are filtered and ordered.
type RidePreference string

const (
	PreferenceNone     RidePreference = ""
	PreferenceDryOnly  RidePreference = "dry_only"
	PreferenceWetOnly  RidePreference = "wet_only"
	PreferenceDryFirst RidePreference = "dry_first"
)

// ParseRidePreference maps anything but an exact known value to PreferenceNone.
func ParseRidePreference(s string) RidePreference {
	if p := RidePreference(s); p.Recognized() {
		return p
	}
	return PreferenceNone
}

// Recognized reports whether p switches planning to sequential selection.
func (p RidePreference) Recognized() bool {
	switch p {
	case PreferenceDryOnly, PreferenceWetOnly, PreferenceDryFirst:
		return true
	default:
		return false
	}
}

// Constraints describes one visitor and the park conditions for a single
// planning request. Values are expected to be range-validated by the caller.
type Constraints struct {
	TotalTime      int
	IsVIP          bool
	BadWeather     bool
	UserAge        int
	UserWeight     int
	RidePreference RidePreference
}

// EffectiveQueueTime is the queue time the visitor actually waits for r.
// VIP visitors wait half (rounded down) on rides that grant VIP access.
func (c Constraints) EffectiveQueueTime(r Ride) int {
	if c.IsVIP && r.VIPAccess {
		return r.QueueTime / 2
	}
	return r.QueueTime
}
