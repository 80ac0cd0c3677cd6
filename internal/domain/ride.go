package domain

import (
	"fmt"
	"strings"
)

// RideType is the park zone a ride belongs to.
type RideType string

const (
	RideTypeLand  RideType = "land"
	RideTypeWater RideType = "water"
	RideTypeKids  RideType = "kids"
)

// Default eligibility bounds applied when a ride does not specify them.
const (
	DefaultMinWeight = 0
	DefaultMaxWeight = 200
	DefaultMinAge    = 0
	DefaultMaxAge    = 100
)

// ParseRideType normalizes s and reports whether it names a known ride type.
func ParseRideType(s string) (RideType, bool) {
	switch t := RideType(strings.ToLower(strings.TrimSpace(s))); t {
	case RideTypeLand, RideTypeWater, RideTypeKids:
		return t, true
	default:
		return "", false
	}
}

// Valid reports whether t is one of the canonical ride types.
func (t RideType) Valid() bool {
	switch t {
	case RideTypeLand, RideTypeWater, RideTypeKids:
		return true
	default:
		return false
	}
}

// IsDry reports whether riders stay dry on this type of ride.
func (t RideType) IsDry() bool {
	return t == RideTypeLand || t == RideTypeKids
}

// Represents a single attraction in the park catalog.
// Rides are read-only inputs to planning; Fatigue and Mandatory are carried
// through from storage but do not influence eligibility or selection.
type Ride struct {
	ID                string
	Name              string
	Type              RideType
	Thrill            int
	Duration          int
	QueueTime         int
	Fatigue           int
	Mandatory         bool
	Restricted        bool
	VIPAccess         bool
	AffectedByWeather bool
	MinWeight         int
	MaxWeight         int
	MinAge            int
	MaxAge            int
}

// NewRide returns a ride with default age and weight bounds.
func NewRide(id, name string, rideType RideType, thrill, duration, queueTime, fatigue int) Ride {
	return Ride{
		ID:        id,
		Name:      name,
		Type:      rideType,
		Thrill:    thrill,
		Duration:  duration,
		QueueTime: queueTime,
		Fatigue:   fatigue,
		MinWeight: DefaultMinWeight,
		MaxWeight: DefaultMaxWeight,
		MinAge:    DefaultMinAge,
		MaxAge:    DefaultMaxAge,
	}
}

// Validate checks the catalog invariants for a single ride.
func (r Ride) Validate() error {
	switch {
	case strings.TrimSpace(r.ID) == "":
		return fmt.Errorf("%w: id must not be empty", ErrInvalidRide)
	case strings.TrimSpace(r.Name) == "":
		return fmt.Errorf("%w: ride name cannot be empty", ErrInvalidRide)
	case r.Thrill < 1 || r.Thrill > 10:
		return fmt.Errorf("%w: thrill must be between 1 and 10", ErrInvalidRide)
	case r.Fatigue < 1 || r.Fatigue > 10:
		return fmt.Errorf("%w: fatigue must be between 1 and 10", ErrInvalidRide)
	case r.Duration < 1:
		return fmt.Errorf("%w: duration must be at least 1 minute", ErrInvalidRide)
	case r.QueueTime < 0:
		return fmt.Errorf("%w: queue time cannot be negative", ErrInvalidRide)
	}

	if !r.Type.Valid() {
		return fmt.Errorf("%w: invalid ride type %q, must be land, water or kids", ErrInvalidRide, r.Type)
	}

	if r.MinWeight < 0 || r.MinAge < 0 {
		return fmt.Errorf("%w: age and weight bounds must be non-negative", ErrInvalidRide)
	}
	if r.MinWeight > r.MaxWeight {
		return fmt.Errorf("%w: min_weight %d exceeds max_weight %d", ErrInvalidRide, r.MinWeight, r.MaxWeight)
	}
	if r.MinAge > r.MaxAge {
		return fmt.Errorf("%w: min_age %d exceeds max_age %d", ErrInvalidRide, r.MinAge, r.MaxAge)
	}

	return nil
}
