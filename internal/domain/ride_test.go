package domain

import (
	"errors"
	"testing"
)

func TestRideValidate(t *testing.T) {
	valid := NewRide("L001", "Mission Interstellar", RideTypeLand, 9, 3, 25, 8)

	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(r *Ride)
	}{
		{"empty id", func(r *Ride) { r.ID = " " }},
		{"empty name", func(r *Ride) { r.Name = "" }},
		{"thrill too low", func(r *Ride) { r.Thrill = 0 }},
		{"thrill too high", func(r *Ride) { r.Thrill = 11 }},
		{"fatigue out of range", func(r *Ride) { r.Fatigue = 0 }},
		{"zero duration", func(r *Ride) { r.Duration = 0 }},
		{"negative queue", func(r *Ride) { r.QueueTime = -1 }},
		{"unknown type", func(r *Ride) { r.Type = "air" }},
		{"non-canonical type", func(r *Ride) { r.Type = "Land" }},
		{"weight bounds inverted", func(r *Ride) { r.MinWeight, r.MaxWeight = 120, 40 }},
		{"age bounds inverted", func(r *Ride) { r.MinAge, r.MaxAge = 60, 12 }},
		{"negative min age", func(r *Ride) { r.MinAge = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mutate(&r)

			err := r.Validate()
			if !errors.Is(err, ErrInvalidRide) {
				t.Fatalf("Validate() = %v, want ErrInvalidRide", err)
			}
		})
	}
}

func TestParseRideType(t *testing.T) {
	got, ok := ParseRideType(" Water ")
	if !ok || got != RideTypeWater {
		t.Fatalf("ParseRideType = (%q, %v), want (water, true)", got, ok)
	}

	if _, ok := ParseRideType("air"); ok {
		t.Fatalf("ParseRideType(air) should not be recognized")
	}

	if !RideTypeKids.IsDry() || !RideTypeLand.IsDry() || RideTypeWater.IsDry() {
		t.Fatalf("IsDry classification is wrong")
	}
}

func TestParseRidePreference(t *testing.T) {
	tests := map[string]RidePreference{
		"":            PreferenceNone,
		"dry_only":    PreferenceDryOnly,
		"wet_only":    PreferenceWetOnly,
		"dry_first":   PreferenceDryFirst,
		"mixed":       PreferenceNone,
		"DRY_ONLY":    PreferenceNone,
		" dry_only ":  PreferenceNone,
		"dry_first\n": PreferenceNone,
	}

	for in, want := range tests {
		if got := ParseRidePreference(in); got != want {
			t.Errorf("ParseRidePreference(%q) = %q, want %q", in, got, want)
		}
	}

	if PreferenceNone.Recognized() {
		t.Errorf("PreferenceNone must not be recognized")
	}
	if RidePreference("mixed").Recognized() {
		t.Errorf("an arbitrary preference must not be recognized")
	}
}

func TestConstraintsEffectiveQueueTime(t *testing.T) {
	ride := Ride{QueueTime: 25, VIPAccess: true}
	noVIPAccess := Ride{QueueTime: 25}

	tests := []struct {
		name  string
		isVIP bool
		ride  Ride
		want  int
	}{
		{"vip on vip ride halves and floors", true, ride, 12},
		{"vip on regular ride", true, noVIPAccess, 25},
		{"regular visitor on vip ride", false, ride, 25},
		{"regular visitor on regular ride", false, noVIPAccess, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Constraints{IsVIP: tt.isVIP}
			if got := c.EffectiveQueueTime(tt.ride); got != tt.want {
				t.Fatalf("EffectiveQueueTime = %d, want %d", got, tt.want)
			}
		})
	}
}
