package dto

import "ride-plan-service/internal/domain"

// Pointers distinguish a missing field from an explicit zero.
type GeneratePlanRequest struct {
	TotalTime      *int   `json:"total_time" validate:"required,min=1"`
	IsVIP          bool   `json:"is_vip"`
	BadWeather     bool   `json:"bad_weather"`
	UserAge        *int   `json:"user_age" validate:"required,min=1,max=100"`
	UserWeight     *int   `json:"user_weight" validate:"required,min=10,max=300"`
	RidePreference string `json:"ride_preference"`
}

type PlannedRideResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Thrill       int    `json:"thrill"`
	Duration     int    `json:"duration"`
	QueueTime    int    `json:"queue_time"`
	VIPQueueTime int    `json:"vip_queue_time"`
	Type         string `json:"type"`
}

type GeneratePlanResponse struct {
	SelectedRides      []PlannedRideResponse `json:"selected_rides"`
	TotalThrill        int                   `json:"total_thrill"`
	RemainingTime      int                   `json:"remaining_time"`
	TotalTimeUsed      int                   `json:"total_time_used"`
	IsVIPUsed          bool                  `json:"is_vip_used"`
	BadWeatherUsed     bool                  `json:"bad_weather_used"`
	UserAgeUsed        int                   `json:"user_age_used"`
	UserWeightUsed     int                   `json:"user_weight_used"`
	RidePreferenceUsed string                `json:"ride_preference_used"`
}

// NewGeneratePlanResponse echoes the inputs alongside the plan. rawPreference
// is reported as sent, even when it was not recognized.
func NewGeneratePlanResponse(details *domain.PlanDetails, rawPreference string) GeneratePlanResponse {
	c := details.Constraints
	res := GeneratePlanResponse{
		SelectedRides:      make([]PlannedRideResponse, 0, len(details.Rides)),
		TotalThrill:        details.TotalThrill,
		RemainingTime:      details.RemainingTime,
		TotalTimeUsed:      c.TotalTime,
		IsVIPUsed:          c.IsVIP,
		BadWeatherUsed:     c.BadWeather,
		UserAgeUsed:        c.UserAge,
		UserWeightUsed:     c.UserWeight,
		RidePreferenceUsed: rawPreference,
	}
	for _, p := range details.Rides {
		res.SelectedRides = append(res.SelectedRides, PlannedRideResponse{
			ID:           p.Ride.ID,
			Name:         p.Ride.Name,
			Thrill:       p.Ride.Thrill,
			Duration:     p.Ride.Duration,
			QueueTime:    p.Ride.QueueTime,
			VIPQueueTime: p.EffectiveQueueTime,
			Type:         string(p.Ride.Type),
		})
	}
	return res
}
