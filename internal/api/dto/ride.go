package dto

type RideResponse struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Thrill            int    `json:"thrill"`
	Duration          int    `json:"duration"`
	QueueTime         int    `json:"queue_time"`
	Fatigue           int    `json:"fatigue"`
	Mandatory         bool   `json:"mandatory"`
	Restricted        bool   `json:"restricted"`
	VIPAccess         bool   `json:"vip_access"`
	AffectedByWeather bool   `json:"affected_by_weather"`
	Type              string `json:"type"`
	MinWeight         int    `json:"min_weight"`
	MaxWeight         int    `json:"max_weight"`
	MinAge            int    `json:"min_age"`
	MaxAge            int    `json:"max_age"`
}

// Omitted bounds default to 0-200 kg and 0-100 years.
type AddRideRequest struct {
	ID                string `json:"id" validate:"required"`
	Name              string `json:"name" validate:"required"`
	Thrill            *int   `json:"thrill" validate:"required,min=1,max=10"`
	Duration          *int   `json:"duration" validate:"required,min=1"`
	QueueTime         *int   `json:"queue_time" validate:"required,min=0"`
	Fatigue           *int   `json:"fatigue" validate:"required,min=1,max=10"`
	Mandatory         bool   `json:"mandatory"`
	Restricted        bool   `json:"restricted"`
	VIPAccess         bool   `json:"vip_access"`
	AffectedByWeather bool   `json:"affected_by_weather"`
	Type              string `json:"type" validate:"required,oneof=land water kids"`
	MinWeight         *int   `json:"min_weight" validate:"omitempty,min=0"`
	MaxWeight         *int   `json:"max_weight" validate:"omitempty,min=0"`
	MinAge            *int   `json:"min_age" validate:"omitempty,min=0"`
	MaxAge            *int   `json:"max_age" validate:"omitempty,min=0"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type RestrictRidesRequest struct {
	IDs []string `json:"ids"`
}
