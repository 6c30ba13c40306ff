package catalog

import (
	"time"
)

// TransportType is free-form in storage but validated on input
type TransportType string

const (
	TransportBus   TransportType = "bus"
	TransportTrain TransportType = "train"
	TransportPlane TransportType = "plane"
)

func IsValidTransportType(t string) bool {
	switch TransportType(t) {
	case TransportBus, TransportTrain, TransportPlane:
		return true
	}
	return false
}

// Route is a sellable journey with its own seat inventory. seats_available
// starts at seats_total and only the booking engine decrements it.
type Route struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Origin         string    `gorm:"size:120;not null;index:idx_routes_pair" json:"origin"`
	Destination    string    `gorm:"size:120;not null;index:idx_routes_pair" json:"destination"`
	TransportType  string    `gorm:"size:20;not null" json:"transport_type"`
	DepartureTime  time.Time `gorm:"not null" json:"departure_time"`
	BasePrice      float64   `gorm:"not null;check:base_price >= 0" json:"base_price"`
	SeatsTotal     int       `gorm:"not null;check:seats_total > 0" json:"seats_total"`
	SeatsAvailable int       `gorm:"not null" json:"seats_available"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (Route) TableName() string {
	return "routes"
}

// CreateRouteRequest represents the admin route creation payload
type CreateRouteRequest struct {
	Origin        string    `json:"origin" validate:"required,min=2,max=120"`
	Destination   string    `json:"destination" validate:"required,min=2,max=120"`
	TransportType string    `json:"transport_type" validate:"required,oneof=bus train plane"`
	DepartureTime time.Time `json:"departure_time" validate:"required"`
	BasePrice     float64   `json:"base_price" validate:"required,gt=0"`
	SeatsTotal    int       `json:"seats_total" validate:"required,gt=0"`
}

// UpdateRouteRequest represents a partial route update
type UpdateRouteRequest struct {
	Origin        *string    `json:"origin,omitempty" validate:"omitempty,min=2,max=120"`
	Destination   *string    `json:"destination,omitempty" validate:"omitempty,min=2,max=120"`
	TransportType *string    `json:"transport_type,omitempty" validate:"omitempty,oneof=bus train plane"`
	DepartureTime *time.Time `json:"departure_time,omitempty"`
	BasePrice     *float64   `json:"base_price,omitempty" validate:"omitempty,gt=0"`
}

// RouteResponse represents route data in API responses
type RouteResponse struct {
	ID             uint      `json:"id"`
	Origin         string    `json:"origin"`
	Destination    string    `json:"destination"`
	TransportType  string    `json:"transport_type"`
	DepartureTime  time.Time `json:"departure_time"`
	BasePrice      float64   `json:"base_price"`
	SeatsTotal     int       `json:"seats_total"`
	SeatsAvailable int       `json:"seats_available"`
	CreatedAt      time.Time `json:"created_at"`
}

func (r *Route) ToResponse() RouteResponse {
	return RouteResponse{
		ID:             r.ID,
		Origin:         r.Origin,
		Destination:    r.Destination,
		TransportType:  r.TransportType,
		DepartureTime:  r.DepartureTime,
		BasePrice:      r.BasePrice,
		SeatsTotal:     r.SeatsTotal,
		SeatsAvailable: r.SeatsAvailable,
		CreatedAt:      r.CreatedAt,
	}
}

// PaginatedRoutes is a paginated route listing
type PaginatedRoutes struct {
	Routes     []RouteResponse `json:"routes"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
}
