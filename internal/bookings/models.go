package bookings

import (
	"time"
)

// Status of a booking. Bookings confirm atomically and there is no
// cancellation flow, so confirmed is the only status written today.
type Status string

const (
	StatusConfirmed Status = "confirmed"
)

// TravellerType selects the pricing rules applied to a booking.
type TravellerType string

const (
	TravellerAdult TravellerType = "adult"
	TravellerChild TravellerType = "child"
)

func IsValidTravellerType(t string) bool {
	switch TravellerType(t) {
	case TravellerAdult, TravellerChild:
		return true
	}
	return false
}

// Booking is a confirmed seat purchase. PricePaid stores the final charged
// amount; the full breakdown is reconstructed on demand by the explainer.
type Booking struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	BookingRef    string    `gorm:"size:36;uniqueIndex;not null" json:"booking_ref"`
	UserID        uint      `gorm:"not null;index" json:"user_id"`
	RouteID       uint      `gorm:"not null;index" json:"route_id"`
	SeatNumber    *string   `gorm:"size:10" json:"seat_number,omitempty"`
	TravellerType string    `gorm:"size:20;not null;default:'adult'" json:"traveller_type"`
	PricePaid     float64   `gorm:"not null" json:"price_paid"`
	Status        Status    `gorm:"size:20;not null;default:'confirmed'" json:"status"`
	BookingTime   time.Time `gorm:"not null" json:"booking_time"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Booking) TableName() string {
	return "bookings"
}

// CreateBookingRequest represents the booking creation payload
type CreateBookingRequest struct {
	RouteID       uint    `json:"route_id" validate:"required"`
	SeatNumber    *string `json:"seat_number,omitempty" validate:"omitempty,max=10"`
	TravellerType string  `json:"traveller_type,omitempty" validate:"omitempty,oneof=adult child"`
}

// BookingResponse represents booking data in API responses
type BookingResponse struct {
	ID            uint      `json:"id"`
	BookingRef    string    `json:"booking_ref"`
	UserID        uint      `json:"user_id"`
	RouteID       uint      `json:"route_id"`
	SeatNumber    *string   `json:"seat_number,omitempty"`
	TravellerType string    `json:"traveller_type"`
	PricePaid     float64   `json:"price_paid"`
	Status        Status    `json:"status"`
	BookingTime   time.Time `json:"booking_time"`
}

func (b *Booking) ToResponse() BookingResponse {
	return BookingResponse{
		ID:            b.ID,
		BookingRef:    b.BookingRef,
		UserID:        b.UserID,
		RouteID:       b.RouteID,
		SeatNumber:    b.SeatNumber,
		TravellerType: b.TravellerType,
		PricePaid:     b.PricePaid,
		Status:        b.Status,
		BookingTime:   b.BookingTime,
	}
}

// PriceBreakdown holds every intermediate value of the pricing pipeline for
// one booking, in the order the pipeline applies them.
type PriceBreakdown struct {
	BookingID       uint    `json:"booking_id"`
	BookingRef      string  `json:"booking_ref"`
	RouteID         uint    `json:"route_id"`
	Origin          string  `json:"origin"`
	Destination     string  `json:"destination"`
	TravellerType   string  `json:"traveller_type"`
	BasePrice       float64 `json:"base_price"`
	SeatsTotal      int     `json:"seats_total"`
	SeatsLeft       int     `json:"seats_left"`
	DemandFactor    float64 `json:"demand_factor"`
	DemandPrice     float64 `json:"demand_price"`
	ChildApplied    bool    `json:"child_applied"`
	PriceAfterChild float64 `json:"price_after_child"`
	DiscountPct     float64 `json:"discount_pct"`
	FinalPrice      float64 `json:"final_price"`
	RecordedPrice   float64 `json:"recorded_price"`
}

// UserBookingsReport aggregates a user's bookings with per-route and grand totals.
type UserBookingsReport struct {
	Username    string           `json:"username"`
	Bookings    []PriceBreakdown `json:"bookings"`
	RouteTotals map[uint]float64 `json:"route_totals"`
	GrandTotal  float64          `json:"grand_total"`
}

// PaginatedBookings is a paginated booking listing
type PaginatedBookings struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	Limit    int               `json:"limit"`
}

// OwnerInfo identifies who holds a booking
type OwnerInfo struct {
	BookingID  uint   `json:"booking_id"`
	BookingRef string `json:"booking_ref"`
	UserID     uint   `json:"user_id"`
	Username   string `json:"username"`
}
