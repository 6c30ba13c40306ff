package notifications

import (
	"encoding/json"
	"time"
)

// NotificationType discriminates booking lifecycle events on the wire.
type NotificationType string

const (
	TypeBookingConfirmed NotificationType = "BOOKING_CONFIRMED"
)

// BookingNotification is the message published after a booking confirms.
type BookingNotification struct {
	Type        NotificationType `json:"type"`
	BookingID   uint             `json:"booking_id"`
	BookingRef  string           `json:"booking_ref"`
	UserID      uint             `json:"user_id"`
	Username    string           `json:"username"`
	RouteID     uint             `json:"route_id"`
	PricePaid   float64          `json:"price_paid"`
	BookingTime time.Time        `json:"booking_time"`
}

func (n *BookingNotification) ToJSON() ([]byte, error) {
	return json.Marshal(n)
}

// PartitionKey routes all of a user's notifications to one partition so they
// arrive in booking order.
func (n *BookingNotification) PartitionKey() string {
	return n.Username
}
