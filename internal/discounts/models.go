package discounts

import (
	"time"
)

// Discount is a named percentage reduction. user_type restricts it to a
// traveller type when set; empty means anyone qualifies. min_points gates it
// on the buyer's loyalty balance.
type Discount struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"size:120;not null" json:"name"`
	Percentage float64   `gorm:"not null" json:"percentage"`
	UserType   string    `gorm:"size:20" json:"user_type"`
	MinPoints  int       `gorm:"not null;default:0" json:"min_points"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Discount) TableName() string {
	return "discounts"
}

// CreateDiscountRequest represents the admin discount creation payload
type CreateDiscountRequest struct {
	Name       string  `json:"name" validate:"required,min=2,max=120"`
	Percentage float64 `json:"percentage" validate:"required,gt=0,lte=50"`
	UserType   string  `json:"user_type,omitempty" validate:"omitempty,oneof=adult child"`
	MinPoints  int     `json:"min_points" validate:"gte=0"`
}

// UpdateDiscountRequest represents a partial discount update
type UpdateDiscountRequest struct {
	Name       *string  `json:"name,omitempty" validate:"omitempty,min=2,max=120"`
	Percentage *float64 `json:"percentage,omitempty" validate:"omitempty,gt=0,lte=50"`
	UserType   *string  `json:"user_type,omitempty" validate:"omitempty,oneof=adult child"`
	MinPoints  *int     `json:"min_points,omitempty" validate:"omitempty,gte=0"`
}

// DiscountResponse represents discount data in API responses
type DiscountResponse struct {
	ID         uint    `json:"id"`
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"`
	UserType   string  `json:"user_type,omitempty"`
	MinPoints  int     `json:"min_points"`
}

func (d *Discount) ToResponse() DiscountResponse {
	return DiscountResponse{
		ID:         d.ID,
		Name:       d.Name,
		Percentage: d.Percentage,
		UserType:   d.UserType,
		MinPoints:  d.MinPoints,
	}
}
