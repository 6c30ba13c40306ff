package users

import (
	"time"
)

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

type User struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Username      string    `json:"username" gorm:"uniqueIndex;not null;size:100"`
	PasswordHash  string    `json:"-" gorm:"column:password_hash;not null"` // hide in json
	LoyaltyPoints int       `json:"loyalty_points" gorm:"not null;default:0;check:loyalty_points >= 0"`
	Role          Role      `json:"role" gorm:"type:varchar(20);not null;default:'USER'"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

func IsValidRole(role string) bool {
	switch role {
	case string(RoleUser), string(RoleAdmin):
		return true
	default:
		return false
	}
}

// UserResponse represents user data in responses (without credentials)
type UserResponse struct {
	ID            uint      `json:"id"`
	Username      string    `json:"username"`
	LoyaltyPoints int       `json:"loyalty_points"`
	Role          string    `json:"role"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ToResponse strips credential data for API output
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:            u.ID,
		Username:      u.Username,
		LoyaltyPoints: u.LoyaltyPoints,
		Role:          string(u.Role),
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

// AdjustLoyaltyRequest represents an admin loyalty-point adjustment
type AdjustLoyaltyRequest struct {
	Delta int `json:"delta" binding:"required"`
}
