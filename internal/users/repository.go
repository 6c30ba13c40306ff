package users

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrUserNotFound = errors.New("user not found")

type Repository interface {
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	List(ctx context.Context, page, limit int) ([]User, int64, error)
	AdjustLoyaltyPoints(ctx context.Context, id uint, delta int) (*User, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByID(ctx context.Context, id uint) (*User, error) {
	var user User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *repository) GetByUsername(ctx context.Context, username string) (*User, error) {
	var user User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *repository) List(ctx context.Context, page, limit int) ([]User, int64, error) {
	var users []User
	var totalCount int64

	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}

	baseQuery := r.db.WithContext(ctx).Model(&User{})
	if err := baseQuery.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := baseQuery.
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&users).Error

	return users, totalCount, err
}

// AdjustLoyaltyPoints applies a signed delta to a user's balance. The balance
// never goes below zero; the check constraint backs this up at the database level.
func (r *repository) AdjustLoyaltyPoints(ctx context.Context, id uint, delta int) (*User, error) {
	var updated *User
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user User
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("failed to lock user: %w", err)
		}

		newBalance := user.LoyaltyPoints + delta
		if newBalance < 0 {
			newBalance = 0
		}

		if err := tx.Model(&User{}).
			Where("id = ?", id).
			Update("loyalty_points", newBalance).Error; err != nil {
			return fmt.Errorf("failed to update loyalty points: %w", err)
		}

		user.LoyaltyPoints = newBalance
		updated = &user
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
