package bookings

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"travely/internal/catalog"
)

var (
	ErrRouteNotFound    = errors.New("route not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrNoSeatsAvailable = errors.New("no seats available")
)

// RouteInventory is the locked snapshot of a route handed to the pricing
// callback while the row lock is held. Seat counts are pre-decrement.
type RouteInventory struct {
	ID             uint    `gorm:"column:id"`
	Origin         string  `gorm:"column:origin"`
	Destination    string  `gorm:"column:destination"`
	BasePrice      float64 `gorm:"column:base_price"`
	SeatsTotal     int     `gorm:"column:seats_total"`
	SeatsAvailable int     `gorm:"column:seats_available"`
}

// PriceFunc computes the price to charge given the locked route state.
type PriceFunc func(inv RouteInventory) (float64, error)

type Repository interface {
	// Concurrency-safe booking creation
	CreateWithSeatDecrement(ctx context.Context, booking *Booking, price PriceFunc) error

	GetByID(ctx context.Context, id uint) (*Booking, error)
	GetByUser(ctx context.Context, userID uint) ([]Booking, error)
	List(ctx context.Context, page, limit int) ([]Booking, int64, error)
	GetOwner(ctx context.Context, bookingID uint) (*OwnerInfo, error)

	// Demand reconstruction
	CountOnRouteThrough(ctx context.Context, routeID, bookingID uint) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// CreateWithSeatDecrement runs the whole read-check-price-insert-decrement
// sequence in one transaction, holding a FOR UPDATE lock on the route row so
// concurrent bookings serialize and the last seat cannot be sold twice.
func (r *repository) CreateWithSeatDecrement(ctx context.Context, booking *Booking, price PriceFunc) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var inv RouteInventory

		err := tx.Table("routes").
			Select("id, origin, destination, base_price, seats_total, seats_available").
			Where("id = ?", booking.RouteID).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&inv).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRouteNotFound
			}
			return fmt.Errorf("failed to lock route: %w", err)
		}

		if inv.SeatsAvailable <= 0 {
			return ErrNoSeatsAvailable
		}

		// Demand is priced off the pre-decrement seat count
		pricePaid, err := price(inv)
		if err != nil {
			return err
		}
		booking.PricePaid = pricePaid

		if err := tx.Create(booking).Error; err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}

		err = tx.Model(&catalog.Route{}).
			Where("id = ?", booking.RouteID).
			Update("seats_available", inv.SeatsAvailable-1).Error
		if err != nil {
			return fmt.Errorf("failed to decrement seats: %w", err)
		}

		return nil
	})
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Booking, error) {
	var booking Booking
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (r *repository) GetByUser(ctx context.Context, userID uint) ([]Booking, error) {
	var bookings []Booking
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&bookings).Error
	return bookings, err
}

func (r *repository) List(ctx context.Context, page, limit int) ([]Booking, int64, error) {
	var bookings []Booking
	var totalCount int64

	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}

	baseQuery := r.db.WithContext(ctx).Model(&Booking{})
	if err := baseQuery.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := baseQuery.
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&bookings).Error

	return bookings, totalCount, err
}

func (r *repository) GetOwner(ctx context.Context, bookingID uint) (*OwnerInfo, error) {
	var owner OwnerInfo
	err := r.db.WithContext(ctx).
		Table("bookings").
		Select("bookings.id AS booking_id, bookings.booking_ref, users.id AS user_id, users.username").
		Joins("JOIN users ON users.id = bookings.user_id").
		Where("bookings.id = ?", bookingID).
		First(&owner).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &owner, nil
}

// CountOnRouteThrough counts bookings on a route up to and including the
// given booking id. Ids are assigned in booking order, so this recovers how
// many seats were gone once that booking landed.
func (r *repository) CountOnRouteThrough(ctx context.Context, routeID, bookingID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Booking{}).
		Where("route_id = ? AND id <= ?", routeID, bookingID).
		Count(&count).Error
	return count, err
}
