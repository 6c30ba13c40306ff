package database

import (
	"travely/internal/bookings"
	"travely/internal/catalog"
	"travely/internal/discounts"
	"travely/internal/users"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&users.User{},
		&catalog.Route{},
		&discounts.Discount{},
		&bookings.Booking{},
	)
}
