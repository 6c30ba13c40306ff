package database

import (
	"gorm.io/gorm"
)

// MigrateConstraints adds database constraints the seat accounting relies on.
// AutoMigrate covers columns and basic indexes; the checks here keep inventory
// consistent even if a code path skips the row-lock protocol.
func MigrateConstraints(db *gorm.DB) error {
	// Available seats can never exceed the configured total. Postgres has no
	// ADD CONSTRAINT IF NOT EXISTS, so the check is guarded via pg_constraint.
	err := db.Exec(`
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1 FROM pg_constraint WHERE conname = 'chk_routes_seat_bounds'
			) THEN
				ALTER TABLE routes
				ADD CONSTRAINT chk_routes_seat_bounds
				CHECK (seats_available >= 0 AND seats_available <= seats_total);
			END IF;
		END $$;
	`).Error
	if err != nil {
		return err
	}

	// Index for booking history lookups and demand reconstruction by route
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_bookings_route_id
		ON bookings (route_id, id);
	`).Error
	if err != nil {
		return err
	}

	// Index for per-user booking listings
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_bookings_user_id
		ON bookings (user_id);
	`).Error
	if err != nil {
		return err
	}

	return nil
}
