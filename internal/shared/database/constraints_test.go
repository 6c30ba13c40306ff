package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open gorm: %v", err)
	}

	return db, mock
}

func TestMigrateConstraints(t *testing.T) {
	db, mock := newMockDB(t)

	// The seat-bounds check must be guarded through pg_constraint; Postgres
	// rejects ADD CONSTRAINT IF NOT EXISTS outright.
	mock.ExpectExec(`(?s)DO \$\$.+pg_constraint WHERE conname = 'chk_routes_seat_bounds'.+ADD CONSTRAINT chk_routes_seat_bounds`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`CREATE INDEX IF NOT EXISTS idx_bookings_route_id`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`CREATE INDEX IF NOT EXISTS idx_bookings_user_id`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := MigrateConstraints(db); err != nil {
		t.Fatalf("MigrateConstraints failed: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}
