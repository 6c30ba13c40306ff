package bookings

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

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

func routeRow(seatsAvailable int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "origin", "destination", "base_price", "seats_total", "seats_available"}).
		AddRow(1, "Hyderabad", "Bangalore", 100.00, 2, seatsAvailable)
}

// The route snapshot must be read under a row lock so two concurrent
// bookings cannot both see the same seat count.
const lockedRouteSelect = `SELECT id, origin, destination, base_price, seats_total, seats_available FROM "routes" WHERE id = \$1(.+)FOR UPDATE`

func TestCreateWithSeatDecrementLocksRouteRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(lockedRouteSelect).
		WithArgs(1, 1).
		WillReturnRows(routeRow(2))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "bookings"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "routes" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	booking := &Booking{
		BookingRef:    "TRV-TEST",
		UserID:        2,
		RouteID:       1,
		TravellerType: string(TravellerAdult),
		BookingTime:   time.Now(),
	}

	var seenSeats int
	err := repo.CreateWithSeatDecrement(context.Background(), booking, func(inv RouteInventory) (float64, error) {
		seenSeats = inv.SeatsAvailable
		return 100.00, nil
	})
	if err != nil {
		t.Fatalf("CreateWithSeatDecrement failed: %v", err)
	}

	if seenSeats != 2 {
		t.Errorf("pricing saw %d seats, want pre-decrement count 2", seenSeats)
	}
	if booking.PricePaid != 100.00 {
		t.Errorf("price paid = %.2f, want 100.00", booking.PricePaid)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestCreateWithSeatDecrementSoldOut(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(lockedRouteSelect).
		WithArgs(1, 1).
		WillReturnRows(routeRow(0))
	mock.ExpectRollback()

	booking := &Booking{UserID: 2, RouteID: 1, TravellerType: string(TravellerAdult), BookingTime: time.Now()}
	err := repo.CreateWithSeatDecrement(context.Background(), booking, func(inv RouteInventory) (float64, error) {
		t.Fatal("pricing callback must not run when the route is sold out")
		return 0, nil
	})
	if !errors.Is(err, ErrNoSeatsAvailable) {
		t.Errorf("error = %v, want ErrNoSeatsAvailable", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestCreateWithSeatDecrementRouteMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(lockedRouteSelect).
		WithArgs(99, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	booking := &Booking{UserID: 2, RouteID: 99, TravellerType: string(TravellerAdult), BookingTime: time.Now()}
	err := repo.CreateWithSeatDecrement(context.Background(), booking, func(inv RouteInventory) (float64, error) {
		return 100.00, nil
	})
	if !errors.Is(err, ErrRouteNotFound) {
		t.Errorf("error = %v, want ErrRouteNotFound", err)
	}
}
