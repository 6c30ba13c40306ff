package users

import (
	"context"
	"errors"
	"regexp"
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

func TestGetByUsername(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	rows := sqlmock.NewRows([]string{"id", "username", "password_hash", "loyalty_points", "role"}).
		AddRow(1, "anna", "$2a$10$hash", 150, "USER")

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE username = $1`)).
		WithArgs("anna", 1).
		WillReturnRows(rows)

	user, err := repo.GetByUsername(context.Background(), "anna")
	if err != nil {
		t.Fatalf("GetByUsername failed: %v", err)
	}
	if user.ID != 1 || user.Username != "anna" || user.LoyaltyPoints != 150 {
		t.Errorf("unexpected user: %+v", user)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestGetByUsernameNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE username = $1`)).
		WithArgs("ghost", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}))

	_, err := repo.GetByUsername(context.Background(), "ghost")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("error = %v, want ErrUserNotFound", err)
	}
}

func TestAdjustLoyaltyPointsClampsAtZero(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	rows := sqlmock.NewRows([]string{"id", "username", "password_hash", "loyalty_points", "role"}).
		AddRow(1, "anna", "$2a$10$hash", 30, "USER")

	mock.ExpectBegin()
	// The row must be locked for the duration of the read-modify-write.
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE id = $1 ORDER BY "users"."id" LIMIT $2 FOR UPDATE`)).
		WithArgs(1, 1).
		WillReturnRows(rows)
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "users" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	user, err := repo.AdjustLoyaltyPoints(context.Background(), 1, -100)
	if err != nil {
		t.Fatalf("AdjustLoyaltyPoints failed: %v", err)
	}
	if user.LoyaltyPoints != 0 {
		t.Errorf("loyalty points = %d, want 0", user.LoyaltyPoints)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}
