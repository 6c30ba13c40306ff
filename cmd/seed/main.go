package main

import (
	"fmt"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"travely/internal/catalog"
	"travely/internal/discounts"
	"travely/internal/shared/config"
	"travely/internal/shared/database"
	"travely/internal/users"
)

type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("🌱 Starting Travely Database Seeder...")

	cfg := config.Load()

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}

	fmt.Println("\n🧹 Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("✅ Database cleaned successfully")

	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("✅ Database seeded successfully")

	fmt.Println("\n🎉 Seeding completed! Database is ready for testing.")
}

// CleanDatabase truncates all tables in reverse dependency order
func (s *Seeder) CleanDatabase() error {
	tables := []string{
		"bookings",
		"discounts",
		"routes",
		"users",
	}

	pg := s.db.GetPostgreSQL()
	for _, table := range tables {
		if err := pg.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
			return fmt.Errorf("failed to truncate %s: %w", table, err)
		}
	}
	return nil
}

func (s *Seeder) SeedAll() error {
	if err := s.seedUsers(); err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}
	if err := s.seedRoutes(); err != nil {
		return fmt.Errorf("failed to seed routes: %w", err)
	}
	if err := s.seedDiscounts(); err != nil {
		return fmt.Errorf("failed to seed discounts: %w", err)
	}
	return nil
}

func (s *Seeder) seedUsers() error {
	fmt.Println("  👤 Seeding users...")

	seedUsers := []struct {
		username string
		password string
		points   int
		role     users.Role
	}{
		{"admin", "admin123", 0, users.RoleAdmin},
		{"anna", "password", 150, users.RoleUser},
		{"john", "password", 50, users.RoleUser},
		{"nikitha", "password", 300, users.RoleUser},
	}

	pg := s.db.GetPostgreSQL()
	for _, u := range seedUsers {
		hashed, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user := users.User{
			Username:      u.username,
			PasswordHash:  string(hashed),
			LoyaltyPoints: u.points,
			Role:          u.role,
		}
		if err := pg.Create(&user).Error; err != nil {
			return err
		}
		fmt.Printf("    created %s (%s, %d points)\n", u.username, u.role, u.points)
	}
	return nil
}

func (s *Seeder) seedRoutes() error {
	fmt.Println("  🚌 Seeding routes...")

	departure := time.Now().UTC().AddDate(0, 0, 14).Truncate(time.Hour)

	seedRoutes := []catalog.Route{
		{Origin: "Hyderabad", Destination: "Bangalore", TransportType: "bus", DepartureTime: departure, BasePrice: 100.00, SeatsTotal: 2, SeatsAvailable: 2},
		{Origin: "Mumbai", Destination: "Delhi", TransportType: "plane", DepartureTime: departure.Add(4 * time.Hour), BasePrice: 500.00, SeatsTotal: 100, SeatsAvailable: 100},
		{Origin: "Chennai", Destination: "Kochi", TransportType: "train", DepartureTime: departure.Add(8 * time.Hour), BasePrice: 250.00, SeatsTotal: 60, SeatsAvailable: 60},
		{Origin: "Delhi", Destination: "Jaipur", TransportType: "bus", DepartureTime: departure.Add(24 * time.Hour), BasePrice: 150.00, SeatsTotal: 40, SeatsAvailable: 40},
	}

	pg := s.db.GetPostgreSQL()
	for i := range seedRoutes {
		if err := pg.Create(&seedRoutes[i]).Error; err != nil {
			return err
		}
		fmt.Printf("    created %s -> %s (%s, %.2f, %d seats)\n",
			seedRoutes[i].Origin, seedRoutes[i].Destination,
			seedRoutes[i].TransportType, seedRoutes[i].BasePrice, seedRoutes[i].SeatsTotal)
	}
	return nil
}

func (s *Seeder) seedDiscounts() error {
	fmt.Println("  💸 Seeding discounts...")

	seedDiscounts := []discounts.Discount{
		{Name: "Loyalty Silver", Percentage: 10, MinPoints: 100},
		{Name: "Loyalty Gold", Percentage: 20, MinPoints: 250},
		{Name: "Adult Saver", Percentage: 15, UserType: "adult", MinPoints: 0},
		{Name: "Early Bird", Percentage: 5, MinPoints: 0},
	}

	pg := s.db.GetPostgreSQL()
	for i := range seedDiscounts {
		if err := pg.Create(&seedDiscounts[i]).Error; err != nil {
			return err
		}
		fmt.Printf("    created %s (%.0f%%, min %d points)\n",
			seedDiscounts[i].Name, seedDiscounts[i].Percentage, seedDiscounts[i].MinPoints)
	}
	return nil
}
