package services

import (
	"log"
	"os"
	"testing"

	"tutorhub-service/internal/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NOTE: These tests require a running MySQL instance reachable through
// DATABASE_URL. Without it every DB-backed test skips.

var testDB *gorm.DB

func setup() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Println("Skipping DB tests: DATABASE_URL not set")
		return
	}

	var err error
	testDB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		return
	}

	testDB.AutoMigrate(
		&models.Faculty{},
		&models.FacultyProfile{},
		&models.Student{},
		&models.Service{},
		&models.Booking{},
		&models.WalletBalance{},
		&models.WithdrawalRequest{},
		&models.WalletTransaction{},
		&models.Setting{},
		&models.PaymentMethod{},
	)
}

func cleanup() {
	if testDB != nil {
		testDB.Exec("DELETE FROM wallet_transactions")
		testDB.Exec("DELETE FROM withdrawal_requests")
		testDB.Exec("DELETE FROM wallet_balances")
		testDB.Exec("DELETE FROM bookings")
		testDB.Exec("DELETE FROM services")
		testDB.Exec("DELETE FROM students")
		testDB.Exec("DELETE FROM faculty_profiles")
		testDB.Exec("DELETE FROM faculties")
		testDB.Exec("DELETE FROM settings")
		testDB.Exec("DELETE FROM payment_methods")
	}
}

func TestMain(m *testing.M) {
	setup()
	code := m.Run()
	os.Exit(code)
}
