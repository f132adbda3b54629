package consumers

import (
	"log"
	"os"
	"testing"

	"tutorhub-service/internal/models"
	"tutorhub-service/internal/services"
	"tutorhub-service/internal/tasks"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

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
		&models.Booking{},
		&models.WalletBalance{},
		&models.WalletTransaction{},
		&models.Setting{},
	)
}

func cleanup() {
	if testDB != nil {
		testDB.Exec("DELETE FROM wallet_transactions")
		testDB.Exec("DELETE FROM wallet_balances")
		testDB.Exec("DELETE FROM bookings")
		testDB.Exec("DELETE FROM settings")
	}
}

func TestMain(m *testing.M) {
	setup()
	os.Exit(m.Run())
}

func TestProcessBookingSettlement(t *testing.T) {
	if testDB == nil {
		t.Skip("Database not configured")
	}
	defer cleanup()

	helper := services.NewHelperService(testDB)
	wallet := services.NewWalletService(testDB, helper)
	processor := NewSettlementProcessor(testDB, helper, wallet)

	booking := models.Booking{
		ServiceId:         1,
		StudentId:         601,
		FacultyId:         701,
		PriceAtBooking:    100.00,
		CurrencyAtBooking: "USD",
		Status:            models.BookingCompleted,
		PaymentStatus:     models.PaymentSuccessful,
	}
	testDB.Create(&booking)

	if err := processor.ProcessBookingSettlement(tasks.BookingSettlementPayload{BookingId: booking.ID}); err != nil {
		t.Fatalf("ProcessBookingSettlement failed: %v", err)
	}

	// Default 10% fee on 100 leaves 90.
	balance, err := wallet.BalanceFor(701, "USD")
	if err != nil {
		t.Fatalf("BalanceFor failed: %v", err)
	}
	if balance != 90.00 {
		t.Errorf("Expected net credit of 90, got %f", balance)
	}

	var reloaded models.Booking
	testDB.First(&reloaded, booking.ID)
	if reloaded.Settled != 1 {
		t.Errorf("Expected settled flag set, got %d", reloaded.Settled)
	}

	// Redelivered task is a no-op.
	if err := processor.ProcessBookingSettlement(tasks.BookingSettlementPayload{BookingId: booking.ID}); err != nil {
		t.Fatalf("Redelivery failed: %v", err)
	}
	balance, _ = wallet.BalanceFor(701, "USD")
	if balance != 90.00 {
		t.Errorf("Expected balance unchanged at 90 after redelivery, got %f", balance)
	}
}

func TestProcessBookingSettlementSkipsIncomplete(t *testing.T) {
	if testDB == nil {
		t.Skip("Database not configured")
	}
	defer cleanup()

	helper := services.NewHelperService(testDB)
	wallet := services.NewWalletService(testDB, helper)
	processor := NewSettlementProcessor(testDB, helper, wallet)

	booking := models.Booking{
		ServiceId:         1,
		StudentId:         602,
		FacultyId:         702,
		PriceAtBooking:    100.00,
		CurrencyAtBooking: "USD",
		Status:            models.BookingPending,
		PaymentStatus:     models.PaymentPending,
	}
	testDB.Create(&booking)

	if err := processor.ProcessBookingSettlement(tasks.BookingSettlementPayload{BookingId: booking.ID}); err != nil {
		t.Fatalf("ProcessBookingSettlement failed: %v", err)
	}

	balance, _ := wallet.BalanceFor(702, "USD")
	if balance != 0 {
		t.Errorf("Expected no credit for pending booking, got %f", balance)
	}

	// Missing bookings are dropped, not retried.
	if err := processor.ProcessBookingSettlement(tasks.BookingSettlementPayload{BookingId: 99999}); err != nil {
		t.Errorf("Expected nil for missing booking, got %v", err)
	}
}

func TestMaskAccount(t *testing.T) {
	if got := maskAccount("000123456789"); got != "****6789" {
		t.Errorf("Expected ****6789, got %q", got)
	}
	if got := maskAccount("1234"); got != "1234" {
		t.Errorf("Expected short numbers unmasked, got %q", got)
	}
}
