package services

import (
	"testing"

	"tutorhub-service/internal/models"
)

func TestCreditCreatesWalletOnFirstUse(t *testing.T) {
	if testDB == nil {
		t.Skip("Database not configured")
	}
	defer cleanup()

	helper := NewHelperService(testDB)
	svc := NewWalletService(testDB, helper)

	if err := svc.Credit(301, "USD", 90.00, "Booking", "booking:1"); err != nil {
		t.Fatalf("Credit failed: %v", err)
	}

	balance, err := svc.BalanceFor(301, "USD")
	if err != nil {
		t.Fatalf("BalanceFor failed: %v", err)
	}
	if balance != 90.00 {
		t.Errorf("Expected balance 90, got %f", balance)
	}

	// Second credit increments the existing row.
	if err := svc.Credit(301, "USD", 10.00, "Booking", "booking:2"); err != nil {
		t.Fatalf("Second credit failed: %v", err)
	}
	balance, _ = svc.BalanceFor(301, "USD")
	if balance != 100.00 {
		t.Errorf("Expected balance 100, got %f", balance)
	}

	// Currencies never mix.
	if err := svc.Credit(301, "INR", 500.00, "Booking", "booking:3"); err != nil {
		t.Fatalf("INR credit failed: %v", err)
	}
	balance, _ = svc.BalanceFor(301, "INR")
	if balance != 500.00 {
		t.Errorf("Expected INR balance 500, got %f", balance)
	}
	balance, _ = svc.BalanceFor(301, "USD")
	if balance != 100.00 {
		t.Errorf("Expected USD balance unchanged at 100, got %f", balance)
	}

	var entries int64
	testDB.Model(&models.WalletTransaction{}).Where("faculty_id = ?", 301).Count(&entries)
	if entries != 3 {
		t.Errorf("Expected 3 ledger entries, got %d", entries)
	}
}

func TestBalanceForMissingWallet(t *testing.T) {
	if testDB == nil {
		t.Skip("Database not configured")
	}

	helper := NewHelperService(testDB)
	svc := NewWalletService(testDB, helper)

	balance, err := svc.BalanceFor(999999, "USD")
	if err != nil {
		t.Fatalf("BalanceFor failed: %v", err)
	}
	if balance != 0 {
		t.Errorf("Expected zero for missing wallet, got %f", balance)
	}
}

func TestCreditIgnoresNonPositiveAmounts(t *testing.T) {
	if testDB == nil {
		t.Skip("Database not configured")
	}
	defer cleanup()

	helper := NewHelperService(testDB)
	svc := NewWalletService(testDB, helper)

	if err := svc.Credit(302, "USD", 0, "Booking", ""); err != nil {
		t.Fatalf("Zero credit returned error: %v", err)
	}
	if err := svc.Credit(302, "USD", -5, "Booking", ""); err != nil {
		t.Fatalf("Negative credit returned error: %v", err)
	}

	balance, _ := svc.BalanceFor(302, "USD")
	if balance != 0 {
		t.Errorf("Expected no wallet mutation, got %f", balance)
	}
}

func TestReconcileRepairsDrift(t *testing.T) {
	if testDB == nil {
		t.Skip("Database not configured")
	}
	defer cleanup()

	helper := NewHelperService(testDB)
	svc := NewWalletService(testDB, helper)

	// One completed 200 USD booking at the default 10% fee, no
	// withdrawals: the wallet should hold 180.
	testDB.Create(&models.Booking{
		ServiceId:         1,
		StudentId:         1,
		FacultyId:         303,
		PriceAtBooking:    200.00,
		CurrencyAtBooking: "USD",
		Status:            models.BookingCompleted,
		PaymentStatus:     models.PaymentSuccessful,
		Settled:           1,
	})

	// Drifted wallet row.
	testDB.Create(&models.WalletBalance{FacultyId: 303, Currency: "USD", Amount: 250.00})

	svc.Reconcile()

	balance, _ := svc.BalanceFor(303, "USD")
	if balance != 180.00 {
		t.Errorf("Expected reconciled balance 180, got %f", balance)
	}
}

func TestReconcileAccountsForWithdrawals(t *testing.T) {
	if testDB == nil {
		t.Skip("Database not configured")
	}
	defer cleanup()

	helper := NewHelperService(testDB)
	svc := NewWalletService(testDB, helper)

	testDB.Create(&models.Booking{
		ServiceId:         1,
		StudentId:         1,
		FacultyId:         304,
		PriceAtBooking:    100.00,
		CurrencyAtBooking: "USD",
		Status:            models.BookingCompleted,
		PaymentStatus:     models.PaymentSuccessful,
		Settled:           1,
	})
	testDB.Create(&models.WithdrawalRequest{
		FacultyId:      304,
		Amount:         50.00,
		Currency:       "USD",
		Status:         models.WithdrawalApproved,
		PaymentDetails: "{}",
	})
	// Missing wallet row: Reconcile creates it at the expected value.
	svc.Reconcile()

	balance, _ := svc.BalanceFor(304, "USD")
	if balance != 40.00 {
		t.Errorf("Expected 100*0.9 - 50 = 40, got %f", balance)
	}
}
