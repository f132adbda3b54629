package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
	"time"

	"tutorhub-service/internal/models"
)

func seedService(t *testing.T, facultyId int, price float64) *models.Service {
	t.Helper()
	service := models.Service{
		FacultyId: facultyId,
		Title:     "Algebra crash course",
		Price:     price,
		Currency:  "USD",
	}
	if err := testDB.Create(&service).Error; err != nil {
		t.Fatalf("Failed to seed service: %v", err)
	}
	return &service
}

func seedRazorpayConfig(t *testing.T, secret string) {
	t.Helper()
	if err := testDB.Create(&models.PaymentMethod{
		DisplayName: "Razorpay",
		Provider:    "razorpay",
		BaseUrl:     "https://api.razorpay.com/v1",
		PublicKey:   "rzp_test_key",
		SecretKey:   secret,
		Status:      1,
	}).Error; err != nil {
		t.Fatalf("Failed to seed razorpay config: %v", err)
	}
}

func TestMinorUnits(t *testing.T) {
	cases := []struct {
		price float64
		want  int64
	}{
		{19.99, 1999},
		{0.29, 29},
		{100, 10000},
		{0.1, 10},
		{549.50, 54950},
		{0, 0},
	}
	for _, tc := range cases {
		if got := minorUnits(tc.price); got != tc.want {
			t.Errorf("minorUnits(%v) = %d, want %d", tc.price, got, tc.want)
		}
	}
}

func TestCreateFreeBooking(t *testing.T) {
	if testDB == nil {
		t.Skip("Database not configured")
	}
	defer cleanup()

	helper := NewHelperService(testDB)
	razorpay := NewRazorpayService(testDB, helper)
	svc := NewBookingService(testDB, razorpay, nil)

	service := seedService(t, 401, 0)

	booking, err := svc.CreateFreeBooking(501, service.ID)
	if err != nil {
		t.Fatalf("CreateFreeBooking failed: %v", err)
	}

	if booking.Status != models.BookingCompleted {
		t.Errorf("Expected completed status, got %s", booking.Status)
	}
	if booking.PaymentStatus != models.PaymentSuccessful {
		t.Errorf("Expected successful payment status, got %s", booking.PaymentStatus)
	}
	if booking.PriceAtBooking != 0 {
		t.Errorf("Expected snapshotted price 0, got %f", booking.PriceAtBooking)
	}

	// One booking per student per session.
	if _, err := svc.CreateFreeBooking(501, service.ID); err != ErrDuplicateBooking {
		t.Errorf("Expected ErrDuplicateBooking, got %v", err)
	}

	if _, err := svc.CreateFreeBooking(501, 99999); err != ErrServiceNotFound {
		t.Errorf("Expected ErrServiceNotFound, got %v", err)
	}
}

func TestVerifyPayment(t *testing.T) {
	if testDB == nil {
		t.Skip("Database not configured")
	}
	defer cleanup()

	secret := "rzp_test_secret"
	seedRazorpayConfig(t, secret)

	helper := NewHelperService(testDB)
	razorpay := NewRazorpayService(testDB, helper)
	svc := NewBookingService(testDB, razorpay, nil)

	service := seedService(t, 402, 100.00)

	booking := models.Booking{
		ServiceId:         service.ID,
		StudentId:         502,
		FacultyId:         402,
		PriceAtBooking:    100.00,
		CurrencyAtBooking: "USD",
		Status:            models.BookingPending,
		PaymentStatus:     models.PaymentPending,
		OrderId:           "order_test_1",
	}
	testDB.Create(&booking)

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte("order_test_1|pay_test_1"))
	signature := hex.EncodeToString(mac.Sum(nil))

	if err := svc.VerifyPayment(502, "order_test_1", "pay_test_1", "bogus"); err != ErrInvalidSignature {
		t.Errorf("Expected ErrInvalidSignature, got %v", err)
	}

	if err := svc.VerifyPayment(502, "order_test_1", "pay_test_1", signature); err != nil {
		t.Fatalf("VerifyPayment failed: %v", err)
	}

	var reloaded models.Booking
	testDB.First(&reloaded, booking.ID)
	if reloaded.Status != models.BookingCompleted || reloaded.PaymentStatus != models.PaymentSuccessful {
		t.Errorf("Expected completed/successful, got %s/%s", reloaded.Status, reloaded.PaymentStatus)
	}
	if reloaded.PaymentId != "pay_test_1" {
		t.Errorf("Expected payment id recorded, got %q", reloaded.PaymentId)
	}

	// Replayed callback finds no pending row to update.
	if err := svc.VerifyPayment(502, "order_test_1", "pay_test_1", signature); err != ErrBookingNotFound {
		t.Errorf("Expected ErrBookingNotFound on replay, got %v", err)
	}
}

func TestCancelStalePending(t *testing.T) {
	if testDB == nil {
		t.Skip("Database not configured")
	}
	defer cleanup()

	helper := NewHelperService(testDB)
	razorpay := NewRazorpayService(testDB, helper)
	svc := NewBookingService(testDB, razorpay, nil)

	service := seedService(t, 403, 50.00)

	stale := models.Booking{
		ServiceId:         service.ID,
		StudentId:         503,
		FacultyId:         403,
		PriceAtBooking:    50.00,
		CurrencyAtBooking: "USD",
		Status:            models.BookingPending,
		PaymentStatus:     models.PaymentPending,
		OrderId:           "order_stale",
	}
	testDB.Create(&stale)
	testDB.Model(&models.Booking{}).Where("id = ?", stale.ID).
		UpdateColumn("created_at", time.Now().Add(-time.Hour))

	fresh := models.Booking{
		ServiceId:         service.ID,
		StudentId:         504,
		FacultyId:         403,
		PriceAtBooking:    50.00,
		CurrencyAtBooking: "USD",
		Status:            models.BookingPending,
		PaymentStatus:     models.PaymentPending,
		OrderId:           "order_fresh",
	}
	testDB.Create(&fresh)

	if err := svc.CancelStalePending(); err != nil {
		t.Fatalf("CancelStalePending failed: %v", err)
	}

	var reloaded models.Booking
	testDB.First(&reloaded, stale.ID)
	if reloaded.Status != models.BookingFailed {
		t.Errorf("Expected stale booking failed, got %s", reloaded.Status)
	}

	testDB.First(&reloaded, fresh.ID)
	if reloaded.Status != models.BookingPending {
		t.Errorf("Expected fresh booking untouched, got %s", reloaded.Status)
	}
}
