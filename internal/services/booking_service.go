package services

import (
	"errors"
	"log"
	"math"
	"time"

	"tutorhub-service/internal/models"
	"tutorhub-service/internal/tasks"
	"tutorhub-service/pkg/common"

	"github.com/hibiken/asynq"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

var (
	ErrServiceNotFound  = errors.New("service not found")
	ErrDuplicateBooking = errors.New("you have already booked this session")
	ErrInvalidSignature = errors.New("invalid payment signature")
	ErrBookingNotFound  = errors.New("booking not found for this order")
)

type BookingService struct {
	DB       *gorm.DB
	Razorpay *RazorpayService
	Queue    *asynq.Client
}

func NewBookingService(db *gorm.DB, razorpay *RazorpayService, queue *asynq.Client) *BookingService {
	return &BookingService{DB: db, Razorpay: razorpay, Queue: queue}
}

// BookingView is a booking joined with the session title and the
// counterparty's name for dashboard listings.
type BookingView struct {
	models.Booking
	ServiceTitle     string `json:"service_title"`
	CounterpartyName string `json:"counterparty_name"`
}

func (s *BookingService) StudentBookings(studentId int) ([]BookingView, error) {
	var results []BookingView
	err := s.DB.Table("bookings").
		Select("bookings.*, services.title AS service_title, faculties.full_name AS counterparty_name").
		Joins("LEFT JOIN services ON services.id = bookings.service_id").
		Joins("LEFT JOIN faculties ON faculties.id = bookings.faculty_id").
		Where("bookings.student_id = ?", studentId).
		Order("bookings.created_at DESC").
		Scan(&results).Error
	return results, err
}

func (s *BookingService) FacultyBookings(facultyId int) ([]BookingView, error) {
	var results []BookingView
	err := s.DB.Table("bookings").
		Select("bookings.*, services.title AS service_title, students.full_name AS counterparty_name").
		Joins("LEFT JOIN services ON services.id = bookings.service_id").
		Joins("LEFT JOIN students ON students.id = bookings.student_id").
		Where("bookings.faculty_id = ?", facultyId).
		Order("bookings.created_at DESC").
		Scan(&results).Error
	return results, err
}

// CreateFreeBooking books a session without going through the payment
// gateway. The booking completes instantly; a student can book a given
// session only once.
func (s *BookingService) CreateFreeBooking(studentId, serviceId int) (*models.Booking, error) {
	var service models.Service
	if err := s.DB.Where("id = ?", serviceId).First(&service).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}

	var count int64
	if err := s.DB.Model(&models.Booking{}).
		Where("service_id = ? AND student_id = ?", serviceId, studentId).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateBooking
	}

	booking := models.Booking{
		ServiceId:         serviceId,
		StudentId:         studentId,
		FacultyId:         service.FacultyId,
		PriceAtBooking:    service.Price,
		CurrencyAtBooking: service.Currency,
		Status:            models.BookingCompleted,
		PaymentStatus:     models.PaymentSuccessful,
	}
	if err := s.DB.Create(&booking).Error; err != nil {
		return nil, err
	}

	if service.Price > 0 {
		s.enqueueSettlement(booking.ID)
	}

	return &booking, nil
}

// InitiatePayment creates a gateway order and a matching pending
// booking. Returns the order payload plus the public key the checkout
// widget needs.
func (s *BookingService) InitiatePayment(studentId, serviceId int) (map[string]interface{}, string, error) {
	var service models.Service
	if err := s.DB.Where("id = ?", serviceId).First(&service).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, "", ErrServiceNotFound
		}
		return nil, "", err
	}

	order, err := s.Razorpay.CreateOrder(minorUnits(service.Price), service.Currency, common.GenerateReceiptNo())
	if err != nil {
		return nil, "", err
	}

	orderId, _ := order["id"].(string)

	booking := models.Booking{
		ServiceId:         serviceId,
		StudentId:         studentId,
		FacultyId:         service.FacultyId,
		PriceAtBooking:    service.Price,
		CurrencyAtBooking: service.Currency,
		Status:            models.BookingPending,
		PaymentStatus:     models.PaymentPending,
		OrderId:           orderId,
	}
	if err := s.DB.Create(&booking).Error; err != nil {
		return nil, "", err
	}

	key, err := s.Razorpay.PublicKey()
	if err != nil {
		return nil, "", err
	}

	return order, key, nil
}

// VerifyPayment confirms the checkout callback. The booking update is
// conditional on the payment still being pending, so a replayed
// callback cannot settle twice.
func (s *BookingService) VerifyPayment(studentId int, orderId, paymentId, signature string) error {
	ok, err := s.Razorpay.VerifyPaymentSignature(orderId, paymentId, signature)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidSignature
	}

	res := s.DB.Model(&models.Booking{}).
		Where("student_id = ? AND order_id = ? AND payment_status = ?", studentId, orderId, models.PaymentPending).
		Updates(map[string]interface{}{
			"status":         models.BookingCompleted,
			"payment_status": models.PaymentSuccessful,
			"payment_id":     paymentId,
			"signature":      signature,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrBookingNotFound
	}

	var booking models.Booking
	if err := s.DB.Where("student_id = ? AND order_id = ?", studentId, orderId).First(&booking).Error; err != nil {
		return err
	}
	s.enqueueSettlement(booking.ID)

	return nil
}

// minorUnits converts a price to the gateway's minor unit (paise for
// INR, cents for USD). Rounded, not truncated: 19.99 stored as a
// float64 is fractionally below 1999 cents.
func minorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}

func (s *BookingService) enqueueSettlement(bookingId int) {
	if s.Queue == nil {
		return
	}
	task, err := tasks.NewBookingSettlementTask(tasks.BookingSettlementPayload{BookingId: bookingId})
	if err != nil {
		log.Printf("Failed to build settlement task for booking %d: %v", bookingId, err)
		return
	}
	if _, err := s.Queue.Enqueue(task); err != nil {
		log.Printf("Failed to enqueue settlement task for booking %d: %v", bookingId, err)
	}
}

// CancelStalePending fails bookings whose checkout was started but
// never confirmed. Gateway orders expire, so half an hour is generous.
func (s *BookingService) CancelStalePending() error {
	cutoff := time.Now().Add(-30 * time.Minute)
	res := s.DB.Model(&models.Booking{}).
		Where("status = ? AND payment_status = ? AND created_at < ?", models.BookingPending, models.PaymentPending, cutoff).
		Updates(map[string]interface{}{
			"status":         models.BookingFailed,
			"payment_status": models.PaymentFailed,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		log.Printf("Cancelled %d stale pending bookings", res.RowsAffected)
	}
	return nil
}

// StartScheduler sweeps stale pending bookings every 10 minutes.
func (s *BookingService) StartScheduler() {
	c := cron.New()
	_, err := c.AddFunc("*/10 * * * *", func() {
		log.Println("Running scheduled stale booking sweep...")
		if err := s.CancelStalePending(); err != nil {
			log.Printf("Error in CancelStalePending: %v", err)
		}
	})
	if err != nil {
		log.Printf("Error scheduling stale booking sweep: %v", err)
		return
	}
	c.Start()
	log.Println("Booking Scheduler started (Every 10 minutes)")
}
