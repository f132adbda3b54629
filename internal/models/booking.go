package models

import (
	"time"
)

const (
	BookingPending   = "pending"
	BookingCompleted = "completed"
	BookingFailed    = "failed"

	PaymentPending    = "pending"
	PaymentSuccessful = "successful"
	PaymentFailed     = "failed"
)

type Booking struct {
	ID                int       `gorm:"primaryKey;autoIncrement" json:"id"`
	ServiceId         int       `gorm:"column:service_id;not null;index:idx_booking_service" json:"service_id"`
	StudentId         int       `gorm:"column:student_id;not null;index:idx_booking_student" json:"student_id"`
	FacultyId         int       `gorm:"column:faculty_id;not null;index:idx_booking_faculty" json:"faculty_id"`
	PriceAtBooking    float64   `gorm:"column:price_at_booking;type:decimal(20,2);not null" json:"price_at_booking"`
	CurrencyAtBooking string    `gorm:"column:currency_at_booking;size:10;not null" json:"currency_at_booking"`
	Status            string    `gorm:"column:status;size:20;default:pending;index:idx_booking_status" json:"status"`
	PaymentStatus     string    `gorm:"column:payment_status;size:20;default:pending" json:"payment_status"`
	OrderId           string    `gorm:"column:order_id;size:100;index:idx_booking_order" json:"order_id"`
	PaymentId         string    `gorm:"column:payment_id;size:100" json:"payment_id"`
	Signature         string    `gorm:"column:signature;size:255" json:"-"`
	// Settled flips to 1 exactly once, when the faculty wallet has been
	// credited for this booking.
	Settled   int       `gorm:"column:settled;default:0" json:"settled"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Booking) TableName() string {
	return "bookings"
}
