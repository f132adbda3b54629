package handlers

import (
	"net/http"

	"tutorhub-service/internal/middleware"
	"tutorhub-service/internal/services"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	Bookings *services.BookingService
}

func NewBookingHandler(bookings *services.BookingService) *BookingHandler {
	return &BookingHandler{Bookings: bookings}
}

// MyBookings handles GET /api/bookings/my-bookings for students.
func (h *BookingHandler) MyBookings(c *gin.Context) {
	bookings, err := h.Bookings.StudentBookings(middleware.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch bookings"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// MyFacultyBookings handles GET /api/bookings/my-faculty-bookings.
func (h *BookingHandler) MyFacultyBookings(c *gin.Context) {
	bookings, err := h.Bookings.FacultyBookings(middleware.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch bookings"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

type CreateFreeBookingRequest struct {
	ServiceId int `json:"serviceId" binding:"required"`
}

// CreateFree handles POST /api/bookings/create-free.
func (h *BookingHandler) CreateFree(c *gin.Context) {
	var req CreateFreeBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	booking, err := h.Bookings.CreateFreeBooking(middleware.UserID(c), req.ServiceId)
	if err != nil {
		switch err {
		case services.ErrServiceNotFound:
			c.JSON(http.StatusNotFound, gin.H{"message": "Service not found"})
		case services.ErrDuplicateBooking:
			c.JSON(http.StatusBadRequest, gin.H{"message": "You have already booked this session."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Booking confirmed successfully!", "booking": booking})
}

type InitiatePaymentRequest struct {
	ServiceId int `json:"serviceId" binding:"required"`
}

// InitiatePayment handles POST /api/bookings/initiate-payment.
func (h *BookingHandler) InitiatePayment(c *gin.Context) {
	var req InitiatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	order, key, err := h.Bookings.InitiatePayment(middleware.UserID(c), req.ServiceId)
	if err != nil {
		if err == services.ErrServiceNotFound {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Service not found."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Payment initiation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "order": order, "key": key})
}

type VerifyPaymentRequest struct {
	PaymentId string `json:"razorpay_payment_id" binding:"required"`
	OrderId   string `json:"razorpay_order_id" binding:"required"`
	Signature string `json:"razorpay_signature" binding:"required"`
}

// VerifyPayment handles POST /api/bookings/verify-payment.
func (h *BookingHandler) VerifyPayment(c *gin.Context) {
	var req VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	err := h.Bookings.VerifyPayment(middleware.UserID(c), req.OrderId, req.PaymentId, req.Signature)
	if err != nil {
		switch err {
		case services.ErrInvalidSignature:
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid payment signature"})
		case services.ErrBookingNotFound:
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Booking not found for this order."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Payment verification failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Payment successful! Your session is confirmed."})
}
