package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"tutorhub-service/internal/middleware"
	"tutorhub-service/internal/models"
	"tutorhub-service/internal/services"
	"tutorhub-service/pkg/common"

	"github.com/gin-gonic/gin"
)

type WithdrawalHandler struct {
	Withdrawals *services.WithdrawalService
	Faculty     *services.FacultyService
}

func NewWithdrawalHandler(withdrawals *services.WithdrawalService, faculty *services.FacultyService) *WithdrawalHandler {
	return &WithdrawalHandler{Withdrawals: withdrawals, Faculty: faculty}
}

type CreateWithdrawalRequest struct {
	Amount         float64               `json:"amount"`
	Currency       string                `json:"currency"`
	PaymentDetails models.PaymentDetails `json:"paymentDetails"`
}

// Create handles POST /api/faculty/withdrawals.
func (h *WithdrawalHandler) Create(c *gin.Context) {
	var req CreateWithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	facultyId := middleware.UserID(c)

	// When the body omits the payout destination, fall back to the
	// financials on file in the faculty profile.
	if req.PaymentDetails.Method == "" {
		if snapshot, err := h.Faculty.PayoutSnapshot(facultyId); err == nil {
			req.PaymentDetails = snapshot
		}
	}

	request, err := h.Withdrawals.CreateRequest(facultyId, req.Amount, req.Currency, req.PaymentDetails)
	if err != nil {
		switch err {
		case services.ErrInvalidRequest:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data."})
		case services.ErrInsufficientFunds:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Insufficient funds."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create withdrawal request"})
		}
		return
	}

	c.JSON(http.StatusCreated, request)
}

// ListPending handles GET /api/admin/withdrawals.
func (h *WithdrawalHandler) ListPending(c *gin.Context) {
	requests, err := h.Withdrawals.ListPending()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch withdrawals"})
		return
	}
	c.JSON(http.StatusOK, requests)
}

type ProcessWithdrawalRequest struct {
	Status string `json:"status"`
}

// Process handles PUT /api/admin/withdrawals/:id.
func (h *WithdrawalHandler) Process(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request id"})
		return
	}

	var req ProcessWithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.Withdrawals.Process(id, req.Status); err != nil {
		switch err {
		case services.ErrInvalidStatus:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status update."})
		case services.ErrRequestNotFoundOrDone:
			c.JSON(http.StatusNotFound, gin.H{"error": "Request not found or already processed."})
		case services.ErrInsufficientWalletBalance:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Wallet balance is insufficient. Cannot approve."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not process withdrawal request"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Request has been %s.", req.Status)})
}

// History handles GET /api/admin/withdrawals/history with optional
// status, page and limit query params.
func (h *WithdrawalHandler) History(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	total, list, err := h.Withdrawals.ListRequests(services.ListRequestsDTO{
		Status: c.Query("status"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch withdrawals"})
		return
	}

	c.JSON(http.StatusOK, common.PaginateResponse(list, total, page, limit, "Withdrawal requests fetched successfully"))
}

// MyRequests handles GET /api/faculty/withdrawals.
func (h *WithdrawalHandler) MyRequests(c *gin.Context) {
	facultyId := middleware.UserID(c)
	list, err := h.Withdrawals.FacultyRequests(facultyId)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch withdrawals"})
		return
	}
	c.JSON(http.StatusOK, list)
}
