package handlers

import (
	"net/http"
	"strconv"

	"tutorhub-service/internal/middleware"
	"tutorhub-service/internal/services"
	"tutorhub-service/pkg/common"

	"github.com/gin-gonic/gin"
)

type FacultyHandler struct {
	Faculty   *services.FacultyService
	Wallet    *services.WalletService
	Dashboard *services.DashboardService
}

func NewFacultyHandler(faculty *services.FacultyService, wallet *services.WalletService, dashboard *services.DashboardService) *FacultyHandler {
	return &FacultyHandler{Faculty: faculty, Wallet: wallet, Dashboard: dashboard}
}

// Stats handles GET /api/faculty/dashboard.
func (h *FacultyHandler) Stats(c *gin.Context) {
	stats, err := h.Dashboard.FacultyDashboard(middleware.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// MyProfile handles GET /api/faculty/me/details.
func (h *FacultyHandler) MyProfile(c *gin.Context) {
	details, err := h.Faculty.Details(middleware.UserID(c))
	if err != nil {
		if err == services.ErrFacultyNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "Faculty profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error"})
		return
	}
	c.JSON(http.StatusOK, details)
}

// UpdateMyProfile handles PUT /api/faculty/me/details.
func (h *FacultyHandler) UpdateMyProfile(c *gin.Context) {
	var req services.UpdateProfileDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	profile, err := h.Faculty.UpdateProfile(middleware.UserID(c), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// MyBalances handles GET /api/faculty/wallet.
func (h *FacultyHandler) MyBalances(c *gin.Context) {
	balances, err := h.Wallet.Balances(middleware.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse("Server Error", nil, http.StatusInternalServerError))
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(balances, "Wallet balances fetched successfully"))
}

// ListProfiles handles GET /api/faculty/profiles, the public tutor
// directory.
func (h *FacultyHandler) ListProfiles(c *gin.Context) {
	profiles, err := h.Faculty.ListProfiles(true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error"})
		return
	}
	c.JSON(http.StatusOK, profiles)
}

// ProfileById handles GET /api/faculty/profiles/:id.
func (h *FacultyHandler) ProfileById(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid faculty id"})
		return
	}

	details, err := h.Faculty.Details(id)
	if err != nil {
		if err == services.ErrFacultyNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "Faculty profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error"})
		return
	}
	c.JSON(http.StatusOK, details)
}
