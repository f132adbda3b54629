package handlers

import (
	"net/http"
	"strconv"

	"tutorhub-service/internal/services"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	Admin     *services.AdminService
	Faculty   *services.FacultyService
	Dashboard *services.DashboardService
}

func NewAdminHandler(admin *services.AdminService, faculty *services.FacultyService, dashboard *services.DashboardService) *AdminHandler {
	return &AdminHandler{Admin: admin, Faculty: faculty, Dashboard: dashboard}
}

// Stats handles GET /api/admin/stats.
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.Dashboard.AdminDashboard()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ListFaculty handles GET /api/admin/faculty.
func (h *AdminHandler) ListFaculty(c *gin.Context) {
	profiles, err := h.Faculty.ListProfiles(false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, profiles)
}

// FacultyDetails handles GET /api/admin/faculty/:id/details.
func (h *AdminHandler) FacultyDetails(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid faculty id"})
		return
	}

	details, err := h.Faculty.Details(id)
	if err != nil {
		if err == services.ErrFacultyNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "Faculty not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error"})
		return
	}
	c.JSON(http.StatusOK, details)
}

// UpdateFaculty handles PUT /api/admin/faculty/:id.
func (h *AdminHandler) UpdateFaculty(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid faculty id"})
		return
	}

	var req services.UpdateProfileDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	profile, err := h.Faculty.UpdateProfile(id, req)
	if err != nil {
		if err == services.ErrFacultyNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "Faculty not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// DeleteFaculty handles DELETE /api/admin/faculty/:id.
func (h *AdminHandler) DeleteFaculty(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid faculty id"})
		return
	}

	if err := h.Faculty.Delete(id); err != nil {
		if err == services.ErrFacultyNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "Faculty profile not found."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Faculty member and associated user account deleted successfully."})
}

// ListStudents handles GET /api/admin/students.
func (h *AdminHandler) ListStudents(c *gin.Context) {
	students, err := h.Admin.ListStudents()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error"})
		return
	}
	c.JSON(http.StatusOK, students)
}

// DeleteStudent handles DELETE /api/admin/students/:id.
func (h *AdminHandler) DeleteStudent(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid student id"})
		return
	}

	if err := h.Admin.DeleteStudent(id); err != nil {
		if err == services.ErrStudentNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "Student not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Student deleted successfully."})
}

// GetPlatformFee handles GET /api/admin/settings/platform-fee.
func (h *AdminHandler) GetPlatformFee(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"platformFeePercentage": h.Admin.PlatformFee()})
}

type SetPlatformFeeRequest struct {
	Percentage *float64 `json:"percentage" binding:"required"`
}

// SetPlatformFee handles PUT /api/admin/settings/platform-fee.
func (h *AdminHandler) SetPlatformFee(c *gin.Context) {
	var req SetPlatformFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid percentage value."})
		return
	}

	if err := h.Admin.SetPlatformFee(*req.Percentage); err != nil {
		if err == services.ErrInvalidFee {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid percentage value."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Platform fee updated successfully."})
}
