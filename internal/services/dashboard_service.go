package services

import (
	"time"

	"tutorhub-service/internal/models"

	"gorm.io/gorm"
)

type DashboardService struct {
	DB     *gorm.DB
	Wallet *WalletService
}

func NewDashboardService(db *gorm.DB, wallet *WalletService) *DashboardService {
	return &DashboardService{DB: db, Wallet: wallet}
}

type CurrencyTotal struct {
	Currency string  `json:"currency"`
	Total    float64 `json:"total"`
}

type BucketCount struct {
	Bucket int   `json:"bucket"`
	Count  int64 `json:"count"`
}

type AdminStats struct {
	TotalStudents     int64           `json:"totalStudents"`
	TotalFaculty      int64           `json:"totalFaculty"`
	TotalBookings     int64           `json:"totalBookings"`
	RevenueByCurrency []CurrencyTotal `json:"revenueByCurrency"`
	WeeklyBookings    []BucketCount   `json:"weeklyBookings"`
	MonthlySignups    []BucketCount   `json:"monthlySignups"`
}

// AdminDashboard aggregates the figures the admin landing page charts:
// verified account counts, completed-booking revenue per currency,
// bookings per weekday over the last 7 days and verified student
// signups per month over the last 6 months.
func (s *DashboardService) AdminDashboard() (*AdminStats, error) {
	stats := &AdminStats{}

	if err := s.DB.Model(&models.Student{}).Where("is_verified = ?", true).Count(&stats.TotalStudents).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Faculty{}).Where("is_verified = ?", true).Count(&stats.TotalFaculty).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Booking{}).Where("status = ?", models.BookingCompleted).Count(&stats.TotalBookings).Error; err != nil {
		return nil, err
	}

	err := s.DB.Model(&models.Booking{}).
		Select("currency_at_booking AS currency, COALESCE(SUM(price_at_booking), 0) AS total").
		Where("status = ?", models.BookingCompleted).
		Group("currency_at_booking").
		Scan(&stats.RevenueByCurrency).Error
	if err != nil {
		return nil, err
	}

	sevenDaysAgo := time.Now().AddDate(0, 0, -7)

	// DAYOFWEEK: 1=Sunday .. 7=Saturday.
	err = s.DB.Model(&models.Booking{}).
		Select("DAYOFWEEK(created_at) AS bucket, COUNT(*) AS count").
		Where("created_at >= ?", sevenDaysAgo).
		Group("DAYOFWEEK(created_at)").
		Order("bucket").
		Scan(&stats.WeeklyBookings).Error
	if err != nil {
		return nil, err
	}

	sixMonthsAgo := time.Now().AddDate(0, -6, 0)

	err = s.DB.Model(&models.Student{}).
		Select("MONTH(created_at) AS bucket, COUNT(*) AS count").
		Where("created_at >= ? AND is_verified = ?", sixMonthsAgo, true).
		Group("MONTH(created_at)").
		Order("bucket").
		Scan(&stats.MonthlySignups).Error
	if err != nil {
		return nil, err
	}

	return stats, nil
}

type RecentEarning struct {
	BookingId int       `json:"id"`
	Student   string    `json:"student"`
	Topic     string    `json:"topic"`
	Earnings  float64   `json:"earnings"`
	Currency  string    `json:"currency"`
	Date      time.Time `json:"date"`
}

type FacultyStats struct {
	TotalEarnings       []CurrencyTotal        `json:"totalEarnings"`
	WeeklyEarnings      []CurrencyTotal        `json:"weeklyEarnings"`
	AvailableToWithdraw []models.WalletBalance `json:"availableToWithdraw"`
	CompletedSessions   int64                  `json:"completedSessions"`
	UniqueStudents      int64                  `json:"uniqueStudents"`
	RecentEarnings      []RecentEarning        `json:"recentEarnings"`
}

// FacultyDashboard builds the tutor's earnings overview. The
// available-to-withdraw figures come from the materialized wallet
// rows, which settlement and approvals keep in step with the booking
// history.
func (s *DashboardService) FacultyDashboard(facultyId int) (*FacultyStats, error) {
	stats := &FacultyStats{}

	err := s.DB.Model(&models.Booking{}).
		Select("currency_at_booking AS currency, COALESCE(SUM(price_at_booking), 0) AS total").
		Where("faculty_id = ? AND status = ?", facultyId, models.BookingCompleted).
		Group("currency_at_booking").
		Scan(&stats.TotalEarnings).Error
	if err != nil {
		return nil, err
	}

	oneWeekAgo := time.Now().AddDate(0, 0, -7)
	err = s.DB.Model(&models.Booking{}).
		Select("currency_at_booking AS currency, COALESCE(SUM(price_at_booking), 0) AS total").
		Where("faculty_id = ? AND status = ? AND created_at >= ?", facultyId, models.BookingCompleted, oneWeekAgo).
		Group("currency_at_booking").
		Scan(&stats.WeeklyEarnings).Error
	if err != nil {
		return nil, err
	}

	stats.AvailableToWithdraw, err = s.Wallet.Balances(facultyId)
	if err != nil {
		return nil, err
	}

	err = s.DB.Model(&models.Booking{}).
		Where("faculty_id = ? AND status = ?", facultyId, models.BookingCompleted).
		Count(&stats.CompletedSessions).Error
	if err != nil {
		return nil, err
	}

	err = s.DB.Model(&models.Booking{}).
		Select("COUNT(DISTINCT student_id)").
		Where("faculty_id = ? AND status = ?", facultyId, models.BookingCompleted).
		Scan(&stats.UniqueStudents).Error
	if err != nil {
		return nil, err
	}

	err = s.DB.Table("bookings").
		Select("bookings.id AS booking_id, students.full_name AS student, services.title AS topic, bookings.price_at_booking AS earnings, bookings.currency_at_booking AS currency, bookings.created_at AS date").
		Joins("LEFT JOIN students ON students.id = bookings.student_id").
		Joins("LEFT JOIN services ON services.id = bookings.service_id").
		Where("bookings.faculty_id = ? AND bookings.status = ?", facultyId, models.BookingCompleted).
		Order("bookings.created_at DESC").
		Limit(5).
		Scan(&stats.RecentEarnings).Error
	if err != nil {
		return nil, err
	}

	return stats, nil
}
