package services

import (
	"errors"
	"strconv"

	"tutorhub-service/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrStudentNotFound = errors.New("student not found")
	ErrInvalidFee      = errors.New("invalid percentage value")
)

// AdminService covers student management and platform settings.
type AdminService struct {
	DB     *gorm.DB
	Helper *HelperService
}

func NewAdminService(db *gorm.DB, helper *HelperService) *AdminService {
	return &AdminService{DB: db, Helper: helper}
}

func (s *AdminService) ListStudents() ([]models.Student, error) {
	var students []models.Student
	err := s.DB.Where("is_verified = ?", true).Order("full_name").Find(&students).Error
	return students, err
}

func (s *AdminService) DeleteStudent(studentId int) error {
	res := s.DB.Where("id = ?", studentId).Delete(&models.Student{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStudentNotFound
	}
	return nil
}

func (s *AdminService) PlatformFee() float64 {
	return s.Helper.PlatformFeePercentage()
}

// SetPlatformFee upserts the fee setting. The fee applies to
// settlements from that point on; already-credited balances are not
// recomputed until the nightly reconciliation runs.
func (s *AdminService) SetPlatformFee(percentage float64) error {
	if percentage < 0 || percentage > 100 {
		return ErrInvalidFee
	}

	// ON DUPLICATE KEY upsert: MySQL reports zero changed rows for a
	// same-value UPDATE, so a rows-affected check cannot tell "row
	// missing" from "value unchanged".
	value := strconv.FormatFloat(percentage, 'f', -1, 64)
	setting := models.Setting{Key: models.SettingPlatformFee, Value: value}
	return s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "setting_key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"setting_value": value}),
	}).Create(&setting).Error
}
