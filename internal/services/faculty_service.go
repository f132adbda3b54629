package services

import (
	"errors"

	"tutorhub-service/internal/models"

	"gorm.io/gorm"
)

var ErrFacultyNotFound = errors.New("faculty not found")

type FacultyService struct {
	DB *gorm.DB
}

func NewFacultyService(db *gorm.DB) *FacultyService {
	return &FacultyService{DB: db}
}

// FacultyListing joins a profile with its account fields for the
// admin management table and the public tutor directory.
type FacultyListing struct {
	models.FacultyProfile
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

func (s *FacultyService) ListProfiles(verifiedOnly bool) ([]FacultyListing, error) {
	var results []FacultyListing

	query := s.DB.Table("faculty_profiles").
		Select("faculty_profiles.*, faculties.full_name, faculties.email").
		Joins("LEFT JOIN faculties ON faculties.id = faculty_profiles.faculty_id")
	if verifiedOnly {
		query = query.Where("faculties.is_verified = ?", true)
	}

	err := query.Order("faculties.full_name").Scan(&results).Error
	return results, err
}

type FacultyDetails struct {
	FacultyListing
	TotalBookings int64 `json:"totalBookings"`
}

// Details returns one faculty's joined profile plus their lifetime
// booking count.
func (s *FacultyService) Details(facultyId int) (*FacultyDetails, error) {
	var listing FacultyListing
	err := s.DB.Table("faculty_profiles").
		Select("faculty_profiles.*, faculties.full_name, faculties.email").
		Joins("LEFT JOIN faculties ON faculties.id = faculty_profiles.faculty_id").
		Where("faculty_profiles.faculty_id = ?", facultyId).
		Scan(&listing).Error
	if err != nil {
		return nil, err
	}
	if listing.FacultyId == 0 {
		return nil, ErrFacultyNotFound
	}

	details := &FacultyDetails{FacultyListing: listing}
	err = s.DB.Model(&models.Booking{}).
		Where("faculty_id = ?", facultyId).
		Count(&details.TotalBookings).Error
	if err != nil {
		return nil, err
	}

	return details, nil
}

type UpdateProfileDTO struct {
	FullName      *string `json:"full_name"`
	Title         *string `json:"title"`
	Education     *string `json:"education"`
	Bio           *string `json:"bio"`
	Address       *string `json:"address"`
	ContactNumber *string `json:"contact_number"`
	ProfileImage  *string `json:"profile_image"`
	ExpertiseTags *string `json:"expertise_tags"`
	IsAvailable   *bool   `json:"is_available"`

	PayoutMethod      *string `json:"payout_method"`
	PaypalEmail       *string `json:"paypal_email"`
	BankAccountName   *string `json:"bank_account_name"`
	BankAccountNumber *string `json:"bank_account_number"`
	BankRoutingNumber *string `json:"bank_routing_number"`
	BankIfscCode      *string `json:"bank_ifsc_code"`
	BranchName        *string `json:"branch_name"`
}

// UpdateProfile applies only the fields present in the request and
// upserts the profile row on first edit.
func (s *FacultyService) UpdateProfile(facultyId int, data UpdateProfileDTO) (*FacultyListing, error) {
	if data.FullName != nil {
		// Existence is checked separately: MySQL reports zero changed
		// rows when the update sets the name it already has.
		var count int64
		if err := s.DB.Model(&models.Faculty{}).Where("id = ?", facultyId).Count(&count).Error; err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, ErrFacultyNotFound
		}
		if err := s.DB.Model(&models.Faculty{}).Where("id = ?", facultyId).Update("full_name", *data.FullName).Error; err != nil {
			return nil, err
		}
	}

	updates := map[string]interface{}{}
	setIf := func(col string, v *string) {
		if v != nil {
			updates[col] = *v
		}
	}
	setIf("title", data.Title)
	setIf("education", data.Education)
	setIf("bio", data.Bio)
	setIf("address", data.Address)
	setIf("contact_number", data.ContactNumber)
	setIf("profile_image", data.ProfileImage)
	setIf("expertise_tags", data.ExpertiseTags)
	setIf("payout_method", data.PayoutMethod)
	setIf("paypal_email", data.PaypalEmail)
	setIf("bank_account_name", data.BankAccountName)
	setIf("bank_account_number", data.BankAccountNumber)
	setIf("bank_routing_number", data.BankRoutingNumber)
	setIf("bank_ifsc_code", data.BankIfscCode)
	setIf("branch_name", data.BranchName)
	if data.IsAvailable != nil {
		updates["is_available"] = *data.IsAvailable
	}

	if len(updates) > 0 {
		var profile models.FacultyProfile
		err := s.DB.Where("faculty_id = ?", facultyId).First(&profile).Error
		if err == gorm.ErrRecordNotFound {
			profile = models.FacultyProfile{FacultyId: facultyId}
			if err := s.DB.Create(&profile).Error; err != nil {
				return nil, err
			}
		} else if err != nil {
			return nil, err
		}

		if err := s.DB.Model(&models.FacultyProfile{}).Where("faculty_id = ?", facultyId).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	var listing FacultyListing
	err := s.DB.Table("faculty_profiles").
		Select("faculty_profiles.*, faculties.full_name, faculties.email").
		Joins("LEFT JOIN faculties ON faculties.id = faculty_profiles.faculty_id").
		Where("faculty_profiles.faculty_id = ?", facultyId).
		Scan(&listing).Error
	if err != nil {
		return nil, err
	}

	return &listing, nil
}

// PayoutSnapshot builds the payment-details snapshot stored into a
// withdrawal request from the faculty's current financials.
func (s *FacultyService) PayoutSnapshot(facultyId int) (models.PaymentDetails, error) {
	var profile models.FacultyProfile
	if err := s.DB.Where("faculty_id = ?", facultyId).First(&profile).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return models.PaymentDetails{}, ErrFacultyNotFound
		}
		return models.PaymentDetails{}, err
	}

	return models.PaymentDetails{
		Method:            profile.PayoutMethod,
		PaypalEmail:       profile.PaypalEmail,
		BankAccountName:   profile.BankAccountName,
		BankAccountNumber: profile.BankAccountNumber,
		BankRoutingNumber: profile.BankRoutingNumber,
		BankIfscCode:      profile.BankIfscCode,
		BranchName:        profile.BranchName,
	}, nil
}

// Delete removes a faculty account together with its profile. Bookings
// and withdrawal history are kept for the financial records.
func (s *FacultyService) Delete(facultyId int) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ?", facultyId).Delete(&models.Faculty{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrFacultyNotFound
		}
		return tx.Where("faculty_id = ?", facultyId).Delete(&models.FacultyProfile{}).Error
	})
}
