package services

import (
	"log"
	"strconv"

	"tutorhub-service/internal/models"

	"gorm.io/gorm"
)

const DefaultPlatformFee = 10.0

type HelperService struct {
	DB *gorm.DB
}

func NewHelperService(db *gorm.DB) *HelperService {
	return &HelperService{DB: db}
}

// PlatformFeePercentage reads the configured platform fee, falling
// back to the default when the setting is missing or malformed.
func (s *HelperService) PlatformFeePercentage() float64 {
	var setting models.Setting
	if err := s.DB.Where("setting_key = ?", models.SettingPlatformFee).First(&setting).Error; err != nil {
		return DefaultPlatformFee
	}

	fee, err := strconv.ParseFloat(setting.Value, 64)
	if err != nil || fee < 0 || fee > 100 {
		return DefaultPlatformFee
	}
	return fee
}

type LedgerEntry struct {
	FacultyId   int
	Currency    string
	Amount      float64
	TrxType     string // credit or debit
	Subject     string
	Description string
	Reference   string
	Balance     float64
}

// SaveLedgerEntry records one wallet mutation. When tx is nil the
// entry is written outside any transaction.
func (s *HelperService) SaveLedgerEntry(tx *gorm.DB, data LedgerEntry) error {
	if tx == nil {
		tx = s.DB
	}

	entry := models.WalletTransaction{
		FacultyId:   data.FacultyId,
		Currency:    data.Currency,
		Amount:      data.Amount,
		TrxType:     data.TrxType,
		Subject:     data.Subject,
		Description: data.Description,
		Reference:   data.Reference,
		Balance:     data.Balance,
	}

	if err := tx.Create(&entry).Error; err != nil {
		log.Printf("Failed to save ledger entry: %v", err)
		return err
	}
	return nil
}
