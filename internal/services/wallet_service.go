package services

import (
	"log"
	"math"

	"tutorhub-service/internal/models"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

type WalletService struct {
	DB     *gorm.DB
	Helper *HelperService
}

func NewWalletService(db *gorm.DB, helper *HelperService) *WalletService {
	return &WalletService{DB: db, Helper: helper}
}

// Balances returns every per-currency wallet row for a faculty member.
func (s *WalletService) Balances(facultyId int) ([]models.WalletBalance, error) {
	var balances []models.WalletBalance
	err := s.DB.Where("faculty_id = ?", facultyId).Order("currency").Find(&balances).Error
	return balances, err
}

// BalanceFor reads the withdrawable amount for one currency. A missing
// wallet row reads as zero.
func (s *WalletService) BalanceFor(facultyId int, currency string) (float64, error) {
	var wallet models.WalletBalance
	err := s.DB.Where("faculty_id = ? AND currency = ?", facultyId, currency).First(&wallet).Error
	if err == gorm.ErrRecordNotFound {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return wallet.Amount, nil
}

// Credit adds settled earnings to a faculty wallet, creating the
// per-currency row on first use, and writes the matching ledger entry.
func (s *WalletService) Credit(facultyId int, currency string, amount float64, subject, reference string) error {
	if amount <= 0 {
		return nil
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.WalletBalance{}).
			Where("faculty_id = ? AND currency = ?", facultyId, currency).
			UpdateColumn("amount", gorm.Expr("amount + ?", amount))
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected == 0 {
			wallet := models.WalletBalance{
				FacultyId: facultyId,
				Currency:  currency,
				Amount:    amount,
			}
			if err := tx.Create(&wallet).Error; err != nil {
				return err
			}
		}

		var wallet models.WalletBalance
		if err := tx.Where("faculty_id = ? AND currency = ?", facultyId, currency).First(&wallet).Error; err != nil {
			return err
		}

		return s.Helper.SaveLedgerEntry(tx, LedgerEntry{
			FacultyId: facultyId,
			Currency:  currency,
			Amount:    amount,
			TrxType:   "credit",
			Subject:   subject,
			Reference: reference,
			Balance:   wallet.Amount,
		})
	})
}

type balanceAggregate struct {
	FacultyId int
	Currency  string
	Total     float64
}

// Reconcile recomputes every wallet from first principles: completed
// booking earnings net of the platform fee, minus approved
// withdrawals. Drift against the materialized row is logged and the
// row overwritten. The materialized wallet stays authoritative for
// request handling; this job only repairs it.
func (s *WalletService) Reconcile() {
	fee := s.Helper.PlatformFeePercentage()

	var earnings []balanceAggregate
	err := s.DB.Model(&models.Booking{}).
		Select("faculty_id, currency_at_booking AS currency, COALESCE(SUM(price_at_booking), 0) AS total").
		Where("status = ?", models.BookingCompleted).
		Group("faculty_id, currency_at_booking").
		Scan(&earnings).Error
	if err != nil {
		log.Printf("Reconcile: failed to aggregate bookings: %v", err)
		return
	}

	for _, e := range earnings {
		var withdrawn float64
		err := s.DB.Model(&models.WithdrawalRequest{}).
			Select("COALESCE(SUM(amount), 0)").
			Where("faculty_id = ? AND currency = ? AND status = ?", e.FacultyId, e.Currency, models.WithdrawalApproved).
			Scan(&withdrawn).Error
		if err != nil {
			log.Printf("Reconcile: failed to sum withdrawals for faculty %d: %v", e.FacultyId, err)
			continue
		}

		expected := e.Total*(1-fee/100) - withdrawn
		if expected < 0 {
			expected = 0
		}

		current, err := s.BalanceFor(e.FacultyId, e.Currency)
		if err != nil {
			log.Printf("Reconcile: failed to read wallet for faculty %d: %v", e.FacultyId, err)
			continue
		}

		if math.Abs(current-expected) < 0.01 {
			continue
		}

		log.Printf("Reconcile: faculty %d %s drift, wallet %.2f expected %.2f", e.FacultyId, e.Currency, current, expected)

		res := s.DB.Model(&models.WalletBalance{}).
			Where("faculty_id = ? AND currency = ?", e.FacultyId, e.Currency).
			UpdateColumn("amount", expected)
		if res.Error != nil {
			log.Printf("Reconcile: failed to update wallet for faculty %d: %v", e.FacultyId, res.Error)
			continue
		}
		if res.RowsAffected == 0 {
			wallet := models.WalletBalance{FacultyId: e.FacultyId, Currency: e.Currency, Amount: expected}
			if err := s.DB.Create(&wallet).Error; err != nil {
				log.Printf("Reconcile: failed to create wallet for faculty %d: %v", e.FacultyId, err)
			}
		}
	}
}

// StartScheduler runs the reconciliation nightly at 01:00.
func (s *WalletService) StartScheduler() {
	c := cron.New()
	_, err := c.AddFunc("0 1 * * *", func() {
		log.Println("Running scheduled wallet reconciliation...")
		s.Reconcile()
	})
	if err != nil {
		log.Printf("Error scheduling wallet reconciliation: %v", err)
		return
	}
	c.Start()
	log.Println("Wallet Reconciliation Scheduler started (Daily at 01:00)")
}
