package services

import (
	"encoding/json"
	"log"

	"tutorhub-service/internal/models"
	"tutorhub-service/internal/tasks"

	"github.com/hibiken/asynq"
	"gorm.io/gorm"
)

type WithdrawalService struct {
	DB     *gorm.DB
	Helper *HelperService
	Queue  *asynq.Client
}

func NewWithdrawalService(db *gorm.DB, helper *HelperService, queue *asynq.Client) *WithdrawalService {
	return &WithdrawalService{DB: db, Helper: helper, Queue: queue}
}

// CreateRequest validates and persists a new pending withdrawal.
// Creation never touches the wallet: funds stay available until an
// admin approves, so several pending requests can together exceed the
// balance. The approval-time re-check in Process covers that case.
func (s *WithdrawalService) CreateRequest(facultyId int, amount float64, currency string, details models.PaymentDetails) (*models.WithdrawalRequest, error) {
	if amount <= 0 {
		return nil, ErrInvalidRequest
	}
	if !models.SupportedCurrencies[currency] {
		return nil, ErrInvalidRequest
	}
	if err := details.Validate(); err != nil {
		return nil, ErrInvalidRequest
	}

	var wallet models.WalletBalance
	balance := 0.0
	err := s.DB.Where("faculty_id = ? AND currency = ?", facultyId, currency).First(&wallet).Error
	if err == nil {
		balance = wallet.Amount
	} else if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	if amount > balance {
		return nil, ErrInsufficientFunds
	}

	snapshot, err := json.Marshal(details)
	if err != nil {
		return nil, err
	}

	request := models.WithdrawalRequest{
		FacultyId:      facultyId,
		Amount:         amount,
		Currency:       currency,
		Status:         models.WithdrawalPending,
		PaymentDetails: string(snapshot),
	}

	if err := s.DB.Create(&request).Error; err != nil {
		return nil, err
	}

	return &request, nil
}

// PendingWithdrawal is a request row joined with the requesting
// faculty's display identity for the admin review screen.
type PendingWithdrawal struct {
	models.WithdrawalRequest
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	ProfileImage string `json:"profile_image"`
}

func (s *WithdrawalService) ListPending() ([]PendingWithdrawal, error) {
	var results []PendingWithdrawal

	err := s.DB.Table("withdrawal_requests").
		Select("withdrawal_requests.*, faculties.full_name, faculties.email, faculty_profiles.profile_image").
		Joins("LEFT JOIN faculties ON faculties.id = withdrawal_requests.faculty_id").
		Joins("LEFT JOIN faculty_profiles ON faculty_profiles.faculty_id = withdrawal_requests.faculty_id").
		Where("withdrawal_requests.status = ?", models.WithdrawalPending).
		Order("withdrawal_requests.created_at ASC").
		Scan(&results).Error

	return results, err
}

// Process applies the single admissible transition for a request:
// pending -> approved or pending -> rejected. Approval debits the
// wallet and flips the status inside one transaction; both writes are
// compare-and-swap updates so concurrent admins cannot double-approve
// and concurrent approvals cannot overdraw a shared wallet.
func (s *WithdrawalService) Process(id int, target string) error {
	if target != models.WithdrawalApproved && target != models.WithdrawalRejected {
		return ErrInvalidStatus
	}

	var request models.WithdrawalRequest
	if err := s.DB.Where("id = ?", id).First(&request).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrRequestNotFoundOrDone
		}
		return err
	}
	if request.Status != models.WithdrawalPending {
		return ErrRequestNotFoundOrDone
	}

	if target == models.WithdrawalRejected {
		res := s.DB.Model(&models.WithdrawalRequest{}).
			Where("id = ? AND status = ?", id, models.WithdrawalPending).
			Update("status", models.WithdrawalRejected)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrRequestNotFoundOrDone
		}
		return nil
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.WithdrawalRequest{}).
			Where("id = ? AND status = ?", id, models.WithdrawalPending).
			Update("status", models.WithdrawalApproved)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrRequestNotFoundOrDone
		}

		// Guarded decrement: misses when the wallet row is absent or
		// the live balance no longer covers the amount. The rollback
		// leaves the request pending for the admin to re-evaluate.
		res = tx.Model(&models.WalletBalance{}).
			Where("faculty_id = ? AND currency = ? AND amount >= ?", request.FacultyId, request.Currency, request.Amount).
			UpdateColumn("amount", gorm.Expr("amount - ?", request.Amount))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrInsufficientWalletBalance
		}

		var wallet models.WalletBalance
		if err := tx.Where("faculty_id = ? AND currency = ?", request.FacultyId, request.Currency).First(&wallet).Error; err != nil {
			return err
		}

		return s.Helper.SaveLedgerEntry(tx, LedgerEntry{
			FacultyId:   request.FacultyId,
			Currency:    request.Currency,
			Amount:      request.Amount,
			TrxType:     "debit",
			Subject:     "Withdrawal",
			Description: "Withdrawal request approved",
			Balance:     wallet.Amount,
		})
	})
	if err != nil {
		return err
	}

	s.enqueuePayout(id)
	return nil
}

// enqueuePayout is best effort: a lost notification never blocks the
// approval, the payout desk can re-list approved requests.
func (s *WithdrawalService) enqueuePayout(requestId int) {
	if s.Queue == nil {
		return
	}
	task, err := tasks.NewPayoutNotificationTask(tasks.PayoutNotificationPayload{RequestId: requestId})
	if err != nil {
		log.Printf("Failed to build payout task for request %d: %v", requestId, err)
		return
	}
	if _, err := s.Queue.Enqueue(task); err != nil {
		log.Printf("Failed to enqueue payout task for request %d: %v", requestId, err)
	}
}

type ListRequestsDTO struct {
	Status string
	Page   int
	Limit  int
}

// ListRequests is the paginated admin history view across all
// statuses.
func (s *WithdrawalService) ListRequests(data ListRequestsDTO) (int64, []models.WithdrawalRequest, error) {
	limit := data.Limit
	if limit <= 0 {
		limit = 50
	}
	page := data.Page
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit

	query := s.DB.Model(&models.WithdrawalRequest{})
	if data.Status != "" {
		query = query.Where("status = ?", data.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return 0, nil, err
	}

	var list []models.WithdrawalRequest
	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&list).Error
	return total, list, err
}

// FacultyRequests lists a faculty member's own withdrawal history.
func (s *WithdrawalService) FacultyRequests(facultyId int) ([]models.WithdrawalRequest, error) {
	var list []models.WithdrawalRequest
	err := s.DB.Where("faculty_id = ?", facultyId).Order("created_at DESC").Find(&list).Error
	return list, err
}
