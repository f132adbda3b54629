package models

import (
	"encoding/json"
	"errors"
	"time"
)

const (
	WithdrawalPending  = "pending"
	WithdrawalApproved = "approved"
	WithdrawalRejected = "rejected"
)

// Currencies the platform pays out in.
var SupportedCurrencies = map[string]bool{
	"USD": true,
	"INR": true,
}

const (
	PayoutMethodBank   = "bank"
	PayoutMethodPaypal = "paypal"
)

// PaymentDetails is the payout destination snapshotted into a
// withdrawal request when it is created. Later edits to the faculty
// profile do not change requests already submitted.
type PaymentDetails struct {
	Method            string `json:"method"`
	PaypalEmail       string `json:"paypal_email,omitempty"`
	BankAccountName   string `json:"bank_account_name,omitempty"`
	BankAccountNumber string `json:"bank_account_number,omitempty"`
	BankRoutingNumber string `json:"bank_routing_number,omitempty"`
	BankIfscCode      string `json:"bank_ifsc_code,omitempty"`
	BranchName        string `json:"branch_name,omitempty"`
}

// Validate checks the sub-fields required by the chosen payout method.
func (p PaymentDetails) Validate() error {
	switch p.Method {
	case PayoutMethodPaypal:
		if p.PaypalEmail == "" {
			return errors.New("paypal email is required")
		}
	case PayoutMethodBank:
		if p.BankAccountName == "" || p.BankAccountNumber == "" {
			return errors.New("bank account name and number are required")
		}
	default:
		return errors.New("unknown payout method")
	}
	return nil
}

type WithdrawalRequest struct {
	ID        int     `gorm:"primaryKey;autoIncrement" json:"id"`
	FacultyId int     `gorm:"column:faculty_id;not null;index:idx_withdrawal_faculty" json:"faculty_id"`
	Amount    float64 `gorm:"column:amount;type:decimal(20,2);not null" json:"amount"`
	Currency  string  `gorm:"column:currency;size:10;not null" json:"currency"`
	Status    string  `gorm:"column:status;size:20;default:pending;index:idx_withdrawal_status" json:"status"`
	// JSON-encoded PaymentDetails, immutable after creation.
	PaymentDetails string    `gorm:"column:payment_details;type:text;not null" json:"-"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (WithdrawalRequest) TableName() string {
	return "withdrawal_requests"
}

func (w *WithdrawalRequest) Details() (PaymentDetails, error) {
	var d PaymentDetails
	err := json.Unmarshal([]byte(w.PaymentDetails), &d)
	return d, err
}
