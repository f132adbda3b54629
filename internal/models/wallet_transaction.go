package models

import (
	"time"
)

// WalletTransaction is the ledger entry written alongside every wallet
// mutation: settlement credits and withdrawal debits.
type WalletTransaction struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"id"`
	FacultyId   int       `gorm:"column:faculty_id;not null;index:idx_wtrx_faculty" json:"faculty_id"`
	Currency    string    `gorm:"column:currency;size:10;not null" json:"currency"`
	Amount      float64   `gorm:"column:amount;type:decimal(20,2);not null" json:"amount"`
	TrxType     string    `gorm:"column:trx_type;size:10;not null" json:"trx_type"` // credit or debit
	Subject     string    `gorm:"column:subject;size:50" json:"subject"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	Reference   string    `gorm:"column:reference;size:50;index:idx_wtrx_reference" json:"reference"`
	Balance     float64   `gorm:"column:balance;type:decimal(20,2);default:0.00" json:"balance"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (WalletTransaction) TableName() string {
	return "wallet_transactions"
}
