package models

import (
	"time"
)

// WalletBalance is the materialized withdrawable balance for one
// faculty member in one currency. It is credited on booking settlement
// and debited on withdrawal approval; both mutations go through
// conditional updates so the amount can never go below zero.
type WalletBalance struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	FacultyId int       `gorm:"column:faculty_id;not null;uniqueIndex:idx_wallet_faculty_currency" json:"faculty_id"`
	Currency  string    `gorm:"column:currency;size:10;not null;uniqueIndex:idx_wallet_faculty_currency" json:"currency"`
	Amount    float64   `gorm:"column:amount;type:decimal(20,2);default:0.00" json:"amount"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (WalletBalance) TableName() string {
	return "wallet_balances"
}
