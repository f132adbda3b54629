package models

import (
	"time"
)

// PaymentMethod holds the credentials and endpoint for a payment
// gateway provider (currently only "razorpay").
type PaymentMethod struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"id"`
	DisplayName string    `gorm:"column:display_name;size:200;not null" json:"display_name"`
	Provider    string    `gorm:"column:provider;size:150;not null;uniqueIndex" json:"provider"`
	BaseUrl     string    `gorm:"column:base_url;size:150" json:"base_url"`
	SecretKey   string    `gorm:"column:secret_key;type:longtext" json:"secret_key"`
	PublicKey   string    `gorm:"column:public_key;type:longtext" json:"public_key"`
	Status      int       `gorm:"column:status;default:0" json:"status"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (PaymentMethod) TableName() string {
	return "payment_methods"
}
