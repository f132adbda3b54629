package models

import (
	"time"
)

// Service is a tutoring session offering published by a faculty member.
// A price of zero marks a free session.
type Service struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"id"`
	FacultyId   int       `gorm:"column:faculty_id;not null;index:idx_service_faculty" json:"faculty_id"`
	Title       string    `gorm:"column:title;size:255;not null" json:"title"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	Price       float64   `gorm:"column:price;type:decimal(20,2);not null" json:"price"`
	Currency    string    `gorm:"column:currency;size:10;not null" json:"currency"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Service) TableName() string {
	return "services"
}
