package models

import (
	"time"
)

type Student struct {
	ID         int       `gorm:"primaryKey;autoIncrement" json:"id"`
	FullName   string    `gorm:"column:full_name;size:150;not null" json:"full_name"`
	Email      string    `gorm:"column:email;size:255;not null;uniqueIndex" json:"email"`
	Password   string    `gorm:"column:password;size:255" json:"-"`
	IsVerified bool      `gorm:"column:is_verified;default:false" json:"is_verified"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Student) TableName() string {
	return "students"
}
