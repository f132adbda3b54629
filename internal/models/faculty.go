package models

import (
	"time"
)

type Faculty struct {
	ID         int       `gorm:"primaryKey;autoIncrement" json:"id"`
	FullName   string    `gorm:"column:full_name;size:150;not null" json:"full_name"`
	Email      string    `gorm:"column:email;size:255;not null;uniqueIndex" json:"email"`
	Password   string    `gorm:"column:password;size:255" json:"-"`
	IsVerified bool      `gorm:"column:is_verified;default:false" json:"is_verified"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Faculty) TableName() string {
	return "faculties"
}

// FacultyProfile holds the public profile and payout details a faculty
// member manages themselves. One row per faculty account.
type FacultyProfile struct {
	ID            int       `gorm:"primaryKey;autoIncrement" json:"id"`
	FacultyId     int       `gorm:"column:faculty_id;not null;uniqueIndex" json:"faculty_id"`
	Title         string    `gorm:"column:title;size:150" json:"title"`
	Education     string    `gorm:"column:education;size:255" json:"education"`
	Bio           string    `gorm:"column:bio;type:text" json:"bio"`
	Address       string    `gorm:"column:address;size:255" json:"address"`
	ContactNumber string    `gorm:"column:contact_number;size:30" json:"contact_number"`
	ProfileImage  string    `gorm:"column:profile_image;size:255" json:"profile_image"`
	ExpertiseTags string    `gorm:"column:expertise_tags;size:500" json:"expertise_tags"`
	IsAvailable   bool      `gorm:"column:is_available;default:true" json:"is_available"`

	// Payout financials, editable by the faculty and snapshotted into
	// withdrawal requests at creation time.
	PayoutMethod      string `gorm:"column:payout_method;size:20" json:"payout_method"`
	PaypalEmail       string `gorm:"column:paypal_email;size:255" json:"paypal_email"`
	BankAccountName   string `gorm:"column:bank_account_name;size:150" json:"bank_account_name"`
	BankAccountNumber string `gorm:"column:bank_account_number;size:50" json:"bank_account_number"`
	BankRoutingNumber string `gorm:"column:bank_routing_number;size:50" json:"bank_routing_number"`
	BankIfscCode      string `gorm:"column:bank_ifsc_code;size:20" json:"bank_ifsc_code"`
	BranchName        string `gorm:"column:branch_name;size:150" json:"branch_name"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (FacultyProfile) TableName() string {
	return "faculty_profiles"
}
