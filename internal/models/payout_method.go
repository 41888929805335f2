package models

import (
	"time"

	"gorm.io/gorm"
)

// PayoutMethod is a withdrawal destination. At most one default per user;
// the first method added becomes default automatically.
type PayoutMethod struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	UserID       uint           `gorm:"not null;index" json:"user_id"`
	Type         string         `gorm:"size:20;not null" json:"type"` // BANK | PAYPAL
	IsDefault    bool           `gorm:"not null;default:false" json:"is_default"`
	IsVerified   bool           `gorm:"not null;default:false" json:"is_verified"`
	BankName     string         `gorm:"size:128" json:"bank_name,omitempty"`
	AccountName  string         `gorm:"size:128" json:"account_name,omitempty"`
	AccountLast4 string         `gorm:"size:4" json:"account_last4,omitempty"`
	PaypalEmail  string         `gorm:"size:255" json:"paypal_email,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (PayoutMethod) TableName() string { return "payout_methods" }
