package models

import "time"

// Wallet holds a user's funds, one row per (user, type). Balance mutates only
// through WalletTransaction-producing operations and never goes negative.
type Wallet struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	UserID              uint      `gorm:"not null;uniqueIndex:idx_wallets_user_type" json:"user_id"`
	Type                string    `gorm:"size:20;not null;uniqueIndex:idx_wallets_user_type" json:"type"` // BRAND_WALLET | INFLUENCER_WALLET
	BalanceCents        int64     `gorm:"not null;default:0" json:"balance_cents"`
	PendingBalanceCents int64     `gorm:"not null;default:0" json:"pending_balance_cents"`
	Currency            string    `gorm:"size:3;default:'USD'" json:"currency"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Wallet) TableName() string { return "wallets" }
