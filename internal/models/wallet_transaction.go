package models

import "time"

// WalletTransaction is the append-only movement log. Rows are never updated
// or deleted; the wallet balance should be re-derivable from them.
type WalletTransaction struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	WalletID          uint      `gorm:"not null;index" json:"wallet_id"`
	Type              string    `gorm:"size:20;not null;index" json:"type"` // DEPOSIT, WITHDRAWAL, ESCROW_HOLD, ESCROW_RELEASE, PLATFORM_FEE, PAYOUT, REFUND
	AmountCents       int64     `gorm:"not null" json:"amount_cents"` // positive = credit, negative = debit
	BalanceAfterCents int64     `gorm:"not null" json:"balance_after_cents"`
	Reference         string    `gorm:"size:128;index" json:"reference"` // e.g. escrow_12, withdrawal_34
	Description       string    `gorm:"size:255" json:"description"`
	CreatedAt         time.Time `json:"created_at"`

	Wallet Wallet `gorm:"foreignKey:WalletID" json:"-"`
}

func (WalletTransaction) TableName() string { return "wallet_transactions" }
