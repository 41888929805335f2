package models

import "time"

// EscrowAccount holds brand funds in trust for one collaboration.
// held + released never exceeds total; held decreases only via release or
// refund.
type EscrowAccount struct {
	ID                uint       `gorm:"primaryKey" json:"id"`
	CollaborationID   uint       `gorm:"uniqueIndex;not null" json:"collaboration_id"`
	BrandID           uint       `gorm:"not null;index" json:"brand_id"`
	InfluencerID      uint       `gorm:"not null;index" json:"influencer_id"`
	TotalAmountCents  int64      `gorm:"not null" json:"total_amount_cents"`
	HeldCents         int64      `gorm:"not null;default:0" json:"held_cents"`
	ReleasedCents     int64      `gorm:"not null;default:0" json:"released_cents"`
	PlatformFeeCents  int64      `gorm:"not null" json:"platform_fee_cents"`
	CommissionRateBps int64      `gorm:"not null" json:"commission_rate_bps"`
	Currency          string     `gorm:"size:3;default:'USD'" json:"currency"`
	Status            string     `gorm:"size:20;not null;index" json:"status"` // PENDING, FUNDED, PARTIALLY_RELEASED, FULLY_RELEASED, REFUNDED
	FundedAt          *time.Time `json:"funded_at"`
	ReleasedAt        *time.Time `json:"released_at"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func (EscrowAccount) TableName() string { return "escrow_accounts" }

// EscrowRelease is the append-only record of each partial or full release.
type EscrowRelease struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	EscrowAccountID uint      `gorm:"not null;index" json:"escrow_account_id"`
	MilestoneID     *uint     `gorm:"index" json:"milestone_id"`
	AmountCents     int64     `gorm:"not null" json:"amount_cents"`
	Reason          string    `gorm:"size:512" json:"reason"`
	ActorID         uint      `gorm:"not null" json:"actor_id"`
	Reference       string    `gorm:"size:64;uniqueIndex" json:"reference"`
	CreatedAt       time.Time `json:"created_at"`
}

func (EscrowRelease) TableName() string { return "escrow_releases" }
