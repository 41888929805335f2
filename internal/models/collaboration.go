package models

import "time"

// Collaboration is the aggregate root of the lifecycle engine. Rows are never
// physically deleted; terminal statuses keep them for audit.
type Collaboration struct {
	ID                    uint       `gorm:"primaryKey" json:"id"`
	CampaignID            uint       `gorm:"not null;index" json:"campaign_id"`
	BrandID               uint       `gorm:"not null;index" json:"brand_id"`
	InfluencerID          uint       `gorm:"not null;index" json:"influencer_id"`
	Status                string     `gorm:"size:30;not null;index" json:"status"`
	AgreedAmountCents     int64      `gorm:"not null" json:"agreed_amount_cents"`
	PlatformFeeCents      int64      `gorm:"not null" json:"platform_fee_cents"`
	InfluencerPayoutCents int64      `gorm:"not null" json:"influencer_payout_cents"`
	CommissionRateBps     int64      `gorm:"not null" json:"commission_rate_bps"`
	Currency              string     `gorm:"size:3;default:'USD'" json:"currency"`
	StartDate             *time.Time `json:"start_date"`
	EndDate               *time.Time `json:"end_date"`
	ContentDueDate        *time.Time `json:"content_due_date"`
	CompletedAt           *time.Time `json:"completed_at"`
	CancelledAt           *time.Time `json:"cancelled_at"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`

	Campaign   Campaign  `gorm:"foreignKey:CampaignID" json:"-"`
	Brand      User      `gorm:"foreignKey:BrandID" json:"-"`
	Influencer User      `gorm:"foreignKey:InfluencerID" json:"-"`
	Contract   *Contract `gorm:"foreignKey:CollaborationID" json:"contract,omitempty"`
}

func (Collaboration) TableName() string { return "collaborations" }

// CollaborationStatusHistory is the append-only transition log. Rows are
// write-once: never updated, never deleted.
type CollaborationStatusHistory struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	CollaborationID uint      `gorm:"not null;index" json:"collaboration_id"`
	FromStatus      string    `gorm:"size:30;not null" json:"from_status"`
	ToStatus        string    `gorm:"size:30;not null" json:"to_status"`
	ActorID         uint      `gorm:"not null" json:"actor_id"`
	Action          string    `gorm:"size:30;not null" json:"action"`
	Reason          string    `gorm:"size:512" json:"reason"`
	CreatedAt       time.Time `json:"created_at"`
}

func (CollaborationStatusHistory) TableName() string { return "collaboration_status_history" }
