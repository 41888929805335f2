package models

import "time"

// Milestone is one payment tranche of a collaboration. Rows survive forever
// once created (financial audit trail).
type Milestone struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	CollaborationID uint       `gorm:"not null;index" json:"collaboration_id"`
	Title           string     `gorm:"size:255;not null" json:"title"`
	Position        int        `gorm:"not null" json:"position"`
	AmountCents     int64      `gorm:"not null" json:"amount_cents"`
	Status          string     `gorm:"size:20;not null;index" json:"status"` // PENDING, APPROVED, PAID, REJECTED
	ApprovedAt      *time.Time `json:"approved_at"`
	PaidAt          *time.Time `json:"paid_at"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (Milestone) TableName() string { return "milestones" }
