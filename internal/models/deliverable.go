package models

import "time"

// Deliverable tracks one required piece of content across submitted versions.
type Deliverable struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	CollaborationID uint       `gorm:"not null;index" json:"collaboration_id"`
	Title           string     `gorm:"size:255;not null" json:"title"`
	Description     string     `gorm:"type:text" json:"description"`
	CurrentVersion  int        `gorm:"not null;default:0" json:"current_version"`
	Status          string     `gorm:"size:30;not null;index" json:"status"`
	ApprovedAt      *time.Time `json:"approved_at"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (Deliverable) TableName() string { return "deliverables" }

// DeliverableVersion is immutable once created. Superseded and review flags
// are set via bulk updates; content fields never change.
type DeliverableVersion struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	DeliverableID uint       `gorm:"not null;index" json:"deliverable_id"`
	Version       int        `gorm:"not null" json:"version"`
	MediaURLs     []string   `gorm:"serializer:json;type:text" json:"media_urls"`
	Caption       string     `gorm:"type:text" json:"caption"`
	Superseded    bool       `gorm:"not null;default:false" json:"superseded"`
	Reviewed      bool       `gorm:"not null;default:false" json:"reviewed"`
	ReviewerID    *uint      `json:"reviewer_id"`
	Feedback      string     `gorm:"type:text" json:"feedback"`
	ReviewedAt    *time.Time `json:"reviewed_at"`
	SubmittedAt   time.Time  `json:"submitted_at"`
	CreatedAt     time.Time  `json:"created_at"`
}

func (DeliverableVersion) TableName() string { return "deliverable_versions" }
