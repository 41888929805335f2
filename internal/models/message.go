package models

import "time"

// CollaborationMessage is the append-only message log between the two
// parties of a collaboration.
type CollaborationMessage struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	CollaborationID uint      `gorm:"not null;index" json:"collaboration_id"`
	SenderID        uint      `gorm:"not null;index" json:"sender_id"`
	Body            string    `gorm:"type:text" json:"body"`
	AttachmentURL   string    `gorm:"size:512" json:"attachment_url,omitempty"`
	CreatedAt       time.Time `json:"created_at"`

	Sender User `gorm:"foreignKey:SenderID" json:"-"`
}

func (CollaborationMessage) TableName() string { return "collaboration_messages" }
