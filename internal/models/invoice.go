package models

import "time"

type Invoice struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	Number           string     `gorm:"size:64;uniqueIndex;not null" json:"number"`
	Type             string     `gorm:"size:30;not null;index" json:"type"`   // BRAND_DEPOSIT, INFLUENCER_PAYOUT, PLATFORM_FEE
	Status           string     `gorm:"size:20;not null;index" json:"status"` // DRAFT, SENT, PAID
	CollaborationID  *uint      `gorm:"index" json:"collaboration_id"`
	BrandID          uint       `gorm:"not null;index" json:"brand_id"`
	InfluencerID     uint       `gorm:"not null;index" json:"influencer_id"`
	SubtotalCents    int64      `gorm:"not null" json:"subtotal_cents"`
	TaxCents         int64      `gorm:"not null;default:0" json:"tax_cents"`
	PlatformFeeCents int64      `gorm:"not null;default:0" json:"platform_fee_cents"`
	TotalCents       int64      `gorm:"not null" json:"total_cents"`
	Currency         string     `gorm:"size:3;default:'USD'" json:"currency"`
	IssueDate        time.Time  `json:"issue_date"`
	DueDate          *time.Time `json:"due_date"`
	PaidAt           *time.Time `json:"paid_at"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`

	LineItems []InvoiceLineItem `gorm:"foreignKey:InvoiceID" json:"line_items,omitempty"`
}

func (Invoice) TableName() string { return "invoices" }

type InvoiceLineItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	InvoiceID   uint      `gorm:"not null;index" json:"invoice_id"`
	Description string    `gorm:"size:255;not null" json:"description"`
	Quantity    int       `gorm:"not null;default:1" json:"quantity"`
	AmountCents int64     `gorm:"not null" json:"amount_cents"`
	CreatedAt   time.Time `json:"created_at"`
}

func (InvoiceLineItem) TableName() string { return "invoice_line_items" }
