package service

import (
	"errors"
	"fmt"
	"time"

	"collably/internal/domain"
	"collably/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InvoiceService struct {
	db *gorm.DB
}

func NewInvoiceService(db *gorm.DB) *InvoiceService {
	return &InvoiceService{db: db}
}

type LineItemInput struct {
	Description string
	Quantity    int
	AmountCents int64
}

type CreateInvoiceInput struct {
	Type             string
	CollaborationID  *uint
	BrandID          uint
	InfluencerID     uint
	TaxCents         int64
	PlatformFeeCents int64
	Currency         string
	DueDate          *time.Time
	LineItems        []LineItemInput
}

// Create builds a DRAFT invoice from its line items: subtotal is the item
// sum, total = subtotal + tax + platform fee.
func (s *InvoiceService) Create(in CreateInvoiceInput) (*models.Invoice, error) {
	var subtotal int64
	for _, it := range in.LineItems {
		qty := it.Quantity
		if qty <= 0 {
			qty = 1
		}
		subtotal += it.AmountCents * int64(qty)
	}
	inv := &models.Invoice{
		Number:           fmt.Sprintf("INV-%s", uuid.NewString()[:8]),
		Type:             in.Type,
		Status:           domain.InvoiceStatusDraft,
		CollaborationID:  in.CollaborationID,
		BrandID:          in.BrandID,
		InfluencerID:     in.InfluencerID,
		SubtotalCents:    subtotal,
		TaxCents:         in.TaxCents,
		PlatformFeeCents: in.PlatformFeeCents,
		TotalCents:       subtotal + in.TaxCents + in.PlatformFeeCents,
		Currency:         in.Currency,
		IssueDate:        time.Now(),
		DueDate:          in.DueDate,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(inv).Error; err != nil {
			return err
		}
		for _, it := range in.LineItems {
			qty := it.Quantity
			if qty <= 0 {
				qty = 1
			}
			li := models.InvoiceLineItem{
				InvoiceID:   inv.ID,
				Description: it.Description,
				Quantity:    qty,
				AmountCents: it.AmountCents,
			}
			if err := tx.Create(&li).Error; err != nil {
				return err
			}
			inv.LineItems = append(inv.LineItems, li)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return inv, nil
}

// Send marks the invoice SENT. Invoice statuses only move forward; there is
// no un-send.
func (s *InvoiceService) Send(id uint) (*models.Invoice, error) {
	return s.setStatus(id, domain.InvoiceStatusSent, false)
}

// MarkPaid marks the invoice PAID and stamps paidAt.
func (s *InvoiceService) MarkPaid(id uint) (*models.Invoice, error) {
	return s.setStatus(id, domain.InvoiceStatusPaid, true)
}

func (s *InvoiceService) setStatus(id uint, status string, stampPaid bool) (*models.Invoice, error) {
	var inv models.Invoice
	if err := s.db.Preload("LineItems").First(&inv, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	inv.Status = status
	if stampPaid {
		now := time.Now()
		inv.PaidAt = &now
	}
	if err := s.db.Save(&inv).Error; err != nil {
		return nil, err
	}
	return &inv, nil
}
