package repository

import (
	"collably/internal/domain"
	"collably/internal/models"

	"gorm.io/gorm"
)

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

func (r *InvoiceRepository) GetByID(id uint) (*models.Invoice, error) {
	var inv models.Invoice
	err := r.db.Preload("LineItems").First(&inv, id).Error
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// ListForUser filters by the brand or influencer side depending on userType.
func (r *InvoiceRepository) ListForUser(userID uint, userType string) ([]models.Invoice, error) {
	q := r.db.Preload("LineItems").Order("issue_date DESC, id DESC")
	if userType == domain.RoleBrand {
		q = q.Where("brand_id = ?", userID)
	} else {
		q = q.Where("influencer_id = ?", userID)
	}
	var list []models.Invoice
	err := q.Find(&list).Error
	return list, err
}
