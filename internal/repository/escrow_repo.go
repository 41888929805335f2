package repository

import (
	"collably/internal/models"

	"gorm.io/gorm"
)

type EscrowRepository struct {
	db *gorm.DB
}

func NewEscrowRepository(db *gorm.DB) *EscrowRepository {
	return &EscrowRepository{db: db}
}

func (r *EscrowRepository) GetByID(id uint) (*models.EscrowAccount, error) {
	var e models.EscrowAccount
	err := r.db.First(&e, id).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EscrowRepository) GetByCollaboration(collaborationID uint) (*models.EscrowAccount, error) {
	var e models.EscrowAccount
	err := r.db.Where("collaboration_id = ?", collaborationID).First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EscrowRepository) ListReleases(escrowID uint) ([]models.EscrowRelease, error) {
	var list []models.EscrowRelease
	err := r.db.Where("escrow_account_id = ?", escrowID).Order("created_at ASC, id ASC").Find(&list).Error
	return list, err
}
