package repository

import (
	"collably/internal/models"

	"gorm.io/gorm"
)

type DeliverableRepository struct {
	db *gorm.DB
}

func NewDeliverableRepository(db *gorm.DB) *DeliverableRepository {
	return &DeliverableRepository{db: db}
}

func (r *DeliverableRepository) GetByID(id uint) (*models.Deliverable, error) {
	var d models.Deliverable
	err := r.db.First(&d, id).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DeliverableRepository) ListByCollaboration(collaborationID uint) ([]models.Deliverable, error) {
	var list []models.Deliverable
	err := r.db.Where("collaboration_id = ?", collaborationID).Order("id ASC").Find(&list).Error
	return list, err
}
