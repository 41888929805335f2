package repository

import (
	"collably/internal/models"

	"gorm.io/gorm"
)

type MilestoneRepository struct {
	db *gorm.DB
}

func NewMilestoneRepository(db *gorm.DB) *MilestoneRepository {
	return &MilestoneRepository{db: db}
}

func (r *MilestoneRepository) GetByID(id uint) (*models.Milestone, error) {
	var m models.Milestone
	err := r.db.First(&m, id).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MilestoneRepository) ListByCollaboration(collaborationID uint) ([]models.Milestone, error) {
	var list []models.Milestone
	err := r.db.Where("collaboration_id = ?", collaborationID).Order("position ASC").Find(&list).Error
	return list, err
}
