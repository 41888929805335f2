package repository

import (
	"collably/internal/domain"
	"collably/internal/models"

	"gorm.io/gorm"
)

type CollaborationRepository struct {
	db *gorm.DB
}

func NewCollaborationRepository(db *gorm.DB) *CollaborationRepository {
	return &CollaborationRepository{db: db}
}

func (r *CollaborationRepository) GetByID(id uint) (*models.Collaboration, error) {
	var c models.Collaboration
	err := r.db.Preload("Contract").First(&c, id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListForUser returns collaborations where the user is the brand or the
// influencer, depending on their role.
func (r *CollaborationRepository) ListForUser(userID uint, role string) ([]models.Collaboration, error) {
	q := r.db.Order("created_at DESC")
	switch role {
	case domain.RoleBrand:
		q = q.Where("brand_id = ?", userID)
	case domain.RoleInfluencer:
		q = q.Where("influencer_id = ?", userID)
	}
	var list []models.Collaboration
	err := q.Find(&list).Error
	return list, err
}

func (r *CollaborationRepository) History(collaborationID uint) ([]models.CollaborationStatusHistory, error) {
	var list []models.CollaborationStatusHistory
	err := r.db.Where("collaboration_id = ?", collaborationID).Order("created_at ASC, id ASC").Find(&list).Error
	return list, err
}
