package repository

import (
	"collably/internal/models"

	"gorm.io/gorm"
)

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) Create(m *models.CollaborationMessage) error {
	return r.db.Create(m).Error
}

func (r *MessageRepository) ListByCollaboration(collaborationID uint, limit, offset int) ([]models.CollaborationMessage, error) {
	var list []models.CollaborationMessage
	err := r.db.Where("collaboration_id = ?", collaborationID).Order("created_at ASC, id ASC").Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}
