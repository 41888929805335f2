package repository

import (
	"collably/internal/models"

	"gorm.io/gorm"
)

type ContractRepository struct {
	db *gorm.DB
}

func NewContractRepository(db *gorm.DB) *ContractRepository {
	return &ContractRepository{db: db}
}

func (r *ContractRepository) GetByCollaboration(collaborationID uint) (*models.Contract, error) {
	var c models.Contract
	err := r.db.Where("collaboration_id = ?", collaborationID).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}
