package repository

import (
	"collably/internal/models"

	"gorm.io/gorm"
)

type CampaignRepository struct {
	db *gorm.DB
}

func NewCampaignRepository(db *gorm.DB) *CampaignRepository {
	return &CampaignRepository{db: db}
}

func (r *CampaignRepository) Create(c *models.Campaign) error {
	return r.db.Create(c).Error
}

func (r *CampaignRepository) GetByID(id uint) (*models.Campaign, error) {
	var c models.Campaign
	err := r.db.First(&c, id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CampaignRepository) ListByBrand(brandID uint) ([]models.Campaign, error) {
	var list []models.Campaign
	err := r.db.Where("brand_id = ?", brandID).Order("created_at DESC").Find(&list).Error
	return list, err
}
