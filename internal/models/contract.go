package models

import "time"

// Contract is 1:1 with a collaboration once generated. Immutable after both
// signatures land, apart from timestamps.
type Contract struct {
	ID                  uint       `gorm:"primaryKey" json:"id"`
	CollaborationID     uint       `gorm:"uniqueIndex;not null" json:"collaboration_id"`
	TemplateID          *uint      `gorm:"index" json:"template_id"`
	Terms               string     `gorm:"type:text" json:"terms"`
	BrandSignedAt       *time.Time `json:"brand_signed_at"`
	InfluencerSignedAt  *time.Time `json:"influencer_signed_at"`
	BrandSignature      string     `gorm:"size:255" json:"-"`
	InfluencerSignature string     `gorm:"size:255" json:"-"`
	BrandSignIP         string     `gorm:"size:45" json:"-"`
	InfluencerSignIP    string     `gorm:"size:45" json:"-"`
	IsFullySigned       bool       `gorm:"not null;default:false" json:"is_fully_signed"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

func (Contract) TableName() string { return "contracts" }

type ContractTemplate struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:128;not null" json:"name"`
	Body      string    `gorm:"type:text" json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ContractTemplate) TableName() string { return "contract_templates" }
