package models

import (
	"time"

	"gorm.io/gorm"
)

type Campaign struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	BrandID     uint           `gorm:"not null;index" json:"brand_id"`
	Title       string         `gorm:"size:255;not null" json:"title"`
	Brief       string         `gorm:"type:text" json:"brief"`
	BudgetCents int64          `gorm:"not null;default:0" json:"budget_cents"`
	Currency    string         `gorm:"size:3;default:'USD'" json:"currency"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Brand User `gorm:"foreignKey:BrandID" json:"-"`
}

func (Campaign) TableName() string { return "campaigns" }
