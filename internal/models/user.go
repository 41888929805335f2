package models

import (
	"time"

	"collably/internal/domain"

	"gorm.io/gorm"
)

type User struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Name         string         `gorm:"size:128;not null" json:"name"`
	Email        string         `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string         `gorm:"size:255" json:"-"`
	Role         string         `gorm:"size:20;not null;index" json:"role"` // BRAND | INFLUENCER | ADMIN
	GoogleID     *string        `gorm:"uniqueIndex;size:255" json:"-"`      // nil for email signups (avoids duplicate '' on unique index)
	AvatarURL    string         `gorm:"size:512" json:"avatar_url"`
	CompanyName  string         `gorm:"size:128" json:"company_name,omitempty"` // brands
	Handle       string         `gorm:"size:64" json:"handle,omitempty"`        // influencers
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string { return "users" }

func (u *User) IsBrand() bool      { return u.Role == domain.RoleBrand }
func (u *User) IsInfluencer() bool { return u.Role == domain.RoleInfluencer }
func (u *User) IsAdmin() bool      { return u.Role == domain.RoleAdmin }
