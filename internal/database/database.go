package database

import (
	"log"
	"os"

	"collably/config"
	"collably/internal/domain"
	"collably/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error), // Only log errors, not every SQL query
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	return db, nil
}

// AutoMigrate runs Gorm auto-migration for all models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Campaign{},
		&models.Collaboration{},
		&models.CollaborationStatusHistory{},
		&models.Contract{},
		&models.ContractTemplate{},
		&models.Milestone{},
		&models.Deliverable{},
		&models.DeliverableVersion{},
		&models.Wallet{},
		&models.WalletTransaction{},
		&models.EscrowAccount{},
		&models.EscrowRelease{},
		&models.Invoice{},
		&models.InvoiceLineItem{},
		&models.PayoutMethod{},
		&models.CollaborationMessage{},
	)
}

// SeedAdmin creates the platform admin account if it does not exist yet.
func SeedAdmin(db *gorm.DB) {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return
	}
	var count int64
	db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[Seed] admin password hash: %v", err)
		return
	}
	admin := &models.User{
		Name:         "Platform Admin",
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
	}
	if err := db.Create(admin).Error; err != nil {
		log.Printf("[Seed] admin user: %v", err)
	}
}
