package service

import (
	"fmt"
	"testing"

	"collably/config"
	"collably/internal/database"
	"collably/internal/domain"
	"collably/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		Platform: config.PlatformConfig{
			CommissionRateBps: 1000,
			DefaultCurrency:   "USD",
		},
	}
}

var userSeq int

func createUser(t *testing.T, db *gorm.DB, role string) *models.User {
	t.Helper()
	userSeq++
	u := &models.User{
		Name:  fmt.Sprintf("user-%d", userSeq),
		Email: fmt.Sprintf("user-%d@example.com", userSeq),
		Role:  role,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func createCampaign(t *testing.T, db *gorm.DB, brandID uint) *models.Campaign {
	t.Helper()
	c := &models.Campaign{
		BrandID:     brandID,
		Title:       "Summer launch",
		BudgetCents: 1_000_000,
	}
	require.NoError(t, db.Create(c).Error)
	return c
}

// createCollaboration seeds a brand, influencer, campaign and collaboration
// at the given amount, returning all three parties.
func createCollaboration(t *testing.T, db *gorm.DB, amountCents int64) (*models.Collaboration, *models.User, *models.User) {
	t.Helper()
	brand := createUser(t, db, domain.RoleBrand)
	influencer := createUser(t, db, domain.RoleInfluencer)
	campaign := createCampaign(t, db, brand.ID)

	svc := NewCollaborationService(testConfig(), db)
	c, err := svc.Create(brand.ID, CreateCollaborationInput{
		CampaignID:   campaign.ID,
		InfluencerID: influencer.ID,
		AmountCents:  amountCents,
	})
	require.NoError(t, err)
	return c, brand, influencer
}

// setStatus forces a collaboration into a given status directly, for tests
// that start mid-lifecycle.
func setStatus(t *testing.T, db *gorm.DB, collabID uint, status string) {
	t.Helper()
	require.NoError(t, db.Model(&models.Collaboration{}).Where("id = ?", collabID).
		Update("status", status).Error)
}

// fundWallet seeds a wallet with a balance via the deposit path.
func fundWallet(t *testing.T, db *gorm.DB, userID uint, walletType string, amountCents int64) *models.Wallet {
	t.Helper()
	svc := NewWalletService(testConfig(), db)
	w, err := svc.Deposit(userID, walletType, amountCents, "test_seed")
	require.NoError(t, err)
	return w
}
