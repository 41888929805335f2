package service

import (
	"testing"

	"collably/internal/domain"
	"collably/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Full settlement path: 5000.00 agreed at 10% commission. The brand funds
// escrow, two milestone releases pay the influencer 4500.00 net in total and
// the platform keeps 500.00, then the account reads FULLY_RELEASED.
func TestEscrowFullSettlementFlow(t *testing.T) {
	db := setupTestDB(t)
	c, brand, influencer := createCollaboration(t, db, 500_000)
	fundWallet(t, db, brand.ID, domain.WalletTypeBrand, 500_000)

	milestoneSvc := NewMilestoneService(db)
	milestones, err := milestoneSvc.CreateBatch(c.ID, []MilestoneInput{
		{Title: "Content approved", AmountCents: 250_000},
		{Title: "Published", AmountCents: 250_000},
	})
	require.NoError(t, err)

	svc := NewEscrowService(db)
	e, err := svc.CreateAccount(CreateEscrowInput{CollaborationID: c.ID})
	require.NoError(t, err)
	assert.Equal(t, domain.EscrowStatusPending, e.Status)
	assert.Equal(t, int64(500_000), e.TotalAmountCents)
	assert.Equal(t, int64(50_000), e.PlatformFeeCents)
	assert.Equal(t, int64(1000), e.CommissionRateBps)

	e, err = svc.Fund(e.ID, brand.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.EscrowStatusFunded, e.Status)
	assert.Equal(t, int64(500_000), e.HeldCents)
	require.NotNil(t, e.FundedAt)

	// brand wallet drained by the hold
	var brandWallet models.Wallet
	require.NoError(t, db.Where("user_id = ? AND type = ?", brand.ID, domain.WalletTypeBrand).First(&brandWallet).Error)
	assert.Equal(t, int64(0), brandWallet.BalanceCents)

	// first milestone: 2500.00 tranche = 2250.00 net + 250.00 fee
	e, err = svc.Release(e.ID, brand.ID, ReleaseEscrowInput{MilestoneID: &milestones[0].ID, Reason: "content approved"})
	require.NoError(t, err)
	assert.Equal(t, domain.EscrowStatusPartiallyReleased, e.Status)
	assert.Equal(t, int64(250_000), e.HeldCents)
	assert.Equal(t, int64(250_000), e.ReleasedCents)

	var influencerWallet models.Wallet
	require.NoError(t, db.Where("user_id = ? AND type = ?", influencer.ID, domain.WalletTypeInfluencer).First(&influencerWallet).Error)
	assert.Equal(t, int64(225_000), influencerWallet.BalanceCents)

	var paid models.Milestone
	require.NoError(t, db.First(&paid, milestones[0].ID).Error)
	assert.Equal(t, domain.MilestoneStatusPaid, paid.Status)
	require.NotNil(t, paid.PaidAt)

	// second milestone empties the account
	e, err = svc.Release(e.ID, brand.ID, ReleaseEscrowInput{MilestoneID: &milestones[1].ID, Reason: "published"})
	require.NoError(t, err)
	assert.Equal(t, domain.EscrowStatusFullyReleased, e.Status)
	assert.Equal(t, int64(0), e.HeldCents)
	assert.Equal(t, int64(500_000), e.ReleasedCents)
	require.NotNil(t, e.ReleasedAt)

	require.NoError(t, db.Where("user_id = ? AND type = ?", influencer.ID, domain.WalletTypeInfluencer).First(&influencerWallet).Error)
	assert.Equal(t, int64(450_000), influencerWallet.BalanceCents)

	var releases []models.EscrowRelease
	require.NoError(t, db.Where("escrow_account_id = ?", e.ID).Find(&releases).Error)
	assert.Len(t, releases, 2)
	assert.NotEqual(t, releases[0].Reference, releases[1].Reference)
}

func TestFundInsufficientBalanceLeavesPending(t *testing.T) {
	db := setupTestDB(t)
	c, brand, _ := createCollaboration(t, db, 500_000)
	fundWallet(t, db, brand.ID, domain.WalletTypeBrand, 499_999)

	svc := NewEscrowService(db)
	e, err := svc.CreateAccount(CreateEscrowInput{CollaborationID: c.ID})
	require.NoError(t, err)

	_, err = svc.Fund(e.ID, brand.ID)
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)

	var got models.EscrowAccount
	require.NoError(t, db.First(&got, e.ID).Error)
	assert.Equal(t, domain.EscrowStatusPending, got.Status)
	assert.Equal(t, int64(0), got.HeldCents)

	var w models.Wallet
	require.NoError(t, db.Where("user_id = ? AND type = ?", brand.ID, domain.WalletTypeBrand).First(&w).Error)
	assert.Equal(t, int64(499_999), w.BalanceCents)
}

func TestFundWithoutBrandWallet(t *testing.T) {
	db := setupTestDB(t)
	c, brand, _ := createCollaboration(t, db, 100_000)

	svc := NewEscrowService(db)
	e, err := svc.CreateAccount(CreateEscrowInput{CollaborationID: c.ID})
	require.NoError(t, err)

	_, err = svc.Fund(e.ID, brand.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFundTwiceFails(t *testing.T) {
	db := setupTestDB(t)
	c, brand, _ := createCollaboration(t, db, 100_000)
	fundWallet(t, db, brand.ID, domain.WalletTypeBrand, 200_000)

	svc := NewEscrowService(db)
	e, err := svc.CreateAccount(CreateEscrowInput{CollaborationID: c.ID})
	require.NoError(t, err)
	_, err = svc.Fund(e.ID, brand.ID)
	require.NoError(t, err)

	_, err = svc.Fund(e.ID, brand.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestReleaseRequiresTarget(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEscrowService(db)
	_, err := svc.Release(1, 1, ReleaseEscrowInput{})
	assert.ErrorIs(t, err, domain.ErrMissingReleaseTarget)
}

func TestReleaseExplicitAmountCreditedInFull(t *testing.T) {
	db := setupTestDB(t)
	c, brand, influencer := createCollaboration(t, db, 100_000)
	fundWallet(t, db, brand.ID, domain.WalletTypeBrand, 100_000)

	svc := NewEscrowService(db)
	e, err := svc.CreateAccount(CreateEscrowInput{CollaborationID: c.ID})
	require.NoError(t, err)
	_, err = svc.Fund(e.ID, brand.ID)
	require.NoError(t, err)

	amount := int64(30_000)
	e, err = svc.Release(e.ID, brand.ID, ReleaseEscrowInput{AmountCents: &amount, Reason: "advance"})
	require.NoError(t, err)
	assert.Equal(t, domain.EscrowStatusPartiallyReleased, e.Status)
	assert.Equal(t, int64(70_000), e.HeldCents)

	var w models.Wallet
	require.NoError(t, db.Where("user_id = ? AND type = ?", influencer.ID, domain.WalletTypeInfluencer).First(&w).Error)
	assert.Equal(t, int64(30_000), w.BalanceCents)
}

func TestReleaseExceedingHeldFails(t *testing.T) {
	db := setupTestDB(t)
	c, brand, _ := createCollaboration(t, db, 100_000)
	fundWallet(t, db, brand.ID, domain.WalletTypeBrand, 100_000)

	svc := NewEscrowService(db)
	e, err := svc.CreateAccount(CreateEscrowInput{CollaborationID: c.ID})
	require.NoError(t, err)
	_, err = svc.Fund(e.ID, brand.ID)
	require.NoError(t, err)

	amount := int64(100_001)
	_, err = svc.Release(e.ID, brand.ID, ReleaseEscrowInput{AmountCents: &amount})
	assert.ErrorIs(t, err, domain.ErrExceedsHeld)
}

func TestReleaseBeforeFundingFails(t *testing.T) {
	db := setupTestDB(t)
	c, brand, _ := createCollaboration(t, db, 100_000)

	svc := NewEscrowService(db)
	e, err := svc.CreateAccount(CreateEscrowInput{CollaborationID: c.ID})
	require.NoError(t, err)

	amount := int64(10_000)
	_, err = svc.Release(e.ID, brand.ID, ReleaseEscrowInput{AmountCents: &amount})
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestReleaseForeignMilestoneFails(t *testing.T) {
	db := setupTestDB(t)
	c1, brand, _ := createCollaboration(t, db, 100_000)
	c2, _, _ := createCollaboration(t, db, 100_000)
	fundWallet(t, db, brand.ID, domain.WalletTypeBrand, 100_000)

	milestoneSvc := NewMilestoneService(db)
	foreign, err := milestoneSvc.CreateBatch(c2.ID, []MilestoneInput{{Title: "All", AmountCents: 100_000}})
	require.NoError(t, err)

	svc := NewEscrowService(db)
	e, err := svc.CreateAccount(CreateEscrowInput{CollaborationID: c1.ID})
	require.NoError(t, err)
	_, err = svc.Fund(e.ID, brand.ID)
	require.NoError(t, err)

	_, err = svc.Release(e.ID, brand.ID, ReleaseEscrowInput{MilestoneID: &foreign[0].ID})
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestRefundReturnsHeldToBrand(t *testing.T) {
	db := setupTestDB(t)
	c, brand, _ := createCollaboration(t, db, 100_000)
	fundWallet(t, db, brand.ID, domain.WalletTypeBrand, 100_000)

	svc := NewEscrowService(db)
	e, err := svc.CreateAccount(CreateEscrowInput{CollaborationID: c.ID})
	require.NoError(t, err)
	_, err = svc.Fund(e.ID, brand.ID)
	require.NoError(t, err)

	e, err = svc.Refund(e.ID, "collaboration cancelled")
	require.NoError(t, err)
	assert.Equal(t, domain.EscrowStatusRefunded, e.Status)
	assert.Equal(t, int64(0), e.HeldCents)

	var w models.Wallet
	require.NoError(t, db.Where("user_id = ? AND type = ?", brand.ID, domain.WalletTypeBrand).First(&w).Error)
	assert.Equal(t, int64(100_000), w.BalanceCents)

	_, err = svc.Refund(e.ID, "again")
	assert.ErrorIs(t, err, domain.ErrNothingToRefund)
}

func TestOneEscrowPerCollaboration(t *testing.T) {
	db := setupTestDB(t)
	c, _, _ := createCollaboration(t, db, 100_000)

	svc := NewEscrowService(db)
	_, err := svc.CreateAccount(CreateEscrowInput{CollaborationID: c.ID})
	require.NoError(t, err)
	_, err = svc.CreateAccount(CreateEscrowInput{CollaborationID: c.ID})
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestCreateAccountUsesSnapshottedRate(t *testing.T) {
	db := setupTestDB(t)
	c, _, _ := createCollaboration(t, db, 100_000)

	// live config changing later must not affect the escrow fee
	require.NoError(t, db.Model(&models.Collaboration{}).Where("id = ?", c.ID).
		Update("commission_rate_bps", 2000).Error)

	svc := NewEscrowService(db)
	e, err := svc.CreateAccount(CreateEscrowInput{CollaborationID: c.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(2000), e.CommissionRateBps)
	assert.Equal(t, int64(20_000), e.PlatformFeeCents)
}
