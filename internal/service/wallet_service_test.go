package service

import (
	"testing"

	"collably/internal/domain"
	"collably/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDepositCreatesWalletAndLedgerRow(t *testing.T) {
	db := setupTestDB(t)
	brand := createUser(t, db, domain.RoleBrand)

	svc := NewWalletService(testConfig(), db)
	w, err := svc.Deposit(brand.ID, domain.WalletTypeBrand, 250_000, "charge_abc")
	require.NoError(t, err)
	assert.Equal(t, int64(250_000), w.BalanceCents)
	assert.Equal(t, "USD", w.Currency)

	var txns []models.WalletTransaction
	require.NoError(t, db.Where("wallet_id = ?", w.ID).Find(&txns).Error)
	require.Len(t, txns, 1)
	assert.Equal(t, domain.TxTypeDeposit, txns[0].Type)
	assert.Equal(t, int64(250_000), txns[0].AmountCents)
	assert.Equal(t, int64(250_000), txns[0].BalanceAfterCents)
	assert.Equal(t, "charge_abc", txns[0].Reference)
}

func TestBalanceWithoutWalletReturnsZeros(t *testing.T) {
	db := setupTestDB(t)
	u := createUser(t, db, domain.RoleInfluencer)

	svc := NewWalletService(testConfig(), db)
	b, err := svc.Balance(u.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), b.AvailableCents)
	assert.Equal(t, "USD", b.Currency)

	// the read must not have created a wallet
	var count int64
	db.Model(&models.Wallet{}).Where("user_id = ?", u.ID).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestGetOrCreateIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	u := createUser(t, db, domain.RoleInfluencer)

	svc := NewWalletService(testConfig(), db)
	w1, err := svc.GetOrCreate(u.ID, domain.WalletTypeInfluencer)
	require.NoError(t, err)
	w2, err := svc.GetOrCreate(u.ID, domain.WalletTypeInfluencer)
	require.NoError(t, err)
	assert.Equal(t, w1.ID, w2.ID)
}

func TestWithdrawRequiresVerifiedOwnMethod(t *testing.T) {
	db := setupTestDB(t)
	u := createUser(t, db, domain.RoleInfluencer)
	other := createUser(t, db, domain.RoleInfluencer)
	fundWallet(t, db, u.ID, domain.WalletTypeInfluencer, 100_000)

	unverified := models.PayoutMethod{UserID: u.ID, Type: domain.PayoutMethodBank, IsDefault: true}
	require.NoError(t, db.Create(&unverified).Error)
	foreign := models.PayoutMethod{UserID: other.ID, Type: domain.PayoutMethodBank, IsVerified: true}
	require.NoError(t, db.Create(&foreign).Error)

	svc := NewWalletService(testConfig(), db)
	_, err := svc.Withdraw(u.ID, WithdrawInput{AmountCents: 50_000, PayoutMethodID: unverified.ID})
	assert.ErrorIs(t, err, domain.ErrPayoutMethodNotVerified)

	_, err = svc.Withdraw(u.ID, WithdrawInput{AmountCents: 50_000, PayoutMethodID: foreign.ID})
	assert.ErrorIs(t, err, domain.ErrInvalidPayoutMethod)
}

func TestWithdrawInsufficientBalance(t *testing.T) {
	db := setupTestDB(t)
	u := createUser(t, db, domain.RoleInfluencer)
	w := fundWallet(t, db, u.ID, domain.WalletTypeInfluencer, 10_000)

	method := models.PayoutMethod{UserID: u.ID, Type: domain.PayoutMethodBank, IsVerified: true}
	require.NoError(t, db.Create(&method).Error)

	svc := NewWalletService(testConfig(), db)
	_, err := svc.Withdraw(u.ID, WithdrawInput{AmountCents: 10_001, PayoutMethodID: method.ID})
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)

	// balance untouched
	var got models.Wallet
	require.NoError(t, db.First(&got, w.ID).Error)
	assert.Equal(t, int64(10_000), got.BalanceCents)
}

func TestWithdrawDebitsAndRecords(t *testing.T) {
	db := setupTestDB(t)
	u := createUser(t, db, domain.RoleInfluencer)
	w := fundWallet(t, db, u.ID, domain.WalletTypeInfluencer, 100_000)

	method := models.PayoutMethod{UserID: u.ID, Type: domain.PayoutMethodPaypal, IsVerified: true, PaypalEmail: "u@example.com"}
	require.NoError(t, db.Create(&method).Error)

	svc := NewWalletService(testConfig(), db)
	txn, err := svc.Withdraw(u.ID, WithdrawInput{AmountCents: 40_000, PayoutMethodID: method.ID})
	require.NoError(t, err)
	assert.Equal(t, domain.TxTypeWithdrawal, txn.Type)
	assert.Equal(t, int64(-40_000), txn.AmountCents)
	assert.Equal(t, int64(60_000), txn.BalanceAfterCents)

	var got models.Wallet
	require.NoError(t, db.First(&got, w.ID).Error)
	assert.Equal(t, int64(60_000), got.BalanceCents)
}

func TestTransactionsNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	u := createUser(t, db, domain.RoleBrand)

	svc := NewWalletService(testConfig(), db)
	_, err := svc.Deposit(u.ID, domain.WalletTypeBrand, 100, "first")
	require.NoError(t, err)
	_, err = svc.Deposit(u.ID, domain.WalletTypeBrand, 200, "second")
	require.NoError(t, err)

	list, err := svc.Transactions(u.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "second", list[0].Reference)
	assert.Equal(t, "first", list[1].Reference)
}
