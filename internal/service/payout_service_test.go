package service

import (
	"testing"

	"collably/internal/domain"
	"collably/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstPayoutMethodBecomesDefault(t *testing.T) {
	db := setupTestDB(t)
	u := createUser(t, db, domain.RoleInfluencer)

	svc := NewPayoutMethodService(db)
	first, err := svc.Add(u.ID, AddPayoutMethodInput{Type: domain.PayoutMethodBank, BankName: "First Bank", AccountLast4: "1234"})
	require.NoError(t, err)
	assert.True(t, first.IsDefault)
	assert.False(t, first.IsVerified)

	second, err := svc.Add(u.ID, AddPayoutMethodInput{Type: domain.PayoutMethodPaypal, PaypalEmail: "u@example.com"})
	require.NoError(t, err)
	assert.False(t, second.IsDefault)
}

func TestAddRejectsUnknownType(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPayoutMethodService(db)
	_, err := svc.Add(1, AddPayoutMethodInput{Type: "CASH"})
	assert.ErrorIs(t, err, domain.ErrInvalidPayoutMethod)
}

func TestSetDefaultSwapsAtomically(t *testing.T) {
	db := setupTestDB(t)
	u := createUser(t, db, domain.RoleInfluencer)

	svc := NewPayoutMethodService(db)
	first, err := svc.Add(u.ID, AddPayoutMethodInput{Type: domain.PayoutMethodBank})
	require.NoError(t, err)
	second, err := svc.Add(u.ID, AddPayoutMethodInput{Type: domain.PayoutMethodPaypal})
	require.NoError(t, err)

	promoted, err := svc.SetDefault(u.ID, second.ID)
	require.NoError(t, err)
	assert.True(t, promoted.IsDefault)

	var count int64
	db.Model(&models.PayoutMethod{}).Where("user_id = ? AND is_default = ?", u.ID, true).Count(&count)
	assert.Equal(t, int64(1), count)

	var old models.PayoutMethod
	require.NoError(t, db.First(&old, first.ID).Error)
	assert.False(t, old.IsDefault)
}

func TestDeleteDefaultPromotesSurvivor(t *testing.T) {
	db := setupTestDB(t)
	u := createUser(t, db, domain.RoleInfluencer)

	svc := NewPayoutMethodService(db)
	first, err := svc.Add(u.ID, AddPayoutMethodInput{Type: domain.PayoutMethodBank})
	require.NoError(t, err)
	second, err := svc.Add(u.ID, AddPayoutMethodInput{Type: domain.PayoutMethodPaypal})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(u.ID, first.ID))

	var survivor models.PayoutMethod
	require.NoError(t, db.First(&survivor, second.ID).Error)
	assert.True(t, survivor.IsDefault)
}

func TestDeleteForeignMethodNotFound(t *testing.T) {
	db := setupTestDB(t)
	u := createUser(t, db, domain.RoleInfluencer)
	other := createUser(t, db, domain.RoleInfluencer)

	svc := NewPayoutMethodService(db)
	m, err := svc.Add(other.ID, AddPayoutMethodInput{Type: domain.PayoutMethodBank})
	require.NoError(t, err)

	err = svc.Delete(u.ID, m.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestVerifyFlagsMethodUsable(t *testing.T) {
	db := setupTestDB(t)
	u := createUser(t, db, domain.RoleInfluencer)

	svc := NewPayoutMethodService(db)
	m, err := svc.Add(u.ID, AddPayoutMethodInput{Type: domain.PayoutMethodBank})
	require.NoError(t, err)

	verified, err := svc.Verify(m.ID)
	require.NoError(t, err)
	assert.True(t, verified.IsVerified)
}
