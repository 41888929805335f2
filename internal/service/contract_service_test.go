package service

import (
	"testing"

	"collably/internal/domain"
	"collably/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateContractMovesToContractPending(t *testing.T) {
	db := setupTestDB(t)
	c, brand, _ := createCollaboration(t, db, 500_000)
	setStatus(t, db, c.ID, domain.StatusProposalAccepted)

	svc := NewContractService(db)
	contract, err := svc.Generate(c.ID, brand.ID, domain.RoleBrand, GenerateContractInput{})
	require.NoError(t, err)
	assert.Equal(t, c.ID, contract.CollaborationID)
	assert.Contains(t, contract.Terms, "5000.00")
	assert.Contains(t, contract.Terms, "500.00")
	assert.False(t, contract.IsFullySigned)

	var got models.Collaboration
	require.NoError(t, db.First(&got, c.ID).Error)
	assert.Equal(t, domain.StatusContractPending, got.Status)
}

func TestGenerateContractFromWrongStatusFails(t *testing.T) {
	db := setupTestDB(t)
	c, brand, _ := createCollaboration(t, db, 100_000)

	svc := NewContractService(db)
	_, err := svc.Generate(c.ID, brand.ID, domain.RoleBrand, GenerateContractInput{})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestGenerateContractUsesTemplate(t *testing.T) {
	db := setupTestDB(t)
	c, brand, _ := createCollaboration(t, db, 100_000)
	setStatus(t, db, c.ID, domain.StatusProposalAccepted)

	tpl := &models.ContractTemplate{Name: "standard", Body: "standard terms v1"}
	require.NoError(t, db.Create(tpl).Error)

	svc := NewContractService(db)
	contract, err := svc.Generate(c.ID, brand.ID, domain.RoleBrand, GenerateContractInput{TemplateID: &tpl.ID})
	require.NoError(t, err)
	assert.Equal(t, "standard terms v1", contract.Terms)
}

func TestSignBothPartiesCompletesContract(t *testing.T) {
	db := setupTestDB(t)
	c, brand, influencer := createCollaboration(t, db, 100_000)
	setStatus(t, db, c.ID, domain.StatusProposalAccepted)

	svc := NewContractService(db)
	_, err := svc.Generate(c.ID, brand.ID, domain.RoleBrand, GenerateContractInput{})
	require.NoError(t, err)

	first, err := svc.Sign(c.ID, brand.ID, domain.RoleBrand, SignContractInput{Signature: "Brand Inc"})
	require.NoError(t, err)
	assert.False(t, first.IsFullySigned)
	require.NotNil(t, first.BrandSignedAt)
	assert.Nil(t, first.InfluencerSignedAt)

	// collaboration unchanged until both have signed
	var mid models.Collaboration
	require.NoError(t, db.First(&mid, c.ID).Error)
	assert.Equal(t, domain.StatusContractPending, mid.Status)

	second, err := svc.Sign(c.ID, influencer.ID, domain.RoleInfluencer, SignContractInput{Signature: "Jane Doe"})
	require.NoError(t, err)
	assert.True(t, second.IsFullySigned)
	require.NotNil(t, second.InfluencerSignedAt)

	var got models.Collaboration
	require.NoError(t, db.First(&got, c.ID).Error)
	assert.Equal(t, domain.StatusContractSigned, got.Status)
}

func TestSignTwiceSamePartyFails(t *testing.T) {
	db := setupTestDB(t)
	c, brand, _ := createCollaboration(t, db, 100_000)
	setStatus(t, db, c.ID, domain.StatusProposalAccepted)

	svc := NewContractService(db)
	_, err := svc.Generate(c.ID, brand.ID, domain.RoleBrand, GenerateContractInput{})
	require.NoError(t, err)

	_, err = svc.Sign(c.ID, brand.ID, domain.RoleBrand, SignContractInput{Signature: "Brand Inc"})
	require.NoError(t, err)
	_, err = svc.Sign(c.ID, brand.ID, domain.RoleBrand, SignContractInput{Signature: "Brand Inc"})
	assert.ErrorIs(t, err, domain.ErrAlreadySigned)
}

func TestSignRejectsNonParticipantRole(t *testing.T) {
	db := setupTestDB(t)
	svc := NewContractService(db)
	_, err := svc.Sign(1, 1, domain.RoleAdmin, SignContractInput{Signature: "x"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
