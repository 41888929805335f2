package service

import (
	"testing"

	"collably/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBatchSumMustMatchAgreedAmount(t *testing.T) {
	db := setupTestDB(t)
	c, _, _ := createCollaboration(t, db, 500_000)

	svc := NewMilestoneService(db)
	_, err := svc.CreateBatch(c.ID, []MilestoneInput{
		{Title: "Draft", AmountCents: 200_000},
		{Title: "Final", AmountCents: 200_000},
	})
	assert.ErrorIs(t, err, domain.ErrAmountMismatch)
}

func TestCreateBatchToleratesOneCentRounding(t *testing.T) {
	db := setupTestDB(t)
	c, _, _ := createCollaboration(t, db, 100_001)

	svc := NewMilestoneService(db)
	created, err := svc.CreateBatch(c.ID, []MilestoneInput{
		{Title: "Half", AmountCents: 50_000},
		{Title: "Half", AmountCents: 50_000},
	})
	require.NoError(t, err)
	assert.Len(t, created, 2)
}

func TestCreateBatchAssignsSequentialPositions(t *testing.T) {
	db := setupTestDB(t)
	c, _, _ := createCollaboration(t, db, 300_000)

	svc := NewMilestoneService(db)
	created, err := svc.CreateBatch(c.ID, []MilestoneInput{
		{Title: "Concept", AmountCents: 100_000},
		{Title: "Draft", AmountCents: 100_000},
		{Title: "Final", AmountCents: 100_000},
	})
	require.NoError(t, err)
	require.Len(t, created, 3)
	for i, m := range created {
		assert.Equal(t, i+1, m.Position)
		assert.Equal(t, domain.MilestoneStatusPending, m.Status)
	}
}

func TestCreateBatchUnknownCollaboration(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMilestoneService(db)
	_, err := svc.CreateBatch(999, []MilestoneInput{{Title: "x", AmountCents: 1}})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateStatusStampsTimestamps(t *testing.T) {
	db := setupTestDB(t)
	c, _, _ := createCollaboration(t, db, 100_000)

	svc := NewMilestoneService(db)
	created, err := svc.CreateBatch(c.ID, []MilestoneInput{{Title: "All", AmountCents: 100_000}})
	require.NoError(t, err)

	approved, err := svc.UpdateStatus(created[0].ID, domain.MilestoneStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, domain.MilestoneStatusApproved, approved.Status)
	require.NotNil(t, approved.ApprovedAt)
	assert.Nil(t, approved.PaidAt)
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMilestoneService(db)
	_, err := svc.UpdateStatus(1, "SHIPPED")
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}
