package service

import (
	"testing"

	"collably/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitCreatesImmutableVersions(t *testing.T) {
	db := setupTestDB(t)
	c, _, _ := createCollaboration(t, db, 100_000)

	svc := NewDeliverableService(db)
	d, err := svc.Create(c.ID, "Instagram reel", "30s teaser")
	require.NoError(t, err)
	assert.Equal(t, 0, d.CurrentVersion)
	assert.Equal(t, domain.DeliverableStatusPending, d.Status)

	d, err = svc.Submit(d.ID, SubmitDeliverableInput{
		MediaURLs: []string{"https://cdn.example.com/v1.mp4"},
		Caption:   "first cut",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, d.CurrentVersion)
	assert.Equal(t, domain.DeliverableStatusSubmitted, d.Status)

	d, err = svc.Submit(d.ID, SubmitDeliverableInput{
		MediaURLs: []string{"https://cdn.example.com/v2.mp4"},
		Caption:   "re-edit",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, d.CurrentVersion)

	versions, err := svc.Versions(d.ID)
	require.NoError(t, err)
	require.Len(t, versions, 2)
	// newest first
	assert.Equal(t, 2, versions[0].Version)
	assert.False(t, versions[0].Superseded)
	assert.Equal(t, 1, versions[1].Version)
	assert.True(t, versions[1].Superseded)
	assert.Equal(t, []string{"https://cdn.example.com/v1.mp4"}, versions[1].MediaURLs)
}

func TestReviewRevisionNeededStoredAsRevisionRequested(t *testing.T) {
	db := setupTestDB(t)
	c, brand, _ := createCollaboration(t, db, 100_000)

	svc := NewDeliverableService(db)
	d, err := svc.Create(c.ID, "TikTok post", "")
	require.NoError(t, err)
	_, err = svc.Submit(d.ID, SubmitDeliverableInput{MediaURLs: []string{"https://cdn.example.com/a.mp4"}})
	require.NoError(t, err)

	reviewed, err := svc.Review(d.ID, brand.ID, ReviewDeliverableInput{
		Decision: domain.ReviewDecisionRevisionNeeded,
		Feedback: "logo is cropped",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.DeliverableStatusRevisionRequested, reviewed.Status)

	versions, err := svc.Versions(d.ID)
	require.NoError(t, err)
	require.Len(t, versions, 1)
	assert.True(t, versions[0].Reviewed)
	assert.Equal(t, "logo is cropped", versions[0].Feedback)
	require.NotNil(t, versions[0].ReviewerID)
	assert.Equal(t, brand.ID, *versions[0].ReviewerID)
}

func TestReviewApprovedStampsApprovedAt(t *testing.T) {
	db := setupTestDB(t)
	c, brand, _ := createCollaboration(t, db, 100_000)

	svc := NewDeliverableService(db)
	d, err := svc.Create(c.ID, "Story", "")
	require.NoError(t, err)
	_, err = svc.Submit(d.ID, SubmitDeliverableInput{MediaURLs: []string{"https://cdn.example.com/s.jpg"}})
	require.NoError(t, err)

	reviewed, err := svc.Review(d.ID, brand.ID, ReviewDeliverableInput{Decision: domain.ReviewDecisionApproved})
	require.NoError(t, err)
	assert.Equal(t, domain.DeliverableStatusApproved, reviewed.Status)
	require.NotNil(t, reviewed.ApprovedAt)
}

func TestReviewWithoutSubmissionFails(t *testing.T) {
	db := setupTestDB(t)
	c, brand, _ := createCollaboration(t, db, 100_000)

	svc := NewDeliverableService(db)
	d, err := svc.Create(c.ID, "Post", "")
	require.NoError(t, err)

	_, err = svc.Review(d.ID, brand.ID, ReviewDeliverableInput{Decision: domain.ReviewDecisionApproved})
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestReviewRejectsUnknownDecision(t *testing.T) {
	db := setupTestDB(t)
	svc := NewDeliverableService(db)
	_, err := svc.Review(1, 1, ReviewDeliverableInput{Decision: "MAYBE"})
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}
