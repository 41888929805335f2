package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveTransition(t *testing.T) {
	tests := []struct {
		name    string
		status  string
		action  string
		role    string
		next    string
		wantErr error
	}{
		{"influencer accepts proposal", StatusProposalSent, ActionAccept, RoleInfluencer, StatusProposalAccepted, nil},
		{"brand cannot accept own proposal", StatusProposalSent, ActionAccept, RoleBrand, "", ErrForbidden},
		{"brand withdraws proposal", StatusProposalSent, ActionWithdraw, RoleBrand, StatusCancelled, nil},
		{"publish is not valid from proposal", StatusProposalSent, ActionPublish, RoleInfluencer, "", ErrInvalidTransition},
		{"negotiation can be accepted by either side", StatusNegotiating, ActionAccept, RoleBrand, StatusProposalAccepted, nil},
		{"only brand generates contract", StatusProposalAccepted, ActionGenerateContract, RoleInfluencer, "", ErrForbidden},
		{"influencer starts production", StatusContractSigned, ActionStartProduction, RoleInfluencer, StatusInProduction, nil},
		{"brand reviews submitted content", StatusContentSubmitted, ActionApproveContent, RoleBrand, StatusContentApproved, nil},
		{"revision loops back", StatusRevisionRequested, ActionSubmitContent, RoleInfluencer, StatusContentSubmitted, nil},
		{"influencer requests payment", StatusPublished, ActionRequestPayment, RoleInfluencer, StatusPaymentPending, nil},
		{"brand completes", StatusPaymentPending, ActionComplete, RoleBrand, StatusCompleted, nil},
		{"dispute from production", StatusInProduction, ActionDispute, RoleBrand, StatusDisputed, nil},
		{"only admin resolves disputes", StatusDisputed, ActionResolveCancel, RoleInfluencer, "", ErrForbidden},
		{"admin resolves to cancelled", StatusDisputed, ActionResolveCancel, RoleAdmin, StatusCancelled, nil},
		{"admin may take any valid edge", StatusProposalSent, ActionAccept, RoleAdmin, StatusProposalAccepted, nil},
		{"no way out of completed", StatusCompleted, ActionCancel, RoleAdmin, "", ErrInvalidTransition},
		{"no way out of cancelled", StatusCancelled, ActionAccept, RoleAdmin, "", ErrInvalidTransition},
		{"unknown status", "LIMBO", ActionAccept, RoleAdmin, "", ErrInvalidTransition},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, err := ResolveTransition(tt.status, tt.action, tt.role)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.next, next)
		})
	}
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, IsTerminal(StatusCompleted))
	assert.True(t, IsTerminal(StatusCancelled))
	assert.False(t, IsTerminal(StatusProposalSent))
	assert.False(t, IsTerminal(StatusDisputed))
}

func TestAvailableActionsByRole(t *testing.T) {
	assert.ElementsMatch(t,
		[]string{ActionAccept, ActionNegotiate, ActionDecline},
		AvailableActions(StatusProposalSent, RoleInfluencer))
	assert.ElementsMatch(t,
		[]string{ActionWithdraw},
		AvailableActions(StatusProposalSent, RoleBrand))
	assert.ElementsMatch(t,
		[]string{ActionAccept, ActionNegotiate, ActionDecline, ActionWithdraw},
		AvailableActions(StatusProposalSent, RoleAdmin))
	assert.Empty(t, AvailableActions(StatusCompleted, RoleAdmin))
}

// Every edge in the table must point at a status the table knows about, so
// a collaboration can never be driven into a state with undefined behavior.
func TestTransitionTableIsClosed(t *testing.T) {
	for status, edges := range transitionTable {
		for _, e := range edges {
			_, ok := transitionTable[e.Next]
			assert.True(t, ok, "edge %s -> %s (%s) leaves the table", status, e.Next, e.Action)
			assert.NotEmpty(t, e.Roles, "edge %s (%s) has no roles", status, e.Action)
		}
	}
}
