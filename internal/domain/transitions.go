package domain

// Transition is one allowed (action → next status) edge, tagged with the
// roles permitted to take it. Admins may take any edge valid for the status.
type Transition struct {
	Action string
	Next   string
	Roles  []string
}

// transitionTable is the single source of truth for the collaboration state
// machine. Both Transition resolution and AvailableActions derive from it.
// COMPLETED and CANCELLED have no outbound edges.
var transitionTable = map[string][]Transition{
	StatusProposalSent: {
		{ActionAccept, StatusProposalAccepted, []string{RoleInfluencer}},
		{ActionNegotiate, StatusNegotiating, []string{RoleInfluencer}},
		{ActionDecline, StatusCancelled, []string{RoleInfluencer}},
		{ActionWithdraw, StatusCancelled, []string{RoleBrand}},
	},
	StatusProposalAccepted: {
		{ActionGenerateContract, StatusContractPending, []string{RoleBrand}},
		{ActionCancel, StatusCancelled, []string{RoleBrand, RoleInfluencer}},
	},
	StatusNegotiating: {
		{ActionAccept, StatusProposalAccepted, []string{RoleBrand, RoleInfluencer}},
		{ActionCancel, StatusCancelled, []string{RoleBrand, RoleInfluencer}},
	},
	StatusContractPending: {
		{ActionSign, StatusContractSigned, []string{RoleBrand, RoleInfluencer}},
		{ActionCancel, StatusCancelled, []string{RoleBrand, RoleInfluencer}},
	},
	StatusContractSigned: {
		{ActionStartProduction, StatusInProduction, []string{RoleInfluencer}},
		{ActionCancel, StatusCancelled, []string{RoleBrand, RoleInfluencer}},
		{ActionDispute, StatusDisputed, []string{RoleBrand, RoleInfluencer}},
	},
	StatusInProduction: {
		{ActionSubmitContent, StatusContentSubmitted, []string{RoleInfluencer}},
		{ActionCancel, StatusCancelled, []string{RoleBrand, RoleInfluencer}},
		{ActionDispute, StatusDisputed, []string{RoleBrand, RoleInfluencer}},
	},
	StatusContentSubmitted: {
		{ActionApproveContent, StatusContentApproved, []string{RoleBrand}},
		{ActionRequestRevision, StatusRevisionRequested, []string{RoleBrand}},
		{ActionDispute, StatusDisputed, []string{RoleBrand, RoleInfluencer}},
	},
	StatusRevisionRequested: {
		{ActionSubmitContent, StatusContentSubmitted, []string{RoleInfluencer}},
		{ActionCancel, StatusCancelled, []string{RoleBrand, RoleInfluencer}},
		{ActionDispute, StatusDisputed, []string{RoleBrand, RoleInfluencer}},
	},
	StatusContentApproved: {
		{ActionPublish, StatusPublished, []string{RoleInfluencer}},
		{ActionDispute, StatusDisputed, []string{RoleBrand, RoleInfluencer}},
	},
	StatusPublished: {
		{ActionRequestPayment, StatusPaymentPending, []string{RoleInfluencer}},
		{ActionDispute, StatusDisputed, []string{RoleBrand, RoleInfluencer}},
	},
	StatusPaymentPending: {
		{ActionComplete, StatusCompleted, []string{RoleBrand}},
		{ActionDispute, StatusDisputed, []string{RoleBrand, RoleInfluencer}},
	},
	StatusDisputed: {
		{ActionResolveComplete, StatusCompleted, []string{RoleAdmin}},
		{ActionResolveCancel, StatusCancelled, []string{RoleAdmin}},
	},
	StatusCompleted: {},
	StatusCancelled: {},
}

// IsTerminal reports whether a status has no outbound transitions.
func IsTerminal(status string) bool {
	return status == StatusCompleted || status == StatusCancelled
}

// ResolveTransition returns the next status for taking action from status as
// role. ErrInvalidTransition when the action does not exist for the status,
// ErrForbidden when it exists but the role may not take it.
func ResolveTransition(status, action, role string) (string, error) {
	edges, ok := transitionTable[status]
	if !ok {
		return "", ErrInvalidTransition
	}
	for _, t := range edges {
		if t.Action != action {
			continue
		}
		if role == RoleAdmin {
			return t.Next, nil
		}
		for _, r := range t.Roles {
			if r == role {
				return t.Next, nil
			}
		}
		return "", ErrForbidden
	}
	return "", ErrInvalidTransition
}

// AvailableActions lists the actions role can take from status. Admins see
// every action valid for the status. Terminal statuses yield an empty slice.
func AvailableActions(status, role string) []string {
	actions := []string{}
	for _, t := range transitionTable[status] {
		if role == RoleAdmin {
			actions = append(actions, t.Action)
			continue
		}
		for _, r := range t.Roles {
			if r == role {
				actions = append(actions, t.Action)
				break
			}
		}
	}
	return actions
}
