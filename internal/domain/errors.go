package domain

import "errors"

// Business failures surfaced to callers. Each reflects a rule the caller must
// correct before retrying; none are transient. Storage errors propagate
// separately and must not be folded into these.
var (
	ErrNotFound               = errors.New("not found")
	ErrForbidden              = errors.New("action not permitted for role")
	ErrInvalidTransition      = errors.New("action not permitted from current status")
	ErrInvalidState           = errors.New("operation not valid in current state")
	ErrAmountMismatch         = errors.New("milestone amounts must sum to the agreed collaboration amount")
	ErrInsufficientBalance    = errors.New("insufficient wallet balance")
	ErrExceedsHeld            = errors.New("release amount exceeds held amount")
	ErrAlreadySigned          = errors.New("contract already signed by this party")
	ErrContractNotFullySigned = errors.New("both parties must sign the contract")
	ErrInvalidPayoutMethod    = errors.New("payout method does not belong to user")
	ErrPayoutMethodNotVerified = errors.New("payout method is not verified")
	ErrNothingToRefund        = errors.New("no funds to refund")
	ErrMissingReleaseTarget   = errors.New("either milestoneId or amount must be provided")
)
