package domain

const (
	RoleBrand      = "BRAND"
	RoleInfluencer = "INFLUENCER"
	RoleAdmin      = "ADMIN"
)

// Collaboration lifecycle statuses.
const (
	StatusProposalSent      = "PROPOSAL_SENT"
	StatusProposalAccepted  = "PROPOSAL_ACCEPTED"
	StatusNegotiating       = "NEGOTIATING"
	StatusContractPending   = "CONTRACT_PENDING"
	StatusContractSigned    = "CONTRACT_SIGNED"
	StatusInProduction      = "IN_PRODUCTION"
	StatusContentSubmitted  = "CONTENT_SUBMITTED"
	StatusRevisionRequested = "REVISION_REQUESTED"
	StatusContentApproved   = "CONTENT_APPROVED"
	StatusPublished         = "PUBLISHED"
	StatusPaymentPending    = "PAYMENT_PENDING"
	StatusCompleted         = "COMPLETED"
	StatusCancelled         = "CANCELLED"
	StatusDisputed          = "DISPUTED"
)

// Actions a party can take against a collaboration.
const (
	ActionAccept           = "ACCEPT"
	ActionNegotiate        = "NEGOTIATE"
	ActionDecline          = "DECLINE"
	ActionWithdraw         = "WITHDRAW"
	ActionGenerateContract = "GENERATE_CONTRACT"
	ActionSign             = "SIGN"
	ActionStartProduction  = "START_PRODUCTION"
	ActionSubmitContent    = "SUBMIT_CONTENT"
	ActionApproveContent   = "APPROVE_CONTENT"
	ActionRequestRevision  = "REQUEST_REVISION"
	ActionPublish          = "PUBLISH"
	ActionRequestPayment   = "REQUEST_PAYMENT"
	ActionComplete         = "COMPLETE"
	ActionCancel           = "CANCEL"
	ActionDispute          = "DISPUTE"
	ActionResolveComplete  = "RESOLVE_COMPLETE"
	ActionResolveCancel    = "RESOLVE_CANCEL"
)

const (
	WalletTypeBrand      = "BRAND_WALLET"
	WalletTypeInfluencer = "INFLUENCER_WALLET"
)

const (
	TxTypeDeposit       = "DEPOSIT"
	TxTypeWithdrawal    = "WITHDRAWAL"
	TxTypeEscrowHold    = "ESCROW_HOLD"
	TxTypeEscrowRelease = "ESCROW_RELEASE"
	TxTypePlatformFee   = "PLATFORM_FEE"
	TxTypePayout        = "PAYOUT"
	TxTypeRefund        = "REFUND"
)

const (
	EscrowStatusPending           = "PENDING"
	EscrowStatusFunded            = "FUNDED"
	EscrowStatusPartiallyReleased = "PARTIALLY_RELEASED"
	EscrowStatusFullyReleased     = "FULLY_RELEASED"
	EscrowStatusRefunded          = "REFUNDED"
)

const (
	MilestoneStatusPending  = "PENDING"
	MilestoneStatusApproved = "APPROVED"
	MilestoneStatusPaid     = "PAID"
	MilestoneStatusRejected = "REJECTED"
)

const (
	DeliverableStatusPending           = "PENDING"
	DeliverableStatusSubmitted         = "SUBMITTED"
	DeliverableStatusApproved          = "APPROVED"
	DeliverableStatusRevisionRequested = "REVISION_REQUESTED"
	DeliverableStatusRejected          = "REJECTED"
)

// Review decisions accepted from callers; REVISION_NEEDED is stored as
// REVISION_REQUESTED on the deliverable.
const (
	ReviewDecisionApproved       = "APPROVED"
	ReviewDecisionRevisionNeeded = "REVISION_NEEDED"
	ReviewDecisionRejected       = "REJECTED"
)

const (
	InvoiceTypeBrandDeposit     = "BRAND_DEPOSIT"
	InvoiceTypeInfluencerPayout = "INFLUENCER_PAYOUT"
	InvoiceTypePlatformFee      = "PLATFORM_FEE"
)

const (
	InvoiceStatusDraft = "DRAFT"
	InvoiceStatusSent  = "SENT"
	InvoiceStatusPaid  = "PAID"
)

const (
	PayoutMethodBank   = "BANK"
	PayoutMethodPaypal = "PAYPAL"
)
