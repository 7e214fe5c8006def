package types

// Event types for the session module.
// All event types use lowercase with underscore separator (module_action format)
const (
	EventTypeDeposit          = "session_deposit"
	EventTypeWithdrawDeposit  = "session_deposit_withdrawn"
	EventTypeSessionCreated   = "session_created"
	EventTypeProofAccepted    = "session_proof_accepted"
	EventTypeProofRejected    = "session_proof_rejected"
	EventTypeMarkedReady      = "session_marked_ready"
	EventTypeSessionSettled   = "session_settled"
	EventTypeEarningsCredited = "session_earnings_credited"
	EventTypeEarningsWithdraw = "session_earnings_withdrawn"
	EventTypeTreasuryWithdraw = "session_treasury_withdrawn"
	EventTypeParamsUpdated    = "session_params_updated"
)

// Event attribute keys for the session module.
const (
	AttributeKeySessionID   = "session_id"
	AttributeKeyRenter      = "renter"
	AttributeKeyHost        = "host"
	AttributeKeyDenom       = "denom"
	AttributeKeyAmount      = "amount"
	AttributeKeyUnitPrice   = "unit_price"
	AttributeKeyWorkUnits   = "work_units"
	AttributeKeyProvenWork  = "proven_work"
	AttributeKeyDigest      = "digest"
	AttributeKeyStatus      = "status"
	AttributeKeyPath        = "path"
	AttributeKeyHostShare   = "host_share"
	AttributeKeyFee         = "fee"
	AttributeKeyRefund      = "refund"
	AttributeKeyBeneficiary = "beneficiary"
	AttributeKeyDeadline    = "dispute_deadline"
)

// Settlement path labels attached to session_settled events.
const (
	SettlementPathClaim     = "claim"
	SettlementPathFinalize  = "finalize"
	SettlementPathTimeout   = "timeout"
	SettlementPathAbandoned = "abandoned"
	SettlementPathCancelled = "cancelled"
)
