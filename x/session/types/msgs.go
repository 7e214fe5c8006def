package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message type names used for amino registration and CLI routing.
const (
	TypeMsgDeposit          = "deposit"
	TypeMsgWithdrawDeposit  = "withdraw_deposit"
	TypeMsgCreateSession    = "create_session"
	TypeMsgSubmitProof      = "submit_proof"
	TypeMsgClaim            = "claim"
	TypeMsgMarkReady        = "mark_ready"
	TypeMsgFinalize         = "finalize"
	TypeMsgTriggerTimeout   = "trigger_timeout"
	TypeMsgClaimAbandoned   = "claim_abandoned"
	TypeMsgCancelSession    = "cancel_session"
	TypeMsgWithdrawEarnings = "withdraw_earnings"
	TypeMsgWithdrawTreasury = "withdraw_treasury"
	TypeMsgUpdateParams     = "update_params"
)

var (
	_ sdk.Msg = &MsgDeposit{}
	_ sdk.Msg = &MsgWithdrawDeposit{}
	_ sdk.Msg = &MsgCreateSession{}
	_ sdk.Msg = &MsgSubmitProof{}
	_ sdk.Msg = &MsgClaim{}
	_ sdk.Msg = &MsgMarkReady{}
	_ sdk.Msg = &MsgFinalize{}
	_ sdk.Msg = &MsgTriggerTimeout{}
	_ sdk.Msg = &MsgClaimAbandoned{}
	_ sdk.Msg = &MsgCancelSession{}
	_ sdk.Msg = &MsgWithdrawEarnings{}
	_ sdk.Msg = &MsgWithdrawTreasury{}
	_ sdk.Msg = &MsgUpdateParams{}
)

// MsgDeposit credits the depositor's ledger balance after pulling the coin
// into module custody.
type MsgDeposit struct {
	Depositor string   `json:"depositor"`
	Amount    sdk.Coin `json:"amount"`
}

type MsgDepositResponse struct{}

func (m *MsgDeposit) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Depositor); err != nil {
		return ErrInvalidAddress.Wrapf("depositor: %v", err)
	}
	if err := m.Amount.Validate(); err != nil {
		return ErrZeroAmount.Wrapf("amount: %v", err)
	}
	if m.Amount.IsZero() {
		return ErrZeroAmount.Wrap("deposit amount is zero")
	}
	return nil
}

func (m *MsgDeposit) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(m.Depositor)
	return []sdk.AccAddress{addr}
}

// MsgWithdrawDeposit releases uncommitted deposit balance back to the
// depositor.
type MsgWithdrawDeposit struct {
	Depositor string   `json:"depositor"`
	Amount    sdk.Coin `json:"amount"`
}

type MsgWithdrawDepositResponse struct{}

func (m *MsgWithdrawDeposit) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Depositor); err != nil {
		return ErrInvalidAddress.Wrapf("depositor: %v", err)
	}
	if err := m.Amount.Validate(); err != nil {
		return ErrZeroAmount.Wrapf("amount: %v", err)
	}
	if m.Amount.IsZero() {
		return ErrZeroAmount.Wrap("withdrawal amount is zero")
	}
	return nil
}

func (m *MsgWithdrawDeposit) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(m.Depositor)
	return []sdk.AccAddress{addr}
}

// MsgCreateSession opens a metered escrow session against a host, committing
// the deposit from the renter's ledger balance.
type MsgCreateSession struct {
	Renter               string   `json:"renter"`
	Host                 string   `json:"host"`
	Deposit              sdk.Coin `json:"deposit"`
	UnitPrice            math.Int `json:"unit_price"`
	Capability           string   `json:"capability,omitempty"`
	MaxDurationSeconds   uint64   `json:"max_duration_seconds"`
	ProofIntervalSeconds uint64   `json:"proof_interval_seconds,omitempty"`
}

type MsgCreateSessionResponse struct {
	SessionId uint64 `json:"session_id"`
}

func (m *MsgCreateSession) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Renter); err != nil {
		return ErrInvalidAddress.Wrapf("renter: %v", err)
	}
	if _, err := sdk.AccAddressFromBech32(m.Host); err != nil {
		return ErrInvalidAddress.Wrapf("host: %v", err)
	}
	if m.Renter == m.Host {
		return ErrInvalidAddress.Wrap("renter and host must differ")
	}
	if err := m.Deposit.Validate(); err != nil {
		return ErrZeroAmount.Wrapf("deposit: %v", err)
	}
	if m.Deposit.IsZero() {
		return ErrZeroAmount.Wrap("deposit is zero")
	}
	if m.UnitPrice.IsNil() || !m.UnitPrice.IsPositive() {
		return ErrInvalidPrice
	}
	if m.MaxDurationSeconds == 0 {
		return ErrInvalidDuration.Wrap("max duration is zero")
	}
	return nil
}

func (m *MsgCreateSession) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(m.Renter)
	return []sdk.AccAddress{addr}
}

// MsgSubmitProof advances a session's proven-work counter with verified proof
// material. ProofCid and DeltaCid are opaque pointers to off-chain artifacts
// and are not validated beyond length caps.
type MsgSubmitProof struct {
	Host      string `json:"host"`
	SessionId uint64 `json:"session_id"`
	WorkUnits uint64 `json:"work_units"`
	Digest    string `json:"digest"`
	Material  []byte `json:"material,omitempty"`
	ProofCid  string `json:"proof_cid,omitempty"`
	DeltaCid  string `json:"delta_cid,omitempty"`
}

type MsgSubmitProofResponse struct {
	ProvenWork uint64 `json:"proven_work"`
}

// MaxCidLength caps the opaque content identifier fields.
const MaxCidLength = 512

// MaxWorkUnitsPerProof caps a single submission's claimed units at CheckTx.
// The deposit-backed capacity gate in the keeper is the real limit; this bound
// only keeps absurd claims out of the mempool.
const MaxWorkUnitsPerProof = uint64(1) << 32

func (m *MsgSubmitProof) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Host); err != nil {
		return ErrInvalidAddress.Wrapf("host: %v", err)
	}
	if m.SessionId == 0 {
		return ErrSessionNotFound.Wrap("session id is zero")
	}
	if m.WorkUnits == 0 {
		return ErrZeroAmount.Wrap("work units must be positive")
	}
	if m.WorkUnits > MaxWorkUnitsPerProof {
		return ErrInvalidProof.Wrapf("work units exceed per-proof cap %d", MaxWorkUnitsPerProof)
	}
	if m.Digest == "" {
		return ErrInvalidProof.Wrap("digest is empty")
	}
	if len(m.ProofCid) > MaxCidLength || len(m.DeltaCid) > MaxCidLength {
		return ErrInvalidProof.Wrapf("content identifier exceeds %d bytes", MaxCidLength)
	}
	return nil
}

func (m *MsgSubmitProof) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(m.Host)
	return []sdk.AccAddress{addr}
}

// MsgClaim settles an active session against its accumulated proofs.
type MsgClaim struct {
	Host      string `json:"host"`
	SessionId uint64 `json:"session_id"`
}

type MsgClaimResponse struct{}

func (m *MsgClaim) ValidateBasic() error {
	return validatePartyMsg(m.Host, m.SessionId)
}

func (m *MsgClaim) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(m.Host)
	return []sdk.AccAddress{addr}
}

// MsgMarkReady is the host half of the cooperative completion handshake.
type MsgMarkReady struct {
	Host      string `json:"host"`
	SessionId uint64 `json:"session_id"`
}

type MsgMarkReadyResponse struct{}

func (m *MsgMarkReady) ValidateBasic() error {
	return validatePartyMsg(m.Host, m.SessionId)
}

func (m *MsgMarkReady) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(m.Host)
	return []sdk.AccAddress{addr}
}

// MsgFinalize is the renter half of the cooperative completion handshake.
type MsgFinalize struct {
	Renter    string `json:"renter"`
	SessionId uint64 `json:"session_id"`
}

type MsgFinalizeResponse struct{}

func (m *MsgFinalize) ValidateBasic() error {
	return validatePartyMsg(m.Renter, m.SessionId)
}

func (m *MsgFinalize) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(m.Renter)
	return []sdk.AccAddress{addr}
}

// MsgTriggerTimeout settles a session whose max duration has elapsed. Callable
// by anyone.
type MsgTriggerTimeout struct {
	Caller    string `json:"caller"`
	SessionId uint64 `json:"session_id"`
}

type MsgTriggerTimeoutResponse struct{}

func (m *MsgTriggerTimeout) ValidateBasic() error {
	return validatePartyMsg(m.Caller, m.SessionId)
}

func (m *MsgTriggerTimeout) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(m.Caller)
	return []sdk.AccAddress{addr}
}

// MsgClaimAbandoned settles a session whose counterparty has gone silent past
// the abandonment threshold.
type MsgClaimAbandoned struct {
	Caller    string `json:"caller"`
	SessionId uint64 `json:"session_id"`
}

type MsgClaimAbandonedResponse struct{}

func (m *MsgClaimAbandoned) ValidateBasic() error {
	return validatePartyMsg(m.Caller, m.SessionId)
}

func (m *MsgClaimAbandoned) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(m.Caller)
	return []sdk.AccAddress{addr}
}

// MsgCancelSession lets the renter cancel a session before any work has been
// proven, refunding the full deposit.
type MsgCancelSession struct {
	Renter    string `json:"renter"`
	SessionId uint64 `json:"session_id"`
}

type MsgCancelSessionResponse struct{}

func (m *MsgCancelSession) ValidateBasic() error {
	return validatePartyMsg(m.Renter, m.SessionId)
}

func (m *MsgCancelSession) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(m.Renter)
	return []sdk.AccAddress{addr}
}

// MsgWithdrawEarnings pulls the caller's accumulated earnings for one or many
// denoms in a single call. An empty denom list withdraws every non-zero cell.
type MsgWithdrawEarnings struct {
	Beneficiary string   `json:"beneficiary"`
	Denoms      []string `json:"denoms,omitempty"`
}

type MsgWithdrawEarningsResponse struct {
	Amounts sdk.Coins `json:"amounts"`
}

func (m *MsgWithdrawEarnings) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Beneficiary); err != nil {
		return ErrInvalidAddress.Wrapf("beneficiary: %v", err)
	}
	seen := make(map[string]struct{}, len(m.Denoms))
	for _, d := range m.Denoms {
		if err := sdk.ValidateDenom(d); err != nil {
			return ErrZeroAmount.Wrapf("denom %q: %v", d, err)
		}
		if _, dup := seen[d]; dup {
			return ErrZeroAmount.Wrapf("duplicate denom %q", d)
		}
		seen[d] = struct{}{}
	}
	return nil
}

func (m *MsgWithdrawEarnings) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(m.Beneficiary)
	return []sdk.AccAddress{addr}
}

// MsgWithdrawTreasury moves accumulated platform fees into the treasury module
// account. Authority-gated.
type MsgWithdrawTreasury struct {
	Authority string   `json:"authority"`
	Denoms    []string `json:"denoms,omitempty"`
}

type MsgWithdrawTreasuryResponse struct {
	Amounts sdk.Coins `json:"amounts"`
}

func (m *MsgWithdrawTreasury) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Authority); err != nil {
		return ErrInvalidAddress.Wrapf("authority: %v", err)
	}
	for _, d := range m.Denoms {
		if err := sdk.ValidateDenom(d); err != nil {
			return ErrZeroAmount.Wrapf("denom %q: %v", d, err)
		}
	}
	return nil
}

func (m *MsgWithdrawTreasury) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(m.Authority)
	return []sdk.AccAddress{addr}
}

// MsgUpdateParams replaces the module parameters. Authority-gated.
type MsgUpdateParams struct {
	Authority string `json:"authority"`
	Params    Params `json:"params"`
}

type MsgUpdateParamsResponse struct{}

func (m *MsgUpdateParams) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Authority); err != nil {
		return ErrInvalidAddress.Wrapf("authority: %v", err)
	}
	return m.Params.Validate()
}

func (m *MsgUpdateParams) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(m.Authority)
	return []sdk.AccAddress{addr}
}

func validatePartyMsg(signer string, sessionID uint64) error {
	if _, err := sdk.AccAddressFromBech32(signer); err != nil {
		return ErrInvalidAddress.Wrapf("signer: %v", err)
	}
	if sessionID == 0 {
		return ErrSessionNotFound.Wrap("session id is zero")
	}
	return nil
}

// proto.Message implementations. The tx codec only needs these for interface
// registration; wire encoding of txs is handled by the hosting app.

func (m *MsgDeposit) Reset()          { *m = MsgDeposit{} }
func (m *MsgDeposit) String() string  { return fmt.Sprintf("MsgDeposit<%s %s>", m.Depositor, m.Amount) }
func (m *MsgDeposit) ProtoMessage()   {}
func (m *MsgWithdrawDeposit) Reset()  { *m = MsgWithdrawDeposit{} }
func (m *MsgWithdrawDeposit) String() string {
	return fmt.Sprintf("MsgWithdrawDeposit<%s %s>", m.Depositor, m.Amount)
}
func (m *MsgWithdrawDeposit) ProtoMessage() {}
func (m *MsgCreateSession) Reset()          { *m = MsgCreateSession{} }
func (m *MsgCreateSession) String() string {
	return fmt.Sprintf("MsgCreateSession<%s->%s %s@%s>", m.Renter, m.Host, m.Deposit, m.UnitPrice)
}
func (m *MsgCreateSession) ProtoMessage() {}
func (m *MsgSubmitProof) Reset()          { *m = MsgSubmitProof{} }
func (m *MsgSubmitProof) String() string {
	return fmt.Sprintf("MsgSubmitProof<session=%d units=%d>", m.SessionId, m.WorkUnits)
}
func (m *MsgSubmitProof) ProtoMessage() {}
func (m *MsgClaim) Reset()              { *m = MsgClaim{} }
func (m *MsgClaim) String() string      { return fmt.Sprintf("MsgClaim<session=%d>", m.SessionId) }
func (m *MsgClaim) ProtoMessage()       {}
func (m *MsgMarkReady) Reset()          { *m = MsgMarkReady{} }
func (m *MsgMarkReady) String() string  { return fmt.Sprintf("MsgMarkReady<session=%d>", m.SessionId) }
func (m *MsgMarkReady) ProtoMessage()   {}
func (m *MsgFinalize) Reset()           { *m = MsgFinalize{} }
func (m *MsgFinalize) String() string   { return fmt.Sprintf("MsgFinalize<session=%d>", m.SessionId) }
func (m *MsgFinalize) ProtoMessage()    {}
func (m *MsgTriggerTimeout) Reset()     { *m = MsgTriggerTimeout{} }
func (m *MsgTriggerTimeout) String() string {
	return fmt.Sprintf("MsgTriggerTimeout<session=%d>", m.SessionId)
}
func (m *MsgTriggerTimeout) ProtoMessage() {}
func (m *MsgClaimAbandoned) Reset()        { *m = MsgClaimAbandoned{} }
func (m *MsgClaimAbandoned) String() string {
	return fmt.Sprintf("MsgClaimAbandoned<session=%d>", m.SessionId)
}
func (m *MsgClaimAbandoned) ProtoMessage() {}
func (m *MsgCancelSession) Reset()         { *m = MsgCancelSession{} }
func (m *MsgCancelSession) String() string {
	return fmt.Sprintf("MsgCancelSession<session=%d>", m.SessionId)
}
func (m *MsgCancelSession) ProtoMessage() {}
func (m *MsgWithdrawEarnings) Reset()     { *m = MsgWithdrawEarnings{} }
func (m *MsgWithdrawEarnings) String() string {
	return fmt.Sprintf("MsgWithdrawEarnings<%s %v>", m.Beneficiary, m.Denoms)
}
func (m *MsgWithdrawEarnings) ProtoMessage() {}
func (m *MsgWithdrawTreasury) Reset()        { *m = MsgWithdrawTreasury{} }
func (m *MsgWithdrawTreasury) String() string {
	return fmt.Sprintf("MsgWithdrawTreasury<%v>", m.Denoms)
}
func (m *MsgWithdrawTreasury) ProtoMessage() {}
func (m *MsgUpdateParams) Reset()            { *m = MsgUpdateParams{} }
func (m *MsgUpdateParams) String() string    { return fmt.Sprintf("MsgUpdateParams<%s>", m.Authority) }
func (m *MsgUpdateParams) ProtoMessage()     {}

func (m *MsgDepositResponse) Reset()                 { *m = MsgDepositResponse{} }
func (m *MsgDepositResponse) String() string         { return "MsgDepositResponse" }
func (m *MsgDepositResponse) ProtoMessage()          {}
func (m *MsgWithdrawDepositResponse) Reset()         { *m = MsgWithdrawDepositResponse{} }
func (m *MsgWithdrawDepositResponse) String() string { return "MsgWithdrawDepositResponse" }
func (m *MsgWithdrawDepositResponse) ProtoMessage()  {}
func (m *MsgCreateSessionResponse) Reset()           { *m = MsgCreateSessionResponse{} }
func (m *MsgCreateSessionResponse) String() string {
	return fmt.Sprintf("MsgCreateSessionResponse<%d>", m.SessionId)
}
func (m *MsgCreateSessionResponse) ProtoMessage() {}
func (m *MsgSubmitProofResponse) Reset()          { *m = MsgSubmitProofResponse{} }
func (m *MsgSubmitProofResponse) String() string {
	return fmt.Sprintf("MsgSubmitProofResponse<%d>", m.ProvenWork)
}
func (m *MsgSubmitProofResponse) ProtoMessage()        {}
func (m *MsgClaimResponse) Reset()                     { *m = MsgClaimResponse{} }
func (m *MsgClaimResponse) String() string             { return "MsgClaimResponse" }
func (m *MsgClaimResponse) ProtoMessage()              {}
func (m *MsgMarkReadyResponse) Reset()                 { *m = MsgMarkReadyResponse{} }
func (m *MsgMarkReadyResponse) String() string         { return "MsgMarkReadyResponse" }
func (m *MsgMarkReadyResponse) ProtoMessage()          {}
func (m *MsgFinalizeResponse) Reset()                  { *m = MsgFinalizeResponse{} }
func (m *MsgFinalizeResponse) String() string          { return "MsgFinalizeResponse" }
func (m *MsgFinalizeResponse) ProtoMessage()           {}
func (m *MsgTriggerTimeoutResponse) Reset()            { *m = MsgTriggerTimeoutResponse{} }
func (m *MsgTriggerTimeoutResponse) String() string    { return "MsgTriggerTimeoutResponse" }
func (m *MsgTriggerTimeoutResponse) ProtoMessage()     {}
func (m *MsgClaimAbandonedResponse) Reset()            { *m = MsgClaimAbandonedResponse{} }
func (m *MsgClaimAbandonedResponse) String() string    { return "MsgClaimAbandonedResponse" }
func (m *MsgClaimAbandonedResponse) ProtoMessage()     {}
func (m *MsgCancelSessionResponse) Reset()             { *m = MsgCancelSessionResponse{} }
func (m *MsgCancelSessionResponse) String() string     { return "MsgCancelSessionResponse" }
func (m *MsgCancelSessionResponse) ProtoMessage()      {}
func (m *MsgWithdrawEarningsResponse) Reset()          { *m = MsgWithdrawEarningsResponse{} }
func (m *MsgWithdrawEarningsResponse) String() string  { return m.Amounts.String() }
func (m *MsgWithdrawEarningsResponse) ProtoMessage()   {}
func (m *MsgWithdrawTreasuryResponse) Reset()          { *m = MsgWithdrawTreasuryResponse{} }
func (m *MsgWithdrawTreasuryResponse) String() string  { return m.Amounts.String() }
func (m *MsgWithdrawTreasuryResponse) ProtoMessage()   {}
func (m *MsgUpdateParamsResponse) Reset()              { *m = MsgUpdateParamsResponse{} }
func (m *MsgUpdateParamsResponse) String() string      { return "MsgUpdateParamsResponse" }
func (m *MsgUpdateParamsResponse) ProtoMessage()       {}
