package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/parallax-network/parallax/x/session/types"
)

var _ types.MsgServer = msgServer{}

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

// Deposit credits the depositor's ledger balance.
func (ms msgServer) Deposit(goCtx context.Context, msg *types.MsgDeposit) (*types.MsgDepositResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	depositor, err := sdk.AccAddressFromBech32(msg.Depositor)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("depositor: %v", err)
	}
	if err := ms.Keeper.Deposit(goCtx, depositor, msg.Amount); err != nil {
		return nil, err
	}
	return &types.MsgDepositResponse{}, nil
}

// WithdrawDeposit releases uncommitted deposit balance.
func (ms msgServer) WithdrawDeposit(goCtx context.Context, msg *types.MsgWithdrawDeposit) (*types.MsgWithdrawDepositResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	depositor, err := sdk.AccAddressFromBech32(msg.Depositor)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("depositor: %v", err)
	}
	if err := ms.Keeper.WithdrawDeposit(goCtx, depositor, msg.Amount); err != nil {
		return nil, err
	}
	return &types.MsgWithdrawDepositResponse{}, nil
}

// CreateSession opens a new metered escrow session.
func (ms msgServer) CreateSession(goCtx context.Context, msg *types.MsgCreateSession) (*types.MsgCreateSessionResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	renter, err := sdk.AccAddressFromBech32(msg.Renter)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("renter: %v", err)
	}
	host, err := sdk.AccAddressFromBech32(msg.Host)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("host: %v", err)
	}

	id, err := ms.Keeper.CreateSession(goCtx, CreateSessionInput{
		Renter:               renter,
		Host:                 host,
		Deposit:              msg.Deposit,
		UnitPrice:            msg.UnitPrice,
		Capability:           msg.Capability,
		MaxDurationSeconds:   msg.MaxDurationSeconds,
		ProofIntervalSeconds: msg.ProofIntervalSeconds,
	})
	if err != nil {
		return nil, err
	}
	return &types.MsgCreateSessionResponse{SessionId: id}, nil
}

// SubmitProof advances a session's proven-work counter.
func (ms msgServer) SubmitProof(goCtx context.Context, msg *types.MsgSubmitProof) (*types.MsgSubmitProofResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	host, err := sdk.AccAddressFromBech32(msg.Host)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("host: %v", err)
	}
	proven, err := ms.Keeper.SubmitProof(goCtx, host, msg)
	if err != nil {
		return nil, err
	}
	return &types.MsgSubmitProofResponse{ProvenWork: proven}, nil
}

// Claim settles a session against its accumulated proofs.
func (ms msgServer) Claim(goCtx context.Context, msg *types.MsgClaim) (*types.MsgClaimResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	host, err := sdk.AccAddressFromBech32(msg.Host)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("host: %v", err)
	}
	if err := ms.Keeper.Claim(goCtx, host, msg.SessionId); err != nil {
		return nil, err
	}
	return &types.MsgClaimResponse{}, nil
}

// MarkReady flags a session as ready for the renter to finalize.
func (ms msgServer) MarkReady(goCtx context.Context, msg *types.MsgMarkReady) (*types.MsgMarkReadyResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	host, err := sdk.AccAddressFromBech32(msg.Host)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("host: %v", err)
	}
	if err := ms.Keeper.MarkReady(goCtx, host, msg.SessionId); err != nil {
		return nil, err
	}
	return &types.MsgMarkReadyResponse{}, nil
}

// Finalize completes the cooperative handshake and settles the session.
func (ms msgServer) Finalize(goCtx context.Context, msg *types.MsgFinalize) (*types.MsgFinalizeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	renter, err := sdk.AccAddressFromBech32(msg.Renter)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("renter: %v", err)
	}
	if err := ms.Keeper.Finalize(goCtx, renter, msg.SessionId); err != nil {
		return nil, err
	}
	return &types.MsgFinalizeResponse{}, nil
}

// TriggerTimeout settles a session past its max duration.
func (ms msgServer) TriggerTimeout(goCtx context.Context, msg *types.MsgTriggerTimeout) (*types.MsgTriggerTimeoutResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := ms.Keeper.TriggerTimeout(goCtx, msg.SessionId); err != nil {
		return nil, err
	}
	return &types.MsgTriggerTimeoutResponse{}, nil
}

// ClaimAbandoned settles a session whose counterparty went silent.
func (ms msgServer) ClaimAbandoned(goCtx context.Context, msg *types.MsgClaimAbandoned) (*types.MsgClaimAbandonedResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	caller, err := sdk.AccAddressFromBech32(msg.Caller)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("caller: %v", err)
	}
	if err := ms.Keeper.ClaimAbandoned(goCtx, caller, msg.SessionId); err != nil {
		return nil, err
	}
	return &types.MsgClaimAbandonedResponse{}, nil
}

// CancelSession cancels a proof-free session with a full refund.
func (ms msgServer) CancelSession(goCtx context.Context, msg *types.MsgCancelSession) (*types.MsgCancelSessionResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	renter, err := sdk.AccAddressFromBech32(msg.Renter)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("renter: %v", err)
	}
	if err := ms.Keeper.CancelSession(goCtx, renter, msg.SessionId); err != nil {
		return nil, err
	}
	return &types.MsgCancelSessionResponse{}, nil
}

// WithdrawEarnings pulls the caller's accumulated earnings.
func (ms msgServer) WithdrawEarnings(goCtx context.Context, msg *types.MsgWithdrawEarnings) (*types.MsgWithdrawEarningsResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	beneficiary, err := sdk.AccAddressFromBech32(msg.Beneficiary)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("beneficiary: %v", err)
	}
	withdrawn, err := ms.Keeper.WithdrawEarnings(goCtx, beneficiary, msg.Denoms)
	if err != nil {
		return nil, err
	}
	return &types.MsgWithdrawEarningsResponse{Amounts: withdrawn}, nil
}

// WithdrawTreasury moves accumulated platform fees to the treasury account.
func (ms msgServer) WithdrawTreasury(goCtx context.Context, msg *types.MsgWithdrawTreasury) (*types.MsgWithdrawTreasuryResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	withdrawn, err := ms.Keeper.WithdrawTreasury(goCtx, msg.Authority, msg.Denoms)
	if err != nil {
		return nil, err
	}
	return &types.MsgWithdrawTreasuryResponse{Amounts: withdrawn}, nil
}

// UpdateParams replaces the module parameters.
func (ms msgServer) UpdateParams(goCtx context.Context, msg *types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := ms.Keeper.UpdateParams(goCtx, msg.Authority, msg.Params); err != nil {
		return nil, err
	}
	return &types.MsgUpdateParamsResponse{}, nil
}
