package keeper

import (
	"context"
	"fmt"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/parallax-network/parallax/x/session/types"
)

// Claim settles an active session against its accumulated proofs. Host only;
// requires at least one unit of proven work.
func (k Keeper) Claim(ctx context.Context, host sdk.AccAddress, sessionID uint64) error {
	session, err := k.activeSession(ctx, sessionID)
	if err != nil {
		return err
	}
	if session.Host != host.String() {
		return types.ErrNotSessionHost.Wrapf("session %d", sessionID)
	}
	if session.ProvenWork == 0 {
		return types.ErrNoProvenWork.Wrapf("session %d", sessionID)
	}
	return k.settle(ctx, session, types.StatusCompleted, types.SettlementPathClaim)
}

// MarkReady is the host half of the cooperative completion handshake. The
// session stays Active; the renter's Finalize performs the settlement. The
// two-step lets a cooperative pair settle without proofs while still requiring
// the renter's acknowledgment before funds move.
func (k Keeper) MarkReady(ctx context.Context, host sdk.AccAddress, sessionID uint64) error {
	session, err := k.activeSession(ctx, sessionID)
	if err != nil {
		return err
	}
	if session.Host != host.String() {
		return types.ErrNotSessionHost.Wrapf("session %d", sessionID)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	session.ReadyToFinalize = true
	session.LastActivityAt = sdkCtx.BlockTime()
	if err := k.SetSession(ctx, session); err != nil {
		return err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeMarkedReady,
			sdk.NewAttribute(types.AttributeKeySessionID, fmt.Sprintf("%d", sessionID)),
		),
	)
	return nil
}

// Finalize is the renter half of the cooperative handshake. Zero proven work
// is a legal terminal state here: full refund, zero host payment.
func (k Keeper) Finalize(ctx context.Context, renter sdk.AccAddress, sessionID uint64) error {
	session, err := k.activeSession(ctx, sessionID)
	if err != nil {
		return err
	}
	if session.Renter != renter.String() {
		return types.ErrNotSessionRenter.Wrapf("session %d", sessionID)
	}
	if !session.ReadyToFinalize {
		return types.ErrNotReadyToFinalize.Wrapf("session %d", sessionID)
	}
	return k.settle(ctx, session, types.StatusCompleted, types.SettlementPathFinalize)
}

// TriggerTimeout settles a session whose max duration has elapsed. Anyone may
// call it; the unilateral escape valve that keeps funds from being stuck when
// both parties disappear.
func (k Keeper) TriggerTimeout(ctx context.Context, sessionID uint64) error {
	session, err := k.activeSession(ctx, sessionID)
	if err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	if !sdkCtx.BlockTime().After(session.Expiry()) {
		return types.ErrDeadlineNotReached.Wrapf(
			"session %d expires at %s", sessionID, session.Expiry().Format(time.RFC3339))
	}
	return k.settle(ctx, session, types.StatusTimedOut, types.SettlementPathTimeout)
}

// ClaimAbandoned settles a session whose activity has stalled past the
// abandonment threshold. Only the non-silent party may call it: whoever
// produced the last recorded activity claims against the counterparty that
// went quiet.
func (k Keeper) ClaimAbandoned(ctx context.Context, caller sdk.AccAddress, sessionID uint64) error {
	session, err := k.activeSession(ctx, sessionID)
	if err != nil {
		return err
	}
	// Only the party whose action the session last recorded may claim; the
	// counterparty is the one that went silent. Creation is the renter's
	// action, proofs and mark-ready are the host's.
	nonSilent := session.Renter
	if session.LastProofAt != nil || session.ReadyToFinalize {
		nonSilent = session.Host
	}
	if caller.String() != nonSilent {
		return types.ErrNotSessionParty.Wrapf("abandonment claim for session %d belongs to %s", sessionID, nonSilent)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	threshold := session.LastActivityAt.Add(time.Duration(params.AbandonmentSeconds) * time.Second)
	if !sdkCtx.BlockTime().After(threshold) {
		return types.ErrDeadlineNotReached.Wrapf(
			"session %d abandonment threshold at %s", sessionID, threshold.Format(time.RFC3339))
	}
	return k.settle(ctx, session, types.StatusAbandoned, types.SettlementPathAbandoned)
}

// CancelSession lets the renter back out before any work has been proven.
// Full refund; the host earns nothing.
func (k Keeper) CancelSession(ctx context.Context, renter sdk.AccAddress, sessionID uint64) error {
	session, err := k.activeSession(ctx, sessionID)
	if err != nil {
		return err
	}
	if session.Renter != renter.String() {
		return types.ErrNotSessionRenter.Wrapf("session %d", sessionID)
	}
	if session.ProvenWork > 0 {
		return types.ErrSessionNotEmpty.Wrapf("session %d has %d units proven", sessionID, session.ProvenWork)
	}
	return k.settle(ctx, session, types.StatusCancelled, types.SettlementPathCancelled)
}

// activeSession loads a session and rejects anything terminal.
func (k Keeper) activeSession(ctx context.Context, id uint64) (types.Session, error) {
	session, found := k.GetSession(ctx, id)
	if !found {
		return types.Session{}, types.ErrSessionNotFound.Wrapf("id %d", id)
	}
	if session.Status != types.StatusActive {
		return types.Session{}, types.ErrSessionNotActive.Wrapf("session %d is %s", id, session.Status)
	}
	return session, nil
}

// settle drives a session to its terminal state and splits the deposit. Every
// terminal path funnels through here so the amounts cannot disagree across
// paths. The session record is finalized before any ledger credit, and all
// credits are internal cells; no value leaves module custody during
// settlement.
func (k Keeper) settle(ctx context.Context, session types.Session, status types.SessionStatus, path string) error {
	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}

	result := types.Settle(session.ProvenWork, session.UnitPrice, session.Deposit, params.FeeBps)
	if !result.Total().Equal(session.Deposit) {
		// Conservation is structural; reaching this is a bug, not bad input.
		panic(fmt.Sprintf("settlement of session %d does not conserve deposit: %s != %s",
			session.Id, result.Total(), session.Deposit))
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	now := sdkCtx.BlockTime()

	session.Status = status
	session.SettledAt = &now
	session.LastActivityAt = now
	if status == types.StatusCompleted {
		deadline := now.Add(time.Duration(params.DisputeWindowSeconds) * time.Second)
		session.DisputeDeadline = &deadline
	}

	if err := k.SetSession(ctx, session); err != nil {
		return fmt.Errorf("failed to store settled session: %w", err)
	}
	k.removeDeadlineIndex(ctx, session.Expiry(), session.Id)

	host, err := sdk.AccAddressFromBech32(session.Host)
	if err != nil {
		return types.ErrInvalidAddress.Wrapf("session host: %v", err)
	}
	renter, err := sdk.AccAddressFromBech32(session.Renter)
	if err != nil {
		return types.ErrInvalidAddress.Wrapf("session renter: %v", err)
	}

	if result.HostShare.IsPositive() {
		if err := k.CreditEarnings(ctx, types.ModuleName, host, sdk.NewCoin(session.Denom, result.HostShare)); err != nil {
			return err
		}
	}
	if result.Fee.IsPositive() {
		treasury := k.accountKeeper.GetModuleAddress(types.TreasuryPoolName)
		if err := k.CreditEarnings(ctx, types.ModuleName, treasury, sdk.NewCoin(session.Denom, result.Fee)); err != nil {
			return err
		}
	}
	if result.Refund.IsPositive() {
		// The refund returns to the renter's deposit ledger balance, ready to
		// back a new session or be withdrawn.
		if err := k.addDepositBalance(ctx, renter, session.Denom, result.Refund); err != nil {
			return err
		}
	}

	event := sdk.NewEvent(
		types.EventTypeSessionSettled,
		sdk.NewAttribute(types.AttributeKeySessionID, fmt.Sprintf("%d", session.Id)),
		sdk.NewAttribute(types.AttributeKeyStatus, status.String()),
		sdk.NewAttribute(types.AttributeKeyPath, path),
		sdk.NewAttribute(types.AttributeKeyProvenWork, fmt.Sprintf("%d", session.ProvenWork)),
		sdk.NewAttribute(types.AttributeKeyHostShare, result.HostShare.String()),
		sdk.NewAttribute(types.AttributeKeyFee, result.Fee.String()),
		sdk.NewAttribute(types.AttributeKeyRefund, result.Refund.String()),
	)
	if session.DisputeDeadline != nil {
		event = event.AppendAttributes(
			sdk.NewAttribute(types.AttributeKeyDeadline, session.DisputeDeadline.Format(time.RFC3339)))
	}
	sdkCtx.EventManager().EmitEvent(event)

	k.Logger(sdkCtx).Info("session settled",
		"session_id", session.Id,
		"path", path,
		"status", status.String(),
		"host_share", result.HostShare.String(),
		"fee", result.Fee.String(),
		"refund", result.Refund.String(),
	)

	return nil
}
