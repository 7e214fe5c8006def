package keeper

import (
	"context"
	"encoding/binary"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/parallax-network/parallax/x/session/types"
)

// SubmitProof verifies proof material against the external verifier and, on
// success, appends a proof record and advances the session's proven-work
// counter. No payment moves here; settlement happens only on a terminal
// transition.
//
// A false verifier result is a normal rejection, not a fault: the session
// stays Active with no state change and the host may resubmit with different
// material.
func (k Keeper) SubmitProof(ctx context.Context, host sdk.AccAddress, msg *types.MsgSubmitProof) (uint64, error) {
	session, found := k.GetSession(ctx, msg.SessionId)
	if !found {
		return 0, types.ErrSessionNotFound.Wrapf("id %d", msg.SessionId)
	}
	if session.Host != host.String() {
		return 0, types.ErrNotSessionHost.Wrapf("session %d", session.Id)
	}
	if session.Status != types.StatusActive {
		return 0, types.ErrSessionNotActive.Wrapf("session %d is %s", session.Id, session.Status)
	}
	if msg.WorkUnits == 0 {
		return 0, types.ErrZeroAmount.Wrap("work units must be positive")
	}

	// Global replay check: a digest accepted in any session is never accepted
	// again anywhere.
	if owner, used := k.digestOwner(ctx, msg.Digest); used {
		return 0, types.ErrDigestReplayed.Wrapf("digest already accepted in session %d", owner)
	}

	// The deposit caps how much work a session can ever pay for. Reject, never
	// clamp. The sum must not be computed in uint64: a claim near MaxUint64
	// would wrap past the gate and then wrap the counter itself.
	proposed := math.NewIntFromUint64(session.ProvenWork).Add(math.NewIntFromUint64(msg.WorkUnits))
	if proposed.Mul(session.UnitPrice).GT(session.Deposit) {
		return 0, types.ErrCapacityExceeded.Wrapf(
			"proven %d + claimed %d exceeds capacity %s", session.ProvenWork, msg.WorkUnits, session.Capacity())
	}

	if !k.proofVerifier.Verify(ctx, msg.Material, msg.WorkUnits) {
		sdkCtx := sdk.UnwrapSDKContext(ctx)
		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeProofRejected,
				sdk.NewAttribute(types.AttributeKeySessionID, fmt.Sprintf("%d", session.Id)),
				sdk.NewAttribute(types.AttributeKeyDigest, msg.Digest),
			),
		)
		return 0, types.ErrInvalidProof.Wrapf("session %d digest %s", session.Id, msg.Digest)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	now := sdkCtx.BlockTime()

	session.Proofs = append(session.Proofs, types.ProofRecord{
		Digest:      msg.Digest,
		WorkUnits:   msg.WorkUnits,
		SubmittedAt: now,
		Verified:    true,
		ProofCid:    msg.ProofCid,
		DeltaCid:    msg.DeltaCid,
	})
	session.ProvenWork += msg.WorkUnits
	session.LastProofAt = &now
	session.LastActivityAt = now

	if err := k.SetSession(ctx, session); err != nil {
		return 0, fmt.Errorf("failed to store session: %w", err)
	}
	k.markDigestUsed(ctx, msg.Digest, session.Id)

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeProofAccepted,
			sdk.NewAttribute(types.AttributeKeySessionID, fmt.Sprintf("%d", session.Id)),
			sdk.NewAttribute(types.AttributeKeyDigest, msg.Digest),
			sdk.NewAttribute(types.AttributeKeyWorkUnits, fmt.Sprintf("%d", msg.WorkUnits)),
			sdk.NewAttribute(types.AttributeKeyProvenWork, fmt.Sprintf("%d", session.ProvenWork)),
		),
	)

	return session.ProvenWork, nil
}

// GetProofHistory returns the ordered proof records of a session.
func (k Keeper) GetProofHistory(ctx context.Context, sessionID uint64) ([]types.ProofRecord, error) {
	session, found := k.GetSession(ctx, sessionID)
	if !found {
		return nil, types.ErrSessionNotFound.Wrapf("id %d", sessionID)
	}
	return session.Proofs, nil
}

// digestOwner reports whether a digest is already in the replay index and
// which session consumed it.
func (k Keeper) digestOwner(ctx context.Context, digest string) (uint64, bool) {
	bz := k.getStore(ctx).Get(types.ProofDigestKey(digest))
	if bz == nil {
		return 0, false
	}
	return binary.BigEndian.Uint64(bz), true
}

// markDigestUsed records a digest in the global replay index.
func (k Keeper) markDigestUsed(ctx context.Context, digest string, sessionID uint64) {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, sessionID)
	k.getStore(ctx).Set(types.ProofDigestKey(digest), bz)
}
