package keeper

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/parallax-network/parallax/x/session/types"
)

// CreateSessionInput carries the validated inputs for session creation.
type CreateSessionInput struct {
	Renter               sdk.AccAddress
	Host                 sdk.AccAddress
	Deposit              sdk.Coin
	UnitPrice            math.Int
	Capability           string
	MaxDurationSeconds   uint64
	ProofIntervalSeconds uint64
}

// CreateSession validates the pricing gate, capability approval, denom
// allow-list and per-denom minimum, then atomically commits the deposit from
// the renter's ledger balance and allocates a new Active session. It is the
// only way a session comes into existence.
func (k Keeper) CreateSession(ctx context.Context, in CreateSessionInput) (uint64, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return 0, err
	}

	if !params.IsAllowedDenom(in.Deposit.Denom) {
		return 0, types.ErrDenomNotAllowed.Wrap(in.Deposit.Denom)
	}
	if in.Deposit.Amount.LT(params.MinDepositFor(in.Deposit.Denom)) {
		return 0, types.ErrDepositBelowMinimum.Wrapf(
			"deposit %s below minimum %s%s", in.Deposit, params.MinDepositFor(in.Deposit.Denom), in.Deposit.Denom)
	}
	if in.UnitPrice.IsNil() || !in.UnitPrice.IsPositive() {
		return 0, types.ErrInvalidPrice
	}
	if in.UnitPrice.GT(in.Deposit.Amount) {
		return 0, types.ErrInvalidPrice.Wrap("deposit cannot pay for a single unit")
	}
	if in.MaxDurationSeconds == 0 || in.MaxDurationSeconds > params.MaxSessionDurationSeconds {
		return 0, types.ErrInvalidDuration.Wrapf(
			"max duration %d outside (0, %d]", in.MaxDurationSeconds, params.MaxSessionDurationSeconds)
	}

	// Pricing gate: evaluated at creation time only. A host raising its
	// minimum later does not affect this session.
	if !k.hostRegistry.IsActiveHost(ctx, in.Host) {
		return 0, types.ErrHostNotActive.Wrap(in.Host.String())
	}
	minPrice, err := k.hostRegistry.MinimumPrice(ctx, in.Host)
	if err != nil {
		return 0, types.ErrHostNotActive.Wrapf("minimum price lookup: %v", err)
	}
	if in.UnitPrice.LT(minPrice) {
		return 0, types.ErrPriceBelowMinimum.Wrapf("proposed %s, host minimum %s", in.UnitPrice, minPrice)
	}

	if in.Capability != "" && !k.capabilityRegistry.IsApproved(ctx, in.Capability) {
		return 0, types.ErrCapabilityNotApproved.Wrap(in.Capability)
	}

	// Commit the deposit and allocate the session in the same operation;
	// either both happen or neither does.
	if err := k.commitDeposit(ctx, in.Renter, in.Deposit.Denom, in.Deposit.Amount); err != nil {
		return 0, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	now := sdkCtx.BlockTime()

	session := types.Session{
		Id:                   k.nextSessionID(ctx),
		Renter:               in.Renter.String(),
		Host:                 in.Host.String(),
		Denom:                in.Deposit.Denom,
		Deposit:              in.Deposit.Amount,
		UnitPrice:            in.UnitPrice,
		Capability:           in.Capability,
		CreatedAt:            now,
		MaxDurationSeconds:   in.MaxDurationSeconds,
		ProofIntervalSeconds: in.ProofIntervalSeconds,
		LastActivityAt:       now,
		Status:               types.StatusActive,
	}

	if err := k.SetSession(ctx, session); err != nil {
		return 0, fmt.Errorf("failed to store session: %w", err)
	}
	k.setDeadlineIndex(ctx, session.Expiry(), session.Id)

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSessionCreated,
			sdk.NewAttribute(types.AttributeKeySessionID, fmt.Sprintf("%d", session.Id)),
			sdk.NewAttribute(types.AttributeKeyRenter, session.Renter),
			sdk.NewAttribute(types.AttributeKeyHost, session.Host),
			sdk.NewAttribute(types.AttributeKeyDenom, session.Denom),
			sdk.NewAttribute(types.AttributeKeyAmount, session.Deposit.String()),
			sdk.NewAttribute(types.AttributeKeyUnitPrice, session.UnitPrice.String()),
		),
	)

	return session.Id, nil
}

// GetSession retrieves a session by id.
func (k Keeper) GetSession(ctx context.Context, id uint64) (types.Session, bool) {
	var session types.Session
	found, err := k.getRecord(ctx, types.SessionKey(id), &session)
	if err != nil {
		panic(err)
	}
	return session, found
}

// SetSession stores a session record.
func (k Keeper) SetSession(ctx context.Context, session types.Session) error {
	return k.setRecord(ctx, types.SessionKey(session.Id), session)
}

// IterateSessions walks every session in id order.
func (k Keeper) IterateSessions(ctx context.Context, cb func(session types.Session) (stop bool)) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.SessionKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var session types.Session
		if err := json.Unmarshal(iterator.Value(), &session); err != nil {
			panic(err)
		}
		if cb(session) {
			break
		}
	}
}

// setDeadlineIndex records a session's expiry so the EndBlocker sweep can find
// overdue sessions without scanning all of them.
func (k Keeper) setDeadlineIndex(ctx context.Context, expiry time.Time, id uint64) {
	k.getStore(ctx).Set(types.DeadlineIndexKey(expiry, id), []byte{})
}

// removeDeadlineIndex clears the expiry entry when a session goes terminal.
func (k Keeper) removeDeadlineIndex(ctx context.Context, expiry time.Time, id uint64) {
	k.getStore(ctx).Delete(types.DeadlineIndexKey(expiry, id))
}

// IterateExpiredSessions visits ids of Active-tracked sessions whose expiry is
// not after the given time, in expiry order.
func (k Keeper) IterateExpiredSessions(ctx context.Context, notAfter time.Time, cb func(id uint64) (stop bool)) {
	store := k.getStore(ctx)
	end := types.DeadlineIndexKey(notAfter.Add(time.Second), 0)

	iterator := store.Iterator(types.DeadlineIndexPrefix, end)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		_, id, ok := types.ParseDeadlineIndexKey(iterator.Key())
		if !ok {
			continue
		}
		if cb(id) {
			break
		}
	}
}
