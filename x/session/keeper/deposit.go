package keeper

import (
	"context"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/kv"

	"github.com/parallax-network/parallax/x/session/types"
)

// Deposit pulls the coin from the depositor into module custody and credits
// the (depositor, denom) deposit cell. The bank transfer and the ledger credit
// commit or roll back together.
func (k Keeper) Deposit(ctx context.Context, depositor sdk.AccAddress, amount sdk.Coin) error {
	if amount.IsNil() || amount.IsZero() {
		return types.ErrZeroAmount.Wrap("deposit amount is zero")
	}
	if amount.IsNegative() {
		return types.ErrZeroAmount.Wrap("deposit amount is negative")
	}

	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, depositor, types.ModuleName, sdk.NewCoins(amount)); err != nil {
		return err
	}

	if err := k.addDepositBalance(ctx, depositor, amount.Denom, amount.Amount); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeDeposit,
			sdk.NewAttribute(sdk.AttributeKeySender, depositor.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)
	return nil
}

// WithdrawDeposit releases uncommitted balance back to the depositor. The cell
// is decremented before the outbound transfer so a reentrant call observes the
// reduced balance.
func (k Keeper) WithdrawDeposit(ctx context.Context, depositor sdk.AccAddress, amount sdk.Coin) error {
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrZeroAmount.Wrap("withdrawal amount must be positive")
	}

	if err := k.subDepositBalance(ctx, depositor, amount.Denom, amount.Amount); err != nil {
		return err
	}

	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, depositor, sdk.NewCoins(amount)); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeWithdrawDeposit,
			sdk.NewAttribute(sdk.AttributeKeySender, depositor.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)
	return nil
}

// commitDeposit moves balance out of the ledger and into a session. Funds stay
// in the module account; only the cell shrinks. Called exclusively from
// session creation so no window exists where funds are committed without a
// session.
func (k Keeper) commitDeposit(ctx context.Context, depositor sdk.AccAddress, denom string, amount math.Int) error {
	return k.subDepositBalance(ctx, depositor, denom, amount)
}

// GetDepositBalance returns the uncommitted balance of one (holder, denom)
// cell; zero when the cell is unset.
func (k Keeper) GetDepositBalance(ctx context.Context, holder sdk.AccAddress, denom string) math.Int {
	bz := k.getStore(ctx).Get(types.DepositBalanceKey(holder, denom))
	if bz == nil {
		return math.ZeroInt()
	}
	var amount math.Int
	if err := amount.Unmarshal(bz); err != nil {
		panic(err)
	}
	return amount
}

func (k Keeper) addDepositBalance(ctx context.Context, holder sdk.AccAddress, denom string, amount math.Int) error {
	current := k.GetDepositBalance(ctx, holder, denom)
	return k.setDepositBalance(ctx, holder, denom, current.Add(amount))
}

func (k Keeper) subDepositBalance(ctx context.Context, holder sdk.AccAddress, denom string, amount math.Int) error {
	current := k.GetDepositBalance(ctx, holder, denom)
	if current.LT(amount) {
		return types.ErrInsufficientBalance.Wrapf("have %s%s, need %s%s", current, denom, amount, denom)
	}
	return k.setDepositBalance(ctx, holder, denom, current.Sub(amount))
}

// setDepositBalance writes a cell, deleting it when the amount reaches zero so
// exports carry no empty cells.
func (k Keeper) setDepositBalance(ctx context.Context, holder sdk.AccAddress, denom string, amount math.Int) error {
	store := k.getStore(ctx)
	key := types.DepositBalanceKey(holder, denom)

	if amount.IsZero() {
		store.Delete(key)
		return nil
	}

	bz, err := amount.Marshal()
	if err != nil {
		return err
	}
	store.Set(key, bz)
	return nil
}

// IterateDepositBalances walks every deposit cell, for export and invariants.
func (k Keeper) IterateDepositBalances(ctx context.Context, cb func(holder sdk.AccAddress, denom string, amount math.Int) (stop bool)) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.DepositBalancePrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		holder, denom := splitBalanceKey(iterator.Key(), types.DepositBalancePrefix)

		var amount math.Int
		if err := amount.Unmarshal(iterator.Value()); err != nil {
			panic(err)
		}
		if cb(holder, denom, amount) {
			break
		}
	}
}

// splitBalanceKey decodes prefix | len(addr) | addr | denom keys.
func splitBalanceKey(key, prefix []byte) (sdk.AccAddress, string) {
	rest := key[len(prefix):]
	kv.AssertKeyAtLeastLength(rest, 1)
	addrLen := int(rest[0])
	kv.AssertKeyAtLeastLength(rest, 1+addrLen)
	return sdk.AccAddress(rest[1 : 1+addrLen]), string(rest[1+addrLen:])
}
