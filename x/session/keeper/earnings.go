package keeper

import (
	"context"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/parallax-network/parallax/x/session/types"
)

// CreditEarnings adds to a beneficiary's accumulated earnings cell. Only
// creditors on the stored allow-list may call it; settlement credits under the
// session module's own name. Crediting moves no value; funds already sit in
// the module account and only become transferable through withdrawal.
func (k Keeper) CreditEarnings(ctx context.Context, creditor string, beneficiary sdk.AccAddress, amount sdk.Coin) error {
	if !k.IsAuthorizedCreditor(ctx, creditor) {
		return types.ErrUnauthorized.Wrapf("creditor %q is not allow-listed", creditor)
	}
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrZeroAmount.Wrap("earnings credit must be positive")
	}

	current := k.GetEarnings(ctx, beneficiary, amount.Denom)
	if err := k.setEarnings(ctx, beneficiary, amount.Denom, current.Add(amount.Amount)); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeEarningsCredited,
			sdk.NewAttribute(types.AttributeKeyBeneficiary, beneficiary.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)
	return nil
}

// WithdrawEarnings zeros the caller's earnings cells for the given denoms and
// transfers the accumulated value out in a single bank send. An empty denom
// list withdraws everything. Cells are zeroed before the outbound transfer; a
// reentrant attempt during the transfer observes zero balances.
func (k Keeper) WithdrawEarnings(ctx context.Context, beneficiary sdk.AccAddress, denoms []string) (sdk.Coins, error) {
	withdrawn, err := k.drainEarnings(ctx, beneficiary, denoms)
	if err != nil {
		return nil, err
	}
	if withdrawn.IsZero() {
		return nil, types.ErrInsufficientBalance.Wrap("no earnings to withdraw")
	}

	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, beneficiary, withdrawn); err != nil {
		return nil, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeEarningsWithdraw,
			sdk.NewAttribute(types.AttributeKeyBeneficiary, beneficiary.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, withdrawn.String()),
		),
	)
	return withdrawn, nil
}

// WithdrawTreasury moves accumulated platform fees into the treasury module
// account. Authority only.
func (k Keeper) WithdrawTreasury(ctx context.Context, authority string, denoms []string) (sdk.Coins, error) {
	if authority != k.authority {
		return nil, types.ErrUnauthorized.Wrapf("expected authority %s, got %s", k.authority, authority)
	}

	treasury := k.accountKeeper.GetModuleAddress(types.TreasuryPoolName)
	withdrawn, err := k.drainEarnings(ctx, treasury, denoms)
	if err != nil {
		return nil, err
	}
	if withdrawn.IsZero() {
		return nil, types.ErrInsufficientBalance.Wrap("no treasury earnings to withdraw")
	}

	if err := k.bankKeeper.SendCoinsFromModuleToModule(ctx, types.ModuleName, types.TreasuryPoolName, withdrawn); err != nil {
		return nil, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeTreasuryWithdraw,
			sdk.NewAttribute(types.AttributeKeyAmount, withdrawn.String()),
		),
	)
	return withdrawn, nil
}

// drainEarnings zeros the selected cells and returns what they held.
func (k Keeper) drainEarnings(ctx context.Context, beneficiary sdk.AccAddress, denoms []string) (sdk.Coins, error) {
	if len(denoms) == 0 {
		k.IterateEarnings(ctx, beneficiary, func(denom string, _ math.Int) bool {
			denoms = append(denoms, denom)
			return false
		})
	}

	withdrawn := sdk.NewCoins()
	for _, denom := range denoms {
		amount := k.GetEarnings(ctx, beneficiary, denom)
		if amount.IsZero() {
			continue
		}
		if err := k.setEarnings(ctx, beneficiary, denom, math.ZeroInt()); err != nil {
			return nil, err
		}
		withdrawn = withdrawn.Add(sdk.NewCoin(denom, amount))
	}
	return withdrawn, nil
}

// GetEarnings returns one (beneficiary, denom) earnings cell; zero when unset.
func (k Keeper) GetEarnings(ctx context.Context, beneficiary sdk.AccAddress, denom string) math.Int {
	bz := k.getStore(ctx).Get(types.EarningsBalanceKey(beneficiary, denom))
	if bz == nil {
		return math.ZeroInt()
	}
	var amount math.Int
	if err := amount.Unmarshal(bz); err != nil {
		panic(err)
	}
	return amount
}

func (k Keeper) setEarnings(ctx context.Context, beneficiary sdk.AccAddress, denom string, amount math.Int) error {
	store := k.getStore(ctx)
	key := types.EarningsBalanceKey(beneficiary, denom)

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

// IterateEarnings walks one beneficiary's non-zero cells.
func (k Keeper) IterateEarnings(ctx context.Context, beneficiary sdk.AccAddress, cb func(denom string, amount math.Int) (stop bool)) {
	store := k.getStore(ctx)
	prefix := types.EarningsHolderPrefix(beneficiary)
	iterator := storetypes.KVStorePrefixIterator(store, prefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		denom := string(iterator.Key()[len(prefix):])

		var amount math.Int
		if err := amount.Unmarshal(iterator.Value()); err != nil {
			panic(err)
		}
		if cb(denom, amount) {
			break
		}
	}
}

// IterateAllEarnings walks every earnings cell, for export and invariants.
func (k Keeper) IterateAllEarnings(ctx context.Context, cb func(beneficiary sdk.AccAddress, denom string, amount math.Int) (stop bool)) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.EarningsBalancePrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		beneficiary, denom := splitBalanceKey(iterator.Key(), types.EarningsBalancePrefix)

		var amount math.Int
		if err := amount.Unmarshal(iterator.Value()); err != nil {
			panic(err)
		}
		if cb(beneficiary, denom, amount) {
			break
		}
	}
}

// IsAuthorizedCreditor reports whether a creditor name is on the allow-list.
func (k Keeper) IsAuthorizedCreditor(ctx context.Context, name string) bool {
	return k.getStore(ctx).Has(types.CreditorAllowKey(name))
}

// SetAuthorizedCreditor adds or removes a creditor from the allow-list.
// Authority only; configured once at genesis in the usual case.
func (k Keeper) SetAuthorizedCreditor(ctx context.Context, authority, name string, allowed bool) error {
	if authority != k.authority {
		return types.ErrUnauthorized.Wrapf("expected authority %s, got %s", k.authority, authority)
	}
	k.setCreditor(ctx, name, allowed)
	return nil
}

func (k Keeper) setCreditor(ctx context.Context, name string, allowed bool) {
	store := k.getStore(ctx)
	if allowed {
		store.Set(types.CreditorAllowKey(name), []byte{1})
		return
	}
	store.Delete(types.CreditorAllowKey(name))
}

// AuthorizedCreditors returns the allow-list, for export.
func (k Keeper) AuthorizedCreditors(ctx context.Context) []string {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.CreditorAllowPrefix)
	defer iterator.Close()

	var names []string
	for ; iterator.Valid(); iterator.Next() {
		names = append(names, string(iterator.Key()[len(types.CreditorAllowPrefix):]))
	}
	return names
}
