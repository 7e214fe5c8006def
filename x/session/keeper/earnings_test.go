package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/parallax-network/parallax/testutil/keeper"
	"github.com/parallax-network/parallax/x/session/types"
)

// TestCreditEarnings_UnauthorizedCreditor tests the creditor allow-list gate
func TestCreditEarnings_UnauthorizedCreditor(t *testing.T) {
	f := keepertest.SessionKeeper(t)

	err := f.Keeper.CreditEarnings(f.Ctx, "rogue", testHost(), sdk.NewInt64Coin(types.DefaultNativeDenom, 100))
	require.ErrorIs(t, err, types.ErrUnauthorized)
	require.True(t, f.Keeper.GetEarnings(f.Ctx, testHost(), types.DefaultNativeDenom).IsZero())
}

// TestCreditEarnings_ModuleIsAllowListed tests that the module credits itself
// through genesis configuration
func TestCreditEarnings_ModuleIsAllowListed(t *testing.T) {
	f := keepertest.SessionKeeper(t)

	require.True(t, f.Keeper.IsAuthorizedCreditor(f.Ctx, types.ModuleName))
	require.NoError(t, f.Keeper.CreditEarnings(f.Ctx, types.ModuleName, testHost(), sdk.NewInt64Coin(types.DefaultNativeDenom, 100)))
	require.Equal(t, math.NewInt(100), f.Keeper.GetEarnings(f.Ctx, testHost(), types.DefaultNativeDenom))
}

// TestSetAuthorizedCreditor tests authority-gated allow-list management
func TestSetAuthorizedCreditor(t *testing.T) {
	f := keepertest.SessionKeeper(t)

	err := f.Keeper.SetAuthorizedCreditor(f.Ctx, testHost().String(), "marketplace", true)
	require.ErrorIs(t, err, types.ErrUnauthorized)

	require.NoError(t, f.Keeper.SetAuthorizedCreditor(f.Ctx, f.Authority, "marketplace", true))
	require.True(t, f.Keeper.IsAuthorizedCreditor(f.Ctx, "marketplace"))

	require.NoError(t, f.Keeper.SetAuthorizedCreditor(f.Ctx, f.Authority, "marketplace", false))
	require.False(t, f.Keeper.IsAuthorizedCreditor(f.Ctx, "marketplace"))
}

// TestWithdrawEarnings_Valid tests a full withdrawal after settlement
func TestWithdrawEarnings_Valid(t *testing.T) {
	f := keepertest.SessionKeeper(t)
	id := createFundedSession(t, f, 1000, 10)
	submitWork(t, f, id, "digest-1", 60)
	require.NoError(t, f.Keeper.Claim(f.Ctx, testHost(), id))

	withdrawn, err := f.Keeper.WithdrawEarnings(f.Ctx, testHost(), nil)
	require.NoError(t, err)
	require.Equal(t, sdk.NewCoins(sdk.NewInt64Coin(types.DefaultNativeDenom, 540)), withdrawn)

	require.Equal(t, math.NewInt(540), f.BankKeeper.GetBalance(f.Ctx, testHost(), types.DefaultNativeDenom).Amount)
	require.True(t, f.Keeper.GetEarnings(f.Ctx, testHost(), types.DefaultNativeDenom).IsZero())
}

// TestWithdrawEarnings_Empty tests rejection when nothing has accrued
func TestWithdrawEarnings_Empty(t *testing.T) {
	f := keepertest.SessionKeeper(t)

	_, err := f.Keeper.WithdrawEarnings(f.Ctx, testHost(), nil)
	require.ErrorIs(t, err, types.ErrInsufficientBalance)
}

// TestWithdrawEarnings_SecondWithdrawalFails tests that cells are zeroed by a
// withdrawal and stay zeroed
func TestWithdrawEarnings_SecondWithdrawalFails(t *testing.T) {
	f := keepertest.SessionKeeper(t)
	id := createFundedSession(t, f, 1000, 10)
	submitWork(t, f, id, "digest-1", 60)
	require.NoError(t, f.Keeper.Claim(f.Ctx, testHost(), id))

	_, err := f.Keeper.WithdrawEarnings(f.Ctx, testHost(), nil)
	require.NoError(t, err)

	_, err = f.Keeper.WithdrawEarnings(f.Ctx, testHost(), nil)
	require.ErrorIs(t, err, types.ErrInsufficientBalance)
}

// TestWithdrawEarnings_SelectedDenoms tests withdrawal of a denom subset
func TestWithdrawEarnings_SelectedDenoms(t *testing.T) {
	f := keepertest.SessionKeeper(t)
	host := testHost()

	require.NoError(t, f.Keeper.CreditEarnings(f.Ctx, types.ModuleName, host, sdk.NewInt64Coin(types.DefaultNativeDenom, 300)))

	params, err := f.Keeper.GetParams(f.Ctx)
	require.NoError(t, err)
	params.AllowedDenoms = append(params.AllowedDenoms, "uion")
	require.NoError(t, f.Keeper.SetParams(f.Ctx, params))
	require.NoError(t, f.Keeper.CreditEarnings(f.Ctx, types.ModuleName, host, sdk.NewInt64Coin("uion", 200)))

	// Back the cells with actual module funds so the bank send clears.
	keepertest.FundAccount(t, f, f.AccountKeeper.GetModuleAddress(types.ModuleName),
		sdk.NewCoins(sdk.NewInt64Coin(types.DefaultNativeDenom, 300), sdk.NewInt64Coin("uion", 200)))

	withdrawn, err := f.Keeper.WithdrawEarnings(f.Ctx, host, []string{"uion"})
	require.NoError(t, err)
	require.Equal(t, sdk.NewCoins(sdk.NewInt64Coin("uion", 200)), withdrawn)

	require.Equal(t, math.NewInt(300), f.Keeper.GetEarnings(f.Ctx, host, types.DefaultNativeDenom))
	require.True(t, f.Keeper.GetEarnings(f.Ctx, host, "uion").IsZero())
}

// TestWithdrawEarnings_AccumulatesAcrossSessions tests accumulate-then-withdraw
func TestWithdrawEarnings_AccumulatesAcrossSessions(t *testing.T) {
	f := keepertest.SessionKeeper(t)
	renter, host := testRenter(), testHost()
	f.Hosts.SetHost(host, math.ZeroInt())
	fundDeposit(t, f, renter, 2000)

	first := createSessionFor(t, f, 1000, 10)
	second := createSessionFor(t, f, 1000, 10)

	submitWork(t, f, first, "digest-a", 60)
	submitWork(t, f, second, "digest-b", 60)
	require.NoError(t, f.Keeper.Claim(f.Ctx, host, first))
	require.NoError(t, f.Keeper.Claim(f.Ctx, host, second))

	require.Equal(t, math.NewInt(1080), f.Keeper.GetEarnings(f.Ctx, host, types.DefaultNativeDenom))

	withdrawn, err := f.Keeper.WithdrawEarnings(f.Ctx, host, nil)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1080), withdrawn.AmountOf(types.DefaultNativeDenom))
}

// TestWithdrawTreasury_Valid tests authority withdrawal of accumulated fees
func TestWithdrawTreasury_Valid(t *testing.T) {
	f := keepertest.SessionKeeper(t)
	id := createFundedSession(t, f, 1000, 10)
	submitWork(t, f, id, "digest-1", 60)
	require.NoError(t, f.Keeper.Claim(f.Ctx, testHost(), id))

	withdrawn, err := f.Keeper.WithdrawTreasury(f.Ctx, f.Authority, nil)
	require.NoError(t, err)
	require.Equal(t, sdk.NewCoins(sdk.NewInt64Coin(types.DefaultNativeDenom, 60)), withdrawn)

	treasuryAddr := f.AccountKeeper.GetModuleAddress(types.TreasuryPoolName)
	require.Equal(t, math.NewInt(60), f.BankKeeper.GetBalance(f.Ctx, treasuryAddr, types.DefaultNativeDenom).Amount)
	require.True(t, f.Keeper.GetEarnings(f.Ctx, treasuryAddr, types.DefaultNativeDenom).IsZero())
}

// TestWithdrawTreasury_Unauthorized tests the authority gate
func TestWithdrawTreasury_Unauthorized(t *testing.T) {
	f := keepertest.SessionKeeper(t)

	_, err := f.Keeper.WithdrawTreasury(f.Ctx, testHost().String(), nil)
	require.ErrorIs(t, err, types.ErrUnauthorized)
}
