package keeper_test

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/parallax-network/parallax/testutil/keeper"
	"github.com/parallax-network/parallax/x/session/keeper"
	"github.com/parallax-network/parallax/x/session/types"
)

// TestInvariants_CleanState tests that all invariants hold through a full
// session lifecycle
func TestInvariants_CleanState(t *testing.T) {
	f := keepertest.SessionKeeper(t)

	check := func() {
		t.Helper()
		msg, broken := keeper.AllInvariants(*f.Keeper)(f.Ctx)
		require.False(t, broken, msg)
	}

	check()

	id := createFundedSession(t, f, 1000, 10)
	check()

	submitWork(t, f, id, "digest-1", 60)
	check()

	require.NoError(t, f.Keeper.Claim(f.Ctx, testHost(), id))
	check()

	_, err := f.Keeper.WithdrawEarnings(f.Ctx, testHost(), nil)
	require.NoError(t, err)
	check()

	require.NoError(t, f.Keeper.WithdrawDeposit(f.Ctx, testRenter(), sdk.NewInt64Coin(types.DefaultNativeDenom, 400)))
	check()
}

// TestModuleBalanceInvariant_DetectsUnbackedCredit tests that a credit without
// backing funds breaks the balance invariant
func TestModuleBalanceInvariant_DetectsUnbackedCredit(t *testing.T) {
	f := keepertest.SessionKeeper(t)

	require.NoError(t, f.Keeper.CreditEarnings(f.Ctx, types.ModuleName, testHost(), sdk.NewInt64Coin(types.DefaultNativeDenom, 500)))

	msg, broken := keeper.ModuleBalanceInvariant(*f.Keeper)(f.Ctx)
	require.True(t, broken, msg)
}
