package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/parallax-network/parallax/testutil/keeper"
	"github.com/parallax-network/parallax/x/session/keeper"
	"github.com/parallax-network/parallax/x/session/types"
)

// TestEndBlocker_SweepsExpiredSessions tests that overdue sessions settle
// during the end-of-block sweep
func TestEndBlocker_SweepsExpiredSessions(t *testing.T) {
	f := keepertest.SessionKeeper(t)
	id := createFundedSession(t, f, 1000, 10)
	submitWork(t, f, id, "digest-1", 30)

	session, _ := f.Keeper.GetSession(f.Ctx, id)
	ctx := f.Ctx.WithBlockTime(session.Expiry().Add(time.Second))

	require.NoError(t, f.Keeper.EndBlocker(ctx))

	settled, _ := f.Keeper.GetSession(ctx, id)
	require.Equal(t, types.StatusTimedOut, settled.Status)
	require.Equal(t, math.NewInt(270), f.Keeper.GetEarnings(ctx, testHost(), types.DefaultNativeDenom))
	require.Equal(t, math.NewInt(700), f.Keeper.GetDepositBalance(ctx, testRenter(), types.DefaultNativeDenom))
}

// TestEndBlocker_LeavesRunningSessions tests that the sweep skips sessions
// still inside their duration
func TestEndBlocker_LeavesRunningSessions(t *testing.T) {
	f := keepertest.SessionKeeper(t)
	id := createFundedSession(t, f, 1000, 10)

	require.NoError(t, f.Keeper.EndBlocker(f.Ctx))

	session, _ := f.Keeper.GetSession(f.Ctx, id)
	require.Equal(t, types.StatusActive, session.Status)
}

// TestEndBlocker_MixedExpiries tests a sweep over sessions with different deadlines
func TestEndBlocker_MixedExpiries(t *testing.T) {
	f := keepertest.SessionKeeper(t)
	renter, host := testRenter(), testHost()
	f.Hosts.SetHost(host, math.ZeroInt())
	fundDeposit(t, f, renter, 2000)

	short := createSessionFor(t, f, 1000, 10)

	long, err := f.Keeper.CreateSession(f.Ctx, keeper.CreateSessionInput{
		Renter:             renter,
		Host:               host,
		Deposit:            sdk.NewInt64Coin(types.DefaultNativeDenom, 1000),
		UnitPrice:          math.NewInt(10),
		MaxDurationSeconds: 7200,
	})
	require.NoError(t, err)

	shortSession, _ := f.Keeper.GetSession(f.Ctx, short)
	ctx := f.Ctx.WithBlockTime(shortSession.Expiry().Add(time.Second))
	require.NoError(t, f.Keeper.EndBlocker(ctx))

	settled, _ := f.Keeper.GetSession(ctx, short)
	require.Equal(t, types.StatusTimedOut, settled.Status)
	running, _ := f.Keeper.GetSession(ctx, long)
	require.Equal(t, types.StatusActive, running.Status)
}
