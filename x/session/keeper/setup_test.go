package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/parallax-network/parallax/testutil/keeper"
	"github.com/parallax-network/parallax/x/session/keeper"
	"github.com/parallax-network/parallax/x/session/types"
)

func testRenter() sdk.AccAddress {
	return sdk.AccAddress([]byte("test_renter_addr____"))
}

func testHost() sdk.AccAddress {
	return sdk.AccAddress([]byte("test_host_addr______"))
}

// fundDeposit mints coins to addr and moves them into the module deposit ledger.
func fundDeposit(t *testing.T, f keepertest.SessionFixture, addr sdk.AccAddress, amount int64) {
	t.Helper()
	coin := sdk.NewInt64Coin(types.DefaultNativeDenom, amount)
	keepertest.FundAccount(t, f, addr, sdk.NewCoins(coin))
	require.NoError(t, f.Keeper.Deposit(f.Ctx, addr, coin))
}

// createFundedSession funds the renter, registers the host, and opens a session
// with the given deposit and unit price.
func createFundedSession(t *testing.T, f keepertest.SessionFixture, deposit, price int64) uint64 {
	t.Helper()
	renter, host := testRenter(), testHost()
	f.Hosts.SetHost(host, math.ZeroInt())
	fundDeposit(t, f, renter, deposit)

	id, err := f.Keeper.CreateSession(f.Ctx, keeper.CreateSessionInput{
		Renter:             renter,
		Host:               host,
		Deposit:            sdk.NewInt64Coin(types.DefaultNativeDenom, deposit),
		UnitPrice:          math.NewInt(price),
		MaxDurationSeconds: 3600,
	})
	require.NoError(t, err)
	return id
}

// createSessionFor opens a session assuming the renter is already funded and
// the host already registered.
func createSessionFor(t *testing.T, f keepertest.SessionFixture, deposit, price int64) uint64 {
	t.Helper()
	id, err := f.Keeper.CreateSession(f.Ctx, keeper.CreateSessionInput{
		Renter:             testRenter(),
		Host:               testHost(),
		Deposit:            sdk.NewInt64Coin(types.DefaultNativeDenom, deposit),
		UnitPrice:          math.NewInt(price),
		MaxDurationSeconds: 3600,
	})
	require.NoError(t, err)
	return id
}

// submitWork pushes one verified proof of the given units through the keeper.
func submitWork(t *testing.T, f keepertest.SessionFixture, id uint64, digest string, units uint64) {
	t.Helper()
	_, err := f.Keeper.SubmitProof(f.Ctx, testHost(), &types.MsgSubmitProof{
		Host:      testHost().String(),
		SessionId: id,
		WorkUnits: units,
		Digest:    digest,
		Material:  []byte("material"),
	})
	require.NoError(t, err)
}
