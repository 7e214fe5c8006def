package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/parallax-network/parallax/testutil/keeper"
	"github.com/parallax-network/parallax/x/session/types"
)

// TestGenesis_Default tests initialization from the default genesis state
func TestGenesis_Default(t *testing.T) {
	f := keepertest.SessionKeeper(t)

	params, err := f.Keeper.GetParams(f.Ctx)
	require.NoError(t, err)
	require.Equal(t, types.DefaultParams(), params)
	require.Equal(t, []string{types.ModuleName}, f.Keeper.AuthorizedCreditors(f.Ctx))

	exported, err := f.Keeper.ExportGenesis(f.Ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(1), exported.NextSessionId)
	require.Empty(t, exported.Sessions)
	require.Empty(t, exported.DepositBalances)
	require.Empty(t, exported.EarningsBalances)
}

// TestGenesis_ExportImportRoundtrip tests that a populated state survives
// export and re-import
func TestGenesis_ExportImportRoundtrip(t *testing.T) {
	f := keepertest.SessionKeeper(t)

	active := createFundedSession(t, f, 1000, 10)
	submitWork(t, f, active, "digest-active", 20)

	renter, host := testRenter(), testHost()
	fundDeposit(t, f, renter, 2000)
	settled := createSessionFor(t, f, 1000, 10)
	submitWork(t, f, settled, "digest-settled", 60)
	require.NoError(t, f.Keeper.Claim(f.Ctx, host, settled))

	exported, err := f.Keeper.ExportGenesis(f.Ctx)
	require.NoError(t, err)
	require.NoError(t, exported.Validate())
	require.Len(t, exported.Sessions, 2)
	require.Equal(t, uint64(3), exported.NextSessionId)

	// Fresh keeper, same state.
	g := keepertest.SessionKeeper(t)
	require.NoError(t, g.Keeper.InitGenesis(g.Ctx, *exported))

	reexported, err := g.Keeper.ExportGenesis(g.Ctx)
	require.NoError(t, err)
	require.Equal(t, exported, reexported)

	// The replay index was rebuilt.
	_, err = g.Keeper.SubmitProof(g.Ctx, host, &types.MsgSubmitProof{
		Host:      host.String(),
		SessionId: active,
		WorkUnits: 10,
		Digest:    "digest-active",
		Material:  []byte("material"),
	})
	require.ErrorIs(t, err, types.ErrDigestReplayed)

	// The deadline index was rebuilt for the active session only.
	session, found := g.Keeper.GetSession(g.Ctx, active)
	require.True(t, found)
	var hit []uint64
	g.Keeper.IterateExpiredSessions(g.Ctx, session.Expiry().Add(time.Hour), func(id uint64) bool {
		hit = append(hit, id)
		return false
	})
	require.Equal(t, []uint64{active}, hit)

	// The id counter continues where it left off.
	fundDeposit(t, g, renter, 1000)
	g.Hosts.SetHost(host, math.ZeroInt())
	next := createSessionFor(t, g, 1000, 10)
	require.Equal(t, uint64(3), next)
}
