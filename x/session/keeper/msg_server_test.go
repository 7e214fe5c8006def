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

// TestMsgServer_FullLifecycle drives a session end to end through the message
// handlers only
func TestMsgServer_FullLifecycle(t *testing.T) {
	f := keepertest.SessionKeeper(t)
	srv := keeper.NewMsgServerImpl(*f.Keeper)
	renter, host := testRenter(), testHost()
	f.Hosts.SetHost(host, math.ZeroInt())
	keepertest.FundAccount(t, f, renter, sdk.NewCoins(sdk.NewInt64Coin(types.DefaultNativeDenom, 1000)))

	_, err := srv.Deposit(f.Ctx, &types.MsgDeposit{
		Depositor: renter.String(),
		Amount:    sdk.NewInt64Coin(types.DefaultNativeDenom, 1000),
	})
	require.NoError(t, err)

	created, err := srv.CreateSession(f.Ctx, &types.MsgCreateSession{
		Renter:             renter.String(),
		Host:               host.String(),
		Deposit:            sdk.NewInt64Coin(types.DefaultNativeDenom, 1000),
		UnitPrice:          math.NewInt(10),
		MaxDurationSeconds: 3600,
	})
	require.NoError(t, err)
	require.Equal(t, uint64(1), created.SessionId)

	submitted, err := srv.SubmitProof(f.Ctx, &types.MsgSubmitProof{
		Host:      host.String(),
		SessionId: created.SessionId,
		WorkUnits: 60,
		Digest:    "digest-1",
		Material:  []byte("material"),
	})
	require.NoError(t, err)
	require.Equal(t, uint64(60), submitted.ProvenWork)

	_, err = srv.Claim(f.Ctx, &types.MsgClaim{Host: host.String(), SessionId: created.SessionId})
	require.NoError(t, err)

	earned, err := srv.WithdrawEarnings(f.Ctx, &types.MsgWithdrawEarnings{Beneficiary: host.String()})
	require.NoError(t, err)
	require.Equal(t, sdk.NewCoins(sdk.NewInt64Coin(types.DefaultNativeDenom, 540)), earned.Amounts)

	_, err = srv.WithdrawDeposit(f.Ctx, &types.MsgWithdrawDeposit{
		Depositor: renter.String(),
		Amount:    sdk.NewInt64Coin(types.DefaultNativeDenom, 400),
	})
	require.NoError(t, err)

	fees, err := srv.WithdrawTreasury(f.Ctx, &types.MsgWithdrawTreasury{Authority: f.Authority})
	require.NoError(t, err)
	require.Equal(t, sdk.NewCoins(sdk.NewInt64Coin(types.DefaultNativeDenom, 60)), fees.Amounts)

	// Everything accounted for: 540 + 400 + 60 = 1000.
	require.Equal(t, math.NewInt(540), f.BankKeeper.GetBalance(f.Ctx, host, types.DefaultNativeDenom).Amount)
	require.Equal(t, math.NewInt(400), f.BankKeeper.GetBalance(f.Ctx, renter, types.DefaultNativeDenom).Amount)
	moduleAddr := f.AccountKeeper.GetModuleAddress(types.ModuleName)
	require.True(t, f.BankKeeper.GetBalance(f.Ctx, moduleAddr, types.DefaultNativeDenom).IsZero())
}

// TestMsgServer_CooperativeClose drives markReady then finalize through handlers
func TestMsgServer_CooperativeClose(t *testing.T) {
	f := keepertest.SessionKeeper(t)
	srv := keeper.NewMsgServerImpl(*f.Keeper)
	id := createFundedSession(t, f, 1000, 10)

	_, err := srv.MarkReady(f.Ctx, &types.MsgMarkReady{Host: testHost().String(), SessionId: id})
	require.NoError(t, err)

	_, err = srv.Finalize(f.Ctx, &types.MsgFinalize{Renter: testRenter().String(), SessionId: id})
	require.NoError(t, err)

	session, _ := f.Keeper.GetSession(f.Ctx, id)
	require.Equal(t, types.StatusCompleted, session.Status)
}

// TestMsgServer_InvalidAddress tests bech32 rejection at the handler boundary
func TestMsgServer_InvalidAddress(t *testing.T) {
	f := keepertest.SessionKeeper(t)
	srv := keeper.NewMsgServerImpl(*f.Keeper)

	_, err := srv.Deposit(f.Ctx, &types.MsgDeposit{
		Depositor: "not-an-address",
		Amount:    sdk.NewInt64Coin(types.DefaultNativeDenom, 100),
	})
	require.Error(t, err)
}

// TestMsgServer_UpdateParams tests the governance parameter update path
func TestMsgServer_UpdateParams(t *testing.T) {
	f := keepertest.SessionKeeper(t)
	srv := keeper.NewMsgServerImpl(*f.Keeper)

	params := types.DefaultParams()
	params.FeeBps = 250

	_, err := srv.UpdateParams(f.Ctx, &types.MsgUpdateParams{
		Authority: testHost().String(),
		Params:    params,
	})
	require.ErrorIs(t, err, types.ErrUnauthorized)

	_, err = srv.UpdateParams(f.Ctx, &types.MsgUpdateParams{
		Authority: f.Authority,
		Params:    params,
	})
	require.NoError(t, err)

	stored, err := f.Keeper.GetParams(f.Ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(250), stored.FeeBps)
}

// TestMsgServer_CancelSession tests renter cancellation through the handler
func TestMsgServer_CancelSession(t *testing.T) {
	f := keepertest.SessionKeeper(t)
	srv := keeper.NewMsgServerImpl(*f.Keeper)
	id := createFundedSession(t, f, 1000, 10)

	_, err := srv.CancelSession(f.Ctx, &types.MsgCancelSession{Renter: testRenter().String(), SessionId: id})
	require.NoError(t, err)

	require.Equal(t, math.NewInt(1000), f.Keeper.GetDepositBalance(f.Ctx, testRenter(), types.DefaultNativeDenom))
}
