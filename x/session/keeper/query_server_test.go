package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	testkeeper "github.com/parallax-network/parallax/testutil/keeper"
	"github.com/parallax-network/parallax/x/session/keeper"
	"github.com/parallax-network/parallax/x/session/types"
)

// TestQueryParams tests the params query
func TestQueryParams(t *testing.T) {
	f := testkeeper.SessionKeeper(t)
	qs := keeper.NewQueryServerImpl(*f.Keeper)

	res, err := qs.Params(f.Ctx, &types.QueryParamsRequest{})
	require.NoError(t, err)
	require.Equal(t, types.DefaultParams(), res.Params)
}

// TestQuerySession tests fetching one session by id
func TestQuerySession(t *testing.T) {
	f := testkeeper.SessionKeeper(t)
	qs := keeper.NewQueryServerImpl(*f.Keeper)

	id := createFundedSession(t, f, 1000, 10)

	res, err := qs.Session(f.Ctx, &types.QuerySessionRequest{SessionId: id})
	require.NoError(t, err)
	require.Equal(t, id, res.Session.Id)
	require.Equal(t, types.StatusActive, res.Session.Status)

	_, err = qs.Session(f.Ctx, &types.QuerySessionRequest{SessionId: 99})
	require.Equal(t, codes.NotFound, status.Code(err))

	_, err = qs.Session(f.Ctx, &types.QuerySessionRequest{SessionId: 0})
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

// TestQuerySessions tests the session list with and without a status filter
func TestQuerySessions(t *testing.T) {
	f := testkeeper.SessionKeeper(t)
	qs := keeper.NewQueryServerImpl(*f.Keeper)

	first := createFundedSession(t, f, 1000, 10)
	fundDeposit(t, f, testRenter(), 1000)
	second := createSessionFor(t, f, 1000, 10)
	require.NoError(t, f.Keeper.CancelSession(f.Ctx, testRenter(), second))

	all, err := qs.Sessions(f.Ctx, &types.QuerySessionsRequest{})
	require.NoError(t, err)
	require.Len(t, all.Sessions, 2)

	active, err := qs.Sessions(f.Ctx, &types.QuerySessionsRequest{Status: "active"})
	require.NoError(t, err)
	require.Len(t, active.Sessions, 1)
	require.Equal(t, first, active.Sessions[0].Id)

	cancelled, err := qs.Sessions(f.Ctx, &types.QuerySessionsRequest{Status: "cancelled"})
	require.NoError(t, err)
	require.Len(t, cancelled.Sessions, 1)
	require.Equal(t, second, cancelled.Sessions[0].Id)

	_, err = qs.Sessions(f.Ctx, &types.QuerySessionsRequest{Status: "bogus"})
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

// TestQueryDepositBalance tests per-holder deposit cell listing
func TestQueryDepositBalance(t *testing.T) {
	f := testkeeper.SessionKeeper(t)
	qs := keeper.NewQueryServerImpl(*f.Keeper)

	fundDeposit(t, f, testRenter(), 700)

	res, err := qs.DepositBalance(f.Ctx, &types.QueryDepositBalanceRequest{Holder: testRenter().String()})
	require.NoError(t, err)
	require.Len(t, res.Balances, 1)
	require.Equal(t, types.DefaultNativeDenom, res.Balances[0].Denom)
	require.Equal(t, int64(700), res.Balances[0].Amount.Int64())

	empty, err := qs.DepositBalance(f.Ctx, &types.QueryDepositBalanceRequest{Holder: testHost().String()})
	require.NoError(t, err)
	require.Empty(t, empty.Balances)

	_, err = qs.DepositBalance(f.Ctx, &types.QueryDepositBalanceRequest{Holder: "not-an-address"})
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

// TestQueryEarnings tests per-beneficiary earnings cell listing
func TestQueryEarnings(t *testing.T) {
	f := testkeeper.SessionKeeper(t)
	qs := keeper.NewQueryServerImpl(*f.Keeper)

	id := createFundedSession(t, f, 1000, 10)
	submitWork(t, f, id, "digest-query-earnings", 60)
	require.NoError(t, f.Keeper.Claim(f.Ctx, testHost(), id))

	res, err := qs.Earnings(f.Ctx, &types.QueryEarningsRequest{Beneficiary: testHost().String()})
	require.NoError(t, err)
	require.Len(t, res.Balances, 1)
	require.Equal(t, int64(540), res.Balances[0].Amount.Int64())
}

// TestQueryProofHistory tests proof record retrieval through the query service
func TestQueryProofHistory(t *testing.T) {
	f := testkeeper.SessionKeeper(t)
	qs := keeper.NewQueryServerImpl(*f.Keeper)

	id := createFundedSession(t, f, 1000, 10)
	submitWork(t, f, id, "digest-query-proof-1", 10)
	submitWork(t, f, id, "digest-query-proof-2", 20)

	res, err := qs.ProofHistory(f.Ctx, &types.QueryProofHistoryRequest{SessionId: id})
	require.NoError(t, err)
	require.Len(t, res.Proofs, 2)
	require.Equal(t, "digest-query-proof-1", res.Proofs[0].Digest)
	require.Equal(t, "digest-query-proof-2", res.Proofs[1].Digest)

	_, err = qs.ProofHistory(f.Ctx, &types.QueryProofHistoryRequest{SessionId: 42})
	require.Equal(t, codes.NotFound, status.Code(err))
}
