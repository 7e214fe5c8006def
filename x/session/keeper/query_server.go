package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/parallax-network/parallax/x/session/types"
)

var _ types.QueryServer = queryServer{}

type queryServer struct {
	Keeper
}

// NewQueryServerImpl returns an implementation of the QueryServer interface
func NewQueryServerImpl(keeper Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

// Params returns the module parameters
func (qs queryServer) Params(goCtx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	params, err := qs.Keeper.GetParams(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &types.QueryParamsResponse{Params: params}, nil
}

// Session returns one session record by id
func (qs queryServer) Session(goCtx context.Context, req *types.QuerySessionRequest) (*types.QuerySessionResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	if req.SessionId == 0 {
		return nil, status.Error(codes.InvalidArgument, "session id cannot be zero")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	session, found := qs.Keeper.GetSession(ctx, req.SessionId)
	if !found {
		return nil, status.Error(codes.NotFound, fmt.Sprintf("session %d not found", req.SessionId))
	}

	return &types.QuerySessionResponse{Session: session}, nil
}

// Sessions returns all sessions, optionally filtered by status name
func (qs queryServer) Sessions(goCtx context.Context, req *types.QuerySessionsRequest) (*types.QuerySessionsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	var filter *types.SessionStatus
	if req.Status != "" {
		parsed, err := types.ParseSessionStatus(req.Status)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		filter = &parsed
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	var sessions []types.Session
	qs.Keeper.IterateSessions(ctx, func(session types.Session) bool {
		if filter == nil || session.Status == *filter {
			sessions = append(sessions, session)
		}
		return false
	})

	return &types.QuerySessionsResponse{Sessions: sessions}, nil
}

// DepositBalance returns the non-zero deposit cells of one holder
func (qs queryServer) DepositBalance(goCtx context.Context, req *types.QueryDepositBalanceRequest) (*types.QueryDepositBalanceResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	holder, err := sdk.AccAddressFromBech32(req.Holder)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("invalid holder address: %s", err))
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	var balances []types.DepositBalance
	qs.Keeper.IterateDepositBalances(ctx, func(addr sdk.AccAddress, denom string, amount math.Int) bool {
		if addr.Equals(holder) {
			balances = append(balances, types.DepositBalance{
				Holder: addr.String(),
				Denom:  denom,
				Amount: amount,
			})
		}
		return false
	})

	return &types.QueryDepositBalanceResponse{Balances: balances}, nil
}

// Earnings returns the non-zero earnings cells of one beneficiary
func (qs queryServer) Earnings(goCtx context.Context, req *types.QueryEarningsRequest) (*types.QueryEarningsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	beneficiary, err := sdk.AccAddressFromBech32(req.Beneficiary)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("invalid beneficiary address: %s", err))
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	var balances []types.EarningsBalance
	qs.Keeper.IterateEarnings(ctx, beneficiary, func(denom string, amount math.Int) bool {
		balances = append(balances, types.EarningsBalance{
			Beneficiary: beneficiary.String(),
			Denom:       denom,
			Amount:      amount,
		})
		return false
	})

	return &types.QueryEarningsResponse{Balances: balances}, nil
}

// ProofHistory returns the ordered proof records of a session
func (qs queryServer) ProofHistory(goCtx context.Context, req *types.QueryProofHistoryRequest) (*types.QueryProofHistoryResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	if req.SessionId == 0 {
		return nil, status.Error(codes.InvalidArgument, "session id cannot be zero")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	if _, found := qs.Keeper.GetSession(ctx, req.SessionId); !found {
		return nil, status.Error(codes.NotFound, fmt.Sprintf("session %d not found", req.SessionId))
	}

	proofs, err := qs.Keeper.GetProofHistory(ctx, req.SessionId)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &types.QueryProofHistoryResponse{Proofs: proofs}, nil
}
