package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/parallax-network/parallax/x/session/types"
)

// InitGenesis initializes the session module's state from a genesis state.
func (k Keeper) InitGenesis(ctx context.Context, data types.GenesisState) error {
	if err := k.SetParams(ctx, data.Params); err != nil {
		return fmt.Errorf("failed to set params: %w", err)
	}

	for _, name := range data.AuthorizedCreditors {
		k.setCreditor(ctx, name, true)
	}

	k.setNextSessionID(ctx, data.NextSessionId)

	for _, session := range data.Sessions {
		if err := k.SetSession(ctx, session); err != nil {
			return fmt.Errorf("failed to initialize session %d: %w", session.Id, err)
		}
		for _, p := range session.Proofs {
			k.markDigestUsed(ctx, p.Digest, session.Id)
		}
		if session.Status == types.StatusActive {
			k.setDeadlineIndex(ctx, session.Expiry(), session.Id)
		}
	}

	for _, b := range data.DepositBalances {
		holder, err := sdk.AccAddressFromBech32(b.Holder)
		if err != nil {
			return fmt.Errorf("invalid deposit holder %q: %w", b.Holder, err)
		}
		if err := k.setDepositBalance(ctx, holder, b.Denom, b.Amount); err != nil {
			return err
		}
	}

	for _, b := range data.EarningsBalances {
		beneficiary, err := sdk.AccAddressFromBech32(b.Beneficiary)
		if err != nil {
			return fmt.Errorf("invalid earnings beneficiary %q: %w", b.Beneficiary, err)
		}
		if err := k.setEarnings(ctx, beneficiary, b.Denom, b.Amount); err != nil {
			return err
		}
	}

	return nil
}

// ExportGenesis returns the session module's full exportable state.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, err
	}

	gs := &types.GenesisState{
		Params:              params,
		AuthorizedCreditors: k.AuthorizedCreditors(ctx),
		NextSessionId:       k.peekNextSessionID(ctx),
	}

	k.IterateSessions(ctx, func(session types.Session) bool {
		gs.Sessions = append(gs.Sessions, session)
		return false
	})
	k.IterateDepositBalances(ctx, func(holder sdk.AccAddress, denom string, amount math.Int) bool {
		gs.DepositBalances = append(gs.DepositBalances, types.DepositBalance{
			Holder: holder.String(),
			Denom:  denom,
			Amount: amount,
		})
		return false
	})
	k.IterateAllEarnings(ctx, func(beneficiary sdk.AccAddress, denom string, amount math.Int) bool {
		gs.EarningsBalances = append(gs.EarningsBalances, types.EarningsBalance{
			Beneficiary: beneficiary.String(),
			Denom:       denom,
			Amount:      amount,
		})
		return false
	})

	return gs, nil
}
