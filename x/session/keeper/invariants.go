package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/parallax-network/parallax/x/session/types"
)

// RegisterInvariants registers all session module invariants.
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "module-balance", ModuleBalanceInvariant(k))
	ir.RegisterRoute(types.ModuleName, "session-capacity", SessionCapacityInvariant(k))
	ir.RegisterRoute(types.ModuleName, "proof-digest-index", ProofDigestIndexInvariant(k))
}

// AllInvariants runs all invariants of the session module.
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := ModuleBalanceInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		res, stop = SessionCapacityInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		return ProofDigestIndexInvariant(k)(ctx)
	}
}

// ModuleBalanceInvariant checks that the module account holds at least the sum
// of all deposit cells, active session deposits and earnings cells, per denom.
// Value may never be created: ledger totals exceeding custody means a credit
// happened without backing funds.
func ModuleBalanceInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		required := make(map[string]math.Int)
		add := func(denom string, amount math.Int) {
			if cur, ok := required[denom]; ok {
				required[denom] = cur.Add(amount)
				return
			}
			required[denom] = amount
		}

		k.IterateDepositBalances(ctx, func(_ sdk.AccAddress, denom string, amount math.Int) bool {
			add(denom, amount)
			return false
		})
		k.IterateAllEarnings(ctx, func(_ sdk.AccAddress, denom string, amount math.Int) bool {
			add(denom, amount)
			return false
		})
		k.IterateSessions(ctx, func(session types.Session) bool {
			if session.Status == types.StatusActive {
				add(session.Denom, session.Deposit)
			}
			return false
		})

		moduleAddr := k.accountKeeper.GetModuleAddress(types.ModuleName)
		for denom, amount := range required {
			held := k.bankKeeper.GetBalance(ctx, moduleAddr, denom)
			if held.Amount.LT(amount) {
				return sdk.FormatInvariant(
					types.ModuleName, "module-balance",
					fmt.Sprintf("module account holds %s, ledgers require %s%s", held, amount, denom),
				), true
			}
		}
		return sdk.FormatInvariant(types.ModuleName, "module-balance", "module custody covers all ledgers"), false
	}
}

// SessionCapacityInvariant checks proven_work * unit_price <= deposit for
// every session, terminal ones included.
func SessionCapacityInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			broken bool
			msg    string
		)
		k.IterateSessions(ctx, func(session types.Session) bool {
			proven := math.NewIntFromUint64(session.ProvenWork)
			if proven.Mul(session.UnitPrice).GT(session.Deposit) {
				broken = true
				msg = fmt.Sprintf("session %d: proven work %d exceeds deposit capacity", session.Id, session.ProvenWork)
				return true
			}
			return false
		})
		if broken {
			return sdk.FormatInvariant(types.ModuleName, "session-capacity", msg), true
		}
		return sdk.FormatInvariant(types.ModuleName, "session-capacity", "all sessions within capacity"), false
	}
}

// ProofDigestIndexInvariant checks that every recorded proof digest appears in
// the global replay index and points back at its session.
func ProofDigestIndexInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			broken bool
			msg    string
		)
		k.IterateSessions(ctx, func(session types.Session) bool {
			for _, p := range session.Proofs {
				owner, used := k.digestOwner(ctx, p.Digest)
				if !used || owner != session.Id {
					broken = true
					msg = fmt.Sprintf("digest %q of session %d missing from replay index", p.Digest, session.Id)
					return true
				}
			}
			return false
		})
		if broken {
			return sdk.FormatInvariant(types.ModuleName, "proof-digest-index", msg), true
		}
		return sdk.FormatInvariant(types.ModuleName, "proof-digest-index", "replay index complete"), false
	}
}
