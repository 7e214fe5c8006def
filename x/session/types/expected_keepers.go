package types

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// AccountKeeper defines the expected account keeper used by the module.
type AccountKeeper interface {
	GetModuleAddress(name string) sdk.AccAddress
}

// BankKeeper defines the expected bank keeper. All custody moves through the
// module account; outbound transfers happen only after ledger decrements.
type BankKeeper interface {
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
	SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error
	SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error
	SendCoinsFromModuleToModule(ctx context.Context, senderModule, recipientModule string, amt sdk.Coins) error
}

// HostRegistry supplies host identity and declared pricing. Provided by the
// staking/discovery module; the session module is read-only against it and
// consults it at session creation time only.
type HostRegistry interface {
	IsActiveHost(ctx context.Context, host sdk.AccAddress) bool
	MinimumPrice(ctx context.Context, host sdk.AccAddress) (math.Int, error)
}

// CapabilityRegistry supplies the approval predicate for requested work types.
type CapabilityRegistry interface {
	IsApproved(ctx context.Context, capability string) bool
}

// ProofVerifier checks opaque proof material against the work units it claims.
// Verification is synchronous; a false result rejects the submission without
// touching session state.
type ProofVerifier interface {
	Verify(ctx context.Context, material []byte, claimedWork uint64) bool
}
