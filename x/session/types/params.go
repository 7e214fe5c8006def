package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// DefaultNativeDenom is the chain staking denom, always accepted for deposits.
const DefaultNativeDenom = "uplx"

const (
	// MaxFeeBps caps the platform fee at 100%.
	MaxFeeBps = 10_000

	DefaultFeeBps                    = 1_000 // 10%
	DefaultAbandonmentSeconds        = 86_400
	DefaultDisputeWindowSeconds      = 604_800
	DefaultMaxSessionDurationSeconds = 2_592_000 // 30 days
)

// MinDeposit is the per-denom floor for session deposits.
type MinDeposit struct {
	Denom  string   `json:"denom"`
	Amount math.Int `json:"amount"`
}

// Params holds the administrator-settable configuration of the session module.
type Params struct {
	// NativeDenom is always accepted as a session asset.
	NativeDenom string `json:"native_denom"`
	// AllowedDenoms lists the non-native denoms accepted as session assets.
	AllowedDenoms []string `json:"allowed_denoms,omitempty"`
	// FeeBps is the platform fee in basis points taken from the gross payout.
	FeeBps uint64 `json:"fee_bps"`
	// MinDeposits is the per-denom minimum session deposit. A denom without
	// an entry has no floor beyond being positive.
	MinDeposits []MinDeposit `json:"min_deposits,omitempty"`
	// AbandonmentSeconds is the inactivity threshold after which either party
	// may settle an abandoned session.
	AbandonmentSeconds uint64 `json:"abandonment_seconds"`
	// DisputeWindowSeconds sizes the dispute deadline recorded on completion.
	DisputeWindowSeconds uint64 `json:"dispute_window_seconds"`
	// MaxSessionDurationSeconds caps the max duration a renter may request.
	MaxSessionDurationSeconds uint64 `json:"max_session_duration_seconds"`
}

// DefaultParams returns the default session module parameters.
func DefaultParams() Params {
	return Params{
		NativeDenom:               DefaultNativeDenom,
		FeeBps:                    DefaultFeeBps,
		MinDeposits:               []MinDeposit{{Denom: DefaultNativeDenom, Amount: math.NewInt(1_000)}},
		AbandonmentSeconds:        DefaultAbandonmentSeconds,
		DisputeWindowSeconds:      DefaultDisputeWindowSeconds,
		MaxSessionDurationSeconds: DefaultMaxSessionDurationSeconds,
	}
}

// Validate performs basic validation of session parameters.
func (p Params) Validate() error {
	if err := sdk.ValidateDenom(p.NativeDenom); err != nil {
		return fmt.Errorf("invalid native denom: %w", err)
	}
	seen := map[string]struct{}{p.NativeDenom: {}}
	for _, d := range p.AllowedDenoms {
		if err := sdk.ValidateDenom(d); err != nil {
			return fmt.Errorf("invalid allowed denom %q: %w", d, err)
		}
		if _, dup := seen[d]; dup {
			return fmt.Errorf("duplicate allowed denom %q", d)
		}
		seen[d] = struct{}{}
	}
	if p.FeeBps > MaxFeeBps {
		return fmt.Errorf("fee basis points %d exceed %d", p.FeeBps, MaxFeeBps)
	}
	minSeen := make(map[string]struct{}, len(p.MinDeposits))
	for _, m := range p.MinDeposits {
		if err := sdk.ValidateDenom(m.Denom); err != nil {
			return fmt.Errorf("invalid minimum deposit denom %q: %w", m.Denom, err)
		}
		if _, dup := minSeen[m.Denom]; dup {
			return fmt.Errorf("duplicate minimum deposit for denom %q", m.Denom)
		}
		minSeen[m.Denom] = struct{}{}
		if m.Amount.IsNil() || m.Amount.IsNegative() {
			return fmt.Errorf("minimum deposit for %q must be non-negative", m.Denom)
		}
	}
	if p.AbandonmentSeconds == 0 {
		return fmt.Errorf("abandonment threshold must be positive")
	}
	if p.MaxSessionDurationSeconds == 0 {
		return fmt.Errorf("max session duration must be positive")
	}
	return nil
}

// IsAllowedDenom reports whether the denom may back a session.
func (p Params) IsAllowedDenom(denom string) bool {
	if denom == p.NativeDenom {
		return true
	}
	for _, d := range p.AllowedDenoms {
		if d == denom {
			return true
		}
	}
	return false
}

// MinDepositFor returns the deposit floor for a denom. Denoms without an
// explicit entry only need to be positive.
func (p Params) MinDepositFor(denom string) math.Int {
	for _, m := range p.MinDeposits {
		if m.Denom == denom {
			return m.Amount
		}
	}
	return math.OneInt()
}
