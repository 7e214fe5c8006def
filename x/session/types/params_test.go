package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/parallax-network/parallax/x/session/types"
)

// TestParams_DefaultIsValid tests that the defaults validate
func TestParams_DefaultIsValid(t *testing.T) {
	require.NoError(t, types.DefaultParams().Validate())
}

// TestParams_Validate tests parameter validation rules
func TestParams_Validate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*types.Params)
		wantErr string
	}{
		{"empty native denom", func(p *types.Params) { p.NativeDenom = "" }, "invalid native denom"},
		{"bad allowed denom", func(p *types.Params) { p.AllowedDenoms = []string{"!"} }, "invalid allowed denom"},
		{"duplicate allowed denom", func(p *types.Params) { p.AllowedDenoms = []string{"uion", "uion"} }, "duplicate allowed denom"},
		{"native denom repeated in allow list", func(p *types.Params) { p.AllowedDenoms = []string{p.NativeDenom} }, "duplicate allowed denom"},
		{"fee above cap", func(p *types.Params) { p.FeeBps = types.MaxFeeBps + 1 }, "fee basis points"},
		{"negative minimum", func(p *types.Params) { p.MinDeposits[0].Amount = math.NewInt(-1) }, "must be non-negative"},
		{"duplicate minimum", func(p *types.Params) {
			p.MinDeposits = append(p.MinDeposits, p.MinDeposits[0])
		}, "duplicate minimum deposit"},
		{"zero abandonment window", func(p *types.Params) { p.AbandonmentSeconds = 0 }, "abandonment threshold"},
		{"zero max duration", func(p *types.Params) { p.MaxSessionDurationSeconds = 0 }, "max session duration"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			params := types.DefaultParams()
			tc.mutate(&params)
			err := params.Validate()
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

// TestParams_IsAllowedDenom tests the denom allow-list semantics
func TestParams_IsAllowedDenom(t *testing.T) {
	params := types.DefaultParams()
	params.AllowedDenoms = []string{"uion"}

	require.True(t, params.IsAllowedDenom(params.NativeDenom))
	require.True(t, params.IsAllowedDenom("uion"))
	require.False(t, params.IsAllowedDenom("uatom"))
}

// TestParams_MinDepositFor tests the per-denom floor lookup
func TestParams_MinDepositFor(t *testing.T) {
	params := types.DefaultParams()

	require.Equal(t, math.NewInt(1000), params.MinDepositFor(params.NativeDenom))
	// An allowed denom without an explicit floor only needs to be positive.
	require.Equal(t, math.OneInt(), params.MinDepositFor("uion"))
}
