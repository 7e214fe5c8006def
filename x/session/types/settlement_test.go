package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/parallax-network/parallax/x/session/types"
)

// TestSettle_StandardSplit tests the canonical split with a 10% fee
func TestSettle_StandardSplit(t *testing.T) {
	s := types.Settle(60, math.NewInt(10), math.NewInt(1000), 1000)

	require.Equal(t, math.NewInt(540), s.HostShare)
	require.Equal(t, math.NewInt(60), s.Fee)
	require.Equal(t, math.NewInt(400), s.Refund)
	require.Equal(t, math.NewInt(1000), s.Total())
}

// TestSettle_Cases tests the split across the edge points
func TestSettle_Cases(t *testing.T) {
	cases := []struct {
		name       string
		provenWork uint64
		unitPrice  int64
		deposit    int64
		feeBps     uint64
		hostShare  int64
		fee        int64
		refund     int64
	}{
		{"zero work full refund", 0, 10, 1000, 1000, 0, 0, 1000},
		{"full capacity no refund", 100, 10, 1000, 1000, 900, 100, 0},
		{"partial work", 30, 10, 1000, 1000, 270, 30, 700},
		{"zero fee", 60, 10, 1000, 0, 600, 0, 400},
		{"full fee", 60, 10, 1000, 10000, 0, 600, 400},
		{"gross capped at deposit", 1000, 10, 1000, 1000, 900, 100, 0},
		{"fee truncation remainder to host", 13, 7, 1000, 333, 88, 3, 909},
		{"single unit", 1, 1, 1000, 1000, 1, 0, 999},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := types.Settle(tc.provenWork, math.NewInt(tc.unitPrice), math.NewInt(tc.deposit), tc.feeBps)
			require.True(t, s.HostShare.Equal(math.NewInt(tc.hostShare)), "host share: want %d, got %s", tc.hostShare, s.HostShare)
			require.True(t, s.Fee.Equal(math.NewInt(tc.fee)), "fee: want %d, got %s", tc.fee, s.Fee)
			require.True(t, s.Refund.Equal(math.NewInt(tc.refund)), "refund: want %d, got %s", tc.refund, s.Refund)
			require.True(t, s.Total().Equal(math.NewInt(tc.deposit)), "total: want %d, got %s", tc.deposit, s.Total())
		})
	}
}

// TestSettleProperties tests the structural settlement invariants over random inputs
func TestSettleProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		provenWork := rapid.Uint64Range(0, 1_000_000).Draw(t, "provenWork")
		unitPrice := math.NewInt(rapid.Int64Range(1, 1_000_000).Draw(t, "unitPrice"))
		deposit := math.NewInt(rapid.Int64Range(1, 1_000_000_000).Draw(t, "deposit"))
		feeBps := rapid.Uint64Range(0, types.MaxFeeBps).Draw(t, "feeBps")

		s := types.Settle(provenWork, unitPrice, deposit, feeBps)

		// Property: the split conserves the deposit exactly.
		if !s.Total().Equal(deposit) {
			t.Fatalf("split %s+%s+%s does not equal deposit %s", s.HostShare, s.Fee, s.Refund, deposit)
		}

		// Property: no leg is negative.
		if s.HostShare.IsNegative() || s.Fee.IsNegative() || s.Refund.IsNegative() {
			t.Fatalf("negative leg in split %+v", s)
		}

		// Property: the fee never exceeds feeBps of the gross payout.
		gross := s.HostShare.Add(s.Fee)
		if s.Fee.MulRaw(types.MaxFeeBps).GT(gross.MulRaw(int64(feeBps))) {
			t.Fatalf("fee %s exceeds %d bps of gross %s", s.Fee, feeBps, gross)
		}

		// Property: zero work always refunds everything.
		if provenWork == 0 && !s.Refund.Equal(deposit) {
			t.Fatalf("zero work refunded %s of %s", s.Refund, deposit)
		}
	})
}
