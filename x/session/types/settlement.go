package types

import (
	"cosmossdk.io/math"
)

// Settlement is the terminal split of a session deposit. For every input,
// HostShare + Fee + Refund equals the deposit exactly: the only integer
// division is the fee truncation, whose remainder stays in the host share, and
// the refund is an exact subtraction.
type Settlement struct {
	HostShare math.Int
	Fee       math.Int
	Refund    math.Int
}

// Total returns the sum of all three legs, which must equal the deposit.
func (s Settlement) Total() math.Int {
	return s.HostShare.Add(s.Fee).Add(s.Refund)
}

// Settle computes the terminal split for a session. gross is the deposit
// capped payout for the proven work; the fee is feeBps basis points of gross,
// truncated; the host receives the rest of gross; the renter is refunded the
// untouched remainder of the deposit.
//
// Used identically by every terminal path so that claim, finalize, timeout and
// abandonment cannot disagree on amounts.
func Settle(provenWork uint64, unitPrice, deposit math.Int, feeBps uint64) Settlement {
	gross := math.NewIntFromUint64(provenWork).Mul(unitPrice)
	if gross.GT(deposit) {
		gross = deposit
	}

	fee := gross.MulRaw(int64(feeBps)).QuoRaw(MaxFeeBps)

	return Settlement{
		HostShare: gross.Sub(fee),
		Fee:       fee,
		Refund:    deposit.Sub(gross),
	}
}
