package types

import (
	"encoding/binary"
	"time"

	"github.com/cosmos/cosmos-sdk/types/address"
)

// KVStore key prefixes. One byte per state space, ids encoded big-endian so
// iteration order matches numeric order.
var (
	ParamsKey             = []byte{0x01}
	SessionKeyPrefix      = []byte{0x02}
	NextSessionIDKey      = []byte{0x03}
	DepositBalancePrefix  = []byte{0x04}
	EarningsBalancePrefix = []byte{0x05}
	ProofDigestPrefix     = []byte{0x06}
	DeadlineIndexPrefix   = []byte{0x07}
	CreditorAllowPrefix   = []byte{0x08}
)

// SessionKey returns the store key for a session record.
func SessionKey(id uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, id)
	return append(SessionKeyPrefix, bz...)
}

// DepositBalanceKey returns the store key for one (holder, denom) deposit cell.
// The address is length-prefixed so holder/denom pairs can never collide.
func DepositBalanceKey(holder []byte, denom string) []byte {
	key := append(DepositBalancePrefix, address.MustLengthPrefix(holder)...)
	return append(key, []byte(denom)...)
}

// EarningsBalanceKey returns the store key for one (beneficiary, denom)
// earnings cell.
func EarningsBalanceKey(beneficiary []byte, denom string) []byte {
	key := append(EarningsBalancePrefix, address.MustLengthPrefix(beneficiary)...)
	return append(key, []byte(denom)...)
}

// EarningsHolderPrefix returns the prefix covering every denom cell of one
// beneficiary, for withdraw-all iteration.
func EarningsHolderPrefix(beneficiary []byte) []byte {
	return append(EarningsBalancePrefix, address.MustLengthPrefix(beneficiary)...)
}

// ProofDigestKey returns the global replay-index key for a proof digest.
func ProofDigestKey(digest string) []byte {
	return append(ProofDigestPrefix, []byte(digest)...)
}

// DeadlineIndexKey returns the expiry-index key for a session: 8-byte unix
// timestamp followed by the 8-byte session id.
func DeadlineIndexKey(expiry time.Time, id uint64) []byte {
	key := make([]byte, 0, len(DeadlineIndexPrefix)+16)
	key = append(key, DeadlineIndexPrefix...)

	tsBz := make([]byte, 8)
	binary.BigEndian.PutUint64(tsBz, uint64(expiry.Unix()))
	key = append(key, tsBz...)

	idBz := make([]byte, 8)
	binary.BigEndian.PutUint64(idBz, id)
	return append(key, idBz...)
}

// ParseDeadlineIndexKey extracts the expiry and session id back out of an
// index key produced by DeadlineIndexKey.
func ParseDeadlineIndexKey(key []byte) (expiry time.Time, id uint64, ok bool) {
	if len(key) != len(DeadlineIndexPrefix)+16 {
		return time.Time{}, 0, false
	}
	offset := len(DeadlineIndexPrefix)
	ts := binary.BigEndian.Uint64(key[offset : offset+8])
	id = binary.BigEndian.Uint64(key[offset+8:])
	return time.Unix(int64(ts), 0).UTC(), id, true
}

// CreditorAllowKey returns the allow-list key for an earnings creditor name.
func CreditorAllowKey(name string) []byte {
	return append(CreditorAllowPrefix, []byte(name)...)
}
