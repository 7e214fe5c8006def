package types

import (
	"fmt"
	"time"

	"cosmossdk.io/math"
)

const (
	// ModuleName defines the module name
	ModuleName = "session"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// TreasuryPoolName is the module account that accumulates platform fees
	// until the treasury withdrawal path moves them out.
	TreasuryPoolName = "session_treasury"
)

// SessionStatus is the lifecycle state of a session. A session is mutable only
// while Active; every other status is terminal.
type SessionStatus uint32

const (
	StatusActive SessionStatus = iota
	StatusCompleted
	StatusTimedOut
	StatusAbandoned
	StatusCancelled
)

// String returns the lowercase status name used in events and CLI output.
func (s SessionStatus) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusCompleted:
		return "completed"
	case StatusTimedOut:
		return "timed_out"
	case StatusAbandoned:
		return "abandoned"
	case StatusCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("unknown(%d)", uint32(s))
	}
}

// IsTerminal reports whether the status is a settlement state.
func (s SessionStatus) IsTerminal() bool {
	return s != StatusActive
}

// ProofRecord is one accepted proof submission, owned by its session. Records
// are append-only; a digest accepted here can never be accepted again anywhere.
type ProofRecord struct {
	Digest      string    `json:"digest"`
	WorkUnits   uint64    `json:"work_units"`
	SubmittedAt time.Time `json:"submitted_at"`
	Verified    bool      `json:"verified"`
	ProofCid    string    `json:"proof_cid,omitempty"`
	DeltaCid    string    `json:"delta_cid,omitempty"`
}

// Session is one metered escrow engagement between a renter and a host. The
// parties, denom and economic terms are immutable after creation; only the
// progress counters, activity timestamps and status advance.
type Session struct {
	Id                   uint64        `json:"id"`
	Renter               string        `json:"renter"`
	Host                 string        `json:"host"`
	Denom                string        `json:"denom"`
	Deposit              math.Int      `json:"deposit"`
	UnitPrice            math.Int      `json:"unit_price"`
	Capability           string        `json:"capability,omitempty"`
	CreatedAt            time.Time     `json:"created_at"`
	MaxDurationSeconds   uint64        `json:"max_duration_seconds"`
	ProofIntervalSeconds uint64        `json:"proof_interval_seconds,omitempty"`
	LastActivityAt       time.Time     `json:"last_activity_at"`
	LastProofAt          *time.Time    `json:"last_proof_at,omitempty"`
	ProvenWork           uint64        `json:"proven_work"`
	Proofs               []ProofRecord `json:"proofs,omitempty"`
	ReadyToFinalize      bool          `json:"ready_to_finalize,omitempty"`
	Status               SessionStatus `json:"status"`
	DisputeDeadline      *time.Time    `json:"dispute_deadline,omitempty"`
	SettledAt            *time.Time    `json:"settled_at,omitempty"`
}

// Expiry returns the instant after which the duration-timeout path opens.
func (s Session) Expiry() time.Time {
	return s.CreatedAt.Add(time.Duration(s.MaxDurationSeconds) * time.Second)
}

// Capacity returns the maximum work units the deposit can pay for at the
// session's unit price.
func (s Session) Capacity() math.Int {
	return s.Deposit.Quo(s.UnitPrice)
}

// Validate checks the internal consistency of a session record. It is used on
// genesis import and by the session-capacity invariant.
func (s Session) Validate() error {
	if s.Id == 0 {
		return fmt.Errorf("session id must be positive")
	}
	if s.Renter == "" || s.Host == "" {
		return fmt.Errorf("session %d: renter and host are required", s.Id)
	}
	if s.Renter == s.Host {
		return fmt.Errorf("session %d: renter and host must differ", s.Id)
	}
	if s.Denom == "" {
		return fmt.Errorf("session %d: denom is required", s.Id)
	}
	if s.Deposit.IsNil() || !s.Deposit.IsPositive() {
		return fmt.Errorf("session %d: deposit must be positive", s.Id)
	}
	if s.UnitPrice.IsNil() || !s.UnitPrice.IsPositive() {
		return fmt.Errorf("session %d: unit price must be positive", s.Id)
	}
	if s.MaxDurationSeconds == 0 {
		return fmt.Errorf("session %d: max duration must be positive", s.Id)
	}
	proven := math.NewIntFromUint64(s.ProvenWork)
	if proven.Mul(s.UnitPrice).GT(s.Deposit) {
		return fmt.Errorf("session %d: proven work %d exceeds deposit capacity", s.Id, s.ProvenWork)
	}
	var recorded uint64
	for _, p := range s.Proofs {
		if p.Digest == "" {
			return fmt.Errorf("session %d: proof record with empty digest", s.Id)
		}
		recorded += p.WorkUnits
	}
	if recorded != s.ProvenWork {
		return fmt.Errorf("session %d: proof records sum to %d, counter is %d", s.Id, recorded, s.ProvenWork)
	}
	return nil
}

// DepositBalance is one (holder, denom) cell of the deposit ledger, exported
// for genesis and queries.
type DepositBalance struct {
	Holder string   `json:"holder"`
	Denom  string   `json:"denom"`
	Amount math.Int `json:"amount"`
}

// EarningsBalance is one (beneficiary, denom) cell of the earnings ledger,
// exported for genesis and queries.
type EarningsBalance struct {
	Beneficiary string   `json:"beneficiary"`
	Denom       string   `json:"denom"`
	Amount      math.Int `json:"amount"`
}
