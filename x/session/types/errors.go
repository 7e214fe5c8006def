package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// Session module sentinel errors. Codes are grouped by class: validation
// (2-19), authorization (20-29), state (30-49), external dependency (50-59).
var (
	// Validation errors: the caller sent bad input and may correct and retry.
	ErrZeroAmount            = sdkerrors.Register(ModuleName, 2, "amount must be positive")
	ErrInvalidPrice          = sdkerrors.Register(ModuleName, 3, "unit price must be positive")
	ErrDenomNotAllowed       = sdkerrors.Register(ModuleName, 4, "denom is not allow-listed for sessions")
	ErrDepositBelowMinimum   = sdkerrors.Register(ModuleName, 5, "deposit below the per-denom minimum")
	ErrPriceBelowMinimum     = sdkerrors.Register(ModuleName, 6, "unit price below the host's declared minimum")
	ErrCapabilityNotApproved = sdkerrors.Register(ModuleName, 7, "requested capability is not approved")
	ErrInvalidDuration       = sdkerrors.Register(ModuleName, 8, "invalid session duration")
	ErrInvalidAddress        = sdkerrors.Register(ModuleName, 9, "invalid bech32 address")

	// Authorization errors: wrong caller for a role-gated operation.
	ErrUnauthorized     = sdkerrors.Register(ModuleName, 20, "caller is not authorized")
	ErrNotSessionHost   = sdkerrors.Register(ModuleName, 21, "caller is not the session host")
	ErrNotSessionRenter = sdkerrors.Register(ModuleName, 22, "caller is not the session renter")
	ErrNotSessionParty  = sdkerrors.Register(ModuleName, 23, "caller is not a session party")

	// State errors: the operation is illegal in the current state. These
	// indicate a caller logic bug or an attack (digest replay), never a
	// transient condition.
	ErrInsufficientBalance = sdkerrors.Register(ModuleName, 30, "insufficient ledger balance")
	ErrSessionNotFound     = sdkerrors.Register(ModuleName, 31, "session not found")
	ErrSessionNotActive    = sdkerrors.Register(ModuleName, 32, "session is not active")
	ErrDigestReplayed      = sdkerrors.Register(ModuleName, 33, "proof digest was already accepted")
	ErrCapacityExceeded    = sdkerrors.Register(ModuleName, 34, "claimed work exceeds deposit capacity")
	ErrNotReadyToFinalize  = sdkerrors.Register(ModuleName, 35, "host has not marked the session ready")
	ErrNoProvenWork        = sdkerrors.Register(ModuleName, 36, "session has no proven work to claim")
	ErrDeadlineNotReached  = sdkerrors.Register(ModuleName, 37, "deadline has not been reached")
	ErrSessionNotEmpty     = sdkerrors.Register(ModuleName, 38, "session already has proven work")

	// External dependency errors: the registry or verifier rejected the input.
	// The session stays Active; the host may resubmit with different material.
	ErrHostNotActive = sdkerrors.Register(ModuleName, 50, "host is unknown or not active")
	ErrInvalidProof  = sdkerrors.Register(ModuleName, 51, "proof verification failed")
)
