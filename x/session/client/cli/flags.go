package cli

// Flag constants for session CLI commands
const (
	// Session creation flags
	FlagCapability    = "capability"
	FlagProofInterval = "proof-interval-seconds"

	// Proof submission flags
	FlagMaterial = "material"
	FlagProofCid = "proof-cid"
	FlagDeltaCid = "delta-cid"
)
