package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// GenesisState is the full exportable state of the session module.
type GenesisState struct {
	Params              Params            `json:"params"`
	AuthorizedCreditors []string          `json:"authorized_creditors,omitempty"`
	NextSessionId       uint64            `json:"next_session_id"`
	Sessions            []Session         `json:"sessions,omitempty"`
	DepositBalances     []DepositBalance  `json:"deposit_balances,omitempty"`
	EarningsBalances    []EarningsBalance `json:"earnings_balances,omitempty"`
}

// DefaultGenesis returns the default genesis state: default params, the
// session module itself as the only authorized earnings creditor, no sessions.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:              DefaultParams(),
		AuthorizedCreditors: []string{ModuleName},
		NextSessionId:       1,
	}
}

// Validate performs basic genesis state validation: well-formed params,
// unique session ids and proof digests, internally consistent sessions,
// non-negative ledger cells, and an id counter past every existing session.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}

	creditors := make(map[string]struct{}, len(gs.AuthorizedCreditors))
	for _, c := range gs.AuthorizedCreditors {
		if c == "" {
			return fmt.Errorf("empty creditor name")
		}
		if _, dup := creditors[c]; dup {
			return fmt.Errorf("duplicate creditor %q", c)
		}
		creditors[c] = struct{}{}
	}

	if gs.NextSessionId == 0 {
		return fmt.Errorf("next session id must be positive")
	}

	ids := make(map[uint64]struct{}, len(gs.Sessions))
	digests := make(map[string]struct{})
	for _, s := range gs.Sessions {
		if err := s.Validate(); err != nil {
			return err
		}
		if _, dup := ids[s.Id]; dup {
			return fmt.Errorf("duplicate session id %d", s.Id)
		}
		ids[s.Id] = struct{}{}
		if s.Id >= gs.NextSessionId {
			return fmt.Errorf("session id %d not below next session id %d", s.Id, gs.NextSessionId)
		}
		for _, p := range s.Proofs {
			if _, dup := digests[p.Digest]; dup {
				return fmt.Errorf("proof digest %q appears twice", p.Digest)
			}
			digests[p.Digest] = struct{}{}
		}
	}

	depositCells := make(map[string]struct{}, len(gs.DepositBalances))
	for _, b := range gs.DepositBalances {
		if _, err := sdk.AccAddressFromBech32(b.Holder); err != nil {
			return fmt.Errorf("invalid deposit holder %q: %w", b.Holder, err)
		}
		if err := sdk.ValidateDenom(b.Denom); err != nil {
			return fmt.Errorf("invalid deposit denom %q: %w", b.Denom, err)
		}
		if b.Amount.IsNil() || !b.Amount.IsPositive() {
			return fmt.Errorf("deposit cell (%s,%s) must be positive", b.Holder, b.Denom)
		}
		cell := b.Holder + "/" + b.Denom
		if _, dup := depositCells[cell]; dup {
			return fmt.Errorf("duplicate deposit cell %s", cell)
		}
		depositCells[cell] = struct{}{}
	}

	earningsCells := make(map[string]struct{}, len(gs.EarningsBalances))
	for _, b := range gs.EarningsBalances {
		if _, err := sdk.AccAddressFromBech32(b.Beneficiary); err != nil {
			return fmt.Errorf("invalid earnings beneficiary %q: %w", b.Beneficiary, err)
		}
		if err := sdk.ValidateDenom(b.Denom); err != nil {
			return fmt.Errorf("invalid earnings denom %q: %w", b.Denom, err)
		}
		if b.Amount.IsNil() || !b.Amount.IsPositive() {
			return fmt.Errorf("earnings cell (%s,%s) must be positive", b.Beneficiary, b.Denom)
		}
		cell := b.Beneficiary + "/" + b.Denom
		if _, dup := earningsCells[cell]; dup {
			return fmt.Errorf("duplicate earnings cell %s", cell)
		}
		earningsCells[cell] = struct{}{}
	}

	return nil
}
