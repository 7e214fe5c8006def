package keeper

import (
	"context"
	"encoding/binary"
	"encoding/json"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/parallax-network/parallax/x/session/types"
)

// Keeper of the session store. It owns every session for its entire life, the
// deposit and earnings ledgers, and the proof digest replay index.
type Keeper struct {
	storeKey           storetypes.StoreKey
	bankKeeper         types.BankKeeper
	accountKeeper      types.AccountKeeper
	hostRegistry       types.HostRegistry
	capabilityRegistry types.CapabilityRegistry
	proofVerifier      types.ProofVerifier
	authority          string
}

// NewKeeper creates a new session Keeper instance.
func NewKeeper(
	key storetypes.StoreKey,
	bankKeeper types.BankKeeper,
	accountKeeper types.AccountKeeper,
	hostRegistry types.HostRegistry,
	capabilityRegistry types.CapabilityRegistry,
	proofVerifier types.ProofVerifier,
	authority string,
) *Keeper {
	return &Keeper{
		storeKey:           key,
		bankKeeper:         bankKeeper,
		accountKeeper:      accountKeeper,
		hostRegistry:       hostRegistry,
		capabilityRegistry: capabilityRegistry,
		proofVerifier:      proofVerifier,
		authority:          authority,
	}
}

// GetAuthority returns the address allowed to update params and withdraw
// treasury earnings.
func (k Keeper) GetAuthority() string {
	return k.authority
}

// Logger returns the module-tagged logger.
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+types.ModuleName)
}

// getStore returns the KVStore for the session module.
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}

// setRecord JSON-encodes a state record under key. Records are hand-written
// structs; JSON keeps them stable across exports without a codegen step.
func (k Keeper) setRecord(ctx context.Context, key []byte, record any) error {
	bz, err := json.Marshal(record)
	if err != nil {
		return err
	}
	k.getStore(ctx).Set(key, bz)
	return nil
}

// getRecord loads and decodes a record; found is false when the key is unset.
func (k Keeper) getRecord(ctx context.Context, key []byte, record any) (found bool, err error) {
	bz := k.getStore(ctx).Get(key)
	if bz == nil {
		return false, nil
	}
	if err := json.Unmarshal(bz, record); err != nil {
		return false, err
	}
	return true, nil
}

// nextSessionID allocates the next sequential session id, starting at 1.
func (k Keeper) nextSessionID(ctx context.Context) uint64 {
	store := k.getStore(ctx)

	var next uint64 = 1
	if bz := store.Get(types.NextSessionIDKey); bz != nil {
		next = binary.BigEndian.Uint64(bz)
	}

	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, next+1)
	store.Set(types.NextSessionIDKey, bz)

	return next
}

// peekNextSessionID reads the counter without advancing it, for export.
func (k Keeper) peekNextSessionID(ctx context.Context) uint64 {
	if bz := k.getStore(ctx).Get(types.NextSessionIDKey); bz != nil {
		return binary.BigEndian.Uint64(bz)
	}
	return 1
}

// setNextSessionID seeds the counter from genesis.
func (k Keeper) setNextSessionID(ctx context.Context, next uint64) {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, next)
	k.getStore(ctx).Set(types.NextSessionIDKey, bz)
}
