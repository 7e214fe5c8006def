package keeper

import (
	"context"
	"testing"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/codec/address"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authkeeper "github.com/cosmos/cosmos-sdk/x/auth/keeper"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	bankkeeper "github.com/cosmos/cosmos-sdk/x/bank/keeper"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	minttypes "github.com/cosmos/cosmos-sdk/x/mint/types"
	"github.com/stretchr/testify/require"

	"github.com/parallax-network/parallax/x/session/keeper"
	"github.com/parallax-network/parallax/x/session/types"
)

// HostRegistryStub is a configurable in-memory host registry for tests.
type HostRegistryStub struct {
	Active    map[string]bool
	MinPrices map[string]math.Int
}

func (s *HostRegistryStub) IsActiveHost(_ context.Context, host sdk.AccAddress) bool {
	return s.Active[host.String()]
}

func (s *HostRegistryStub) MinimumPrice(_ context.Context, host sdk.AccAddress) (math.Int, error) {
	if p, ok := s.MinPrices[host.String()]; ok {
		return p, nil
	}
	return math.ZeroInt(), nil
}

// SetHost marks a host active with a declared minimum price.
func (s *HostRegistryStub) SetHost(host sdk.AccAddress, minPrice math.Int) {
	s.Active[host.String()] = true
	s.MinPrices[host.String()] = minPrice
}

// CapabilityRegistryStub approves a fixed set of capabilities.
type CapabilityRegistryStub struct {
	Approved map[string]bool
}

func (s *CapabilityRegistryStub) IsApproved(_ context.Context, capability string) bool {
	return s.Approved[capability]
}

// VerifierStub returns a scripted verification result, true by default.
type VerifierStub struct {
	Reject bool
}

func (s *VerifierStub) Verify(_ context.Context, _ []byte, _ uint64) bool {
	return !s.Reject
}

// SessionFixture bundles the session keeper with its collaborators for tests.
type SessionFixture struct {
	Keeper        *keeper.Keeper
	Ctx           sdk.Context
	BankKeeper    bankkeeper.Keeper
	AccountKeeper authkeeper.AccountKeeper
	Hosts         *HostRegistryStub
	Capabilities  *CapabilityRegistryStub
	Verifier      *VerifierStub
	Authority     string
}

// SessionKeeper creates a test keeper for the session module backed by an
// in-memory multistore with real auth and bank keepers.
func SessionKeeper(t testing.TB) SessionFixture {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)
	authStoreKey := storetypes.NewKVStoreKey(authtypes.StoreKey)
	bankStoreKey := storetypes.NewKVStoreKey(banktypes.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(authStoreKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(bankStoreKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	registry := codectypes.NewInterfaceRegistry()
	authtypes.RegisterInterfaces(registry)
	banktypes.RegisterInterfaces(registry)
	cdc := codec.NewProtoCodec(registry)
	authority := authtypes.NewModuleAddress(govtypes.ModuleName)

	maccPerms := map[string][]string{
		authtypes.FeeCollectorName: nil,
		minttypes.ModuleName:       {authtypes.Minter},
		types.ModuleName:           nil,
		types.TreasuryPoolName:     nil,
	}

	accountKeeper := authkeeper.NewAccountKeeper(
		cdc,
		runtime.NewKVStoreService(authStoreKey),
		authtypes.ProtoBaseAccount,
		maccPerms,
		address.NewBech32Codec(sdk.GetConfig().GetBech32AccountAddrPrefix()),
		sdk.GetConfig().GetBech32AccountAddrPrefix(),
		authority.String(),
	)

	bankKeeper := bankkeeper.NewBaseKeeper(
		cdc,
		runtime.NewKVStoreService(bankStoreKey),
		accountKeeper,
		map[string]bool{},
		authority.String(),
		log.NewNopLogger(),
	)

	hosts := &HostRegistryStub{
		Active:    make(map[string]bool),
		MinPrices: make(map[string]math.Int),
	}
	capabilities := &CapabilityRegistryStub{Approved: make(map[string]bool)}
	verifier := &VerifierStub{}

	k := keeper.NewKeeper(
		storeKey,
		bankKeeper,
		accountKeeper,
		hosts,
		capabilities,
		verifier,
		authority.String(),
	)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger()).
		WithBlockTime(time.Unix(1_700_000_000, 0).UTC())

	require.NoError(t, k.InitGenesis(ctx, *types.DefaultGenesis()))

	return SessionFixture{
		Keeper:        k,
		Ctx:           ctx,
		BankKeeper:    bankKeeper,
		AccountKeeper: accountKeeper,
		Hosts:         hosts,
		Capabilities:  capabilities,
		Verifier:      verifier,
		Authority:     authority.String(),
	}
}

// FundAccount mints coins through the mint module and sends them to addr.
func FundAccount(t testing.TB, f SessionFixture, addr sdk.AccAddress, amounts sdk.Coins) {
	require.NoError(t, f.BankKeeper.MintCoins(f.Ctx, minttypes.ModuleName, amounts))
	require.NoError(t, f.BankKeeper.SendCoinsFromModuleToAccount(f.Ctx, minttypes.ModuleName, addr, amounts))
}
