package types_test

import (
	"strings"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/parallax-network/parallax/x/session/types"
)

var (
	renterAddr = sdk.AccAddress([]byte("test_renter_addr____")).String()
	hostAddr   = sdk.AccAddress([]byte("test_host_addr______")).String()
)

// TestMsgDeposit_ValidateBasic tests deposit message validation
func TestMsgDeposit_ValidateBasic(t *testing.T) {
	msg := &types.MsgDeposit{Depositor: renterAddr, Amount: sdk.NewInt64Coin("uplx", 100)}
	require.NoError(t, msg.ValidateBasic())

	require.Error(t, (&types.MsgDeposit{Depositor: "bad", Amount: sdk.NewInt64Coin("uplx", 100)}).ValidateBasic())
	require.Error(t, (&types.MsgDeposit{Depositor: renterAddr, Amount: sdk.NewInt64Coin("uplx", 0)}).ValidateBasic())
}

// TestMsgCreateSession_ValidateBasic tests session creation message validation
func TestMsgCreateSession_ValidateBasic(t *testing.T) {
	valid := func() *types.MsgCreateSession {
		return &types.MsgCreateSession{
			Renter:             renterAddr,
			Host:               hostAddr,
			Deposit:            sdk.NewInt64Coin("uplx", 1000),
			UnitPrice:          math.NewInt(10),
			MaxDurationSeconds: 3600,
		}
	}
	require.NoError(t, valid().ValidateBasic())

	msg := valid()
	msg.Host = msg.Renter
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidAddress)

	msg = valid()
	msg.Deposit = sdk.NewInt64Coin("uplx", 0)
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrZeroAmount)

	msg = valid()
	msg.UnitPrice = math.ZeroInt()
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidPrice)

	msg = valid()
	msg.UnitPrice = math.Int{}
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidPrice)

	msg = valid()
	msg.MaxDurationSeconds = 0
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidDuration)
}

// TestMsgSubmitProof_ValidateBasic tests proof message validation
func TestMsgSubmitProof_ValidateBasic(t *testing.T) {
	valid := func() *types.MsgSubmitProof {
		return &types.MsgSubmitProof{
			Host:      hostAddr,
			SessionId: 1,
			WorkUnits: 10,
			Digest:    "digest-1",
		}
	}
	require.NoError(t, valid().ValidateBasic())

	msg := valid()
	msg.SessionId = 0
	require.Error(t, msg.ValidateBasic())

	msg = valid()
	msg.WorkUnits = 0
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrZeroAmount)

	msg = valid()
	msg.Digest = ""
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidProof)

	msg = valid()
	msg.WorkUnits = types.MaxWorkUnitsPerProof
	require.NoError(t, msg.ValidateBasic())

	msg = valid()
	msg.WorkUnits = types.MaxWorkUnitsPerProof + 1
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidProof)

	msg = valid()
	msg.ProofCid = strings.Repeat("a", types.MaxCidLength+1)
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidProof)
}

// TestPartyMsgs_ValidateBasic tests the shared signer/session validation of
// the settlement trigger messages
func TestPartyMsgs_ValidateBasic(t *testing.T) {
	require.NoError(t, (&types.MsgClaim{Host: hostAddr, SessionId: 1}).ValidateBasic())
	require.Error(t, (&types.MsgClaim{Host: "bad", SessionId: 1}).ValidateBasic())
	require.Error(t, (&types.MsgClaim{Host: hostAddr, SessionId: 0}).ValidateBasic())

	require.NoError(t, (&types.MsgMarkReady{Host: hostAddr, SessionId: 1}).ValidateBasic())
	require.NoError(t, (&types.MsgFinalize{Renter: renterAddr, SessionId: 1}).ValidateBasic())
	require.NoError(t, (&types.MsgTriggerTimeout{Caller: renterAddr, SessionId: 1}).ValidateBasic())
	require.NoError(t, (&types.MsgClaimAbandoned{Caller: hostAddr, SessionId: 1}).ValidateBasic())
	require.NoError(t, (&types.MsgCancelSession{Renter: renterAddr, SessionId: 1}).ValidateBasic())
}

// TestMsgWithdrawEarnings_ValidateBasic tests earnings withdrawal validation
func TestMsgWithdrawEarnings_ValidateBasic(t *testing.T) {
	require.NoError(t, (&types.MsgWithdrawEarnings{Beneficiary: hostAddr}).ValidateBasic())
	require.NoError(t, (&types.MsgWithdrawEarnings{Beneficiary: hostAddr, Denoms: []string{"uplx"}}).ValidateBasic())

	require.Error(t, (&types.MsgWithdrawEarnings{Beneficiary: "bad"}).ValidateBasic())
	require.Error(t, (&types.MsgWithdrawEarnings{Beneficiary: hostAddr, Denoms: []string{"!"}}).ValidateBasic())
	require.Error(t, (&types.MsgWithdrawEarnings{Beneficiary: hostAddr, Denoms: []string{"uplx", "uplx"}}).ValidateBasic())
}

// TestMsgUpdateParams_ValidateBasic tests governance message validation
func TestMsgUpdateParams_ValidateBasic(t *testing.T) {
	msg := &types.MsgUpdateParams{Authority: renterAddr, Params: types.DefaultParams()}
	require.NoError(t, msg.ValidateBasic())

	require.Error(t, (&types.MsgUpdateParams{Authority: "bad", Params: types.DefaultParams()}).ValidateBasic())

	bad := types.DefaultParams()
	bad.FeeBps = types.MaxFeeBps + 1
	require.Error(t, (&types.MsgUpdateParams{Authority: renterAddr, Params: bad}).ValidateBasic())
}

// TestMsgs_GetSigners tests signer derivation
func TestMsgs_GetSigners(t *testing.T) {
	renter, err := sdk.AccAddressFromBech32(renterAddr)
	require.NoError(t, err)
	host, err := sdk.AccAddressFromBech32(hostAddr)
	require.NoError(t, err)

	require.Equal(t, []sdk.AccAddress{renter}, (&types.MsgCreateSession{Renter: renterAddr}).GetSigners())
	require.Equal(t, []sdk.AccAddress{host}, (&types.MsgSubmitProof{Host: hostAddr}).GetSigners())
	require.Equal(t, []sdk.AccAddress{host}, (&types.MsgClaim{Host: hostAddr}).GetSigners())
	require.Equal(t, []sdk.AccAddress{renter}, (&types.MsgFinalize{Renter: renterAddr}).GetSigners())
	require.Equal(t, []sdk.AccAddress{host}, (&types.MsgWithdrawEarnings{Beneficiary: hostAddr}).GetSigners())
}
