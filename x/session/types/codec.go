package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	proto "github.com/cosmos/gogoproto/proto"
)

// RegisterLegacyAminoCodec registers the session module's concrete message
// types on the provided LegacyAmino codec for Amino JSON signing.
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgDeposit{}, "parallax/session/MsgDeposit", nil)
	cdc.RegisterConcrete(&MsgWithdrawDeposit{}, "parallax/session/MsgWithdrawDeposit", nil)
	cdc.RegisterConcrete(&MsgCreateSession{}, "parallax/session/MsgCreateSession", nil)
	cdc.RegisterConcrete(&MsgSubmitProof{}, "parallax/session/MsgSubmitProof", nil)
	cdc.RegisterConcrete(&MsgClaim{}, "parallax/session/MsgClaim", nil)
	cdc.RegisterConcrete(&MsgMarkReady{}, "parallax/session/MsgMarkReady", nil)
	cdc.RegisterConcrete(&MsgFinalize{}, "parallax/session/MsgFinalize", nil)
	cdc.RegisterConcrete(&MsgTriggerTimeout{}, "parallax/session/MsgTriggerTimeout", nil)
	cdc.RegisterConcrete(&MsgClaimAbandoned{}, "parallax/session/MsgClaimAbandoned", nil)
	cdc.RegisterConcrete(&MsgCancelSession{}, "parallax/session/MsgCancelSession", nil)
	cdc.RegisterConcrete(&MsgWithdrawEarnings{}, "parallax/session/MsgWithdrawEarnings", nil)
	cdc.RegisterConcrete(&MsgWithdrawTreasury{}, "parallax/session/MsgWithdrawTreasury", nil)
	cdc.RegisterConcrete(&MsgUpdateParams{}, "parallax/session/MsgUpdateParams", nil)
}

// RegisterInterfaces registers the session module message types with the
// interface registry.
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgDeposit{},
		&MsgWithdrawDeposit{},
		&MsgCreateSession{},
		&MsgSubmitProof{},
		&MsgClaim{},
		&MsgMarkReady{},
		&MsgFinalize{},
		&MsgTriggerTimeout{},
		&MsgClaimAbandoned{},
		&MsgCancelSession{},
		&MsgWithdrawEarnings{},
		&MsgWithdrawTreasury{},
		&MsgUpdateParams{},
	)
}

var amino = codec.NewLegacyAmino()

func init() {
	RegisterLegacyAminoCodec(amino)

	proto.RegisterType(&MsgDeposit{}, "parallax.session.v1.MsgDeposit")
	proto.RegisterType(&MsgWithdrawDeposit{}, "parallax.session.v1.MsgWithdrawDeposit")
	proto.RegisterType(&MsgCreateSession{}, "parallax.session.v1.MsgCreateSession")
	proto.RegisterType(&MsgSubmitProof{}, "parallax.session.v1.MsgSubmitProof")
	proto.RegisterType(&MsgClaim{}, "parallax.session.v1.MsgClaim")
	proto.RegisterType(&MsgMarkReady{}, "parallax.session.v1.MsgMarkReady")
	proto.RegisterType(&MsgFinalize{}, "parallax.session.v1.MsgFinalize")
	proto.RegisterType(&MsgTriggerTimeout{}, "parallax.session.v1.MsgTriggerTimeout")
	proto.RegisterType(&MsgClaimAbandoned{}, "parallax.session.v1.MsgClaimAbandoned")
	proto.RegisterType(&MsgCancelSession{}, "parallax.session.v1.MsgCancelSession")
	proto.RegisterType(&MsgWithdrawEarnings{}, "parallax.session.v1.MsgWithdrawEarnings")
	proto.RegisterType(&MsgWithdrawTreasury{}, "parallax.session.v1.MsgWithdrawTreasury")
	proto.RegisterType(&MsgUpdateParams{}, "parallax.session.v1.MsgUpdateParams")
}
