package types

import (
	"context"

	grpc1 "github.com/cosmos/gogoproto/grpc"
	"google.golang.org/grpc"
)

// MsgServer is the transaction service of the session module.
type MsgServer interface {
	Deposit(ctx context.Context, msg *MsgDeposit) (*MsgDepositResponse, error)
	WithdrawDeposit(ctx context.Context, msg *MsgWithdrawDeposit) (*MsgWithdrawDepositResponse, error)
	CreateSession(ctx context.Context, msg *MsgCreateSession) (*MsgCreateSessionResponse, error)
	SubmitProof(ctx context.Context, msg *MsgSubmitProof) (*MsgSubmitProofResponse, error)
	Claim(ctx context.Context, msg *MsgClaim) (*MsgClaimResponse, error)
	MarkReady(ctx context.Context, msg *MsgMarkReady) (*MsgMarkReadyResponse, error)
	Finalize(ctx context.Context, msg *MsgFinalize) (*MsgFinalizeResponse, error)
	TriggerTimeout(ctx context.Context, msg *MsgTriggerTimeout) (*MsgTriggerTimeoutResponse, error)
	ClaimAbandoned(ctx context.Context, msg *MsgClaimAbandoned) (*MsgClaimAbandonedResponse, error)
	CancelSession(ctx context.Context, msg *MsgCancelSession) (*MsgCancelSessionResponse, error)
	WithdrawEarnings(ctx context.Context, msg *MsgWithdrawEarnings) (*MsgWithdrawEarningsResponse, error)
	WithdrawTreasury(ctx context.Context, msg *MsgWithdrawTreasury) (*MsgWithdrawTreasuryResponse, error)
	UpdateParams(ctx context.Context, msg *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
}

// RegisterMsgServer registers the session transaction service with the msg
// service router.
func RegisterMsgServer(s grpc1.Server, srv MsgServer) {
	s.RegisterService(&_Msg_serviceDesc, srv)
}

func _Msg_Deposit_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgDeposit)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).Deposit(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/parallax.session.v1.Msg/Deposit"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).Deposit(ctx, req.(*MsgDeposit))
	}
	return interceptor(ctx, in, info, handler)
}

func _Msg_WithdrawDeposit_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgWithdrawDeposit)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).WithdrawDeposit(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/parallax.session.v1.Msg/WithdrawDeposit"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).WithdrawDeposit(ctx, req.(*MsgWithdrawDeposit))
	}
	return interceptor(ctx, in, info, handler)
}

func _Msg_CreateSession_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgCreateSession)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).CreateSession(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/parallax.session.v1.Msg/CreateSession"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).CreateSession(ctx, req.(*MsgCreateSession))
	}
	return interceptor(ctx, in, info, handler)
}

func _Msg_SubmitProof_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgSubmitProof)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).SubmitProof(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/parallax.session.v1.Msg/SubmitProof"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).SubmitProof(ctx, req.(*MsgSubmitProof))
	}
	return interceptor(ctx, in, info, handler)
}

func _Msg_Claim_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgClaim)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).Claim(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/parallax.session.v1.Msg/Claim"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).Claim(ctx, req.(*MsgClaim))
	}
	return interceptor(ctx, in, info, handler)
}

func _Msg_MarkReady_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgMarkReady)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).MarkReady(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/parallax.session.v1.Msg/MarkReady"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).MarkReady(ctx, req.(*MsgMarkReady))
	}
	return interceptor(ctx, in, info, handler)
}

func _Msg_Finalize_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgFinalize)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).Finalize(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/parallax.session.v1.Msg/Finalize"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).Finalize(ctx, req.(*MsgFinalize))
	}
	return interceptor(ctx, in, info, handler)
}

func _Msg_TriggerTimeout_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgTriggerTimeout)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).TriggerTimeout(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/parallax.session.v1.Msg/TriggerTimeout"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).TriggerTimeout(ctx, req.(*MsgTriggerTimeout))
	}
	return interceptor(ctx, in, info, handler)
}

func _Msg_ClaimAbandoned_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgClaimAbandoned)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).ClaimAbandoned(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/parallax.session.v1.Msg/ClaimAbandoned"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).ClaimAbandoned(ctx, req.(*MsgClaimAbandoned))
	}
	return interceptor(ctx, in, info, handler)
}

func _Msg_CancelSession_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgCancelSession)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).CancelSession(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/parallax.session.v1.Msg/CancelSession"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).CancelSession(ctx, req.(*MsgCancelSession))
	}
	return interceptor(ctx, in, info, handler)
}

func _Msg_WithdrawEarnings_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgWithdrawEarnings)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).WithdrawEarnings(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/parallax.session.v1.Msg/WithdrawEarnings"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).WithdrawEarnings(ctx, req.(*MsgWithdrawEarnings))
	}
	return interceptor(ctx, in, info, handler)
}

func _Msg_WithdrawTreasury_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgWithdrawTreasury)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).WithdrawTreasury(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/parallax.session.v1.Msg/WithdrawTreasury"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).WithdrawTreasury(ctx, req.(*MsgWithdrawTreasury))
	}
	return interceptor(ctx, in, info, handler)
}

func _Msg_UpdateParams_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgUpdateParams)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).UpdateParams(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/parallax.session.v1.Msg/UpdateParams"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).UpdateParams(ctx, req.(*MsgUpdateParams))
	}
	return interceptor(ctx, in, info, handler)
}

var _Msg_serviceDesc = grpc.ServiceDesc{
	ServiceName: "parallax.session.v1.Msg",
	HandlerType: (*MsgServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Deposit", Handler: _Msg_Deposit_Handler},
		{MethodName: "WithdrawDeposit", Handler: _Msg_WithdrawDeposit_Handler},
		{MethodName: "CreateSession", Handler: _Msg_CreateSession_Handler},
		{MethodName: "SubmitProof", Handler: _Msg_SubmitProof_Handler},
		{MethodName: "Claim", Handler: _Msg_Claim_Handler},
		{MethodName: "MarkReady", Handler: _Msg_MarkReady_Handler},
		{MethodName: "Finalize", Handler: _Msg_Finalize_Handler},
		{MethodName: "TriggerTimeout", Handler: _Msg_TriggerTimeout_Handler},
		{MethodName: "ClaimAbandoned", Handler: _Msg_ClaimAbandoned_Handler},
		{MethodName: "CancelSession", Handler: _Msg_CancelSession_Handler},
		{MethodName: "WithdrawEarnings", Handler: _Msg_WithdrawEarnings_Handler},
		{MethodName: "WithdrawTreasury", Handler: _Msg_WithdrawTreasury_Handler},
		{MethodName: "UpdateParams", Handler: _Msg_UpdateParams_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "parallax/session/v1/tx.proto",
}
