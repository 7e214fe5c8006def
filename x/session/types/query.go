package types

import (
	"context"
	"fmt"

	grpc1 "github.com/cosmos/gogoproto/grpc"
	"google.golang.org/grpc"
)

// QueryParamsRequest is the request for the Params query.
type QueryParamsRequest struct{}

// QueryParamsResponse carries the current module parameters.
type QueryParamsResponse struct {
	Params Params `json:"params"`
}

// QuerySessionRequest is the request for a single session by id.
type QuerySessionRequest struct {
	SessionId uint64 `json:"session_id"`
}

// QuerySessionResponse carries one session record.
type QuerySessionResponse struct {
	Session Session `json:"session"`
}

// QuerySessionsRequest is the request for the session list, optionally
// filtered by status name.
type QuerySessionsRequest struct {
	Status string `json:"status,omitempty"`
}

// QuerySessionsResponse carries the matching sessions in id order.
type QuerySessionsResponse struct {
	Sessions []Session `json:"sessions"`
}

// QueryDepositBalanceRequest is the request for one holder's deposit cells.
type QueryDepositBalanceRequest struct {
	Holder string `json:"holder"`
}

// QueryDepositBalanceResponse carries the holder's non-zero deposit cells.
type QueryDepositBalanceResponse struct {
	Balances []DepositBalance `json:"balances"`
}

// QueryEarningsRequest is the request for one beneficiary's earnings cells.
type QueryEarningsRequest struct {
	Beneficiary string `json:"beneficiary"`
}

// QueryEarningsResponse carries the beneficiary's non-zero earnings cells.
type QueryEarningsResponse struct {
	Balances []EarningsBalance `json:"balances"`
}

// QueryProofHistoryRequest is the request for a session's proof records.
type QueryProofHistoryRequest struct {
	SessionId uint64 `json:"session_id"`
}

// QueryProofHistoryResponse carries the ordered proof records.
type QueryProofHistoryResponse struct {
	Proofs []ProofRecord `json:"proofs"`
}

// QueryServer is the read-only service of the session module.
type QueryServer interface {
	Params(ctx context.Context, req *QueryParamsRequest) (*QueryParamsResponse, error)
	Session(ctx context.Context, req *QuerySessionRequest) (*QuerySessionResponse, error)
	Sessions(ctx context.Context, req *QuerySessionsRequest) (*QuerySessionsResponse, error)
	DepositBalance(ctx context.Context, req *QueryDepositBalanceRequest) (*QueryDepositBalanceResponse, error)
	Earnings(ctx context.Context, req *QueryEarningsRequest) (*QueryEarningsResponse, error)
	ProofHistory(ctx context.Context, req *QueryProofHistoryRequest) (*QueryProofHistoryResponse, error)
}

// RegisterQueryServer registers the session query service with the grpc query
// router.
func RegisterQueryServer(s grpc1.Server, srv QueryServer) {
	s.RegisterService(&_Query_serviceDesc, srv)
}

// QueryClient is the client API for the session query service.
type QueryClient interface {
	Params(ctx context.Context, req *QueryParamsRequest, opts ...grpc.CallOption) (*QueryParamsResponse, error)
	Session(ctx context.Context, req *QuerySessionRequest, opts ...grpc.CallOption) (*QuerySessionResponse, error)
	Sessions(ctx context.Context, req *QuerySessionsRequest, opts ...grpc.CallOption) (*QuerySessionsResponse, error)
	DepositBalance(ctx context.Context, req *QueryDepositBalanceRequest, opts ...grpc.CallOption) (*QueryDepositBalanceResponse, error)
	Earnings(ctx context.Context, req *QueryEarningsRequest, opts ...grpc.CallOption) (*QueryEarningsResponse, error)
	ProofHistory(ctx context.Context, req *QueryProofHistoryRequest, opts ...grpc.CallOption) (*QueryProofHistoryResponse, error)
}

type queryClient struct {
	cc grpc1.ClientConn
}

// NewQueryClient creates a session query client over any grpc connection,
// including the client.Context query path.
func NewQueryClient(cc grpc1.ClientConn) QueryClient {
	return &queryClient{cc}
}

func (c *queryClient) Params(ctx context.Context, req *QueryParamsRequest, opts ...grpc.CallOption) (*QueryParamsResponse, error) {
	out := new(QueryParamsResponse)
	if err := c.cc.Invoke(ctx, "/parallax.session.v1.Query/Params", req, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Session(ctx context.Context, req *QuerySessionRequest, opts ...grpc.CallOption) (*QuerySessionResponse, error) {
	out := new(QuerySessionResponse)
	if err := c.cc.Invoke(ctx, "/parallax.session.v1.Query/Session", req, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Sessions(ctx context.Context, req *QuerySessionsRequest, opts ...grpc.CallOption) (*QuerySessionsResponse, error) {
	out := new(QuerySessionsResponse)
	if err := c.cc.Invoke(ctx, "/parallax.session.v1.Query/Sessions", req, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) DepositBalance(ctx context.Context, req *QueryDepositBalanceRequest, opts ...grpc.CallOption) (*QueryDepositBalanceResponse, error) {
	out := new(QueryDepositBalanceResponse)
	if err := c.cc.Invoke(ctx, "/parallax.session.v1.Query/DepositBalance", req, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Earnings(ctx context.Context, req *QueryEarningsRequest, opts ...grpc.CallOption) (*QueryEarningsResponse, error) {
	out := new(QueryEarningsResponse)
	if err := c.cc.Invoke(ctx, "/parallax.session.v1.Query/Earnings", req, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) ProofHistory(ctx context.Context, req *QueryProofHistoryRequest, opts ...grpc.CallOption) (*QueryProofHistoryResponse, error) {
	out := new(QueryProofHistoryResponse)
	if err := c.cc.Invoke(ctx, "/parallax.session.v1.Query/ProofHistory", req, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func _Query_Params_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QueryParamsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).Params(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/parallax.session.v1.Query/Params"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).Params(ctx, req.(*QueryParamsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Query_Session_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QuerySessionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).Session(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/parallax.session.v1.Query/Session"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).Session(ctx, req.(*QuerySessionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Query_Sessions_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QuerySessionsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).Sessions(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/parallax.session.v1.Query/Sessions"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).Sessions(ctx, req.(*QuerySessionsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Query_DepositBalance_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QueryDepositBalanceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).DepositBalance(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/parallax.session.v1.Query/DepositBalance"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).DepositBalance(ctx, req.(*QueryDepositBalanceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Query_Earnings_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QueryEarningsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).Earnings(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/parallax.session.v1.Query/Earnings"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).Earnings(ctx, req.(*QueryEarningsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Query_ProofHistory_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QueryProofHistoryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).ProofHistory(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/parallax.session.v1.Query/ProofHistory"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).ProofHistory(ctx, req.(*QueryProofHistoryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var _Query_serviceDesc = grpc.ServiceDesc{
	ServiceName: "parallax.session.v1.Query",
	HandlerType: (*QueryServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Params", Handler: _Query_Params_Handler},
		{MethodName: "Session", Handler: _Query_Session_Handler},
		{MethodName: "Sessions", Handler: _Query_Sessions_Handler},
		{MethodName: "DepositBalance", Handler: _Query_DepositBalance_Handler},
		{MethodName: "Earnings", Handler: _Query_Earnings_Handler},
		{MethodName: "ProofHistory", Handler: _Query_ProofHistory_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "parallax/session/v1/query.proto",
}

// ParseSessionStatus maps a status name back to its enum value, for query
// filters.
func ParseSessionStatus(name string) (SessionStatus, error) {
	for _, s := range []SessionStatus{
		StatusActive, StatusCompleted, StatusTimedOut, StatusAbandoned, StatusCancelled,
	} {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown session status %q", name)
}

// proto.Message implementations for the query types.

func (m *QueryParamsRequest) Reset()          { *m = QueryParamsRequest{} }
func (m *QueryParamsRequest) String() string  { return "QueryParamsRequest" }
func (m *QueryParamsRequest) ProtoMessage()   {}
func (m *QueryParamsResponse) Reset()         { *m = QueryParamsResponse{} }
func (m *QueryParamsResponse) String() string { return "QueryParamsResponse" }
func (m *QueryParamsResponse) ProtoMessage()  {}
func (m *QuerySessionRequest) Reset()         { *m = QuerySessionRequest{} }
func (m *QuerySessionRequest) String() string {
	return fmt.Sprintf("QuerySessionRequest<%d>", m.SessionId)
}
func (m *QuerySessionRequest) ProtoMessage()   {}
func (m *QuerySessionResponse) Reset()         { *m = QuerySessionResponse{} }
func (m *QuerySessionResponse) String() string { return "QuerySessionResponse" }
func (m *QuerySessionResponse) ProtoMessage()  {}
func (m *QuerySessionsRequest) Reset()         { *m = QuerySessionsRequest{} }
func (m *QuerySessionsRequest) String() string {
	return fmt.Sprintf("QuerySessionsRequest<%s>", m.Status)
}
func (m *QuerySessionsRequest) ProtoMessage()         {}
func (m *QuerySessionsResponse) Reset()               { *m = QuerySessionsResponse{} }
func (m *QuerySessionsResponse) String() string       { return "QuerySessionsResponse" }
func (m *QuerySessionsResponse) ProtoMessage()        {}
func (m *QueryDepositBalanceRequest) Reset()          { *m = QueryDepositBalanceRequest{} }
func (m *QueryDepositBalanceRequest) String() string  { return m.Holder }
func (m *QueryDepositBalanceRequest) ProtoMessage()   {}
func (m *QueryDepositBalanceResponse) Reset()         { *m = QueryDepositBalanceResponse{} }
func (m *QueryDepositBalanceResponse) String() string { return "QueryDepositBalanceResponse" }
func (m *QueryDepositBalanceResponse) ProtoMessage()  {}
func (m *QueryEarningsRequest) Reset()                { *m = QueryEarningsRequest{} }
func (m *QueryEarningsRequest) String() string        { return m.Beneficiary }
func (m *QueryEarningsRequest) ProtoMessage()         {}
func (m *QueryEarningsResponse) Reset()               { *m = QueryEarningsResponse{} }
func (m *QueryEarningsResponse) String() string       { return "QueryEarningsResponse" }
func (m *QueryEarningsResponse) ProtoMessage()        {}
func (m *QueryProofHistoryRequest) Reset()            { *m = QueryProofHistoryRequest{} }
func (m *QueryProofHistoryRequest) String() string {
	return fmt.Sprintf("QueryProofHistoryRequest<%d>", m.SessionId)
}
func (m *QueryProofHistoryRequest) ProtoMessage()   {}
func (m *QueryProofHistoryResponse) Reset()         { *m = QueryProofHistoryResponse{} }
func (m *QueryProofHistoryResponse) String() string { return "QueryProofHistoryResponse" }
func (m *QueryProofHistoryResponse) ProtoMessage()  {}
