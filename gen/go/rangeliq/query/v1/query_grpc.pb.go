// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: rangeliq/query/v1/query.proto

package queryv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	QueryService_GetPosition_FullMethodName            = "/rangeliq.query.v1.QueryService/GetPosition"
	QueryService_IsUnderwater_FullMethodName           = "/rangeliq.query.v1.QueryService/IsUnderwater"
	QueryService_GetLiquidationProgress_FullMethodName = "/rangeliq.query.v1.QueryService/GetLiquidationProgress"
	QueryService_GetPenaltyRate_FullMethodName         = "/rangeliq.query.v1.QueryService/GetPenaltyRate"
	QueryService_GetActivePositionCount_FullMethodName = "/rangeliq.query.v1.QueryService/GetActivePositionCount"
	QueryService_ListLiquidationHistory_FullMethodName = "/rangeliq.query.v1.QueryService/ListLiquidationHistory"
	QueryService_GetPoolBalances_FullMethodName        = "/rangeliq.query.v1.QueryService/GetPoolBalances"
	QueryService_GetPositionReserve_FullMethodName     = "/rangeliq.query.v1.QueryService/GetPositionReserve"
	QueryService_ListJournals_FullMethodName           = "/rangeliq.query.v1.QueryService/ListJournals"
)

// QueryServiceClient is the client API for QueryService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// QueryService serves read-only views over the liquidation projections.
// All responses carry as_of_sequence: the last event sequence the
// projections had applied when the query ran.
type QueryServiceClient interface {
	GetPosition(ctx context.Context, in *GetPositionRequest, opts ...grpc.CallOption) (*GetPositionResponse, error)
	IsUnderwater(ctx context.Context, in *IsUnderwaterRequest, opts ...grpc.CallOption) (*IsUnderwaterResponse, error)
	GetLiquidationProgress(ctx context.Context, in *GetLiquidationProgressRequest, opts ...grpc.CallOption) (*GetLiquidationProgressResponse, error)
	GetPenaltyRate(ctx context.Context, in *GetPenaltyRateRequest, opts ...grpc.CallOption) (*GetPenaltyRateResponse, error)
	GetActivePositionCount(ctx context.Context, in *GetActivePositionCountRequest, opts ...grpc.CallOption) (*GetActivePositionCountResponse, error)
	ListLiquidationHistory(ctx context.Context, in *ListLiquidationHistoryRequest, opts ...grpc.CallOption) (*ListLiquidationHistoryResponse, error)
	GetPoolBalances(ctx context.Context, in *GetPoolBalancesRequest, opts ...grpc.CallOption) (*GetPoolBalancesResponse, error)
	GetPositionReserve(ctx context.Context, in *GetPositionReserveRequest, opts ...grpc.CallOption) (*GetPositionReserveResponse, error)
	ListJournals(ctx context.Context, in *ListJournalsRequest, opts ...grpc.CallOption) (*ListJournalsResponse, error)
}

type queryServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewQueryServiceClient(cc grpc.ClientConnInterface) QueryServiceClient {
	return &queryServiceClient{cc}
}

func (c *queryServiceClient) GetPosition(ctx context.Context, in *GetPositionRequest, opts ...grpc.CallOption) (*GetPositionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetPositionResponse)
	err := c.cc.Invoke(ctx, QueryService_GetPosition_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryServiceClient) IsUnderwater(ctx context.Context, in *IsUnderwaterRequest, opts ...grpc.CallOption) (*IsUnderwaterResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(IsUnderwaterResponse)
	err := c.cc.Invoke(ctx, QueryService_IsUnderwater_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryServiceClient) GetLiquidationProgress(ctx context.Context, in *GetLiquidationProgressRequest, opts ...grpc.CallOption) (*GetLiquidationProgressResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetLiquidationProgressResponse)
	err := c.cc.Invoke(ctx, QueryService_GetLiquidationProgress_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryServiceClient) GetPenaltyRate(ctx context.Context, in *GetPenaltyRateRequest, opts ...grpc.CallOption) (*GetPenaltyRateResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetPenaltyRateResponse)
	err := c.cc.Invoke(ctx, QueryService_GetPenaltyRate_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryServiceClient) GetActivePositionCount(ctx context.Context, in *GetActivePositionCountRequest, opts ...grpc.CallOption) (*GetActivePositionCountResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetActivePositionCountResponse)
	err := c.cc.Invoke(ctx, QueryService_GetActivePositionCount_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryServiceClient) ListLiquidationHistory(ctx context.Context, in *ListLiquidationHistoryRequest, opts ...grpc.CallOption) (*ListLiquidationHistoryResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListLiquidationHistoryResponse)
	err := c.cc.Invoke(ctx, QueryService_ListLiquidationHistory_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryServiceClient) GetPoolBalances(ctx context.Context, in *GetPoolBalancesRequest, opts ...grpc.CallOption) (*GetPoolBalancesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetPoolBalancesResponse)
	err := c.cc.Invoke(ctx, QueryService_GetPoolBalances_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryServiceClient) GetPositionReserve(ctx context.Context, in *GetPositionReserveRequest, opts ...grpc.CallOption) (*GetPositionReserveResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetPositionReserveResponse)
	err := c.cc.Invoke(ctx, QueryService_GetPositionReserve_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryServiceClient) ListJournals(ctx context.Context, in *ListJournalsRequest, opts ...grpc.CallOption) (*ListJournalsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListJournalsResponse)
	err := c.cc.Invoke(ctx, QueryService_ListJournals_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// QueryServiceServer is the server API for QueryService service.
// All implementations must embed UnimplementedQueryServiceServer
// for forward compatibility.
//
// QueryService serves read-only views over the liquidation projections.
// All responses carry as_of_sequence: the last event sequence the
// projections had applied when the query ran.
type QueryServiceServer interface {
	GetPosition(context.Context, *GetPositionRequest) (*GetPositionResponse, error)
	IsUnderwater(context.Context, *IsUnderwaterRequest) (*IsUnderwaterResponse, error)
	GetLiquidationProgress(context.Context, *GetLiquidationProgressRequest) (*GetLiquidationProgressResponse, error)
	GetPenaltyRate(context.Context, *GetPenaltyRateRequest) (*GetPenaltyRateResponse, error)
	GetActivePositionCount(context.Context, *GetActivePositionCountRequest) (*GetActivePositionCountResponse, error)
	ListLiquidationHistory(context.Context, *ListLiquidationHistoryRequest) (*ListLiquidationHistoryResponse, error)
	GetPoolBalances(context.Context, *GetPoolBalancesRequest) (*GetPoolBalancesResponse, error)
	GetPositionReserve(context.Context, *GetPositionReserveRequest) (*GetPositionReserveResponse, error)
	ListJournals(context.Context, *ListJournalsRequest) (*ListJournalsResponse, error)
	mustEmbedUnimplementedQueryServiceServer()
}

// UnimplementedQueryServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedQueryServiceServer struct{}

func (UnimplementedQueryServiceServer) GetPosition(context.Context, *GetPositionRequest) (*GetPositionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetPosition not implemented")
}
func (UnimplementedQueryServiceServer) IsUnderwater(context.Context, *IsUnderwaterRequest) (*IsUnderwaterResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method IsUnderwater not implemented")
}
func (UnimplementedQueryServiceServer) GetLiquidationProgress(context.Context, *GetLiquidationProgressRequest) (*GetLiquidationProgressResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetLiquidationProgress not implemented")
}
func (UnimplementedQueryServiceServer) GetPenaltyRate(context.Context, *GetPenaltyRateRequest) (*GetPenaltyRateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetPenaltyRate not implemented")
}
func (UnimplementedQueryServiceServer) GetActivePositionCount(context.Context, *GetActivePositionCountRequest) (*GetActivePositionCountResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetActivePositionCount not implemented")
}
func (UnimplementedQueryServiceServer) ListLiquidationHistory(context.Context, *ListLiquidationHistoryRequest) (*ListLiquidationHistoryResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListLiquidationHistory not implemented")
}
func (UnimplementedQueryServiceServer) GetPoolBalances(context.Context, *GetPoolBalancesRequest) (*GetPoolBalancesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetPoolBalances not implemented")
}
func (UnimplementedQueryServiceServer) GetPositionReserve(context.Context, *GetPositionReserveRequest) (*GetPositionReserveResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetPositionReserve not implemented")
}
func (UnimplementedQueryServiceServer) ListJournals(context.Context, *ListJournalsRequest) (*ListJournalsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListJournals not implemented")
}
func (UnimplementedQueryServiceServer) mustEmbedUnimplementedQueryServiceServer() {}
func (UnimplementedQueryServiceServer) testEmbeddedByValue()                      {}

// UnsafeQueryServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to QueryServiceServer will
// result in compilation errors.
type UnsafeQueryServiceServer interface {
	mustEmbedUnimplementedQueryServiceServer()
}

func RegisterQueryServiceServer(s grpc.ServiceRegistrar, srv QueryServiceServer) {
	// If the following call pancis, it indicates UnimplementedQueryServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&QueryService_ServiceDesc, srv)
}

func _QueryService_GetPosition_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetPositionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServiceServer).GetPosition(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: QueryService_GetPosition_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServiceServer).GetPosition(ctx, req.(*GetPositionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _QueryService_IsUnderwater_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(IsUnderwaterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServiceServer).IsUnderwater(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: QueryService_IsUnderwater_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServiceServer).IsUnderwater(ctx, req.(*IsUnderwaterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _QueryService_GetLiquidationProgress_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetLiquidationProgressRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServiceServer).GetLiquidationProgress(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: QueryService_GetLiquidationProgress_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServiceServer).GetLiquidationProgress(ctx, req.(*GetLiquidationProgressRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _QueryService_GetPenaltyRate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetPenaltyRateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServiceServer).GetPenaltyRate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: QueryService_GetPenaltyRate_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServiceServer).GetPenaltyRate(ctx, req.(*GetPenaltyRateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _QueryService_GetActivePositionCount_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetActivePositionCountRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServiceServer).GetActivePositionCount(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: QueryService_GetActivePositionCount_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServiceServer).GetActivePositionCount(ctx, req.(*GetActivePositionCountRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _QueryService_ListLiquidationHistory_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListLiquidationHistoryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServiceServer).ListLiquidationHistory(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: QueryService_ListLiquidationHistory_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServiceServer).ListLiquidationHistory(ctx, req.(*ListLiquidationHistoryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _QueryService_GetPoolBalances_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetPoolBalancesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServiceServer).GetPoolBalances(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: QueryService_GetPoolBalances_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServiceServer).GetPoolBalances(ctx, req.(*GetPoolBalancesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _QueryService_GetPositionReserve_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetPositionReserveRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServiceServer).GetPositionReserve(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: QueryService_GetPositionReserve_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServiceServer).GetPositionReserve(ctx, req.(*GetPositionReserveRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _QueryService_ListJournals_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListJournalsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServiceServer).ListJournals(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: QueryService_ListJournals_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServiceServer).ListJournals(ctx, req.(*ListJournalsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// QueryService_ServiceDesc is the grpc.ServiceDesc for QueryService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var QueryService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "rangeliq.query.v1.QueryService",
	HandlerType: (*QueryServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetPosition",
			Handler:    _QueryService_GetPosition_Handler,
		},
		{
			MethodName: "IsUnderwater",
			Handler:    _QueryService_IsUnderwater_Handler,
		},
		{
			MethodName: "GetLiquidationProgress",
			Handler:    _QueryService_GetLiquidationProgress_Handler,
		},
		{
			MethodName: "GetPenaltyRate",
			Handler:    _QueryService_GetPenaltyRate_Handler,
		},
		{
			MethodName: "GetActivePositionCount",
			Handler:    _QueryService_GetActivePositionCount_Handler,
		},
		{
			MethodName: "ListLiquidationHistory",
			Handler:    _QueryService_ListLiquidationHistory_Handler,
		},
		{
			MethodName: "GetPoolBalances",
			Handler:    _QueryService_GetPoolBalances_Handler,
		},
		{
			MethodName: "GetPositionReserve",
			Handler:    _QueryService_GetPositionReserve_Handler,
		},
		{
			MethodName: "ListJournals",
			Handler:    _QueryService_ListJournals_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "rangeliq/query/v1/query.proto",
}
