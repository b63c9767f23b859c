// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: rangeliq/ingest/v1/ingest.proto

package ingestv1

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
	IngestService_SubmitEvent_FullMethodName       = "/rangeliq.ingest.v1.IngestService/SubmitEvent"
	IngestService_SubmitPriceUpdate_FullMethodName = "/rangeliq.ingest.v1.IngestService/SubmitPriceUpdate"
	IngestService_OpenPosition_FullMethodName      = "/rangeliq.ingest.v1.IngestService/OpenPosition"
	IngestService_RepayPosition_FullMethodName     = "/rangeliq.ingest.v1.IngestService/RepayPosition"
)

// IngestServiceClient is the client API for IngestService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// IngestService accepts events into the core, bypassing NATS. Intended for
// tooling and integration tests; production traffic arrives via JetStream.
type IngestServiceClient interface {
	// SubmitEvent accepts a raw event envelope with a JSON payload, the same
	// wire form NATS consumers parse.
	SubmitEvent(ctx context.Context, in *SubmitEventRequest, opts ...grpc.CallOption) (*SubmitEventResponse, error)
	SubmitPriceUpdate(ctx context.Context, in *SubmitPriceUpdateRequest, opts ...grpc.CallOption) (*SubmitPriceUpdateResponse, error)
	OpenPosition(ctx context.Context, in *OpenPositionRequest, opts ...grpc.CallOption) (*OpenPositionResponse, error)
	RepayPosition(ctx context.Context, in *RepayPositionRequest, opts ...grpc.CallOption) (*RepayPositionResponse, error)
}

type ingestServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewIngestServiceClient(cc grpc.ClientConnInterface) IngestServiceClient {
	return &ingestServiceClient{cc}
}

func (c *ingestServiceClient) SubmitEvent(ctx context.Context, in *SubmitEventRequest, opts ...grpc.CallOption) (*SubmitEventResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SubmitEventResponse)
	err := c.cc.Invoke(ctx, IngestService_SubmitEvent_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ingestServiceClient) SubmitPriceUpdate(ctx context.Context, in *SubmitPriceUpdateRequest, opts ...grpc.CallOption) (*SubmitPriceUpdateResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SubmitPriceUpdateResponse)
	err := c.cc.Invoke(ctx, IngestService_SubmitPriceUpdate_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ingestServiceClient) OpenPosition(ctx context.Context, in *OpenPositionRequest, opts ...grpc.CallOption) (*OpenPositionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(OpenPositionResponse)
	err := c.cc.Invoke(ctx, IngestService_OpenPosition_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ingestServiceClient) RepayPosition(ctx context.Context, in *RepayPositionRequest, opts ...grpc.CallOption) (*RepayPositionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RepayPositionResponse)
	err := c.cc.Invoke(ctx, IngestService_RepayPosition_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// IngestServiceServer is the server API for IngestService service.
// All implementations must embed UnimplementedIngestServiceServer
// for forward compatibility.
//
// IngestService accepts events into the core, bypassing NATS. Intended for
// tooling and integration tests; production traffic arrives via JetStream.
type IngestServiceServer interface {
	// SubmitEvent accepts a raw event envelope with a JSON payload, the same
	// wire form NATS consumers parse.
	SubmitEvent(context.Context, *SubmitEventRequest) (*SubmitEventResponse, error)
	SubmitPriceUpdate(context.Context, *SubmitPriceUpdateRequest) (*SubmitPriceUpdateResponse, error)
	OpenPosition(context.Context, *OpenPositionRequest) (*OpenPositionResponse, error)
	RepayPosition(context.Context, *RepayPositionRequest) (*RepayPositionResponse, error)
	mustEmbedUnimplementedIngestServiceServer()
}

// UnimplementedIngestServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedIngestServiceServer struct{}

func (UnimplementedIngestServiceServer) SubmitEvent(context.Context, *SubmitEventRequest) (*SubmitEventResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitEvent not implemented")
}
func (UnimplementedIngestServiceServer) SubmitPriceUpdate(context.Context, *SubmitPriceUpdateRequest) (*SubmitPriceUpdateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitPriceUpdate not implemented")
}
func (UnimplementedIngestServiceServer) OpenPosition(context.Context, *OpenPositionRequest) (*OpenPositionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method OpenPosition not implemented")
}
func (UnimplementedIngestServiceServer) RepayPosition(context.Context, *RepayPositionRequest) (*RepayPositionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RepayPosition not implemented")
}
func (UnimplementedIngestServiceServer) mustEmbedUnimplementedIngestServiceServer() {}
func (UnimplementedIngestServiceServer) testEmbeddedByValue()                       {}

// UnsafeIngestServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to IngestServiceServer will
// result in compilation errors.
type UnsafeIngestServiceServer interface {
	mustEmbedUnimplementedIngestServiceServer()
}

func RegisterIngestServiceServer(s grpc.ServiceRegistrar, srv IngestServiceServer) {
	// If the following call pancis, it indicates UnimplementedIngestServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&IngestService_ServiceDesc, srv)
}

func _IngestService_SubmitEvent_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitEventRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IngestServiceServer).SubmitEvent(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: IngestService_SubmitEvent_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(IngestServiceServer).SubmitEvent(ctx, req.(*SubmitEventRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _IngestService_SubmitPriceUpdate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitPriceUpdateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IngestServiceServer).SubmitPriceUpdate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: IngestService_SubmitPriceUpdate_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(IngestServiceServer).SubmitPriceUpdate(ctx, req.(*SubmitPriceUpdateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _IngestService_OpenPosition_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(OpenPositionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IngestServiceServer).OpenPosition(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: IngestService_OpenPosition_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(IngestServiceServer).OpenPosition(ctx, req.(*OpenPositionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _IngestService_RepayPosition_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RepayPositionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IngestServiceServer).RepayPosition(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: IngestService_RepayPosition_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(IngestServiceServer).RepayPosition(ctx, req.(*RepayPositionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// IngestService_ServiceDesc is the grpc.ServiceDesc for IngestService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var IngestService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "rangeliq.ingest.v1.IngestService",
	HandlerType: (*IngestServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "SubmitEvent",
			Handler:    _IngestService_SubmitEvent_Handler,
		},
		{
			MethodName: "SubmitPriceUpdate",
			Handler:    _IngestService_SubmitPriceUpdate_Handler,
		},
		{
			MethodName: "OpenPosition",
			Handler:    _IngestService_OpenPosition_Handler,
		},
		{
			MethodName: "RepayPosition",
			Handler:    _IngestService_RepayPosition_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "rangeliq/ingest/v1/ingest.proto",
}
