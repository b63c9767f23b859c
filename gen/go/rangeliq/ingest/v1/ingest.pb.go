// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.5
// 	protoc        (unknown)
// source: rangeliq/ingest/v1/ingest.proto

package ingestv1

import (
	v1 "RangeLiq/gen/go/rangeliq/events/v1"
	_ "google.golang.org/genproto/googleapis/api/annotations"
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type SubmitEventRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Envelope      *v1.EventEnvelope      `protobuf:"bytes,1,opt,name=envelope,proto3" json:"envelope,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitEventRequest) Reset() {
	*x = SubmitEventRequest{}
	mi := &file_rangeliq_ingest_v1_ingest_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitEventRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitEventRequest) ProtoMessage() {}

func (x *SubmitEventRequest) ProtoReflect() protoreflect.Message {
	mi := &file_rangeliq_ingest_v1_ingest_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitEventRequest.ProtoReflect.Descriptor instead.
func (*SubmitEventRequest) Descriptor() ([]byte, []int) {
	return file_rangeliq_ingest_v1_ingest_proto_rawDescGZIP(), []int{0}
}

func (x *SubmitEventRequest) GetEnvelope() *v1.EventEnvelope {
	if x != nil {
		return x.Envelope
	}
	return nil
}

type SubmitEventResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Accepted      bool                   `protobuf:"varint,1,opt,name=accepted,proto3" json:"accepted,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitEventResponse) Reset() {
	*x = SubmitEventResponse{}
	mi := &file_rangeliq_ingest_v1_ingest_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitEventResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitEventResponse) ProtoMessage() {}

func (x *SubmitEventResponse) ProtoReflect() protoreflect.Message {
	mi := &file_rangeliq_ingest_v1_ingest_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitEventResponse.ProtoReflect.Descriptor instead.
func (*SubmitEventResponse) Descriptor() ([]byte, []int) {
	return file_rangeliq_ingest_v1_ingest_proto_rawDescGZIP(), []int{1}
}

func (x *SubmitEventResponse) GetAccepted() bool {
	if x != nil {
		return x.Accepted
	}
	return false
}

type SubmitPriceUpdateRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Market        string                 `protobuf:"bytes,1,opt,name=market,proto3" json:"market,omitempty"`
	Tick          int64                  `protobuf:"varint,2,opt,name=tick,proto3" json:"tick,omitempty"`
	Direction     string                 `protobuf:"bytes,3,opt,name=direction,proto3" json:"direction,omitempty"` // "base" or "quote"
	Taker         string                 `protobuf:"bytes,4,opt,name=taker,proto3" json:"taker,omitempty"`
	PriceSequence int64                  `protobuf:"varint,5,opt,name=price_sequence,json=priceSequence,proto3" json:"price_sequence,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitPriceUpdateRequest) Reset() {
	*x = SubmitPriceUpdateRequest{}
	mi := &file_rangeliq_ingest_v1_ingest_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitPriceUpdateRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitPriceUpdateRequest) ProtoMessage() {}

func (x *SubmitPriceUpdateRequest) ProtoReflect() protoreflect.Message {
	mi := &file_rangeliq_ingest_v1_ingest_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitPriceUpdateRequest.ProtoReflect.Descriptor instead.
func (*SubmitPriceUpdateRequest) Descriptor() ([]byte, []int) {
	return file_rangeliq_ingest_v1_ingest_proto_rawDescGZIP(), []int{2}
}

func (x *SubmitPriceUpdateRequest) GetMarket() string {
	if x != nil {
		return x.Market
	}
	return ""
}

func (x *SubmitPriceUpdateRequest) GetTick() int64 {
	if x != nil {
		return x.Tick
	}
	return 0
}

func (x *SubmitPriceUpdateRequest) GetDirection() string {
	if x != nil {
		return x.Direction
	}
	return ""
}

func (x *SubmitPriceUpdateRequest) GetTaker() string {
	if x != nil {
		return x.Taker
	}
	return ""
}

func (x *SubmitPriceUpdateRequest) GetPriceSequence() int64 {
	if x != nil {
		return x.PriceSequence
	}
	return 0
}

type SubmitPriceUpdateResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Accepted      bool                   `protobuf:"varint,1,opt,name=accepted,proto3" json:"accepted,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitPriceUpdateResponse) Reset() {
	*x = SubmitPriceUpdateResponse{}
	mi := &file_rangeliq_ingest_v1_ingest_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitPriceUpdateResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitPriceUpdateResponse) ProtoMessage() {}

func (x *SubmitPriceUpdateResponse) ProtoReflect() protoreflect.Message {
	mi := &file_rangeliq_ingest_v1_ingest_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitPriceUpdateResponse.ProtoReflect.Descriptor instead.
func (*SubmitPriceUpdateResponse) Descriptor() ([]byte, []int) {
	return file_rangeliq_ingest_v1_ingest_proto_rawDescGZIP(), []int{3}
}

func (x *SubmitPriceUpdateResponse) GetAccepted() bool {
	if x != nil {
		return x.Accepted
	}
	return false
}

type OpenPositionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Market        string                 `protobuf:"bytes,1,opt,name=market,proto3" json:"market,omitempty"`
	Owner         string                 `protobuf:"bytes,2,opt,name=owner,proto3" json:"owner,omitempty"`
	Collateral    int64                  `protobuf:"varint,3,opt,name=collateral,proto3" json:"collateral,omitempty"`
	Debt          int64                  `protobuf:"varint,4,opt,name=debt,proto3" json:"debt,omitempty"`
	ThresholdBps  int64                  `protobuf:"varint,5,opt,name=threshold_bps,json=thresholdBps,proto3" json:"threshold_bps,omitempty"`
	Direction     string                 `protobuf:"bytes,6,opt,name=direction,proto3" json:"direction,omitempty"` // "base" or "quote"
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *OpenPositionRequest) Reset() {
	*x = OpenPositionRequest{}
	mi := &file_rangeliq_ingest_v1_ingest_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *OpenPositionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*OpenPositionRequest) ProtoMessage() {}

func (x *OpenPositionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_rangeliq_ingest_v1_ingest_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use OpenPositionRequest.ProtoReflect.Descriptor instead.
func (*OpenPositionRequest) Descriptor() ([]byte, []int) {
	return file_rangeliq_ingest_v1_ingest_proto_rawDescGZIP(), []int{4}
}

func (x *OpenPositionRequest) GetMarket() string {
	if x != nil {
		return x.Market
	}
	return ""
}

func (x *OpenPositionRequest) GetOwner() string {
	if x != nil {
		return x.Owner
	}
	return ""
}

func (x *OpenPositionRequest) GetCollateral() int64 {
	if x != nil {
		return x.Collateral
	}
	return 0
}

func (x *OpenPositionRequest) GetDebt() int64 {
	if x != nil {
		return x.Debt
	}
	return 0
}

func (x *OpenPositionRequest) GetThresholdBps() int64 {
	if x != nil {
		return x.ThresholdBps
	}
	return 0
}

func (x *OpenPositionRequest) GetDirection() string {
	if x != nil {
		return x.Direction
	}
	return ""
}

type OpenPositionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Accepted      bool                   `protobuf:"varint,1,opt,name=accepted,proto3" json:"accepted,omitempty"`
	PositionId    string                 `protobuf:"bytes,2,opt,name=position_id,json=positionId,proto3" json:"position_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *OpenPositionResponse) Reset() {
	*x = OpenPositionResponse{}
	mi := &file_rangeliq_ingest_v1_ingest_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *OpenPositionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*OpenPositionResponse) ProtoMessage() {}

func (x *OpenPositionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_rangeliq_ingest_v1_ingest_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use OpenPositionResponse.ProtoReflect.Descriptor instead.
func (*OpenPositionResponse) Descriptor() ([]byte, []int) {
	return file_rangeliq_ingest_v1_ingest_proto_rawDescGZIP(), []int{5}
}

func (x *OpenPositionResponse) GetAccepted() bool {
	if x != nil {
		return x.Accepted
	}
	return false
}

func (x *OpenPositionResponse) GetPositionId() string {
	if x != nil {
		return x.PositionId
	}
	return ""
}

type RepayPositionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Market        string                 `protobuf:"bytes,1,opt,name=market,proto3" json:"market,omitempty"`
	PositionId    string                 `protobuf:"bytes,2,opt,name=position_id,json=positionId,proto3" json:"position_id,omitempty"`
	Caller        string                 `protobuf:"bytes,3,opt,name=caller,proto3" json:"caller,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RepayPositionRequest) Reset() {
	*x = RepayPositionRequest{}
	mi := &file_rangeliq_ingest_v1_ingest_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RepayPositionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RepayPositionRequest) ProtoMessage() {}

func (x *RepayPositionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_rangeliq_ingest_v1_ingest_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RepayPositionRequest.ProtoReflect.Descriptor instead.
func (*RepayPositionRequest) Descriptor() ([]byte, []int) {
	return file_rangeliq_ingest_v1_ingest_proto_rawDescGZIP(), []int{6}
}

func (x *RepayPositionRequest) GetMarket() string {
	if x != nil {
		return x.Market
	}
	return ""
}

func (x *RepayPositionRequest) GetPositionId() string {
	if x != nil {
		return x.PositionId
	}
	return ""
}

func (x *RepayPositionRequest) GetCaller() string {
	if x != nil {
		return x.Caller
	}
	return ""
}

type RepayPositionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Accepted      bool                   `protobuf:"varint,1,opt,name=accepted,proto3" json:"accepted,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RepayPositionResponse) Reset() {
	*x = RepayPositionResponse{}
	mi := &file_rangeliq_ingest_v1_ingest_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RepayPositionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RepayPositionResponse) ProtoMessage() {}

func (x *RepayPositionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_rangeliq_ingest_v1_ingest_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RepayPositionResponse.ProtoReflect.Descriptor instead.
func (*RepayPositionResponse) Descriptor() ([]byte, []int) {
	return file_rangeliq_ingest_v1_ingest_proto_rawDescGZIP(), []int{7}
}

func (x *RepayPositionResponse) GetAccepted() bool {
	if x != nil {
		return x.Accepted
	}
	return false
}

var File_rangeliq_ingest_v1_ingest_proto protoreflect.FileDescriptor

var file_rangeliq_ingest_v1_ingest_proto_rawDesc = string([]byte{
	0x0a, 0x1f, 0x72, 0x61, 0x6e, 0x67, 0x65, 0x6c, 0x69, 0x71, 0x2f, 0x69, 0x6e, 0x67, 0x65, 0x73,
	0x74, 0x2f, 0x76, 0x31, 0x2f, 0x69, 0x6e, 0x67, 0x65, 0x73, 0x74, 0x2e, 0x70, 0x72, 0x6f, 0x74,
	0x6f, 0x12, 0x12, 0x72, 0x61, 0x6e, 0x67, 0x65, 0x6c, 0x69, 0x71, 0x2e, 0x69, 0x6e, 0x67, 0x65,
	0x73, 0x74, 0x2e, 0x76, 0x31, 0x1a, 0x1c, 0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2f, 0x61, 0x70,
	0x69, 0x2f, 0x61, 0x6e, 0x6e, 0x6f, 0x74, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x73, 0x2e, 0x70, 0x72,
	0x6f, 0x74, 0x6f, 0x1a, 0x1f, 0x72, 0x61, 0x6e, 0x67, 0x65, 0x6c, 0x69, 0x71, 0x2f, 0x65, 0x76,
	0x65, 0x6e, 0x74, 0x73, 0x2f, 0x76, 0x31, 0x2f, 0x65, 0x76, 0x65, 0x6e, 0x74, 0x73, 0x2e, 0x70,
	0x72, 0x6f, 0x74, 0x6f, 0x22, 0x53, 0x0a, 0x12, 0x53, 0x75, 0x62, 0x6d, 0x69, 0x74, 0x45, 0x76,
	0x65, 0x6e, 0x74, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x3d, 0x0a, 0x08, 0x65, 0x6e,
	0x76, 0x65, 0x6c, 0x6f, 0x70, 0x65, 0x18, 0x01, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x21, 0x2e, 0x72,
	0x61, 0x6e, 0x67, 0x65, 0x6c, 0x69, 0x71, 0x2e, 0x65, 0x76, 0x65, 0x6e, 0x74, 0x73, 0x2e, 0x76,
	0x31, 0x2e, 0x45, 0x76, 0x65, 0x6e, 0x74, 0x45, 0x6e, 0x76, 0x65, 0x6c, 0x6f, 0x70, 0x65, 0x52,
	0x08, 0x65, 0x6e, 0x76, 0x65, 0x6c, 0x6f, 0x70, 0x65, 0x22, 0x31, 0x0a, 0x13, 0x53, 0x75, 0x62,
	0x6d, 0x69, 0x74, 0x45, 0x76, 0x65, 0x6e, 0x74, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65,
	0x12, 0x1a, 0x0a, 0x08, 0x61, 0x63, 0x63, 0x65, 0x70, 0x74, 0x65, 0x64, 0x18, 0x01, 0x20, 0x01,
	0x28, 0x08, 0x52, 0x08, 0x61, 0x63, 0x63, 0x65, 0x70, 0x74, 0x65, 0x64, 0x22, 0xa1, 0x01, 0x0a,
	0x18, 0x53, 0x75, 0x62, 0x6d, 0x69, 0x74, 0x50, 0x72, 0x69, 0x63, 0x65, 0x55, 0x70, 0x64, 0x61,
	0x74, 0x65, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x16, 0x0a, 0x06, 0x6d, 0x61, 0x72,
	0x6b, 0x65, 0x74, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x06, 0x6d, 0x61, 0x72, 0x6b, 0x65,
	0x74, 0x12, 0x12, 0x0a, 0x04, 0x74, 0x69, 0x63, 0x6b, 0x18, 0x02, 0x20, 0x01, 0x28, 0x03, 0x52,
	0x04, 0x74, 0x69, 0x63, 0x6b, 0x12, 0x1c, 0x0a, 0x09, 0x64, 0x69, 0x72, 0x65, 0x63, 0x74, 0x69,
	0x6f, 0x6e, 0x18, 0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x09, 0x64, 0x69, 0x72, 0x65, 0x63, 0x74,
	0x69, 0x6f, 0x6e, 0x12, 0x14, 0x0a, 0x05, 0x74, 0x61, 0x6b, 0x65, 0x72, 0x18, 0x04, 0x20, 0x01,
	0x28, 0x09, 0x52, 0x05, 0x74, 0x61, 0x6b, 0x65, 0x72, 0x12, 0x25, 0x0a, 0x0e, 0x70, 0x72, 0x69,
	0x63, 0x65, 0x5f, 0x73, 0x65, 0x71, 0x75, 0x65, 0x6e, 0x63, 0x65, 0x18, 0x05, 0x20, 0x01, 0x28,
	0x03, 0x52, 0x0d, 0x70, 0x72, 0x69, 0x63, 0x65, 0x53, 0x65, 0x71, 0x75, 0x65, 0x6e, 0x63, 0x65,
	0x22, 0x37, 0x0a, 0x19, 0x53, 0x75, 0x62, 0x6d, 0x69, 0x74, 0x50, 0x72, 0x69, 0x63, 0x65, 0x55,
	0x70, 0x64, 0x61, 0x74, 0x65, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x1a, 0x0a,
	0x08, 0x61, 0x63, 0x63, 0x65, 0x70, 0x74, 0x65, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x08, 0x52,
	0x08, 0x61, 0x63, 0x63, 0x65, 0x70, 0x74, 0x65, 0x64, 0x22, 0xba, 0x01, 0x0a, 0x13, 0x4f, 0x70,
	0x65, 0x6e, 0x50, 0x6f, 0x73, 0x69, 0x74, 0x69, 0x6f, 0x6e, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73,
	0x74, 0x12, 0x16, 0x0a, 0x06, 0x6d, 0x61, 0x72, 0x6b, 0x65, 0x74, 0x18, 0x01, 0x20, 0x01, 0x28,
	0x09, 0x52, 0x06, 0x6d, 0x61, 0x72, 0x6b, 0x65, 0x74, 0x12, 0x14, 0x0a, 0x05, 0x6f, 0x77, 0x6e,
	0x65, 0x72, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x05, 0x6f, 0x77, 0x6e, 0x65, 0x72, 0x12,
	0x1e, 0x0a, 0x0a, 0x63, 0x6f, 0x6c, 0x6c, 0x61, 0x74, 0x65, 0x72, 0x61, 0x6c, 0x18, 0x03, 0x20,
	0x01, 0x28, 0x03, 0x52, 0x0a, 0x63, 0x6f, 0x6c, 0x6c, 0x61, 0x74, 0x65, 0x72, 0x61, 0x6c, 0x12,
	0x12, 0x0a, 0x04, 0x64, 0x65, 0x62, 0x74, 0x18, 0x04, 0x20, 0x01, 0x28, 0x03, 0x52, 0x04, 0x64,
	0x65, 0x62, 0x74, 0x12, 0x23, 0x0a, 0x0d, 0x74, 0x68, 0x72, 0x65, 0x73, 0x68, 0x6f, 0x6c, 0x64,
	0x5f, 0x62, 0x70, 0x73, 0x18, 0x05, 0x20, 0x01, 0x28, 0x03, 0x52, 0x0c, 0x74, 0x68, 0x72, 0x65,
	0x73, 0x68, 0x6f, 0x6c, 0x64, 0x42, 0x70, 0x73, 0x12, 0x1c, 0x0a, 0x09, 0x64, 0x69, 0x72, 0x65,
	0x63, 0x74, 0x69, 0x6f, 0x6e, 0x18, 0x06, 0x20, 0x01, 0x28, 0x09, 0x52, 0x09, 0x64, 0x69, 0x72,
	0x65, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x22, 0x53, 0x0a, 0x14, 0x4f, 0x70, 0x65, 0x6e, 0x50, 0x6f,
	0x73, 0x69, 0x74, 0x69, 0x6f, 0x6e, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x1a,
	0x0a, 0x08, 0x61, 0x63, 0x63, 0x65, 0x70, 0x74, 0x65, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x08,
	0x52, 0x08, 0x61, 0x63, 0x63, 0x65, 0x70, 0x74, 0x65, 0x64, 0x12, 0x1f, 0x0a, 0x0b, 0x70, 0x6f,
	0x73, 0x69, 0x74, 0x69, 0x6f, 0x6e, 0x5f, 0x69, 0x64, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52,
	0x0a, 0x70, 0x6f, 0x73, 0x69, 0x74, 0x69, 0x6f, 0x6e, 0x49, 0x64, 0x22, 0x67, 0x0a, 0x14, 0x52,
	0x65, 0x70, 0x61, 0x79, 0x50, 0x6f, 0x73, 0x69, 0x74, 0x69, 0x6f, 0x6e, 0x52, 0x65, 0x71, 0x75,
	0x65, 0x73, 0x74, 0x12, 0x16, 0x0a, 0x06, 0x6d, 0x61, 0x72, 0x6b, 0x65, 0x74, 0x18, 0x01, 0x20,
	0x01, 0x28, 0x09, 0x52, 0x06, 0x6d, 0x61, 0x72, 0x6b, 0x65, 0x74, 0x12, 0x1f, 0x0a, 0x0b, 0x70,
	0x6f, 0x73, 0x69, 0x74, 0x69, 0x6f, 0x6e, 0x5f, 0x69, 0x64, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09,
	0x52, 0x0a, 0x70, 0x6f, 0x73, 0x69, 0x74, 0x69, 0x6f, 0x6e, 0x49, 0x64, 0x12, 0x16, 0x0a, 0x06,
	0x63, 0x61, 0x6c, 0x6c, 0x65, 0x72, 0x18, 0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x06, 0x63, 0x61,
	0x6c, 0x6c, 0x65, 0x72, 0x22, 0x33, 0x0a, 0x15, 0x52, 0x65, 0x70, 0x61, 0x79, 0x50, 0x6f, 0x73,
	0x69, 0x74, 0x69, 0x6f, 0x6e, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x1a, 0x0a,
	0x08, 0x61, 0x63, 0x63, 0x65, 0x70, 0x74, 0x65, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x08, 0x52,
	0x08, 0x61, 0x63, 0x63, 0x65, 0x70, 0x74, 0x65, 0x64, 0x32, 0xa2, 0x04, 0x0a, 0x0d, 0x49, 0x6e,
	0x67, 0x65, 0x73, 0x74, 0x53, 0x65, 0x72, 0x76, 0x69, 0x63, 0x65, 0x12, 0x75, 0x0a, 0x0b, 0x53,
	0x75, 0x62, 0x6d, 0x69, 0x74, 0x45, 0x76, 0x65, 0x6e, 0x74, 0x12, 0x26, 0x2e, 0x72, 0x61, 0x6e,
	0x67, 0x65, 0x6c, 0x69, 0x71, 0x2e, 0x69, 0x6e, 0x67, 0x65, 0x73, 0x74, 0x2e, 0x76, 0x31, 0x2e,
	0x53, 0x75, 0x62, 0x6d, 0x69, 0x74, 0x45, 0x76, 0x65, 0x6e, 0x74, 0x52, 0x65, 0x71, 0x75, 0x65,
	0x73, 0x74, 0x1a, 0x27, 0x2e, 0x72, 0x61, 0x6e, 0x67, 0x65, 0x6c, 0x69, 0x71, 0x2e, 0x69, 0x6e,
	0x67, 0x65, 0x73, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x53, 0x75, 0x62, 0x6d, 0x69, 0x74, 0x45, 0x76,
	0x65, 0x6e, 0x74, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x22, 0x15, 0x82, 0xd3, 0xe4,
	0x93, 0x02, 0x0f, 0x3a, 0x01, 0x2a, 0x22, 0x0a, 0x2f, 0x76, 0x31, 0x2f, 0x65, 0x76, 0x65, 0x6e,
	0x74, 0x73, 0x12, 0x87, 0x01, 0x0a, 0x11, 0x53, 0x75, 0x62, 0x6d, 0x69, 0x74, 0x50, 0x72, 0x69,
	0x63, 0x65, 0x55, 0x70, 0x64, 0x61, 0x74, 0x65, 0x12, 0x2c, 0x2e, 0x72, 0x61, 0x6e, 0x67, 0x65,
	0x6c, 0x69, 0x71, 0x2e, 0x69, 0x6e, 0x67, 0x65, 0x73, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x53, 0x75,
	0x62, 0x6d, 0x69, 0x74, 0x50, 0x72, 0x69, 0x63, 0x65, 0x55, 0x70, 0x64, 0x61, 0x74, 0x65, 0x52,
	0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x2d, 0x2e, 0x72, 0x61, 0x6e, 0x67, 0x65, 0x6c, 0x69,
	0x71, 0x2e, 0x69, 0x6e, 0x67, 0x65, 0x73, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x53, 0x75, 0x62, 0x6d,
	0x69, 0x74, 0x50, 0x72, 0x69, 0x63, 0x65, 0x55, 0x70, 0x64, 0x61, 0x74, 0x65, 0x52, 0x65, 0x73,
	0x70, 0x6f, 0x6e, 0x73, 0x65, 0x22, 0x15, 0x82, 0xd3, 0xe4, 0x93, 0x02, 0x0f, 0x3a, 0x01, 0x2a,
	0x22, 0x0a, 0x2f, 0x76, 0x31, 0x2f, 0x70, 0x72, 0x69, 0x63, 0x65, 0x73, 0x12, 0x7b, 0x0a, 0x0c,
	0x4f, 0x70, 0x65, 0x6e, 0x50, 0x6f, 0x73, 0x69, 0x74, 0x69, 0x6f, 0x6e, 0x12, 0x27, 0x2e, 0x72,
	0x61, 0x6e, 0x67, 0x65, 0x6c, 0x69, 0x71, 0x2e, 0x69, 0x6e, 0x67, 0x65, 0x73, 0x74, 0x2e, 0x76,
	0x31, 0x2e, 0x4f, 0x70, 0x65, 0x6e, 0x50, 0x6f, 0x73, 0x69, 0x74, 0x69, 0x6f, 0x6e, 0x52, 0x65,
	0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x28, 0x2e, 0x72, 0x61, 0x6e, 0x67, 0x65, 0x6c, 0x69, 0x71,
	0x2e, 0x69, 0x6e, 0x67, 0x65, 0x73, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x4f, 0x70, 0x65, 0x6e, 0x50,
	0x6f, 0x73, 0x69, 0x74, 0x69, 0x6f, 0x6e, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x22,
	0x18, 0x82, 0xd3, 0xe4, 0x93, 0x02, 0x12, 0x3a, 0x01, 0x2a, 0x22, 0x0d, 0x2f, 0x76, 0x31, 0x2f,
	0x70, 0x6f, 0x73, 0x69, 0x74, 0x69, 0x6f, 0x6e, 0x73, 0x12, 0x92, 0x01, 0x0a, 0x0d, 0x52, 0x65,
	0x70, 0x61, 0x79, 0x50, 0x6f, 0x73, 0x69, 0x74, 0x69, 0x6f, 0x6e, 0x12, 0x28, 0x2e, 0x72, 0x61,
	0x6e, 0x67, 0x65, 0x6c, 0x69, 0x71, 0x2e, 0x69, 0x6e, 0x67, 0x65, 0x73, 0x74, 0x2e, 0x76, 0x31,
	0x2e, 0x52, 0x65, 0x70, 0x61, 0x79, 0x50, 0x6f, 0x73, 0x69, 0x74, 0x69, 0x6f, 0x6e, 0x52, 0x65,
	0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x29, 0x2e, 0x72, 0x61, 0x6e, 0x67, 0x65, 0x6c, 0x69, 0x71,
	0x2e, 0x69, 0x6e, 0x67, 0x65, 0x73, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x52, 0x65, 0x70, 0x61, 0x79,
	0x50, 0x6f, 0x73, 0x69, 0x74, 0x69, 0x6f, 0x6e, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65,
	0x22, 0x2c, 0x82, 0xd3, 0xe4, 0x93, 0x02, 0x26, 0x3a, 0x01, 0x2a, 0x22, 0x21, 0x2f, 0x76, 0x31,
	0x2f, 0x70, 0x6f, 0x73, 0x69, 0x74, 0x69, 0x6f, 0x6e, 0x73, 0x2f, 0x7b, 0x70, 0x6f, 0x73, 0x69,
	0x74, 0x69, 0x6f, 0x6e, 0x5f, 0x69, 0x64, 0x7d, 0x2f, 0x72, 0x65, 0x70, 0x61, 0x79, 0x42, 0x2d,
	0x5a, 0x2b, 0x52, 0x61, 0x6e, 0x67, 0x65, 0x4c, 0x69, 0x71, 0x2f, 0x67, 0x65, 0x6e, 0x2f, 0x67,
	0x6f, 0x2f, 0x72, 0x61, 0x6e, 0x67, 0x65, 0x6c, 0x69, 0x71, 0x2f, 0x69, 0x6e, 0x67, 0x65, 0x73,
	0x74, 0x2f, 0x76, 0x31, 0x3b, 0x69, 0x6e, 0x67, 0x65, 0x73, 0x74, 0x76, 0x31, 0x62, 0x06, 0x70,
	0x72, 0x6f, 0x74, 0x6f, 0x33,
})

var (
	file_rangeliq_ingest_v1_ingest_proto_rawDescOnce sync.Once
	file_rangeliq_ingest_v1_ingest_proto_rawDescData []byte
)

func file_rangeliq_ingest_v1_ingest_proto_rawDescGZIP() []byte {
	file_rangeliq_ingest_v1_ingest_proto_rawDescOnce.Do(func() {
		file_rangeliq_ingest_v1_ingest_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_rangeliq_ingest_v1_ingest_proto_rawDesc), len(file_rangeliq_ingest_v1_ingest_proto_rawDesc)))
	})
	return file_rangeliq_ingest_v1_ingest_proto_rawDescData
}

var file_rangeliq_ingest_v1_ingest_proto_msgTypes = make([]protoimpl.MessageInfo, 8)
var file_rangeliq_ingest_v1_ingest_proto_goTypes = []any{
	(*SubmitEventRequest)(nil),        // 0: rangeliq.ingest.v1.SubmitEventRequest
	(*SubmitEventResponse)(nil),       // 1: rangeliq.ingest.v1.SubmitEventResponse
	(*SubmitPriceUpdateRequest)(nil),  // 2: rangeliq.ingest.v1.SubmitPriceUpdateRequest
	(*SubmitPriceUpdateResponse)(nil), // 3: rangeliq.ingest.v1.SubmitPriceUpdateResponse
	(*OpenPositionRequest)(nil),       // 4: rangeliq.ingest.v1.OpenPositionRequest
	(*OpenPositionResponse)(nil),      // 5: rangeliq.ingest.v1.OpenPositionResponse
	(*RepayPositionRequest)(nil),      // 6: rangeliq.ingest.v1.RepayPositionRequest
	(*RepayPositionResponse)(nil),     // 7: rangeliq.ingest.v1.RepayPositionResponse
	(*v1.EventEnvelope)(nil),          // 8: rangeliq.events.v1.EventEnvelope
}
var file_rangeliq_ingest_v1_ingest_proto_depIdxs = []int32{
	8, // 0: rangeliq.ingest.v1.SubmitEventRequest.envelope:type_name -> rangeliq.events.v1.EventEnvelope
	0, // 1: rangeliq.ingest.v1.IngestService.SubmitEvent:input_type -> rangeliq.ingest.v1.SubmitEventRequest
	2, // 2: rangeliq.ingest.v1.IngestService.SubmitPriceUpdate:input_type -> rangeliq.ingest.v1.SubmitPriceUpdateRequest
	4, // 3: rangeliq.ingest.v1.IngestService.OpenPosition:input_type -> rangeliq.ingest.v1.OpenPositionRequest
	6, // 4: rangeliq.ingest.v1.IngestService.RepayPosition:input_type -> rangeliq.ingest.v1.RepayPositionRequest
	1, // 5: rangeliq.ingest.v1.IngestService.SubmitEvent:output_type -> rangeliq.ingest.v1.SubmitEventResponse
	3, // 6: rangeliq.ingest.v1.IngestService.SubmitPriceUpdate:output_type -> rangeliq.ingest.v1.SubmitPriceUpdateResponse
	5, // 7: rangeliq.ingest.v1.IngestService.OpenPosition:output_type -> rangeliq.ingest.v1.OpenPositionResponse
	7, // 8: rangeliq.ingest.v1.IngestService.RepayPosition:output_type -> rangeliq.ingest.v1.RepayPositionResponse
	5, // [5:9] is the sub-list for method output_type
	1, // [1:5] is the sub-list for method input_type
	1, // [1:1] is the sub-list for extension type_name
	1, // [1:1] is the sub-list for extension extendee
	0, // [0:1] is the sub-list for field type_name
}

func init() { file_rangeliq_ingest_v1_ingest_proto_init() }
func file_rangeliq_ingest_v1_ingest_proto_init() {
	if File_rangeliq_ingest_v1_ingest_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_rangeliq_ingest_v1_ingest_proto_rawDesc), len(file_rangeliq_ingest_v1_ingest_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   8,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_rangeliq_ingest_v1_ingest_proto_goTypes,
		DependencyIndexes: file_rangeliq_ingest_v1_ingest_proto_depIdxs,
		MessageInfos:      file_rangeliq_ingest_v1_ingest_proto_msgTypes,
	}.Build()
	File_rangeliq_ingest_v1_ingest_proto = out.File
	file_rangeliq_ingest_v1_ingest_proto_goTypes = nil
	file_rangeliq_ingest_v1_ingest_proto_depIdxs = nil
}
