// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.5
// 	protoc        (unknown)
// source: rangeliq/query/v1/query.proto

package queryv1

import (
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

// Position mirrors the projected position row.
type Position struct {
	state               protoimpl.MessageState `protogen:"open.v1"`
	PositionId          string                 `protobuf:"bytes,1,opt,name=position_id,json=positionId,proto3" json:"position_id,omitempty"`
	Owner               string                 `protobuf:"bytes,2,opt,name=owner,proto3" json:"owner,omitempty"`
	Market              string                 `protobuf:"bytes,3,opt,name=market,proto3" json:"market,omitempty"`
	Direction           string                 `protobuf:"bytes,4,opt,name=direction,proto3" json:"direction,omitempty"` // "base" or "quote"
	InitialCollateral   int64                  `protobuf:"varint,5,opt,name=initial_collateral,json=initialCollateral,proto3" json:"initial_collateral,omitempty"`
	RemainingCollateral int64                  `protobuf:"varint,6,opt,name=remaining_collateral,json=remainingCollateral,proto3" json:"remaining_collateral,omitempty"`
	DebtPrincipal       int64                  `protobuf:"varint,7,opt,name=debt_principal,json=debtPrincipal,proto3" json:"debt_principal,omitempty"`
	RemainingDebt       int64                  `protobuf:"varint,8,opt,name=remaining_debt,json=remainingDebt,proto3" json:"remaining_debt,omitempty"`
	TickLower           int64                  `protobuf:"varint,9,opt,name=tick_lower,json=tickLower,proto3" json:"tick_lower,omitempty"`
	TickUpper           int64                  `protobuf:"varint,10,opt,name=tick_upper,json=tickUpper,proto3" json:"tick_upper,omitempty"`
	ThresholdBps        int64                  `protobuf:"varint,11,opt,name=threshold_bps,json=thresholdBps,proto3" json:"threshold_bps,omitempty"`
	AccumulatedPenalty  int64                  `protobuf:"varint,12,opt,name=accumulated_penalty,json=accumulatedPenalty,proto3" json:"accumulated_penalty,omitempty"`
	State               string                 `protobuf:"bytes,13,opt,name=state,proto3" json:"state,omitempty"`
	Version             int64                  `protobuf:"varint,14,opt,name=version,proto3" json:"version,omitempty"`
	OpenTimestampUs     int64                  `protobuf:"varint,15,opt,name=open_timestamp_us,json=openTimestampUs,proto3" json:"open_timestamp_us,omitempty"`
	unknownFields       protoimpl.UnknownFields
	sizeCache           protoimpl.SizeCache
}

func (x *Position) Reset() {
	*x = Position{}
	mi := &file_rangeliq_query_v1_query_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Position) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Position) ProtoMessage() {}

func (x *Position) ProtoReflect() protoreflect.Message {
	mi := &file_rangeliq_query_v1_query_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Position.ProtoReflect.Descriptor instead.
func (*Position) Descriptor() ([]byte, []int) {
	return file_rangeliq_query_v1_query_proto_rawDescGZIP(), []int{0}
}

func (x *Position) GetPositionId() string {
	if x != nil {
		return x.PositionId
	}
	return ""
}

func (x *Position) GetOwner() string {
	if x != nil {
		return x.Owner
	}
	return ""
}

func (x *Position) GetMarket() string {
	if x != nil {
		return x.Market
	}
	return ""
}

func (x *Position) GetDirection() string {
	if x != nil {
		return x.Direction
	}
	return ""
}

func (x *Position) GetInitialCollateral() int64 {
	if x != nil {
		return x.InitialCollateral
	}
	return 0
}

func (x *Position) GetRemainingCollateral() int64 {
	if x != nil {
		return x.RemainingCollateral
	}
	return 0
}

func (x *Position) GetDebtPrincipal() int64 {
	if x != nil {
		return x.DebtPrincipal
	}
	return 0
}

func (x *Position) GetRemainingDebt() int64 {
	if x != nil {
		return x.RemainingDebt
	}
	return 0
}

func (x *Position) GetTickLower() int64 {
	if x != nil {
		return x.TickLower
	}
	return 0
}

func (x *Position) GetTickUpper() int64 {
	if x != nil {
		return x.TickUpper
	}
	return 0
}

func (x *Position) GetThresholdBps() int64 {
	if x != nil {
		return x.ThresholdBps
	}
	return 0
}

func (x *Position) GetAccumulatedPenalty() int64 {
	if x != nil {
		return x.AccumulatedPenalty
	}
	return 0
}

func (x *Position) GetState() string {
	if x != nil {
		return x.State
	}
	return ""
}

func (x *Position) GetVersion() int64 {
	if x != nil {
		return x.Version
	}
	return 0
}

func (x *Position) GetOpenTimestampUs() int64 {
	if x != nil {
		return x.OpenTimestampUs
	}
	return 0
}

type GetPositionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PositionId    string                 `protobuf:"bytes,1,opt,name=position_id,json=positionId,proto3" json:"position_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetPositionRequest) Reset() {
	*x = GetPositionRequest{}
	mi := &file_rangeliq_query_v1_query_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetPositionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetPositionRequest) ProtoMessage() {}

func (x *GetPositionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_rangeliq_query_v1_query_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetPositionRequest.ProtoReflect.Descriptor instead.
func (*GetPositionRequest) Descriptor() ([]byte, []int) {
	return file_rangeliq_query_v1_query_proto_rawDescGZIP(), []int{1}
}

func (x *GetPositionRequest) GetPositionId() string {
	if x != nil {
		return x.PositionId
	}
	return ""
}

type GetPositionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Position      *Position              `protobuf:"bytes,1,opt,name=position,proto3" json:"position,omitempty"`
	AsOfSequence  int64                  `protobuf:"varint,2,opt,name=as_of_sequence,json=asOfSequence,proto3" json:"as_of_sequence,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetPositionResponse) Reset() {
	*x = GetPositionResponse{}
	mi := &file_rangeliq_query_v1_query_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetPositionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetPositionResponse) ProtoMessage() {}

func (x *GetPositionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_rangeliq_query_v1_query_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetPositionResponse.ProtoReflect.Descriptor instead.
func (*GetPositionResponse) Descriptor() ([]byte, []int) {
	return file_rangeliq_query_v1_query_proto_rawDescGZIP(), []int{2}
}

func (x *GetPositionResponse) GetPosition() *Position {
	if x != nil {
		return x.Position
	}
	return nil
}

func (x *GetPositionResponse) GetAsOfSequence() int64 {
	if x != nil {
		return x.AsOfSequence
	}
	return 0
}

type IsUnderwaterRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PositionId    string                 `protobuf:"bytes,1,opt,name=position_id,json=positionId,proto3" json:"position_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IsUnderwaterRequest) Reset() {
	*x = IsUnderwaterRequest{}
	mi := &file_rangeliq_query_v1_query_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IsUnderwaterRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IsUnderwaterRequest) ProtoMessage() {}

func (x *IsUnderwaterRequest) ProtoReflect() protoreflect.Message {
	mi := &file_rangeliq_query_v1_query_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IsUnderwaterRequest.ProtoReflect.Descriptor instead.
func (*IsUnderwaterRequest) Descriptor() ([]byte, []int) {
	return file_rangeliq_query_v1_query_proto_rawDescGZIP(), []int{3}
}

func (x *IsUnderwaterRequest) GetPositionId() string {
	if x != nil {
		return x.PositionId
	}
	return ""
}

type IsUnderwaterResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Underwater    bool                   `protobuf:"varint,1,opt,name=underwater,proto3" json:"underwater,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IsUnderwaterResponse) Reset() {
	*x = IsUnderwaterResponse{}
	mi := &file_rangeliq_query_v1_query_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IsUnderwaterResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IsUnderwaterResponse) ProtoMessage() {}

func (x *IsUnderwaterResponse) ProtoReflect() protoreflect.Message {
	mi := &file_rangeliq_query_v1_query_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IsUnderwaterResponse.ProtoReflect.Descriptor instead.
func (*IsUnderwaterResponse) Descriptor() ([]byte, []int) {
	return file_rangeliq_query_v1_query_proto_rawDescGZIP(), []int{4}
}

func (x *IsUnderwaterResponse) GetUnderwater() bool {
	if x != nil {
		return x.Underwater
	}
	return false
}

type GetLiquidationProgressRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PositionId    string                 `protobuf:"bytes,1,opt,name=position_id,json=positionId,proto3" json:"position_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetLiquidationProgressRequest) Reset() {
	*x = GetLiquidationProgressRequest{}
	mi := &file_rangeliq_query_v1_query_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetLiquidationProgressRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetLiquidationProgressRequest) ProtoMessage() {}

func (x *GetLiquidationProgressRequest) ProtoReflect() protoreflect.Message {
	mi := &file_rangeliq_query_v1_query_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetLiquidationProgressRequest.ProtoReflect.Descriptor instead.
func (*GetLiquidationProgressRequest) Descriptor() ([]byte, []int) {
	return file_rangeliq_query_v1_query_proto_rawDescGZIP(), []int{5}
}

func (x *GetLiquidationProgressRequest) GetPositionId() string {
	if x != nil {
		return x.PositionId
	}
	return ""
}

type GetLiquidationProgressResponse struct {
	state                protoimpl.MessageState `protogen:"open.v1"`
	PositionId           string                 `protobuf:"bytes,1,opt,name=position_id,json=positionId,proto3" json:"position_id,omitempty"`
	ProgressBps          int64                  `protobuf:"varint,2,opt,name=progress_bps,json=progressBps,proto3" json:"progress_bps,omitempty"`       // band depth at the current tick
	LiquidatedBps        int64                  `protobuf:"varint,3,opt,name=liquidated_bps,json=liquidatedBps,proto3" json:"liquidated_bps,omitempty"` // collateral actually consumed so far
	CollateralLiquidated int64                  `protobuf:"varint,4,opt,name=collateral_liquidated,json=collateralLiquidated,proto3" json:"collateral_liquidated,omitempty"`
	CollateralRemaining  int64                  `protobuf:"varint,5,opt,name=collateral_remaining,json=collateralRemaining,proto3" json:"collateral_remaining,omitempty"`
	DebtRepaid           int64                  `protobuf:"varint,6,opt,name=debt_repaid,json=debtRepaid,proto3" json:"debt_repaid,omitempty"`
	DebtRemaining        int64                  `protobuf:"varint,7,opt,name=debt_remaining,json=debtRemaining,proto3" json:"debt_remaining,omitempty"`
	CurrentTick          int64                  `protobuf:"varint,8,opt,name=current_tick,json=currentTick,proto3" json:"current_tick,omitempty"`
	InBand               bool                   `protobuf:"varint,9,opt,name=in_band,json=inBand,proto3" json:"in_band,omitempty"`
	AsOfSequence         int64                  `protobuf:"varint,10,opt,name=as_of_sequence,json=asOfSequence,proto3" json:"as_of_sequence,omitempty"`
	unknownFields        protoimpl.UnknownFields
	sizeCache            protoimpl.SizeCache
}

func (x *GetLiquidationProgressResponse) Reset() {
	*x = GetLiquidationProgressResponse{}
	mi := &file_rangeliq_query_v1_query_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetLiquidationProgressResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetLiquidationProgressResponse) ProtoMessage() {}

func (x *GetLiquidationProgressResponse) ProtoReflect() protoreflect.Message {
	mi := &file_rangeliq_query_v1_query_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetLiquidationProgressResponse.ProtoReflect.Descriptor instead.
func (*GetLiquidationProgressResponse) Descriptor() ([]byte, []int) {
	return file_rangeliq_query_v1_query_proto_rawDescGZIP(), []int{6}
}

func (x *GetLiquidationProgressResponse) GetPositionId() string {
	if x != nil {
		return x.PositionId
	}
	return ""
}

func (x *GetLiquidationProgressResponse) GetProgressBps() int64 {
	if x != nil {
		return x.ProgressBps
	}
	return 0
}

func (x *GetLiquidationProgressResponse) GetLiquidatedBps() int64 {
	if x != nil {
		return x.LiquidatedBps
	}
	return 0
}

func (x *GetLiquidationProgressResponse) GetCollateralLiquidated() int64 {
	if x != nil {
		return x.CollateralLiquidated
	}
	return 0
}

func (x *GetLiquidationProgressResponse) GetCollateralRemaining() int64 {
	if x != nil {
		return x.CollateralRemaining
	}
	return 0
}

func (x *GetLiquidationProgressResponse) GetDebtRepaid() int64 {
	if x != nil {
		return x.DebtRepaid
	}
	return 0
}

func (x *GetLiquidationProgressResponse) GetDebtRemaining() int64 {
	if x != nil {
		return x.DebtRemaining
	}
	return 0
}

func (x *GetLiquidationProgressResponse) GetCurrentTick() int64 {
	if x != nil {
		return x.CurrentTick
	}
	return 0
}

func (x *GetLiquidationProgressResponse) GetInBand() bool {
	if x != nil {
		return x.InBand
	}
	return false
}

func (x *GetLiquidationProgressResponse) GetAsOfSequence() int64 {
	if x != nil {
		return x.AsOfSequence
	}
	return 0
}

type GetPenaltyRateRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ThresholdBps  int64                  `protobuf:"varint,1,opt,name=threshold_bps,json=thresholdBps,proto3" json:"threshold_bps,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetPenaltyRateRequest) Reset() {
	*x = GetPenaltyRateRequest{}
	mi := &file_rangeliq_query_v1_query_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetPenaltyRateRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetPenaltyRateRequest) ProtoMessage() {}

func (x *GetPenaltyRateRequest) ProtoReflect() protoreflect.Message {
	mi := &file_rangeliq_query_v1_query_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetPenaltyRateRequest.ProtoReflect.Descriptor instead.
func (*GetPenaltyRateRequest) Descriptor() ([]byte, []int) {
	return file_rangeliq_query_v1_query_proto_rawDescGZIP(), []int{7}
}

func (x *GetPenaltyRateRequest) GetThresholdBps() int64 {
	if x != nil {
		return x.ThresholdBps
	}
	return 0
}

type GetPenaltyRateResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	ThresholdBps   int64                  `protobuf:"varint,1,opt,name=threshold_bps,json=thresholdBps,proto3" json:"threshold_bps,omitempty"`
	PenaltyRateBps int64                  `protobuf:"varint,2,opt,name=penalty_rate_bps,json=penaltyRateBps,proto3" json:"penalty_rate_bps,omitempty"` // annualized
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *GetPenaltyRateResponse) Reset() {
	*x = GetPenaltyRateResponse{}
	mi := &file_rangeliq_query_v1_query_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetPenaltyRateResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetPenaltyRateResponse) ProtoMessage() {}

func (x *GetPenaltyRateResponse) ProtoReflect() protoreflect.Message {
	mi := &file_rangeliq_query_v1_query_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetPenaltyRateResponse.ProtoReflect.Descriptor instead.
func (*GetPenaltyRateResponse) Descriptor() ([]byte, []int) {
	return file_rangeliq_query_v1_query_proto_rawDescGZIP(), []int{8}
}

func (x *GetPenaltyRateResponse) GetThresholdBps() int64 {
	if x != nil {
		return x.ThresholdBps
	}
	return 0
}

func (x *GetPenaltyRateResponse) GetPenaltyRateBps() int64 {
	if x != nil {
		return x.PenaltyRateBps
	}
	return 0
}

type GetActivePositionCountRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetActivePositionCountRequest) Reset() {
	*x = GetActivePositionCountRequest{}
	mi := &file_rangeliq_query_v1_query_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetActivePositionCountRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetActivePositionCountRequest) ProtoMessage() {}

func (x *GetActivePositionCountRequest) ProtoReflect() protoreflect.Message {
	mi := &file_rangeliq_query_v1_query_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetActivePositionCountRequest.ProtoReflect.Descriptor instead.
func (*GetActivePositionCountRequest) Descriptor() ([]byte, []int) {
	return file_rangeliq_query_v1_query_proto_rawDescGZIP(), []int{9}
}

type GetActivePositionCountResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Count         int64                  `protobuf:"varint,1,opt,name=count,proto3" json:"count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetActivePositionCountResponse) Reset() {
	*x = GetActivePositionCountResponse{}
	mi := &file_rangeliq_query_v1_query_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetActivePositionCountResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetActivePositionCountResponse) ProtoMessage() {}

func (x *GetActivePositionCountResponse) ProtoReflect() protoreflect.Message {
	mi := &file_rangeliq_query_v1_query_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetActivePositionCountResponse.ProtoReflect.Descriptor instead.
func (*GetActivePositionCountResponse) Descriptor() ([]byte, []int) {
	return file_rangeliq_query_v1_query_proto_rawDescGZIP(), []int{10}
}

func (x *GetActivePositionCountResponse) GetCount() int64 {
	if x != nil {
		return x.Count
	}
	return 0
}

// LiquidationStep is one recorded partial or full liquidation.
type LiquidationStep struct {
	state                protoimpl.MessageState `protogen:"open.v1"`
	Sequence             int64                  `protobuf:"varint,1,opt,name=sequence,proto3" json:"sequence,omitempty"`
	PositionId           string                 `protobuf:"bytes,2,opt,name=position_id,json=positionId,proto3" json:"position_id,omitempty"`
	Market               string                 `protobuf:"bytes,3,opt,name=market,proto3" json:"market,omitempty"`
	Tick                 int64                  `protobuf:"varint,4,opt,name=tick,proto3" json:"tick,omitempty"`
	CollateralLiquidated int64                  `protobuf:"varint,5,opt,name=collateral_liquidated,json=collateralLiquidated,proto3" json:"collateral_liquidated,omitempty"`
	DebtRepaid           int64                  `protobuf:"varint,6,opt,name=debt_repaid,json=debtRepaid,proto3" json:"debt_repaid,omitempty"`
	PenaltyToLp          int64                  `protobuf:"varint,7,opt,name=penalty_to_lp,json=penaltyToLp,proto3" json:"penalty_to_lp,omitempty"`
	PenaltyToTaker       int64                  `protobuf:"varint,8,opt,name=penalty_to_taker,json=penaltyToTaker,proto3" json:"penalty_to_taker,omitempty"`
	FullyLiquidated      bool                   `protobuf:"varint,9,opt,name=fully_liquidated,json=fullyLiquidated,proto3" json:"fully_liquidated,omitempty"`
	TimestampUs          int64                  `protobuf:"varint,10,opt,name=timestamp_us,json=timestampUs,proto3" json:"timestamp_us,omitempty"`
	unknownFields        protoimpl.UnknownFields
	sizeCache            protoimpl.SizeCache
}

func (x *LiquidationStep) Reset() {
	*x = LiquidationStep{}
	mi := &file_rangeliq_query_v1_query_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LiquidationStep) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LiquidationStep) ProtoMessage() {}

func (x *LiquidationStep) ProtoReflect() protoreflect.Message {
	mi := &file_rangeliq_query_v1_query_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LiquidationStep.ProtoReflect.Descriptor instead.
func (*LiquidationStep) Descriptor() ([]byte, []int) {
	return file_rangeliq_query_v1_query_proto_rawDescGZIP(), []int{11}
}

func (x *LiquidationStep) GetSequence() int64 {
	if x != nil {
		return x.Sequence
	}
	return 0
}

func (x *LiquidationStep) GetPositionId() string {
	if x != nil {
		return x.PositionId
	}
	return ""
}

func (x *LiquidationStep) GetMarket() string {
	if x != nil {
		return x.Market
	}
	return ""
}

func (x *LiquidationStep) GetTick() int64 {
	if x != nil {
		return x.Tick
	}
	return 0
}

func (x *LiquidationStep) GetCollateralLiquidated() int64 {
	if x != nil {
		return x.CollateralLiquidated
	}
	return 0
}

func (x *LiquidationStep) GetDebtRepaid() int64 {
	if x != nil {
		return x.DebtRepaid
	}
	return 0
}

func (x *LiquidationStep) GetPenaltyToLp() int64 {
	if x != nil {
		return x.PenaltyToLp
	}
	return 0
}

func (x *LiquidationStep) GetPenaltyToTaker() int64 {
	if x != nil {
		return x.PenaltyToTaker
	}
	return 0
}

func (x *LiquidationStep) GetFullyLiquidated() bool {
	if x != nil {
		return x.FullyLiquidated
	}
	return false
}

func (x *LiquidationStep) GetTimestampUs() int64 {
	if x != nil {
		return x.TimestampUs
	}
	return 0
}

type ListLiquidationHistoryRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	PositionId     string                 `protobuf:"bytes,1,opt,name=position_id,json=positionId,proto3" json:"position_id,omitempty"` // optional filter
	PageSize       int32                  `protobuf:"varint,2,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	BeforeSequence int64                  `protobuf:"varint,3,opt,name=before_sequence,json=beforeSequence,proto3" json:"before_sequence,omitempty"` // cursor, exclusive
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ListLiquidationHistoryRequest) Reset() {
	*x = ListLiquidationHistoryRequest{}
	mi := &file_rangeliq_query_v1_query_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListLiquidationHistoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListLiquidationHistoryRequest) ProtoMessage() {}

func (x *ListLiquidationHistoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_rangeliq_query_v1_query_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListLiquidationHistoryRequest.ProtoReflect.Descriptor instead.
func (*ListLiquidationHistoryRequest) Descriptor() ([]byte, []int) {
	return file_rangeliq_query_v1_query_proto_rawDescGZIP(), []int{12}
}

func (x *ListLiquidationHistoryRequest) GetPositionId() string {
	if x != nil {
		return x.PositionId
	}
	return ""
}

func (x *ListLiquidationHistoryRequest) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

func (x *ListLiquidationHistoryRequest) GetBeforeSequence() int64 {
	if x != nil {
		return x.BeforeSequence
	}
	return 0
}

type ListLiquidationHistoryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Steps         []*LiquidationStep     `protobuf:"bytes,1,rep,name=steps,proto3" json:"steps,omitempty"`
	AsOfSequence  int64                  `protobuf:"varint,2,opt,name=as_of_sequence,json=asOfSequence,proto3" json:"as_of_sequence,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListLiquidationHistoryResponse) Reset() {
	*x = ListLiquidationHistoryResponse{}
	mi := &file_rangeliq_query_v1_query_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListLiquidationHistoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListLiquidationHistoryResponse) ProtoMessage() {}

func (x *ListLiquidationHistoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_rangeliq_query_v1_query_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListLiquidationHistoryResponse.ProtoReflect.Descriptor instead.
func (*ListLiquidationHistoryResponse) Descriptor() ([]byte, []int) {
	return file_rangeliq_query_v1_query_proto_rawDescGZIP(), []int{13}
}

func (x *ListLiquidationHistoryResponse) GetSteps() []*LiquidationStep {
	if x != nil {
		return x.Steps
	}
	return nil
}

func (x *ListLiquidationHistoryResponse) GetAsOfSequence() int64 {
	if x != nil {
		return x.AsOfSequence
	}
	return 0
}

type GetPoolBalancesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Asset         string                 `protobuf:"bytes,1,opt,name=asset,proto3" json:"asset,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetPoolBalancesRequest) Reset() {
	*x = GetPoolBalancesRequest{}
	mi := &file_rangeliq_query_v1_query_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetPoolBalancesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetPoolBalancesRequest) ProtoMessage() {}

func (x *GetPoolBalancesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_rangeliq_query_v1_query_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetPoolBalancesRequest.ProtoReflect.Descriptor instead.
func (*GetPoolBalancesRequest) Descriptor() ([]byte, []int) {
	return file_rangeliq_query_v1_query_proto_rawDescGZIP(), []int{14}
}

func (x *GetPoolBalancesRequest) GetAsset() string {
	if x != nil {
		return x.Asset
	}
	return ""
}

type GetPoolBalancesResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Asset          string                 `protobuf:"bytes,1,opt,name=asset,proto3" json:"asset,omitempty"`
	LpPoolCredits  int64                  `protobuf:"varint,2,opt,name=lp_pool_credits,json=lpPoolCredits,proto3" json:"lp_pool_credits,omitempty"`
	TakerCredits   int64                  `protobuf:"varint,3,opt,name=taker_credits,json=takerCredits,proto3" json:"taker_credits,omitempty"`
	PenaltyCharges int64                  `protobuf:"varint,4,opt,name=penalty_charges,json=penaltyCharges,proto3" json:"penalty_charges,omitempty"`
	TotalReserved  int64                  `protobuf:"varint,5,opt,name=total_reserved,json=totalReserved,proto3" json:"total_reserved,omitempty"`
	AsOfSequence   int64                  `protobuf:"varint,6,opt,name=as_of_sequence,json=asOfSequence,proto3" json:"as_of_sequence,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *GetPoolBalancesResponse) Reset() {
	*x = GetPoolBalancesResponse{}
	mi := &file_rangeliq_query_v1_query_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetPoolBalancesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetPoolBalancesResponse) ProtoMessage() {}

func (x *GetPoolBalancesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_rangeliq_query_v1_query_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetPoolBalancesResponse.ProtoReflect.Descriptor instead.
func (*GetPoolBalancesResponse) Descriptor() ([]byte, []int) {
	return file_rangeliq_query_v1_query_proto_rawDescGZIP(), []int{15}
}

func (x *GetPoolBalancesResponse) GetAsset() string {
	if x != nil {
		return x.Asset
	}
	return ""
}

func (x *GetPoolBalancesResponse) GetLpPoolCredits() int64 {
	if x != nil {
		return x.LpPoolCredits
	}
	return 0
}

func (x *GetPoolBalancesResponse) GetTakerCredits() int64 {
	if x != nil {
		return x.TakerCredits
	}
	return 0
}

func (x *GetPoolBalancesResponse) GetPenaltyCharges() int64 {
	if x != nil {
		return x.PenaltyCharges
	}
	return 0
}

func (x *GetPoolBalancesResponse) GetTotalReserved() int64 {
	if x != nil {
		return x.TotalReserved
	}
	return 0
}

func (x *GetPoolBalancesResponse) GetAsOfSequence() int64 {
	if x != nil {
		return x.AsOfSequence
	}
	return 0
}

type GetPositionReserveRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PositionId    string                 `protobuf:"bytes,1,opt,name=position_id,json=positionId,proto3" json:"position_id,omitempty"`
	Asset         string                 `protobuf:"bytes,2,opt,name=asset,proto3" json:"asset,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetPositionReserveRequest) Reset() {
	*x = GetPositionReserveRequest{}
	mi := &file_rangeliq_query_v1_query_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetPositionReserveRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetPositionReserveRequest) ProtoMessage() {}

func (x *GetPositionReserveRequest) ProtoReflect() protoreflect.Message {
	mi := &file_rangeliq_query_v1_query_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetPositionReserveRequest.ProtoReflect.Descriptor instead.
func (*GetPositionReserveRequest) Descriptor() ([]byte, []int) {
	return file_rangeliq_query_v1_query_proto_rawDescGZIP(), []int{16}
}

func (x *GetPositionReserveRequest) GetPositionId() string {
	if x != nil {
		return x.PositionId
	}
	return ""
}

func (x *GetPositionReserveRequest) GetAsset() string {
	if x != nil {
		return x.Asset
	}
	return ""
}

type GetPositionReserveResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PositionId    string                 `protobuf:"bytes,1,opt,name=position_id,json=positionId,proto3" json:"position_id,omitempty"`
	Asset         string                 `protobuf:"bytes,2,opt,name=asset,proto3" json:"asset,omitempty"`
	Reserve       int64                  `protobuf:"varint,3,opt,name=reserve,proto3" json:"reserve,omitempty"`
	AsOfSequence  int64                  `protobuf:"varint,4,opt,name=as_of_sequence,json=asOfSequence,proto3" json:"as_of_sequence,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetPositionReserveResponse) Reset() {
	*x = GetPositionReserveResponse{}
	mi := &file_rangeliq_query_v1_query_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetPositionReserveResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetPositionReserveResponse) ProtoMessage() {}

func (x *GetPositionReserveResponse) ProtoReflect() protoreflect.Message {
	mi := &file_rangeliq_query_v1_query_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetPositionReserveResponse.ProtoReflect.Descriptor instead.
func (*GetPositionReserveResponse) Descriptor() ([]byte, []int) {
	return file_rangeliq_query_v1_query_proto_rawDescGZIP(), []int{17}
}

func (x *GetPositionReserveResponse) GetPositionId() string {
	if x != nil {
		return x.PositionId
	}
	return ""
}

func (x *GetPositionReserveResponse) GetAsset() string {
	if x != nil {
		return x.Asset
	}
	return ""
}

func (x *GetPositionReserveResponse) GetReserve() int64 {
	if x != nil {
		return x.Reserve
	}
	return 0
}

func (x *GetPositionReserveResponse) GetAsOfSequence() int64 {
	if x != nil {
		return x.AsOfSequence
	}
	return 0
}

// JournalRecord mirrors a double-entry journal row.
type JournalRecord struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JournalId     string                 `protobuf:"bytes,1,opt,name=journal_id,json=journalId,proto3" json:"journal_id,omitempty"`
	BatchId       string                 `protobuf:"bytes,2,opt,name=batch_id,json=batchId,proto3" json:"batch_id,omitempty"`
	EventRef      string                 `protobuf:"bytes,3,opt,name=event_ref,json=eventRef,proto3" json:"event_ref,omitempty"`
	EventSequence int64                  `protobuf:"varint,4,opt,name=event_sequence,json=eventSequence,proto3" json:"event_sequence,omitempty"`
	DebitAccount  string                 `protobuf:"bytes,5,opt,name=debit_account,json=debitAccount,proto3" json:"debit_account,omitempty"`
	CreditAccount string                 `protobuf:"bytes,6,opt,name=credit_account,json=creditAccount,proto3" json:"credit_account,omitempty"`
	AssetId       uint32                 `protobuf:"varint,7,opt,name=asset_id,json=assetId,proto3" json:"asset_id,omitempty"`
	Amount        int64                  `protobuf:"varint,8,opt,name=amount,proto3" json:"amount,omitempty"`
	JournalType   int32                  `protobuf:"varint,9,opt,name=journal_type,json=journalType,proto3" json:"journal_type,omitempty"`
	TimestampUs   int64                  `protobuf:"varint,10,opt,name=timestamp_us,json=timestampUs,proto3" json:"timestamp_us,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *JournalRecord) Reset() {
	*x = JournalRecord{}
	mi := &file_rangeliq_query_v1_query_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *JournalRecord) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*JournalRecord) ProtoMessage() {}

func (x *JournalRecord) ProtoReflect() protoreflect.Message {
	mi := &file_rangeliq_query_v1_query_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use JournalRecord.ProtoReflect.Descriptor instead.
func (*JournalRecord) Descriptor() ([]byte, []int) {
	return file_rangeliq_query_v1_query_proto_rawDescGZIP(), []int{18}
}

func (x *JournalRecord) GetJournalId() string {
	if x != nil {
		return x.JournalId
	}
	return ""
}

func (x *JournalRecord) GetBatchId() string {
	if x != nil {
		return x.BatchId
	}
	return ""
}

func (x *JournalRecord) GetEventRef() string {
	if x != nil {
		return x.EventRef
	}
	return ""
}

func (x *JournalRecord) GetEventSequence() int64 {
	if x != nil {
		return x.EventSequence
	}
	return 0
}

func (x *JournalRecord) GetDebitAccount() string {
	if x != nil {
		return x.DebitAccount
	}
	return ""
}

func (x *JournalRecord) GetCreditAccount() string {
	if x != nil {
		return x.CreditAccount
	}
	return ""
}

func (x *JournalRecord) GetAssetId() uint32 {
	if x != nil {
		return x.AssetId
	}
	return 0
}

func (x *JournalRecord) GetAmount() int64 {
	if x != nil {
		return x.Amount
	}
	return 0
}

func (x *JournalRecord) GetJournalType() int32 {
	if x != nil {
		return x.JournalType
	}
	return 0
}

func (x *JournalRecord) GetTimestampUs() int64 {
	if x != nil {
		return x.TimestampUs
	}
	return 0
}

type ListJournalsRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	PositionId     string                 `protobuf:"bytes,1,opt,name=position_id,json=positionId,proto3" json:"position_id,omitempty"`
	PageSize       int32                  `protobuf:"varint,2,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	BeforeSequence int64                  `protobuf:"varint,3,opt,name=before_sequence,json=beforeSequence,proto3" json:"before_sequence,omitempty"` // cursor, exclusive
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ListJournalsRequest) Reset() {
	*x = ListJournalsRequest{}
	mi := &file_rangeliq_query_v1_query_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListJournalsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListJournalsRequest) ProtoMessage() {}

func (x *ListJournalsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_rangeliq_query_v1_query_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListJournalsRequest.ProtoReflect.Descriptor instead.
func (*ListJournalsRequest) Descriptor() ([]byte, []int) {
	return file_rangeliq_query_v1_query_proto_rawDescGZIP(), []int{19}
}

func (x *ListJournalsRequest) GetPositionId() string {
	if x != nil {
		return x.PositionId
	}
	return ""
}

func (x *ListJournalsRequest) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

func (x *ListJournalsRequest) GetBeforeSequence() int64 {
	if x != nil {
		return x.BeforeSequence
	}
	return 0
}

type ListJournalsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Journals      []*JournalRecord       `protobuf:"bytes,1,rep,name=journals,proto3" json:"journals,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListJournalsResponse) Reset() {
	*x = ListJournalsResponse{}
	mi := &file_rangeliq_query_v1_query_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListJournalsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListJournalsResponse) ProtoMessage() {}

func (x *ListJournalsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_rangeliq_query_v1_query_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListJournalsResponse.ProtoReflect.Descriptor instead.
func (*ListJournalsResponse) Descriptor() ([]byte, []int) {
	return file_rangeliq_query_v1_query_proto_rawDescGZIP(), []int{20}
}

func (x *ListJournalsResponse) GetJournals() []*JournalRecord {
	if x != nil {
		return x.Journals
	}
	return nil
}

var File_rangeliq_query_v1_query_proto protoreflect.FileDescriptor

var file_rangeliq_query_v1_query_proto_rawDesc = string([]byte{
	0x0a, 0x1d, 0x72, 0x61, 0x6e, 0x67, 0x65, 0x6c, 0x69, 0x71, 0x2f, 0x71, 0x75, 0x65, 0x72, 0x79,
	0x2f, 0x76, 0x31, 0x2f, 0x71, 0x75, 0x65, 0x72, 0x79, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x12,
	0x11, 0x72, 0x61, 0x6e, 0x67, 0x65, 0x6c, 0x69, 0x71, 0x2e, 0x71, 0x75, 0x65, 0x72, 0x79, 0x2e,
	0x76, 0x31, 0x1a, 0x1c, 0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2f, 0x61, 0x70, 0x69, 0x2f, 0x61,
	0x6e, 0x6e, 0x6f, 0x74, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x73, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f,
	0x22, 0x97, 0x04, 0x0a, 0x08, 0x50, 0x6f, 0x73, 0x69, 0x74, 0x69, 0x6f, 0x6e, 0x12, 0x1f, 0x0a,
	0x0b, 0x70, 0x6f, 0x73, 0x69, 0x74, 0x69, 0x6f, 0x6e, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01,
	0x28, 0x09, 0x52, 0x0a, 0x70, 0x6f, 0x73, 0x69, 0x74, 0x69, 0x6f, 0x6e, 0x49, 0x64, 0x12, 0x14,
	0x0a, 0x05, 0x6f, 0x77, 0x6e, 0x65, 0x72, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x05, 0x6f,
	0x77, 0x6e, 0x65, 0x72, 0x12, 0x16, 0x0a, 0x06, 0x6d, 0x61, 0x72, 0x6b, 0x65, 0x74, 0x18, 0x03,
	0x20, 0x01, 0x28, 0x09, 0x52, 0x06, 0x6d, 0x61, 0x72, 0x6b, 0x65, 0x74, 0x12, 0x1c, 0x0a, 0x09,
	0x64, 0x69, 0x72, 0x65, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x18, 0x04, 0x20, 0x01, 0x28, 0x09, 0x52,
	0x09, 0x64, 0x69, 0x72, 0x65, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x12, 0x2d, 0x0a, 0x12, 0x69, 0x6e,
	0x69, 0x74, 0x69, 0x61, 0x6c, 0x5f, 0x63, 0x6f, 0x6c, 0x6c, 0x61, 0x74, 0x65, 0x72, 0x61, 0x6c,
	0x18, 0x05, 0x20, 0x01, 0x28, 0x03, 0x52, 0x11, 0x69, 0x6e, 0x69, 0x74, 0x69, 0x61, 0x6c, 0x43,
	0x6f, 0x6c, 0x6c, 0x61, 0x74, 0x65, 0x72, 0x61, 0x6c, 0x12, 0x31, 0x0a, 0x14, 0x72, 0x65, 0x6d,
	0x61, 0x69, 0x6e, 0x69, 0x6e, 0x67, 0x5f, 0x63, 0x6f, 0x6c, 0x6c, 0x61, 0x74, 0x65, 0x72, 0x61,
	0x6c, 0x18, 0x06, 0x20, 0x01, 0x28, 0x03, 0x52, 0x13, 0x72, 0x65, 0x6d, 0x61, 0x69, 0x6e, 0x69,
	0x6e, 0x67, 0x43, 0x6f, 0x6c, 0x6c, 0x61, 0x74, 0x65, 0x72, 0x61, 0x6c, 0x12, 0x25, 0x0a, 0x0e,
	0x64, 0x65, 0x62, 0x74, 0x5f, 0x70, 0x72, 0x69, 0x6e, 0x63, 0x69, 0x70, 0x61, 0x6c, 0x18, 0x07,
	0x20, 0x01, 0x28, 0x03, 0x52, 0x0d, 0x64, 0x65, 0x62, 0x74, 0x50, 0x72, 0x69, 0x6e, 0x63, 0x69,
	0x70, 0x61, 0x6c, 0x12, 0x25, 0x0a, 0x0e, 0x72, 0x65, 0x6d, 0x61, 0x69, 0x6e, 0x69, 0x6e, 0x67,
	0x5f, 0x64, 0x65, 0x62, 0x74, 0x18, 0x08, 0x20, 0x01, 0x28, 0x03, 0x52, 0x0d, 0x72, 0x65, 0x6d,
	0x61, 0x69, 0x6e, 0x69, 0x6e, 0x67, 0x44, 0x65, 0x62, 0x74, 0x12, 0x1d, 0x0a, 0x0a, 0x74, 0x69,
	0x63, 0x6b, 0x5f, 0x6c, 0x6f, 0x77, 0x65, 0x72, 0x18, 0x09, 0x20, 0x01, 0x28, 0x03, 0x52, 0x09,
	0x74, 0x69, 0x63, 0x6b, 0x4c, 0x6f, 0x77, 0x65, 0x72, 0x12, 0x1d, 0x0a, 0x0a, 0x74, 0x69, 0x63,
	0x6b, 0x5f, 0x75, 0x70, 0x70, 0x65, 0x72, 0x18, 0x0a, 0x20, 0x01, 0x28, 0x03, 0x52, 0x09, 0x74,
	0x69, 0x63, 0x6b, 0x55, 0x70, 0x70, 0x65, 0x72, 0x12, 0x23, 0x0a, 0x0d, 0x74, 0x68, 0x72, 0x65,
	0x73, 0x68, 0x6f, 0x6c, 0x64, 0x5f, 0x62, 0x70, 0x73, 0x18, 0x0b, 0x20, 0x01, 0x28, 0x03, 0x52,
	0x0c, 0x74, 0x68, 0x72, 0x65, 0x73, 0x68, 0x6f, 0x6c, 0x64, 0x42, 0x70, 0x73, 0x12, 0x2f, 0x0a,
	0x13, 0x61, 0x63, 0x63, 0x75, 0x6d, 0x75, 0x6c, 0x61, 0x74, 0x65, 0x64, 0x5f, 0x70, 0x65, 0x6e,
	0x61, 0x6c, 0x74, 0x79, 0x18, 0x0c, 0x20, 0x01, 0x28, 0x03, 0x52, 0x12, 0x61, 0x63, 0x63, 0x75,
	0x6d, 0x75, 0x6c, 0x61, 0x74, 0x65, 0x64, 0x50, 0x65, 0x6e, 0x61, 0x6c, 0x74, 0x79, 0x12, 0x14,
	0x0a, 0x05, 0x73, 0x74, 0x61, 0x74, 0x65, 0x18, 0x0d, 0x20, 0x01, 0x28, 0x09, 0x52, 0x05, 0x73,
	0x74, 0x61, 0x74, 0x65, 0x12, 0x18, 0x0a, 0x07, 0x76, 0x65, 0x72, 0x73, 0x69, 0x6f, 0x6e, 0x18,
	0x0e, 0x20, 0x01, 0x28, 0x03, 0x52, 0x07, 0x76, 0x65, 0x72, 0x73, 0x69, 0x6f, 0x6e, 0x12, 0x2a,
	0x0a, 0x11, 0x6f, 0x70, 0x65, 0x6e, 0x5f, 0x74, 0x69, 0x6d, 0x65, 0x73, 0x74, 0x61, 0x6d, 0x70,
	0x5f, 0x75, 0x73, 0x18, 0x0f, 0x20, 0x01, 0x28, 0x03, 0x52, 0x0f, 0x6f, 0x70, 0x65, 0x6e, 0x54,
	0x69, 0x6d, 0x65, 0x73, 0x74, 0x61, 0x6d, 0x70, 0x55, 0x73, 0x22, 0x35, 0x0a, 0x12, 0x47, 0x65,
	0x74, 0x50, 0x6f, 0x73, 0x69, 0x74, 0x69, 0x6f, 0x6e, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74,
	0x12, 0x1f, 0x0a, 0x0b, 0x70, 0x6f, 0x73, 0x69, 0x74, 0x69, 0x6f, 0x6e, 0x5f, 0x69, 0x64, 0x18,
	0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0a, 0x70, 0x6f, 0x73, 0x69, 0x74, 0x69, 0x6f, 0x6e, 0x49,
	0x64, 0x22, 0x74, 0x0a, 0x13, 0x47, 0x65, 0x74, 0x50, 0x6f, 0x73, 0x69, 0x74, 0x69, 0x6f, 0x6e,
	0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x37, 0x0a, 0x08, 0x70, 0x6f, 0x73, 0x69,
	0x74, 0x69, 0x6f, 0x6e, 0x18, 0x01, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x1b, 0x2e, 0x72, 0x61, 0x6e,
	0x67, 0x65, 0x6c, 0x69, 0x71, 0x2e, 0x71, 0x75, 0x65, 0x72, 0x79, 0x2e, 0x76, 0x31, 0x2e, 0x50,
	0x6f, 0x73, 0x69, 0x74, 0x69, 0x6f, 0x6e, 0x52, 0x08, 0x70, 0x6f, 0x73, 0x69, 0x74, 0x69, 0x6f,
	0x6e, 0x12, 0x24, 0x0a, 0x0e, 0x61, 0x73, 0x5f, 0x6f, 0x66, 0x5f, 0x73, 0x65, 0x71, 0x75, 0x65,
	0x6e, 0x63, 0x65, 0x18, 0x02, 0x20, 0x01, 0x28, 0x03, 0x52, 0x0c, 0x61, 0x73, 0x4f, 0x66, 0x53,
	0x65, 0x71, 0x75, 0x65, 0x6e, 0x63, 0x65, 0x22, 0x36, 0x0a, 0x13, 0x49, 0x73, 0x55, 0x6e, 0x64,
	0x65, 0x72, 0x77, 0x61, 0x74, 0x65, 0x72, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x1f,
	0x0a, 0x0b, 0x70, 0x6f, 0x73, 0x69, 0x74, 0x69, 0x6f, 0x6e, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20,
	0x01, 0x28, 0x09, 0x52, 0x0a, 0x70, 0x6f, 0x73, 0x69, 0x74, 0x69, 0x6f, 0x6e, 0x49, 0x64, 0x22,
	0x36, 0x0a, 0x14, 0x49, 0x73, 0x55, 0x6e, 0x64, 0x65, 0x72, 0x77, 0x61, 0x74, 0x65, 0x72, 0x52,
	0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x1e, 0x0a, 0x0a, 0x75, 0x6e, 0x64, 0x65, 0x72,
	0x77, 0x61, 0x74, 0x65, 0x72, 0x18, 0x01, 0x20, 0x01, 0x28, 0x08, 0x52, 0x0a, 0x75, 0x6e, 0x64,
	0x65, 0x72, 0x77, 0x61, 0x74, 0x65, 0x72, 0x22, 0x40, 0x0a, 0x1d, 0x47, 0x65, 0x74, 0x4c, 0x69,
	0x71, 0x75, 0x69, 0x64, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x50, 0x72, 0x6f, 0x67, 0x72, 0x65, 0x73,
	0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x1f, 0x0a, 0x0b, 0x70, 0x6f, 0x73, 0x69,
	0x74, 0x69, 0x6f, 0x6e, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0a, 0x70,
	0x6f, 0x73, 0x69, 0x74, 0x69, 0x6f, 0x6e, 0x49, 0x64, 0x22, 0x9d, 0x03, 0x0a, 0x1e, 0x47, 0x65,
	0x74, 0x4c, 0x69, 0x71, 0x75, 0x69, 0x64, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x50, 0x72, 0x6f, 0x67,
	0x72, 0x65, 0x73, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x1f, 0x0a, 0x0b,
	0x70, 0x6f, 0x73, 0x69, 0x74, 0x69, 0x6f, 0x6e, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28,
	0x09, 0x52, 0x0a, 0x70, 0x6f, 0x73, 0x69, 0x74, 0x69, 0x6f, 0x6e, 0x49, 0x64, 0x12, 0x21, 0x0a,
	0x0c, 0x70, 0x72, 0x6f, 0x67, 0x72, 0x65, 0x73, 0x73, 0x5f, 0x62, 0x70, 0x73, 0x18, 0x02, 0x20,
	0x01, 0x28, 0x03, 0x52, 0x0b, 0x70, 0x72, 0x6f, 0x67, 0x72, 0x65, 0x73, 0x73, 0x42, 0x70, 0x73,
	0x12, 0x25, 0x0a, 0x0e, 0x6c, 0x69, 0x71, 0x75, 0x69, 0x64, 0x61, 0x74, 0x65, 0x64, 0x5f, 0x62,
	0x70, 0x73, 0x18, 0x03, 0x20, 0x01, 0x28, 0x03, 0x52, 0x0d, 0x6c, 0x69, 0x71, 0x75, 0x69, 0x64,
	0x61, 0x74, 0x65, 0x64, 0x42, 0x70, 0x73, 0x12, 0x33, 0x0a, 0x15, 0x63, 0x6f, 0x6c, 0x6c, 0x61,
	0x74, 0x65, 0x72, 0x61, 0x6c, 0x5f, 0x6c, 0x69, 0x71, 0x75, 0x69, 0x64, 0x61, 0x74, 0x65, 0x64,
	0x18, 0x04, 0x20, 0x01, 0x28, 0x03, 0x52, 0x14, 0x63, 0x6f, 0x6c, 0x6c, 0x61, 0x74, 0x65, 0x72,
	0x61, 0x6c, 0x4c, 0x69, 0x71, 0x75, 0x69, 0x64, 0x61, 0x74, 0x65, 0x64, 0x12, 0x31, 0x0a, 0x14,
	0x63, 0x6f, 0x6c, 0x6c, 0x61, 0x74, 0x65, 0x72, 0x61, 0x6c, 0x5f, 0x72, 0x65, 0x6d, 0x61, 0x69,
	0x6e, 0x69, 0x6e, 0x67, 0x18, 0x05, 0x20, 0x01, 0x28, 0x03, 0x52, 0x13, 0x63, 0x6f, 0x6c, 0x6c,
	0x61, 0x74, 0x65, 0x72, 0x61, 0x6c, 0x52, 0x65, 0x6d, 0x61, 0x69, 0x6e, 0x69, 0x6e, 0x67, 0x12,
	0x1f, 0x0a, 0x0b, 0x64, 0x65, 0x62, 0x74, 0x5f, 0x72, 0x65, 0x70, 0x61, 0x69, 0x64, 0x18, 0x06,
	0x20, 0x01, 0x28, 0x03, 0x52, 0x0a, 0x64, 0x65, 0x62, 0x74, 0x52, 0x65, 0x70, 0x61, 0x69, 0x64,
	0x12, 0x25, 0x0a, 0x0e, 0x64, 0x65, 0x62, 0x74, 0x5f, 0x72, 0x65, 0x6d, 0x61, 0x69, 0x6e, 0x69,
	0x6e, 0x67, 0x18, 0x07, 0x20, 0x01, 0x28, 0x03, 0x52, 0x0d, 0x64, 0x65, 0x62, 0x74, 0x52, 0x65,
	0x6d, 0x61, 0x69, 0x6e, 0x69, 0x6e, 0x67, 0x12, 0x21, 0x0a, 0x0c, 0x63, 0x75, 0x72, 0x72, 0x65,
	0x6e, 0x74, 0x5f, 0x74, 0x69, 0x63, 0x6b, 0x18, 0x08, 0x20, 0x01, 0x28, 0x03, 0x52, 0x0b, 0x63,
	0x75, 0x72, 0x72, 0x65, 0x6e, 0x74, 0x54, 0x69, 0x63, 0x6b, 0x12, 0x17, 0x0a, 0x07, 0x69, 0x6e,
	0x5f, 0x62, 0x61, 0x6e, 0x64, 0x18, 0x09, 0x20, 0x01, 0x28, 0x08, 0x52, 0x06, 0x69, 0x6e, 0x42,
	0x61, 0x6e, 0x64, 0x12, 0x24, 0x0a, 0x0e, 0x61, 0x73, 0x5f, 0x6f, 0x66, 0x5f, 0x73, 0x65, 0x71,
	0x75, 0x65, 0x6e, 0x63, 0x65, 0x18, 0x0a, 0x20, 0x01, 0x28, 0x03, 0x52, 0x0c, 0x61, 0x73, 0x4f,
	0x66, 0x53, 0x65, 0x71, 0x75, 0x65, 0x6e, 0x63, 0x65, 0x22, 0x3c, 0x0a, 0x15, 0x47, 0x65, 0x74,
	0x50, 0x65, 0x6e, 0x61, 0x6c, 0x74, 0x79, 0x52, 0x61, 0x74, 0x65, 0x52, 0x65, 0x71, 0x75, 0x65,
	0x73, 0x74, 0x12, 0x23, 0x0a, 0x0d, 0x74, 0x68, 0x72, 0x65, 0x73, 0x68, 0x6f, 0x6c, 0x64, 0x5f,
	0x62, 0x70, 0x73, 0x18, 0x01, 0x20, 0x01, 0x28, 0x03, 0x52, 0x0c, 0x74, 0x68, 0x72, 0x65, 0x73,
	0x68, 0x6f, 0x6c, 0x64, 0x42, 0x70, 0x73, 0x22, 0x67, 0x0a, 0x16, 0x47, 0x65, 0x74, 0x50, 0x65,
	0x6e, 0x61, 0x6c, 0x74, 0x79, 0x52, 0x61, 0x74, 0x65, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73,
	0x65, 0x12, 0x23, 0x0a, 0x0d, 0x74, 0x68, 0x72, 0x65, 0x73, 0x68, 0x6f, 0x6c, 0x64, 0x5f, 0x62,
	0x70, 0x73, 0x18, 0x01, 0x20, 0x01, 0x28, 0x03, 0x52, 0x0c, 0x74, 0x68, 0x72, 0x65, 0x73, 0x68,
	0x6f, 0x6c, 0x64, 0x42, 0x70, 0x73, 0x12, 0x28, 0x0a, 0x10, 0x70, 0x65, 0x6e, 0x61, 0x6c, 0x74,
	0x79, 0x5f, 0x72, 0x61, 0x74, 0x65, 0x5f, 0x62, 0x70, 0x73, 0x18, 0x02, 0x20, 0x01, 0x28, 0x03,
	0x52, 0x0e, 0x70, 0x65, 0x6e, 0x61, 0x6c, 0x74, 0x79, 0x52, 0x61, 0x74, 0x65, 0x42, 0x70, 0x73,
	0x22, 0x1f, 0x0a, 0x1d, 0x47, 0x65, 0x74, 0x41, 0x63, 0x74, 0x69, 0x76, 0x65, 0x50, 0x6f, 0x73,
	0x69, 0x74, 0x69, 0x6f, 0x6e, 0x43, 0x6f, 0x75, 0x6e, 0x74, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73,
	0x74, 0x22, 0x36, 0x0a, 0x1e, 0x47, 0x65, 0x74, 0x41, 0x63, 0x74, 0x69, 0x76, 0x65, 0x50, 0x6f,
	0x73, 0x69, 0x74, 0x69, 0x6f, 0x6e, 0x43, 0x6f, 0x75, 0x6e, 0x74, 0x52, 0x65, 0x73, 0x70, 0x6f,
	0x6e, 0x73, 0x65, 0x12, 0x14, 0x0a, 0x05, 0x63, 0x6f, 0x75, 0x6e, 0x74, 0x18, 0x01, 0x20, 0x01,
	0x28, 0x03, 0x52, 0x05, 0x63, 0x6f, 0x75, 0x6e, 0x74, 0x22, 0xec, 0x02, 0x0a, 0x0f, 0x4c, 0x69,
	0x71, 0x75, 0x69, 0x64, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x53, 0x74, 0x65, 0x70, 0x12, 0x1a, 0x0a,
	0x08, 0x73, 0x65, 0x71, 0x75, 0x65, 0x6e, 0x63, 0x65, 0x18, 0x01, 0x20, 0x01, 0x28, 0x03, 0x52,
	0x08, 0x73, 0x65, 0x71, 0x75, 0x65, 0x6e, 0x63, 0x65, 0x12, 0x1f, 0x0a, 0x0b, 0x70, 0x6f, 0x73,
	0x69, 0x74, 0x69, 0x6f, 0x6e, 0x5f, 0x69, 0x64, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0a,
	0x70, 0x6f, 0x73, 0x69, 0x74, 0x69, 0x6f, 0x6e, 0x49, 0x64, 0x12, 0x16, 0x0a, 0x06, 0x6d, 0x61,
	0x72, 0x6b, 0x65, 0x74, 0x18, 0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x06, 0x6d, 0x61, 0x72, 0x6b,
	0x65, 0x74, 0x12, 0x12, 0x0a, 0x04, 0x74, 0x69, 0x63, 0x6b, 0x18, 0x04, 0x20, 0x01, 0x28, 0x03,
	0x52, 0x04, 0x74, 0x69, 0x63, 0x6b, 0x12, 0x33, 0x0a, 0x15, 0x63, 0x6f, 0x6c, 0x6c, 0x61, 0x74,
	0x65, 0x72, 0x61, 0x6c, 0x5f, 0x6c, 0x69, 0x71, 0x75, 0x69, 0x64, 0x61, 0x74, 0x65, 0x64, 0x18,
	0x05, 0x20, 0x01, 0x28, 0x03, 0x52, 0x14, 0x63, 0x6f, 0x6c, 0x6c, 0x61, 0x74, 0x65, 0x72, 0x61,
	0x6c, 0x4c, 0x69, 0x71, 0x75, 0x69, 0x64, 0x61, 0x74, 0x65, 0x64, 0x12, 0x1f, 0x0a, 0x0b, 0x64,
	0x65, 0x62, 0x74, 0x5f, 0x72, 0x65, 0x70, 0x61, 0x69, 0x64, 0x18, 0x06, 0x20, 0x01, 0x28, 0x03,
	0x52, 0x0a, 0x64, 0x65, 0x62, 0x74, 0x52, 0x65, 0x70, 0x61, 0x69, 0x64, 0x12, 0x22, 0x0a, 0x0d,
	0x70, 0x65, 0x6e, 0x61, 0x6c, 0x74, 0x79, 0x5f, 0x74, 0x6f, 0x5f, 0x6c, 0x70, 0x18, 0x07, 0x20,
	0x01, 0x28, 0x03, 0x52, 0x0b, 0x70, 0x65, 0x6e, 0x61, 0x6c, 0x74, 0x79, 0x54, 0x6f, 0x4c, 0x70,
	0x12, 0x28, 0x0a, 0x10, 0x70, 0x65, 0x6e, 0x61, 0x6c, 0x74, 0x79, 0x5f, 0x74, 0x6f, 0x5f, 0x74,
	0x61, 0x6b, 0x65, 0x72, 0x18, 0x08, 0x20, 0x01, 0x28, 0x03, 0x52, 0x0e, 0x70, 0x65, 0x6e, 0x61,
	0x6c, 0x74, 0x79, 0x54, 0x6f, 0x54, 0x61, 0x6b, 0x65, 0x72, 0x12, 0x29, 0x0a, 0x10, 0x66, 0x75,
	0x6c, 0x6c, 0x79, 0x5f, 0x6c, 0x69, 0x71, 0x75, 0x69, 0x64, 0x61, 0x74, 0x65, 0x64, 0x18, 0x09,
	0x20, 0x01, 0x28, 0x08, 0x52, 0x0f, 0x66, 0x75, 0x6c, 0x6c, 0x79, 0x4c, 0x69, 0x71, 0x75, 0x69,
	0x64, 0x61, 0x74, 0x65, 0x64, 0x12, 0x21, 0x0a, 0x0c, 0x74, 0x69, 0x6d, 0x65, 0x73, 0x74, 0x61,
	0x6d, 0x70, 0x5f, 0x75, 0x73, 0x18, 0x0a, 0x20, 0x01, 0x28, 0x03, 0x52, 0x0b, 0x74, 0x69, 0x6d,
	0x65, 0x73, 0x74, 0x61, 0x6d, 0x70, 0x55, 0x73, 0x22, 0x86, 0x01, 0x0a, 0x1d, 0x4c, 0x69, 0x73,
	0x74, 0x4c, 0x69, 0x71, 0x75, 0x69, 0x64, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x48, 0x69, 0x73, 0x74,
	0x6f, 0x72, 0x79, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x1f, 0x0a, 0x0b, 0x70, 0x6f,
	0x73, 0x69, 0x74, 0x69, 0x6f, 0x6e, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52,
	0x0a, 0x70, 0x6f, 0x73, 0x69, 0x74, 0x69, 0x6f, 0x6e, 0x49, 0x64, 0x12, 0x1b, 0x0a, 0x09, 0x70,
	0x61, 0x67, 0x65, 0x5f, 0x73, 0x69, 0x7a, 0x65, 0x18, 0x02, 0x20, 0x01, 0x28, 0x05, 0x52, 0x08,
	0x70, 0x61, 0x67, 0x65, 0x53, 0x69, 0x7a, 0x65, 0x12, 0x27, 0x0a, 0x0f, 0x62, 0x65, 0x66, 0x6f,
	0x72, 0x65, 0x5f, 0x73, 0x65, 0x71, 0x75, 0x65, 0x6e, 0x63, 0x65, 0x18, 0x03, 0x20, 0x01, 0x28,
	0x03, 0x52, 0x0e, 0x62, 0x65, 0x66, 0x6f, 0x72, 0x65, 0x53, 0x65, 0x71, 0x75, 0x65, 0x6e, 0x63,
	0x65, 0x22, 0x80, 0x01, 0x0a, 0x1e, 0x4c, 0x69, 0x73, 0x74, 0x4c, 0x69, 0x71, 0x75, 0x69, 0x64,
	0x61, 0x74, 0x69, 0x6f, 0x6e, 0x48, 0x69, 0x73, 0x74, 0x6f, 0x72, 0x79, 0x52, 0x65, 0x73, 0x70,
	0x6f, 0x6e, 0x73, 0x65, 0x12, 0x38, 0x0a, 0x05, 0x73, 0x74, 0x65, 0x70, 0x73, 0x18, 0x01, 0x20,
	0x03, 0x28, 0x0b, 0x32, 0x22, 0x2e, 0x72, 0x61, 0x6e, 0x67, 0x65, 0x6c, 0x69, 0x71, 0x2e, 0x71,
	0x75, 0x65, 0x72, 0x79, 0x2e, 0x76, 0x31, 0x2e, 0x4c, 0x69, 0x71, 0x75, 0x69, 0x64, 0x61, 0x74,
	0x69, 0x6f, 0x6e, 0x53, 0x74, 0x65, 0x70, 0x52, 0x05, 0x73, 0x74, 0x65, 0x70, 0x73, 0x12, 0x24,
	0x0a, 0x0e, 0x61, 0x73, 0x5f, 0x6f, 0x66, 0x5f, 0x73, 0x65, 0x71, 0x75, 0x65, 0x6e, 0x63, 0x65,
	0x18, 0x02, 0x20, 0x01, 0x28, 0x03, 0x52, 0x0c, 0x61, 0x73, 0x4f, 0x66, 0x53, 0x65, 0x71, 0x75,
	0x65, 0x6e, 0x63, 0x65, 0x22, 0x2e, 0x0a, 0x16, 0x47, 0x65, 0x74, 0x50, 0x6f, 0x6f, 0x6c, 0x42,
	0x61, 0x6c, 0x61, 0x6e, 0x63, 0x65, 0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x14,
	0x0a, 0x05, 0x61, 0x73, 0x73, 0x65, 0x74, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x05, 0x61,
	0x73, 0x73, 0x65, 0x74, 0x22, 0xf2, 0x01, 0x0a, 0x17, 0x47, 0x65, 0x74, 0x50, 0x6f, 0x6f, 0x6c,
	0x42, 0x61, 0x6c, 0x61, 0x6e, 0x63, 0x65, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65,
	0x12, 0x14, 0x0a, 0x05, 0x61, 0x73, 0x73, 0x65, 0x74, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52,
	0x05, 0x61, 0x73, 0x73, 0x65, 0x74, 0x12, 0x26, 0x0a, 0x0f, 0x6c, 0x70, 0x5f, 0x70, 0x6f, 0x6f,
	0x6c, 0x5f, 0x63, 0x72, 0x65, 0x64, 0x69, 0x74, 0x73, 0x18, 0x02, 0x20, 0x01, 0x28, 0x03, 0x52,
	0x0d, 0x6c, 0x70, 0x50, 0x6f, 0x6f, 0x6c, 0x43, 0x72, 0x65, 0x64, 0x69, 0x74, 0x73, 0x12, 0x23,
	0x0a, 0x0d, 0x74, 0x61, 0x6b, 0x65, 0x72, 0x5f, 0x63, 0x72, 0x65, 0x64, 0x69, 0x74, 0x73, 0x18,
	0x03, 0x20, 0x01, 0x28, 0x03, 0x52, 0x0c, 0x74, 0x61, 0x6b, 0x65, 0x72, 0x43, 0x72, 0x65, 0x64,
	0x69, 0x74, 0x73, 0x12, 0x27, 0x0a, 0x0f, 0x70, 0x65, 0x6e, 0x61, 0x6c, 0x74, 0x79, 0x5f, 0x63,
	0x68, 0x61, 0x72, 0x67, 0x65, 0x73, 0x18, 0x04, 0x20, 0x01, 0x28, 0x03, 0x52, 0x0e, 0x70, 0x65,
	0x6e, 0x61, 0x6c, 0x74, 0x79, 0x43, 0x68, 0x61, 0x72, 0x67, 0x65, 0x73, 0x12, 0x25, 0x0a, 0x0e,
	0x74, 0x6f, 0x74, 0x61, 0x6c, 0x5f, 0x72, 0x65, 0x73, 0x65, 0x72, 0x76, 0x65, 0x64, 0x18, 0x05,
	0x20, 0x01, 0x28, 0x03, 0x52, 0x0d, 0x74, 0x6f, 0x74, 0x61, 0x6c, 0x52, 0x65, 0x73, 0x65, 0x72,
	0x76, 0x65, 0x64, 0x12, 0x24, 0x0a, 0x0e, 0x61, 0x73, 0x5f, 0x6f, 0x66, 0x5f, 0x73, 0x65, 0x71,
	0x75, 0x65, 0x6e, 0x63, 0x65, 0x18, 0x06, 0x20, 0x01, 0x28, 0x03, 0x52, 0x0c, 0x61, 0x73, 0x4f,
	0x66, 0x53, 0x65, 0x71, 0x75, 0x65, 0x6e, 0x63, 0x65, 0x22, 0x52, 0x0a, 0x19, 0x47, 0x65, 0x74,
	0x50, 0x6f, 0x73, 0x69, 0x74, 0x69, 0x6f, 0x6e, 0x52, 0x65, 0x73, 0x65, 0x72, 0x76, 0x65, 0x52,
	0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x1f, 0x0a, 0x0b, 0x70, 0x6f, 0x73, 0x69, 0x74, 0x69,
	0x6f, 0x6e, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0a, 0x70, 0x6f, 0x73,
	0x69, 0x74, 0x69, 0x6f, 0x6e, 0x49, 0x64, 0x12, 0x14, 0x0a, 0x05, 0x61, 0x73, 0x73, 0x65, 0x74,
	0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x05, 0x61, 0x73, 0x73, 0x65, 0x74, 0x22, 0x93, 0x01,
	0x0a, 0x1a, 0x47, 0x65, 0x74, 0x50, 0x6f, 0x73, 0x69, 0x74, 0x69, 0x6f, 0x6e, 0x52, 0x65, 0x73,
	0x65, 0x72, 0x76, 0x65, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x1f, 0x0a, 0x0b,
	0x70, 0x6f, 0x73, 0x69, 0x74, 0x69, 0x6f, 0x6e, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28,
	0x09, 0x52, 0x0a, 0x70, 0x6f, 0x73, 0x69, 0x74, 0x69, 0x6f, 0x6e, 0x49, 0x64, 0x12, 0x14, 0x0a,
	0x05, 0x61, 0x73, 0x73, 0x65, 0x74, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x05, 0x61, 0x73,
	0x73, 0x65, 0x74, 0x12, 0x18, 0x0a, 0x07, 0x72, 0x65, 0x73, 0x65, 0x72, 0x76, 0x65, 0x18, 0x03,
	0x20, 0x01, 0x28, 0x03, 0x52, 0x07, 0x72, 0x65, 0x73, 0x65, 0x72, 0x76, 0x65, 0x12, 0x24, 0x0a,
	0x0e, 0x61, 0x73, 0x5f, 0x6f, 0x66, 0x5f, 0x73, 0x65, 0x71, 0x75, 0x65, 0x6e, 0x63, 0x65, 0x18,
	0x04, 0x20, 0x01, 0x28, 0x03, 0x52, 0x0c, 0x61, 0x73, 0x4f, 0x66, 0x53, 0x65, 0x71, 0x75, 0x65,
	0x6e, 0x63, 0x65, 0x22, 0xd2, 0x02, 0x0a, 0x0d, 0x4a, 0x6f, 0x75, 0x72, 0x6e, 0x61, 0x6c, 0x52,
	0x65, 0x63, 0x6f, 0x72, 0x64, 0x12, 0x1d, 0x0a, 0x0a, 0x6a, 0x6f, 0x75, 0x72, 0x6e, 0x61, 0x6c,
	0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x09, 0x6a, 0x6f, 0x75, 0x72, 0x6e,
	0x61, 0x6c, 0x49, 0x64, 0x12, 0x19, 0x0a, 0x08, 0x62, 0x61, 0x74, 0x63, 0x68, 0x5f, 0x69, 0x64,
	0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x07, 0x62, 0x61, 0x74, 0x63, 0x68, 0x49, 0x64, 0x12,
	0x1b, 0x0a, 0x09, 0x65, 0x76, 0x65, 0x6e, 0x74, 0x5f, 0x72, 0x65, 0x66, 0x18, 0x03, 0x20, 0x01,
	0x28, 0x09, 0x52, 0x08, 0x65, 0x76, 0x65, 0x6e, 0x74, 0x52, 0x65, 0x66, 0x12, 0x25, 0x0a, 0x0e,
	0x65, 0x76, 0x65, 0x6e, 0x74, 0x5f, 0x73, 0x65, 0x71, 0x75, 0x65, 0x6e, 0x63, 0x65, 0x18, 0x04,
	0x20, 0x01, 0x28, 0x03, 0x52, 0x0d, 0x65, 0x76, 0x65, 0x6e, 0x74, 0x53, 0x65, 0x71, 0x75, 0x65,
	0x6e, 0x63, 0x65, 0x12, 0x23, 0x0a, 0x0d, 0x64, 0x65, 0x62, 0x69, 0x74, 0x5f, 0x61, 0x63, 0x63,
	0x6f, 0x75, 0x6e, 0x74, 0x18, 0x05, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0c, 0x64, 0x65, 0x62, 0x69,
	0x74, 0x41, 0x63, 0x63, 0x6f, 0x75, 0x6e, 0x74, 0x12, 0x25, 0x0a, 0x0e, 0x63, 0x72, 0x65, 0x64,
	0x69, 0x74, 0x5f, 0x61, 0x63, 0x63, 0x6f, 0x75, 0x6e, 0x74, 0x18, 0x06, 0x20, 0x01, 0x28, 0x09,
	0x52, 0x0d, 0x63, 0x72, 0x65, 0x64, 0x69, 0x74, 0x41, 0x63, 0x63, 0x6f, 0x75, 0x6e, 0x74, 0x12,
	0x19, 0x0a, 0x08, 0x61, 0x73, 0x73, 0x65, 0x74, 0x5f, 0x69, 0x64, 0x18, 0x07, 0x20, 0x01, 0x28,
	0x0d, 0x52, 0x07, 0x61, 0x73, 0x73, 0x65, 0x74, 0x49, 0x64, 0x12, 0x16, 0x0a, 0x06, 0x61, 0x6d,
	0x6f, 0x75, 0x6e, 0x74, 0x18, 0x08, 0x20, 0x01, 0x28, 0x03, 0x52, 0x06, 0x61, 0x6d, 0x6f, 0x75,
	0x6e, 0x74, 0x12, 0x21, 0x0a, 0x0c, 0x6a, 0x6f, 0x75, 0x72, 0x6e, 0x61, 0x6c, 0x5f, 0x74, 0x79,
	0x70, 0x65, 0x18, 0x09, 0x20, 0x01, 0x28, 0x05, 0x52, 0x0b, 0x6a, 0x6f, 0x75, 0x72, 0x6e, 0x61,
	0x6c, 0x54, 0x79, 0x70, 0x65, 0x12, 0x21, 0x0a, 0x0c, 0x74, 0x69, 0x6d, 0x65, 0x73, 0x74, 0x61,
	0x6d, 0x70, 0x5f, 0x75, 0x73, 0x18, 0x0a, 0x20, 0x01, 0x28, 0x03, 0x52, 0x0b, 0x74, 0x69, 0x6d,
	0x65, 0x73, 0x74, 0x61, 0x6d, 0x70, 0x55, 0x73, 0x22, 0x7c, 0x0a, 0x13, 0x4c, 0x69, 0x73, 0x74,
	0x4a, 0x6f, 0x75, 0x72, 0x6e, 0x61, 0x6c, 0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12,
	0x1f, 0x0a, 0x0b, 0x70, 0x6f, 0x73, 0x69, 0x74, 0x69, 0x6f, 0x6e, 0x5f, 0x69, 0x64, 0x18, 0x01,
	0x20, 0x01, 0x28, 0x09, 0x52, 0x0a, 0x70, 0x6f, 0x73, 0x69, 0x74, 0x69, 0x6f, 0x6e, 0x49, 0x64,
	0x12, 0x1b, 0x0a, 0x09, 0x70, 0x61, 0x67, 0x65, 0x5f, 0x73, 0x69, 0x7a, 0x65, 0x18, 0x02, 0x20,
	0x01, 0x28, 0x05, 0x52, 0x08, 0x70, 0x61, 0x67, 0x65, 0x53, 0x69, 0x7a, 0x65, 0x12, 0x27, 0x0a,
	0x0f, 0x62, 0x65, 0x66, 0x6f, 0x72, 0x65, 0x5f, 0x73, 0x65, 0x71, 0x75, 0x65, 0x6e, 0x63, 0x65,
	0x18, 0x03, 0x20, 0x01, 0x28, 0x03, 0x52, 0x0e, 0x62, 0x65, 0x66, 0x6f, 0x72, 0x65, 0x53, 0x65,
	0x71, 0x75, 0x65, 0x6e, 0x63, 0x65, 0x22, 0x54, 0x0a, 0x14, 0x4c, 0x69, 0x73, 0x74, 0x4a, 0x6f,
	0x75, 0x72, 0x6e, 0x61, 0x6c, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x3c,
	0x0a, 0x08, 0x6a, 0x6f, 0x75, 0x72, 0x6e, 0x61, 0x6c, 0x73, 0x18, 0x01, 0x20, 0x03, 0x28, 0x0b,
	0x32, 0x20, 0x2e, 0x72, 0x61, 0x6e, 0x67, 0x65, 0x6c, 0x69, 0x71, 0x2e, 0x71, 0x75, 0x65, 0x72,
	0x79, 0x2e, 0x76, 0x31, 0x2e, 0x4a, 0x6f, 0x75, 0x72, 0x6e, 0x61, 0x6c, 0x52, 0x65, 0x63, 0x6f,
	0x72, 0x64, 0x52, 0x08, 0x6a, 0x6f, 0x75, 0x72, 0x6e, 0x61, 0x6c, 0x73, 0x32, 0xc1, 0x0a, 0x0a,
	0x0c, 0x51, 0x75, 0x65, 0x72, 0x79, 0x53, 0x65, 0x72, 0x76, 0x69, 0x63, 0x65, 0x12, 0x81, 0x01,
	0x0a, 0x0b, 0x47, 0x65, 0x74, 0x50, 0x6f, 0x73, 0x69, 0x74, 0x69, 0x6f, 0x6e, 0x12, 0x25, 0x2e,
	0x72, 0x61, 0x6e, 0x67, 0x65, 0x6c, 0x69, 0x71, 0x2e, 0x71, 0x75, 0x65, 0x72, 0x79, 0x2e, 0x76,
	0x31, 0x2e, 0x47, 0x65, 0x74, 0x50, 0x6f, 0x73, 0x69, 0x74, 0x69, 0x6f, 0x6e, 0x52, 0x65, 0x71,
	0x75, 0x65, 0x73, 0x74, 0x1a, 0x26, 0x2e, 0x72, 0x61, 0x6e, 0x67, 0x65, 0x6c, 0x69, 0x71, 0x2e,
	0x71, 0x75, 0x65, 0x72, 0x79, 0x2e, 0x76, 0x31, 0x2e, 0x47, 0x65, 0x74, 0x50, 0x6f, 0x73, 0x69,
	0x74, 0x69, 0x6f, 0x6e, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x22, 0x23, 0x82, 0xd3,
	0xe4, 0x93, 0x02, 0x1d, 0x12, 0x1b, 0x2f, 0x76, 0x31, 0x2f, 0x70, 0x6f, 0x73, 0x69, 0x74, 0x69,
	0x6f, 0x6e, 0x73, 0x2f, 0x7b, 0x70, 0x6f, 0x73, 0x69, 0x74, 0x69, 0x6f, 0x6e, 0x5f, 0x69, 0x64,
	0x7d, 0x12, 0x8f, 0x01, 0x0a, 0x0c, 0x49, 0x73, 0x55, 0x6e, 0x64, 0x65, 0x72, 0x77, 0x61, 0x74,
	0x65, 0x72, 0x12, 0x26, 0x2e, 0x72, 0x61, 0x6e, 0x67, 0x65, 0x6c, 0x69, 0x71, 0x2e, 0x71, 0x75,
	0x65, 0x72, 0x79, 0x2e, 0x76, 0x31, 0x2e, 0x49, 0x73, 0x55, 0x6e, 0x64, 0x65, 0x72, 0x77, 0x61,
	0x74, 0x65, 0x72, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x27, 0x2e, 0x72, 0x61, 0x6e,
	0x67, 0x65, 0x6c, 0x69, 0x71, 0x2e, 0x71, 0x75, 0x65, 0x72, 0x79, 0x2e, 0x76, 0x31, 0x2e, 0x49,
	0x73, 0x55, 0x6e, 0x64, 0x65, 0x72, 0x77, 0x61, 0x74, 0x65, 0x72, 0x52, 0x65, 0x73, 0x70, 0x6f,
	0x6e, 0x73, 0x65, 0x22, 0x2e, 0x82, 0xd3, 0xe4, 0x93, 0x02, 0x28, 0x12, 0x26, 0x2f, 0x76, 0x31,
	0x2f, 0x70, 0x6f, 0x73, 0x69, 0x74, 0x69, 0x6f, 0x6e, 0x73, 0x2f, 0x7b, 0x70, 0x6f, 0x73, 0x69,
	0x74, 0x69, 0x6f, 0x6e, 0x5f, 0x69, 0x64, 0x7d, 0x2f, 0x75, 0x6e, 0x64, 0x65, 0x72, 0x77, 0x61,
	0x74, 0x65, 0x72, 0x12, 0xab, 0x01, 0x0a, 0x16, 0x47, 0x65, 0x74, 0x4c, 0x69, 0x71, 0x75, 0x69,
	0x64, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x50, 0x72, 0x6f, 0x67, 0x72, 0x65, 0x73, 0x73, 0x12, 0x30,
	0x2e, 0x72, 0x61, 0x6e, 0x67, 0x65, 0x6c, 0x69, 0x71, 0x2e, 0x71, 0x75, 0x65, 0x72, 0x79, 0x2e,
	0x76, 0x31, 0x2e, 0x47, 0x65, 0x74, 0x4c, 0x69, 0x71, 0x75, 0x69, 0x64, 0x61, 0x74, 0x69, 0x6f,
	0x6e, 0x50, 0x72, 0x6f, 0x67, 0x72, 0x65, 0x73, 0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74,
	0x1a, 0x31, 0x2e, 0x72, 0x61, 0x6e, 0x67, 0x65, 0x6c, 0x69, 0x71, 0x2e, 0x71, 0x75, 0x65, 0x72,
	0x79, 0x2e, 0x76, 0x31, 0x2e, 0x47, 0x65, 0x74, 0x4c, 0x69, 0x71, 0x75, 0x69, 0x64, 0x61, 0x74,
	0x69, 0x6f, 0x6e, 0x50, 0x72, 0x6f, 0x67, 0x72, 0x65, 0x73, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f,
	0x6e, 0x73, 0x65, 0x22, 0x2c, 0x82, 0xd3, 0xe4, 0x93, 0x02, 0x26, 0x12, 0x24, 0x2f, 0x76, 0x31,
	0x2f, 0x70, 0x6f, 0x73, 0x69, 0x74, 0x69, 0x6f, 0x6e, 0x73, 0x2f, 0x7b, 0x70, 0x6f, 0x73, 0x69,
	0x74, 0x69, 0x6f, 0x6e, 0x5f, 0x69, 0x64, 0x7d, 0x2f, 0x70, 0x72, 0x6f, 0x67, 0x72, 0x65, 0x73,
	0x73, 0x12, 0x7f, 0x0a, 0x0e, 0x47, 0x65, 0x74, 0x50, 0x65, 0x6e, 0x61, 0x6c, 0x74, 0x79, 0x52,
	0x61, 0x74, 0x65, 0x12, 0x28, 0x2e, 0x72, 0x61, 0x6e, 0x67, 0x65, 0x6c, 0x69, 0x71, 0x2e, 0x71,
	0x75, 0x65, 0x72, 0x79, 0x2e, 0x76, 0x31, 0x2e, 0x47, 0x65, 0x74, 0x50, 0x65, 0x6e, 0x61, 0x6c,
	0x74, 0x79, 0x52, 0x61, 0x74, 0x65, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x29, 0x2e,
	0x72, 0x61, 0x6e, 0x67, 0x65, 0x6c, 0x69, 0x71, 0x2e, 0x71, 0x75, 0x65, 0x72, 0x79, 0x2e, 0x76,
	0x31, 0x2e, 0x47, 0x65, 0x74, 0x50, 0x65, 0x6e, 0x61, 0x6c, 0x74, 0x79, 0x52, 0x61, 0x74, 0x65,
	0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x22, 0x18, 0x82, 0xd3, 0xe4, 0x93, 0x02, 0x12,
	0x12, 0x10, 0x2f, 0x76, 0x31, 0x2f, 0x70, 0x65, 0x6e, 0x61, 0x6c, 0x74, 0x79, 0x2d, 0x72, 0x61,
	0x74, 0x65, 0x12, 0x9a, 0x01, 0x0a, 0x16, 0x47, 0x65, 0x74, 0x41, 0x63, 0x74, 0x69, 0x76, 0x65,
	0x50, 0x6f, 0x73, 0x69, 0x74, 0x69, 0x6f, 0x6e, 0x43, 0x6f, 0x75, 0x6e, 0x74, 0x12, 0x30, 0x2e,
	0x72, 0x61, 0x6e, 0x67, 0x65, 0x6c, 0x69, 0x71, 0x2e, 0x71, 0x75, 0x65, 0x72, 0x79, 0x2e, 0x76,
	0x31, 0x2e, 0x47, 0x65, 0x74, 0x41, 0x63, 0x74, 0x69, 0x76, 0x65, 0x50, 0x6f, 0x73, 0x69, 0x74,
	0x69, 0x6f, 0x6e, 0x43, 0x6f, 0x75, 0x6e, 0x74, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a,
	0x31, 0x2e, 0x72, 0x61, 0x6e, 0x67, 0x65, 0x6c, 0x69, 0x71, 0x2e, 0x71, 0x75, 0x65, 0x72, 0x79,
	0x2e, 0x76, 0x31, 0x2e, 0x47, 0x65, 0x74, 0x41, 0x63, 0x74, 0x69, 0x76, 0x65, 0x50, 0x6f, 0x73,
	0x69, 0x74, 0x69, 0x6f, 0x6e, 0x43, 0x6f, 0x75, 0x6e, 0x74, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e,
	0x73, 0x65, 0x22, 0x1b, 0x82, 0xd3, 0xe4, 0x93, 0x02, 0x15, 0x12, 0x13, 0x2f, 0x76, 0x31, 0x2f,
	0x70, 0x6f, 0x73, 0x69, 0x74, 0x69, 0x6f, 0x6e, 0x73, 0x3a, 0x63, 0x6f, 0x75, 0x6e, 0x74, 0x12,
	0x97, 0x01, 0x0a, 0x16, 0x4c, 0x69, 0x73, 0x74, 0x4c, 0x69, 0x71, 0x75, 0x69, 0x64, 0x61, 0x74,
	0x69, 0x6f, 0x6e, 0x48, 0x69, 0x73, 0x74, 0x6f, 0x72, 0x79, 0x12, 0x30, 0x2e, 0x72, 0x61, 0x6e,
	0x67, 0x65, 0x6c, 0x69, 0x71, 0x2e, 0x71, 0x75, 0x65, 0x72, 0x79, 0x2e, 0x76, 0x31, 0x2e, 0x4c,
	0x69, 0x73, 0x74, 0x4c, 0x69, 0x71, 0x75, 0x69, 0x64, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x48, 0x69,
	0x73, 0x74, 0x6f, 0x72, 0x79, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x31, 0x2e, 0x72,
	0x61, 0x6e, 0x67, 0x65, 0x6c, 0x69, 0x71, 0x2e, 0x71, 0x75, 0x65, 0x72, 0x79, 0x2e, 0x76, 0x31,
	0x2e, 0x4c, 0x69, 0x73, 0x74, 0x4c, 0x69, 0x71, 0x75, 0x69, 0x64, 0x61, 0x74, 0x69, 0x6f, 0x6e,
	0x48, 0x69, 0x73, 0x74, 0x6f, 0x72, 0x79, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x22,
	0x18, 0x82, 0xd3, 0xe4, 0x93, 0x02, 0x12, 0x12, 0x10, 0x2f, 0x76, 0x31, 0x2f, 0x6c, 0x69, 0x71,
	0x75, 0x69, 0x64, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x73, 0x12, 0x83, 0x01, 0x0a, 0x0f, 0x47, 0x65,
	0x74, 0x50, 0x6f, 0x6f, 0x6c, 0x42, 0x61, 0x6c, 0x61, 0x6e, 0x63, 0x65, 0x73, 0x12, 0x29, 0x2e,
	0x72, 0x61, 0x6e, 0x67, 0x65, 0x6c, 0x69, 0x71, 0x2e, 0x71, 0x75, 0x65, 0x72, 0x79, 0x2e, 0x76,
	0x31, 0x2e, 0x47, 0x65, 0x74, 0x50, 0x6f, 0x6f, 0x6c, 0x42, 0x61, 0x6c, 0x61, 0x6e, 0x63, 0x65,
	0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x2a, 0x2e, 0x72, 0x61, 0x6e, 0x67, 0x65,
	0x6c, 0x69, 0x71, 0x2e, 0x71, 0x75, 0x65, 0x72, 0x79, 0x2e, 0x76, 0x31, 0x2e, 0x47, 0x65, 0x74,
	0x50, 0x6f, 0x6f, 0x6c, 0x42, 0x61, 0x6c, 0x61, 0x6e, 0x63, 0x65, 0x73, 0x52, 0x65, 0x73, 0x70,
	0x6f, 0x6e, 0x73, 0x65, 0x22, 0x19, 0x82, 0xd3, 0xe4, 0x93, 0x02, 0x13, 0x12, 0x11, 0x2f, 0x76,
	0x31, 0x2f, 0x70, 0x6f, 0x6f, 0x6c, 0x73, 0x2f, 0x7b, 0x61, 0x73, 0x73, 0x65, 0x74, 0x7d, 0x12,
	0x9e, 0x01, 0x0a, 0x12, 0x47, 0x65, 0x74, 0x50, 0x6f, 0x73, 0x69, 0x74, 0x69, 0x6f, 0x6e, 0x52,
	0x65, 0x73, 0x65, 0x72, 0x76, 0x65, 0x12, 0x2c, 0x2e, 0x72, 0x61, 0x6e, 0x67, 0x65, 0x6c, 0x69,
	0x71, 0x2e, 0x71, 0x75, 0x65, 0x72, 0x79, 0x2e, 0x76, 0x31, 0x2e, 0x47, 0x65, 0x74, 0x50, 0x6f,
	0x73, 0x69, 0x74, 0x69, 0x6f, 0x6e, 0x52, 0x65, 0x73, 0x65, 0x72, 0x76, 0x65, 0x52, 0x65, 0x71,
	0x75, 0x65, 0x73, 0x74, 0x1a, 0x2d, 0x2e, 0x72, 0x61, 0x6e, 0x67, 0x65, 0x6c, 0x69, 0x71, 0x2e,
	0x71, 0x75, 0x65, 0x72, 0x79, 0x2e, 0x76, 0x31, 0x2e, 0x47, 0x65, 0x74, 0x50, 0x6f, 0x73, 0x69,
	0x74, 0x69, 0x6f, 0x6e, 0x52, 0x65, 0x73, 0x65, 0x72, 0x76, 0x65, 0x52, 0x65, 0x73, 0x70, 0x6f,
	0x6e, 0x73, 0x65, 0x22, 0x2b, 0x82, 0xd3, 0xe4, 0x93, 0x02, 0x25, 0x12, 0x23, 0x2f, 0x76, 0x31,
	0x2f, 0x70, 0x6f, 0x73, 0x69, 0x74, 0x69, 0x6f, 0x6e, 0x73, 0x2f, 0x7b, 0x70, 0x6f, 0x73, 0x69,
	0x74, 0x69, 0x6f, 0x6e, 0x5f, 0x69, 0x64, 0x7d, 0x2f, 0x72, 0x65, 0x73, 0x65, 0x72, 0x76, 0x65,
	0x12, 0x8d, 0x01, 0x0a, 0x0c, 0x4c, 0x69, 0x73, 0x74, 0x4a, 0x6f, 0x75, 0x72, 0x6e, 0x61, 0x6c,
	0x73, 0x12, 0x26, 0x2e, 0x72, 0x61, 0x6e, 0x67, 0x65, 0x6c, 0x69, 0x71, 0x2e, 0x71, 0x75, 0x65,
	0x72, 0x79, 0x2e, 0x76, 0x31, 0x2e, 0x4c, 0x69, 0x73, 0x74, 0x4a, 0x6f, 0x75, 0x72, 0x6e, 0x61,
	0x6c, 0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x27, 0x2e, 0x72, 0x61, 0x6e, 0x67,
	0x65, 0x6c, 0x69, 0x71, 0x2e, 0x71, 0x75, 0x65, 0x72, 0x79, 0x2e, 0x76, 0x31, 0x2e, 0x4c, 0x69,
	0x73, 0x74, 0x4a, 0x6f, 0x75, 0x72, 0x6e, 0x61, 0x6c, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e,
	0x73, 0x65, 0x22, 0x2c, 0x82, 0xd3, 0xe4, 0x93, 0x02, 0x26, 0x12, 0x24, 0x2f, 0x76, 0x31, 0x2f,
	0x70, 0x6f, 0x73, 0x69, 0x74, 0x69, 0x6f, 0x6e, 0x73, 0x2f, 0x7b, 0x70, 0x6f, 0x73, 0x69, 0x74,
	0x69, 0x6f, 0x6e, 0x5f, 0x69, 0x64, 0x7d, 0x2f, 0x6a, 0x6f, 0x75, 0x72, 0x6e, 0x61, 0x6c, 0x73,
	0x42, 0x2b, 0x5a, 0x29, 0x52, 0x61, 0x6e, 0x67, 0x65, 0x4c, 0x69, 0x71, 0x2f, 0x67, 0x65, 0x6e,
	0x2f, 0x67, 0x6f, 0x2f, 0x72, 0x61, 0x6e, 0x67, 0x65, 0x6c, 0x69, 0x71, 0x2f, 0x71, 0x75, 0x65,
	0x72, 0x79, 0x2f, 0x76, 0x31, 0x3b, 0x71, 0x75, 0x65, 0x72, 0x79, 0x76, 0x31, 0x62, 0x06, 0x70,
	0x72, 0x6f, 0x74, 0x6f, 0x33,
})

var (
	file_rangeliq_query_v1_query_proto_rawDescOnce sync.Once
	file_rangeliq_query_v1_query_proto_rawDescData []byte
)

func file_rangeliq_query_v1_query_proto_rawDescGZIP() []byte {
	file_rangeliq_query_v1_query_proto_rawDescOnce.Do(func() {
		file_rangeliq_query_v1_query_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_rangeliq_query_v1_query_proto_rawDesc), len(file_rangeliq_query_v1_query_proto_rawDesc)))
	})
	return file_rangeliq_query_v1_query_proto_rawDescData
}

var file_rangeliq_query_v1_query_proto_msgTypes = make([]protoimpl.MessageInfo, 21)
var file_rangeliq_query_v1_query_proto_goTypes = []any{
	(*Position)(nil),                       // 0: rangeliq.query.v1.Position
	(*GetPositionRequest)(nil),             // 1: rangeliq.query.v1.GetPositionRequest
	(*GetPositionResponse)(nil),            // 2: rangeliq.query.v1.GetPositionResponse
	(*IsUnderwaterRequest)(nil),            // 3: rangeliq.query.v1.IsUnderwaterRequest
	(*IsUnderwaterResponse)(nil),           // 4: rangeliq.query.v1.IsUnderwaterResponse
	(*GetLiquidationProgressRequest)(nil),  // 5: rangeliq.query.v1.GetLiquidationProgressRequest
	(*GetLiquidationProgressResponse)(nil), // 6: rangeliq.query.v1.GetLiquidationProgressResponse
	(*GetPenaltyRateRequest)(nil),          // 7: rangeliq.query.v1.GetPenaltyRateRequest
	(*GetPenaltyRateResponse)(nil),         // 8: rangeliq.query.v1.GetPenaltyRateResponse
	(*GetActivePositionCountRequest)(nil),  // 9: rangeliq.query.v1.GetActivePositionCountRequest
	(*GetActivePositionCountResponse)(nil), // 10: rangeliq.query.v1.GetActivePositionCountResponse
	(*LiquidationStep)(nil),                // 11: rangeliq.query.v1.LiquidationStep
	(*ListLiquidationHistoryRequest)(nil),  // 12: rangeliq.query.v1.ListLiquidationHistoryRequest
	(*ListLiquidationHistoryResponse)(nil), // 13: rangeliq.query.v1.ListLiquidationHistoryResponse
	(*GetPoolBalancesRequest)(nil),         // 14: rangeliq.query.v1.GetPoolBalancesRequest
	(*GetPoolBalancesResponse)(nil),        // 15: rangeliq.query.v1.GetPoolBalancesResponse
	(*GetPositionReserveRequest)(nil),      // 16: rangeliq.query.v1.GetPositionReserveRequest
	(*GetPositionReserveResponse)(nil),     // 17: rangeliq.query.v1.GetPositionReserveResponse
	(*JournalRecord)(nil),                  // 18: rangeliq.query.v1.JournalRecord
	(*ListJournalsRequest)(nil),            // 19: rangeliq.query.v1.ListJournalsRequest
	(*ListJournalsResponse)(nil),           // 20: rangeliq.query.v1.ListJournalsResponse
}
var file_rangeliq_query_v1_query_proto_depIdxs = []int32{
	0,  // 0: rangeliq.query.v1.GetPositionResponse.position:type_name -> rangeliq.query.v1.Position
	11, // 1: rangeliq.query.v1.ListLiquidationHistoryResponse.steps:type_name -> rangeliq.query.v1.LiquidationStep
	18, // 2: rangeliq.query.v1.ListJournalsResponse.journals:type_name -> rangeliq.query.v1.JournalRecord
	1,  // 3: rangeliq.query.v1.QueryService.GetPosition:input_type -> rangeliq.query.v1.GetPositionRequest
	3,  // 4: rangeliq.query.v1.QueryService.IsUnderwater:input_type -> rangeliq.query.v1.IsUnderwaterRequest
	5,  // 5: rangeliq.query.v1.QueryService.GetLiquidationProgress:input_type -> rangeliq.query.v1.GetLiquidationProgressRequest
	7,  // 6: rangeliq.query.v1.QueryService.GetPenaltyRate:input_type -> rangeliq.query.v1.GetPenaltyRateRequest
	9,  // 7: rangeliq.query.v1.QueryService.GetActivePositionCount:input_type -> rangeliq.query.v1.GetActivePositionCountRequest
	12, // 8: rangeliq.query.v1.QueryService.ListLiquidationHistory:input_type -> rangeliq.query.v1.ListLiquidationHistoryRequest
	14, // 9: rangeliq.query.v1.QueryService.GetPoolBalances:input_type -> rangeliq.query.v1.GetPoolBalancesRequest
	16, // 10: rangeliq.query.v1.QueryService.GetPositionReserve:input_type -> rangeliq.query.v1.GetPositionReserveRequest
	19, // 11: rangeliq.query.v1.QueryService.ListJournals:input_type -> rangeliq.query.v1.ListJournalsRequest
	2,  // 12: rangeliq.query.v1.QueryService.GetPosition:output_type -> rangeliq.query.v1.GetPositionResponse
	4,  // 13: rangeliq.query.v1.QueryService.IsUnderwater:output_type -> rangeliq.query.v1.IsUnderwaterResponse
	6,  // 14: rangeliq.query.v1.QueryService.GetLiquidationProgress:output_type -> rangeliq.query.v1.GetLiquidationProgressResponse
	8,  // 15: rangeliq.query.v1.QueryService.GetPenaltyRate:output_type -> rangeliq.query.v1.GetPenaltyRateResponse
	10, // 16: rangeliq.query.v1.QueryService.GetActivePositionCount:output_type -> rangeliq.query.v1.GetActivePositionCountResponse
	13, // 17: rangeliq.query.v1.QueryService.ListLiquidationHistory:output_type -> rangeliq.query.v1.ListLiquidationHistoryResponse
	15, // 18: rangeliq.query.v1.QueryService.GetPoolBalances:output_type -> rangeliq.query.v1.GetPoolBalancesResponse
	17, // 19: rangeliq.query.v1.QueryService.GetPositionReserve:output_type -> rangeliq.query.v1.GetPositionReserveResponse
	20, // 20: rangeliq.query.v1.QueryService.ListJournals:output_type -> rangeliq.query.v1.ListJournalsResponse
	12, // [12:21] is the sub-list for method output_type
	3,  // [3:12] is the sub-list for method input_type
	3,  // [3:3] is the sub-list for extension type_name
	3,  // [3:3] is the sub-list for extension extendee
	0,  // [0:3] is the sub-list for field type_name
}

func init() { file_rangeliq_query_v1_query_proto_init() }
func file_rangeliq_query_v1_query_proto_init() {
	if File_rangeliq_query_v1_query_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_rangeliq_query_v1_query_proto_rawDesc), len(file_rangeliq_query_v1_query_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   21,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_rangeliq_query_v1_query_proto_goTypes,
		DependencyIndexes: file_rangeliq_query_v1_query_proto_depIdxs,
		MessageInfos:      file_rangeliq_query_v1_query_proto_msgTypes,
	}.Build()
	File_rangeliq_query_v1_query_proto = out.File
	file_rangeliq_query_v1_query_proto_goTypes = nil
	file_rangeliq_query_v1_query_proto_depIdxs = nil
}
