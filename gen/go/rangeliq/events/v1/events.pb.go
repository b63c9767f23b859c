// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.5
// 	protoc        (unknown)
// source: rangeliq/events/v1/events.proto

package eventsv1

import (
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

// EventType enumerates the input events the liquidation core consumes.
type EventType int32

const (
	EventType_EVENT_TYPE_UNSPECIFIED EventType = 0
	EventType_PRICE_UPDATE           EventType = 1
	EventType_BORROW_REQUEST         EventType = 2
	EventType_REPAY_REQUEST          EventType = 3
)

// Enum value maps for EventType.
var (
	EventType_name = map[int32]string{
		0: "EVENT_TYPE_UNSPECIFIED",
		1: "PRICE_UPDATE",
		2: "BORROW_REQUEST",
		3: "REPAY_REQUEST",
	}
	EventType_value = map[string]int32{
		"EVENT_TYPE_UNSPECIFIED": 0,
		"PRICE_UPDATE":           1,
		"BORROW_REQUEST":         2,
		"REPAY_REQUEST":          3,
	}
)

func (x EventType) Enum() *EventType {
	p := new(EventType)
	*p = x
	return p
}

func (x EventType) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (EventType) Descriptor() protoreflect.EnumDescriptor {
	return file_rangeliq_events_v1_events_proto_enumTypes[0].Descriptor()
}

func (EventType) Type() protoreflect.EnumType {
	return &file_rangeliq_events_v1_events_proto_enumTypes[0]
}

func (x EventType) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use EventType.Descriptor instead.
func (EventType) EnumDescriptor() ([]byte, []int) {
	return file_rangeliq_events_v1_events_proto_rawDescGZIP(), []int{0}
}

// EventEnvelope carries one event payload for ingestion. The payload is the
// JSON wire form of the event, identical to what arrives on NATS subjects.
type EventEnvelope struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	EventType      EventType              `protobuf:"varint,1,opt,name=event_type,json=eventType,proto3,enum=rangeliq.events.v1.EventType" json:"event_type,omitempty"`
	Payload        []byte                 `protobuf:"bytes,2,opt,name=payload,proto3" json:"payload,omitempty"`
	IdempotencyKey string                 `protobuf:"bytes,3,opt,name=idempotency_key,json=idempotencyKey,proto3" json:"idempotency_key,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *EventEnvelope) Reset() {
	*x = EventEnvelope{}
	mi := &file_rangeliq_events_v1_events_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EventEnvelope) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EventEnvelope) ProtoMessage() {}

func (x *EventEnvelope) ProtoReflect() protoreflect.Message {
	mi := &file_rangeliq_events_v1_events_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EventEnvelope.ProtoReflect.Descriptor instead.
func (*EventEnvelope) Descriptor() ([]byte, []int) {
	return file_rangeliq_events_v1_events_proto_rawDescGZIP(), []int{0}
}

func (x *EventEnvelope) GetEventType() EventType {
	if x != nil {
		return x.EventType
	}
	return EventType_EVENT_TYPE_UNSPECIFIED
}

func (x *EventEnvelope) GetPayload() []byte {
	if x != nil {
		return x.Payload
	}
	return nil
}

func (x *EventEnvelope) GetIdempotencyKey() string {
	if x != nil {
		return x.IdempotencyKey
	}
	return ""
}

var File_rangeliq_events_v1_events_proto protoreflect.FileDescriptor

var file_rangeliq_events_v1_events_proto_rawDesc = string([]byte{
	0x0a, 0x1f, 0x72, 0x61, 0x6e, 0x67, 0x65, 0x6c, 0x69, 0x71, 0x2f, 0x65, 0x76, 0x65, 0x6e, 0x74,
	0x73, 0x2f, 0x76, 0x31, 0x2f, 0x65, 0x76, 0x65, 0x6e, 0x74, 0x73, 0x2e, 0x70, 0x72, 0x6f, 0x74,
	0x6f, 0x12, 0x12, 0x72, 0x61, 0x6e, 0x67, 0x65, 0x6c, 0x69, 0x71, 0x2e, 0x65, 0x76, 0x65, 0x6e,
	0x74, 0x73, 0x2e, 0x76, 0x31, 0x22, 0x90, 0x01, 0x0a, 0x0d, 0x45, 0x76, 0x65, 0x6e, 0x74, 0x45,
	0x6e, 0x76, 0x65, 0x6c, 0x6f, 0x70, 0x65, 0x12, 0x3c, 0x0a, 0x0a, 0x65, 0x76, 0x65, 0x6e, 0x74,
	0x5f, 0x74, 0x79, 0x70, 0x65, 0x18, 0x01, 0x20, 0x01, 0x28, 0x0e, 0x32, 0x1d, 0x2e, 0x72, 0x61,
	0x6e, 0x67, 0x65, 0x6c, 0x69, 0x71, 0x2e, 0x65, 0x76, 0x65, 0x6e, 0x74, 0x73, 0x2e, 0x76, 0x31,
	0x2e, 0x45, 0x76, 0x65, 0x6e, 0x74, 0x54, 0x79, 0x70, 0x65, 0x52, 0x09, 0x65, 0x76, 0x65, 0x6e,
	0x74, 0x54, 0x79, 0x70, 0x65, 0x12, 0x18, 0x0a, 0x07, 0x70, 0x61, 0x79, 0x6c, 0x6f, 0x61, 0x64,
	0x18, 0x02, 0x20, 0x01, 0x28, 0x0c, 0x52, 0x07, 0x70, 0x61, 0x79, 0x6c, 0x6f, 0x61, 0x64, 0x12,
	0x27, 0x0a, 0x0f, 0x69, 0x64, 0x65, 0x6d, 0x70, 0x6f, 0x74, 0x65, 0x6e, 0x63, 0x79, 0x5f, 0x6b,
	0x65, 0x79, 0x18, 0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0e, 0x69, 0x64, 0x65, 0x6d, 0x70, 0x6f,
	0x74, 0x65, 0x6e, 0x63, 0x79, 0x4b, 0x65, 0x79, 0x2a, 0x60, 0x0a, 0x09, 0x45, 0x76, 0x65, 0x6e,
	0x74, 0x54, 0x79, 0x70, 0x65, 0x12, 0x1a, 0x0a, 0x16, 0x45, 0x56, 0x45, 0x4e, 0x54, 0x5f, 0x54,
	0x59, 0x50, 0x45, 0x5f, 0x55, 0x4e, 0x53, 0x50, 0x45, 0x43, 0x49, 0x46, 0x49, 0x45, 0x44, 0x10,
	0x00, 0x12, 0x10, 0x0a, 0x0c, 0x50, 0x52, 0x49, 0x43, 0x45, 0x5f, 0x55, 0x50, 0x44, 0x41, 0x54,
	0x45, 0x10, 0x01, 0x12, 0x12, 0x0a, 0x0e, 0x42, 0x4f, 0x52, 0x52, 0x4f, 0x57, 0x5f, 0x52, 0x45,
	0x51, 0x55, 0x45, 0x53, 0x54, 0x10, 0x02, 0x12, 0x11, 0x0a, 0x0d, 0x52, 0x45, 0x50, 0x41, 0x59,
	0x5f, 0x52, 0x45, 0x51, 0x55, 0x45, 0x53, 0x54, 0x10, 0x03, 0x42, 0x2d, 0x5a, 0x2b, 0x52, 0x61,
	0x6e, 0x67, 0x65, 0x4c, 0x69, 0x71, 0x2f, 0x67, 0x65, 0x6e, 0x2f, 0x67, 0x6f, 0x2f, 0x72, 0x61,
	0x6e, 0x67, 0x65, 0x6c, 0x69, 0x71, 0x2f, 0x65, 0x76, 0x65, 0x6e, 0x74, 0x73, 0x2f, 0x76, 0x31,
	0x3b, 0x65, 0x76, 0x65, 0x6e, 0x74, 0x73, 0x76, 0x31, 0x62, 0x06, 0x70, 0x72, 0x6f, 0x74, 0x6f,
	0x33,
})

var (
	file_rangeliq_events_v1_events_proto_rawDescOnce sync.Once
	file_rangeliq_events_v1_events_proto_rawDescData []byte
)

func file_rangeliq_events_v1_events_proto_rawDescGZIP() []byte {
	file_rangeliq_events_v1_events_proto_rawDescOnce.Do(func() {
		file_rangeliq_events_v1_events_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_rangeliq_events_v1_events_proto_rawDesc), len(file_rangeliq_events_v1_events_proto_rawDesc)))
	})
	return file_rangeliq_events_v1_events_proto_rawDescData
}

var file_rangeliq_events_v1_events_proto_enumTypes = make([]protoimpl.EnumInfo, 1)
var file_rangeliq_events_v1_events_proto_msgTypes = make([]protoimpl.MessageInfo, 1)
var file_rangeliq_events_v1_events_proto_goTypes = []any{
	(EventType)(0),        // 0: rangeliq.events.v1.EventType
	(*EventEnvelope)(nil), // 1: rangeliq.events.v1.EventEnvelope
}
var file_rangeliq_events_v1_events_proto_depIdxs = []int32{
	0, // 0: rangeliq.events.v1.EventEnvelope.event_type:type_name -> rangeliq.events.v1.EventType
	1, // [1:1] is the sub-list for method output_type
	1, // [1:1] is the sub-list for method input_type
	1, // [1:1] is the sub-list for extension type_name
	1, // [1:1] is the sub-list for extension extendee
	0, // [0:1] is the sub-list for field type_name
}

func init() { file_rangeliq_events_v1_events_proto_init() }
func file_rangeliq_events_v1_events_proto_init() {
	if File_rangeliq_events_v1_events_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_rangeliq_events_v1_events_proto_rawDesc), len(file_rangeliq_events_v1_events_proto_rawDesc)),
			NumEnums:      1,
			NumMessages:   1,
			NumExtensions: 0,
			NumServices:   0,
		},
		GoTypes:           file_rangeliq_events_v1_events_proto_goTypes,
		DependencyIndexes: file_rangeliq_events_v1_events_proto_depIdxs,
		EnumInfos:         file_rangeliq_events_v1_events_proto_enumTypes,
		MessageInfos:      file_rangeliq_events_v1_events_proto_msgTypes,
	}.Build()
	File_rangeliq_events_v1_events_proto = out.File
	file_rangeliq_events_v1_events_proto_goTypes = nil
	file_rangeliq_events_v1_events_proto_depIdxs = nil
}
