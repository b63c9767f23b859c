package ingestion

import (
	"reflect"
	"testing"
	"time"

	"RangeLiq/internal/event"

	"github.com/google/uuid"
)

func TestParsePriceUpdate(t *testing.T) {
	data := []byte(`{
		"market": "ETH-USDC",
		"tick": -12345,
		"direction": "base",
		"taker": "taker-1",
		"price_sequence": 42,
		"timestamp_us": 1700000000000000
	}`)

	evt, err := ParseRawEvent(RawEvent{Data: data}, "PriceUpdate")
	if err != nil {
		t.Fatalf("ParseRawEvent failed: %v", err)
	}

	pu, ok := evt.(*event.PriceUpdate)
	if !ok {
		t.Fatalf("expected *event.PriceUpdate, got %T", evt)
	}
	if pu.Market != "ETH-USDC" {
		t.Errorf("market = %s, want ETH-USDC", pu.Market)
	}
	if pu.Tick != -12345 {
		t.Errorf("tick = %d, want -12345", pu.Tick)
	}
	if pu.TradeDir != event.DirectionBase {
		t.Errorf("direction = %v, want base", pu.TradeDir)
	}
	if pu.Taker != "taker-1" {
		t.Errorf("taker = %s, want taker-1", pu.Taker)
	}
	if pu.PriceSequence != 42 {
		t.Errorf("price_sequence = %d, want 42", pu.PriceSequence)
	}
	if pu.TimestampUs != 1700000000000000 {
		t.Errorf("timestamp_us = %d", pu.TimestampUs)
	}
}

func TestParsePriceUpdateBadDirection(t *testing.T) {
	data := []byte(`{"market":"ETH-USDC","tick":0,"direction":"sideways","price_sequence":1,"timestamp_us":1}`)
	if _, err := ParseRawEvent(RawEvent{Data: data}, "PriceUpdate"); err == nil {
		t.Fatal("expected error for unknown direction")
	}
}

func TestParseBorrowRequest(t *testing.T) {
	data := []byte(`{
		"request_id": "01020304-0506-0708-090a-0b0c0d0e0f10",
		"owner": "alice",
		"market": "ETH-USDC",
		"collateral": 1000000,
		"debt": 600000,
		"threshold_bps": 7000,
		"direction": "quote",
		"sequence": 7,
		"timestamp_us": 1700000000000000
	}`)

	evt, err := ParseRawEvent(RawEvent{Data: data}, "BorrowRequest")
	if err != nil {
		t.Fatalf("ParseRawEvent failed: %v", err)
	}

	br, ok := evt.(*event.BorrowRequest)
	if !ok {
		t.Fatalf("expected *event.BorrowRequest, got %T", evt)
	}
	if br.Owner != "alice" {
		t.Errorf("owner = %s, want alice", br.Owner)
	}
	if br.Collateral != 1000000 || br.Debt != 600000 {
		t.Errorf("amounts = %d/%d", br.Collateral, br.Debt)
	}
	if br.ThresholdBps != 7000 {
		t.Errorf("threshold = %d, want 7000", br.ThresholdBps)
	}
	if br.Dir != event.DirectionQuote {
		t.Errorf("direction = %v, want quote", br.Dir)
	}
	if br.Timestamp.UnixMicro() != 1700000000000000 {
		t.Errorf("timestamp = %v", br.Timestamp)
	}
}

func TestParseBorrowRequestMissingOwner(t *testing.T) {
	data := []byte(`{
		"request_id": "01020304-0506-0708-090a-0b0c0d0e0f10",
		"market": "ETH-USDC",
		"collateral": 1,
		"debt": 1,
		"threshold_bps": 7000,
		"direction": "base",
		"sequence": 1,
		"timestamp_us": 1
	}`)
	if _, err := ParseRawEvent(RawEvent{Data: data}, "BorrowRequest"); err == nil {
		t.Fatal("expected error for missing owner")
	}
}

func TestParseRepayRequest(t *testing.T) {
	data := []byte(`{
		"request_id": "11111111-2222-3333-4444-555555555555",
		"position_id": "01020304-0506-0708-090a-0b0c0d0e0f10",
		"caller": "alice",
		"market": "ETH-USDC",
		"sequence": 9,
		"timestamp_us": 1700000000000000
	}`)

	evt, err := ParseRawEvent(RawEvent{Data: data}, "RepayRequest")
	if err != nil {
		t.Fatalf("ParseRawEvent failed: %v", err)
	}

	rr, ok := evt.(*event.RepayRequest)
	if !ok {
		t.Fatalf("expected *event.RepayRequest, got %T", evt)
	}
	if rr.Caller != "alice" {
		t.Errorf("caller = %s, want alice", rr.Caller)
	}
	if rr.PositionID.String() != "01020304-0506-0708-090a-0b0c0d0e0f10" {
		t.Errorf("position_id = %s", rr.PositionID)
	}
}

func TestParseRepayRequestBadPositionID(t *testing.T) {
	data := []byte(`{"request_id":"11111111-2222-3333-4444-555555555555","position_id":"nope","caller":"a","market":"m","sequence":1,"timestamp_us":1}`)
	if _, err := ParseRawEvent(RawEvent{Data: data}, "RepayRequest"); err == nil {
		t.Fatal("expected error for malformed position_id")
	}
}

func TestParseUnknownEventType(t *testing.T) {
	if _, err := ParseRawEvent(RawEvent{Data: []byte(`{}`)}, "Nonsense"); err == nil {
		t.Fatal("expected error for unknown event type")
	}
}

func TestMarshalWireEventRoundTrip(t *testing.T) {
	events := []event.Event{
		&event.PriceUpdate{
			Market:        "ETH-USDC",
			Tick:          -4_110,
			TradeDir:      event.DirectionQuote,
			Taker:         "taker-9",
			PriceSequence: 17,
			TimestampUs:   1_700_000_000_000_000,
		},
		&event.BorrowRequest{
			RequestID:    uuid.MustParse("01020304-0506-0708-090a-0b0c0d0e0f10"),
			Owner:        "alice",
			Market:       "ETH-USDC",
			Collateral:   2_000_000,
			Debt:         1_000_000,
			ThresholdBps: 8_000,
			Dir:          event.DirectionBase,
			Sequence:     3,
			Timestamp:    time.UnixMicro(1_700_000_000_000_000),
		},
		&event.RepayRequest{
			RequestID:  uuid.MustParse("11111111-2222-3333-4444-555555555555"),
			PositionID: uuid.MustParse("01020304-0506-0708-090a-0b0c0d0e0f10"),
			Caller:     "alice",
			Market:     "ETH-USDC",
			Sequence:   4,
			Timestamp:  time.UnixMicro(1_700_000_000_000_000),
		},
	}

	for _, original := range events {
		wire, err := MarshalWireEvent(original)
		if err != nil {
			t.Fatalf("MarshalWireEvent(%T): %v", original, err)
		}
		parsed, err := ParseRawEvent(RawEvent{Data: wire}, original.EventType().String())
		if err != nil {
			t.Fatalf("ParseRawEvent(%T): %v", original, err)
		}
		if !reflect.DeepEqual(original, parsed) {
			t.Errorf("round trip mismatch for %T:\n got %+v\nwant %+v", original, parsed, original)
		}
	}
}

func TestMarshalWireEventUnknownType(t *testing.T) {
	if _, err := MarshalWireEvent(nil); err == nil {
		t.Fatal("expected error for unsupported event")
	}
}
