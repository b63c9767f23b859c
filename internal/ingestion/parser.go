package ingestion

import (
	"RangeLiq/internal/event"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ParseRawEvent converts a RawEvent (JSON bytes + event type string) into a
// typed event.Event. The ingestion shell validates, parses, and converts raw
// events before handing them to the deterministic core.
func ParseRawEvent(raw RawEvent, eventType string) (event.Event, error) {
	switch eventType {
	case "PriceUpdate":
		return parsePriceUpdate(raw.Data)
	case "BorrowRequest":
		return parseBorrowRequest(raw.Data)
	case "RepayRequest":
		return parseRepayRequest(raw.Data)
	default:
		return nil, fmt.Errorf("unknown event type: %s", eventType)
	}
}

// --- JSON wire formats ---
// Field names use snake_case to match upstream producers.

type priceUpdateJSON struct {
	Market        string `json:"market"`
	Tick          int64  `json:"tick"`
	Direction     string `json:"direction"` // "base" or "quote"
	Taker         string `json:"taker,omitempty"`
	PriceSequence int64  `json:"price_sequence"`
	TimestampUs   int64  `json:"timestamp_us"`
}

func parsePriceUpdate(data []byte) (*event.PriceUpdate, error) {
	var j priceUpdateJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parse PriceUpdate: %w", err)
	}
	dir, err := parseDirection(j.Direction)
	if err != nil {
		return nil, err
	}
	return &event.PriceUpdate{
		Market:        j.Market,
		Tick:          j.Tick,
		TradeDir:      dir,
		Taker:         j.Taker,
		PriceSequence: j.PriceSequence,
		TimestampUs:   j.TimestampUs,
	}, nil
}

type borrowRequestJSON struct {
	RequestID    string `json:"request_id"`
	Owner        string `json:"owner"`
	Market       string `json:"market"`
	Collateral   int64  `json:"collateral"`
	Debt         int64  `json:"debt"`
	ThresholdBps int64  `json:"threshold_bps"`
	Direction    string `json:"direction"`
	Sequence     int64  `json:"sequence"`
	TimestampUs  int64  `json:"timestamp_us"`
}

func parseBorrowRequest(data []byte) (*event.BorrowRequest, error) {
	var j borrowRequestJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parse BorrowRequest: %w", err)
	}
	requestID, err := uuid.Parse(j.RequestID)
	if err != nil {
		return nil, fmt.Errorf("parse request_id: %w", err)
	}
	if j.Owner == "" {
		return nil, fmt.Errorf("parse BorrowRequest: owner is required")
	}
	dir, err := parseDirection(j.Direction)
	if err != nil {
		return nil, err
	}
	return &event.BorrowRequest{
		RequestID:    requestID,
		Owner:        j.Owner,
		Market:       j.Market,
		Collateral:   j.Collateral,
		Debt:         j.Debt,
		ThresholdBps: j.ThresholdBps,
		Dir:          dir,
		Sequence:     j.Sequence,
		Timestamp:    time.UnixMicro(j.TimestampUs),
	}, nil
}

type repayRequestJSON struct {
	RequestID   string `json:"request_id"`
	PositionID  string `json:"position_id"`
	Caller      string `json:"caller"`
	Market      string `json:"market"`
	Sequence    int64  `json:"sequence"`
	TimestampUs int64  `json:"timestamp_us"`
}

func parseRepayRequest(data []byte) (*event.RepayRequest, error) {
	var j repayRequestJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parse RepayRequest: %w", err)
	}
	requestID, err := uuid.Parse(j.RequestID)
	if err != nil {
		return nil, fmt.Errorf("parse request_id: %w", err)
	}
	positionID, err := uuid.Parse(j.PositionID)
	if err != nil {
		return nil, fmt.Errorf("parse position_id: %w", err)
	}
	if j.Caller == "" {
		return nil, fmt.Errorf("parse RepayRequest: caller is required")
	}
	return &event.RepayRequest{
		RequestID:  requestID,
		PositionID: positionID,
		Caller:     j.Caller,
		Market:     j.Market,
		Sequence:   j.Sequence,
		Timestamp:  time.UnixMicro(j.TimestampUs),
	}, nil
}

// MarshalWireEvent is the inverse of ParseRawEvent: it renders a typed event
// back into its JSON wire form. The event log stores this form so replay can
// feed stored payloads straight back through the parser.
func MarshalWireEvent(evt event.Event) ([]byte, error) {
	switch e := evt.(type) {
	case *event.PriceUpdate:
		return json.Marshal(priceUpdateJSON{
			Market:        e.Market,
			Tick:          e.Tick,
			Direction:     e.TradeDir.String(),
			Taker:         e.Taker,
			PriceSequence: e.PriceSequence,
			TimestampUs:   e.TimestampUs,
		})
	case *event.BorrowRequest:
		return json.Marshal(borrowRequestJSON{
			RequestID:    e.RequestID.String(),
			Owner:        e.Owner,
			Market:       e.Market,
			Collateral:   e.Collateral,
			Debt:         e.Debt,
			ThresholdBps: e.ThresholdBps,
			Direction:    e.Dir.String(),
			Sequence:     e.Sequence,
			TimestampUs:  e.Timestamp.UnixMicro(),
		})
	case *event.RepayRequest:
		return json.Marshal(repayRequestJSON{
			RequestID:   e.RequestID.String(),
			PositionID:  e.PositionID.String(),
			Caller:      e.Caller,
			Market:      e.Market,
			Sequence:    e.Sequence,
			TimestampUs: e.Timestamp.UnixMicro(),
		})
	default:
		return nil, fmt.Errorf("unknown event type: %T", evt)
	}
}

func parseDirection(s string) (event.Direction, error) {
	switch s {
	case "base":
		return event.DirectionBase, nil
	case "quote":
		return event.DirectionQuote, nil
	default:
		return 0, fmt.Errorf("unknown direction: %q", s)
	}
}
