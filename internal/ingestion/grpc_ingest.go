package ingestion

import (
	"RangeLiq/internal/event"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// GRPCIngestService provides admin/manual event injection via gRPC.
// Price feeds and request traffic belong on NATS; this path exists for
// operations and integration testing.
type GRPCIngestService struct {
	eventChan chan<- event.Event
}

func NewGRPCIngestService(eventChan chan<- event.Event) *GRPCIngestService {
	return &GRPCIngestService{eventChan: eventChan}
}

// EventChan exposes the injection channel for transports that parse their
// own payloads.
func (s *GRPCIngestService) EventChan() chan<- event.Event {
	return s.eventChan
}

// InjectPriceUpdate manually injects a PriceUpdate event.
func (s *GRPCIngestService) InjectPriceUpdate(
	ctx context.Context,
	marketID string,
	tick int64,
	dir event.Direction,
	taker string,
	priceSequence int64,
) error {
	evt := &event.PriceUpdate{
		Market:        marketID,
		Tick:          tick,
		TradeDir:      dir,
		Taker:         taker,
		PriceSequence: priceSequence,
		TimestampUs:   time.Now().UnixMicro(),
	}

	select {
	case s.eventChan <- evt:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// InjectBorrow manually injects a BorrowRequest event and returns the
// request id, which doubles as the position id on success.
func (s *GRPCIngestService) InjectBorrow(
	ctx context.Context,
	marketID, owner string,
	collateral, debt, thresholdBps int64,
	dir event.Direction,
) (uuid.UUID, error) {
	if collateral <= 0 || debt <= 0 {
		return uuid.Nil, fmt.Errorf("collateral and debt must be positive")
	}
	if owner == "" {
		return uuid.Nil, fmt.Errorf("owner is required")
	}

	evt := &event.BorrowRequest{
		RequestID:    uuid.New(),
		Owner:        owner,
		Market:       marketID,
		Collateral:   collateral,
		Debt:         debt,
		ThresholdBps: thresholdBps,
		Dir:          dir,
		Sequence:     time.Now().UnixMicro(), // admin-injected: timestamp as sequence
		Timestamp:    time.Now(),
	}

	select {
	case s.eventChan <- evt:
		return evt.RequestID, nil
	case <-ctx.Done():
		return uuid.Nil, ctx.Err()
	}
}

// InjectRepay manually injects a RepayRequest event.
func (s *GRPCIngestService) InjectRepay(
	ctx context.Context,
	marketID string,
	positionID uuid.UUID,
	caller string,
) error {
	if caller == "" {
		return fmt.Errorf("caller is required")
	}

	evt := &event.RepayRequest{
		RequestID:  uuid.New(),
		PositionID: positionID,
		Caller:     caller,
		Market:     marketID,
		Sequence:   time.Now().UnixMicro(),
		Timestamp:  time.Now(),
	}

	select {
	case s.eventChan <- evt:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
