package event

import (
	"time"

	"github.com/google/uuid"
)

// RepayRequest closes a position by repaying its remaining debt in full.
// Caller must match the position owner.
type RepayRequest struct {
	RequestID  uuid.UUID
	PositionID uuid.UUID
	Caller     string
	Market     string
	Sequence   int64
	Timestamp  time.Time
}

func (e *RepayRequest) IdempotencyKey() string { return e.RequestID.String() }
func (e *RepayRequest) EventType() EventType   { return EventTypeRepayRequest }
func (e *RepayRequest) MarketID() string       { return e.Market }
func (e *RepayRequest) SourceSequence() int64  { return e.Sequence }
