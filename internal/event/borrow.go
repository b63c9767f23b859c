package event

import (
	"time"

	"github.com/google/uuid"
)

// BorrowRequest opens a new collateralized position.
// Amounts are int64 base units of the respective asset.
type BorrowRequest struct {
	RequestID    uuid.UUID
	Owner        string
	Market       string
	Collateral   int64
	Debt         int64
	ThresholdBps int64
	Dir          Direction
	Sequence     int64
	Timestamp    time.Time
}

func (e *BorrowRequest) IdempotencyKey() string { return e.RequestID.String() }
func (e *BorrowRequest) EventType() EventType   { return EventTypeBorrowRequest }
func (e *BorrowRequest) MarketID() string       { return e.Market }
func (e *BorrowRequest) SourceSequence() int64  { return e.Sequence }
