package projection

import (
	"sync"

	"github.com/google/uuid"
)

// LiquidationStepRow is one liquidation step record for history projections.
type LiquidationStepRow struct {
	PositionID      string
	CollateralDelta int64
	DebtDelta       int64
	PenaltyToLP     int64
	PenaltyToTaker  int64
	FullyLiquidated bool
}

// LiquidationHistoryEntry is a queryable record of one liquidation step.
type LiquidationHistoryEntry struct {
	Sequence             int64
	PositionID           uuid.UUID
	Market               string
	Tick                 int64
	CollateralLiquidated int64
	DebtRepaid           int64
	PenaltyToLP          int64
	PenaltyToTaker       int64
	FullyLiquidated      bool
	TimestampUs          int64
}

// LiquidationHistoryProjection keeps a bounded in-memory history for the
// query surface. The durable copy lives in projections.liquidation_history;
// this one answers hot queries without a DB round trip.
type LiquidationHistoryProjection struct {
	mu      sync.RWMutex
	entries []LiquidationHistoryEntry
	maxSize int
}

func NewLiquidationHistoryProjection(maxSize int) *LiquidationHistoryProjection {
	return &LiquidationHistoryProjection{
		entries: make([]LiquidationHistoryEntry, 0),
		maxSize: maxSize,
	}
}

// AddEntry records a liquidation step, evicting the oldest past maxSize.
func (p *LiquidationHistoryProjection) AddEntry(entry LiquidationHistoryEntry) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.entries = append(p.entries, entry)
	if p.maxSize > 0 && len(p.entries) > p.maxSize {
		p.entries = p.entries[len(p.entries)-p.maxSize:]
	}
}

// QueryByPosition returns the most recent entries for a position, newest
// first.
func (p *LiquidationHistoryProjection) QueryByPosition(positionID uuid.UUID, limit int) []LiquidationHistoryEntry {
	p.mu.RLock()
	defer p.mu.RUnlock()

	result := make([]LiquidationHistoryEntry, 0)

	for i := len(p.entries) - 1; i >= 0 && len(result) < limit; i-- {
		if p.entries[i].PositionID == positionID {
			result = append(result, p.entries[i])
		}
	}

	return result
}

// Recent returns the most recent entries across all positions, newest first.
func (p *LiquidationHistoryProjection) Recent(limit int) []LiquidationHistoryEntry {
	p.mu.RLock()
	defer p.mu.RUnlock()

	result := make([]LiquidationHistoryEntry, 0, limit)
	for i := len(p.entries) - 1; i >= 0 && len(result) < limit; i-- {
		result = append(result, p.entries[i])
	}
	return result
}

// Len returns the number of retained entries.
func (p *LiquidationHistoryProjection) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.entries)
}
