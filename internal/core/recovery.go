package core

import (
	"fmt"

	"RangeLiq/internal/ledger"
	"RangeLiq/internal/state"
)

// SnapshotState is the core's full deterministic state at one sequence.
// Restoring it and replaying the event log from Sequence forward reproduces
// the exact state, including the hash chain.
type SnapshotState struct {
	Sequence          int64                 `json:"sequence"`
	PrevHash          [32]byte              `json:"prev_hash"`
	CurrentTick       int64                 `json:"current_tick"`
	HasTick           bool                  `json:"has_tick"`
	Positions         []state.Position      `json:"positions"`
	Balances          []ledger.BalanceEntry `json:"balances"`
	ExpectedSequences map[string]int64      `json:"expected_sequences"`
	PriceSequences    map[string]int64      `json:"price_sequences"`
	IdempotencyKeys   []string              `json:"idempotency_keys"`
}

// ExportSnapshot captures the core's state for persistence. Call only from
// the core's own goroutine, between events.
func (c *LiquidationCore) ExportSnapshot() *SnapshotState {
	positions := make([]state.Position, 0, c.store.Len())
	for _, p := range c.store.All() {
		positions = append(positions, *p)
	}

	return &SnapshotState{
		Sequence:          c.sequence,
		PrevHash:          c.hasher.GetPrevHash(),
		CurrentTick:       c.currentTick,
		HasTick:           c.hasTick,
		Positions:         positions,
		Balances:          c.balances.Export(),
		ExpectedSequences: c.sequenceValidator.ExportExpected(),
		PriceSequences:    c.sequenceValidator.ExportPriceSequences(),
		IdempotencyKeys:   c.idempotency.RecentKeys(100_000),
	}
}

// RestoreSnapshot loads a snapshot into a freshly constructed core. The tick
// registry is rebuilt from the restored positions.
func (c *LiquidationCore) RestoreSnapshot(snap *SnapshotState) error {
	if snap == nil {
		return nil
	}

	c.sequence = snap.Sequence
	c.hasher.SetPrevHash(snap.PrevHash)
	c.currentTick = snap.CurrentTick
	c.hasTick = snap.HasTick

	for i := range snap.Positions {
		p := snap.Positions[i]
		c.store.Put(&p)
		if p.IsActive() {
			if err := c.registry.Insert(p.ID, p.TickLower, p.TickUpper, p.Dir); err != nil {
				return fmt.Errorf("rebuild registry for %s: %w", p.ID, err)
			}
		}
	}

	c.balances.Restore(snap.Balances)

	for partition, seq := range snap.ExpectedSequences {
		c.sequenceValidator.SetExpectedSequence(partition, seq)
	}
	for market, seq := range snap.PriceSequences {
		c.sequenceValidator.SetLastPriceSequence(market, seq)
	}

	c.idempotency.Warm(snap.IdempotencyKeys)

	if err := c.registry.CheckConsistency(c.store); err != nil {
		return fmt.Errorf("snapshot registry inconsistent: %w", err)
	}
	return nil
}

// BeginReplay suppresses output emission and collaborator dispatch while the
// event log is replayed. Collaborators already saw these effects the first
// time; re-sending would double-credit.
func (c *LiquidationCore) BeginReplay() {
	c.replaying = true
}

// EndReplay resumes normal emission.
func (c *LiquidationCore) EndReplay() {
	c.replaying = false
}
