package core

import (
	"fmt"
)

// SequenceValidator validates source sequences per partition.
// Not thread-safe — only accessed from the single-threaded core.
//
// Price updates get strict ordering: the liquidation ratchet and the
// once-per-crossing penalty reset are only correct when updates apply in the
// order the price actually moved, so an out-of-order price update is caller
// error and is rejected. Gaps are fine — a price can move many ticks between
// two delivered updates.
type SequenceValidator struct {
	expectedNextSeq map[string]int64 // partition -> next expected sequence
	lastPriceSeq    map[string]int64 // market -> last applied price sequence
}

func NewSequenceValidator() *SequenceValidator {
	return &SequenceValidator{
		expectedNextSeq: make(map[string]int64),
		lastPriceSeq:    make(map[string]int64),
	}
}

// ValidateSequence checks request-stream ordering for borrow/repay partitions.
func (sv *SequenceValidator) ValidateSequence(
	partition string,
	sourceSequence int64,
	isDuplicate bool,
) error {
	expected := sv.expectedNextSeq[partition]

	if sourceSequence < expected {
		if isDuplicate {
			// Already processed - expected redelivery
			return nil
		}
		return fmt.Errorf("out-of-order event: partition=%s, expected=%d, got=%d",
			partition, expected, sourceSequence)
	}

	// Gaps in request streams are tolerated: requests rejected upstream
	// consume sequence numbers that never reach the core.
	sv.expectedNextSeq[partition] = sourceSequence + 1
	return nil
}

// ValidatePriceSequence enforces strict per-market price ordering.
func (sv *SequenceValidator) ValidatePriceSequence(marketID string, priceSequence int64) error {
	last, seen := sv.lastPriceSeq[marketID]
	if seen && priceSequence <= last {
		return fmt.Errorf("out-of-order price update: market=%s, last=%d, got=%d",
			marketID, last, priceSequence)
	}
	sv.lastPriceSeq[marketID] = priceSequence
	return nil
}

// LastPriceSequence returns the last applied price sequence for a market.
func (sv *SequenceValidator) LastPriceSequence(marketID string) (int64, bool) {
	seq, ok := sv.lastPriceSeq[marketID]
	return seq, ok
}

// ExportExpected copies the per-partition expectations for snapshotting.
func (sv *SequenceValidator) ExportExpected() map[string]int64 {
	out := make(map[string]int64, len(sv.expectedNextSeq))
	for k, v := range sv.expectedNextSeq {
		out[k] = v
	}
	return out
}

// ExportPriceSequences copies the per-market price watermarks for snapshotting.
func (sv *SequenceValidator) ExportPriceSequences() map[string]int64 {
	out := make(map[string]int64, len(sv.lastPriceSeq))
	for k, v := range sv.lastPriceSeq {
		out[k] = v
	}
	return out
}

// SetExpectedSequence initializes a partition (used during recovery)
func (sv *SequenceValidator) SetExpectedSequence(partition string, seq int64) {
	sv.expectedNextSeq[partition] = seq
}

// SetLastPriceSequence initializes price ordering state (used during recovery)
func (sv *SequenceValidator) SetLastPriceSequence(marketID string, seq int64) {
	sv.lastPriceSeq[marketID] = seq
}
