package state_test

import (
	"testing"

	"RangeLiq/internal/event"
	"RangeLiq/internal/state"
)

// ============================================================================
// Test: penalty distribution
// ============================================================================

func TestDistribute_SplitAndReset(t *testing.T) {
	pd := state.NewPenaltyDistributor(testParams()) // 90/10 split
	p := bandPosition(event.DirectionBase, 0, 100, 10_000, 10_000)
	p.AccumulatedPenalty = 1_000

	toLP, toTaker := pd.Distribute(p)
	if toLP != 900 || toTaker != 100 {
		t.Errorf("split = (%d, %d), want (900, 100)", toLP, toTaker)
	}
	if p.AccumulatedPenalty != 0 {
		t.Errorf("accumulated penalty not reset: %d", p.AccumulatedPenalty)
	}
}

func TestDistribute_TakerAbsorbsRemainder(t *testing.T) {
	pd := state.NewPenaltyDistributor(testParams())
	p := bandPosition(event.DirectionBase, 0, 100, 10_000, 10_000)
	p.AccumulatedPenalty = 1_001

	// 1001 * 9000 / 10000 rounds down to 900; the taker share picks up the
	// truncated unit so the sum is conserved.
	toLP, toTaker := pd.Distribute(p)
	if toLP != 900 || toTaker != 101 {
		t.Errorf("split = (%d, %d), want (900, 101)", toLP, toTaker)
	}
	if toLP+toTaker != 1_001 {
		t.Errorf("split lost units: %d + %d != 1001", toLP, toTaker)
	}
}

func TestDistribute_ZeroPenalty(t *testing.T) {
	pd := state.NewPenaltyDistributor(testParams())
	p := bandPosition(event.DirectionBase, 0, 100, 10_000, 10_000)

	toLP, toTaker := pd.Distribute(p)
	if toLP != 0 || toTaker != 0 {
		t.Errorf("split = (%d, %d), want (0, 0)", toLP, toTaker)
	}
}
