package state_test

import (
	"testing"

	"RangeLiq/internal/event"
	"RangeLiq/internal/state"

	"github.com/google/uuid"
)

func bandPosition(dir event.Direction, lower, upper, initial, remaining int64) *state.Position {
	return &state.Position{
		ID:                  uuid.New(),
		Dir:                 dir,
		InitialCollateral:   initial,
		RemainingCollateral: remaining,
		DebtPrincipal:       initial / 2,
		RemainingDebt:       remaining / 2,
		TickLower:           lower,
		TickUpper:           upper,
		State:               state.PositionStateUnderwater,
	}
}

// ============================================================================
// Test: ProgressBps
// ============================================================================

func TestProgressBps_BaseDirection(t *testing.T) {
	// Band [0, 100], entered from above as price falls.
	p := bandPosition(event.DirectionBase, 0, 100, 10_000, 10_000)

	tests := []struct {
		tick int64
		want int64
	}{
		{150, 0},      // above the band
		{100, 0},      // at the near edge
		{75, 2_500},   // quarter depth
		{50, 5_000},   // midpoint
		{0, 10_000},   // at the far edge
		{-10, 10_000}, // beyond: clamped
	}
	for _, tt := range tests {
		if got := state.ProgressBps(p, tt.tick); got != tt.want {
			t.Errorf("ProgressBps(tick=%d) = %d, want %d", tt.tick, got, tt.want)
		}
	}
}

func TestProgressBps_QuoteDirection(t *testing.T) {
	// Band [0, 100], entered from below as price rises.
	p := bandPosition(event.DirectionQuote, 0, 100, 10_000, 10_000)

	tests := []struct {
		tick int64
		want int64
	}{
		{-10, 0},
		{0, 0},
		{30, 3_000},
		{100, 10_000},
		{140, 10_000},
	}
	for _, tt := range tests {
		if got := state.ProgressBps(p, tt.tick); got != tt.want {
			t.Errorf("ProgressBps(tick=%d) = %d, want %d", tt.tick, got, tt.want)
		}
	}
}

func TestProgressBps_RoundsDown(t *testing.T) {
	// Width 2230, depth 890: 3991.03... bps truncates to 3991.
	p := bandPosition(event.DirectionBase, -6_340, -4_110, 2_000_000, 2_000_000)
	if got := state.ProgressBps(p, -5_000); got != 3_991 {
		t.Errorf("got %d, want 3991", got)
	}
}

// ============================================================================
// Test: liquidation targets and the ratchet
// ============================================================================

func TestTargetLiquidated_ExactAtFullProgress(t *testing.T) {
	// An odd collateral amount: proportional math rounds, but full progress
	// must consume exactly everything.
	p := bandPosition(event.DirectionBase, 0, 100, 9_999, 9_999)

	if got := state.TargetLiquidated(p, 10_000); got != 9_999 {
		t.Errorf("full progress target = %d, want 9999", got)
	}
	if got := state.TargetLiquidated(p, 5_000); got != 4_999 {
		t.Errorf("half progress target = %d, want 4999", got)
	}
	if got := state.TargetLiquidated(p, 0); got != 0 {
		t.Errorf("zero progress target = %d, want 0", got)
	}
}

func TestLiquidationDelta_Ratchet(t *testing.T) {
	// 3000 of 10000 already consumed.
	p := bandPosition(event.DirectionBase, 0, 100, 10_000, 7_000)

	if got := state.LiquidationDelta(p, 5_000); got != 2_000 {
		t.Errorf("advancing delta = %d, want 2000", got)
	}
	// Price retreated within the band: target falls below what was already
	// consumed, and the ratchet holds at zero instead of restoring.
	if got := state.LiquidationDelta(p, 2_000); got != 0 {
		t.Errorf("retreating delta = %d, want 0", got)
	}
	if got := state.LiquidationDelta(p, 3_000); got != 0 {
		t.Errorf("break-even delta = %d, want 0", got)
	}
}

func TestDebtDeltaForCumulative(t *testing.T) {
	p := bandPosition(event.DirectionBase, 0, 100, 10_000, 10_000)
	p.DebtPrincipal = 4_000
	p.RemainingDebt = 4_000

	if got := state.DebtDeltaForCumulative(p, 5_000); got != 2_000 {
		t.Errorf("got %d, want 2000", got)
	}

	// With 1000 of debt already retired, only the gap to target remains.
	p.RemainingDebt = 3_000
	if got := state.DebtDeltaForCumulative(p, 5_000); got != 1_000 {
		t.Errorf("got %d, want 1000", got)
	}

	// Full consumption retires the remaining debt exactly.
	if got := state.DebtDeltaForCumulative(p, 10_000); got != 3_000 {
		t.Errorf("got %d, want 3000", got)
	}
}

func TestDebtDeltaForCumulative_NeverNegative(t *testing.T) {
	p := bandPosition(event.DirectionBase, 0, 100, 10_000, 10_000)
	p.DebtPrincipal = 4_000
	p.RemainingDebt = 1_000 // 3000 already retired

	if got := state.DebtDeltaForCumulative(p, 5_000); got != 0 {
		t.Errorf("got %d, want 0", got)
	}
}
