package state_test

import (
	"bytes"
	"testing"

	"RangeLiq/internal/event"
	"RangeLiq/internal/state"
)

// ============================================================================
// Test: lifecycle transitions
// ============================================================================

func TestPositionState_Transitions(t *testing.T) {
	tests := []struct {
		from, to state.PositionState
		ok       bool
	}{
		{state.PositionStateHealthy, state.PositionStateUnderwater, true},
		{state.PositionStateHealthy, state.PositionStateClosed, true},
		{state.PositionStateHealthy, state.PositionStatePartiallyLiquidated, false},
		{state.PositionStateUnderwater, state.PositionStateHealthy, true},
		{state.PositionStateUnderwater, state.PositionStatePartiallyLiquidated, true},
		{state.PositionStateUnderwater, state.PositionStateClosed, true},
		{state.PositionStatePartiallyLiquidated, state.PositionStatePartiallyLiquidated, true},
		{state.PositionStatePartiallyLiquidated, state.PositionStateClosed, true},
		{state.PositionStatePartiallyLiquidated, state.PositionStateHealthy, false},
		{state.PositionStatePartiallyLiquidated, state.PositionStateUnderwater, false},
		{state.PositionStateClosed, state.PositionStateHealthy, false},
		{state.PositionStateClosed, state.PositionStateUnderwater, false},
	}

	for _, tt := range tests {
		if got := tt.from.CanTransitionTo(tt.to); got != tt.ok {
			t.Errorf("%s -> %s: got %v, want %v", tt.from, tt.to, got, tt.ok)
		}
	}
}

func TestPositionState_String(t *testing.T) {
	tests := []struct {
		ps   state.PositionState
		want string
	}{
		{state.PositionStateHealthy, "Healthy"},
		{state.PositionStateUnderwater, "Underwater"},
		{state.PositionStatePartiallyLiquidated, "PartiallyLiquidated"},
		{state.PositionStateClosed, "Closed"},
	}
	for _, tt := range tests {
		if got := tt.ps.String(); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}

// ============================================================================
// Test: position accessors
// ============================================================================

func TestPosition_InBandInclusive(t *testing.T) {
	p := bandPosition(event.DirectionBase, -100, 100, 10_000, 10_000)

	for _, tick := range []int64{-100, 0, 100} {
		if !p.InBand(tick) {
			t.Errorf("tick %d should be in band", tick)
		}
	}
	for _, tick := range []int64{-101, 101} {
		if p.InBand(tick) {
			t.Errorf("tick %d should be outside band", tick)
		}
	}
}

func TestPosition_DerivedAmounts(t *testing.T) {
	p := bandPosition(event.DirectionBase, -100, 100, 10_000, 7_000)
	p.DebtPrincipal = 4_000
	p.RemainingDebt = 2_500

	if got := p.AlreadyLiquidated(); got != 3_000 {
		t.Errorf("AlreadyLiquidated = %d, want 3000", got)
	}
	if got := p.DebtRepaid(); got != 1_500 {
		t.Errorf("DebtRepaid = %d, want 1500", got)
	}
	if got := p.BandWidth(); got != 200 {
		t.Errorf("BandWidth = %d, want 200", got)
	}
}

// ============================================================================
// Test: canonical serialization
// ============================================================================

func TestCanonicalBytes_Deterministic(t *testing.T) {
	p := bandPosition(event.DirectionBase, -100, 100, 10_000, 7_000)
	p.Owner = "alice"
	p.Market = "ETH-USDC"

	first := p.CanonicalBytes()
	second := p.CanonicalBytes()
	if !bytes.Equal(first, second) {
		t.Error("serialization not deterministic")
	}
}

func TestCanonicalBytes_SensitiveToMutation(t *testing.T) {
	p := bandPosition(event.DirectionBase, -100, 100, 10_000, 7_000)
	before := p.CanonicalBytes()

	p.Version++
	if bytes.Equal(before, p.CanonicalBytes()) {
		t.Error("version bump must change canonical bytes")
	}

	p.Version--
	p.RemainingCollateral--
	if bytes.Equal(before, p.CanonicalBytes()) {
		t.Error("collateral change must change canonical bytes")
	}
}
