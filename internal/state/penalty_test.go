package state_test

import (
	stdmath "math"
	"testing"

	"RangeLiq/internal/event"
	fpmath "RangeLiq/internal/math"
	"RangeLiq/internal/state"

	"github.com/google/uuid"
)

const yearUs = fpmath.SecondsPerYear * 1_000_000

func inBandPosition(collateral, thresholdBps int64) *state.Position {
	return &state.Position{
		ID:                  uuid.New(),
		Owner:               "alice",
		Market:              "ETH-USDC",
		Dir:                 event.DirectionBase,
		InitialCollateral:   collateral,
		RemainingCollateral: collateral,
		DebtPrincipal:       collateral / 2,
		RemainingDebt:       collateral / 2,
		TickLower:           0,
		TickUpper:           100,
		ThresholdBps:        thresholdBps,
		State:               state.PositionStateUnderwater,
	}
}

// ============================================================================
// Test: penalty accrual
// ============================================================================

func TestAccrue_OneYearAtBaseRate(t *testing.T) {
	pa := state.NewPenaltyAccruer(testParams())
	p := inBandPosition(1_000_000_000, 5_000) // base rate only: 200 bps/yr

	saturated := pa.Accrue(p, 50, yearUs)
	if saturated {
		t.Fatal("unexpected saturation")
	}
	if p.AccumulatedPenalty != 20_000_000 {
		t.Errorf("penalty = %d, want 20000000", p.AccumulatedPenalty)
	}
	if p.LastAccrualUs != yearUs {
		t.Errorf("accrual clock = %d, want %d", p.LastAccrualUs, yearUs)
	}
}

func TestAccrue_RateScalesWithThreshold(t *testing.T) {
	pa := state.NewPenaltyAccruer(testParams())
	p := inBandPosition(1_000_000_000, 8_000) // 200 + 3000 = 3200 bps/yr

	pa.Accrue(p, 50, yearUs)
	if p.AccumulatedPenalty != 320_000_000 {
		t.Errorf("penalty = %d, want 320000000", p.AccumulatedPenalty)
	}
}

func TestAccrue_HalfYearHalves(t *testing.T) {
	pa := state.NewPenaltyAccruer(testParams())
	p := inBandPosition(1_000_000_000, 5_000)

	pa.Accrue(p, 50, yearUs/2)
	if p.AccumulatedPenalty != 10_000_000 {
		t.Errorf("penalty = %d, want 10000000", p.AccumulatedPenalty)
	}
}

func TestAccrue_OutOfBandAdvancesClockWithoutCharge(t *testing.T) {
	pa := state.NewPenaltyAccruer(testParams())
	p := inBandPosition(1_000_000_000, 8_000)

	// Tick 200 is outside [0, 100]: the window is free, but the clock must
	// still advance so a later re-entry cannot charge it retroactively.
	pa.Accrue(p, 200, yearUs)
	if p.AccumulatedPenalty != 0 {
		t.Errorf("out-of-band time charged: %d", p.AccumulatedPenalty)
	}
	if p.LastAccrualUs != yearUs {
		t.Errorf("accrual clock = %d, want %d", p.LastAccrualUs, yearUs)
	}

	// Re-entry one year later charges only the in-band year.
	pa.Accrue(p, 50, 2*yearUs)
	if p.AccumulatedPenalty != 320_000_000 {
		t.Errorf("penalty = %d, want 320000000", p.AccumulatedPenalty)
	}
}

func TestAccrue_StaleTimestampIsZeroElapsed(t *testing.T) {
	pa := state.NewPenaltyAccruer(testParams())
	p := inBandPosition(1_000_000_000, 8_000)
	p.LastAccrualUs = yearUs

	saturated := pa.Accrue(p, 50, yearUs-1)
	if saturated {
		t.Fatal("unexpected saturation")
	}
	if p.AccumulatedPenalty != 0 {
		t.Errorf("stale timestamp charged penalty: %d", p.AccumulatedPenalty)
	}
	if p.LastAccrualUs != yearUs {
		t.Errorf("accrual clock moved backwards: %d", p.LastAccrualUs)
	}
}

func TestAccrue_ZeroCollateralNoCharge(t *testing.T) {
	pa := state.NewPenaltyAccruer(testParams())
	p := inBandPosition(1_000_000_000, 8_000)
	p.RemainingCollateral = 0

	pa.Accrue(p, 50, yearUs)
	if p.AccumulatedPenalty != 0 {
		t.Errorf("penalty on empty reserve: %d", p.AccumulatedPenalty)
	}
}

func TestAccrue_SaturatesAtMaxInt64(t *testing.T) {
	pa := state.NewPenaltyAccruer(testParams())
	p := inBandPosition(stdmath.MaxInt64, 8_000)

	saturated := pa.Accrue(p, 50, stdmath.MaxInt64)
	if !saturated {
		t.Fatal("expected saturation")
	}
	if p.AccumulatedPenalty != stdmath.MaxInt64 {
		t.Errorf("penalty = %d, want MaxInt64", p.AccumulatedPenalty)
	}
}
