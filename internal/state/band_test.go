package state_test

import (
	"errors"
	"testing"

	"RangeLiq/internal/event"
	"RangeLiq/internal/state"
)

func testParams() *state.EngineParams {
	return state.DefaultEngineParams("ETH-USDC")
}

// ============================================================================
// Test: ComputeBand geometry
// ============================================================================

func TestComputeBand_BaseDirection(t *testing.T) {
	bc := state.NewBandConverter(testParams())

	// collateral 2M base units, debt 1M, threshold 80%. Debt inflates to
	// 1.06M; the band sits below the opening tick.
	lower, upper, err := bc.ComputeBand(10_000, 2_000_000, 1_000_000, 8_000, event.DirectionBase)
	if err != nil {
		t.Fatalf("ComputeBand: %v", err)
	}
	if lower != -6_340 || upper != -4_110 {
		t.Errorf("band = [%d, %d], want [-6340, -4110]", lower, upper)
	}
}

func TestComputeBand_QuoteDirection(t *testing.T) {
	bc := state.NewBandConverter(testParams())

	// Same loan terms mirrored: quote collateral puts the band above the
	// opening tick.
	lower, upper, err := bc.ComputeBand(0, 2_000_000, 1_000_000, 8_000, event.DirectionQuote)
	if err != nil {
		t.Fatalf("ComputeBand: %v", err)
	}
	if lower != 4_110 || upper != 6_340 {
		t.Errorf("band = [%d, %d], want [4110, 6340]", lower, upper)
	}
}

func TestComputeBand_SpacingAndWidth(t *testing.T) {
	p := testParams()
	bc := state.NewBandConverter(p)

	lower, upper, err := bc.ComputeBand(10_000, 3_333_333, 1_234_567, 7_500, event.DirectionBase)
	if err != nil {
		t.Fatalf("ComputeBand: %v", err)
	}
	if lower%p.TickSpacing != 0 || upper%p.TickSpacing != 0 {
		t.Errorf("band [%d, %d] not aligned to spacing %d", lower, upper, p.TickSpacing)
	}
	if upper-lower < p.MinBandWidthTicks {
		t.Errorf("band width %d below minimum %d", upper-lower, p.MinBandWidthTicks)
	}
	if upper >= 10_000 {
		t.Errorf("base band upper %d must sit below the opening tick", upper)
	}
}

func TestComputeBand_HigherThresholdTriggersDeeper(t *testing.T) {
	bc := state.NewBandConverter(testParams())

	_, upper80, err := bc.ComputeBand(10_000, 2_000_000, 1_000_000, 8_000, event.DirectionBase)
	if err != nil {
		t.Fatalf("threshold 8000: %v", err)
	}
	_, upper90, err := bc.ComputeBand(10_000, 2_000_000, 1_000_000, 9_000, event.DirectionBase)
	if err != nil {
		t.Fatalf("threshold 9000: %v", err)
	}

	// A higher loan-to-value threshold means the price must fall further
	// before liquidation starts.
	if upper90 >= upper80 {
		t.Errorf("trigger at threshold 9000 (%d) should be below trigger at 8000 (%d)",
			upper90, upper80)
	}
	if upper90 != -5_290 {
		t.Errorf("threshold 9000 trigger = %d, want -5290", upper90)
	}
}

func TestComputeBand_MinWidthExpansion(t *testing.T) {
	p := testParams()
	p.MinBandWidthTicks = 3_000
	bc := state.NewBandConverter(p)

	// The natural band is 2230 ticks wide; the floor forces symmetric
	// expansion by a spacing-aligned pad on each side.
	lower, upper, err := bc.ComputeBand(10_000, 2_000_000, 1_000_000, 8_000, event.DirectionBase)
	if err != nil {
		t.Fatalf("ComputeBand: %v", err)
	}
	if lower != -6_730 || upper != -3_720 {
		t.Errorf("band = [%d, %d], want [-6730, -3720]", lower, upper)
	}
	if upper-lower < p.MinBandWidthTicks {
		t.Errorf("width %d still below minimum %d", upper-lower, p.MinBandWidthTicks)
	}
}

// ============================================================================
// Test: ComputeBand rejection
// ============================================================================

func TestComputeBand_InvalidAmounts(t *testing.T) {
	bc := state.NewBandConverter(testParams())

	_, _, err := bc.ComputeBand(10_000, 0, 1_000_000, 8_000, event.DirectionBase)
	if !errors.Is(err, state.ErrInvalidAmount) {
		t.Errorf("zero collateral: got %v, want ErrInvalidAmount", err)
	}
	_, _, err = bc.ComputeBand(10_000, 2_000_000, -5, 8_000, event.DirectionBase)
	if !errors.Is(err, state.ErrInvalidAmount) {
		t.Errorf("negative debt: got %v, want ErrInvalidAmount", err)
	}
}

func TestComputeBand_ThresholdOutOfBounds(t *testing.T) {
	bc := state.NewBandConverter(testParams())

	for _, thr := range []int64{4_999, 9_901, 0, -100} {
		_, _, err := bc.ComputeBand(10_000, 2_000_000, 1_000_000, thr, event.DirectionBase)
		if !errors.Is(err, state.ErrInvalidThreshold) {
			t.Errorf("threshold %d: got %v, want ErrInvalidThreshold", thr, err)
		}
	}
}

func TestComputeBand_OpeningTickInsideBand(t *testing.T) {
	bc := state.NewBandConverter(testParams())

	// The band for these terms is [-6340, -4110]; opening inside it would
	// create a position that is underwater from its first instant.
	_, _, err := bc.ComputeBand(-5_000, 2_000_000, 1_000_000, 8_000, event.DirectionBase)
	if !errors.Is(err, state.ErrInvalidRange) {
		t.Errorf("got %v, want ErrInvalidRange", err)
	}
}

func TestComputeBand_OpeningTickOnWrongSide(t *testing.T) {
	bc := state.NewBandConverter(testParams())

	// Base collateral: current tick below the whole band means the
	// position would open already fully through it.
	_, _, err := bc.ComputeBand(-8_000, 2_000_000, 1_000_000, 8_000, event.DirectionBase)
	if !errors.Is(err, state.ErrInvalidRange) {
		t.Errorf("base below band: got %v, want ErrInvalidRange", err)
	}

	// Quote collateral mirrored: current tick above the band.
	_, _, err = bc.ComputeBand(8_000, 2_000_000, 1_000_000, 8_000, event.DirectionQuote)
	if !errors.Is(err, state.ErrInvalidRange) {
		t.Errorf("quote above band: got %v, want ErrInvalidRange", err)
	}
}
