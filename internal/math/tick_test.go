package math_test

import (
	"testing"

	fpmath "RangeLiq/internal/math"
)

// ============================================================================
// Test: TickOffsetForRatio
// ============================================================================

func TestTickOffsetForRatio_EqualIsZero(t *testing.T) {
	if got := fpmath.TickOffsetForRatio(12345, 12345); got != 0 {
		t.Errorf("got %v, want exactly 0", got)
	}
}

func TestTickOffsetForRatio_Doubling(t *testing.T) {
	// ln(2) / ln(1.0001) is just under 6932 ticks.
	off := fpmath.TickOffsetForRatio(2, 1)
	if fpmath.FloorTick(off) != 6931 || fpmath.CeilTick(off) != 6932 {
		t.Errorf("doubling offset %v should lie in (6931, 6932)", off)
	}
}

func TestTickOffsetForRatio_Antisymmetric(t *testing.T) {
	up := fpmath.TickOffsetForRatio(1060, 1000)
	down := fpmath.TickOffsetForRatio(1000, 1060)
	if up <= 0 {
		t.Errorf("offset for ratio > 1 should be positive, got %v", up)
	}
	if diff := up + down; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("offsets should negate: %v + %v = %v", up, down, diff)
	}
}

// ============================================================================
// Test: tick rounding and spacing alignment
// ============================================================================

func TestFloorCeilTick(t *testing.T) {
	if got := fpmath.FloorTick(-6349.1); got != -6350 {
		t.Errorf("FloorTick(-6349.1) = %d, want -6350", got)
	}
	if got := fpmath.CeilTick(-6349.1); got != -6349 {
		t.Errorf("CeilTick(-6349.1) = %d, want -6349", got)
	}
	if got := fpmath.FloorTick(42); got != 42 {
		t.Errorf("FloorTick(42) = %d, want 42", got)
	}
}

func TestFloorToSpacing(t *testing.T) {
	tests := []struct {
		tick, spacing, want int64
	}{
		{25, 10, 20},
		{20, 10, 20},
		{-25, 10, -30},
		{-20, 10, -20},
		{9, 10, 0},
		{-1, 10, -10},
	}
	for _, tt := range tests {
		if got := fpmath.FloorToSpacing(tt.tick, tt.spacing); got != tt.want {
			t.Errorf("FloorToSpacing(%d, %d) = %d, want %d", tt.tick, tt.spacing, got, tt.want)
		}
	}
}

func TestCeilToSpacing(t *testing.T) {
	tests := []struct {
		tick, spacing, want int64
	}{
		{21, 10, 30},
		{20, 10, 20},
		{-21, 10, -20},
		{-20, 10, -20},
		{1, 10, 10},
		{-9, 10, 0},
	}
	for _, tt := range tests {
		if got := fpmath.CeilToSpacing(tt.tick, tt.spacing); got != tt.want {
			t.Errorf("CeilToSpacing(%d, %d) = %d, want %d", tt.tick, tt.spacing, got, tt.want)
		}
	}
}

func TestClampTick(t *testing.T) {
	if got := fpmath.ClampTick(900_000, fpmath.MinTick, fpmath.MaxTick); got != fpmath.MaxTick {
		t.Errorf("got %d, want %d", got, fpmath.MaxTick)
	}
	if got := fpmath.ClampTick(-900_000, fpmath.MinTick, fpmath.MaxTick); got != fpmath.MinTick {
		t.Errorf("got %d, want %d", got, fpmath.MinTick)
	}
	if got := fpmath.ClampTick(100, fpmath.MinTick, fpmath.MaxTick); got != 100 {
		t.Errorf("got %d, want 100", got)
	}
}
