package math_test

import (
	stdmath "math"
	"testing"

	fpmath "RangeLiq/internal/math"
)

// ============================================================================
// Test: MulDiv rounding
// ============================================================================

func TestMulDiv_RoundHalfEven(t *testing.T) {
	tests := []struct {
		name    string
		a, b, d int64
		want    int64
	}{
		{"exact", 10, 3, 6, 5},
		{"half_to_even_down", 5, 1, 2, 2},  // 2.5 -> 2
		{"half_to_even_up", 7, 1, 2, 4},    // 3.5 -> 4
		{"half_at_zero", 1, 1, 2, 0},       // 0.5 -> 0
		{"above_half", 3, 5, 4, 4},         // 3.75 -> 4
		{"below_half_stays", 10, 33, 100, 3}, // 3.3 -> 3
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fpmath.MulDiv(tt.a, tt.b, tt.d, fpmath.RoundHalfEven)
			if got != tt.want {
				t.Errorf("MulDiv(%d, %d, %d) = %d, want %d", tt.a, tt.b, tt.d, got, tt.want)
			}
		})
	}
}

func TestMulDiv_RoundDown(t *testing.T) {
	if got := fpmath.MulDiv(7, 1, 2, fpmath.RoundDown); got != 3 {
		t.Errorf("got %d, want 3", got)
	}
	if got := fpmath.MulDiv(9, 11, 10, fpmath.RoundDown); got != 9 {
		t.Errorf("got %d, want 9", got)
	}
}

func TestMulDiv_RoundUp(t *testing.T) {
	if got := fpmath.MulDiv(7, 1, 2, fpmath.RoundUp); got != 4 {
		t.Errorf("got %d, want 4", got)
	}
	if got := fpmath.MulDiv(6, 1, 2, fpmath.RoundUp); got != 3 {
		t.Errorf("exact division should not round up: got %d, want 3", got)
	}
}

func TestMulDiv_LargeIntermediate(t *testing.T) {
	// a * b overflows int64 but the quotient fits.
	a := int64(1) << 40
	b := int64(1) << 30
	got := fpmath.MulDiv(a, b, b, fpmath.RoundDown)
	if got != a {
		t.Errorf("got %d, want %d", got, a)
	}
}

// ============================================================================
// Test: MulDivSat
// ============================================================================

func TestMulDivSat_NoSaturation(t *testing.T) {
	got, saturated := fpmath.MulDivSat(10, 10, 4, fpmath.RoundDown)
	if saturated {
		t.Fatal("unexpected saturation")
	}
	if got != 25 {
		t.Errorf("got %d, want 25", got)
	}
}

func TestMulDivSat_Saturates(t *testing.T) {
	got, saturated := fpmath.MulDivSat(stdmath.MaxInt64, 2, 1, fpmath.RoundDown)
	if !saturated {
		t.Fatal("expected saturation")
	}
	if got != stdmath.MaxInt64 {
		t.Errorf("got %d, want MaxInt64", got)
	}
}

// ============================================================================
// Test: SaturatingAdd
// ============================================================================

func TestSaturatingAdd(t *testing.T) {
	sum, saturated := fpmath.SaturatingAdd(1, 2)
	if saturated || sum != 3 {
		t.Errorf("got (%d, %v), want (3, false)", sum, saturated)
	}

	sum, saturated = fpmath.SaturatingAdd(stdmath.MaxInt64, 1)
	if !saturated || sum != stdmath.MaxInt64 {
		t.Errorf("got (%d, %v), want (MaxInt64, true)", sum, saturated)
	}

	sum, saturated = fpmath.SaturatingAdd(stdmath.MaxInt64-5, 5)
	if saturated || sum != stdmath.MaxInt64 {
		t.Errorf("exact fit should not saturate: got (%d, %v)", sum, saturated)
	}
}
