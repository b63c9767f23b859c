package math

import "math"

// Tick-coordinate math. A tick t represents the price 1.0001^t, so one tick
// is one basis point of price. The mapping from a price ratio to a tick
// offset is the exact logarithm base 1.0001 — monotonic, and identically
// zero at ratio 1.

const (
	// MinTick / MaxTick bound the global tick domain.
	MinTick int64 = -887_272
	MaxTick int64 = 887_272
)

var lnTickBase = math.Log(1.0001)

// TickOffsetForRatio returns the (fractional) tick distance corresponding to
// the price ratio num/den. Positive when num > den. Callers round with
// FloorTick/CeilTick according to their direction conventions.
func TickOffsetForRatio(num, den int64) float64 {
	if num == den {
		return 0
	}
	return (math.Log(float64(num)) - math.Log(float64(den))) / lnTickBase
}

// FloorTick rounds a fractional tick toward negative infinity.
func FloorTick(offset float64) int64 {
	return int64(math.Floor(offset))
}

// CeilTick rounds a fractional tick toward positive infinity.
func CeilTick(offset float64) int64 {
	return int64(math.Ceil(offset))
}

// FloorToSpacing aligns tick to the nearest spacing multiple at or below it.
func FloorToSpacing(tick, spacing int64) int64 {
	q := tick / spacing
	if tick%spacing != 0 && tick < 0 {
		q--
	}
	return q * spacing
}

// CeilToSpacing aligns tick to the nearest spacing multiple at or above it.
func CeilToSpacing(tick, spacing int64) int64 {
	q := tick / spacing
	if tick%spacing != 0 && tick > 0 {
		q++
	}
	return q * spacing
}

// ClampTick restricts tick to [lo, hi].
func ClampTick(tick, lo, hi int64) int64 {
	if tick < lo {
		return lo
	}
	if tick > hi {
		return hi
	}
	return tick
}
