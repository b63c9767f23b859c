package math

import (
	"math"
	"math/big"
	"sync"
)

// BpsScale is the basis-point denominator: 10000 bps = 100%.
const BpsScale int64 = 10_000

// SecondsPerYear is the annualization denominator for penalty rates (365d).
const SecondsPerYear int64 = 31_536_000

// Int128 is a pooled big.Int for intermediate calculations
var int128Pool = &sync.Pool{
	New: func() interface{} {
		return new(big.Int)
	},
}

func getInt128() *big.Int {
	return int128Pool.Get().(*big.Int)
}

func putInt128(v *big.Int) {
	v.SetInt64(0) // Clear before returning to pool
	int128Pool.Put(v)
}

// MultiplyInt128 performs a * b using int128 to prevent overflow
func MultiplyInt128(a, b int64) *big.Int {
	result := getInt128()
	result.Mul(big.NewInt(a), big.NewInt(b))
	return result
}

type RoundingMode int

const (
	RoundHalfEven RoundingMode = iota // Banker's rounding (default)
	RoundDown
	RoundUp
)

// DivideInt128 performs numerator / denominator with rounding
func DivideInt128(numerator *big.Int, denominator int64, roundingMode RoundingMode) int64 {
	denom := big.NewInt(denominator)
	quotient := getInt128()
	remainder := getInt128()

	quotient.DivMod(numerator, denom, remainder)

	result := quotient.Int64()

	switch roundingMode {
	case RoundHalfEven:
		// Banker's rounding: if remainder == denominator/2, round to even
		half := big.NewInt(denominator / 2)
		cmp := remainder.Cmp(half)

		if cmp > 0 {
			result++
		} else if cmp == 0 && denominator%2 == 0 {
			if result%2 != 0 {
				result++
			}
		}
	case RoundUp:
		if remainder.Sign() != 0 {
			result++
		}
	}

	putInt128(quotient)
	putInt128(remainder)

	return result
}

// MulDiv computes a * b / denom through an int128 intermediate.
func MulDiv(a, b, denom int64, roundingMode RoundingMode) int64 {
	num := MultiplyInt128(a, b)
	result := DivideInt128(num, denom, roundingMode)
	putInt128(num)
	return result
}

// MulDivSat is MulDiv with saturation: if the true quotient exceeds the
// int64 range it returns MaxInt64 and saturated=true instead of wrapping.
func MulDivSat(a, b, denom int64, roundingMode RoundingMode) (result int64, saturated bool) {
	num := MultiplyInt128(a, b)
	defer putInt128(num)

	quotient := getInt128()
	quotient.Quo(num, big.NewInt(denom))
	fits := quotient.IsInt64()
	putInt128(quotient)

	if !fits {
		return math.MaxInt64, true
	}
	return DivideInt128(num, denom, roundingMode), false
}

// SaturatingAdd adds two non-negative int64s, clamping at MaxInt64.
func SaturatingAdd(a, b int64) (sum int64, saturated bool) {
	if a > math.MaxInt64-b {
		return math.MaxInt64, true
	}
	return a + b, false
}
