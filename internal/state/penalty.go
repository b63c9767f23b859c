package state

import (
	"math/big"

	fpmath "RangeLiq/internal/math"
)

// PenaltyAccruer charges time-weighted penalty against a position while the
// price sits inside its band. Must run before every progress computation so
// the elapsed window never spans a liquidation step.
type PenaltyAccruer struct {
	params *EngineParams
}

func NewPenaltyAccruer(params *EngineParams) *PenaltyAccruer {
	return &PenaltyAccruer{params: params}
}

// Accrue advances the accrual clock to nowUs. currentTick is the tick that
// prevailed during the elapsed window (the tick before the update being
// processed — price only moves at update events). Out-of-band time is never
// charged: if that tick is outside the band the clock advances with no
// penalty, so a later re-entry cannot charge retroactively.
//
// penalty = remainingCollateral * rate * elapsed / (10000 * secondsPerYear)
//
// The accumulated penalty saturates at MaxInt64 rather than wrapping;
// saturation is reported so the caller can surface a warning.
func (pa *PenaltyAccruer) Accrue(p *Position, currentTick int64, nowUs int64) (saturated bool) {
	if nowUs < p.LastAccrualUs {
		// Timestamps are versioned inputs and must advance; treat a stale
		// timestamp as zero elapsed rather than charging negative time.
		return false
	}

	if !p.InBand(currentTick) {
		p.LastAccrualUs = nowUs
		return false
	}

	elapsedUs := nowUs - p.LastAccrualUs
	p.LastAccrualUs = nowUs
	if elapsedUs == 0 || p.RemainingCollateral == 0 {
		return false
	}

	rateBps := pa.params.PenaltyRateBps(p.ThresholdBps)
	if rateBps == 0 {
		return false
	}

	// collateral * rate * elapsedUs / (10000 * secondsPerYear * 1e6)
	num := fpmath.MultiplyInt128(p.RemainingCollateral, rateBps)
	num.Mul(num, big.NewInt(elapsedUs))
	denom := new(big.Int).Mul(
		big.NewInt(fpmath.BpsScale*fpmath.SecondsPerYear),
		big.NewInt(1_000_000),
	)
	num.Quo(num, denom)

	var penalty int64
	if !num.IsInt64() {
		penalty = int64(^uint64(0) >> 1) // MaxInt64
		saturated = true
	} else {
		penalty = num.Int64()
	}

	sum, satAdd := fpmath.SaturatingAdd(p.AccumulatedPenalty, penalty)
	p.AccumulatedPenalty = sum
	return saturated || satAdd
}
