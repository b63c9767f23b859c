package state

import (
	"RangeLiq/internal/event"
	fpmath "RangeLiq/internal/math"
)

// Liquidation progress: the fraction of original collateral that should have
// been converted given how deep the price has traveled into the band. Pure
// functions of (position, tick).

// ProgressBps returns progress in basis points, clamped to [0, 10000].
// Depth is measured from the band edge nearer the opening price toward the
// far edge, in the direction given by the position's collateral flag.
func ProgressBps(p *Position, currentTick int64) int64 {
	width := p.BandWidth()
	if width <= 0 {
		return 0
	}

	var depth int64
	switch p.Dir {
	case event.DirectionBase:
		// Band entered from above: near edge is TickUpper.
		depth = p.TickUpper - currentTick
	case event.DirectionQuote:
		// Band entered from below: near edge is TickLower.
		depth = currentTick - p.TickLower
	default:
		return 0
	}

	if depth <= 0 {
		return 0
	}
	if depth >= width {
		return fpmath.BpsScale
	}
	return fpmath.MulDiv(depth, fpmath.BpsScale, width, fpmath.RoundDown)
}

// TargetLiquidated returns the collateral that should be consumed by now.
// Exactly InitialCollateral at 10000 bps: no residue, no over-liquidation.
func TargetLiquidated(p *Position, progressBps int64) int64 {
	if progressBps >= fpmath.BpsScale {
		return p.InitialCollateral
	}
	return fpmath.MulDiv(p.InitialCollateral, progressBps, fpmath.BpsScale, fpmath.RoundDown)
}

// LiquidationDelta returns the collateral to convert in this step. This is
// the ratchet: the delta is never negative, so collateral consumed in one
// step is never restored even if price retreats within the band.
func LiquidationDelta(p *Position, progressBps int64) int64 {
	delta := TargetLiquidated(p, progressBps) - p.AlreadyLiquidated()
	if delta < 0 {
		return 0
	}
	return delta
}

// DebtDeltaForCumulative returns the debt to retire in this step given the
// cumulative collateral that will have been consumed after it. Debt retires
// in proportion to collateral actually converted (which may lag the target
// when chunk caps apply), and hits exactly zero when collateral does.
func DebtDeltaForCumulative(p *Position, cumulativeCollateral int64) int64 {
	var targetDebt int64
	if cumulativeCollateral >= p.InitialCollateral {
		targetDebt = p.DebtPrincipal
	} else {
		targetDebt = fpmath.MulDiv(p.DebtPrincipal, cumulativeCollateral,
			p.InitialCollateral, fpmath.RoundDown)
	}
	delta := targetDebt - p.DebtRepaid()
	if delta < 0 {
		return 0
	}
	return delta
}
