package state

import (
	"fmt"

	"RangeLiq/internal/event"
	fpmath "RangeLiq/internal/math"
)

// BandConverter derives a position's liquidation band from loan terms.
// Pure: no state beyond the injected policy parameters.
type BandConverter struct {
	params *EngineParams
}

func NewBandConverter(params *EngineParams) *BandConverter {
	return &BandConverter{params: params}
}

// ComputeBand converts loan terms into (tickLower, tickUpper).
//
// The trigger boundary sits where loan-to-value reaches the threshold, the
// full boundary where debt equals collateral value. Both are exact-log tick
// offsets of the respective price ratios, rounded toward the current-price
// side of the band so the opening tick can never land inside the band from
// rounding alone. Debt is inflated once by interest + fee buffer before the
// boundaries are computed.
func (bc *BandConverter) ComputeBand(
	currentTick int64,
	collateral int64,
	debt int64,
	thresholdBps int64,
	dir event.Direction,
) (tickLower, tickUpper int64, err error) {
	p := bc.params

	if collateral <= 0 || debt <= 0 {
		return 0, 0, fmt.Errorf("%w: collateral=%d debt=%d", ErrInvalidAmount, collateral, debt)
	}
	if !p.ThresholdInBounds(thresholdBps) {
		return 0, 0, fmt.Errorf("%w: %d not in [%d, %d]",
			ErrInvalidThreshold, thresholdBps, p.ThresholdMinBps, p.ThresholdMaxBps)
	}

	maxDebt := p.MaxDebt(debt)

	switch dir {
	case event.DirectionBase:
		// Price falling is dangerous: band below the opening tick.
		// full price  = maxDebt / collateral
		// trigger     = maxDebt * 10000 / (collateral * threshold)
		fullOff := fpmath.TickOffsetForRatio(maxDebt, collateral)
		trigOff := fullOff + fpmath.TickOffsetForRatio(fpmath.BpsScale, thresholdBps)

		tickLower = fpmath.CeilToSpacing(fpmath.CeilTick(fullOff), p.TickSpacing)
		tickUpper = fpmath.CeilToSpacing(fpmath.CeilTick(trigOff), p.TickSpacing)

	case event.DirectionQuote:
		// Price rising is dangerous: band above the opening tick.
		// full price  = collateral / maxDebt
		// trigger     = collateral * threshold / (maxDebt * 10000)
		fullOff := fpmath.TickOffsetForRatio(collateral, maxDebt)
		trigOff := fullOff + fpmath.TickOffsetForRatio(thresholdBps, fpmath.BpsScale)

		tickUpper = fpmath.FloorToSpacing(fpmath.FloorTick(fullOff), p.TickSpacing)
		tickLower = fpmath.FloorToSpacing(fpmath.FloorTick(trigOff), p.TickSpacing)

	default:
		return 0, 0, fmt.Errorf("%w: unknown direction %d", ErrInvalidRange, dir)
	}

	// Enforce the minimum band width by symmetric expansion.
	if width := tickUpper - tickLower; width < p.MinBandWidthTicks {
		deficit := p.MinBandWidthTicks - width
		pad := fpmath.CeilToSpacing((deficit+1)/2, p.TickSpacing)
		tickLower -= pad
		tickUpper += pad
	}

	// Clamp to the global tick domain, spacing-aligned inward.
	domainLo := fpmath.CeilToSpacing(p.MinTick, p.TickSpacing)
	domainHi := fpmath.FloorToSpacing(p.MaxTick, p.TickSpacing)
	if tickLower < domainLo {
		tickLower = domainLo
	}
	if tickUpper > domainHi {
		tickUpper = domainHi
	}

	if tickLower >= tickUpper {
		return 0, 0, fmt.Errorf("%w: degenerate band [%d, %d]", ErrInvalidRange, tickLower, tickUpper)
	}

	// A position must open healthy, never instantly underwater.
	if currentTick >= tickLower && currentTick <= tickUpper {
		return 0, 0, fmt.Errorf("%w: opening tick %d inside band [%d, %d]",
			ErrInvalidRange, currentTick, tickLower, tickUpper)
	}
	if dir == event.DirectionBase && currentTick <= tickUpper {
		return 0, 0, fmt.Errorf("%w: opening tick %d not above band [%d, %d]",
			ErrInvalidRange, currentTick, tickLower, tickUpper)
	}
	if dir == event.DirectionQuote && currentTick >= tickLower {
		return 0, 0, fmt.Errorf("%w: opening tick %d not below band [%d, %d]",
			ErrInvalidRange, currentTick, tickLower, tickUpper)
	}

	return tickLower, tickUpper, nil
}
