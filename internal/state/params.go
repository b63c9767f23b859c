package state

import (
	"fmt"
	"time"

	"RangeLiq/internal/event"
	fpmath "RangeLiq/internal/math"
)

// EngineParams defines liquidation policy per market.
// Injected at startup; immutable while positions are open.
type EngineParams struct {
	MarketID   string
	BaseAsset  string
	QuoteAsset string

	// Debt inflation applied once at open: debt * (1 + rate + buffer).
	BaseInterestRateBps int64
	FeeBufferBps        int64

	// Penalty accrual: rate = base + max(0, threshold - 5000) * slope,
	// annualized basis points against remaining collateral.
	BasePenaltyRateBps  int64
	PenaltyRateSlopeBps int64

	// Penalty split. Must sum to 10000.
	LPShareBps         int64
	PriceTakerShareBps int64

	// Band geometry.
	TickSpacing       int64
	MinBandWidthTicks int64 // floor on TickUpper - TickLower
	MinTick           int64
	MaxTick           int64

	// Loan-to-value threshold policy bounds (inclusive).
	ThresholdMinBps int64
	ThresholdMaxBps int64

	// Liquidation step shaping. The single incremental strategy subsumes the
	// chunked variants: a step converts at most MaxChunkBps (and, when
	// nonzero, at least MinChunkBps) of initial collateral, and steps for one
	// position are spaced at least MinLiquidationInterval apart.
	MinChunkBps            int64
	MaxChunkBps            int64
	MinLiquidationInterval time.Duration
}

// DefaultEngineParams returns MVP policy for a market.
func DefaultEngineParams(marketID string) *EngineParams {
	return &EngineParams{
		MarketID:               marketID,
		BaseAsset:              "ETH",
		QuoteAsset:             "USDC",
		BaseInterestRateBps:    500,   // 5% fixed interest
		FeeBufferBps:           100,   // 1% fee buffer
		BasePenaltyRateBps:     200,   // 2%/yr floor
		PenaltyRateSlopeBps:    1,     // +1 bps/yr per bps of threshold above 50%
		LPShareBps:             9_000, // 90/10 split
		PriceTakerShareBps:     1_000,
		TickSpacing:            10,
		MinBandWidthTicks:      20, // 2 * spacing
		MinTick:                fpmath.MinTick,
		MaxTick:                fpmath.MaxTick,
		ThresholdMinBps:        5_000, // 50%
		ThresholdMaxBps:        9_900, // 99%
		MinChunkBps:            0,
		MaxChunkBps:            10_000, // unbounded step by default
		MinLiquidationInterval: 0,
	}
}

// CollateralAsset returns the asset held as collateral for a direction.
func (p *EngineParams) CollateralAsset(dir event.Direction) string {
	if dir == event.DirectionBase {
		return p.BaseAsset
	}
	return p.QuoteAsset
}

// MaxDebt returns debt inflated by the maximum expected growth, rounded up.
func (p *EngineParams) MaxDebt(debt int64) int64 {
	return fpmath.MulDiv(debt, fpmath.BpsScale+p.BaseInterestRateBps+p.FeeBufferBps,
		fpmath.BpsScale, fpmath.RoundUp)
}

// PenaltyRateBps returns the annualized penalty rate for a threshold.
// Higher thresholds leave less buffer for liquidity providers and pay more.
func (p *EngineParams) PenaltyRateBps(thresholdBps int64) int64 {
	rate := p.BasePenaltyRateBps
	if excess := thresholdBps - 5_000; excess > 0 {
		rate += excess * p.PenaltyRateSlopeBps
	}
	return rate
}

// ThresholdInBounds checks the policy range.
func (p *EngineParams) ThresholdInBounds(thresholdBps int64) bool {
	return thresholdBps >= p.ThresholdMinBps && thresholdBps <= p.ThresholdMaxBps
}

// ValidateEngineParams checks that policy parameters are internally consistent.
func ValidateEngineParams(p *EngineParams) error {
	if p.MarketID == "" || p.BaseAsset == "" || p.QuoteAsset == "" {
		return fmt.Errorf("market_id, base_asset and quote_asset are required")
	}
	if p.TickSpacing <= 0 {
		return fmt.Errorf("tick_spacing must be > 0, got %d", p.TickSpacing)
	}
	if p.MinBandWidthTicks < 2*p.TickSpacing {
		return fmt.Errorf("min_band_width_ticks (%d) must be >= 2 * tick_spacing (%d)",
			p.MinBandWidthTicks, p.TickSpacing)
	}
	if p.MinBandWidthTicks%p.TickSpacing != 0 {
		return fmt.Errorf("min_band_width_ticks (%d) must be a multiple of tick_spacing (%d)",
			p.MinBandWidthTicks, p.TickSpacing)
	}
	if p.LPShareBps+p.PriceTakerShareBps != fpmath.BpsScale {
		return fmt.Errorf("lp_share_bps (%d) + price_taker_share_bps (%d) must sum to %d",
			p.LPShareBps, p.PriceTakerShareBps, fpmath.BpsScale)
	}
	if p.LPShareBps < 0 || p.PriceTakerShareBps < 0 {
		return fmt.Errorf("penalty shares must be non-negative")
	}
	if p.ThresholdMinBps <= 0 || p.ThresholdMaxBps >= fpmath.BpsScale ||
		p.ThresholdMinBps > p.ThresholdMaxBps {
		return fmt.Errorf("threshold bounds [%d, %d] must satisfy 0 < min <= max < %d",
			p.ThresholdMinBps, p.ThresholdMaxBps, fpmath.BpsScale)
	}
	if p.BaseInterestRateBps < 0 || p.FeeBufferBps < 0 {
		return fmt.Errorf("interest rate and fee buffer must be non-negative")
	}
	if p.BasePenaltyRateBps < 0 || p.PenaltyRateSlopeBps < 0 {
		return fmt.Errorf("penalty rate parameters must be non-negative")
	}
	if p.MinTick >= p.MaxTick {
		return fmt.Errorf("tick domain [%d, %d] is degenerate", p.MinTick, p.MaxTick)
	}
	if p.MinChunkBps < 0 || p.MaxChunkBps <= 0 || p.MaxChunkBps > fpmath.BpsScale ||
		p.MinChunkBps > p.MaxChunkBps {
		return fmt.Errorf("chunk bounds [%d, %d] must satisfy 0 <= min <= max <= %d",
			p.MinChunkBps, p.MaxChunkBps, fpmath.BpsScale)
	}
	return nil
}
