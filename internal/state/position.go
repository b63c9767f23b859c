package state

import (
	"RangeLiq/internal/event"

	"github.com/google/uuid"
)

// PositionState tracks a position through the liquidation lifecycle
type PositionState int32

const (
	PositionStateHealthy PositionState = iota
	PositionStateUnderwater
	PositionStatePartiallyLiquidated
	PositionStateClosed
)

func (ps PositionState) String() string {
	switch ps {
	case PositionStateHealthy:
		return "Healthy"
	case PositionStateUnderwater:
		return "Underwater"
	case PositionStatePartiallyLiquidated:
		return "PartiallyLiquidated"
	case PositionStateClosed:
		return "Closed"
	default:
		return "Unknown"
	}
}

// CanTransitionTo validates state transitions
func (ps PositionState) CanTransitionTo(next PositionState) bool {
	validTransitions := map[PositionState][]PositionState{
		PositionStateHealthy: {
			PositionStateUnderwater,
			PositionStateClosed, // explicit repay
		},
		PositionStateUnderwater: {
			PositionStateHealthy, // price left the band before any consumption
			PositionStatePartiallyLiquidated,
			PositionStateClosed,
		},
		PositionStatePartiallyLiquidated: {
			PositionStatePartiallyLiquidated, // multiple partial steps
			PositionStateClosed,
		},
		PositionStateClosed: {},
	}

	allowed, ok := validTransitions[ps]
	if !ok {
		return false
	}

	for _, allowedState := range allowed {
		if next == allowedState {
			return true
		}
	}

	return false
}

// Position is a borrower's collateral reserved against a liquidation band.
// Collateral and debt amounts are int64 base units; timestamps are versioned
// input microseconds, never wall clock.
type Position struct {
	ID     uuid.UUID
	Owner  string
	Market string
	Dir    event.Direction

	InitialCollateral   int64
	RemainingCollateral int64 // non-increasing; 0 <=> Closed (unless repaid)
	DebtPrincipal       int64
	RemainingDebt       int64 // non-increasing

	// Liquidation band, fixed for the position's life.
	// Invariant: TickLower < TickUpper, both multiples of tick spacing.
	TickLower int64
	TickUpper int64

	ThresholdBps int64

	OpenTimestampUs    int64
	LastAccrualUs      int64
	LastStepUs         int64 // last liquidation step, for min-interval gating
	AccumulatedPenalty int64 // reset to zero after each liquidation step

	State   PositionState
	Version int64 // bumped on every mutation
}

// InBand reports whether tick lies inside the liquidation band (inclusive).
func (p *Position) InBand(tick int64) bool {
	return tick >= p.TickLower && tick <= p.TickUpper
}

// IsActive reports whether the position still participates in price updates.
func (p *Position) IsActive() bool {
	return p.State != PositionStateClosed
}

// AlreadyLiquidated returns collateral consumed so far.
func (p *Position) AlreadyLiquidated() int64 {
	return p.InitialCollateral - p.RemainingCollateral
}

// DebtRepaid returns debt retired so far (by liquidation, not explicit repay).
func (p *Position) DebtRepaid() int64 {
	return p.DebtPrincipal - p.RemainingDebt
}

// BandWidth returns the tick span of the band.
func (p *Position) BandWidth() int64 {
	return p.TickUpper - p.TickLower
}

// CanonicalBytes returns deterministic serialization for hashing
func (p *Position) CanonicalBytes() []byte {
	buf := make([]byte, 0, 160)

	buf = append(buf, p.ID[:]...)

	buf = append(buf, byte(len(p.Owner)))
	buf = append(buf, []byte(p.Owner)...)
	buf = append(buf, byte(len(p.Market)))
	buf = append(buf, []byte(p.Market)...)

	buf = appendInt64(buf, int64(p.Dir))
	buf = appendInt64(buf, p.InitialCollateral)
	buf = appendInt64(buf, p.RemainingCollateral)
	buf = appendInt64(buf, p.DebtPrincipal)
	buf = appendInt64(buf, p.RemainingDebt)
	buf = appendInt64(buf, p.TickLower)
	buf = appendInt64(buf, p.TickUpper)
	buf = appendInt64(buf, p.ThresholdBps)
	buf = appendInt64(buf, p.OpenTimestampUs)
	buf = appendInt64(buf, p.LastAccrualUs)
	buf = appendInt64(buf, p.LastStepUs)
	buf = appendInt64(buf, p.AccumulatedPenalty)
	buf = appendInt64(buf, int64(p.State))
	buf = appendInt64(buf, p.Version)

	return buf
}

func appendInt64(buf []byte, v int64) []byte {
	return append(buf,
		byte(v),
		byte(v>>8),
		byte(v>>16),
		byte(v>>24),
		byte(v>>32),
		byte(v>>40),
		byte(v>>48),
		byte(v>>56),
	)
}
