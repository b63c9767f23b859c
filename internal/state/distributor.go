package state

import (
	fpmath "RangeLiq/internal/math"
)

// PenaltyDistributor splits accumulated penalty between liquidity providers
// and the price taker whose trade caused the crossing, by a fixed ratio.
type PenaltyDistributor struct {
	params *EngineParams
}

func NewPenaltyDistributor(params *EngineParams) *PenaltyDistributor {
	return &PenaltyDistributor{params: params}
}

// Distribute splits the position's accumulated penalty and resets it to zero.
// toLP + toPriceTaker equals the accumulated penalty at the moment of the
// call; the taker share absorbs the division remainder so nothing is lost.
func (pd *PenaltyDistributor) Distribute(p *Position) (toLP, toPriceTaker int64) {
	penalty := p.AccumulatedPenalty
	if penalty == 0 {
		return 0, 0
	}

	toLP = fpmath.MulDiv(penalty, pd.params.LPShareBps, fpmath.BpsScale, fpmath.RoundDown)
	toPriceTaker = penalty - toLP

	p.AccumulatedPenalty = 0
	return toLP, toPriceTaker
}
