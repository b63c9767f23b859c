package event

import "fmt"

// Direction identifies which of the market's two assets moved (and, on
// positions, which asset is held as collateral). Tick math sign conventions
// flip with it.
type Direction int32

const (
	// DirectionBase: collateral is the base asset; liquidation band lies
	// below the opening tick and is entered as price falls.
	DirectionBase Direction = iota
	// DirectionQuote: collateral is the quote asset; band lies above the
	// opening tick and is entered as price rises.
	DirectionQuote
)

func (d Direction) String() string {
	switch d {
	case DirectionBase:
		return "base"
	case DirectionQuote:
		return "quote"
	default:
		return "unknown"
	}
}

// PriceUpdate is delivered once per price-changing trade in the host market.
// PriceSequence is the market's own monotonic trade sequence; Tick is the
// post-trade tick coordinate.
type PriceUpdate struct {
	Market        string
	Tick          int64
	TradeDir      Direction // side whose crossing caused the move
	Taker         string    // identity credited with the price-taker penalty share
	PriceSequence int64
	TimestampUs   int64
}

func (e *PriceUpdate) IdempotencyKey() string {
	return fmt.Sprintf("price:%s:%d", e.Market, e.PriceSequence)
}

func (e *PriceUpdate) EventType() EventType { return EventTypePriceUpdate }
func (e *PriceUpdate) MarketID() string     { return e.Market }
func (e *PriceUpdate) SourceSequence() int64 {
	return e.PriceSequence
}
