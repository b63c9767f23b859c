package core

import (
	"github.com/google/uuid"
)

// CollaboratorSink receives the engine's outbound effects. Token custody and
// settlement live behind this interface; the engine only decides amounts.
type CollaboratorSink interface {
	CreditLiquidityProviders(amount int64, asset string)
	CreditPriceTaker(recipient string, amount int64, asset string)
	NotifyLiquidation(positionID uuid.UUID, debtRepaid, collateralLiquidated int64, fullyLiquidated bool)
	ReturnCollateral(owner string, amount int64, asset string)
}

// OutboundKind discriminates buffered outbound messages.
type OutboundKind int32

const (
	OutboundCreditLP OutboundKind = iota
	OutboundCreditTaker
	OutboundNotifyLiquidation
	OutboundReturnCollateral
)

func (k OutboundKind) String() string {
	switch k {
	case OutboundCreditLP:
		return "credit_lp"
	case OutboundCreditTaker:
		return "credit_taker"
	case OutboundNotifyLiquidation:
		return "notify_liquidation"
	case OutboundReturnCollateral:
		return "return_collateral"
	default:
		return "unknown"
	}
}

// OutboundMessage is one buffered collaborator call.
type OutboundMessage struct {
	Kind OutboundKind

	Asset     string
	Amount    int64
	Recipient string // taker or owner, by kind

	PositionID           uuid.UUID
	DebtRepaid           int64
	CollateralLiquidated int64
	FullyLiquidated      bool
}

// Outbox buffers collaborator calls during an event's transition and flushes
// them strictly after all internal state is committed. A collaborator can
// therefore never observe a partially updated position.
type Outbox struct {
	pending []OutboundMessage
}

func NewOutbox() *Outbox {
	return &Outbox{}
}

func (ob *Outbox) CreditLP(amount int64, asset string) {
	if amount <= 0 {
		return
	}
	ob.pending = append(ob.pending, OutboundMessage{
		Kind: OutboundCreditLP, Amount: amount, Asset: asset,
	})
}

func (ob *Outbox) CreditTaker(recipient string, amount int64, asset string) {
	if amount <= 0 {
		return
	}
	ob.pending = append(ob.pending, OutboundMessage{
		Kind: OutboundCreditTaker, Recipient: recipient, Amount: amount, Asset: asset,
	})
}

func (ob *Outbox) NotifyLiquidation(positionID uuid.UUID, debtRepaid, collateralLiquidated int64, fully bool) {
	ob.pending = append(ob.pending, OutboundMessage{
		Kind:                 OutboundNotifyLiquidation,
		PositionID:           positionID,
		DebtRepaid:           debtRepaid,
		CollateralLiquidated: collateralLiquidated,
		FullyLiquidated:      fully,
	})
}

func (ob *Outbox) ReturnCollateral(owner string, amount int64, asset string) {
	if amount <= 0 {
		return
	}
	ob.pending = append(ob.pending, OutboundMessage{
		Kind: OutboundReturnCollateral, Recipient: owner, Amount: amount, Asset: asset,
	})
}

// Drain returns and clears the buffered messages.
func (ob *Outbox) Drain() []OutboundMessage {
	msgs := ob.pending
	ob.pending = nil
	return msgs
}

// Len returns the number of buffered messages.
func (ob *Outbox) Len() int {
	return len(ob.pending)
}

// Dispatch replays drained messages into a sink.
func Dispatch(msgs []OutboundMessage, sink CollaboratorSink) {
	for _, m := range msgs {
		switch m.Kind {
		case OutboundCreditLP:
			sink.CreditLiquidityProviders(m.Amount, m.Asset)
		case OutboundCreditTaker:
			sink.CreditPriceTaker(m.Recipient, m.Amount, m.Asset)
		case OutboundNotifyLiquidation:
			sink.NotifyLiquidation(m.PositionID, m.DebtRepaid, m.CollateralLiquidated, m.FullyLiquidated)
		case OutboundReturnCollateral:
			sink.ReturnCollateral(m.Recipient, m.Amount, m.Asset)
		}
	}
}
