package ingestion

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/rs/zerolog"

	"RangeLiq/internal/observability"
)

// CollaboratorPublisher implements the core's collaborator sink over NATS.
// The core calls the sink synchronously after state commit; the publisher
// enqueues and a worker goroutine publishes, so NATS latency never stalls
// the event loop. A full queue drops the message: downstream consumers
// reconcile from the event log.
type CollaboratorPublisher struct {
	js      jetstream.JetStream
	market  string
	queue   chan outboundJSON
	metrics *observability.Metrics
	log     zerolog.Logger
}

type outboundJSON struct {
	subject string
	payload any
}

type creditLPJSON struct {
	Market      string `json:"market"`
	Amount      int64  `json:"amount"`
	Asset       string `json:"asset"`
	TimestampUs int64  `json:"timestamp_us"`
}

type creditTakerJSON struct {
	Market      string `json:"market"`
	Recipient   string `json:"recipient"`
	Amount      int64  `json:"amount"`
	Asset       string `json:"asset"`
	TimestampUs int64  `json:"timestamp_us"`
}

type liquidationNoticeJSON struct {
	Market               string `json:"market"`
	PositionID           string `json:"position_id"`
	DebtRepaid           int64  `json:"debt_repaid"`
	CollateralLiquidated int64  `json:"collateral_liquidated"`
	FullyLiquidated      bool   `json:"fully_liquidated"`
	TimestampUs          int64  `json:"timestamp_us"`
}

type collateralReturnJSON struct {
	Market      string `json:"market"`
	Owner       string `json:"owner"`
	Amount      int64  `json:"amount"`
	Asset       string `json:"asset"`
	TimestampUs int64  `json:"timestamp_us"`
}

func NewCollaboratorPublisher(js jetstream.JetStream, market string, queueSize int, metrics *observability.Metrics) *CollaboratorPublisher {
	return &CollaboratorPublisher{
		js:      js,
		market:  market,
		queue:   make(chan outboundJSON, queueSize),
		metrics: metrics,
		log:     observability.NewLogger("collaborator_publisher"),
	}
}

func (cp *CollaboratorPublisher) CreditLiquidityProviders(amount int64, asset string) {
	cp.enqueue(fmt.Sprintf("liq.credits.lp.%s", cp.market), creditLPJSON{
		Market: cp.market, Amount: amount, Asset: asset,
		TimestampUs: time.Now().UnixMicro(),
	})
}

func (cp *CollaboratorPublisher) CreditPriceTaker(recipient string, amount int64, asset string) {
	cp.enqueue(fmt.Sprintf("liq.credits.taker.%s", cp.market), creditTakerJSON{
		Market: cp.market, Recipient: recipient, Amount: amount, Asset: asset,
		TimestampUs: time.Now().UnixMicro(),
	})
}

func (cp *CollaboratorPublisher) NotifyLiquidation(positionID uuid.UUID, debtRepaid, collateralLiquidated int64, fullyLiquidated bool) {
	cp.enqueue(fmt.Sprintf("liq.notify.%s", cp.market), liquidationNoticeJSON{
		Market:               cp.market,
		PositionID:           positionID.String(),
		DebtRepaid:           debtRepaid,
		CollateralLiquidated: collateralLiquidated,
		FullyLiquidated:      fullyLiquidated,
		TimestampUs:          time.Now().UnixMicro(),
	})
}

func (cp *CollaboratorPublisher) ReturnCollateral(owner string, amount int64, asset string) {
	cp.enqueue(fmt.Sprintf("liq.returns.%s", cp.market), collateralReturnJSON{
		Market: cp.market, Owner: owner, Amount: amount, Asset: asset,
		TimestampUs: time.Now().UnixMicro(),
	})
}

func (cp *CollaboratorPublisher) enqueue(subject string, payload any) {
	select {
	case cp.queue <- outboundJSON{subject: subject, payload: payload}:
	default:
		if cp.metrics != nil {
			cp.metrics.PublishDrops.Inc()
		}
		cp.log.Warn().Str("subject", subject).Msg("outbound queue full, dropping")
	}
}

// Run drains the queue until the context is cancelled.
func (cp *CollaboratorPublisher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg := <-cp.queue:
			data, err := json.Marshal(msg.payload)
			if err != nil {
				cp.log.Error().Err(err).Str("subject", msg.subject).Msg("marshal outbound")
				continue
			}
			if _, err := cp.js.Publish(ctx, msg.subject, data); err != nil {
				// Non-fatal: consumers can reconcile from the event log.
				cp.log.Warn().Err(err).Str("subject", msg.subject).Msg("outbound publish failed")
			}
		}
	}
}

// EnsureOutboundStream creates the stream carrying collaborator effects.
func EnsureOutboundStream(ctx context.Context, js jetstream.JetStream) error {
	_, err := js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:      "LIQ_OUTBOUND",
		Subjects:  []string{"liq.credits.>", "liq.notify.>", "liq.returns.>"},
		Storage:   jetstream.FileStorage,
		Retention: jetstream.LimitsPolicy,
		MaxAge:    72 * time.Hour,
		Replicas:  1,
	})
	if err != nil {
		return fmt.Errorf("create outbound stream: %w", err)
	}
	return nil
}
