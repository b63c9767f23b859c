package core

import (
	"fmt"
	"sort"
	"time"

	"RangeLiq/internal/event"
	"RangeLiq/internal/ledger"
	fpmath "RangeLiq/internal/math"
	"RangeLiq/internal/observability"
	"RangeLiq/internal/state"

	"github.com/google/uuid"
)

// LiquidationCore is the single-threaded event processor for one market.
// All mutation of the registry and of any one position happens inside the
// synchronous handling of one event; collaborator effects buffer in the
// outbox and flush only after state is committed.
type LiquidationCore struct {
	sequence int64
	params   *state.EngineParams

	store       *state.PositionStore
	registry    *state.TickRegistry
	converter   *state.BandConverter
	accruer     *state.PenaltyAccruer
	distributor *state.PenaltyDistributor

	journalGen *ledger.JournalGenerator
	balances   *ledger.BalanceTracker

	hasher            *StateHasher
	idempotency       *IdempotencyChecker
	sequenceValidator *SequenceValidator
	metrics           *observability.Metrics

	outbox *Outbox
	sinks  []CollaboratorSink

	persistChan    chan<- CoreOutput
	projectionChan chan<- CoreOutput

	// Renders events back into their wire form for the event log, so replay
	// can re-parse stored payloads. Set by the shell; the core stays free of
	// serialization concerns.
	marshalPayload func(event.Event) ([]byte, error)

	// Last applied tick. Time between two updates is charged at this tick:
	// price only moves at update events.
	currentTick int64
	hasTick     bool

	// During event-log replay, outputs and collaborator effects are
	// suppressed: they were already emitted the first time.
	replaying bool
}

// CoreOutput is what the core emits per applied batch.
type CoreOutput struct {
	Envelope *event.EventEnvelope
	Batch    *ledger.Batch

	// Touched positions, by value, for projection upserts.
	Positions []state.Position

	// Non-nil when this batch came from a liquidation step.
	Step *LiquidationStep

	// Current tick at emission, for progress projections.
	Tick int64
}

// LiquidationStep summarizes one conversion for history projections.
type LiquidationStep struct {
	PositionID      uuid.UUID
	CollateralDelta int64
	DebtDelta       int64
	PenaltyToLP     int64
	PenaltyToTaker  int64
	FullyLiquidated bool
}

// appliedBatch pairs a journal batch with its optional step summary.
type appliedBatch struct {
	batch *ledger.Batch
	step  *LiquidationStep
}

// PositionFailure records one isolated per-position failure in a batch.
type PositionFailure struct {
	PositionID uuid.UUID
	Err        error
}

// PartialFailureReport surfaces isolated failures and saturation warnings
// from a price-update batch instead of silently swallowing them.
type PartialFailureReport struct {
	Failures    []PositionFailure
	Saturations []uuid.UUID
}

func (r *PartialFailureReport) Empty() bool {
	return r == nil || (len(r.Failures) == 0 && len(r.Saturations) == 0)
}

// EventResult reports the effects of one processed event.
type EventResult struct {
	Duplicate bool
	Report    *PartialFailureReport

	// Repay only.
	PositionID         uuid.UUID
	CollateralReturned int64

	// Borrow only.
	OpenedPositionID uuid.UUID
}

func NewLiquidationCore(
	startSequence int64,
	params *state.EngineParams,
	persistChan, projectionChan chan<- CoreOutput,
	dbChecker DBIdempotencyChecker,
	metrics *observability.Metrics,
) (*LiquidationCore, error) {
	if err := state.ValidateEngineParams(params); err != nil {
		return nil, fmt.Errorf("engine params: %w", err)
	}
	if _, ok := ledger.GetAssetID(params.BaseAsset); !ok {
		return nil, fmt.Errorf("unknown base asset: %s", params.BaseAsset)
	}
	if _, ok := ledger.GetAssetID(params.QuoteAsset); !ok {
		return nil, fmt.Errorf("unknown quote asset: %s", params.QuoteAsset)
	}

	return &LiquidationCore{
		sequence:          startSequence,
		params:            params,
		store:             state.NewPositionStore(),
		registry:          state.NewTickRegistry(),
		converter:         state.NewBandConverter(params),
		accruer:           state.NewPenaltyAccruer(params),
		distributor:       state.NewPenaltyDistributor(params),
		journalGen:        ledger.NewJournalGenerator(),
		balances:          ledger.NewBalanceTracker(),
		hasher:            NewStateHasher(),
		idempotency:       NewIdempotencyChecker(1_000_000, dbChecker),
		sequenceValidator: NewSequenceValidator(),
		metrics:           metrics,
		outbox:            NewOutbox(),
		persistChan:       persistChan,
		projectionChan:    projectionChan,
	}, nil
}

// SetPayloadMarshaler wires the serializer used for event log payloads.
func (c *LiquidationCore) SetPayloadMarshaler(fn func(event.Event) ([]byte, error)) {
	c.marshalPayload = fn
}

// RegisterSink attaches a collaborator sink. Sinks receive outbound messages
// in order, after each event's state is committed.
func (c *LiquidationCore) RegisterSink(s CollaboratorSink) {
	c.sinks = append(c.sinks, s)
}

// Store exposes the position store for read-only use (queries, snapshots).
func (c *LiquidationCore) Store() *state.PositionStore { return c.store }

// Registry exposes the tick registry for read-only use.
func (c *LiquidationCore) Registry() *state.TickRegistry { return c.registry }

// Balances exposes the conservation ledger for read-only use.
func (c *LiquidationCore) Balances() *ledger.BalanceTracker { return c.balances }

// Sequence returns the next sequence the core will assign.
func (c *LiquidationCore) Sequence() int64 { return c.sequence }

// CurrentTick returns the last applied tick.
func (c *LiquidationCore) CurrentTick() (int64, bool) { return c.currentTick, c.hasTick }

// ProcessEvent is the main processing pipeline.
func (c *LiquidationCore) ProcessEvent(evt event.Event) (*EventResult, error) {
	start := time.Now()
	eventType := evt.EventType().String()
	idempotencyKey := evt.IdempotencyKey()

	if evt.MarketID() != c.params.MarketID {
		return nil, fmt.Errorf("event for market %s routed to core for %s",
			evt.MarketID(), c.params.MarketID)
	}

	// Step 1: Idempotency check (two-tier)
	isDuplicate := c.idempotency.IsDuplicate(eventType, idempotencyKey)

	// Step 2: Ordering validation. Price updates must arrive in the order
	// the price moved; request streams tolerate gaps.
	if priceEvt, ok := evt.(*event.PriceUpdate); ok {
		if isDuplicate {
			c.reject(eventType, "duplicate")
			return &EventResult{Duplicate: true}, nil
		}
		if err := c.sequenceValidator.ValidatePriceSequence(priceEvt.Market, priceEvt.PriceSequence); err != nil {
			if c.metrics != nil {
				c.metrics.PriceOutOfOrder.Inc()
			}
			c.reject(eventType, "out_of_order")
			return nil, err
		}
	} else {
		if err := c.sequenceValidator.ValidateSequence(c.partition(evt), evt.SourceSequence(), isDuplicate); err != nil {
			c.reject(eventType, "out_of_order")
			return nil, fmt.Errorf("sequence validation failed: %w", err)
		}
		if isDuplicate {
			c.reject(eventType, "duplicate")
			return &EventResult{Duplicate: true}, nil
		}
	}

	// Step 3: Dispatch
	result := &EventResult{Report: &PartialFailureReport{}}
	var batches []appliedBatch
	var touched []*state.Position
	var err error

	switch e := evt.(type) {
	case *event.BorrowRequest:
		batches, touched, err = c.handleBorrow(e, result)
	case *event.RepayRequest:
		batches, touched, err = c.handleRepay(e, result)
	case *event.PriceUpdate:
		batches, touched = c.handlePriceUpdate(e, result)
	default:
		err = fmt.Errorf("unknown event type %T", evt)
	}
	if err != nil {
		c.reject(eventType, "invalid")
		return nil, err
	}

	// Every event leaves at least one envelope in the log, even when no
	// position produced journals.
	if len(batches) == 0 {
		batches = []appliedBatch{{batch: &ledger.Batch{
			BatchID:   uuid.New(),
			EventRef:  idempotencyKey,
			Sequence:  c.sequence,
			Timestamp: c.getEventTimestamp(evt).UnixMicro(),
		}}}
	}

	// Step 4: Apply batches
	var wirePayload []byte
	if c.marshalPayload != nil {
		wirePayload, err = c.marshalPayload(evt)
		if err != nil {
			c.reject(eventType, "marshal")
			return nil, fmt.Errorf("marshal payload: %w", err)
		}
	}

	outputs := make([]CoreOutput, 0, len(batches))

	for _, ab := range batches {
		batch := ab.batch
		if len(batch.Journals) > 0 {
			if verr := batch.Validate(); verr != nil {
				panic(fmt.Sprintf("FATAL: malformed batch: %v", verr))
			}
			if aerr := c.balances.ApplyBatch(batch); aerr != nil {
				panic(fmt.Sprintf("FATAL: apply batch: %v", aerr))
			}
		}

		stateDigest := c.computeStateDigest(touched)
		prevHash := c.hasher.GetPrevHash()
		stateHash := c.hasher.ComputeHash(c.sequence, stateDigest)

		envelope := &event.EventEnvelope{
			Sequence:       c.sequence,
			IdempotencyKey: idempotencyKey,
			EventType:      evt.EventType(),
			MarketID:       evt.MarketID(),
			Timestamp:      c.getEventTimestamp(evt),
			SourceSequence: evt.SourceSequence(),
			Payload:        wirePayload,
			StateHash:      stateHash,
			PrevHash:       prevHash,
		}

		outputs = append(outputs, CoreOutput{
			Envelope:  envelope,
			Batch:     batch,
			Positions: copyPositions(touched),
			Step:      ab.step,
			Tick:      c.currentTick,
		})
		c.sequence++
	}

	// Step 5: Post-checks. Registry/store desync means double-liquidation
	// risk: halt rather than continue.
	c.postCheckInvariants(touched)

	// Step 6: Emit outputs. Persist channel uses a blocking send
	// (backpressure); projection channel drops on full and rebuilds from
	// the event log.
	for _, output := range outputs {
		if c.replaying {
			break
		}
		if c.persistChan != nil {
			select {
			case c.persistChan <- output:
			default:
				if c.metrics != nil {
					c.metrics.PersistBackpressure.Inc()
				}
				c.persistChan <- output
			}
		}
		if c.projectionChan != nil {
			select {
			case c.projectionChan <- output:
			default:
				if c.metrics != nil {
					c.metrics.ProjectionDrops.Inc()
				}
			}
		}
	}

	// Step 7: State is committed — flush collaborator effects.
	msgs := c.outbox.Drain()
	if !c.replaying {
		for _, sink := range c.sinks {
			Dispatch(msgs, sink)
		}
	}

	// Step 8: Mark processed
	c.idempotency.MarkProcessed(eventType, idempotencyKey)

	if c.metrics != nil {
		c.metrics.CoreEventsApplied.WithLabelValues(eventType).Inc()
		c.metrics.CoreEventDuration.WithLabelValues(eventType).Observe(time.Since(start).Seconds())
		c.metrics.CoreSequence.Set(float64(c.sequence))
		c.metrics.ActivePositions.Set(float64(c.registry.ActiveCount()))
		c.metrics.DedupLRUSize.Set(float64(c.idempotency.LRUSize()))
	}

	return result, nil
}

func (c *LiquidationCore) reject(eventType, reason string) {
	if c.metrics != nil {
		c.metrics.CoreEventsRejected.WithLabelValues(eventType, reason).Inc()
	}
}

func (c *LiquidationCore) partition(evt event.Event) string {
	return fmt.Sprintf("requests:%s", evt.MarketID())
}

// getEventTimestamp extracts the versioned timestamp from an event.
// The core never calls time.Now() for state: all timestamps are inputs.
func (c *LiquidationCore) getEventTimestamp(evt event.Event) time.Time {
	switch e := evt.(type) {
	case *event.PriceUpdate:
		return time.UnixMicro(e.TimestampUs)
	case *event.BorrowRequest:
		return e.Timestamp
	case *event.RepayRequest:
		return e.Timestamp
	default:
		panic(fmt.Sprintf("FATAL: getEventTimestamp called with unhandled event type %T", evt))
	}
}

// --- Borrow ---

func (c *LiquidationCore) handleBorrow(evt *event.BorrowRequest, result *EventResult) ([]appliedBatch, []*state.Position, error) {
	if evt.Collateral <= 0 || evt.Debt <= 0 {
		return nil, nil, fmt.Errorf("%w: collateral=%d debt=%d",
			state.ErrInvalidAmount, evt.Collateral, evt.Debt)
	}
	if !c.params.ThresholdInBounds(evt.ThresholdBps) {
		return nil, nil, fmt.Errorf("%w: %d", state.ErrInvalidThreshold, evt.ThresholdBps)
	}
	if !c.hasTick {
		return nil, nil, fmt.Errorf("%w: no price observed for market %s yet",
			state.ErrInvalidRange, c.params.MarketID)
	}
	if c.store.Get(evt.RequestID) != nil {
		return nil, nil, fmt.Errorf("position %s already exists", evt.RequestID)
	}

	tickLower, tickUpper, err := c.converter.ComputeBand(
		c.currentTick, evt.Collateral, evt.Debt, evt.ThresholdBps, evt.Dir)
	if err != nil {
		return nil, nil, err
	}

	nowUs := evt.Timestamp.UnixMicro()
	pos := &state.Position{
		ID:                  evt.RequestID, // stable across replay
		Owner:               evt.Owner,
		Market:              evt.Market,
		Dir:                 evt.Dir,
		InitialCollateral:   evt.Collateral,
		RemainingCollateral: evt.Collateral,
		DebtPrincipal:       evt.Debt,
		RemainingDebt:       evt.Debt,
		TickLower:           tickLower,
		TickUpper:           tickUpper,
		ThresholdBps:        evt.ThresholdBps,
		OpenTimestampUs:     nowUs,
		LastAccrualUs:       nowUs,
		State:               state.PositionStateHealthy,
	}

	c.store.Put(pos)
	if err := c.registry.Insert(pos.ID, tickLower, tickUpper, pos.Dir); err != nil {
		c.store.Delete(pos.ID)
		return nil, nil, fmt.Errorf("registry insert: %w", err)
	}

	asset := c.params.CollateralAsset(pos.Dir)
	assetID, _ := ledger.GetAssetID(asset)
	batch := c.journalGen.GenerateOpen(pos.ID, assetID, pos.InitialCollateral,
		evt.IdempotencyKey(), c.sequence, nowUs)

	if c.metrics != nil {
		c.metrics.PositionsOpened.Inc()
	}
	result.OpenedPositionID = pos.ID

	return []appliedBatch{{batch: batch}}, []*state.Position{pos}, nil
}

// --- Repay ---

func (c *LiquidationCore) handleRepay(evt *event.RepayRequest, result *EventResult) ([]appliedBatch, []*state.Position, error) {
	pos := c.store.Get(evt.PositionID)
	if pos == nil || !pos.IsActive() {
		return nil, nil, fmt.Errorf("%w: %s", state.ErrPositionNotActive, evt.PositionID)
	}
	if evt.Caller != pos.Owner {
		return nil, nil, fmt.Errorf("%w: caller %s", state.ErrUnauthorized, evt.Caller)
	}

	nowUs := evt.Timestamp.UnixMicro()

	// Final accrual at the prevailing tick.
	if c.accruer.Accrue(pos, c.currentTick, nowUs) {
		c.recordSaturation(result, pos.ID)
	}

	// No crossing trade exists at repay, so the whole accumulated penalty
	// goes to the liquidity providers.
	toLP := pos.AccumulatedPenalty
	pos.AccumulatedPenalty = 0

	returned := pos.RemainingCollateral
	pos.RemainingCollateral = 0
	pos.RemainingDebt = 0
	c.transition(pos, state.PositionStateClosed)
	pos.Version++

	if err := c.registry.Remove(pos.ID); err != nil {
		panic(fmt.Sprintf("FATAL: registry desync on repay of %s: %v", pos.ID, err))
	}

	asset := c.params.CollateralAsset(pos.Dir)
	assetID, _ := ledger.GetAssetID(asset)
	batch := c.journalGen.GenerateRepay(pos.ID, assetID, returned, toLP, 0,
		evt.IdempotencyKey(), c.sequence, nowUs)

	c.outbox.ReturnCollateral(pos.Owner, returned, asset)
	c.outbox.CreditLP(toLP, asset)

	if c.metrics != nil {
		c.metrics.PositionsClosed.WithLabelValues("repaid").Inc()
		if toLP > 0 {
			c.metrics.PenaltyDistributed.WithLabelValues("lp").Add(float64(toLP))
		}
	}

	result.PositionID = pos.ID
	result.CollateralReturned = returned

	return []appliedBatch{{batch: batch}}, []*state.Position{pos}, nil
}

// --- Price update ---

func (c *LiquidationCore) handlePriceUpdate(evt *event.PriceUpdate, result *EventResult) ([]appliedBatch, []*state.Position) {
	newTick := evt.Tick
	prevTick := newTick
	if c.hasTick {
		prevTick = c.currentTick
	}
	nowUs := evt.TimestampUs

	// Candidates: positions whose band overlaps the traveled span. This
	// covers positions in-band at the previous tick (their accrual window
	// closes now), positions in-band at the new tick, and positions whose
	// entire band was jumped over in one update. Processing order is
	// deterministic (sorted ids).
	lo, hi := prevTick, newTick
	if lo > hi {
		lo, hi = hi, lo
	}
	candidates := c.registry.PositionsInSpan(lo, hi, evt.TradeDir)

	var batches []appliedBatch
	var touched []*state.Position

	for _, id := range candidates {
		ab, pos, err := c.stepPosition(id, prevTick, newTick, nowUs, evt, result)
		if err != nil {
			result.Report.Failures = append(result.Report.Failures, PositionFailure{
				PositionID: id,
				Err:        err,
			})
			if c.metrics != nil {
				c.metrics.BatchPositionFailures.Inc()
			}
			continue
		}
		if ab != nil {
			batches = append(batches, *ab)
		}
		if pos != nil {
			touched = append(touched, pos)
		}
	}

	c.currentTick = newTick
	c.hasTick = true

	return batches, touched
}

// stepPosition executes one liquidation step:
// accrual -> progress -> delta -> distribute -> mutate -> maybe close.
func (c *LiquidationCore) stepPosition(
	id uuid.UUID,
	prevTick, newTick, nowUs int64,
	evt *event.PriceUpdate,
	result *EventResult,
) (*appliedBatch, *state.Position, error) {
	pos := c.store.Get(id)
	if pos == nil {
		return nil, nil, fmt.Errorf("registry id %s missing from store", id)
	}
	if !pos.IsActive() {
		return nil, nil, fmt.Errorf("closed position %s still registered", id)
	}

	if c.accruer.Accrue(pos, prevTick, nowUs) {
		c.recordSaturation(result, pos.ID)
	}

	progress := state.ProgressBps(pos, newTick)
	delta := state.LiquidationDelta(pos, progress)
	full := progress >= fpmath.BpsScale

	if full {
		// Far boundary reached: consume the remainder exactly, ignoring
		// chunk shaping — no residue, no over-liquidation.
		delta = pos.RemainingCollateral
	} else if delta > 0 {
		delta = c.shapeChunk(pos, delta, nowUs)
	}

	if delta == 0 {
		// No conversion this update: only the lifecycle label may move.
		changed := c.markBandState(pos, newTick)
		if changed {
			return nil, pos, nil
		}
		return nil, nil, nil
	}

	toLP, toTaker := c.distributor.Distribute(pos)

	cumulative := pos.AlreadyLiquidated() + delta
	debtDelta := state.DebtDeltaForCumulative(pos, cumulative)

	pos.RemainingCollateral -= delta
	pos.RemainingDebt -= debtDelta
	pos.LastStepUs = nowUs

	fully := pos.RemainingCollateral == 0
	if pos.State == state.PositionStateHealthy {
		c.transition(pos, state.PositionStateUnderwater)
	}
	if fully {
		c.transition(pos, state.PositionStateClosed)
	} else {
		c.transition(pos, state.PositionStatePartiallyLiquidated)
	}
	pos.Version++

	if fully {
		if err := c.registry.Remove(pos.ID); err != nil {
			panic(fmt.Sprintf("FATAL: registry desync closing %s: %v", pos.ID, err))
		}
	}

	asset := c.params.CollateralAsset(pos.Dir)
	assetID, _ := ledger.GetAssetID(asset)
	batch := c.journalGen.GenerateLiquidationStep(pos.ID, assetID, delta, toLP, toTaker,
		evt.IdempotencyKey(), c.sequence, nowUs)
	step := &LiquidationStep{
		PositionID:      pos.ID,
		CollateralDelta: delta,
		DebtDelta:       debtDelta,
		PenaltyToLP:     toLP,
		PenaltyToTaker:  toTaker,
		FullyLiquidated: fully,
	}

	c.outbox.CreditLP(toLP, asset)
	c.outbox.CreditTaker(evt.Taker, toTaker, asset)
	c.outbox.NotifyLiquidation(pos.ID, debtDelta, delta, fully)

	if c.metrics != nil {
		c.metrics.LiquidationSteps.Inc()
		c.metrics.CollateralLiquidated.Add(float64(delta))
		c.metrics.DebtRepaid.Add(float64(debtDelta))
		if toLP > 0 {
			c.metrics.PenaltyDistributed.WithLabelValues("lp").Add(float64(toLP))
		}
		if toTaker > 0 {
			c.metrics.PenaltyDistributed.WithLabelValues("taker").Add(float64(toTaker))
		}
		if fully {
			c.metrics.PositionsClosed.WithLabelValues("liquidated").Inc()
		}
	}

	return &appliedBatch{batch: batch, step: step}, pos, nil
}

// shapeChunk applies the configured step bounds: a minimum interval between
// steps and minimum/maximum chunk sizes as fractions of initial collateral.
func (c *LiquidationCore) shapeChunk(pos *state.Position, delta, nowUs int64) int64 {
	if iv := c.params.MinLiquidationInterval; iv > 0 && pos.LastStepUs > 0 {
		if nowUs-pos.LastStepUs < iv.Microseconds() {
			return 0
		}
	}

	if c.params.MaxChunkBps < fpmath.BpsScale {
		maxChunk := fpmath.MulDiv(pos.InitialCollateral, c.params.MaxChunkBps,
			fpmath.BpsScale, fpmath.RoundDown)
		if delta > maxChunk {
			delta = maxChunk
		}
	}
	if c.params.MinChunkBps > 0 {
		minChunk := fpmath.MulDiv(pos.InitialCollateral, c.params.MinChunkBps,
			fpmath.BpsScale, fpmath.RoundDown)
		if delta < minChunk {
			return 0
		}
	}
	return delta
}

// markBandState moves the lifecycle label when the tick crosses a band edge
// without consuming collateral. The label only returns to Healthy while
// nothing has been consumed: liquidation is a ratchet.
func (c *LiquidationCore) markBandState(pos *state.Position, newTick int64) bool {
	inBand := pos.InBand(newTick)

	if inBand && pos.State == state.PositionStateHealthy {
		c.transition(pos, state.PositionStateUnderwater)
		pos.Version++
		return true
	}
	if !inBand && pos.State == state.PositionStateUnderwater && pos.AlreadyLiquidated() == 0 {
		c.transition(pos, state.PositionStateHealthy)
		pos.Version++
		return true
	}
	return false
}

func (c *LiquidationCore) transition(pos *state.Position, next state.PositionState) {
	if pos.State == next {
		return
	}
	if !pos.State.CanTransitionTo(next) {
		panic(fmt.Sprintf("FATAL: invalid state transition for %s: %s -> %s",
			pos.ID, pos.State, next))
	}
	pos.State = next
}

func (c *LiquidationCore) recordSaturation(result *EventResult, id uuid.UUID) {
	result.Report.Saturations = append(result.Report.Saturations, id)
	if c.metrics != nil {
		c.metrics.SaturationWarnings.Inc()
	}
}

// --- Digest & invariants ---

// computeStateDigest builds canonical bytes over the touched positions.
func (c *LiquidationCore) computeStateDigest(touched []*state.Position) []byte {
	sorted := make([]*state.Position, len(touched))
	copy(sorted, touched)
	sort.Slice(sorted, func(i, j int) bool {
		return lessUUID(sorted[i].ID, sorted[j].ID)
	})

	digest := make([]byte, 0, len(sorted)*160+16)
	digest = appendInt64LE(digest, c.currentTick)
	digest = appendInt64LE(digest, int64(c.registry.ActiveCount()))
	for _, p := range sorted {
		digest = append(digest, p.CanonicalBytes()...)
	}
	return digest
}

func (c *LiquidationCore) postCheckInvariants(touched []*state.Position) {
	if err := c.registry.CheckConsistency(c.store); err != nil {
		panic(fmt.Sprintf("FATAL: registry/store desync: %v", err))
	}

	for _, p := range touched {
		if p.RemainingCollateral < 0 || p.RemainingCollateral > p.InitialCollateral {
			panic(fmt.Sprintf("FATAL: collateral out of bounds for %s: %d/%d",
				p.ID, p.RemainingCollateral, p.InitialCollateral))
		}
		if p.RemainingDebt < 0 {
			panic(fmt.Sprintf("FATAL: negative debt for %s: %d", p.ID, p.RemainingDebt))
		}
		if (p.RemainingCollateral == 0) != (p.State == state.PositionStateClosed) {
			panic(fmt.Sprintf("FATAL: collateral/state mismatch for %s: remaining=%d state=%s",
				p.ID, p.RemainingCollateral, p.State))
		}
		asset := c.params.CollateralAsset(p.Dir)
		assetID, _ := ledger.GetAssetID(asset)
		if err := c.balances.ValidateReserveNonNegative(p.ID, assetID); err != nil {
			panic(fmt.Sprintf("FATAL: %v", err))
		}
	}

	// Periodic global conservation check: the double-entry ledger must sum
	// to zero per asset.
	if c.sequence > 0 && c.sequence%1000 == 0 {
		totals := c.balances.ComputeGlobalBalance()
		for assetID, total := range totals {
			if total != 0 {
				panic(fmt.Sprintf("FATAL: global balance non-zero for asset %d: %d (at seq %d)",
					assetID, total, c.sequence))
			}
		}
	}
}

// --- Helpers ---

func copyPositions(touched []*state.Position) []state.Position {
	out := make([]state.Position, 0, len(touched))
	for _, p := range touched {
		out = append(out, *p)
	}
	return out
}

func lessUUID(a, b uuid.UUID) bool {
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

func appendInt64LE(buf []byte, v int64) []byte {
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
