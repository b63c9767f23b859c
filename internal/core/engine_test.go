package core_test

import (
	"errors"
	"testing"
	"time"

	"RangeLiq/internal/core"
	"RangeLiq/internal/event"
	fpmath "RangeLiq/internal/math"
	"RangeLiq/internal/state"

	"github.com/google/uuid"
)

// --- Test helpers ---

// newTestCore creates a LiquidationCore with buffered channels and no DB checker.
func newTestCore(t *testing.T) (*core.LiquidationCore, chan core.CoreOutput, chan core.CoreOutput) {
	t.Helper()
	persistChan := make(chan core.CoreOutput, 1024)
	projChan := make(chan core.CoreOutput, 1024)
	c, err := core.NewLiquidationCore(0, state.DefaultEngineParams("ETH-USDC"),
		persistChan, projChan, nil, nil)
	if err != nil {
		t.Fatalf("NewLiquidationCore: %v", err)
	}
	return c, persistChan, projChan
}

func mustPrice(tick, priceSeq, tsUs int64) *event.PriceUpdate {
	return &event.PriceUpdate{
		Market:        "ETH-USDC",
		Tick:          tick,
		TradeDir:      event.DirectionBase,
		Taker:         "taker-1",
		PriceSequence: priceSeq,
		TimestampUs:   tsUs,
	}
}

func mustBorrow(id uuid.UUID, collateral, debt, thresholdBps, seq int64) *event.BorrowRequest {
	return &event.BorrowRequest{
		RequestID:    id,
		Owner:        "alice",
		Market:       "ETH-USDC",
		Collateral:   collateral,
		Debt:         debt,
		ThresholdBps: thresholdBps,
		Dir:          event.DirectionBase,
		Sequence:     seq,
		Timestamp:    time.UnixMicro(2_000_000 + seq*1_000),
	}
}

func mustRepay(positionID uuid.UUID, caller string, seq int64) *event.RepayRequest {
	return &event.RepayRequest{
		RequestID:  uuid.New(),
		PositionID: positionID,
		Caller:     caller,
		Market:     "ETH-USDC",
		Sequence:   seq,
		Timestamp:  time.UnixMicro(2_000_000 + seq*1_000),
	}
}

// openStandardPosition seeds the first price at tick 10000 and opens a base
// position whose band lands at [-6340, -4110].
func openStandardPosition(t *testing.T, c *core.LiquidationCore) uuid.UUID {
	t.Helper()
	if _, err := c.ProcessEvent(mustPrice(10_000, 1, 1_000_000)); err != nil {
		t.Fatalf("seed price: %v", err)
	}
	id := uuid.New()
	result, err := c.ProcessEvent(mustBorrow(id, 2_000_000, 1_000_000, 8_000, 1))
	if err != nil {
		t.Fatalf("borrow: %v", err)
	}
	if result.OpenedPositionID != id {
		t.Fatalf("opened id = %s, want %s", result.OpenedPositionID, id)
	}
	return id
}

func drainOutputs(ch chan core.CoreOutput) []core.CoreOutput {
	var out []core.CoreOutput
	for {
		select {
		case o := <-ch:
			out = append(out, o)
		default:
			return out
		}
	}
}

func ethReserve(t *testing.T, c *core.LiquidationCore, id uuid.UUID) int64 {
	t.Helper()
	return c.Balances().GetPositionReserve(id, 4) // ETH
}

// recordingSink captures collaborator effects in dispatch order.
type recordingSink struct {
	calls []string

	lpTotal      int64
	takerTotal   int64
	returnsTotal int64

	notifications []sinkNotification
}

type sinkNotification struct {
	positionID           uuid.UUID
	debtRepaid           int64
	collateralLiquidated int64
	fully                bool
}

func (s *recordingSink) CreditLiquidityProviders(amount int64, asset string) {
	s.calls = append(s.calls, "credit_lp")
	s.lpTotal += amount
}

func (s *recordingSink) CreditPriceTaker(recipient string, amount int64, asset string) {
	s.calls = append(s.calls, "credit_taker")
	s.takerTotal += amount
}

func (s *recordingSink) NotifyLiquidation(positionID uuid.UUID, debtRepaid, collateralLiquidated int64, fully bool) {
	s.calls = append(s.calls, "notify_liquidation")
	s.notifications = append(s.notifications, sinkNotification{
		positionID:           positionID,
		debtRepaid:           debtRepaid,
		collateralLiquidated: collateralLiquidated,
		fully:                fully,
	})
}

func (s *recordingSink) ReturnCollateral(owner string, amount int64, asset string) {
	s.calls = append(s.calls, "return_collateral")
	s.returnsTotal += amount
}

// ============================================================================
// Test: borrow
// ============================================================================

func TestBorrow_OpensPosition(t *testing.T) {
	c, persistChan, _ := newTestCore(t)
	id := openStandardPosition(t, c)

	pos := c.Store().Get(id)
	if pos == nil {
		t.Fatal("position not in store")
	}
	if pos.TickLower != -6_340 || pos.TickUpper != -4_110 {
		t.Errorf("band = [%d, %d], want [-6340, -4110]", pos.TickLower, pos.TickUpper)
	}
	if pos.State != state.PositionStateHealthy {
		t.Errorf("state = %s, want Healthy", pos.State)
	}
	if pos.RemainingCollateral != 2_000_000 || pos.RemainingDebt != 1_000_000 {
		t.Errorf("amounts = (%d, %d)", pos.RemainingCollateral, pos.RemainingDebt)
	}
	if got := c.Registry().ActiveCount(); got != 1 {
		t.Errorf("ActiveCount = %d, want 1", got)
	}
	if got := ethReserve(t, c, id); got != 2_000_000 {
		t.Errorf("reserve = %d, want 2000000", got)
	}

	outputs := drainOutputs(persistChan)
	if len(outputs) != 2 {
		t.Fatalf("got %d outputs, want 2 (price, borrow)", len(outputs))
	}
	open := outputs[1]
	if open.Envelope.EventType != event.EventTypeBorrowRequest {
		t.Errorf("event type = %s", open.Envelope.EventType)
	}
	if len(open.Batch.Journals) != 1 {
		t.Errorf("open batch has %d journals, want 1", len(open.Batch.Journals))
	}
}

func TestBorrow_BeforeFirstPriceRejected(t *testing.T) {
	c, _, _ := newTestCore(t)

	_, err := c.ProcessEvent(mustBorrow(uuid.New(), 2_000_000, 1_000_000, 8_000, 1))
	if !errors.Is(err, state.ErrInvalidRange) {
		t.Errorf("got %v, want ErrInvalidRange", err)
	}
}

func TestBorrow_InvalidTermsRejected(t *testing.T) {
	c, _, _ := newTestCore(t)
	if _, err := c.ProcessEvent(mustPrice(10_000, 1, 1_000_000)); err != nil {
		t.Fatalf("seed price: %v", err)
	}

	_, err := c.ProcessEvent(mustBorrow(uuid.New(), 0, 1_000_000, 8_000, 1))
	if !errors.Is(err, state.ErrInvalidAmount) {
		t.Errorf("zero collateral: got %v, want ErrInvalidAmount", err)
	}
	_, err = c.ProcessEvent(mustBorrow(uuid.New(), 2_000_000, 1_000_000, 4_000, 2))
	if !errors.Is(err, state.ErrInvalidThreshold) {
		t.Errorf("low threshold: got %v, want ErrInvalidThreshold", err)
	}
}

func TestBorrow_DuplicateIsIdempotent(t *testing.T) {
	c, _, _ := newTestCore(t)
	id := openStandardPosition(t, c)

	result, err := c.ProcessEvent(mustBorrow(id, 2_000_000, 1_000_000, 8_000, 1))
	if err != nil {
		t.Fatalf("redelivery: %v", err)
	}
	if !result.Duplicate {
		t.Error("redelivered borrow should report Duplicate")
	}
	if got := c.Registry().ActiveCount(); got != 1 {
		t.Errorf("ActiveCount = %d, want 1", got)
	}
	if got := ethReserve(t, c, id); got != 2_000_000 {
		t.Errorf("reserve = %d, want 2000000", got)
	}
}

func TestProcessEvent_WrongMarketRejected(t *testing.T) {
	c, _, _ := newTestCore(t)

	evt := mustPrice(10_000, 1, 1_000_000)
	evt.Market = "BTC-USDC"
	if _, err := c.ProcessEvent(evt); err == nil {
		t.Error("event for foreign market should fail")
	}
}

func TestProcessEvent_OutOfOrderRequestRejected(t *testing.T) {
	c, _, _ := newTestCore(t)
	if _, err := c.ProcessEvent(mustPrice(10_000, 1, 1_000_000)); err != nil {
		t.Fatalf("seed price: %v", err)
	}
	if _, err := c.ProcessEvent(mustBorrow(uuid.New(), 2_000_000, 1_000_000, 8_000, 5)); err != nil {
		t.Fatalf("borrow seq 5: %v", err)
	}

	_, err := c.ProcessEvent(mustBorrow(uuid.New(), 2_000_000, 1_000_000, 8_000, 3))
	if err == nil {
		t.Error("regressing request sequence should fail")
	}
}

// ============================================================================
// Test: liquidation steps
// ============================================================================

func TestLiquidation_PartialStep(t *testing.T) {
	c, persistChan, _ := newTestCore(t)
	id := openStandardPosition(t, c)
	drainOutputs(persistChan)

	// Tick -5000 is 890 ticks into the 2230-wide band: progress 3991 bps.
	if _, err := c.ProcessEvent(mustPrice(-5_000, 2, 3_000_000)); err != nil {
		t.Fatalf("price into band: %v", err)
	}

	pos := c.Store().Get(id)
	if pos.State != state.PositionStatePartiallyLiquidated {
		t.Errorf("state = %s, want PartiallyLiquidated", pos.State)
	}
	if pos.RemainingCollateral != 1_201_800 {
		t.Errorf("remaining collateral = %d, want 1201800", pos.RemainingCollateral)
	}
	if pos.RemainingDebt != 600_900 {
		t.Errorf("remaining debt = %d, want 600900", pos.RemainingDebt)
	}
	if got := ethReserve(t, c, id); got != 1_201_800 {
		t.Errorf("reserve = %d, want 1201800", got)
	}
	if got := c.Registry().ActiveCount(); got != 1 {
		t.Errorf("partially liquidated position must stay registered, count = %d", got)
	}

	outputs := drainOutputs(persistChan)
	if len(outputs) != 1 {
		t.Fatalf("got %d outputs, want 1", len(outputs))
	}
	step := outputs[0].Step
	if step == nil {
		t.Fatal("output missing step summary")
	}
	if step.CollateralDelta != 798_200 || step.DebtDelta != 399_100 {
		t.Errorf("step = (%d, %d), want (798200, 399100)", step.CollateralDelta, step.DebtDelta)
	}
	if step.FullyLiquidated {
		t.Error("partial step flagged as full")
	}
}

func TestLiquidation_RatchetHoldsOnRetreat(t *testing.T) {
	c, persistChan, _ := newTestCore(t)
	id := openStandardPosition(t, c)
	if _, err := c.ProcessEvent(mustPrice(-5_000, 2, 3_000_000)); err != nil {
		t.Fatalf("price into band: %v", err)
	}
	drainOutputs(persistChan)

	// Price retreats to -4500, still in band but shallower. The target
	// falls below what was consumed; nothing is restored.
	if _, err := c.ProcessEvent(mustPrice(-4_500, 3, 4_000_000)); err != nil {
		t.Fatalf("price retreat: %v", err)
	}

	pos := c.Store().Get(id)
	if pos.RemainingCollateral != 1_201_800 {
		t.Errorf("remaining collateral moved on retreat: %d", pos.RemainingCollateral)
	}
	if pos.State != state.PositionStatePartiallyLiquidated {
		t.Errorf("state = %s, want PartiallyLiquidated", pos.State)
	}

	outputs := drainOutputs(persistChan)
	if len(outputs) != 1 {
		t.Fatalf("got %d outputs, want 1", len(outputs))
	}
	if outputs[0].Step != nil {
		t.Error("retreat must not produce a liquidation step")
	}
	if len(outputs[0].Batch.Journals) != 0 {
		t.Errorf("retreat produced %d journals", len(outputs[0].Batch.Journals))
	}
}

func TestLiquidation_FullClosesPosition(t *testing.T) {
	c, persistChan, _ := newTestCore(t)
	id := openStandardPosition(t, c)
	if _, err := c.ProcessEvent(mustPrice(-5_000, 2, 3_000_000)); err != nil {
		t.Fatalf("partial step: %v", err)
	}
	drainOutputs(persistChan)

	// Tick -6400 is past the far edge: the remainder converts exactly.
	if _, err := c.ProcessEvent(mustPrice(-6_400, 3, 4_000_000)); err != nil {
		t.Fatalf("full liquidation: %v", err)
	}

	pos := c.Store().Get(id)
	if pos == nil {
		t.Fatal("closed position should remain in store")
	}
	if pos.State != state.PositionStateClosed {
		t.Errorf("state = %s, want Closed", pos.State)
	}
	if pos.RemainingCollateral != 0 || pos.RemainingDebt != 0 {
		t.Errorf("residue = (%d, %d), want (0, 0)", pos.RemainingCollateral, pos.RemainingDebt)
	}
	if got := c.Registry().ActiveCount(); got != 0 {
		t.Errorf("ActiveCount = %d, want 0", got)
	}
	if got := ethReserve(t, c, id); got != 0 {
		t.Errorf("reserve = %d, want 0", got)
	}

	outputs := drainOutputs(persistChan)
	if len(outputs) != 1 {
		t.Fatalf("got %d outputs, want 1", len(outputs))
	}
	step := outputs[0].Step
	if step == nil || !step.FullyLiquidated {
		t.Fatal("final step must be flagged fully liquidated")
	}
	if step.CollateralDelta != 1_201_800 || step.DebtDelta != 600_900 {
		t.Errorf("final step = (%d, %d), want (1201800, 600900)",
			step.CollateralDelta, step.DebtDelta)
	}
}

func TestLiquidation_MaxChunkCapsStep(t *testing.T) {
	persistChan := make(chan core.CoreOutput, 1024)
	params := state.DefaultEngineParams("ETH-USDC")
	params.MaxChunkBps = 1_000 // at most 10% of initial collateral per step
	c, err := core.NewLiquidationCore(0, params, persistChan, nil, nil, nil)
	if err != nil {
		t.Fatalf("NewLiquidationCore: %v", err)
	}
	id := openStandardPosition(t, c)

	// Unshaped delta would be 798200; the cap limits it to 200000.
	if _, err := c.ProcessEvent(mustPrice(-5_000, 2, 3_000_000)); err != nil {
		t.Fatalf("price into band: %v", err)
	}
	pos := c.Store().Get(id)
	if got := pos.AlreadyLiquidated(); got != 200_000 {
		t.Errorf("consumed = %d, want 200000", got)
	}

	// Full liquidation bypasses chunk shaping: no residue.
	if _, err := c.ProcessEvent(mustPrice(-6_400, 3, 4_000_000)); err != nil {
		t.Fatalf("full liquidation: %v", err)
	}
	pos = c.Store().Get(id)
	if pos.State != state.PositionStateClosed || pos.RemainingCollateral != 0 {
		t.Errorf("full liquidation left residue: state=%s remaining=%d",
			pos.State, pos.RemainingCollateral)
	}
}

func TestLiquidation_GapOverBandStillLiquidates(t *testing.T) {
	c, _, _ := newTestCore(t)
	id := openStandardPosition(t, c)

	// Price jumps from 10000 straight past the far edge: neither endpoint
	// lands inside the band, but the position must still fully liquidate.
	if _, err := c.ProcessEvent(mustPrice(-7_000, 2, 3_000_000)); err != nil {
		t.Fatalf("gap price: %v", err)
	}

	pos := c.Store().Get(id)
	if pos.State != state.PositionStateClosed {
		t.Errorf("state = %s, want Closed", pos.State)
	}
	if pos.RemainingCollateral != 0 || pos.RemainingDebt != 0 {
		t.Errorf("residue = (%d, %d)", pos.RemainingCollateral, pos.RemainingDebt)
	}
	if got := c.Registry().ActiveCount(); got != 0 {
		t.Errorf("ActiveCount = %d, want 0", got)
	}
}

func TestLiquidation_BandExitWithoutConsumptionRecovers(t *testing.T) {
	c, _, _ := newTestCore(t)
	id := openStandardPosition(t, c)

	// Enter the band exactly at the near edge: depth 0, nothing converts,
	// but the position is now at risk.
	if _, err := c.ProcessEvent(mustPrice(-4_110, 2, 3_000_000)); err != nil {
		t.Fatalf("price to edge: %v", err)
	}
	pos := c.Store().Get(id)
	if pos.State != state.PositionStateUnderwater {
		t.Errorf("state = %s, want Underwater", pos.State)
	}

	// Price leaves the band with nothing consumed: back to Healthy.
	if _, err := c.ProcessEvent(mustPrice(-3_000, 3, 4_000_000)); err != nil {
		t.Fatalf("price out of band: %v", err)
	}
	pos = c.Store().Get(id)
	if pos.State != state.PositionStateHealthy {
		t.Errorf("state = %s, want Healthy", pos.State)
	}
}

// ============================================================================
// Test: penalty accrual through the engine
// ============================================================================

func TestLiquidation_PenaltyAccruesAndSplits(t *testing.T) {
	c, _, _ := newTestCore(t)
	sink := &recordingSink{}
	c.RegisterSink(sink)

	id := openStandardPosition(t, c)
	if _, err := c.ProcessEvent(mustPrice(-5_000, 2, 3_000_000)); err != nil {
		t.Fatalf("first step: %v", err)
	}
	sink.lpTotal, sink.takerTotal = 0, 0
	sink.calls = nil

	// One year in band at tick -5000 on remaining collateral 1201800 at
	// rate 3200 bps/yr accrues 384576. The move to the band edge converts
	// nothing, so the penalty stays on the position.
	yearUs := fpmath.SecondsPerYear * int64(1_000_000)
	if _, err := c.ProcessEvent(mustPrice(-4_110, 3, 3_000_000+yearUs)); err != nil {
		t.Fatalf("edge price: %v", err)
	}
	pos := c.Store().Get(id)
	if pos.AccumulatedPenalty != 384_576 {
		t.Fatalf("accumulated penalty = %d, want 384576", pos.AccumulatedPenalty)
	}

	// The next converting step distributes the accumulated penalty 90/10.
	if _, err := c.ProcessEvent(mustPrice(-5_100, 4, 3_001_000+yearUs)); err != nil {
		t.Fatalf("converting step: %v", err)
	}
	pos = c.Store().Get(id)
	if pos.AccumulatedPenalty != 0 {
		t.Errorf("penalty not reset after distribution: %d", pos.AccumulatedPenalty)
	}
	if sink.lpTotal != 346_118 {
		t.Errorf("lp credit = %d, want 346118", sink.lpTotal)
	}
	if sink.takerTotal != 38_458 {
		t.Errorf("taker credit = %d, want 38458", sink.takerTotal)
	}

	// Ledger view agrees with the sink.
	if got := c.Balances().GetLPPoolCredits(4); got != 346_118 {
		t.Errorf("lp pool balance = %d, want 346118", got)
	}
	if got := c.Balances().GetTakerCredits(4); got != 38_458 {
		t.Errorf("taker credits balance = %d, want 38458", got)
	}
}

// ============================================================================
// Test: repay
// ============================================================================

func TestRepay_ReturnsRemainingCollateral(t *testing.T) {
	c, _, _ := newTestCore(t)
	sink := &recordingSink{}
	c.RegisterSink(sink)
	id := openStandardPosition(t, c)

	result, err := c.ProcessEvent(mustRepay(id, "alice", 2))
	if err != nil {
		t.Fatalf("repay: %v", err)
	}
	if result.PositionID != id {
		t.Errorf("result position = %s, want %s", result.PositionID, id)
	}
	if result.CollateralReturned != 2_000_000 {
		t.Errorf("returned = %d, want 2000000", result.CollateralReturned)
	}

	pos := c.Store().Get(id)
	if pos.State != state.PositionStateClosed {
		t.Errorf("state = %s, want Closed", pos.State)
	}
	if got := c.Registry().ActiveCount(); got != 0 {
		t.Errorf("ActiveCount = %d, want 0", got)
	}
	if got := ethReserve(t, c, id); got != 0 {
		t.Errorf("reserve = %d, want 0", got)
	}
	if sink.returnsTotal != 2_000_000 {
		t.Errorf("sink returns = %d, want 2000000", sink.returnsTotal)
	}
}

func TestRepay_WrongCallerRejected(t *testing.T) {
	c, _, _ := newTestCore(t)
	id := openStandardPosition(t, c)

	_, err := c.ProcessEvent(mustRepay(id, "mallory", 2))
	if !errors.Is(err, state.ErrUnauthorized) {
		t.Errorf("got %v, want ErrUnauthorized", err)
	}
	if pos := c.Store().Get(id); pos.State != state.PositionStateHealthy {
		t.Errorf("rejected repay mutated state: %s", pos.State)
	}
}

func TestRepay_ClosedPositionRejected(t *testing.T) {
	c, _, _ := newTestCore(t)
	id := openStandardPosition(t, c)

	if _, err := c.ProcessEvent(mustRepay(id, "alice", 2)); err != nil {
		t.Fatalf("repay: %v", err)
	}
	_, err := c.ProcessEvent(mustRepay(id, "alice", 3))
	if !errors.Is(err, state.ErrPositionNotActive) {
		t.Errorf("got %v, want ErrPositionNotActive", err)
	}
}

// ============================================================================
// Test: ordering and duplication of price updates
// ============================================================================

func TestPriceUpdate_DuplicateReturnsDuplicate(t *testing.T) {
	c, _, _ := newTestCore(t)
	if _, err := c.ProcessEvent(mustPrice(10_000, 1, 1_000_000)); err != nil {
		t.Fatalf("price: %v", err)
	}

	result, err := c.ProcessEvent(mustPrice(10_000, 1, 1_000_000))
	if err != nil {
		t.Fatalf("redelivery: %v", err)
	}
	if !result.Duplicate {
		t.Error("redelivered price should report Duplicate")
	}
}

// ============================================================================
// Test: event log chain
// ============================================================================

func TestHashChain_LinksEnvelopes(t *testing.T) {
	c, persistChan, _ := newTestCore(t)
	openStandardPosition(t, c)
	if _, err := c.ProcessEvent(mustPrice(-5_000, 2, 3_000_000)); err != nil {
		t.Fatalf("price: %v", err)
	}

	outputs := drainOutputs(persistChan)
	if len(outputs) != 3 {
		t.Fatalf("got %d outputs, want 3", len(outputs))
	}
	for i, o := range outputs {
		if o.Envelope.Sequence != int64(i) {
			t.Errorf("output %d has sequence %d", i, o.Envelope.Sequence)
		}
		if i > 0 && o.Envelope.PrevHash != outputs[i-1].Envelope.StateHash {
			t.Errorf("output %d prev hash does not chain", i)
		}
		if o.Envelope.StateHash == [32]byte{} {
			t.Errorf("output %d has zero state hash", i)
		}
	}
}

// ============================================================================
// Test: collaborator dispatch ordering
// ============================================================================

func TestSink_NotifiedAfterStateCommit(t *testing.T) {
	c, _, _ := newTestCore(t)
	sink := &recordingSink{}
	c.RegisterSink(sink)
	id := openStandardPosition(t, c)

	if _, err := c.ProcessEvent(mustPrice(-6_400, 2, 3_000_000)); err != nil {
		t.Fatalf("full liquidation: %v", err)
	}

	if len(sink.notifications) != 1 {
		t.Fatalf("got %d notifications, want 1", len(sink.notifications))
	}
	n := sink.notifications[0]
	if n.positionID != id || !n.fully {
		t.Errorf("notification = %+v", n)
	}
	if n.collateralLiquidated != 2_000_000 || n.debtRepaid != 1_000_000 {
		t.Errorf("notification amounts = (%d, %d), want (2000000, 1000000)",
			n.collateralLiquidated, n.debtRepaid)
	}
}

// ============================================================================
// Test: snapshot round trip
// ============================================================================

func TestSnapshot_RoundTrip(t *testing.T) {
	c, _, _ := newTestCore(t)
	id := openStandardPosition(t, c)
	if _, err := c.ProcessEvent(mustPrice(-5_000, 2, 3_000_000)); err != nil {
		t.Fatalf("price: %v", err)
	}

	snap := c.ExportSnapshot()

	restored, _, _ := newTestCore(t)
	if err := restored.RestoreSnapshot(snap); err != nil {
		t.Fatalf("RestoreSnapshot: %v", err)
	}

	if restored.Sequence() != c.Sequence() {
		t.Errorf("sequence = %d, want %d", restored.Sequence(), c.Sequence())
	}
	tick, ok := restored.CurrentTick()
	if !ok || tick != -5_000 {
		t.Errorf("tick = (%d, %v), want (-5000, true)", tick, ok)
	}
	pos := restored.Store().Get(id)
	if pos == nil || pos.RemainingCollateral != 1_201_800 {
		t.Fatalf("restored position = %+v", pos)
	}
	if got := restored.Registry().ActiveCount(); got != 1 {
		t.Errorf("ActiveCount = %d, want 1", got)
	}
	if got := ethReserve(t, restored, id); got != 1_201_800 {
		t.Errorf("reserve = %d, want 1201800", got)
	}

	// The restored core rejects redelivered events and picks up the
	// ordering watermarks where the snapshot left off.
	result, err := restored.ProcessEvent(mustBorrow(id, 2_000_000, 1_000_000, 8_000, 1))
	if err != nil {
		t.Fatalf("redelivered borrow: %v", err)
	}
	if !result.Duplicate {
		t.Error("restored core should recognize the redelivered borrow")
	}
	if _, err := restored.ProcessEvent(mustPrice(-5_200, 3, 4_000_000)); err != nil {
		t.Errorf("next price after restore: %v", err)
	}
}

// ============================================================================
// Test: replay suppression
// ============================================================================

func TestReplay_SuppressesOutputsAndSinks(t *testing.T) {
	c, persistChan, projChan := newTestCore(t)
	sink := &recordingSink{}
	c.RegisterSink(sink)

	c.BeginReplay()
	id := openStandardPosition(t, c)
	if _, err := c.ProcessEvent(mustPrice(-6_400, 2, 3_000_000)); err != nil {
		t.Fatalf("replayed liquidation: %v", err)
	}
	c.EndReplay()

	if len(drainOutputs(persistChan)) != 0 || len(drainOutputs(projChan)) != 0 {
		t.Error("replay must not emit outputs")
	}
	if len(sink.calls) != 0 {
		t.Errorf("replay dispatched to sinks: %v", sink.calls)
	}

	// State still advanced normally.
	pos := c.Store().Get(id)
	if pos == nil || pos.State != state.PositionStateClosed {
		t.Fatalf("replayed state wrong: %+v", pos)
	}

	// Live events after replay emit again.
	if _, err := c.ProcessEvent(mustPrice(-6_300, 3, 4_000_000)); err != nil {
		t.Fatalf("live price: %v", err)
	}
	if len(drainOutputs(persistChan)) != 1 {
		t.Error("live event after replay should emit")
	}
}
