package state_test

import (
	"testing"

	"RangeLiq/internal/event"
	"RangeLiq/internal/state"

	"github.com/google/uuid"
)

// ============================================================================
// Test: TickRegistry membership
// ============================================================================

func TestRegistry_InsertAndContains(t *testing.T) {
	tr := state.NewTickRegistry()
	id := uuid.New()

	if err := tr.Insert(id, -100, 100, event.DirectionBase); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if !tr.Contains(id) {
		t.Error("inserted id not found")
	}
	if got := tr.ActiveCount(); got != 1 {
		t.Errorf("ActiveCount = %d, want 1", got)
	}
}

func TestRegistry_InsertDuplicateRejected(t *testing.T) {
	tr := state.NewTickRegistry()
	id := uuid.New()

	if err := tr.Insert(id, -100, 100, event.DirectionBase); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := tr.Insert(id, -200, 200, event.DirectionBase); err == nil {
		t.Error("duplicate insert should fail")
	}
}

func TestRegistry_InsertDegenerateBandRejected(t *testing.T) {
	tr := state.NewTickRegistry()

	if err := tr.Insert(uuid.New(), 100, 100, event.DirectionBase); err == nil {
		t.Error("empty band should fail")
	}
	if err := tr.Insert(uuid.New(), 100, 50, event.DirectionBase); err == nil {
		t.Error("inverted band should fail")
	}
}

func TestRegistry_Remove(t *testing.T) {
	tr := state.NewTickRegistry()
	a, b := uuid.New(), uuid.New()

	if err := tr.Insert(a, -100, 100, event.DirectionBase); err != nil {
		t.Fatalf("Insert a: %v", err)
	}
	if err := tr.Insert(b, -100, 100, event.DirectionBase); err != nil {
		t.Fatalf("Insert b: %v", err)
	}

	if err := tr.Remove(a); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if tr.Contains(a) {
		t.Error("removed id still present")
	}
	if !tr.Contains(b) {
		t.Error("sibling id lost on remove")
	}
	if got := tr.ActiveCount(); got != 1 {
		t.Errorf("ActiveCount = %d, want 1", got)
	}

	if err := tr.Remove(a); err == nil {
		t.Error("double remove should fail")
	}
}

// ============================================================================
// Test: PositionsInRange
// ============================================================================

func TestPositionsInRange_BandContainment(t *testing.T) {
	tr := state.NewTickRegistry()
	inBand, outside := uuid.New(), uuid.New()

	if err := tr.Insert(inBand, -100, 100, event.DirectionBase); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := tr.Insert(outside, 500, 700, event.DirectionBase); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	got := tr.PositionsInRange(0, event.DirectionBase)
	if len(got) != 1 || got[0] != inBand {
		t.Errorf("PositionsInRange(0) = %v, want [%s]", got, inBand)
	}

	// Boundary ticks are inclusive on both sides.
	for _, tick := range []int64{-100, 100} {
		got = tr.PositionsInRange(tick, event.DirectionBase)
		if len(got) != 1 || got[0] != inBand {
			t.Errorf("PositionsInRange(%d) = %v, want [%s]", tick, got, inBand)
		}
	}

	if got = tr.PositionsInRange(-101, event.DirectionBase); len(got) != 0 {
		t.Errorf("PositionsInRange(-101) = %v, want empty", got)
	}
}

func TestPositionsInRange_FiltersDirection(t *testing.T) {
	tr := state.NewTickRegistry()
	base, quote := uuid.New(), uuid.New()

	if err := tr.Insert(base, -100, 100, event.DirectionBase); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := tr.Insert(quote, -100, 100, event.DirectionQuote); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	got := tr.PositionsInRange(0, event.DirectionQuote)
	if len(got) != 1 || got[0] != quote {
		t.Errorf("quote scan = %v, want [%s]", got, quote)
	}
}

func TestPositionsInRange_DeterministicOrder(t *testing.T) {
	tr := state.NewTickRegistry()
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New(), uuid.New()}
	for _, id := range ids {
		if err := tr.Insert(id, -100, 100, event.DirectionBase); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}

	got := tr.PositionsInRange(0, event.DirectionBase)
	if len(got) != len(ids) {
		t.Fatalf("got %d ids, want %d", len(got), len(ids))
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].String() >= got[i].String() {
			t.Errorf("ids not sorted at %d: %s >= %s", i, got[i-1], got[i])
		}
	}
}

// ============================================================================
// Test: consistency checking
// ============================================================================

func TestCheckConsistency_CleanRegistry(t *testing.T) {
	tr := state.NewTickRegistry()
	store := state.NewPositionStore()

	p := bandPosition(event.DirectionBase, -100, 100, 10_000, 10_000)
	store.Put(p)
	if err := tr.Insert(p.ID, p.TickLower, p.TickUpper, p.Dir); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	if err := tr.CheckConsistency(store); err != nil {
		t.Errorf("CheckConsistency: %v", err)
	}
}

func TestCheckConsistency_DanglingID(t *testing.T) {
	tr := state.NewTickRegistry()
	store := state.NewPositionStore()

	if err := tr.Insert(uuid.New(), -100, 100, event.DirectionBase); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := tr.CheckConsistency(store); err == nil {
		t.Error("registered id missing from store should fail")
	}
}

func TestCheckConsistency_ClosedPositionStillRegistered(t *testing.T) {
	tr := state.NewTickRegistry()
	store := state.NewPositionStore()

	p := bandPosition(event.DirectionBase, -100, 100, 10_000, 0)
	p.State = state.PositionStateClosed
	store.Put(p)
	if err := tr.Insert(p.ID, p.TickLower, p.TickUpper, p.Dir); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	if err := tr.CheckConsistency(store); err == nil {
		t.Error("closed position in registry should fail")
	}
}

func TestCheckConsistency_BandMismatch(t *testing.T) {
	tr := state.NewTickRegistry()
	store := state.NewPositionStore()

	p := bandPosition(event.DirectionBase, -100, 100, 10_000, 10_000)
	store.Put(p)
	if err := tr.Insert(p.ID, -200, 200, p.Dir); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	if err := tr.CheckConsistency(store); err == nil {
		t.Error("band mismatch should fail")
	}
}
