package core_test

import (
	"fmt"
	"testing"

	"RangeLiq/internal/core"
)

// ============================================================================
// Test: dedup LRU
// ============================================================================

func TestIdempotencyChecker_MarkThenDetect(t *testing.T) {
	ic := core.NewIdempotencyChecker(16, nil)

	if ic.IsDuplicate("BorrowRequest", "req-1") {
		t.Error("unseen key reported duplicate")
	}
	ic.MarkProcessed("BorrowRequest", "req-1")
	if !ic.IsDuplicate("BorrowRequest", "req-1") {
		t.Error("processed key not detected")
	}
	// Keys are scoped by event type.
	if ic.IsDuplicate("RepayRequest", "req-1") {
		t.Error("key leaked across event types")
	}
}

func TestIdempotencyChecker_EvictsOldest(t *testing.T) {
	ic := core.NewIdempotencyChecker(3, nil)

	for i := 0; i < 4; i++ {
		ic.MarkProcessed("PriceUpdate", fmt.Sprintf("price:%d", i))
	}

	if ic.LRUSize() != 3 {
		t.Errorf("LRU size = %d, want 3", ic.LRUSize())
	}
	if ic.IsDuplicate("PriceUpdate", "price:0") {
		t.Error("oldest key should have been evicted")
	}
	if !ic.IsDuplicate("PriceUpdate", "price:3") {
		t.Error("newest key missing")
	}
}

func TestIdempotencyChecker_WarmFromSnapshot(t *testing.T) {
	ic := core.NewIdempotencyChecker(16, nil)
	ic.MarkProcessed("BorrowRequest", "req-1")
	ic.MarkProcessed("BorrowRequest", "req-2")

	restored := core.NewIdempotencyChecker(16, nil)
	restored.Warm(ic.RecentKeys(100))

	if !restored.IsDuplicate("BorrowRequest", "req-1") || !restored.IsDuplicate("BorrowRequest", "req-2") {
		t.Error("warmed checker lost keys")
	}
}
