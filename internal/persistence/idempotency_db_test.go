package persistence_test

import (
	"context"
	"testing"
	"time"

	"RangeLiq/internal/persistence"
	"RangeLiq/internal/testutil"
)

// ============================================================
// Test: PostgresIdempotencyChecker against a real event log
// ============================================================

func TestPostgresIdempotencyChecker(t *testing.T) {
	testutil.RequireIntegration(t)

	db, cleanup := testutil.SetupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	migrator := persistence.NewMigrator(db, "../../migrations")
	if err := migrator.Up(ctx); err != nil {
		t.Fatalf("migrate up: %v", err)
	}
	if n, err := migrator.PendingCount(ctx); err != nil || n != 0 {
		t.Fatalf("pending after up: n=%d err=%v", n, err)
	}

	_, err := db.ExecContext(ctx, `
		INSERT INTO event_log.events
			(sequence, event_type, idempotency_key, market_id, payload,
			 state_hash, prev_hash, timestamp, source_sequence)
		VALUES (0, 'BorrowRequest', '550e8400-e29b-41d4-a716-446655440000', 'ETH-USDC', '{}',
			    '\x00', '\x00', $1, 7)
	`, time.Now())
	if err != nil {
		t.Fatalf("seed event row: %v", err)
	}

	checker := persistence.NewPostgresIdempotencyChecker(db)

	dup, err := checker.IsDuplicate("BorrowRequest", "550e8400-e29b-41d4-a716-446655440000")
	if err != nil {
		t.Fatalf("IsDuplicate: %v", err)
	}
	if !dup {
		t.Error("seeded key not reported as duplicate")
	}

	dup, err = checker.IsDuplicate("BorrowRequest", "550e8400-e29b-41d4-a716-446655440001")
	if err != nil {
		t.Fatalf("IsDuplicate: %v", err)
	}
	if dup {
		t.Error("unseen key reported as duplicate")
	}

	// Same key under a different event type is a different dedup scope.
	dup, err = checker.IsDuplicate("PriceUpdate", "550e8400-e29b-41d4-a716-446655440000")
	if err != nil {
		t.Fatalf("IsDuplicate: %v", err)
	}
	if dup {
		t.Error("key matched across event types")
	}
}
