package core_test

import (
	"testing"

	"RangeLiq/internal/core"
)

// ============================================================================
// Test: request-stream ordering
// ============================================================================

func TestValidateSequence_GapsTolerated(t *testing.T) {
	sv := core.NewSequenceValidator()

	if err := sv.ValidateSequence("requests:ETH-USDC", 1, false); err != nil {
		t.Fatalf("seq 1: %v", err)
	}
	// Sequences 2-4 were consumed upstream and never reached the core.
	if err := sv.ValidateSequence("requests:ETH-USDC", 5, false); err != nil {
		t.Fatalf("seq 5 after gap: %v", err)
	}
}

func TestValidateSequence_RegressionRejected(t *testing.T) {
	sv := core.NewSequenceValidator()

	if err := sv.ValidateSequence("requests:ETH-USDC", 5, false); err != nil {
		t.Fatalf("seq 5: %v", err)
	}
	if err := sv.ValidateSequence("requests:ETH-USDC", 3, false); err == nil {
		t.Error("regressing sequence should fail")
	}
}

func TestValidateSequence_DuplicateRedeliveryAllowed(t *testing.T) {
	sv := core.NewSequenceValidator()

	if err := sv.ValidateSequence("requests:ETH-USDC", 5, false); err != nil {
		t.Fatalf("seq 5: %v", err)
	}
	// A redelivered event carries an old sequence but was already applied.
	if err := sv.ValidateSequence("requests:ETH-USDC", 5, true); err != nil {
		t.Errorf("duplicate redelivery: %v", err)
	}
}

func TestValidateSequence_PartitionsIndependent(t *testing.T) {
	sv := core.NewSequenceValidator()

	if err := sv.ValidateSequence("requests:ETH-USDC", 10, false); err != nil {
		t.Fatalf("first partition: %v", err)
	}
	if err := sv.ValidateSequence("requests:BTC-USDC", 1, false); err != nil {
		t.Errorf("second partition should start fresh: %v", err)
	}
}

// ============================================================================
// Test: price-stream ordering
// ============================================================================

func TestValidatePriceSequence_StrictlyIncreasing(t *testing.T) {
	sv := core.NewSequenceValidator()

	if err := sv.ValidatePriceSequence("ETH-USDC", 1); err != nil {
		t.Fatalf("seq 1: %v", err)
	}
	if err := sv.ValidatePriceSequence("ETH-USDC", 3); err != nil {
		t.Fatalf("gap forward: %v", err)
	}
	if err := sv.ValidatePriceSequence("ETH-USDC", 3); err == nil {
		t.Error("equal price sequence should fail")
	}
	if err := sv.ValidatePriceSequence("ETH-USDC", 2); err == nil {
		t.Error("regressing price sequence should fail")
	}

	last, ok := sv.LastPriceSequence("ETH-USDC")
	if !ok || last != 3 {
		t.Errorf("last = (%d, %v), want (3, true)", last, ok)
	}
}

func TestSequenceValidator_ExportAndRestore(t *testing.T) {
	sv := core.NewSequenceValidator()
	if err := sv.ValidateSequence("requests:ETH-USDC", 7, false); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := sv.ValidatePriceSequence("ETH-USDC", 42); err != nil {
		t.Fatalf("seed price: %v", err)
	}

	restored := core.NewSequenceValidator()
	for partition, seq := range sv.ExportExpected() {
		restored.SetExpectedSequence(partition, seq)
	}
	for market, seq := range sv.ExportPriceSequences() {
		restored.SetLastPriceSequence(market, seq)
	}

	if err := restored.ValidateSequence("requests:ETH-USDC", 7, false); err == nil {
		t.Error("restored validator should reject the already-applied sequence")
	}
	if err := restored.ValidatePriceSequence("ETH-USDC", 42); err == nil {
		t.Error("restored validator should reject the already-applied price sequence")
	}
	if err := restored.ValidateSequence("requests:ETH-USDC", 8, false); err != nil {
		t.Errorf("next sequence should pass: %v", err)
	}
}
