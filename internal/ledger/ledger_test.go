package ledger_test

import (
	"testing"

	"RangeLiq/internal/ledger"

	"github.com/google/uuid"
)

// ============================================================================
// Test: AccountKey
// ============================================================================

func TestAccountKey_PositionPath(t *testing.T) {
	positionID := uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")
	assetID, _ := ledger.GetAssetID("ETH")
	key := ledger.NewPositionAccountKey(positionID, assetID)

	path := key.AccountPath()
	expected := "position:550e8400-e29b-41d4-a716-446655440000:reserve:ETH"
	if path != expected {
		t.Errorf("got %q, want %q", path, expected)
	}
}

func TestAccountKey_SystemPaths(t *testing.T) {
	assetID, _ := ledger.GetAssetID("ETH")

	tests := []struct {
		name    string
		subType ledger.AccountSubType
		want    string
	}{
		{"lp_pool", ledger.SubTypeSystemLPPool, "system:lp_pool:ETH"},
		{"taker_credits", ledger.SubTypeSystemTakerCredits, "system:taker_credits:ETH"},
		{"penalty_charges", ledger.SubTypeSystemPenaltyCharges, "system:penalty_charges:ETH"},
	}
	for _, tt := range tests {
		key := ledger.NewSystemAccountKey(tt.name, tt.subType, assetID)
		if got := key.AccountPath(); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}

func TestAccountKey_ExternalPaths(t *testing.T) {
	assetID, _ := ledger.GetAssetID("USDC")

	tests := []struct {
		subType ledger.AccountSubType
		want    string
	}{
		{ledger.SubTypeExternalCollateralIn, "external:collateral_in:USDC"},
		{ledger.SubTypeExternalLiquidated, "external:liquidated:USDC"},
		{ledger.SubTypeExternalOwnerReturn, "external:owner_return:USDC"},
	}
	for _, tt := range tests {
		key := ledger.NewExternalAccountKey(tt.subType, assetID)
		if got := key.AccountPath(); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}

func TestGetAssetID_Known(t *testing.T) {
	id, ok := ledger.GetAssetID("ETH")
	if !ok {
		t.Fatal("ETH should be a known asset")
	}
	name, ok := ledger.GetAssetName(id)
	if !ok || name != "ETH" {
		t.Errorf("round trip got %q, want %q", name, "ETH")
	}
}

func TestGetAssetID_Unknown(t *testing.T) {
	if _, ok := ledger.GetAssetID("DOGE"); ok {
		t.Error("DOGE should not be a known asset")
	}
}

// ============================================================================
// Test: Batch validation
// ============================================================================

func validBatch(t *testing.T) *ledger.Batch {
	t.Helper()
	gen := ledger.NewJournalGenerator()
	assetID, _ := ledger.GetAssetID("ETH")
	return gen.GenerateOpen(uuid.New(), assetID, 2_000_000, "evt-1", 7, 1_000_000)
}

func TestBatchValidate_WellFormed(t *testing.T) {
	if err := validBatch(t).Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestBatchValidate_Empty(t *testing.T) {
	b := &ledger.Batch{BatchID: uuid.New()}
	if err := b.Validate(); err == nil {
		t.Error("empty batch should fail")
	}
}

func TestBatchValidate_NonPositiveAmount(t *testing.T) {
	b := validBatch(t)
	b.Journals[0].Amount = 0
	if err := b.Validate(); err == nil {
		t.Error("zero amount should fail")
	}
	b.Journals[0].Amount = -5
	if err := b.Validate(); err == nil {
		t.Error("negative amount should fail")
	}
}

func TestBatchValidate_MismatchedBatchID(t *testing.T) {
	b := validBatch(t)
	b.Journals[0].BatchID = uuid.New()
	if err := b.Validate(); err == nil {
		t.Error("foreign batch id should fail")
	}
}

func TestBatchValidate_SelfTransfer(t *testing.T) {
	b := validBatch(t)
	b.Journals[0].CreditAccount = b.Journals[0].DebitAccount
	if err := b.Validate(); err == nil {
		t.Error("same debit and credit account should fail")
	}
}

func TestBatchValidate_MixedAssets(t *testing.T) {
	b := validBatch(t)
	otherAsset, _ := ledger.GetAssetID("USDC")
	b.Journals[0].CreditAccount = ledger.NewExternalAccountKey(
		ledger.SubTypeExternalCollateralIn, otherAsset)
	if err := b.Validate(); err == nil {
		t.Error("asset mismatch across accounts should fail")
	}
}

// ============================================================================
// Test: journal generation
// ============================================================================

func TestGenerateOpen_Shape(t *testing.T) {
	gen := ledger.NewJournalGenerator()
	positionID := uuid.New()
	assetID, _ := ledger.GetAssetID("ETH")

	batch := gen.GenerateOpen(positionID, assetID, 2_000_000, "evt-open", 3, 1_000_000)
	if len(batch.Journals) != 1 {
		t.Fatalf("got %d journals, want 1", len(batch.Journals))
	}

	j := batch.Journals[0]
	if j.JournalType != ledger.JournalTypeCollateralReserve {
		t.Errorf("type = %d, want CollateralReserve", j.JournalType)
	}
	if j.Amount != 2_000_000 {
		t.Errorf("amount = %d, want 2000000", j.Amount)
	}
	if got := j.DebitAccount.AccountPath(); got != "position:"+positionID.String()+":reserve:ETH" {
		t.Errorf("debit = %q", got)
	}
	if got := j.CreditAccount.AccountPath(); got != "external:collateral_in:ETH" {
		t.Errorf("credit = %q", got)
	}
	if j.EventRef != "evt-open" || j.Sequence != 3 {
		t.Errorf("provenance = (%q, %d), want (evt-open, 3)", j.EventRef, j.Sequence)
	}
}

func TestGenerateLiquidationStep_WithPenalty(t *testing.T) {
	gen := ledger.NewJournalGenerator()
	positionID := uuid.New()
	assetID, _ := ledger.GetAssetID("ETH")

	batch := gen.GenerateLiquidationStep(positionID, assetID, 89_600, 900, 100,
		"evt-price", 9, 2_000_000)
	if len(batch.Journals) != 3 {
		t.Fatalf("got %d journals, want 3", len(batch.Journals))
	}
	if err := batch.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	conversion := batch.Journals[0]
	if conversion.JournalType != ledger.JournalTypeCollateralLiquidate || conversion.Amount != 89_600 {
		t.Errorf("conversion = (%d, %d)", conversion.JournalType, conversion.Amount)
	}
	if got := conversion.DebitAccount.AccountPath(); got != "external:liquidated:ETH" {
		t.Errorf("conversion debit = %q", got)
	}

	lp := batch.Journals[1]
	if lp.JournalType != ledger.JournalTypePenaltyLP || lp.Amount != 900 {
		t.Errorf("lp leg = (%d, %d)", lp.JournalType, lp.Amount)
	}
	if got := lp.CreditAccount.AccountPath(); got != "system:penalty_charges:ETH" {
		t.Errorf("lp credit = %q", got)
	}

	taker := batch.Journals[2]
	if taker.JournalType != ledger.JournalTypePenaltyTaker || taker.Amount != 100 {
		t.Errorf("taker leg = (%d, %d)", taker.JournalType, taker.Amount)
	}
}

func TestGenerateLiquidationStep_NoPenaltyLegsWhenZero(t *testing.T) {
	gen := ledger.NewJournalGenerator()
	assetID, _ := ledger.GetAssetID("ETH")

	batch := gen.GenerateLiquidationStep(uuid.New(), assetID, 1_000, 0, 0,
		"evt-price", 9, 2_000_000)
	if len(batch.Journals) != 1 {
		t.Errorf("got %d journals, want 1", len(batch.Journals))
	}
}

func TestGenerateRepay_Shape(t *testing.T) {
	gen := ledger.NewJournalGenerator()
	positionID := uuid.New()
	assetID, _ := ledger.GetAssetID("ETH")

	batch := gen.GenerateRepay(positionID, assetID, 1_500_000, 450, 0,
		"evt-repay", 11, 3_000_000)
	if len(batch.Journals) != 2 {
		t.Fatalf("got %d journals, want 2", len(batch.Journals))
	}

	ret := batch.Journals[0]
	if ret.JournalType != ledger.JournalTypeCollateralReturn || ret.Amount != 1_500_000 {
		t.Errorf("return leg = (%d, %d)", ret.JournalType, ret.Amount)
	}
	if got := ret.DebitAccount.AccountPath(); got != "external:owner_return:ETH" {
		t.Errorf("return debit = %q", got)
	}
	if got := ret.CreditAccount.AccountPath(); got != "position:"+positionID.String()+":reserve:ETH" {
		t.Errorf("return credit = %q", got)
	}

	lp := batch.Journals[1]
	if lp.JournalType != ledger.JournalTypePenaltyLP || lp.Amount != 450 {
		t.Errorf("lp leg = (%d, %d)", lp.JournalType, lp.Amount)
	}
}

// ============================================================================
// Test: BalanceTracker
// ============================================================================

func TestTracker_OpenThenLiquidate(t *testing.T) {
	gen := ledger.NewJournalGenerator()
	bt := ledger.NewBalanceTracker()
	positionID := uuid.New()
	assetID, _ := ledger.GetAssetID("ETH")

	open := gen.GenerateOpen(positionID, assetID, 2_000_000, "evt-1", 0, 1_000_000)
	if err := bt.ApplyBatch(open); err != nil {
		t.Fatalf("ApplyBatch(open): %v", err)
	}
	if got := bt.GetPositionReserve(positionID, assetID); got != 2_000_000 {
		t.Errorf("reserve = %d, want 2000000", got)
	}

	step := gen.GenerateLiquidationStep(positionID, assetID, 798_200, 900, 100,
		"evt-2", 1, 2_000_000)
	if err := bt.ApplyBatch(step); err != nil {
		t.Fatalf("ApplyBatch(step): %v", err)
	}
	if got := bt.GetPositionReserve(positionID, assetID); got != 1_201_800 {
		t.Errorf("reserve = %d, want 1201800", got)
	}
	if got := bt.GetLPPoolCredits(assetID); got != 900 {
		t.Errorf("lp pool = %d, want 900", got)
	}
	if got := bt.GetTakerCredits(assetID); got != 100 {
		t.Errorf("taker credits = %d, want 100", got)
	}
}

func TestTracker_GlobalBalanceIsZero(t *testing.T) {
	gen := ledger.NewJournalGenerator()
	bt := ledger.NewBalanceTracker()
	positionID := uuid.New()
	assetID, _ := ledger.GetAssetID("ETH")

	batches := []*ledger.Batch{
		gen.GenerateOpen(positionID, assetID, 2_000_000, "evt-1", 0, 1_000_000),
		gen.GenerateLiquidationStep(positionID, assetID, 500_000, 321, 79, "evt-2", 1, 2_000_000),
		gen.GenerateRepay(positionID, assetID, 1_500_000, 17, 0, "evt-3", 2, 3_000_000),
	}
	for _, b := range batches {
		if err := bt.ApplyBatch(b); err != nil {
			t.Fatalf("ApplyBatch: %v", err)
		}
	}

	for assetID, total := range bt.ComputeGlobalBalance() {
		if total != 0 {
			t.Errorf("asset %d does not conserve: %d", assetID, total)
		}
	}
}

func TestTracker_NegativeReserveDetected(t *testing.T) {
	gen := ledger.NewJournalGenerator()
	bt := ledger.NewBalanceTracker()
	positionID := uuid.New()
	assetID, _ := ledger.GetAssetID("ETH")

	// Liquidating more than was ever reserved drives the reserve negative.
	step := gen.GenerateLiquidationStep(positionID, assetID, 1_000, 0, 0, "evt-1", 0, 1_000_000)
	if err := bt.ApplyBatch(step); err != nil {
		t.Fatalf("ApplyBatch: %v", err)
	}
	if err := bt.ValidateReserveNonNegative(positionID, assetID); err == nil {
		t.Error("negative reserve should fail validation")
	}
}

func TestTracker_ExportRestore(t *testing.T) {
	gen := ledger.NewJournalGenerator()
	bt := ledger.NewBalanceTracker()
	positionID := uuid.New()
	assetID, _ := ledger.GetAssetID("ETH")

	open := gen.GenerateOpen(positionID, assetID, 2_000_000, "evt-1", 0, 1_000_000)
	if err := bt.ApplyBatch(open); err != nil {
		t.Fatalf("ApplyBatch: %v", err)
	}

	restored := ledger.NewBalanceTracker()
	restored.Restore(bt.Export())
	if got := restored.GetPositionReserve(positionID, assetID); got != 2_000_000 {
		t.Errorf("restored reserve = %d, want 2000000", got)
	}
}
