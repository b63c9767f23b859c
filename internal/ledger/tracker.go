package ledger

import (
	"fmt"

	"github.com/google/uuid"
)

// BalanceTracker maintains in-memory account balances. Double entry keeps the
// global sum at zero, which is what rules out double-liquidation and
// double-credit at the accounting level.
type BalanceTracker struct {
	balances map[AccountKey]int64
}

func NewBalanceTracker() *BalanceTracker {
	return &BalanceTracker{
		balances: make(map[AccountKey]int64),
	}
}

// BalanceEntry is one serializable account balance, used by snapshots.
type BalanceEntry struct {
	Key     AccountKey `json:"key"`
	Balance int64      `json:"balance"`
}

// Export returns all non-zero balances.
func (bt *BalanceTracker) Export() []BalanceEntry {
	entries := make([]BalanceEntry, 0, len(bt.balances))
	for key, balance := range bt.balances {
		if balance != 0 {
			entries = append(entries, BalanceEntry{Key: key, Balance: balance})
		}
	}
	return entries
}

// Restore replaces all balances. Used only during snapshot recovery.
func (bt *BalanceTracker) Restore(entries []BalanceEntry) {
	bt.balances = make(map[AccountKey]int64, len(entries))
	for _, e := range entries {
		bt.balances[e.Key] = e.Balance
	}
}

// ApplyJournal applies a single journal entry to balances
func (bt *BalanceTracker) ApplyJournal(j Journal) {
	bt.balances[j.DebitAccount] += j.Amount
	bt.balances[j.CreditAccount] -= j.Amount
}

// ApplyBatch applies all journals in a batch
func (bt *BalanceTracker) ApplyBatch(batch *Batch) error {
	if err := batch.Validate(); err != nil {
		return fmt.Errorf("invalid batch: %w", err)
	}

	for _, j := range batch.Journals {
		bt.ApplyJournal(j)
	}

	return nil
}

// GetBalance returns the current balance for an account
func (bt *BalanceTracker) GetBalance(key AccountKey) int64 {
	return bt.balances[key]
}

// GetPositionReserve returns the collateral still held against a position
func (bt *BalanceTracker) GetPositionReserve(positionID uuid.UUID, assetID AssetID) int64 {
	return bt.GetBalance(NewPositionAccountKey(positionID, assetID))
}

// GetLPPoolCredits returns cumulative penalty credited to liquidity providers
func (bt *BalanceTracker) GetLPPoolCredits(assetID AssetID) int64 {
	return bt.GetBalance(NewSystemAccountKey("lp_pool", SubTypeSystemLPPool, assetID))
}

// GetTakerCredits returns cumulative penalty credited to price takers
func (bt *BalanceTracker) GetTakerCredits(assetID AssetID) int64 {
	return bt.GetBalance(NewSystemAccountKey("taker_credits", SubTypeSystemTakerCredits, assetID))
}

// ValidateReserveNonNegative checks a position's reserve never goes negative:
// a negative reserve would mean collateral was liquidated twice.
func (bt *BalanceTracker) ValidateReserveNonNegative(positionID uuid.UUID, assetID AssetID) error {
	reserve := bt.GetPositionReserve(positionID, assetID)
	if reserve < 0 {
		return fmt.Errorf("position %s has negative reserve for asset %d: %d",
			positionID.String(), assetID, reserve)
	}
	return nil
}

// ComputeGlobalBalance sums every account per asset. Must be zero per asset
// after every applied batch.
func (bt *BalanceTracker) ComputeGlobalBalance() map[AssetID]int64 {
	totals := make(map[AssetID]int64)
	for key, balance := range bt.balances {
		totals[key.AssetID] += balance
	}
	return totals
}
