package query

import "github.com/google/uuid"

// PositionResponse represents a position for API queries.
type PositionResponse struct {
	PositionID          uuid.UUID `json:"position_id"`
	Owner               string    `json:"owner"`
	Market              string    `json:"market"`
	Direction           string    `json:"direction"` // "base" or "quote"
	InitialCollateral   int64     `json:"initial_collateral"`
	RemainingCollateral int64     `json:"remaining_collateral"`
	DebtPrincipal       int64     `json:"debt_principal"`
	RemainingDebt       int64     `json:"remaining_debt"`
	TickLower           int64     `json:"tick_lower"`
	TickUpper           int64     `json:"tick_upper"`
	ThresholdBps        int64     `json:"threshold_bps"`
	AccumulatedPenalty  int64     `json:"accumulated_penalty"`
	State               string    `json:"state"`
	Version             int64     `json:"version"`
	OpenTimestampUs     int64     `json:"open_timestamp_us"`
	AsOfSequence        int64     `json:"as_of_sequence"`
}

// ProgressResponse reports how far a position's liquidation has advanced.
type ProgressResponse struct {
	PositionID           uuid.UUID `json:"position_id"`
	ProgressBps          int64     `json:"progress_bps"`           // band depth at current tick
	LiquidatedBps        int64     `json:"liquidated_bps"`         // collateral actually consumed
	CollateralLiquidated int64     `json:"collateral_liquidated"`
	CollateralRemaining  int64     `json:"collateral_remaining"`
	DebtRepaid           int64     `json:"debt_repaid"`
	DebtRemaining        int64     `json:"debt_remaining"`
	CurrentTick          int64     `json:"current_tick"`
	InBand               bool      `json:"in_band"`
	AsOfSequence         int64     `json:"as_of_sequence"`
}

// LiquidationHistoryResponse is one liquidation step for API queries.
type LiquidationHistoryResponse struct {
	Sequence             int64     `json:"sequence"`
	PositionID           uuid.UUID `json:"position_id"`
	Market               string    `json:"market"`
	Tick                 int64     `json:"tick"`
	CollateralLiquidated int64     `json:"collateral_liquidated"`
	DebtRepaid           int64     `json:"debt_repaid"`
	PenaltyToLP          int64     `json:"penalty_to_lp"`
	PenaltyToTaker       int64     `json:"penalty_to_taker"`
	FullyLiquidated      bool      `json:"fully_liquidated"`
	TimestampUs          int64     `json:"timestamp_us"`
	AsOfSequence         int64     `json:"as_of_sequence"`
}

// JournalHistoryEntry represents a journal entry for API queries.
type JournalHistoryEntry struct {
	JournalID     string `json:"journal_id"`
	BatchID       string `json:"batch_id"`
	EventRef      string `json:"event_ref"`
	Sequence      int64  `json:"sequence"`
	DebitAccount  string `json:"debit_account"`
	CreditAccount string `json:"credit_account"`
	AssetID       uint16 `json:"asset_id"`
	Amount        int64  `json:"amount"`
	JournalType   int32  `json:"journal_type"`
	Timestamp     int64  `json:"timestamp"`
}

// IntegrityReport is the result of an integrity verification check.
type IntegrityReport struct {
	IsHealthy        bool              `json:"is_healthy"`
	HashChainBreaks  []int64           `json:"hash_chain_breaks,omitempty"`
	UnbalancedAssets []UnbalancedAsset `json:"unbalanced_assets,omitempty"`
}

// UnbalancedAsset represents an asset with non-zero global balance sum.
type UnbalancedAsset struct {
	AssetID   uint16 `json:"asset_id"`
	Imbalance int64  `json:"imbalance"`
}
