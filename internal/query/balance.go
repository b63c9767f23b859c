package query

import "github.com/google/uuid"

// PoolBalancesResponse reports the system-level pools for one asset.
type PoolBalancesResponse struct {
	Asset string `json:"asset"`

	// Ledger balances (from journal entries)
	LPPoolCredits  int64 `json:"lp_pool_credits"`  // penalty share paid to liquidity providers
	TakerCredits   int64 `json:"taker_credits"`    // penalty share paid to price takers
	PenaltyCharges int64 `json:"penalty_charges"`  // liability sink, mirrors the credits
	TotalReserved  int64 `json:"total_reserved"`   // sum of all position reserves

	AsOfSequence int64 `json:"as_of_sequence"` // last projected event sequence
}

// ReserveResponse reports one position's collateral reserve.
type ReserveResponse struct {
	PositionID   uuid.UUID `json:"position_id"`
	Asset        string    `json:"asset"`
	Reserve      int64     `json:"reserve"`
	AsOfSequence int64     `json:"as_of_sequence"`
}
