package query

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"

	"RangeLiq/internal/event"
	"RangeLiq/internal/ledger"
	"RangeLiq/internal/projection"
	"RangeLiq/internal/state"
)

// QueryService provides read-only access to projection tables plus the
// pure-parameter queries (penalty rate). Queries are served via gRPC and
// HTTP/JSON (gRPC-Gateway). All responses include as_of_sequence for
// freshness semantics.
type QueryService struct {
	db      *sql.DB
	params  *state.EngineParams
	history *projection.LiquidationHistoryProjection

	// Published by the projection bridge after each applied price update.
	currentTick atomic.Int64
	hasTick     atomic.Bool
}

func NewQueryService(db *sql.DB, params *state.EngineParams, history *projection.LiquidationHistoryProjection) *QueryService {
	return &QueryService{
		db:      db,
		params:  params,
		history: history,
	}
}

// PublishTick updates the tick used by underwater/progress queries.
func (qs *QueryService) PublishTick(tick int64) {
	qs.currentTick.Store(tick)
	qs.hasTick.Store(true)
}

// GetPosition returns a position by id.
func (qs *QueryService) GetPosition(ctx context.Context, positionID uuid.UUID) (*PositionResponse, error) {
	asOfSeq, err := qs.getWatermark(ctx)
	if err != nil {
		return nil, fmt.Errorf("watermark: %w", err)
	}

	row := qs.db.QueryRowContext(ctx, `
		SELECT owner, market, direction, initial_collateral, remaining_collateral,
		       debt_principal, remaining_debt, tick_lower, tick_upper, threshold_bps,
		       accumulated_penalty, state, version, open_timestamp_us
		FROM projections.positions
		WHERE position_id = $1
	`, positionID.String())

	var p PositionResponse
	var direction int16
	p.PositionID = positionID
	p.AsOfSequence = asOfSeq
	if err := row.Scan(
		&p.Owner, &p.Market, &direction, &p.InitialCollateral, &p.RemainingCollateral,
		&p.DebtPrincipal, &p.RemainingDebt, &p.TickLower, &p.TickUpper, &p.ThresholdBps,
		&p.AccumulatedPenalty, &p.State, &p.Version, &p.OpenTimestampUs,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("position %s not found", positionID)
		}
		return nil, err
	}
	p.Direction = event.Direction(direction).String()

	return &p, nil
}

// IsUnderwater reports whether the current tick sits inside the position's
// liquidation band.
func (qs *QueryService) IsUnderwater(ctx context.Context, positionID uuid.UUID) (bool, error) {
	if !qs.hasTick.Load() {
		return false, fmt.Errorf("no price observed yet")
	}
	p, err := qs.GetPosition(ctx, positionID)
	if err != nil {
		return false, err
	}
	tick := qs.currentTick.Load()
	return tick >= p.TickLower && tick <= p.TickUpper, nil
}

// GetLiquidationProgress reports band depth and consumed collateral for a
// position at the current tick.
func (qs *QueryService) GetLiquidationProgress(ctx context.Context, positionID uuid.UUID) (*ProgressResponse, error) {
	if !qs.hasTick.Load() {
		return nil, fmt.Errorf("no price observed yet")
	}
	p, err := qs.GetPosition(ctx, positionID)
	if err != nil {
		return nil, err
	}

	tick := qs.currentTick.Load()
	dir := event.DirectionBase
	if p.Direction == event.DirectionQuote.String() {
		dir = event.DirectionQuote
	}

	// Rebuild the in-memory shape for the progress computation.
	pos := &state.Position{
		ID:                  p.PositionID,
		Dir:                 dir,
		InitialCollateral:   p.InitialCollateral,
		RemainingCollateral: p.RemainingCollateral,
		TickLower:           p.TickLower,
		TickUpper:           p.TickUpper,
	}

	liquidated := p.InitialCollateral - p.RemainingCollateral
	liquidatedBps := int64(0)
	if p.InitialCollateral > 0 {
		liquidatedBps = liquidated * 10_000 / p.InitialCollateral
	}

	return &ProgressResponse{
		PositionID:           p.PositionID,
		ProgressBps:          state.ProgressBps(pos, tick),
		LiquidatedBps:        liquidatedBps,
		CollateralLiquidated: liquidated,
		CollateralRemaining:  p.RemainingCollateral,
		DebtRepaid:           p.DebtPrincipal - p.RemainingDebt,
		DebtRemaining:        p.RemainingDebt,
		CurrentTick:          tick,
		InBand:               pos.InBand(tick),
		AsOfSequence:         p.AsOfSequence,
	}, nil
}

// GetPenaltyRateForThreshold returns the annualized penalty rate in bps for
// a hypothetical threshold. Pure parameter math, no state.
func (qs *QueryService) GetPenaltyRateForThreshold(thresholdBps int64) (int64, error) {
	if !qs.params.ThresholdInBounds(thresholdBps) {
		return 0, fmt.Errorf("threshold %d outside [%d, %d]",
			thresholdBps, qs.params.ThresholdMinBps, qs.params.ThresholdMaxBps)
	}
	return qs.params.PenaltyRateBps(thresholdBps), nil
}

// GetActivePositionCount returns the number of open positions.
func (qs *QueryService) GetActivePositionCount(ctx context.Context) (int64, error) {
	var count int64
	err := qs.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM projections.positions
		WHERE state != 'Closed'
	`).Scan(&count)
	return count, err
}

// GetLiquidationHistory returns liquidation steps, newest first, with
// cursor-based pagination. positionID filters to one position when non-nil.
func (qs *QueryService) GetLiquidationHistory(
	ctx context.Context,
	positionID *uuid.UUID,
	limit int,
	beforeSequence *int64,
) ([]LiquidationHistoryResponse, error) {
	asOfSeq, err := qs.getWatermark(ctx)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT sequence, position_id, market, tick, collateral_delta, debt_delta,
		       penalty_to_lp, penalty_to_taker, fully_liquidated, timestamp_us
		FROM projections.liquidation_history
		WHERE 1=1
	`
	args := []interface{}{}
	argIdx := 1

	if positionID != nil {
		query += fmt.Sprintf(" AND position_id = $%d", argIdx)
		args = append(args, positionID.String())
		argIdx++
	}
	if beforeSequence != nil {
		query += fmt.Sprintf(" AND sequence < $%d", argIdx)
		args = append(args, *beforeSequence)
		argIdx++
	}

	query += " ORDER BY sequence DESC"
	query += fmt.Sprintf(" LIMIT $%d", argIdx)
	args = append(args, limit)

	rows, err := qs.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []LiquidationHistoryResponse
	for rows.Next() {
		var h LiquidationHistoryResponse
		var posID string
		h.AsOfSequence = asOfSeq
		if err := rows.Scan(
			&h.Sequence, &posID, &h.Market, &h.Tick, &h.CollateralLiquidated,
			&h.DebtRepaid, &h.PenaltyToLP, &h.PenaltyToTaker, &h.FullyLiquidated,
			&h.TimestampUs,
		); err != nil {
			return nil, err
		}
		if id, perr := uuid.Parse(posID); perr == nil {
			h.PositionID = id
		}
		history = append(history, h)
	}

	return history, rows.Err()
}

// GetRecentLiquidations serves the hot path from the in-memory projection.
func (qs *QueryService) GetRecentLiquidations(limit int) []projection.LiquidationHistoryEntry {
	if qs.history == nil {
		return nil
	}
	return qs.history.Recent(limit)
}

// GetPoolBalances returns the system-level penalty pools for an asset.
func (qs *QueryService) GetPoolBalances(ctx context.Context, asset string) (*PoolBalancesResponse, error) {
	assetID, ok := ledger.GetAssetID(asset)
	if !ok {
		return nil, fmt.Errorf("unknown asset: %s", asset)
	}

	asOfSeq, err := qs.getWatermark(ctx)
	if err != nil {
		return nil, err
	}

	lpPool, err := qs.getProjectedBalance(ctx,
		ledger.NewSystemAccountKey("lp_pool", ledger.SubTypeSystemLPPool, assetID).AccountPath())
	if err != nil {
		return nil, err
	}
	takerCredits, err := qs.getProjectedBalance(ctx,
		ledger.NewSystemAccountKey("taker_credits", ledger.SubTypeSystemTakerCredits, assetID).AccountPath())
	if err != nil {
		return nil, err
	}
	penaltyCharges, err := qs.getProjectedBalance(ctx,
		ledger.NewSystemAccountKey("penalty_charges", ledger.SubTypeSystemPenaltyCharges, assetID).AccountPath())
	if err != nil {
		return nil, err
	}

	var totalReserved int64
	err = qs.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(balance), 0) FROM projections.balances
		WHERE account_path LIKE 'position:%:reserve:' || $1
	`, asset).Scan(&totalReserved)
	if err != nil {
		return nil, err
	}

	return &PoolBalancesResponse{
		Asset:          asset,
		LPPoolCredits:  lpPool,
		TakerCredits:   takerCredits,
		PenaltyCharges: penaltyCharges,
		TotalReserved:  totalReserved,
		AsOfSequence:   asOfSeq,
	}, nil
}

// GetPositionReserve returns one position's collateral reserve.
func (qs *QueryService) GetPositionReserve(ctx context.Context, positionID uuid.UUID, asset string) (*ReserveResponse, error) {
	assetID, ok := ledger.GetAssetID(asset)
	if !ok {
		return nil, fmt.Errorf("unknown asset: %s", asset)
	}

	asOfSeq, err := qs.getWatermark(ctx)
	if err != nil {
		return nil, err
	}

	reserve, err := qs.getProjectedBalance(ctx,
		ledger.NewPositionAccountKey(positionID, assetID).AccountPath())
	if err != nil {
		return nil, err
	}

	return &ReserveResponse{
		PositionID:   positionID,
		Asset:        asset,
		Reserve:      reserve,
		AsOfSequence: asOfSeq,
	}, nil
}

// GetJournalHistory returns journal entries touching a position's accounts.
func (qs *QueryService) GetJournalHistory(
	ctx context.Context,
	positionID uuid.UUID,
	limit int,
	beforeSequence *int64,
) ([]JournalHistoryEntry, error) {
	accountPrefix := fmt.Sprintf("position:%s:%%", positionID)

	query := `
		SELECT journal_id, batch_id, event_ref, sequence,
		       debit_account, credit_account, asset_id, amount, journal_type, timestamp
		FROM event_log.journal
		WHERE (debit_account LIKE $1 OR credit_account LIKE $1)
	`
	args := []interface{}{accountPrefix}
	argIdx := 2

	if beforeSequence != nil {
		query += fmt.Sprintf(" AND sequence < $%d", argIdx)
		args = append(args, *beforeSequence)
		argIdx++
	}

	query += " ORDER BY sequence DESC"
	query += fmt.Sprintf(" LIMIT $%d", argIdx)
	args = append(args, limit)

	rows, err := qs.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []JournalHistoryEntry
	for rows.Next() {
		var e JournalHistoryEntry
		if err := rows.Scan(
			&e.JournalID, &e.BatchID, &e.EventRef, &e.Sequence,
			&e.DebitAccount, &e.CreditAccount, &e.AssetID, &e.Amount,
			&e.JournalType, &e.Timestamp,
		); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// --- Admin APIs ---

// VerifyIntegrity checks hash chain continuity and global balance.
func (qs *QueryService) VerifyIntegrity(ctx context.Context) (*IntegrityReport, error) {
	report := &IntegrityReport{}

	rows, err := qs.db.QueryContext(ctx, `
		SELECT e1.sequence
		FROM event_log.events e1
		LEFT JOIN event_log.events e2 ON e2.sequence = e1.sequence - 1
		WHERE e1.sequence > 0 AND e1.prev_hash != COALESCE(e2.state_hash, e1.prev_hash)
		LIMIT 10
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var seq int64
		if err := rows.Scan(&seq); err != nil {
			return nil, err
		}
		report.HashChainBreaks = append(report.HashChainBreaks, seq)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	balanceRows, err := qs.db.QueryContext(ctx, `
		SELECT asset_id, SUM(balance) as total
		FROM projections.balances
		GROUP BY asset_id
		HAVING SUM(balance) != 0
	`)
	if err != nil {
		return nil, err
	}
	defer balanceRows.Close()

	for balanceRows.Next() {
		var assetID uint16
		var total int64
		if err := balanceRows.Scan(&assetID, &total); err != nil {
			return nil, err
		}
		report.UnbalancedAssets = append(report.UnbalancedAssets, UnbalancedAsset{
			AssetID:   assetID,
			Imbalance: total,
		})
	}
	if err := balanceRows.Err(); err != nil {
		return nil, err
	}

	report.IsHealthy = len(report.HashChainBreaks) == 0 && len(report.UnbalancedAssets) == 0
	return report, nil
}

// --- helpers ---

func (qs *QueryService) getWatermark(ctx context.Context) (int64, error) {
	var seq int64
	err := qs.db.QueryRowContext(ctx, `
		SELECT COALESCE(last_sequence, 0) FROM projections.watermark WHERE worker_id = 'main'
	`).Scan(&seq)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	return seq, err
}

func (qs *QueryService) getProjectedBalance(ctx context.Context, accountPath string) (int64, error) {
	var balance int64
	err := qs.db.QueryRowContext(ctx, `
		SELECT COALESCE(balance, 0) FROM projections.balances
		WHERE account_path = $1
	`, accountPath).Scan(&balance)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	return balance, err
}
