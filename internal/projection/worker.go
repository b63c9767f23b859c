package projection

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"RangeLiq/internal/observability"
)

// ProjectionOutput mirrors the data projection workers need. The
// orchestrator bridges between core.CoreOutput and this.
type ProjectionOutput struct {
	Sequence       int64
	EventType      string
	MarketID       string
	Tick           int64
	Timestamp      int64
	Positions      []PositionRow
	JournalEntries []JournalEntry
	Step           *LiquidationStepRow
}

// JournalEntry is a simplified journal for projection consumption.
type JournalEntry struct {
	DebitAccount  string
	CreditAccount string
	AssetID       uint16
	Amount        int64
	JournalType   int32
}

// PositionRow is a flattened position for the projections.positions table.
type PositionRow struct {
	PositionID          string
	Owner               string
	Market              string
	Direction           int16
	InitialCollateral   int64
	RemainingCollateral int64
	DebtPrincipal       int64
	RemainingDebt       int64
	TickLower           int64
	TickUpper           int64
	ThresholdBps        int64
	AccumulatedPenalty  int64
	State               string
	Version             int64
	OpenTimestampUs     int64
}

// ProjectionWorker updates projection tables from processed events. The
// projection channel is non-blocking with drop: if projections fall behind,
// they are rebuilt from the event log.
type ProjectionWorker struct {
	db        *sql.DB
	inputChan <-chan ProjectionOutput
	metrics   *observability.Metrics
	log       zerolog.Logger
	lastSeq   int64
}

func NewProjectionWorker(db *sql.DB, inputChan <-chan ProjectionOutput, metrics *observability.Metrics) *ProjectionWorker {
	return &ProjectionWorker{
		db:        db,
		inputChan: inputChan,
		metrics:   metrics,
		log:       observability.NewLogger("projection"),
	}
}

// Run starts the projection worker loop.
func (pw *ProjectionWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case output, ok := <-pw.inputChan:
			if !ok {
				return nil
			}

			start := time.Now()
			if err := pw.processOutput(ctx, output); err != nil {
				// Projections are eventually consistent and rebuildable,
				// so a failed update is logged and skipped.
				pw.log.Warn().
					Err(err).
					Int64("sequence", output.Sequence).
					Msg("projection update failed")
			}
			if pw.metrics != nil {
				pw.metrics.ProjectionUpdateDur.Observe(time.Since(start).Seconds())
			}

			pw.lastSeq = output.Sequence
		}
	}
}

func (pw *ProjectionWorker) processOutput(ctx context.Context, output ProjectionOutput) error {
	tx, err := pw.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, j := range output.JournalEntries {
		if err := pw.updateBalanceProjection(ctx, tx, j, output.Sequence); err != nil {
			return fmt.Errorf("balance projection: %w", err)
		}
	}

	for _, p := range output.Positions {
		if err := pw.upsertPosition(ctx, tx, p, output.Sequence); err != nil {
			return fmt.Errorf("position projection: %w", err)
		}
	}

	if output.Step != nil {
		if err := pw.insertLiquidationStep(ctx, tx, output, *output.Step); err != nil {
			return fmt.Errorf("liquidation history: %w", err)
		}
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO projections.watermark (worker_id, last_sequence, updated_at)
		VALUES ('main', $1, NOW())
		ON CONFLICT (worker_id) DO UPDATE SET last_sequence = $1, updated_at = NOW()
	`, output.Sequence); err != nil {
		return fmt.Errorf("watermark update: %w", err)
	}

	return tx.Commit()
}

func (pw *ProjectionWorker) updateBalanceProjection(ctx context.Context, tx *sql.Tx, j JournalEntry, seq int64) error {
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO projections.balances (account_path, asset_id, balance, last_sequence)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (account_path, asset_id)
		DO UPDATE SET balance = projections.balances.balance + $3, last_sequence = $4
	`, j.DebitAccount, j.AssetID, j.Amount, seq); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO projections.balances (account_path, asset_id, balance, last_sequence)
		VALUES ($1, $2, -$3, $4)
		ON CONFLICT (account_path, asset_id)
		DO UPDATE SET balance = projections.balances.balance - $3, last_sequence = $4
	`, j.CreditAccount, j.AssetID, j.Amount, seq); err != nil {
		return err
	}

	return nil
}

// upsertPosition writes the latest position state. The version guard keeps a
// replayed or late update from clobbering newer state.
func (pw *ProjectionWorker) upsertPosition(ctx context.Context, tx *sql.Tx, p PositionRow, seq int64) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO projections.positions
			(position_id, owner, market, direction, initial_collateral, remaining_collateral,
			 debt_principal, remaining_debt, tick_lower, tick_upper, threshold_bps,
			 accumulated_penalty, state, version, open_timestamp_us, last_sequence)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		ON CONFLICT (position_id) DO UPDATE SET
			remaining_collateral = EXCLUDED.remaining_collateral,
			remaining_debt       = EXCLUDED.remaining_debt,
			accumulated_penalty  = EXCLUDED.accumulated_penalty,
			state                = EXCLUDED.state,
			version              = EXCLUDED.version,
			last_sequence        = EXCLUDED.last_sequence
		WHERE projections.positions.version <= EXCLUDED.version
	`, p.PositionID, p.Owner, p.Market, p.Direction, p.InitialCollateral, p.RemainingCollateral,
		p.DebtPrincipal, p.RemainingDebt, p.TickLower, p.TickUpper, p.ThresholdBps,
		p.AccumulatedPenalty, p.State, p.Version, p.OpenTimestampUs, seq)
	return err
}

func (pw *ProjectionWorker) insertLiquidationStep(ctx context.Context, tx *sql.Tx, output ProjectionOutput, step LiquidationStepRow) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO projections.liquidation_history
			(sequence, position_id, market, tick, collateral_delta, debt_delta,
			 penalty_to_lp, penalty_to_taker, fully_liquidated, timestamp_us)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (sequence) DO NOTHING
	`, output.Sequence, step.PositionID, output.MarketID, output.Tick,
		step.CollateralDelta, step.DebtDelta, step.PenaltyToLP, step.PenaltyToTaker,
		step.FullyLiquidated, output.Timestamp)
	return err
}

// RebuildProjections rebuilds balance projections from the event log.
// Positions and liquidation history rebuild through core replay, which
// re-emits them on the projection channel.
func RebuildProjections(ctx context.Context, db *sql.DB) error {
	truncateStatements := []string{
		`TRUNCATE projections.balances`,
		`TRUNCATE projections.positions`,
		`TRUNCATE projections.liquidation_history`,
		`DELETE FROM projections.watermark WHERE worker_id = 'main'`,
	}

	for _, stmt := range truncateStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("truncate failed: %w", err)
		}
	}

	_, err := db.ExecContext(ctx, `
		INSERT INTO projections.balances (account_path, asset_id, balance, last_sequence)
		SELECT
			debit_account AS account_path,
			asset_id,
			SUM(amount) AS balance,
			MAX(sequence) AS last_sequence
		FROM event_log.journal
		GROUP BY debit_account, asset_id
	`)
	if err != nil {
		return fmt.Errorf("rebuild debit balances: %w", err)
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO projections.balances (account_path, asset_id, balance, last_sequence)
		SELECT
			credit_account AS account_path,
			asset_id,
			-SUM(amount) AS balance,
			MAX(sequence) AS last_sequence
		FROM event_log.journal
		GROUP BY credit_account, asset_id
		ON CONFLICT (account_path, asset_id) DO UPDATE
			SET balance = projections.balances.balance + EXCLUDED.balance,
			    last_sequence = GREATEST(projections.balances.last_sequence, EXCLUDED.last_sequence)
	`)
	if err != nil {
		return fmt.Errorf("rebuild credit balances: %w", err)
	}

	return nil
}
