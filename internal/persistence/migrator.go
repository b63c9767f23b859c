package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"RangeLiq/internal/observability"
)

// Migration is one versioned schema step on disk. Files follow the
// golang-migrate naming convention: {version}_{name}.up.sql / .down.sql.
type Migration struct {
	Version string
	UpFile  string
}

func (mg Migration) downFile() string {
	return strings.Replace(mg.UpFile, ".up.sql", ".down.sql", 1)
}

// Migrator applies and rolls back the SQL schema for the event log,
// snapshot, and idempotency tables. Each step runs inside its own
// transaction together with its schema_migrations bookkeeping row.
type Migrator struct {
	db  *sql.DB
	dir string
	log zerolog.Logger
}

func NewMigrator(db *sql.DB, migrationsDir string) *Migrator {
	return &Migrator{
		db:  db,
		dir: migrationsDir,
		log: observability.NewLogger("migrator"),
	}
}

// Up applies every pending migration in version order.
func (m *Migrator) Up(ctx context.Context) error {
	pending, err := m.Pending(ctx)
	if err != nil {
		return err
	}

	for _, mg := range pending {
		script, err := os.ReadFile(filepath.Join(m.dir, mg.UpFile))
		if err != nil {
			return fmt.Errorf("read migration %s: %w", mg.UpFile, err)
		}

		err = m.inTx(ctx, func(tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx, string(script)); err != nil {
				return fmt.Errorf("exec migration %s: %w", mg.UpFile, err)
			}
			_, err := tx.ExecContext(ctx,
				`INSERT INTO public.schema_migrations (version, filename) VALUES ($1, $2)`,
				mg.Version, mg.UpFile,
			)
			if err != nil {
				return fmt.Errorf("record migration %s: %w", mg.UpFile, err)
			}
			return nil
		})
		if err != nil {
			return err
		}

		m.log.Info().Str("file", mg.UpFile).Msg("applied migration")
	}

	return nil
}

// Down rolls back the most recently applied migration, if any.
func (m *Migrator) Down(ctx context.Context) error {
	if err := m.ensureTable(ctx); err != nil {
		return err
	}

	var mg Migration
	err := m.db.QueryRowContext(ctx,
		`SELECT version, filename FROM public.schema_migrations ORDER BY version DESC LIMIT 1`,
	).Scan(&mg.Version, &mg.UpFile)
	if err == sql.ErrNoRows {
		m.log.Info().Msg("no migrations to roll back")
		return nil
	}
	if err != nil {
		return fmt.Errorf("get latest migration: %w", err)
	}

	down := mg.downFile()
	script, err := os.ReadFile(filepath.Join(m.dir, down))
	if err != nil {
		return fmt.Errorf("read down migration %s: %w", down, err)
	}

	err = m.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, string(script)); err != nil {
			return fmt.Errorf("exec down migration %s: %w", down, err)
		}
		_, err := tx.ExecContext(ctx,
			`DELETE FROM public.schema_migrations WHERE version = $1`, mg.Version,
		)
		if err != nil {
			return fmt.Errorf("remove migration record %s: %w", mg.Version, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	m.log.Info().Str("file", down).Msg("rolled back migration")
	return nil
}

// Pending returns the migrations on disk that have not yet been applied,
// sorted by version.
func (m *Migrator) Pending(ctx context.Context) ([]Migration, error) {
	if err := m.ensureTable(ctx); err != nil {
		return nil, fmt.Errorf("ensure migration table: %w", err)
	}

	applied, err := m.appliedVersions(ctx)
	if err != nil {
		return nil, fmt.Errorf("get applied versions: %w", err)
	}

	entries, err := os.ReadDir(m.dir)
	if err != nil {
		return nil, fmt.Errorf("list migrations: %w", err)
	}

	var pending []Migration
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".up.sql") {
			continue
		}
		version, _, _ := strings.Cut(name, "_")
		if applied[version] {
			continue
		}
		pending = append(pending, Migration{Version: version, UpFile: name})
	}

	sort.Slice(pending, func(i, j int) bool { return pending[i].Version < pending[j].Version })
	return pending, nil
}

// PendingCount reports how many migrations are waiting to be applied.
func (m *Migrator) PendingCount(ctx context.Context) (int, error) {
	pending, err := m.Pending(ctx)
	if err != nil {
		return 0, err
	}
	return len(pending), nil
}

func (m *Migrator) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

func (m *Migrator) ensureTable(ctx context.Context) error {
	_, err := m.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS public.schema_migrations (
			version    TEXT PRIMARY KEY,
			filename   TEXT NOT NULL,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`)
	return err
}

func (m *Migrator) appliedVersions(ctx context.Context) (map[string]bool, error) {
	rows, err := m.db.QueryContext(ctx, `SELECT version FROM public.schema_migrations`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applied := make(map[string]bool)
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		applied[v] = true
	}
	return applied, rows.Err()
}
