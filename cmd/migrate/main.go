package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"

	"RangeLiq/internal/persistence"
)

const usage = `Usage: migrate <up|down|status>

Commands:
  up      apply all pending migrations
  down    roll back the last applied migration
  status  list pending migrations without applying them

Environment:
  POSTGRES_URL    Postgres connection string (default: local rangeliq db)
  MIGRATIONS_DIR  path to migrations directory (default: migrations)
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
	if err := run(os.Args[1]); err != nil {
		fmt.Fprintf(os.Stderr, "migrate %s: %v\n", os.Args[1], err)
		os.Exit(1)
	}
}

func run(command string) error {
	db, err := sql.Open("postgres", envOr("POSTGRES_URL",
		"postgres://localhost:5432/rangeliq?sslmode=disable"))
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	ctx := context.Background()
	migrator := persistence.NewMigrator(db, envOr("MIGRATIONS_DIR", "migrations"))

	switch command {
	case "up":
		if err := migrator.Up(ctx); err != nil {
			return err
		}
		fmt.Println("all migrations applied")
		return nil

	case "down":
		if err := migrator.Down(ctx); err != nil {
			return err
		}
		fmt.Println("last migration rolled back")
		return nil

	case "status":
		pending, err := migrator.Pending(ctx)
		if err != nil {
			return err
		}
		if len(pending) == 0 {
			fmt.Println("schema is up to date")
			return nil
		}
		for _, mg := range pending {
			fmt.Printf("pending: %s\n", mg.UpFile)
		}
		return nil

	default:
		return fmt.Errorf("unknown command (use 'up', 'down', or 'status')")
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
