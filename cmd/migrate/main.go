package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "migrate",
		Short:        "Manage the bookswap database schema",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			loadEnvFiles()
		},
	}

	root.AddCommand(
		dbCommand("up", "Apply all pending migrations", goose.Up, "Migrations applied successfully"),
		dbCommand("down", "Roll back the latest migration", goose.Down, "Migrations rolled back successfully"),
		dbCommand("status", "Print the migration status", goose.Status, ""),
		createCmd(),
	)
	return root
}

func dbCommand(use, short string, run func(db *sql.DB, dir string, opts ...goose.OptionsFunc) error, done string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, closeDB, err := openDB(cmd.Context(), databaseDSN())
			if err != nil {
				return err
			}
			defer closeDB()

			if err := goose.SetDialect("postgres"); err != nil {
				return err
			}
			if err := run(db, migrationsDir()); err != nil {
				return fmt.Errorf("migrate %s: %w", use, err)
			}
			if done != "" {
				fmt.Fprintln(cmd.OutOrStdout(), done)
			}
			return nil
		},
	}
}

func createCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create NAME",
		Short: "Create a new SQL migration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := goose.Create(nil, migrationsDir(), args[0], "sql"); err != nil {
				return fmt.Errorf("create migration: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Migration created: %s\n", args[0])
			return nil
		},
	}
}

func openDB(ctx context.Context, dsn string) (*sql.DB, func(), error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to database: %w", err)
	}
	db := stdlib.OpenDBFromPool(pool)
	return db, func() {
		_ = db.Close()
		pool.Close()
	}, nil
}
