package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thrivetrack/backend/internal/config"
	"github.com/thrivetrack/backend/internal/logger"
	"github.com/thrivetrack/backend/internal/repository"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the sqlite schema",
	Long:  `Create the mood_entries table in the configured sqlite database. The hosted PostgREST schema is managed outside this binary.`,
	RunE:  runMigrate,
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	log := setupLogger(cfg)

	if cfg.Store.Driver != config.DriverSQLite {
		return fmt.Errorf("migrate only applies to the %s driver (configured: %s)", config.DriverSQLite, cfg.Store.Driver)
	}

	db, err := repository.OpenSQLite(cfg.Store.SQLite.Path)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := repository.Migrate(cmd.Context(), db); err != nil {
		return err
	}

	log.Info("schema ready", logger.String("path", cfg.Store.SQLite.Path))
	return nil
}
