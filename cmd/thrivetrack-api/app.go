package main

import (
	"context"
	"fmt"
	"io"

	"github.com/thrivetrack/backend/internal/config"
	"github.com/thrivetrack/backend/internal/logger"
	"github.com/thrivetrack/backend/internal/repository"
	"github.com/thrivetrack/backend/pkg/supabase"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// setupLogger installs the configured logger as the process default
func setupLogger(cfg *config.Config) logger.Logger {
	log := logger.NewSlogLogger(logger.Config{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: cfg.Log.Format,
	})
	logger.SetDefault(log)
	return log
}

// openStore builds the mood entry repository selected by store.driver.
// The returned closer releases the database handle.
func openStore(ctx context.Context, cfg *config.Config) (repository.MoodEntryRepository, io.Closer, error) {
	switch cfg.Store.Driver {
	case config.DriverPostgREST:
		client := supabase.NewClient(cfg.Store.PostgREST.URL, cfg.Store.PostgREST.ServiceKey, cfg.Store.PostgREST.Timeout)
		return repository.NewPostgRESTMoodEntryRepository(client), nopCloser{}, nil
	case config.DriverSQLite:
		db, err := repository.OpenSQLite(cfg.Store.SQLite.Path)
		if err != nil {
			return nil, nil, err
		}
		repo, err := repository.NewSQLiteMoodEntryRepository(ctx, db)
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		return repo, db, nil
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}
