package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/thrivetrack/backend/internal/models"

	_ "modernc.org/sqlite"
)

// Fixed-width so that ORDER BY created_at sorts chronologically
const sqliteTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

const moodEntriesDDL = `
CREATE TABLE IF NOT EXISTS mood_entries (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  mood TEXT NOT NULL,
  mood_value REAL,
  notes TEXT,
  created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_mood_entries_user ON mood_entries(user_id, created_at);
`

// OpenSQLite opens (creating if needed) the database file at path.
// ":memory:" yields a private in-memory database.
func OpenSQLite(path string) (*sql.DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// One writer; also keeps ":memory:" on a single shared connection
	db.SetMaxOpenConns(1)
	return db, nil
}

// Migrate creates the mood_entries schema if it does not exist
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, moodEntriesDDL); err != nil {
		return fmt.Errorf("create mood_entries table: %w", err)
	}
	return nil
}

type sqliteMoodEntryRepository struct {
	db *sql.DB
}

// NewSQLiteMoodEntryRepository creates a repository on db, migrating the
// schema first
func NewSQLiteMoodEntryRepository(ctx context.Context, db *sql.DB) (MoodEntryRepository, error) {
	if err := Migrate(ctx, db); err != nil {
		return nil, err
	}
	return &sqliteMoodEntryRepository{db: db}, nil
}

const selectMoodEntry = `SELECT id, user_id, mood, mood_value, notes, created_at FROM mood_entries`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMoodEntry(row rowScanner) (*models.MoodEntry, error) {
	var (
		entry     models.MoodEntry
		value     sql.NullFloat64
		notes     sql.NullString
		createdAt string
	)
	if err := row.Scan(&entry.ID, &entry.UserID, &entry.Mood, &value, &notes, &createdAt); err != nil {
		return nil, err
	}
	if value.Valid {
		entry.MoodValue = &value.Float64
	}
	if notes.Valid {
		entry.Notes = &notes.String
	}
	ts, err := time.Parse(sqliteTimeLayout, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at %q: %w", createdAt, err)
	}
	entry.CreatedAt = ts
	return &entry, nil
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func nullString(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}

func (r *sqliteMoodEntryRepository) Create(ctx context.Context, entry *models.MoodEntry) (*models.MoodEntry, error) {
	const stmt = `INSERT INTO mood_entries (id, user_id, mood, mood_value, notes, created_at) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, stmt,
		entry.ID,
		entry.UserID,
		entry.Mood,
		nullFloat(entry.MoodValue),
		nullString(entry.Notes),
		entry.CreatedAt.UTC().Format(sqliteTimeLayout),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create mood entry: %w", err)
	}
	return r.GetByID(ctx, entry.UserID, entry.ID)
}

func (r *sqliteMoodEntryRepository) GetByID(ctx context.Context, userID, id string) (*models.MoodEntry, error) {
	row := r.db.QueryRowContext(ctx, selectMoodEntry+` WHERE id = ? AND user_id = ?`, id, userID)
	entry, err := scanMoodEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get mood entry: %w", err)
	}
	return entry, nil
}

func (r *sqliteMoodEntryRepository) ListByUser(ctx context.Context, userID string) ([]models.MoodEntry, error) {
	rows, err := r.db.QueryContext(ctx, selectMoodEntry+` WHERE user_id = ? ORDER BY created_at DESC, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list mood entries: %w", err)
	}
	defer rows.Close()

	entries := []models.MoodEntry{}
	for rows.Next() {
		entry, err := scanMoodEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan mood entry: %w", err)
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list mood entries: %w", err)
	}
	return entries, nil
}

func (r *sqliteMoodEntryRepository) Update(ctx context.Context, entry *models.MoodEntry) (*models.MoodEntry, error) {
	const stmt = `UPDATE mood_entries SET mood = ?, mood_value = ?, notes = ? WHERE id = ? AND user_id = ?`
	res, err := r.db.ExecContext(ctx, stmt,
		entry.Mood,
		nullFloat(entry.MoodValue),
		nullString(entry.Notes),
		entry.ID,
		entry.UserID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update mood entry: %w", err)
	}
	if err := requireAffected(res); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, entry.UserID, entry.ID)
}

func (r *sqliteMoodEntryRepository) Delete(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM mood_entries WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete mood entry: %w", err)
	}
	return requireAffected(res)
}

func (r *sqliteMoodEntryRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
