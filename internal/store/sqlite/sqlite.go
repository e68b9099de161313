// Package sqlite stores the ledger in a single SQLite database file.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Flyrell/hydromind/internal/entry"

	_ "modernc.org/sqlite"
)

// FileName is the database file created inside the data directory.
const FileName = "hydromind.db"

// Store keeps entries and settings in SQLite tables.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and ensures its schema.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.ensureSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS entries (
  position INTEGER PRIMARY KEY,
  id TEXT NOT NULL UNIQUE,
  amount REAL NOT NULL,
  timestamp TEXT NOT NULL,
  drink_type TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS settings (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create tables: %w", err)
	}
	return nil
}

// LoadEntries returns all entries in the order they were saved.
func (s *Store) LoadEntries() ([]entry.Entry, error) {
	ctx := context.Background()
	rows, err := s.db.QueryContext(ctx, `SELECT id, amount, timestamp, drink_type FROM entries ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	var entries []entry.Entry
	for rows.Next() {
		var (
			e     entry.Entry
			ts    string
			drink string
		)
		if err := rows.Scan(&e.ID, &e.Amount, &ts, &drink); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		e.Timestamp, err = time.Parse(time.RFC3339Nano, ts)
		if err != nil {
			return nil, fmt.Errorf("entry %s: parse timestamp: %w", e.ID, err)
		}
		e.DrinkType = entry.DrinkType(drink)
		if !e.DrinkType.Valid() {
			return nil, fmt.Errorf("entry %s: %w %q", e.ID, entry.ErrUnknownDrinkType, drink)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read entries: %w", err)
	}
	return entries, nil
}

// SaveEntries replaces every stored entry with entries in a single
// transaction.
func (s *Store) SaveEntries(entries []entry.Entry) (err error) {
	ctx := context.Background()
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM entries`); err != nil {
		return fmt.Errorf("clear entries: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO entries (position, id, amount, timestamp, drink_type) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, e := range entries {
		if _, err = stmt.ExecContext(ctx, i, e.ID, e.Amount, e.Timestamp.Format(time.RFC3339Nano), string(e.DrinkType)); err != nil {
			return fmt.Errorf("insert entry %s: %w", e.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// LoadSetting returns the stored value for key, if any.
func (s *Store) LoadSetting(key string) (string, bool, error) {
	var v string
	err := s.db.QueryRowContext(context.Background(), `SELECT value FROM settings WHERE key = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("load setting %s: %w", key, err)
	}
	return v, true, nil
}

// SaveSetting upserts value under key.
func (s *Store) SaveSetting(key, value string) error {
	const stmt = `
INSERT INTO settings (key, value) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET value=excluded.value;
`
	if _, err := s.db.ExecContext(context.Background(), stmt, key, value); err != nil {
		return fmt.Errorf("save setting %s: %w", key, err)
	}
	return nil
}
