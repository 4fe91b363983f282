// db.go
//
// SQLite helpers for the optional lexicon store (LEXICON_DB).
// Responsibilities:
//   - Opening the database with safe defaults (WAL, busy timeout, foreign keys).
//   - Applying the embedded migrations (assets/sql, recorded in _migrations).
//   - Importing a word file into the words table (-import).

package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/robalobadob/wordhunt/assets"
	"github.com/robalobadob/wordhunt/internal/words"
)

// openDB opens (and creates if missing) a SQLite database file and applies
// pending migrations.
func openDB(ctx context.Context, dsn string) (*sql.DB, error) {
	// Ensure directory exists for ./data/lexicon.db, etc.
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.ExecContext(ctx, `PRAGMA foreign_keys = ON; PRAGMA journal_mode = WAL;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}

	m, err := assets.Migrations()
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := words.Migrate(ctx, db, m); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// importWords loads path (normalised like WORDS_FILE) into the words table.
func importWords(ctx context.Context, db *sql.DB, path string) (read, added int, err error) {
	list, err := words.ReadFile(path)
	if err != nil {
		return 0, 0, err
	}
	added, err = words.NewStore(db).Import(ctx, list, filepath.Base(path))
	return len(list), added, err
}
