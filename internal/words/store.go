package words

import (
	"context"
	"database/sql"
	"fmt"
	"unicode/utf8"
)

// Store is the SQLite-backed lexicon. Schema comes from Migrate.
type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// Import inserts words, ignoring ones already present, and returns how many
// rows were added. Words are expected to be normalised already.
func (s *Store) Import(ctx context.Context, words []string, source string) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR IGNORE INTO words(word, source, word_len) VALUES(?,?,?)`)
	if err != nil {
		_ = tx.Rollback()
		return 0, err
	}
	defer stmt.Close()

	added := 0
	for _, w := range words {
		res, err := stmt.ExecContext(ctx, w, source, utf8.RuneCountInString(w))
		if err != nil {
			_ = tx.Rollback()
			return 0, fmt.Errorf("import %q: %w", w, err)
		}
		if n, err := res.RowsAffected(); err == nil {
			added += int(n)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return added, nil
}

// All returns every stored word of at least minLength runes, sorted.
func (s *Store) All(ctx context.Context, minLength int) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT word FROM words WHERE word_len >= ? ORDER BY word ASC`, minLength)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

// Count returns the number of stored words.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM words`).Scan(&n)
	return n, err
}
