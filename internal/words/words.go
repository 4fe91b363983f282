// internal/words/words.go
//
// Word list loading for the round service and the solver CLI.
//
// Responsibilities:
//   - Load the lexicon from a file, the SQLite store, or the embedded default.
//   - Normalise entries (trimmed, uppercase, letters only) and drop ones
//     shorter than the minimum scoring length.
//   - Build the process-wide lexicon.Trie once and expose it with Stats.
//
// Source order (Load / Init):
//   1. WORDS_FILE, if set: one word per line, '#' starts a comment line.
//   2. LEXICON_DB, if the caller passes an open DB holding at least one word.
//   3. assets/words.txt compiled into the binary.
//
// Environment variables:
//   WORDS_FILE=/path/to/words.txt
//
// Constraints:
//   • Init is run once (sync.Once); later calls return the first result.
//   • Duplicate lines are harmless: the trie stores each word once.

package words

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/robalobadob/wordhunt/assets"
	"github.com/robalobadob/wordhunt/internal/lexicon"
)

// Source names reported by Load and Stats.
const (
	SourceFile     = "file"
	SourceDB       = "sqlite"
	SourceEmbedded = "embedded"
)

var ErrEmpty = errors.New("words: lexicon is empty")

var (
	initOnce   sync.Once
	lex        *lexicon.Trie
	lexSource  string
	initialErr error
)

// Init loads the lexicon exactly once, reading WORDS_FILE from the
// environment. db may be nil.
func Init(ctx context.Context, db *sql.DB, minLength int) error {
	initOnce.Do(func() {
		list, src, err := Load(ctx, db, os.Getenv("WORDS_FILE"), minLength)
		if err != nil {
			initialErr = err
			return
		}
		lex = lexicon.New(list)
		lexSource = src
		if lex.Len() == 0 {
			initialErr = ErrEmpty
		}
	})
	return initialErr
}

// Lexicon returns the loaded trie. Before a successful Init it is empty.
func Lexicon() *lexicon.Trie {
	if lex == nil {
		return &lexicon.Trie{}
	}
	return lex
}

// Stats returns the number of distinct words loaded and where they came from.
func Stats() (count int, source string) {
	if lex == nil {
		return 0, ""
	}
	return lex.Len(), lexSource
}

// Load resolves the word list following the source order above.
func Load(ctx context.Context, db *sql.DB, path string, minLength int) ([]string, string, error) {
	if path != "" {
		list, err := ReadFile(path)
		if err != nil {
			return nil, "", err
		}
		return filterLen(list, minLength), SourceFile, nil
	}

	if db != nil {
		list, err := NewStore(db).All(ctx, minLength)
		if err != nil {
			return nil, "", fmt.Errorf("load lexicon db: %w", err)
		}
		if len(list) > 0 {
			return list, SourceDB, nil
		}
	}

	raw, err := assets.WordList()
	if err != nil {
		return nil, "", fmt.Errorf("load embedded words: %w", err)
	}
	var list []string
	for _, s := range raw {
		if w, ok := Normalize(s); ok {
			list = append(list, w)
		}
	}
	return filterLen(list, minLength), SourceEmbedded, nil
}

// ReadFile reads a word file from disk.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads one word per line, skipping blanks, '#' comments and entries
// that are not purely alphabetic.
func Parse(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if w, ok := Normalize(line); ok {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

// Normalize trims and uppercases s. It reports false for empty strings and
// anything containing a non-letter.
func Normalize(s string) (string, bool) {
	w := strings.ToUpper(strings.TrimSpace(s))
	if w == "" {
		return "", false
	}
	for _, r := range w {
		if !unicode.IsLetter(r) {
			return "", false
		}
	}
	return w, true
}

func filterLen(list []string, minLength int) []string {
	if minLength <= 1 {
		return list
	}
	out := list[:0:0]
	for _, w := range list {
		if utf8.RuneCountInString(w) >= minLength {
			out = append(out, w)
		}
	}
	return out
}
