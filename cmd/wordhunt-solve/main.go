// Command wordhunt-solve lists every word on a grid.
//
//	wordhunt-solve -grid "CAT.,DOGS" [-words file | -db lexicon.db] [-paths] [-json]
package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"unicode/utf8"

	_ "github.com/mattn/go-sqlite3"

	"github.com/robalobadob/wordhunt/assets"
	"github.com/robalobadob/wordhunt/internal/board"
	"github.com/robalobadob/wordhunt/internal/lexicon"
	"github.com/robalobadob/wordhunt/internal/scoring"
	"github.com/robalobadob/wordhunt/internal/solver"
	"github.com/robalobadob/wordhunt/internal/words"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("wordhunt-solve", flag.ContinueOnError)
	fs.SetOutput(out)
	gridArg := fs.String("grid", "", "Grid rows separated by ',' ('.' for no tile)")
	wordsFile := fs.String("words", "", "Word list file (default: embedded list)")
	dbPath := fs.String("db", "", "SQLite lexicon database (used when -words is empty)")
	table := fs.String("table", "", "Score table, e.g. 3:100,4:400 (default: standard table)")
	minLen := fs.Int("min", scoring.DefaultMinLength, "Minimum word length")
	showPaths := fs.Bool("paths", false, "Print every path for each word")
	asJSON := fs.Bool("json", false, "Print the analysis as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	g := board.Parse(*gridArg)
	if len(g.Tiles()) == 0 {
		return errors.New("-grid has no tiles")
	}

	policy := scoring.Default()
	policy.MinLength = *minLen
	if *table != "" {
		var err error
		if policy, err = scoring.Parse(*table, *minLen); err != nil {
			return err
		}
	}

	var db *sql.DB
	if *dbPath != "" {
		var err error
		if db, err = sql.Open("sqlite3", *dbPath); err != nil {
			return err
		}
		defer db.Close()
		// a new or empty file gets the schema and falls back to the embedded list
		m, err := assets.Migrations()
		if err != nil {
			return err
		}
		if err := words.Migrate(ctx, db, m); err != nil {
			return fmt.Errorf("prepare %s: %w", *dbPath, err)
		}
	}
	list, src, err := words.Load(ctx, db, *wordsFile, policy.MinLength)
	if err != nil {
		return err
	}

	a := solver.Solve(g, lexicon.New(list), policy)
	if *asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(a)
	}

	fmt.Fprintf(out, "Lexicon: %d words (%s)\n", len(list), src)
	fmt.Fprintf(out, "Words: %d  Max score: %d\n", len(a.PossibleAnswers), a.MaxScore)

	// longest first, then alphabetical
	answers := append([]solver.PossibleAnswer(nil), a.PossibleAnswers...)
	sort.SliceStable(answers, func(i, j int) bool {
		li, lj := utf8.RuneCountInString(answers[i].Word), utf8.RuneCountInString(answers[j].Word)
		if li != lj {
			return li > lj
		}
		return answers[i].Word < answers[j].Word
	})
	for _, pa := range answers {
		fmt.Fprintf(out, "%-12s %5d\n", pa.Word, policy.WordPoints(pa.Word))
		if *showPaths {
			for _, p := range pa.Paths {
				fmt.Fprintf(out, "    %s\n", p.Key())
			}
		}
	}
	return nil
}
