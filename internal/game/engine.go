// internal/game/engine.go
//
// Submission handling and live classification for a word hunt round.
// Responsibilities:
//   - Create rounds for a caller-supplied grid and lexicon.
//   - Classify the current selection (invalid / valid-new / valid-used).
//   - Validate and apply submitted paths, awarding points once per word.
//   - Summarise a finished round against the solver's analysis.
//
// Notes:
//   - A Round is single-writer: callers serialise Submit (the HTTP layer does
//     it through store.Update).
//   - randomID() is a compact hex identifier for correlating server state.

package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/robalobadob/wordhunt/internal/board"
	"github.com/robalobadob/wordhunt/internal/scoring"
	"github.com/robalobadob/wordhunt/internal/solver"
)

var (
	ErrEmptyPath   = errors.New("empty path")
	ErrInvalidPath = errors.New("invalid path")
	ErrNotAWord    = errors.New("not in word list")
)

// NewRound constructs a new round over grid.
func NewRound(grid board.Grid, lex Lexicon, policy scoring.Policy) *Round {
	return &Round{
		ID:        randomID(),
		Grid:      grid,
		Lexicon:   lex,
		Policy:    policy,
		Submitted: make(map[string]struct{}),
	}
}

// Classify reports the word type of the word spelled by path.
// Paths that leave the grid or spell nothing are invalid.
func (r *Round) Classify(path board.Path) WordType {
	word, ok := r.Grid.Word(path)
	if !ok || len(path) == 0 {
		return WordInvalid
	}
	return r.ClassifyWord(word)
}

// ClassifyWord reports the word type of an already spelled word.
func (r *Round) ClassifyWord(word string) WordType {
	if !r.Lexicon.ContainsWord(word) {
		return WordInvalid
	}
	if _, used := r.Submitted[word]; used {
		return WordValidUsed
	}
	return WordValidNew
}

// Submit validates path and, if it spells a new word, records the word and
// adds its points to the score.
//
// Repeated words are not an error: they come back as WordValidUsed with
// zero points and leave the round unchanged.
func (r *Round) Submit(path board.Path) (Submission, error) {
	if len(path) == 0 {
		return Submission{Score: r.Score}, ErrEmptyPath
	}
	if !path.ValidOn(r.Grid) {
		return Submission{Score: r.Score}, fmt.Errorf("submit %s: %w", path.Key(), ErrInvalidPath)
	}
	word, _ := r.Grid.Word(path)
	typ := r.ClassifyWord(word)
	sub := Submission{Word: word, Type: typ, Score: r.Score}
	switch typ {
	case WordInvalid:
		return sub, fmt.Errorf("submit %q: %w", word, ErrNotAWord)
	case WordValidUsed:
		return sub, nil
	}

	sub.Points = r.Policy.WordPoints(word)
	r.Submitted[word] = struct{}{}
	r.Order = append(r.Order, word)
	r.Score += sub.Points
	sub.Score = r.Score
	return sub, nil
}

// Summary compares a round's submissions with everything the grid offers.
type Summary struct {
	Found    []string `json:"found"`
	Missed   []string `json:"missed"`
	Score    int      `json:"score"`
	MaxScore int      `json:"maxScore"`
}

// Summarise splits the analysis' words into found and missed, preserving
// the analysis order.
func (r *Round) Summarise(a solver.Analysis) Summary {
	s := Summary{Found: []string{}, Missed: []string{}, Score: r.Score, MaxScore: a.MaxScore}
	for _, pa := range a.PossibleAnswers {
		if _, ok := r.Submitted[pa.Word]; ok {
			s.Found = append(s.Found, pa.Word)
		} else {
			s.Missed = append(s.Missed, pa.Word)
		}
	}
	return s
}

// randomID returns a compact 16‑hex‑char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
