// internal/game/types.go
//
// Core type definitions for a word hunt round.
// Defines:
//   - WordType: live classification of the current selection.
//   - Submission: outcome of submitting a path.
//   - Round: session state for one grid + lexicon.

package game

import (
	"github.com/robalobadob/wordhunt/internal/board"
	"github.com/robalobadob/wordhunt/internal/scoring"
)

// WordType classifies the word spelled by the current path.
// Possible values:
//   - "invalid":    not a dictionary word.
//   - "valid-new":  a word not yet submitted this round.
//   - "valid-used": a word already submitted this round.
type WordType string

const (
	WordInvalid   WordType = "invalid"
	WordValidNew  WordType = "valid-new"
	WordValidUsed WordType = "valid-used"
)

// Lexicon is what a round needs from the dictionary.
type Lexicon interface {
	ContainsWord(word string) bool
	HasPrefix(prefix string) bool
}

// Submission is the result of submitting a path.
type Submission struct {
	Word   string   `json:"word"`
	Type   WordType `json:"type"`   // classification before the submit was applied
	Points int      `json:"points"` // points awarded by this submission (0 for repeats)
	Score  int      `json:"score"`  // running score after the submission
}

// Round holds the state of a single word hunt round.
// The grid and lexicon are fixed for the round; Submitted and Score change
// only through Submit.
type Round struct {
	ID        string              // Unique round identifier (random hex string).
	Grid      board.Grid          // Tiles for this round.
	Lexicon   Lexicon             // Dictionary used for validation.
	Policy    scoring.Policy      // Word length → points.
	Submitted map[string]struct{} // Words accepted so far.
	Order     []string            // Submitted words in submission order.
	Score     int                 // Running score.
}
