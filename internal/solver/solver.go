// internal/solver/solver.go
//
// Exhaustive word enumeration for a grid.
// Responsibilities:
//   - Backtracking search from every tile over 8-connected neighbours.
//   - Prune branches whose spelled prefix cannot grow into a word.
//   - Group every realizing path under its word and total the best score.
//
// Notes:
//   - Start cells are visited row-major and neighbours in board.Neighbours
//     order, so results come out in a stable discovery order.
//   - Solve holds no state between calls and never mutates its inputs; it is
//     safe to run on a background goroutine.

package solver

import (
	"github.com/robalobadob/wordhunt/internal/board"
	"github.com/robalobadob/wordhunt/internal/scoring"
)

// Lexicon is the subset of lexicon.Trie the search needs.
type Lexicon interface {
	ContainsWord(word string) bool
	HasPrefix(prefix string) bool
}

// PossibleAnswer is a word found in the grid together with every distinct
// path that spells it.
type PossibleAnswer struct {
	Word  string       `json:"word"`
	Paths []board.Path `json:"paths"`
}

// Analysis is the full set of answers for a grid and the best achievable score.
type Analysis struct {
	PossibleAnswers []PossibleAnswer `json:"possibleAnswers"`
	MaxScore        int              `json:"maxScore"`
}

// Words lists the answer words in discovery order.
func (a Analysis) Words() []string {
	out := make([]string, len(a.PossibleAnswers))
	for i, pa := range a.PossibleAnswers {
		out[i] = pa.Word
	}
	return out
}

// Find returns the answer for word, if the grid contains it.
func (a Analysis) Find(word string) (PossibleAnswer, bool) {
	for _, pa := range a.PossibleAnswers {
		if pa.Word == word {
			return pa, true
		}
	}
	return PossibleAnswer{}, false
}

// search carries the in-progress state of one Solve call.
type search struct {
	grid  board.Grid
	lex   Lexicon
	path  board.Path
	index map[string]int             // word → position in answers
	seen  map[string]map[string]bool // word → path keys already recorded
	out   []PossibleAnswer
}

// Solve enumerates every word of lex that can be traced on g.
func Solve(g board.Grid, lex Lexicon, policy scoring.Policy) Analysis {
	s := &search{
		grid:  g,
		lex:   lex,
		index: make(map[string]int),
		seen:  make(map[string]map[string]bool),
	}
	for _, start := range g.Tiles() {
		tile, _ := g.Tile(start)
		s.path = append(s.path[:0], start)
		s.visit(tile)
	}

	res := Analysis{PossibleAnswers: s.out}
	if res.PossibleAnswers == nil {
		res.PossibleAnswers = []PossibleAnswer{}
	}
	for _, pa := range res.PossibleAnswers {
		res.MaxScore += policy.WordPoints(pa.Word)
	}
	return res
}

// visit explores every extension of s.path, whose tiles spell prefix.
func (s *search) visit(prefix string) {
	if !s.lex.HasPrefix(prefix) {
		return
	}
	if s.lex.ContainsWord(prefix) {
		s.record(prefix)
	}
	last := s.path[len(s.path)-1]
	for _, n := range s.grid.Neighbours(last) {
		if s.path.Contains(n) {
			continue
		}
		tile, _ := s.grid.Tile(n)
		s.path = append(s.path, n)
		s.visit(prefix + tile)
		s.path = s.path[:len(s.path)-1]
	}
}

func (s *search) record(word string) {
	key := s.path.Key()
	if s.seen[word][key] {
		return
	}
	i, ok := s.index[word]
	if !ok {
		i = len(s.out)
		s.index[word] = i
		s.out = append(s.out, PossibleAnswer{Word: word})
		s.seen[word] = make(map[string]bool)
	}
	s.seen[word][key] = true
	s.out[i].Paths = append(s.out[i].Paths, s.path.Clone())
}
