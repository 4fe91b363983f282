// internal/scoring/policy.go
//
// Word-length → points lookup. The concrete values are a game-balance knob,
// injected via configuration (SCORE_TABLE / SCORE_MIN_LEN).

package scoring

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// DefaultMinLength is the shortest word that scores.
const DefaultMinLength = 3

// Policy maps a word length to points.
//
// Lengths below MinLength score 0. Lengths present in Table score their
// entry. Lengths beyond the longest entry score that entry's value; any
// other gap in the table scores 0.
type Policy struct {
	MinLength int
	Table     map[int]int
}

// Default returns the classic word hunt table.
func Default() Policy {
	return Policy{
		MinLength: DefaultMinLength,
		Table: map[int]int{
			3: 100,
			4: 400,
			5: 800,
			6: 1400,
			7: 1800,
			8: 2200,
		},
	}
}

// Points returns the value of a word of length n.
func (p Policy) Points(n int) int {
	if n <= 0 || n < p.MinLength {
		return 0
	}
	if v, ok := p.Table[n]; ok {
		return v
	}
	longest := 0
	for k := range p.Table {
		longest = max(longest, k)
	}
	if longest > 0 && n > longest {
		return p.Table[longest]
	}
	return 0
}

// WordPoints scores a word by its rune length.
func (p Policy) WordPoints(word string) int {
	return p.Points(len([]rune(word)))
}

// String renders the table in the format accepted by Parse.
func (p Policy) String() string {
	keys := make([]int, 0, len(p.Table))
	for k := range p.Table {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = strconv.Itoa(k) + ":" + strconv.Itoa(p.Table[k])
	}
	return strings.Join(parts, ",")
}

// ErrEmptyTable is returned by Parse when no entries are given.
var ErrEmptyTable = errors.New("scoring: empty table")

// Parse reads a table such as "3:100,4:400,5:800".
func Parse(s string, minLength int) (Policy, error) {
	p := Policy{MinLength: minLength, Table: map[int]int{}}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		k, v, ok := strings.Cut(part, ":")
		if !ok {
			return Policy{}, fmt.Errorf("scoring: entry %q: want length:points", part)
		}
		n, err := strconv.Atoi(strings.TrimSpace(k))
		if err != nil || n <= 0 {
			return Policy{}, fmt.Errorf("scoring: entry %q: bad length", part)
		}
		pts, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || pts < 0 {
			return Policy{}, fmt.Errorf("scoring: entry %q: bad points", part)
		}
		p.Table[n] = pts
	}
	if len(p.Table) == 0 {
		return Policy{}, ErrEmptyTable
	}
	return p, nil
}
