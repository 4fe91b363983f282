// internal/board/grid.go
//
// Grid, coordinate and path primitives shared by the solver, the gesture
// tracker and the round service.
//
// Notes:
//   - A cell holding "" is "no tile". Rows may be ragged; a short row simply
//     has no tiles past its end.
//   - Every accessor is total: out-of-range lookups report absence rather
//     than panicking.

package board

import (
	"encoding/hex"
	"encoding/json"
	"strconv"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// Grid is a table of tiles indexed grid[row][col].
type Grid [][]string

// Point is a cell coordinate (X = column, Y = row).
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// String renders a point as "(x,y)".
func (p Point) String() string {
	return "(" + strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y) + ")"
}

// Adjacent reports whether a and b are 8-neighbours (Chebyshev distance 1).
func Adjacent(a, b Point) bool {
	dx, dy := abs(a.X-b.X), abs(a.Y-b.Y)
	return max(dx, dy) == 1
}

// Width is the length of the longest row.
func (g Grid) Width() int {
	w := 0
	for _, row := range g {
		w = max(w, len(row))
	}
	return w
}

// Height is the number of rows.
func (g Grid) Height() int { return len(g) }

// Tile returns the tile at p, or false when p is off-grid or empty.
func (g Grid) Tile(p Point) (string, bool) {
	if p.Y < 0 || p.Y >= len(g) || p.X < 0 || p.X >= len(g[p.Y]) {
		return "", false
	}
	t := g[p.Y][p.X]
	return t, t != ""
}

// HasTile reports whether p holds a tile.
func (g Grid) HasTile(p Point) bool {
	_, ok := g.Tile(p)
	return ok
}

// Tiles lists every tile coordinate in row-major order.
func (g Grid) Tiles() []Point {
	var out []Point
	for y, row := range g {
		for x, t := range row {
			if t != "" {
				out = append(out, Point{X: x, Y: y})
			}
		}
	}
	return out
}

// Neighbours returns the tiles adjacent to p, in a fixed order
// (top-left to bottom-right, row by row).
func (g Grid) Neighbours(p Point) []Point {
	out := make([]Point, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			n := Point{X: p.X + dx, Y: p.Y + dy}
			if g.HasTile(n) {
				out = append(out, n)
			}
		}
	}
	return out
}

// Word concatenates the tiles along path. It returns false if any cell of
// the path is off-grid or empty.
func (g Grid) Word(path Path) (string, bool) {
	var sb strings.Builder
	for _, p := range path {
		t, ok := g.Tile(p)
		if !ok {
			return "", false
		}
		sb.WriteString(t)
	}
	return sb.String(), true
}

// Fingerprint is a stable hash of the grid's shape and contents.
func (g Grid) Fingerprint() string {
	var buf []byte
	for _, row := range g {
		for _, t := range row {
			buf = append(buf, t...)
			buf = append(buf, 0)
		}
		buf = append(buf, '\n')
	}
	sum := blake2b.Sum256(buf)
	return hex.EncodeToString(sum[:])
}

// MarshalJSON writes empty cells as null.
func (g Grid) MarshalJSON() ([]byte, error) {
	rows := make([][]*string, len(g))
	for y, row := range g {
		rows[y] = make([]*string, len(row))
		for x := range row {
			if row[x] != "" {
				rows[y][x] = &row[x]
			}
		}
	}
	return json.Marshal(rows)
}

// Parse reads a compact grid description: rows separated by ',' or '/',
// one tile per rune, '.' or '_' for no tile. Tiles are uppercased.
func Parse(s string) Grid {
	var g Grid
	for _, line := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == '/' || r == '\n' }) {
		line = strings.TrimSpace(line)
		row := make([]string, 0, len(line))
		for _, r := range line {
			if r == '.' || r == '_' {
				row = append(row, "")
				continue
			}
			row = append(row, strings.ToUpper(string(r)))
		}
		g = append(g, row)
	}
	return g
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
