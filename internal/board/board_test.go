package board_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/vec"

	"github.com/robalobadob/wordhunt/internal/board"
)

func TestTile_TotalOverRaggedGrid(t *testing.T) {
	g := board.Grid{
		{"A", "B", "C"},
		{"D"},
		{"", "F"},
	}
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 3, g.Height())

	cases := []struct {
		p    board.Point
		tile string
		ok   bool
	}{
		{board.Point{X: 0, Y: 0}, "A", true},
		{board.Point{X: 2, Y: 0}, "C", true},
		{board.Point{X: 1, Y: 1}, "", false}, // past the end of a short row
		{board.Point{X: 0, Y: 2}, "", false}, // empty cell
		{board.Point{X: -1, Y: 0}, "", false},
		{board.Point{X: 0, Y: 3}, "", false},
	}
	for _, tc := range cases {
		tile, ok := g.Tile(tc.p)
		assert.Equal(t, tc.tile, tile, "Tile(%v)", tc.p)
		assert.Equal(t, tc.ok, ok, "Tile(%v)", tc.p)
	}
}

func TestAdjacent(t *testing.T) {
	o := board.Point{X: 1, Y: 1}
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			p := board.Point{X: 1 + dx, Y: 1 + dy}
			want := max(abs(dx), abs(dy)) == 1
			assert.Equal(t, want, board.Adjacent(o, p), "Adjacent(%v,%v)", o, p)
		}
	}
}

func TestNeighbours_SkipsHoles(t *testing.T) {
	g := board.Parse("AB./C.D/EFG")
	got := g.Neighbours(board.Point{X: 1, Y: 1})
	want := []board.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 2, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2}}
	assert.Equal(t, want, got)
}

func TestWord(t *testing.T) {
	g := board.Grid{{"QU", "I"}, {"T", ""}}
	w, ok := g.Word(board.Path{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}})
	require.True(t, ok)
	assert.Equal(t, "QUIT", w)

	_, ok = g.Word(board.Path{{X: 0, Y: 0}, {X: 1, Y: 1}})
	assert.False(t, ok)
}

func TestPathValidOn(t *testing.T) {
	g := board.Parse("ABC,D.F,GHI")
	cases := []struct {
		name string
		path board.Path
		want bool
	}{
		{"Empty", board.Path{}, true},
		{"Diagonal", board.Path{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 1}}, true},
		{"Gap", board.Path{{X: 0, Y: 0}, {X: 2, Y: 0}}, false},
		{"Hole", board.Path{{X: 0, Y: 0}, {X: 1, Y: 1}}, false},
		{"Duplicate", board.Path{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 0}}, false},
		{"OffGrid", board.Path{{X: 3, Y: 0}}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.path.ValidOn(g))
		})
	}
}

func TestParse(t *testing.T) {
	g := board.Parse("ab.,cd")
	assert.Equal(t, board.Grid{{"A", "B", ""}, {"C", "D"}}, g)
}

func TestGridJSON_NullCells(t *testing.T) {
	g := board.Grid{{"A", ""}, {"B"}}
	b, err := json.Marshal(g)
	require.NoError(t, err)
	assert.JSONEq(t, `[["A",null],["B"]]`, string(b))

	var back board.Grid
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, g, back)
}

func TestFingerprint(t *testing.T) {
	a := board.Parse("AB,CD")
	b := board.Parse("AB,CD")
	c := board.Parse("ABC,D")
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())
	assert.Len(t, a.Fingerprint(), 64)
}

func TestLayout_RoundTrip(t *testing.T) {
	l := board.Layout{TilePx: 40, SpacePx: 4, Origin: vec.Vec2{X: 10, Y: 20}}
	centre := l.TileCentre(board.Point{X: 2, Y: 1})
	logical := l.ToLogical(centre)
	assert.InDelta(t, 2.5, logical.X, 1e-9)
	assert.InDelta(t, 1.5, logical.Y, 1e-9)

	back := l.ToPixel(logical)
	assert.InDelta(t, centre.X, back.X, 1e-9)
	assert.InDelta(t, centre.Y, back.Y, 1e-9)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
