package gesture_test

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"seehuhn.de/go/geom/vec"

	"github.com/robalobadob/wordhunt/internal/board"
	"github.com/robalobadob/wordhunt/internal/game"
	"github.com/robalobadob/wordhunt/internal/gesture"
	"github.com/robalobadob/wordhunt/internal/lexicon"
	"github.com/robalobadob/wordhunt/internal/scoring"
)

// layout: 40px tiles, no spacing, grid at the origin.
var layout = board.Layout{TilePx: 40}

func centre(x, y int) vec.Vec2 { return layout.TileCentre(board.Point{X: x, Y: y}) }

func down(p vec.Vec2) gesture.Sample  { return gesture.Sample{Kind: gesture.Press, Pos: p, Buttons: 1} }
func drag(p vec.Vec2) gesture.Sample  { return gesture.Sample{Kind: gesture.Move, Pos: p, Buttons: 1} }
func hover(p vec.Vec2) gesture.Sample { return gesture.Sample{Kind: gesture.Move, Pos: p} }
func up(p vec.Vec2) gesture.Sample    { return gesture.Sample{Kind: gesture.Release, Pos: p} }

func path(pts ...int) board.Path {
	out := make(board.Path, 0, len(pts)/2)
	for i := 0; i+1 < len(pts); i += 2 {
		out = append(out, board.Point{X: pts[i], Y: pts[i+1]})
	}
	return out
}

// TrackerSuite drives a tracker over a 3×3 grid
//
//	C A T
//	O R E
//	. S N
type TrackerSuite struct {
	suite.Suite
	round *game.Round
	tr    *gesture.Tracker
}

func (s *TrackerSuite) SetupTest() {
	g := board.Parse("CAT,ORE,.SN")
	s.round = game.NewRound(g, lexicon.New([]string{"CAT", "CAR", "CARE", "ORE", "ROE"}), scoring.Default())
	s.tr = gesture.NewTracker(gesture.Machine{Grid: g, Layout: layout, Classifier: s.round})
}

func (s *TrackerSuite) TestPressStartsPath() {
	evs := s.tr.Handle(down(centre(0, 0)))
	s.Require().Len(evs, 1)
	s.Equal(gesture.PathChanged, evs[0].Kind)
	s.Equal(path(0, 0), evs[0].Path)
	s.Equal(game.WordInvalid, evs[0].Type)
	s.True(s.tr.State().Tracking())
}

func (s *TrackerSuite) TestPressOnHoleStaysIdle() {
	evs := s.tr.Handle(down(centre(0, 2)))
	s.Empty(evs)
	s.False(s.tr.State().Tracking())

	// moving with the button held from a hole selects nothing
	s.Empty(s.tr.Handle(drag(centre(1, 2))))
	s.False(s.tr.State().Tracking())
}

func (s *TrackerSuite) TestDragClassifiesWord() {
	s.tr.Handle(down(centre(0, 0)))
	s.tr.Handle(drag(centre(1, 0)))
	evs := s.tr.Handle(drag(centre(2, 0)))
	s.Require().Len(evs, 1)
	s.Equal(path(0, 0, 1, 0, 2, 0), evs[0].Path)
	s.Equal(game.WordValidNew, evs[0].Type)

	_, err := s.round.Submit(evs[0].Path)
	s.Require().NoError(err)

	// same word again: now valid-used
	s.tr.Handle(up(centre(2, 0)))
	s.tr.Handle(down(centre(0, 0)))
	s.tr.Handle(drag(centre(1, 0)))
	evs = s.tr.Handle(drag(centre(2, 0)))
	s.Require().Len(evs, 1)
	s.Equal(game.WordValidUsed, evs[0].Type)
}

func (s *TrackerSuite) TestFastSwipeCoversIntermediateTiles() {
	s.tr.Handle(down(centre(0, 0)))
	evs := s.tr.Handle(drag(centre(2, 2)))
	s.Require().Len(evs, 1)
	// the diagonal misses the circles of the off-diagonal tiles
	s.Equal(path(0, 0, 1, 1, 2, 2), evs[0].Path)
}

func (s *TrackerSuite) TestRetouchDoesNotTruncate() {
	// C, A, R, then back over A
	s.tr.Handle(down(centre(0, 0)))
	s.tr.Handle(drag(centre(1, 0)))
	s.tr.Handle(drag(centre(1, 1)))
	evs := s.tr.Handle(drag(centre(1, 0)))
	s.Empty(evs)
	s.Equal(path(0, 0, 1, 0, 1, 1), s.tr.Path())
}

func (s *TrackerSuite) TestStationaryMoveIsNoop() {
	s.tr.Handle(down(centre(1, 1)))
	evs := s.tr.Handle(drag(centre(1, 1)))
	s.Empty(evs)
	s.Equal(path(1, 1), s.tr.Path())
}

func (s *TrackerSuite) TestHoleStopsSweep() {
	s.tr.Handle(down(centre(0, 1))) // O
	evs := s.tr.Handle(drag(centre(0, 2).Add(vec.Vec2{X: 0, Y: 10})))
	s.Empty(evs)
	s.Equal(path(0, 1), s.tr.Path())
}

func (s *TrackerSuite) TestFarDragStopsAtGridEdge() {
	s.tr.Handle(down(centre(0, 0)))
	far := vec.Vec2{X: 1e300, Y: 20}
	evs := s.tr.Handle(drag(far))
	s.Require().Len(evs, 1)
	s.Equal(path(0, 0, 1, 0, 2, 0), evs[0].Path)
	s.Equal(game.WordValidNew, evs[0].Type)
	s.Equal(far, s.tr.State().Last)
}

func (s *TrackerSuite) TestNonFiniteDragIsIgnored() {
	s.tr.Handle(down(centre(0, 0)))
	for _, p := range []vec.Vec2{
		{X: math.NaN(), Y: 20},
		{X: 20, Y: math.Inf(1)},
		{X: -math.MaxFloat64, Y: math.MaxFloat64},
	} {
		s.Empty(s.tr.Handle(drag(p)))
		s.Equal(path(0, 0), s.tr.Path())
	}
}

func (s *TrackerSuite) TestReleaseSubmits() {
	s.tr.Handle(down(centre(0, 0)))
	s.tr.Handle(drag(centre(1, 0)))
	evs := s.tr.Handle(up(centre(1, 0)))
	s.Require().Len(evs, 1)
	s.Equal(gesture.PathSubmitted, evs[0].Kind)
	s.Equal(path(0, 0, 1, 0), evs[0].Path)
	s.False(s.tr.State().Tracking())

	// a second release while idle emits nothing
	s.Empty(s.tr.Handle(up(centre(1, 0))))
}

func (s *TrackerSuite) TestMoveWithoutButtonsSubmits() {
	s.tr.Handle(down(centre(0, 0)))
	evs := s.tr.Handle(hover(centre(1, 0)))
	s.Require().Len(evs, 1)
	s.Equal(gesture.PathSubmitted, evs[0].Kind)
	s.Equal(path(0, 0), evs[0].Path)
	s.False(s.tr.State().Tracking())
}

func (s *TrackerSuite) TestSecondPressIgnored() {
	s.tr.Handle(down(centre(0, 0)))
	s.tr.Handle(drag(centre(1, 0)))
	before := s.tr.State()

	evs := s.tr.Handle(down(centre(2, 2)))
	s.Empty(evs)
	s.Equal(before, s.tr.State())
}

func TestTrackerSuite(t *testing.T) {
	suite.Run(t, new(TrackerSuite))
}

func TestStep_NonAdjacentJumpStopsSample(t *testing.T) {
	g := board.Parse("ABC,DEF,GHI")
	m := gesture.Machine{Grid: g, Layout: layout}
	st := gesture.State{Path: path(0, 0), Last: centre(2, 2)}

	next, evs := m.Step(st, drag(centre(2, 1)))
	assert.Empty(t, evs)
	assert.Equal(t, path(0, 0), next.Path)
	assert.Equal(t, centre(2, 1), next.Last)
	// input state untouched
	assert.Equal(t, path(0, 0), st.Path)
}

func TestStep_SpacingAwareConversion(t *testing.T) {
	// 40px tiles with 10px gaps; grid drawn at (100, 50).
	l := board.Layout{TilePx: 40, SpacePx: 10, Origin: vec.Vec2{X: 100, Y: 50}}
	g := board.Parse("AB,CD")
	m := gesture.Machine{Grid: g, Layout: l}

	// a press inside the gap just left of B still belongs to cell (1,0)
	st, evs := m.Step(gesture.State{}, down(vec.Vec2{X: 100 + 40 + 7, Y: 50 + 20}))
	require.Len(t, evs, 1)
	assert.Equal(t, path(1, 0), st.Path)

	st, evs = m.Step(st, drag(l.TileCentre(board.Point{X: 1, Y: 1})))
	require.Len(t, evs, 1)
	assert.Equal(t, path(1, 0, 1, 1), st.Path)
	assert.Empty(t, evs[0].Type)
}

func TestStep_HugeMoveReturnsPromptly(t *testing.T) {
	g := board.Parse("CAT,ORE,.SN")
	// 1px tiles make every pixel of travel a cell
	m := gesture.Machine{Grid: g, Layout: board.Layout{TilePx: 1}}
	st, _ := m.Step(gesture.State{}, down(vec.Vec2{X: 0.5, Y: 0.5}))

	done := make(chan gesture.State, 1)
	go func() {
		next, _ := m.Step(st, drag(vec.Vec2{X: 3e7, Y: 0.5}))
		next, _ = m.Step(next, drag(vec.Vec2{X: -1e300, Y: 1e300}))
		done <- next
	}()
	select {
	case next := <-done:
		assert.Equal(t, path(0, 0, 1, 0, 2, 0), next.Path)
	case <-time.After(2 * time.Second):
		t.Fatal("Step did not return")
	}
}

// TestStep_PathInvariant feeds random pointer streams and checks that the
// path always stays adjacent, on tiles and duplicate-free.
func TestStep_PathInvariant(t *testing.T) {
	g := board.Parse("ABCD,E.GH,IJKL,MN.P")
	m := gesture.Machine{Grid: g, Layout: board.Layout{TilePx: 30, SpacePx: 6}}
	rng := rand.New(rand.NewSource(1))

	var st gesture.State
	for i := 0; i < 5000; i++ {
		p := vec.Vec2{X: rng.Float64()*170 - 10, Y: rng.Float64()*170 - 10}
		var s gesture.Sample
		switch r := rng.Intn(20); {
		case r == 0:
			s = up(p)
		case r == 1:
			s = down(p)
		case r == 2:
			s = hover(p)
		default:
			// mostly short drags from the previous position
			p = st.Last.Add(vec.Vec2{X: rng.Float64()*60 - 30, Y: rng.Float64()*60 - 30})
			s = drag(p)
		}
		var evs []gesture.Event
		st, evs = m.Step(st, s)
		require.True(t, st.Path.ValidOn(g), "step %d: invalid path %v", i, st.Path)
		for _, ev := range evs {
			require.True(t, ev.Path.ValidOn(g), "step %d: invalid event path %v", i, ev.Path)
			require.NotEmpty(t, ev.Path)
		}
	}
}
