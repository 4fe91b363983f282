// internal/gesture/tracker.go
//
// Pointer → path state machine.
// Responsibilities:
//   - Consume press / move / release samples for a single pointer.
//   - Turn each (previous, current) sample window into the tiles it sweeps
//     over (raster.ThickRasterCircles) and grow the selected path.
//   - Emit PathChanged (with live word classification) and PathSubmitted.
//
// States:
//   - Idle:     State.Path is empty.
//   - Tracking: State.Path is non-empty.
//
// Notes:
//   - Step is a pure function of (State, Sample); Tracker is a thin
//     stateful wrapper for hosts that prefer one.
//   - A press while Tracking is ignored so a stray second pointer cannot
//     reset a path in progress.
//   - Re-touching a tile already in the path does not shorten it; it just
//     stops consuming the rest of that sample's swept tiles.
//   - Samples far off the grid cost the same as ones on it; only the part of
//     the window over the grid (plus a one-cell border) is rasterized.

package gesture

import (
	"seehuhn.de/go/geom/vec"

	"github.com/robalobadob/wordhunt/internal/board"
	"github.com/robalobadob/wordhunt/internal/game"
	"github.com/robalobadob/wordhunt/internal/raster"
)

// Kind is the type of a pointer sample.
type Kind string

const (
	Press   Kind = "down"
	Move    Kind = "move"
	Release Kind = "up"
)

// Sample is one pointer observation in pixel space. Buttons is the held
// button mask; zero means nothing is pressed.
type Sample struct {
	Kind    Kind     `json:"kind"`
	Pos     vec.Vec2 `json:"pos"`
	Buttons int      `json:"buttons"`
}

// Classifier gives the live word type of a path.
type Classifier interface {
	Classify(path board.Path) game.WordType
}

// EventKind distinguishes emitted events.
type EventKind string

const (
	PathChanged   EventKind = "path-changed"
	PathSubmitted EventKind = "path-submitted"
)

// Event is emitted by Step. Type is only set for PathChanged.
type Event struct {
	Kind EventKind     `json:"kind"`
	Path board.Path    `json:"path"`
	Type game.WordType `json:"type,omitempty"`
}

// State is the tracker value: the selected path and the last pointer
// position seen (pixels).
type State struct {
	Path board.Path `json:"path"`
	Last vec.Vec2   `json:"last"`
}

// Tracking reports whether a path is in progress.
func (s State) Tracking() bool { return len(s.Path) > 0 }

// Machine holds the fixed inputs of the transition function.
type Machine struct {
	Grid       board.Grid
	Layout     board.Layout
	Classifier Classifier // may be nil: PathChanged then carries no type
}

// Step applies one sample to st and returns the new state and any events.
// st is not modified.
func (m Machine) Step(st State, s Sample) (State, []Event) {
	switch {
	case s.Kind == Press:
		return m.press(st, s)
	case s.Kind == Release, s.Kind == Move && s.Buttons == 0:
		return m.release(st, s)
	case s.Kind == Move:
		return m.move(st, s)
	}
	return st, nil
}

func (m Machine) press(st State, s Sample) (State, []Event) {
	if st.Tracking() {
		return st, nil
	}
	next := State{Last: s.Pos}
	cell := raster.Cell(m.Layout.ToLogical(s.Pos))
	if !m.Grid.HasTile(cell) {
		return next, nil
	}
	next.Path = board.Path{cell}
	return next, []Event{m.changed(next.Path)}
}

func (m Machine) release(st State, s Sample) (State, []Event) {
	next := State{Last: s.Pos}
	if !st.Tracking() {
		return next, nil
	}
	return next, []Event{{Kind: PathSubmitted, Path: st.Path.Clone()}}
}

func (m Machine) move(st State, s Sample) (State, []Event) {
	if !st.Tracking() {
		return State{Last: s.Pos}, nil
	}
	swept := m.sweep(st.Last, s.Pos)
	path := st.Path.Clone()
	added := false
	for _, cell := range swept {
		last := path[len(path)-1]
		if cell == last {
			continue
		}
		if path.Contains(cell) {
			break
		}
		if !board.Adjacent(last, cell) || !m.Grid.HasTile(cell) {
			break
		}
		path = append(path, cell)
		added = true
	}
	next := State{Path: path, Last: s.Pos}
	if !added {
		return next, nil
	}
	return next, []Event{m.changed(path)}
}

// sweep returns the tiles hit between two pixel positions. The segment is
// clipped to the grid plus a one-cell border first: nothing outside can join
// the path, and an unclipped far-off sample would rasterize without bound.
func (m Machine) sweep(from, to vec.Vec2) []board.Point {
	lo := vec.Vec2{X: -1, Y: -1}
	hi := vec.Vec2{X: float64(m.Grid.Width() + 1), Y: float64(m.Grid.Height() + 1)}
	a, b, ok := raster.ClipSegment(m.Layout.ToLogical(from), m.Layout.ToLogical(to), lo, hi)
	if !ok {
		return nil
	}
	return raster.ThickRasterCircles(a, b)
}

func (m Machine) changed(path board.Path) Event {
	ev := Event{Kind: PathChanged, Path: path.Clone()}
	if m.Classifier != nil {
		ev.Type = m.Classifier.Classify(path)
	}
	return ev
}

// Tracker owns a Machine's current state.
type Tracker struct {
	m  Machine
	st State
}

// NewTracker returns an Idle tracker.
func NewTracker(m Machine) *Tracker { return &Tracker{m: m} }

// Handle feeds one sample through the machine.
func (t *Tracker) Handle(s Sample) []Event {
	var evs []Event
	t.st, evs = t.m.Step(t.st, s)
	return evs
}

// State returns the current tracker value.
func (t *Tracker) State() State { return t.st }

// Path returns a copy of the current path.
func (t *Tracker) Path() board.Path { return t.st.Path.Clone() }
