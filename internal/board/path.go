package board

import "strings"

// Path is an ordered selection of cells. A valid path is duplicate-free,
// stays on tiles, and steps between 8-neighbours.
type Path []Point

// Last returns the final cell of the path.
func (p Path) Last() (Point, bool) {
	if len(p) == 0 {
		return Point{}, false
	}
	return p[len(p)-1], true
}

// Contains reports whether pt appears anywhere in the path.
func (p Path) Contains(pt Point) bool {
	for _, q := range p {
		if q == pt {
			return true
		}
	}
	return false
}

// Clone returns a copy that does not share storage with p.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	out := make(Path, len(p))
	copy(out, p)
	return out
}

// Key is a compact identity for the coordinate sequence, e.g. "(0,0)(1,0)".
func (p Path) Key() string {
	var sb strings.Builder
	for _, pt := range p {
		sb.WriteString(pt.String())
	}
	return sb.String()
}

// ValidOn reports whether p satisfies the path invariants on g.
func (p Path) ValidOn(g Grid) bool {
	seen := make(map[Point]struct{}, len(p))
	for i, pt := range p {
		if !g.HasTile(pt) {
			return false
		}
		if _, dup := seen[pt]; dup {
			return false
		}
		seen[pt] = struct{}{}
		if i > 0 && !Adjacent(p[i-1], pt) {
			return false
		}
	}
	return true
}
