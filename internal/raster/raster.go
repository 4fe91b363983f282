// internal/raster/raster.go
//
// Segment rasterization over a grid of unit cells anchored at the origin.
// Callers convert pixel positions into this unit space first
// (see board.Layout.ToLogical).
//
// Two policies are provided:
//   - ThickRaster: every cell whose square the segment enters (supercover).
//   - ThickRasterCircles: the subset of those cells whose inscribed circle
//     the segment touches, matching round tile hit targets.
//
// Both are pure. The gesture tracker calls them once per pointer sample on
// the (previous, current) window, so fast swipes never skip a cell.
//
// ThickRaster always returns at least the cell containing a, even for a
// zero-length segment. ThickRasterCircles gives no such guarantee: a
// stationary point outside its cell's circle yields no cells.
//
// Work grows with segment length. Callers holding untrusted input clip the
// segment to the area they care about with ClipSegment first.

package raster

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"github.com/robalobadob/wordhunt/internal/board"
)

// CircleRadius is the radius of a cell's inscribed circle in unit space.
const CircleRadius = 0.5

// Cell returns the unit cell containing p.
func Cell(p vec.Vec2) board.Point {
	return board.Point{X: int(math.Floor(p.X)), Y: int(math.Floor(p.Y))}
}

// ThickRaster returns the cells the segment a→b passes through, in
// traversal order from a's cell to b's cell. Consecutive cells always share
// an edge, so the sequence has no gaps. A zero-length segment yields the
// single cell containing a.
func ThickRaster(a, b vec.Vec2) []board.Point {
	start, end := Cell(a), Cell(b)
	sy := sign(end.Y - start.Y)

	out := []board.Point{start}

	// Pure vertical run: both ends in one column.
	if start.X == end.X {
		for y := start.Y; y != end.Y; {
			y += sy
			out = append(out, board.Point{X: start.X, Y: y})
		}
		return out
	}

	sx := sign(end.X - start.X)
	slope := (b.Y - a.Y) / (b.X - a.X)
	y := start.Y
	for x := start.X; ; x += sx {
		// Row the segment occupies as it leaves column x.
		target := end.Y
		if x != end.X {
			edge := float64(x)
			if sx > 0 {
				edge = float64(x + 1)
			}
			target = int(math.Floor(a.Y + (edge-a.X)*slope))
			target = clampTowards(target, y, end.Y, sy)
		}
		for y != target {
			y += sy
			out = append(out, board.Point{X: x, Y: y})
		}
		if x == end.X {
			break
		}
		out = append(out, board.Point{X: x + sx, Y: y})
	}
	return out
}

// ThickRasterCircles filters ThickRaster(a, b) down to the cells whose
// inscribed circle (centre at the cell centre, radius CircleRadius) the
// segment intersects.
func ThickRasterCircles(a, b vec.Vec2) []board.Point {
	cells := ThickRaster(a, b)
	out := make([]board.Point, 0, len(cells))
	for _, c := range cells {
		centre := vec.Vec2{X: float64(c.X) + 0.5, Y: float64(c.Y) + 0.5}
		if _, ok := SegmentHitsCircle(a, b, centre, CircleRadius); ok {
			out = append(out, c)
		}
	}
	return out
}

// ClipSegment clips a→b to the box [lo, hi] (Liang–Barsky). It reports false
// when the segment misses the box or any coordinate is not finite.
func ClipSegment(a, b, lo, hi vec.Vec2) (vec.Vec2, vec.Vec2, bool) {
	d := b.Sub(a)
	if !finite(a) || !finite(b) || !finite(d) {
		return a, b, false
	}
	t0, t1 := 0.0, 1.0
	for _, e := range [4][2]float64{
		{-d.X, a.X - lo.X},
		{d.X, hi.X - a.X},
		{-d.Y, a.Y - lo.Y},
		{d.Y, hi.Y - a.Y},
	} {
		p, q := e[0], e[1]
		if p == 0 {
			// parallel to this edge
			if q < 0 {
				return a, b, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			t0 = max(t0, r)
		} else {
			t1 = min(t1, r)
		}
		if t0 > t1 {
			return a, b, false
		}
	}
	return Interp(a, b, t0), Interp(a, b, t1), true
}

// ClosestPointScalar returns t such that a + t·(b−a) is the point on the
// line through a and b closest to c. For a zero-length segment t is 0.
func ClosestPointScalar(a, b, c vec.Vec2) float64 {
	d := b.Sub(a)
	denom := d.Dot(d)
	if denom == 0 {
		return 0
	}
	return c.Sub(a).Dot(d) / denom
}

// SegmentHitsCircle reports whether segment a→b enters the circle (c, r).
// On a hit it returns the parameter on a→b closest to the centre, clamped
// to [0, 1].
func SegmentHitsCircle(a, b, c vec.Vec2, r float64) (float64, bool) {
	t := ClosestPointScalar(a, b, c)
	r2 := r * r
	switch {
	case t < 0:
		return 0, distSq(a, c) <= r2
	case t > 1:
		return 1, distSq(b, c) <= r2
	default:
		return t, distSq(Interp(a, b, t), c) <= r2
	}
}

// Interp returns a·(1−t) + b·t.
func Interp(a, b vec.Vec2, t float64) vec.Vec2 {
	return a.Mul(1 - t).Add(b.Mul(t))
}

func finite(p vec.Vec2) bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

func distSq(p, q vec.Vec2) float64 {
	d := p.Sub(q)
	return d.Dot(d)
}

// clampTowards keeps v between the current row and the final row so that
// rounding at cell corners never walks backwards or overshoots.
func clampTowards(v, cur, final, step int) int {
	switch {
	case step > 0:
		return min(max(v, cur), final)
	case step < 0:
		return max(min(v, cur), final)
	default:
		return cur
	}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
